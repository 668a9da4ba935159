package compress

// ZstdCompressor handles Zstandard frames.
//
// Two implementations exist behind build tags: a cgo binding to libzstd
// for maximum throughput, and a pure-Go fallback used when cgo is
// disabled. Both produce standard frames and interoperate freely.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
