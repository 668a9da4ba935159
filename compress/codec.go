// Package compress handles compressed container payloads.
//
// Encoded files commonly travel compressed (gzip on the web, Zstandard or
// LZ4 in archives). This package provides a codec per format plus
// magic-byte sniffing, so a caller can hand over a payload without knowing
// how it was compressed. Each codec also implements the compress
// direction, which the tests use for round-trip verification.
package compress

import (
	"fmt"

	"github.com/arloliu/bincif/errs"
	"github.com/arloliu/bincif/format"
)

// Compressor compresses a payload in one shot.
type Compressor interface {
	// Compress compresses the input data and returns the compressed result.
	//
	// Memory management:
	//   - Returned slice is owned by the caller; it is newly allocated
	//     except for NoOpCompressor, which returns the input slice itself
	//   - Input slice is not modified
	//   - Internal buffers may be reused for efficiency
	Compress(data []byte) ([]byte, error)
}

// Decompressor decompresses a payload in one shot.
//
// Implementations must be safe for concurrent use: pipeline decoding may
// run from multiple goroutines over distinct payloads.
type Decompressor interface {
	// Decompress decompresses the input data and returns the original result.
	//
	// The input must have been compressed with the same format; corrupted
	// or mismatched data returns an error.
	//
	// Memory management:
	//   - Returned slice is owned by the caller; it is newly allocated
	//     except for NoOpCompressor, which returns the input slice itself
	//   - Input slice is not modified
	//   - Internal buffers may be reused for efficiency
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions.
type Codec interface {
	Compressor
	Decompressor
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionGzip: NewGzipCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
	format.CompressionS2:   NewS2Compressor(),
}

// GetCodec retrieves the built-in Codec for the specified compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %s", errs.ErrUnsupportedCompression, compressionType)
}

// Magic prefixes of the self-identifying frame formats.
var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
	lz4Magic  = []byte{0x04, 0x22, 0x4d, 0x18}
)

// Sniff inspects the payload's magic bytes and reports the compression
// format. Formats without framing (S2 blocks) are not detectable and a
// payload with no known magic reports CompressionNone.
func Sniff(data []byte) format.CompressionType {
	switch {
	case hasPrefix(data, gzipMagic):
		return format.CompressionGzip
	case hasPrefix(data, zstdMagic):
		return format.CompressionZstd
	case hasPrefix(data, lz4Magic):
		return format.CompressionLZ4
	default:
		return format.CompressionNone
	}
}

// DecompressAuto sniffs the payload and decompresses it with the matching
// codec. A payload with no recognized magic passes through unchanged.
func DecompressAuto(data []byte) ([]byte, error) {
	codec, err := GetCodec(Sniff(data))
	if err != nil {
		return nil, err
	}

	return codec.Decompress(data)
}

func hasPrefix(data, magic []byte) bool {
	if len(data) < len(magic) {
		return false
	}
	for i, b := range magic {
		if data[i] != b {
			return false
		}
	}

	return true
}
