package compress

import (
	"bytes"
	"sync"

	"github.com/klauspost/compress/gzip"

	"github.com/arloliu/bincif/internal/pool"
)

// gzipReaderPool pools gzip readers for reuse; Reset avoids re-allocating
// the inflate state per payload.
var gzipReaderPool = sync.Pool{}

type GzipCompressor struct{}

var _ Codec = (*GzipCompressor)(nil)

// NewGzipCompressor creates a new gzip compressor.
func NewGzipCompressor() GzipCompressor {
	return GzipCompressor{}
}

// Compress compresses the input data as a single gzip member.
func (c GzipCompressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	var out bytes.Buffer
	zw := gzip.NewWriter(&out)
	if _, err := zw.Write(data); err != nil {
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}

	return out.Bytes(), nil
}

// Decompress inflates a gzip member stream.
//
// The inflated bytes stage through a pooled buffer and are copied out, so
// the returned slice is owned by the caller while the staging space is
// reused across payloads.
func (c GzipCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	src := bytes.NewReader(data)
	var zr *gzip.Reader
	if v := gzipReaderPool.Get(); v != nil {
		zr, _ = v.(*gzip.Reader)
		if err := zr.Reset(src); err != nil {
			return nil, err
		}
	} else {
		var err error
		zr, err = gzip.NewReader(src)
		if err != nil {
			return nil, err
		}
	}
	defer gzipReaderPool.Put(zr)

	buf := pool.GetBuffer()
	defer pool.PutBuffer(buf)

	if _, err := buf.ReadFrom(zr); err != nil {
		return nil, err
	}
	if err := zr.Close(); err != nil {
		return nil, err
	}

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())

	return out, nil
}
