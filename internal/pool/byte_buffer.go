// Package pool provides a pooled byte buffer used as staging space by the
// container decompression codecs.
package pool

import (
	"io"
	"sync"
)

// BufferDefaultSize is the initial capacity of a pooled buffer;
// BufferMaxThreshold caps what is kept when a buffer returns to the pool,
// so one oversized payload does not pin memory for the process lifetime.
const (
	BufferDefaultSize  = 1024 * 64
	BufferMaxThreshold = 1024 * 1024 * 8
)

// ByteBuffer is a growable byte slice with explicit length control.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Len returns the length of the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Reset resets the buffer to be empty, but retains the allocated memory
// for reuse.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// MustWrite appends data to the buffer, growing it if necessary.
func (bb *ByteBuffer) MustWrite(data []byte) {
	bb.B = append(bb.B, data...)
}

// ReadFrom reads r until EOF, appending to the buffer. It implements
// io.ReaderFrom.
func (bb *ByteBuffer) ReadFrom(r io.Reader) (int64, error) {
	var total int64
	for {
		if len(bb.B) == cap(bb.B) {
			bb.B = append(bb.B, 0)[:len(bb.B)]
		}
		n, err := r.Read(bb.B[len(bb.B):cap(bb.B)])
		bb.B = bb.B[:len(bb.B)+n]
		total += int64(n)
		if err == io.EOF {
			return total, nil
		}
		if err != nil {
			return total, err
		}
	}
}

var bufferPool = sync.Pool{
	New: func() any {
		return &ByteBuffer{B: make([]byte, 0, BufferDefaultSize)}
	},
}

// GetBuffer obtains a reset ByteBuffer from the pool.
func GetBuffer() *ByteBuffer {
	buf, _ := bufferPool.Get().(*ByteBuffer)
	buf.Reset()

	return buf
}

// PutBuffer returns a ByteBuffer to the pool. Buffers grown past
// BufferMaxThreshold are dropped.
func PutBuffer(buf *ByteBuffer) {
	if cap(buf.B) > BufferMaxThreshold {
		return
	}
	bufferPool.Put(buf)
}
