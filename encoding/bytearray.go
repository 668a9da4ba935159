package encoding

import (
	"fmt"
	"math"
	"unsafe"

	"github.com/arloliu/bincif/endian"
	"github.com/arloliu/bincif/errs"
	"github.com/arloliu/bincif/format"
)

// wire is the byte order of every multi-byte payload on the wire.
var wire = endian.LittleEndian()

// Reinterpret decodes a raw little-endian byte payload into a typed
// sequence of the given element type.
//
// On little-endian hosts the returned slice aliases the input buffer
// directly (zero copy) for every width; the caller must keep the input
// buffer alive for as long as the returned sequence is in use and must not
// mutate it. On big-endian hosts a byte-swapped copy is made, swapping in
// groups of the element width. Single-byte widths alias on every host.
//
// Parameters:
//   - data: Raw payload bytes, length must be a multiple of the element width
//   - t: Target element type, one of the eight supported widths
//
// Returns:
//   - any: One of []int8, []int16, []int32, []uint8, []uint16, []uint32,
//     []float32, []float64
//   - error: errs.ErrUnsupportedType for an unknown type code,
//     errs.ErrMalformedEncoding for a partial trailing element
func Reinterpret(data []byte, t format.DataType) (any, error) {
	width := t.Size()
	if width == 0 {
		return nil, fmt.Errorf("%w: byte array type code %d", errs.ErrUnsupportedType, uint8(t))
	}
	if len(data)%width != 0 {
		return nil, fmt.Errorf("%w: %d payload bytes do not divide into %s elements",
			errs.ErrMalformedEncoding, len(data), t)
	}

	count := len(data) / width
	switch t {
	case format.TypeInt8:
		return alias[int8](data, count), nil
	case format.TypeUint8:
		return alias[uint8](data, count), nil
	case format.TypeInt16:
		return reinterpret(data, count, width, func(b []byte) int16 {
			return int16(wire.Uint16(b))
		}), nil
	case format.TypeUint16:
		return reinterpret(data, count, width, wire.Uint16), nil
	case format.TypeInt32:
		return reinterpret(data, count, width, func(b []byte) int32 {
			return int32(wire.Uint32(b))
		}), nil
	case format.TypeUint32:
		return reinterpret(data, count, width, wire.Uint32), nil
	case format.TypeFloat32:
		return reinterpret(data, count, width, func(b []byte) float32 {
			return math.Float32frombits(wire.Uint32(b))
		}), nil
	default: // format.TypeFloat64, the only width left after the Size check
		return reinterpret(data, count, width, func(b []byte) float64 {
			return math.Float64frombits(wire.Uint64(b))
		}), nil
	}
}

// reinterpret views data as a little-endian sequence of T. On a
// little-endian host the slice header is cast in place; otherwise each
// element is read through the wire byte order into a fresh slice.
func reinterpret[T any](data []byte, count, width int, read func([]byte) T) []T {
	if endian.IsNativeLittleEndian() {
		return alias[T](data, count)
	}

	out := make([]T, count)
	for i := range out {
		out[i] = read(data[i*width:])
	}

	return out
}

// alias casts the byte slice to a []T of the given element count without
// copying. Callers guarantee len(data) covers count elements of T.
func alias[T any](data []byte, count int) []T {
	if count == 0 {
		return []T{}
	}

	return unsafe.Slice((*T)(unsafe.Pointer(&data[0])), count)
}
