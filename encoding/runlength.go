package encoding

import (
	"fmt"

	"github.com/arloliu/bincif/errs"
	"github.com/arloliu/bincif/format"
)

// DecodeRunLength inverts a run-length encoding: the input holds (value,
// length) pairs in order, and each value is emitted length times.
//
// The total emitted count must equal srcSize exactly; both insufficient
// and excess output fail.
//
// Parameters:
//   - in: Pair sequence of even length
//   - srcType: Integer element type of the original sequence
//   - srcSize: Expected length of the expanded sequence
//
// Returns:
//   - any: Expanded sequence in srcType's slice type
//   - error: errs.ErrMalformedEncoding for an odd pair sequence, a
//     negative run length, or an output length mismatch;
//     errs.ErrUnsupportedType for a non-integer srcType
func DecodeRunLength(in []int32, srcType format.DataType, srcSize int) (any, error) {
	if len(in)%2 != 0 {
		return nil, fmt.Errorf("%w: run length input holds %d values, expected (value, length) pairs",
			errs.ErrMalformedEncoding, len(in))
	}
	if srcSize < 0 {
		return nil, fmt.Errorf("%w: negative run length target size %d", errs.ErrMalformedEncoding, srcSize)
	}

	switch srcType {
	case format.TypeInt8:
		return expandRuns[int8](in, srcSize)
	case format.TypeInt16:
		return expandRuns[int16](in, srcSize)
	case format.TypeInt32:
		return expandRuns[int32](in, srcSize)
	case format.TypeUint8:
		return expandRuns[uint8](in, srcSize)
	case format.TypeUint16:
		return expandRuns[uint16](in, srcSize)
	case format.TypeUint32:
		return expandRuns[uint32](in, srcSize)
	default:
		return nil, fmt.Errorf("%w: run length source type %s is not an integer type",
			errs.ErrUnsupportedType, srcType)
	}
}

func expandRuns[T anyInt](in []int32, srcSize int) ([]T, error) {
	out := make([]T, 0, srcSize)
	for i := 0; i < len(in); i += 2 {
		value := T(in[i])
		runLen := int(in[i+1])
		if runLen < 0 {
			return nil, fmt.Errorf("%w: negative run length %d at pair %d",
				errs.ErrMalformedEncoding, runLen, i/2)
		}
		if len(out)+runLen > srcSize {
			return nil, fmt.Errorf("%w: run length output exceeds declared size %d",
				errs.ErrMalformedEncoding, srcSize)
		}
		for range runLen {
			out = append(out, value)
		}
	}

	if len(out) != srcSize {
		return nil, fmt.Errorf("%w: run length produced %d values, declared size is %d",
			errs.ErrMalformedEncoding, len(out), srcSize)
	}

	return out, nil
}
