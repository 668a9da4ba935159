package encoding

import (
	"fmt"

	"github.com/arloliu/bincif/errs"
	"github.com/arloliu/bincif/format"
)

// DecodeDelta inverts a delta encoding: the output is the cumulative sum
// of the input differences, offset by origin.
//
// out[0] = in[0] + origin; out[i] = in[i] + out[i-1]. The sum wraps in the
// declared source type; the encoder guarantees the type is wide enough, so
// no overflow check is performed. An empty input yields an empty output.
//
// Parameters:
//   - in: Decoded difference sequence ([]int8, []int16 or []int32)
//   - origin: Starting offset added to the first difference
//   - srcType: Signed integer type of the original sequence
//
// Returns:
//   - any: Cumulative sequence as []int8, []int16 or []int32 per srcType
//   - error: errs.ErrMalformedEncoding when srcType is not a signed
//     integer type or the input is not a signed integer sequence
func DecodeDelta(in any, origin int64, srcType format.DataType) (any, error) {
	deltas, ok := signedSequence(in)
	if !ok {
		return nil, fmt.Errorf("%w: delta input is not a signed integer sequence",
			errs.ErrMalformedEncoding)
	}

	switch srcType {
	case format.TypeInt8:
		return accumulate[int8](deltas, origin), nil
	case format.TypeInt16:
		return accumulate[int16](deltas, origin), nil
	case format.TypeInt32:
		return accumulate[int32](deltas, origin), nil
	default:
		return nil, fmt.Errorf("%w: delta source type %s is not a signed integer",
			errs.ErrMalformedEncoding, srcType)
	}
}

func signedSequence(v any) ([]int64, bool) {
	switch in := v.(type) {
	case []int8:
		return widen64(in), true
	case []int16:
		return widen64(in), true
	case []int32:
		return widen64(in), true
	default:
		return nil, false
	}
}

func widen64[T signedInt](in []T) []int64 {
	out := make([]int64, len(in))
	for i, v := range in {
		out[i] = int64(v)
	}

	return out
}

// accumulate runs the cumulative sum in 64-bit and narrows each element to
// T. Narrowing after each step is congruent to summing in T, so wraparound
// behaves as if the sum were carried in the source type.
func accumulate[T signedInt](deltas []int64, origin int64) []T {
	out := make([]T, len(deltas))
	cur := origin
	for i, d := range deltas {
		cur += d
		out[i] = T(cur)
	}

	return out
}
