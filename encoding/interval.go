package encoding

import (
	"fmt"

	"github.com/arloliu/bincif/errs"
	"github.com/arloliu/bincif/format"
)

// DecodeIntervalQuantization inverts an interval quantization: each step
// index is mapped back onto the uniform grid spanning [min, max] with
// numSteps points.
//
// The step width (max-min)/(numSteps-1) is computed once; out[i] equals
// min + step*in[i].
//
// Parameters:
//   - in: Step index sequence
//   - min: Lower bound of the quantized interval
//   - max: Upper bound of the quantized interval
//   - numSteps: Number of grid points, at least 2
//   - srcType: Floating-point precision of the original sequence
//
// Returns:
//   - any: []float32 or []float64 per srcType
//   - error: errs.ErrMalformedEncoding when numSteps < 2,
//     errs.ErrUnsupportedType for a non-float srcType
func DecodeIntervalQuantization(in []int32, min, max float64, numSteps int, srcType format.DataType) (any, error) {
	if numSteps < 2 {
		return nil, fmt.Errorf("%w: interval quantization needs at least 2 steps, got %d",
			errs.ErrMalformedEncoding, numSteps)
	}

	step := (max - min) / float64(numSteps-1)
	switch srcType {
	case format.TypeFloat32:
		out := make([]float32, len(in))
		for i, v := range in {
			out[i] = float32(min + step*float64(v))
		}

		return out, nil
	case format.TypeFloat64:
		out := make([]float64, len(in))
		for i, v := range in {
			out[i] = min + step*float64(v)
		}

		return out, nil
	default:
		return nil, fmt.Errorf("%w: interval quantization target type %s is not a float type",
			errs.ErrUnsupportedType, srcType)
	}
}
