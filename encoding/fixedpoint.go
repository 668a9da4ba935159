package encoding

import (
	"fmt"

	"github.com/arloliu/bincif/errs"
	"github.com/arloliu/bincif/format"
)

// DecodeFixedPoint inverts a fixed-point encoding: each scaled integer is
// divided by the factor to recover the original real value.
//
// The reciprocal of the factor is computed once and each element is
// multiplied by it, preserving the encoder's intent of representing a
// fixed-precision real by its scaled integer.
//
// Parameters:
//   - in: Scaled integer sequence
//   - factor: Non-zero scale factor used by the encoder
//   - srcType: Floating-point precision of the original sequence
//
// Returns:
//   - any: []float32 or []float64 per srcType
//   - error: errs.ErrMalformedEncoding for a zero factor,
//     errs.ErrUnsupportedType for a non-float srcType
func DecodeFixedPoint(in []int32, factor float64, srcType format.DataType) (any, error) {
	if factor == 0 {
		return nil, fmt.Errorf("%w: fixed point factor is zero", errs.ErrMalformedEncoding)
	}

	inv := 1.0 / factor
	switch srcType {
	case format.TypeFloat32:
		out := make([]float32, len(in))
		for i, v := range in {
			out[i] = float32(float64(v) * inv)
		}

		return out, nil
	case format.TypeFloat64:
		out := make([]float64, len(in))
		for i, v := range in {
			out[i] = float64(v) * inv
		}

		return out, nil
	default:
		return nil, fmt.Errorf("%w: fixed point target type %s is not a float type",
			errs.ErrUnsupportedType, srcType)
	}
}
