package encoding

import (
	"fmt"

	"github.com/arloliu/bincif/errs"
)

// DecodeIntegerPacking inverts an integer packing: a sequence of narrow
// integers is widened back to Int32, treating the narrow type's saturation
// values as continuation tokens.
//
// In signed mode the tokens are the narrow type's upper and lower bounds
// (0x7F/-0x80 for one byte, 0x7FFF/-0x8000 for two); in unsigned mode only
// the upper bound (0xFF or 0xFFFF) continues. A continuation token adds
// its value to a running sum and carries on; the first non-token value
// terminates the run and emits the accumulated sum.
//
// Parameters:
//   - in: Narrow sequence: []int8 or []int16 in signed mode, []uint8 or
//     []uint16 in unsigned mode, matching byteCount
//   - byteCount: Width of the narrow type, 1 or 2
//   - isUnsigned: Selects the unsigned token set
//   - srcSize: Expected length of the widened sequence
//
// Returns:
//   - []int32: Widened sequence of exactly srcSize values
//   - error: errs.ErrMalformedEncoding for a byte count outside {1, 2},
//     an input sequence of the wrong narrow type, input ending inside a
//     continuation run, or an output length mismatch
func DecodeIntegerPacking(in any, byteCount int, isUnsigned bool, srcSize int) ([]int32, error) {
	switch {
	case isUnsigned && byteCount == 1:
		if narrow, ok := in.([]uint8); ok {
			return unpack(narrow, 0xFF, minSentinel, srcSize)
		}
	case isUnsigned && byteCount == 2:
		if narrow, ok := in.([]uint16); ok {
			return unpack(narrow, 0xFFFF, minSentinel, srcSize)
		}
	case !isUnsigned && byteCount == 1:
		if narrow, ok := in.([]int8); ok {
			return unpack(narrow, 0x7F, -0x80, srcSize)
		}
	case !isUnsigned && byteCount == 2:
		if narrow, ok := in.([]int16); ok {
			return unpack(narrow, 0x7FFF, -0x8000, srcSize)
		}
	default:
		return nil, fmt.Errorf("%w: integer packing byte count %d", errs.ErrMalformedEncoding, byteCount)
	}

	return nil, fmt.Errorf("%w: integer packing input does not match byteCount=%d isUnsigned=%t",
		errs.ErrMalformedEncoding, byteCount, isUnsigned)
}

// minSentinel is a lower token no unsigned value can equal, disabling the
// lower-bound continuation in unsigned mode.
const minSentinel int64 = -1 << 62

func unpack[T anyInt](in []T, upper, lower int64, srcSize int) ([]int32, error) {
	out := make([]int32, 0, srcSize)
	var acc int64
	var pending bool
	for _, tok := range in {
		v := int64(tok)
		acc += v
		pending = true
		if v == upper || v == lower {
			continue
		}
		if len(out) == srcSize {
			return nil, fmt.Errorf("%w: integer packing output exceeds declared size %d",
				errs.ErrMalformedEncoding, srcSize)
		}
		out = append(out, int32(acc))
		acc = 0
		pending = false
	}

	if pending {
		return nil, fmt.Errorf("%w: integer packing input ends inside a continuation run",
			errs.ErrMalformedEncoding)
	}
	if len(out) != srcSize {
		return nil, fmt.Errorf("%w: integer packing produced %d values, declared size is %d",
			errs.ErrMalformedEncoding, len(out), srcSize)
	}

	return out, nil
}
