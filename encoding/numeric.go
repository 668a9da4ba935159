package encoding

// signedInt constrains the signed integer element types a Delta stack can
// produce.
type signedInt interface {
	~int8 | ~int16 | ~int32
}

// anyInt constrains the integer element types a RunLength stack can
// produce.
type anyInt interface {
	~int8 | ~int16 | ~int32 | ~uint8 | ~uint16 | ~uint32
}

// Int32Sequence coerces a decoded integer sequence to []int32.
//
// The transforms that consume integer input document it as an Int32
// sequence; upstream stacks may legally hand over any narrower integer
// width (a bare ByteArray of Int16 feeding a RunLength, for example), so
// the coercion widens instead of rejecting. Returns false when the value
// is not an integer sequence.
func Int32Sequence(v any) ([]int32, bool) {
	switch in := v.(type) {
	case []int32:
		return in, true
	case []int8:
		return widen(in), true
	case []int16:
		return widen(in), true
	case []uint8:
		return widen(in), true
	case []uint16:
		return widen(in), true
	case []uint32:
		return widen(in), true
	default:
		return nil, false
	}
}

func widen[T anyInt](in []T) []int32 {
	out := make([]int32, len(in))
	for i, v := range in {
		out[i] = int32(v)
	}

	return out
}

// SequenceLen returns the element count of a decoded sequence, or -1 when
// the value is not one of the sequence types a pipeline can produce.
func SequenceLen(v any) int {
	switch s := v.(type) {
	case []int8:
		return len(s)
	case []int16:
		return len(s)
	case []int32:
		return len(s)
	case []uint8:
		return len(s)
	case []uint16:
		return len(s)
	case []uint32:
		return len(s)
	case []float32:
		return len(s)
	case []float64:
		return len(s)
	case *StringSequence:
		return s.Len()
	default:
		return -1
	}
}
