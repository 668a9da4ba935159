package encoding

import (
	"fmt"

	"github.com/arloliu/bincif/errs"
	"github.com/arloliu/bincif/format"
)

// Decode reconstructs the original sequence from an encoded payload.
//
// The encoding stack is persisted in application order, so the inverse
// transforms run in reverse: the last descriptor (always a byte-level
// encoding) consumes the raw buffer, and each preceding descriptor is
// inverted on the typed sequence produced so far.
//
// Returns one of the typed slice forms documented in the package comment,
// or *StringSequence for a string stack. Errors from any step propagate
// unchanged; there is no retry or partial recovery.
func Decode(ed format.EncodedData) (any, error) {
	var cur any = ed.Data
	for i := len(ed.Encoding) - 1; i >= 0; i-- {
		next, err := decodeStep(cur, ed.Encoding[i])
		if err != nil {
			return nil, err
		}
		cur = next
	}

	return cur, nil
}

func decodeStep(cur any, enc format.Encoding) (any, error) {
	switch enc.Kind {
	case format.KindByteArray:
		raw, ok := cur.([]byte)
		if !ok {
			return nil, fmt.Errorf("%w: byte array is not at the bottom of the encoding stack",
				errs.ErrMalformedEncoding)
		}

		return Reinterpret(raw, enc.Type)
	case format.KindFixedPoint:
		in, ok := Int32Sequence(cur)
		if !ok {
			return nil, fmt.Errorf("%w: fixed point input is not an integer sequence",
				errs.ErrMalformedEncoding)
		}

		return DecodeFixedPoint(in, enc.Factor, enc.SrcType)
	case format.KindIntervalQuantization:
		in, ok := Int32Sequence(cur)
		if !ok {
			return nil, fmt.Errorf("%w: interval quantization input is not an integer sequence",
				errs.ErrMalformedEncoding)
		}

		return DecodeIntervalQuantization(in, enc.Min, enc.Max, enc.NumSteps, enc.SrcType)
	case format.KindRunLength:
		in, ok := Int32Sequence(cur)
		if !ok {
			return nil, fmt.Errorf("%w: run length input is not an integer sequence",
				errs.ErrMalformedEncoding)
		}

		return DecodeRunLength(in, enc.SrcType, enc.SrcSize)
	case format.KindDelta:
		return DecodeDelta(cur, enc.Origin, enc.SrcType)
	case format.KindIntegerPacking:
		return DecodeIntegerPacking(cur, enc.ByteCount, enc.IsUnsigned, enc.SrcSize)
	case format.KindStringArray:
		raw, ok := cur.([]byte)
		if !ok {
			return nil, fmt.Errorf("%w: string array is not at the bottom of the encoding stack",
				errs.ErrMalformedEncoding)
		}

		return DecodeStringArray(raw, enc)
	default:
		return nil, fmt.Errorf("%w: %q", errs.ErrUnknownEncodingKind, string(enc.Kind))
	}
}
