package encoding

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/bincif/errs"
	"github.com/arloliu/bincif/format"
)

func int32Bytes(values ...int32) []byte {
	out := make([]byte, 0, len(values)*4)
	for _, v := range values {
		out = binary.LittleEndian.AppendUint32(out, uint32(v))
	}

	return out
}

func TestDecode_SingleByteArray(t *testing.T) {
	ed := format.EncodedData{
		Encoding: []format.Encoding{{Kind: format.KindByteArray, Type: format.TypeInt32}},
		Data:     int32Bytes(1, -2, 3),
	}

	got, err := Decode(ed)
	require.NoError(t, err)
	require.Equal(t, []int32{1, -2, 3}, got)
}

func TestDecode_StackedTransforms(t *testing.T) {
	// Encode order: Delta over the original sequence, the differences
	// packed into Int8, the narrow ints serialized. Decoding inverts the
	// stack in reverse.
	ed := format.EncodedData{
		Encoding: []format.Encoding{
			{Kind: format.KindDelta, Origin: 100, SrcType: format.TypeInt32},
			{Kind: format.KindIntegerPacking, ByteCount: 1, IsUnsigned: false, SrcSize: 4},
			{Kind: format.KindByteArray, Type: format.TypeInt8},
		},
		Data: []byte{0x00, 0x01, 0x02, 0x03},
	}

	got, err := Decode(ed)
	require.NoError(t, err)
	require.Equal(t, []int32{100, 101, 103, 106}, got)
}

func TestDecode_RunLengthOverByteArray(t *testing.T) {
	ed := format.EncodedData{
		Encoding: []format.Encoding{
			{Kind: format.KindRunLength, SrcType: format.TypeInt32, SrcSize: 5},
			{Kind: format.KindByteArray, Type: format.TypeInt32},
		},
		Data: int32Bytes(7, 3, 2, 2),
	}

	got, err := Decode(ed)
	require.NoError(t, err)
	require.Equal(t, []int32{7, 7, 7, 2, 2}, got)
}

func TestDecode_FixedPointOverByteArray(t *testing.T) {
	ed := format.EncodedData{
		Encoding: []format.Encoding{
			{Kind: format.KindFixedPoint, Factor: 1000, SrcType: format.TypeFloat32},
			{Kind: format.KindByteArray, Type: format.TypeInt32},
		},
		Data: int32Bytes(1500, 2500, 3140),
	}

	got, err := Decode(ed)
	require.NoError(t, err)

	vals, ok := got.([]float32)
	require.True(t, ok)
	require.InDelta(t, 1.5, vals[0], 1e-6)
	require.InDelta(t, 2.5, vals[1], 1e-6)
	require.InDelta(t, 3.14, vals[2], 1e-6)
}

func TestDecode_UnknownEncodingKind(t *testing.T) {
	ed := format.EncodedData{
		Encoding: []format.Encoding{{Kind: "Huffman"}},
		Data:     []byte{1},
	}

	_, err := Decode(ed)
	require.ErrorIs(t, err, errs.ErrUnknownEncodingKind)
	require.ErrorContains(t, err, "Huffman")
}

func TestDecode_ByteArrayNotAtBottom(t *testing.T) {
	// A second ByteArray sees a typed sequence instead of raw bytes.
	ed := format.EncodedData{
		Encoding: []format.Encoding{
			{Kind: format.KindByteArray, Type: format.TypeInt32},
			{Kind: format.KindByteArray, Type: format.TypeInt16},
		},
		Data: []byte{1, 2, 3, 4},
	}

	_, err := Decode(ed)
	require.ErrorIs(t, err, errs.ErrMalformedEncoding)
}

func TestDecode_EmptyStackReturnsRawBytes(t *testing.T) {
	got, err := Decode(format.EncodedData{Data: []byte{1, 2}})
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2}, got)
}

func TestDecode_Deterministic(t *testing.T) {
	ed := format.EncodedData{
		Encoding: []format.Encoding{
			{Kind: format.KindDelta, Origin: 10, SrcType: format.TypeInt32},
			{Kind: format.KindByteArray, Type: format.TypeInt32},
		},
		Data: int32Bytes(1, 2, 3, -1),
	}

	first, err := Decode(ed)
	require.NoError(t, err)
	second, err := Decode(ed)
	require.NoError(t, err)
	require.Equal(t, []int32{11, 13, 16, 15}, first)
	require.Equal(t, first, second)
}
