package bincif

import (
	"encoding/binary"

	"github.com/arloliu/bincif/format"
)

// Test fixtures built directly on the encoded tree records: payloads are
// little-endian on the wire, matching what an encoder would emit.

func int32Data(values ...int32) format.EncodedData {
	data := make([]byte, 0, len(values)*4)
	for _, v := range values {
		data = binary.LittleEndian.AppendUint32(data, uint32(v))
	}

	return format.EncodedData{
		Encoding: []format.Encoding{{Kind: format.KindByteArray, Type: format.TypeInt32}},
		Data:     data,
	}
}

func fixedPointData(factor float64, values ...int32) format.EncodedData {
	ed := int32Data(values...)
	ed.Encoding = append([]format.Encoding{
		{Kind: format.KindFixedPoint, Factor: factor, SrcType: format.TypeFloat32},
	}, ed.Encoding...)

	return ed
}

func maskData(bytes ...byte) *format.EncodedData {
	return &format.EncodedData{
		Encoding: []format.Encoding{{Kind: format.KindByteArray, Type: format.TypeUint8}},
		Data:     bytes,
	}
}

// stringPoolData encodes rows over the pool "foobar" with entries
// "foo" (index 0) and "bar" (index 1); a negative index marks the row
// absent.
func stringPoolData(indices ...int8) format.EncodedData {
	data := make([]byte, len(indices))
	for i, idx := range indices {
		data[i] = byte(idx)
	}

	return format.EncodedData{
		Encoding: []format.Encoding{{
			Kind:       format.KindStringArray,
			StringData: "foobar",
			Offsets:    []byte{0, 3, 6},
			OffsetEncoding: []format.Encoding{
				{Kind: format.KindByteArray, Type: format.TypeUint8},
			},
			DataEncoding: []format.Encoding{
				{Kind: format.KindByteArray, Type: format.TypeInt8},
			},
		}},
		Data: data,
	}
}

func testEncodedFile() *format.EncodedFile {
	return &format.EncodedFile{
		Version: "0.3.0",
		Encoder: "bincif-test",
		DataBlocks: []format.EncodedDataBlock{
			{
				Header: "1ABC",
				Categories: []format.EncodedCategory{
					{
						Name:     "atom_site",
						RowCount: 3,
						Columns: []format.EncodedColumn{
							{Name: "id", Data: int32Data(1, 2, 3)},
							{Name: "occupancy", Data: fixedPointData(100, 100, 50, 25)},
							{Name: "label", Data: stringPoolData(0, 1, 0)},
							{Name: "charge", Data: int32Data(0, 0, 5), Mask: maskData(0, 1, 2)},
						},
					},
					{
						Name:     "cell",
						RowCount: 1,
						Columns: []format.EncodedColumn{
							{Name: "length_a", Data: fixedPointData(1000, 52914)},
						},
					},
				},
			},
			{
				Header: "2DEF",
				Categories: []format.EncodedCategory{
					{Name: "entity", RowCount: 0},
				},
			},
		},
	}
}
