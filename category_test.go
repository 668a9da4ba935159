package bincif

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/bincif/errs"
	"github.com/arloliu/bincif/format"
)

func atomSite(t *testing.T) *Category {
	t.Helper()

	file := NewFile(testEncodedFile())
	cat, ok := file.DataBlocks()[0].Category("atom_site")
	require.True(t, ok)

	return cat
}

func TestCategory_Metadata(t *testing.T) {
	cat := atomSite(t)

	require.Equal(t, "atom_site", cat.Name())
	require.Equal(t, 3, cat.RowCount())
	require.Equal(t, 4, cat.ColumnCount())
	require.Equal(t, []string{"id", "occupancy", "label", "charge"}, cat.ColumnNames())
}

func TestCategory_GetColumn_DecodesLazily(t *testing.T) {
	cat := atomSite(t)

	col, err := cat.GetColumn("id")
	require.NoError(t, err)
	require.True(t, col.IsDefined())
	require.Equal(t, "id", col.Name())
	require.Equal(t, 3, col.RowCount())
	require.Equal(t, 2, col.IntAt(1))
}

func TestCategory_GetColumn_CachesMaterializedColumn(t *testing.T) {
	cat := atomSite(t)

	first, err := cat.GetColumn("label")
	require.NoError(t, err)
	second, err := cat.GetColumn("label")
	require.NoError(t, err)
	require.Same(t, first, second)
}

func TestCategory_GetColumn_UnknownName(t *testing.T) {
	cat := atomSite(t)

	col, err := cat.GetColumn("nope")
	require.NoError(t, err)
	require.False(t, col.IsDefined())
	require.Equal(t, 0, col.RowCount())

	s, ok := col.StringAt(0)
	require.False(t, ok)
	require.Empty(t, s)
	require.Equal(t, 0, col.IntAt(0))
	require.Equal(t, 0.0, col.FloatAt(0))
	require.Equal(t, format.PresencePresent, col.PresenceAt(0))
}

func TestCategory_GetColumn_DecodeErrorNamesColumn(t *testing.T) {
	enc := &format.EncodedCategory{
		Name:     "broken",
		RowCount: 1,
		Columns: []format.EncodedColumn{
			{Name: "bad", Data: format.EncodedData{
				Encoding: []format.Encoding{{Kind: "Huffman"}},
				Data:     []byte{1},
			}},
		},
	}

	cat := newCategory(enc)
	_, err := cat.GetColumn("bad")
	require.ErrorIs(t, err, errs.ErrUnknownEncodingKind)
	require.ErrorContains(t, err, "broken")
	require.ErrorContains(t, err, "bad")
}

func TestCategory_GetColumn_RowCountMismatch(t *testing.T) {
	enc := &format.EncodedCategory{
		Name:     "short",
		RowCount: 4,
		Columns:  []format.EncodedColumn{{Name: "v", Data: int32Data(1, 2, 3)}},
	}

	cat := newCategory(enc)
	_, err := cat.GetColumn("v")
	require.ErrorIs(t, err, errs.ErrMalformedEncoding)
}

func TestCategory_GetColumn_MaskDecodeError(t *testing.T) {
	enc := &format.EncodedCategory{
		Name:     "broken",
		RowCount: 1,
		Columns: []format.EncodedColumn{
			{
				Name: "masked",
				Data: int32Data(1),
				Mask: &format.EncodedData{
					Encoding: []format.Encoding{{Kind: format.KindByteArray, Type: format.DataType(99)}},
					Data:     []byte{0},
				},
			},
		},
	}

	cat := newCategory(enc)
	_, err := cat.GetColumn("masked")
	require.ErrorIs(t, err, errs.ErrUnsupportedType)
}
