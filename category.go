package bincif

import (
	"fmt"

	"github.com/arloliu/bincif/encoding"
	"github.com/arloliu/bincif/errs"
	"github.com/arloliu/bincif/format"
	"github.com/arloliu/bincif/internal/hash"
)

// Category is a named table of columns sharing one row count.
//
// Column payloads decode lazily: the encoded form is held until the first
// GetColumn call for a name, and the materialized column is cached so
// repeated calls return the same object.
//
// First-touch materialization is not synchronized; callers sharing a
// category across goroutines must materialize columns beforehand or
// provide their own synchronization. Fully materialized columns are
// immutable and safe for concurrent reads.
type Category struct {
	enc   *format.EncodedCategory
	names []string
	byID  map[uint64]*format.EncodedColumn
	cache map[uint64]Column
}

func newCategory(enc *format.EncodedCategory) *Category {
	c := &Category{
		enc:   enc,
		names: make([]string, 0, len(enc.Columns)),
		byID:  make(map[uint64]*format.EncodedColumn, len(enc.Columns)),
		cache: make(map[uint64]Column, len(enc.Columns)),
	}
	for i := range enc.Columns {
		col := &enc.Columns[i]
		c.names = append(c.names, col.Name)
		c.byID[hash.ID(col.Name)] = col
	}

	return c
}

// Name returns the category name.
func (c *Category) Name() string {
	return c.enc.Name
}

// RowCount returns the number of rows shared by every column.
func (c *Category) RowCount() int {
	return c.enc.RowCount
}

// ColumnCount returns the number of declared columns.
func (c *Category) ColumnCount() int {
	return len(c.names)
}

// ColumnNames returns the column names in declaration order. The returned
// slice is shared; callers must not modify it.
func (c *Category) ColumnNames() []string {
	return c.names
}

// GetColumn returns the column with the given name, decoding its payload
// on first access.
//
// An unknown name is not an error: the Undefined sentinel is returned with
// a nil error, and its IsDefined method reports false. Decode failures
// propagate wrapped with the category and column names.
func (c *Category) GetColumn(name string) (Column, error) {
	id := hash.ID(name)
	if col, ok := c.cache[id]; ok {
		return col, nil
	}

	ec, ok := c.byID[id]
	if !ok {
		return Undefined, nil
	}

	col, err := c.materialize(ec)
	if err != nil {
		return nil, fmt.Errorf("category %q column %q: %w", c.enc.Name, name, err)
	}
	c.cache[id] = col

	return col, nil
}

// materialize runs the transform pipeline for a column's values and, if
// present, its mask, then picks the column variant from the decoded shape.
// Every column of a category carries exactly rowCount values, and so does
// its mask; a mismatch means the payload was encoded against a different
// table shape.
func (c *Category) materialize(ec *format.EncodedColumn) (Column, error) {
	data, err := encoding.Decode(ec.Data)
	if err != nil {
		return nil, err
	}
	if n := encoding.SequenceLen(data); n != c.enc.RowCount {
		return nil, fmt.Errorf("%w: decoded %d values for %d rows",
			errs.ErrMalformedEncoding, n, c.enc.RowCount)
	}

	var mask []uint8
	if ec.Mask != nil {
		maskVal, err := encoding.Decode(*ec.Mask)
		if err != nil {
			return nil, fmt.Errorf("mask: %w", err)
		}
		mask, err = presenceBytes(maskVal)
		if err != nil {
			return nil, err
		}
		if len(mask) != c.enc.RowCount {
			return nil, fmt.Errorf("%w: decoded %d mask bytes for %d rows",
				errs.ErrMalformedEncoding, len(mask), c.enc.RowCount)
		}
	}

	return newColumn(ec.Name, data, mask)
}

// presenceBytes narrows a decoded mask sequence to its per-row bytes. Mask
// stacks usually bottom out in Uint8 but may legally pass through integer
// transforms that widen to Int32.
func presenceBytes(v any) ([]uint8, error) {
	if bytes, ok := v.([]uint8); ok {
		return bytes, nil
	}

	in, ok := encoding.Int32Sequence(v)
	if !ok {
		return nil, fmt.Errorf("%w: presence mask is not an integer sequence", errs.ErrMalformedEncoding)
	}

	out := make([]uint8, len(in))
	for i, b := range in {
		out[i] = uint8(b)
	}

	return out, nil
}
