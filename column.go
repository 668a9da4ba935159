package bincif

import (
	"fmt"

	"github.com/arloliu/bincif/encoding"
	"github.com/arloliu/bincif/errs"
	"github.com/arloliu/bincif/format"
)

// Column is the uniform row accessor over a decoded column. The interface
// hides whether the backing store is numeric or textual and whether a
// presence mask is attached.
//
// Row indices must lie in [0, RowCount); accessors index the decoded
// buffers directly, so an out-of-range row panics with the usual slice
// bounds failure.
//
// Columns are immutable after construction and safe for concurrent reads.
type Column interface {
	// Name returns the column name.
	Name() string

	// IsDefined reports whether the column was declared in its category.
	// Only the Undefined sentinel reports false.
	IsDefined() bool

	// RowCount returns the number of rows.
	RowCount() int

	// StringAt returns the string form of the value at row. The second
	// result is false only when the row is not present; numeric columns
	// render their value in decimal form.
	StringAt(row int) (string, bool)

	// IntAt returns the value at row as an integer: numeric stores
	// truncate toward zero, string stores parse the raw bytes, absent
	// rows read as 0.
	IntAt(row int) int

	// FloatAt returns the value at row as a float64: numeric stores
	// widen, string stores parse the raw bytes, absent rows read as 0.
	FloatAt(row int) float64

	// EqualsString compares the value at row with v. Numeric stores parse
	// v as a float and compare numerically, with an absent row equal only
	// to the empty string; string stores compare bytes against the stored
	// value without consulting presence.
	EqualsString(row int, v string) bool

	// ValuesEqual compares the stored values at two rows. Presence is not
	// consulted: two absent numeric rows whose backing values happen to
	// match compare equal, so callers may group by stored value.
	ValuesEqual(rowA, rowB int) bool

	// PresenceAt returns the presence of the row: always Present for
	// unmasked numeric columns, the raw mask byte for masked columns, and
	// derived from the decoded string sequence for unmasked string
	// columns.
	PresenceAt(row int) format.Presence
}

// Undefined is the sentinel column returned by GetColumn for names that
// were never declared. It never fails: every accessor returns a neutral
// value and IsDefined reports false.
var Undefined Column = undefinedColumn{}

type undefinedColumn struct{}

func (undefinedColumn) Name() string        { return "" }
func (undefinedColumn) IsDefined() bool     { return false }
func (undefinedColumn) RowCount() int       { return 0 }
func (undefinedColumn) IntAt(int) int       { return 0 }
func (undefinedColumn) FloatAt(int) float64 { return 0 }

func (undefinedColumn) StringAt(int) (string, bool) {
	return "", false
}

func (undefinedColumn) EqualsString(_ int, v string) bool {
	return v == ""
}

func (undefinedColumn) ValuesEqual(int, int) bool {
	return true
}

func (undefinedColumn) PresenceAt(int) format.Presence {
	return format.PresencePresent
}

// newColumn picks the column variant from the decoded shape: a string
// sequence yields a string column, any fixed-width numeric sequence
// yields a numeric column, and a non-nil mask selects the masked variant.
func newColumn(name string, data any, mask []uint8) (Column, error) {
	if seq, ok := data.(*encoding.StringSequence); ok {
		if mask != nil {
			return &maskedStringColumn{stringColumn: stringColumn{name: name, seq: seq}, mask: mask}, nil
		}

		return &stringColumn{name: name, seq: seq}, nil
	}

	vals, bitSize, ok := numericValues(data)
	if !ok {
		return nil, fmt.Errorf("%w: decoded column is neither a numeric nor a string sequence",
			errs.ErrMalformedEncoding)
	}
	if mask != nil {
		return &maskedNumericColumn{numericColumn: numericColumn{name: name, vals: vals, bitSize: bitSize}, mask: mask}, nil
	}

	return &numericColumn{name: name, vals: vals, bitSize: bitSize}, nil
}

// numericValues converts a decoded numeric sequence to the canonical
// float64 backing store. Every integer wire width is at most 32 bits, so
// the conversion is exact; bitSize records the float precision for string
// rendering (0 for integer-backed columns).
func numericValues(v any) (vals []float64, bitSize int, ok bool) {
	switch in := v.(type) {
	case []float64:
		return in, 64, true
	case []float32:
		return widenFloat(in), 32, true
	case []int8:
		return widenFloat(in), 0, true
	case []int16:
		return widenFloat(in), 0, true
	case []int32:
		return widenFloat(in), 0, true
	case []uint8:
		return widenFloat(in), 0, true
	case []uint16:
		return widenFloat(in), 0, true
	case []uint32:
		return widenFloat(in), 0, true
	default:
		return nil, 0, false
	}
}

func widenFloat[T int8 | int16 | int32 | uint8 | uint16 | uint32 | float32](in []T) []float64 {
	out := make([]float64, len(in))
	for i, v := range in {
		out[i] = float64(v)
	}

	return out
}
