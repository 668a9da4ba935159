package bincif

import (
	"strconv"

	"github.com/arloliu/bincif/format"
	"github.com/arloliu/bincif/internal/parse"
)

// numericColumn backs every row with a float64. bitSize is 32 or 64 for
// float-typed stores and 0 for integer-typed ones; it only affects how
// values render as strings.
type numericColumn struct {
	name    string
	vals    []float64
	bitSize int
}

func (c *numericColumn) Name() string    { return c.name }
func (c *numericColumn) IsDefined() bool { return true }
func (c *numericColumn) RowCount() int   { return len(c.vals) }

func (c *numericColumn) StringAt(row int) (string, bool) {
	return c.render(c.vals[row]), true
}

func (c *numericColumn) IntAt(row int) int {
	return int(c.vals[row])
}

func (c *numericColumn) FloatAt(row int) float64 {
	return c.vals[row]
}

func (c *numericColumn) EqualsString(row int, v string) bool {
	return c.vals[row] == parse.Float(v, 0, len(v))
}

func (c *numericColumn) ValuesEqual(rowA, rowB int) bool {
	return c.vals[rowA] == c.vals[rowB]
}

func (c *numericColumn) PresenceAt(int) format.Presence {
	return format.PresencePresent
}

func (c *numericColumn) render(v float64) string {
	if c.bitSize == 0 {
		return strconv.FormatInt(int64(v), 10)
	}

	return strconv.FormatFloat(v, 'g', -1, c.bitSize)
}

// maskedNumericColumn adds a per-row presence byte. Absent rows read as 0
// and equal only the empty string; ValuesEqual stays on the backing store
// alone.
type maskedNumericColumn struct {
	numericColumn
	mask []uint8
}

func (c *maskedNumericColumn) StringAt(row int) (string, bool) {
	if c.mask[row] != 0 {
		return "", false
	}

	return c.render(c.vals[row]), true
}

func (c *maskedNumericColumn) IntAt(row int) int {
	if c.mask[row] != 0 {
		return 0
	}

	return int(c.vals[row])
}

func (c *maskedNumericColumn) FloatAt(row int) float64 {
	if c.mask[row] != 0 {
		return 0
	}

	return c.vals[row]
}

func (c *maskedNumericColumn) EqualsString(row int, v string) bool {
	if c.mask[row] != 0 {
		return v == ""
	}

	return c.vals[row] == parse.Float(v, 0, len(v))
}

func (c *maskedNumericColumn) PresenceAt(row int) format.Presence {
	return format.Presence(c.mask[row])
}
