package bincif

import (
	"github.com/arloliu/bincif/encoding"
	"github.com/arloliu/bincif/format"
	"github.com/arloliu/bincif/internal/parse"
)

// stringColumn backs every row with a decoded string sequence. A row can
// be absent even without a mask: a negative index in the string-array
// stack marks the row absent, and presence derives from the sequence.
type stringColumn struct {
	name string
	seq  *encoding.StringSequence
}

func (c *stringColumn) Name() string    { return c.name }
func (c *stringColumn) IsDefined() bool { return true }
func (c *stringColumn) RowCount() int   { return c.seq.Len() }

func (c *stringColumn) StringAt(row int) (string, bool) {
	return c.seq.Values[row], c.seq.Present[row]
}

func (c *stringColumn) IntAt(row int) int {
	s := c.seq.Values[row]

	return parse.Int(s, 0, len(s))
}

func (c *stringColumn) FloatAt(row int) float64 {
	s := c.seq.Values[row]

	return parse.Float(s, 0, len(s))
}

func (c *stringColumn) EqualsString(row int, v string) bool {
	return c.seq.Values[row] == v
}

func (c *stringColumn) ValuesEqual(rowA, rowB int) bool {
	return c.seq.Values[rowA] == c.seq.Values[rowB]
}

func (c *stringColumn) PresenceAt(row int) format.Presence {
	if c.seq.Present[row] {
		return format.PresencePresent
	}

	return format.PresenceNotSpecified
}

// maskedStringColumn consults the mask for presence; equality stays on
// the stored bytes alone, so absent rows (stored as the empty string)
// byte-compare like any other value.
type maskedStringColumn struct {
	stringColumn
	mask []uint8
}

func (c *maskedStringColumn) IntAt(row int) int {
	if c.mask[row] != 0 {
		return 0
	}

	s := c.seq.Values[row]

	return parse.Int(s, 0, len(s))
}

func (c *maskedStringColumn) FloatAt(row int) float64 {
	if c.mask[row] != 0 {
		return 0
	}

	s := c.seq.Values[row]

	return parse.Float(s, 0, len(s))
}

func (c *maskedStringColumn) StringAt(row int) (string, bool) {
	if c.mask[row] != 0 {
		return "", false
	}

	return c.seq.Values[row], true
}

func (c *maskedStringColumn) PresenceAt(row int) format.Presence {
	return format.Presence(c.mask[row])
}
