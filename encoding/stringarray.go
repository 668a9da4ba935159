package encoding

import (
	"fmt"

	"github.com/arloliu/bincif/errs"
	"github.com/arloliu/bincif/format"
)

// StringSequence is the decoded form of a StringArray column: one string
// per row plus a per-row present flag. An absent row (negative index on
// the wire) holds the empty string with Present false.
//
// Repeated indices share the same string value: substrings are interned
// per decode, so equal rows alias one backing string.
type StringSequence struct {
	Values  []string
	Present []bool
}

// Len returns the number of rows in the sequence.
func (s *StringSequence) Len() int {
	return len(s.Values)
}

// DecodeStringArray inverts a string-array encoding. The raw payload
// carries the per-row index sequence; the descriptor carries the shared
// character pool, the offset table payload, and the encoding stacks for
// both.
//
// The offset table o[0..k] is decoded first, then the index sequence. Row
// r with index i >= 0 receives the substring stringData[o[i]:o[i+1]]; a
// negative index marks the row absent.
//
// Parameters:
//   - data: Raw bytes of the encoded index sequence
//   - enc: The StringArray descriptor holding stringData, offsets and
//     both encoding stacks
//
// Returns:
//   - *StringSequence: One entry per index value
//   - error: A pipeline error from either nested stack, or
//     errs.ErrMalformedEncoding when an index or offset falls outside the
//     pool
func DecodeStringArray(data []byte, enc format.Encoding) (*StringSequence, error) {
	offVal, err := Decode(format.EncodedData{Encoding: enc.OffsetEncoding, Data: enc.Offsets})
	if err != nil {
		return nil, fmt.Errorf("string array offsets: %w", err)
	}
	offsets, ok := Int32Sequence(offVal)
	if !ok {
		return nil, fmt.Errorf("%w: string array offset table is not an integer sequence",
			errs.ErrMalformedEncoding)
	}

	idxVal, err := Decode(format.EncodedData{Encoding: enc.DataEncoding, Data: data})
	if err != nil {
		return nil, fmt.Errorf("string array indices: %w", err)
	}
	indices, ok := Int32Sequence(idxVal)
	if !ok {
		return nil, fmt.Errorf("%w: string array index sequence is not an integer sequence",
			errs.ErrMalformedEncoding)
	}

	seq := &StringSequence{
		Values:  make([]string, len(indices)),
		Present: make([]bool, len(indices)),
	}

	pool := enc.StringData
	interned := make(map[int32]string)
	for row, idx := range indices {
		if idx < 0 {
			continue
		}
		s, ok := interned[idx]
		if !ok {
			if int(idx)+1 >= len(offsets) {
				return nil, fmt.Errorf("%w: string index %d outside offset table of %d entries",
					errs.ErrMalformedEncoding, idx, len(offsets))
			}
			start, end := int(offsets[idx]), int(offsets[idx+1])
			if start < 0 || end < start || end > len(pool) {
				return nil, fmt.Errorf("%w: string offsets [%d, %d) outside pool of %d bytes",
					errs.ErrMalformedEncoding, start, end, len(pool))
			}
			s = pool[start:end]
			interned[idx] = s
		}
		seq.Values[row] = s
		seq.Present[row] = true
	}

	return seq, nil
}
