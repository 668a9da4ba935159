package bincif

import (
	json "github.com/goccy/go-json"

	"github.com/arloliu/bincif/format"
)

// The JSON projection renders every level as a plain record. Category rows
// become mappings from column name to the string form of the value, with
// "." or "?" substituted for absent cells.

// ToJSON renders the file as a plain record.
func (f *File) ToJSON() (map[string]any, error) {
	blocks := make([]map[string]any, 0, len(f.blocks))
	for _, block := range f.blocks {
		m, err := block.ToJSON()
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, m)
	}

	return map[string]any{
		"version":    f.enc.Version,
		"encoder":    f.enc.Encoder,
		"dataBlocks": blocks,
	}, nil
}

// MarshalJSON implements json.Marshaler over the ToJSON record.
func (f *File) MarshalJSON() ([]byte, error) {
	m, err := f.ToJSON()
	if err != nil {
		return nil, err
	}

	return json.Marshal(m)
}

// ToJSON renders the block as a plain record.
func (b *DataBlock) ToJSON() (map[string]any, error) {
	cats := make([]map[string]any, 0, len(b.cats))
	for _, cat := range b.cats {
		m, err := cat.ToJSON()
		if err != nil {
			return nil, err
		}
		cats = append(cats, m)
	}

	return map[string]any{
		"header":     b.enc.Header,
		"categories": cats,
	}, nil
}

// MarshalJSON implements json.Marshaler over the ToJSON record.
func (b *DataBlock) MarshalJSON() ([]byte, error) {
	m, err := b.ToJSON()
	if err != nil {
		return nil, err
	}

	return json.Marshal(m)
}

// ToJSON renders the category as its name and rows. Decoding every column
// is forced; the first decode failure aborts the projection.
func (c *Category) ToJSON() (map[string]any, error) {
	cols := make([]Column, 0, len(c.names))
	for _, name := range c.names {
		col, err := c.GetColumn(name)
		if err != nil {
			return nil, err
		}
		cols = append(cols, col)
	}

	rows := make([]map[string]string, c.enc.RowCount)
	for row := range rows {
		record := make(map[string]string, len(cols))
		for i, col := range cols {
			if p := col.PresenceAt(row); p != format.PresencePresent {
				record[c.names[i]] = p.String()
				continue
			}
			s, ok := col.StringAt(row)
			if !ok {
				s = "."
			}
			record[c.names[i]] = s
		}
		rows[row] = record
	}

	return map[string]any{
		"name": c.enc.Name,
		"rows": rows,
	}, nil
}

// MarshalJSON implements json.Marshaler over the ToJSON record.
func (c *Category) MarshalJSON() ([]byte, error) {
	m, err := c.ToJSON()
	if err != nil {
		return nil, err
	}

	return json.Marshal(m)
}
