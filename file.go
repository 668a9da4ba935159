package bincif

import (
	"github.com/arloliu/bincif/format"
	"github.com/arloliu/bincif/internal/hash"
)

// File is the decoded view of an encoded file: an ordered list of data
// blocks with constant-time lookup by header.
//
// The view is read-only once built; all lookup maps are populated at
// construction and never mutated.
type File struct {
	enc    *format.EncodedFile
	blocks []*DataBlock
	byID   map[uint64]*DataBlock
}

// NewFile wraps an encoded file tree into its view form. Categories are
// materialized as thin wrappers; column payloads stay encoded until first
// access, keeping construction proportional to the block count rather than
// the total payload size.
func NewFile(enc *format.EncodedFile) *File {
	f := &File{
		enc:    enc,
		blocks: make([]*DataBlock, 0, len(enc.DataBlocks)),
		byID:   make(map[uint64]*DataBlock, len(enc.DataBlocks)),
	}
	for i := range enc.DataBlocks {
		block := newDataBlock(&enc.DataBlocks[i])
		f.blocks = append(f.blocks, block)
		f.byID[hash.ID(block.Header())] = block
	}

	return f
}

// Version returns the format version string from the container.
func (f *File) Version() string {
	return f.enc.Version
}

// Encoder returns the identifier of the encoder that produced the file.
func (f *File) Encoder() string {
	return f.enc.Encoder
}

// DataBlocks returns the data blocks in declaration order. The returned
// slice is shared; callers must not modify it.
func (f *File) DataBlocks() []*DataBlock {
	return f.blocks
}

// Block looks up a data block by header.
func (f *File) Block(header string) (*DataBlock, bool) {
	block, ok := f.byID[hash.ID(header)]

	return block, ok
}

// DataBlock is a named group of categories with constant-time lookup by
// category name.
type DataBlock struct {
	enc  *format.EncodedDataBlock
	cats []*Category
	byID map[uint64]*Category
}

func newDataBlock(enc *format.EncodedDataBlock) *DataBlock {
	b := &DataBlock{
		enc:  enc,
		cats: make([]*Category, 0, len(enc.Categories)),
		byID: make(map[uint64]*Category, len(enc.Categories)),
	}
	for i := range enc.Categories {
		cat := newCategory(&enc.Categories[i])
		b.cats = append(b.cats, cat)
		b.byID[hash.ID(cat.Name())] = cat
	}

	return b
}

// Header returns the block header string.
func (b *DataBlock) Header() string {
	return b.enc.Header
}

// Categories returns the categories in declaration order. The returned
// slice is shared; callers must not modify it.
func (b *DataBlock) Categories() []*Category {
	return b.cats
}

// Category looks up a category by name.
func (b *DataBlock) Category(name string) (*Category, bool) {
	cat, ok := b.byID[hash.ID(name)]

	return cat, ok
}
