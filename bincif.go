// Package bincif decodes the binary tabular data format used for
// crystallographic and structural data (BinaryCIF).
//
// A file is a tree of data blocks, categories and columns. Every column is
// a typed array compressed by a stack of invertible transforms; this
// package reconstructs the typed arrays and presents them through a
// uniform row/column accessor API that hides whether a column is numeric
// or textual and whether some rows are missing.
//
// # Basic Usage
//
// Decoding a file and reading a column:
//
//	import "github.com/arloliu/bincif"
//
//	file, err := bincif.Parse(payload)
//	if err != nil {
//	    return err
//	}
//
//	block := file.DataBlocks()[0]
//	atoms, _ := block.Category("atom_site")
//	x, err := atoms.GetColumn("Cartn_x")
//	if err != nil {
//	    return err
//	}
//	for row := range atoms.RowCount() {
//	    fmt.Println(x.FloatAt(row))
//	}
//
// Columns decode lazily: constructing a File walks only the block and
// category records, and a column's payload runs through the transform
// pipeline the first time GetColumn is called for its name.
//
// # Package Structure
//
// The container package deserializes the MessagePack container, compress
// handles compressed payloads, encoding implements the transform decoders
// and the pipeline driver, and endian/format hold the byte-order and wire
// type primitives. This package wraps them into the read-only view layer.
package bincif

import (
	"github.com/arloliu/bincif/compress"
	"github.com/arloliu/bincif/container"
)

// Parse decodes a complete file payload into its view form.
//
// The payload may be compressed (gzip, Zstandard or LZ4 are recognized by
// their magic bytes); it is decompressed if needed, deserialized from its
// MessagePack container, and wrapped into a File. Column payloads stay
// encoded until first access.
//
// Parameters:
//   - data: File payload, optionally compressed
//
// Returns:
//   - *File: Decoded file view with ordered data blocks
//   - error: Decompression, container or version errors
func Parse(data []byte) (*File, error) {
	raw, err := compress.DecompressAuto(data)
	if err != nil {
		return nil, err
	}

	tree, err := container.Decode(raw)
	if err != nil {
		return nil, err
	}

	return NewFile(tree), nil
}
