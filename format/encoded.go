package format

// The encoded tree mirrors the MessagePack container layout one-to-one:
// a file holds data blocks, a block holds categories, a category holds
// columns, and every column payload is a raw byte buffer paired with the
// ordered stack of encodings that produced it. The codec tags match the
// field names used on the wire.

// EncodedFile is the root of an encoded file: format version, the
// identifier of the encoder that produced it, and the ordered data blocks.
type EncodedFile struct {
	Version    string             `codec:"version"`
	Encoder    string             `codec:"encoder"`
	DataBlocks []EncodedDataBlock `codec:"dataBlocks"`
}

// EncodedDataBlock is a named group of categories.
type EncodedDataBlock struct {
	Header     string            `codec:"header"`
	Categories []EncodedCategory `codec:"categories"`
}

// EncodedCategory is a named table: a shared row count and the ordered
// column payloads.
type EncodedCategory struct {
	Name     string          `codec:"name"`
	RowCount int             `codec:"rowCount"`
	Columns  []EncodedColumn `codec:"columns"`
}

// EncodedColumn pairs a column name with its encoded values and an
// optional encoded presence mask. A nil mask means no mask applies; a
// string column can still mark rows absent through negative indices.
type EncodedColumn struct {
	Name string       `codec:"name"`
	Data EncodedData  `codec:"data"`
	Mask *EncodedData `codec:"mask"`
}

// EncodedData is a raw byte buffer together with the encodings that were
// applied to produce it, in application (encode) order. Decoding applies
// the inverse transforms in reverse order.
type EncodedData struct {
	Encoding []Encoding `codec:"encoding"`
	Data     []byte     `codec:"data"`
}

// Encoding is one transform descriptor, discriminated by Kind. Only the
// parameters belonging to the kind are meaningful; the rest stay at their
// zero values, matching the sparse maps used on the wire.
type Encoding struct {
	Kind EncodingKind `codec:"kind"`

	// ByteArray
	Type DataType `codec:"type,omitempty"`

	// FixedPoint, IntervalQuantization, RunLength, Delta
	SrcType DataType `codec:"srcType,omitempty"`

	// FixedPoint
	Factor float64 `codec:"factor,omitempty"`

	// IntervalQuantization
	Min      float64 `codec:"min,omitempty"`
	Max      float64 `codec:"max,omitempty"`
	NumSteps int     `codec:"numSteps,omitempty"`

	// Delta
	Origin int64 `codec:"origin,omitempty"`

	// IntegerPacking
	ByteCount  int  `codec:"byteCount,omitempty"`
	IsUnsigned bool `codec:"isUnsigned,omitempty"`

	// RunLength, IntegerPacking
	SrcSize int `codec:"srcSize,omitempty"`

	// StringArray
	StringData     string     `codec:"stringData,omitempty"`
	Offsets        []byte     `codec:"offsets,omitempty"`
	OffsetEncoding []Encoding `codec:"offsetEncoding,omitempty"`
	DataEncoding   []Encoding `codec:"dataEncoding,omitempty"`
}
