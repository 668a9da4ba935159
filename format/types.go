package format

type (
	DataType        uint8
	EncodingKind    string
	Presence        uint8
	CompressionType uint8
)

// Data type codes as they appear on the wire in ByteArray descriptors.
const (
	TypeInt8    DataType = 1  // TypeInt8 represents signed 8-bit integers.
	TypeInt16   DataType = 2  // TypeInt16 represents signed 16-bit integers.
	TypeInt32   DataType = 3  // TypeInt32 represents signed 32-bit integers.
	TypeUint8   DataType = 4  // TypeUint8 represents unsigned 8-bit integers.
	TypeUint16  DataType = 5  // TypeUint16 represents unsigned 16-bit integers.
	TypeUint32  DataType = 6  // TypeUint32 represents unsigned 32-bit integers.
	TypeFloat32 DataType = 32 // TypeFloat32 represents IEEE-754 single precision.
	TypeFloat64 DataType = 33 // TypeFloat64 represents IEEE-754 double precision.
)

// Encoding kinds as they appear in the "kind" field of encoding descriptors.
const (
	KindByteArray            EncodingKind = "ByteArray"
	KindFixedPoint           EncodingKind = "FixedPoint"
	KindIntervalQuantization EncodingKind = "IntervalQuantization"
	KindRunLength            EncodingKind = "RunLength"
	KindDelta                EncodingKind = "Delta"
	KindIntegerPacking       EncodingKind = "IntegerPacking"
	KindStringArray          EncodingKind = "StringArray"
)

// Presence mask bytes. Any non-zero byte marks a row as not present; the
// two non-zero kinds differ only in how an absent cell renders.
const (
	PresencePresent      Presence = 0 // PresencePresent marks a row with a concrete value.
	PresenceNotSpecified Presence = 1 // PresenceNotSpecified renders as ".".
	PresenceUnknown      Presence = 2 // PresenceUnknown renders as "?".
)

// Container compression formats recognized by the compress package.
const (
	CompressionNone CompressionType = 0x1 // CompressionNone represents an uncompressed container.
	CompressionGzip CompressionType = 0x2 // CompressionGzip represents a gzip member stream.
	CompressionZstd CompressionType = 0x3 // CompressionZstd represents a Zstandard frame.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents an LZ4 frame.
	CompressionS2   CompressionType = 0x5 // CompressionS2 represents an S2 block payload.
)

func (t DataType) String() string {
	switch t {
	case TypeInt8:
		return "Int8"
	case TypeInt16:
		return "Int16"
	case TypeInt32:
		return "Int32"
	case TypeUint8:
		return "Uint8"
	case TypeUint16:
		return "Uint16"
	case TypeUint32:
		return "Uint32"
	case TypeFloat32:
		return "Float32"
	case TypeFloat64:
		return "Float64"
	default:
		return "Unknown"
	}
}

// Size returns the width in bytes of a single element of this type,
// or 0 if the type code is not one of the eight supported widths.
func (t DataType) Size() int {
	switch t {
	case TypeInt8, TypeUint8:
		return 1
	case TypeInt16, TypeUint16:
		return 2
	case TypeInt32, TypeUint32, TypeFloat32:
		return 4
	case TypeFloat64:
		return 8
	default:
		return 0
	}
}

// Valid reports whether the type code is one of the eight supported widths.
func (t DataType) Valid() bool {
	return t.Size() != 0
}

// IsFloat reports whether the type is a floating-point width.
func (t DataType) IsFloat() bool {
	return t == TypeFloat32 || t == TypeFloat64
}

// IsSigned reports whether the type is a signed integer width.
func (t DataType) IsSigned() bool {
	return t == TypeInt8 || t == TypeInt16 || t == TypeInt32
}

func (k EncodingKind) String() string {
	return string(k)
}

// String renders the presence the way an absent cell appears in CIF text:
// "." for a not-specified value, "?" for an unknown value. A present row
// renders as the empty string since the cell carries its own value.
// Mask bytes above 2 are undefined on the wire and render conservatively
// as not-specified.
func (p Presence) String() string {
	switch p {
	case PresencePresent:
		return ""
	case PresenceUnknown:
		return "?"
	default:
		return "."
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionGzip:
		return "Gzip"
	case CompressionZstd:
		return "Zstd"
	case CompressionLZ4:
		return "LZ4"
	case CompressionS2:
		return "S2"
	default:
		return "Unknown"
	}
}
