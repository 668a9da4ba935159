// Package errs defines the sentinel errors shared across the bincif
// decoding pipeline.
//
// All decode failures wrap one of these sentinels with fmt.Errorf("...: %w"),
// so callers can classify failures with errors.Is while still receiving
// contextual detail (category name, encoding kind, expected sizes).
package errs

import "errors"

var (
	// ErrUnsupportedType indicates a byte-array encoding or typed-array
	// request cited a data type code outside the eight supported widths,
	// or a transform's source type is not one it can produce (a non-float
	// type for FixedPoint or IntervalQuantization, a non-integer type for
	// RunLength).
	ErrUnsupportedType = errors.New("unsupported data type")

	// ErrMalformedEncoding indicates a transform's structural precondition
	// failed: run-length output size mismatch, interval quantization with
	// fewer than two steps, integer packing with a short input, or a
	// payload whose length is not a multiple of its element width.
	ErrMalformedEncoding = errors.New("malformed encoding")

	// ErrUnknownEncodingKind indicates the pipeline saw an encoding
	// descriptor whose kind is none of the six supported transforms.
	ErrUnknownEncodingKind = errors.New("unknown encoding kind")

	// ErrUnsupportedCompression indicates the container payload uses a
	// compression format outside the supported set.
	ErrUnsupportedCompression = errors.New("unsupported compression")

	// ErrInvalidContainer indicates the outer MessagePack container could
	// not be deserialized into an encoded file tree.
	ErrInvalidContainer = errors.New("invalid container")

	// ErrIncompatibleVersion indicates the container's format version is
	// not a supported one (major version 0, minor version 3 or later).
	ErrIncompatibleVersion = errors.New("incompatible format version")
)
