// Package container deserializes the MessagePack outer container into the
// encoded tree consumed by the decoding pipeline.
package container

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hashicorp/go-msgpack/v2/codec"

	"github.com/arloliu/bincif/errs"
	"github.com/arloliu/bincif/format"
)

// handle is shared across decodes; the MsgpackHandle is safe for
// concurrent use once configured.
var handle = newHandle()

func newHandle() *codec.MsgpackHandle {
	h := &codec.MsgpackHandle{}
	h.RawToString = true
	h.WriteExt = true

	return h
}

// Decode deserializes a MessagePack container into its encoded tree and
// validates the format version.
//
// Parameters:
//   - data: Uncompressed MessagePack payload
//
// Returns:
//   - *format.EncodedFile: The encoded tree, ready for view construction
//   - error: errs.ErrInvalidContainer for undecodable payloads,
//     errs.ErrIncompatibleVersion for versions other than 0.x with minor
//     version 3 or later
func Decode(data []byte) (*format.EncodedFile, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty payload", errs.ErrInvalidContainer)
	}

	var file format.EncodedFile
	dec := codec.NewDecoderBytes(data, handle)
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrInvalidContainer, err)
	}

	if !IsVersionCompatible(file.Version) {
		return nil, fmt.Errorf("%w: %q", errs.ErrIncompatibleVersion, file.Version)
	}

	return &file, nil
}

// Encode serializes an encoded tree back into its MessagePack container
// form. Provided for round-trip tooling and tests; the decoder side never
// calls it.
func Encode(file *format.EncodedFile) ([]byte, error) {
	var out []byte
	enc := codec.NewEncoderBytes(&out, handle)
	if err := enc.Encode(file); err != nil {
		return nil, err
	}

	return out, nil
}

// IsVersionCompatible reports whether a container version is supported:
// major version 0 with minor version 3 or later (0.3.x, 0.4.x, ...).
func IsVersionCompatible(version string) bool {
	parts := strings.SplitN(version, ".", 3)
	if len(parts) < 2 {
		return false
	}

	major, err := strconv.Atoi(parts[0])
	if err != nil {
		return false
	}
	minor, err := strconv.Atoi(parts[1])
	if err != nil {
		return false
	}

	return major == 0 && minor >= 3
}
