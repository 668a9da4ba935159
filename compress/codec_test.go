package compress

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/bincif/errs"
	"github.com/arloliu/bincif/format"
)

func testPayload() []byte {
	// Repetitive enough that every codec actually shrinks it.
	return bytes.Repeat([]byte("bincif payload 0123456789 "), 64)
}

func TestGzipCompressor_RoundTrip(t *testing.T) {
	codec := NewGzipCompressor()

	compressed, err := codec.Compress(testPayload())
	require.NoError(t, err)
	require.NotEmpty(t, compressed)
	require.Less(t, len(compressed), len(testPayload()))

	restored, err := codec.Decompress(compressed)
	require.NoError(t, err)
	require.Equal(t, testPayload(), restored)
}

func TestZstdCompressor_RoundTrip(t *testing.T) {
	codec := NewZstdCompressor()

	compressed, err := codec.Compress(testPayload())
	require.NoError(t, err)
	require.Less(t, len(compressed), len(testPayload()))

	restored, err := codec.Decompress(compressed)
	require.NoError(t, err)
	require.Equal(t, testPayload(), restored)
}

func TestLZ4Compressor_RoundTrip(t *testing.T) {
	codec := NewLZ4Compressor()

	compressed, err := codec.Compress(testPayload())
	require.NoError(t, err)

	restored, err := codec.Decompress(compressed)
	require.NoError(t, err)
	require.Equal(t, testPayload(), restored)
}

func TestS2Compressor_RoundTrip(t *testing.T) {
	codec := NewS2Compressor()

	compressed, err := codec.Compress(testPayload())
	require.NoError(t, err)

	restored, err := codec.Decompress(compressed)
	require.NoError(t, err)
	require.Equal(t, testPayload(), restored)
}

func TestNoOpCompressor_Bypass(t *testing.T) {
	codec := NewNoOpCompressor()

	out, err := codec.Compress(testPayload())
	require.NoError(t, err)
	require.Equal(t, testPayload(), out)

	out, err = codec.Decompress(out)
	require.NoError(t, err)
	require.Equal(t, testPayload(), out)
}

func TestSniff_DetectsFrameFormats(t *testing.T) {
	gz, err := NewGzipCompressor().Compress(testPayload())
	require.NoError(t, err)
	require.Equal(t, format.CompressionGzip, Sniff(gz))

	zs, err := NewZstdCompressor().Compress(testPayload())
	require.NoError(t, err)
	require.Equal(t, format.CompressionZstd, Sniff(zs))

	lz, err := NewLZ4Compressor().Compress(testPayload())
	require.NoError(t, err)
	require.Equal(t, format.CompressionLZ4, Sniff(lz))

	require.Equal(t, format.CompressionNone, Sniff([]byte("plain msgpack")))
	require.Equal(t, format.CompressionNone, Sniff(nil))
}

func TestDecompressAuto_RoundTripsEveryFrameFormat(t *testing.T) {
	codecs := []Codec{NewGzipCompressor(), NewZstdCompressor(), NewLZ4Compressor()}
	for _, codec := range codecs {
		compressed, err := codec.Compress(testPayload())
		require.NoError(t, err)

		restored, err := DecompressAuto(compressed)
		require.NoError(t, err)
		require.Equal(t, testPayload(), restored)
	}
}

func TestDecompressAuto_PassesThroughPlainPayloads(t *testing.T) {
	payload := []byte("uncompressed")

	restored, err := DecompressAuto(payload)
	require.NoError(t, err)
	require.Equal(t, payload, restored)
}

func TestGetCodec_UnknownType(t *testing.T) {
	_, err := GetCodec(format.CompressionType(0xEE))
	require.ErrorIs(t, err, errs.ErrUnsupportedCompression)
}

func TestGzipCompressor_CorruptedPayload(t *testing.T) {
	gz, err := NewGzipCompressor().Compress(testPayload())
	require.NoError(t, err)

	gz[len(gz)-1] ^= 0xFF
	_, err = NewGzipCompressor().Decompress(gz)
	require.Error(t, err)
}
