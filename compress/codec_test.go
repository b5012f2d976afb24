package compress

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/raul-gherman/fix44-forge-helpers/errs"
	"github.com/raul-gherman/fix44-forge-helpers/format"
)

var allTypes = []format.CompressionType{
	format.CompressionNone,
	format.CompressionZstd,
	format.CompressionS2,
	format.CompressionLZ4,
}

// fixPayload builds size bytes of framed-looking FIX traffic.
func fixPayload(size int) []byte {
	data := make([]byte, 0, size+128)
	for seq := 1; len(data) < size; seq++ {
		data = fmt.Appendf(data,
			"8=FIX.4.4\x019=0148\x0135=D\x0134=%d\x0149=SENDER\x0156=TARGET\x0152=20240301-12:00:%02d.%03d\x01"+
				"11=0000001Z141Z4\x0155=MSFT\x0154=1\x0138=%d\x0140=2\x0144=%d.25\x01",
			seq, seq%60, seq%1000, 100+seq, 400+seq%7)
	}

	return data[:size]
}

func TestGetCodec_RoundTrip(t *testing.T) {
	for _, ct := range allTypes {
		for _, size := range []int{1, 64, 4096, 65536} {
			t.Run(fmt.Sprintf("%s/%d", ct, size), func(t *testing.T) {
				codec, err := GetCodec(ct)
				require.NoError(t, err)
				require.Equal(t, ct, codec.Type())

				raw := fixPayload(size)
				packed, err := codec.Compress(nil, raw)
				require.NoError(t, err)
				require.NotEmpty(t, packed)

				out, err := codec.Decompress(nil, packed, len(raw))
				require.NoError(t, err)
				require.Equal(t, raw, out)
			})
		}
	}
}

func TestCodec_AppendsToDst(t *testing.T) {
	prefix := []byte("HDR:")
	raw := fixPayload(2048)

	for _, ct := range allTypes {
		t.Run(ct.String(), func(t *testing.T) {
			codec, err := GetCodec(ct)
			require.NoError(t, err)

			packed, err := codec.Compress(append([]byte(nil), prefix...), raw)
			require.NoError(t, err)
			require.Equal(t, prefix, packed[:len(prefix)])

			out, err := codec.Decompress(append([]byte(nil), prefix...), packed[len(prefix):], len(raw))
			require.NoError(t, err)
			require.Equal(t, prefix, out[:len(prefix)])
			require.Equal(t, raw, out[len(prefix):])
		})
	}
}

func TestCodec_EmptyInput(t *testing.T) {
	for _, ct := range allTypes {
		codec, err := GetCodec(ct)
		require.NoError(t, err)

		packed, err := codec.Compress(nil, nil)
		require.NoError(t, err)
		require.Empty(t, packed, ct.String())

		out, err := codec.Decompress(nil, nil, 0)
		require.NoError(t, err)
		require.Empty(t, out, ct.String())
	}
}

func TestCodec_CompressesFIXText(t *testing.T) {
	raw := fixPayload(64 * 1024)
	for _, ct := range allTypes[1:] {
		codec, err := GetCodec(ct)
		require.NoError(t, err)

		packed, err := codec.Compress(nil, raw)
		require.NoError(t, err)
		require.Less(t, len(packed), len(raw)/2, "%s should at least halve FIX text", ct)
	}
}

func TestCodec_CorruptInput(t *testing.T) {
	garbage := []byte{0xFF, 0xFE, 0xFD, 0xFC, 0xFB, 0xFA, 0x00, 0x01, 0x02}
	for _, ct := range allTypes[1:] {
		codec, err := GetCodec(ct)
		require.NoError(t, err)

		_, err = codec.Decompress(nil, garbage, 1024)
		require.Error(t, err, ct.String())
	}
}

func TestLZ4_DecompressUnknownSize(t *testing.T) {
	codec := NewLZ4Compressor()
	raw := fixPayload(100_000)

	packed, err := codec.Compress(nil, raw)
	require.NoError(t, err)

	out, err := codec.Decompress(nil, packed, 0)
	require.NoError(t, err)
	require.Equal(t, raw, out)
}

func TestNoOp_Identity(t *testing.T) {
	codec := NewNoOpCompressor()
	raw := []byte("35=0\x01")

	packed, err := codec.Compress(nil, raw)
	require.NoError(t, err)
	require.Equal(t, raw, packed)
}

func TestCreateCodec(t *testing.T) {
	for _, ct := range allTypes {
		codec, err := CreateCodec(ct, "journal")
		require.NoError(t, err)
		require.Equal(t, ct, codec.Type())
	}

	_, err := CreateCodec(format.CompressionType(0xFF), "journal")
	require.ErrorIs(t, err, errs.ErrInvalidCompression)
	require.Contains(t, err.Error(), "journal")

	_, err = GetCodec(format.CompressionType(0))
	require.ErrorIs(t, err, errs.ErrInvalidCompression)
}

func TestCompressionStats(t *testing.T) {
	var s CompressionStats
	require.Equal(t, 0.0, s.CompressionRatio())
	require.Equal(t, 0.0, s.SpaceSavings())

	s.Add(1000, 250)
	s.Add(1000, 250)
	require.Equal(t, int64(2000), s.OriginalSize)
	require.Equal(t, int64(500), s.CompressedSize)
	require.InDelta(t, 0.25, s.CompressionRatio(), 1e-12)
	require.InDelta(t, 75.0, s.SpaceSavings(), 1e-12)
}
