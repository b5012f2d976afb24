package compress

import "github.com/raul-gherman/fix44-forge-helpers/format"

// ZstdCompressor provides Zstandard compression for journal segments.
//
// Zstandard gives the best ratio on FIX text, where every message repeats the
// same header tags, CompIDs and SendingTime prefixes. Prefer it for journals that
// are kept for a whole trading session and read back rarely.
//
// The backend is selected at build time; see the package documentation.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// zstdLevel is the compression level used by both backends.
const zstdLevel = 3

// NewZstdCompressor creates a new Zstd codec with default settings.
//
// Example:
//
//	codec := NewZstdCompressor()
//	packed, err := codec.Compress(nil, payload)
//	if err != nil {
//		return err
//	}
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}

// Type returns format.CompressionZstd.
func (c ZstdCompressor) Type() format.CompressionType {
	return format.CompressionZstd
}
