package compress

import (
	"errors"
	"fmt"
	"slices"

	"github.com/klauspost/compress/s2"

	"github.com/raul-gherman/fix44-forge-helpers/format"
)

type S2Compressor struct{}

var _ Codec = (*S2Compressor)(nil)

// NewS2Compressor creates a new S2 codec.
func NewS2Compressor() S2Compressor {
	return S2Compressor{}
}

// Type returns format.CompressionS2.
func (c S2Compressor) Type() format.CompressionType {
	return format.CompressionS2
}

// Compress appends the S2 block encoding of src to dst.
func (c S2Compressor) Compress(dst, src []byte) ([]byte, error) {
	if len(src) == 0 {
		return dst, nil
	}

	bound := s2.MaxEncodedLen(len(src))
	if bound < 0 {
		return dst, errors.New("s2 compression failed: source too large")
	}

	start := len(dst)
	dst = slices.Grow(dst, bound)
	enc := s2.Encode(dst[start:start+bound], src)

	return dst[:start+len(enc)], nil
}

// Decompress appends the decoded S2 block src to dst.
// The decoded size is read from the block itself; rawSize is not needed.
func (c S2Compressor) Decompress(dst, src []byte, _ int) ([]byte, error) {
	if len(src) == 0 {
		return dst, nil
	}

	n, err := s2.DecodedLen(src)
	if err != nil {
		return dst, fmt.Errorf("s2 decompression failed: %w", err)
	}

	start := len(dst)
	dst = slices.Grow(dst, n)
	out, err := s2.Decode(dst[start:start+n], src)
	if err != nil {
		return dst[:start], fmt.Errorf("s2 decompression failed: %w", err)
	}

	return dst[:start+len(out)], nil
}
