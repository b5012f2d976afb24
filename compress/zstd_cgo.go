//go:build cgo && gozstd

package compress

import (
	"fmt"
	"slices"

	"github.com/valyala/gozstd"
)

// Compress appends the Zstandard frame of src to dst using the C library.
func (c ZstdCompressor) Compress(dst, src []byte) ([]byte, error) {
	if len(src) == 0 {
		return dst, nil
	}

	return gozstd.CompressLevel(dst, src, zstdLevel), nil
}

// Decompress appends the decoded Zstandard frame src to dst.
func (c ZstdCompressor) Decompress(dst, src []byte, rawSize int) ([]byte, error) {
	if len(src) == 0 {
		return dst, nil
	}
	if rawSize > 0 {
		dst = slices.Grow(dst, rawSize)
	}

	out, err := gozstd.Decompress(dst, src)
	if err != nil {
		return dst, fmt.Errorf("zstd decompression failed: %w", err)
	}

	return out, nil
}
