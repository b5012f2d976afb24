package compress

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/pierrec/lz4/v4"

	"github.com/raul-gherman/fix44-forge-helpers/format"
)

// lz4CompressorPool pools lz4.Compressor instances for reuse.
// The lz4.Compressor maintains a hash table that benefits from reuse.
var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// lz4MaxSize bounds the adaptive output buffer when the raw size is unknown.
const lz4MaxSize = 128 * 1024 * 1024

type LZ4Compressor struct{}

var _ Codec = (*LZ4Compressor)(nil)

// NewLZ4Compressor creates a new LZ4 codec.
func NewLZ4Compressor() LZ4Compressor {
	return LZ4Compressor{}
}

// Type returns format.CompressionLZ4.
func (c LZ4Compressor) Type() format.CompressionType {
	return format.CompressionLZ4
}

// Compress appends the LZ4 block encoding of src to dst.
//
// Uses a pooled lz4.Compressor for better performance.
func (c LZ4Compressor) Compress(dst, src []byte) ([]byte, error) {
	if len(src) == 0 {
		return dst, nil
	}

	bound := lz4.CompressBlockBound(len(src))
	start := len(dst)
	dst = slices.Grow(dst, bound)

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	n, err := lc.CompressBlock(src, dst[start:start+bound])
	if err != nil {
		return dst[:start], fmt.Errorf("lz4 compression failed: %w", err)
	}

	return dst[:start+n], nil
}

// Decompress appends the decoded LZ4 block src to dst.
//
// LZ4 blocks do not record their decoded size. With rawSize > 0 the output is
// sized exactly. Otherwise an adaptive strategy is used:
//  1. Start with a buffer 4x the compressed size
//  2. On ErrInvalidSourceShortBuffer, double the buffer size (up to 128MB)
//  3. Return the error if the limit is reached (corrupted data)
func (c LZ4Compressor) Decompress(dst, src []byte, rawSize int) ([]byte, error) {
	if len(src) == 0 {
		return dst, nil
	}

	start := len(dst)
	if rawSize > 0 {
		dst = slices.Grow(dst, rawSize)
		n, err := lz4.UncompressBlock(src, dst[start:start+rawSize])
		if err != nil {
			return dst[:start], fmt.Errorf("lz4 decompression failed: %w", err)
		}

		return dst[:start+n], nil
	}

	for bufSize := len(src) * 4; bufSize <= lz4MaxSize; bufSize *= 2 {
		dst = slices.Grow(dst, bufSize)
		n, err := lz4.UncompressBlock(src, dst[start:start+bufSize])
		if err == nil {
			return dst[:start+n], nil
		}
		if !errors.Is(err, lz4.ErrInvalidSourceShortBuffer) {
			return dst[:start], fmt.Errorf("lz4 decompression failed: %w", err)
		}
	}

	return dst[:start], fmt.Errorf("lz4 decompression failed: %w", lz4.ErrInvalidSourceShortBuffer)
}
