package compress

import (
	"fmt"

	"github.com/raul-gherman/fix44-forge-helpers/errs"
	"github.com/raul-gherman/fix44-forge-helpers/format"
)

// Compressor compresses one sealed journal segment payload.
//
// A payload is a run of framed FIX messages. FIX text repeats the same tags,
// header values and timestamp prefixes in every message, so segments compress well.
type Compressor interface {
	// Compress appends the compressed form of src to dst and returns the extended slice.
	//
	// Memory management:
	//   - dst may be nil; it is grown as needed, and reusing it avoids allocations
	//   - src is not modified
	//   - An empty src appends nothing
	Compress(dst, src []byte) ([]byte, error)
}

// Decompressor restores a payload produced by the matching Compressor.
//
// Thread Safety: Decompressor implementations are safe for concurrent use.
type Decompressor interface {
	// Decompress appends the decompressed form of src to dst.
	//
	// rawSize is the decompressed length recorded when the payload was sealed. It
	// sizes the output up front; pass 0 when unknown. The caller compares the
	// result length with rawSize; codecs do not.
	//
	// Error conditions:
	//   - Returns error if src is corrupted or was compressed by another algorithm
	Decompress(dst, src []byte, rawSize int) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor

	// Type returns the algorithm identifier stored in segment headers.
	Type() format.CompressionType
}

// CompressionStats accumulates payload sizes for one algorithm.
type CompressionStats struct {
	// Algorithm identifies the compression algorithm used
	Algorithm format.CompressionType `json:"algorithm"`

	// OriginalSize is the total size of the payloads before compression
	OriginalSize int64 `json:"original_size"`

	// CompressedSize is the total size of the payloads after compression
	CompressedSize int64 `json:"compressed_size"`
}

// Add records one compressed payload.
func (s *CompressionStats) Add(original, compressed int) {
	s.OriginalSize += int64(original)
	s.CompressedSize += int64(compressed)
}

// CompressionRatio returns the compression ratio (compressed size / original size).
//
// Values less than 1.0 indicate successful compression.
//
// Returns:
//   - float64: Compression ratio (0.0 if original size is zero)
func (s CompressionStats) CompressionRatio() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// SpaceSavings returns the space savings as a percentage (0-100%).
//
// Returns:
//   - float64: Space savings percentage (0-100)
func (s CompressionStats) SpaceSavings() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return (1.0 - s.CompressionRatio()) * 100.0
}

// CreateCodec is a factory function that creates a Codec based on the specified compression type.
//
// Parameters:
//   - compressionType: Type of compression (None, Zstd, S2, or LZ4)
//   - target: Description of target usage (for error messages)
//
// Returns:
//   - Codec: Codec instance for the specified type
//   - error: errs.ErrInvalidCompression for an unknown type
func CreateCodec(compressionType format.CompressionType, target string) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCompressor(), nil
	case format.CompressionZstd:
		return NewZstdCompressor(), nil
	case format.CompressionS2:
		return NewS2Compressor(), nil
	case format.CompressionLZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("%w: %s for %s", errs.ErrInvalidCompression, compressionType, target)
	}
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves a built-in Codec for the specified compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %s", errs.ErrInvalidCompression, compressionType)
}
