package compress

import "github.com/raul-gherman/fix44-forge-helpers/format"

// NoOpCompressor stores payloads unchanged.
//
// Useful when the journal lives on compressed storage already, or when segment
// sealing must cost no CPU.
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

// NewNoOpCompressor creates a new no-operation codec.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Type returns format.CompressionNone.
func (c NoOpCompressor) Type() format.CompressionType {
	return format.CompressionNone
}

// Compress appends src to dst unchanged.
func (c NoOpCompressor) Compress(dst, src []byte) ([]byte, error) {
	return append(dst, src...), nil
}

// Decompress appends src to dst unchanged.
func (c NoOpCompressor) Decompress(dst, src []byte, _ int) ([]byte, error) {
	return append(dst, src...), nil
}
