// Package compress provides the codecs used to compress sealed journal segments.
//
// Outbound FIX messages are kept by the journal for resend. Once a segment is
// full it is sealed: the framed messages are compressed as one payload, and the
// algorithm is recorded in the segment header so the payload can be restored later.
//
// Supported algorithms:
//   - None: No compression (fastest, largest)
//   - Zstd: Best ratio on FIX text, moderate speed
//   - S2: Balanced compression and speed
//   - LZ4: Fastest decompression, the usual choice for resend lookups
//
// # Interfaces
//
//	type Compressor interface {
//	    Compress(dst, src []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(dst, src []byte, rawSize int) ([]byte, error)
//	}
//
// Both append to dst, so a caller can reuse one buffer across segments.
//
// # Zstandard Backends
//
// Two Zstandard backends exist. The default is the pure Go klauspost/compress
// implementation. Building with cgo and the gozstd tag switches to valyala/gozstd,
// which wraps the reference C library:
//
//	go build -tags gozstd ./...
//
// Both produce standard Zstandard frames, so segments written by one are readable
// by the other.
//
// # Thread Safety
//
// All codec implementations are stateless values and safe for concurrent use.
// Encoders and decoders are drawn from sync.Pools internally.
//
// # Example
//
//	codec, err := compress.GetCodec(format.CompressionLZ4)
//	if err != nil {
//	    return err
//	}
//	packed, err := codec.Compress(nil, payload)
//	...
//	raw, err := codec.Decompress(nil, packed, len(payload))
package compress
