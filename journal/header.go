package journal

import (
	"fmt"

	"github.com/raul-gherman/fix44-forge-helpers/errs"
	"github.com/raul-gherman/fix44-forge-helpers/format"
	"github.com/raul-gherman/fix44-forge-helpers/internal/endian"
)

const (
	// HeaderSize is the fixed size of a serialized SegmentHeader.
	HeaderSize = 32

	// frameHeaderSize is the [seq u32][len u32] prefix of every record.
	frameHeaderSize = 8

	// Bit masks of SegmentHeader.Options
	EndiannessMask   = 0x0002 // Mask for endianness bit (bit 1), 0 little, 1 big
	ReservedBitsMask = 0x000D // Bits 0, 2 and 3 are reserved and must be zero
	MagicNumberMask  = 0xFFF0 // Mask for magic number (bits 4-15)

	// MagicSegmentV1Opt identifies version 1 of the segment format.
	MagicSegmentV1Opt = 0xF440
)

// SegmentHeader describes one sealed segment.
//
// Serialized layout (32 bytes):
//
//	 0-1   Options      magic number and endianness flag, always little-endian
//	 2     Compression  format.CompressionType of the payload
//	 3     reserved
//	 4-7   Count        number of records
//	 8-11  FirstSeq     MsgSeqNum of the first record
//	12-15  LastSeq      MsgSeqNum of the last record
//	16-19  RawSize      payload size before compression
//	20-23  PackedSize   payload size after compression
//	24-31  Digest       xxHash64 of the uncompressed payload
//
// Every field after Options uses the byte order selected by the endianness flag.
type SegmentHeader struct {
	Options     uint16
	Compression format.CompressionType
	Count       uint32
	FirstSeq    uint32
	LastSeq     uint32
	RawSize     uint32
	PackedSize  uint32
	Digest      uint64
}

func newSegmentHeader(engine endian.EndianEngine, compression format.CompressionType) SegmentHeader {
	h := SegmentHeader{Options: MagicSegmentV1Opt, Compression: compression}
	if endian.IsBigEndian(engine) {
		h.Options |= EndiannessMask
	}

	return h
}

// IsBigEndian returns whether the segment is big-endian.
func (h SegmentHeader) IsBigEndian() bool {
	return h.Options&EndiannessMask != 0
}

// Engine returns the byte order of the segment.
func (h SegmentHeader) Engine() endian.EndianEngine {
	if h.IsBigEndian() {
		return endian.GetBigEndianEngine()
	}

	return endian.GetLittleEndianEngine()
}

// Validate checks the magic number, the reserved bits and the compression type.
func (h SegmentHeader) Validate() error {
	if h.Options&MagicNumberMask != MagicSegmentV1Opt {
		return fmt.Errorf("%w: magic 0x%04X", errs.ErrInvalidHeader, h.Options&MagicNumberMask)
	}
	if h.Options&ReservedBitsMask != 0 {
		return fmt.Errorf("%w: reserved bits set", errs.ErrInvalidHeader)
	}
	if !h.Compression.Valid() {
		return fmt.Errorf("%w: compression %d", errs.ErrInvalidHeader, h.Compression)
	}
	if h.Count == 0 || h.FirstSeq > h.LastSeq {
		return fmt.Errorf("%w: sequence range %d..%d with %d records", errs.ErrInvalidHeader, h.FirstSeq, h.LastSeq, h.Count)
	}

	return nil
}

// AppendTo appends the serialized header to dst.
func (h SegmentHeader) AppendTo(dst []byte) []byte {
	engine := h.Engine()

	dst = append(dst, byte(h.Options), byte(h.Options>>8), byte(h.Compression), 0)
	dst = engine.AppendUint32(dst, h.Count)
	dst = engine.AppendUint32(dst, h.FirstSeq)
	dst = engine.AppendUint32(dst, h.LastSeq)
	dst = engine.AppendUint32(dst, h.RawSize)
	dst = engine.AppendUint32(dst, h.PackedSize)

	return engine.AppendUint64(dst, h.Digest)
}

// Parse parses the header from a byte slice.
//
// Parameters:
//   - data: Byte slice containing the header (at least HeaderSize bytes)
//
// Returns:
//   - error: errs.ErrInvalidHeader for short input or a failed Validate
func (h *SegmentHeader) Parse(data []byte) error {
	if len(data) < HeaderSize {
		return fmt.Errorf("%w: %d bytes", errs.ErrInvalidHeader, len(data))
	}

	// Options is always little-endian, it selects the order of everything else
	h.Options = uint16(data[0]) | uint16(data[1])<<8
	h.Compression = format.CompressionType(data[2])

	engine := h.Engine()
	h.Count = engine.Uint32(data[4:8])
	h.FirstSeq = engine.Uint32(data[8:12])
	h.LastSeq = engine.Uint32(data[12:16])
	h.RawSize = engine.Uint32(data[16:20])
	h.PackedSize = engine.Uint32(data[20:24])
	h.Digest = engine.Uint64(data[24:32])

	return h.Validate()
}
