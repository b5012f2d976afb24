package journal

import (
	"bytes"
	"fmt"
	"io"
	"iter"
	"sort"
	"sync"

	"github.com/raul-gherman/fix44-forge-helpers/compress"
	"github.com/raul-gherman/fix44-forge-helpers/errs"
	"github.com/raul-gherman/fix44-forge-helpers/internal/endian"
	"github.com/raul-gherman/fix44-forge-helpers/internal/hash"
	"github.com/raul-gherman/fix44-forge-helpers/internal/options"
	"github.com/raul-gherman/fix44-forge-helpers/internal/pool"
)

// segment is a sealed, immutable run of records.
type segment struct {
	header  SegmentHeader
	payload []byte
}

// decode decompresses the payload into dst and verifies size and digest.
func (s *segment) decode(dst []byte) ([]byte, error) {
	codec, err := compress.GetCodec(s.header.Compression)
	if err != nil {
		return nil, err
	}

	raw, err := codec.Decompress(dst, s.payload, int(s.header.RawSize))
	if err != nil {
		return nil, fmt.Errorf("%w: segment %d..%d: %w", errs.ErrCorruptSegment, s.header.FirstSeq, s.header.LastSeq, err)
	}
	if len(raw) != int(s.header.RawSize) {
		return nil, fmt.Errorf("%w: segment %d..%d: %d bytes, header says %d",
			errs.ErrCorruptSegment, s.header.FirstSeq, s.header.LastSeq, len(raw), s.header.RawSize)
	}
	if hash.Digest(raw) != s.header.Digest {
		return nil, fmt.Errorf("%w: segment %d..%d", errs.ErrChecksum, s.header.FirstSeq, s.header.LastSeq)
	}

	return raw, nil
}

// walkFrames calls fn for each record of raw until fn returns false.
func walkFrames(engine endian.EndianEngine, raw []byte, fn func(seq uint32, msg []byte) bool) error {
	for off := 0; off < len(raw); {
		if len(raw)-off < frameHeaderSize {
			return fmt.Errorf("%w: truncated frame header at %d", errs.ErrCorruptSegment, off)
		}
		seq := engine.Uint32(raw[off:])
		n := int(engine.Uint32(raw[off+4:]))
		off += frameHeaderSize
		if n > len(raw)-off {
			return fmt.Errorf("%w: frame %d overruns payload", errs.ErrCorruptSegment, seq)
		}
		if !fn(seq, raw[off:off+n:off+n]) {
			return nil
		}
		off += n
	}

	return nil
}

func findFrame(engine endian.EndianEngine, raw []byte, seq uint32) ([]byte, error) {
	var found []byte
	err := walkFrames(engine, raw, func(s uint32, msg []byte) bool {
		if s == seq {
			found = msg
		}

		return s < seq
	})
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, fmt.Errorf("%w: %d", errs.ErrNotFound, seq)
	}

	return found, nil
}

// Stats is a point-in-time summary of a Journal.
type Stats struct {
	Messages    int                       `json:"messages"`
	Segments    int                       `json:"segments"`
	ActiveBytes int                       `json:"active_bytes"`
	FirstSeq    uint32                    `json:"first_seq"`
	LastSeq     uint32                    `json:"last_seq"`
	Compression compress.CompressionStats `json:"compression"`
}

// Journal is an append-only store of outbound messages keyed by MsgSeqNum.
type Journal struct {
	mu  sync.RWMutex
	cfg *config

	codec  compress.Codec
	sealed []segment

	active      *pool.ByteBuffer
	activeCount uint32
	activeFirst uint32
	lastSeq     uint32

	messages int
	stats    compress.CompressionStats
}

// New creates an empty Journal.
//
// Parameters:
//   - opts: Options for compression, segment size, logger and byte order
//
// Returns:
//   - *Journal: Journal ready for appends
//   - error: Configuration error from an option
func New(opts ...Option) (*Journal, error) {
	cfg := newConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	codec, err := compress.CreateCodec(cfg.compression, "journal")
	if err != nil {
		return nil, err
	}

	return &Journal{
		cfg:    cfg,
		codec:  codec,
		active: pool.NewByteBuffer(cfg.segmentSize),
		stats:  compress.CompressionStats{Algorithm: cfg.compression},
	}, nil
}

// Append stores msg under seq.
//
// Sequence numbers must be strictly increasing, which also rules out 0. The
// message is copied. When the active segment reaches the segment size it is
// sealed; a sealing error is returned but the message stays in the active segment.
//
// Returns:
//   - error: errs.ErrSequenceOrder, errs.ErrMessageTooLarge or a sealing error
func (j *Journal) Append(seq uint32, msg []byte) error {
	if len(msg) > MaxMessageSize {
		return fmt.Errorf("%w: %d bytes", errs.ErrMessageTooLarge, len(msg))
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	if seq <= j.lastSeq {
		return fmt.Errorf("%w: %d after %d", errs.ErrSequenceOrder, seq, j.lastSeq)
	}

	if j.activeCount == 0 {
		j.activeFirst = seq
	}
	start := j.active.Len()
	j.active.ExtendOrGrow(frameHeaderSize + len(msg))
	frame := j.active.B[start:]
	j.cfg.engine.PutUint32(frame[0:4], seq)
	j.cfg.engine.PutUint32(frame[4:8], uint32(len(msg))) //nolint:gosec
	copy(frame[frameHeaderSize:], msg)
	j.activeCount++
	j.lastSeq = seq
	j.messages++

	if j.active.Len() >= j.cfg.segmentSize {
		return j.sealLocked()
	}

	return nil
}

// Seal seals the active segment. It is a no-op when the active segment is empty.
func (j *Journal) Seal() error {
	j.mu.Lock()
	defer j.mu.Unlock()

	return j.sealLocked()
}

func (j *Journal) sealLocked() error {
	if j.activeCount == 0 {
		return nil
	}

	raw := j.active.Bytes()
	packed, err := j.codec.Compress(nil, raw)
	if err != nil {
		return fmt.Errorf("seal segment %d..%d: %w", j.activeFirst, j.lastSeq, err)
	}

	h := newSegmentHeader(j.cfg.engine, j.codec.Type())
	h.Count = j.activeCount
	h.FirstSeq = j.activeFirst
	h.LastSeq = j.lastSeq
	h.RawSize = uint32(len(raw))       //nolint:gosec
	h.PackedSize = uint32(len(packed)) //nolint:gosec
	h.Digest = hash.Digest(raw)

	j.sealed = append(j.sealed, segment{header: h, payload: packed})
	j.stats.Add(len(raw), len(packed))

	j.cfg.logger.Debug().
		Uint32("first_seq", h.FirstSeq).
		Uint32("last_seq", h.LastSeq).
		Uint32("count", h.Count).
		Int("raw_size", len(raw)).
		Int("packed_size", len(packed)).
		Stringer("compression", h.Compression).
		Msg("segment sealed")

	j.active.Reset()
	j.activeCount = 0

	return nil
}

// Get returns a copy of the message stored under seq.
//
// Returns:
//   - []byte: Message bytes, owned by the caller
//   - error: errs.ErrNotFound, or errs.ErrChecksum / errs.ErrCorruptSegment when
//     the sealed segment holding seq fails verification
func (j *Journal) Get(seq uint32) ([]byte, error) {
	j.mu.RLock()
	defer j.mu.RUnlock()

	if j.activeCount > 0 && seq >= j.activeFirst {
		msg, err := findFrame(j.cfg.engine, j.active.Bytes(), seq)
		if err != nil {
			return nil, err
		}

		return bytes.Clone(msg), nil
	}

	i := sort.Search(len(j.sealed), func(i int) bool {
		return j.sealed[i].header.LastSeq >= seq
	})
	if i == len(j.sealed) || seq < j.sealed[i].header.FirstSeq {
		return nil, fmt.Errorf("%w: %d", errs.ErrNotFound, seq)
	}
	seg := &j.sealed[i]

	bb := pool.GetSegmentBuffer()
	defer pool.PutSegmentBuffer(bb)

	raw, err := seg.decode(bb.B[:0])
	if err != nil {
		return nil, err
	}
	bb.B = raw

	msg, err := findFrame(seg.header.Engine(), raw, seq)
	if err != nil {
		return nil, err
	}

	return bytes.Clone(msg), nil
}

// Range iterates over the stored messages with from <= seq <= to in order.
//
// The journal is snapshotted when iteration starts; later appends are not seen.
// The yielded slice is only valid until the next iteration step.
// Iteration stops early, with an error logged, at a segment that fails verification.
func (j *Journal) Range(from, to uint32) iter.Seq2[uint32, []byte] {
	return func(yield func(uint32, []byte) bool) {
		if from > to {
			return
		}

		sealed, active, engine := j.snapshot(from, to)

		bb := pool.GetSegmentBuffer()
		defer pool.PutSegmentBuffer(bb)

		emit := func(seq uint32, msg []byte) bool {
			if seq < from {
				return true
			}
			if seq > to {
				return false
			}

			return yield(seq, msg)
		}

		for i := range sealed {
			seg := &sealed[i]
			raw, err := seg.decode(bb.B[:0])
			if err != nil {
				j.cfg.logger.Error().Err(err).Msg("range stopped at unreadable segment")
				return
			}
			bb.B = raw

			stopped := false
			err = walkFrames(seg.header.Engine(), raw, func(seq uint32, msg []byte) bool {
				if !emit(seq, msg) {
					stopped = true
					return false
				}

				return true
			})
			if err != nil {
				j.cfg.logger.Error().Err(err).Msg("range stopped at unreadable segment")
				return
			}
			if stopped {
				return
			}
		}

		if err := walkFrames(engine, active, emit); err != nil {
			j.cfg.logger.Error().Err(err).Msg("range stopped in active segment")
		}
	}
}

// snapshot returns the sealed segments overlapping [from, to] and a copy of the
// active segment when it overlaps.
func (j *Journal) snapshot(from, to uint32) ([]segment, []byte, endian.EndianEngine) {
	j.mu.RLock()
	defer j.mu.RUnlock()

	lo := sort.Search(len(j.sealed), func(i int) bool {
		return j.sealed[i].header.LastSeq >= from
	})
	hi := sort.Search(len(j.sealed), func(i int) bool {
		return j.sealed[i].header.FirstSeq > to
	})
	var sealed []segment
	if lo < hi {
		sealed = j.sealed[lo:hi:hi]
	}

	var active []byte
	if j.activeCount > 0 && j.activeFirst <= to && j.lastSeq >= from {
		active = bytes.Clone(j.active.Bytes())
	}

	return sealed, active, j.cfg.engine
}

// Stats returns counters for the journal.
func (j *Journal) Stats() Stats {
	j.mu.RLock()
	defer j.mu.RUnlock()

	return j.statsLocked()
}

func (j *Journal) statsLocked() Stats {
	s := Stats{
		Messages:    j.messages,
		Segments:    len(j.sealed),
		ActiveBytes: j.active.Len(),
		Compression: j.stats,
	}
	switch {
	case len(j.sealed) > 0:
		s.FirstSeq = j.sealed[0].header.FirstSeq
	case j.activeCount > 0:
		s.FirstSeq = j.activeFirst
	}
	if j.messages > 0 {
		s.LastSeq = j.lastSeq
	}

	return s
}

// WriteTo writes every sealed segment, header followed by payload, to w.
// The active segment is not written; call Seal first to include it.
//
// The output can be restored with Load.
func (j *Journal) WriteTo(w io.Writer) (int64, error) {
	j.mu.RLock()
	defer j.mu.RUnlock()

	bb := pool.GetExportBuffer()
	defer pool.PutExportBuffer(bb)

	var total int64
	flush := func() error {
		n, err := bb.WriteTo(w)
		total += n
		bb.Reset()

		return err
	}

	for i := range j.sealed {
		seg := &j.sealed[i]
		bb.B = seg.header.AppendTo(bb.B)
		bb.MustWrite(seg.payload)
		if bb.Len() >= pool.ExportBufferDefaultSize {
			if err := flush(); err != nil {
				return total, err
			}
		}
	}
	if bb.Len() > 0 {
		if err := flush(); err != nil {
			return total, err
		}
	}

	return total, nil
}

// Load restores a Journal from the output of WriteTo.
//
// Each segment keeps the codec and byte order recorded in its header; the options
// apply to messages appended afterwards. Every segment is verified while loading.
//
// Returns:
//   - *Journal: Journal holding the loaded segments
//   - error: errs.ErrInvalidHeader, errs.ErrCorruptSegment, errs.ErrChecksum or
//     errs.ErrSequenceOrder
func Load(data []byte, opts ...Option) (*Journal, error) {
	j, err := New(opts...)
	if err != nil {
		return nil, err
	}

	bb := pool.GetSegmentBuffer()
	defer pool.PutSegmentBuffer(bb)

	for off := 0; off < len(data); {
		var h SegmentHeader
		if err := h.Parse(data[off:]); err != nil {
			return nil, fmt.Errorf("segment at offset %d: %w", off, err)
		}
		off += HeaderSize
		if int(h.PackedSize) > len(data)-off {
			return nil, fmt.Errorf("%w: segment %d..%d truncated", errs.ErrCorruptSegment, h.FirstSeq, h.LastSeq)
		}
		if h.FirstSeq <= j.lastSeq {
			return nil, fmt.Errorf("%w: segment starts at %d after %d", errs.ErrSequenceOrder, h.FirstSeq, j.lastSeq)
		}

		seg := segment{header: h, payload: bytes.Clone(data[off : off+int(h.PackedSize)])}
		off += int(h.PackedSize)

		raw, err := seg.decode(bb.B[:0])
		if err != nil {
			return nil, err
		}
		bb.B = raw
		if err := verifyFrames(&h, raw); err != nil {
			return nil, err
		}

		j.sealed = append(j.sealed, seg)
		j.lastSeq = h.LastSeq
		j.messages += int(h.Count)
		j.stats.Add(int(h.RawSize), int(h.PackedSize))
	}

	j.cfg.logger.Debug().
		Int("segments", len(j.sealed)).
		Int("messages", j.messages).
		Msg("journal loaded")

	return j, nil
}

// verifyFrames checks that the records of raw match the counts and bounds of h.
func verifyFrames(h *SegmentHeader, raw []byte) error {
	var count, prev uint32
	ordered := true
	err := walkFrames(h.Engine(), raw, func(seq uint32, _ []byte) bool {
		if (count == 0 && seq != h.FirstSeq) || (count > 0 && seq <= prev) {
			ordered = false
			return false
		}
		prev = seq
		count++

		return true
	})
	if err != nil {
		return err
	}
	if !ordered || count != h.Count || prev != h.LastSeq {
		return fmt.Errorf("%w: segment %d..%d records do not match header", errs.ErrCorruptSegment, h.FirstSeq, h.LastSeq)
	}

	return nil
}
