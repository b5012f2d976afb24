package journal

import (
	"fmt"

	"github.com/goccy/go-json"

	"github.com/raul-gherman/fix44-forge-helpers/internal/endian"
)

// Manifest describes the layout of a Journal for operators and tooling.
type Manifest struct {
	Compression string        `json:"compression"`
	Endian      string        `json:"endian"`
	SegmentSize int           `json:"segment_size"`
	Segments    []SegmentInfo `json:"segments"`
	Active      ActiveInfo    `json:"active"`
	Stats       Stats         `json:"stats"`
}

// SegmentInfo summarizes one sealed segment.
type SegmentInfo struct {
	Compression string `json:"compression"`
	Endian      string `json:"endian"`
	FirstSeq    uint32 `json:"first_seq"`
	LastSeq     uint32 `json:"last_seq"`
	Count       uint32 `json:"count"`
	RawSize     uint32 `json:"raw_size"`
	PackedSize  uint32 `json:"packed_size"`
	Digest      string `json:"digest"` // xxHash64, 16 hex digits
}

// ActiveInfo summarizes the unsealed segment.
type ActiveInfo struct {
	Count    uint32 `json:"count"`
	Bytes    int    `json:"bytes"`
	FirstSeq uint32 `json:"first_seq,omitempty"`
	LastSeq  uint32 `json:"last_seq,omitempty"`
}

// Manifest returns the current manifest.
func (j *Journal) Manifest() Manifest {
	j.mu.RLock()
	defer j.mu.RUnlock()

	m := Manifest{
		Compression: j.cfg.compression.String(),
		Endian:      endian.Name(j.cfg.engine),
		SegmentSize: j.cfg.segmentSize,
		Segments:    make([]SegmentInfo, 0, len(j.sealed)),
		Active: ActiveInfo{
			Count: j.activeCount,
			Bytes: j.active.Len(),
		},
		Stats: j.statsLocked(),
	}
	if j.activeCount > 0 {
		m.Active.FirstSeq = j.activeFirst
		m.Active.LastSeq = j.lastSeq
	}

	for i := range j.sealed {
		h := &j.sealed[i].header
		m.Segments = append(m.Segments, SegmentInfo{
			Compression: h.Compression.String(),
			Endian:      endian.Name(h.Engine()),
			FirstSeq:    h.FirstSeq,
			LastSeq:     h.LastSeq,
			Count:       h.Count,
			RawSize:     h.RawSize,
			PackedSize:  h.PackedSize,
			Digest:      digestHex(h.Digest),
		})
	}

	return m
}

// MarshalManifest returns the manifest encoded as JSON.
func (j *Journal) MarshalManifest() ([]byte, error) {
	return json.Marshal(j.Manifest())
}

func digestHex(d uint64) string {
	return fmt.Sprintf("%016x", d)
}
