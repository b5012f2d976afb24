// Package clordid generates unique client order identifiers (ClOrdID, tag 11).
//
// An identifier combines a 32-bit process tag, fixed when the Generator is created,
// with a 32-bit counter incremented on every call:
//
//	id = tag<<32 | counter&0xFFFFFFFF
//
// and is rendered as exactly 13 base-36 characters from [0-9A-Z], left padded
// with '0'. Thirteen base-36 digits cover the whole uint64 range, so every id has
// a distinct rendering. The counter wraps after 2^32 ids per process tag.
//
// Generators are safe for concurrent use: a single atomic add hands every caller
// its own counter value, so no two calls on one Generator return the same id.
package clordid

import (
	"math/bits"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/raul-gherman/fix44-forge-helpers/errs"
	"github.com/raul-gherman/fix44-forge-helpers/internal/digits"
	"github.com/raul-gherman/fix44-forge-helpers/internal/hash"
	"github.com/raul-gherman/fix44-forge-helpers/internal/options"
	"github.com/raul-gherman/fix44-forge-helpers/wire"
)

const (
	// Len is the length of a rendered identifier.
	Len = 13

	counterBits = 32
	counterMask = 1<<counterBits - 1
)

// Generator issues identifiers for one process tag.
type Generator struct {
	tag     uint32
	counter atomic.Uint64
}

// Option configures a Generator.
type Option = options.Option[*Generator]

// WithProcessTag fixes the process tag instead of deriving one. Zero is rejected.
func WithProcessTag(tag uint32) Option {
	return options.New(func(g *Generator) error {
		if tag == 0 {
			return errs.ErrInvalidProcessTag
		}
		g.tag = tag

		return nil
	})
}

// WithCounterStart sets the counter value used by the first call.
func WithCounterStart(n uint32) Option {
	return options.NoError(func(g *Generator) {
		g.counter.Store(uint64(n))
	})
}

// NewGenerator creates a Generator.
//
// Without WithProcessTag the tag is derived from the process id, a random UUID
// and the start time, so two processes started on one host at the same instant
// still get different tags with high probability.
//
// Parameters:
//   - opts: Optional configuration
//
// Returns:
//   - *Generator: Ready to use generator
//   - error: errs.ErrInvalidProcessTag for a zero tag
func NewGenerator(opts ...Option) (*Generator, error) {
	g := &Generator{}
	if err := options.Apply(g, opts...); err != nil {
		return nil, err
	}
	if g.tag == 0 {
		g.tag = hash.ProcessTag(os.Getpid(), uuid.New(), time.Now().UnixNano())
	}

	return g, nil
}

// Tag returns the process tag.
func (g *Generator) Tag() uint32 {
	return g.tag
}

// Next returns the next combined identifier value.
func (g *Generator) Next() uint64 {
	n := g.counter.Add(1) - 1

	return uint64(g.tag)<<counterBits | n&counterMask
}

// Generate returns the next identifier rendered as 13 base-36 characters.
func (g *Generator) Generate() [Len]byte {
	var out [Len]byte
	EncodeBase36Fixed13(out[:], 0, g.Next())

	return out
}

// WriteTagAndClOrdID writes tag (already ending in '='), the next identifier, and
// SOH at dst[off:].
//
// Returns:
//   - int: Bytes written, len(tag) + Len + 1
//
// Example:
//
//	n := g.WriteTagAndClOrdID(buf, 0, []byte("11=")) // "11=0A3F9K2B00001\x01", n == 17
func (g *Generator) WriteTagAndClOrdID(dst []byte, off int, tag []byte) int {
	n := copy(dst[off:], tag)
	n += EncodeBase36Fixed13(dst, off+n, g.Next())
	dst[off+n] = wire.SOH

	return n + 1
}

// EncodeBase36Fixed13 writes n as exactly 13 base-36 digits at dst[off:].
//
// Returns:
//   - int: 13, or 0 without writing anything when fewer than 13 bytes remain
func EncodeBase36Fixed13(dst []byte, off int, n uint64) int {
	if len(dst)-off < Len {
		return 0
	}

	for i := off + Len - 1; i >= off; i-- {
		q := n / 36
		dst[i] = digits.Base36[n-q*36]
		n = q
	}

	return Len
}

// DecodeBase36 parses 1 to 13 upper-case base-36 digits.
//
// Returns:
//   - uint64: Decoded value
//   - bool: false for empty or over-long input, a byte outside [0-9A-Z], or a
//     value above the uint64 range
func DecodeBase36(b []byte) (uint64, bool) {
	if len(b) == 0 || len(b) > Len {
		return 0, false
	}

	var acc uint64
	for _, c := range b {
		var d uint64
		switch {
		case c >= '0' && c <= '9':
			d = uint64(c - '0')
		case c >= 'A' && c <= 'Z':
			d = uint64(c-'A') + 10
		default:
			return 0, false
		}

		hi, lo := bits.Mul64(acc, 36)
		sum, carry := bits.Add64(lo, d, 0)
		if hi != 0 || carry != 0 {
			return 0, false
		}
		acc = sum
	}

	return acc, true
}

var defaultGenerator = sync.OnceValue(func() *Generator {
	g, _ := NewGenerator()
	return g
})

// Default returns the process-wide Generator, created on first use.
func Default() *Generator {
	return defaultGenerator()
}

// GenerateID returns the next identifier of the process-wide Generator.
func GenerateID() [Len]byte {
	return Default().Generate()
}

// WriteTagAndClOrdID writes a ClOrdID field using the process-wide Generator.
func WriteTagAndClOrdID(dst []byte, off int, tag []byte) int {
	return Default().WriteTagAndClOrdID(dst, off, tag)
}
