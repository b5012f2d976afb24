package wire

import (
	"math/bits"

	"github.com/raul-gherman/fix44-forge-helpers/internal/digits"
)

// SOH is the FIX field terminator.
const SOH byte = 0x01

// Maximum encoded widths in bytes. A caller must have at least this many bytes
// available after the offset before calling the matching writer.
const (
	MaxU16Len  = 5
	MaxU32Len  = 10
	MaxU64Len  = 20
	MaxU128Len = 39
	MaxI16Len  = 6
	MaxI32Len  = 11
	MaxI64Len  = 20
	MaxF32Len  = 15
	MaxF64Len  = 26
	MaxBoolLen = 1
)

var pow10u64 = [20]uint64{
	1,
	10,
	100,
	1_000,
	10_000,
	100_000,
	1_000_000,
	10_000_000,
	100_000_000,
	1_000_000_000,
	10_000_000_000,
	100_000_000_000,
	1_000_000_000_000,
	10_000_000_000_000,
	100_000_000_000_000,
	1_000_000_000_000_000,
	10_000_000_000_000_000,
	100_000_000_000_000_000,
	1_000_000_000_000_000_000,
	10_000_000_000_000_000_000,
}

func lenU16(n uint16) int {
	switch {
	case n >= 10_000:
		return 5
	case n >= 1_000:
		return 4
	case n >= 100:
		return 3
	case n >= 10:
		return 2
	default:
		return 1
	}
}

func lenU32(n uint32) int {
	switch {
	case n >= 1_000_000_000:
		return 10
	case n >= 100_000_000:
		return 9
	case n >= 10_000_000:
		return 8
	case n >= 1_000_000:
		return 7
	case n >= 100_000:
		return 6
	case n >= 10_000:
		return 5
	case n >= 1_000:
		return 4
	case n >= 100:
		return 3
	case n >= 10:
		return 2
	default:
		return 1
	}
}

// lenU64 estimates floor(log10) from the bit length (1233/4096 ~ log10(2))
// and corrects with one table lookup.
func lenU64(n uint64) int {
	n |= 1
	t := (bits.Len64(n) * 1233) >> 12
	if n < pow10u64[t] {
		return t
	}

	return t + 1
}

// putDigits fills dst[start:end] with the decimal digits of n, last digit first.
// The span must be exactly the digit count of n.
func putDigits(dst []byte, end int, n uint64) {
	i := end
	for n >= 100 {
		q := n / 100
		i -= 2
		digits.Put2(dst, i, n-q*100)
		n = q
	}
	if n < 10 {
		digits.Put1(dst, i-1, n)
		return
	}
	digits.Put2(dst, i-2, n)
}

// putFixed writes n as exactly width digits at dst[off:], zero padded on the left.
func putFixed(dst []byte, off, width int, n uint64) {
	i := off + width
	for i-off >= 2 {
		q := n / 100
		i -= 2
		digits.Put2(dst, i, n-q*100)
		n = q
	}
	if i > off {
		digits.Put1(dst, off, n%10)
	}
}

// WriteU16 writes n in decimal at dst[off:] and returns the number of bytes written.
//
// Requires MaxU16Len bytes of capacity after off.
func WriteU16(dst []byte, off int, n uint16) int {
	l := lenU16(n)
	putDigits(dst, off+l, uint64(n))

	return l
}

// WriteU32 writes n in decimal at dst[off:] and returns the number of bytes written.
//
// Requires MaxU32Len bytes of capacity after off.
//
// Example:
//
//	buf := make([]byte, 16)
//	n := wire.WriteU32(buf, 0, 12345) // buf[:n] == "12345"
func WriteU32(dst []byte, off int, n uint32) int {
	l := lenU32(n)
	putDigits(dst, off+l, uint64(n))

	return l
}

// WriteU64 writes n in decimal at dst[off:] and returns the number of bytes written.
//
// Requires MaxU64Len bytes of capacity after off.
func WriteU64(dst []byte, off int, n uint64) int {
	l := lenU64(n)
	putDigits(dst, off+l, n)

	return l
}

// Uint128 is an unsigned 128-bit integer split into two 64-bit halves.
type Uint128 struct {
	Hi uint64
	Lo uint64
}

const tenPow19 = 10_000_000_000_000_000_000

// divmod10p19 returns u / 10^19 and u % 10^19.
func (u Uint128) divmod10p19() (Uint128, uint64) {
	qHi := u.Hi / tenPow19
	rHi := u.Hi - qHi*tenPow19
	qLo, r := bits.Div64(rHi, u.Lo, tenPow19)

	return Uint128{Hi: qHi, Lo: qLo}, r
}

// WriteU128 writes n in decimal at dst[off:] and returns the number of bytes written.
//
// Requires MaxU128Len bytes of capacity after off.
func WriteU128(dst []byte, off int, n Uint128) int {
	if n.Hi == 0 {
		return WriteU64(dst, off, n.Lo)
	}

	q, r := n.divmod10p19()
	w := WriteU128(dst, off, q)
	putFixed(dst, off+w, 19, r)

	return w + 19
}

// WriteI16 writes n in decimal at dst[off:], with a leading '-' when negative.
//
// Requires MaxI16Len bytes of capacity after off.
func WriteI16(dst []byte, off int, n int16) int {
	if n >= 0 {
		return WriteU16(dst, off, uint16(n))
	}
	dst[off] = '-'
	if n == -1<<15 {
		return 1 + copy(dst[off+1:], "32768")
	}

	return 1 + WriteU16(dst, off+1, uint16(-n))
}

// WriteI32 writes n in decimal at dst[off:], with a leading '-' when negative.
//
// Requires MaxI32Len bytes of capacity after off.
func WriteI32(dst []byte, off int, n int32) int {
	if n >= 0 {
		return WriteU32(dst, off, uint32(n))
	}
	dst[off] = '-'
	if n == -1<<31 {
		return 1 + copy(dst[off+1:], "2147483648")
	}

	return 1 + WriteU32(dst, off+1, uint32(-n))
}

// WriteI64 writes n in decimal at dst[off:], with a leading '-' when negative.
//
// Requires MaxI64Len bytes of capacity after off.
func WriteI64(dst []byte, off int, n int64) int {
	if n >= 0 {
		return WriteU64(dst, off, uint64(n))
	}
	dst[off] = '-'
	if n == -1<<63 {
		return 1 + copy(dst[off+1:], "9223372036854775808")
	}

	return 1 + WriteU64(dst, off+1, uint64(-n))
}

// WriteBool writes 'Y' or 'N' at dst[off] and returns 1.
func WriteBool(dst []byte, off int, v bool) int {
	if v {
		dst[off] = 'Y'
	} else {
		dst[off] = 'N'
	}

	return 1
}

// WriteBytes copies v verbatim to dst[off:] and returns len(v).
func WriteBytes(dst []byte, off int, v []byte) int {
	return copy(dst[off:], v)
}

// WriteStr copies v verbatim to dst[off:] and returns len(v).
func WriteStr(dst []byte, off int, v string) int {
	return copy(dst[off:], v)
}
