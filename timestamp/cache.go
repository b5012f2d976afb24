package timestamp

import "github.com/raul-gherman/fix44-forge-helpers/internal/digits"

const (
	// WireLen is the length of a wire timestamp: "YYYYMMDD-HH:MM:SS.mmm".
	WireLen = 21

	// LoggingLen is the length of a logging timestamp:
	// "YYYY-MM-DD HH:MM:SS.mmm.uuu.nnn".
	LoggingLen = 31
)

// DateCache renders timestamps and remembers the "YYYYMMDD" digits of the last
// epoch day it saw. Timestamps within the same UTC day copy the cached digits
// instead of converting the day to a calendar date again.
//
// A DateCache is not safe for concurrent use. The zero value is ready to use and
// starts stale.
type DateCache struct {
	valid bool
	day   int64
	ymd   [8]byte
}

// Fresh reports whether the cached digits belong to the given epoch day.
func (c *DateCache) Fresh(day int64) bool {
	return c.valid && c.day == day
}

// date returns the "YYYYMMDD" digits of day, refreshing the cache when stale.
func (c *DateCache) date(day int64) *[8]byte {
	if c.Fresh(day) {
		return &c.ymd
	}

	y, m, d := CivilFromDays(day)
	year := uint64(y) % 10_000 //nolint:gosec
	digits.Put2(c.ymd[:], 0, year/100)
	digits.Put2(c.ymd[:], 2, year%100)
	digits.Put2(c.ymd[:], 4, uint64(m)) //nolint:gosec
	digits.Put2(c.ymd[:], 6, uint64(d)) //nolint:gosec
	c.day = day
	c.valid = true

	return &c.ymd
}

// putClock writes "HH:MM:SS" for a second of day at dst[i:].
func putClock(dst []byte, i int, sod int64) {
	s := uint64(sod) //nolint:gosec
	digits.Put2(dst, i, s/secondsPerHour)
	dst[i+2] = ':'
	digits.Put2(dst, i+3, s/60%60)
	dst[i+5] = ':'
	digits.Put2(dst, i+6, s%60)
}

// put3 writes v (0..999) as three digits at dst[i:].
func put3(dst []byte, i int, v uint64) {
	digits.Put1(dst, i, v/100)
	digits.Put2(dst, i+1, v%100)
}

// FormatWire writes ts as "YYYYMMDD-HH:MM:SS.mmm" at dst[off:] and returns WireLen.
//
// ts.Nsec must be in [0, 1e9). Requires WireLen bytes of capacity after off.
func (c *DateCache) FormatWire(dst []byte, off int, ts Timespec) int {
	_ = dst[off+WireLen-1]

	day, sod := split(ts.Sec)
	copy(dst[off:], c.date(day)[:])
	dst[off+8] = '-'
	putClock(dst, off+9, sod)
	dst[off+17] = '.'
	put3(dst, off+18, uint64(ts.Nsec)/1_000_000) //nolint:gosec

	return WireLen
}

// FormatLogging writes ts as "YYYY-MM-DD HH:MM:SS.mmm.uuu.nnn" at dst[off:] and
// returns LoggingLen.
//
// ts.Nsec must be in [0, 1e9). Requires LoggingLen bytes of capacity after off.
func (c *DateCache) FormatLogging(dst []byte, off int, ts Timespec) int {
	_ = dst[off+LoggingLen-1]

	day, sod := split(ts.Sec)
	ymd := c.date(day)
	copy(dst[off:], ymd[0:4])
	dst[off+4] = '-'
	copy(dst[off+5:], ymd[4:6])
	dst[off+7] = '-'
	copy(dst[off+8:], ymd[6:8])
	dst[off+10] = ' '
	putClock(dst, off+11, sod)

	ns := uint64(ts.Nsec) //nolint:gosec
	dst[off+19] = '.'
	put3(dst, off+20, ns/1_000_000)
	dst[off+23] = '.'
	put3(dst, off+24, ns/1_000%1_000)
	dst[off+27] = '.'
	put3(dst, off+28, ns%1_000)

	return LoggingLen
}
