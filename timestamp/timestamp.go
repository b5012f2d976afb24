// Package timestamp renders UTC timestamps for FIX fields and log lines.
//
// Two fixed-width formats are produced:
//
//	wire     "YYYYMMDD-HH:MM:SS.mmm"             (21 bytes, e.g. SendingTime)
//	logging  "YYYY-MM-DD HH:MM:SS.mmm.uuu.nnn"   (31 bytes)
//
// Converting an epoch day to a calendar date is the expensive step, so each
// DateCache keeps the digits of the last day it rendered. The package-level
// functions draw caches from a sync.Pool, which keeps one cache per P without
// locking; a cache that crosses a UTC midnight refreshes itself on first use.
package timestamp

import (
	"sync"
	"time"

	"github.com/raul-gherman/fix44-forge-helpers/wire"
)

// Timespec is a wall-clock sample: seconds and nanoseconds since the Unix epoch.
type Timespec struct {
	Sec  int64
	Nsec int64
}

// Now samples the wall clock.
func Now() Timespec {
	return FromTime(time.Now())
}

// FromTime converts t to a Timespec.
func FromTime(t time.Time) Timespec {
	return Timespec{Sec: t.Unix(), Nsec: int64(t.Nanosecond())}
}

// Time converts ts back to a UTC time.Time.
func (ts Timespec) Time() time.Time {
	return time.Unix(ts.Sec, ts.Nsec).UTC()
}

var caches = sync.Pool{
	New: func() any { return new(DateCache) },
}

func getCache() *DateCache {
	c, _ := caches.Get().(*DateCache)
	return c
}

// CurrentTimestamp returns the current UTC time as "YYYYMMDD-HH:MM:SS.mmm".
func CurrentTimestamp() [WireLen]byte {
	return FormatTimestamp(Now())
}

// FormatTimestamp returns ts as "YYYYMMDD-HH:MM:SS.mmm".
func FormatTimestamp(ts Timespec) [WireLen]byte {
	var out [WireLen]byte
	c := getCache()
	c.FormatWire(out[:], 0, ts)
	caches.Put(c)

	return out
}

// FormatTimestampFromTimespec writes a complete timestamp field: tag (already
// ending in '='), the 21-byte wire timestamp of ts, and SOH.
//
// Sampling the clock once and passing the same ts to several fields gives them
// identical values.
//
// Parameters:
//   - dst: Destination buffer
//   - off: Write offset
//   - tag: Tag prefix, e.g. "52="
//   - ts: Clock sample
//
// Returns:
//   - int: Bytes written, len(tag) + WireLen + 1
func FormatTimestampFromTimespec(dst []byte, off int, tag []byte, ts Timespec) int {
	n := copy(dst[off:], tag)
	c := getCache()
	n += c.FormatWire(dst, off+n, ts)
	caches.Put(c)
	dst[off+n] = wire.SOH

	return n + 1
}

// WriteTagAndCurrentTimestamp writes tag, the current wire timestamp, and SOH.
//
// Example:
//
//	n := timestamp.WriteTagAndCurrentTimestamp(buf, 0, []byte("52=")) // "52=20240101-12:34:56.789\x01"
func WriteTagAndCurrentTimestamp(dst []byte, off int, tag []byte) int {
	return FormatTimestampFromTimespec(dst, off, tag, Now())
}

// CurrentLoggingTimestamp returns the current UTC time as
// "YYYY-MM-DD HH:MM:SS.mmm.uuu.nnn".
func CurrentLoggingTimestamp() [LoggingLen]byte {
	var out [LoggingLen]byte
	FormatLoggingTimestampFromTimespec(out[:], 0, Now())

	return out
}

// FormatLoggingTimestampFromTimespec writes the 31-byte logging timestamp of ts
// at dst[off:] and returns LoggingLen.
func FormatLoggingTimestampFromTimespec(dst []byte, off int, ts Timespec) int {
	c := getCache()
	n := c.FormatLogging(dst, off, ts)
	caches.Put(c)

	return n
}

// WriteCurrentLoggingTimestamp writes the current logging timestamp at dst[off:]
// and returns LoggingLen.
func WriteCurrentLoggingTimestamp(dst []byte, off int) int {
	return FormatLoggingTimestampFromTimespec(dst, off, Now())
}
