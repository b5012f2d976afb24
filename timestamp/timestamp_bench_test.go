package timestamp

import "testing"

func BenchmarkWriteTagAndCurrentTimestamp(b *testing.B) {
	buf := make([]byte, 64)
	for b.Loop() {
		WriteTagAndCurrentTimestamp(buf, 0, []byte("52="))
	}
}

func BenchmarkFormatTimestampFromTimespec(b *testing.B) {
	buf := make([]byte, 64)
	ts := Now()
	for b.Loop() {
		FormatTimestampFromTimespec(buf, 0, []byte("52="), ts)
	}
}

func BenchmarkDateCache_FormatWire(b *testing.B) {
	b.Run("fresh", func(b *testing.B) {
		var c DateCache
		buf := make([]byte, WireLen)
		ts := Now()
		for b.Loop() {
			c.FormatWire(buf, 0, ts)
		}
	})

	b.Run("stale", func(b *testing.B) {
		var c DateCache
		buf := make([]byte, WireLen)
		ts := Now()
		i := int64(0)
		for b.Loop() {
			i++
			c.FormatWire(buf, 0, Timespec{Sec: ts.Sec + (i&1)*secondsPerDay})
		}
	})
}

func BenchmarkWriteCurrentLoggingTimestamp(b *testing.B) {
	buf := make([]byte, LoggingLen)
	for b.Loop() {
		WriteCurrentLoggingTimestamp(buf, 0)
	}
}

func BenchmarkFormatLoggingTimestampFromTimespec(b *testing.B) {
	buf := make([]byte, LoggingLen)
	ts := Now()
	for b.Loop() {
		FormatLoggingTimestampFromTimespec(buf, 0, ts)
	}
}
