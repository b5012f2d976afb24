package wire

import "testing"

var (
	benchTag  = []byte("44=")
	benchSink int
)

func BenchmarkWriteU64(b *testing.B) {
	buf := make([]byte, MaxU64Len)
	for b.Loop() {
		benchSink = WriteU64(buf, 0, 1234567890123)
	}
}

func BenchmarkWriteF64(b *testing.B) {
	buf := make([]byte, MaxF64Len)
	for b.Loop() {
		benchSink = WriteF64(buf, 0, 123.456789)
	}
}

func BenchmarkWriteF32(b *testing.B) {
	buf := make([]byte, MaxF32Len)
	for b.Loop() {
		benchSink = WriteF32(buf, 0, 123.456)
	}
}

func BenchmarkWriteTagAndF64(b *testing.B) {
	buf := make([]byte, 64)
	for b.Loop() {
		benchSink = WriteTagAndF64(buf, 0, benchTag, 99.125)
	}
}

func BenchmarkReadU64(b *testing.B) {
	in := []byte("1234567890123\x01")
	for b.Loop() {
		benchSink = int(ReadU64(in)) //nolint:gosec
	}
}

func BenchmarkReadF64(b *testing.B) {
	in := []byte("123.456789\x01")
	var v float64
	for b.Loop() {
		v = ReadF64(in)
	}
	_ = v
}

func BenchmarkParseU32(b *testing.B) {
	in := []byte("4294967295")
	for b.Loop() {
		if _, err := ParseU32("MsgSeqNum", 34, in); err != nil {
			b.Fatal(err)
		}
	}
}
