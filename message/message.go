// Package message provides the pre-initialized output buffer every outbound FIX
// message is built in.
//
// The buffer starts with the fixed header
//
//	8=<BeginString>\x019=0000\x0135=
//
// so that serialization begins directly with the MsgType value. The four-digit
// BodyLength placeholder is patched in place once the body is complete; no byte
// after it ever moves.
//
// Layout for all FIX 4.x BeginStrings:
//
//	bytes  0..9   BeginString "8=FIX.4.x\x01"
//	bytes 10..16  BodyLength  "9=0000\x01"
//	bytes 17..19  MsgType tag "35="
//	bytes 20..    MsgType value and the rest of the message
//
// BeginStrings of other lengths (for example "FIXT.1.1") shift every position by
// the length difference; use LayoutFor to obtain the positions for them.
package message

import (
	"fmt"
	"strings"

	"github.com/raul-gherman/fix44-forge-helpers/errs"
	"github.com/raul-gherman/fix44-forge-helpers/internal/digits"
)

const (
	// BufferSize is the capacity of a buffer returned by ForgeOutBuffer.
	BufferSize = 1024

	// HeaderLen is the length of the pre-initialized header for FIX 4.x.
	HeaderLen = 20

	// BodyLengthValuePos is the offset of the BodyLength placeholder digits.
	BodyLengthValuePos = 12

	// BodyLengthWidth is the number of placeholder digits.
	BodyLengthWidth = 4

	// BodyStart is the offset of the first byte counted by BodyLength: the byte
	// right after "9=0000\x01".
	BodyStart = 17

	// WriteStart is where the MsgType value is written.
	WriteStart = 20

	// MaxBodyLength is the largest length the placeholder can hold.
	MaxBodyLength = 9999
)

const (
	// DefaultVersion is the BeginString used when none is given.
	DefaultVersion = "FIX.4.4"

	// Header is the pre-initialized header for DefaultVersion.
	Header = "8=" + DefaultVersion + headerSuffix

	headerSuffix = "\x019=0000\x0135="

	// maxVersionLen keeps the header well inside BufferSize.
	maxVersionLen = 32
)

// Layout holds the header positions for one BeginString.
type Layout struct {
	// BodyLengthPos is the offset of the placeholder digits.
	BodyLengthPos int
	// BodyStart is the offset of the first byte counted by BodyLength.
	BodyStart int
	// WriteStart is where the MsgType value is written.
	WriteStart int
}

// LayoutFor returns the header positions for version.
func LayoutFor(version string) Layout {
	shift := len(version) - len(DefaultVersion)

	return Layout{
		BodyLengthPos: BodyLengthValuePos + shift,
		BodyStart:     BodyStart + shift,
		WriteStart:    WriteStart + shift,
	}
}

// UpdateBodyLength patches the placeholder with messageEnd - BodyStart.
//
// messageEnd is the offset where CheckSum will be written.
func (l Layout) UpdateBodyLength(buf []byte, messageEnd int) {
	putBodyLength(buf, l.BodyLengthPos, messageEnd-l.BodyStart)
}

// ValidateVersion reports whether version can be used as a BeginString.
//
// Returns:
//   - error: errs.ErrInvalidFixVersion when version is empty, too long, or contains
//     '=' or SOH
func ValidateVersion(version string) error {
	if version == "" || len(version) > maxVersionLen || strings.ContainsAny(version, "=\x01") {
		return fmt.Errorf("%w: %q", errs.ErrInvalidFixVersion, version)
	}

	return nil
}

// ForgeOutBuffer returns a buffer with the header for version already written.
//
// Every byte after the header is zero. The returned array is a value: each call
// produces an independent buffer.
//
// Parameters:
//   - version: BeginString value, e.g. "FIX.4.4" or "FIX.4.2"
//
// Returns:
//   - [BufferSize]byte: Buffer ready for writing at WriteStartFor(version)
//
// Example:
//
//	buf := message.ForgeOutBuffer("FIX.4.4")
//	pos := message.WriteStart
//	pos += wire.WriteStr(buf[:], pos, "D")
//	buf[pos] = wire.SOH
//	pos++
//	pos += wire.WriteTagAndU32(buf[:], pos, []byte("34="), 123)
//	message.UpdateBodyLength(buf[:], pos) // "8=FIX.4.4\x019=0012\x0135=D\x0134=123\x01"
func ForgeOutBuffer(version string) [BufferSize]byte {
	var buf [BufferSize]byte
	n := copy(buf[:], "8=")
	n += copy(buf[n:], version)
	copy(buf[n:], headerSuffix)

	return buf
}

// WriteStartFor returns the offset where the MsgType value is written for version.
// It is WriteStart for every FIX 4.x BeginString.
func WriteStartFor(version string) int {
	return LayoutFor(version).WriteStart
}

// UpdateBodyLength patches the BodyLength placeholder of a FIX 4.x buffer.
//
// messageEnd is the offset where CheckSum will be written; the body length is
// messageEnd - BodyStart. Lengths above MaxBodyLength are written modulo 10000.
func UpdateBodyLength(buf []byte, messageEnd int) {
	UpdateBodyLengthRange(buf, BodyStart, messageEnd)
}

// UpdateBodyLengthRange writes bodyEnd - bodyStart as four zero-padded digits
// over the placeholder at BodyLengthValuePos. No other byte is touched.
func UpdateBodyLengthRange(buf []byte, bodyStart, bodyEnd int) {
	putBodyLength(buf, BodyLengthValuePos, bodyEnd-bodyStart)
}

func putBodyLength(buf []byte, pos int, length int) {
	n := uint64(length) % (MaxBodyLength + 1) //nolint:gosec
	digits.Put2(buf, pos, n/100)
	digits.Put2(buf, pos+2, n%100)
}
