// Package forge provides zero-allocation building blocks for producing and
// consuming FIX tag=value messages.
//
// The hot path writes straight into caller-owned byte buffers: no intermediate
// strings, no fmt, no heap allocation per field. Every writer takes a destination
// slice and an offset and returns the number of bytes written.
//
// # Core Features
//
//   - Integer, boolean and fixed-point float codecs without scientific notation (wire)
//   - Preformatted output buffers with in-place BodyLength patching (message)
//   - Wire and logging timestamps rendered from a per-P date cache (timestamp)
//   - 13-character base-36 ClOrdIDs from a lock-free generator (clordid)
//   - Compressed, digest-verified resend store keyed by MsgSeqNum (journal)
//
// # Basic Usage
//
// Building a NewOrderSingle:
//
//	m, err := forge.NewMessage(message.DefaultVersion)
//	if err != nil {
//	    return err
//	}
//	defer m.Release()
//
//	out := m.MsgType("D").
//	    U32([]byte("34="), seq).
//	    SendingTime([]byte("52=")).
//	    ClOrdID([]byte("11=")).
//	    Str([]byte("55="), "MSFT").
//	    F64([]byte("44="), 123.45).
//	    Bytes()
//
// The same message written by hand with the lower level packages:
//
//	buf := message.ForgeOutBuffer("FIX.4.4")
//	pos := message.WriteStart
//	pos += wire.WriteStr(buf[:], pos, "D")
//	buf[pos] = wire.SOH
//	pos++
//	pos += wire.WriteTagAndU32(buf[:], pos, []byte("34="), seq)
//	pos += timestamp.WriteTagAndCurrentTimestamp(buf[:], pos, []byte("52="))
//	message.UpdateBodyLength(buf[:], pos)
//
// # Package Structure
//
// This package wraps message, wire, timestamp and clordid in a chaining builder for
// the common case. For full control, use those packages directly.
package forge

import (
	"sync"

	"github.com/raul-gherman/fix44-forge-helpers/clordid"
	"github.com/raul-gherman/fix44-forge-helpers/message"
	"github.com/raul-gherman/fix44-forge-helpers/timestamp"
	"github.com/raul-gherman/fix44-forge-helpers/wire"
)

// Message builds one outbound message in a fixed message.BufferSize buffer.
//
// Fields are appended in call order. Writing past the buffer panics, as the
// lower level writers do. A Message is not safe for concurrent use.
type Message struct {
	buf     [message.BufferSize]byte
	version string
	layout  message.Layout
	pos     int
}

var messagePool = sync.Pool{
	New: func() any {
		return new(Message)
	},
}

// NewMessage returns a pooled Message with the header for version written.
//
// Call MsgType first, then the body fields, then Bytes. Release returns the
// Message to the pool.
//
// Parameters:
//   - version: BeginString value, e.g. "FIX.4.4"
//
// Returns:
//   - *Message: Message positioned at the MsgType value
//   - error: errs.ErrInvalidFixVersion if version cannot be a BeginString
func NewMessage(version string) (*Message, error) {
	if err := message.ValidateVersion(version); err != nil {
		return nil, err
	}

	m, _ := messagePool.Get().(*Message)
	if m.version != version {
		m.buf = message.ForgeOutBuffer(version)
		m.version = version
		m.layout = message.LayoutFor(version)
	}
	m.pos = m.layout.WriteStart

	return m, nil
}

// Release returns m to the pool. m must not be used afterwards, including any
// slice previously returned by Bytes.
func (m *Message) Release() {
	messagePool.Put(m)
}

// Reset discards every field written after the header, MsgType included.
func (m *Message) Reset() {
	m.pos = m.layout.WriteStart
}

// Version returns the BeginString of m.
func (m *Message) Version() string {
	return m.version
}

// MsgType writes the MsgType value (tag 35) and SOH. It restarts the body, so
// fields written before it are discarded.
func (m *Message) MsgType(v string) *Message {
	m.pos = m.layout.WriteStart
	m.pos += wire.WriteStr(m.buf[:], m.pos, v)
	m.buf[m.pos] = wire.SOH
	m.pos++

	return m
}

// U32 writes tag, v in decimal, and SOH.
func (m *Message) U32(tag []byte, v uint32) *Message {
	m.pos += wire.WriteTagAndU32(m.buf[:], m.pos, tag, v)
	return m
}

// U64 writes tag, v in decimal, and SOH.
func (m *Message) U64(tag []byte, v uint64) *Message {
	m.pos += wire.WriteTagAndU64(m.buf[:], m.pos, tag, v)
	return m
}

// I64 writes tag, v in decimal, and SOH.
func (m *Message) I64(tag []byte, v int64) *Message {
	m.pos += wire.WriteTagAndI64(m.buf[:], m.pos, tag, v)
	return m
}

// F64 writes tag, v with up to 15 fractional digits, and SOH.
func (m *Message) F64(tag []byte, v float64) *Message {
	m.pos += wire.WriteTagAndF64(m.buf[:], m.pos, tag, v)
	return m
}

// Bool writes tag, 'Y' or 'N', and SOH.
func (m *Message) Bool(tag []byte, v bool) *Message {
	m.pos += wire.WriteTagAndBool(m.buf[:], m.pos, tag, v)
	return m
}

// Str writes tag, v verbatim, and SOH.
func (m *Message) Str(tag []byte, v string) *Message {
	m.pos += wire.WriteTagAndStr(m.buf[:], m.pos, tag, v)
	return m
}

// Raw writes tag, v verbatim, and SOH.
func (m *Message) Raw(tag []byte, v []byte) *Message {
	m.pos += wire.WriteTagAndBytes(m.buf[:], m.pos, tag, v)
	return m
}

// SendingTime writes tag, the current UTC time as YYYYMMDD-HH:MM:SS.mmm, and SOH.
func (m *Message) SendingTime(tag []byte) *Message {
	m.pos += timestamp.WriteTagAndCurrentTimestamp(m.buf[:], m.pos, tag)
	return m
}

// ClOrdID writes tag, an identifier from the default clordid generator, and SOH.
func (m *Message) ClOrdID(tag []byte) *Message {
	m.pos += clordid.WriteTagAndClOrdID(m.buf[:], m.pos, tag)
	return m
}

// ClOrdIDFrom writes tag, an identifier from g, and SOH.
func (m *Message) ClOrdIDFrom(g *clordid.Generator, tag []byte) *Message {
	m.pos += g.WriteTagAndClOrdID(m.buf[:], m.pos, tag)
	return m
}

// Len returns the number of bytes written so far, header included.
func (m *Message) Len() int {
	return m.pos
}

// Remaining returns how many bytes can still be written.
func (m *Message) Remaining() int {
	return len(m.buf) - m.pos
}

// Bytes patches BodyLength and returns the message up to, not including, CheckSum.
//
// The slice aliases the internal buffer. It is valid until the next write, Reset
// or Release.
func (m *Message) Bytes() []byte {
	m.layout.UpdateBodyLength(m.buf[:], m.pos)
	return m.buf[:m.pos]
}
