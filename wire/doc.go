// Package wire provides the zero-allocation value codecs for the FIX tag=value wire format.
//
// Every function in this package reads from a caller-supplied byte slice or writes into a
// caller-supplied byte slice at a caller-supplied offset. Nothing is retained between calls
// and nothing allocates, so all functions are safe for concurrent use as long as callers do
// not hand overlapping regions of the same buffer to concurrent writers.
//
// # Fast Path
//
// Readers never report errors. They consume the longest valid prefix of the input and
// degrade to a partial or zero result on malformed data:
//
//	wire.ReadU32([]byte("12345"))  // 12345
//	wire.ReadU32([]byte("123abc")) // 123
//	wire.ReadU32(nil)              // 0
//	wire.ReadI64([]byte("-42"))    // -42
//	wire.ReadF64([]byte("1.5"))    // 1.5
//	wire.ReadBool([]byte("Y"))     // true
//
// Integer overflow wraps. A leading '+' is not accepted by the signed readers.
//
// Writers return the number of bytes written and never append a delimiter:
//
//	buf := make([]byte, 64)
//	n := wire.WriteU32(buf, 0, 12345)       // "12345", n == 5
//	n += wire.WriteF64(buf, n, 123.456789)  // "123.456789"
//
// Writers do not check capacity. The caller guarantees that at least the maximum encoded
// width of the value is available after the offset (see the Max*Len constants). Writing past
// the end of the slice panics with the runtime's index error; it is never reported as an error
// value.
//
// # Integer Formatting
//
// Integers are written with a backward fill: the digit count is computed first, then digit
// pairs are emitted from a 100-entry lookup table starting at the last position. No reversal
// pass is needed and the per-digit division count is halved.
//
// # Float Formatting
//
// Floats are formatted without any floating-point string algorithm. The value is scaled to a
// fixed-point integer (10^6 for float32, 10^15 for float64), rounded half-to-even, and written
// as an integer part, a '.', and the fraction zero-padded to the scale width with trailing
// zeros trimmed. An integral result omits the decimal point. Negative zero keeps its sign:
//
//	wire.WriteF64(buf, 0, 123.0)  // "123"
//	wire.WriteF64(buf, 0, 0.5)    // "0.5"
//	wire.WriteF64(buf, 0, -0.0)   // "-0"
//
// NaN and infinities are outside the contract and produce unspecified bytes.
//
// # Tag-Field Writers
//
// The WriteTagAnd* family composes a complete field: the tag prefix (which already contains
// the '='), the encoded value and the SOH terminator:
//
//	n := wire.WriteTagAndU32(buf, 0, []byte("34="), 123) // "34=123\x01"
//
// # Validated Path
//
// The Parse* functions are an opt-in strict layer for call sites that need diagnostics.
// They reject empty input, stray bytes and overflow with a *ReadError naming the field and tag:
//
//	v, err := wire.ParseU32("MsgSeqNum", 34, raw)
//	if err != nil {
//	    // Invalid value for MsgSeqNum (tag=34): expected digits
//	}
//
// The fast-path readers never call into the validated path.
package wire
