package wire

// The WriteTagAnd* functions write a complete field: tag (already ending in '='),
// the encoded value, and SOH. They return the total number of bytes written.
// The tag is copied as-is and never validated.

// WriteTagAndBool writes tag, 'Y' or 'N', and SOH.
//
// Example:
//
//	n := wire.WriteTagAndBool(buf, 0, []byte("43="), true) // "43=Y\x01"
func WriteTagAndBool(dst []byte, off int, tag []byte, v bool) int {
	n := copy(dst[off:], tag)
	n += WriteBool(dst, off+n, v)
	dst[off+n] = SOH

	return n + 1
}

// WriteTagAndBytes writes tag, v verbatim, and SOH.
func WriteTagAndBytes(dst []byte, off int, tag []byte, v []byte) int {
	n := copy(dst[off:], tag)
	n += copy(dst[off+n:], v)
	dst[off+n] = SOH

	return n + 1
}

// WriteTagAndStr writes tag, v verbatim, and SOH.
func WriteTagAndStr(dst []byte, off int, tag []byte, v string) int {
	n := copy(dst[off:], tag)
	n += copy(dst[off+n:], v)
	dst[off+n] = SOH

	return n + 1
}

// WriteTagAndU16 writes tag, v in decimal, and SOH.
func WriteTagAndU16(dst []byte, off int, tag []byte, v uint16) int {
	n := copy(dst[off:], tag)
	n += WriteU16(dst, off+n, v)
	dst[off+n] = SOH

	return n + 1
}

// WriteTagAndU32 writes tag, v in decimal, and SOH.
//
// Example:
//
//	n := wire.WriteTagAndU32(buf, 0, []byte("34="), 123) // "34=123\x01", n == 7
func WriteTagAndU32(dst []byte, off int, tag []byte, v uint32) int {
	n := copy(dst[off:], tag)
	n += WriteU32(dst, off+n, v)
	dst[off+n] = SOH

	return n + 1
}

// WriteTagAndU64 writes tag, v in decimal, and SOH.
func WriteTagAndU64(dst []byte, off int, tag []byte, v uint64) int {
	n := copy(dst[off:], tag)
	n += WriteU64(dst, off+n, v)
	dst[off+n] = SOH

	return n + 1
}

// WriteTagAndI16 writes tag, v in decimal, and SOH.
func WriteTagAndI16(dst []byte, off int, tag []byte, v int16) int {
	n := copy(dst[off:], tag)
	n += WriteI16(dst, off+n, v)
	dst[off+n] = SOH

	return n + 1
}

// WriteTagAndI32 writes tag, v in decimal, and SOH.
func WriteTagAndI32(dst []byte, off int, tag []byte, v int32) int {
	n := copy(dst[off:], tag)
	n += WriteI32(dst, off+n, v)
	dst[off+n] = SOH

	return n + 1
}

// WriteTagAndI64 writes tag, v in decimal, and SOH.
func WriteTagAndI64(dst []byte, off int, tag []byte, v int64) int {
	n := copy(dst[off:], tag)
	n += WriteI64(dst, off+n, v)
	dst[off+n] = SOH

	return n + 1
}

// WriteTagAndF32 writes tag, v with up to 6 fractional digits, and SOH.
func WriteTagAndF32(dst []byte, off int, tag []byte, v float32) int {
	n := copy(dst[off:], tag)
	n += WriteF32(dst, off+n, v)
	dst[off+n] = SOH

	return n + 1
}

// WriteTagAndF64 writes tag, v with up to 15 fractional digits, and SOH.
func WriteTagAndF64(dst []byte, off int, tag []byte, v float64) int {
	n := copy(dst[off:], tag)
	n += WriteF64(dst, off+n, v)
	dst[off+n] = SOH

	return n + 1
}
