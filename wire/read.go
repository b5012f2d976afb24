package wire

import "unsafe"

func isDigit(b byte) bool {
	return b-'0' <= 9
}

// ReadBool parses a FIX boolean.
//
// Returns true when the first byte is 'Y'; anything else, including "N" and empty
// input, is false.
func ReadBool(b []byte) bool {
	return len(b) > 0 && b[0] == 'Y'
}

// ReadStr returns the bytes as a string without copying or validating the encoding.
//
// The returned string aliases b. The caller must not modify b while the string is in use.
func ReadStr(b []byte) string {
	if len(b) == 0 {
		return ""
	}

	return unsafe.String(unsafe.SliceData(b), len(b))
}

// ReadBytes returns b unchanged. It exists so generated code can treat raw data
// fields like every other type.
func ReadBytes(b []byte) []byte {
	return b
}

// ReadU16 parses leading decimal digits as a uint16.
//
// Parsing stops at the first non-digit byte. Empty input or input without a leading
// digit yields 0. Overflow wraps.
func ReadU16(b []byte) uint16 {
	var acc uint16
	for _, c := range b {
		if !isDigit(c) {
			break
		}
		acc = acc*10 + uint16(c-'0')
	}

	return acc
}

// ReadU32 parses leading decimal digits as a uint32.
//
// Parsing stops at the first non-digit byte. Empty input or input without a leading
// digit yields 0. Overflow wraps.
func ReadU32(b []byte) uint32 {
	var acc uint32
	for _, c := range b {
		if !isDigit(c) {
			break
		}
		acc = acc*10 + uint32(c-'0')
	}

	return acc
}

// ReadU64 parses leading decimal digits as a uint64.
//
// Parsing stops at the first non-digit byte. Empty input or input without a leading
// digit yields 0. Overflow wraps.
func ReadU64(b []byte) uint64 {
	var acc uint64
	for _, c := range b {
		if !isDigit(c) {
			break
		}
		acc = acc*10 + uint64(c-'0')
	}

	return acc
}

// ReadI16 parses an optionally negative decimal int16.
//
// A single leading '-' negates the magnitude; "-32768" yields math.MinInt16.
func ReadI16(b []byte) int16 {
	if len(b) > 0 && b[0] == '-' {
		return -int16(ReadU16(b[1:])) //nolint:gosec
	}

	return int16(ReadU16(b)) //nolint:gosec
}

// ReadI32 parses an optionally negative decimal int32.
//
// A single leading '-' negates the magnitude; "-2147483648" yields math.MinInt32.
func ReadI32(b []byte) int32 {
	if len(b) > 0 && b[0] == '-' {
		return -int32(ReadU32(b[1:])) //nolint:gosec
	}

	return int32(ReadU32(b)) //nolint:gosec
}

// ReadI64 parses an optionally negative decimal int64.
//
// A single leading '-' negates the magnitude; "-9223372036854775808" yields math.MinInt64.
func ReadI64(b []byte) int64 {
	if len(b) > 0 && b[0] == '-' {
		return -int64(ReadU64(b[1:])) //nolint:gosec
	}

	return int64(ReadU64(b)) //nolint:gosec
}
