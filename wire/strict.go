package wire

import "math"

const (
	msgEmpty   = "empty value"
	msgDigits  = "expected digits"
	msgRange   = "value out of range"
	msgDecimal = "expected decimal number"
	msgBoolean = "expected 'Y' or 'N'"
)

// parseDigits accumulates b as an unsigned decimal with overflow detection.
// It returns the failure message, or "" on success.
func parseDigits(b []byte, limit uint64) (uint64, string) {
	if len(b) == 0 {
		return 0, msgEmpty
	}

	var acc uint64
	for _, c := range b {
		if !isDigit(c) {
			return 0, msgDigits
		}
		d := uint64(c - '0')
		if acc > (limit-d)/10 {
			return 0, msgRange
		}
		acc = acc*10 + d
	}

	return acc, ""
}

// ParseU32 strictly parses b as a uint32.
//
// Unlike ReadU32, the whole input must be digits and must fit in 32 bits.
//
// Parameters:
//   - name: Field name used in the error
//   - tag: FIX tag used in the error
//   - b: Isolated field value
//
// Returns:
//   - uint32: Parsed value
//   - error: *ReadError of kind InvalidValue on empty, non-digit or out-of-range input
func ParseU32(name string, tag uint16, b []byte) (uint32, error) {
	v, msg := parseDigits(b, math.MaxUint32)
	if msg != "" {
		return 0, NewInvalidValue(name, tag, msg)
	}

	return uint32(v), nil //nolint:gosec
}

// ParseU64 strictly parses b as a uint64.
func ParseU64(name string, tag uint16, b []byte) (uint64, error) {
	v, msg := parseDigits(b, math.MaxUint64)
	if msg != "" {
		return 0, NewInvalidValue(name, tag, msg)
	}

	return v, nil
}

// ParseI32 strictly parses b as an int32 with an optional leading '-'.
func ParseI32(name string, tag uint16, b []byte) (int32, error) {
	v, err := ParseI64(name, tag, b)
	if err != nil {
		return 0, err
	}
	if v < math.MinInt32 || v > math.MaxInt32 {
		return 0, NewInvalidValue(name, tag, msgRange)
	}

	return int32(v), nil
}

// ParseI64 strictly parses b as an int64 with an optional leading '-'.
func ParseI64(name string, tag uint16, b []byte) (int64, error) {
	neg := len(b) > 0 && b[0] == '-'
	if neg {
		b = b[1:]
	}

	limit := uint64(math.MaxInt64)
	if neg {
		limit++
	}
	v, msg := parseDigits(b, limit)
	if msg != "" {
		return 0, NewInvalidValue(name, tag, msg)
	}
	if neg {
		return -int64(v), nil //nolint:gosec
	}

	return int64(v), nil //nolint:gosec
}

// ParseF64 strictly parses b as a decimal of the form [-]digits[.digits].
//
// At least one digit is required and no bytes may follow the number.
func ParseF64(name string, tag uint16, b []byte) (float64, error) {
	if len(b) == 0 {
		return 0, NewInvalidValue(name, tag, msgEmpty)
	}

	i := 0
	if b[0] == '-' {
		i++
	}
	nd := 0
	for ; i < len(b) && isDigit(b[i]); i++ {
		nd++
	}
	if i < len(b) && b[i] == '.' {
		for i++; i < len(b) && isDigit(b[i]); i++ {
			nd++
		}
	}
	if nd == 0 || i != len(b) {
		return 0, NewInvalidValue(name, tag, msgDecimal)
	}

	return ReadF64(b), nil
}

// ParseBool strictly parses b as a FIX boolean: exactly "Y" or "N".
func ParseBool(name string, tag uint16, b []byte) (bool, error) {
	if len(b) == 0 {
		return false, NewInvalidValue(name, tag, msgEmpty)
	}
	if len(b) != 1 || (b[0] != 'Y' && b[0] != 'N') {
		return false, NewInvalidValue(name, tag, msgBoolean)
	}

	return b[0] == 'Y', nil
}
