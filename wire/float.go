package wire

import "math"

const (
	f32Scale  = 1_000_000
	f32Digits = 6
	f64Scale  = 1_000_000_000_000_000
	f64Digits = 15

	// Fractional digits accepted by the readers. Writers never emit more than
	// f32Digits / f64Digits, the extra room keeps foreign input accurate.
	f32FracMax = 9
	f64FracMax = 18

	// Largest magnitudes whose scaled value still fits a uint64.
	f32ScaledMax = 18_000_000_000_000
	f64ScaledMax = 18_446
)

var pow10f32 = [f32FracMax + 1]float32{
	1, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9,
}

var pow10f64 = [f64FracMax + 1]float64{
	1, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9,
	1e10, 1e11, 1e12, 1e13, 1e14, 1e15, 1e16, 1e17, 1e18,
}

// ReadF32 parses a decimal float of the form [-]digits[.digits].
//
// Scientific notation is not supported. Fractional digits past the ninth are
// ignored. Parsing stops at the first unrecognized byte; empty input yields 0.
// A lone "-" or "-0" yields negative zero.
func ReadF32(b []byte) float32 {
	i, neg := 0, false
	if len(b) > 0 && b[0] == '-' {
		i, neg = 1, true
	}

	// Same 19-digit split as ReadF64, so every integral WriteF32 output reads back.
	var ip uint64
	var wide float64
	nd := 0
	for ; i < len(b) && isDigit(b[i]); i++ {
		d := uint64(b[i] - '0')
		switch {
		case nd < 19:
			ip = ip*10 + d
		case nd == 19:
			wide = float64(ip)*10 + float64(d)
		default:
			wide = wide*10 + float64(d)
		}
		nd++
	}

	var frac uint32
	fracLen := 0
	if i < len(b) && b[i] == '.' {
		for i++; i < len(b) && isDigit(b[i]); i++ {
			if fracLen < f32FracMax {
				frac = frac*10 + uint32(b[i]-'0')
				fracLen++
			}
		}
	}

	v := float32(ip)
	if nd > 19 {
		v = float32(wide)
	}
	if fracLen > 0 {
		v += float32(frac) / pow10f32[fracLen]
	}
	if neg {
		return -v
	}

	return v
}

// ReadF64 parses a decimal float of the form [-]digits[.digits].
//
// Scientific notation is not supported. Fractional digits past the eighteenth are
// ignored. Parsing stops at the first unrecognized byte; empty input yields 0.
// A lone "-" or "-0" yields negative zero.
func ReadF64(b []byte) float64 {
	i, neg := 0, false
	if len(b) > 0 && b[0] == '-' {
		i, neg = 1, true
	}

	// Up to 19 integer digits are exact in a uint64; longer runs continue in
	// floating point.
	var ip uint64
	var wide float64
	nd := 0
	for ; i < len(b) && isDigit(b[i]); i++ {
		d := uint64(b[i] - '0')
		switch {
		case nd < 19:
			ip = ip*10 + d
		case nd == 19:
			wide = float64(ip)*10 + float64(d)
		default:
			wide = wide*10 + float64(d)
		}
		nd++
	}

	var frac uint64
	fracLen := 0
	if i < len(b) && b[i] == '.' {
		for i++; i < len(b) && isDigit(b[i]); i++ {
			if fracLen < f64FracMax {
				frac = frac*10 + uint64(b[i]-'0')
				fracLen++
			}
		}
	}

	v := float64(ip)
	if nd > 19 {
		v = wide
	}
	if fracLen > 0 {
		v += float64(frac) / pow10f64[fracLen]
	}
	if neg {
		return -v
	}

	return v
}

// writeFraction writes '.' and the width-digit fraction at dst[pos:] with trailing
// zeros trimmed. Nothing is written for a zero fraction. Returns the new position.
func writeFraction(dst []byte, pos int, frac uint64, width int) int {
	if frac == 0 {
		return pos
	}
	dst[pos] = '.'
	pos++
	putFixed(dst, pos, width, frac)
	pos += width
	for dst[pos-1] == '0' {
		pos--
	}

	return pos
}

// writeIntegral writes a non-negative integral float in decimal.
func writeIntegral(dst []byte, pos int, v float64) int {
	if v < 1<<64 {
		return WriteU64(dst, pos, uint64(v))
	}

	return WriteU128(dst, pos, uint128FromFloat(v))
}

// uint128FromFloat converts an integral v >= 2^64 to a Uint128.
// Values at or above 2^128 are outside the contract.
func uint128FromFloat(v float64) Uint128 {
	frac, exp := math.Frexp(v)
	m := uint64(frac * (1 << 53))
	shift := uint(exp - 53) //nolint:gosec
	if shift >= 64 {
		return Uint128{Hi: m << (shift - 64)}
	}

	return Uint128{Hi: m >> (64 - shift), Lo: m << shift}
}

// WriteF32 writes v with up to 6 fractional digits and returns the number of bytes written.
//
// The value is scaled by 10^6 in float32 precision, rounded half-to-even, and written as
// integer part, '.', and the trimmed fraction. Integral results have no decimal point.
// A set sign bit always produces a leading '-', so -0.0 is written as "-0".
//
// Requires MaxF32Len bytes of capacity after off for magnitudes below 1.8e13.
// NaN and infinities produce unspecified output.
func WriteF32(dst []byte, off int, v float32) int {
	pos := off
	if math.Signbit(float64(v)) {
		dst[pos] = '-'
		pos++
		v = -v
	}

	if v >= f32ScaledMax {
		// float32 has no fractional bits at this magnitude
		return pos + writeIntegral(dst, pos, float64(v)) - off
	}

	scaled := uint64(math.RoundToEven(float64(float32(v * f32Scale))))
	ip := scaled / f32Scale
	pos += WriteU64(dst, pos, ip)
	pos = writeFraction(dst, pos, scaled-ip*f32Scale, f32Digits)

	return pos - off
}

// WriteF64 writes v with up to 15 fractional digits and returns the number of bytes written.
//
// The value is scaled by 10^15, rounded half-to-even, and written as integer part, '.',
// and the trimmed fraction. Integral results have no decimal point. A set sign bit always
// produces a leading '-', so -0.0 is written as "-0".
//
// Requires MaxF64Len bytes of capacity after off for magnitudes below 1e9.
// NaN and infinities produce unspecified output.
//
// Example:
//
//	buf := make([]byte, wire.MaxF64Len)
//	n := wire.WriteF64(buf, 0, 123.456789) // buf[:n] == "123.456789"
func WriteF64(dst []byte, off int, v float64) int {
	pos := off
	if math.Signbit(v) {
		dst[pos] = '-'
		pos++
		v = -v
	}

	if v < f64ScaledMax {
		scaled := uint64(math.RoundToEven(v * f64Scale))
		ip := scaled / f64Scale
		pos += WriteU64(dst, pos, ip)
		pos = writeFraction(dst, pos, scaled-ip*f64Scale, f64Digits)

		return pos - off
	}

	// The scaled value would overflow a uint64: round the fraction on its own.
	ip := math.Floor(v)
	frac := uint64(math.RoundToEven((v - ip) * f64Scale))
	if frac >= f64Scale {
		frac -= f64Scale
		ip++
	}
	pos += writeIntegral(dst, pos, ip)
	pos = writeFraction(dst, pos, frac, f64Digits)

	return pos - off
}
