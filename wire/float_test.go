package wire

import (
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeF64String(v float64) string {
	buf := make([]byte, 64)
	return string(buf[:WriteF64(buf, 0, v)])
}

func writeF32String(v float32) string {
	buf := make([]byte, 64)
	return string(buf[:WriteF32(buf, 0, v)])
}

func TestWriteF64(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want string
	}{
		{"zero", 0, "0"},
		{"integral", 123, "123"},
		{"six places", 123.456789, "123.456789"},
		{"half", 0.5, "0.5"},
		{"price", 123.45, "123.45"},
		{"negative", -42.25, "-42.25"},
		{"small", 0.000001, "0.000001"},
		{"smallest unit", 0.000000000000001, "0.000000000000001"},
		{"below unit rounds to zero", 0.0000000000000004, "0"},
		{"large integral", 1e18, "1000000000000000000"},
		{"above u64 scale", 123456.5, "123456.5"},
		{"two pow 64", 18446744073709551616, "18446744073709551616"},
		{"two pow 70", 1180591620717411303424, "1180591620717411303424"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, writeF64String(tt.in))
		})
	}
}

func TestWriteF64_NegativeZero(t *testing.T) {
	require.Equal(t, "-0", writeF64String(math.Copysign(0, -1)))
	require.Equal(t, "-0", writeF64String(-0.0000000000000001))
	require.Equal(t, "-0", writeF32String(float32(math.Copysign(0, -1))))
}

func TestWriteF64_NoScientificNotation(t *testing.T) {
	for _, v := range []float64{1e-10, 1e15, 1e20, 123456789.123} {
		s := writeF64String(v)
		require.NotContains(t, s, "e", "value %v", v)
		require.NotContains(t, s, "E", "value %v", v)
		if strings.Contains(s, ".") {
			require.False(t, strings.HasSuffix(s, "0"), "trailing zero in %q", s)
		}
	}
}

func TestWriteF64_MaxLen(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want string
	}{
		{"nine integer digits", 123456789.1, "123456789.099999994039536"},
		{"negative nine integer digits", -123456789.1, "-123456789.099999994039536"},
		{"just below 1e9", 999999999.123456, "999999999.123456001281738"},
		{"negative just below 1e9", -999999999.123456, "-999999999.123456001281738"},
		{"just below 1e8", 99999999.123456789, "99999999.123456791043282"},
		{"negative just below 1e8", -99999999.123456789, "-99999999.123456791043282"},
		{"split path start", -18446.5, "-18446.5"},
		{"smallest negative unit", -0.000000000000001, "-0.000000000000001"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := make([]byte, MaxF64Len)
			var n int
			require.NotPanics(t, func() { n = WriteF64(buf, 0, tt.in) })
			require.Equal(t, tt.want, string(buf[:n]))
			require.LessOrEqual(t, n, MaxF64Len)
		})
	}
}

func TestWriteF64_MaxLenRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	buf := make([]byte, MaxF64Len)

	for range 10000 {
		v := -rng.Float64() * 1e9
		n := WriteF64(buf, 0, v)
		require.LessOrEqual(t, n, MaxF64Len, "value %v", v)
	}
}

func TestWriteF32(t *testing.T) {
	tests := []struct {
		name string
		in   float32
		want string
	}{
		{"zero", 0, "0"},
		{"integral", 123, "123"},
		{"three places", 123.456, "123.456"},
		{"negative", -123.456, "-123.456"},
		{"quarter", 0.25, "0.25"},
		{"below unit rounds to zero", 0.0000004, "0"},
		{"large", 1e20, "100000002004087734272"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, writeF32String(tt.in))
		})
	}
}

func TestReadF64(t *testing.T) {
	require.Equal(t, 0.0, ReadF64(nil))
	require.Equal(t, 0.0, ReadF64([]byte("0")))
	require.Equal(t, 123.0, ReadF64([]byte("123")))
	require.Equal(t, 123.0, ReadF64([]byte("123.")))
	require.InDelta(t, 0.456, ReadF64([]byte(".456")), 1e-15)
	require.InDelta(t, -123.456, ReadF64([]byte("-123.456")), 1e-12)
	require.InDelta(t, 123.456789012345, ReadF64([]byte("123.456789012345")), 1e-12)
	require.Equal(t, 1.5, ReadF64([]byte("1.5\x0144=")))
	require.Equal(t, 1.0, ReadF64([]byte("1e5")))
	require.InEpsilon(t, 1e25, ReadF64([]byte("10000000000000000000000000")), 1e-12)

	negZero := ReadF64([]byte("-0"))
	require.True(t, math.Signbit(negZero))
	require.True(t, math.Signbit(ReadF64([]byte("-"))))
}

func TestReadF32(t *testing.T) {
	require.Equal(t, float32(0), ReadF32(nil))
	require.Equal(t, float32(123), ReadF32([]byte("123")))
	require.InDelta(t, float32(123.456), ReadF32([]byte("123.456")), 1e-4)
	require.InDelta(t, float32(-123.456), ReadF32([]byte("-123.456")), 1e-4)
	require.InDelta(t, float32(0.456), ReadF32([]byte(".456")), 1e-6)
	require.True(t, math.Signbit(float64(ReadF32([]byte("-0")))))
}

func TestReadF32_WideIntegral(t *testing.T) {
	for _, v := range []float32{1e19, 1e20, -1e25, 3e38, math.MaxFloat32} {
		s := writeF32String(v)
		require.Equal(t, v, ReadF32([]byte(s)), "value %v encoded as %q", v, s)
	}
	require.Equal(t, float32(1e20), ReadF32([]byte("100000002004087734272")))
}

func TestFloatRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	buf := make([]byte, MaxF64Len)

	for range 10000 {
		// prices with up to 9 decimals in a range where 15 fractional digits are meaningful
		v := math.Round((rng.Float64()*2000-1000)*1e9) / 1e9
		n := WriteF64(buf, 0, v)
		got := ReadF64(buf[:n])
		require.InDelta(t, v, got, 1e-12, "value %v encoded as %q", v, buf[:n])
	}
}

func TestFloatRoundTrip_F32(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	buf := make([]byte, MaxF32Len)

	for range 10000 {
		v := float32(math.Round((rng.Float64()*2000-1000)*1e3) / 1e3)
		n := WriteF32(buf, 0, v)
		got := ReadF32(buf[:n])
		require.InDelta(t, v, got, 1e-3, "value %v encoded as %q", v, buf[:n])
	}
}
