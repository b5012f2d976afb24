package endian

import (
	"encoding/binary"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestCheckEndianness(t *testing.T) {
	result := CheckEndianness()

	var testValue uint16 = 0x0102
	testBytes := (*[2]byte)(unsafe.Pointer(&testValue))

	switch testBytes[0] {
	case 0x01:
		require.Equal(t, binary.BigEndian, result)
		require.False(t, IsNativeLittleEndian())
	case 0x02:
		require.Equal(t, binary.LittleEndian, result)
		require.True(t, IsNativeLittleEndian())
	default:
		require.Failf(t, "Unexpected byte value", "got: %v", testBytes[0])
	}
}

func TestEngines(t *testing.T) {
	le := GetLittleEndianEngine()
	be := GetBigEndianEngine()

	require.Equal(t, []byte{0x04, 0x03, 0x02, 0x01}, le.AppendUint32(nil, 0x01020304))
	require.Equal(t, []byte{0x01, 0x02, 0x03, 0x04}, be.AppendUint32(nil, 0x01020304))

	require.False(t, IsBigEndian(le))
	require.True(t, IsBigEndian(be))
	require.Equal(t, "little", Name(le))
	require.Equal(t, "big", Name(be))
}

func TestEngines_RoundTrip(t *testing.T) {
	for _, engine := range []EndianEngine{GetLittleEndianEngine(), GetBigEndianEngine()} {
		buf := engine.AppendUint64(nil, 0xDEADBEEFCAFEBABE)
		buf = engine.AppendUint32(buf, 42)
		require.Equal(t, uint64(0xDEADBEEFCAFEBABE), engine.Uint64(buf))
		require.Equal(t, uint32(42), engine.Uint32(buf[8:]))
	}
}
