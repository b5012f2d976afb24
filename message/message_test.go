package message

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/raul-gherman/fix44-forge-helpers/errs"
	"github.com/raul-gherman/fix44-forge-helpers/wire"
)

func TestForgeOutBuffer(t *testing.T) {
	for _, version := range []string{"FIX.4.4", "FIX.4.2"} {
		t.Run(version, func(t *testing.T) {
			buf := ForgeOutBuffer(version)
			require.Len(t, buf, BufferSize)

			want := "8=" + version + "\x019=0000\x0135="
			require.Len(t, want, HeaderLen)
			require.Equal(t, want, string(buf[:HeaderLen]))

			for i, b := range buf[WriteStart:] {
				require.Zero(t, b, "byte %d after header", WriteStart+i)
			}
		})
	}

	buf := ForgeOutBuffer(DefaultVersion)
	require.Equal(t, Header, string(buf[:WriteStartFor(DefaultVersion)]))
}

func TestForgeOutBuffer_Independent(t *testing.T) {
	a := ForgeOutBuffer(DefaultVersion)
	b := ForgeOutBuffer(DefaultVersion)
	b[WriteStart] = 'X'

	require.Equal(t, byte(0), a[WriteStart])
	require.Equal(t, Header, string(a[:HeaderLen]))
	require.Equal(t, Header, string(b[:HeaderLen]))
}

func TestForgeOutBuffer_ReadyForWriting(t *testing.T) {
	buf := ForgeOutBuffer(DefaultVersion)

	pos := WriteStart
	buf[pos] = 'D'
	pos++
	buf[pos] = wire.SOH
	pos++
	pos += wire.WriteTagAndU32(buf[:], pos, []byte("34="), 123)

	UpdateBodyLength(buf[:], pos)

	require.Equal(t, "8=FIX.4.4\x019=0012\x0135=D\x0134=123\x01", string(buf[:pos]))
	require.Equal(t, "8=F", string(buf[:3]))
	require.Equal(t, "9=", string(buf[10:12]))
	require.Equal(t, "35=", string(buf[17:20]))
}

func TestUpdateBodyLength(t *testing.T) {
	tests := []struct {
		end  int
		want string
	}{
		{17, "0000"},
		{59, "0042"},
		{1251, "1234"},
		{10016, "9999"},
		{10017, "0000"},
	}
	buf := ForgeOutBuffer(DefaultVersion)
	for _, tt := range tests {
		UpdateBodyLength(buf[:], tt.end)
		require.Equal(t, tt.want, string(buf[BodyLengthValuePos:BodyLengthValuePos+BodyLengthWidth]), "end %d", tt.end)
		require.Equal(t, "8=FIX.4.4\x01", string(buf[:10]))
		require.Equal(t, "9=", string(buf[10:12]))
		require.Equal(t, "\x0135=", string(buf[16:20]))
	}
}

func TestUpdateBodyLengthRange(t *testing.T) {
	buf := ForgeOutBuffer(DefaultVersion)
	UpdateBodyLengthRange(buf[:], 100, 107)
	require.Equal(t, "0007", string(buf[BodyLengthValuePos:BodyLengthValuePos+4]))
}

func TestWriteStartFor(t *testing.T) {
	require.Equal(t, 20, WriteStartFor("FIX.4.4"))
	require.Equal(t, 20, WriteStartFor("FIX.4.2"))
	require.Equal(t, 21, WriteStartFor("FIXT.1.1"))
}

func TestLayoutFor_FIXT(t *testing.T) {
	const version = "FIXT.1.1"
	buf := ForgeOutBuffer(version)
	layout := LayoutFor(version)
	require.Equal(t, "8=FIXT.1.1\x019=0000\x0135=", string(buf[:layout.WriteStart]))

	pos := layout.WriteStart
	pos += wire.WriteStr(buf[:], pos, "A")
	buf[pos] = wire.SOH
	pos++
	layout.UpdateBodyLength(buf[:], pos)

	require.Equal(t, "8=FIXT.1.1\x019=0005\x0135=A\x01", string(buf[:pos]))
}

func TestValidateVersion(t *testing.T) {
	require.NoError(t, ValidateVersion("FIX.4.4"))
	require.NoError(t, ValidateVersion("FIXT.1.1"))

	for _, bad := range []string{"", "FIX=4", "FIX\x014", "FIX.4.4.FIX.4.4.FIX.4.4.FIX.4.4.FIX"} {
		require.ErrorIs(t, ValidateVersion(bad), errs.ErrInvalidFixVersion, "version %q", bad)
	}
}
