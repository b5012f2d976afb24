package wire

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/raul-gherman/fix44-forge-helpers/errs"
)

var newOrderMeta = []Member{
	{Name: "ClOrdID", Tag: 11, Kind: MemberField},
	{Name: "Instrument", Tag: 55, Kind: MemberComponent},
	{Name: "Side", Tag: 54, Kind: MemberField},
	{Name: "NoPartyIDs", Tag: 453, Kind: MemberGroup},
}

func TestReadError_InvalidValue(t *testing.T) {
	err := NewInvalidValue("MsgSeqNum", 34, "expected digits")
	require.Equal(t, "Invalid value for MsgSeqNum (tag=34): expected digits", err.Error())
	require.ErrorIs(t, err, errs.ErrInvalidValue)
	require.ErrorIs(t, err, ErrInvalidValue)
	require.False(t, errors.Is(err, errs.ErrMissingRequiredFields))

	names, ok := err.MissingMemberNames()
	require.False(t, ok)
	require.Nil(t, names)
}

func TestReadError_MissingRequiredFields(t *testing.T) {
	err := NewMissingRequiredFields(0b1001, newOrderMeta)
	require.Equal(t,
		"Missing required members (mask=0x9): field ClOrdID(tag=11), group NoPartyIDs(countTag=453)",
		err.Error())
	require.ErrorIs(t, err, errs.ErrMissingRequiredFields)

	names, ok := err.MissingMemberNames()
	require.True(t, ok)
	require.Equal(t, []string{"ClOrdID", "NoPartyIDs"}, names)
}

func TestReadError_MissingComponent(t *testing.T) {
	err := NewMissingRequiredFields(0b0010, newOrderMeta)
	require.Equal(t, "Missing required members (mask=0x2): component Instrument(tag=55)", err.Error())
}

func TestReadError_NothingMissing(t *testing.T) {
	err := NewMissingRequiredFields(0, newOrderMeta)
	require.Equal(t, "No required members are missing", err.Error())

	names, ok := err.MissingMemberNames()
	require.True(t, ok)
	require.Empty(t, names)
	require.NotNil(t, names)
}

func TestReadError_MaskBeyondMeta(t *testing.T) {
	err := NewMissingRequiredFields(1<<10|1, newOrderMeta)
	names, ok := err.MissingMemberNames()
	require.True(t, ok)
	require.Equal(t, []string{"ClOrdID"}, names)
}

func TestReadErrorKind_String(t *testing.T) {
	require.Equal(t, "InvalidValue", InvalidValue.String())
	require.Equal(t, "MissingRequiredFields", MissingRequiredFields.String())
	require.Equal(t, "Unknown", ReadErrorKind(0).String())
	require.Equal(t, "group", MemberGroup.String())
}
