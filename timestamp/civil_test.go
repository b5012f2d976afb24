package timestamp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCivilFromDays_Epoch(t *testing.T) {
	y, m, d := CivilFromDays(0)
	require.Equal(t, []int{1970, 1, 1}, []int{y, m, d})
	require.Equal(t, int64(0), DaysFromCivil(1970, 1, 1))
}

func TestCivilFromDays_KnownDates(t *testing.T) {
	tests := []struct {
		days    int64
		y, m, d int
	}{
		{-1, 1969, 12, 31},
		{-719_468, 0, 3, 1},
		{59, 1970, 3, 1},
		{10_956, 1999, 12, 31},
		{10_957, 2000, 1, 1},
		{11_016, 2000, 2, 29},
		{19_675, 2023, 11, 14},
		{2_932_896, 9999, 12, 31},
	}
	for _, tt := range tests {
		y, m, d := CivilFromDays(tt.days)
		require.Equal(t, []int{tt.y, tt.m, tt.d}, []int{y, m, d}, "day %d", tt.days)
		require.Equal(t, tt.days, DaysFromCivil(tt.y, tt.m, tt.d))
	}
}

func TestCivil_MatchesTimePackage(t *testing.T) {
	// 0001-01-01 through 9999-12-31
	for day := int64(-719_162); day <= 2_932_896; day += 13 {
		want := time.Unix(day*secondsPerDay, 0).UTC()
		y, m, d := CivilFromDays(day)
		require.Equal(t, want.Year(), y, "day %d", day)
		require.Equal(t, int(want.Month()), m, "day %d", day)
		require.Equal(t, want.Day(), d, "day %d", day)
		require.Equal(t, day, DaysFromCivil(y, m, d))
	}
}

func TestSplit(t *testing.T) {
	day, sod := split(0)
	require.Equal(t, int64(0), day)
	require.Equal(t, int64(0), sod)

	day, sod = split(-1)
	require.Equal(t, int64(-1), day)
	require.Equal(t, int64(secondsPerDay-1), sod)

	day, sod = split(1_700_000_000)
	require.Equal(t, int64(19_675), day)
	require.Equal(t, int64(22*3600+13*60+20), sod)
}
