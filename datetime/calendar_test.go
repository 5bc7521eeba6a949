package datetime

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewDate_Valid(t *testing.T) {
	d, err := NewDate(2025, August, 3)
	require.NoError(t, err)
	require.Equal(t, int32(2025), d.Year())
	require.Equal(t, August, d.Month())
	require.Equal(t, uint8(3), d.Day())
}

func TestNewDate_RejectsFebruary29InNonLeapYear(t *testing.T) {
	_, err := NewDate(2025, February, 29)
	require.Error(t, err)
	var target *InvalidDateError
	require.ErrorAs(t, err, &target)
}

func TestNewDate_AcceptsFebruary29InLeapYear(t *testing.T) {
	_, err := NewDate(2024, February, 29)
	require.NoError(t, err)
}

func TestDaysSinceEpochRoundTrip(t *testing.T) {
	cases := []struct {
		year  int32
		month Month
		day   uint8
	}{
		{1958, January, 1},
		{1970, January, 1},
		{1972, January, 1},
		{2000, February, 29},
		{2025, August, 3},
		{2099, December, 31},
	}
	for _, c := range cases {
		d, err := NewDate(c.year, c.month, c.day)
		require.NoError(t, err)
		days := d.DaysSinceEpoch()
		round := DateFromDaysSinceEpoch(days)
		require.Equal(t, d, round)
	}
}

func TestUnixEpochIsThursday(t *testing.T) {
	d, err := NewDate(1970, January, 1)
	require.NoError(t, err)
	require.Equal(t, Thursday, d.Weekday())
	require.Equal(t, int64(0), d.DaysSinceEpoch())
}

func TestValidateTimeOfDay(t *testing.T) {
	require.NoError(t, ValidateTimeOfDay(23, 59, 59, false))
	require.Error(t, ValidateTimeOfDay(24, 0, 0, false))
	require.Error(t, ValidateTimeOfDay(0, 60, 0, false))
	require.Error(t, ValidateTimeOfDay(23, 59, 60, false))
	require.NoError(t, ValidateTimeOfDay(23, 59, 60, true))
	require.Error(t, ValidateTimeOfDay(23, 59, 61, true))
}
