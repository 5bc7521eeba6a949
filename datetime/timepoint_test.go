package datetime

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func mustNewDate(t *testing.T, year int32, month Month, day uint8) Date {
	d, err := NewDate(year, month, day)
	require.NoError(t, err)
	return d
}

func TestNewTimePoint_UTCtoTAI_WorkedExample(t *testing.T) {
	// 2025-08-03 20:25:42 UTC is 2025-08-03 20:26:19 TAI
	// (TAI-UTC = 37s on that date).
	date := mustNewDate(t, 2025, August, 3)
	utc, err := NewTimePoint[UTC, int64, Second](date, 20, 25, 42)
	require.NoError(t, err)

	tai, err := IntoScale[TAI](utc)
	require.NoError(t, err)

	taiDate, hour, minute, second, err := ToDatetime(tai)
	require.NoError(t, err)
	require.Equal(t, date, taiDate)
	require.Equal(t, uint8(20), hour)
	require.Equal(t, uint8(26), minute)
	require.Equal(t, uint8(19), second)
}

func TestNewTimePoint_UTCtoGPS_WorkedExample(t *testing.T) {
	// Same instant converted to GPS time: TAI-GPS offset is 19s, so
	// GPS-UTC is 37-19 = 18s on this date.
	date := mustNewDate(t, 2025, August, 3)
	utc, err := NewTimePoint[UTC, int64, Second](date, 20, 25, 42)
	require.NoError(t, err)

	gps, err := IntoScale[GPS](utc)
	require.NoError(t, err)

	gpsDate, hour, minute, second, err := ToDatetime(gps)
	require.NoError(t, err)
	require.Equal(t, date, gpsDate)
	require.Equal(t, uint8(20), hour)
	require.Equal(t, uint8(26), minute)
	require.Equal(t, uint8(0), second)
}

func TestNewTimePoint_LeapSecondInstant_RejectedOnOrdinaryDay(t *testing.T) {
	date := mustNewDate(t, 2025, August, 3)
	_, err := NewTimePoint[UTC, int64, Second](date, 23, 59, 60)
	require.Error(t, err)
}

func TestNewTimePoint_LeapSecondInstant_AcceptedOnLeapDay(t *testing.T) {
	date := mustNewDate(t, 1998, December, 31)
	tp, err := NewTimePoint[UTC, int64, Second](date, 23, 59, 60)
	require.NoError(t, err)

	gotDate, hour, minute, second, err := ToDatetime(tp)
	require.NoError(t, err)
	require.Equal(t, date, gotDate)
	require.Equal(t, uint8(23), hour)
	require.Equal(t, uint8(59), minute)
	require.Equal(t, uint8(60), second)
}

func TestNewTimePoint_LeapSecondDoesNotCollideWithNextMidnight(t *testing.T) {
	leapDay := mustNewDate(t, 1998, December, 31)
	nextDay := mustNewDate(t, 1999, January, 1)

	leapInstant, err := NewTimePoint[UTC, int64, Second](leapDay, 23, 59, 60)
	require.NoError(t, err)
	midnight, err := NewTimePoint[UTC, int64, Second](nextDay, 0, 0, 0)
	require.NoError(t, err)

	require.NotEqual(t, leapInstant.Ticks(), midnight.Ticks())
	require.Equal(t, -1, leapInstant.Cmp(midnight))

	gotDate, hour, minute, second, err := ToDatetime(leapInstant)
	require.NoError(t, err)
	require.Equal(t, leapDay, gotDate)
	require.Equal(t, uint8(23), hour)
	require.Equal(t, uint8(59), minute)
	require.Equal(t, uint8(60), second)
}

func TestTimePoint_AddDuration_GPSPlusTwoHours(t *testing.T) {
	date := mustNewDate(t, 2025, August, 3)
	gps, err := NewTimePoint[GPS, int64, Second](date, 10, 0, 0)
	require.NoError(t, err)

	twoHours, err := IntoUnit[Second](NewDuration[int64, Hour](2))
	require.NoError(t, err)
	later, err := gps.Add(twoHours)
	require.NoError(t, err)

	gotDate, hour, minute, second, err := ToDatetime(later)
	require.NoError(t, err)
	require.Equal(t, date, gotDate)
	require.Equal(t, uint8(12), hour)
	require.Equal(t, uint8(0), minute)
	require.Equal(t, uint8(0), second)
}

func TestTimePoint_Since(t *testing.T) {
	date := mustNewDate(t, 2025, August, 3)
	a, err := NewTimePoint[TAI, int64, Second](date, 10, 0, 0)
	require.NoError(t, err)
	b, err := NewTimePoint[TAI, int64, Second](date, 12, 30, 0)
	require.NoError(t, err)

	d, err := b.Since(a)
	require.NoError(t, err)
	require.Equal(t, int64(9000), d.Count())
}

func TestGLONASS_RoundTripThroughUTC(t *testing.T) {
	date := mustNewDate(t, 2025, August, 3)
	utc, err := NewTimePoint[UTC, int64, Second](date, 20, 0, 0)
	require.NoError(t, err)

	glonass, err := IntoScale[GLONASS](utc)
	require.NoError(t, err)

	glonassDate, hour, minute, second, err := ToDatetime(glonass)
	require.NoError(t, err)
	require.Equal(t, date, glonassDate)
	require.Equal(t, uint8(23), hour)
	require.Equal(t, uint8(0), minute)
	require.Equal(t, uint8(0), second)

	back, err := IntoScale[UTC](glonass)
	require.NoError(t, err)
	require.Equal(t, utc.Ticks(), back.Ticks())
}

func TestGLONASS_LeapInstantAcrossDayRollover(t *testing.T) {
	// UTC 1998-12-31 23:59:60 reads as GLONASS 1999-01-01 02:59:60.
	utcLeapDay := mustNewDate(t, 1998, December, 31)
	glonassDay := mustNewDate(t, 1999, January, 1)

	utc, err := NewTimePoint[UTC, int64, Second](utcLeapDay, 23, 59, 60)
	require.NoError(t, err)

	glonass, err := IntoScale[GLONASS](utc)
	require.NoError(t, err)

	gotDate, hour, minute, second, err := ToDatetime(glonass)
	require.NoError(t, err)
	require.Equal(t, glonassDay, gotDate)
	require.Equal(t, uint8(2), hour)
	require.Equal(t, uint8(59), minute)
	require.Equal(t, uint8(60), second)
}

func TestWeekAndSecondOfWeek_GPSRoundTrip(t *testing.T) {
	date := mustNewDate(t, 2025, August, 3)
	gps, err := NewTimePoint[GPS, int64, Second](date, 10, 30, 0)
	require.NoError(t, err)

	week, sow, err := WeekAndSecondOfWeek(gps)
	require.NoError(t, err)

	back, err := FromWeekAndSecondOfWeek[GPS, int64, Second](week, sow)
	require.NoError(t, err)
	require.Equal(t, gps.Ticks(), back.Ticks())
}

func TestWeekAndSecondOfWeek_UndefinedForUTC(t *testing.T) {
	date := mustNewDate(t, 2025, August, 3)
	utc, err := NewTimePoint[UTC, int64, Second](date, 10, 30, 0)
	require.NoError(t, err)

	_, _, err = WeekAndSecondOfWeek(utc)
	require.Error(t, err)
}

func TestTimePointIntoUnit_UTCtoTT_MillisecondWorkedExample(t *testing.T) {
	// UTC 2025-08-03 20:25:42, widened to milliseconds, reads
	// 2025-08-03 20:26:51.184 on TT (TAI-UTC = 37s, TT-TAI = 32.184s).
	date := mustNewDate(t, 2025, August, 3)
	utc, err := NewTimePoint[UTC, int64, Second](date, 20, 25, 42)
	require.NoError(t, err)

	utcMs, err := TimePointIntoUnit[MilliSecond](utc)
	require.NoError(t, err)
	tt, err := IntoScale[TT](utcMs)
	require.NoError(t, err)

	ttDate, hour, minute, second, sub, err := ToSubsecondDatetime[TT, int64, MilliSecond, int64, MilliSecond](tt)
	require.NoError(t, err)
	require.Equal(t, date, ttDate)
	require.Equal(t, uint8(20), hour)
	require.Equal(t, uint8(26), minute)
	require.Equal(t, uint8(51), second)
	require.Equal(t, int64(184), sub.Count())
}

func TestTimePointIntoUnit_SameUnitIsIdentity(t *testing.T) {
	date := mustNewDate(t, 2025, August, 3)
	tp, err := NewTimePoint[TAI, int64, Second](date, 12, 0, 0)
	require.NoError(t, err)

	same, err := TimePointIntoUnit[Second](tp)
	require.NoError(t, err)
	require.Equal(t, tp.Ticks(), same.Ticks())
}

func TestUTCDifferenceAcrossLeapInsertion(t *testing.T) {
	// Around the 2016-12-31 insertion: one SI second from 23:59:59 to
	// 23:59:60, another to the next midnight.
	leapDay := mustNewDate(t, 2016, December, 31)
	nextDay := mustNewDate(t, 2017, January, 1)

	before, err := NewTimePoint[UTC, int64, Second](leapDay, 23, 59, 59)
	require.NoError(t, err)
	leap, err := NewTimePoint[UTC, int64, Second](leapDay, 23, 59, 60)
	require.NoError(t, err)
	after, err := NewTimePoint[UTC, int64, Second](nextDay, 0, 0, 0)
	require.NoError(t, err)

	d1, err := leap.Since(before)
	require.NoError(t, err)
	require.Equal(t, int64(1), d1.Count())

	d2, err := after.Since(leap)
	require.NoError(t, err)
	require.Equal(t, int64(1), d2.Count())

	total, err := after.Since(before)
	require.NoError(t, err)
	require.Equal(t, int64(2), total.Count())
}

func TestScaleRoundTripThroughThreeScales(t *testing.T) {
	// tp.into(S2).into(S3).into(S1) == tp whenever no overflow occurs.
	date := mustNewDate(t, 2025, August, 3)
	utc, err := NewTimePoint[UTC, int64, MilliSecond](date, 20, 25, 42)
	require.NoError(t, err)

	gps, err := IntoScale[GPS](utc)
	require.NoError(t, err)
	tt, err := IntoScale[TT](gps)
	require.NoError(t, err)
	back, err := IntoScale[UTC](tt)
	require.NoError(t, err)
	require.Equal(t, utc.Ticks(), back.Ticks())
}

func TestNewTimePoint_TAIRejectsLeapSecond(t *testing.T) {
	// Second 60 never exists on a scale without leap seconds.
	date := mustNewDate(t, 2016, December, 31)
	_, err := NewTimePoint[TAI, int64, Second](date, 23, 59, 60)
	require.Error(t, err)
	var target *InvalidTimeOfDayError
	require.ErrorAs(t, err, &target)
}

func TestSinceAddInverse(t *testing.T) {
	// (tp2 - tp1) + tp1 == tp2.
	date := mustNewDate(t, 2024, August, 13)
	tp1, err := NewTimePoint[GPS, int64, Second](date, 19, 30, 0)
	require.NoError(t, err)
	tp2, err := NewTimePoint[GPS, int64, Second](date, 21, 30, 0)
	require.NoError(t, err)

	d, err := tp2.Since(tp1)
	require.NoError(t, err)
	require.Equal(t, int64(7200), d.Count())

	sum, err := tp1.Add(d)
	require.NoError(t, err)
	require.Equal(t, tp2.Ticks(), sum.Ticks())
}

func TestNewSubsecondTimePoint_RejectsOutOfRangeSubsecond(t *testing.T) {
	date := mustNewDate(t, 2025, August, 3)
	_, err := NewSubsecondTimePoint[TAI, int64, Second](date, 0, 0, 0, NewDuration[int64, MilliSecond](1500))
	require.Error(t, err)
}

func roundTripDatetime[S TimeScale](t *testing.T, year int32, month Month, day, hour, minute, second uint8) {
	t.Helper()
	date := mustNewDate(t, year, month, day)
	tp, err := NewTimePoint[S, int64, Second](date, hour, minute, second)
	require.NoError(t, err)

	gotDate, gotHour, gotMinute, gotSecond, err := ToDatetime(tp)
	require.NoError(t, err)
	require.Equal(t, date, gotDate)
	require.Equal(t, hour, gotHour)
	require.Equal(t, minute, gotMinute)
	require.Equal(t, second, gotSecond)
}

func TestCalendarRoundTrip_EveryScale(t *testing.T) {
	cases := []struct {
		year    int32
		month   Month
		day     uint8
		h, m, s uint8
	}{
		{1980, January, 6, 0, 0, 0},
		{1999, August, 22, 12, 34, 56},
		{2016, December, 31, 23, 59, 59},
		{2017, January, 1, 0, 0, 0},
		{2025, August, 3, 20, 25, 42},
	}
	for _, c := range cases {
		roundTripDatetime[TAI](t, c.year, c.month, c.day, c.h, c.m, c.s)
		roundTripDatetime[TT](t, c.year, c.month, c.day, c.h, c.m, c.s)
		roundTripDatetime[UTC](t, c.year, c.month, c.day, c.h, c.m, c.s)
		roundTripDatetime[GPS](t, c.year, c.month, c.day, c.h, c.m, c.s)
		roundTripDatetime[Galileo](t, c.year, c.month, c.day, c.h, c.m, c.s)
		roundTripDatetime[BeiDou](t, c.year, c.month, c.day, c.h, c.m, c.s)
		roundTripDatetime[QZSS](t, c.year, c.month, c.day, c.h, c.m, c.s)
		roundTripDatetime[IRNSS](t, c.year, c.month, c.day, c.h, c.m, c.s)
		roundTripDatetime[GLONASS](t, c.year, c.month, c.day, c.h, c.m, c.s)
	}
}

func TestToSubsecondDatetime_PreservesFraction(t *testing.T) {
	date := mustNewDate(t, 2025, August, 3)
	tp, err := NewSubsecondTimePoint[TAI, int64, MilliSecond](date, 1, 2, 3, NewDuration[int64, MilliSecond](250))
	require.NoError(t, err)

	gotDate, hour, minute, second, sub, err := ToSubsecondDatetime[TAI, int64, MilliSecond, int64, MilliSecond](tp)
	require.NoError(t, err)
	require.Equal(t, date, gotDate)
	require.Equal(t, uint8(1), hour)
	require.Equal(t, uint8(2), minute)
	require.Equal(t, uint8(3), second)
	require.Equal(t, int64(250), sub.Count())
}
