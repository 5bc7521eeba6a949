package datetime

import "sort"

/*
Leap-second table.

A LeapSecondRecord stores the absolute TAI-minus-UTC offset in effect from
the given UTC day onward, so a lookup needs no re-derivation from per-step
insertion values.

Utc1972Mjd is the Modified Julian Day of 1972-01-01, the instant at which
TAI-UTC was fixed at 10s and the leap-second era began. UTC is undefined
before it under this library's policy: earlier dates are rejected with
UnsupportedHistoricalDateError rather than approximated.
*/
type LeapSecondRecord struct {
	Mjd         int32 // UTC day, as a Modified Julian Day number, on which this offset takes effect
	TaiMinusUtc int64 // TAI-UTC, in whole seconds, from this day onward until superseded
}

const Utc1972Mjd int32 = 41317

// leapSecondTable itself lives in leapsecond_table.go, a file cmd/leapgen
// regenerates from the IERS bulletin; this file holds only the
// hand-maintained lookup logic around it, so re-running leapgen and
// committing its output never touches anything below.

func init() {
	if !sort.SliceIsSorted(leapSecondTable, func(i, j int) bool {
		return leapSecondTable[i].Mjd < leapSecondTable[j].Mjd
	}) {
		panic("leapSecondTable must be sorted ascending by Mjd")
	}
}

// LeapSecondsAtUTC returns TAI-UTC in effect at the given UTC Modified
// Julian Day. Returns UnsupportedHistoricalDateError for mjd < Utc1972Mjd.
func LeapSecondsAtUTC(mjd int32) (int64, error) {
	if mjd < Utc1972Mjd {
		return 0, &UnsupportedHistoricalDateError{Scale: "UTC", Detail: "UTC is undefined before 1972-01-01 under this library's policy"}
	}
	// binary search for the last record with Mjd <= mjd.
	i := sort.Search(len(leapSecondTable), func(i int) bool {
		return leapSecondTable[i].Mjd > mjd
	})
	return leapSecondTable[i-1].TaiMinusUtc, nil
}

// IsLeapSecondDay reports whether a 23:59:60 leap second is inserted at the
// end of the given UTC Modified Julian Day, i.e. whether the offset in
// effect on the following day differs from the offset in effect on mjd.
func IsLeapSecondDay(mjd int32) bool {
	before, err := LeapSecondsAtUTC(mjd)
	if err != nil {
		return false
	}
	after, err := LeapSecondsAtUTC(mjd + 1)
	if err != nil {
		return false
	}
	return after != before
}

// taiEffectiveFrom returns the TAI instant, in whole seconds since the TAI
// epoch (1958-01-01T00:00:00 TAI), at which r's offset takes effect: the
// record's UTC midnight read on the TAI clock, i.e. shifted forward by the
// new offset itself.
func taiEffectiveFrom(r LeapSecondRecord) int64 {
	return int64(r.Mjd-TaiEpochMjd)*86400 + r.TaiMinusUtc
}

// LeapSecondsFromTAI returns TAI-UTC in effect at the given TAI instant,
// expressed in whole seconds since the TAI epoch: the offset of the last
// record whose start_utc + offset is at or before taiSeconds. Instants
// before the 1972 baseline takes effect are rejected, like LeapSecondsAtUTC.
func LeapSecondsFromTAI(taiSeconds int64) (int64, error) {
	if taiSeconds < taiEffectiveFrom(leapSecondTable[0]) {
		return 0, &UnsupportedHistoricalDateError{Scale: "UTC", Detail: "UTC is undefined before 1972-01-01 under this library's policy"}
	}
	i := sort.Search(len(leapSecondTable), func(i int) bool {
		return taiEffectiveFrom(leapSecondTable[i]) > taiSeconds
	})
	return leapSecondTable[i-1].TaiMinusUtc, nil
}
