//go:build !freestanding

package datetime

import "time"

/*
Now reads the host's wall clock and returns it as a TimePoint, the one place
this module touches an OS facility. It feeds time.Now()'s UTC calendar
fields through the ordinary datetime constructor rather than hand-rolling a
wall-clock reader.

Building with -tags freestanding excludes this file (see
now_freestanding.go), so the library compiles without any host dependency
when that capability is not available.
*/
func Now[S TimeScale, R Representation, U Unit]() (TimePoint[S, R, U], error) {
	now := time.Now().UTC()
	year, month, day := now.Date()
	utc, err := NewSubsecondTimePoint[UTC, R, U](
		mustDate(int32(year), Month(month), uint8(day)),
		uint8(now.Hour()), uint8(now.Minute()), uint8(now.Second()),
		// The subsecond is always carried as int64 nanoseconds regardless of
		// R, so a narrow R cannot silently truncate the wall-clock fraction.
		NewDuration[int64, NanoSecond](int64(now.Nanosecond())),
	)
	if err != nil {
		return TimePoint[S, R, U]{}, err
	}
	return IntoScale[S, UTC, R, U](utc)
}

func mustDate(year int32, month Month, day uint8) Date {
	d, err := NewDate(year, month, day)
	if err != nil {
		// time.Time.Date() can only ever produce a real calendar date.
		panic(err)
	}
	return d
}
