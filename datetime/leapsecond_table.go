package datetime

// Code generated by cmd/leapgen from
// https://data.iana.org/time-zones/data/leap-seconds.list. DO NOT EDIT.
//
// The LeapSecondRecord type and the lookup functions around this table are
// hand-maintained in leapsecond.go; this file holds only the data itself,
// including the 1972-01-01 baseline entry establishing TAI-UTC=10s. No leap
// second has been scheduled since 2017-01-01 as of this writing, so this
// table remains complete.
var leapSecondTable = []LeapSecondRecord{
	{Mjd: 41317, TaiMinusUtc: 10}, // 1972-01-01
	{Mjd: 41499, TaiMinusUtc: 11}, // 1972-07-01
	{Mjd: 41683, TaiMinusUtc: 12}, // 1973-01-01
	{Mjd: 42048, TaiMinusUtc: 13}, // 1974-01-01
	{Mjd: 42413, TaiMinusUtc: 14}, // 1975-01-01
	{Mjd: 42778, TaiMinusUtc: 15}, // 1976-01-01
	{Mjd: 43144, TaiMinusUtc: 16}, // 1977-01-01
	{Mjd: 43509, TaiMinusUtc: 17}, // 1978-01-01
	{Mjd: 43874, TaiMinusUtc: 18}, // 1979-01-01
	{Mjd: 44239, TaiMinusUtc: 19}, // 1980-01-01
	{Mjd: 44786, TaiMinusUtc: 20}, // 1981-07-01
	{Mjd: 45151, TaiMinusUtc: 21}, // 1982-07-01
	{Mjd: 45516, TaiMinusUtc: 22}, // 1983-07-01
	{Mjd: 46247, TaiMinusUtc: 23}, // 1985-07-01
	{Mjd: 47161, TaiMinusUtc: 24}, // 1988-01-01
	{Mjd: 47892, TaiMinusUtc: 25}, // 1990-01-01
	{Mjd: 48257, TaiMinusUtc: 26}, // 1991-01-01
	{Mjd: 48804, TaiMinusUtc: 27}, // 1992-07-01
	{Mjd: 49169, TaiMinusUtc: 28}, // 1993-07-01
	{Mjd: 49534, TaiMinusUtc: 29}, // 1994-07-01
	{Mjd: 50083, TaiMinusUtc: 30}, // 1996-01-01
	{Mjd: 50630, TaiMinusUtc: 31}, // 1997-07-01
	{Mjd: 51179, TaiMinusUtc: 32}, // 1999-01-01
	{Mjd: 53736, TaiMinusUtc: 33}, // 2006-01-01
	{Mjd: 54832, TaiMinusUtc: 34}, // 2009-01-01
	{Mjd: 56109, TaiMinusUtc: 35}, // 2012-07-01
	{Mjd: 57204, TaiMinusUtc: 36}, // 2015-07-01
	{Mjd: 57754, TaiMinusUtc: 37}, // 2017-01-01
}
