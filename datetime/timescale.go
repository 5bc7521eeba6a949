package datetime

import "math/big"

/*
TimeScale registry.

Every scale is pivoted through TAI, so n scales need n conversion pairs
rather than n^2. The pivot representation is attoseconds elapsed since the
TAI epoch (1958-01-01T00:00:00 TAI), held in a math/big.Int so that no
scale conversion ever loses precision regardless of the Duration's own
(R, U) — the same widening intermediate ScaleRatio uses in numeric.go.

Each scale's TimePoint ticks are counted from the *same* absolute instant
that backs the TAI ticks, shifted only by the scale's own small, constant
(or, for UTC/GLONASS, table-driven) offset. The conventional per-scale
epochs (GPS week zero, the Galileo and BeiDou reference epochs) surface
only in the week/second-of-week helpers in timepoint.go, never in the
pivot arithmetic itself.
*/

var attosecondsPerSecond = new(big.Int).SetUint64(1_000_000_000_000_000_000)
var attosecondsPerDay = new(big.Int).Mul(big.NewInt(86400), attosecondsPerSecond)

// TaiEpochMjd is the Modified Julian Day of the TAI epoch, 1958-01-01.
const TaiEpochMjd int32 = 36204

// UnixEpochMjd is the Modified Julian Day of the Unix epoch, 1970-01-01,
// used to translate Date's days-since-1970 count into MJD.
const UnixEpochMjd int32 = 40587

// TimeScale is implemented by every marker type usable as the S parameter
// of TimePoint[S, R, U]. ToTAI and FromTAI both operate on the shared
// attosecond-since-TAI-epoch pivot and must be mutual inverses except at
// UTC/GLONASS leap-second instants.
type TimeScale interface {
	// Name returns the scale's short identifier, e.g. "TAI", "UTC", "GPS".
	Name() string
	// ToTAI converts an attosecond count, read as this scale's ticks since
	// the shared pivot instant, into the equivalent TAI attosecond count.
	ToTAI(atto *big.Int) (*big.Int, error)
	// FromTAI is the inverse of ToTAI.
	FromTAI(atto *big.Int) (*big.Int, error)
	// CountsLeapSeconds reports whether this scale's calendar construction
	// may legally produce a 23:59:60 (or equivalent) instant.
	CountsLeapSeconds() bool
}

func mjdOfAtto(atto *big.Int) int32 {
	days := new(big.Int).Div(atto, attosecondsPerDay) // floor division; big.Int.Div implements Euclidean, matches floor for positive divisor
	return int32(days.Int64()) + TaiEpochMjd
}

/***** TAI ***************************************/

// TAI is International Atomic Time: continuous, no leap seconds, the
// canonical pivot scale.
type TAI struct{}

func (TAI) Name() string                              { return "TAI" }
func (TAI) ToTAI(atto *big.Int) (*big.Int, error)      { return atto, nil }
func (TAI) FromTAI(atto *big.Int) (*big.Int, error)    { return atto, nil }
func (TAI) CountsLeapSeconds() bool                    { return false }

/***** TT *****************************************/

// TT is Terrestrial Time: TAI + 32.184s exactly, no leap seconds.
type TT struct{}

// 32.184 s = 32184/1000 s, so 32184 * 10^15 attoseconds.
var ttOffsetAtto = new(big.Int).Mul(big.NewInt(32184), pow10(15))

func (TT) Name() string { return "TT" }
func (TT) ToTAI(atto *big.Int) (*big.Int, error) {
	return new(big.Int).Sub(atto, ttOffsetAtto), nil
}
func (TT) FromTAI(atto *big.Int) (*big.Int, error) {
	return new(big.Int).Add(atto, ttOffsetAtto), nil
}
func (TT) CountsLeapSeconds() bool { return false }

/***** UTC ****************************************/

/*
UTC is Coordinated Universal Time.

Unlike the affine scales above, UTC's pivot conversion is the identity.
This looks surprising until the invariant that TimePoint[UTC, R, U].ticks
actually stores is made explicit: timepoint.go's calendar construction
bakes the TAI-UTC offset in effect on that civil day directly into the
tick count. Once that's done, a UTC TimePoint's ticks
and a TAI TimePoint's ticks of the same underlying instant coincide
exactly, and the only place leap seconds are still visible is the
civil-field decomposition (ToDatetime), which subtracts the same offset
back out, with the single-second 23:59:60 window resolved explicitly
there. This keeps ToTAI/FromTAI, and therefore ConvertScale, a pure
pivot-through-TAI with no special cases of its own.
*/
type UTC struct{}

func (UTC) Name() string                              { return "UTC" }
func (UTC) ToTAI(atto *big.Int) (*big.Int, error)      { return atto, nil }
func (UTC) FromTAI(atto *big.Int) (*big.Int, error)    { return atto, nil }
func (UTC) CountsLeapSeconds() bool                    { return true }

/***** GPS / QZSS / IRNSS *************************/

// gpsOffsetAtto is the constant 19s offset shared by GPS, QZSS, and IRNSS
// system time.
var gpsOffsetAtto = new(big.Int).Mul(big.NewInt(19), attosecondsPerSecond)

// GPS is GPS system time: TAI - 19s exactly, no leap seconds.
type GPS struct{}

func (GPS) Name() string                           { return "GPS" }
func (GPS) ToTAI(atto *big.Int) (*big.Int, error)   { return new(big.Int).Add(atto, gpsOffsetAtto), nil }
func (GPS) FromTAI(atto *big.Int) (*big.Int, error) { return new(big.Int).Sub(atto, gpsOffsetAtto), nil }
func (GPS) CountsLeapSeconds() bool                 { return false }

// QZSS is Quasi-Zenith Satellite System time, identical to GPS time.
type QZSS struct{}

func (QZSS) Name() string                           { return "QZSS" }
func (QZSS) ToTAI(atto *big.Int) (*big.Int, error)   { return new(big.Int).Add(atto, gpsOffsetAtto), nil }
func (QZSS) FromTAI(atto *big.Int) (*big.Int, error) { return new(big.Int).Sub(atto, gpsOffsetAtto), nil }
func (QZSS) CountsLeapSeconds() bool                 { return false }

// IRNSS is the Indian Regional Navigation Satellite System time, identical
// to GPS time.
type IRNSS struct{}

func (IRNSS) Name() string                           { return "IRNSS" }
func (IRNSS) ToTAI(atto *big.Int) (*big.Int, error)   { return new(big.Int).Add(atto, gpsOffsetAtto), nil }
func (IRNSS) FromTAI(atto *big.Int) (*big.Int, error) { return new(big.Int).Sub(atto, gpsOffsetAtto), nil }
func (IRNSS) CountsLeapSeconds() bool                 { return false }

/***** Galileo ************************************/

// Galileo is Galileo System Time (GST): TAI - 19s exactly, no leap seconds,
// with its own week-numbering epoch.
type Galileo struct{}

func (Galileo) Name() string                           { return "Galileo" }
func (Galileo) ToTAI(atto *big.Int) (*big.Int, error)   { return new(big.Int).Add(atto, gpsOffsetAtto), nil }
func (Galileo) FromTAI(atto *big.Int) (*big.Int, error) { return new(big.Int).Sub(atto, gpsOffsetAtto), nil }
func (Galileo) CountsLeapSeconds() bool                 { return false }

/***** BeiDou *************************************/

var bdtOffsetAtto = new(big.Int).Mul(big.NewInt(33), attosecondsPerSecond)

// BeiDou is BeiDou Time (BDT): TAI - 33s exactly, no leap seconds.
type BeiDou struct{}

func (BeiDou) Name() string                           { return "BeiDou" }
func (BeiDou) ToTAI(atto *big.Int) (*big.Int, error)   { return new(big.Int).Add(atto, bdtOffsetAtto), nil }
func (BeiDou) FromTAI(atto *big.Int) (*big.Int, error) { return new(big.Int).Sub(atto, bdtOffsetAtto), nil }
func (BeiDou) CountsLeapSeconds() bool                 { return false }

/***** GLONASS ************************************/

var threeHoursAtto = new(big.Int).Mul(big.NewInt(3*3600), attosecondsPerSecond)

// GLONASS is GLONASS time, tied to UTC(SU) = UTC + 3h continuously. Its
// pivot conversion is the same +3h/-3h constant shift as any affine scale;
// like UTC, the leap-second offset itself is baked into the tick count at
// calendar-construction time rather than here, per the UTC doc comment
// above.
type GLONASS struct{}

func (GLONASS) Name() string { return "GLONASS" }
func (GLONASS) ToTAI(atto *big.Int) (*big.Int, error) {
	return new(big.Int).Sub(atto, threeHoursAtto), nil
}
func (GLONASS) FromTAI(atto *big.Int) (*big.Int, error) {
	return new(big.Int).Add(atto, threeHoursAtto), nil
}
func (GLONASS) CountsLeapSeconds() bool { return true }

/***** helpers ************************************/

func secondsToAtto(s int64) *big.Int {
	return new(big.Int).Mul(big.NewInt(s), attosecondsPerSecond)
}

func pow10(n int) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
}

// ConvertScale converts an attosecond-since-pivot count from scale From to
// scale To by pivoting through TAI.
func ConvertScale[From, To TimeScale](atto *big.Int) (*big.Int, error) {
	var from From
	var to To
	tai, err := from.ToTAI(atto)
	if err != nil {
		return nil, err
	}
	return to.FromTAI(tai)
}
