package datetime

import "math/big"

/*
Unit algebra.

A Unit is a positive rational multiple of one SI second, attached to a
Duration or TimePoint at compile time via a Go type parameter. Built-in
units are marker types (no fields) implementing the Unit interface; user
code may define its own marker type to introduce a custom unit.
*/

// Unit is implemented by every marker type usable as the U parameter of
// Duration[R, U] or TimePoint[S, R, U]. Period returns (numerator,
// denominator) in seconds, already reduced to lowest terms, with a strictly
// positive denominator.
type Unit interface {
	Period() (num, den int64)
}

// unitRatio returns (U1.num*U2.den, U1.den*U2.num) reduced to lowest terms:
// the factor that converts a tick count in U1 into a tick count in U2. The
// products are formed in big.Int because the extreme built-in pairing
// (KiloSecond to AttoSecond) has a ratio of 10^21, beyond int64.
func unitRatio[U1, U2 Unit]() (num, den *big.Int) {
	var u1 U1
	var u2 U2
	n1, d1 := u1.Period()
	n2, d2 := u2.Period()
	num = new(big.Int).Mul(big.NewInt(n1), big.NewInt(d2))
	den = new(big.Int).Mul(big.NewInt(d1), big.NewInt(n2))
	if g := new(big.Int).GCD(nil, nil, num, den); g.Cmp(big.NewInt(1)) > 0 {
		num.Quo(num, g)
		den.Quo(den, g)
	}
	return num, den
}

// convertUnitTicks converts a tick count n in U1 into the equivalent tick
// count in U2. For integer R the result must be exactly representable: a
// conversion that would need a fractional tick, or one that exceeds R's
// range, fails with ArithmeticOverflowError. Floating R converts with the
// representation's native rounding and never fails.
func convertUnitTicks[U1, U2 Unit, R Representation](n R) (R, error) {
	num, den := unitRatio[U1, U2]()
	if isFloat[R]() {
		f := new(big.Float).SetFloat64(float64(n))
		f.Mul(f, new(big.Float).SetInt(num))
		f.Quo(f, new(big.Float).SetInt(den))
		out, _ := f.Float64()
		return R(out), nil
	}
	z := new(big.Int).Mul(bigIntFrom(n), num)
	quot, rem := new(big.Int).QuoRem(z, den, new(big.Int))
	if rem.Sign() != 0 {
		return 0, &ArithmeticOverflowError{Op: "unit conversion: result is not a whole tick count"}
	}
	return bigIntTo[R](quot)
}

/***** BUILT-IN SI UNITS ************************/

// KiloSecond is the unit of 1000 seconds.
type KiloSecond struct{}

func (KiloSecond) Period() (int64, int64) { return 1000, 1 }

// HectoSecond is the unit of 100 seconds.
type HectoSecond struct{}

func (HectoSecond) Period() (int64, int64) { return 100, 1 }

// DecaSecond is the unit of 10 seconds.
type DecaSecond struct{}

func (DecaSecond) Period() (int64, int64) { return 10, 1 }

// Second is the SI second.
type Second struct{}

func (Second) Period() (int64, int64) { return 1, 1 }

// DeciSecond is the unit of 1/10 second.
type DeciSecond struct{}

func (DeciSecond) Period() (int64, int64) { return 1, 10 }

// CentiSecond is the unit of 1/100 second.
type CentiSecond struct{}

func (CentiSecond) Period() (int64, int64) { return 1, 100 }

// MilliSecond is the unit of 1/1,000 second.
type MilliSecond struct{}

func (MilliSecond) Period() (int64, int64) { return 1, 1_000 }

// MicroSecond is the unit of 1/1,000,000 second.
type MicroSecond struct{}

func (MicroSecond) Period() (int64, int64) { return 1, 1_000_000 }

// NanoSecond is the unit of 1/10^9 second.
type NanoSecond struct{}

func (NanoSecond) Period() (int64, int64) { return 1, 1_000_000_000 }

// PicoSecond is the unit of 1/10^12 second.
type PicoSecond struct{}

func (PicoSecond) Period() (int64, int64) { return 1, 1_000_000_000_000 }

// FemtoSecond is the unit of 1/10^15 second.
type FemtoSecond struct{}

func (FemtoSecond) Period() (int64, int64) { return 1, 1_000_000_000_000_000 }

// AttoSecond is the unit of 1/10^18 second, the finest built-in unit.
type AttoSecond struct{}

func (AttoSecond) Period() (int64, int64) { return 1, 1_000_000_000_000_000_000 }

/***** DOMAIN UNITS ******************************/

// Minute is the unit of 60 seconds. Not one of the SI decades, but useful
// for calendar-facing arithmetic.
type Minute struct{}

func (Minute) Period() (int64, int64) { return 60, 1 }

// Hour is the unit of 3600 seconds.
type Hour struct{}

func (Hour) Period() (int64, int64) { return 3600, 1 }

// Day is the unit of 86400 seconds.
type Day struct{}

func (Day) Period() (int64, int64) { return 86400, 1 }

// Week is the unit of 604800 seconds, used by the GPS/BeiDou/Galileo
// week-and-second-of-week representation.
type Week struct{}

func (Week) Period() (int64, int64) { return 604800, 1 }
