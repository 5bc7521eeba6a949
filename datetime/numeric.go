package datetime

import (
	"math"
	"math/big"

	"golang.org/x/exp/constraints"
)

/*
Numeric substrate.

Duration and TimePoint are parameterized over a Representation: a numeric
kind used to store a tick count. Built-in representations are the signed and
unsigned fixed-width integers and the two IEEE-754 binary floats; see
int128.go for the 128-bit width, which cannot satisfy this operator-based
constraint and is therefore handled separately.
*/

// Representation is satisfied by every built-in numeric kind usable as the
// tick-count storage of a Duration or TimePoint.
type Representation interface {
	constraints.Integer | constraints.Float
}

// isFloat reports whether R is one of the floating-point representations.
func isFloat[R Representation]() bool {
	var zero R
	switch any(zero).(type) {
	case float32, float64:
		return true
	default:
		return false
	}
}

// CheckedAdd returns a+b, or an ArithmeticOverflowError if the mathematical
// result is not representable in R.
func CheckedAdd[R Representation](a, b R) (R, error) {
	sum := a + b
	if !isFloat[R]() {
		// Overflow iff the sign of the inputs agree but the result's sign disagrees.
		if (b > 0 && sum < a) || (b < 0 && sum > a) {
			return 0, &ArithmeticOverflowError{Op: "Add"}
		}
	} else if math.IsInf(float64(sum), 0) && !math.IsInf(float64(a), 0) && !math.IsInf(float64(b), 0) {
		return 0, &ArithmeticOverflowError{Op: "Add"}
	}
	return sum, nil
}

// CheckedSub returns a-b, or an ArithmeticOverflowError if the mathematical
// result is not representable in R.
func CheckedSub[R Representation](a, b R) (R, error) {
	diff := a - b
	if !isFloat[R]() {
		if (b < 0 && diff < a) || (b > 0 && diff > a) {
			return 0, &ArithmeticOverflowError{Op: "Sub"}
		}
	} else if math.IsInf(float64(diff), 0) && !math.IsInf(float64(a), 0) && !math.IsInf(float64(b), 0) {
		return 0, &ArithmeticOverflowError{Op: "Sub"}
	}
	return diff, nil
}

// CheckedMul returns a*b, or an ArithmeticOverflowError if the mathematical
// result is not representable in R.
func CheckedMul[R Representation](a, b R) (R, error) {
	if !isFloat[R]() {
		if a == 0 || b == 0 {
			return 0, nil
		}
		prod := a * b
		// The quotient check alone misses MinInt * -1, whose wrapped product
		// divided by -1 is again MinInt; the sign check catches it.
		if prod/b != a || ((a < 0) == (b < 0) && prod < 0) {
			return 0, &ArithmeticOverflowError{Op: "Mul"}
		}
		return prod, nil
	}
	prod := a * b
	if math.IsInf(float64(prod), 0) && !math.IsInf(float64(a), 0) && !math.IsInf(float64(b), 0) {
		return 0, &ArithmeticOverflowError{Op: "Mul"}
	}
	return prod, nil
}

// WrappingAdd performs modular addition, ignoring overflow, for callers that
// want two's-complement wrap semantics instead of the checked variant.
func WrappingAdd[R Representation](a, b R) R {
	return a + b
}

// bigIntFrom converts an integer representation value into an exact
// math/big.Int for the widening steps of ScaleRatio and the unit/scale
// conversions.
func bigIntFrom[R Representation](x R) *big.Int {
	switch v := any(x).(type) {
	case int8:
		return big.NewInt(int64(v))
	case int16:
		return big.NewInt(int64(v))
	case int32:
		return big.NewInt(int64(v))
	case int64:
		return big.NewInt(v)
	case int:
		return big.NewInt(int64(v))
	case uint8:
		return new(big.Int).SetUint64(uint64(v))
	case uint16:
		return new(big.Int).SetUint64(uint64(v))
	case uint32:
		return new(big.Int).SetUint64(uint64(v))
	case uint64:
		return new(big.Int).SetUint64(v)
	case uint:
		return new(big.Int).SetUint64(uint64(v))
	default:
		return big.NewInt(0)
	}
}

// bigIntTo converts an exact math/big.Int back into R, failing with
// ArithmeticOverflowError if it does not fit.
func bigIntTo[R Representation](z *big.Int) (R, error) {
	var probe R
	switch any(probe).(type) {
	case int8, int16, int32, int64, int:
		if !z.IsInt64() {
			return 0, &ArithmeticOverflowError{Op: "narrowing conversion"}
		}
		n := z.Int64()
		r := R(n)
		if int64(r) != n {
			return 0, &ArithmeticOverflowError{Op: "narrowing conversion"}
		}
		return r, nil
	case uint8, uint16, uint32, uint64, uint:
		if z.Sign() < 0 || !z.IsUint64() {
			return 0, &ArithmeticOverflowError{Op: "narrowing conversion"}
		}
		n := z.Uint64()
		r := R(n)
		if uint64(r) != n {
			return 0, &ArithmeticOverflowError{Op: "narrowing conversion"}
		}
		return r, nil
	}
	return 0, &ArithmeticOverflowError{Op: "narrowing conversion"}
}

// ScaleRatio computes round(x * num / den) using an intermediate wide enough
// to avoid overflow for every built-in (unit-pair, representation)
// combination. Integer representations round half-to-even; floating
// representations use the representation's native rounding via direct
// floating-point division, which may be inexact.
//
// den must be strictly positive; num may be negative.
func ScaleRatio[R Representation](x R, num, den int64) (R, error) {
	if den <= 0 {
		return 0, &ArithmeticOverflowError{Op: "ScaleRatio: non-positive denominator"}
	}

	if isFloat[R]() {
		return R(float64(x) * float64(num) / float64(den)), nil
	}

	xi := bigIntFrom(x)
	numerator := new(big.Int).Mul(xi, big.NewInt(num))
	denom := big.NewInt(den)

	quot, rem := new(big.Int).QuoRem(numerator, denom, new(big.Int))
	if rem.Sign() != 0 {
		// round-half-to-even on the exact rational quotient.
		twiceRem := new(big.Int).Mul(rem, big.NewInt(2))
		twiceRem.Abs(twiceRem)
		cmp := twiceRem.Cmp(new(big.Int).Abs(denom))
		roundAway := cmp > 0
		if cmp == 0 {
			// Tie: round to even.
			lowBit := new(big.Int).And(quot, big.NewInt(1))
			roundAway = lowBit.Sign() != 0
		}
		if roundAway {
			if (numerator.Sign() < 0) != (denom.Sign() < 0) {
				quot.Sub(quot, big.NewInt(1))
			} else {
				quot.Add(quot, big.NewInt(1))
			}
		}
	}

	return bigIntTo[R](quot)
}
