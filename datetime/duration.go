package datetime

import (
	"math"
	"math/big"
)

/*
Duration represents a tick count of n*U seconds, stored in representation R.
Addition, subtraction, and comparison are only defined between Durations
sharing the same (R, U) — Go's type system enforces this because U and R are
type parameters: Duration[int64, Second] and Duration[int64, MilliSecond] are
distinct, non-interchangeable types. Conversion between units or
representations is an explicit free-function call (IntoUnit, IntoRepr), since
Go methods cannot introduce additional type parameters beyond the receiver's
one.
*/
type Duration[R Representation, U Unit] struct {
	n R
}

// NewDuration constructs a Duration of n*U seconds.
func NewDuration[R Representation, U Unit](n R) Duration[R, U] {
	return Duration[R, U]{n: n}
}

// Count returns the raw tick count.
func (d Duration[R, U]) Count() R {
	return d.n
}

// Add returns d+other, or an ArithmeticOverflowError on overflow.
func (d Duration[R, U]) Add(other Duration[R, U]) (Duration[R, U], error) {
	n, err := CheckedAdd(d.n, other.n)
	if err != nil {
		return Duration[R, U]{}, err
	}
	return Duration[R, U]{n: n}, nil
}

// Sub returns d-other, or an ArithmeticOverflowError on overflow.
func (d Duration[R, U]) Sub(other Duration[R, U]) (Duration[R, U], error) {
	n, err := CheckedSub(d.n, other.n)
	if err != nil {
		return Duration[R, U]{}, err
	}
	return Duration[R, U]{n: n}, nil
}

// Neg returns -d. Only meaningful for signed R; for unsigned R the result
// wraps around zero, matching Go's own unsigned negation semantics.
func (d Duration[R, U]) Neg() Duration[R, U] {
	return Duration[R, U]{n: -d.n}
}

// Scale returns d multiplied by the scalar c, or an ArithmeticOverflowError
// on overflow.
func (d Duration[R, U]) Scale(c R) (Duration[R, U], error) {
	n, err := CheckedMul(d.n, c)
	if err != nil {
		return Duration[R, U]{}, err
	}
	return Duration[R, U]{n: n}, nil
}

// DivScalar returns d divided by the scalar c, truncating toward zero for
// integer R.
func (d Duration[R, U]) DivScalar(c R) Duration[R, U] {
	return Duration[R, U]{n: d.n / c}
}

// Abs returns the absolute value of d. Only meaningful for signed R.
func (d Duration[R, U]) Abs() Duration[R, U] {
	if d.n < 0 {
		return Duration[R, U]{n: -d.n}
	}
	return d
}

// Cmp returns -1, 0, or +1 as d is less than, equal to, or greater than
// other, lexicographically on the tick count.
func (d Duration[R, U]) Cmp(other Duration[R, U]) int {
	switch {
	case d.n < other.n:
		return -1
	case d.n > other.n:
		return 1
	default:
		return 0
	}
}

// Equal reports whether d and other denote the same duration.
func (d Duration[R, U]) Equal(other Duration[R, U]) bool {
	return d.n == other.n
}

// IntoUnit converts d into the unit U2, failing with ArithmeticOverflowError
// for integer R when the conversion is not exact or overflows. Floating R
// always succeeds (possibly inexactly).
func IntoUnit[U2 Unit, R Representation, U Unit](d Duration[R, U]) (Duration[R, U2], error) {
	n, err := convertUnitTicks[U, U2](d.n)
	if err != nil {
		return Duration[R, U2]{}, err
	}
	return Duration[R, U2]{n: n}, nil
}

// IntoRepr converts d into the representation R2. Widening conversions
// (e.g. int32 -> int64, any integer -> float64 within its exactly
// representable range) are infallible in practice but still return an error
// to keep the signature uniform with narrowing conversions.
func IntoRepr[R2 Representation, R Representation, U Unit](d Duration[R, U]) (Duration[R2, U], error) {
	n, err := convertRepresentation[R2](d.n)
	if err != nil {
		return Duration[R2, U]{}, err
	}
	return Duration[R2, U]{n: n}, nil
}

// convertRepresentation converts a value of representation R into R2.
// Integer-to-integer narrowing fails with ArithmeticOverflowError when R2
// cannot hold the value; any value into a floating R2 rounds to the nearest
// representable one, failing only when a finite float64 overflows float32's
// exponent range; a floating value into an integer R2 must be finite,
// integral, and within R2's range.
func convertRepresentation[R2 Representation, R Representation](x R) (R2, error) {
	srcFloat, dstFloat := isFloat[R](), isFloat[R2]()
	switch {
	case !srcFloat && !dstFloat:
		return bigIntTo[R2](bigIntFrom(x))
	case !srcFloat && dstFloat:
		// Every built-in integer fits a float's exponent range, so this
		// only ever rounds, never overflows.
		return R2(x), nil
	case srcFloat && dstFloat:
		converted := R2(x)
		if math.IsInf(float64(converted), 0) && !math.IsInf(float64(x), 0) {
			return 0, &ArithmeticOverflowError{Op: "narrowing conversion"}
		}
		return converted, nil
	default:
		f := float64(x)
		if math.IsNaN(f) || math.IsInf(f, 0) || math.Trunc(f) != f {
			return 0, &ArithmeticOverflowError{Op: "narrowing conversion"}
		}
		z, _ := new(big.Float).SetFloat64(f).Int(nil)
		return bigIntTo[R2](z)
	}
}
