package datetime

import "math/big"

/*
Int128 provides a 128-bit signed representation width alongside the native
8/16/32/64-bit kinds. Go has no native 128-bit integer and no operators for
one, so Int128 cannot satisfy the operator-based Representation constraint
used by Duration[R, U] and TimePoint[S, R, U]; instead it is a standalone
type with hand-written arithmetic, used directly (as Duration128[U]) rather
than instantiated as a Representation type argument.

The representation is two's-complement, stored as a high signed word and a
low unsigned word: value == hi*2^64 + lo.
*/
type Int128 struct {
	hi int64
	lo uint64
}

// Int128FromInt64 widens an int64 into an Int128. Always exact.
func Int128FromInt64(n int64) Int128 {
	if n < 0 {
		return Int128{hi: -1, lo: uint64(n)}
	}
	return Int128{hi: 0, lo: uint64(n)}
}

// Int64 narrows an Int128 back into an int64, failing if it does not fit.
func (a Int128) Int64() (int64, error) {
	if a.hi == 0 && a.lo <= 1<<63-1 {
		return int64(a.lo), nil
	}
	if a.hi == -1 && a.lo >= 1<<63 {
		return int64(a.lo), nil
	}
	return 0, &ArithmeticOverflowError{Op: "Int128.Int64"}
}

func (a Int128) big() *big.Int {
	z := new(big.Int).SetUint64(a.lo)
	hi := big.NewInt(a.hi)
	hi.Lsh(hi, 64)
	z.Add(z, hi)
	return z
}

var two128 = new(big.Int).Lsh(big.NewInt(1), 128)

// int128FromBig converts an exact big.Int already known to fit in [-2^127,
// 2^127-1] into its two's-complement (hi, lo) decomposition.
func int128FromBig(z *big.Int) Int128 {
	u := new(big.Int).Set(z)
	if u.Sign() < 0 {
		u.Add(u, two128)
	}
	mask64 := new(big.Int).SetUint64(^uint64(0))
	lo := new(big.Int).And(u, mask64).Uint64()
	hiU := new(big.Int).Rsh(u, 64).Uint64()
	return Int128{hi: int64(hiU), lo: lo}
}

// Add returns a+b, or an ArithmeticOverflowError if the mathematical result
// does not fit in 128 bits.
func (a Int128) Add(b Int128) (Int128, error) {
	z := new(big.Int).Add(a.big(), b.big())
	return clampInt128(z)
}

// Sub returns a-b, or an ArithmeticOverflowError if the mathematical result
// does not fit in 128 bits.
func (a Int128) Sub(b Int128) (Int128, error) {
	z := new(big.Int).Sub(a.big(), b.big())
	return clampInt128(z)
}

// Mul returns a*b via a 128x128->256-bit widening product, narrowed back to
// 128 bits, or an ArithmeticOverflowError if it does not fit.
func (a Int128) Mul(b Int128) (Int128, error) {
	z := new(big.Int).Mul(a.big(), b.big())
	return clampInt128(z)
}

// Cmp returns -1, 0, or +1 as a is less than, equal to, or greater than b.
func (a Int128) Cmp(b Int128) int {
	return a.big().Cmp(b.big())
}

// Neg returns -a, or an ArithmeticOverflowError for the single
// non-representable case (the most negative value).
func (a Int128) Neg() (Int128, error) {
	z := new(big.Int).Neg(a.big())
	return clampInt128(z)
}

var (
	int128Min = new(big.Int).Lsh(big.NewInt(-1), 127)
	int128Max = func() *big.Int {
		z := new(big.Int).Lsh(big.NewInt(1), 127)
		return z.Sub(z, big.NewInt(1))
	}()
)

func clampInt128(z *big.Int) (Int128, error) {
	if z.Cmp(int128Min) < 0 || z.Cmp(int128Max) > 0 {
		return Int128{}, &ArithmeticOverflowError{Op: "Int128"}
	}
	return int128FromBig(z), nil
}

// String renders the decimal representation of a.
func (a Int128) String() string {
	return a.big().String()
}
