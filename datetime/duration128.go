package datetime

/*
Duration128 and TimePoint128 are the 128-bit-width counterparts of
Duration[R, U] and TimePoint[S, R, U], for callers that genuinely need the
extra range (e.g. attosecond-resolution durations spanning millennia) and are
willing to give up Int128's operator ergonomics for it. Int128 cannot satisfy
the operator-based Representation constraint (see int128.go), so these are
concrete, non-generic-over-R types rather than Duration[Int128, U] — Go
generics require the type parameter's operations to be expressible through
its constraint, and Int128's Add/Sub/Mul are methods, not operators.
*/

// Duration128 represents a tick count of n*U seconds, held in Int128.
type Duration128[U Unit] struct {
	n Int128
}

// NewDuration128 constructs a Duration128 of n*U seconds.
func NewDuration128[U Unit](n Int128) Duration128[U] {
	return Duration128[U]{n: n}
}

// Count returns the raw tick count.
func (d Duration128[U]) Count() Int128 { return d.n }

// Add returns d+other, or an ArithmeticOverflowError on overflow.
func (d Duration128[U]) Add(other Duration128[U]) (Duration128[U], error) {
	n, err := d.n.Add(other.n)
	if err != nil {
		return Duration128[U]{}, err
	}
	return Duration128[U]{n: n}, nil
}

// Sub returns d-other, or an ArithmeticOverflowError on overflow.
func (d Duration128[U]) Sub(other Duration128[U]) (Duration128[U], error) {
	n, err := d.n.Sub(other.n)
	if err != nil {
		return Duration128[U]{}, err
	}
	return Duration128[U]{n: n}, nil
}

// Cmp returns -1, 0, or +1 as d is less than, equal to, or greater than other.
func (d Duration128[U]) Cmp(other Duration128[U]) int {
	return d.n.Cmp(other.n)
}

// WidenDuration losslessly widens a 64-bit-backed Duration into a
// Duration128 of the same unit.
func WidenDuration[R Representation, U Unit](d Duration[R, U]) Duration128[U] {
	return Duration128[U]{n: int128FromBig(bigIntFrom(d.n))}
}

// NarrowDuration narrows a Duration128 back into a 64-bit-backed Duration,
// failing with ArithmeticOverflowError if it does not fit in R.
func NarrowDuration[R Representation, U Unit](d Duration128[U]) (Duration[R, U], error) {
	n, err := bigIntTo[R](d.n.big())
	if err != nil {
		return Duration[R, U]{}, err
	}
	return Duration[R, U]{n: n}, nil
}

// TimePoint128 is the 128-bit-width counterpart of TimePoint[S, R, U].
type TimePoint128[S TimeScale, U Unit] struct {
	ticks Int128
}

// WidenTimePoint losslessly widens a 64-bit-backed TimePoint into a
// TimePoint128 of the same scale and unit.
func WidenTimePoint[S TimeScale, R Representation, U Unit](tp TimePoint[S, R, U]) TimePoint128[S, U] {
	return TimePoint128[S, U]{ticks: int128FromBig(bigIntFrom(tp.ticks))}
}

// NarrowTimePoint narrows a TimePoint128 back into a 64-bit-backed
// TimePoint, failing with ArithmeticOverflowError if it does not fit in R.
func NarrowTimePoint[R Representation, S TimeScale, U Unit](tp TimePoint128[S, U]) (TimePoint[S, R, U], error) {
	n, err := bigIntTo[R](tp.ticks.big())
	if err != nil {
		return TimePoint[S, R, U]{}, err
	}
	return TimePoint[S, R, U]{ticks: n}, nil
}

// Add returns tp advanced by d, or an ArithmeticOverflowError on overflow.
func (tp TimePoint128[S, U]) Add(d Duration128[U]) (TimePoint128[S, U], error) {
	n, err := tp.ticks.Add(d.n)
	if err != nil {
		return TimePoint128[S, U]{}, err
	}
	return TimePoint128[S, U]{ticks: n}, nil
}

// Since returns tp-other as a Duration128.
func (tp TimePoint128[S, U]) Since(other TimePoint128[S, U]) (Duration128[U], error) {
	n, err := tp.ticks.Sub(other.ticks)
	if err != nil {
		return Duration128[U]{}, err
	}
	return Duration128[U]{n: n}, nil
}

// Ticks returns the raw tick count backing tp.
func (tp TimePoint128[S, U]) Ticks() Int128 { return tp.ticks }
