package datetime

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInt128_AddSub(t *testing.T) {
	a := Int128FromInt64(1 << 40)
	b := Int128FromInt64(7)

	sum, err := a.Add(b)
	require.NoError(t, err)
	n, err := sum.Int64()
	require.NoError(t, err)
	require.Equal(t, int64(1<<40+7), n)

	diff, err := sum.Sub(b)
	require.NoError(t, err)
	require.Equal(t, 0, diff.Cmp(a))
}

func TestInt128_MulOverflows128Bits(t *testing.T) {
	huge := int128FromBig(new(big.Int).Lsh(big.NewInt(1), 100))
	_, err := huge.Mul(huge)
	require.Error(t, err)
}

func TestInt128_NegOfMinOverflows(t *testing.T) {
	min := int128FromBig(int128Min)
	_, err := min.Neg()
	require.Error(t, err)
}

func TestInt128_CmpAndString(t *testing.T) {
	a := Int128FromInt64(100)
	b := Int128FromInt64(-100)
	require.Equal(t, 1, a.Cmp(b))
	require.Equal(t, "100", a.String())
	require.Equal(t, "-100", b.String())
}

func TestDuration128_WidenNarrowRoundTrip(t *testing.T) {
	d := NewDuration[int64, Second](123456789)
	wide := WidenDuration[int64, Second](d)
	narrow, err := NarrowDuration[int64, Second](wide)
	require.NoError(t, err)
	require.Equal(t, d.Count(), narrow.Count())
}
