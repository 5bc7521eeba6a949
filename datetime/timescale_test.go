package datetime

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConvertScale_TAI_GPS_RoundTrip(t *testing.T) {
	tai := big.NewInt(1_000_000_000_000_000_000) // 1s since TAI epoch
	gps, err := ConvertScale[TAI, GPS](tai)
	require.NoError(t, err)
	back, err := ConvertScale[GPS, TAI](gps)
	require.NoError(t, err)
	require.Equal(t, 0, tai.Cmp(back))
}

func TestConvertScale_GPSOffsetFromTAI(t *testing.T) {
	tai := new(big.Int)
	gps, err := ConvertScale[TAI, GPS](tai)
	require.NoError(t, err)
	require.Equal(t, 0, gps.Cmp(new(big.Int).Neg(secondsToAtto(19))))
}

func TestConvertScale_BeiDouOffsetFromTAI(t *testing.T) {
	tai := new(big.Int)
	bdt, err := ConvertScale[TAI, BeiDou](tai)
	require.NoError(t, err)
	require.Equal(t, 0, bdt.Cmp(new(big.Int).Neg(secondsToAtto(33))))
}

func TestConvertScale_GLONASSOffsetFromTAI(t *testing.T) {
	tai := new(big.Int)
	glo, err := ConvertScale[TAI, GLONASS](tai)
	require.NoError(t, err)
	require.Equal(t, 0, glo.Cmp(secondsToAtto(3*3600)))
}

func TestConvertScale_TTOffsetFromTAI(t *testing.T) {
	tai := new(big.Int)
	tt, err := ConvertScale[TAI, TT](tai)
	require.NoError(t, err)
	wantAtto := new(big.Int).Mul(big.NewInt(32184), pow10(15))
	require.Equal(t, 0, tt.Cmp(wantAtto))
}

func TestConvertScale_GalileoMatchesGPSOffset(t *testing.T) {
	// GST runs on the same 19s TAI offset as GPS time.
	tai := new(big.Int)
	gal, err := ConvertScale[TAI, Galileo](tai)
	require.NoError(t, err)
	gps, err := ConvertScale[TAI, GPS](tai)
	require.NoError(t, err)
	require.Equal(t, 0, gal.Cmp(gps))
}

func TestConvertScale_IdentityThroughSameScale(t *testing.T) {
	atto := secondsToAtto(12345)
	back, err := ConvertScale[UTC, UTC](atto)
	require.NoError(t, err)
	require.Equal(t, 0, atto.Cmp(back))
}
