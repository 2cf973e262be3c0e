package simdband_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/TheDegenerateDev5150/block-aligner/simdband"
)

func TestClampSaturates(t *testing.T) {
	assert.EqualValues(t, 32767, simdband.Clamp(1<<20))
	assert.EqualValues(t, -32768, simdband.Clamp(-(1 << 20)))
	assert.EqualValues(t, 5, simdband.Clamp(5))
}

func TestSatAddKeepsNegInf(t *testing.T) {
	assert.Equal(t, simdband.NegInf, simdband.SatAdd(simdband.NegInf, 100))
	assert.EqualValues(t, 10, simdband.SatAdd(5, 5))
}

func TestHMax(t *testing.T) {
	v := simdband.Vec{1, 9, 3, 9, -5, 0, 2, 8}
	max, lane := simdband.HMax(v)
	assert.EqualValues(t, 9, max)
	assert.Equal(t, 1, lane) // first occurrence wins
}

func TestPrefixScanMaxMonotoneNonDecreasingFromSelf(t *testing.T) {
	x := simdband.Vec{0, simdband.NegInf, simdband.NegInf, simdband.NegInf, simdband.NegInf, simdband.NegInf, simdband.NegInf, simdband.NegInf}
	scanned := simdband.PrefixScanMax(x, -1)
	// Lane l should see the gap opened at lane 0, extended (l) times.
	for l := 0; l < simdband.L; l++ {
		assert.EqualValues(t, -int16(l), scanned[l], "lane %d", l)
	}
}

func TestPrefixScanMaxNeverDecreasesOwnLane(t *testing.T) {
	x := simdband.Vec{3, -1, 7, -2, 4, -9, 0, 2}
	scanned := simdband.PrefixScanMax(x, -2)
	for l := 0; l < simdband.L; l++ {
		assert.True(t, scanned[l] >= x[l], "lane %d: scanned %d < original %d", l, scanned[l], x[l])
	}
}
