package scoring_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/TheDegenerateDev5150/block-aligner/scoring"
	"github.com/TheDegenerateDev5150/block-aligner/seqio"
)

func TestNW1Identity(t *testing.T) {
	assert.True(t, scoring.NW1.NUC())
	for _, b := range []byte("ACGTN") {
		assert.EqualValues(t, 1, scoring.NW1.Score(b, b))
	}
	assert.EqualValues(t, -1, scoring.NW1.Score('A', 'C'))
	assert.EqualValues(t, -1, scoring.NW1.Score('T', 'N'))
}

func TestNW1RowStride(t *testing.T) {
	row := scoring.NW1.Row('A')
	assert.Equal(t, scoring.NW1.Stride(), len(row))
	assert.True(t, len(row)&(len(row)-1) == 0, "stride must be a power of two")
}

func TestBLOSUM62Symmetric(t *testing.T) {
	assert.False(t, scoring.BLOSUM62.NUC())
	letters := []byte("ARNDCQEGHILKMFPSTWYVBZX")
	for _, a := range letters {
		for _, b := range letters {
			assert.Equal(t, scoring.BLOSUM62.Score(a, b), scoring.BLOSUM62.Score(b, a),
				"BLOSUM62 must be symmetric for %q/%q", a, b)
		}
	}
}

func TestBLOSUM62KnownValues(t *testing.T) {
	assert.EqualValues(t, 4, scoring.BLOSUM62.Score('A', 'A'))
	assert.EqualValues(t, 11, scoring.BLOSUM62.Score('W', 'W'))
	assert.EqualValues(t, -1, scoring.BLOSUM62.Score('A', 'R'))
	assert.EqualValues(t, -1, scoring.BLOSUM62.Score('R', 'A'))
}

func TestBLOSUM62Sentinel(t *testing.T) {
	// The sentinel behaves like '*': self-score 1, mismatch -4.
	assert.EqualValues(t, 1, scoring.BLOSUM62.Score(seqio.Null, seqio.Null))
	assert.EqualValues(t, -4, scoring.BLOSUM62.Score('A', seqio.Null))
}

func TestBLOSUM62Stride(t *testing.T) {
	assert.Equal(t, 32, scoring.BLOSUM62.Stride())
}
