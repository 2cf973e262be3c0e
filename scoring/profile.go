package scoring

import (
	"github.com/pkg/errors"

	"github.com/TheDegenerateDev5150/block-aligner/circular"
	"github.com/TheDegenerateDev5150/block-aligner/seqio"
)

// Profile is a position-specific scoring matrix over a reference of length
// RefLen: score[i][symbol] for i in [1, RefLen] and every query symbol,
// plus per-position affine gap penalties that may vary along the reference.
// Position 0 is unused padding, matching the kernel's 1-based reference
// column numbering.
type Profile struct {
	nuc    bool
	refLen int
	stride int
	scores []int8 // (refLen+1) rows, each Stride wide.

	gapOpenC  []int16
	gapCloseC []int16
	gapOpenR  []int16

	// extend is the single gap-extend cost shared by every position: unlike
	// the opens, a profile never varies extend along the reference.
	extend int16
}

// NewProfile allocates a Profile over a reference of length refLen. nuc
// selects raw-byte indexing (nucleotide) vs byte-minus-'A' indexing (amino
// acid), matching Matrix.
func NewProfile(refLen int, nuc bool) *Profile {
	rows := seqio.AlphabetSize + 1
	if nuc {
		rows = int(seqio.Null) + 1
	}
	stride := circular.NextExp2(rows - 1)
	return &Profile{
		nuc:       nuc,
		refLen:    refLen,
		stride:    stride,
		scores:    make([]int8, (refLen+1)*stride),
		gapOpenC:  make([]int16, refLen+1),
		gapCloseC: make([]int16, refLen+1),
		gapOpenR:  make([]int16, refLen+1),
	}
}

// NUC reports whether this profile uses raw-byte (nucleotide) indexing.
func (p *Profile) NUC() bool { return p.nuc }

// Stride is the row width scores are padded to.
func (p *Profile) Stride() int { return p.stride }

// RefLen is the reference length this profile was built for.
func (p *Profile) RefLen() int { return p.refLen }

func (p *Profile) index(c byte) int {
	if p.nuc {
		return int(c)
	}
	return int(c - 'A')
}

// Set records the score of aligning query symbol against reference
// position i (1-based). Returns ErrInvalidAlphabet if symbol is out of
// range.
func (p *Profile) Set(i int, symbol byte, score int8) error {
	if err := seqio.ValidateByte(symbol); err != nil {
		return err
	}
	p.scores[i*p.stride+p.index(symbol)] = score
	return nil
}

// SetGapOpenC sets the column-gap open penalty at reference position i.
func (p *Profile) SetGapOpenC(i int, s int16) { p.gapOpenC[i] = s }

// SetGapCloseC sets the column-gap close penalty added when a column gap
// terminates at reference position i.
func (p *Profile) SetGapCloseC(i int, s int16) { p.gapCloseC[i] = s }

// SetGapOpenR sets the row-gap open penalty for row gaps originating at
// reference position i.
func (p *Profile) SetGapOpenR(i int, s int16) { p.gapOpenR[i] = s }

// QueryIndex returns the offset into a Row's slice that holds the score for
// query symbol c.
func (p *Profile) QueryIndex(c byte) int { return p.index(c) }

// Row returns the Stride-wide padded score row for reference position i,
// indexed by query symbol: Row(i)[queryIndex], ready for a SIMD table load.
func (p *Profile) Row(i int) []int8 {
	if i < 0 || i > p.refLen {
		panic(errors.Errorf("scoring: reference position %d out of range [0, %d]", i, p.refLen))
	}
	return p.scores[i*p.stride : i*p.stride+p.stride]
}

// Score returns the score of aligning query symbol against reference
// position i.
func (p *Profile) Score(i int, symbol byte) int8 {
	return p.Row(i)[p.index(symbol)]
}

// GapOpenC returns the column-gap open penalty at reference position i.
func (p *Profile) GapOpenC(i int) int16 { return p.gapOpenC[i] }

// GapCloseC returns the column-gap close penalty at reference position i.
func (p *Profile) GapCloseC(i int) int16 { return p.gapCloseC[i] }

// GapOpenR returns the row-gap open penalty for row gaps originating at
// reference position i.
func (p *Profile) GapOpenR(i int) int16 { return p.gapOpenR[i] }

// Extend returns the gap-extend cost shared by every position.
func (p *Profile) Extend() int16 { return p.extend }

// SetExtend sets the gap-extend cost shared by every position.
func (p *Profile) SetExtend(e int16) { p.extend = e }

// FromMatrix builds a Profile over the given reference whose per-position
// scores all come from m (looked up against the actual reference symbol at
// each position) and whose gap penalties are the constant gaps, reproducing
// exactly what the non-profile aligner computes with m and gaps. Used to
// test profile/matrix equivalence and as a convenience for callers
// migrating from a flat matrix.
func FromMatrix(m *Matrix, reference []byte, gaps Gaps) (*Profile, error) {
	if err := seqio.Validate(reference); err != nil {
		return nil, err
	}
	p := NewProfile(len(reference), m.NUC())
	p.SetExtend(gaps.Extend)
	for i := 1; i <= len(reference); i++ {
		copy(p.Row(i), m.Row(reference[i-1]))
		p.SetGapOpenC(i, gaps.Open)
		p.SetGapCloseC(i, 0)
		p.SetGapOpenR(i, gaps.Open)
	}
	return p, nil
}
