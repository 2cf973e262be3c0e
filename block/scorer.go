package block

import (
	"github.com/TheDegenerateDev5150/block-aligner/scoring"
	"github.com/TheDegenerateDev5150/block-aligner/seqio"
)

// scorer abstracts over a flat substitution Matrix and a position-specific
// Profile so the DP kernel runs identically over either: both hand back a
// score row for the current reference column and the three gap costs that
// may apply at it.
type scorer interface {
	row(col int) []int8
	queryIndex(c byte) int
	gapOpenC(col int) int16
	gapCloseC(col int) int16
	gapOpenR(col int) int16
	extend() int16
	// initGaps returns the Gaps simdband.NewBand should use to seed the
	// band's initial row-gap edge (query prefix vs. empty reference).
	initGaps() scoring.Gaps
}

type matrixScorer struct {
	m    *scoring.Matrix
	ref  *seqio.PaddedBytes
	gaps scoring.Gaps
}

func (s matrixScorer) row(col int) []int8    { return s.m.Row(s.ref.At(col - 1)) }
func (s matrixScorer) queryIndex(c byte) int { return s.m.QueryIndex(c) }
func (s matrixScorer) gapOpenC(int) int16    { return s.gaps.Open }
func (s matrixScorer) gapCloseC(int) int16   { return 0 }
func (s matrixScorer) gapOpenR(int) int16    { return s.gaps.Open }
func (s matrixScorer) extend() int16         { return s.gaps.Extend }
func (s matrixScorer) initGaps() scoring.Gaps { return s.gaps }

type profileScorer struct {
	p *scoring.Profile
}

func (s profileScorer) row(col int) []int8      { return s.p.Row(col) }
func (s profileScorer) queryIndex(c byte) int   { return s.p.QueryIndex(c) }
func (s profileScorer) gapOpenC(col int) int16  { return s.p.GapOpenC(col) }
func (s profileScorer) gapCloseC(col int) int16 { return s.p.GapCloseC(col) }
func (s profileScorer) gapOpenR(col int) int16  { return s.p.GapOpenR(col) }
func (s profileScorer) extend() int16 { return s.p.Extend() }

// initGaps stands in for the gap-open cost along the band's initial
// row-gap edge (empty reference vs. query prefix), a boundary position 0
// of a Profile has no dedicated per-position cost for. Using position 1's
// row-gap-open cost is a documented approximation — see DESIGN.md.
func (s profileScorer) initGaps() scoring.Gaps {
	if s.p.RefLen() == 0 {
		return scoring.Gaps{}
	}
	return scoring.Gaps{Open: s.p.GapOpenR(1), Extend: s.p.Extend()}
}
