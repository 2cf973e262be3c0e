// Package scoring holds the two scoring substrates the DP kernel reads
// from: a flat substitution Matrix (NW1, BLOSUM62) and a position-specific
// Profile, plus the affine Gaps parameters shared by both.
package scoring

import (
	"github.com/TheDegenerateDev5150/block-aligner/circular"
	"github.com/TheDegenerateDev5150/block-aligner/seqio"
)

// Matrix is a symmetric (symbol, symbol) -> score lookup, stored row-major
// with each row padded to Stride so a SIMD table load of one row never reads
// past the end of the backing array.
//
// Nucleotide matrices index rows/columns by the raw ASCII byte (so Stride
// must cover the whole byte range up to seqio.Null); amino acid matrices
// index by byte-'A' (so Stride only needs to cover the alphabet).
type Matrix struct {
	nuc    bool
	stride int
	vals   []int8
}

// NUC reports whether this matrix uses raw-byte (nucleotide) indexing
// rather than byte-minus-'A' (amino acid) indexing.
func (m *Matrix) NUC() bool { return m.nuc }

// Stride is the row width scores are padded to.
func (m *Matrix) Stride() int { return m.stride }

func (m *Matrix) index(c byte) int {
	if m.nuc {
		return int(c)
	}
	return int(c - 'A')
}

// Row returns the Stride-wide, padded row of scores for reference symbol c,
// indexed by query symbol: Row(c)[queryIndex].
func (m *Matrix) Row(c byte) []int8 {
	i := m.index(c)
	return m.vals[i*m.stride : i*m.stride+m.stride]
}

// QueryIndex returns the offset into a Row's slice that holds the score for
// query symbol c, for callers that gather several query symbols' scores out
// of one already-fetched row themselves.
func (m *Matrix) QueryIndex(c byte) int { return m.index(c) }

// Score returns the substitution score of aligning query symbol q against
// reference symbol r.
func (m *Matrix) Score(q, r byte) int8 {
	return m.Row(r)[m.index(q)]
}

// newSquareMatrix allocates a stride x stride table, stride being the
// smallest power of two that is >= rows (so every row/column index up to
// rows-1 is covered with room for aligned SIMD loads).
func newSquareMatrix(nuc bool, rows int) *Matrix {
	stride := circular.NextExp2(rows - 1)
	return &Matrix{
		nuc:    nuc,
		stride: stride,
		vals:   make([]int8, stride*stride),
	}
}

func (m *Matrix) set(a, b byte, score int8) {
	m.vals[m.index(a)*m.stride+m.index(b)] = score
}
