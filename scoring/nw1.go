package scoring

import "github.com/TheDegenerateDev5150/block-aligner/seqio"

// NW1 is the nucleotide identity matrix: match +1, mismatch -1, for every
// pair of bytes in ['A', seqio.Null]. It indexes rows/columns by the raw
// ASCII byte, so callers pass the actual base letter (or seqio.Null) to
// Score/Row rather than an offset index.
var NW1 = buildNW1()

func buildNW1() *Matrix {
	m := newSquareMatrix(true /* nuc */, int(seqio.Null)+1)
	for a := byte('A'); a <= seqio.Null; a++ {
		for b := byte('A'); b <= seqio.Null; b++ {
			if a == b {
				m.set(a, b, 1)
			} else {
				m.set(a, b, -1)
			}
		}
	}
	return m
}
