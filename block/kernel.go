package block

import (
	"github.com/TheDegenerateDev5150/block-aligner/seqio"
	"github.com/TheDegenerateDev5150/block-aligner/simdband"
	"github.com/TheDegenerateDev5150/block-aligner/trace"
)

func maxI16(a, b int16) int16 {
	if a > b {
		return a
	}
	return b
}

// stepColumn advances the band by one reference column (the Right
// direction): it fuses the matrix/profile lookup, the affine-gap
// recurrence over the D and C planes, the prefix-scan row-gap pass, and
// (when tr is non-nil) trace bit emission. deltaD00 is the D value
// immediately above the band's top-left corner — the previous column's
// value at the query row one above shift_idx, which the controller has
// only for the column right after a down-shift (the row that shift
// evicted); in every other column that row lies outside the band and
// deltaD00 is NegInf. It is only ever added to a real score (never read back
// out) when band row 0 actually holds a query symbol, i.e. once shift_idx
// has advanced past the true top of the matrix; while shift_idx is still 0,
// band row 0 is the sentinel-padded empty-prefix row, its query byte is
// seqio.Null, the masking rule below forces its diagonal candidate to
// NegInf, and it falls back to the pure column-gap recurrence that row
// alone needs.
//
// Returns the column's maximum D delta and the band-local row it occurred
// at (for the adaptive controller), and the absolute R value at the
// bottom-most row (for Band.ShiftDown to extend a column gap past the
// bottom edge on the next down-shift).
func stepColumn(b *simdband.Band, sc scorer, col int, deltaD00 int16, tr *trace.Store) (colMaxDelta int16, colArgK int, absRBand int32) {
	ceilK := b.CeilK
	row := sc.row(col)
	openC := sc.gapOpenC(col)
	openR := sc.gapOpenR(col)
	ext := sc.extend()

	prevD := make([]int16, ceilK)
	prevC := make([]int16, ceilK)
	for start := 0; start < ceilK; start += simdband.L {
		dv := b.DeltaDChunk(start)
		cv := b.DeltaCChunk(start)
		copy(prevD[start:start+simdband.L], dv[:])
		copy(prevC[start:start+simdband.L], cv[:])
	}

	// First pass: diagonal and column-gap candidates, fully data-parallel
	// (no dependency between rows).
	d11a := make([]int16, ceilK)
	candCAll := make([]int16, ceilK)
	for start := 0; start < ceilK; start += simdband.L {
		qv := b.QueryChunk(start)
		for l := 0; l < simdband.L; l++ {
			k := start + l
			var diag int16
			if k == 0 {
				diag = deltaD00
			} else {
				diag = prevD[k-1]
			}
			var score int16 = simdband.NegInf
			if qv[l] != seqio.Null {
				score = int16(row[sc.queryIndex(qv[l])])
			}
			candD := simdband.SatAdd(diag, int32(score))
			candC := maxI16(
				simdband.SatAdd(prevC[k], int32(ext)),
				simdband.SatAdd(prevD[k], int32(openC)),
			)
			candCAll[k] = candC
			d11a[k] = maxI16(candD, candC)
		}
	}

	// Second pass: row-gap propagation via a chunked prefix-max scan, a
	// carry scalar threading the scan across chunk boundaries exactly the
	// way deltaD00 threads the diagonal across reference columns. The scan
	// seeds from d11a (the pre-row-gap candidate) rather than the final D
	// value: GAP_OPEN <= GAP_EXTEND means a row gap chained through an
	// earlier row gap never beats opening fresh from that row's own d11a,
	// so the two seedings are equivalent.
	rCarry := simdband.NegInf
	colMaxDelta = simdband.NegInf
	for start := 0; start < ceilK; start += simdband.L {
		var seed simdband.Vec
		for l := 0; l < simdband.L; l++ {
			seed[l] = simdband.SatAdd(d11a[start+l], int32(openR)-int32(ext))
		}
		// Fold the carry into lane 0 so row gaps opened in earlier chunks
		// keep extending through every lane of this one.
		if c := simdband.SatAdd(rCarry, int32(ext)); c > seed[0] {
			seed[0] = c
		}
		scanned := simdband.PrefixScanMax(seed, ext)

		var dVec simdband.Vec
		for l := 0; l < simdband.L; l++ {
			k := start + l
			var prevScan int16
			if l == 0 {
				prevScan = rCarry
			} else {
				prevScan = scanned[l-1]
			}
			r := simdband.SatAdd(prevScan, int32(ext))
			d := maxI16(d11a[k], r)
			dVec[l] = d

			if tr != nil {
				var code byte
				if r == d && r != simdband.NegInf {
					code |= trace.CellUp
				}
				if candCAll[k] == d && candCAll[k] != simdband.NegInf {
					code |= trace.CellLeft
				}
				tr.SetCell(col, k, code)
			}
			if d > colMaxDelta {
				colMaxDelta = d
				colArgK = k
			}
			if k == ceilK-1 {
				absRBand = b.AbsA00 + int32(r)
			}
		}
		rCarry = scanned[simdband.L-1]

		b.SetDeltaCChunk(start, vecFrom(candCAll[start:start+simdband.L]))
		b.SetDeltaDChunk(start, dVec)
	}
	return colMaxDelta, colArgK, absRBand
}

func vecFrom(s []int16) simdband.Vec {
	var v simdband.Vec
	copy(v[:], s)
	return v
}
