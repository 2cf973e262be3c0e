package block

import (
	"math"

	"github.com/TheDegenerateDev5150/block-aligner/scoring"
	"github.com/TheDegenerateDev5150/block-aligner/seqio"
	"github.com/TheDegenerateDev5150/block-aligner/simdband"
	"github.com/TheDegenerateDev5150/block-aligner/trace"
)

// runAlignment drives the adaptive Right/Down controller over one fixed
// band width k until the reference is exhausted (global) or X-drop fires.
// It reports whether the final band position actually covered the cell
// the caller needs to read (inRange=false tells Align/AlignProfile to
// retry with a wider band).
func runAlignment(sc scorer, query *seqio.PaddedBytes, refLen, k int, xDropVal int32, useXDrop bool, tr *trace.Store) (score int32, endI, endJ int, inRange bool) {
	band := simdband.NewBand(k, query, sc.initGaps())
	queryLen := query.Len()

	var aboveTopAbs int32
	aboveTopValid := false

	bestMax := int32(math.MinInt32)
	var bestI, bestJ int

	for band.RefIdx < refLen {
		band.Rebase()
		col := band.RefIdx + 1

		deltaD00 := simdband.NegInf
		if aboveTopValid {
			deltaD00 = simdband.Clamp(aboveTopAbs - band.AbsA00)
			aboveTopValid = false
		}

		if tr != nil {
			tr.SetColumnShiftIdx(col, band.ShiftIdx)
		}

		colMaxDelta, colArgK, absRBand := stepColumn(band, sc, col, deltaD00, tr)
		band.RefIdx = col

		colMaxAbs := band.AbsA00 + int32(colMaxDelta)
		if colMaxAbs > bestMax {
			bestMax = colMaxAbs
			bestI = band.ShiftIdx + colArgK
			bestJ = col
		}

		if useXDrop && colMaxAbs < bestMax-xDropVal {
			return bestMax, bestI, bestJ, true
		}

		// Adaptive controller: once the column max has drifted into the
		// bottom 3/8 of the band, recentre by shifting down. The 5/8
		// threshold (not 1/2) gives hysteresis so the band doesn't
		// oscillate between Right and Down near the centre.
		if colArgK > band.CeilK*5/8 {
			shift := colArgK - band.CeilK/2
			if shift < 1 {
				shift = 1
			}
			if band.ShiftIdx+shift > queryLen {
				shift = queryLen - band.ShiftIdx
			}
			if shift > 0 {
				evictedAbs := band.AbsA00 + int32(band.DeltaD(shift-1))
				band.ShiftDown(shift, query, scoring.Gaps{Open: sc.gapOpenC(col), Extend: sc.extend()}, absRBand)
				aboveTopAbs = evictedAbs
				aboveTopValid = true
			}
		}
	}

	if useXDrop {
		return bestMax, bestI, bestJ, true
	}

	bottomRow := queryLen - band.ShiftIdx
	if bottomRow < 0 || bottomRow >= band.CeilK {
		return 0, 0, 0, false
	}
	return band.AbsA00 + int32(band.DeltaD(bottomRow)), queryLen, refLen, true
}
