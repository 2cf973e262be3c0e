package simdband

import (
	"math"

	"github.com/TheDegenerateDev5150/block-aligner/scoring"
	"github.com/TheDegenerateDev5150/block-aligner/seqio"
)

// RoundUp rounds n up to the nearest multiple of step.
func RoundUp(n, step int) int {
	return ((n + step - 1) / step) * step
}

// CeilK rounds a requested band width k up to CeilK = RoundUp(k+1, L), the
// width the striped layout actually allocates (one extra row for the
// implicit empty-prefix cell, padded to a whole number of L-wide vectors).
func CeilK(k int) int {
	return RoundUp(k+1, L)
}

// Band holds one adaptive alignment band: the delta_D/delta_C planes
// (flat circular arrays, read and written in chunks of L adjacent rows),
// the query window they cover, and the bookkeeping needed to
// rebase and shift it. CeilK and Stride are fixed for the band's lifetime;
// everything else mutates as the DP kernel and adaptive controller advance
// it.
type Band struct {
	CeilK  int
	Stride int

	// ringBufIdx is the position in the flat, circular delta/query arrays
	// that currently represents logical index 0 (the top of the band).
	// Shifting the band down by one row writes the new bottom row into
	// this same physical slot and advances ringBufIdx by one — an O(1)
	// shift with no per-lane data movement, the job the source material's
	// ring_buf_idx does with an in-register lane shuffle instead.
	ringBufIdx int

	deltaD   []int16
	deltaC   []int16
	queryBuf []byte

	// AbsA00 anchors every delta_D/delta_C lane: the true DP value at
	// logical index k is AbsA00 + delta_D[k], unless that delta is
	// NegInf ("unreachable").
	AbsA00 int32

	// ShiftIdx is the absolute query-origin of the band's logical index 0.
	ShiftIdx int
	// RefIdx is the absolute reference column processed so far.
	RefIdx int

	// absDBand is the running absolute D value at the bottom of the band,
	// used by ShiftDown to extend a column gap past the bottom edge.
	absDBand int32
}

// NewBand allocates and populates a band of width k (rounded up to CeilK)
// at the top-left corner of a global alignment: logical index 0 is the
// empty prefix, logical index i in [1, query.Len()] is query position i.
func NewBand(k int, query *seqio.PaddedBytes, gaps scoring.Gaps) *Band {
	ceilK := CeilK(k)
	b := &Band{
		CeilK:    ceilK,
		Stride:   ceilK / L,
		deltaD:   make([]int16, ceilK),
		deltaC:   make([]int16, ceilK),
		queryBuf: make([]byte, ceilK),
		absDBand: math.MinInt32 / 2,
	}
	queryLen := query.Len()
	for k := 0; k < ceilK; k++ {
		switch {
		case k == 0:
			b.queryBuf[k] = seqio.Null
			b.deltaD[k] = 0
		case k <= queryLen:
			b.queryBuf[k] = query.At(k - 1)
			b.deltaD[k] = Clamp(int32(gaps.Open) + int32(k-1)*int32(gaps.Extend))
		default:
			b.queryBuf[k] = seqio.Null
			b.deltaD[k] = NegInf
		}
		b.deltaC[k] = NegInf
	}
	return b
}

func (b *Band) physical(k int) int {
	p := b.ringBufIdx + k
	if p >= b.CeilK {
		p -= b.CeilK
	}
	return p
}

// DeltaD returns the D-plane delta at logical band index k.
func (b *Band) DeltaD(k int) int16 { return b.deltaD[b.physical(k)] }

// SetDeltaD writes the D-plane delta at logical band index k.
func (b *Band) SetDeltaD(k int, v int16) { b.deltaD[b.physical(k)] = v }

// DeltaC returns the C-plane (column-gap) delta at logical band index k.
func (b *Band) DeltaC(k int) int16 { return b.deltaC[b.physical(k)] }

// SetDeltaC writes the C-plane delta at logical band index k.
func (b *Band) SetDeltaC(k int, v int16) { b.deltaC[b.physical(k)] = v }

// QueryAt returns the query symbol at logical band index k.
func (b *Band) QueryAt(k int) byte { return b.queryBuf[b.physical(k)] }

// DeltaDChunk gathers the L adjacent D-plane deltas starting at logical
// index start (start, start+1, ..., start+L-1) into a Vec. The DP kernel
// walks the band in these adjacent L-wide chunks so that the within-chunk
// prefix scan (simdband.PrefixScanMax, step = one row = GAP_EXTEND) and the
// scalar carry between chunks together compute the exact same row-gap
// recurrence a scalar sweep over all CeilK rows would, just L rows at a
// time.
func (b *Band) DeltaDChunk(start int) Vec {
	var out Vec
	for l := 0; l < L; l++ {
		out[l] = b.DeltaD(start + l)
	}
	return out
}

// SetDeltaDChunk scatters val back into the L adjacent D-plane slots
// starting at start.
func (b *Band) SetDeltaDChunk(start int, val Vec) {
	for l := 0; l < L; l++ {
		b.SetDeltaD(start+l, val[l])
	}
}

// DeltaCChunk gathers the L adjacent C-plane deltas starting at start.
func (b *Band) DeltaCChunk(start int) Vec {
	var out Vec
	for l := 0; l < L; l++ {
		out[l] = b.DeltaC(start + l)
	}
	return out
}

// SetDeltaCChunk scatters val back into the L adjacent C-plane slots
// starting at start.
func (b *Band) SetDeltaCChunk(start int, val Vec) {
	for l := 0; l < L; l++ {
		b.SetDeltaC(start+l, val[l])
	}
}

// QueryChunk gathers the L adjacent query symbols starting at start.
func (b *Band) QueryChunk(start int) QueryVec {
	var out QueryVec
	for l := 0; l < L; l++ {
		out[l] = b.QueryAt(start + l)
	}
	return out
}

// Rebase re-anchors AbsA00 to the band's current top cell (logical index
// 0), adding the difference to every delta so each lane's absolute value
// (AbsA00 + delta) is unchanged. Run once per column so deltas stay
// centered in int16 range instead of drifting toward its edges.
func (b *Band) Rebase() {
	top := b.DeltaD(0)
	if top == NegInf {
		return
	}
	newAbsA00 := b.AbsA00 + int32(top)
	diff := b.AbsA00 - newAbsA00
	for i := 0; i < b.CeilK; i++ {
		b.deltaD[i] = SatAdd(b.deltaD[i], diff)
		b.deltaC[i] = SatAdd(b.deltaC[i], diff)
	}
	b.AbsA00 = newAbsA00
}

// ShiftDown advances the band by count query rows, feeding in new query
// symbols and extending the column-gap plane from the bottom. absRBand is
// the absolute R value at the bottom of the band after the column just
// computed by the DP kernel (the prefix scan's last lane) — the only new
// information a down-shift burst has to extend a gap from.
func (b *Band) ShiftDown(count int, query *seqio.PaddedBytes, gaps scoring.Gaps, absRBand int32) {
	queryLen := query.Len()
	for n := 0; n < count; n++ {
		open := gaps.Open
		rCandidate := absRBand
		if n > 0 {
			// Continuing the gap opened by this burst's first row: no new
			// column was computed in between, so further rows extend
			// rather than re-open it.
			open = gaps.Extend
			rCandidate = math.MinInt32 / 2
		}
		absDBand := b.absDBand + int32(open)
		if rCandidate > absDBand {
			absDBand = rCandidate
		}
		b.absDBand = absDBand

		p := b.ringBufIdx
		newBottom := b.ShiftIdx + b.CeilK
		if newBottom <= queryLen {
			b.queryBuf[p] = query.At(newBottom - 1)
		} else {
			b.queryBuf[p] = seqio.Null
		}
		b.deltaD[p] = Clamp(absDBand - b.AbsA00)
		b.deltaC[p] = NegInf

		b.ringBufIdx++
		if b.ringBufIdx == b.CeilK {
			b.ringBufIdx = 0
		}
		b.ShiftIdx++
	}
}
