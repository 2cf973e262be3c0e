// Package block provides the adaptive, SIMD-striped banded aligner: given
// two sequences and a scoring substrate, it computes a global (or
// X-drop-terminated semi-global) alignment score, optionally recording a
// traceback that can be replayed into a CIGAR string.
package block

import (
	"github.com/TheDegenerateDev5150/block-aligner/scoring"
	"github.com/TheDegenerateDev5150/block-aligner/seqio"
	"github.com/TheDegenerateDev5150/block-aligner/simdband"
	"github.com/TheDegenerateDev5150/block-aligner/trace"
)

// maxSequenceLen bounds query_len + ref_len so the trace store's cell
// index (an int, but addressed 2 bits at a time into a byte slice) can
// never overflow.
const maxSequenceLen = 1 << 30

// Result is the end cell of an alignment: the score, and the query/
// reference offsets it was reported at (the bottom-right corner for a
// global alignment, the best cell seen for X-drop).
type Result struct {
	Score    int32
	QueryIdx int
	RefIdx   int
}

// Block is a reusable aligner: Align/AlignProfile may be called repeatedly
// (single-threaded, one alignment at a time) against it. Each call
// allocates its own band and trace buffers; nothing is preallocated.
type Block struct {
	trace bool
	xDrop bool

	queryLenHint int
	refLenHint   int

	res        Result
	traceStore *trace.Store
}

// New builds a Block. queryLen and refLen are only checked against the
// combined length limit (ErrSequenceTooLong) and maxSize is not used; no
// buffers are allocated here. trace and xDrop select, once for the
// Block's lifetime, whether tracebacks are recorded and whether
// termination is global or X-drop (mirroring the source material's
// Block::<TRACE, X_DROP> compile-time parameters, which Go expresses as
// plain fields instead of generic/const parameters).
func New(traceEnabled, xDropEnabled bool, queryLen, refLen, maxSize int) (*Block, error) {
	if queryLen+refLen > maxSequenceLen {
		return nil, ErrSequenceTooLong
	}
	return &Block{
		trace:        traceEnabled,
		xDrop:        xDropEnabled,
		queryLenHint: queryLen,
		refLenHint:   refLen,
	}, nil
}

func validateBandRange(minSize, maxSize int) error {
	if minSize < simdband.L || maxSize%simdband.L != 0 || maxSize < minSize {
		return ErrBandOutOfRange
	}
	return nil
}

// Align runs a matrix-scored alignment, growing the band geometrically
// from minSize to maxSize if a narrower band fails to reach the cell the
// caller needs (the corner for global alignment; X-drop never needs to
// grow since it always terminates in-range).
func (b *Block) Align(query, reference *seqio.PaddedBytes, m *scoring.Matrix, gaps scoring.Gaps, minSize, maxSize int, xDropVal int32) error {
	if err := validateBandRange(minSize, maxSize); err != nil {
		return err
	}
	if err := gaps.Validate(); err != nil {
		return err
	}
	sc := matrixScorer{m: m, ref: reference, gaps: gaps}
	return b.run(sc, query, reference.Len(), minSize, maxSize, xDropVal)
}

// AlignProfile runs a position-specific alignment against profile, whose
// own per-position gap penalties and shared Extend are used instead of a
// caller-supplied Gaps.
func (b *Block) AlignProfile(query *seqio.PaddedBytes, profile *scoring.Profile, minSize, maxSize int, xDropVal int32) error {
	if err := validateBandRange(minSize, maxSize); err != nil {
		return err
	}
	sc := profileScorer{p: profile}
	return b.run(sc, query, profile.RefLen(), minSize, maxSize, xDropVal)
}

func (b *Block) run(sc scorer, query *seqio.PaddedBytes, refLen, minSize, maxSize int, xDropVal int32) error {
	for size := minSize; ; size *= 2 {
		if size > maxSize {
			size = maxSize
		}

		var tr *trace.Store
		if b.trace {
			tr = trace.NewStore(simdband.CeilK(size), refLen)
		}

		score, endI, endJ, inRange := runAlignment(sc, query, refLen, size, xDropVal, b.xDrop, tr)
		if inRange || size == maxSize {
			b.res = Result{Score: score, QueryIdx: endI, RefIdx: endJ}
			b.traceStore = tr
			return nil
		}
	}
}

// Res returns the end cell of the most recent alignment.
func (b *Block) Res() Result { return b.res }

// Trace returns the traceback recorded by the most recent alignment, or
// ErrTraceDisabled if this Block was built without tracing.
func (b *Block) Trace() (*trace.Store, error) {
	if !b.trace {
		return nil, ErrTraceDisabled
	}
	return b.traceStore, nil
}
