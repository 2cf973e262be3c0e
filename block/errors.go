package block

import (
	"github.com/pkg/errors"

	"github.com/TheDegenerateDev5150/block-aligner/seqio"
	"github.com/TheDegenerateDev5150/block-aligner/trace"
)

// Error kinds surfaced by the core aligner, matching the core's error
// handling design: each aborts the current alignment with no partial
// result.
var (
	// ErrInvalidAlphabet is returned when an input byte lies outside
	// ['A', seqio.Null]; re-exported here for callers that only import
	// block, not seqio, to check against.
	ErrInvalidAlphabet = seqio.ErrInvalidAlphabet

	// ErrBandOutOfRange is returned when minSize < simdband.L, maxSize is
	// not a multiple of simdband.L, or maxSize < minSize.
	ErrBandOutOfRange = errors.New("block: band size out of range")

	// ErrTraceDisabled is returned when Trace is requested from a Block
	// built without tracing; re-exported from trace.
	ErrTraceDisabled = trace.ErrTraceDisabled

	// ErrSequenceTooLong is returned when query_len + ref_len would
	// overflow the trace index.
	ErrSequenceTooLong = errors.New("block: combined sequence length overflows the trace index")
)
