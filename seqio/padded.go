package seqio

// PaddedBytes is an owned byte buffer of length len(seq) + 2*padding + lanes,
// where [padding, padding+len(seq)) holds the sequence and every other byte
// is the sentinel Null. A vectorised load of `lanes` bytes starting anywhere
// in [0, len(seq)+padding] therefore always stays in bounds, with no
// per-load bounds check in the hot loop.
type PaddedBytes struct {
	buf     []byte
	padding int
	length  int
}

// FromBytes copies seq into a new PaddedBytes with the given padding on
// both sides and lanes extra sentinel bytes past the end (lanes is normally
// the SIMD lane count L, so the last full-width load never runs off the
// buffer). Returns ErrInvalidAlphabet if seq contains a byte outside
// ['A', Null].
func FromBytes(seq []byte, padding, lanes int) (*PaddedBytes, error) {
	if err := Validate(seq); err != nil {
		return nil, err
	}
	buf := make([]byte, padding+len(seq)+padding+lanes)
	for i := range buf {
		buf[i] = Null
	}
	copy(buf[padding:padding+len(seq)], seq)
	return &PaddedBytes{buf: buf, padding: padding, length: len(seq)}, nil
}

// FromStr is the string-typed equivalent of FromBytes.
func FromStr(seq string, padding, lanes int) (*PaddedBytes, error) {
	return FromBytes([]byte(seq), padding, lanes)
}

// Len returns the length of the (unpadded) sequence.
func (p *PaddedBytes) Len() int { return p.length }

// Padding returns the padding width on each side of the sequence.
func (p *PaddedBytes) Padding() int { return p.padding }

// At returns the byte at logical sequence position i, where i may range
// over [-padding, length+padding) to reach the sentinel runs on either
// side.
func (p *PaddedBytes) At(i int) byte {
	return p.buf[p.padding+i]
}

// Slice returns the logical sequence window [start, end), which may dip
// into the sentinel padding on either side.
func (p *PaddedBytes) Slice(start, end int) []byte {
	return p.buf[p.padding+start : p.padding+end]
}

// Raw returns the entire backing buffer, including both padding runs, for
// callers that need to do their own strided/aligned loads over it.
func (p *PaddedBytes) Raw() []byte { return p.buf }
