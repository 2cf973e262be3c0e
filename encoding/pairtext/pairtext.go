// Package pairtext parses the plain-text sequence formats the aligner's
// accuracy and benchmark harnesses read from disk: a two-line-per-record
// reference/query format, and a PSSM (position-specific scoring matrix)
// format that pairs one query sequence with a per-reference-position score
// table.
package pairtext

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/TheDegenerateDev5150/block-aligner/scoring"
	"github.com/TheDegenerateDev5150/block-aligner/seqio"
	"github.com/TheDegenerateDev5150/block-aligner/simdband"
)

const bufferInitSize = 1 * 1024 * 1024

// pssmColumns is the column order a PSSM row's per-residue scores appear
// in, matching the 20-letter amino acid ordering the benchmark data this
// format was lifted from uses.
var pssmColumns = []byte("ACDEFGHIKLMNPQRSTVWY")

// Pair is one reference/query record read by ReadPairs.
type Pair struct {
	Reference []byte
	Query     []byte
}

// ReadPairs reads records of exactly two lines each — a reference sequence
// followed by a query sequence, both case-folded to uppercase — until EOF.
// A reference line with no matching query line is an error; blank lines
// are not treated specially and count as empty sequences.
func ReadPairs(r io.Reader) ([]Pair, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(nil, bufferInitSize)

	var pairs []Pair
	for scanner.Scan() {
		ref := strings.ToUpper(scanner.Text())
		if !scanner.Scan() {
			return nil, errors.Errorf("pairtext: reference line with no matching query line: %q", ref)
		}
		query := strings.ToUpper(scanner.Text())
		pairs = append(pairs, Pair{Reference: []byte(ref), Query: []byte(query)})
	}
	return pairs, scanner.Err()
}

// PSSMPair is one query sequence and the position-specific profile scored
// against it, as read by ReadPSSM.
type PSSMPair struct {
	Profile *scoring.Profile
	Query   *seqio.PaddedBytes
}

// ReadPSSM reads records of the form:
//
//	>query-sequence
//	ref-length
//	<row 0, ignored>
//	<row 1: pos residue score...score>
//	...
//	<row ref-length: pos residue score...score>
//
// Everything after '>' on the header line is the query sequence. Each
// scored row carries one score per pssmColumns entry, in that order.
// gapOpen and gapExtend are not part of the file format (the original
// benchmark data never varies them within one run) and apply uniformly to
// every reference position; padding is forwarded to seqio.FromStr for the
// query sequence.
func ReadPSSM(r io.Reader, padding int, gapOpen, gapExtend int16) ([]PSSMPair, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(nil, bufferInitSize)

	var pairs []PSSMPair
	for scanner.Scan() {
		header := scanner.Text()
		if header == "" {
			continue
		}
		if header[0] != '>' {
			return nil, errors.Errorf("pairtext: expected '>'-prefixed header, got %q", header)
		}
		seq := strings.ToUpper(header[1:])

		if !scanner.Scan() {
			return nil, errors.Errorf("pairtext: missing PSSM length line after %q", header)
		}
		refLen, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
		if err != nil {
			return nil, errors.Wrapf(err, "pairtext: invalid PSSM length line after %q", header)
		}

		profile := scoring.NewProfile(refLen, false /* amino acid */)
		profile.SetExtend(gapExtend)

		for i := 0; i <= refLen; i++ {
			if !scanner.Scan() {
				return nil, errors.Errorf("pairtext: truncated PSSM for %q, expected %d rows", header, refLen+1)
			}
			if i == 0 {
				// Row 0 is the padding position the kernel never reads a
				// score from; only its presence in the file matters.
				continue
			}
			fields := strings.Fields(scanner.Text())
			if len(fields) < 2+len(pssmColumns) {
				return nil, errors.Errorf("pairtext: PSSM row %d of %q has %d fields, want at least %d",
					i, header, len(fields), 2+len(pssmColumns))
			}
			for j, residue := range pssmColumns {
				score, err := strconv.ParseInt(fields[2+j], 10, 8)
				if err != nil {
					return nil, errors.Wrapf(err, "pairtext: PSSM row %d column %c of %q", i, residue, header)
				}
				if err := profile.Set(i, residue, int8(score)); err != nil {
					return nil, err
				}
			}
			profile.SetGapOpenC(i, gapOpen)
			profile.SetGapCloseC(i, 0)
			profile.SetGapOpenR(i, gapOpen)
		}

		query, err := seqio.FromStr(seq, padding, simdband.L)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, PSSMPair{Profile: profile, Query: query})
	}
	return pairs, scanner.Err()
}
