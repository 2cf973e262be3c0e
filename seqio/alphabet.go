// Package seqio holds the sequence representation shared by the rest of
// this module: alphabet validation and the padded, sentinel-terminated byte
// buffer the SIMD band reads from without bounds checks.
package seqio

import "github.com/pkg/errors"

// AlphabetSize is the number of letters the core accepts: ASCII 'A'..'Z'.
const AlphabetSize = 26

// Null is the sentinel byte denoting "no symbol". It pads both ends of a
// PaddedBytes buffer and marks unpopulated band lanes. It works for both
// nucleotide and amino acid alphabets because it sits one past 'Z'.
const Null byte = 'A' + AlphabetSize

// ErrInvalidAlphabet is returned when a byte outside ['A', Null] reaches
// validation.
var ErrInvalidAlphabet = errors.New("seqio: byte outside ['A', 'A'+26] alphabet")

// Validate checks that every byte of seq lies in ['A', Null], returning
// ErrInvalidAlphabet (wrapped with the offending byte and position)
// otherwise.
func Validate(seq []byte) error {
	for i, c := range seq {
		if c < 'A' || c > Null {
			return errors.Wrapf(ErrInvalidAlphabet, "byte %q at position %d", c, i)
		}
	}
	return nil
}

// ValidateByte is Validate specialized to a single byte, for call sites that
// only ever see one symbol at a time (e.g. Profile.Set).
func ValidateByte(c byte) error {
	if c < 'A' || c > Null {
		return errors.Wrapf(ErrInvalidAlphabet, "byte %q", c)
	}
	return nil
}
