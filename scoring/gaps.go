package scoring

import "github.com/pkg/errors"

// ErrGapConfig is returned when gap penalties violate open <= extend <= 0.
var ErrGapConfig = errors.New("scoring: gap penalties must satisfy open <= extend <= 0")

// Gaps holds affine gap penalties. Open already includes the cost of the
// first gap position; each additional position costs Extend. Both are
// non-positive, and Open must be at least as negative as Extend (opening a
// gap never costs less than extending one).
type Gaps struct {
	Open   int16
	Extend int16
}

// Validate checks Open <= Extend <= 0, returning ErrGapConfig otherwise.
func (g Gaps) Validate() error {
	if g.Extend > 0 || g.Open > g.Extend {
		return errors.Wrapf(ErrGapConfig, "open=%d extend=%d", g.Open, g.Extend)
	}
	return nil
}
