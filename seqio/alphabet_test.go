package seqio_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TheDegenerateDev5150/block-aligner/seqio"
)

func TestValidate(t *testing.T) {
	require.NoError(t, seqio.Validate([]byte("ACGT")))
	require.NoError(t, seqio.Validate([]byte{seqio.Null}))
	err := seqio.Validate([]byte("ACgT"))
	require.Error(t, err)
	assert.Equal(t, seqio.ErrInvalidAlphabet, errors.Cause(err))
}

func TestValidateByte(t *testing.T) {
	require.NoError(t, seqio.ValidateByte('A'))
	require.NoError(t, seqio.ValidateByte(seqio.Null))
	require.Error(t, seqio.ValidateByte('a'))
	require.Error(t, seqio.ValidateByte(seqio.Null+1))
}

func TestNullSentinel(t *testing.T) {
	assert.Equal(t, byte('['), seqio.Null)
	assert.Equal(t, 26, seqio.AlphabetSize)
}
