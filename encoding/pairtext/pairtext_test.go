package pairtext_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/TheDegenerateDev5150/block-aligner/encoding/pairtext"
)

func TestReadPairs(t *testing.T) {
	input := "acgt\nACGA\nTTTT\ngggg\n"
	pairs, err := pairtext.ReadPairs(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, pairs, 2)
	require.Equal(t, []byte("ACGT"), pairs[0].Reference)
	require.Equal(t, []byte("ACGA"), pairs[0].Query)
	require.Equal(t, []byte("TTTT"), pairs[1].Reference)
	require.Equal(t, []byte("GGGG"), pairs[1].Query)
}

func TestReadPairsRejectsDanglingReference(t *testing.T) {
	_, err := pairtext.ReadPairs(strings.NewReader("ACGT\n"))
	require.Error(t, err)
}

func TestReadPairsEmptyInput(t *testing.T) {
	pairs, err := pairtext.ReadPairs(strings.NewReader(""))
	require.NoError(t, err)
	require.Empty(t, pairs)
}

const pssmFixture = ">AC\n" +
	"1\n" +
	"0 X 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0\n" +
	"1 A 5 -1 -2 -2 -3 -1 -2 0 -2 -1 -1 0 -1 -1 -1 1 0 -3 -2 0\n"

func TestReadPSSM(t *testing.T) {
	pairs, err := pairtext.ReadPSSM(strings.NewReader(pssmFixture), 4, -10, -1)
	require.NoError(t, err)
	require.Len(t, pairs, 1)

	p := pairs[0]
	require.Equal(t, 2, p.Query.Len())
	require.Equal(t, byte('A'), p.Query.At(0))
	require.Equal(t, byte('C'), p.Query.At(1))

	require.Equal(t, 1, p.Profile.RefLen())
	require.EqualValues(t, 5, p.Profile.Score(1, 'A'))
	require.EqualValues(t, -1, p.Profile.Score(1, 'C'))
	require.EqualValues(t, 0, p.Profile.Score(1, 'Y'))
	require.EqualValues(t, -10, p.Profile.GapOpenC(1))
	require.EqualValues(t, 0, p.Profile.GapCloseC(1))
	require.EqualValues(t, -10, p.Profile.GapOpenR(1))
	require.EqualValues(t, -1, p.Profile.Extend())
}

func TestReadPSSMRejectsMissingHeaderPrefix(t *testing.T) {
	_, err := pairtext.ReadPSSM(strings.NewReader("AC\n1\n"), 4, -10, -1)
	require.Error(t, err)
}

func TestReadPSSMRejectsTruncatedRows(t *testing.T) {
	_, err := pairtext.ReadPSSM(strings.NewReader(">AC\n1\n0 X\n"), 4, -10, -1)
	require.Error(t, err)
}
