package trace_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/TheDegenerateDev5150/block-aligner/trace"
)

func TestSetCellGetCellRoundTrips(t *testing.T) {
	s := trace.NewStore(8, 4)
	for col := 0; col <= 4; col++ {
		for k := 0; k < 8; k++ {
			code := byte((col + k) % 3)
			if code == 2 {
				code = trace.CellUp
			}
			s.SetCell(col, k, code)
			assert.Equal(t, code, s.Cell(col, k), "col=%d k=%d", col, k)
		}
	}
}

func TestColumnShiftIdxRoundTrips(t *testing.T) {
	s := trace.NewStore(8, 4)
	for col := 0; col <= 4; col++ {
		s.SetColumnShiftIdx(col, col*2)
	}
	for col := 0; col <= 4; col++ {
		assert.Equal(t, col*2, s.ColumnShiftIdx(col))
	}
}

// TestCigarAllDiagonal builds a trace whose only recorded path is a run of
// matches and checks Cigar coalesces it into one run.
func TestCigarAllDiagonal(t *testing.T) {
	s := trace.NewStore(8, 3)
	for col := 1; col <= 3; col++ {
		s.SetColumnShiftIdx(col, 0)
		s.SetCell(col, col, trace.CellDiagonal)
	}
	assert.Equal(t, "3M", s.Cigar(3, 3))
}

// TestCigarMixedOps builds a trace for the forward path M, D (column gap),
// M and checks the backward walk reconstructs it with the ops in the
// correct forward order.
func TestCigarMixedOps(t *testing.T) {
	s := trace.NewStore(8, 3)
	for col := 0; col <= 3; col++ {
		s.SetColumnShiftIdx(col, 0)
	}
	// (0,0) --M--> (1,1) --D--> (1,2) --M--> (2,3)
	s.SetCell(1, 1, trace.CellDiagonal)
	s.SetCell(2, 1, trace.CellLeft)
	s.SetCell(3, 2, trace.CellDiagonal)

	assert.Equal(t, "1M1D1M", s.Cigar(2, 3))
}

// TestCigarAllRowGaps covers a query-only path (insertions with no
// reference consumed at all).
func TestCigarAllRowGaps(t *testing.T) {
	s := trace.NewStore(8, 0)
	assert.Equal(t, "3I", s.Cigar(3, 0))
}

// TestCigarAllColumnGaps covers a reference-only path (deletions with no
// query consumed at all) — the j==0 branch is never hit since i stays 0
// throughout, exercising Cigar's i==0 branch instead.
func TestCigarAllColumnGaps(t *testing.T) {
	s := trace.NewStore(8, 3)
	assert.Equal(t, "3D", s.Cigar(0, 3))
}
