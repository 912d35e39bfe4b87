package matrix_test

import (
	"testing"

	"github.com/qcldpc-go/qcldpc/matrix"
	"github.com/stretchr/testify/require"
)

// S4 from spec.md §8: B=3, P=[[0,-1,1]] expands to [I3 | 0 | cyclic-up-1(I3)].
func TestExpandH_S4Spot(t *testing.T) {
	t.Parallel()

	p, err := matrix.NewShiftMatrix([][]int{{0, -1, 1}}, 3)
	require.NoError(t, err)
	h := matrix.ExpandH(p)

	require.Equal(t, 3, h.Rows())
	require.Equal(t, 9, h.Cols())
	require.Equal(t, []int{0, 7}, h.RowIndices(0))
	require.Equal(t, []int{1, 8}, h.RowIndices(1))
	require.Equal(t, []int{2, 6}, h.RowIndices(2))
}

// Invariant 1 from spec.md §8: row/col weight equals the count of
// non-(-1) entries in the corresponding shift-matrix row/column.
func TestExpandH_PreservesRowColWeights(t *testing.T) {
	t.Parallel()

	raw := [][]int{
		{0, -1, 1, 2},
		{-1, 0, -1, 1},
		{1, 2, 0, -1},
	}
	p, err := matrix.NewShiftMatrix(raw, 5)
	require.NoError(t, err)
	h := matrix.ExpandH(p)

	for blockRow, row := range raw {
		want := 0
		for _, v := range row {
			if v != -1 {
				want++
			}
		}
		for i := 0; i < p.BlockSize(); i++ {
			require.Equal(t, want, h.RowWeight(blockRow*p.BlockSize()+i))
		}
	}

	for blockCol := 0; blockCol < p.Cols(); blockCol++ {
		want := 0
		for blockRow := 0; blockRow < p.Rows(); blockRow++ {
			if raw[blockRow][blockCol] != -1 {
				want++
			}
		}
		for i := 0; i < p.BlockSize(); i++ {
			require.Equal(t, want, h.ColWeight(blockCol*p.BlockSize()+i))
		}
	}
}

// Boundary behavior 11 from spec.md §8: an all -1 row contributes no edges.
func TestExpandH_AllZeroRowHasNoEdges(t *testing.T) {
	t.Parallel()

	p, err := matrix.NewShiftMatrix([][]int{{0, 1}, {-1, -1}}, 2)
	require.NoError(t, err)
	h := matrix.ExpandH(p)

	require.Equal(t, 0, h.RowWeight(2))
	require.Equal(t, 0, h.RowWeight(3))
}

func TestSyndrome_ValidAndInvalidWords(t *testing.T) {
	t.Parallel()

	p, err := matrix.NewShiftMatrix([][]int{{0}}, 4)
	require.NoError(t, err)
	h := matrix.ExpandH(p)

	ok, err := h.Syndrome([]byte{0, 0, 0, 0})
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = h.Syndrome([]byte{1, 0, 0, 0})
	require.NoError(t, err)
	require.False(t, ok)

	_, err = h.Syndrome([]byte{0, 0, 0})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = h.Syndrome([]byte{2, 0, 0, 0})
	require.ErrorIs(t, err, matrix.ErrNonBinaryWord)
}
