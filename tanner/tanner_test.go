package tanner_test

import (
	"testing"

	"github.com/qcldpc-go/qcldpc/matrix"
	"github.com/qcldpc-go/qcldpc/tanner"
	"github.com/stretchr/testify/require"
)

func TestBuild_VertexAndEdgeCounts(t *testing.T) {
	t.Parallel()

	p, err := matrix.NewShiftMatrix([][]int{{0, -1, 1}}, 3)
	require.NoError(t, err)
	h := matrix.ExpandH(p)

	g, err := tanner.Build(h)
	require.NoError(t, err)
	require.Equal(t, h.Rows()+h.Cols(), g.VertexCount())
	require.Equal(t, 6, g.EdgeCount()) // 3 rows * weight 2 each
}

func TestBuild_NilMatrix(t *testing.T) {
	t.Parallel()

	_, err := tanner.Build(nil)
	require.ErrorIs(t, err, tanner.ErrNilMatrix)
}

func TestGirth_DisjointPathsHaveNoCycle(t *testing.T) {
	t.Parallel()

	p, err := matrix.NewShiftMatrix([][]int{{0, -1, 1}}, 3)
	require.NoError(t, err)
	h := matrix.ExpandH(p)

	g, err := tanner.Build(h)
	require.NoError(t, err)
	_, err = tanner.Girth(g)
	require.ErrorIs(t, err, tanner.ErrNoCycle)
}

// Two all-zero-shift blocks stacked row-wise make rows 0 and 4 share both
// of their columns, closing a 4-cycle: c0-v0-c4-v4-c0.
func TestGirth_FourCycle(t *testing.T) {
	t.Parallel()

	p, err := matrix.NewShiftMatrix([][]int{{0, 0}, {0, 0}}, 4)
	require.NoError(t, err)
	h := matrix.ExpandH(p)

	g, err := tanner.Build(h)
	require.NoError(t, err)
	girth, err := tanner.Girth(g)
	require.NoError(t, err)
	require.Equal(t, 4, girth)
}
