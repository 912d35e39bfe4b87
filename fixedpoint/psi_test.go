package fixedpoint_test

import (
	"testing"

	"github.com/qcldpc-go/qcldpc/fixedpoint"
	"github.com/stretchr/testify/require"
)

// S2 from spec.md §8, with the sign the reference's psi() actually
// produces: the leading minus is part of the tabulation.
func TestPsi_EndpointsAreSwapped(t *testing.T) {
	t.Parallel()

	require.InDelta(t, -3.9375, fixedpoint.Psi(0.0), 1e-12)
	require.InDelta(t, 0.0, fixedpoint.Psi(3.9375), 1e-12)
}

// Invariant 2 from spec.md §8, adjusted for the baked-in sign: applying
// ψ twice returns the magnitude's involution with one net negation,
// Psi(Psi(v)) == -v, for every non-negative grid value v.
func TestPsi_DoubleApplicationNegates(t *testing.T) {
	t.Parallel()

	for _, v := range fixedpoint.Grid() {
		got := fixedpoint.Psi(fixedpoint.Psi(v))
		require.InDeltaf(t, -v, got, 1e-9, "psi(psi(%v)) = %v, want %v", v, got, -v)
	}
}
