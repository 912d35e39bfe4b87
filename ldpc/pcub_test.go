package ldpc

import (
	"testing"

	"github.com/qcldpc-go/qcldpc/fixedpoint"
	"github.com/stretchr/testify/require"
)

func TestPcub_BothAtMaxMagnitudePositive(t *testing.T) {
	t.Parallel()

	out := pcub([]float64{fixedpoint.MaxMagnitude, fixedpoint.MaxMagnitude})
	require.Equal(t, []float64{fixedpoint.MaxMagnitude, fixedpoint.MaxMagnitude}, out)
}

func TestPcub_OppositeSignsAtMaxMagnitude(t *testing.T) {
	t.Parallel()

	out := pcub([]float64{fixedpoint.MaxMagnitude, -fixedpoint.MaxMagnitude})
	require.Equal(t, []float64{-fixedpoint.MaxMagnitude, fixedpoint.MaxMagnitude}, out)
}

// Spec.md §4.F: the sign of a zero input is treated as +1, and ψ(0) is
// the table maximum, so two zero inputs exactly saturate T and both
// extrinsic values collapse back to zero.
func TestPcub_ZeroInputsStayZero(t *testing.T) {
	t.Parallel()

	out := pcub([]float64{0, 0})
	require.Equal(t, []float64{0, 0}, out)
}

func TestSign(t *testing.T) {
	t.Parallel()

	require.Equal(t, 1.0, sign(0))
	require.Equal(t, 1.0, sign(0.5))
	require.Equal(t, -1.0, sign(-0.5))
}
