package ldpc

import "github.com/qcldpc-go/qcldpc/fixedpoint"

// sign returns +1 for non-negative v and -1 for negative v; the sign of
// zero is defined as +1 (spec.md §4.F).
func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}

// pcub is the ψ-domain check-node update (spec.md §4.F): it removes each
// edge's own contribution from the saturating ψ-domain sum and restores
// the product-of-other-signs convention baked into ψ's tabulation.
func pcub(v []float64) []float64 {
	n := len(v)
	p := make([]float64, n)
	s := 1.0
	for i, x := range v {
		p[i] = fixedpoint.Psi(x)
		s *= sign(x)
	}

	total := 0.0
	for _, pi := range p {
		total = fixedpoint.Saturate(total+pi, fixedpoint.SaturationFloor, fixedpoint.SaturationCeiling)
	}

	out := make([]float64, n)
	for i, x := range v {
		extrinsic := fixedpoint.Psi(total - p[i])
		out[i] = -s * sign(x) * extrinsic
	}

	return out
}
