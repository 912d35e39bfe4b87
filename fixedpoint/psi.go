package fixedpoint

import "math"

// psiTable[c] = ψ(grid[c]), built once at package init.
//
// Construction mirrors the reference LUT exactly: the two endpoints are
// wired to each other (ψ(grid[0]) = grid[Steps-1] and vice versa, since
// real ψ diverges at zero); every interior point is
// ψ(x) = |log tanh(x/2)| quantized back onto the grid.
var psiTable = buildPsiTable()

func buildPsiTable() [Steps]float64 {
	var t [Steps]float64
	t[0] = grid[Steps-1]
	t[Steps-1] = grid[0]
	for c := 1; c < Steps-1; c++ {
		v := math.Abs(math.Log(math.Abs(math.Tanh(grid[c] / 2))))
		t[c] = Quantize(v)
	}

	return t
}

// Psi evaluates the tabulated ψ(x) = −|log tanh(x/2)| on the fixed-point
// grid. x is snapped to its nearest grid point (via Quantize's tie-break
// rule) before the table lookup, so Psi is total over all float64 input.
// The leading minus is baked into the tabulation itself (not applied by
// callers): it is what makes the check-node update's sign algebra work
// out, and applying it twice in a row (as pcub does) restores the
// correct magnitude with the correct sign.
//
// Psi(Psi(v)) == −v for every v the table produces (v = |Psi(u)| for
// some grid point u), which includes every grid value up to 1.0: the
// magnitude table round-trips there, but the two baked-in minus signs
// leave one net negation outstanding. Above 1.0 the quantized table is
// not one-to-one (every grid value from 3.0625 to 3.875 maps to 0.0625),
// so for such v Psi(Psi(v)) is the negated representative of its group
// (−3.4375 for that range), not −v.
func Psi(x float64) float64 {
	return -psiTable[codeOf(math.Abs(x))]
}
