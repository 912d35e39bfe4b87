// Package fixedpoint implements the 6-bit (Q2.4) unsigned magnitude grid and
// the tabulated ψ(x) = |log tanh(x/2)| map that the QC-LDPC decoder uses in
// place of floating-point belief propagation.
//
// What
//
//   - Grid: the 64 real numbers obtained by interpreting every 6-bit pattern
//     as an unsigned Q2.4 value (2 integer bits, 4 fractional bits), spanning
//     [0, 3.9375] in steps of 0.0625.
//   - Quantize: snaps an arbitrary non-negative real to its nearest grid
//     point, ties broken toward the smaller magnitude.
//   - Psi: the ψ transform, wired so ψ(0) = −3.9375 and ψ(3.9375) = 0 at
//     the endpoints (real ψ diverges at 0, so the underlying magnitude
//     table maps each endpoint to the other by construction rather
//     than by computation). The sign is part of the tabulation: ψ
//     returns the negated table entry, which is what lets the check-node
//     update in package ldpc recover the correct sign by applying ψ
//     twice.
//   - Saturate: clamps a signed accumulator into the wider [-7.875, 7.875]
//     range used by column-sum memory; this range is independent of the
//     64-point magnitude grid (accumulators sum several grid values).
//
// Why
//
//   - Mirrors a hardware ψ lookup table: a total function over a finite
//     domain, no runtime failure mode.
//
// Determinism
//
//	Quantize's tie-break rule is fixed (toward the smaller magnitude) so
//	that independent implementations of this package agree bit-for-bit,
//	per spec note in spec.md §9 ("Rounding direction in quantize").
package fixedpoint
