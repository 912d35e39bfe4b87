// Package qcldpc is a reference model of a Quasi-Cyclic Low-Density
// Parity-Check (QC-LDPC) codec: it encodes a binary message into a
// structured codeword and decodes a possibly-corrupted received word back
// to the original message via iterative belief propagation on fixed-point
// log-likelihood ratios (LLRs).
//
// The reference mirrors a hardware realization bit-for-bit: arithmetic is
// saturating, the non-linear ψ function is a lookup table over a 6-bit
// fixed-point grid, and the decoder uses a two-bank ("ping-pong") memory
// discipline identical to what a synchronous digital pipeline would use.
//
// Subpackages:
//
//	fixedpoint/    — the Q2.4 grid and ψ lookup table
//	matrix/        — shift-matrix expansion, normalization, and syndrome check
//	tanner/        — Tanner-graph diagnostics (girth) built on top of matrix
//	ldpc/          — the encoder and the iterative belief-propagation decoder
//	cmd/qcldpcctl/ — a CLI front end over the library
//
// This root package holds no code of its own; it exists to carry top-level
// module documentation.
//
//	go get github.com/qcldpc-go/qcldpc
package qcldpc
