// Package matrix implements the shift-matrix expansion and binary
// parity-check machinery of a QC-LDPC code (spec.md §4.B, §4.C):
//
//   - ShiftMatrix: the compact M×N matrix P whose entries are either -1
//     (structural zero block) or a shift in [0, B); normalization and the
//     persisted text interchange format live here.
//   - ParityMatrix: the expanded (M·B)×(N·B) binary parity-check matrix H,
//     deterministically built from (P, B) by replacing each entry with a
//     B×B cyclically-shifted identity (or a zero block).
//   - Syndrome: H·x mod 2, used both by the decoder's early-termination
//     check and by callers validating an encoded codeword.
//
// Determinism
//
//	Expansion and the syndrome check are pure functions of their inputs;
//	nothing here holds hidden state across calls.
package matrix
