// Package ldpc implements the encoder and the iterative belief-propagation
// decoder of a QC-LDPC codec: double-diagonal back-substitution encoding
// driven by a shift matrix, and a fixed-point, hardware-mirroring decoder
// built from per-column bit-update blocks and a ψ-domain check-node
// update, scheduled exactly the way a synchronous row/column sweep would
// run in silicon.
//
// Decode builds its per-call state (the expanded H, the bit-update blocks
// and the R-memory) once and reuses it across iterations and row sweeps;
// small scratch slices (each row's working indices and mask, the
// check-node inputs and outputs, the per-iteration estimate) are
// allocated as the sweep goes.
package ldpc
