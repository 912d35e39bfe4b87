// Package tanner builds the bipartite Tanner graph of a QC-LDPC parity
// check matrix H — one vertex per check node, one per variable node, an
// edge for every 1-entry of H — and reports its girth.
//
// The graph type backing Build and Girth is private to this package and
// deliberately minimal: a mutex-guarded vertex set, edge list, and
// adjacency list, with no directedness, weight, multi-edge, or loop
// options, because a Tanner graph never needs any of them. This is
// diagnostic tooling layered on top of matrix.ParityMatrix; the decoder
// itself (package ldpc) never builds a graph on its hot path (spec.md §5
// requires the decode loop stay allocation-light and single-threaded,
// and a graph rebuilt every iteration would violate that). Girth — the
// length of the shortest cycle in the Tanner graph — is a standard
// QC-LDPC code-quality metric that spec.md's distillation does not
// mention but that any complete reference implementation reports
// alongside the matrix.
package tanner
