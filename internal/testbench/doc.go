// Package testbench formats codec state the way the hardware reference
// environment expects it: per-block decimal dumps for quick visual
// inspection, and a Verilog testbench stimulus snippet that drives a
// synthesizable decoder with the same codeword this package's caller
// just produced or consumed.
//
// Nothing here is part of the codec's semantics; it exists purely to let
// a caller (chiefly the CLI) hand a codeword to an external simulator or
// human reviewer in the format that tooling already expects.
package testbench
