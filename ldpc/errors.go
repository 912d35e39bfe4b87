package ldpc

import "errors"

// ErrNilShiftMatrix is returned when a nil shift matrix is supplied.
var ErrNilShiftMatrix = errors.New("ldpc: nil shift matrix")

// ErrBadMessageLength is returned when Encode's message is not exactly
// (N−M)·B bits long.
var ErrBadMessageLength = errors.New("ldpc: message length must be (N-M)*B")

// ErrBadWordLength is returned when Decode's received word is not exactly
// N·B bits long.
var ErrBadWordLength = errors.New("ldpc: received word length must be N*B")

// ErrNonBinaryBit is returned when an input byte is neither 0 nor 1.
var ErrNonBinaryBit = errors.New("ldpc: input contains a non-binary bit")

// ErrBadMaxIter is returned when max_iter is not ≥ 1.
var ErrBadMaxIter = errors.New("ldpc: max_iter must be >= 1")

// ErrBadInitialLLR is returned when initial_llr is not a positive,
// in-range fixed-point value.
var ErrBadInitialLLR = errors.New("ldpc: initial_llr must be positive and within the saturation range")

// ErrUnderdeterminedMatrix is returned when N <= M, leaving no room for a
// non-empty message block.
var ErrUnderdeterminedMatrix = errors.New("ldpc: shift matrix has no message columns (N must exceed M)")
