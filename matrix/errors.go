package matrix

import "errors"

// Sentinel errors for the matrix package. All exported constructors return
// these directly (or wrapped with fmt.Errorf("...: %w", ...)); callers
// should match with errors.Is.
var (
	// ErrBadShape is returned when requested matrix dimensions are non-positive.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrBadBlockSize is returned when the block size B is not positive.
	ErrBadBlockSize = errors.New("matrix: block size must be > 0")

	// ErrBadShiftEntry is returned when a shift-matrix entry is outside
	// {-1} ∪ [0, B) after normalization was attempted.
	ErrBadShiftEntry = errors.New("matrix: shift entry out of range")

	// ErrDimensionMismatch is returned when an operand's shape is
	// incompatible with the operation (e.g. a word of the wrong length).
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonBinaryWord is returned when a word expected to hold only 0/1
	// entries contains another value.
	ErrNonBinaryWord = errors.New("matrix: word is not binary")

	// ErrMalformedDump is returned when a persisted shift-matrix text file
	// does not match the documented layout (spec.md §6).
	ErrMalformedDump = errors.New("matrix: malformed shift-matrix dump")
)
