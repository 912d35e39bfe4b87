package ldpc

import (
	"testing"

	"github.com/qcldpc-go/qcldpc/matrix"
	"github.com/stretchr/testify/require"
)

// S1 from spec.md §8: decoding a codeword that already satisfies the
// syndrome returns it unchanged, having never entered the row sweep.
func TestDecode_S1_AlreadyValidReturnsUnchanged(t *testing.T) {
	t.Parallel()

	p, err := matrix.NewShiftMatrix([][]int{{0, 0}}, 4)
	require.NoError(t, err)

	codeword := []byte{1, 0, 1, 1, 1, 0, 1, 1}
	decoded, err := Decode(codeword, p, 10, 2.75)
	require.NoError(t, err)
	require.Equal(t, codeword, decoded)
}

// Invariant 10 from spec.md §8: the all-zero received word converges
// immediately against an all-zero baseline.
func TestDecode_AllZeroConvergesImmediately(t *testing.T) {
	t.Parallel()

	p, err := matrix.NewShiftMatrix([][]int{{1, 0, 2, 0}}, 5)
	require.NoError(t, err)

	received := make([]byte, p.Cols()*p.BlockSize())
	decoded, err := Decode(received, p, 10, 2.75)
	require.NoError(t, err)
	require.Equal(t, received, decoded)
}

// Invariant 11 from spec.md §8: a row of all -1 contributes no updates
// and never changes the estimate (here the only row is all -1, so
// nothing in the word can ever be corrected, but decode must not panic
// and must return the received word since the row sweep never touches
// any bit update block).
func TestDecode_AllSentinelRowIsInert(t *testing.T) {
	t.Parallel()

	p, err := matrix.NewShiftMatrix([][]int{{-1, -1}}, 3)
	require.NoError(t, err)

	received := []byte{1, 0, 1, 0, 1, 1}
	decoded, err := Decode(received, p, 5, 2.75)
	require.NoError(t, err)
	require.Equal(t, received, decoded)
}

// Invariant 12 from spec.md §8: initial_llr at the saturation boundary
// is accepted; out-of-range values are rejected up front.
func TestDecode_InitialLLRBoundary(t *testing.T) {
	t.Parallel()

	p, err := matrix.NewShiftMatrix([][]int{{0, 0}}, 4)
	require.NoError(t, err)
	received := []byte{0, 0, 0, 0, 0, 0, 0, 0}

	_, err = Decode(received, p, 1, 7.875)
	require.NoError(t, err)

	_, err = Decode(received, p, 1, 0)
	require.ErrorIs(t, err, ErrBadInitialLLR)

	_, err = Decode(received, p, 1, 8.0)
	require.ErrorIs(t, err, ErrBadInitialLLR)

	_, err = Decode(received, p, 0, 2.75)
	require.ErrorIs(t, err, ErrBadMaxIter)
}

func TestDecode_RejectsBadInput(t *testing.T) {
	t.Parallel()

	_, err := Decode([]byte{0}, nil, 1, 2.75)
	require.ErrorIs(t, err, ErrNilShiftMatrix)

	p, err := matrix.NewShiftMatrix([][]int{{0, 0}}, 4)
	require.NoError(t, err)

	_, err = Decode([]byte{0, 1}, p, 1, 2.75)
	require.ErrorIs(t, err, ErrBadWordLength)

	_, err = Decode([]byte{0, 1, 2, 0, 0, 0, 0, 0}, p, 1, 2.75)
	require.ErrorIs(t, err, ErrNonBinaryBit)
}

// S6-style: decoding under heavy, likely-unrecoverable noise never
// panics and always returns a word of the correct length.
func TestDecode_NeverPanicsUnderHeavyNoise(t *testing.T) {
	t.Parallel()

	p, err := matrix.NewShiftMatrix([][]int{{1, 0, 2, 0}}, 5)
	require.NoError(t, err)

	received := []byte{1, 1, 1, 1, 1, 0, 1, 0, 1, 0, 1, 1, 0, 0, 1, 0, 0, 1, 0, 0}
	decoded, err := Decode(received, p, 8, 2.75)
	require.NoError(t, err)
	require.Len(t, decoded, p.Cols()*p.BlockSize())
}

// S5-style: a minimal two-row shift matrix whose expanded parity-check
// matrix is the length-3 repetition code (row0: col1+col2=0, row1:
// col0+col2=0, forcing col0=col1=col2). Distance 3, so a single bit
// flip is within its correction radius. Encode message [1] to get
// codeword [1,1,1], flip the first bit to [0,1,1] (which fails row1's
// check), and confirm the row/column sweep converges back to the
// original codeword well within the iteration budget.
func TestDecode_S5Style_RecoversFromSingleBitFlip(t *testing.T) {
	t.Parallel()

	p, err := matrix.NewShiftMatrix([][]int{{-1, 0, 0}, {0, -1, 0}}, 1)
	require.NoError(t, err)

	codeword, err := Encode(p, []byte{1})
	require.NoError(t, err)
	require.Equal(t, []byte{1, 1, 1}, codeword)

	received := append([]byte(nil), codeword...)
	received[0] ^= 1

	decoded, err := Decode(received, p, 10, 2.75)
	require.NoError(t, err)
	require.Equal(t, codeword, decoded)
}

// Round trip through Encode then Decode with no injected errors.
func TestEncodeThenDecode_RoundTrip(t *testing.T) {
	t.Parallel()

	p, err := matrix.NewShiftMatrix([][]int{{2, 0, 3, 0}}, 5)
	require.NoError(t, err)

	message := []byte{1, 0, 1, 1, 0, 0, 1, 0, 1, 1, 0, 1, 0, 1, 1}
	codeword, err := Encode(p, message)
	require.NoError(t, err)

	decoded, err := Decode(codeword, p, 10, 2.75)
	require.NoError(t, err)
	require.Equal(t, codeword, decoded)
}
