package ldpc

import "github.com/qcldpc-go/qcldpc/matrix"

// shiftVectorByK returns the cyclic left shift of vec by k positions
// (spec.md §4.D convention): a shift of -1 yields the all-zero vector of
// the same length; any other k rotates so that out[i] = vec[(i+k) mod
// len(vec)]. k need not already be reduced mod len(vec) — a full rotation
// (k == len(vec)) is equivalent to the identity, matching the encoder's
// own call with k == B when re-aligning the first computed parity block.
func shiftVectorByK(vec []byte, k int) []byte {
	b := len(vec)
	out := make([]byte, b)
	if k == -1 {
		return out
	}
	kk := k % b
	for i := 0; i < b; i++ {
		out[i] = vec[(i+kk)%b]
	}
	return out
}

// Encode produces a codeword from message using double-diagonal
// back-substitution (spec.md §4.D): the prefix of length (N-M)*B equals
// message, and the full word satisfies H*x == 0.
func Encode(p *matrix.ShiftMatrix, message []byte) ([]byte, error) {
	if p == nil {
		return nil, ErrNilShiftMatrix
	}

	m, n, b := p.Rows(), p.Cols(), p.BlockSize()
	if n <= m {
		return nil, ErrUnderdeterminedMatrix
	}
	k := n - m // number of message (non-parity) block columns
	if len(message) != k*b {
		return nil, ErrBadMessageLength
	}
	for _, bit := range message {
		if bit != 0 && bit != 1 {
			return nil, ErrNonBinaryBit
		}
	}

	codeword := make([]byte, n*b)
	copy(codeword, message)

	// First parity block: accumulate message block j shifted by P[i,j]
	// over every i in [0,M) and every j in [0,N-M), into one running sum.
	temp := make([]byte, b)
	for i := 0; i < m; i++ {
		for j := 0; j < k; j++ {
			part := codeword[j*b : (j+1)*b]
			shifted := shiftVectorByK(part, p.At(i, j))
			for x := range temp {
				temp[x] = (temp[x] + shifted[x]) % 2
			}
		}
	}
	copy(codeword[k*b:(k+1)*b], shiftVectorByK(temp, b))

	// Remaining M-1 parity blocks: block (k+i+1) sums codeword blocks
	// 0..k+i (inclusive), each shifted by P[i,j].
	for i := 0; i < m-1; i++ {
		temp = make([]byte, b)
		for j := 0; j < k+i+1; j++ {
			part := codeword[j*b : (j+1)*b]
			shifted := shiftVectorByK(part, p.At(i, j))
			for x := range temp {
				temp[x] = (temp[x] + shifted[x]) % 2
			}
		}
		copy(codeword[(k+i+1)*b:(k+i+2)*b], temp)
	}

	return codeword, nil
}
