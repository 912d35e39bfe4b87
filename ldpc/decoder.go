package ldpc

import (
	"github.com/qcldpc-go/qcldpc/fixedpoint"
	"github.com/qcldpc-go/qcldpc/matrix"
)

// rMemory is the M x N x B store of the most recent check-to-variable
// message at each (check row, variable column, offset-within-block) edge
// (spec.md §4.G). It is allocated once per Decode call and updated in
// place: within one j-step, the read at (m, n, inds[n]) feeds the
// subtraction and the write at the same address replaces it.
type rMemory struct {
	m, n, b int
	data    []float64
}

func newRMemory(m, n, b int) *rMemory {
	return &rMemory{m: m, n: n, b: b, data: make([]float64, m*n*b)}
}

func (r *rMemory) idx(m, n, k int) int { return (m*r.n+n)*r.b + k }

func (r *rMemory) get(m, n, k int) float64 { return r.data[r.idx(m, n, k)] }

func (r *rMemory) set(m, n, k int, v float64) { r.data[r.idx(m, n, k)] = v }

// Decode recovers a codeword from received using iterative ψ-domain
// belief propagation (spec.md §4.G): it sweeps check rows from M-1 down
// to 0, walking B edges per (row, column) cell by advancing each row's
// working shift indices modulo B, and reports the first estimate whose
// syndrome vanishes.
func Decode(received []byte, p *matrix.ShiftMatrix, maxIter int, initialLLR float64) ([]byte, error) {
	if p == nil {
		return nil, ErrNilShiftMatrix
	}
	m, n, b := p.Rows(), p.Cols(), p.BlockSize()
	if len(received) != n*b {
		return nil, ErrBadWordLength
	}
	for _, bit := range received {
		if bit != 0 && bit != 1 {
			return nil, ErrNonBinaryBit
		}
	}
	if maxIter < 1 {
		return nil, ErrBadMaxIter
	}
	if initialLLR <= 0 || initialLLR > fixedpoint.SaturationCeiling {
		return nil, ErrBadInitialLLR
	}

	h := matrix.ExpandH(p)
	blocks := make([]*bitUpdateBlock, n)
	for col := 0; col < n; col++ {
		blocks[col] = newBitUpdateBlock(received[col*b:(col+1)*b], initialLLR)
	}
	r := newRMemory(m, n, b)
	estimate := append([]byte(nil), received...)

	for iter := 0; iter < maxIter; iter++ {
		if ok, err := h.Syndrome(estimate); err == nil && ok {
			break
		}

		for row := m - 1; row >= 0; row-- {
			inds := p.Row(row)
			mask := make([]bool, n)
			for col, s := range inds {
				mask[col] = s != -1
			}

			for j := 0; j < b; j++ {
				toPcub := make([]float64, n)
				for col := 0; col < n; col++ {
					var rmem float64
					if mask[col] {
						rmem = r.get(row, col, inds[col])
					}
					colSum := blocks[col].toRouter(inds[col])
					toPcub[col] = colSum - rmem
				}

				newMsg := pcub(toPcub)

				for col := 0; col < n; col++ {
					if mask[col] {
						r.set(row, col, inds[col], newMsg[col])
					}
					blocks[col].fromRouter(inds[col], newMsg[col])
				}

				for col := 0; col < n; col++ {
					if mask[col] {
						inds[col] = (inds[col] + 1) % b
					}
				}
			}
		}

		estimate = make([]byte, 0, n*b)
		for col := 0; col < n; col++ {
			estimate = append(estimate, blocks[col].hardDecision()...)
		}

		for col := 0; col < n; col++ {
			blocks[col].swap()
		}
	}

	return estimate, nil
}
