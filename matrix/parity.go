package matrix

import "sort"

// ParityMatrix is the expanded (M·B)×(N·B) binary parity-check matrix H
// (spec.md §4.B). It is stored sparsely: each row holds the sorted column
// indices of its 1-entries, since every row of a QC-LDPC H has weight equal
// to the (small, fixed) number of non-(-1) entries in the corresponding
// shift-matrix row.
type ParityMatrix struct {
	m, n, b int
	rows    [][]int // rows[r] = sorted column indices where H[r][c] == 1
}

// ExpandH builds H from (P, B) (spec.md §4.B): for each cell (m,n), a -1
// entry contributes a B×B zero block; a shift s contributes the identity of
// order B cyclically shifted so that row i has its single 1 at column
// (i+s) mod B. The result is deterministic and independent of any decoder
// state.
func ExpandH(p *ShiftMatrix) *ParityMatrix {
	m, n, b := p.Rows(), p.Cols(), p.BlockSize()
	rows := make([][]int, m*b)
	for blockRow := 0; blockRow < m; blockRow++ {
		for blockCol := 0; blockCol < n; blockCol++ {
			shift := p.At(blockRow, blockCol)
			if shift == -1 {
				continue
			}
			for i := 0; i < b; i++ {
				r := blockRow*b + i
				c := blockCol*b + (i+shift)%b
				rows[r] = append(rows[r], c)
			}
		}
	}
	for r := range rows {
		sort.Ints(rows[r])
	}

	return &ParityMatrix{m: m, n: n, b: b, rows: rows}
}

// M returns the block-row count of the originating shift matrix.
func (h *ParityMatrix) M() int { return h.m }

// N returns the block-column count of the originating shift matrix.
func (h *ParityMatrix) N() int { return h.n }

// BlockSize returns B.
func (h *ParityMatrix) BlockSize() int { return h.b }

// Rows returns M·B, the number of expanded rows (check nodes).
func (h *ParityMatrix) Rows() int { return h.m * h.b }

// Cols returns N·B, the number of expanded columns (variable nodes).
func (h *ParityMatrix) Cols() int { return h.n * h.b }

// RowWeight returns the number of 1-entries in expanded row r.
func (h *ParityMatrix) RowWeight(r int) int { return len(h.rows[r]) }

// RowIndices returns a defensive copy of the column indices set in row r.
func (h *ParityMatrix) RowIndices(r int) []int {
	out := make([]int, len(h.rows[r]))
	copy(out, h.rows[r])
	return out
}

// ColWeight returns the number of 1-entries in column c.
// Complexity: O(Rows() * average row weight); intended for diagnostics and
// tests (invariant 1 of spec.md §8), not the decode hot path.
func (h *ParityMatrix) ColWeight(c int) int {
	weight := 0
	for _, row := range h.rows {
		idx := sort.SearchInts(row, c)
		if idx < len(row) && row[idx] == c {
			weight++
		}
	}
	return weight
}

// VisitNonZero calls fn once for every 1-entry of H, in row-major then
// column-ascending order. Used by adapters (e.g. the Tanner-graph view)
// that need to walk every edge without depending on the internal sparse
// representation.
func (h *ParityMatrix) VisitNonZero(fn func(row, col int)) {
	for r, cols := range h.rows {
		for _, c := range cols {
			fn(r, c)
		}
	}
}

// Syndrome reports whether x (a binary word of length Cols()) satisfies
// H·x ≡ 0 (mod 2) (spec.md §4.C). It exits early on the first unsatisfied
// row.
func (h *ParityMatrix) Syndrome(x []byte) (bool, error) {
	if len(x) != h.Cols() {
		return false, ErrDimensionMismatch
	}
	for _, v := range x {
		if v != 0 && v != 1 {
			return false, ErrNonBinaryWord
		}
	}

	for _, cols := range h.rows {
		var parity byte
		for _, c := range cols {
			parity ^= x[c]
		}
		if parity != 0 {
			return false, nil
		}
	}

	return true, nil
}
