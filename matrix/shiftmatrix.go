package matrix

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// ShiftMatrix is the compact M×N shift matrix P of a QC-LDPC code
// (spec.md §3). Each entry is either -1 (a B×B zero block) or a shift in
// [0, B); NewShiftMatrix normalizes non-(-1) entries by P[m,n] mod B so the
// invariant always holds after construction.
type ShiftMatrix struct {
	rows, cols, b int
	data          [][]int
}

// NewShiftMatrix validates and normalizes raw into a ShiftMatrix.
//
// Stage 1 (Validate): rows, cols, and b must be positive; raw must be
// rows×cols; every entry must be -1 or a non-negative integer.
// Stage 2 (Normalize): non-(-1) entries are reduced mod b (spec.md §4.B:
// "Before expansion, normalize non-(-1) entries by P[m,n] mod B").
// Stage 3 (Finalize): return an immutable copy.
func NewShiftMatrix(raw [][]int, b int) (*ShiftMatrix, error) {
	rows := len(raw)
	if rows == 0 || b <= 0 {
		if b <= 0 {
			return nil, ErrBadBlockSize
		}
		return nil, ErrBadShape
	}
	cols := len(raw[0])
	if cols == 0 {
		return nil, ErrBadShape
	}

	data := make([][]int, rows)
	for m, row := range raw {
		if len(row) != cols {
			return nil, fmt.Errorf("row %d: %w", m, ErrDimensionMismatch)
		}
		data[m] = make([]int, cols)
		for n, v := range row {
			switch {
			case v == -1:
				data[m][n] = -1
			case v < -1:
				return nil, fmt.Errorf("P[%d][%d]=%d: %w", m, n, v, ErrBadShiftEntry)
			default:
				data[m][n] = v % b
			}
		}
	}

	return &ShiftMatrix{rows: rows, cols: cols, b: b, data: data}, nil
}

// Rows returns M, the number of block-rows.
func (p *ShiftMatrix) Rows() int { return p.rows }

// Cols returns N, the number of block-columns.
func (p *ShiftMatrix) Cols() int { return p.cols }

// BlockSize returns B.
func (p *ShiftMatrix) BlockSize() int { return p.b }

// At returns the normalized entry P[m,n]: -1, or a shift in [0, B).
func (p *ShiftMatrix) At(m, n int) int {
	return p.data[m][n]
}

// Row returns a defensive copy of row m.
func (p *ShiftMatrix) Row(m int) []int {
	out := make([]int, p.cols)
	copy(out, p.data[m])
	return out
}

// DumpShiftMatrix writes P to w using the canonical interchange layout
// (spec.md §6): line 1 = M, line 2 = N, line 3 = B, followed by M·N
// integers, one per line, in reverse-row, reverse-column order.
func DumpShiftMatrix(w io.Writer, p *ShiftMatrix) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(bw, p.rows); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(bw, p.cols); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(bw, p.b); err != nil {
		return err
	}
	for m := p.rows - 1; m >= 0; m-- {
		for n := p.cols - 1; n >= 0; n-- {
			if _, err := fmt.Fprintln(bw, p.data[m][n]); err != nil {
				return err
			}
		}
	}

	return bw.Flush()
}

// LoadShiftMatrix reads a shift matrix previously written by
// DumpShiftMatrix and returns the normalized ShiftMatrix.
func LoadShiftMatrix(r io.Reader) (*ShiftMatrix, error) {
	sc := bufio.NewScanner(r)
	readInt := func() (int, error) {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return 0, err
			}
			return 0, ErrMalformedDump
		}
		v, err := strconv.Atoi(sc.Text())
		if err != nil {
			return 0, fmt.Errorf("%w: %v", ErrMalformedDump, err)
		}
		return v, nil
	}

	m, err := readInt()
	if err != nil {
		return nil, err
	}
	n, err := readInt()
	if err != nil {
		return nil, err
	}
	b, err := readInt()
	if err != nil {
		return nil, err
	}
	if m <= 0 || n <= 0 || b <= 0 {
		return nil, ErrMalformedDump
	}

	raw := make([][]int, m)
	for i := range raw {
		raw[i] = make([]int, n)
	}
	for m0 := m - 1; m0 >= 0; m0-- {
		for n0 := n - 1; n0 >= 0; n0-- {
			v, err := readInt()
			if err != nil {
				return nil, err
			}
			raw[m0][n0] = v
		}
	}

	return NewShiftMatrix(raw, b)
}
