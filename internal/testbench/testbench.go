package testbench

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrBadBlockSize is returned when a word's length is not a multiple of
// the requested block size.
var ErrBadBlockSize = errors.New("testbench: word length is not a multiple of block size")

// BlockDecimals splits word into blockSize-wide chunks and returns each
// chunk's value as an unsigned decimal, in reverse block order (the
// convention the reference hardware environment's message dumps use:
// the highest-indexed block printed first).
func BlockDecimals(word []byte, blockSize int) ([]int, error) {
	if blockSize <= 0 || len(word)%blockSize != 0 {
		return nil, ErrBadBlockSize
	}

	blocks := len(word) / blockSize
	out := make([]int, blocks)
	for b := 0; b < blocks; b++ {
		chunk := word[b*blockSize : (b+1)*blockSize]
		value := 0
		for _, bit := range chunk {
			value = value<<1 | int(bit)
		}
		out[blocks-1-b] = value
	}

	return out, nil
}

// bitLiteral renders word as a Verilog-style binary literal body (just
// the bit characters, no size prefix or base marker).
func bitLiteral(word []byte) string {
	var sb strings.Builder
	sb.Grow(len(word))
	for _, bit := range word {
		if bit == 0 {
			sb.WriteByte('0')
		} else {
			sb.WriteByte('1')
		}
	}
	return sb.String()
}

// WriteStimulus emits a Verilog testbench stimulus block driving a
// decoder instance with codewordIn (the received, possibly corrupted
// word) alongside original (the transmitted word used for comparison),
// both as n-bit literals.
func WriteStimulus(w io.Writer, n int, original, codewordIn []byte) error {
	if len(original) != n || len(codewordIn) != n {
		return fmt.Errorf("testbench: word length must equal n=%d", n)
	}

	lines := []string{
		"\t// input codeword",
		fmt.Sprintf("\toriginal = %d'b%s;", n, bitLiteral(original)),
		fmt.Sprintf("\tcodeword_in = %d'b%s;", n, bitLiteral(codewordIn)),
		"",
		"\t// Process decode",
		"\tsend_codeword(codeword_in);",
		"\twait (done);",
		"\treceive_codeword();",
		"\tprint_result();",
		"",
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	return nil
}
