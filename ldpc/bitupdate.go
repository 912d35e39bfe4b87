package ldpc

import "github.com/qcldpc-go/qcldpc/fixedpoint"

// bitUpdateBlock is one instance per message column (spec.md §4.E): a
// two-bank ("ping-pong") column-sum memory that lets one row sweep read
// the previous iteration's totals while writing the current iteration's,
// without the two ever colliding.
type bitUpdateBlock struct {
	baseline []float64   // B_in: (-1)^bit * initialLLR, fixed for the block's lifetime
	bank     [2][]float64 // bank[choose] is the write bank; bank[1-choose] is the read bank
	choose   int
}

// newBitUpdateBlock seeds both banks with the channel-derived baseline
// for received, a length-B slice of hard bits.
func newBitUpdateBlock(received []byte, initialLLR float64) *bitUpdateBlock {
	b := len(received)
	baseline := make([]float64, b)
	for i, bit := range received {
		if bit == 0 {
			baseline[i] = initialLLR
		} else {
			baseline[i] = -initialLLR
		}
	}
	blk := &bitUpdateBlock{baseline: baseline}
	blk.bank[0] = append([]float64(nil), baseline...)
	blk.bank[1] = append([]float64(nil), baseline...)
	return blk
}

// toRouter returns the read-bank value at index j, or the saturation
// ceiling if j == -1 (a padded/absent edge).
func (blk *bitUpdateBlock) toRouter(j int) float64 {
	if j == -1 {
		return fixedpoint.SaturationCeiling
	}
	return blk.bank[1-blk.choose][j]
}

// fromRouter accumulates delta into the write bank at index j, with
// saturation. A no-op when j == -1.
func (blk *bitUpdateBlock) fromRouter(j int, delta float64) {
	if j == -1 {
		return
	}
	write := blk.bank[blk.choose]
	write[j] = fixedpoint.Saturate(write[j]+delta, fixedpoint.SaturationFloor, fixedpoint.SaturationCeiling)
}

// hardDecision returns the block's current bit estimate, read from the
// previous-iteration (read) bank: 1 where the total is negative, else 0.
func (blk *bitUpdateBlock) hardDecision() []byte {
	read := blk.bank[1-blk.choose]
	out := make([]byte, len(read))
	for i, v := range read {
		if v < 0 {
			out[i] = 1
		}
	}
	return out
}

// swap flips the read/write banks and resets the new write bank to the
// channel baseline, so the next sweep accumulates afresh from the
// channel prior while last iteration's totals stay readable.
func (blk *bitUpdateBlock) swap() {
	blk.choose = 1 - blk.choose
	copy(blk.bank[blk.choose], blk.baseline)
}
