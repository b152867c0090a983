package algorithm

import "github.com/henderiw/sortviz/pkg/sequence"

const combShrinkFactor = 1.2

type combSort struct {
	base
	i       int
	gap     int
	swapped bool // a swap happened during the current pass
}

func newCombSort(seq sequence.Sequence, rng sequence.Range, o *options) Algorithm {
	return &combSort{
		base: newBase(Comb, seq, rng, o),
		i:    rng.Lo,
		gap:  shrinkGap(rng.Size()),
	}
}

func shrinkGap(gap int) int {
	return int(float64(gap) / combShrinkFactor)
}

func (r *combSort) IsComplete() bool { return r.gap < 1 }

func (r *combSort) Step() (int, int) {
	if r.IsComplete() {
		return r.touched()
	}
	j := r.i + r.gap
	if j > r.rng.Hi {
		a, b := r.touch(r.i, r.rng.Hi)
		// a gap of one only falls to zero after a pass without swaps,
		// otherwise completion would not imply a sorted range
		if r.gap > 1 || !r.swapped {
			r.gap = shrinkGap(r.gap)
		}
		r.i = r.rng.Lo
		r.swapped = false
		return a, b
	}

	a, b := r.touch(r.i, j)
	if r.compareSwap(a, b) {
		r.swapped = true
	}
	r.i++
	return a, b
}
