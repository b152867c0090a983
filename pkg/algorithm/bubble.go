package algorithm

import "github.com/henderiw/sortviz/pkg/sequence"

type bubbleSort struct {
	base
	pos int
	top int
}

func newBubbleSort(seq sequence.Sequence, rng sequence.Range, o *options) Algorithm {
	return &bubbleSort{
		base: newBase(Bubble, seq, rng, o),
		pos:  rng.Lo,
		top:  rng.Hi,
	}
}

func (r *bubbleSort) IsComplete() bool { return r.top <= r.rng.Lo }

func (r *bubbleSort) Step() (int, int) {
	if r.IsComplete() {
		return r.touched()
	}
	a, b := r.touch(r.pos, r.pos+1)
	r.compareSwap(a, b)

	r.pos++
	if r.pos == r.top {
		r.top--
		r.pos = r.rng.Lo
	}
	return a, b
}
