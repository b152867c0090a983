package algorithm

import "github.com/henderiw/sortviz/pkg/sequence"

type selectionSort struct {
	base
	first int // sorted prefix boundary
	min   int
	pos   int
}

func newSelectionSort(seq sequence.Sequence, rng sequence.Range, o *options) Algorithm {
	return &selectionSort{
		base:  newBase(Selection, seq, rng, o),
		first: rng.Lo,
		min:   rng.Lo,
		pos:   rng.Lo + 1,
	}
}

func (r *selectionSort) IsComplete() bool { return r.first >= r.rng.Hi }

func (r *selectionSort) Step() (int, int) {
	if r.IsComplete() {
		return r.touched()
	}
	if r.pos > r.rng.Hi {
		a, b := r.touch(r.first, r.min)
		r.seq.Swap(r.first, r.min)

		r.first++
		r.min = r.first
		r.pos = r.first + 1
		return a, b
	}

	a, b := r.touch(r.pos, r.min)
	if r.less(r.seq[r.pos], r.seq[r.min]) {
		r.min = r.pos
	}
	r.pos++
	return a, b
}
