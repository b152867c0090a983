package algorithm

import "github.com/henderiw/sortviz/pkg/sequence"

// oddEvenSort runs one full parity pass per step. It has no cheap local
// termination signal, so completion is the sorted predicate over its range.
type oddEvenSort struct {
	base
	odd bool
}

func newOddEvenSort(seq sequence.Sequence, rng sequence.Range, o *options) Algorithm {
	return &oddEvenSort{
		base: newBase(OddEven, seq, rng, o),
	}
}

func (r *oddEvenSort) IsComplete() bool { return r.isSorted() }

func (r *oddEvenSort) Step() (int, int) {
	if r.IsComplete() {
		return r.touched()
	}
	start := r.rng.Lo
	if r.odd {
		start++
	}
	a, b := start, start+1
	for i := start; i < r.rng.Hi; i += 2 {
		if r.compareSwap(i, i+1) {
			a, b = i, i+1
		}
	}
	r.odd = !r.odd
	if b > r.rng.Hi {
		a, b = r.rng.Lo, r.rng.Hi
	}
	return r.touch(a, b)
}
