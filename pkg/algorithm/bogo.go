package algorithm

import (
	"math/rand"

	"github.com/henderiw/sortviz/pkg/sequence"
)

// bogoSort shuffles its whole range every step until the range happens to
// be sorted. The two reported indices are random and only drive highlighting.
type bogoSort struct {
	base
	rnd *rand.Rand
}

func newBogoSort(seq sequence.Sequence, rng sequence.Range, o *options) Algorithm {
	return &bogoSort{
		base: newBase(Bogo, seq, rng, o),
		rnd:  o.rnd,
	}
}

func (r *bogoSort) IsComplete() bool { return r.isSorted() }

func (r *bogoSort) Step() (int, int) {
	if r.IsComplete() {
		return r.touched()
	}
	n := r.rng.Size()
	a, b := r.touch(r.rng.Lo+r.rnd.Intn(n), r.rng.Lo+r.rnd.Intn(n))
	r.rnd.Shuffle(n, func(i, j int) {
		r.seq.Swap(r.rng.Lo+i, r.rng.Lo+j)
	})
	return a, b
}
