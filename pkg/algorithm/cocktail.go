package algorithm

import "github.com/henderiw/sortviz/pkg/sequence"

// cocktailSort bubbles forward up to top, then backward down to bottom,
// shrinking the boundary each pass reached.
type cocktailSort struct {
	base
	pos    int
	dir    int
	bottom int
	top    int
}

func newCocktailSort(seq sequence.Sequence, rng sequence.Range, o *options) Algorithm {
	return &cocktailSort{
		base:   newBase(Cocktail, seq, rng, o),
		pos:    rng.Lo,
		dir:    1,
		bottom: rng.Lo,
		top:    rng.Hi,
	}
}

func (r *cocktailSort) IsComplete() bool { return r.bottom >= r.top }

func (r *cocktailSort) Step() (int, int) {
	if r.IsComplete() {
		return r.touched()
	}
	a, b := r.touch(r.pos, r.pos+1)
	r.compareSwap(a, b)

	if r.dir > 0 {
		if b == r.top {
			r.top--
			r.dir = -1
			r.pos = r.top - 1
		} else {
			r.pos++
		}
		return a, b
	}
	if a == r.bottom {
		r.bottom++
		r.dir = 1
		r.pos = r.bottom
	} else {
		r.pos--
	}
	return a, b
}
