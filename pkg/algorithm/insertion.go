package algorithm

import "github.com/henderiw/sortviz/pkg/sequence"

// insertionSort moves one key at a time into the sorted prefix. A step is
// either one shift, the final insert of the key, or advancing to the next key.
//
// The key travels with each shift (seq[j+1] always holds it while shifting),
// so the sequence stays a permutation between steps and the insert only
// commits the key into the slot it already occupies.
type insertionSort struct {
	base
	i       int
	j       int
	key     int
	pending bool // a shift happened and the key still has to be inserted
	done    bool
}

func newInsertionSort(seq sequence.Sequence, rng sequence.Range, o *options) Algorithm {
	r := &insertionSort{
		base: newBase(Insertion, seq, rng, o),
		i:    rng.Lo + 1,
	}
	if r.i > rng.Hi {
		r.done = true
		return r
	}
	r.key = seq[r.i]
	r.j = r.i - 1
	return r
}

func (r *insertionSort) IsComplete() bool { return r.done }

func (r *insertionSort) Step() (int, int) {
	if r.done {
		return r.touched()
	}

	// shift
	if r.j >= r.rng.Lo && r.less(r.key, r.seq[r.j]) {
		a, b := r.touch(r.j, r.j+1)
		r.seq.Swap(r.j, r.j+1)
		r.j--
		r.pending = true
		return a, b
	}

	// insert
	if r.pending {
		r.seq[r.j+1] = r.key
		r.pending = false
		return r.touch(r.j+1, r.i)
	}

	// advance
	r.i++
	if r.i > r.rng.Hi {
		r.done = true
		return r.touch(r.i-1, r.i-1)
	}
	r.key = r.seq[r.i]
	r.j = r.i - 1
	return r.touch(r.j, r.i)
}
