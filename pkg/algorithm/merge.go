package algorithm

import "github.com/henderiw/sortviz/pkg/sequence"

// mergeState indicates what the next Step of a merge sort instance does.
type mergeState int

const (
	mergeDivide mergeState = iota
	mergeSortLeft
	mergeSortRight
	mergeMerging
	mergeDone
)

func (s mergeState) String() string {
	switch s {
	case mergeDivide:
		return "divide"
	case mergeSortLeft:
		return "sortLeft"
	case mergeSortRight:
		return "sortRight"
	case mergeMerging:
		return "merge"
	case mergeDone:
		return "done"
	}
	return "unknown"
}

// mergeSort is recursive merge sort driven one primitive at a time. Every
// instance owns the children sorting its two halves; a Step walks down the
// active path (left subtree first, then right) to the one leaf that does
// work, so a single Step on the root performs exactly one primitive action.
//
// State transitions that do not touch the sequence (splitting, moving on
// from a finished child, taking the merge snapshot) never consume a Step.
//
// A size 1 instance is complete on construction and its Step reports the
// degenerate pair (lo, lo).
type mergeSort struct {
	base
	aux   sequence.Sequence // shared by the whole tree, sized to the full sequence
	opts  *options
	state mergeState

	left  *mergeSort
	right *mergeSort
	mid   int

	// merge cursors: la walks [lo, mid], rb walks [mid+1, hi] of aux and
	// out walks the output positions of the sequence
	la, rb, out int
}

func newMergeSort(seq sequence.Sequence, rng sequence.Range, o *options) *mergeSort {
	return newMergeSortNode(seq, make(sequence.Sequence, len(seq)), rng, o)
}

func newMergeSortNode(seq, aux sequence.Sequence, rng sequence.Range, o *options) *mergeSort {
	r := &mergeSort{
		base: newBase(Merge, seq, rng, o),
		aux:  aux,
		opts: o,
	}
	if rng.Size() == 1 {
		r.state = mergeDone
	}
	return r
}

func (r *mergeSort) IsComplete() bool { return r.state == mergeDone }

func (r *mergeSort) Step() (int, int) {
	for {
		switch r.state {
		case mergeDivide:
			if r.rng.Size() == 2 {
				r.state = mergeDone
				a, b := r.touch(r.rng.Lo, r.rng.Hi)
				r.compareSwap(a, b)
				return a, b
			}
			r.divide()
		case mergeSortLeft:
			if !r.left.IsComplete() {
				return r.touch(r.left.Step())
			}
			r.state = mergeSortRight
		case mergeSortRight:
			if !r.right.IsComplete() {
				return r.touch(r.right.Step())
			}
			r.beginMerge()
		case mergeMerging:
			return r.stepMerge()
		default:
			return r.touched()
		}
	}
}

func (r *mergeSort) divide() {
	leftRange, rightRange := r.rng.Split()
	r.mid = leftRange.Hi
	r.left = newMergeSortNode(r.seq, r.aux, leftRange, r.opts)
	r.right = newMergeSortNode(r.seq, r.aux, rightRange, r.opts)
	r.state = mergeSortLeft
}

// beginMerge snapshots both sorted halves into aux and releases the children.
func (r *mergeSort) beginMerge() {
	copy(r.aux[r.rng.Lo:r.rng.Hi+1], r.seq[r.rng.Lo:r.rng.Hi+1])
	r.left, r.right = nil, nil
	r.la, r.rb, r.out = r.rng.Lo, r.mid+1, r.rng.Lo
	r.state = mergeMerging
}

// stepMerge places the next merged value at out. The unmerged tail
// seq[out..hi] always holds the same values as the unread aux heads, so the
// value is exchanged into place rather than overwritten.
func (r *mergeSort) stepMerge() (int, int) {
	var v int
	switch {
	case r.la > r.mid:
		v = r.aux[r.rb]
		r.rb++
	case r.rb > r.rng.Hi:
		v = r.aux[r.la]
		r.la++
	case r.less(r.aux[r.rb], r.aux[r.la]):
		v = r.aux[r.rb]
		r.rb++
	default:
		// ties go to the left half
		v = r.aux[r.la]
		r.la++
	}

	k := r.out
	for r.seq[k] != v {
		k++
	}
	r.seq.Swap(r.out, k)
	a, b := r.touch(r.out, k)

	r.out++
	if r.out > r.rng.Hi {
		r.state = mergeDone
	}
	return a, b
}

