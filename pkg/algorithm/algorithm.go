package algorithm

import (
	"errors"
	"math/rand"
	"time"

	"github.com/henderiw/sortviz/pkg/sequence"
)

var (
	ErrEmptySequence = errors.New("empty sequence")
	ErrInvalidRange  = errors.New("invalid range")
	ErrUnknownKind   = errors.New("unknown algorithm")
)

// Algorithm is a sort that advances one primitive action per Step.
//
// Step mutates the sequence in place and returns the two indices most
// relevant to that action. Once IsComplete reports true, Step is a no-op
// returning the last touched pair.
type Algorithm interface {
	Kind() Kind
	Range() sequence.Range
	Step() (int, int)
	IsComplete() bool

	sealed()
}

// LessFunc orders two values of the sequence.
type LessFunc func(a, b int) bool

func naturalLess(a, b int) bool { return a < b }

type Option func(*options)

type options struct {
	rnd  *rand.Rand
	less LessFunc
}

// WithRand sets the random source used by randomized algorithms.
func WithRand(rnd *rand.Rand) Option {
	return func(o *options) { o.rnd = rnd }
}

// WithLess replaces the natural integer order.
func WithLess(less LessFunc) Option {
	return func(o *options) { o.less = less }
}

func newOptions(opts []Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.rnd == nil {
		o.rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if o.less == nil {
		o.less = naturalLess
	}
	return o
}

// base carries what every algorithm shares: the borrowed sequence, the
// range it may touch and the last touched pair.
type base struct {
	kind Kind
	seq  sequence.Sequence
	rng  sequence.Range
	less LessFunc
	a, b int
}

func newBase(kind Kind, seq sequence.Sequence, rng sequence.Range, o *options) base {
	return base{
		kind: kind,
		seq:  seq,
		rng:  rng,
		less: o.less,
		a:    rng.Lo,
		b:    rng.Lo,
	}
}

func (r *base) Kind() Kind            { return r.kind }
func (r *base) Range() sequence.Range { return r.rng }
func (r *base) sealed()               {}

func (r *base) touch(a, b int) (int, int) {
	r.a, r.b = a, b
	return a, b
}

func (r *base) touched() (int, int) {
	return r.a, r.b
}

// compareSwap orders seq[i] and seq[j] and reports whether they were exchanged.
func (r *base) compareSwap(i, j int) bool {
	if r.less(r.seq[j], r.seq[i]) {
		r.seq.Swap(i, j)
		return true
	}
	return false
}

func (r *base) isSorted() bool {
	return sequence.IsSortedRange(r.seq, r.rng, r.less)
}
