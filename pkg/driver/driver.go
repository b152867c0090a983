package driver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/convox/logger"
	"github.com/henderiw/sortviz/pkg/algorithm"
	"github.com/henderiw/sortviz/pkg/sequence"
)

var ErrStepLimit = errors.New("step limit reached")

// FrameFunc is called after every frame of Run.
type FrameFunc func(d *Driver) error

// Driver paces an algorithm: elapsed time accumulates and every full
// interval runs one step.
type Driver struct {
	alg          algorithm.Algorithm
	seq          sequence.Sequence
	interval     time.Duration
	stopOnSorted bool
	log          *logger.Logger
	every        uint64
	progress     FrameFunc

	elapsed time.Duration
	steps   uint64
	a, b    int
}

type Option func(*Driver)

// WithSpeed sets the pace in steps per second. The interval never drops
// below one nanosecond.
func WithSpeed(stepsPerSecond float64) Option {
	return func(r *Driver) {
		if stepsPerSecond > 0 {
			r.interval = max(time.Duration(float64(time.Second)/stepsPerSecond), time.Nanosecond)
		}
	}
}

// WithStopOnSorted makes a sorted sequence end the run even when the
// algorithm has not recognized completion yet.
func WithStopOnSorted(stop bool) Option {
	return func(r *Driver) { r.stopOnSorted = stop }
}

func WithLogger(log *logger.Logger) Option {
	return func(r *Driver) { r.log = log }
}

// WithProgress calls fn every n steps of Complete and after the last step.
func WithProgress(n uint64, fn FrameFunc) Option {
	return func(r *Driver) {
		if n > 0 {
			r.every, r.progress = n, fn
		}
	}
}

func New(alg algorithm.Algorithm, seq sequence.Sequence, opts ...Option) *Driver {
	r := &Driver{
		alg:          alg,
		seq:          seq,
		interval:     100 * time.Millisecond,
		stopOnSorted: true,
		log:          logger.NewWriter("ns=driver", io.Discard),
		a:            alg.Range().Lo,
		b:            alg.Range().Lo,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Driver) Algorithm() algorithm.Algorithm { return r.alg }
func (r *Driver) Sequence() sequence.Sequence    { return r.seq }
func (r *Driver) Steps() uint64                  { return r.steps }
func (r *Driver) Interval() time.Duration        { return r.interval }

// Touched returns the indices touched by the last step.
func (r *Driver) Touched() (int, int) { return r.a, r.b }

// Done reports whether the algorithm completed, or the sequence is sorted
// when stopOnSorted is set.
func (r *Driver) Done() bool {
	if r.alg.IsComplete() {
		return true
	}
	return r.stopOnSorted && sequence.IsSorted(r.seq)
}

// Step runs a single step unless the run is done.
func (r *Driver) Step() (int, int) {
	if r.Done() {
		return r.a, r.b
	}
	r.a, r.b = r.alg.Step()
	r.steps++
	return r.a, r.b
}

// Update adds elapsed to the accumulated time and runs one step per full
// interval, stopping early once done. It returns the number of steps run.
func (r *Driver) Update(elapsed time.Duration) int {
	if r.Done() {
		return 0
	}
	r.elapsed += elapsed

	n := 0
	for r.elapsed >= r.interval {
		r.Step()
		n++
		r.elapsed -= r.interval
		if r.Done() {
			break
		}
	}
	return n
}

// Complete runs steps without pacing until done. A limit of zero means no
// limit.
func (r *Driver) Complete(limit uint64) error {
	log := r.log.At("complete").Namespace("algorithm=%s size=%d", r.alg.Kind(), r.alg.Range().Size()).Start()
	for !r.Done() {
		if limit > 0 && r.steps >= limit {
			return log.Error(fmt.Errorf("%w: %d steps", ErrStepLimit, limit))
		}
		r.Step()
		if r.progress != nil && r.steps%r.every == 0 {
			if err := r.progress(r); err != nil {
				return log.Error(err)
			}
		}
	}
	if r.progress != nil && r.steps%r.every != 0 {
		if err := r.progress(r); err != nil {
			return log.Error(err)
		}
	}
	log.Successf("steps=%d", r.steps)
	return nil
}

// Run drives frames from a ticker until the run is done or ctx is canceled.
// onFrame, when set, is called after every frame.
func (r *Driver) Run(ctx context.Context, frame time.Duration, onFrame FrameFunc) error {
	log := r.log.At("run").Namespace("algorithm=%s size=%d", r.alg.Kind(), r.alg.Range().Size()).Start()

	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	last := time.Now()
	for {
		if onFrame != nil {
			if err := onFrame(r); err != nil {
				return log.Error(err)
			}
		}
		if r.Done() {
			log.Successf("steps=%d", r.steps)
			return nil
		}
		select {
		case <-ctx.Done():
			log.Logf("state=canceled steps=%d", r.steps)
			return ctx.Err()
		case now := <-ticker.C:
			r.Update(now.Sub(last))
			last = now
		}
	}
}
