package driver

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/convox/logger"
	"github.com/henderiw/sortviz/pkg/algorithm"
	"github.com/henderiw/sortviz/pkg/sequence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDriver(t *testing.T, kind algorithm.Kind, seq sequence.Sequence, opts ...Option) *Driver {
	t.Helper()
	alg, err := algorithm.New(kind, seq, seq.Bounds())
	require.NoError(t, err)
	return New(alg, seq, opts...)
}

func TestUpdate(t *testing.T) {
	cases := map[string]struct {
		speed         float64
		frames        []time.Duration
		expectedSteps []int
	}{
		"BelowInterval": {
			speed:         10,
			frames:        []time.Duration{50 * time.Millisecond},
			expectedSteps: []int{0},
		},
		"Accumulates": {
			speed:         10,
			frames:        []time.Duration{50 * time.Millisecond, 60 * time.Millisecond, 90 * time.Millisecond},
			expectedSteps: []int{0, 1, 1},
		},
		"SeveralPerFrame": {
			speed:         100,
			frames:        []time.Duration{35 * time.Millisecond, 5 * time.Millisecond},
			expectedSteps: []int{3, 1},
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			seq := sequence.Sequence{9, 8, 7, 6, 5, 4, 3, 2, 1}
			d := newDriver(t, algorithm.Bubble, seq, WithSpeed(tc.speed))
			for i, frame := range tc.frames {
				assert.Equal(t, tc.expectedSteps[i], d.Update(frame), "frame %d", i)
			}
		})
	}
}

func TestWithSpeed(t *testing.T) {
	cases := map[string]struct {
		speed    float64
		expected time.Duration
	}{
		"Default":  {speed: 0, expected: 100 * time.Millisecond},
		"Negative": {speed: -5, expected: 100 * time.Millisecond},
		"Ten":      {speed: 10, expected: 100 * time.Millisecond},
		"OnePerNs": {speed: 1e9, expected: time.Nanosecond},
		"BeyondNs": {speed: 3e9, expected: time.Nanosecond},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			d := newDriver(t, algorithm.Bubble, sequence.Sequence{2, 1}, WithSpeed(tc.speed))
			assert.Equal(t, tc.expected, d.Interval())
		})
	}
}

func TestUpdateAboveOneStepPerNanosecond(t *testing.T) {
	seq := sequence.New(200)
	seq.Arrange(sequence.Reverse, nil)
	d := newDriver(t, algorithm.Bubble, seq, WithSpeed(3e9))

	assert.Equal(t, 1, d.Update(time.Nanosecond))
	assert.Equal(t, 3, d.Update(3*time.Nanosecond))
	assert.False(t, d.Done())
}

func TestUpdateStopsWhenDone(t *testing.T) {
	seq := sequence.Sequence{2, 1, 3}
	d := newDriver(t, algorithm.Bubble, seq, WithSpeed(1000))

	// [2,1,3] sorts on the first step; with stopOnSorted the driver stops
	assert.Equal(t, 1, d.Update(time.Second))
	assert.True(t, d.Done())
	assert.Equal(t, uint64(1), d.Steps())
	assert.Equal(t, 0, d.Update(time.Second))
	assert.Equal(t, sequence.Sequence{1, 2, 3}, seq)
}

func TestStopOnSorted(t *testing.T) {
	seq := sequence.Sequence{2, 1, 3}
	d := newDriver(t, algorithm.Bubble, seq, WithStopOnSorted(false))

	require.NoError(t, d.Complete(0))
	// bubble sort needs all three comparisons to recognize completion
	assert.Equal(t, uint64(3), d.Steps())
	assert.True(t, d.Algorithm().IsComplete())
}

func TestTouched(t *testing.T) {
	seq := sequence.Sequence{3, 1, 2}
	d := newDriver(t, algorithm.Bubble, seq)

	a, b := d.Touched()
	assert.Equal(t, 0, a)
	assert.Equal(t, 0, b)

	d.Step()
	d.Step()
	a, b = d.Touched()
	assert.Equal(t, 1, a)
	assert.Equal(t, 2, b)
}

func TestComplete(t *testing.T) {
	var buf bytes.Buffer
	seq := sequence.New(20)
	seq.Arrange(sequence.Reverse, nil)
	d := newDriver(t, algorithm.Merge, seq, WithLogger(logger.NewWriter("ns=test", &buf)))

	require.NoError(t, d.Complete(0))
	assert.True(t, sequence.IsSorted(seq))
	assert.Contains(t, buf.String(), "at=complete")
	assert.Contains(t, buf.String(), "algorithm=merge size=20")
	assert.Contains(t, buf.String(), "state=success")
}

func TestCompleteLimit(t *testing.T) {
	var buf bytes.Buffer
	seq := sequence.New(20)
	seq.Arrange(sequence.Reverse, nil)
	d := newDriver(t, algorithm.Selection, seq, WithLogger(logger.NewWriter("ns=test", &buf)))

	err := d.Complete(5)
	assert.True(t, errors.Is(err, ErrStepLimit))
	assert.Equal(t, uint64(5), d.Steps())
	assert.Contains(t, buf.String(), `at=complete algorithm=selection size=20 error="step limit reached: 5 steps"`)
}

func TestRun(t *testing.T) {
	seq := sequence.New(6)
	seq.Arrange(sequence.Reverse, nil)
	d := newDriver(t, algorithm.Cocktail, seq, WithSpeed(10_000))

	frames := 0
	err := d.Run(context.Background(), time.Millisecond, func(d *Driver) error {
		frames++
		return nil
	})
	require.NoError(t, err)
	assert.True(t, d.Done())
	assert.Equal(t, sequence.New(6), seq)
	assert.Greater(t, frames, 1)
}

func TestRunCanceled(t *testing.T) {
	seq := sequence.New(100)
	seq.Arrange(sequence.Reverse, nil)
	d := newDriver(t, algorithm.Bubble, seq, WithSpeed(1))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := d.Run(ctx, time.Millisecond, nil)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
	assert.False(t, d.Done())
}

func TestRunFrameError(t *testing.T) {
	seq := sequence.New(4)
	seq.Arrange(sequence.Reverse, nil)
	d := newDriver(t, algorithm.Insertion, seq)

	boom := errors.New("boom")
	err := d.Run(context.Background(), time.Millisecond, func(*Driver) error { return boom })
	assert.Equal(t, boom, err)
}

func TestCompleteProgress(t *testing.T) {
	seq := sequence.Sequence{4, 3, 2, 1}
	var seen []uint64
	progress := func(d *Driver) error {
		seen = append(seen, d.Steps())
		return nil
	}
	d := newDriver(t, algorithm.Merge, seq, WithStopOnSorted(false), WithProgress(4, progress))

	require.NoError(t, d.Complete(0))
	// merge needs six steps for four reversed elements
	assert.Equal(t, []uint64{4, 6}, seen)
}
