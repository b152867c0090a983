package visualizer

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/convox/logger"
	"github.com/dustin/go-humanize"
	"github.com/henderiw/sortviz/pkg/algorithm"
	"github.com/henderiw/sortviz/pkg/config"
	"github.com/henderiw/sortviz/pkg/driver"
	"github.com/henderiw/sortviz/pkg/render"
	"github.com/henderiw/sortviz/pkg/sequence"
	"github.com/pkg/errors"
	"gopkg.in/cheggaaa/pb.v1"
)

// progressEvery is the number of steps between progress callbacks of a
// headless run: bar updates, or cancellation checks in bench.
const progressEvery = 64

type runOptions struct {
	headless bool
	noColor  bool
}

// seedOf returns the configured seed, or one taken from the clock.
func seedOf(cfg *config.Config) int64 {
	if cfg.Seed != 0 {
		return cfg.Seed
	}
	return time.Now().UnixNano()
}

// arranged builds the configured sequence and the random source used for it.
func arranged(cfg *config.Config, seed int64) (sequence.Sequence, *rand.Rand, error) {
	mode, err := cfg.SequenceMode()
	if err != nil {
		return nil, nil, err
	}
	rnd := rand.New(rand.NewSource(seed))
	seq := sequence.New(cfg.Count)
	seq.Arrange(mode, rnd)
	return seq, rnd, nil
}

func runSort(ctx context.Context, cfg *config.Config, out, errOut io.Writer, log *logger.Logger, o runOptions) error {
	kind, err := cfg.Kind()
	if err != nil {
		return err
	}
	rng, err := cfg.SortRange()
	if err != nil {
		return err
	}
	seed := seedOf(cfg)
	seq, rnd, err := arranged(cfg, seed)
	if err != nil {
		return err
	}
	alg, err := algorithm.New(kind, seq, rng, algorithm.WithRand(rnd))
	if err != nil {
		return errors.Wrapf(err, "create %s sort", kind)
	}
	log.Logf("algorithm=%s count=%d mode=%s range=%s seed=%d", kind, cfg.Count, cfg.Mode, rng, seed)

	opts := []driver.Option{
		driver.WithSpeed(cfg.Speed),
		driver.WithStopOnSorted(cfg.StopOnSorted),
		driver.WithLogger(log),
	}
	if o.headless {
		return runHeadless(alg, seq, out, errOut, cfg.MaxSteps, opts)
	}

	renderOpts := []render.Option{render.WithClear(true)}
	if o.noColor {
		renderOpts = append(renderOpts, render.WithColor(false))
	}
	bars := render.New(out, cfg.Width, cfg.Height, cfg.Border, renderOpts...)

	d := driver.New(alg, seq, opts...)
	err = d.Run(ctx, cfg.Frame, func(d *driver.Driver) error {
		a, b := d.Touched()
		if err := bars.Render(d.Sequence(), a, b); err != nil {
			return err
		}
		return bars.Status("%s sort  steps=%s", kind.FullName(), humanize.Comma(int64(d.Steps())))
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// runHeadless completes the run as fast as possible while a progress bar
// tracks how many elements are in their final place.
func runHeadless(alg algorithm.Algorithm, seq sequence.Sequence, out, errOut io.Writer, limit uint64, opts []driver.Option) error {
	bar := pb.New(len(seq))
	bar.Output = &syncWriter{w: errOut}
	bar.Prefix(alg.Kind().FullName() + " ")
	bar.ShowTimeLeft = false
	bar.Set(seq.InPlace())
	bar.Start()

	opts = append(opts, driver.WithProgress(progressEvery, func(d *driver.Driver) error {
		bar.Set(d.Sequence().InPlace())
		return nil
	}))
	d := driver.New(alg, seq, opts...)
	start := time.Now()
	err := d.Complete(limit)
	bar.Finish()
	if err != nil {
		return err
	}

	rng := alg.Range()
	_, err = fmt.Fprintf(out, "%s sort ordered %s elements in %s steps (%s)\n",
		alg.Kind().FullName(), humanize.Comma(int64(rng.Size())), humanize.Comma(int64(d.Steps())),
		time.Since(start).Round(time.Microsecond))
	return err
}
