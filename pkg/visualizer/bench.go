package visualizer

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"runtime"
	"sort"
	"time"

	"github.com/convox/logger"
	"github.com/dustin/go-humanize"
	"github.com/henderiw/sortviz/pkg/algorithm"
	"github.com/henderiw/sortviz/pkg/config"
	"github.com/henderiw/sortviz/pkg/driver"
	"github.com/henderiw/sortviz/pkg/sequence"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	"k8s.io/apimachinery/pkg/labels"
)

type benchResult struct {
	kind   algorithm.Kind
	steps  uint64
	sorted bool
	took   time.Duration
	err    error
}

// benchLimit bounds runs when no step limit is configured, so a selected
// bogo sort cannot run forever.
func benchLimit(cfg *config.Config) uint64 {
	if cfg.MaxSteps > 0 {
		return cfg.MaxSteps
	}
	n := uint64(cfg.Count)
	return 4*n*n + n
}

// runBench sorts a copy of one arranged sequence with every kind
// concurrently and returns the results ordered by step count.
func runBench(ctx context.Context, cfg *config.Config, kinds []algorithm.Kind, log *logger.Logger) ([]benchResult, int64, error) {
	seed := seedOf(cfg)
	seq, _, err := arranged(cfg, seed)
	if err != nil {
		return nil, 0, err
	}
	limit := benchLimit(cfg)

	results := make([]benchResult, len(kinds))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, kind := range kinds {
		g.Go(func() error {
			work := seq.Clone()
			alg, err := algorithm.New(kind, work, work.Bounds(), algorithm.WithRand(rand.New(rand.NewSource(seed+int64(i)))))
			if err != nil {
				return errors.Wrapf(err, "create %s sort", kind)
			}
			d := driver.New(alg, work,
				driver.WithStopOnSorted(cfg.StopOnSorted),
				driver.WithLogger(log),
				driver.WithProgress(progressEvery, func(*driver.Driver) error { return ctx.Err() }),
			)

			start := time.Now()
			err = d.Complete(limit)
			if ctx.Err() != nil {
				return ctx.Err()
			}
			results[i] = benchResult{
				kind:   kind,
				steps:  d.Steps(),
				sorted: sequence.IsSorted(work),
				took:   time.Since(start),
				err:    err,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].steps < results[j].steps
	})
	return results, seed, nil
}

func bench(ctx context.Context, cfg *config.Config, out io.Writer, log *logger.Logger, selector string) error {
	sel, err := labels.Parse(selector)
	if err != nil {
		return errors.Wrapf(err, "parse selector %q", selector)
	}
	kinds := algorithm.Select(sel)
	if len(kinds) == 0 {
		return fmt.Errorf("no algorithm matches %q", selector)
	}

	results, seed, err := runBench(ctx, cfg, kinds, log)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "count=%s mode=%s seed=%d\n", humanize.Comma(int64(cfg.Count)), cfg.Mode, seed)
	fmt.Fprintf(out, "%-16s %12s  %-6s  %s\n", "ALGORITHM", "STEPS", "SORTED", "TIME")
	for _, r := range results {
		took := r.took.Round(time.Microsecond).String()
		if r.err != nil {
			took = r.err.Error()
		}
		fmt.Fprintf(out, "%-16s %12s  %-6t  %s\n", r.kind.FullName(), humanize.Comma(int64(r.steps)), r.sorted, took)
	}
	return nil
}
