package visualizer

import (
	"io"

	"github.com/convox/logger"
	"github.com/google/uuid"
	"github.com/henderiw/sortviz/pkg/config"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

var _FlagConfig = &cli.StringFlag{
	Name:     "config",
	Usage:    "loads settings from a yaml file, flags override them",
	Required: false,
}

var _FlagAlgorithm = &cli.StringFlag{
	Name:     "algorithm",
	Aliases:  []string{"a"},
	Usage:    "sets the algorithm (bubble, cocktail, insertion, selection, merge, comb, odd-even, bogo)",
	Required: false,
}

var _FlagCount = &cli.IntFlag{
	Name:     "count",
	Aliases:  []string{"c"},
	Usage:    "sets the number of elements",
	Required: false,
}

var _FlagMode = &cli.StringFlag{
	Name:     "mode",
	Aliases:  []string{"s"},
	Usage:    "sets the initial arrangement (shuffle, reverse, sorted)",
	Required: false,
}

var _FlagRange = &cli.StringFlag{
	Name:     "range",
	Aliases:  []string{"r"},
	Usage:    "sorts only the inclusive index range lo-hi",
	Required: false,
}

var _FlagDimensions = &cli.StringFlag{
	Name:     "dimensions",
	Aliases:  []string{"d"},
	Usage:    "sets the drawing area in cells as width,height",
	Required: false,
}

var _FlagBorder = &cli.IntFlag{
	Name:     "border",
	Usage:    "sets the blank cells around the drawing area",
	Required: false,
}

var _FlagSpeed = &cli.Float64Flag{
	Name:     "speed",
	Usage:    "sets the pace in steps per second",
	Required: false,
}

var _FlagFrame = &cli.DurationFlag{
	Name:     "frame",
	Usage:    "sets the time between drawn frames",
	Required: false,
}

var _FlagSeed = &cli.Int64Flag{
	Name:     "seed",
	Usage:    "seeds the shuffle and bogo sort, 0 seeds from the clock",
	Required: false,
}

var _FlagStopOnSorted = &cli.BoolFlag{
	Name:     "stop-on-sorted",
	Usage:    "ends a run as soon as the sequence is sorted",
	Value:    true,
	Required: false,
}

var _FlagMaxSteps = &cli.Uint64Flag{
	Name:     "max-steps",
	Usage:    "fails a run that needs more steps, 0 means no limit",
	Required: false,
}

var _FlagHeadless = &cli.BoolFlag{
	Name:     "headless",
	Usage:    "runs without drawing and reports progress instead",
	Required: false,
}

var _FlagNoColor = &cli.BoolFlag{
	Name:     "no-color",
	Usage:    "draws without highlighting",
	Required: false,
}

var _FlagSelector = &cli.StringFlag{
	Name:     "selector",
	Usage:    "filters algorithms by label, e.g. stable=true,family!=exchange",
	Required: false,
}

var _FlagBenchSelector = &cli.StringFlag{
	Name:     "selector",
	Usage:    "filters algorithms by label",
	Value:    "randomized=false",
	Required: false,
}

func NewCLI(out, errOut io.Writer) *cli.App {
	var (
		cfg *config.Config
		log *logger.Logger
	)

	run := func(ctx *cli.Context) error {
		return runSort(ctx.Context, cfg, out, errOut, log, runOptions{
			headless: ctx.Bool(_FlagHeadless.Name),
			noColor:  ctx.Bool(_FlagNoColor.Name),
		})
	}

	return &cli.App{
		Name: "sortviz",
		Usage: "Steps sorting algorithms one primitive at a time and draws them.\n\n" +
			"sortviz -a merge -c 100\n" +
			"sortviz -a insertion -s reverse --speed 50 run\n" +
			"sortviz -c 500 --headless run\n" +
			"sortviz list --selector stable=true\n" +
			"sortviz -c 200 bench",
		Writer:    out,
		ErrWriter: errOut,
		Flags: []cli.Flag{
			_FlagConfig,
			_FlagAlgorithm,
			_FlagCount,
			_FlagMode,
			_FlagRange,
			_FlagDimensions,
			_FlagBorder,
			_FlagSpeed,
			_FlagFrame,
			_FlagSeed,
			_FlagStopOnSorted,
			_FlagMaxSteps,
			_FlagHeadless,
			_FlagNoColor,
		},
		Before: func(ctx *cli.Context) error {
			var err error
			cfg, err = loadConfig(ctx)
			if err != nil {
				return err
			}
			log = logger.NewWriter("ns=sortviz", &syncWriter{w: errOut}).Namespace("run=%s", uuid.NewString())
			return nil
		},
		Action: run,
		Commands: []*cli.Command{
			{
				Name:   "run",
				Usage:  "sorts one sequence with the configured algorithm",
				Action: run,
			},
			{
				Name:  "list",
				Usage: "lists algorithms with their labels",
				Flags: []cli.Flag{
					_FlagSelector,
				},
				Action: func(ctx *cli.Context) error {
					return list(out, ctx.String(_FlagSelector.Name))
				},
			},
			{
				Name:  "bench",
				Usage: "runs the selected algorithms on the same sequence and compares step counts",
				Flags: []cli.Flag{
					_FlagBenchSelector,
				},
				Action: func(ctx *cli.Context) error {
					return bench(ctx.Context, cfg, out, log, ctx.String(_FlagBenchSelector.Name))
				},
			},
			{
				Name:  "config",
				Usage: "prints the effective configuration as yaml",
				Action: func(ctx *cli.Context) error {
					data, err := cfg.Marshal()
					if err != nil {
						return err
					}
					_, err = out.Write(data)
					return err
				},
			},
		},
	}
}

// loadConfig starts from the defaults or the config file and applies every
// flag that was set on the command line.
func loadConfig(ctx *cli.Context) (*config.Config, error) {
	cfg := config.Default()
	if path := ctx.String(_FlagConfig.Name); path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return nil, err
		}
	}

	if ctx.IsSet(_FlagAlgorithm.Name) {
		cfg.Algorithm = ctx.String(_FlagAlgorithm.Name)
	}
	if ctx.IsSet(_FlagCount.Name) {
		cfg.Count = ctx.Int(_FlagCount.Name)
	}
	if ctx.IsSet(_FlagMode.Name) {
		cfg.Mode = ctx.String(_FlagMode.Name)
	}
	if ctx.IsSet(_FlagRange.Name) {
		cfg.Range = ctx.String(_FlagRange.Name)
	}
	if ctx.IsSet(_FlagDimensions.Name) {
		if err := cfg.SetDimensions(ctx.String(_FlagDimensions.Name)); err != nil {
			return nil, err
		}
	}
	if ctx.IsSet(_FlagBorder.Name) {
		cfg.Border = ctx.Int(_FlagBorder.Name)
	}
	if ctx.IsSet(_FlagSpeed.Name) {
		cfg.Speed = ctx.Float64(_FlagSpeed.Name)
	}
	if ctx.IsSet(_FlagFrame.Name) {
		cfg.Frame = ctx.Duration(_FlagFrame.Name)
	}
	if ctx.IsSet(_FlagSeed.Name) {
		cfg.Seed = ctx.Int64(_FlagSeed.Name)
	}
	if ctx.IsSet(_FlagStopOnSorted.Name) {
		cfg.StopOnSorted = ctx.Bool(_FlagStopOnSorted.Name)
	}
	if ctx.IsSet(_FlagMaxSteps.Name) {
		cfg.MaxSteps = ctx.Uint64(_FlagMaxSteps.Name)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	return cfg, nil
}
