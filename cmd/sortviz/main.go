package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/henderiw/sortviz/pkg/visualizer"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	app := visualizer.NewCLI(os.Stdout, os.Stderr)
	if err := app.RunContext(ctx, os.Args); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "[Error] %s\n", err.Error())
		os.Exit(1)
	}
}
