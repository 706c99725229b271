package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-sod/shopping/internal/buildinfo"
	shopping "github.com/go-sod/shopping/internal/config"
	"github.com/go-sod/shopping/internal/dataset"
	"github.com/go-sod/shopping/internal/logging"
	"github.com/go-sod/shopping/internal/model"
	"github.com/go-sod/shopping/internal/pipeline"
	"github.com/go-sod/shopping/internal/setup"
	"github.com/go-sod/shopping/internal/shutdown"
)

const usage = "Usage: shopping <data.csv>\n"

func main() {
	ctx, done := shutdown.New()
	err := run(ctx, os.Args[1:], os.Stdout)
	done()

	switch {
	case err == nil:
	case errors.Is(err, model.ErrUsage):
		_, _ = fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	default:
		_, _ = fmt.Fprintf(os.Stderr, "shopping: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout io.Writer) (err error) {
	if len(args) != 1 {
		return fmt.Errorf("%w: expected exactly one data file, got %d arguments", model.ErrUsage, len(args))
	}

	config := shopping.Config{}
	env, err := setup.Setup(ctx, &config)
	if err != nil {
		return fmt.Errorf("setup.Setup: %w", err)
	}
	defer func() {
		if closeErr := env.Close(ctx); closeErr != nil && err == nil {
			err = fmt.Errorf("env.Close: %w", closeErr)
		}
	}()

	ctx = logging.WithLogger(ctx, env.Logger())
	logger := logging.FromContext(ctx)
	logger.Infof("%s: %s, %s", buildinfo.Info.Name(), buildinfo.Info.Time(), buildinfo.Info.Tag())

	loader := dataset.NewLoader(dataset.WithStrictCategorical(config.Dataset.StrictCategorical))
	ds, err := loader.LoadFile(ctx, args[0])
	if err != nil {
		return fmt.Errorf("dataset.LoadFile: %w", err)
	}

	opts := []pipeline.Option{
		pipeline.WithTestSize(config.Split.TestSize),
		pipeline.WithSeed(config.Split.Seed),
		pipeline.WithWorkers(config.Predictor.Workers),
		pipeline.WithIndexType(config.PredictType()),
		pipeline.WithSource(args[0]),
	}
	if store := env.ReportStore(); store != nil {
		opts = append(opts, pipeline.WithReportStore(store))
	}
	p, err := pipeline.New(env.ProvideIndex(), opts...)
	if err != nil {
		return fmt.Errorf("pipeline.New: %w", err)
	}

	report, err := p.Run(ctx, ds)
	if err != nil {
		return fmt.Errorf("pipeline.Run: %w", err)
	}
	// the run is persisted before anything reaches stdout
	if err := env.Close(ctx); err != nil {
		return fmt.Errorf("env.Close: %w", err)
	}
	return report.Write(stdout)
}
