// Package setup turns a processed configuration into a run environment.
package setup

import (
	"context"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/davecgh/go-spew/spew"
	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap"

	"github.com/go-sod/shopping/internal/database"
	"github.com/go-sod/shopping/internal/geom"
	"github.com/go-sod/shopping/internal/logging"
	"github.com/go-sod/shopping/internal/model"
	"github.com/go-sod/shopping/internal/predictor"
	"github.com/go-sod/shopping/internal/predictor/knn/brute"
	"github.com/go-sod/shopping/internal/predictor/knn/kd"
	"github.com/go-sod/shopping/internal/srvenv"
	"github.com/go-sod/shopping/internal/tracing"
)

type ConfigFileProvider interface {
	ConfigFile() string
}

type LogConfigProvider interface {
	LogLevel() string
	LogDevelopment() bool
}

type PredictorConfigProvider interface {
	PredictConfig() *predictor.Config
	PredictType() predictor.AlgType
}

type DatabaseConfigProvider interface {
	DatabaseConfig() *database.Config
}

type TraceConfigProvider interface {
	TraceConfig() *tracing.Config
}

// Setup processes the environment into config, applies the optional TOML
// file on top and builds the run environment. The caller owns Close.
func Setup(ctx context.Context, config interface{}) (*srvenv.SrvEnv, error) {
	var serverEnvOpts []srvenv.Option
	if err := envconfig.Process("", config); err != nil {
		return nil, fmt.Errorf("error loading environment variables: %w", err)
	}
	if fileProvider, ok := config.(ConfigFileProvider); ok && fileProvider.ConfigFile() != "" {
		if _, err := toml.DecodeFile(fileProvider.ConfigFile(), config); err != nil {
			return nil, fmt.Errorf("error loading config file %s: %w", fileProvider.ConfigFile(), err)
		}
	}

	logger := logging.FromContext(ctx)
	if logConfigProvider, ok := config.(LogConfigProvider); ok {
		logger = logging.NewLogger(logConfigProvider.LogLevel(), logConfigProvider.LogDevelopment())
		ctx = logging.WithLogger(ctx, logger)
		serverEnvOpts = append(serverEnvOpts, srvenv.WithLogger(logger))
	}
	if logger.Desugar().Core().Enabled(zap.DebugLevel) {
		logger.Debugf("effective config:\n%s", spew.Sdump(config))
	}

	if predictConfigProvider, ok := config.(PredictorConfigProvider); ok {
		logger.Info("Configuring neighbor index")
		provideFn, err := ProvideIndexFor(predictConfigProvider.PredictConfig())
		if err != nil {
			return nil, fmt.Errorf("unable create index provide function: %w", err)
		}
		serverEnvOpts = append(serverEnvOpts, srvenv.WithIndex(provideFn))
	}

	if dbConfigProvider, ok := config.(DatabaseConfigProvider); ok && dbConfigProvider.DatabaseConfig().Enabled() {
		logger.Info("Configuring db")
		db, err := database.NewFromEnv(ctx, dbConfigProvider.DatabaseConfig())
		if err != nil {
			return nil, fmt.Errorf("unable to connect to database: %w", err)
		}
		serverEnvOpts = append(serverEnvOpts, srvenv.WithDatabase(db))
	}

	if traceConfigProvider, ok := config.(TraceConfigProvider); ok {
		serverEnvOpts = append(serverEnvOpts, srvenv.WithTracing(tracing.Setup(ctx, traceConfigProvider.TraceConfig())))
	}

	return srvenv.New(serverEnvOpts...), nil
}

func ProvideIndexFor(cfg *predictor.Config) (predictor.ProvideFn, error) {
	switch cfg.IndexType() {
	case predictor.AlgTypeBrute:
		return func() (predictor.Index, error) {
			return brute.NewBruteAlg(geom.EuclideanDistance), nil
		}, nil
	case predictor.AlgTypeKDTree:
		return func() (predictor.Index, error) {
			return kd.NewKDAlg(geom.EuclideanDistance), nil
		}, nil
	default:
		return nil, fmt.Errorf("%w: unknown index type: %s", model.ErrInvalidArgument, cfg.IndexType())
	}
}
