package srvenv

import (
	"context"

	"go.uber.org/zap"

	"github.com/go-sod/shopping/internal/database"
	"github.com/go-sod/shopping/internal/logging"
	"github.com/go-sod/shopping/internal/predictor"
	reportdb "github.com/go-sod/shopping/internal/report/database"
)

type Option func(*SrvEnv) *SrvEnv

func New(opts ...Option) *SrvEnv {
	env := &SrvEnv{}
	for _, f := range opts {
		env = f(env)
	}

	return env
}

// SrvEnv holds the resources a run needs once configuration is processed.
type SrvEnv struct {
	logger    *zap.SugaredLogger
	database  *database.DB
	reports   *reportdb.DB
	index     predictor.ProvideFn
	stopTrace func()
	closed    bool
}

func (s *SrvEnv) Logger() *zap.SugaredLogger {
	if s.logger == nil {
		return logging.DefaultLogger()
	}
	return s.logger
}

func (s *SrvEnv) ProvideIndex() predictor.ProvideFn {
	return s.index
}

// ReportStore is nil when no history file is configured.
func (s *SrvEnv) ReportStore() *reportdb.DB {
	return s.reports
}

func WithLogger(logger *zap.SugaredLogger) Option {
	return func(s *SrvEnv) *SrvEnv {
		s.logger = logger
		return s
	}
}

func WithIndex(fn predictor.ProvideFn) Option {
	return func(s *SrvEnv) *SrvEnv {
		s.index = fn
		return s
	}
}

func WithDatabase(db *database.DB) Option {
	return func(s *SrvEnv) *SrvEnv {
		s.database = db
		s.reports = reportdb.New(db)
		return s
	}
}

func WithTracing(stop func()) Option {
	return func(s *SrvEnv) *SrvEnv {
		s.stopTrace = stop
		return s
	}
}

// Close releases the environment. Calls after the first are no-ops.
func (s *SrvEnv) Close(ctx context.Context) error {
	if s == nil || s.closed {
		return nil
	}
	s.closed = true

	if s.stopTrace != nil {
		s.stopTrace()
	}
	if s.logger != nil {
		_ = s.logger.Sync()
	}
	if s.database != nil {
		return s.database.Close(ctx)
	}
	return nil
}
