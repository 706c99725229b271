// Package tracing exports opencensus spans to the structured logger.
package tracing

import (
	"context"

	"go.opencensus.io/trace"
	"go.uber.org/zap"

	"github.com/go-sod/shopping/internal/logging"
)

type Config struct {
	Enabled bool `envconfig:"SHOP_TRACE" default:"false" toml:"enabled"`
}

// LogExporter writes every finished span as one info entry.
type LogExporter struct {
	logger *zap.SugaredLogger
}

var _ trace.Exporter = (*LogExporter)(nil)

func NewLogExporter(logger *zap.SugaredLogger) *LogExporter {
	return &LogExporter{logger: logger}
}

func (e *LogExporter) ExportSpan(s *trace.SpanData) {
	fields := make([]interface{}, 0, 8+2*len(s.Attributes))
	fields = append(fields,
		"span", s.Name,
		"traceID", s.TraceID.String(),
		"duration", s.EndTime.Sub(s.StartTime),
		"status", s.Status.Code,
	)
	for k, v := range s.Attributes {
		fields = append(fields, k, v)
	}
	e.logger.Infow("span finished", fields...)
}

// Setup registers the log exporter when tracing is enabled. The returned
// function unregisters it.
func Setup(ctx context.Context, cfg *Config) func() {
	if cfg == nil || !cfg.Enabled {
		return func() {}
	}
	exporter := NewLogExporter(logging.FromContext(ctx))
	trace.RegisterExporter(exporter)
	trace.ApplyConfig(trace.Config{DefaultSampler: trace.AlwaysSample()})
	return func() {
		trace.UnregisterExporter(exporter)
		trace.ApplyConfig(trace.Config{DefaultSampler: trace.NeverSample()})
	}
}
