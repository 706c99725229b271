// Package pipeline runs one evaluation: split, train, predict, evaluate.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/valyala/fastrand"
	"go.opencensus.io/trace"

	"github.com/go-sod/shopping/internal/evaluation"
	"github.com/go-sod/shopping/internal/logging"
	"github.com/go-sod/shopping/internal/model"
	"github.com/go-sod/shopping/internal/predictor"
	reportdb "github.com/go-sod/shopping/internal/report/database"
	reportmodel "github.com/go-sod/shopping/internal/report/model"
	"github.com/go-sod/shopping/internal/split"
)

const DefaultTestSize = 0.4

// ReportStore keeps finished runs.
type ReportStore interface {
	Store(ctx context.Context, report reportmodel.Report) error
	FindAll(ctx context.Context, filter reportdb.FilterFn) ([]reportmodel.Report, error)
	Count() (int, error)
}

type Option func(*Pipeline)

func WithTestSize(testSize float64) Option {
	return func(p *Pipeline) {
		p.testSize = testSize
	}
}

// WithSeed fixes the split seed. Zero draws a fresh seed per run.
func WithSeed(seed uint32) Option {
	return func(p *Pipeline) {
		p.seed = seed
	}
}

func WithWorkers(n int) Option {
	return func(p *Pipeline) {
		p.workers = n
	}
}

// WithIndexType labels stored runs with the neighbor index in use.
func WithIndexType(t predictor.AlgType) Option {
	return func(p *Pipeline) {
		p.indexType = t
	}
}

func WithReportStore(store ReportStore) Option {
	return func(p *Pipeline) {
		p.store = store
	}
}

func WithSource(source string) Option {
	return func(p *Pipeline) {
		p.source = source
	}
}

func New(provideFn predictor.ProvideFn, opts ...Option) (*Pipeline, error) {
	if provideFn == nil {
		return nil, fmt.Errorf("index provide function is not set")
	}
	p := &Pipeline{
		provideFn: provideFn,
		testSize:  DefaultTestSize,
		indexType: predictor.AlgTypeBrute,
	}
	for _, f := range opts {
		f(p)
	}
	return p, nil
}

type Pipeline struct {
	provideFn predictor.ProvideFn
	testSize  float64
	seed      uint32
	workers   int
	indexType predictor.AlgType
	store     ReportStore
	source    string
}

// Run evaluates the classifier on a fresh split of ds. The dataset is not
// modified. The returned report is complete; nothing is stored on error.
func (p *Pipeline) Run(ctx context.Context, ds *model.Dataset) (*Report, error) {
	logger := logging.FromContext(ctx)
	ctx, span := trace.StartSpan(ctx, "shopping/pipeline")
	defer span.End()

	seed := p.seed
	if seed == 0 {
		seed = randomSeed()
	}
	logger.Infof("splitting %d instances, test size %v, seed %d", ds.Len(), p.testSize, seed)

	s, err := p.split(ctx, ds, seed)
	if err != nil {
		return nil, err
	}
	metrics, err := p.Evaluate(ctx, s)
	if err != nil {
		return nil, err
	}
	c := metrics.Confusion
	logger.Infow("confusion matrix",
		"truePositive", c.TruePositive,
		"trueNegative", c.TrueNegative,
		"falsePositive", c.FalsePositive,
		"falseNegative", c.FalseNegative,
	)

	report, err := NewReport(metrics)
	if err != nil {
		return nil, err
	}

	if p.store != nil {
		r := reportmodel.NewReport(p.source, time.Now().UTC())
		r.Seed = seed
		r.IndexType = string(p.indexType)
		r.TestSize = p.testSize
		r.TrainLen = len(s.TrainFeatures)
		r.TestLen = len(s.TestFeatures)
		r.TruePositive = c.TruePositive
		r.TrueNegative = c.TrueNegative
		r.FalsePositive = c.FalsePositive
		r.FalseNegative = c.FalseNegative
		if err := p.store.Store(ctx, r); err != nil {
			return nil, fmt.Errorf("unable to store run report: %w", err)
		}
		history, err := p.history(ctx, r)
		if err != nil {
			return nil, err
		}
		report.History = history
		logger.Infow("run stored",
			"id", r.ID,
			"runs", history.Runs,
			"sameSource", history.SameSource,
			"bestCorrect", history.BestCorrect,
		)
	}

	return report, nil
}

func (p *Pipeline) split(ctx context.Context, ds *model.Dataset, seed uint32) (*model.Split, error) {
	_, span := trace.StartSpan(ctx, "shopping/split")
	defer span.End()

	s, err := split.TrainTestSplit(ds, p.testSize, split.WithSeed(seed))
	if err != nil {
		span.SetStatus(trace.Status{Code: trace.StatusCodeInvalidArgument, Message: err.Error()})
		return nil, fmt.Errorf("split: %w", err)
	}
	span.AddAttributes(
		trace.Int64Attribute("train", int64(len(s.TrainFeatures))),
		trace.Int64Attribute("test", int64(len(s.TestFeatures))),
	)
	return s, nil
}

// Evaluate trains on the training group and scores predictions for the
// test group.
func (p *Pipeline) Evaluate(ctx context.Context, s *model.Split) (*evaluation.Metrics, error) {
	classifier, err := predictor.NewClassifier(p.provideFn, predictor.WithWorkers(p.workers))
	if err != nil {
		return nil, err
	}

	trainCtx, span := trace.StartSpan(ctx, "shopping/train")
	span.AddAttributes(trace.StringAttribute("index", string(p.indexType)))
	err = classifier.Train(trainCtx, s.TrainFeatures, s.TrainLabels)
	span.End()
	if err != nil {
		return nil, fmt.Errorf("train: %w", err)
	}

	predictCtx, span := trace.StartSpan(ctx, "shopping/predict")
	predictions, err := classifier.Predict(predictCtx, s.TestFeatures)
	span.End()
	if err != nil {
		return nil, fmt.Errorf("predict: %w", err)
	}

	_, span = trace.StartSpan(ctx, "shopping/evaluate")
	metrics, err := evaluation.Evaluate(s.TestLabels, predictions)
	span.End()
	if err != nil {
		return nil, fmt.Errorf("evaluate: %w", err)
	}
	return metrics, nil
}

// history summarizes the stored runs other than current.
func (p *Pipeline) history(ctx context.Context, current reportmodel.Report) (*History, error) {
	runs, err := p.store.Count()
	if err != nil {
		return nil, fmt.Errorf("unable to count stored runs: %w", err)
	}
	previous, err := p.store.FindAll(ctx, func(r reportmodel.Report) bool {
		return r.Source == current.Source && r.ID != current.ID
	})
	if err != nil {
		return nil, fmt.Errorf("unable to read stored runs: %w", err)
	}
	h := &History{Runs: runs, SameSource: len(previous)}
	for _, r := range previous {
		if r.Correct() > h.BestCorrect {
			h.BestCorrect = r.Correct()
		}
	}
	return h, nil
}

func randomSeed() uint32 {
	for {
		if seed := fastrand.Uint32(); seed != 0 {
			return seed
		}
	}
}
