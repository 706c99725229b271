package predictor

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/go-sod/shopping/internal/logging"
	"github.com/go-sod/shopping/internal/model"
)

type Option func(*Classifier)

// WithWorkers bounds the number of goroutines used by Predict. Zero or
// less means GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(c *Classifier) {
		c.workers = n
	}
}

func NewClassifier(provideFn ProvideFn, opts ...Option) (*Classifier, error) {
	if provideFn == nil {
		return nil, fmt.Errorf("index provide function is not set")
	}
	c := &Classifier{provideFn: provideFn}
	for _, f := range opts {
		f(c)
	}
	return c, nil
}

// Classifier predicts the label of the single nearest training instance.
type Classifier struct {
	provideFn ProvideFn
	workers   int

	index  Index
	labels []model.Label
}

// Train builds the neighbor index over the training pairs. The pairs are
// retained as given and must not be mutated afterwards.
func (c *Classifier) Train(ctx context.Context, features []model.FeatureVector, labels []model.Label) error {
	logger := logging.FromContext(ctx)
	if len(features) == 0 {
		return fmt.Errorf("%w: training set is empty", model.ErrInvalidArgument)
	}
	if len(features) != len(labels) {
		return fmt.Errorf("%w: %d training vectors but %d labels", model.ErrInvalidArgument, len(features), len(labels))
	}

	index, err := c.provideFn()
	if err != nil {
		return fmt.Errorf("can not create index instance: %w", err)
	}
	vectors := make([]Vector, len(features))
	for i := range features {
		vectors[i] = features[i]
	}
	if err := index.Build(vectors...); err != nil {
		return fmt.Errorf("unable to build index: %w", err)
	}
	c.index = index
	c.labels = labels
	logger.Debugf("index built over %d training instances", index.Len())
	return nil
}

// Classify returns the label of the nearest training instance.
func (c *Classifier) Classify(vec model.FeatureVector) (model.Label, error) {
	if c.index == nil {
		return model.LabelNoPurchase, fmt.Errorf("%w: classifier is not trained", model.ErrInvalidArgument)
	}
	nearest, err := c.index.Nearest(vec)
	if err != nil {
		return model.LabelNoPurchase, err
	}
	return c.labels[nearest.Index], nil
}

// Predict classifies every test instance. The result has the length and
// order of features; instances are spread over workers by contiguous ranges.
func (c *Classifier) Predict(ctx context.Context, features []model.FeatureVector) (model.PredictionSet, error) {
	if c.index == nil {
		return nil, fmt.Errorf("%w: classifier is not trained", model.ErrInvalidArgument)
	}
	predictions := make(model.PredictionSet, len(features))
	if len(features) == 0 {
		return predictions, nil
	}

	workers := c.workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(features) {
		workers = len(features)
	}
	rowsPerWorker := (len(features) + workers - 1) / workers

	errGrp, ctx := errgroup.WithContext(ctx)
	for start := 0; start < len(features); start += rowsPerWorker {
		start := start
		end := start + rowsPerWorker
		if end > len(features) {
			end = len(features)
		}
		errGrp.Go(func() error {
			for i := start; i < end; i++ {
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}
				label, err := c.Classify(features[i])
				if err != nil {
					return fmt.Errorf("unable to classify test instance %d: %w", i, err)
				}
				predictions[i] = label
			}
			return nil
		})
	}
	if err := errGrp.Wait(); err != nil {
		return nil, err
	}
	return predictions, nil
}
