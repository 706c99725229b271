// Package split partitions a labeled dataset into training and test groups.
package split

import (
	"fmt"
	"math"

	"github.com/valyala/fastrand"

	"github.com/go-sod/shopping/internal/model"
)

type Option func(*splitter)

// WithSeed fixes the shuffle seed. Zero keeps the generator randomly seeded.
func WithSeed(seed uint32) Option {
	return func(s *splitter) {
		s.seed = seed
	}
}

type splitter struct {
	seed uint32
}

// TrainTestSplit assigns ceil(testSize*n) uniformly sampled instances to the
// test group and the rest to the training group.
func TrainTestSplit(ds *model.Dataset, testSize float64, opts ...Option) (*model.Split, error) {
	s := &splitter{}
	for _, opt := range opts {
		opt(s)
	}
	if ds == nil || ds.Len() == 0 {
		return nil, fmt.Errorf("%w: dataset is empty", model.ErrInvalidArgument)
	}
	if len(ds.Evidence) != len(ds.Labels) {
		return nil, fmt.Errorf("%w: %d feature vectors but %d labels", model.ErrInvalidArgument, len(ds.Evidence), len(ds.Labels))
	}
	if math.IsNaN(testSize) || testSize <= 0 || testSize >= 1 {
		return nil, fmt.Errorf("%w: test size %v is outside (0, 1)", model.ErrInvalidArgument, testSize)
	}

	n := ds.Len()
	nTest := int(math.Ceil(testSize * float64(n)))
	indices := s.permutation(n)

	result := &model.Split{
		TrainFeatures: make([]model.FeatureVector, 0, n-nTest),
		TestFeatures:  make([]model.FeatureVector, 0, nTest),
		TrainLabels:   make([]model.Label, 0, n-nTest),
		TestLabels:    make([]model.Label, 0, nTest),
	}
	for i, idx := range indices {
		if i < nTest {
			result.TestFeatures = append(result.TestFeatures, ds.Evidence[idx])
			result.TestLabels = append(result.TestLabels, ds.Labels[idx])
		} else {
			result.TrainFeatures = append(result.TrainFeatures, ds.Evidence[idx])
			result.TrainLabels = append(result.TrainLabels, ds.Labels[idx])
		}
	}
	return result, nil
}

// permutation returns a Fisher-Yates shuffle of 0..n-1.
func (s *splitter) permutation(n int) []int {
	var rng fastrand.RNG
	if s.seed != 0 {
		rng.Seed(s.seed)
	}
	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}
	for i := n - 1; i > 0; i-- {
		j := int(rng.Uint32n(uint32(i + 1)))
		indices[i], indices[j] = indices[j], indices[i]
	}
	return indices
}
