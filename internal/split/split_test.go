package split

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-sod/shopping/internal/model"
)

// newDataset encodes the original index in the single feature and
// derives the label from it, so pairing can be checked after the split.
func newDataset(t *testing.T, n int) *model.Dataset {
	t.Helper()
	evidence := make([]model.FeatureVector, n)
	labels := make([]model.Label, n)
	for i := 0; i < n; i++ {
		evidence[i] = model.FeatureVector{float64(i)}
		labels[i] = model.Label(i % 2)
	}
	ds, err := model.NewDataset(evidence, labels)
	require.NoError(t, err)
	return ds
}

func TestTrainTestSplit_Partition(t *testing.T) {
	tests := []struct {
		name      string
		n         int
		testSize  float64
		trainSize int
		testLen   int
	}{
		{name: "default ratio", n: 10, testSize: 0.4, trainSize: 6, testLen: 4},
		{name: "rounds test group up", n: 7, testSize: 0.4, trainSize: 4, testLen: 3},
		{name: "small test", n: 100, testSize: 0.01, trainSize: 99, testLen: 1},
		{name: "large test", n: 5, testSize: 0.9, trainSize: 0, testLen: 5},
		{name: "single", n: 1, testSize: 0.5, trainSize: 0, testLen: 1},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			ds := newDataset(t, test.n)
			s, err := TrainTestSplit(ds, test.testSize, WithSeed(42))
			require.NoError(t, err)

			assert.Len(t, s.TrainFeatures, test.trainSize)
			assert.Len(t, s.TrainLabels, test.trainSize)
			assert.Len(t, s.TestFeatures, test.testLen)
			assert.Len(t, s.TestLabels, test.testLen)
			assert.Equal(t, ds.Len(), len(s.TrainFeatures)+len(s.TestFeatures))

			seen := make(map[int]int, test.n)
			check := func(features []model.FeatureVector, labels []model.Label) {
				for i := range features {
					idx := int(features[i][0])
					seen[idx]++
					assert.Equal(t, model.Label(idx%2), labels[i], "label moved away from its features")
				}
			}
			check(s.TrainFeatures, s.TrainLabels)
			check(s.TestFeatures, s.TestLabels)

			require.Len(t, seen, test.n)
			for idx, count := range seen {
				assert.Equal(t, 1, count, "index %d assigned %d times", idx, count)
			}
		})
	}
}

func TestTrainTestSplit_Seed(t *testing.T) {
	ds := newDataset(t, 50)

	s1, err := TrainTestSplit(ds, 0.4, WithSeed(7))
	require.NoError(t, err)
	s2, err := TrainTestSplit(ds, 0.4, WithSeed(7))
	require.NoError(t, err)
	assert.Equal(t, s1, s2)

	s3, err := TrainTestSplit(ds, 0.4, WithSeed(8))
	require.NoError(t, err)
	assert.NotEqual(t, s1.TestFeatures, s3.TestFeatures)
}

func TestTrainTestSplit_DoesNotMutate(t *testing.T) {
	ds := newDataset(t, 20)
	_, err := TrainTestSplit(ds, 0.4, WithSeed(3))
	require.NoError(t, err)
	for i := range ds.Evidence {
		assert.Equal(t, float64(i), ds.Evidence[i][0])
	}
}

func TestTrainTestSplit_InvalidArgument(t *testing.T) {
	ds := newDataset(t, 10)
	empty, err := model.NewDataset(nil, nil)
	require.NoError(t, err)
	fewerLabels := &model.Dataset{Evidence: ds.Evidence, Labels: ds.Labels[:7]}
	moreLabels := &model.Dataset{Evidence: ds.Evidence[:3], Labels: ds.Labels}

	tests := []struct {
		name     string
		ds       *model.Dataset
		testSize float64
	}{
		{name: "zero", ds: ds, testSize: 0},
		{name: "one", ds: ds, testSize: 1},
		{name: "negative", ds: ds, testSize: -0.2},
		{name: "above one", ds: ds, testSize: 1.5},
		{name: "nan", ds: ds, testSize: math.NaN()},
		{name: "empty dataset", ds: empty, testSize: 0.4},
		{name: "nil dataset", ds: nil, testSize: 0.4},
		{name: "fewer labels than vectors", ds: fewerLabels, testSize: 0.4},
		{name: "more labels than vectors", ds: moreLabels, testSize: 0.4},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			_, err := TrainTestSplit(test.ds, test.testSize)
			assert.True(t, errors.Is(err, model.ErrInvalidArgument))
		})
	}
}
