package kd

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/go-sod/shopping/internal/geom"
	"github.com/go-sod/shopping/internal/model"
	"github.com/go-sod/shopping/internal/predictor"
	"github.com/go-sod/shopping/internal/predictor/knn/brute"
)

func TestKD_MatchesBrute(t *testing.T) {
	t.Parallel()
	rnd := rand.New(rand.NewSource(17))
	train := make([]predictor.Vector, 400)
	for i := range train {
		vec := make(model.FeatureVector, model.FeatureWidth)
		for j := range vec {
			vec[j] = float64(rnd.Intn(3))
		}
		train[i] = vec
	}

	kdAlg := NewKDAlg(geom.EuclideanDistance)
	bruteAlg := brute.NewBruteAlg(geom.EuclideanDistance)
	if err := kdAlg.Build(train...); err != nil {
		t.Fatalf("kd build error: %v", err)
	}
	if err := bruteAlg.Build(train...); err != nil {
		t.Fatalf("brute build error: %v", err)
	}
	if kdAlg.Len() != len(train) {
		t.Errorf("len got: %d, expected: %d", kdAlg.Len(), len(train))
	}

	for q := 0; q < 200; q++ {
		query := make(model.FeatureVector, model.FeatureWidth)
		for j := range query {
			query[j] = float64(rnd.Intn(4))
		}
		expected, err := bruteAlg.Nearest(query)
		if err != nil {
			t.Fatalf("brute nearest error: %v", err)
		}
		got, err := kdAlg.Nearest(query)
		if err != nil {
			t.Fatalf("kd nearest error: %v", err)
		}
		if got != expected {
			t.Errorf("query %v got: %+v, expected: %+v", query, got, expected)
		}
	}
}

func TestKD_BuildErrors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		train []predictor.Vector
	}{
		{name: "nan", train: []predictor.Vector{model.FeatureVector{1, 2}, model.FeatureVector{math.NaN(), 2}}},
		{name: "inf", train: []predictor.Vector{model.FeatureVector{math.Inf(1)}}},
		{name: "dim", train: []predictor.Vector{model.FeatureVector{1, 2}, model.FeatureVector{1}}},
		{name: "zero_dim", train: []predictor.Vector{model.FeatureVector{}}},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			if err := NewKDAlg(geom.EuclideanDistance).Build(test.train...); !errors.Is(err, model.ErrInvalidArgument) {
				t.Errorf("build error got: %v, expected: %v", err, model.ErrInvalidArgument)
			}
		})
	}
}

func TestKD_NearestErrors(t *testing.T) {
	t.Parallel()
	empty := NewKDAlg(geom.EuclideanDistance)
	if _, err := empty.Nearest(model.FeatureVector{1}); !errors.Is(err, predictor.ErrNoNeighbor) {
		t.Errorf("nearest on empty index got: %v, expected: %v", err, predictor.ErrNoNeighbor)
	}

	alg := NewKDAlg(geom.EuclideanDistance)
	if err := alg.Build(model.FeatureVector{1, 2}); err != nil {
		t.Fatalf("build error: %v", err)
	}
	if _, err := alg.Nearest(model.FeatureVector{1}); !errors.Is(err, model.ErrInvalidArgument) {
		t.Errorf("nearest with another dimension got: %v, expected: %v", err, model.ErrInvalidArgument)
	}
}
