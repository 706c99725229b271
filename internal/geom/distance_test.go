package geom

import (
	"errors"
	"testing"

	"github.com/go-sod/shopping/internal/model"
)

func TestEuclideanDistance(t *testing.T) {
	tests := []struct {
		name     string
		p        []float64
		p1       []float64
		expected float64
	}{
		{name: "positive", p: []float64{1.2, 2.0}, p1: []float64{2.0, 3.0}, expected: 1.2806248474865698},
		{name: "positive", p: []float64{10, 2.0}, p1: []float64{5, 3.0}, expected: 5.0990195135927845},
		{name: "positive", p: []float64{0, 0, 0}, p1: []float64{3, 4, 0}, expected: 5},
		{name: "positive", p: []float64{10}, p1: []float64{1}, expected: 9},
		{name: "err", p: []float64{5, 2.0}, p1: []float64{3}, expected: 0},
		{name: "err", p: []float64{2.0}, p1: []float64{3, 4.0}, expected: 0},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			got, err := EuclideanDistance(test.p, test.p1)
			if test.name == "positive" {
				if err != nil {
					t.Errorf("the error should not be returned")
				}
				if got != test.expected {
					t.Errorf(
						"the distance obtained does not correspond to the expected distance, got %f, expected %f",
						got, test.expected)
				}
			}
			if test.name == "err" {
				if !errors.Is(err, model.ErrInvalidArgument) {
					t.Errorf("the dimension of the vectors is different, an error must be output %v", ErrDimNotEqual)
				}
			}
		})
	}
}

func TestEuclideanDistance_Properties(t *testing.T) {
	t.Parallel()
	vectors := [][]float64{
		{0, 0, 0},
		{1, 2, 3},
		{-4.5, 0.25, 1e6},
		{3, 2, 1},
	}
	for i := range vectors {
		self, err := EuclideanDistance(vectors[i], vectors[i])
		if err != nil || self != 0 {
			t.Errorf("distance to itself got: %f, %v, expected: 0", self, err)
		}
		for j := range vectors {
			d, _ := EuclideanDistance(vectors[i], vectors[j])
			d1, _ := EuclideanDistance(vectors[j], vectors[i])
			if d != d1 {
				t.Errorf("distance is not symmetric for %d and %d, got: %f and %f", i, j, d, d1)
			}
			if d < 0 {
				t.Errorf("distance is negative for %d and %d, got: %f", i, j, d)
			}
			if i != j && d == 0 {
				t.Errorf("distance between different vectors %d and %d is zero", i, j)
			}
		}
	}
}
