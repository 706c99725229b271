package brute

import (
	"fmt"
	"math"

	"github.com/go-sod/shopping/internal/predictor"
)

var _ predictor.Index = (*brute)(nil)

func NewBruteAlg(distFn predictor.PointsDistanceFn) *brute {
	return &brute{distFunc: distFn}
}

// brute keeps the training vectors verbatim and scans all of them per query.
type brute struct {
	data     []predictor.Vector
	distFunc predictor.PointsDistanceFn
}

// Build is the identity training step.
func (b *brute) Build(data ...predictor.Vector) error {
	b.data = data
	return nil
}

func (b *brute) Len() int {
	return len(b.data)
}

func (b *brute) Nearest(vec predictor.Vector) (predictor.Neighbor, error) {
	nearest := predictor.Neighbor{Index: -1, Distance: math.Inf(1)}
	for i, item := range b.data {
		distance, err := b.distFunc(vec.Points(), item.Points())
		if err != nil {
			return predictor.Neighbor{}, fmt.Errorf(
				"unable to compute distance between %v and %v: %w",
				vec.Points(), item.Points(),
				err,
			)
		}
		// strict comparison keeps the first of equidistant instances
		if distance < nearest.Distance {
			nearest = predictor.Neighbor{Index: i, Distance: distance}
		}
	}
	if nearest.Index < 0 {
		return predictor.Neighbor{}, predictor.ErrNoNeighbor
	}
	return nearest, nil
}
