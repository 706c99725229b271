package kd

import (
	"fmt"
	"math"

	"github.com/go-sod/shopping/internal/model"
	"github.com/go-sod/shopping/internal/predictor"
	"github.com/go-sod/shopping/pkg/container/kdtree"
)

var _ predictor.Index = (*kd)(nil)

func NewKDAlg(distFn predictor.PointsDistanceFn) *kd {
	return &kd{
		distFn:   distFn,
		dataTree: kdtree.New(func(vec, vec1 []float64) (float64, error) { return distFn(vec, vec1) }),
	}
}

// kd answers the same queries as the brute scan through a kd-tree.
type kd struct {
	dataTree *kdtree.Tree
	distFn   predictor.PointsDistanceFn
}

// Build indexes the training vectors. All vectors must share one non-zero
// dimension and have finite coordinates so the tree ordering is well defined.
func (b *kd) Build(data ...predictor.Vector) error {
	items := make([]kdtree.Point, len(data))
	for i := range data {
		if data[i].Dimensions() == 0 || data[i].Dimensions() != data[0].Dimensions() {
			return fmt.Errorf("%w: training vector %d has %d dimensions", model.ErrInvalidArgument, i, data[i].Dimensions())
		}
		for _, v := range data[i].Points() {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("%w: training vector %d has a non-finite coordinate", model.ErrInvalidArgument, i)
			}
		}
		items[i] = data[i]
	}
	b.dataTree.Build(items...)
	return nil
}

func (b *kd) Len() int {
	return b.dataTree.Len()
}

func (b *kd) Nearest(vec predictor.Vector) (predictor.Neighbor, error) {
	if b.dataTree.Len() == 0 {
		return predictor.Neighbor{}, predictor.ErrNoNeighbor
	}
	id, distance, ok, err := b.dataTree.Nearest(vec)
	if err != nil {
		return predictor.Neighbor{}, fmt.Errorf("unable to search nearest for %v: %w", vec.Points(), err)
	}
	if !ok {
		return predictor.Neighbor{}, predictor.ErrNoNeighbor
	}
	return predictor.Neighbor{Index: id, Distance: distance}, nil
}
