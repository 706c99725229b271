package predictor

import (
	"fmt"

	"github.com/go-sod/shopping/internal/model"
)

// ProvideFn returns a fresh, empty neighbor index.
type ProvideFn func() (Index, error)

type PointsDistanceFn func(vec, vec1 []float64) (float64, error)

type Vector interface {
	Dim(idx int) float64
	Dimensions() int
	Points() []float64
}

var _ Vector = model.FeatureVector(nil)

// Neighbor identifies a training instance by its position in the training set.
type Neighbor struct {
	Index    int
	Distance float64
}

// Index answers nearest-neighbor queries over a fixed training set.
// Nearest must return the instance with strictly minimal distance and,
// among equidistant instances, the one with the lowest index.
type Index interface {
	Build(data ...Vector) error
	Len() int
	Nearest(vec Vector) (Neighbor, error)
}

var ErrNoNeighbor = fmt.Errorf("%w: no nearest neighbor", model.ErrInvalidArgument)

type AlgType string

const (
	AlgTypeBrute  AlgType = "BRUTE"
	AlgTypeKDTree AlgType = "KD_TREE"
)

type Config struct {
	Type    AlgType `envconfig:"SHOP_INDEX_TYPE" default:"BRUTE" toml:"index_type"`
	Workers int     `envconfig:"SHOP_PREDICT_WORKERS" default:"0" toml:"predict_workers"`
}

func (c Config) IndexType() AlgType {
	return c.Type
}
