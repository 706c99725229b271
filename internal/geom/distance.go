package geom

import (
	"fmt"
	"math"

	"github.com/go-sod/shopping/internal/model"
)

var ErrDimNotEqual = fmt.Errorf("%w: vectors dimension is not equal", model.ErrInvalidArgument)

// DistanceFn is the signature shared by neighbor indexes.
type DistanceFn func(vec, vec1 []float64) (float64, error)

func EuclideanDistance(vec, vec1 []float64) (float64, error) {
	var d float64
	if len(vec) != len(vec1) {
		return 0.0, ErrDimNotEqual
	}

	for i := 0; i < len(vec); i++ {
		diff := vec[i] - vec1[i]
		d += diff * diff
	}
	return math.Sqrt(d), nil
}
