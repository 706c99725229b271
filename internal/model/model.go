package model

import "fmt"

// FeatureWidth is the number of attributes per session.
const FeatureWidth = 17

type Label uint8

const (
	LabelNoPurchase Label = 0
	LabelPurchase   Label = 1
)

// FeatureVector implements predictor.Vector. Callers must treat it as read-only.
type FeatureVector []float64

func (v FeatureVector) Dim(idx int) float64 {
	return v[idx]
}

func (v FeatureVector) Dimensions() int {
	return len(v)
}

func (v FeatureVector) Points() []float64 {
	return v
}

// Dataset keeps evidence and labels as parallel sequences.
type Dataset struct {
	Evidence []FeatureVector
	Labels   []Label
}

func NewDataset(evidence []FeatureVector, labels []Label) (*Dataset, error) {
	if len(evidence) != len(labels) {
		return nil, fmt.Errorf("%w: %d feature vectors but %d labels", ErrInvalidArgument, len(evidence), len(labels))
	}
	return &Dataset{Evidence: evidence, Labels: labels}, nil
}

func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Evidence)
}

type Split struct {
	TrainFeatures []FeatureVector
	TestFeatures  []FeatureVector
	TrainLabels   []Label
	TestLabels    []Label
}

// PredictionSet holds one label per test instance, in test order.
type PredictionSet []Label
