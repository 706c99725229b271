// Package evaluation measures binary classification quality.
package evaluation

import (
	"fmt"

	"github.com/go-sod/shopping/internal/model"
)

// Confusion counts paired (label, prediction) outcomes.
type Confusion struct {
	TruePositive  int
	TrueNegative  int
	FalsePositive int
	FalseNegative int
}

func (c Confusion) Correct() int {
	return c.TruePositive + c.TrueNegative
}

func (c Confusion) Incorrect() int {
	return c.FalsePositive + c.FalseNegative
}

func (c Confusion) Total() int {
	return c.Correct() + c.Incorrect()
}

// Rate is a ratio of counts. It is undefined when Den is zero.
type Rate struct {
	Num int
	Den int
}

func (r Rate) Defined() bool {
	return r.Den != 0
}

func (r Rate) Value() (float64, error) {
	if r.Den == 0 {
		return 0, model.ErrDivisionUndefined
	}
	return float64(r.Num) / float64(r.Den), nil
}

func (r Rate) Percent() (float64, error) {
	v, err := r.Value()
	if err != nil {
		return 0, err
	}
	return 100 * v, nil
}

func (r Rate) String() string {
	if !r.Defined() {
		return "undefined"
	}
	return fmt.Sprintf("%d/%d", r.Num, r.Den)
}

type Metrics struct {
	// true positive rate
	Sensitivity Rate
	// true negative rate
	Specificity Rate
	Confusion   Confusion
}

// Evaluate compares predictions with the true labels in one pass.
func Evaluate(labels []model.Label, predictions model.PredictionSet) (*Metrics, error) {
	if len(labels) != len(predictions) {
		return nil, fmt.Errorf("%w: %d labels but %d predictions", model.ErrInvalidArgument, len(labels), len(predictions))
	}
	var c Confusion
	for i, label := range labels {
		prediction := predictions[i]
		switch label {
		case model.LabelPurchase:
			if prediction == label {
				c.TruePositive++
			} else {
				c.FalseNegative++
			}
		case model.LabelNoPurchase:
			if prediction == label {
				c.TrueNegative++
			} else {
				c.FalsePositive++
			}
		default:
			return nil, fmt.Errorf("%w: label %d at %d is not binary", model.ErrInvalidArgument, label, i)
		}
	}
	return &Metrics{
		Sensitivity: Rate{Num: c.TruePositive, Den: c.TruePositive + c.FalseNegative},
		Specificity: Rate{Num: c.TrueNegative, Den: c.TrueNegative + c.FalsePositive},
		Confusion:   c,
	}, nil
}
