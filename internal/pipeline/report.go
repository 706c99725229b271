package pipeline

import (
	"fmt"
	"io"

	"github.com/go-sod/shopping/internal/evaluation"
)

// Report is the printable summary of one run.
type Report struct {
	Correct          int
	Incorrect        int
	TruePositiveRate float64
	TrueNegativeRate float64
	// History is set when runs are stored.
	History *History
}

// History describes the run store after the current run was added.
type History struct {
	Runs        int
	SameSource  int
	BestCorrect int
}

// NewReport fails with model.ErrDivisionUndefined when either rate has a
// zero denominator.
func NewReport(metrics *evaluation.Metrics) (*Report, error) {
	sensitivity, err := metrics.Sensitivity.Percent()
	if err != nil {
		return nil, fmt.Errorf("true positive rate: no positive test instances: %w", err)
	}
	specificity, err := metrics.Specificity.Percent()
	if err != nil {
		return nil, fmt.Errorf("true negative rate: no negative test instances: %w", err)
	}
	return &Report{
		Correct:          metrics.Confusion.Correct(),
		Incorrect:        metrics.Confusion.Incorrect(),
		TruePositiveRate: sensitivity,
		TrueNegativeRate: specificity,
	}, nil
}

func (r *Report) Write(w io.Writer) error {
	_, err := fmt.Fprintf(w,
		"Correct: %d\nIncorrect: %d\nTrue Positive Rate: %.2f%%\nTrue Negative Rate: %.2f%%\n",
		r.Correct, r.Incorrect, r.TruePositiveRate, r.TrueNegativeRate,
	)
	return err
}
