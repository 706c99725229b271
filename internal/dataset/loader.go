package dataset

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-sod/shopping/internal/logging"
	"github.com/go-sod/shopping/internal/model"
)

type Option func(*Loader)

func WithStrictCategorical(strict bool) Option {
	return func(l *Loader) {
		l.coder.Strict = strict
	}
}

func NewLoader(opts ...Option) *Loader {
	l := &Loader{}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Loader reads session records from a delimited table with a header row.
type Loader struct {
	coder Coder
}

func (l *Loader) LoadFile(ctx context.Context, fileName string) (*model.Dataset, error) {
	logger := logging.FromContext(ctx)
	f, err := os.Open(fileName)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", fileName, err)
	}
	defer f.Close()

	ds, err := l.Load(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", fileName, err)
	}
	logger.Infof("loaded %d sessions from %s", ds.Len(), fileName)
	return ds, nil
}

func (l *Loader) Load(ctx context.Context, r io.Reader) (*model.Dataset, error) {
	logger := logging.FromContext(ctx)
	reader := csv.NewReader(r)
	reader.ReuseRecord = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &model.ParseError{Row: 0, Column: "", Err: fmt.Errorf("missing header row")}
		}
		return nil, &model.ParseError{Row: 0, Err: err}
	}
	positions, labelPos, err := resolveColumns(header)
	if err != nil {
		return nil, err
	}

	var (
		evidence []model.FeatureVector
		labels   []model.Label
	)
	for row := 1; ; row++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &model.ParseError{Row: row, Err: err}
		}

		vec := make(model.FeatureVector, model.FeatureWidth)
		for i, col := range featureColumns {
			raw := record[positions[i]]
			v, err := l.coder.field(col, raw)
			if err != nil {
				return nil, &model.ParseError{Row: row, Column: col.name, Value: raw, Err: err}
			}
			vec[i] = v
		}
		label, err := l.coder.Label(record[labelPos])
		if err != nil {
			return nil, &model.ParseError{Row: row, Column: ColumnRevenue, Value: record[labelPos], Err: err}
		}
		evidence = append(evidence, vec)
		labels = append(labels, label)
	}
	logger.Debugf("parsed %d rows", len(evidence))

	return model.NewDataset(evidence, labels)
}

// resolveColumns finds the record position of every feature column and the label.
func resolveColumns(header []string) ([]int, int, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		if _, ok := index[name]; !ok {
			index[name] = i
		}
	}
	positions := make([]int, len(featureColumns))
	for i, col := range featureColumns {
		pos, ok := index[col.name]
		if !ok {
			return nil, 0, &model.ParseError{Row: 0, Column: col.name, Err: fmt.Errorf("missing column")}
		}
		positions[i] = pos
	}
	labelPos, ok := index[ColumnRevenue]
	if !ok {
		return nil, 0, &model.ParseError{Row: 0, Column: ColumnRevenue, Err: fmt.Errorf("missing column")}
	}
	return positions, labelPos, nil
}
