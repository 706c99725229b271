// Package model describes a stored evaluation run.
package model

import (
	"bytes"
	"fmt"
	"time"

	"github.com/davecgh/go-xdr/xdr2"
	"github.com/google/uuid"

	"github.com/go-sod/shopping/internal/byteutil"
)

const recordVersion uint32 = 1

// Report is one evaluated run: how the data was split, which index answered
// the neighbor queries and the resulting confusion counts.
type Report struct {
	ID            uuid.UUID
	CreatedAt     time.Time
	Source        string
	Seed          uint32
	IndexType     string
	TestSize      float64
	TrainLen      int
	TestLen       int
	TruePositive  int
	TrueNegative  int
	FalsePositive int
	FalseNegative int
}

func NewReport(source string, createdAt time.Time) Report {
	return Report{
		ID:        uuid.New(),
		CreatedAt: createdAt,
		Source:    source,
	}
}

func (r Report) Correct() int {
	return r.TruePositive + r.TrueNegative
}

func (r Report) Incorrect() int {
	return r.FalsePositive + r.FalseNegative
}

// record is the fixed-width wire form of Report.
type record struct {
	Version       uint32
	ID            [16]byte
	CreatedAt     int64
	Source        string
	Seed          uint32
	IndexType     string
	TestSize      float64
	TrainLen      uint32
	TestLen       uint32
	TruePositive  uint32
	TrueNegative  uint32
	FalsePositive uint32
	FalseNegative uint32
}

// MarshalBinary encodes the report as XDR.
func (r Report) MarshalBinary() ([]byte, error) {
	rec := record{
		Version:       recordVersion,
		ID:            r.ID,
		CreatedAt:     r.CreatedAt.UnixNano(),
		Source:        r.Source,
		Seed:          r.Seed,
		IndexType:     r.IndexType,
		TestSize:      r.TestSize,
		TrainLen:      uint32(r.TrainLen),
		TestLen:       uint32(r.TestLen),
		TruePositive:  uint32(r.TruePositive),
		TrueNegative:  uint32(r.TrueNegative),
		FalsePositive: uint32(r.FalsePositive),
		FalseNegative: uint32(r.FalseNegative),
	}
	return byteutil.Encode(func(buf *bytes.Buffer) error {
		if _, err := xdr.Marshal(buf, &rec); err != nil {
			return fmt.Errorf("xdr marshal report: %w", err)
		}
		return nil
	})
}

func (r *Report) UnmarshalBinary(data []byte) error {
	var rec record
	if _, err := xdr.Unmarshal(bytes.NewReader(data), &rec); err != nil {
		return fmt.Errorf("xdr unmarshal report: %w", err)
	}
	if rec.Version != recordVersion {
		return fmt.Errorf("unsupported report record version %d", rec.Version)
	}
	*r = Report{
		ID:            uuid.UUID(rec.ID),
		CreatedAt:     time.Unix(0, rec.CreatedAt).UTC(),
		Source:        rec.Source,
		Seed:          rec.Seed,
		IndexType:     rec.IndexType,
		TestSize:      rec.TestSize,
		TrainLen:      int(rec.TrainLen),
		TestLen:       int(rec.TestLen),
		TruePositive:  int(rec.TruePositive),
		TrueNegative:  int(rec.TrueNegative),
		FalsePositive: int(rec.FalsePositive),
		FalseNegative: int(rec.FalseNegative),
	}
	return nil
}
