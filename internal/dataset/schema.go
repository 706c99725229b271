package dataset

import (
	"fmt"
	"math"
	"strconv"

	"github.com/go-sod/shopping/internal/model"
)

const (
	returningVisitor = "Returning_Visitor"
	newVisitor       = "New_Visitor"
	otherVisitor     = "Other"
	boolTrue         = "TRUE"
	boolFalse        = "FALSE"

	ColumnMonth       = "Month"
	ColumnVisitorType = "VisitorType"
	ColumnWeekend     = "Weekend"
	ColumnRevenue     = "Revenue"
)

type kind uint8

const (
	kindInt kind = iota
	kindReal
	kindMonth
	kindVisitor
	kindBool
)

type column struct {
	name string
	kind kind
}

// featureColumns is the feature vector layout; order is significant.
var featureColumns = [model.FeatureWidth]column{
	{name: "Administrative", kind: kindInt},
	{name: "Administrative_Duration", kind: kindReal},
	{name: "Informational", kind: kindInt},
	{name: "Informational_Duration", kind: kindReal},
	{name: "ProductRelated", kind: kindInt},
	{name: "ProductRelated_Duration", kind: kindReal},
	{name: "BounceRates", kind: kindReal},
	{name: "ExitRates", kind: kindReal},
	{name: "PageValues", kind: kindReal},
	{name: "SpecialDay", kind: kindReal},
	{name: ColumnMonth, kind: kindMonth},
	{name: "OperatingSystems", kind: kindInt},
	{name: "Browser", kind: kindInt},
	{name: "Region", kind: kindInt},
	{name: "TrafficType", kind: kindInt},
	{name: ColumnVisitorType, kind: kindVisitor},
	{name: ColumnWeekend, kind: kindBool},
}

// FeatureNames returns the column names in feature vector order.
func FeatureNames() []string {
	names := make([]string, len(featureColumns))
	for i, c := range featureColumns {
		names[i] = c.name
	}
	return names
}

var months = newMonthTable()

func newMonthTable() map[string]int {
	abbr := []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}
	table := make(map[string]int, len(abbr)+1)
	for i, m := range abbr {
		table[m] = i
	}
	table["June"] = 5
	return table
}

// MonthIndex maps a month abbreviation (or the literal "June") to 0..11.
func MonthIndex(s string) (int, bool) {
	idx, ok := months[s]
	return idx, ok
}

var errUnknownMonth = fmt.Errorf("unknown month")
var errUnknownCategory = fmt.Errorf("unrecognized categorical value")
var errNonFinite = fmt.Errorf("value is not a finite number")

// Coder converts raw table fields into numeric feature values.
type Coder struct {
	// Strict rejects categorical values outside the known vocabulary
	// instead of coding them as 0.
	Strict bool
}

func (c Coder) field(col column, raw string) (float64, error) {
	switch col.kind {
	case kindInt:
		v, err := strconv.Atoi(raw)
		if err != nil {
			return 0, err
		}
		return float64(v), nil
	case kindReal:
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return 0, err
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, errNonFinite
		}
		return v, nil
	case kindMonth:
		idx, ok := MonthIndex(raw)
		if !ok {
			return 0, errUnknownMonth
		}
		return float64(idx), nil
	case kindVisitor:
		return c.visitor(raw)
	case kindBool:
		return c.flag(raw)
	}
	return 0, fmt.Errorf("unsupported column kind %d", col.kind)
}

func (c Coder) visitor(raw string) (float64, error) {
	switch raw {
	case returningVisitor:
		return 1, nil
	case newVisitor, otherVisitor:
		return 0, nil
	}
	if c.Strict {
		return 0, errUnknownCategory
	}
	return 0, nil
}

func (c Coder) flag(raw string) (float64, error) {
	switch raw {
	case boolTrue:
		return 1, nil
	case boolFalse:
		return 0, nil
	}
	if c.Strict {
		return 0, errUnknownCategory
	}
	return 0, nil
}

// Label codes the Revenue column: only the exact string "TRUE" is a purchase.
func (c Coder) Label(raw string) (model.Label, error) {
	v, err := c.flag(raw)
	if err != nil {
		return model.LabelNoPurchase, err
	}
	if v == 1 {
		return model.LabelPurchase, nil
	}
	return model.LabelNoPurchase, nil
}
