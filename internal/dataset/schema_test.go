package dataset

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-sod/shopping/internal/model"
)

func TestMonthIndex(t *testing.T) {
	tests := []struct {
		month    string
		expected int
		ok       bool
	}{
		{month: "Jan", expected: 0, ok: true},
		{month: "Feb", expected: 1, ok: true},
		{month: "May", expected: 4, ok: true},
		{month: "Jun", expected: 5, ok: true},
		{month: "June", expected: 5, ok: true},
		{month: "Jul", expected: 6, ok: true},
		{month: "Dec", expected: 11, ok: true},
		{month: "jan", ok: false},
		{month: "January", ok: false},
		{month: "", ok: false},
	}
	for _, test := range tests {
		got, ok := MonthIndex(test.month)
		assert.Equal(t, test.ok, ok, test.month)
		if test.ok {
			assert.Equal(t, test.expected, got, test.month)
		}
	}
}

func TestCoder_Label(t *testing.T) {
	tests := []struct {
		name     string
		strict   bool
		raw      string
		expected model.Label
		err      bool
	}{
		{name: "true", raw: "TRUE", expected: model.LabelPurchase},
		{name: "false", raw: "FALSE", expected: model.LabelNoPurchase},
		{name: "lower case is not true", raw: "true", expected: model.LabelNoPurchase},
		{name: "yes is not true", raw: "yes", expected: model.LabelNoPurchase},
		{name: "strict true", strict: true, raw: "TRUE", expected: model.LabelPurchase},
		{name: "strict unknown", strict: true, raw: "True", err: true},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			got, err := Coder{Strict: test.strict}.Label(test.raw)
			if test.err {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.expected, got)
		})
	}
}

func TestCoder_Categorical(t *testing.T) {
	lenient := Coder{}
	strict := Coder{Strict: true}

	v, err := lenient.visitor("Returning_Visitor")
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)

	for _, raw := range []string{"New_Visitor", "Other", "returning_visitor", ""} {
		v, err := lenient.visitor(raw)
		require.NoError(t, err)
		assert.Equal(t, 0.0, v, raw)
	}

	_, err = strict.visitor("Robot")
	assert.True(t, errors.Is(err, errUnknownCategory))
	v, err = strict.visitor("Other")
	require.NoError(t, err)
	assert.Equal(t, 0.0, v)

	_, err = strict.flag("1")
	assert.Error(t, err)
	v, err = lenient.flag("1")
	require.NoError(t, err)
	assert.Equal(t, 0.0, v)
}

func TestFeatureNames(t *testing.T) {
	names := FeatureNames()
	require.Len(t, names, model.FeatureWidth)
	assert.Equal(t, "Administrative", names[0])
	assert.Equal(t, ColumnMonth, names[10])
	assert.Equal(t, ColumnWeekend, names[16])
}
