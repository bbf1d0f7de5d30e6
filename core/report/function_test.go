package report

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/goto/folio/domain"
)

func newAccumulator(values ...string) *accumulator {
	acc := &accumulator{}
	for _, v := range values {
		acc.add(decimal.RequireFromString(v))
	}
	return acc
}

func TestAccumulator(t *testing.T) {
	acc := newAccumulator("2", "4", "4", "4", "5", "5", "7", "9")

	testCases := []struct {
		fn       domain.AggregateFunction
		expected string
	}{
		{domain.FunctionSum, "40"},
		{domain.FunctionCount, "8"},
		{domain.FunctionMin, "2"},
		{domain.FunctionMax, "9"},
		{domain.FunctionMean, "5"},
		{domain.FunctionVariance, "4.5714285714"},
		{domain.FunctionDeviation, "2.1380899353"},
	}
	for _, tc := range testCases {
		t.Run(string(tc.fn), func(t *testing.T) {
			actual := acc.value(tc.fn)
			assert.True(t, decimal.RequireFromString(tc.expected).Equal(actual), "expected %s, got %s", tc.expected, actual)
		})
	}

	t.Run("single value has no variance", func(t *testing.T) {
		single := newAccumulator("3")
		assert.True(t, single.value(domain.FunctionVariance).IsZero())
		assert.True(t, single.value(domain.FunctionDeviation).IsZero())
		assert.True(t, decimal.NewFromInt(3).Equal(single.value(domain.FunctionMean)))
	})

	t.Run("empty accumulator yields zero", func(t *testing.T) {
		empty := &accumulator{}
		for _, fn := range domain.AggregateFunctions {
			assert.True(t, empty.value(fn).IsZero(), fn)
		}
	})

	t.Run("negative values keep min and max", func(t *testing.T) {
		neg := newAccumulator("-3", "1.5", "-7.25")
		assert.True(t, decimal.RequireFromString("-7.25").Equal(neg.value(domain.FunctionMin)))
		assert.True(t, decimal.RequireFromString("1.5").Equal(neg.value(domain.FunctionMax)))
	})

	t.Run("reset clears every function", func(t *testing.T) {
		acc := newAccumulator("1", "2")
		acc.reset()
		assert.True(t, acc.value(domain.FunctionSum).IsZero())
		assert.True(t, acc.value(domain.FunctionCount).IsZero())
	})
}

func TestSqrt(t *testing.T) {
	assert.True(t, decimal.NewFromInt(3).Equal(sqrt(decimal.NewFromInt(9), functionScale)))
	assert.True(t, decimal.RequireFromString("1.4142135624").Equal(sqrt(decimal.NewFromInt(2), functionScale)))
	assert.True(t, sqrt(decimal.Zero, functionScale).IsZero())
	assert.True(t, sqrt(decimal.NewFromInt(-4), functionScale).IsZero())
}
