package report

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/goto/folio/domain"
)

// functionScale is the number of decimal places of mean, variance and
// deviation results.
const functionScale int32 = 10

// accumulator keeps the running state of every aggregate function for one
// (group, column) pair.
type accumulator struct {
	count     int64
	sum       decimal.Decimal
	sumSquare decimal.Decimal
	min       decimal.Decimal
	max       decimal.Decimal
}

func (a *accumulator) add(v decimal.Decimal) {
	if a.count == 0 || v.LessThan(a.min) {
		a.min = v
	}
	if a.count == 0 || v.GreaterThan(a.max) {
		a.max = v
	}
	a.count++
	a.sum = a.sum.Add(v)
	a.sumSquare = a.sumSquare.Add(v.Mul(v))
}

func (a *accumulator) reset() {
	*a = accumulator{}
}

func (a *accumulator) value(fn domain.AggregateFunction) decimal.Decimal {
	switch fn {
	case domain.FunctionSum:
		return a.sum
	case domain.FunctionCount:
		return decimal.NewFromInt(a.count)
	case domain.FunctionMin:
		return a.min
	case domain.FunctionMax:
		return a.max
	}

	if a.count == 0 {
		return decimal.Zero
	}
	count := decimal.NewFromInt(a.count)
	switch fn {
	case domain.FunctionMean:
		return a.sum.DivRound(count, functionScale)
	case domain.FunctionVariance:
		return a.variance()
	case domain.FunctionDeviation:
		return sqrt(a.variance(), functionScale)
	}
	return decimal.Zero
}

// variance is the sample variance (Σx² - (Σx)²/n) / (n-1), zero for a
// single value.
func (a *accumulator) variance() decimal.Decimal {
	if a.count <= 1 {
		return decimal.Zero
	}
	n := decimal.NewFromInt(a.count)
	squareOfSum := a.sum.Mul(a.sum).DivRound(n, functionScale+4)
	v := a.sumSquare.Sub(squareOfSum).DivRound(n.Sub(decimal.NewFromInt(1)), functionScale)
	if v.IsNegative() {
		return decimal.Zero
	}
	return v
}

// sqrt computes the square root with Newton's method, seeded from the
// float approximation.
func sqrt(d decimal.Decimal, scale int32) decimal.Decimal {
	if d.Sign() <= 0 {
		return decimal.Zero
	}

	two := decimal.NewFromInt(2)
	x := decimal.NewFromFloat(math.Sqrt(d.InexactFloat64()))
	if x.IsZero() {
		x = d
	}
	for i := 0; i < 50; i++ {
		next := x.Add(d.DivRound(x, scale+4)).DivRound(two, scale+4)
		if next.Round(scale + 2).Equal(x.Round(scale + 2)) {
			x = next
			break
		}
		x = next
	}
	return x.Round(scale)
}
