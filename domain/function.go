package domain

// AggregateFunction identifies a group function computed over a column.
type AggregateFunction string

const (
	FunctionSum       AggregateFunction = "sum"
	FunctionMean      AggregateFunction = "mean"
	FunctionCount     AggregateFunction = "count"
	FunctionMin       AggregateFunction = "min"
	FunctionMax       AggregateFunction = "max"
	FunctionVariance  AggregateFunction = "variance"
	FunctionDeviation AggregateFunction = "deviation"
)

// AggregateFunctions lists every function in the order function rows are
// emitted.
var AggregateFunctions = []AggregateFunction{
	FunctionSum,
	FunctionMean,
	FunctionCount,
	FunctionMin,
	FunctionMax,
	FunctionVariance,
	FunctionDeviation,
}

var functionSymbols = map[AggregateFunction]string{
	FunctionSum:       "Σ",
	FunctionMean:      "μ",
	FunctionCount:     "№",
	FunctionMin:       "↓",
	FunctionMax:       "↑",
	FunctionVariance:  "σ²",
	FunctionDeviation: "σ",
}

var functionNames = map[AggregateFunction]string{
	FunctionSum:       "Sum",
	FunctionMean:      "Mean",
	FunctionCount:     "Count",
	FunctionMin:       "Min",
	FunctionMax:       "Max",
	FunctionVariance:  "Variance",
	FunctionDeviation: "Deviation",
}

func (f AggregateFunction) Symbol() string {
	return functionSymbols[f]
}

func (f AggregateFunction) Name() string {
	return functionNames[f]
}

// DisplayType returns the display type of the function's result for a
// column of the given type.
func (f AggregateFunction) DisplayType(columnType DisplayType) DisplayType {
	switch f {
	case FunctionCount:
		return DisplayTypeInteger
	case FunctionSum, FunctionMin, FunctionMax:
		return columnType
	}
	return DisplayTypeNumber
}

// Functions returns the aggregate functions flagged on the item.
func (i *PrintFormatItem) Functions() []AggregateFunction {
	var fns []AggregateFunction
	if i.IsSummarized {
		fns = append(fns, FunctionSum)
	}
	if i.IsAveraged {
		fns = append(fns, FunctionMean)
	}
	if i.IsCounted {
		fns = append(fns, FunctionCount)
	}
	if i.IsMinCalc {
		fns = append(fns, FunctionMin)
	}
	if i.IsMaxCalc {
		fns = append(fns, FunctionMax)
	}
	if i.IsVarianceCalc {
		fns = append(fns, FunctionVariance)
	}
	if i.IsDeviationCalc {
		fns = append(fns, FunctionDeviation)
	}
	return fns
}
