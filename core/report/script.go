package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/goto/folio/domain"
	"github.com/goto/folio/pkg/evaluator"
)

const (
	placeholderColumn     = "COL/"
	placeholderAccumulate = "ACCUMULATE/"
	placeholderLine       = "LINE"
)

// scriptEvaluator evaluates computed column scripts row by row. Scripts
// reference the row through placeholders:
//
//	@COL/Name@         value of column Name on the current row
//	@ACCUMULATE/Name@  running sum of column Name up to the current row
//	@LINE@             running line number
//
// Running values are kept per script column for the whole load.
type scriptEvaluator struct {
	running map[int64]decimal.Decimal
}

func newScriptEvaluator() *scriptEvaluator {
	return &scriptEvaluator{running: map[int64]decimal.Decimal{}}
}

// bind rewrites the placeholders of script into variables. A reference to a
// column missing from the row turns the whole script into a message.
func (s *scriptEvaluator) bind(script string, column *domain.PrintDataColumn, row []*domain.PrintDataElement) (evaluator.Expression, map[string]interface{}) {
	params := map[string]interface{}{}
	var out strings.Builder
	in := script
	for {
		i := strings.IndexByte(in, '@')
		if i < 0 {
			break
		}
		out.WriteString(in[:i])
		in = in[i+1:]

		j := strings.IndexByte(in, '@')
		if j < 0 {
			return `""`, nil
		}
		token := in[:j]
		in = in[j+1:]

		name := fmt.Sprintf("_p%d", len(params))
		switch {
		case strings.HasPrefix(token, placeholderAccumulate):
			ref := strings.TrimPrefix(token, placeholderAccumulate)
			e := findElement(row, ref)
			if e == nil {
				return itemNotFound(ref), nil
			}
			total := s.running[column.ItemID].Add(e.FunctionValue())
			s.running[column.ItemID] = total
			params[name] = exprValue(total)
		case strings.HasPrefix(token, placeholderColumn):
			ref := strings.TrimPrefix(token, placeholderColumn)
			e := findElement(row, ref)
			if e == nil {
				return itemNotFound(ref), nil
			}
			params[name] = columnValue(e, ref)
		case token == placeholderLine:
			line := s.running[column.ItemID].Add(decimal.NewFromInt(1))
			s.running[column.ItemID] = line
			params[name] = exprValue(line)
		default:
			// unknown tags are dropped
			continue
		}
		out.WriteString(name)
	}
	out.WriteString(in)

	return evaluator.Expression(out.String()), params
}

// evaluate runs the script of a marker element and returns the element
// carrying the result. The marker element is returned unchanged when the
// script fails.
func (s *scriptEvaluator) evaluate(e *domain.PrintDataElement, column *domain.PrintDataColumn, row []*domain.PrintDataElement) (*domain.PrintDataElement, error) {
	script := strings.TrimPrefix(e.ValueAsString(), scriptMarker)
	expression, params := s.bind(script, column, row)

	result, err := expression.EvaluateWithVars(params)
	if err != nil {
		return e, err
	}

	value, displayType := classify(result)
	evaluated := *e
	evaluated.Value = value
	evaluated.DisplayType = displayType
	return &evaluated, nil
}

func itemNotFound(name string) evaluator.Expression {
	return evaluator.Expression(fmt.Sprintf("%q", "Item not found: "+name))
}

func findElement(row []*domain.PrintDataElement, columnName string) *domain.PrintDataElement {
	for _, e := range row {
		if e != nil && strings.EqualFold(e.ColumnName, columnName) {
			return e
		}
	}
	return nil
}

// columnValue is the value a script sees for a column. Keys and UUIDs are
// exposed as the raw reference instead of the label.
func columnValue(e *domain.PrintDataElement, name string) interface{} {
	isKey := strings.HasSuffix(name, "_ID") || strings.HasSuffix(name, "_UU")
	switch v := e.Value.(type) {
	case domain.KeyNamePair:
		if isKey {
			return v.Key
		}
		return v.Name
	case domain.ValueNamePair:
		if isKey {
			return v.Value
		}
		return v.Name
	case decimal.Decimal:
		return exprValue(v)
	}
	return e.Value
}

func exprValue(d decimal.Decimal) interface{} {
	if d.IsInteger() {
		return int(d.IntPart())
	}
	return d.InexactFloat64()
}

// classify maps a script result to an element value and display type.
func classify(result interface{}) (interface{}, domain.DisplayType) {
	switch v := result.(type) {
	case int:
		return decimal.NewFromInt(int64(v)), domain.DisplayTypeNumber
	case int64:
		return decimal.NewFromInt(v), domain.DisplayTypeNumber
	case float64:
		return decimal.NewFromFloat(v), domain.DisplayTypeNumber
	case decimal.Decimal:
		return v, domain.DisplayTypeNumber
	case bool:
		return v, domain.DisplayTypeYesNo
	case time.Time:
		return v, domain.DisplayTypeDate
	case nil:
		return "", domain.DisplayTypeText
	}
	return fmt.Sprint(result), domain.DisplayTypeText
}
