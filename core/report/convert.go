package report

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cast"

	"github.com/goto/folio/domain"
)

// convertRow turns the scanned values of one result row into elements, one
// per column. A column whose value is null gets a nil element.
func convertRow(columns []*domain.PrintDataColumn, values []interface{}) []*domain.PrintDataElement {
	elements := make([]*domain.PrintDataElement, len(columns))
	counter := 0
	next := func() interface{} {
		if counter >= len(values) {
			return nil
		}
		v := values[counter]
		counter++
		return v
	}

	for i, c := range columns {
		switch {
		case c.IsKey():
			elements[i] = keyElement(c, next())
		case c.HasAlias():
			display, id := next(), next()
			elements[i] = referenceElement(c, display, id)
		default:
			elements[i] = valueElement(c, next())
		}
	}
	return elements
}

func newElement(c *domain.PrintDataColumn, value interface{}, displayType domain.DisplayType) *domain.PrintDataElement {
	return &domain.PrintDataElement{
		ItemID:            c.ItemID,
		ColumnName:        c.ColumnName,
		Value:             value,
		DisplayType:       displayType,
		FormatPattern:     c.FormatPattern,
		ForeignColumnName: c.ForeignColumnName,
	}
}

func keyElement(c *domain.PrintDataColumn, v interface{}) *domain.PrintDataElement {
	if v == nil {
		return nil
	}
	var value interface{}
	if strings.HasSuffix(c.ColumnName, "_ID") {
		value = domain.KeyNamePair{Key: toInt64(v), Name: domain.KeyColumnAlias}
	} else {
		value = domain.ValueNamePair{Value: toString(v), Name: domain.KeyColumnAlias}
	}
	e := newElement(c, value, c.DisplayType)
	e.IsPKey = true
	e.IsPageBreak = c.IsPageBreak
	return e
}

// referenceElement pairs a label with its key. Script columns keep the
// projected value as is; a script still to be evaluated is marked as text.
func referenceElement(c *domain.PrintDataColumn, display, id interface{}) *domain.PrintDataElement {
	if display == nil || id == nil {
		return nil
	}

	if strings.HasSuffix(c.ColumnName, "_ID") {
		pair := domain.KeyNamePair{Key: toInt64(id), Name: toString(display)}
		return newElement(c, pair, c.DisplayType)
	}

	if c.IsScript() {
		value := normalize(display)
		if s, ok := value.(string); ok && strings.HasPrefix(s, scriptMarker) {
			return newElement(c, s, domain.DisplayTypeText)
		}
		value, displayType := classify(value)
		return newElement(c, value, displayType)
	}

	pair := domain.ValueNamePair{Value: toString(id), Name: toString(display)}
	return newElement(c, pair, c.DisplayType)
}

func valueElement(c *domain.PrintDataColumn, v interface{}) *domain.PrintDataElement {
	if v == nil {
		return nil
	}

	switch dt := c.DisplayType; {
	case dt == domain.DisplayTypeYesNo:
		return newElement(c, toString(v) == "Y", dt)
	case dt == domain.DisplayTypeTextLong:
		return newElement(c, toString(v), dt)
	case dt.IsDate():
		t, err := cast.ToTimeE(normalize(v))
		if err != nil {
			return newElement(c, toString(v), dt)
		}
		return newElement(c, t, dt)
	}

	value := normalize(v)
	if s, ok := value.(string); ok {
		s = strings.TrimSpace(s)
		if s == "" {
			return nil
		}
		value = s
	}
	if c.DisplayType.IsNumeric() {
		if d, err := toDecimal(value); err == nil {
			value = d
		}
	}
	return newElement(c, value, c.DisplayType)
}

// normalize turns driver values into the element value types.
func normalize(v interface{}) interface{} {
	switch tv := v.(type) {
	case []byte:
		return string(tv)
	case int:
		return decimal.NewFromInt(int64(tv))
	case int32:
		return decimal.NewFromInt32(tv)
	case int64:
		return decimal.NewFromInt(tv)
	case float32:
		return decimal.NewFromFloat32(tv)
	case float64:
		return decimal.NewFromFloat(tv)
	}
	return v
}

func toString(v interface{}) string {
	switch tv := v.(type) {
	case nil:
		return ""
	case []byte:
		return string(tv)
	case string:
		return tv
	case time.Time:
		return tv.Format(time.RFC3339)
	case decimal.Decimal:
		return tv.String()
	}
	return cast.ToString(v)
}

func toInt64(v interface{}) int64 {
	if b, ok := v.([]byte); ok {
		return cast.ToInt64(strings.TrimSpace(string(b)))
	}
	if s, ok := v.(string); ok {
		return cast.ToInt64(strings.TrimSpace(s))
	}
	return cast.ToInt64(v)
}

func toDecimal(v interface{}) (decimal.Decimal, error) {
	switch tv := v.(type) {
	case decimal.Decimal:
		return tv, nil
	case string:
		return decimal.NewFromString(strings.TrimSpace(tv))
	case []byte:
		return decimal.NewFromString(strings.TrimSpace(string(tv)))
	}
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return decimal.Zero, err
	}
	return decimal.NewFromFloat(f), nil
}
