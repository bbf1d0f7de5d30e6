package report

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goto/folio/domain"
	"github.com/goto/folio/pkg/log"
)

func textColumn(id int64, name string) *domain.PrintDataColumn {
	return &domain.PrintDataColumn{ItemID: id, ColumnName: name, DisplayType: domain.DisplayTypeString, Alias: name}
}

func amountColumn(id int64, name string) *domain.PrintDataColumn {
	return &domain.PrintDataColumn{ItemID: id, ColumnName: name, DisplayType: domain.DisplayTypeAmount, Alias: name}
}

func element(c *domain.PrintDataColumn, v interface{}) *domain.PrintDataElement {
	if s, ok := v.(string); ok && c.DisplayType.IsNumeric() {
		v = decimal.RequireFromString(s)
	}
	return &domain.PrintDataElement{ItemID: c.ItemID, ColumnName: c.ColumnName, Value: v, DisplayType: c.DisplayType}
}

type foldFixture struct {
	pd *domain.PrintData
	f  *folder
}

func newFoldFixture(columns []*domain.PrintDataColumn, setup func(p *plan), summary, symbols bool) *foldFixture {
	p := &plan{columns: columns, group: newGroupEngine(), runningTotalLines: -1}
	setup(p)
	pd := domain.NewPrintData("test", "T_Test")
	pd.Columns = columns
	return &foldFixture{pd: pd, f: newFolder(pd, p, log.NewNoop(), summary, symbols)}
}

func (fx *foldFixture) add(values ...interface{}) {
	elements := make([]*domain.PrintDataElement, len(fx.f.columns))
	for i, c := range fx.f.columns {
		if values[i] != nil {
			elements[i] = element(c, values[i])
		}
	}
	fx.f.add(context.Background(), elements, 0, 0)
}

func (fx *foldFixture) values(row int) []interface{} {
	var out []interface{}
	for _, e := range fx.pd.Row(row).Elements {
		if d, ok := e.Value.(decimal.Decimal); ok {
			out = append(out, d.String())
			continue
		}
		out = append(out, e.Value)
	}
	return out
}

func TestFolder(t *testing.T) {
	region := textColumn(1, "Region")
	city := textColumn(2, "City")
	amount := amountColumn(3, "Amount")

	t.Run("nested groups break innermost first and cascade outward breaks", func(t *testing.T) {
		fx := newFoldFixture([]*domain.PrintDataColumn{region, city, amount}, func(p *plan) {
			p.group.addGroupColumn(region.ItemID)
			p.group.addGroupColumn(city.ItemID)
			p.group.addFunction(amount.ItemID, domain.FunctionSum)
		}, false, false)

		fx.add("N", "A", "1")
		fx.add("N", "B", "2")
		fx.add("S", "B", "3")
		fx.f.finish()

		expected := []struct {
			function bool
			values   []interface{}
		}{
			{false, []interface{}{"N", "A", "1"}},
			{true, []interface{}{"A", "1"}},
			{false, []interface{}{"N", "B", "2"}},
			{true, []interface{}{"B", "2"}},
			{true, []interface{}{"N", "3"}},
			{false, []interface{}{"S", "B", "3"}},
			{true, []interface{}{"B", "3"}},
			{true, []interface{}{"S", "3"}},
			{true, []interface{}{"Sum", "6"}},
		}
		require.Equal(t, len(expected), fx.pd.RowCount())
		for i, e := range expected {
			assert.Equal(t, e.function, fx.pd.Row(i).IsFunctionRow, "row %d", i)
			assert.Equal(t, e.values, fx.values(i), "row %d", i)
		}
	})

	t.Run("emits one row per function in registration order", func(t *testing.T) {
		fx := newFoldFixture([]*domain.PrintDataColumn{region, amount}, func(p *plan) {
			p.group.addGroupColumn(region.ItemID)
			p.group.addFunction(amount.ItemID, domain.FunctionSum)
			p.group.addFunction(amount.ItemID, domain.FunctionCount)
			p.group.addFunction(amount.ItemID, domain.FunctionMax)
		}, true, true)

		fx.add("N", "4")
		fx.add("N", "6")
		fx.f.finish()

		require.Equal(t, 6, fx.pd.RowCount())
		assert.Equal(t, []interface{}{"NΣ", "10"}, fx.values(0))
		assert.Equal(t, []interface{}{"N№", "2"}, fx.values(1))
		assert.Equal(t, []interface{}{"N↑", "6"}, fx.values(2))
		assert.Equal(t, []interface{}{"Σ", "10"}, fx.values(3))
		assert.Equal(t, []interface{}{"№", "2"}, fx.values(4))
		assert.Equal(t, domain.DisplayTypeInteger, fx.pd.Row(4).Elements[1].DisplayType)
		assert.Equal(t, []interface{}{"↑", "6"}, fx.values(5))
	})

	t.Run("null group values form their own group", func(t *testing.T) {
		fx := newFoldFixture([]*domain.PrintDataColumn{region, amount}, func(p *plan) {
			p.group.addGroupColumn(region.ItemID)
			p.group.addFunction(amount.ItemID, domain.FunctionSum)
		}, true, false)

		fx.add(nil, "1")
		fx.add(nil, "2")
		fx.add("N", "3")
		fx.f.finish()

		require.Equal(t, 3, fx.pd.RowCount())
		assert.Equal(t, []interface{}{"", "3"}, fx.values(0))
		assert.Equal(t, []interface{}{"N", "3"}, fx.values(1))
		assert.Equal(t, []interface{}{"Sum", "6"}, fx.values(2))
	})

	t.Run("total row carries the value when the first column is summed", func(t *testing.T) {
		fx := newFoldFixture([]*domain.PrintDataColumn{amount}, func(p *plan) {
			p.group.addFunction(amount.ItemID, domain.FunctionSum)
		}, false, false)

		fx.add("1.5")
		fx.add("2")
		fx.f.finish()

		require.Equal(t, 3, fx.pd.RowCount())
		assert.Equal(t, []interface{}{"Sum 3.5"}, fx.values(2))
	})

	t.Run("no rows produce no total rows", func(t *testing.T) {
		fx := newFoldFixture([]*domain.PrintDataColumn{region, amount}, func(p *plan) {
			p.group.addGroupColumn(region.ItemID)
			p.group.addFunction(amount.ItemID, domain.FunctionSum)
		}, false, false)

		fx.f.finish()

		assert.Equal(t, 0, fx.pd.RowCount())
	})

	t.Run("adds a running total row after every interval", func(t *testing.T) {
		fx := newFoldFixture([]*domain.PrintDataColumn{region, amount}, func(p *plan) {
			p.group.addFunction(amount.ItemID, domain.FunctionSum)
			p.runningTotalLines = 2
		}, false, false)

		fx.add("N", "1")
		fx.add("N", "2")
		fx.add("S", "3")
		fx.add("S", "4")
		fx.add("S", "5")
		fx.f.finish()

		require.Equal(t, 8, fx.pd.RowCount())
		running := fx.pd.Row(2)
		assert.True(t, running.IsFunctionRow)
		assert.Equal(t, []interface{}{runningTotalTitle, "3"}, fx.values(2))
		assert.True(t, running.Elements[0].IsPageBreak)
		assert.Equal(t, []interface{}{runningTotalTitle, "10"}, fx.values(5))
		assert.Equal(t, []interface{}{"Sum", "15"}, fx.values(7))
	})
}

func TestFolderScripts(t *testing.T) {
	qty := amountColumn(1, "Qty")
	price := amountColumn(2, "Price")
	lineTotal := &domain.PrintDataColumn{
		ItemID:          3,
		ColumnName:      "LineTotal",
		DisplayType:     domain.DisplayTypeNumber,
		Alias:           "C_OrderLine.LineTotal",
		PrintFormatType: domain.PrintFormatTypeScript,
		Script:          "@COL/Qty@ * @COL/Price@",
	}
	running := &domain.PrintDataColumn{
		ItemID:          4,
		ColumnName:      "Running",
		DisplayType:     domain.DisplayTypeNumber,
		Alias:           "C_OrderLine.Running",
		PrintFormatType: domain.PrintFormatTypeScript,
		Script:          "@ACCUMULATE/Qty@",
	}
	line := &domain.PrintDataColumn{
		ItemID:          5,
		ColumnName:      "Line",
		DisplayType:     domain.DisplayTypeNumber,
		Alias:           "C_OrderLine.Line",
		PrintFormatType: domain.PrintFormatTypeScript,
		Script:          "@LINE@ * 10",
	}
	broken := &domain.PrintDataColumn{
		ItemID:          6,
		ColumnName:      "Broken",
		DisplayType:     domain.DisplayTypeText,
		Alias:           "C_OrderLine.Broken",
		PrintFormatType: domain.PrintFormatTypeScript,
		Script:          "@COL/Missing@",
	}
	columns := []*domain.PrintDataColumn{qty, price, lineTotal, running, line, broken}

	fx := newFoldFixture(columns, func(p *plan) {}, false, false)
	marker := func(c *domain.PrintDataColumn) *domain.PrintDataElement {
		return &domain.PrintDataElement{ItemID: c.ItemID, ColumnName: c.ColumnName, Value: scriptMarker + c.Script, DisplayType: domain.DisplayTypeText}
	}
	addRow := func(q, p string) {
		fx.f.add(context.Background(), []*domain.PrintDataElement{
			element(qty, q), element(price, p), marker(lineTotal), marker(running), marker(line), marker(broken),
		}, 0, 0)
	}

	addRow("2", "2.5")
	addRow("3", "4")

	require.Equal(t, 2, fx.pd.RowCount())
	assert.Equal(t, []interface{}{"2", "2.5", "5", "2", "10", "Item not found: Missing"}, fx.values(0))
	assert.Equal(t, []interface{}{"3", "4", "12", "5", "20", "Item not found: Missing"}, fx.values(1))
	assert.Equal(t, domain.DisplayTypeNumber, fx.pd.Row(0).Elements[2].DisplayType)
	assert.Equal(t, domain.DisplayTypeText, fx.pd.Row(0).Elements[5].DisplayType)
}

func TestGroupEngine(t *testing.T) {
	t.Run("first value never breaks the group", func(t *testing.T) {
		g := newGroupEngine()
		g.addGroupColumn(1)

		_, changed := g.groupChange(1, newGroupValue("A"), true)
		assert.False(t, changed)

		_, changed = g.groupChange(1, newGroupValue("A"), false)
		assert.False(t, changed)

		old, changed := g.groupChange(1, newGroupValue("A"), true)
		assert.True(t, changed)
		assert.Equal(t, "A", old.String())
	})

	t.Run("values compare by normalized key", func(t *testing.T) {
		assert.Equal(t, newGroupValue(decimal.RequireFromString("1.50")).key, newGroupValue(decimal.RequireFromString("1.5")).key)
		assert.Equal(t, newGroupValue(domain.KeyNamePair{Key: 1, Name: "HQ"}).key, "HQ")
		assert.NotEqual(t, newGroupValue(nil).key, newGroupValue("").key)
	})

	t.Run("function total group is registered once", func(t *testing.T) {
		g := newGroupEngine()
		g.addFunction(3, domain.FunctionSum)
		g.addFunction(3, domain.FunctionSum)
		g.addFunction(4, domain.FunctionMin)

		assert.Equal(t, 1, g.groupCount())
		assert.True(t, g.hasFunctions())
		assert.True(t, g.isFunctionColumnFor(3, domain.FunctionSum))
		assert.False(t, g.isFunctionColumnFor(3, domain.FunctionMin))
	})

	t.Run("ignores values of columns without functions", func(t *testing.T) {
		g := newGroupEngine()
		g.addFunction(3, domain.FunctionSum)
		g.addValue(4, decimal.NewFromInt(10))
		g.addValue(3, decimal.NewFromInt(2))

		assert.True(t, decimal.NewFromInt(2).Equal(g.value(totalGroup, 3, domain.FunctionSum)))
		assert.True(t, g.value(totalGroup, 4, domain.FunctionSum).IsZero())
		assert.Equal(t, []domain.AggregateFunction{domain.FunctionSum}, g.functionsFor(totalGroup))
	})
}
