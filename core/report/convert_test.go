package report

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goto/folio/domain"
)

func TestConvertRow(t *testing.T) {
	columns := []*domain.PrintDataColumn{
		{ItemID: 1, ColumnName: "C_Order_ID", DisplayType: domain.DisplayTypeID, Alias: domain.KeyColumnAlias},
		{ItemID: 2, ColumnName: "C_BPartner_ID", DisplayType: domain.DisplayTypeTableDir, Alias: "AC_BPartner_ID"},
		{ItemID: 3, ColumnName: "DocStatus", DisplayType: domain.DisplayTypeList, Alias: "BName"},
		{ItemID: 4, ColumnName: "IsPaid", DisplayType: domain.DisplayTypeYesNo, Alias: "IsPaid"},
		{ItemID: 5, ColumnName: "Description", DisplayType: domain.DisplayTypeString, Alias: "Description"},
		{ItemID: 6, ColumnName: "DateOrdered", DisplayType: domain.DisplayTypeDate, Alias: "DateOrdered"},
		{ItemID: 7, ColumnName: "GrandTotal", DisplayType: domain.DisplayTypeAmount, Alias: "GrandTotal"},
		{ItemID: 8, ColumnName: "Note", DisplayType: domain.DisplayTypeTextLong, Alias: "Note"},
	}
	dateOrdered := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)

	t.Run("converts each column by its kind", func(t *testing.T) {
		values := []interface{}{
			int64(1000001),
			"Joe Block", int64(118),
			"Completed", []byte("CO"),
			"Y",
			"  first order  ",
			dateOrdered,
			[]byte("1250.40"),
			"",
		}

		elements := convertRow(columns, values)

		require.Len(t, elements, len(columns))
		assert.Equal(t, domain.KeyNamePair{Key: 1000001, Name: domain.KeyColumnAlias}, elements[0].Value)
		assert.True(t, elements[0].IsPKey)
		assert.Equal(t, domain.KeyNamePair{Key: 118, Name: "Joe Block"}, elements[1].Value)
		assert.Equal(t, domain.ValueNamePair{Value: "CO", Name: "Completed"}, elements[2].Value)
		assert.Equal(t, true, elements[3].Value)
		assert.Equal(t, "first order", elements[4].Value)
		assert.Equal(t, dateOrdered, elements[5].Value)
		assert.True(t, decimal.RequireFromString("1250.4").Equal(elements[6].Value.(decimal.Decimal)))
		assert.Equal(t, "", elements[7].Value)
	})

	t.Run("leaves nulls and blank text out", func(t *testing.T) {
		values := []interface{}{
			nil,
			nil, int64(118),
			"Completed", nil,
			nil,
			"   ",
			nil,
			nil,
			nil,
		}

		elements := convertRow(columns, values)

		require.Len(t, elements, len(columns))
		for i, e := range elements {
			assert.Nil(t, e, "column %s", columns[i].ColumnName)
		}
	})

	t.Run("parses dates returned as text", func(t *testing.T) {
		elements := convertRow(columns[5:6], []interface{}{"2024-02-01"})

		require.NotNil(t, elements[0])
		assert.True(t, dateOrdered.Equal(elements[0].Value.(time.Time)))
	})

	t.Run("keeps unevaluated scripts as text", func(t *testing.T) {
		script := &domain.PrintDataColumn{
			ItemID:          9,
			ColumnName:      "Margin",
			DisplayType:     domain.DisplayTypeNumber,
			Alias:           "C_Order.",
			PrintFormatType: domain.PrintFormatTypeScript,
			Script:          "@COL/GrandTotal@ * 0.1",
		}

		elements := convertRow([]*domain.PrintDataColumn{script}, []interface{}{"@SCRIPT@COL/GrandTotal@ * 0.1", " "})

		require.NotNil(t, elements[0])
		assert.Equal(t, "@SCRIPT@COL/GrandTotal@ * 0.1", elements[0].Value)
		assert.Equal(t, domain.DisplayTypeText, elements[0].DisplayType)
	})
}
