package cli

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v3"

	"github.com/goto/folio/domain"
)

func TestParseRestriction(t *testing.T) {
	testCases := []struct {
		input         string
		expected      *domain.Restriction
		expectedError bool
	}{
		{"DocStatus=CO", &domain.Restriction{ColumnName: "DocStatus", Operator: domain.OperatorEqual, Value: "CO"}, false},
		{"GrandTotal >= 1000", &domain.Restriction{ColumnName: "GrandTotal", Operator: domain.OperatorGreaterEqual, Value: "1000"}, false},
		{"GrandTotal<=1000", &domain.Restriction{ColumnName: "GrandTotal", Operator: domain.OperatorLessEqual, Value: "1000"}, false},
		{"DocStatus!=VO", &domain.Restriction{ColumnName: "DocStatus", Operator: domain.OperatorNotEqual, Value: "VO"}, false},
		{"Name=Joe%", &domain.Restriction{ColumnName: "Name", Operator: domain.OperatorLike, Value: "Joe%"}, false},
		{"Description=", &domain.Restriction{ColumnName: "Description", Operator: domain.OperatorIsNull}, false},
		{"Description!=", &domain.Restriction{ColumnName: "Description", Operator: domain.OperatorIsNotNull}, false},
		{"Qty>", nil, true},
		{"=CO", nil, true},
		{"DocStatus", nil, true},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			actual, err := parseRestriction(tc.input)

			if tc.expectedError {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, actual)
		})
	}
}

func TestRenderPrintData(t *testing.T) {
	pd := domain.NewPrintData("Orders", "C_Order")
	pd.Columns = []*domain.PrintDataColumn{
		{ItemID: 1, ColumnName: "DocumentNo"},
		{ItemID: 2, ColumnName: "GrandTotal"},
	}
	pd.AddRow(false, 0, 0)
	pd.AddNode(&domain.PrintDataElement{ItemID: 1, ColumnName: "DocumentNo", Value: "50001"})
	pd.AddNode(&domain.PrintDataElement{ItemID: 2, ColumnName: "GrandTotal", Value: decimal.RequireFromString("120.5")})
	pd.AddRow(true, 0, 0)
	pd.AddNode(&domain.PrintDataElement{ItemID: 2, ColumnName: "GrandTotal", Value: decimal.RequireFromString("120.5")})

	var buf bytes.Buffer
	renderPrintData(&buf, pd)

	out := buf.String()
	assert.Contains(t, out, "DocumentNo")
	assert.Contains(t, out, "50001")
	assert.Contains(t, out, "120.5")
	assert.Contains(t, out, "2 rows")
}

func TestRenderPrintDataYAML(t *testing.T) {
	pd := domain.NewPrintData("Orders", "C_Order")
	pd.Columns = []*domain.PrintDataColumn{
		{ItemID: 1, ColumnName: "DocumentNo"},
		{ItemID: 2, ColumnName: "Description"},
	}
	pd.AddRow(false, 0, 0)
	pd.AddNode(&domain.PrintDataElement{ItemID: 1, ColumnName: "DocumentNo", Value: "50001"})
	pd.AddNode(&domain.PrintDataElement{ItemID: 2, ColumnName: "Description"})

	var buf bytes.Buffer
	err := renderPrintDataYAML(&buf, pd)
	assert.NoError(t, err)

	var actual yamlReport
	assert.NoError(t, yaml.Unmarshal(buf.Bytes(), &actual))
	assert.Equal(t, yamlReport{
		Name:  "Orders",
		Table: "C_Order",
		Rows:  []yamlRow{{Values: map[string]string{"DocumentNo": "50001"}}},
	}, actual)
}
