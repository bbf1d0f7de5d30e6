package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/goto/folio/core/report/mocks"
	"github.com/goto/folio/domain"
)

func TestAssembler(t *testing.T) {
	orderPlan := func() *plan {
		return &plan{
			tableName: "C_Order",
			selects:   []string{"C_Order.DocumentNo", "SUM(C_Order.GrandTotal) AS GrandTotal"},
			groupBy:   []string{"C_Order.DocumentNo"},
			orderBy:   []string{"C_Order.DocumentNo"},
		}
	}
	user := domain.Principal{ClientID: 11, RoleID: 102, UserID: 100}

	t.Run("adds the access restriction for regular users", func(t *testing.T) {
		access := mocks.NewAccessFilter(t)
		access.EXPECT().AddAccessSQL(mock.Anything, "SELECT C_Order.DocumentNo,SUM(C_Order.GrandTotal) AS GrandTotal FROM C_Order WHERE C_Order.IsSOTrx = 'Y'", "C_Order", user).
			Return("SELECT C_Order.DocumentNo,SUM(C_Order.GrandTotal) AS GrandTotal FROM C_Order WHERE C_Order.AD_Client_ID IN (0,11) AND (C_Order.IsSOTrx = 'Y')", nil)
		a := &assembler{access: access}
		query := &domain.Query{
			Restrictions: []*domain.Restriction{{ColumnName: "IsSOTrx", Value: true}},
			IsActive:     true,
		}
		p := orderPlan()
		p.isGroupedBy = true

		stmt, err := a.assemble(context.Background(), p, query, nil, user)

		require.NoError(t, err)
		assert.Equal(t, "SELECT C_Order.DocumentNo,SUM(C_Order.GrandTotal) AS GrandTotal FROM C_Order"+
			" WHERE C_Order.AD_Client_ID IN (0,11) AND (C_Order.IsSOTrx = 'Y')"+
			" GROUP BY C_Order.DocumentNo ORDER BY C_Order.DocumentNo", stmt)
	})

	t.Run("leaves system statements unrestricted", func(t *testing.T) {
		a := &assembler{access: mocks.NewAccessFilter(t)}

		stmt, err := a.assemble(context.Background(), orderPlan(), &domain.Query{}, nil, domain.Principal{})

		require.NoError(t, err)
		assert.Equal(t, "SELECT C_Order.DocumentNo,SUM(C_Order.GrandTotal) AS GrandTotal FROM C_Order ORDER BY C_Order.DocumentNo", stmt)
	})

	t.Run("uses the report view order without order columns", func(t *testing.T) {
		p := orderPlan()
		p.orderBy = nil

		stmt, err := (&assembler{}).assemble(context.Background(), p, nil, &domain.ReportView{OrderByClause: "DateOrdered DESC"}, domain.Principal{})

		require.NoError(t, err)
		assert.Equal(t, "SELECT C_Order.DocumentNo,SUM(C_Order.GrandTotal) AS GrandTotal FROM C_Order ORDER BY DateOrdered DESC", stmt)
	})

	t.Run("restricts report tables to the process instance only", func(t *testing.T) {
		p := &plan{
			tableName: "T_ReportStatement",
			selects:   []string{"T_ReportStatement.Name", "LevelNo"},
			orderBy:   []string{"1"},
		}
		query := &domain.Query{
			Restrictions: []*domain.Restriction{
				{ColumnName: "AD_PInstance_ID", Value: int64(1000123)},
				{ColumnName: "Name", Operator: domain.OperatorLike, Value: "A%"},
			},
			IsActive: true,
		}

		stmt, err := (&assembler{access: mocks.NewAccessFilter(t)}).assemble(context.Background(), p, query, nil, user)

		require.NoError(t, err)
		assert.Equal(t, "SELECT T_ReportStatement.Name,LevelNo FROM T_ReportStatement WHERE T_ReportStatement.AD_PInstance_ID = 1000123 ORDER BY 1", stmt)
	})

	t.Run("returns error when the access restriction fails", func(t *testing.T) {
		access := mocks.NewAccessFilter(t)
		access.EXPECT().AddAccessSQL(mock.Anything, mock.Anything, "C_Order", user).Return("", errors.New("role not found"))

		_, err := (&assembler{access: access}).assemble(context.Background(), orderPlan(), nil, nil, user)

		assert.ErrorContains(t, err, "role not found")
	})
}

func TestRestrictionSQL(t *testing.T) {
	date := time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC)

	testCases := []struct {
		name        string
		restriction *domain.Restriction
		expected    string
	}{
		{"nil", nil, ""},
		{"verbatim sql", &domain.Restriction{SQL: "(Processed='N')"}, "(Processed='N')"},
		{"default operator", &domain.Restriction{ColumnName: "DocStatus", Value: "CO"}, "C_Order.DocStatus = 'CO'"},
		{"quotes text", &domain.Restriction{ColumnName: "Description", Value: "O'Neil"}, "C_Order.Description = 'O''Neil'"},
		{"qualified column", &domain.Restriction{ColumnName: "bp.Name", Operator: domain.OperatorLike, Value: "A%"}, "bp.Name LIKE 'A%'"},
		{"number", &domain.Restriction{ColumnName: "GrandTotal", Operator: domain.OperatorGreater, Value: decimal.RequireFromString("100.5")}, "C_Order.GrandTotal > 100.5"},
		{"boolean", &domain.Restriction{ColumnName: "IsSOTrx", Value: false}, "C_Order.IsSOTrx = 'N'"},
		{"date", &domain.Restriction{ColumnName: "DateOrdered", Operator: domain.OperatorGreaterEqual, Value: date}, "C_Order.DateOrdered >= '2024-01-31 00:00:00'"},
		{"null value", &domain.Restriction{ColumnName: "C_Charge_ID"}, "C_Order.C_Charge_ID IS NULL"},
		{"not null value", &domain.Restriction{ColumnName: "C_Charge_ID", Operator: domain.OperatorNotEqual}, "C_Order.C_Charge_ID IS NOT NULL"},
		{"explicit null operator", &domain.Restriction{ColumnName: "C_Charge_ID", Operator: "is not null", Value: 1}, "C_Order.C_Charge_ID IS NOT NULL"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, restrictionSQL(tc.restriction, "C_Order"))
		})
	}
}
