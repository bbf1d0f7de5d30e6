package report

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/goto/folio/core/report/mocks"
	"github.com/goto/folio/domain"
)

var baseLanguage = domain.Language{Code: "en_US", IsBase: true}

func newPlanBuilder(t *testing.T, tableName string, metadata *mocks.MetadataRepository) *planBuilder {
	t.Helper()
	if metadata == nil {
		metadata = mocks.NewMetadataRepository(t)
	}
	return &planBuilder{
		tableName: tableName,
		vars:      map[string]string{},
		lookups:   &lookupBuilder{metadata: metadata, language: baseLanguage},
	}
}

func TestPlanBuilder(t *testing.T) {
	t.Run("projects every strategy and threads the synonym", func(t *testing.T) {
		metadata := mocks.NewMetadataRepository(t)
		metadata.EXPECT().GetTableReference(mock.Anything, int64(190)).
			Return(&domain.TableReference{TableName: "AD_User", KeyColumn: "AD_User_ID", DisplayColumn: "Name"}, nil)

		format := &domain.PrintFormat{
			Items: []*domain.PrintFormatItem{
				{ID: 1, ColumnID: 1, ColumnName: "C_Invoice_ID", DisplayType: domain.DisplayTypeID, IsKey: true, IsPrinted: true, SortNo: 1},
				{ID: 2, ColumnID: 2, ColumnName: "SalesRep_ID", DisplayType: domain.DisplayTypeTable, ReferenceValueID: 190, SortNo: 3},
				{ID: 3, ColumnID: 3, ColumnName: "DocStatus", DisplayType: domain.DisplayTypeList, ReferenceValueID: 131, IsPrinted: true},
				{ID: 4, ColumnID: 4, ColumnName: "C_Location_ID", DisplayType: domain.DisplayTypeLocation, IsPrinted: true},
				{ID: 5, Name: "Open", Script: "@SQL=GrandTotal-PaidAmt", PrintFormatType: domain.PrintFormatTypeField, IsPrinted: true},
				{ID: 6, ColumnID: 6, ColumnName: "IsPaid", ColumnSQL: "(SELECT 'Y')", DisplayType: domain.DisplayTypeYesNo, IsPrinted: true},
				{ID: 7, ColumnID: 7, ColumnName: "GrandTotal", DisplayType: domain.DisplayTypeAmount, FunctionColumn: "SUM(@)", IsGroupFunction: true, IsPrinted: true, SortNo: 2, IsDesc: true, IsSummarized: true},
			},
		}

		p, err := newPlanBuilder(t, "C_Invoice", metadata).build(context.Background(), format)

		require.NoError(t, err)
		assert.Equal(t, []string{
			"C_Invoice.C_Invoice_ID",
			"(SELECT AD_User.Name FROM AD_User WHERE AD_User.AD_User_ID=C_Invoice.SalesRep_ID) AS ASalesRep_ID",
			"C_Invoice.SalesRep_ID AS SalesRep_ID",
			"B.Name AS BName",
			"C_Invoice.DocStatus AS DocStatus",
			"COALESCE(C.City, '.') AS CAddress",
			"C_Invoice.C_Location_ID AS C_Location_ID",
			`(GrandTotal-PaidAmt) AS "DOpen"`,
			`' ' AS "Open"`,
			"(SELECT 'Y') AS IsPaid",
			"SUM(C_Invoice.GrandTotal) AS GrandTotal",
		}, p.selects)
		assert.Equal(t, []string{
			" LEFT OUTER JOIN AD_Ref_List B ON (C_Invoice.DocStatus=B.Value AND B.AD_Reference_ID=131)",
			" LEFT OUTER JOIN C_Location C ON (C_Invoice.C_Location_ID=C.C_Location_ID)",
		}, p.joins)
		assert.Equal(t, []string{
			"C_Invoice.C_Invoice_ID",
			"ASalesRep_ID", "C_Invoice.SalesRep_ID",
			"C_Invoice.SalesRep_ID",
			"B.Name", "C_Invoice.DocStatus",
			"C.City", "C_Invoice.C_Location_ID",
			"(SELECT 'Y')",
		}, p.groupBy)
		assert.Equal(t, []string{"C_Invoice.C_Invoice_ID", "GrandTotal DESC", "ASalesRep_ID"}, p.orderBy)
		assert.True(t, p.isGroupedBy)
		assert.False(t, p.hasLevelNo)

		require.Len(t, p.columns, 7)
		assert.True(t, p.columns[0].IsKey())
		assert.Equal(t, "ASalesRep_ID", p.columns[1].Alias)
		assert.Equal(t, "AD_User_ID", p.columns[1].ForeignColumnName)
		assert.Equal(t, "Open", p.columns[4].ColumnName)
		assert.Equal(t, domain.DisplayTypeText, p.columns[4].DisplayType)
		assert.True(t, p.columns[4].HasAlias())
		assert.True(t, p.group.isFunctionColumnFor(7, domain.FunctionSum))
	})

	t.Run("carries scripts as markers", func(t *testing.T) {
		format := &domain.PrintFormat{
			Items: []*domain.PrintFormatItem{
				{ID: 1, Name: "Twice", Script: "@COL/Qty@ * 2", FormatPattern: "#,##0", PrintFormatType: domain.PrintFormatTypeScript, IsPrinted: true},
			},
		}

		p, err := newPlanBuilder(t, "C_OrderLine", nil).build(context.Background(), format)

		require.NoError(t, err)
		assert.Equal(t, []string{`'@SCRIPT@COL/Qty@ * 2' AS "ATwice"`, `' ' AS "Twice"`}, p.selects)
		assert.True(t, p.columns[0].IsScript())
		assert.Equal(t, domain.DisplayTypeNumber, p.columns[0].DisplayType)
	})

	t.Run("substitutes context variables in virtual columns", func(t *testing.T) {
		b := newPlanBuilder(t, "C_Order", nil)
		b.vars["#AD_Client_ID"] = "11"
		format := &domain.PrintFormat{
			Items: []*domain.PrintFormatItem{
				{ID: 1, ColumnID: 1, ColumnName: "Pending", ColumnSQL: "@SQLFIND=(SELECT COUNT(*) FROM C_OrderLine WHERE AD_Client_ID=@#AD_Client_ID@)", DisplayType: domain.DisplayTypeInteger},
				{ID: 2, ColumnID: 2, ColumnName: "UIOnly", ColumnSQL: "@SQL=SELECT 1", DisplayType: domain.DisplayTypeInteger},
			},
		}

		p, err := b.build(context.Background(), format)

		require.NoError(t, err)
		assert.Equal(t, []string{
			"(SELECT COUNT(*) FROM C_OrderLine WHERE AD_Client_ID=11) AS Pending",
			"NULL AS UIOnly",
		}, p.selects)
	})

	t.Run("reads translation views in place of the base view", func(t *testing.T) {
		b := newPlanBuilder(t, "C_Invoice_vt", nil)
		b.baseTableName = "C_Invoice_v"
		format := &domain.PrintFormat{
			Items: []*domain.PrintFormatItem{
				{ID: 1, ColumnID: 1, ColumnName: "Lines", ColumnSQL: "(SELECT COUNT(*) FROM C_Invoice_v i WHERE i.C_Invoice_ID=C_Invoice_v.C_Invoice_ID)", DisplayType: domain.DisplayTypeInteger},
			},
		}

		p, err := b.build(context.Background(), format)

		require.NoError(t, err)
		assert.Equal(t, []string{"(SELECT COUNT(*) FROM C_Invoice_vt i WHERE i.C_Invoice_ID=C_Invoice_vt.C_Invoice_ID) AS Lines"}, p.selects)
	})

	t.Run("selects level and report line of report tables", func(t *testing.T) {
		format := &domain.PrintFormat{
			Items: []*domain.PrintFormatItem{
				{ID: 1, ColumnID: 1, ColumnName: "Name", DisplayType: domain.DisplayTypeString, IsPrinted: true},
			},
		}

		p, err := newPlanBuilder(t, "T_Report", nil).build(context.Background(), format)

		require.NoError(t, err)
		assert.True(t, p.hasLevelNo)
		assert.Equal(t, []string{"T_Report.Name", "LevelNo", "PA_ReportLine_ID"}, p.selects)
	})

	t.Run("falls back to the position for unresolved order columns", func(t *testing.T) {
		format := &domain.PrintFormat{
			Items: []*domain.PrintFormatItem{
				{ID: 1, ColumnID: 1, ColumnName: "Name", DisplayType: domain.DisplayTypeString, IsPrinted: true, SortNo: 2},
				{ID: 2, ColumnID: 99, SortNo: 1},
			},
		}

		p, err := newPlanBuilder(t, "C_BPartner", nil).build(context.Background(), format)

		require.NoError(t, err)
		assert.Equal(t, []string{"1", "C_BPartner.Name"}, p.orderBy)
		assert.Len(t, p.columns, 1)
	})

	t.Run("keeps the largest running total interval", func(t *testing.T) {
		format := &domain.PrintFormat{
			Items: []*domain.PrintFormatItem{
				{ID: 1, ColumnID: 1, ColumnName: "Qty", DisplayType: domain.DisplayTypeQuantity, IsRunningTotal: true, RunningTotalLines: 20},
				{ID: 2, ColumnID: 2, ColumnName: "Amt", DisplayType: domain.DisplayTypeAmount, IsRunningTotal: true, RunningTotalLines: 50},
			},
		}

		p, err := newPlanBuilder(t, "C_OrderLine", nil).build(context.Background(), format)

		require.NoError(t, err)
		assert.Equal(t, 50, p.runningTotalLines)
	})

	t.Run("returns error when nothing can be selected", func(t *testing.T) {
		format := &domain.PrintFormat{Items: []*domain.PrintFormatItem{{ID: 1}}}

		_, err := newPlanBuilder(t, "C_Order", nil).build(context.Background(), format)

		assert.ErrorIs(t, err, ErrNoColumns)
	})

	t.Run("returns error on a missing table reference", func(t *testing.T) {
		format := &domain.PrintFormat{
			Items: []*domain.PrintFormatItem{
				{ID: 1, ColumnID: 1, ColumnName: "SalesRep_ID", DisplayType: domain.DisplayTypeTable},
			},
		}

		_, err := newPlanBuilder(t, "C_Order", nil).build(context.Background(), format)

		assert.ErrorIs(t, err, ErrInvalidReference)
	})
}

func TestSelectStrategy(t *testing.T) {
	testCases := []struct {
		name     string
		item     domain.PrintFormatItem
		expected strategy
	}{
		{"key", domain.PrintFormatItem{IsKey: true, ColumnName: "C_Order_ID", DisplayType: domain.DisplayTypeID}, strategyKey},
		{"script", domain.PrintFormatItem{ColumnName: "Total", Script: "@SQL=1"}, strategyComputed},
		{"no column", domain.PrintFormatItem{Name: "Label"}, strategyComputed},
		{"table direct", domain.PrintFormatItem{ColumnName: "C_BPartner_ID", DisplayType: domain.DisplayTypeTableDir}, strategyLookupDirectory},
		{"search without reference", domain.PrintFormatItem{ColumnName: "M_Product_ID", DisplayType: domain.DisplayTypeSearch}, strategyLookupDirectory},
		{"search with reference", domain.PrintFormatItem{ColumnName: "SalesRep_ID", DisplayType: domain.DisplayTypeSearch, ReferenceValueID: 190}, strategyLookupTable},
		{"table", domain.PrintFormatItem{ColumnName: "SalesRep_ID", DisplayType: domain.DisplayTypeTable, ReferenceValueID: 190}, strategyLookupTable},
		{"list", domain.PrintFormatItem{ColumnName: "DocStatus", DisplayType: domain.DisplayTypeList, ReferenceValueID: 131}, strategyList},
		{"button with reference", domain.PrintFormatItem{ColumnName: "DocAction", DisplayType: domain.DisplayTypeButton, ReferenceValueID: 135}, strategyList},
		{"button without reference", domain.PrintFormatItem{ColumnName: "Processing", DisplayType: domain.DisplayTypeButton}, strategyPlain},
		{"locator", domain.PrintFormatItem{ColumnName: "M_Locator_ID", DisplayType: domain.DisplayTypeLocator}, strategySpecial},
		{"plain", domain.PrintFormatItem{ColumnName: "DocumentNo", DisplayType: domain.DisplayTypeString}, strategyPlain},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			item := tc.item
			assert.Equal(t, tc.expected, selectStrategy(&item))
		})
	}
}

func TestLookupBuilder(t *testing.T) {
	german := domain.Language{Code: "de_DE"}

	t.Run("joins identifiers of the referenced table", func(t *testing.T) {
		metadata := mocks.NewMetadataRepository(t)
		metadata.EXPECT().GetIdentifierColumns(mock.Anything, "C_Order").
			Return([]*domain.IdentifierColumn{{ColumnName: "DocumentNo"}, {ColumnName: "DateOrdered"}}, nil)
		b := &lookupBuilder{metadata: metadata, language: baseLanguage}

		sql, err := b.tableDirEmbed(context.Background(), "C_Order_ID", "C_InvoiceLine.C_Order_ID")

		require.NoError(t, err)
		assert.Equal(t, "SELECT COALESCE(CAST(C_Order.DocumentNo AS VARCHAR),'')||'_'||COALESCE(CAST(C_Order.DateOrdered AS VARCHAR),'')"+
			" FROM C_Order WHERE C_Order.C_Order_ID=C_InvoiceLine.C_Order_ID", sql)
	})

	t.Run("reads translated identifiers in the report language", func(t *testing.T) {
		metadata := mocks.NewMetadataRepository(t)
		metadata.EXPECT().GetIdentifierColumns(mock.Anything, "C_Country").
			Return([]*domain.IdentifierColumn{{ColumnName: "Name", IsTranslated: true}}, nil)
		b := &lookupBuilder{metadata: metadata, language: german}

		sql, err := b.tableDirEmbed(context.Background(), "C_Country_ID", "C_Location.C_Country_ID")

		require.NoError(t, err)
		assert.Equal(t, "SELECT C_Country_Trl.Name FROM C_Country INNER JOIN C_Country_Trl ON (C_Country.C_Country_ID=C_Country_Trl.C_Country_ID)"+
			" WHERE C_Country.C_Country_ID=C_Location.C_Country_ID AND C_Country_Trl.AD_Language='de_DE'", sql)
	})

	t.Run("returns empty without identifiers", func(t *testing.T) {
		metadata := mocks.NewMetadataRepository(t)
		metadata.EXPECT().GetIdentifierColumns(mock.Anything, "C_Charge").Return(nil, nil)
		b := &lookupBuilder{metadata: metadata, language: baseLanguage}

		sql, err := b.tableDirEmbed(context.Background(), "C_Charge_ID", "C_Order.C_Charge_ID")

		require.NoError(t, err)
		assert.Empty(t, sql)
	})

	t.Run("prefixes the search key when displayed", func(t *testing.T) {
		metadata := mocks.NewMetadataRepository(t)
		metadata.EXPECT().GetTableReference(mock.Anything, int64(231)).Return(&domain.TableReference{
			TableName:        "M_Product",
			KeyColumn:        "M_Product_ID",
			DisplayColumn:    "Name",
			IsValueDisplayed: true,
			IsTranslated:     true,
		}, nil)
		b := &lookupBuilder{metadata: metadata, language: german}

		sql, ref, err := b.tableEmbed(context.Background(), 231, "C_OrderLine.M_Product_ID")

		require.NoError(t, err)
		assert.Equal(t, "M_Product_ID", ref.KeyColumn)
		assert.Equal(t, "SELECT M_Product.Value||'-'||M_Product_Trl.Name FROM M_Product INNER JOIN M_Product_Trl ON (M_Product.M_Product_ID=M_Product_Trl.M_Product_ID)"+
			" WHERE M_Product.M_Product_ID=C_OrderLine.M_Product_ID AND M_Product_Trl.AD_Language='de_DE'", sql)
	})

	t.Run("translates list values", func(t *testing.T) {
		in := projectionInput{
			item:      &domain.PrintFormatItem{ColumnName: "DocStatus", DisplayType: domain.DisplayTypeList, ReferenceValueID: 131},
			tableName: "C_Order",
			synonym:   firstSynonym,
			lookups:   &lookupBuilder{language: german},
		}

		p, err := projectList(context.Background(), in)

		require.NoError(t, err)
		assert.Equal(t, []string{
			" LEFT OUTER JOIN AD_Ref_List XA ON (C_Order.DocStatus=XA.Value AND XA.AD_Reference_ID=131)",
			" LEFT OUTER JOIN AD_Ref_List_Trl A ON (XA.AD_Ref_List_ID=A.AD_Ref_List_ID AND A.AD_Language='de_DE')",
		}, p.joins)
		assert.Equal(t, synonym("B"), p.next)
	})
}
