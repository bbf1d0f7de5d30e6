package report_test

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/goto/folio/core/report"
	"github.com/goto/folio/core/report/mocks"
	"github.com/goto/folio/domain"
	"github.com/goto/folio/pkg/log"
)

type ServiceTestSuite struct {
	suite.Suite
	mockMetadata *mocks.MetadataRepository
	mockAccess   *mocks.AccessFilter
	mockRows     *mocks.RowSource
	mockDialect  *mocks.Dialect
	db           *sql.DB
	dbMock       sqlmock.Sqlmock
	service      *report.Service
}

func TestService(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}

func (s *ServiceTestSuite) SetupTest() {
	s.setup(report.Config{
		MaxRows:     10,
		LoadTimeout: time.Minute,
		Language:    domain.Language{Code: "en_US", IsBase: true},
	})
}

func (s *ServiceTestSuite) setup(cfg report.Config) {
	db, dbMock, err := sqlmock.New()
	s.Require().NoError(err)
	s.db = db
	s.dbMock = dbMock

	s.mockMetadata = new(mocks.MetadataRepository)
	s.mockAccess = new(mocks.AccessFilter)
	s.mockRows = new(mocks.RowSource)
	s.mockDialect = new(mocks.Dialect)
	s.service = report.NewService(report.ServiceDeps{
		Metadata:     s.mockMetadata,
		AccessFilter: s.mockAccess,
		RowSource:    s.mockRows,
		Dialect:      s.mockDialect,
		Config:       cfg,
		Logger:       log.NewNoop(),
	})
}

func (s *ServiceTestSuite) TearDownTest() {
	s.db.Close()
}

func orderFormat() *domain.PrintFormat {
	return &domain.PrintFormat{
		ID:      1000,
		Name:    "Order Summary",
		TableID: 259,
		Items: []*domain.PrintFormatItem{
			{
				ID:          1,
				Name:        "Organization",
				ColumnID:    11,
				ColumnName:  "AD_Org_ID",
				DisplayType: domain.DisplayTypeTableDir,
				IsGroupBy:   true,
				IsPrinted:   true,
				SortNo:      10,
			},
			{
				ID:          2,
				Name:        "Document No",
				ColumnID:    12,
				ColumnName:  "DocumentNo",
				DisplayType: domain.DisplayTypeString,
				IsPrinted:   true,
				SortNo:      20,
			},
			{
				ID:           3,
				Name:         "Grand Total",
				ColumnID:     13,
				ColumnName:   "GrandTotal",
				DisplayType:  domain.DisplayTypeAmount,
				IsSummarized: true,
				IsPrinted:    true,
			},
		},
	}
}

const orderStatement = "SELECT (SELECT AD_Org.Name FROM AD_Org WHERE AD_Org.AD_Org_ID=C_Order.AD_Org_ID) AS AAD_Org_ID," +
	"C_Order.AD_Org_ID AS AD_Org_ID,C_Order.DocumentNo,C_Order.GrandTotal FROM C_Order" +
	" WHERE C_Order.DocStatus = 'CO' AND C_Order.AD_Client_ID IN (0,11)" +
	" ORDER BY AAD_Org_ID,C_Order.DocumentNo"

func (s *ServiceTestSuite) expectOrderMetadata() {
	s.mockMetadata.EXPECT().GetTableName(mock.Anything, int64(259)).Return("C_Order", nil)
	s.mockMetadata.EXPECT().GetIdentifierColumns(mock.Anything, "AD_Org").
		Return([]*domain.IdentifierColumn{{ColumnName: "Name"}}, nil)
	s.mockAccess.EXPECT().AddAccessSQL(mock.Anything, mock.Anything, "C_Order", mock.Anything).
		RunAndReturn(func(_ context.Context, stmt, _ string, _ domain.Principal) (string, error) {
			return stmt + " AND C_Order.AD_Client_ID IN (0,11)", nil
		})
}

func (s *ServiceTestSuite) expectRows(limit int, rows *sqlmock.Rows) {
	s.mockDialect.EXPECT().IsPagingSupported().Return(true)
	s.mockDialect.EXPECT().AddPagingSQL(mock.Anything, 1, limit).
		RunAndReturn(func(stmt string, _, end int) string {
			return fmt.Sprintf("%s LIMIT %d", stmt, end)
		})
	s.dbMock.ExpectQuery(regexp.QuoteMeta(orderStatement)).WillReturnRows(rows)
	s.mockRows.EXPECT().QueryRows(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, query string) (*sql.Rows, error) {
			return s.db.QueryContext(ctx, query)
		})
}

func orderRequest() report.GetPrintDataRequest {
	return report.GetPrintDataRequest{
		Format: orderFormat(),
		Query: &domain.Query{
			Restrictions: []*domain.Restriction{
				{ColumnName: "DocStatus", Operator: domain.OperatorEqual, Value: "CO"},
			},
			IsActive: true,
		},
		Principal: domain.Principal{ClientID: 11, RoleID: 102, UserID: 100},
	}
}

func orderRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"AAD_Org_ID", "AD_Org_ID", "DocumentNo", "GrandTotal"}).
		AddRow("HQ", 11, "SO-1", "100.50").
		AddRow("HQ", 11, "SO-2", "50").
		AddRow("Store", 12, "SO-3", "25")
}

func (s *ServiceTestSuite) requireDecimal(expected string, actual interface{}) {
	d, ok := actual.(decimal.Decimal)
	s.Require().True(ok, "expected decimal, got %T", actual)
	s.True(decimal.RequireFromString(expected).Equal(d), "expected %s, got %s", expected, d)
}

func (s *ServiceTestSuite) TestGetPrintData() {
	s.Run("should interleave group and total rows with the data rows", func() {
		s.SetupTest()
		s.expectOrderMetadata()
		s.expectRows(11, orderRows())

		pd, err := s.service.GetPrintData(context.Background(), orderRequest())

		s.Require().NoError(err)
		s.Equal("Order Summary", pd.Name)
		s.Equal("C_Order", pd.TableName)
		s.Equal(orderStatement, pd.SQL)
		s.Require().Equal(6, pd.RowCount())

		first := pd.Row(0)
		s.False(first.IsFunctionRow)
		s.Equal(domain.KeyNamePair{Key: 11, Name: "HQ"}, first.Elements[0].Value)
		s.Equal("SO-1", first.Elements[1].Value)
		s.requireDecimal("100.5", first.Elements[2].Value)

		hqTotal := pd.Row(2)
		s.True(hqTotal.IsFunctionRow)
		s.Require().Len(hqTotal.Elements, 2)
		s.Equal("HQ", hqTotal.Elements[0].Value)
		s.requireDecimal("150.5", hqTotal.Elements[1].Value)
		s.Equal(domain.DisplayTypeAmount, hqTotal.Elements[1].DisplayType)

		s.False(pd.Row(3).IsFunctionRow)

		storeTotal := pd.Row(4)
		s.True(storeTotal.IsFunctionRow)
		s.Equal("Store", storeTotal.Elements[0].Value)
		s.requireDecimal("25", storeTotal.Elements[1].Value)

		grandTotal := pd.Row(5)
		s.True(grandTotal.IsFunctionRow)
		s.Equal("Sum", grandTotal.Elements[0].Value)
		s.requireDecimal("175.5", grandTotal.Elements[1].Value)

		s.NoError(s.dbMock.ExpectationsWereMet())
	})

	s.Run("should only keep function rows in summary mode", func() {
		s.SetupTest()
		s.expectOrderMetadata()
		s.expectRows(11, orderRows())

		pd, err := s.service.GetPrintData(context.Background(), orderRequest(), report.Summary())

		s.Require().NoError(err)
		s.Require().Equal(3, pd.RowCount())
		for i := 0; i < pd.RowCount(); i++ {
			s.True(pd.Row(i).IsFunctionRow)
		}
		s.Equal("HQ", pd.Row(0).Elements[0].Value)
		s.Equal("Store", pd.Row(1).Elements[0].Value)
		s.Equal("Sum", pd.Row(2).Elements[0].Value)
	})

	s.Run("should fail without data when the row cap is exceeded", func() {
		s.setup(report.Config{MaxRows: 2, LoadTimeout: time.Minute})
		s.expectOrderMetadata()
		s.expectRows(3, orderRows())

		pd, err := s.service.GetPrintData(context.Background(), orderRequest())

		s.ErrorIs(err, report.ErrMaxRowsReached)
		s.Nil(pd)
	})

	s.Run("should use the client row cap when configured", func() {
		s.setup(report.Config{
			MaxRows:     10,
			LoadTimeout: time.Minute,
			Clients:     map[string]report.Limits{"11": {MaxRows: 1}},
		})
		s.expectOrderMetadata()
		s.expectRows(2, orderRows())

		pd, err := s.service.GetPrintData(context.Background(), orderRequest())

		s.ErrorIs(err, report.ErrMaxRowsReached)
		s.Nil(pd)
	})

	s.Run("should report a timeout when the statement is cancelled", func() {
		s.SetupTest()
		s.expectOrderMetadata()
		s.mockDialect.EXPECT().IsPagingSupported().Return(false)
		timeoutErr := errors.New("canceling statement due to statement timeout")
		s.mockRows.EXPECT().QueryRows(mock.Anything, orderStatement).Return(nil, timeoutErr)
		s.mockDialect.EXPECT().IsQueryTimeout(timeoutErr).Return(true)

		pd, err := s.service.GetPrintData(context.Background(), orderRequest())

		s.ErrorIs(err, report.ErrQueryTimeout)
		s.Nil(pd)
	})

	s.Run("should wrap statement failures", func() {
		s.SetupTest()
		s.expectOrderMetadata()
		s.mockDialect.EXPECT().IsPagingSupported().Return(false)
		dbErr := errors.New(`relation "c_order" does not exist`)
		s.mockRows.EXPECT().QueryRows(mock.Anything, orderStatement).Return(nil, dbErr)
		s.mockDialect.EXPECT().IsQueryTimeout(dbErr).Return(false)

		pd, err := s.service.GetPrintData(context.Background(), orderRequest())

		s.ErrorIs(err, report.ErrStatementFailed)
		s.Nil(pd)
	})

	s.Run("should load the print format by id", func() {
		s.SetupTest()
		s.mockMetadata.EXPECT().GetPrintFormat(mock.Anything, int64(1000)).Return(orderFormat(), nil)
		s.expectOrderMetadata()
		s.expectRows(11, sqlmock.NewRows([]string{"AAD_Org_ID", "AD_Org_ID", "DocumentNo", "GrandTotal"}))

		req := orderRequest()
		req.Format = nil
		req.PrintFormatID = 1000
		pd, err := s.service.GetPrintData(context.Background(), req)

		s.Require().NoError(err)
		s.Equal(0, pd.RowCount())
	})

	s.Run("should return error when no print format is given", func() {
		s.SetupTest()

		pd, err := s.service.GetPrintData(context.Background(), report.GetPrintDataRequest{})

		s.ErrorIs(err, report.ErrNoPrintFormat)
		s.Nil(pd)
	})

	s.Run("should return error when the table can't be resolved", func() {
		s.SetupTest()
		s.mockMetadata.EXPECT().GetTableName(mock.Anything, int64(259)).Return("", nil)

		pd, err := s.service.GetPrintData(context.Background(), orderRequest())

		s.ErrorIs(err, report.ErrTableNotFound)
		s.Nil(pd)
	})

	s.Run("should read the report view with its restriction and order", func() {
		s.SetupTest()
		format := &domain.PrintFormat{
			Name:         "Open Items",
			ReportViewID: 7,
			Items: []*domain.PrintFormatItem{
				{ID: 1, ColumnID: 21, ColumnName: "DocumentNo", DisplayType: domain.DisplayTypeString, IsPrinted: true},
			},
		}
		s.mockMetadata.EXPECT().GetReportView(mock.Anything, int64(7)).Return(&domain.ReportView{
			ID:            7,
			Name:          "RV_OpenItem",
			TableName:     "RV_OpenItem",
			WhereClause:   "AD_Org_ID=@AD_Org_ID@",
			OrderByClause: "DueDate",
		}, nil)
		s.mockDialect.EXPECT().IsPagingSupported().Return(false)
		expected := "SELECT RV_OpenItem.DocumentNo FROM RV_OpenItem WHERE (AD_Org_ID=11) ORDER BY DueDate"
		s.dbMock.ExpectQuery(regexp.QuoteMeta(expected)).
			WillReturnRows(sqlmock.NewRows([]string{"DocumentNo"}).AddRow("INV-1"))
		s.mockRows.EXPECT().QueryRows(mock.Anything, expected).
			RunAndReturn(func(ctx context.Context, query string) (*sql.Rows, error) {
				return s.db.QueryContext(ctx, query)
			})

		pd, err := s.service.GetPrintData(context.Background(), report.GetPrintDataRequest{
			Format:    format,
			Principal: domain.Principal{},
		}, report.WithContextVars(map[string]string{"AD_Org_ID": "11"}))

		s.Require().NoError(err)
		s.Equal("RV_OpenItem", pd.Name)
		s.Require().Equal(1, pd.RowCount())
		s.Equal("INV-1", pd.Row(0).Elements[0].Value)
	})
}
