package jobs_test

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/goto/folio/core/importer"
	"github.com/goto/folio/domain"
	"github.com/goto/folio/jobs"
	"github.com/goto/folio/jobs/mocks"
	"github.com/goto/folio/pkg/log"
)

type ImportProductsCSVTestSuite struct {
	suite.Suite
	mockImportService *mocks.ImportService
	dir               string
	productsFile      string
	pricesFile        string
}

func TestImportProductsCSV(t *testing.T) {
	suite.Run(t, new(ImportProductsCSVTestSuite))
}

func (s *ImportProductsCSVTestSuite) SetupTest() {
	s.mockImportService = new(mocks.ImportService)
	s.dir = s.T().TempDir()
	s.productsFile = filepath.Join(s.dir, "products.csv")
	s.pricesFile = filepath.Join(s.dir, "prices.csv")
	s.Require().NoError(os.WriteFile(s.productsFile, []byte("organization,name,product_type,ref,init_stock\nACME,Widget,item,W-100,10\n"), 0o600))
	s.Require().NoError(os.WriteFile(s.pricesFile, []byte("ref,price_list,active,list_price,standard_price,limit_price\nW-100,Retail,Y,12.5,11,9.99\n"), 0o600))
}

func (s *ImportProductsCSVTestSuite) handler() interface {
	ImportProductsCSV(context.Context, jobs.Config) error
} {
	return jobs.NewHandler(log.NewNoop(), s.mockImportService, validator.New())
}

func (s *ImportProductsCSVTestSuite) TestImportProductsCSV() {
	s.Run("should import the configured files", func() {
		s.SetupTest()
		s.mockImportService.EXPECT().
			Import(mock.Anything, mock.MatchedBy(func(req importer.ImportRequest) bool {
				content, err := io.ReadAll(req.Products)
				return err == nil && len(content) > 0 && req.WarehouseID == 103 && req.ClientID == 11
			})).
			Return(&importer.ImportResult{
				RunID:            "run-1",
				ProductsImported: 1,
				PricesImported:   1,
				SkippedRows:      []*domain.SkippedRow{{File: "prices", Line: 3, Reason: "not enough fields"}},
				Message:          "Import succeeded: 1 products and 1 prices imported.",
			}, nil).Once()

		err := s.handler().ImportProductsCSV(context.Background(), jobs.Config{
			"products_file": s.productsFile,
			"prices_file":   s.pricesFile,
			"client_id":     11,
			"warehouse_id":  "103",
		})

		s.NoError(err)
		s.FileExists(s.productsFile)
		s.mockImportService.AssertExpectations(s.T())
	})

	s.Run("should archive the files after import", func() {
		s.SetupTest()
		archive := filepath.Join(s.dir, "archive")
		s.Require().NoError(os.Mkdir(archive, 0o700))
		s.mockImportService.EXPECT().Import(mock.Anything, mock.Anything).
			Return(&importer.ImportResult{RunID: "run-2"}, nil).Once()

		err := s.handler().ImportProductsCSV(context.Background(), jobs.Config{
			"products_file": s.productsFile,
			"prices_file":   s.pricesFile,
			"archive_dir":   archive,
		})

		s.NoError(err)
		s.NoFileExists(s.productsFile)
		s.FileExists(filepath.Join(archive, "products.csv.run-2"))
		s.FileExists(filepath.Join(archive, "prices.csv.run-2"))
	})

	s.Run("should return import error and keep the files", func() {
		s.SetupTest()
		expectedError := errors.New("importing products: connection refused")
		s.mockImportService.EXPECT().Import(mock.Anything, mock.Anything).Return(nil, expectedError).Once()

		err := s.handler().ImportProductsCSV(context.Background(), jobs.Config{
			"products_file": s.productsFile,
			"prices_file":   s.pricesFile,
			"archive_dir":   s.dir,
		})

		s.ErrorIs(err, expectedError)
		s.FileExists(s.productsFile)
	})

	s.Run("should return error on invalid config", func() {
		testCases := []struct {
			name   string
			config jobs.Config
		}{
			{"missing files", jobs.Config{}},
			{"unknown key", jobs.Config{"products_file": "a.csv", "prices_file": "b.csv", "warehouse": 103}},
			{"missing products file", jobs.Config{"products_file": "does-not-exist.csv", "prices_file": "b.csv"}},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.SetupTest()

				err := s.handler().ImportProductsCSV(context.Background(), tc.config)

				s.Error(err)
				s.mockImportService.AssertNotCalled(s.T(), "Import", mock.Anything, mock.Anything)
			})
		}
	})
}
