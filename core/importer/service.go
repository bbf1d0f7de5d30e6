package importer

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/goto/folio/domain"
	"github.com/goto/folio/pkg/log"
)

const instrumentationName = "github.com/goto/folio/core/importer"

var TimeNow = time.Now

//go:generate mockery --name=transactor --exported --with-expecter
type transactor interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

//go:generate mockery --name=warehouseRepository --exported --with-expecter
type warehouseRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Warehouse, error)
	GetDefaultLocator(ctx context.Context, warehouseID int64) (*domain.Locator, error)
	CreateLocator(ctx context.Context, l *domain.Locator) error
}

// masterDataRepository resolves reference ids. A zero id means none was
// found.
//
//go:generate mockery --name=masterDataRepository --exported --with-expecter
type masterDataRepository interface {
	GetDocTypeID(ctx context.Context, clientID int64, docBaseType string) (int64, error)
	GetDefaultUOMID(ctx context.Context, clientID int64) (int64, error)
	GetDefaultTaxCategoryID(ctx context.Context, clientID int64) (int64, error)
	GetCurrencyID(ctx context.Context, clientID int64) (int64, error)
	GetDiscountSchemaID(ctx context.Context, clientID int64) (int64, error)
}

//go:generate mockery --name=organizationRepository --exported --with-expecter
type organizationRepository interface {
	GetByName(ctx context.Context, clientID int64, name string) (*domain.Organization, error)
	Create(ctx context.Context, o *domain.Organization) error
}

//go:generate mockery --name=productRepository --exported --with-expecter
type productRepository interface {
	GetByValue(ctx context.Context, clientID int64, value string) (*domain.Product, error)
	Save(ctx context.Context, p *domain.Product) error
}

//go:generate mockery --name=inventoryRepository --exported --with-expecter
type inventoryRepository interface {
	Create(ctx context.Context, inv *domain.Inventory) error
	AddLine(ctx context.Context, line *domain.InventoryLine) error
	Complete(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
}

//go:generate mockery --name=priceListRepository --exported --with-expecter
type priceListRepository interface {
	GetByName(ctx context.Context, clientID int64, name string) (*domain.PriceList, error)
	Create(ctx context.Context, pl *domain.PriceList) error
	GetLatestVersion(ctx context.Context, clientID, priceListID int64) (*domain.PriceListVersion, error)
	CreateVersion(ctx context.Context, v *domain.PriceListVersion) error
	GetProductPrice(ctx context.Context, versionID, productID int64) (*domain.ProductPrice, error)
	SaveProductPrice(ctx context.Context, pp *domain.ProductPrice) error
}

//go:generate mockery --name=importRunRepository --exported --with-expecter
type importRunRepository interface {
	Create(ctx context.Context, run *domain.ImportRun) error
}

// ImportRequest names the two input files and where their content goes.
// Zero ids are taken from the service config.
type ImportRequest struct {
	Products          io.Reader `validate:"required"`
	Prices            io.Reader `validate:"required"`
	ClientID          int64     `validate:"gte=0"`
	OrgID             int64     `validate:"gte=0"`
	WarehouseID       int64     `validate:"gt=0"`
	ProductCategoryID int64     `validate:"gt=0"`
}

type ImportResult struct {
	RunID            string
	ProductsImported int
	PricesImported   int
	SkippedRows      []*domain.SkippedRow
	Message          string
}

type Service struct {
	transactor    transactor
	warehouses    warehouseRepository
	masterData    masterDataRepository
	organizations organizationRepository
	products      productRepository
	inventories   inventoryRepository
	priceLists    priceListRepository
	importRuns    importRunRepository

	config    Config
	validator *validator.Validate
	logger    log.Logger
	tracer    trace.Tracer
}

type ServiceDeps struct {
	Transactor    transactor
	Warehouses    warehouseRepository
	MasterData    masterDataRepository
	Organizations organizationRepository
	Products      productRepository
	Inventories   inventoryRepository
	PriceLists    priceListRepository
	ImportRuns    importRunRepository

	Config    Config
	Validator *validator.Validate
	Logger    log.Logger
}

func NewService(deps ServiceDeps) *Service {
	return &Service{
		transactor:    deps.Transactor,
		warehouses:    deps.Warehouses,
		masterData:    deps.MasterData,
		organizations: deps.Organizations,
		products:      deps.Products,
		inventories:   deps.Inventories,
		priceLists:    deps.PriceLists,
		importRuns:    deps.ImportRuns,

		config:    deps.Config,
		validator: deps.Validator,
		logger:    deps.Logger,
		tracer:    otel.Tracer(instrumentationName),
	}
}

// Import reads the products and prices files and writes their content in a
// single transaction. Unusable rows are skipped, any persistence error rolls
// the whole import back.
func (s *Service) Import(ctx context.Context, req ImportRequest) (*ImportResult, error) {
	ctx, span := s.tracer.Start(ctx, "importer.Import")
	defer span.End()

	s.applyDefaults(&req)
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidRequest, err)
	}

	productRecords, priceRecords, err := s.readFiles(ctx, req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	run := &domain.ImportRun{
		ID:          uuid.New().String(),
		ClientID:    req.ClientID,
		WarehouseID: req.WarehouseID,
		StartedAt:   TimeNow(),
	}
	if mdCtx, err := log.WithMetadata(ctx, map[string]interface{}{"import_run_id": run.ID}); err == nil {
		ctx = mdCtx
	}
	span.SetAttributes(attribute.String("import.run_id", run.ID))

	imp := &importRun{
		Service: s,
		req:     req,
		run:     run,
	}
	err = s.transactor.WithTransaction(ctx, func(ctx context.Context) error {
		return imp.execute(ctx, productRecords, priceRecords)
	})
	run.FinishedAt = TimeNow()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.logger.Error(ctx, "import failed, changes rolled back", "error", err)

		run.Status = domain.ImportRunStatusFailed
		run.Message = err.Error()
		run.ProductsImported, run.PricesImported = 0, 0
		s.saveRun(ctx, run)
		return nil, fmt.Errorf("importing products: %w", err)
	}

	run.Status = domain.ImportRunStatusSucceeded
	run.Message = fmt.Sprintf("Import succeeded: %d products and %d prices imported.", run.ProductsImported, run.PricesImported)
	s.saveRun(ctx, run)
	s.logger.Info(ctx, "import completed",
		"products", run.ProductsImported,
		"prices", run.PricesImported,
		"skipped", len(run.SkippedRows),
	)
	span.SetAttributes(
		attribute.Int("import.products", run.ProductsImported),
		attribute.Int("import.prices", run.PricesImported),
	)

	return &ImportResult{
		RunID:            run.ID,
		ProductsImported: run.ProductsImported,
		PricesImported:   run.PricesImported,
		SkippedRows:      run.SkippedRows,
		Message:          run.Message,
	}, nil
}

func (s *Service) applyDefaults(req *ImportRequest) {
	if req.ClientID == 0 {
		req.ClientID = s.config.ClientID
	}
	if req.OrgID == 0 {
		req.OrgID = s.config.OrgID
	}
	if req.WarehouseID == 0 {
		req.WarehouseID = s.config.WarehouseID
	}
	if req.ProductCategoryID == 0 {
		req.ProductCategoryID = s.config.ProductCategoryID
	}
}

// readFiles reads both files concurrently and checks their headers.
func (s *Service) readFiles(ctx context.Context, req ImportRequest) ([]record, []record, error) {
	var productHead, priceHead []string
	var productRecords, priceRecords []record

	eg, _ := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		productHead, productRecords, err = readCSV(req.Products)
		if err != nil {
			return fmt.Errorf("%s file: %w", productsFile, err)
		}
		return nil
	})
	eg.Go(func() error {
		var err error
		priceHead, priceRecords, err = readCSV(req.Prices)
		if err != nil {
			return fmt.Errorf("%s file: %w", pricesFile, err)
		}
		return nil
	})
	if err := eg.Wait(); err != nil {
		return nil, nil, err
	}

	if productHead == nil {
		return nil, nil, ErrEmptyProductFile
	}
	if priceHead == nil {
		return nil, nil, ErrEmptyPriceFile
	}
	if !hasHeader(productHead, productHeader) {
		return nil, nil, ErrInvalidProductHeader
	}
	if !hasHeader(priceHead, priceHeader) {
		return nil, nil, ErrInvalidPriceHeader
	}
	return productRecords, priceRecords, nil
}

func (s *Service) saveRun(ctx context.Context, run *domain.ImportRun) {
	if err := s.importRuns.Create(ctx, run); err != nil {
		s.logger.Error(ctx, "failed to record import run", "error", err)
	}
}
