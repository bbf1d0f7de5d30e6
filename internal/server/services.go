package server

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/goto/folio/core/importer"
	"github.com/goto/folio/core/report"
	"github.com/goto/folio/internal/access"
	"github.com/goto/folio/internal/store/postgres"
	"github.com/goto/folio/pkg/log"
)

type Services struct {
	Store          *postgres.Store
	ReportService  *report.Service
	ImportService  *importer.Service
	ImportRuns     *postgres.ImportRunRepository
	AccessRewriter *access.Rewriter
}

type ServiceDeps struct {
	Config    *Config
	Logger    log.Logger
	Validator *validator.Validate
}

// InitServices connects to the database and builds the services on top of
// it.
func InitServices(deps ServiceDeps) (*Services, error) {
	store, err := postgres.NewStore(deps.Config.DB)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}
	return NewServices(store, deps), nil
}

func NewServices(store *postgres.Store, deps ServiceDeps) *Services {
	db := store.DB()

	rewriter := access.NewRewriter(postgres.NewRoleRepository(db), deps.Logger)
	importRuns := postgres.NewImportRunRepository(db)

	reportService := report.NewService(report.ServiceDeps{
		Metadata:     postgres.NewMetadataRepository(db),
		AccessFilter: rewriter,
		RowSource:    report.NewRepository(db),
		Dialect:      postgres.NewDialect(),
		Config:       deps.Config.Report,
		Logger:       deps.Logger,
	})

	importService := importer.NewService(importer.ServiceDeps{
		Transactor:    store,
		Warehouses:    postgres.NewWarehouseRepository(db),
		MasterData:    postgres.NewMasterDataRepository(db),
		Organizations: postgres.NewOrganizationRepository(db),
		Products:      postgres.NewProductRepository(db),
		Inventories:   postgres.NewInventoryRepository(db),
		PriceLists:    postgres.NewPriceListRepository(db),
		ImportRuns:    importRuns,
		Config:        deps.Config.Importer,
		Validator:     deps.Validator,
		Logger:        deps.Logger,
	})

	return &Services{
		Store:          store,
		ReportService:  reportService,
		ImportService:  importService,
		ImportRuns:     importRuns,
		AccessRewriter: rewriter,
	}
}
