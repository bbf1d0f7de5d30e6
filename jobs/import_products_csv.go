package jobs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/goto/folio/core/importer"
)

type ImportProductsCSVConfig struct {
	ProductsFile      string `mapstructure:"products_file" validate:"required"`
	PricesFile        string `mapstructure:"prices_file" validate:"required"`
	ClientID          int64  `mapstructure:"client_id"`
	OrgID             int64  `mapstructure:"org_id"`
	WarehouseID       int64  `mapstructure:"warehouse_id"`
	ProductCategoryID int64  `mapstructure:"product_category_id"`
	// ArchiveDir receives both files after a successful import. Files are
	// left in place when empty.
	ArchiveDir string `mapstructure:"archive_dir"`
}

// ImportProductsCSV imports the configured products and prices files.
func (h *handler) ImportProductsCSV(ctx context.Context, c Config) error {
	var cfg ImportProductsCSVConfig
	if err := c.Decode(&cfg); err != nil {
		return fmt.Errorf("invalid config for %s job: %w", TypeImportProductsCSV, err)
	}
	if err := h.validator.Struct(cfg); err != nil {
		return fmt.Errorf("invalid config for %s job: %w", TypeImportProductsCSV, err)
	}

	products, err := os.Open(cfg.ProductsFile)
	if err != nil {
		return fmt.Errorf("opening products file: %w", err)
	}
	defer products.Close()

	prices, err := os.Open(cfg.PricesFile)
	if err != nil {
		return fmt.Errorf("opening prices file: %w", err)
	}
	defer prices.Close()

	h.logger.Info(ctx, "importing products", "products_file", cfg.ProductsFile, "prices_file", cfg.PricesFile)
	result, err := h.importService.Import(ctx, importer.ImportRequest{
		Products:          products,
		Prices:            prices,
		ClientID:          cfg.ClientID,
		OrgID:             cfg.OrgID,
		WarehouseID:       cfg.WarehouseID,
		ProductCategoryID: cfg.ProductCategoryID,
	})
	if err != nil {
		return err
	}

	for _, row := range result.SkippedRows {
		h.logger.Warn(ctx, "row skipped", "file", row.File, "line", row.Line, "reason", row.Reason)
	}
	h.logger.Info(ctx, result.Message, "import_run_id", result.RunID)

	if cfg.ArchiveDir == "" {
		return nil
	}
	for _, path := range []string{cfg.ProductsFile, cfg.PricesFile} {
		target := filepath.Join(cfg.ArchiveDir, fmt.Sprintf("%s.%s", filepath.Base(path), result.RunID))
		if err := os.Rename(path, target); err != nil {
			return fmt.Errorf("archiving %q: %w", path, err)
		}
	}
	return nil
}
