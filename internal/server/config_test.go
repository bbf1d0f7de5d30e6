package server_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/MakeNowJust/heredoc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goto/folio/core/report"
	"github.com/goto/folio/internal/server"
	"github.com/goto/folio/jobs"
)

func TestLoadConfig(t *testing.T) {
	t.Run("should read the config file", func(t *testing.T) {
		configFile := filepath.Join(t.TempDir(), "config.yaml")
		content := heredoc.Doc(`
			log_level: debug
			db:
			  host: db.internal
			  name: erp
			report:
			  max_rows: 5000
			  load_timeout: 30s
			  clients:
			    "11":
			      max_rows: 100
			importer:
			  warehouse_id: 104
			jobs:
			  import_products_csv:
			    enabled: true
			    interval: "0 2 * * *"
			    config:
			      products_file: /data/products.csv
			      prices_file: /data/prices.csv
		`)
		require.NoError(t, os.WriteFile(configFile, []byte(content), 0o600))

		cfg, err := server.LoadConfig(configFile)

		require.NoError(t, err)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "db.internal", cfg.DB.Host)
		assert.Equal(t, "erp", cfg.DB.Name)
		assert.Equal(t, "5432", cfg.DB.Port)
		assert.Equal(t, 5000, cfg.Report.MaxRows)
		assert.Equal(t, 30*time.Second, cfg.Report.LoadTimeout)
		assert.Equal(t, int64(104), cfg.Importer.WarehouseID)
		assert.Equal(t, int64(105), cfg.Importer.ProductCategoryID)

		limits, err := cfg.Report.LimitsFor(11)
		require.NoError(t, err)
		assert.Equal(t, 100, limits.MaxRows)
		assert.Equal(t, 30*time.Second, limits.LoadTimeout)

		job := cfg.Jobs[jobs.TypeImportProductsCSV]
		assert.True(t, job.Enabled)
		assert.Equal(t, "/data/products.csv", job.Config["products_file"])
	})

	t.Run("should use defaults when the file is missing", func(t *testing.T) {
		cfg, err := server.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))

		require.NoError(t, err)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "folio", cfg.DB.Name)
		assert.Equal(t, report.DefaultMaxRows, cfg.Report.MaxRows)
		assert.Equal(t, int64(103), cfg.Importer.WarehouseID)
	})
}
