package cli

import (
	"context"
	"fmt"

	"github.com/MakeNowJust/heredoc"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"

	"github.com/goto/folio/internal/server"
	"github.com/goto/folio/pkg/log"
	"github.com/goto/folio/pkg/opentelemetry"
)

func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "folio <command> <subcommand> [flags]",
		Short: "Print format data engine and product importer",
		Long: heredoc.Doc(`
			Load report data from print formats and import products
			and prices from CSV files.
		`),
		SilenceUsage: true,
		Example: heredoc.Doc(`
			$ folio report print --format-id 100
			$ folio import products --products products.csv --prices prices.csv
			$ folio job run import_products_csv
			$ folio migrate
		`),
	}

	cmd.AddCommand(
		ReportCmd(),
		ImportCmd(),
		JobCmd(),
		MigrateCmd(),
	)

	cmd.PersistentFlags().StringP("config", "c", "./config.yaml", "Config file path")
	cmd.MarkPersistentFlagFilename("config")

	return cmd
}

// app holds what every command needs once the config is loaded.
type app struct {
	config   server.Config
	logger   log.Logger
	services *server.Services
	shutdown func() error
}

func (a *app) Close() {
	if a.shutdown != nil {
		if err := a.shutdown(); err != nil {
			a.logger.Error(context.Background(), "failed to shut down telemetry", "error", err)
		}
	}
	if a.services != nil {
		if err := a.services.Store.Close(); err != nil {
			a.logger.Error(context.Background(), "failed to close database", "error", err)
		}
	}
}

func loadConfig(cmd *cobra.Command) (server.Config, error) {
	configFile, err := cmd.Flags().GetString("config")
	if err != nil {
		return server.Config{}, fmt.Errorf("getting config flag value: %w", err)
	}
	config, err := server.LoadConfig(configFile)
	if err != nil {
		return server.Config{}, fmt.Errorf("loading config: %w", err)
	}
	return config, nil
}

func newApp(cmd *cobra.Command) (*app, error) {
	config, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	logger := log.NewCtxLogger(config.LogLevel, nil)
	shutdown, err := opentelemetry.Init(cmd.Context(), config.Telemetry)
	if err != nil {
		return nil, fmt.Errorf("initializing telemetry: %w", err)
	}
	config.DB.Tracing = config.DB.Tracing || config.Telemetry.Enabled

	services, err := server.InitServices(server.ServiceDeps{
		Config:    &config,
		Logger:    logger,
		Validator: validator.New(),
	})
	if err != nil {
		shutdown() //nolint:errcheck
		return nil, fmt.Errorf("initializing services: %w", err)
	}

	return &app{
		config:   config,
		logger:   logger,
		services: services,
		shutdown: shutdown,
	}, nil
}
