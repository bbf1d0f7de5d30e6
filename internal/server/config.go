package server

import (
	"errors"
	"fmt"

	"github.com/goto/salt/config"
	"github.com/mcuadros/go-defaults"

	"github.com/goto/folio/core/importer"
	"github.com/goto/folio/core/report"
	"github.com/goto/folio/internal/store"
	"github.com/goto/folio/jobs"
	"github.com/goto/folio/pkg/opentelemetry"
)

type Config struct {
	LogLevel  string                 `mapstructure:"log_level" default:"info"`
	DB        store.Config           `mapstructure:"db"`
	Report    report.Config          `mapstructure:"report"`
	Importer  importer.Config        `mapstructure:"importer"`
	Jobs      map[jobs.Type]jobs.Job `mapstructure:"jobs"`
	Telemetry opentelemetry.Config   `mapstructure:"telemetry"`
}

// LoadConfig reads the config file, falling back to the defaults when the
// file does not exist.
func LoadConfig(configFile string) (Config, error) {
	var cfg Config
	loader := config.NewLoader(config.WithFile(configFile))

	if err := loader.Load(&cfg); err != nil {
		if errors.As(err, &config.ConfigFileNotFoundError{}) {
			fmt.Println(err)
			defaults.SetDefaults(&cfg)
			return cfg, nil
		}
		return Config{}, err
	}

	return cfg, nil
}
