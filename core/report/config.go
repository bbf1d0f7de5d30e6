package report

import (
	"time"

	"github.com/imdario/mergo"
	"github.com/spf13/cast"

	"github.com/goto/folio/domain"
)

const (
	DefaultMaxRows     = 100000
	DefaultLoadTimeout = 120 * time.Second
)

// Limits bound a single report load. Zero disables a limit.
type Limits struct {
	MaxRows     int           `mapstructure:"max_rows" yaml:"max_rows"`
	LoadTimeout time.Duration `mapstructure:"load_timeout" yaml:"load_timeout"`
}

type Config struct {
	MaxRows     int           `mapstructure:"max_rows" yaml:"max_rows" default:"100000"`
	LoadTimeout time.Duration `mapstructure:"load_timeout" yaml:"load_timeout" default:"120s"`
	// Clients overrides the limits per client id.
	Clients  map[string]Limits `mapstructure:"clients" yaml:"clients"`
	Language domain.Language   `mapstructure:"language" yaml:"language"`
}

// LimitsFor resolves the limits of a client, falling back to the global
// limits for every value the client leaves unset.
func (c Config) LimitsFor(clientID int64) (Limits, error) {
	limits := c.Clients[cast.ToString(clientID)]
	if err := mergo.Merge(&limits, Limits{MaxRows: c.MaxRows, LoadTimeout: c.LoadTimeout}); err != nil {
		return Limits{}, err
	}
	return limits, nil
}
