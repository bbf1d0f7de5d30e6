package jobs

import (
	"github.com/mitchellh/mapstructure"
)

type Type string

const (
	TypeImportProductsCSV Type = "import_products_csv"
)

type Config map[string]interface{}

// Decode reads the job config into v, a pointer to a struct with
// mapstructure tags. Durations and times may be given as strings.
func (c Config) Decode(v interface{}) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           v,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToTimeHookFunc("2006-01-02T15:04:05Z07:00"),
		),
	})
	if err != nil {
		return err
	}
	return decoder.Decode(c)
}

type Job struct {
	Enabled  bool   `mapstructure:"enabled"`
	Interval string `mapstructure:"interval"`
	Config   Config `mapstructure:"config"`
}
