package importer

import "github.com/goto/folio/domain"

// Config holds the defaults applied to requests that leave a value unset.
type Config struct {
	ClientID          int64 `mapstructure:"client_id" yaml:"client_id" default:"11"`
	OrgID             int64 `mapstructure:"org_id" yaml:"org_id"`
	WarehouseID       int64 `mapstructure:"warehouse_id" yaml:"warehouse_id" default:"103"`
	ProductCategoryID int64 `mapstructure:"product_category_id" yaml:"product_category_id" default:"105"`
	DefaultCurrencyID int64 `mapstructure:"default_currency_id" yaml:"default_currency_id" default:"102"`
}

func (c Config) currencyID() int64 {
	if c.DefaultCurrencyID > 0 {
		return c.DefaultCurrencyID
	}
	return domain.FallbackCurrencyID
}
