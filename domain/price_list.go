package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// FallbackCurrencyID is used for new price lists when no currency is
// configured for the client.
const FallbackCurrencyID int64 = 102

type PriceList struct {
	ID                int64     `json:"id" yaml:"id"`
	ClientID          int64     `json:"client_id" yaml:"client_id"`
	OrgID             int64     `json:"org_id" yaml:"org_id"`
	Name              string    `json:"name" yaml:"name"`
	CurrencyID        int64     `json:"currency_id" yaml:"currency_id"`
	IsSOPriceList     bool      `json:"is_so_price_list" yaml:"is_so_price_list"`
	IsDefault         bool      `json:"is_default" yaml:"is_default"`
	IsTaxIncluded     bool      `json:"is_tax_included" yaml:"is_tax_included"`
	EnforcePriceLimit bool      `json:"enforce_price_limit" yaml:"enforce_price_limit"`
	CreatedAt         time.Time `json:"created_at,omitempty" yaml:"created_at,omitempty"`
}

type PriceListVersion struct {
	ID               int64     `json:"id" yaml:"id"`
	ClientID         int64     `json:"client_id" yaml:"client_id"`
	OrgID            int64     `json:"org_id" yaml:"org_id"`
	PriceListID      int64     `json:"price_list_id" yaml:"price_list_id"`
	DiscountSchemaID *int64    `json:"discount_schema_id,omitempty" yaml:"discount_schema_id,omitempty"`
	Name             string    `json:"name" yaml:"name"`
	Description      *string   `json:"description,omitempty" yaml:"description,omitempty"`
	ValidFrom        time.Time `json:"valid_from" yaml:"valid_from"`
}

type ProductPrice struct {
	ID                 int64           `json:"id" yaml:"id"`
	PriceListVersionID int64           `json:"price_list_version_id" yaml:"price_list_version_id"`
	ProductID          int64           `json:"product_id" yaml:"product_id"`
	PriceList          decimal.Decimal `json:"price_list" yaml:"price_list"`
	PriceStd           decimal.Decimal `json:"price_std" yaml:"price_std"`
	PriceLimit         decimal.Decimal `json:"price_limit" yaml:"price_limit"`
	IsActive           bool            `json:"is_active" yaml:"is_active"`
}
