package domain

import (
	"strings"
	"time"
)

type ProductType string

const (
	ProductTypeItem     ProductType = "I"
	ProductTypeService  ProductType = "S"
	ProductTypeExpense  ProductType = "E"
	ProductTypeResource ProductType = "R"
)

var productTypesByName = map[string]ProductType{
	"item":     ProductTypeItem,
	"service":  ProductTypeService,
	"expense":  ProductTypeExpense,
	"resource": ProductTypeResource,
}

// ParseProductType maps a case-insensitive product type name to its code.
func ParseProductType(name string) (ProductType, bool) {
	t, ok := productTypesByName[strings.ToLower(strings.TrimSpace(name))]
	return t, ok
}

func (t ProductType) String() string {
	return string(t)
}

type Product struct {
	ID                int64       `json:"id" yaml:"id"`
	ClientID          int64       `json:"client_id" yaml:"client_id"`
	OrgID             int64       `json:"org_id" yaml:"org_id"`
	Value             string      `json:"value" yaml:"value"`
	Name              string      `json:"name" yaml:"name"`
	ProductType       ProductType `json:"product_type" yaml:"product_type"`
	ProductCategoryID int64       `json:"product_category_id" yaml:"product_category_id"`
	UOMID             int64       `json:"uom_id" yaml:"uom_id"`
	TaxCategoryID     int64       `json:"tax_category_id" yaml:"tax_category_id"`
	IsStocked         bool        `json:"is_stocked" yaml:"is_stocked"`
	IsSold            bool        `json:"is_sold" yaml:"is_sold"`
	IsPurchased       bool        `json:"is_purchased" yaml:"is_purchased"`
	IsActive          bool        `json:"is_active" yaml:"is_active"`
	CreatedAt         time.Time   `json:"created_at,omitempty" yaml:"created_at,omitempty"`
	UpdatedAt         time.Time   `json:"updated_at,omitempty" yaml:"updated_at,omitempty"`
}
