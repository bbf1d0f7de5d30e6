package importer

import "errors"

var (
	ErrInvalidProductHeader = errors.New("invalid products file header, expected: organization,name,product_type,ref,init_stock")
	ErrInvalidPriceHeader   = errors.New("invalid prices file header, expected: ref,price_list,active,list_price,standard_price,limit_price")
	ErrEmptyProductFile     = errors.New("products file is empty")
	ErrEmptyPriceFile       = errors.New("prices file is empty")
	ErrInvalidRequest       = errors.New("invalid import request")

	ErrWarehouseNotFound   = errors.New("warehouse not found")
	ErrLocatorNotFound     = errors.New("locator not found")
	ErrDocTypeNotFound     = errors.New("physical inventory document type not found")
	ErrUOMNotFound         = errors.New("default unit of measure not found")
	ErrTaxCategoryNotFound = errors.New("default tax category not found")

	ErrOrganizationNotFound     = errors.New("organization not found")
	ErrProductNotFound          = errors.New("product not found")
	ErrPriceListNotFound        = errors.New("price list not found")
	ErrPriceListVersionNotFound = errors.New("price list version not found")
	ErrProductPriceNotFound     = errors.New("product price not found")
	ErrDuplicateProduct         = errors.New("product search key already used")
)
