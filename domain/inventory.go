package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	DocBaseTypeMaterialPhysicalInventory = "MMI"

	DocStatusDrafted   = "DR"
	DocStatusCompleted = "CO"
)

// Inventory is a physical inventory count document.
type Inventory struct {
	ID           int64     `json:"id" yaml:"id"`
	ClientID     int64     `json:"client_id" yaml:"client_id"`
	OrgID        int64     `json:"org_id" yaml:"org_id"`
	WarehouseID  int64     `json:"warehouse_id" yaml:"warehouse_id"`
	DocTypeID    int64     `json:"doc_type_id" yaml:"doc_type_id"`
	DocStatus    string    `json:"doc_status" yaml:"doc_status"`
	Description  *string   `json:"description,omitempty" yaml:"description,omitempty"`
	MovementDate time.Time `json:"movement_date" yaml:"movement_date"`
	IsProcessed  bool      `json:"is_processed" yaml:"is_processed"`
}

type InventoryLine struct {
	ID          int64           `json:"id" yaml:"id"`
	InventoryID int64           `json:"inventory_id" yaml:"inventory_id"`
	LocatorID   int64           `json:"locator_id" yaml:"locator_id"`
	ProductID   int64           `json:"product_id" yaml:"product_id"`
	QtyBook     decimal.Decimal `json:"qty_book" yaml:"qty_book"`
	QtyCount    decimal.Decimal `json:"qty_count" yaml:"qty_count"`
}
