package model

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"

	"github.com/goto/folio/domain"
)

type Inventory struct {
	ID           int64          `gorm:"column:m_inventory_id;primaryKey"`
	ClientID     int64          `gorm:"column:ad_client_id"`
	OrgID        int64          `gorm:"column:ad_org_id"`
	WarehouseID  int64          `gorm:"column:m_warehouse_id"`
	DocTypeID    int64          `gorm:"column:c_doctype_id"`
	DocStatus    string         `gorm:"column:docstatus"`
	Description  sql.NullString `gorm:"column:description"`
	MovementDate time.Time      `gorm:"column:movementdate"`
	Processed    YesNo          `gorm:"column:processed"`
}

func (Inventory) TableName() string {
	return "m_inventory"
}

func (m *Inventory) FromDomain(inv *domain.Inventory) {
	m.ID = inv.ID
	m.ClientID = inv.ClientID
	m.OrgID = inv.OrgID
	m.WarehouseID = inv.WarehouseID
	m.DocTypeID = inv.DocTypeID
	m.DocStatus = inv.DocStatus
	if inv.Description != nil {
		m.Description = sql.NullString{String: *inv.Description, Valid: true}
	}
	m.MovementDate = inv.MovementDate
	m.Processed = YesNo(inv.IsProcessed)
}

func (m *Inventory) ToDomain() *domain.Inventory {
	inv := &domain.Inventory{
		ID:           m.ID,
		ClientID:     m.ClientID,
		OrgID:        m.OrgID,
		WarehouseID:  m.WarehouseID,
		DocTypeID:    m.DocTypeID,
		DocStatus:    m.DocStatus,
		MovementDate: m.MovementDate,
		IsProcessed:  bool(m.Processed),
	}
	if m.Description.Valid {
		desc := m.Description.String
		inv.Description = &desc
	}
	return inv
}

type InventoryLine struct {
	ID          int64           `gorm:"column:m_inventoryline_id;primaryKey"`
	InventoryID int64           `gorm:"column:m_inventory_id"`
	LocatorID   int64           `gorm:"column:m_locator_id"`
	ProductID   int64           `gorm:"column:m_product_id"`
	QtyBook     decimal.Decimal `gorm:"column:qtybook"`
	QtyCount    decimal.Decimal `gorm:"column:qtycount"`
}

func (InventoryLine) TableName() string {
	return "m_inventoryline"
}

func (m *InventoryLine) FromDomain(l *domain.InventoryLine) {
	m.ID = l.ID
	m.InventoryID = l.InventoryID
	m.LocatorID = l.LocatorID
	m.ProductID = l.ProductID
	m.QtyBook = l.QtyBook
	m.QtyCount = l.QtyCount
}

func (m *InventoryLine) ToDomain() *domain.InventoryLine {
	return &domain.InventoryLine{
		ID:          m.ID,
		InventoryID: m.InventoryID,
		LocatorID:   m.LocatorID,
		ProductID:   m.ProductID,
		QtyBook:     m.QtyBook,
		QtyCount:    m.QtyCount,
	}
}
