package model

import (
	"time"

	"github.com/goto/folio/domain"
)

type Organization struct {
	ID        int64     `gorm:"column:ad_org_id;primaryKey"`
	ClientID  int64     `gorm:"column:ad_client_id"`
	Value     string    `gorm:"column:value"`
	Name      string    `gorm:"column:name"`
	IsActive  YesNo     `gorm:"column:isactive"`
	CreatedAt time.Time `gorm:"column:created;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated;autoUpdateTime"`
}

func (Organization) TableName() string {
	return "ad_org"
}

func (m *Organization) FromDomain(o *domain.Organization) {
	m.ID = o.ID
	m.ClientID = o.ClientID
	m.Value = o.Value
	m.Name = o.Name
	m.IsActive = YesNo(o.IsActive)
	m.CreatedAt = o.CreatedAt
	m.UpdatedAt = o.UpdatedAt
}

func (m *Organization) ToDomain() *domain.Organization {
	return &domain.Organization{
		ID:        m.ID,
		ClientID:  m.ClientID,
		Value:     m.Value,
		Name:      m.Name,
		IsActive:  bool(m.IsActive),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

type Warehouse struct {
	ID       int64  `gorm:"column:m_warehouse_id;primaryKey"`
	ClientID int64  `gorm:"column:ad_client_id"`
	OrgID    int64  `gorm:"column:ad_org_id"`
	Value    string `gorm:"column:value"`
	Name     string `gorm:"column:name"`
	IsActive YesNo  `gorm:"column:isactive"`
}

func (Warehouse) TableName() string {
	return "m_warehouse"
}

func (m *Warehouse) ToDomain() *domain.Warehouse {
	return &domain.Warehouse{
		ID:       m.ID,
		ClientID: m.ClientID,
		OrgID:    m.OrgID,
		Value:    m.Value,
		Name:     m.Name,
		IsActive: bool(m.IsActive),
	}
}

type Locator struct {
	ID          int64     `gorm:"column:m_locator_id;primaryKey"`
	ClientID    int64     `gorm:"column:ad_client_id"`
	OrgID       int64     `gorm:"column:ad_org_id"`
	WarehouseID int64     `gorm:"column:m_warehouse_id"`
	Value       string    `gorm:"column:value"`
	X           string    `gorm:"column:x"`
	Y           string    `gorm:"column:y"`
	Z           string    `gorm:"column:z"`
	IsDefault   YesNo     `gorm:"column:isdefault"`
	IsActive    YesNo     `gorm:"column:isactive"`
	CreatedAt   time.Time `gorm:"column:created;autoCreateTime"`
}

func (Locator) TableName() string {
	return "m_locator"
}

func (m *Locator) FromDomain(l *domain.Locator) {
	m.ID = l.ID
	m.ClientID = l.ClientID
	m.OrgID = l.OrgID
	m.WarehouseID = l.WarehouseID
	m.Value = l.Value
	m.X = l.X
	m.Y = l.Y
	m.Z = l.Z
	m.IsDefault = YesNo(l.IsDefault)
	m.IsActive = true
	m.CreatedAt = l.CreatedAt
}

func (m *Locator) ToDomain() *domain.Locator {
	return &domain.Locator{
		ID:          m.ID,
		ClientID:    m.ClientID,
		OrgID:       m.OrgID,
		WarehouseID: m.WarehouseID,
		Value:       m.Value,
		X:           m.X,
		Y:           m.Y,
		Z:           m.Z,
		IsDefault:   bool(m.IsDefault),
		CreatedAt:   m.CreatedAt,
	}
}
