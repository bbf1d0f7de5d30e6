package model

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"

	"github.com/goto/folio/domain"
)

type PriceList struct {
	ID                int64     `gorm:"column:m_pricelist_id;primaryKey"`
	ClientID          int64     `gorm:"column:ad_client_id"`
	OrgID             int64     `gorm:"column:ad_org_id"`
	Name              string    `gorm:"column:name"`
	CurrencyID        int64     `gorm:"column:c_currency_id"`
	IsSOPriceList     YesNo     `gorm:"column:issopricelist"`
	IsDefault         YesNo     `gorm:"column:isdefault"`
	IsTaxIncluded     YesNo     `gorm:"column:istaxincluded"`
	EnforcePriceLimit YesNo     `gorm:"column:enforcepricelimit"`
	IsActive          YesNo     `gorm:"column:isactive"`
	CreatedAt         time.Time `gorm:"column:created;autoCreateTime"`
}

func (PriceList) TableName() string {
	return "m_pricelist"
}

func (m *PriceList) FromDomain(pl *domain.PriceList) {
	m.ID = pl.ID
	m.ClientID = pl.ClientID
	m.OrgID = pl.OrgID
	m.Name = pl.Name
	m.CurrencyID = pl.CurrencyID
	m.IsSOPriceList = YesNo(pl.IsSOPriceList)
	m.IsDefault = YesNo(pl.IsDefault)
	m.IsTaxIncluded = YesNo(pl.IsTaxIncluded)
	m.EnforcePriceLimit = YesNo(pl.EnforcePriceLimit)
	m.IsActive = true
	m.CreatedAt = pl.CreatedAt
}

func (m *PriceList) ToDomain() *domain.PriceList {
	return &domain.PriceList{
		ID:                m.ID,
		ClientID:          m.ClientID,
		OrgID:             m.OrgID,
		Name:              m.Name,
		CurrencyID:        m.CurrencyID,
		IsSOPriceList:     bool(m.IsSOPriceList),
		IsDefault:         bool(m.IsDefault),
		IsTaxIncluded:     bool(m.IsTaxIncluded),
		EnforcePriceLimit: bool(m.EnforcePriceLimit),
		CreatedAt:         m.CreatedAt,
	}
}

type PriceListVersion struct {
	ID               int64          `gorm:"column:m_pricelist_version_id;primaryKey"`
	ClientID         int64          `gorm:"column:ad_client_id"`
	OrgID            int64          `gorm:"column:ad_org_id"`
	PriceListID      int64          `gorm:"column:m_pricelist_id"`
	DiscountSchemaID sql.NullInt64  `gorm:"column:m_discountschema_id"`
	Name             string         `gorm:"column:name"`
	Description      sql.NullString `gorm:"column:description"`
	ValidFrom        time.Time      `gorm:"column:validfrom"`
	IsActive         YesNo          `gorm:"column:isactive"`
}

func (PriceListVersion) TableName() string {
	return "m_pricelist_version"
}

func (m *PriceListVersion) FromDomain(v *domain.PriceListVersion) {
	m.ID = v.ID
	m.ClientID = v.ClientID
	m.OrgID = v.OrgID
	m.PriceListID = v.PriceListID
	if v.DiscountSchemaID != nil {
		m.DiscountSchemaID = sql.NullInt64{Int64: *v.DiscountSchemaID, Valid: true}
	}
	m.Name = v.Name
	if v.Description != nil {
		m.Description = sql.NullString{String: *v.Description, Valid: true}
	}
	m.ValidFrom = v.ValidFrom
	m.IsActive = true
}

func (m *PriceListVersion) ToDomain() *domain.PriceListVersion {
	v := &domain.PriceListVersion{
		ID:          m.ID,
		ClientID:    m.ClientID,
		OrgID:       m.OrgID,
		PriceListID: m.PriceListID,
		Name:        m.Name,
		ValidFrom:   m.ValidFrom,
	}
	if m.DiscountSchemaID.Valid {
		id := m.DiscountSchemaID.Int64
		v.DiscountSchemaID = &id
	}
	if m.Description.Valid {
		desc := m.Description.String
		v.Description = &desc
	}
	return v
}

type ProductPrice struct {
	ID                 int64           `gorm:"column:m_productprice_id;primaryKey"`
	PriceListVersionID int64           `gorm:"column:m_pricelist_version_id"`
	ProductID          int64           `gorm:"column:m_product_id"`
	PriceList          decimal.Decimal `gorm:"column:pricelist"`
	PriceStd           decimal.Decimal `gorm:"column:pricestd"`
	PriceLimit         decimal.Decimal `gorm:"column:pricelimit"`
	IsActive           YesNo           `gorm:"column:isactive"`
}

func (ProductPrice) TableName() string {
	return "m_productprice"
}

func (m *ProductPrice) FromDomain(pp *domain.ProductPrice) {
	m.ID = pp.ID
	m.PriceListVersionID = pp.PriceListVersionID
	m.ProductID = pp.ProductID
	m.PriceList = pp.PriceList
	m.PriceStd = pp.PriceStd
	m.PriceLimit = pp.PriceLimit
	m.IsActive = YesNo(pp.IsActive)
}

func (m *ProductPrice) ToDomain() *domain.ProductPrice {
	return &domain.ProductPrice{
		ID:                 m.ID,
		PriceListVersionID: m.PriceListVersionID,
		ProductID:          m.ProductID,
		PriceList:          m.PriceList,
		PriceStd:           m.PriceStd,
		PriceLimit:         m.PriceLimit,
		IsActive:           bool(m.IsActive),
	}
}
