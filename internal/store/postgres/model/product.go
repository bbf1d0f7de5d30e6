package model

import (
	"time"

	"github.com/goto/folio/domain"
)

type Product struct {
	ID                int64     `gorm:"column:m_product_id;primaryKey"`
	ClientID          int64     `gorm:"column:ad_client_id"`
	OrgID             int64     `gorm:"column:ad_org_id"`
	Value             string    `gorm:"column:value"`
	Name              string    `gorm:"column:name"`
	ProductType       string    `gorm:"column:producttype"`
	ProductCategoryID int64     `gorm:"column:m_product_category_id"`
	UOMID             int64     `gorm:"column:c_uom_id"`
	TaxCategoryID     int64     `gorm:"column:c_taxcategory_id"`
	IsStocked         YesNo     `gorm:"column:isstocked"`
	IsSold            YesNo     `gorm:"column:issold"`
	IsPurchased       YesNo     `gorm:"column:ispurchased"`
	IsActive          YesNo     `gorm:"column:isactive"`
	CreatedAt         time.Time `gorm:"column:created;autoCreateTime"`
	UpdatedAt         time.Time `gorm:"column:updated;autoUpdateTime"`
}

func (Product) TableName() string {
	return "m_product"
}

func (m *Product) FromDomain(p *domain.Product) {
	m.ID = p.ID
	m.ClientID = p.ClientID
	m.OrgID = p.OrgID
	m.Value = p.Value
	m.Name = p.Name
	m.ProductType = p.ProductType.String()
	m.ProductCategoryID = p.ProductCategoryID
	m.UOMID = p.UOMID
	m.TaxCategoryID = p.TaxCategoryID
	m.IsStocked = YesNo(p.IsStocked)
	m.IsSold = YesNo(p.IsSold)
	m.IsPurchased = YesNo(p.IsPurchased)
	m.IsActive = YesNo(p.IsActive)
	m.CreatedAt = p.CreatedAt
	m.UpdatedAt = p.UpdatedAt
}

func (m *Product) ToDomain() *domain.Product {
	return &domain.Product{
		ID:                m.ID,
		ClientID:          m.ClientID,
		OrgID:             m.OrgID,
		Value:             m.Value,
		Name:              m.Name,
		ProductType:       domain.ProductType(m.ProductType),
		ProductCategoryID: m.ProductCategoryID,
		UOMID:             m.UOMID,
		TaxCategoryID:     m.TaxCategoryID,
		IsStocked:         bool(m.IsStocked),
		IsSold:            bool(m.IsSold),
		IsPurchased:       bool(m.IsPurchased),
		IsActive:          bool(m.IsActive),
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}
