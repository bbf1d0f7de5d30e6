package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/goto/folio/core/importer"
	"github.com/goto/folio/domain"
	"github.com/goto/folio/internal/store/postgres/model"
)

type PriceListRepository struct {
	db *gorm.DB
}

func NewPriceListRepository(db *gorm.DB) *PriceListRepository {
	return &PriceListRepository{db}
}

func (r *PriceListRepository) GetByName(ctx context.Context, clientID int64, name string) (*domain.PriceList, error) {
	var m model.PriceList
	err := conn(ctx, r.db).
		Where("ad_client_id = ? AND name = ?", clientID, name).
		Order("m_pricelist_id").
		Take(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, importer.ErrPriceListNotFound
		}
		return nil, err
	}
	return m.ToDomain(), nil
}

func (r *PriceListRepository) Create(ctx context.Context, pl *domain.PriceList) error {
	m := new(model.PriceList)
	m.FromDomain(pl)

	if err := conn(ctx, r.db).Create(m).Error; err != nil {
		return err
	}

	*pl = *m.ToDomain()
	return nil
}

// GetLatestVersion returns the version of the price list valid from the
// latest date.
func (r *PriceListRepository) GetLatestVersion(ctx context.Context, clientID, priceListID int64) (*domain.PriceListVersion, error) {
	var m model.PriceListVersion
	err := conn(ctx, r.db).
		Where("ad_client_id = ? AND m_pricelist_id = ?", clientID, priceListID).
		Order("validfrom DESC, m_pricelist_version_id DESC").
		Take(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, importer.ErrPriceListVersionNotFound
		}
		return nil, err
	}
	return m.ToDomain(), nil
}

func (r *PriceListRepository) CreateVersion(ctx context.Context, v *domain.PriceListVersion) error {
	m := new(model.PriceListVersion)
	m.FromDomain(v)

	if err := conn(ctx, r.db).Create(m).Error; err != nil {
		return err
	}

	*v = *m.ToDomain()
	return nil
}

func (r *PriceListRepository) GetProductPrice(ctx context.Context, versionID, productID int64) (*domain.ProductPrice, error) {
	var m model.ProductPrice
	err := conn(ctx, r.db).
		Where("m_pricelist_version_id = ? AND m_product_id = ?", versionID, productID).
		Take(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, importer.ErrProductPriceNotFound
		}
		return nil, err
	}
	return m.ToDomain(), nil
}

// SaveProductPrice inserts the price when it has no id yet, otherwise
// updates it.
func (r *PriceListRepository) SaveProductPrice(ctx context.Context, pp *domain.ProductPrice) error {
	m := new(model.ProductPrice)
	m.FromDomain(pp)

	db := conn(ctx, r.db)
	var err error
	if m.ID == 0 {
		err = db.Create(m).Error
	} else {
		err = db.Save(m).Error
	}
	if err != nil {
		return err
	}

	*pp = *m.ToDomain()
	return nil
}
