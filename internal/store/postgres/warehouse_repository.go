package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/goto/folio/core/importer"
	"github.com/goto/folio/domain"
	"github.com/goto/folio/internal/store/postgres/model"
)

type WarehouseRepository struct {
	db *gorm.DB
}

func NewWarehouseRepository(db *gorm.DB) *WarehouseRepository {
	return &WarehouseRepository{db}
}

func (r *WarehouseRepository) GetByID(ctx context.Context, id int64) (*domain.Warehouse, error) {
	var m model.Warehouse
	if err := conn(ctx, r.db).Where("m_warehouse_id = ? AND isactive = 'Y'", id).Take(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, importer.ErrWarehouseNotFound
		}
		return nil, err
	}
	return m.ToDomain(), nil
}

// GetDefaultLocator returns the default locator of the warehouse, or its
// first active locator when none is flagged as default.
func (r *WarehouseRepository) GetDefaultLocator(ctx context.Context, warehouseID int64) (*domain.Locator, error) {
	var m model.Locator
	err := conn(ctx, r.db).
		Where("m_warehouse_id = ? AND isactive = 'Y'", warehouseID).
		Order("isdefault DESC, m_locator_id").
		Take(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, importer.ErrLocatorNotFound
		}
		return nil, err
	}
	return m.ToDomain(), nil
}

func (r *WarehouseRepository) CreateLocator(ctx context.Context, l *domain.Locator) error {
	m := new(model.Locator)
	m.FromDomain(l)

	if err := conn(ctx, r.db).Create(m).Error; err != nil {
		return err
	}

	*l = *m.ToDomain()
	return nil
}
