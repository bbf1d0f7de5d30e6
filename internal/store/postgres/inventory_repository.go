package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/goto/folio/domain"
	"github.com/goto/folio/internal/store/postgres/model"
)

type InventoryRepository struct {
	db *gorm.DB
}

func NewInventoryRepository(db *gorm.DB) *InventoryRepository {
	return &InventoryRepository{db}
}

func (r *InventoryRepository) Create(ctx context.Context, inv *domain.Inventory) error {
	m := new(model.Inventory)
	m.FromDomain(inv)

	if err := conn(ctx, r.db).Create(m).Error; err != nil {
		return err
	}

	*inv = *m.ToDomain()
	return nil
}

func (r *InventoryRepository) AddLine(ctx context.Context, line *domain.InventoryLine) error {
	m := new(model.InventoryLine)
	m.FromDomain(line)

	if err := conn(ctx, r.db).Create(m).Error; err != nil {
		return err
	}

	*line = *m.ToDomain()
	return nil
}

// Complete marks a drafted inventory as completed and processed.
func (r *InventoryRepository) Complete(ctx context.Context, id int64) error {
	result := conn(ctx, r.db).Model(&model.Inventory{}).
		Where("m_inventory_id = ? AND docstatus = ?", id, domain.DocStatusDrafted).
		Updates(map[string]interface{}{
			"docstatus": domain.DocStatusCompleted,
			"processed": model.YesNo(true),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("inventory %d is not a drafted document", id)
	}
	return nil
}

// Delete removes the inventory with its lines.
func (r *InventoryRepository) Delete(ctx context.Context, id int64) error {
	return conn(ctx, r.db).Where("m_inventory_id = ?", id).Delete(&model.Inventory{}).Error
}
