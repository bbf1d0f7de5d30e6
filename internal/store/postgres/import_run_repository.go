package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/goto/folio/domain"
	"github.com/goto/folio/internal/store/postgres/model"
)

type ImportRunRepository struct {
	db *gorm.DB
}

func NewImportRunRepository(db *gorm.DB) *ImportRunRepository {
	return &ImportRunRepository{db}
}

func (r *ImportRunRepository) Create(ctx context.Context, run *domain.ImportRun) error {
	m := new(model.ImportRun)
	if err := m.FromDomain(run); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(m).Error
}

// Find returns runs, the most recent first.
func (r *ImportRunRepository) Find(ctx context.Context, filter domain.ListImportRunsFilter) ([]*domain.ImportRun, error) {
	db := r.db.WithContext(ctx)
	if filter.ClientID != 0 {
		db = db.Where(`"client_id" = ?`, filter.ClientID)
	}
	if filter.Size > 0 {
		db = db.Limit(filter.Size)
	}
	if filter.Offset > 0 {
		db = db.Offset(filter.Offset)
	}

	var models []*model.ImportRun
	if err := db.Order(`"started_at" DESC`).Find(&models).Error; err != nil {
		return nil, err
	}

	runs := []*domain.ImportRun{}
	for _, m := range models {
		run, err := m.ToDomain()
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, nil
}
