package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/goto/folio/core/importer"
	"github.com/goto/folio/domain"
	"github.com/goto/folio/internal/store/postgres/model"
)

type OrganizationRepository struct {
	db *gorm.DB
}

func NewOrganizationRepository(db *gorm.DB) *OrganizationRepository {
	return &OrganizationRepository{db}
}

// GetByName returns the active organization of the client with that name.
func (r *OrganizationRepository) GetByName(ctx context.Context, clientID int64, name string) (*domain.Organization, error) {
	var m model.Organization
	err := conn(ctx, r.db).
		Where("ad_client_id = ? AND name = ? AND isactive = 'Y'", clientID, name).
		Order("ad_org_id").
		Take(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, importer.ErrOrganizationNotFound
		}
		return nil, err
	}
	return m.ToDomain(), nil
}

func (r *OrganizationRepository) Create(ctx context.Context, o *domain.Organization) error {
	m := new(model.Organization)
	m.FromDomain(o)

	if err := conn(ctx, r.db).Create(m).Error; err != nil {
		return err
	}

	*o = *m.ToDomain()
	return nil
}
