package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/goto/folio/core/importer"
	"github.com/goto/folio/domain"
	"github.com/goto/folio/internal/store/postgres/model"
)

type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db}
}

func (r *ProductRepository) GetByValue(ctx context.Context, clientID int64, value string) (*domain.Product, error) {
	var m model.Product
	if err := conn(ctx, r.db).Where("ad_client_id = ? AND value = ?", clientID, value).Take(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, importer.ErrProductNotFound
		}
		return nil, err
	}
	return m.ToDomain(), nil
}

// Save inserts the product when it has no id yet, otherwise updates it.
func (r *ProductRepository) Save(ctx context.Context, p *domain.Product) error {
	m := new(model.Product)
	m.FromDomain(p)

	db := conn(ctx, r.db)
	var err error
	if m.ID == 0 {
		err = db.Create(m).Error
	} else {
		err = db.Save(m).Error
	}
	if err != nil {
		var pgError *pgconn.PgError
		if errors.As(err, &pgError) && pgError.Code == pgUniqueViolationErrorCode {
			return fmt.Errorf("%w: %q", importer.ErrDuplicateProduct, p.Value)
		}
		return err
	}

	*p = *m.ToDomain()
	return nil
}
