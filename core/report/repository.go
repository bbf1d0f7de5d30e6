package report

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

// Repository runs assembled report statements.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db}
}

// QueryRows runs query as is. The caller closes the rows.
func (r *Repository) QueryRows(ctx context.Context, query string) (*sql.Rows, error) {
	return r.db.WithContext(ctx).Raw(query).Rows()
}
