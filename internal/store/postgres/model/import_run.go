package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/goto/folio/domain"
)

type ImportRun struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	ClientID         int64
	WarehouseID      int64
	ProductsImported int
	PricesImported   int
	SkippedRows      datatypes.JSON
	Status           string
	Message          string
	StartedAt        time.Time
	FinishedAt       time.Time
	CreatedAt        time.Time `gorm:"autoCreateTime"`
}

func (ImportRun) TableName() string {
	return "import_runs"
}

func (m *ImportRun) FromDomain(r *domain.ImportRun) error {
	id, err := uuid.Parse(r.ID)
	if err != nil {
		return err
	}
	m.ID = id

	if r.SkippedRows != nil {
		skipped, err := json.Marshal(r.SkippedRows)
		if err != nil {
			return err
		}
		m.SkippedRows = datatypes.JSON(skipped)
	}

	m.ClientID = r.ClientID
	m.WarehouseID = r.WarehouseID
	m.ProductsImported = r.ProductsImported
	m.PricesImported = r.PricesImported
	m.Status = r.Status
	m.Message = r.Message
	m.StartedAt = r.StartedAt
	m.FinishedAt = r.FinishedAt
	return nil
}

func (m *ImportRun) ToDomain() (*domain.ImportRun, error) {
	var skipped []*domain.SkippedRow
	if m.SkippedRows != nil {
		if err := json.Unmarshal(m.SkippedRows, &skipped); err != nil {
			return nil, err
		}
	}

	return &domain.ImportRun{
		ID:               m.ID.String(),
		ClientID:         m.ClientID,
		WarehouseID:      m.WarehouseID,
		ProductsImported: m.ProductsImported,
		PricesImported:   m.PricesImported,
		SkippedRows:      skipped,
		Status:           m.Status,
		Message:          m.Message,
		StartedAt:        m.StartedAt,
		FinishedAt:       m.FinishedAt,
	}, nil
}
