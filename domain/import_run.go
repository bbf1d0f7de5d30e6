package domain

import "time"

const (
	ImportRunStatusSucceeded = "succeeded"
	ImportRunStatusFailed    = "failed"
)

// SkippedRow records an input row the importer ignored.
type SkippedRow struct {
	File   string `json:"file"`
	Line   int    `json:"line"`
	Reason string `json:"reason"`
}

// ImportRun is the audit record of one CSV import.
type ImportRun struct {
	ID               string        `json:"id" yaml:"id"`
	ClientID         int64         `json:"client_id" yaml:"client_id"`
	WarehouseID      int64         `json:"warehouse_id" yaml:"warehouse_id"`
	ProductsImported int           `json:"products_imported" yaml:"products_imported"`
	PricesImported   int           `json:"prices_imported" yaml:"prices_imported"`
	SkippedRows      []*SkippedRow `json:"skipped_rows,omitempty" yaml:"skipped_rows,omitempty"`
	Status           string        `json:"status" yaml:"status"`
	Message          string        `json:"message" yaml:"message"`
	StartedAt        time.Time     `json:"started_at" yaml:"started_at"`
	FinishedAt       time.Time     `json:"finished_at" yaml:"finished_at"`
}

type ListImportRunsFilter struct {
	ClientID int64 `mapstructure:"client_id" validate:"omitempty"`
	Size     int   `mapstructure:"size" validate:"omitempty"`
	Offset   int   `mapstructure:"offset" validate:"omitempty"`
}
