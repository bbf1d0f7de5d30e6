package domain

import "time"

type Organization struct {
	ID        int64     `json:"id" yaml:"id"`
	ClientID  int64     `json:"client_id" yaml:"client_id"`
	Value     string    `json:"value" yaml:"value"`
	Name      string    `json:"name" yaml:"name"`
	IsActive  bool      `json:"is_active" yaml:"is_active"`
	CreatedAt time.Time `json:"created_at,omitempty" yaml:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty" yaml:"updated_at,omitempty"`
}

type Warehouse struct {
	ID       int64  `json:"id" yaml:"id"`
	ClientID int64  `json:"client_id" yaml:"client_id"`
	OrgID    int64  `json:"org_id" yaml:"org_id"`
	Value    string `json:"value" yaml:"value"`
	Name     string `json:"name" yaml:"name"`
	IsActive bool   `json:"is_active" yaml:"is_active"`
}

const DefaultLocatorValue = "Standard"

// Locator is a storage position inside a warehouse.
type Locator struct {
	ID          int64     `json:"id" yaml:"id"`
	ClientID    int64     `json:"client_id" yaml:"client_id"`
	OrgID       int64     `json:"org_id" yaml:"org_id"`
	WarehouseID int64     `json:"warehouse_id" yaml:"warehouse_id"`
	Value       string    `json:"value" yaml:"value"`
	X           string    `json:"x" yaml:"x"`
	Y           string    `json:"y" yaml:"y"`
	Z           string    `json:"z" yaml:"z"`
	IsDefault   bool      `json:"is_default" yaml:"is_default"`
	CreatedAt   time.Time `json:"created_at,omitempty" yaml:"created_at,omitempty"`
}
