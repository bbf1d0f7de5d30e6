package domain

import "strings"

const (
	OperatorEqual        = "="
	OperatorNotEqual     = "!="
	OperatorLike         = "LIKE"
	OperatorGreater      = ">"
	OperatorGreaterEqual = ">="
	OperatorLess         = "<"
	OperatorLessEqual    = "<="
	OperatorIsNull       = "IS NULL"
	OperatorIsNotNull    = "IS NOT NULL"
)

// Restriction is a single filter on the report table. When SQL is set it is
// used verbatim, otherwise the restriction is rendered from column, operator
// and value.
type Restriction struct {
	ColumnName string      `json:"column_name,omitempty" yaml:"column_name,omitempty"`
	Operator   string      `json:"operator,omitempty" yaml:"operator,omitempty"`
	Value      interface{} `json:"value,omitempty" yaml:"value,omitempty"`
	SQL        string      `json:"sql,omitempty" yaml:"sql,omitempty"`
}

// Query carries the caller's filter on the report table.
type Query struct {
	TableName    string         `json:"table_name,omitempty" yaml:"table_name,omitempty"`
	Restrictions []*Restriction `json:"restrictions,omitempty" yaml:"restrictions,omitempty"`
	IsActive     bool           `json:"is_active" yaml:"is_active"`
}

func (q *Query) HasRestrictions() bool {
	return q != nil && q.IsActive && len(q.Restrictions) > 0
}

// RestrictionFor returns the first restriction on the column.
func (q *Query) RestrictionFor(columnName string) *Restriction {
	if q == nil {
		return nil
	}
	for _, r := range q.Restrictions {
		if strings.EqualFold(r.ColumnName, columnName) {
			return r
		}
	}
	return nil
}

// Principal identifies who is running a report or an import.
type Principal struct {
	ClientID int64 `json:"client_id" yaml:"client_id" mapstructure:"client_id"`
	OrgID    int64 `json:"org_id" yaml:"org_id" mapstructure:"org_id"`
	RoleID   int64 `json:"role_id" yaml:"role_id" mapstructure:"role_id"`
	UserID   int64 `json:"user_id" yaml:"user_id" mapstructure:"user_id"`

	// OrgIDs are the organizations the role may read.
	OrgIDs []int64 `json:"org_ids,omitempty" yaml:"org_ids,omitempty" mapstructure:"org_ids"`
}

// IsSystem reports whether the principal bypasses row level access.
func (p Principal) IsSystem() bool {
	return p.ClientID == 0 && p.RoleID == 0
}
