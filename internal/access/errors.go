package access

import "errors"

var (
	ErrRoleNotFound = errors.New("role not found")
	ErrEmptyTable   = errors.New("table name is required")
)
