package report

import "errors"

var (
	ErrNoPrintFormat    = errors.New("print format is required")
	ErrTableNotFound    = errors.New("report table not found")
	ErrNoColumns        = errors.New("print format has no selectable columns")
	ErrMaxRowsReached   = errors.New("report exceeds the maximum number of rows")
	ErrQueryTimeout     = errors.New("report query timed out")
	ErrStatementFailed  = errors.New("report statement failed")
	ErrInvalidReference = errors.New("invalid table reference")
)
