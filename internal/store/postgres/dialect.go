package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgQueryCanceledErrorCode   = "57014"
	pgUniqueViolationErrorCode = "23505"
)

// Dialect holds the postgres specific parts of report statements.
type Dialect struct{}

func NewDialect() *Dialect {
	return &Dialect{}
}

func (Dialect) IsPagingSupported() bool {
	return true
}

// AddPagingSQL limits stmt to the rows start to end, both 1-based and
// inclusive. An end of zero leaves the result open ended.
func (Dialect) AddPagingSQL(stmt string, start, end int) string {
	if start < 1 {
		start = 1
	}
	if end > 0 {
		stmt = fmt.Sprintf("%s LIMIT %d", stmt, end-start+1)
	}
	if start > 1 {
		stmt = fmt.Sprintf("%s OFFSET %d", stmt, start-1)
	}
	return stmt
}

// IsQueryTimeout reports whether err comes from a statement canceled by a
// deadline, either on the client or by statement_timeout.
func (Dialect) IsQueryTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var pgError *pgconn.PgError
	return errors.As(err, &pgError) && pgError.Code == pgQueryCanceledErrorCode
}
