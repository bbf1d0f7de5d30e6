package postgres_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/goto/folio/internal/store/postgres"
)

func TestDialectAddPagingSQL(t *testing.T) {
	d := postgres.NewDialect()
	stmt := "SELECT DocumentNo FROM C_Order"

	testCases := []struct {
		name       string
		start, end int
		expected   string
	}{
		{"first page", 1, 100, stmt + " LIMIT 100"},
		{"second page", 101, 200, stmt + " LIMIT 100 OFFSET 100"},
		{"open ended", 51, 0, stmt + " OFFSET 50"},
		{"everything", 0, 0, stmt},
	}

	assert.True(t, d.IsPagingSupported())
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, d.AddPagingSQL(stmt, tc.start, tc.end))
		})
	}
}

func TestDialectIsQueryTimeout(t *testing.T) {
	d := postgres.NewDialect()

	testCases := []struct {
		name     string
		err      error
		expected bool
	}{
		{"deadline exceeded", fmt.Errorf("reading rows: %w", context.DeadlineExceeded), true},
		{"statement timeout", &pgconn.PgError{Code: "57014", Message: "canceling statement due to statement timeout"}, true},
		{"other postgres error", &pgconn.PgError{Code: "42P01"}, false},
		{"other error", errors.New("connection refused"), false},
		{"nil", nil, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, d.IsQueryTimeout(tc.err))
		})
	}
}
