package report

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cast"

	"github.com/goto/folio/domain"
	"github.com/goto/folio/pkg/log"
)

type loader struct {
	rows    rowSource
	dialect dialect
	logger  log.Logger
	limits  Limits
}

// load runs the statement of pd and folds its rows into pd. Exceeding the
// row cap or the load timeout fails the whole load.
func (l *loader) load(ctx context.Context, pd *domain.PrintData, f *folder) error {
	query := pd.SQL
	maxRows := l.limits.MaxRows
	if maxRows > 0 && l.dialect.IsPagingSupported() {
		query = l.dialect.AddPagingSQL(query, 1, maxRows+1)
	}
	if l.limits.LoadTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.limits.LoadTimeout)
		defer cancel()
	}

	rows, err := l.rows.QueryRows(ctx, query)
	if err != nil {
		return l.queryError(ctx, err)
	}
	defer rows.Close()

	labels, err := rows.Columns()
	if err != nil {
		return l.queryError(ctx, err)
	}
	levelNoIndex, reportLineIndex := -1, -1
	for i, label := range labels {
		switch {
		case strings.EqualFold(label, levelNoColumn):
			levelNoIndex = i
		case strings.EqualFold(label, reportLineIDColumn):
			reportLineIndex = i
		}
	}

	values := make([]interface{}, len(labels))
	dest := make([]interface{}, len(labels))
	for i := range values {
		dest[i] = &values[i]
	}

	count := 0
	for rows.Next() {
		count++
		if maxRows > 0 && count > maxRows {
			return fmt.Errorf("%w: %d", ErrMaxRowsReached, maxRows)
		}
		if err := rows.Scan(dest...); err != nil {
			return l.queryError(ctx, err)
		}

		levelNo := 0
		var reportLineID int64
		if pd.HasLevelNo {
			if levelNoIndex >= 0 {
				levelNo = cast.ToInt(toInt64(values[levelNoIndex]))
			}
			if reportLineIndex >= 0 {
				reportLineID = toInt64(values[reportLineIndex])
			}
		}

		f.add(ctx, convertRow(pd.Columns, values), levelNo, reportLineID)
	}
	if err := rows.Err(); err != nil {
		return l.queryError(ctx, err)
	}

	f.finish()
	return nil
}

func (l *loader) queryError(ctx context.Context, err error) error {
	if l.dialect.IsQueryTimeout(err) || errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%w after %s", ErrQueryTimeout, l.limits.LoadTimeout)
	}
	return fmt.Errorf("%w: %v", ErrStatementFailed, err)
}
