package report

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/goto/folio/domain"
)

const (
	levelNoColumn      = "LevelNo"
	reportLineIDColumn = "PA_ReportLine_ID"
	reportTablePrefix  = "T_Report"
)

// plan is the outcome of reading the print format: the output columns, the
// SQL fragments selecting them and the grouping set up.
type plan struct {
	tableName string
	columns   []*domain.PrintDataColumn
	selects   []string
	joins     []string
	groupBy   []string
	orderBy   []string

	// isGroupedBy is set when a report view column is a SQL aggregate.
	isGroupedBy       bool
	hasLevelNo        bool
	runningTotalLines int
	group             *groupEngine
}

type planBuilder struct {
	tableName string
	// baseTableName is set when the report reads a translation view; its
	// occurrences in virtual column SQL are replaced with the view name.
	baseTableName string
	vars          map[string]string
	lookups       *lookupBuilder
}

func (b *planBuilder) build(ctx context.Context, format *domain.PrintFormat) (*plan, error) {
	p := &plan{
		tableName:         b.tableName,
		group:             newGroupEngine(),
		runningTotalLines: -1,
	}

	orderIDs := format.OrderColumnIDs()
	orderColumns := make([]string, len(orderIDs))

	var translateTable *regexp.Regexp
	if b.baseTableName != "" {
		translateTable = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(b.baseTableName) + `\b`)
	}

	syn := firstSynonym
	for _, item := range format.Items {
		columnSQL := b.columnSQL(item.ColumnSQL, translateTable)

		in := projectionInput{
			item:      item,
			tableName: b.tableName,
			columnSQL: columnSQL,
			synonym:   syn,
			vars:      b.vars,
			lookups:   b.lookups,
		}
		kind := selectStrategy(item)
		proj, err := projectors[kind](ctx, in)
		if err != nil {
			return nil, fmt.Errorf("projecting %s column %q: %w", kind, item.Name, err)
		}
		if proj == nil {
			continue
		}
		syn = proj.next

		if item.IsGroupFunction {
			p.isGroupedBy = true
		}
		if item.IsGroupBy {
			p.group.addGroupColumn(item.ID)
		}
		for _, fn := range item.Functions() {
			p.group.addFunction(item.ID, fn)
		}
		if item.IsRunningTotal && item.RunningTotalLines > p.runningTotalLines {
			p.runningTotalLines = item.RunningTotalLines
		}

		p.selects = append(p.selects, proj.selects...)
		p.joins = append(p.joins, proj.joins...)
		p.groupBy = append(p.groupBy, proj.groupBy...)

		for i, id := range orderIDs {
			if item.ColumnID != id {
				continue
			}
			orderName := proj.orderName
			if item.IsDesc {
				orderName += " DESC"
			}
			orderColumns[i] = orderName
			// ordering by a column that is not printed still needs it grouped
			if !item.IsPrinted && !item.IsGroupFunction {
				p.groupBy = append(p.groupBy, in.qualifiedName())
			}
			break
		}

		proj.column.FormatPattern = item.FormatPattern
		proj.column.PrintFormatType = item.PrintFormatType
		p.columns = append(p.columns, proj.column)
	}

	if len(p.columns) == 0 {
		return nil, ErrNoColumns
	}

	if strings.HasPrefix(b.tableName, reportTablePrefix) {
		p.hasLevelNo = true
		if !selectsContain(p.selects, levelNoColumn) {
			p.selects = append(p.selects, levelNoColumn)
		}
		if b.tableName == reportTablePrefix && !selectsContain(p.selects, reportLineIDColumn) {
			p.selects = append(p.selects, reportLineIDColumn)
		}
	}

	for i, name := range orderColumns {
		if name == "" {
			name = fmt.Sprint(i + 1)
		}
		p.orderBy = append(p.orderBy, name)
	}

	return p, nil
}

// columnSQL prepares the virtual column expression of an item.
func (b *planBuilder) columnSQL(columnSQL string, translateTable *regexp.Regexp) string {
	columnSQL = strings.TrimPrefix(columnSQL, sqlFindPrefix)
	if strings.HasPrefix(columnSQL, sqlUIPrefix) {
		columnSQL = "NULL"
	}
	if strings.Contains(columnSQL, "@") {
		columnSQL = parseContext(b.vars, columnSQL, true)
	}
	if columnSQL != "" && translateTable != nil {
		columnSQL = translateTable.ReplaceAllString(columnSQL, b.tableName)
	}
	return columnSQL
}

func selectsContain(selects []string, name string) bool {
	for _, s := range selects {
		if strings.Contains(s, name) {
			return true
		}
	}
	return false
}
