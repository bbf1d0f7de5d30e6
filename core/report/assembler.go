package report

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/spf13/cast"

	"github.com/goto/folio/domain"
)

const instanceColumn = "AD_PInstance_ID"

type assembler struct {
	access accessFilter
}

// assemble renders the final statement of a plan.
func (a *assembler) assemble(ctx context.Context, p *plan, query *domain.Query, view *domain.ReportView, principal domain.Principal) (string, error) {
	var sb strings.Builder
	sb.WriteString("SELECT ")
	sb.WriteString(strings.Join(p.selects, ","))
	sb.WriteString(" FROM ")
	sb.WriteString(p.tableName)
	for _, j := range p.joins {
		sb.WriteString(j)
	}

	stmt := sb.String()
	if strings.HasPrefix(p.tableName, reportTablePrefix) {
		// report tables are only restricted to the process instance
		var conditions []string
		if query != nil {
			for _, r := range query.Restrictions {
				if clause := restrictionSQL(r, p.tableName); strings.Contains(clause, instanceColumn) {
					conditions = append(conditions, clause)
				}
			}
		}
		if len(conditions) > 0 {
			stmt += " WHERE " + strings.Join(conditions, " AND ")
		}
	} else {
		if query.HasRestrictions() {
			stmt += " WHERE " + whereClause(query, p.tableName)
		}
		if !principal.IsSystem() && a.access != nil {
			var err error
			stmt, err = a.access.AddAccessSQL(ctx, stmt, p.tableName, principal)
			if err != nil {
				return "", fmt.Errorf("adding access restriction: %w", err)
			}
		}
	}

	sb.Reset()
	sb.WriteString(stmt)
	if p.isGroupedBy && len(p.groupBy) > 0 {
		sb.WriteString(" GROUP BY ")
		sb.WriteString(strings.Join(p.groupBy, ","))
	}
	if len(p.orderBy) > 0 {
		sb.WriteString(" ORDER BY ")
		sb.WriteString(strings.Join(p.orderBy, ","))
	} else if view != nil && strings.TrimSpace(view.OrderByClause) != "" {
		sb.WriteString(" ORDER BY ")
		sb.WriteString(view.OrderByClause)
	}

	return sb.String(), nil
}

func whereClause(query *domain.Query, tableName string) string {
	clauses := make([]string, 0, len(query.Restrictions))
	for _, r := range query.Restrictions {
		if clause := restrictionSQL(r, tableName); clause != "" {
			clauses = append(clauses, clause)
		}
	}
	return strings.Join(clauses, " AND ")
}

func restrictionSQL(r *domain.Restriction, tableName string) string {
	if r == nil {
		return ""
	}
	if r.SQL != "" {
		return r.SQL
	}
	if r.ColumnName == "" {
		return ""
	}

	column := r.ColumnName
	if !strings.ContainsAny(column, ".(") {
		column = tableName + "." + column
	}
	operator := strings.ToUpper(strings.TrimSpace(r.Operator))
	switch operator {
	case "":
		operator = domain.OperatorEqual
	case domain.OperatorIsNull, domain.OperatorIsNotNull:
		return column + " " + operator
	}
	if r.Value == nil {
		if operator == domain.OperatorNotEqual {
			return column + " " + domain.OperatorIsNotNull
		}
		return column + " " + domain.OperatorIsNull
	}
	return fmt.Sprintf("%s %s %s", column, operator, sqlLiteral(r.Value))
}

func sqlLiteral(v interface{}) string {
	switch tv := v.(type) {
	case string:
		return pq.QuoteLiteral(tv)
	case bool:
		if tv {
			return "'Y'"
		}
		return "'N'"
	case time.Time:
		return pq.QuoteLiteral(tv.Format("2006-01-02 15:04:05"))
	case decimal.Decimal:
		return tv.String()
	case int, int32, int64, float32, float64:
		return cast.ToString(tv)
	}
	return pq.QuoteLiteral(cast.ToString(v))
}
