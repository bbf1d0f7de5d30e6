package report

import (
	"context"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"github.com/goto/folio/domain"
)

const (
	sqlFindPrefix = "@SQLFIND="
	sqlUIPrefix   = "@SQL="
	scriptMarker  = "@SCRIPT"
)

// strategy is the way a print format item is projected into the SELECT
// list. Exactly one applies to each item.
type strategy int

const (
	strategyKey strategy = iota
	strategyComputed
	strategyLookupDirectory
	strategyLookupTable
	strategyList
	strategySpecial
	strategyPlain
)

func (s strategy) String() string {
	switch s {
	case strategyKey:
		return "key"
	case strategyComputed:
		return "computed"
	case strategyLookupDirectory:
		return "lookup_directory"
	case strategyLookupTable:
		return "lookup_table"
	case strategyList:
		return "list"
	case strategySpecial:
		return "special"
	}
	return "plain"
}

func selectStrategy(item *domain.PrintFormatItem) strategy {
	dt := item.DisplayType
	switch {
	case item.IsKey:
		return strategyKey
	case item.ColumnName == "" || item.Script != "":
		return strategyComputed
	case dt == domain.DisplayTypeTableDir || (dt == domain.DisplayTypeSearch && item.ReferenceValueID == 0):
		return strategyLookupDirectory
	case dt == domain.DisplayTypeTable || (dt == domain.DisplayTypeSearch && item.ReferenceValueID != 0):
		return strategyLookupTable
	case dt.IsList() || (dt == domain.DisplayTypeButton && item.ReferenceValueID != 0):
		return strategyList
	case dt.IsSpecialLookup():
		return strategySpecial
	}
	return strategyPlain
}

type projectionInput struct {
	item      *domain.PrintFormatItem
	tableName string
	// columnSQL is the item's virtual column expression after context
	// parsing, empty for physical columns.
	columnSQL string
	synonym   synonym
	vars      map[string]string
	lookups   *lookupBuilder
}

func (in projectionInput) qualifiedName() string {
	return in.tableName + "." + in.item.ColumnName
}

// lookupSQL is the expression holding the raw value of the item.
func (in projectionInput) lookupSQL() string {
	if in.columnSQL != "" {
		return in.columnSQL
	}
	return in.qualifiedName()
}

type projection struct {
	column    *domain.PrintDataColumn
	selects   []string
	joins     []string
	groupBy   []string
	orderName string
	// next is the synonym for the following lookup.
	next synonym
}

type projector func(ctx context.Context, in projectionInput) (*projection, error)

var projectors = map[strategy]projector{
	strategyKey:             projectKey,
	strategyComputed:        projectComputed,
	strategyLookupDirectory: projectLookupDirectory,
	strategyLookupTable:     projectLookupTable,
	strategyList:            projectList,
	strategySpecial:         projectSpecial,
	strategyPlain:           projectPlain,
}

func newColumn(item *domain.PrintFormatItem, alias string) *domain.PrintDataColumn {
	return &domain.PrintDataColumn{
		ItemID:          item.ID,
		ColumnID:        item.ColumnID,
		ColumnName:      item.ColumnName,
		DisplayType:     item.DisplayType,
		FieldLength:     item.FieldLength,
		Alias:           alias,
		IsPageBreak:     item.IsPageBreak,
		FormatPattern:   item.FormatPattern,
		PrintFormatType: item.PrintFormatType,
	}
}

func projectKey(_ context.Context, in projectionInput) (*projection, error) {
	name := in.qualifiedName()
	return &projection{
		column:    newColumn(in.item, domain.KeyColumnAlias),
		selects:   []string{name},
		groupBy:   []string{name},
		orderName: name,
		next:      in.synonym,
	}, nil
}

// projectComputed projects the item script. A script starting with @SQL= is
// a SQL formula evaluated by the database; any other script is carried as
// a marker and evaluated by the loader on each row.
func projectComputed(_ context.Context, in projectionInput) (*projection, error) {
	script := in.item.Script
	if script != "" {
		if strings.HasPrefix(script, sqlUIPrefix) {
			formula := "(" + strings.TrimSpace(strings.Replace(script, sqlUIPrefix, "", 1)) + ")"
			script = parseContext(in.vars, formula, false)
			if script == "" {
				script = "NULL"
			}
		} else {
			script = pq.QuoteLiteral(scriptMarker + script)
		}
	}
	if in.item.ColumnName == "" && script == "" {
		return nil, nil
	}

	name := in.item.Name
	column := newColumn(in.item, in.qualifiedName())
	column.ColumnID = 0
	column.ColumnName = name
	column.DisplayType = displayTypeFromPattern(in.item.FormatPattern)
	column.Script = in.item.Script

	return &projection{
		column: column,
		selects: []string{
			fmt.Sprintf("%s AS %s", script, pq.QuoteIdentifier(in.synonym.String()+name)),
			fmt.Sprintf("' ' AS %s", pq.QuoteIdentifier(name)),
		},
		orderName: in.qualifiedName(),
		next:      in.synonym.next(),
	}, nil
}

func projectLookupDirectory(ctx context.Context, in projectionInput) (*projection, error) {
	columnName := in.item.ColumnName
	lookupSQL := in.qualifiedName()
	baseColumn := lookupSQL
	if in.columnSQL != "" {
		lookupSQL = in.columnSQL
		baseColumn = "(" + in.columnSQL + ")"
	}

	eSQL, err := in.lookups.tableDirEmbed(ctx, columnName, baseColumn)
	if err != nil {
		return nil, err
	}
	if eSQL == "" {
		eSQL = lookupSQL
	}

	display := in.synonym.String() + columnName
	return &projection{
		column: newColumn(in.item, display),
		selects: []string{
			fmt.Sprintf("(%s) AS %s", eSQL, display),
			fmt.Sprintf("%s AS %s", lookupSQL, columnName),
		},
		groupBy:   []string{lookupSQL},
		orderName: display,
		next:      in.synonym.next(),
	}, nil
}

func projectLookupTable(ctx context.Context, in projectionInput) (*projection, error) {
	columnName := in.item.ColumnName
	eSQL, ref, err := in.lookups.tableEmbed(ctx, in.item.ReferenceValueID, in.qualifiedName())
	if err != nil {
		return nil, err
	}
	lookupSQL := in.lookupSQL()

	display := in.synonym.String() + columnName
	column := newColumn(in.item, display)
	column.ForeignColumnName = ref.KeyColumn
	return &projection{
		column: column,
		selects: []string{
			fmt.Sprintf("(%s) AS %s", eSQL, display),
			fmt.Sprintf("%s AS %s", lookupSQL, columnName),
		},
		groupBy:   []string{display, lookupSQL},
		orderName: display,
		next:      in.synonym.next(),
	}, nil
}

// projectList joins the list values of the item's reference, through the
// translation table when the report language is not the base language.
func projectList(_ context.Context, in projectionInput) (*projection, error) {
	syn := in.synonym.String()
	lookupSQL := in.lookupSQL()
	display := syn + "Name"

	var joins []string
	if in.lookups.language.IsBase {
		joins = append(joins, fmt.Sprintf(" LEFT OUTER JOIN AD_Ref_List %s ON (%s=%s.Value AND %s.AD_Reference_ID=%d)",
			syn, lookupSQL, syn, syn, in.item.ReferenceValueID))
	} else {
		joins = append(joins,
			fmt.Sprintf(" LEFT OUTER JOIN AD_Ref_List X%s ON (%s=X%s.Value AND X%s.AD_Reference_ID=%d)",
				syn, lookupSQL, syn, syn, in.item.ReferenceValueID),
			fmt.Sprintf(" LEFT OUTER JOIN AD_Ref_List_Trl %s ON (X%s.AD_Ref_List_ID=%s.AD_Ref_List_ID AND %s.AD_Language=%s)",
				syn, syn, syn, syn, pq.QuoteLiteral(in.lookups.language.Code)),
		)
	}

	return &projection{
		column: newColumn(in.item, display),
		selects: []string{
			fmt.Sprintf("%s.Name AS %s", syn, display),
			fmt.Sprintf("%s AS %s", lookupSQL, in.item.ColumnName),
		},
		joins:     joins,
		groupBy:   []string{syn + ".Name", lookupSQL},
		orderName: display,
		next:      in.synonym.next(),
	}, nil
}

type specialLookup struct {
	table   string
	key     string
	display string
	label   string
}

var specialLookups = map[domain.DisplayType]specialLookup{
	domain.DisplayTypeLocation:   {table: "C_Location", key: "C_Location_ID", display: "City", label: "Address"},
	domain.DisplayTypeAccount:    {table: "C_ValidCombination", key: "C_ValidCombination_ID", display: "Combination", label: "Combination"},
	domain.DisplayTypeLocator:    {table: "M_Locator", key: "M_Locator_ID", display: "Value", label: "Value"},
	domain.DisplayTypePAttribute: {table: "M_AttributeSetInstance", key: "M_AttributeSetInstance_ID", display: "Description", label: "Description"},
}

func projectSpecial(_ context.Context, in projectionInput) (*projection, error) {
	lookup := specialLookups[in.item.DisplayType]
	syn := in.synonym.String()
	lookupSQL := in.lookupSQL()

	label := fmt.Sprintf("%s.%s", syn, lookup.display)
	if lookup.display == "City" {
		label = fmt.Sprintf("COALESCE(%s, '.')", label)
	}
	display := syn + lookup.label

	join := " LEFT OUTER JOIN "
	if in.item.IsMandatory {
		join = " INNER JOIN "
	}

	return &projection{
		column: newColumn(in.item, display),
		selects: []string{
			fmt.Sprintf("%s AS %s", label, display),
			fmt.Sprintf("%s AS %s", lookupSQL, in.item.ColumnName),
		},
		joins:     []string{fmt.Sprintf("%s%s %s ON (%s=%s.%s)", join, lookup.table, syn, lookupSQL, syn, lookup.key)},
		groupBy:   []string{syn + "." + lookup.display, lookupSQL},
		orderName: display,
		next:      in.synonym.next(),
	}, nil
}

// projectPlain selects the column directly, through its virtual column SQL
// or through the report view function wrapping it ('@' stands for the
// column).
func projectPlain(_ context.Context, in projectionInput) (*projection, error) {
	item := in.item
	p := &projection{
		column:    newColumn(item, item.ColumnName),
		orderName: in.qualifiedName(),
		next:      in.synonym,
	}

	var expr string
	switch index := strings.IndexByte(item.FunctionColumn, '@'); {
	case in.columnSQL != "":
		expr = in.columnSQL
		p.selects = []string{fmt.Sprintf("%s AS %s", expr, item.ColumnName)}
		p.orderName = item.ColumnName
	case index < 0:
		expr = in.qualifiedName()
		p.selects = []string{expr}
	default:
		expr = item.FunctionColumn[:index] + in.qualifiedName() + item.FunctionColumn[index+1:]
		p.selects = []string{fmt.Sprintf("%s AS %s", expr, item.ColumnName)}
		p.orderName = item.ColumnName
	}
	if !item.IsGroupFunction {
		p.groupBy = []string{expr}
	}

	return p, nil
}
