package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
)

// KeyColumnAlias is the alias carried by the descriptor of the row's key
// column.
const KeyColumnAlias = "*"

// KeyNamePair is a numeric reference with its resolved label.
type KeyNamePair struct {
	Key  int64  `json:"key"`
	Name string `json:"name"`
}

func (p KeyNamePair) String() string {
	return p.Name
}

// ValueNamePair is a textual reference (list value or string key) with its
// resolved label.
type ValueNamePair struct {
	Value string `json:"value"`
	Name  string `json:"name"`
}

func (p ValueNamePair) String() string {
	return p.Name
}

// PrintDataColumn describes one output column of a report. It is built once
// per load and never mutated afterwards.
type PrintDataColumn struct {
	ItemID            int64       `json:"item_id"`
	ColumnID          int64       `json:"column_id"`
	ColumnName        string      `json:"column_name"`
	DisplayType       DisplayType `json:"display_type"`
	FieldLength       int         `json:"field_length"`
	Alias             string      `json:"alias"`
	IsPageBreak       bool        `json:"is_page_break"`
	FormatPattern     string      `json:"format_pattern,omitempty"`
	ForeignColumnName string      `json:"foreign_column_name,omitempty"`
	PrintFormatType   string      `json:"print_format_type"`
	Script            string      `json:"script,omitempty"`
}

// HasAlias reports whether the column projects a label next to its value.
func (c *PrintDataColumn) HasAlias() bool {
	return !c.IsKey() && c.Alias != "" && !strings.EqualFold(c.Alias, c.ColumnName)
}

func (c *PrintDataColumn) IsKey() bool {
	return c.Alias == KeyColumnAlias
}

func (c *PrintDataColumn) IsScript() bool {
	return c.PrintFormatType == PrintFormatTypeScript
}

// PrintDataElement is one value of a report row.
type PrintDataElement struct {
	ItemID            int64       `json:"item_id"`
	ColumnName        string      `json:"column_name"`
	Value             interface{} `json:"value"`
	DisplayType       DisplayType `json:"display_type"`
	IsPKey            bool        `json:"is_pkey,omitempty"`
	IsPageBreak       bool        `json:"is_page_break,omitempty"`
	FormatPattern     string      `json:"format_pattern,omitempty"`
	ForeignColumnName string      `json:"foreign_column_name,omitempty"`
}

func (e *PrintDataElement) IsNull() bool {
	return e == nil || e.Value == nil
}

// ValueAsString returns the text form of the value; references yield their
// label.
func (e *PrintDataElement) ValueAsString() string {
	if e.IsNull() {
		return ""
	}
	switch v := e.Value.(type) {
	case string:
		return v
	case decimal.Decimal:
		return v.String()
	case time.Time:
		return v.Format(time.RFC3339)
	case bool:
		if v {
			return "true"
		}
		return "false"
	case fmt.Stringer:
		return v.String()
	}
	return cast.ToString(e.Value)
}

// FunctionValue maps the value to the decimal fed into aggregation
// functions. Numbers are taken as is, booleans count as one or zero and
// anything else contributes the length of its text form.
func (e *PrintDataElement) FunctionValue() decimal.Decimal {
	if e.IsNull() {
		return decimal.Zero
	}
	switch v := e.Value.(type) {
	case decimal.Decimal:
		return v
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	case float64:
		return decimal.NewFromFloat(v)
	case bool:
		if v {
			return decimal.NewFromInt(1)
		}
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(len([]rune(e.ValueAsString()))))
}

// PrintDataRow is an ordered list of elements. Function rows are the
// synthetic subtotal, total and running total rows.
type PrintDataRow struct {
	Elements      []*PrintDataElement `json:"elements"`
	IsFunctionRow bool                `json:"is_function_row,omitempty"`
	LevelNo       int                 `json:"level_no,omitempty"`
	ReportLineID  int64               `json:"report_line_id,omitempty"`
}

// PrintData is the in-memory result of a report load. Rows are append-only;
// the current row index is used by consumers walking the rows.
type PrintData struct {
	Name       string             `json:"name"`
	TableName  string             `json:"table_name"`
	SQL        string             `json:"sql"`
	HasLevelNo bool               `json:"has_level_no,omitempty"`
	Columns    []*PrintDataColumn `json:"columns"`
	Rows       []*PrintDataRow    `json:"rows"`

	rowIndex int
}

func NewPrintData(name, tableName string) *PrintData {
	return &PrintData{
		Name:      name,
		TableName: tableName,
		rowIndex:  -1,
	}
}

// AddRow appends an empty row and makes it current.
func (pd *PrintData) AddRow(functionRow bool, levelNo int, reportLineID int64) {
	pd.Rows = append(pd.Rows, &PrintDataRow{
		IsFunctionRow: functionRow,
		LevelNo:       levelNo,
		ReportLineID:  reportLineID,
	})
	pd.rowIndex = len(pd.Rows) - 1
}

// AddNode appends an element to the current row.
func (pd *PrintData) AddNode(e *PrintDataElement) {
	if pd.rowIndex < 0 || pd.rowIndex >= len(pd.Rows) {
		pd.AddRow(false, 0, 0)
	}
	row := pd.Rows[pd.rowIndex]
	row.Elements = append(row.Elements, e)
}

func (pd *PrintData) RowCount() int {
	return len(pd.Rows)
}

func (pd *PrintData) RowIndex() int {
	return pd.rowIndex
}

// SetRowIndex moves the cursor and reports whether the index is valid.
func (pd *PrintData) SetRowIndex(i int) bool {
	if i < 0 || i >= len(pd.Rows) {
		return false
	}
	pd.rowIndex = i
	return true
}

func (pd *PrintData) Row(i int) *PrintDataRow {
	if i < 0 || i >= len(pd.Rows) {
		return nil
	}
	return pd.Rows[i]
}

func (pd *PrintData) IsFunctionRow() bool {
	row := pd.Row(pd.rowIndex)
	return row != nil && row.IsFunctionRow
}

// Node returns the element of the current row for the column name.
func (pd *PrintData) Node(columnName string) *PrintDataElement {
	row := pd.Row(pd.rowIndex)
	if row == nil {
		return nil
	}
	for _, e := range row.Elements {
		if strings.EqualFold(e.ColumnName, columnName) {
			return e
		}
	}
	return nil
}

// NodeByItemID returns the element of the current row for the print format
// item.
func (pd *PrintData) NodeByItemID(itemID int64) *PrintDataElement {
	row := pd.Row(pd.rowIndex)
	if row == nil {
		return nil
	}
	for _, e := range row.Elements {
		if e.ItemID == itemID {
			return e
		}
	}
	return nil
}

// ColumnIndex returns the position of the column with the given item id or
// -1.
func (pd *PrintData) ColumnIndex(itemID int64) int {
	for i, c := range pd.Columns {
		if c.ItemID == itemID {
			return i
		}
	}
	return -1
}
