package domain

import "sort"

const (
	PrintFormatTypeField       = "F"
	PrintFormatTypeImage       = "I"
	PrintFormatTypePrintFormat = "P"
	PrintFormatTypeScript      = "S"
)

// PrintFormat describes which columns of a table or report view appear in a
// report, in what order and with what grouping behaviour.
type PrintFormat struct {
	ID                   int64  `json:"id" yaml:"id"`
	Name                 string `json:"name" yaml:"name"`
	TableID              int64  `json:"table_id" yaml:"table_id"`
	ReportViewID         int64  `json:"report_view_id,omitempty" yaml:"report_view_id,omitempty"`
	IsTranslationView    bool   `json:"is_translation_view" yaml:"is_translation_view"`
	PrintFunctionSymbols bool   `json:"print_function_symbols" yaml:"print_function_symbols"`

	Items []*PrintFormatItem `json:"items,omitempty" yaml:"items,omitempty"`
}

// OrderColumnIDs returns the column ids of the items flagged for sorting,
// in ascending sort sequence.
func (f *PrintFormat) OrderColumnIDs() []int64 {
	var sorted []*PrintFormatItem
	for _, item := range f.Items {
		if item.SortNo > 0 && item.ColumnID > 0 {
			sorted = append(sorted, item)
		}
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].SortNo < sorted[j].SortNo
	})

	ids := make([]int64, 0, len(sorted))
	for _, item := range sorted {
		ids = append(ids, item.ColumnID)
	}
	return ids
}

// PrintFormatItem is one metadata row of a print format joined with its
// column and report view column definitions.
type PrintFormatItem struct {
	ID               int64       `json:"id" yaml:"id"`
	Name             string      `json:"name" yaml:"name"`
	ColumnID         int64       `json:"column_id" yaml:"column_id"`
	ColumnName       string      `json:"column_name" yaml:"column_name"`
	ColumnSQL        string      `json:"column_sql,omitempty" yaml:"column_sql,omitempty"`
	DisplayType      DisplayType `json:"display_type" yaml:"display_type"`
	ReferenceValueID int64       `json:"reference_value_id,omitempty" yaml:"reference_value_id,omitempty"`
	FieldLength      int         `json:"field_length" yaml:"field_length"`
	IsMandatory      bool        `json:"is_mandatory" yaml:"is_mandatory"`
	IsKey            bool        `json:"is_key" yaml:"is_key"`

	// IsGroupFunction marks a report view column projected through a SQL
	// aggregate, which turns on the GROUP BY clause.
	IsGroupFunction bool   `json:"is_group_function" yaml:"is_group_function"`
	FunctionColumn  string `json:"function_column,omitempty" yaml:"function_column,omitempty"`

	IsGroupBy         bool `json:"is_group_by" yaml:"is_group_by"`
	IsSummarized      bool `json:"is_summarized" yaml:"is_summarized"`
	IsAveraged        bool `json:"is_averaged" yaml:"is_averaged"`
	IsCounted         bool `json:"is_counted" yaml:"is_counted"`
	IsMinCalc         bool `json:"is_min_calc" yaml:"is_min_calc"`
	IsMaxCalc         bool `json:"is_max_calc" yaml:"is_max_calc"`
	IsVarianceCalc    bool `json:"is_variance_calc" yaml:"is_variance_calc"`
	IsDeviationCalc   bool `json:"is_deviation_calc" yaml:"is_deviation_calc"`
	IsRunningTotal    bool `json:"is_running_total" yaml:"is_running_total"`
	RunningTotalLines int  `json:"running_total_lines" yaml:"running_total_lines"`

	IsPrinted       bool   `json:"is_printed" yaml:"is_printed"`
	SortNo          int    `json:"sort_no" yaml:"sort_no"`
	IsDesc          bool   `json:"is_desc" yaml:"is_desc"`
	IsPageBreak     bool   `json:"is_page_break" yaml:"is_page_break"`
	FormatPattern   string `json:"format_pattern,omitempty" yaml:"format_pattern,omitempty"`
	Script          string `json:"script,omitempty" yaml:"script,omitempty"`
	PrintFormatType string `json:"print_format_type" yaml:"print_format_type"`
}

// ReportView binds a print format to a table with an optional fixed
// restriction and ordering.
type ReportView struct {
	ID            int64  `json:"id" yaml:"id"`
	Name          string `json:"name" yaml:"name"`
	TableName     string `json:"table_name" yaml:"table_name"`
	WhereClause   string `json:"where_clause,omitempty" yaml:"where_clause,omitempty"`
	OrderByClause string `json:"order_by_clause,omitempty" yaml:"order_by_clause,omitempty"`
}

// TableReference resolves a table-validated reference to its table, key
// and display columns.
type TableReference struct {
	TableName        string `json:"table_name" yaml:"table_name"`
	KeyColumn        string `json:"key_column" yaml:"key_column"`
	DisplayColumn    string `json:"display_column" yaml:"display_column"`
	IsValueDisplayed bool   `json:"is_value_displayed" yaml:"is_value_displayed"`
	IsTranslated     bool   `json:"is_translated" yaml:"is_translated"`
}

// IdentifierColumn is a column making up the human readable label of a
// record.
type IdentifierColumn struct {
	ColumnName   string `json:"column_name" yaml:"column_name"`
	IsTranslated bool   `json:"is_translated" yaml:"is_translated"`
}

// Language identifies the report language and whether it is the base
// language of the dictionary.
type Language struct {
	Code   string `json:"code" yaml:"code" mapstructure:"code" default:"en_US"`
	IsBase bool   `json:"is_base" yaml:"is_base" mapstructure:"is_base" default:"true"`
}
