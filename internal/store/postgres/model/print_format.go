package model

import (
	"database/sql"

	"github.com/goto/folio/domain"
)

type PrintFormat struct {
	ID                   int64         `gorm:"column:ad_printformat_id;primaryKey"`
	Name                 string        `gorm:"column:name"`
	TableID              int64         `gorm:"column:ad_table_id"`
	ReportViewID         sql.NullInt64 `gorm:"column:ad_reportview_id"`
	IsTranslationView    YesNo         `gorm:"column:istranslationview"`
	PrintFunctionSymbols YesNo         `gorm:"column:isprintfunctionsymbols"`
	IsActive             YesNo         `gorm:"column:isactive"`
}

func (PrintFormat) TableName() string {
	return "ad_printformat"
}

func (m *PrintFormat) ToDomain(items []*PrintFormatItem) *domain.PrintFormat {
	pf := &domain.PrintFormat{
		ID:                   m.ID,
		Name:                 m.Name,
		TableID:              m.TableID,
		ReportViewID:         m.ReportViewID.Int64,
		IsTranslationView:    bool(m.IsTranslationView),
		PrintFunctionSymbols: bool(m.PrintFunctionSymbols),
	}
	for _, item := range items {
		pf.Items = append(pf.Items, item.ToDomain())
	}
	return pf
}

// PrintFormatItem is a print format item joined with its column and the
// matching report view column.
type PrintFormatItem struct {
	ID               int64          `gorm:"column:ad_printformatitem_id"`
	Name             string         `gorm:"column:name"`
	ColumnID         sql.NullInt64  `gorm:"column:ad_column_id"`
	ColumnName       sql.NullString `gorm:"column:columnname"`
	ColumnSQL        sql.NullString `gorm:"column:columnsql"`
	DisplayType      sql.NullString `gorm:"column:displaytype"`
	ReferenceValueID sql.NullInt64  `gorm:"column:ad_reference_value_id"`
	FieldLength      sql.NullInt32  `gorm:"column:fieldlength"`
	IsMandatory      YesNo          `gorm:"column:ismandatory"`
	IsKey            YesNo          `gorm:"column:iskey"`
	IsGroupFunction  YesNo          `gorm:"column:isgroupfunction"`
	FunctionColumn   sql.NullString `gorm:"column:functioncolumn"`

	IsGroupBy         YesNo `gorm:"column:isgroupby"`
	IsSummarized      YesNo `gorm:"column:issummarized"`
	IsAveraged        YesNo `gorm:"column:isaveraged"`
	IsCounted         YesNo `gorm:"column:iscounted"`
	IsMinCalc         YesNo `gorm:"column:ismincalc"`
	IsMaxCalc         YesNo `gorm:"column:ismaxcalc"`
	IsVarianceCalc    YesNo `gorm:"column:isvariancecalc"`
	IsDeviationCalc   YesNo `gorm:"column:isdeviationcalc"`
	IsRunningTotal    YesNo `gorm:"column:isrunningtotal"`
	RunningTotalLines int   `gorm:"column:runningtotallines"`

	IsPrinted       YesNo          `gorm:"column:isprinted"`
	SortNo          int            `gorm:"column:sortno"`
	IsDesc          YesNo          `gorm:"column:isdesc"`
	IsPageBreak     YesNo          `gorm:"column:ispagebreak"`
	FormatPattern   sql.NullString `gorm:"column:formatpattern"`
	Script          sql.NullString `gorm:"column:script"`
	PrintFormatType string         `gorm:"column:printformattype"`
}

func (m *PrintFormatItem) ToDomain() *domain.PrintFormatItem {
	return &domain.PrintFormatItem{
		ID:                m.ID,
		Name:              m.Name,
		ColumnID:          m.ColumnID.Int64,
		ColumnName:        m.ColumnName.String,
		ColumnSQL:         m.ColumnSQL.String,
		DisplayType:       domain.DisplayType(m.DisplayType.String),
		ReferenceValueID:  m.ReferenceValueID.Int64,
		FieldLength:       int(m.FieldLength.Int32),
		IsMandatory:       bool(m.IsMandatory),
		IsKey:             bool(m.IsKey),
		IsGroupFunction:   bool(m.IsGroupFunction),
		FunctionColumn:    m.FunctionColumn.String,
		IsGroupBy:         bool(m.IsGroupBy),
		IsSummarized:      bool(m.IsSummarized),
		IsAveraged:        bool(m.IsAveraged),
		IsCounted:         bool(m.IsCounted),
		IsMinCalc:         bool(m.IsMinCalc),
		IsMaxCalc:         bool(m.IsMaxCalc),
		IsVarianceCalc:    bool(m.IsVarianceCalc),
		IsDeviationCalc:   bool(m.IsDeviationCalc),
		IsRunningTotal:    bool(m.IsRunningTotal),
		RunningTotalLines: m.RunningTotalLines,
		IsPrinted:         bool(m.IsPrinted),
		SortNo:            m.SortNo,
		IsDesc:            bool(m.IsDesc),
		IsPageBreak:       bool(m.IsPageBreak),
		FormatPattern:     m.FormatPattern.String,
		Script:            m.Script.String,
		PrintFormatType:   m.PrintFormatType,
	}
}

type ReportView struct {
	ID            int64          `gorm:"column:ad_reportview_id"`
	Name          string         `gorm:"column:name"`
	TableName     string         `gorm:"column:tablename"`
	WhereClause   sql.NullString `gorm:"column:whereclause"`
	OrderByClause sql.NullString `gorm:"column:orderbyclause"`
}

func (m *ReportView) ToDomain() *domain.ReportView {
	return &domain.ReportView{
		ID:            m.ID,
		Name:          m.Name,
		TableName:     m.TableName,
		WhereClause:   m.WhereClause.String,
		OrderByClause: m.OrderByClause.String,
	}
}

type TableReference struct {
	TableName        string `gorm:"column:tablename"`
	KeyColumn        string `gorm:"column:keycolumn"`
	DisplayColumn    string `gorm:"column:displaycolumn"`
	IsValueDisplayed YesNo  `gorm:"column:isvaluedisplayed"`
	IsTranslated     YesNo  `gorm:"column:istranslated"`
}

func (m *TableReference) ToDomain() *domain.TableReference {
	return &domain.TableReference{
		TableName:        m.TableName,
		KeyColumn:        m.KeyColumn,
		DisplayColumn:    m.DisplayColumn,
		IsValueDisplayed: bool(m.IsValueDisplayed),
		IsTranslated:     bool(m.IsTranslated),
	}
}

type IdentifierColumn struct {
	ColumnName   string `gorm:"column:columnname"`
	IsTranslated YesNo  `gorm:"column:istranslated"`
}

func (m *IdentifierColumn) ToDomain() *domain.IdentifierColumn {
	return &domain.IdentifierColumn{
		ColumnName:   m.ColumnName,
		IsTranslated: bool(m.IsTranslated),
	}
}
