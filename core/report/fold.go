package report

import (
	"context"
	"strings"
	"time"

	"github.com/goto/folio/domain"
	"github.com/goto/folio/pkg/log"
)

const runningTotalTitle = "RunningTotal"

// folder appends data rows to the print data and interleaves the function
// rows produced at group breaks, running total intervals and end of data.
type folder struct {
	pd      *domain.PrintData
	columns []*domain.PrintDataColumn
	group   *groupEngine
	scripts *scriptEvaluator
	logger  log.Logger

	summary              bool
	printFunctionSymbols bool
	runningTotalLines    int

	dataRows int
	levelNo  int
}

func newFolder(pd *domain.PrintData, p *plan, logger log.Logger, summary, printFunctionSymbols bool) *folder {
	return &folder{
		pd:                   pd,
		columns:              p.columns,
		group:                p.group,
		scripts:              newScriptEvaluator(),
		logger:               logger,
		summary:              summary,
		printFunctionSymbols: printFunctionSymbols,
		runningTotalLines:    p.runningTotalLines,
	}
}

// add folds one source row. elements is aligned with the columns.
func (f *folder) add(ctx context.Context, elements []*domain.PrintDataElement, levelNo int, reportLineID int64) {
	f.levelNo = levelNo

	// one group is always the grand total
	if f.group.groupCount() > 1 {
		var changedGroups []*domain.PrintDataColumn
		var changedValues []groupValue
		force := false
		for i, c := range f.columns {
			if !f.group.isGroupColumn(c.ItemID) {
				continue
			}
			var value interface{}
			if elements[i] != nil {
				value = elements[i].Value
			}
			if old, changed := f.group.groupChange(c.ItemID, newGroupValue(value), force); changed {
				changedGroups = append(changedGroups, c)
				changedValues = append(changedValues, old)
				// every following group breaks too
				force = true
			}
		}

		for j := len(changedGroups) - 1; j >= 0; j-- {
			groupColumn := changedGroups[j]
			f.addGroupRows(groupColumn, changedValues[j], true)
			for _, c := range f.columns {
				f.group.reset(groupColumn.ItemID, c.ItemID)
			}
		}
	}

	for i, c := range f.columns {
		e := elements[i]
		if e == nil || !c.IsScript() {
			continue
		}
		if s, ok := e.Value.(string); !ok || !strings.HasPrefix(s, scriptMarker) {
			continue
		}
		evaluated, err := f.scripts.evaluate(e, c, elements)
		if err != nil {
			f.logger.Error(ctx, "failed to evaluate script column", "column", c.ColumnName, "error", err)
			continue
		}
		elements[i] = evaluated
	}

	if !f.summary {
		f.pd.AddRow(false, levelNo, reportLineID)
		for _, e := range elements {
			if e != nil {
				f.pd.AddNode(e)
			}
		}
	}
	for _, e := range elements {
		if e != nil {
			f.group.addValue(e.ItemID, e.FunctionValue())
		}
	}

	f.dataRows++
	f.addRunningTotal()
}

// finish flushes the open groups innermost first, then adds the grand
// total rows.
func (f *folder) finish() {
	if f.group.groupCount() > 1 {
		endOfData := groupValue{key: "\x00end"}
		for i := len(f.columns) - 1; i >= 0; i-- {
			c := f.columns[i]
			if !f.group.isGroupColumn(c.ItemID) {
				continue
			}
			if old, changed := f.group.groupChange(c.ItemID, endOfData, false); changed {
				f.addGroupRows(c, old, false)
			}
		}
	}

	if !f.group.isGroupColumn(totalGroup) {
		return
	}
	for _, fn := range f.group.functionsFor(totalGroup) {
		f.pd.AddRow(true, f.levelNo, 0)
		for i, c := range f.columns {
			if i == 0 {
				name := fn.Name()
				if f.printFunctionSymbols {
					name = fn.Symbol()
				}
				if f.group.isFunctionColumnFor(c.ItemID, fn) {
					name += " " + f.group.value(totalGroup, c.ItemID, fn).String()
				}
				f.pd.AddNode(&domain.PrintDataElement{
					ItemID:        c.ItemID,
					ColumnName:    c.ColumnName,
					Value:         strings.TrimSpace(name),
					DisplayType:   domain.DisplayTypeString,
					FormatPattern: c.FormatPattern,
				})
				continue
			}
			if f.group.isFunctionColumnFor(c.ItemID, fn) {
				f.pd.AddNode(f.functionElement(totalGroup, c, fn, false))
			}
		}
	}
}

// addGroupRows emits one function row per function of the group. The
// grouping column carries the value of the group being closed.
func (f *folder) addGroupRows(groupColumn *domain.PrintDataColumn, value groupValue, pageBreak bool) {
	for _, fn := range f.group.functionsFor(groupColumn.ItemID) {
		f.pd.AddRow(true, f.levelNo, 0)
		for _, c := range f.columns {
			if c.ItemID == groupColumn.ItemID {
				label := value.String()
				if t, ok := value.value.(time.Time); ok {
					label = formatDate(t, c.FormatPattern, c.DisplayType)
				}
				if f.printFunctionSymbols {
					label += fn.Symbol()
				}
				f.pd.AddNode(&domain.PrintDataElement{
					ItemID:        c.ItemID,
					ColumnName:    c.ColumnName,
					Value:         label,
					DisplayType:   domain.DisplayTypeString,
					IsPageBreak:   pageBreak && c.IsPageBreak,
					FormatPattern: c.FormatPattern,
				})
				continue
			}
			if f.group.isFunctionColumnFor(c.ItemID, fn) {
				f.pd.AddNode(f.functionElement(groupColumn.ItemID, c, fn, pageBreak && c.IsPageBreak))
			}
		}
	}
}

func (f *folder) functionElement(group int64, c *domain.PrintDataColumn, fn domain.AggregateFunction, pageBreak bool) *domain.PrintDataElement {
	return &domain.PrintDataElement{
		ItemID:        c.ItemID,
		ColumnName:    c.ColumnName,
		Value:         f.group.value(group, c.ItemID, fn),
		DisplayType:   fn.DisplayType(c.DisplayType),
		IsPageBreak:   pageBreak,
		FormatPattern: c.FormatPattern,
	}
}
