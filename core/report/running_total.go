package report

import "github.com/goto/folio/domain"

// addRunningTotal appends a running total row after every runningTotalLines
// data rows. It carries the grand total sum of every summed column and
// starts a new page. Accumulators are only read.
func (f *folder) addRunningTotal() {
	if f.runningTotalLines < 1 || f.dataRows%f.runningTotalLines != 0 {
		return
	}

	f.pd.AddRow(true, f.levelNo, 0)
	for i, c := range f.columns {
		if i == 0 {
			f.pd.AddNode(&domain.PrintDataElement{
				ItemID:        c.ItemID,
				ColumnName:    c.ColumnName,
				Value:         runningTotalTitle,
				DisplayType:   domain.DisplayTypeString,
				IsPageBreak:   true,
				FormatPattern: c.FormatPattern,
			})
			continue
		}
		if f.group.isFunctionColumnFor(c.ItemID, domain.FunctionSum) {
			f.pd.AddNode(f.functionElement(totalGroup, c, domain.FunctionSum, false))
		}
	}
}
