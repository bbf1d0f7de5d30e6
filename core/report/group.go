package report

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cast"

	"github.com/goto/folio/domain"
)

// totalGroup is the implicit grand total group, registered with the first
// aggregate function.
const totalGroup int64 = -1

// groupValue is the last seen value of a grouping column.
type groupValue struct {
	key   string
	value interface{}
}

const nullGroupKey = "\x00null"

func newGroupValue(v interface{}) groupValue {
	if v == nil {
		return groupValue{key: nullGroupKey}
	}
	var key string
	switch tv := v.(type) {
	case time.Time:
		key = tv.UTC().Format(time.RFC3339Nano)
	case fmt.Stringer:
		key = tv.String()
	default:
		key = cast.ToString(v)
	}
	return groupValue{key: key, value: v}
}

// String renders the value on a function row.
func (g groupValue) String() string {
	if g.value == nil {
		return ""
	}
	if s, ok := g.value.(fmt.Stringer); ok {
		return s.String()
	}
	return cast.ToString(g.value)
}

type accumulatorKey struct {
	group  int64
	column int64
}

type functionKey struct {
	column int64
	fn     domain.AggregateFunction
}

// groupEngine tracks grouping columns and the aggregate functions computed
// per group. Groups are item ids of grouping columns plus totalGroup.
type groupEngine struct {
	groups       []int64
	functions    []functionKey
	functionSet  map[functionKey]bool
	last         map[int64]groupValue
	accumulators map[accumulatorKey]*accumulator
	// touched lists the columns with an accumulator per group, in the order
	// they were first fed.
	touched map[int64][]int64
}

func newGroupEngine() *groupEngine {
	return &groupEngine{
		functionSet:  map[functionKey]bool{},
		last:         map[int64]groupValue{},
		accumulators: map[accumulatorKey]*accumulator{},
		touched:      map[int64][]int64{},
	}
}

func (g *groupEngine) addGroupColumn(itemID int64) {
	if g.isGroupColumn(itemID) {
		return
	}
	g.groups = append(g.groups, itemID)
}

func (g *groupEngine) addFunction(itemID int64, fn domain.AggregateFunction) {
	key := functionKey{column: itemID, fn: fn}
	if g.functionSet[key] {
		return
	}
	g.functionSet[key] = true
	g.functions = append(g.functions, key)
	if !g.isGroupColumn(totalGroup) {
		g.groups = append(g.groups, totalGroup)
	}
}

func (g *groupEngine) isGroupColumn(itemID int64) bool {
	for _, id := range g.groups {
		if id == itemID {
			return true
		}
	}
	return false
}

func (g *groupEngine) groupCount() int {
	return len(g.groups)
}

func (g *groupEngine) hasFunctions() bool {
	return len(g.functions) > 0
}

func (g *groupEngine) isFunctionColumn(itemID int64) bool {
	for _, f := range g.functions {
		if f.column == itemID {
			return true
		}
	}
	return false
}

func (g *groupEngine) isFunctionColumnFor(itemID int64, fn domain.AggregateFunction) bool {
	return g.functionSet[functionKey{column: itemID, fn: fn}]
}

// groupChange records value for the grouping column. It returns the
// previous value when the group breaks: the value differs or force is set.
// The first value seen by a group never breaks it.
func (g *groupEngine) groupChange(itemID int64, value groupValue, force bool) (groupValue, bool) {
	if !g.isGroupColumn(itemID) {
		return groupValue{}, false
	}
	old, seen := g.last[itemID]
	g.last[itemID] = value
	if !seen {
		return groupValue{}, false
	}
	if old.key == value.key && !force {
		return groupValue{}, false
	}
	return old, true
}

// functions returns the functions to emit for a group: those registered on
// columns that received values in the group, in registration order.
func (g *groupEngine) functionsFor(group int64) []domain.AggregateFunction {
	columns := map[int64]bool{}
	for _, c := range g.touched[group] {
		columns[c] = true
	}

	var fns []domain.AggregateFunction
	seen := map[domain.AggregateFunction]bool{}
	for _, f := range g.functions {
		if !columns[f.column] || seen[f.fn] {
			continue
		}
		seen[f.fn] = true
		fns = append(fns, f.fn)
	}
	return fns
}

// addValue feeds the value of a function column into every group.
func (g *groupEngine) addValue(itemID int64, v decimal.Decimal) {
	if !g.isFunctionColumn(itemID) {
		return
	}
	for _, group := range g.groups {
		key := accumulatorKey{group: group, column: itemID}
		acc, ok := g.accumulators[key]
		if !ok {
			acc = &accumulator{}
			g.accumulators[key] = acc
			g.touched[group] = append(g.touched[group], itemID)
		}
		acc.add(v)
	}
}

func (g *groupEngine) value(group, itemID int64, fn domain.AggregateFunction) decimal.Decimal {
	acc, ok := g.accumulators[accumulatorKey{group: group, column: itemID}]
	if !ok {
		return decimal.Zero
	}
	return acc.value(fn)
}

func (g *groupEngine) reset(group, itemID int64) {
	if acc, ok := g.accumulators[accumulatorKey{group: group, column: itemID}]; ok {
		acc.reset()
	}
}
