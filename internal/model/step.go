package model

import (
	"github.com/pkg/errors"
)

// StepOp discriminates the kind of transformation a Step describes
type StepOp string

const (
	OpDropColumns StepOp = "drop"
	OpFilterRows  StepOp = "filter"
	OpAggregate   StepOp = "agg"
)

// Operator is the comparison used by a filter step
type Operator string

const (
	OperatorEquals      Operator = "=="
	OperatorContains    Operator = "contains"
	OperatorGreaterThan Operator = ">"
	OperatorLessThan    Operator = "<"
)

// Operators lists the filter operators in the order the designer offers them.
var Operators = []Operator{OperatorEquals, OperatorContains, OperatorGreaterThan, OperatorLessThan}

// AggFunc is the reduction applied to the value column of an aggregate step
type AggFunc string

const (
	AggSum    AggFunc = "sum"
	AggMean   AggFunc = "mean"
	AggMedian AggFunc = "median"
	AggMax    AggFunc = "max"
	AggMin    AggFunc = "min"
)

// AggFuncs lists the aggregate functions in the order the designer offers them.
var AggFuncs = []AggFunc{AggSum, AggMean, AggMedian, AggMax, AggMin}

// Step is one transformation descriptor. Only the fields belonging to Op are meaningful.
type Step struct {
	ID string `json:"id,omitempty" yaml:"id,omitempty"` // identity token, assigned on append
	Op StepOp `json:"op" yaml:"op"`

	// drop
	Columns []string `json:"cols,omitempty" yaml:"cols,omitempty"`

	// filter
	Column   string   `json:"col,omitempty" yaml:"col,omitempty"`
	Operator Operator `json:"operator,omitempty" yaml:"operator,omitempty"`
	Value    string   `json:"value,omitempty" yaml:"value,omitempty"` // opaque text, never coerced

	// agg
	GroupColumns []string `json:"group_cols,omitempty" yaml:"group_cols,omitempty"`
	ValueColumn  string   `json:"value_col,omitempty" yaml:"value_col,omitempty"`
	AggFunc      AggFunc  `json:"agg_func,omitempty" yaml:"agg_func,omitempty"`
}

func DropColumns(columns ...string) Step {
	return Step{Op: OpDropColumns, Columns: columns}
}

func FilterRows(column string, op Operator, value string) Step {
	return Step{Op: OpFilterRows, Column: column, Operator: op, Value: value}
}

func Aggregate(groupColumns []string, valueColumn string, fn AggFunc) Step {
	return Step{Op: OpAggregate, GroupColumns: groupColumns, ValueColumn: valueColumn, AggFunc: fn}
}

// ErrInvalidStep marks a step that the add action must reject.
var ErrInvalidStep = errors.New("invalid step")

// Validate is the add-guard: it reports why a step may not join a pipeline.
// Column existence and value types are never checked.
func (s Step) Validate() error {
	switch s.Op {
	case OpDropColumns:
		if len(s.Columns) == 0 {
			return errors.Wrap(ErrInvalidStep, "drop step needs at least one column")
		}
	case OpFilterRows:
		if s.Value == "" {
			return errors.Wrap(ErrInvalidStep, "filter step needs a value")
		}
		if !s.Operator.Valid() {
			return errors.Wrapf(ErrInvalidStep, "unknown filter operator %q", s.Operator)
		}
	case OpAggregate:
		if len(s.GroupColumns) == 0 {
			return errors.Wrap(ErrInvalidStep, "aggregate step needs at least one group-by column")
		}
		if !s.AggFunc.Valid() {
			return errors.Wrapf(ErrInvalidStep, "unknown aggregate function %q", s.AggFunc)
		}
	default:
		return errors.Wrapf(ErrInvalidStep, "unknown step op %q", s.Op)
	}
	return nil
}

func (o Operator) Valid() bool {
	for _, known := range Operators {
		if o == known {
			return true
		}
	}
	return false
}

func (f AggFunc) Valid() bool {
	for _, known := range AggFuncs {
		if f == known {
			return true
		}
	}
	return false
}

// Clone returns a copy that shares no slices with s.
func (s Step) Clone() Step {
	c := s
	if s.Columns != nil {
		c.Columns = append([]string(nil), s.Columns...)
	}
	if s.GroupColumns != nil {
		c.GroupColumns = append([]string(nil), s.GroupColumns...)
	}
	return c
}
