package pipeline

import (
	"strings"

	"go-etl-designer/internal/model"
)

// UnknownStepLabel is shown for a step whose op the designer does not know
const UnknownStepLabel = "Unknown step"

// Render returns the one-line display label of a step
func Render(step model.Step) string {
	switch step.Op {
	case model.OpDropColumns:
		return "Drop columns: " + strings.Join(step.Columns, ", ")
	case model.OpFilterRows:
		return "Filter: " + step.Column + " " + operatorSymbol(step.Operator) + " " + step.Value
	case model.OpAggregate:
		return "Aggregate by " + strings.Join(step.GroupColumns, ", ") + " (" + string(step.AggFunc) + ")"
	}
	return UnknownStepLabel
}

// Labels renders every step of a pipeline, in order
func Labels(steps []model.Step) []string {
	labels := make([]string, len(steps))
	for i, s := range steps {
		labels[i] = Render(s)
	}
	return labels
}

func operatorSymbol(op model.Operator) string {
	switch op {
	case model.OperatorEquals:
		return "=="
	case model.OperatorContains:
		return "contains"
	case model.OperatorGreaterThan:
		return ">"
	case model.OperatorLessThan:
		return "<"
	}
	return string(op)
}
