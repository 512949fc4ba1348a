package model

import "time"

// DefaultSourceName is the load target used before anything is uploaded
const DefaultSourceName = "input.csv"

// DefaultOutputName is the file the generated script writes
const DefaultOutputName = "output.csv"

// SourceDescriptor identifies the uploaded table the generated script loads
type SourceDescriptor struct {
	Name string `json:"name" yaml:"name"`
}

// Table is the parsed upload kept for preview and for populating step forms
type Table struct {
	Columns        []string   `json:"columns"`
	NumericColumns []string   `json:"numericColumns"` // candidates for an aggregate value column
	Rows           [][]string `json:"rows"`           // first N rows only
	RowCount       int        `json:"rowCount"`
}

// PipelineDefinition is a pipeline stored outside a session (CLI input)
type PipelineDefinition struct {
	Source string `json:"source" yaml:"source"`
	Output string `json:"output,omitempty" yaml:"output,omitempty"`
	Steps  []Step `json:"steps" yaml:"steps"`
}

// StepView is a step as the designer shows it
type StepView struct {
	Step  Step   `json:"step"`
	Label string `json:"label"`
}

// SessionView is the JSON form of a session
type SessionView struct {
	ID             string     `json:"id"`
	Source         string     `json:"source"`
	Columns        []string   `json:"columns"`
	NumericColumns []string   `json:"numericColumns"`
	Steps          []StepView `json:"steps"`
	CreatedAt      time.Time  `json:"createdAt"`
}

// ReorderRequest is the body of PUT /sessions/{id}/steps/order. IDs win over labels.
type ReorderRequest struct {
	Labels []string `json:"labels,omitempty"`
	IDs    []string `json:"ids,omitempty"`
}

// ScriptRecord is one generated-script download
type ScriptRecord struct {
	ID        int64     `json:"id"`
	SessionID string    `json:"sessionId"`
	Source    string    `json:"source"`
	StepCount int       `json:"stepCount"`
	Script    string    `json:"script,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
