// Package session holds the per-user designer state: the uploaded source and
// the step pipeline built against it. Nothing here outlives the process.
package session

import (
	"sync"
	"time"

	"go-etl-designer/internal/model"
	"go-etl-designer/internal/pipeline"
)

// Session is the explicit context every designer action runs against.
// Use Do to apply an action; it serialises access to the session's state.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu       sync.Mutex
	source   model.SourceDescriptor
	table    *model.Table
	pipeline *pipeline.Registry
}

func New(id string) *Session {
	return &Session{
		ID:        id,
		CreatedAt: time.Now().UTC(),
		source:    model.SourceDescriptor{Name: model.DefaultSourceName},
		pipeline:  pipeline.NewRegistry(),
	}
}

// Do runs fn with exclusive access to the session
func (s *Session) Do(fn func(s *Session)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s)
}

// SetSource records a (re-)upload. The pipeline is kept as is.
func (s *Session) SetSource(name string, table *model.Table) {
	if name == "" {
		name = model.DefaultSourceName
	}
	s.source = model.SourceDescriptor{Name: name}
	s.table = table
}

func (s *Session) Source() model.SourceDescriptor {
	return s.source
}

// Table returns the last upload, or nil before the first one
func (s *Session) Table() *model.Table {
	return s.table
}

// AddStep appends step when it passes the add-guard. A rejected step leaves
// the pipeline untouched and is reported only through ok.
func (s *Session) AddStep(step model.Step) (added model.Step, ok bool) {
	if err := step.Validate(); err != nil {
		return model.Step{}, false
	}
	return s.pipeline.Append(step), true
}

func (s *Session) Pipeline() *pipeline.Registry {
	return s.pipeline
}

// Script generates the pandas script for the current pipeline
func (s *Session) Script(output string) string {
	if output == "" {
		output = model.DefaultOutputName
	}
	return pipeline.GenerateTo(s.source, s.pipeline.Steps(), output)
}

// View snapshots the session for display
func (s *Session) View() model.SessionView {
	view := model.SessionView{
		ID:             s.ID,
		Source:         s.source.Name,
		Columns:        []string{},
		NumericColumns: []string{},
		CreatedAt:      s.CreatedAt,
	}
	if s.table != nil {
		view.Columns = append(view.Columns, s.table.Columns...)
		view.NumericColumns = append(view.NumericColumns, s.table.NumericColumns...)
	}
	view.Steps = StepViews(s.pipeline.Steps())
	return view
}

// StepViews pairs each step with its render label
func StepViews(steps []model.Step) []model.StepView {
	views := make([]model.StepView, len(steps))
	for i, st := range steps {
		views[i] = model.StepView{Step: st, Label: pipeline.Render(st)}
	}
	return views
}
