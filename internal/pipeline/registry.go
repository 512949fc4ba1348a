package pipeline

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"go-etl-designer/internal/model"
)

// ErrNotPermutation is returned when a reorder request is not a rearrangement
// of the current pipeline.
var ErrNotPermutation = errors.New("order is not a permutation of the pipeline")

// Registry is the ordered step list of one session.
// Steps are only ever appended or reordered as a whole; nothing removes one.
type Registry struct {
	steps []model.Step
	newID func() string
}

func NewRegistry() *Registry {
	return &Registry{newID: uuid.NewString}
}

// Append assigns the step its identity token and adds it at the end
func (r *Registry) Append(step model.Step) model.Step {
	step = step.Clone()
	step.ID = r.newID()
	r.steps = append(r.steps, step)
	return step.Clone()
}

// Steps returns a copy of the pipeline in execution order
func (r *Registry) Steps() []model.Step {
	out := make([]model.Step, len(r.steps))
	for i, s := range r.steps {
		out[i] = s.Clone()
	}
	return out
}

func (r *Registry) Labels() []string {
	return Labels(r.steps)
}

func (r *Registry) Len() int {
	return len(r.steps)
}

// Reorder rearranges the pipeline to follow labels, as produced by Render.
// Labels are not unique, so each one takes the first matching step not yet
// taken. On error the pipeline is left as it was.
func (r *Registry) Reorder(labels []string) error {
	current := r.Labels()
	return r.permute(labels, func(i int) string { return current[i] })
}

// ReorderByID rearranges the pipeline to follow the steps' identity tokens
func (r *Registry) ReorderByID(ids []string) error {
	return r.permute(ids, func(i int) string { return r.steps[i].ID })
}

func (r *Registry) permute(order []string, key func(i int) string) error {
	if len(order) != len(r.steps) {
		return errors.Wrapf(ErrNotPermutation, "got %d entries for %d steps", len(order), len(r.steps))
	}

	used := make([]bool, len(r.steps))
	next := make([]model.Step, 0, len(r.steps))
	for _, want := range order {
		idx := -1
		for i := range r.steps {
			if !used[i] && key(i) == want {
				idx = i
				break
			}
		}
		if idx < 0 {
			return errors.Wrapf(ErrNotPermutation, "no unused step matches %q", want)
		}
		used[idx] = true
		next = append(next, r.steps[idx])
	}

	r.steps = next
	return nil
}
