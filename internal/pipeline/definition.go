package pipeline

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"go-etl-designer/internal/model"
)

// LoadDefinition reads a pipeline definition file. JSON files parse too.
func LoadDefinition(path string) (model.PipelineDefinition, error) {
	f, err := os.Open(path)
	if err != nil {
		return model.PipelineDefinition{}, errors.Wrapf(err, "open pipeline %s", path)
	}
	defer f.Close()

	def, err := ReadDefinition(f)
	return def, errors.Wrapf(err, "pipeline %s", path)
}

func ReadDefinition(r io.Reader) (model.PipelineDefinition, error) {
	var def model.PipelineDefinition
	if err := yaml.NewDecoder(r).Decode(&def); err != nil && err != io.EOF {
		return model.PipelineDefinition{}, errors.Wrap(err, "decode pipeline definition")
	}
	if def.Source == "" {
		def.Source = model.DefaultSourceName
	}
	if def.Output == "" {
		def.Output = model.DefaultOutputName
	}
	return def, nil
}

// Rejected is a definition step that failed the add-guard
type Rejected struct {
	Index int
	Step  model.Step
	Err   error
}

// FromDefinition appends every valid step of def to a fresh registry, in
// order, and reports the ones it skipped.
func FromDefinition(def model.PipelineDefinition) (*Registry, []Rejected) {
	reg := NewRegistry()
	var rejected []Rejected
	for i, step := range def.Steps {
		if err := step.Validate(); err != nil {
			rejected = append(rejected, Rejected{Index: i, Step: step, Err: err})
			continue
		}
		reg.Append(step)
	}
	return reg, rejected
}
