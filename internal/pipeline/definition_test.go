package pipeline

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-etl-designer/internal/model"
)

const definitionYAML = `
source: sales.csv
steps:
  - op: drop
    cols: [notes]
  - op: filter
    col: amount
    operator: ">"
    value: "100"
  - op: filter
    col: region
    operator: "=="
    value: ""
  - op: agg
    group_cols: [region]
    value_col: amount
    agg_func: sum
`

func TestReadDefinition(t *testing.T) {
	def, err := ReadDefinition(strings.NewReader(definitionYAML))
	require.NoError(t, err)

	assert.Equal(t, "sales.csv", def.Source)
	assert.Equal(t, model.DefaultOutputName, def.Output)
	require.Len(t, def.Steps, 4)
	assert.Equal(t, model.FilterRows("amount", model.OperatorGreaterThan, "100"), def.Steps[1])
	assert.Equal(t, model.Aggregate([]string{"region"}, "amount", model.AggSum), def.Steps[3])
}

func TestReadDefinitionJSON(t *testing.T) {
	def, err := ReadDefinition(strings.NewReader(`{"steps":[{"op":"drop","cols":["x"]}]}`))
	require.NoError(t, err)

	assert.Equal(t, model.DefaultSourceName, def.Source)
	assert.Equal(t, []model.Step{model.DropColumns("x")}, def.Steps)
}

func TestFromDefinitionSkipsInvalidSteps(t *testing.T) {
	def, err := ReadDefinition(strings.NewReader(definitionYAML))
	require.NoError(t, err)

	reg, rejected := FromDefinition(def)

	require.Len(t, rejected, 1)
	assert.Equal(t, 2, rejected[0].Index)
	assert.Equal(t, []string{
		"Drop columns: notes",
		"Filter: amount > 100",
		"Aggregate by region (sum)",
	}, reg.Labels())
}

func TestLoadDefinitionMissingFile(t *testing.T) {
	_, err := LoadDefinition(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadDefinition(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pipeline.yaml")
	require.NoError(t, os.WriteFile(path, []byte(definitionYAML), 0644))

	def, err := LoadDefinition(path)
	require.NoError(t, err)
	assert.Len(t, def.Steps, 4)
}
