package pipeline

import (
	"fmt"
	"strings"

	"go-etl-designer/internal/model"
)

// ScriptFileName is the name the generated script is offered under
const ScriptFileName = "etl_pipeline.py"

// unknownStepCode is emitted for a step whose op the generator does not know
const unknownStepCode = "# unknown op"

// Generate returns a standalone pandas script that loads source, applies steps
// in order and saves the result to model.DefaultOutputName.
func Generate(source model.SourceDescriptor, steps []model.Step) string {
	return GenerateTo(source, steps, model.DefaultOutputName)
}

// GenerateTo is Generate with a caller-chosen output file.
// Statement blocks are separated by one blank line; nothing is validated
// against the data, so a missing column only fails when the script runs.
func GenerateTo(source model.SourceDescriptor, steps []model.Step, output string) string {
	blocks := make([]string, 0, len(steps)+2)
	blocks = append(blocks, preamble(source))
	for _, step := range steps {
		blocks = append(blocks, StepCode(step))
	}
	blocks = append(blocks, fmt.Sprintf("df.to_csv(%s, index=False)", pyQuote(output)))
	return strings.Join(blocks, "\n\n")
}

func preamble(source model.SourceDescriptor) string {
	name := source.Name
	if name == "" {
		name = model.DefaultSourceName
	}
	return "import pandas as pd\n" + fmt.Sprintf("df = pd.read_csv(%s)", pyQuote(name))
}

// StepCode returns the single statement that applies step to df
func StepCode(step model.Step) string {
	switch step.Op {
	case model.OpDropColumns:
		return fmt.Sprintf("df = df.drop(columns=%s)", pyList(step.Columns))

	case model.OpFilterRows:
		col := "df[" + pyQuote(step.Column) + "]"
		if step.Operator == model.OperatorContains {
			return fmt.Sprintf("df = df[%s.str.contains(%s, regex=False, na=False)]", col, pyQuote(step.Value))
		}
		// The value goes in unquoted: string comparisons need the author to type the quotes.
		return fmt.Sprintf("df = df[%s %s %s]", col, operatorSymbol(step.Operator), step.Value)

	case model.OpAggregate:
		return fmt.Sprintf("df = (df.groupby(%s).agg({%s:%s}).reset_index())",
			pyList(step.GroupColumns), pyQuote(step.ValueColumn), pyQuote(string(step.AggFunc)))
	}
	return unknownStepCode
}

// pyQuote renders s as a double-quoted Python string literal
func pyQuote(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// pyRepr mirrors Python's repr() of a str: single quotes unless the text
// holds a single quote and no double quote.
func pyRepr(s string) string {
	quote := byte('\'')
	if strings.ContainsRune(s, '\'') && !strings.ContainsRune(s, '"') {
		quote = '"'
	}

	var b strings.Builder
	b.WriteByte(quote)
	for _, r := range s {
		switch {
		case r == '\\':
			b.WriteString(`\\`)
		case r == rune(quote):
			b.WriteByte('\\')
			b.WriteByte(quote)
		case r == '\n':
			b.WriteString(`\n`)
		case r == '\r':
			b.WriteString(`\r`)
		case r == '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte(quote)
	return b.String()
}

// pyList renders items the way Python prints a list of strings
func pyList(items []string) string {
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = pyRepr(item)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
