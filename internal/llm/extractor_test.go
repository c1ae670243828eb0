package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildExtractionPrompt_IncludesFieldsAndInput(t *testing.T) {
	schema := ExtractionSchema{
		Name:        "Test",
		Description: "Extract things.",
		Fields: []SchemaField{
			{Name: "alpha", Type: "number", Description: "first", Required: true},
			{Name: "beta", Type: "\"string\""},
		},
	}

	prompt := BuildExtractionPrompt(schema, "some user text")

	assert.Contains(t, prompt, "Extract things.")
	assert.Contains(t, prompt, `"alpha": number (required)`)
	assert.Contains(t, prompt, `"beta": "string"`)
	assert.Contains(t, prompt, "some user text")
	assert.Contains(t, prompt, "Return ONLY valid JSON")
}

func TestInterestSignalsSchema_CoversAllBiasCategories(t *testing.T) {
	schema := InterestSignalsSchema()

	names := make([]string, 0, len(schema.Fields))
	for _, f := range schema.Fields {
		names = append(names, f.Name)
		assert.True(t, f.Required, "field %s must be required", f.Name)
	}
	assert.ElementsMatch(t, []string{"development", "problem_solving", "data"}, names)
}

func TestSkillTrendSchema_SingleRequiredLabel(t *testing.T) {
	schema := SkillTrendSchema()

	assert.Len(t, schema.Fields, 1)
	assert.Equal(t, "trend", schema.Fields[0].Name)
	assert.True(t, schema.Fields[0].Required)
}
