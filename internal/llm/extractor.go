// Package llm - extractor.go provides generic LLM-based structured extraction.
package llm

import (
	"fmt"
	"strings"
)

// ExtractionSchema defines the structure for LLM-based content extraction.
// It provides a reusable way to define what information to extract from text.
type ExtractionSchema struct {
	Name        string        // Schema name (e.g., "InterestSignals")
	Description string        // System prompt preamble describing the extraction task
	Fields      []SchemaField // Expected output fields
}

// SchemaField defines a single field in the extraction output.
type SchemaField struct {
	Name        string // JSON field name
	Type        string // Type hint: "number", "\"string\"", "[\"string\"]"
	Description string // Description for the LLM
	Required    bool   // Whether this field is required
}

// BuildExtractionPrompt constructs the LLM prompt from schema and input text.
func BuildExtractionPrompt(schema ExtractionSchema, inputText string) string {
	var sb strings.Builder

	sb.WriteString(schema.Description)
	sb.WriteString("\n\n")

	sb.WriteString("Return ONLY valid JSON matching this exact structure:\n{\n")
	for i, field := range schema.Fields {
		typeHint := field.Type
		if typeHint == "" {
			typeHint = "string"
		}
		requiredHint := ""
		if field.Required {
			requiredHint = " (required)"
		}
		sb.WriteString(fmt.Sprintf("  \"%s\": %s%s", field.Name, typeHint, requiredHint))
		if field.Description != "" {
			sb.WriteString(fmt.Sprintf(" // %s", field.Description))
		}
		if i < len(schema.Fields)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("}\n\n")

	sb.WriteString("IMPORTANT:\n")
	sb.WriteString("- Judge only from the text given, do not invent signals.\n")
	sb.WriteString("- Return ONLY the JSON object, no markdown, no explanation, no code blocks.\n\n")

	sb.WriteString("Input text:\n\"\"\"\n")
	sb.WriteString(inputText)
	sb.WriteString("\n\"\"\"\n")

	return sb.String()
}

// --- Predefined Schemas ---

// InterestSignalsSchema returns the extraction schema for interest bias.
// The analyzer reads free-text answers about what the student enjoys and
// scores three fixed interest categories.
func InterestSignalsSchema() ExtractionSchema {
	return ExtractionSchema{
		Name: "InterestSignals",
		Description: `You are a career counselor reading a student's own words about what they enjoy working on.
Score how strongly the text signals genuine interest in each category. Use the full 0.0-1.0 range.
Do not reward mere mentions; reward enthusiasm, detail, and repeated themes.`,
		Fields: []SchemaField{
			{
				Name:        "development",
				Type:        "number",
				Description: "Interest in building software products and shipping features, 0.0-1.0",
				Required:    true,
			},
			{
				Name:        "problem_solving",
				Type:        "number",
				Description: "Interest in algorithmic puzzles and abstract problem solving, 0.0-1.0",
				Required:    true,
			},
			{
				Name:        "data",
				Type:        "number",
				Description: "Interest in data, statistics, and machine learning, 0.0-1.0",
				Required:    true,
			},
		},
	}
}

// SkillTrendSchema returns the extraction schema for hiring-trend labels on
// skills missing from the static market table.
func SkillTrendSchema() ExtractionSchema {
	return ExtractionSchema{
		Name: "SkillTrend",
		Description: `You are a hiring-market analyst. Classify the current junior-hiring trend for the given technology skill.
Pick exactly one label: "rising" (growing demand), "stable" (flat demand), "declining" (shrinking demand), "niche" (real but very small market).`,
		Fields: []SchemaField{
			{
				Name:        "trend",
				Type:        "\"string\"",
				Description: "One of: rising, stable, declining, niche",
				Required:    true,
			},
		},
	}
}

// PathOverrideSchema returns the extraction schema for explicit user path
// overrides ("I want to do X anyway").
func PathOverrideSchema() ExtractionSchema {
	return ExtractionSchema{
		Name: "PathOverride",
		Description: `A student is pushing back on a recommendation and naming the career path they want instead.
Identify which canonical path they mean: "Frontend Engineering", "Backend Engineering", "Data Science / ML", or "Competitive Programming".
If no canonical path clearly matches, return an empty string.`,
		Fields: []SchemaField{
			{
				Name:        "target_path",
				Type:        "\"string\"",
				Description: "The canonical path name, or \"\" when unclear",
				Required:    true,
			},
		},
	}
}

// MessageIntentSchema returns the extraction schema for routing chat messages.
func MessageIntentSchema() ExtractionSchema {
	return ExtractionSchema{
		Name: "MessageIntent",
		Description: `Classify a student's chat message into exactly one intent:
"panic" (anxiety, feeling behind, despair), "override" (rejecting the recommendation, wanting a different path),
"explanation" (asking why a recommendation was made), "roadmap" (asking what to do next),
"learning" (asking how a concept works), "casual" (anything else).`,
		Fields: []SchemaField{
			{
				Name:        "intent",
				Type:        "\"string\"",
				Description: "One of: panic, override, explanation, roadmap, learning, casual",
				Required:    true,
			},
		},
	}
}
