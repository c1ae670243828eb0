package market

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/figureit/career-engine/internal/llm"
)

// stubLLM returns canned JSON for every generation call.
type stubLLM struct {
	json    string
	err     error
	prompts []string
}

func (s *stubLLM) GenerateContent(_ context.Context, prompt string, _ llm.ModelTier) (string, error) {
	s.prompts = append(s.prompts, prompt)
	return s.json, s.err
}

func (s *stubLLM) GenerateJSON(_ context.Context, prompt string, _ llm.ModelTier) (string, error) {
	s.prompts = append(s.prompts, prompt)
	return s.json, s.err
}

func (s *stubLLM) GetModel(llm.ModelTier) string { return "stub-model" }
func (s *stubLLM) Close() error                  { return nil }

func TestLLMClassifier_ValidLabel(t *testing.T) {
	stub := &stubLLM{json: `{"trend": "rising"}`}
	classifier := NewLLMClassifier(stub, nil)

	trend, err := classifier.ClassifyTrend(context.Background(), "rust embedded")
	require.NoError(t, err)
	assert.Equal(t, TrendRising, trend)

	require.Len(t, stub.prompts, 1)
	assert.Contains(t, stub.prompts[0], "rust embedded")
}

func TestLLMClassifier_OffEnumLabelRejected(t *testing.T) {
	stub := &stubLLM{json: `{"trend": "exploding"}`}
	classifier := NewLLMClassifier(stub, nil)

	_, err := classifier.ClassifyTrend(context.Background(), "cobol")
	assert.Error(t, err)
}

func TestLLMClassifier_MalformedJSONRejected(t *testing.T) {
	stub := &stubLLM{json: `trend is rising`}
	classifier := NewLLMClassifier(stub, nil)

	_, err := classifier.ClassifyTrend(context.Background(), "zig")
	assert.Error(t, err)
}

func TestLLMClassifier_GenerationErrorPropagates(t *testing.T) {
	stub := &stubLLM{err: errors.New("quota exceeded")}
	classifier := NewLLMClassifier(stub, nil)

	_, err := classifier.ClassifyTrend(context.Background(), "elixir")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "elixir")
}
