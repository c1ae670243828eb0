package market

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/figureit/career-engine/internal/llm"
	"github.com/figureit/career-engine/internal/schemas"
)

// LLMClassifier resolves hiring trends for skills missing from the static
// table by asking a lite-tier model for a single label. Responses are
// schema-checked before the label is trusted; anything off-enum is an error
// so the caller falls back to the neutral multiplier.
type LLMClassifier struct {
	client llm.Client
	logger *zap.Logger
}

// NewLLMClassifier wraps an LLM client as a TrendClassifier.
func NewLLMClassifier(client llm.Client, logger *zap.Logger) *LLMClassifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LLMClassifier{client: client, logger: logger}
}

// ClassifyTrend asks the model for the skill's hiring trend.
func (c *LLMClassifier) ClassifyTrend(ctx context.Context, skill string) (Trend, error) {
	prompt := llm.BuildExtractionPrompt(llm.SkillTrendSchema(), skill)

	raw, err := c.client.GenerateJSON(ctx, prompt, llm.TierLite)
	if err != nil {
		return "", fmt.Errorf("trend classification for %q: %w", skill, err)
	}

	if err := schemas.Validate(schemas.SkillTrend, raw); err != nil {
		c.logger.Warn("trend response failed schema check",
			zap.String("skill", skill),
			zap.Error(err))
		return "", fmt.Errorf("trend classification for %q: %w", skill, err)
	}

	var out struct {
		Trend string `json:"trend"`
	}
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return "", fmt.Errorf("trend classification for %q: %w", skill, err)
	}

	c.logger.Debug("classified skill trend",
		zap.String("skill", skill),
		zap.String("trend", out.Trend))
	return Trend(out.Trend), nil
}
