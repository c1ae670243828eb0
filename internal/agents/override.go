package agents

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/figureit/career-engine/internal/llm"
	"github.com/figureit/career-engine/internal/schemas"
)

// OverrideAgent resolves which canonical path a student wants when they push
// back on a recommendation.
type OverrideAgent struct {
	client llm.Client
	logger *zap.Logger
}

// NewOverrideAgent builds the agent; a nil logger is replaced with a nop.
func NewOverrideAgent(client llm.Client, logger *zap.Logger) *OverrideAgent {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OverrideAgent{client: client, logger: logger}
}

// ExtractTarget returns the canonical path the student named, or "" when the
// message does not clearly point at one.
func (o *OverrideAgent) ExtractTarget(ctx context.Context, message string) (string, error) {
	prompt := llm.BuildExtractionPrompt(llm.PathOverrideSchema(), message)

	raw, err := o.client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		return "", fmt.Errorf("override extraction: %w", err)
	}
	if err := schemas.Validate(schemas.PathOverride, raw); err != nil {
		o.logger.Warn("override response failed schema check", zap.Error(err))
		return "", fmt.Errorf("override extraction: %w", err)
	}

	var out struct {
		TargetPath string `json:"target_path"`
	}
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return "", fmt.Errorf("override extraction: %w", err)
	}
	return out.TargetPath, nil
}
