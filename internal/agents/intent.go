package agents

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/figureit/career-engine/internal/llm"
	"github.com/figureit/career-engine/internal/schemas"
)

// Intent is the routing label for one chat message.
type Intent string

// Message intents, in routing priority order.
const (
	IntentPanic       Intent = "panic"
	IntentOverride    Intent = "override"
	IntentExplanation Intent = "explanation"
	IntentRoadmap     Intent = "roadmap"
	IntentLearning    Intent = "learning"
	IntentCasual      Intent = "casual"
)

// IntentClassifier routes chat messages to the right agent.
type IntentClassifier struct {
	client llm.Client
	logger *zap.Logger
}

// NewIntentClassifier builds the classifier; a nil logger is replaced with a nop.
func NewIntentClassifier(client llm.Client, logger *zap.Logger) *IntentClassifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &IntentClassifier{client: client, logger: logger}
}

// Classify labels a message. Any failure degrades to IntentCasual so a chat
// turn never hard-fails on the router.
func (c *IntentClassifier) Classify(ctx context.Context, message string) Intent {
	prompt := llm.BuildExtractionPrompt(llm.MessageIntentSchema(), message)

	raw, err := c.client.GenerateJSON(ctx, prompt, llm.TierLite)
	if err != nil {
		c.logger.Warn("intent classification failed", zap.Error(err))
		return IntentCasual
	}
	if err := schemas.Validate(schemas.MessageIntent, raw); err != nil {
		c.logger.Warn("intent response failed schema check", zap.Error(err))
		return IntentCasual
	}

	var out struct {
		Intent string `json:"intent"`
	}
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return IntentCasual
	}
	return Intent(out.Intent)
}
