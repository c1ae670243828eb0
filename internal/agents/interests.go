// Package agents holds the conversational and judgment agents. Every agent is
// a thin, stateless wrapper over the LLM client; durable state lives in the
// session's UserState, never here.
package agents

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/figureit/career-engine/internal/llm"
	"github.com/figureit/career-engine/internal/schemas"
	"github.com/figureit/career-engine/internal/types"
)

// Confidence thresholds over the strongest interest signal.
const (
	highConfidenceMin = 0.7
	lowConfidenceMax  = 0.4
)

// neutralBias is attached when extraction fails; it keeps downstream scoring
// working without letting a failed call masquerade as real signal.
const neutralBias = 0.3

// InterestAnalyzer extracts soft interest signals from a student's free-text
// answers about what they enjoy.
type InterestAnalyzer struct {
	client llm.Client
	logger *zap.Logger
}

// NewInterestAnalyzer builds the analyzer; a nil logger is replaced with a nop.
func NewInterestAnalyzer(client llm.Client, logger *zap.Logger) *InterestAnalyzer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InterestAnalyzer{client: client, logger: logger}
}

// Analyze scores the three interest categories from freeText. It never
// returns an error: any extraction failure degrades to a neutral profile
// with LOW confidence so the caller can proceed.
func (a *InterestAnalyzer) Analyze(ctx context.Context, freeText string) *types.InterestProfile {
	bias, ok := a.extract(ctx, freeText)
	if !ok {
		bias = map[string]float64{
			"development":     neutralBias,
			"problem_solving": neutralBias,
			"data":            neutralBias,
		}
	}

	profile := &types.InterestProfile{
		InterestBias: bias,
		LastUpdated:  time.Now().UTC(),
	}
	if !ok {
		profile.ConfidenceLevel = types.ConfidenceLow
		profile.ExplorationAllowed = true
		return profile
	}

	strongest := 0.0
	for _, v := range bias {
		if v > strongest {
			strongest = v
		}
	}
	switch {
	case strongest >= highConfidenceMin:
		profile.ConfidenceLevel = types.ConfidenceHigh
	case strongest <= lowConfidenceMax:
		profile.ConfidenceLevel = types.ConfidenceLow
	default:
		profile.ConfidenceLevel = types.ConfidenceMedium
	}
	profile.ExplorationAllowed = profile.ConfidenceLevel != types.ConfidenceHigh

	return profile
}

func (a *InterestAnalyzer) extract(ctx context.Context, freeText string) (map[string]float64, bool) {
	prompt := llm.BuildExtractionPrompt(llm.InterestSignalsSchema(), freeText)

	raw, err := a.client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		a.logger.Warn("interest extraction failed", zap.Error(err))
		return nil, false
	}
	if err := schemas.Validate(schemas.InterestSignals, raw); err != nil {
		a.logger.Warn("interest response failed schema check", zap.Error(err))
		return nil, false
	}

	var out struct {
		Development    float64 `json:"development"`
		ProblemSolving float64 `json:"problem_solving"`
		Data           float64 `json:"data"`
	}
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		a.logger.Warn("interest response unparseable", zap.Error(err))
		return nil, false
	}

	return map[string]float64{
		"development":     out.Development,
		"problem_solving": out.ProblemSolving,
		"data":            out.Data,
	}, true
}
