package agents

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/figureit/career-engine/internal/llm"
	"github.com/figureit/career-engine/internal/prompts"
	"github.com/figureit/career-engine/internal/types"
)

const promptFile = "agents.json"

// Advisor answers general career questions grounded in the current decision.
type Advisor struct {
	client llm.Client
	logger *zap.Logger
}

// NewAdvisor builds the advisor; a nil logger is replaced with a nop.
func NewAdvisor(client llm.Client, logger *zap.Logger) *Advisor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Advisor{client: client, logger: logger}
}

// Respond answers a message in the frame of the current partition.
func (a *Advisor) Respond(ctx context.Context, message string, state *types.DecisionState) (string, error) {
	template, err := prompts.Get(promptFile, "advisor-system")
	if err != nil {
		return "", err
	}

	prompt := prompts.Format(template, map[string]string{
		"Focus":   joinOr(state.Focus, "none yet"),
		"Park":    joinOr(state.Park, "none"),
		"Drop":    joinOr(state.Drop, "none"),
		"Message": message,
	})

	reply, err := a.client.GenerateContent(ctx, prompt, llm.TierAdvanced)
	if err != nil {
		return "", fmt.Errorf("advisor response: %w", err)
	}
	return reply, nil
}

// PanicBot de-escalates anxiety spikes without adding goals.
type PanicBot struct {
	client llm.Client
	logger *zap.Logger
}

// NewPanicBot builds the bot; a nil logger is replaced with a nop.
func NewPanicBot(client llm.Client, logger *zap.Logger) *PanicBot {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PanicBot{client: client, logger: logger}
}

// Respond produces a grounding reply anchored on real evidence.
func (p *PanicBot) Respond(ctx context.Context, message string, state *types.DecisionState, evidence *types.EvidenceProfile) (string, error) {
	template, err := prompts.Get(promptFile, "panic-response")
	if err != nil {
		return "", err
	}

	prompt := prompts.Format(template, map[string]string{
		"Focus":    joinOr(focusOf(state), "still being decided"),
		"Evidence": summarizeEvidence(evidence),
		"Message":  message,
	})

	reply, err := p.client.GenerateContent(ctx, prompt, llm.TierStandard)
	if err != nil {
		return "", fmt.Errorf("panic response: %w", err)
	}
	return reply, nil
}

// Explainer translates engine reasons into plain language.
type Explainer struct {
	client llm.Client
	logger *zap.Logger
}

// NewExplainer builds the explainer; a nil logger is replaced with a nop.
func NewExplainer(client llm.Client, logger *zap.Logger) *Explainer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Explainer{client: client, logger: logger}
}

// Explain describes why a path landed where it did.
func (e *Explainer) Explain(ctx context.Context, path string, state *types.DecisionState, evidence *types.EvidenceProfile) (string, error) {
	template, err := prompts.Get(promptFile, "explanation-system")
	if err != nil {
		return "", err
	}

	reason := state.Reasons[path]
	if reason == "" {
		reason = "no recorded reason"
	}

	prompt := prompts.Format(template, map[string]string{
		"Path":   path,
		"Reason": reason,
		"Flags":  flagList(evidence),
	})

	reply, err := e.client.GenerateContent(ctx, prompt, llm.TierStandard)
	if err != nil {
		return "", fmt.Errorf("explanation: %w", err)
	}
	return reply, nil
}

// RoadmapAgent turns a decision into a weekly plan inside the hour budget.
type RoadmapAgent struct {
	client llm.Client
	logger *zap.Logger
}

// NewRoadmapAgent builds the agent; a nil logger is replaced with a nop.
func NewRoadmapAgent(client llm.Client, logger *zap.Logger) *RoadmapAgent {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RoadmapAgent{client: client, logger: logger}
}

// Build generates the plan for the current focus set.
func (r *RoadmapAgent) Build(ctx context.Context, state *types.DecisionState, basic *types.BasicProfile, lens *types.ContextProfile) (string, error) {
	template, err := prompts.Get(promptFile, "roadmap-system")
	if err != nil {
		return "", err
	}

	prompt := prompts.Format(template, map[string]string{
		"Focus": joinOr(state.Focus, "none yet"),
		"Hours": strconv.Itoa(basic.TimeAvailability),
		"Proof": string(lens.ProofExpectation),
	})

	reply, err := r.client.GenerateContent(ctx, prompt, llm.TierAdvanced)
	if err != nil {
		return "", fmt.Errorf("roadmap: %w", err)
	}
	return reply, nil
}

// Tutor teaches concepts, pacing itself off the evidence flags.
type Tutor struct {
	client llm.Client
	logger *zap.Logger
}

// NewTutor builds the tutor; a nil logger is replaced with a nop.
func NewTutor(client llm.Client, logger *zap.Logger) *Tutor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Tutor{client: client, logger: logger}
}

// Teach answers a learning question at the student's level.
func (t *Tutor) Teach(ctx context.Context, question string, evidence *types.EvidenceProfile) (string, error) {
	template, err := prompts.Get(promptFile, "tutor-system")
	if err != nil {
		return "", err
	}

	prompt := prompts.Format(template, map[string]string{
		"Style":    teachingStyle(evidence),
		"Question": question,
	})

	reply, err := t.client.GenerateContent(ctx, prompt, llm.TierStandard)
	if err != nil {
		return "", fmt.Errorf("tutor: %w", err)
	}
	return reply, nil
}

// teachingStyle maps evidence flags to a pacing instruction.
func teachingStyle(evidence *types.EvidenceProfile) string {
	if evidence == nil {
		return "balanced, assume no prior depth"
	}
	switch {
	case evidence.HasFlag(types.TagExecutionReady) || evidence.HasFlag(types.TagProvenImpact):
		return "fast and practical, skip basics"
	case evidence.HasFlag(types.TagWeakDSAFoundation) || evidence.HasFlag(types.TagNoDSAEvidence):
		return "fundamentals first, slow pace, small steps"
	default:
		return "balanced, assume no prior depth"
	}
}

func focusOf(state *types.DecisionState) []string {
	if state == nil {
		return nil
	}
	return state.Focus
}

func joinOr(items []string, empty string) string {
	if len(items) == 0 {
		return empty
	}
	return strings.Join(items, ", ")
}

func flagList(evidence *types.EvidenceProfile) string {
	if evidence == nil || len(evidence.Flags) == 0 {
		return "none"
	}
	names := make([]string, len(evidence.Flags))
	for i, f := range evidence.Flags {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}

func summarizeEvidence(evidence *types.EvidenceProfile) string {
	if evidence == nil {
		return "no evidence collected yet"
	}
	parts := []string{}
	if evidence.GitHub.Valid {
		parts = append(parts, fmt.Sprintf("%d public repos with %d stars", evidence.GitHub.Repos, evidence.GitHub.Stars))
	}
	if evidence.LeetCode.Valid {
		parts = append(parts, fmt.Sprintf("%d problems solved", evidence.LeetCode.TotalSolved))
	}
	if len(parts) == 0 {
		return "no linked accounts"
	}
	return strings.Join(parts, "; ")
}
