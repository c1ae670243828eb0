package main

import (
	"context"
	"os"

	"go.uber.org/zap"

	"github.com/figureit/career-engine/internal/agents"
	"github.com/figureit/career-engine/internal/config"
	"github.com/figureit/career-engine/internal/fetch"
	"github.com/figureit/career-engine/internal/llm"
	"github.com/figureit/career-engine/internal/market"
	"github.com/figureit/career-engine/internal/session"
)

// engine bundles everything a command needs to run sessions.
type engine struct {
	deps   session.Deps
	pulse  *market.Pulse
	client llm.Client
	log    *zap.Logger
}

// buildEngine wires the collaborators from config. Without an API key the
// engine still works: the LLM-backed agents are simply absent and every
// judgment step takes its deterministic fallback.
func buildEngine(ctx context.Context, cfg config.Config, log *zap.Logger) (*engine, error) {
	apiKey := cfg.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}

	var client llm.Client
	if apiKey != "" {
		var err error
		client, err = llm.NewClient(ctx, llm.DefaultConfig(), apiKey)
		if err != nil {
			return nil, err
		}
	}

	var classifier market.TrendClassifier
	if client != nil {
		classifier = market.NewLLMClassifier(client, log)
	}
	pulse := market.NewPulse(market.NewState(), classifier, market.NewMemoryCache(), log)

	deps := session.Deps{
		Market:   pulse,
		GitHub:   fetch.NewGitHubFetcher(nil, cfg.GitHubBaseURL, log),
		LeetCode: fetch.NewLeetCodeFetcher(nil, cfg.LeetCodeBaseURL, log),
		Logger:   log,
	}
	if client != nil {
		deps.Interests = agents.NewInterestAnalyzer(client, log)
		deps.Intents = agents.NewIntentClassifier(client, log)
		deps.Advisor = agents.NewAdvisor(client, log)
		deps.PanicBot = agents.NewPanicBot(client, log)
		deps.Explainer = agents.NewExplainer(client, log)
		deps.Roadmap = agents.NewRoadmapAgent(client, log)
		deps.Override = agents.NewOverrideAgent(client, log)
		deps.Tutor = agents.NewTutor(client, log)
	}

	return &engine{deps: deps, pulse: pulse, client: client, log: log}, nil
}

// Close releases the LLM client if one was created.
func (e *engine) Close() {
	if e.client != nil {
		_ = e.client.Close()
	}
}
