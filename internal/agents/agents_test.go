package agents

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/figureit/career-engine/internal/llm"
	"github.com/figureit/career-engine/internal/types"
)

// stubLLM records prompts and returns canned output for every call.
type stubLLM struct {
	reply   string
	err     error
	prompts []string
}

func (s *stubLLM) GenerateContent(_ context.Context, prompt string, _ llm.ModelTier) (string, error) {
	s.prompts = append(s.prompts, prompt)
	return s.reply, s.err
}

func (s *stubLLM) GenerateJSON(_ context.Context, prompt string, _ llm.ModelTier) (string, error) {
	s.prompts = append(s.prompts, prompt)
	return s.reply, s.err
}

func (s *stubLLM) GetModel(llm.ModelTier) string { return "stub-model" }
func (s *stubLLM) Close() error                  { return nil }

func TestInterestAnalyzer_HighConfidence(t *testing.T) {
	stub := &stubLLM{reply: `{"development": 0.9, "problem_solving": 0.4, "data": 0.2}`}
	analyzer := NewInterestAnalyzer(stub, nil)

	profile := analyzer.Analyze(context.Background(), "I love shipping side projects")

	assert.InDelta(t, 0.9, profile.InterestBias["development"], 1e-9)
	assert.Equal(t, types.ConfidenceHigh, profile.ConfidenceLevel)
	assert.False(t, profile.ExplorationAllowed)
	assert.False(t, profile.LastUpdated.IsZero())
}

func TestInterestAnalyzer_MediumConfidenceAllowsExploration(t *testing.T) {
	stub := &stubLLM{reply: `{"development": 0.6, "problem_solving": 0.5, "data": 0.3}`}
	profile := NewInterestAnalyzer(stub, nil).Analyze(context.Background(), "some interests")

	assert.Equal(t, types.ConfidenceMedium, profile.ConfidenceLevel)
	assert.True(t, profile.ExplorationAllowed)
}

func TestInterestAnalyzer_WeakSignalsAreLowConfidence(t *testing.T) {
	stub := &stubLLM{reply: `{"development": 0.2, "problem_solving": 0.1, "data": 0.4}`}
	profile := NewInterestAnalyzer(stub, nil).Analyze(context.Background(), "idk")

	assert.Equal(t, types.ConfidenceLow, profile.ConfidenceLevel)
	assert.True(t, profile.ExplorationAllowed)
}

func TestInterestAnalyzer_FailureDegradesToNeutral(t *testing.T) {
	cases := []struct {
		name string
		stub *stubLLM
	}{
		{"generation error", &stubLLM{err: errors.New("quota")}},
		{"off-schema response", &stubLLM{reply: `{"development": 0.9, "gaming": 1.0}`}},
		{"out-of-range score", &stubLLM{reply: `{"development": 7, "problem_solving": 0.1, "data": 0.1}`}},
		{"malformed", &stubLLM{reply: `not json`}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			profile := NewInterestAnalyzer(tc.stub, nil).Analyze(context.Background(), "text")

			assert.InDelta(t, 0.3, profile.InterestBias["development"], 1e-9)
			assert.InDelta(t, 0.3, profile.InterestBias["problem_solving"], 1e-9)
			assert.InDelta(t, 0.3, profile.InterestBias["data"], 1e-9)
			assert.Equal(t, types.ConfidenceLow, profile.ConfidenceLevel)
			assert.True(t, profile.ExplorationAllowed)
		})
	}
}

func TestIntentClassifier_Labels(t *testing.T) {
	for _, intent := range []Intent{IntentPanic, IntentOverride, IntentExplanation, IntentRoadmap, IntentLearning, IntentCasual} {
		stub := &stubLLM{reply: `{"intent": "` + string(intent) + `"}`}
		got := NewIntentClassifier(stub, nil).Classify(context.Background(), "message")
		assert.Equal(t, intent, got)
	}
}

func TestIntentClassifier_FailureIsCasual(t *testing.T) {
	cases := []*stubLLM{
		{err: errors.New("boom")},
		{reply: `{"intent": "greeting"}`},
		{reply: `garbage`},
	}
	for _, stub := range cases {
		got := NewIntentClassifier(stub, nil).Classify(context.Background(), "message")
		assert.Equal(t, IntentCasual, got)
	}
}

func TestOverrideAgent_ExtractsCanonicalPath(t *testing.T) {
	stub := &stubLLM{reply: `{"target_path": "Data Science / ML"}`}
	target, err := NewOverrideAgent(stub, nil).ExtractTarget(context.Background(), "I want to do ML anyway")

	require.NoError(t, err)
	assert.Equal(t, "Data Science / ML", target)
}

func TestOverrideAgent_UnclearTargetIsEmpty(t *testing.T) {
	stub := &stubLLM{reply: `{"target_path": ""}`}
	target, err := NewOverrideAgent(stub, nil).ExtractTarget(context.Background(), "this is all wrong")

	require.NoError(t, err)
	assert.Empty(t, target)
}

func TestOverrideAgent_NonCanonicalPathRejected(t *testing.T) {
	stub := &stubLLM{reply: `{"target_path": "DevOps"}`}
	_, err := NewOverrideAgent(stub, nil).ExtractTarget(context.Background(), "I want devops")

	assert.Error(t, err)
}

func TestAdvisor_PromptCarriesPartition(t *testing.T) {
	stub := &stubLLM{reply: "stay the course"}
	state := &types.DecisionState{
		Focus:   []string{"Backend Engineering"},
		Park:    []string{"Frontend Engineering"},
		Drop:    []string{"Competitive Programming"},
		Reasons: map[string]string{},
	}

	reply, err := NewAdvisor(stub, nil).Respond(context.Background(), "should I learn rust?", state)
	require.NoError(t, err)
	assert.Equal(t, "stay the course", reply)

	require.Len(t, stub.prompts, 1)
	assert.Contains(t, stub.prompts[0], "Backend Engineering")
	assert.Contains(t, stub.prompts[0], "should I learn rust?")
}

func TestPanicBot_SummarizesRealEvidence(t *testing.T) {
	stub := &stubLLM{reply: "breathe"}
	evidence := &types.EvidenceProfile{
		GitHub:   types.GitHubRecord{Valid: true, Repos: 6, Stars: 9},
		LeetCode: types.LeetCodeRecord{Valid: true, TotalSolved: 80},
	}

	_, err := NewPanicBot(stub, nil).Respond(context.Background(), "everyone is ahead of me", nil, evidence)
	require.NoError(t, err)

	require.Len(t, stub.prompts, 1)
	assert.Contains(t, stub.prompts[0], "6 public repos with 9 stars")
	assert.Contains(t, stub.prompts[0], "80 problems solved")
	assert.Contains(t, stub.prompts[0], "still being decided")
}

func TestExplainer_UsesRecordedReason(t *testing.T) {
	stub := &stubLLM{reply: "because the numbers say so"}
	state := &types.DecisionState{
		Reasons: map[string]string{"Backend Engineering": "Best alignment score (0.812)."},
	}
	evidence := &types.EvidenceProfile{Flags: []types.EvidenceTag{types.TagProvenImpact}}

	_, err := NewExplainer(stub, nil).Explain(context.Background(), "Backend Engineering", state, evidence)
	require.NoError(t, err)

	require.Len(t, stub.prompts, 1)
	assert.Contains(t, stub.prompts[0], "Best alignment score (0.812).")
	assert.Contains(t, stub.prompts[0], "proven_impact")
}

func TestRoadmapAgent_CarriesHourBudget(t *testing.T) {
	stub := &stubLLM{reply: "week 1: ship something"}
	basic, err := types.NewBasicProfile(2, 3, 12, nil)
	require.NoError(t, err)

	state := &types.DecisionState{Focus: []string{"Frontend Engineering"}}
	lens := &types.ContextProfile{ProofExpectation: types.ProofStrong}

	_, err = NewRoadmapAgent(stub, nil).Build(context.Background(), state, basic, lens)
	require.NoError(t, err)

	require.Len(t, stub.prompts, 1)
	assert.Contains(t, stub.prompts[0], "12 hours")
	assert.Contains(t, stub.prompts[0], "strong")
}

func TestTutor_StyleTracksEvidence(t *testing.T) {
	tests := []struct {
		name  string
		flags []types.EvidenceTag
		want  string
	}{
		{"strong profile goes fast", []types.EvidenceTag{types.TagExecutionReady}, "fast and practical"},
		{"weak dsa slows down", []types.EvidenceTag{types.TagWeakDSAFoundation}, "fundamentals first"},
		{"no flags is balanced", nil, "balanced"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubLLM{reply: "lesson"}
			evidence := &types.EvidenceProfile{Flags: tt.flags}

			_, err := NewTutor(stub, nil).Teach(context.Background(), "what is a hash map?", evidence)
			require.NoError(t, err)

			require.Len(t, stub.prompts, 1)
			assert.Contains(t, stub.prompts[0], tt.want)
		})
	}
}

func TestAgents_GenerationErrorsPropagate(t *testing.T) {
	stub := &stubLLM{err: errors.New("model down")}
	state := &types.DecisionState{Reasons: map[string]string{}}
	basic, err := types.NewBasicProfile(1, 1, 5, nil)
	require.NoError(t, err)

	_, err = NewAdvisor(stub, nil).Respond(context.Background(), "hi", state)
	assert.Error(t, err)

	_, err = NewPanicBot(stub, nil).Respond(context.Background(), "hi", state, nil)
	assert.Error(t, err)

	_, err = NewExplainer(stub, nil).Explain(context.Background(), "Backend Engineering", state, nil)
	assert.Error(t, err)

	_, err = NewRoadmapAgent(stub, nil).Build(context.Background(), state, basic, &types.ContextProfile{})
	assert.Error(t, err)

	_, err = NewTutor(stub, nil).Teach(context.Background(), "hi", nil)
	assert.Error(t, err)
}
