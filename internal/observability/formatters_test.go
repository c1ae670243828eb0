package observability

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/figureit/career-engine/internal/market"
	"github.com/figureit/career-engine/internal/types"
)

func TestPrintContext(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintContext(&types.ContextProfile{
		StrictnessLevel:  types.StrictnessHigh,
		UrgencyLevel:     types.UrgencyMedium,
		MaxFocusSkills:   1,
		ProofExpectation: types.ProofStrong,
	})

	out := buf.String()
	assert.Contains(t, out, "CONTEXT LENS")
	assert.Contains(t, out, "high")
	assert.Contains(t, out, "Focus cap:    1")
}

func TestPrintContext_NilIsNoop(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintContext(nil)
	assert.Empty(t, buf.String())
}

func TestPrintEvidence(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintEvidence(&types.EvidenceProfile{
		GitHub:   types.GitHubRecord{Valid: true, Repos: 6, Stars: 11, TopLanguage: "Go"},
		LeetCode: types.LeetCodeRecord{},
		Flags:    []types.EvidenceTag{types.TagProvenImpact, types.TagNoDSAEvidence},
	})

	out := buf.String()
	assert.Contains(t, out, "6 repos, 11 stars")
	assert.Contains(t, out, "mostly Go")
	assert.Contains(t, out, "not linked or unreachable")
	assert.Contains(t, out, "proven_impact")
}

func TestPrintDecision(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintDecision(&types.DecisionState{
		Focus:   []string{"Backend Engineering"},
		Park:    []string{"Frontend Engineering"},
		Drop:    []string{"Competitive Programming"},
		Reasons: map[string]string{"Backend Engineering": "Best alignment score (0.812)."},
	})

	out := buf.String()
	assert.Contains(t, out, "FOCUS")
	assert.Contains(t, out, "Backend Engineering")
	assert.Contains(t, out, "Best alignment score")
	assert.Contains(t, out, "DROP")
}

func TestPrintMarket_SortedByMultiplier(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintMarket(market.Snapshot{
		GeneratedAt: time.Now(),
		Skills: map[string]market.SkillSnapshot{
			"go":  {Jobs: 3100, Trend: market.TrendStable, Multiplier: 1.2},
			"php": {Jobs: 1600, Trend: market.TrendDeclining, Multiplier: 0.75},
		},
	})

	out := buf.String()
	assert.Contains(t, out, "MARKET PULSE")
	assert.Less(t, strings.Index(out, "go "), strings.Index(out, "php"))
}
