package decision

import (
	"context"
	"testing"

	"github.com/figureit/career-engine/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeMarket returns configured multipliers, defaulting to neutral.
type fakeMarket map[string]float64

func (f fakeMarket) GetMultiplier(_ context.Context, skill string) float64 {
	if mult, ok := f[skill]; ok {
		return mult
	}
	return 1.0
}

func inputs(t *testing.T, hours, maxFocus int, gh types.GitHubRecord, lc types.LeetCodeRecord, bias map[string]float64) Inputs {
	t.Helper()
	basic, err := types.NewBasicProfile(2, 2, hours, nil)
	require.NoError(t, err)

	return Inputs{
		Basic: basic,
		Context: &types.ContextProfile{
			StrictnessLevel:  types.StrictnessMedium,
			UrgencyLevel:     types.UrgencyLow,
			MaxFocusSkills:   maxFocus,
			ProofExpectation: types.ProofBasic,
		},
		Evidence:  &types.EvidenceProfile{GitHub: gh, LeetCode: lc},
		Interests: &types.InterestProfile{InterestBias: bias},
	}
}

func strongInputs(t *testing.T, hours, maxFocus int) Inputs {
	return inputs(t, hours, maxFocus,
		types.GitHubRecord{Valid: true, Repos: 10, Stars: 20},
		types.LeetCodeRecord{Valid: true, TotalSolved: 100, Easy: 20, Medium: 40, Hard: 10},
		map[string]float64{"development": 0.8, "problem_solving": 0.6, "data": 0.1},
	)
}

func pathSet(state *types.DecisionState) map[string]int {
	seen := make(map[string]int)
	for _, p := range state.Focus {
		seen[p]++
	}
	for _, p := range state.Park {
		seen[p]++
	}
	for _, p := range state.Drop {
		seen[p]++
	}
	return seen
}

func TestExtractFeatures_CapsAndGuards(t *testing.T) {
	ev := &types.EvidenceProfile{
		GitHub:   types.GitHubRecord{Valid: true, Repos: 25, Stars: 4},
		LeetCode: types.LeetCodeRecord{Valid: true, TotalSolved: 400, Easy: 350, Medium: 100},
	}
	f := ExtractFeatures(ev, &types.InterestProfile{InterestBias: map[string]float64{"data": 0.9}})

	assert.InDelta(t, 0.4, f[FeatProjectStrength], 1e-9)
	assert.InDelta(t, 1.0, f[FeatProjectVolume], 1e-9) // capped
	assert.InDelta(t, 1.0, f[FeatDSADepth], 1e-9)      // capped
	assert.InDelta(t, 1.0, f[FeatDSAVolume], 1e-9)     // capped
	assert.InDelta(t, 0.875, f[FeatEasyBias], 1e-9)
	assert.InDelta(t, 0.9, f[FeatInterestData], 1e-9)
	assert.Zero(t, f[FeatInterestDev])
}

func TestExtractFeatures_EmptyEvidenceIsZero(t *testing.T) {
	f := ExtractFeatures(&types.EvidenceProfile{}, nil)

	assert.Zero(t, f[FeatProjectStrength])
	assert.Zero(t, f[FeatDSADepth])
	assert.Zero(t, f[FeatEasyBias]) // 0 / max(0,1), not a division by zero
	assert.Zero(t, f[FeatInterestDev])
}

func TestDecide_StrongProfileTwoFocusSlots(t *testing.T) {
	state := Decide(context.Background(), strongInputs(t, 20, 2), fakeMarket{})

	// Frontend 0.92, Backend 0.86, Competitive 0.64, Data Science 0.40.
	assert.Equal(t, []string{PathFrontend, PathBackend}, state.Focus)
	assert.Equal(t, []string{PathCompetitive, PathDataScience}, state.Park)
	assert.Empty(t, state.Drop)

	assert.Contains(t, state.Reasons[PathFrontend], "0.920")
	assert.Contains(t, state.Reasons[PathCompetitive], "focus limit reached")
	assert.False(t, state.Timestamp.IsZero())
}

func TestDecide_CapacityBound(t *testing.T) {
	state := Decide(context.Background(), strongInputs(t, 20, 1), fakeMarket{})

	assert.Equal(t, []string{PathFrontend}, state.Focus)
	assert.Len(t, state.Park, 3)
}

func TestDecide_LowHoursPenaltyDropsCostlyPaths(t *testing.T) {
	state := Decide(context.Background(), strongInputs(t, 6, 2), fakeMarket{})

	// At 6 hours/week the 0.6x difficulty penalty applies:
	// Frontend 0.80, Backend 0.68, Competitive 0.40, Data Science 0.04.
	assert.Equal(t, []string{PathFrontend, PathBackend}, state.Focus)
	assert.Equal(t, []string{PathCompetitive}, state.Park)
	assert.Equal(t, []string{PathDataScience}, state.Drop)
	assert.Contains(t, state.Reasons[PathDataScience], "Low viability")
}

func TestDecide_MarketMultiplierShiftsRanking(t *testing.T) {
	// Frontend and Backend tie at the base weights when evidence and interest
	// are symmetric enough; depress frontend's market, boost backend's.
	in := strongInputs(t, 20, 1)
	market := fakeMarket{
		"react": 0.7, "next.js": 0.7,
		"node.js": 1.3, "go": 1.3, "java": 1.3,
	}

	state := Decide(context.Background(), in, market)

	// Frontend 0.92*0.7=0.644, Backend 0.86*1.3=1.118.
	assert.Equal(t, []string{PathBackend}, state.Focus)
	assert.Contains(t, state.Reasons[PathBackend], "1.118")
}

func TestDecide_FallbackWhenAllBelowFloor(t *testing.T) {
	in := inputs(t, 20, 2,
		types.GitHubRecord{}, types.LeetCodeRecord{},
		map[string]float64{"development": 0.1, "problem_solving": 0.1, "data": 0.1},
	)

	state := Decide(context.Background(), in, fakeMarket{})

	// Backend scores 0.05, the rest lower; everything is below the floor, so
	// the single best path is forced into focus and removed from drop.
	require.Equal(t, []string{PathBackend}, state.Focus)
	assert.Empty(t, state.Park)
	assert.ElementsMatch(t, []string{PathFrontend, PathDataScience, PathCompetitive}, state.Drop)
	assert.Contains(t, state.Reasons[PathBackend], "Fallback choice")
}

func TestDecide_TieBrokenByDeclarationOrder(t *testing.T) {
	// Zero evidence and zero interest score every path at exactly 0.
	in := inputs(t, 20, 2, types.GitHubRecord{}, types.LeetCodeRecord{}, nil)

	state := Decide(context.Background(), in, fakeMarket{})

	require.Equal(t, []string{PathFrontend}, state.Focus, "first-declared path wins ties")
	assert.Len(t, state.Drop, 3)
}

func TestDecide_PartitionIsExactlyThePathSet(t *testing.T) {
	cases := []Inputs{
		strongInputs(t, 20, 2),
		strongInputs(t, 6, 1),
		inputs(t, 0, 1, types.GitHubRecord{}, types.LeetCodeRecord{}, nil),
		inputs(t, 12, 2,
			types.GitHubRecord{Valid: true, Repos: 4, Stars: 2},
			types.LeetCodeRecord{Valid: true, TotalSolved: 60, Easy: 55, Medium: 5},
			map[string]float64{"data": 1.0},
		),
	}

	for i, in := range cases {
		state := Decide(context.Background(), in, fakeMarket{})
		seen := pathSet(state)

		assert.Len(t, seen, len(Paths), "case %d", i)
		for _, path := range Paths {
			assert.Equal(t, 1, seen[path], "case %d: path %s must appear exactly once", i, path)
		}
		assert.NotEmpty(t, state.Focus, "case %d", i)
		assert.LessOrEqual(t, len(state.Focus), in.Context.MaxFocusSkills, "case %d", i)
		for _, path := range Paths {
			assert.NotEmpty(t, state.Reasons[path], "case %d: reason for %s", i, path)
		}
	}
}

func TestDecide_ScoresNeverNegative(t *testing.T) {
	// Heavy easy-bias penalty plus low hours would push raw scores negative.
	in := inputs(t, 5, 1,
		types.GitHubRecord{},
		types.LeetCodeRecord{Valid: true, TotalSolved: 100, Easy: 100},
		nil,
	)

	state := Decide(context.Background(), in, fakeMarket{})
	for path, reason := range state.Reasons {
		assert.NotContains(t, reason, "-0.", "path %s has a negative score", path)
	}
}

func TestDecide_DeterministicAcrossRuns(t *testing.T) {
	in := strongInputs(t, 12, 2)
	first := Decide(context.Background(), in, fakeMarket{"react": 1.2})
	second := Decide(context.Background(), in, fakeMarket{"react": 1.2})

	assert.Equal(t, first.Focus, second.Focus)
	assert.Equal(t, first.Park, second.Park)
	assert.Equal(t, first.Drop, second.Drop)
	assert.Equal(t, first.Reasons, second.Reasons)
}
