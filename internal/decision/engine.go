package decision

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/figureit/career-engine/internal/types"
)

// DropFloor is the viability score below which a path is eliminated
// regardless of remaining focus capacity.
const DropFloor = 0.25

// Low-bandwidth penalty bands: below 10 hours/week the difficulty cost bites
// hard, below 15 it bites moderately.
const (
	hardPenaltyHours   = 10
	mediumPenaltyHours = 15
	hardPenaltyFactor  = 0.6
	mediumPenalty      = 0.3
)

// MarketSource supplies bounded multipliers for representative skills.
// *market.Pulse satisfies it.
type MarketSource interface {
	GetMultiplier(ctx context.Context, skill string) float64
}

// Inputs carries everything a decision run reads. Evidence, context and
// interests must all be present; the session's stage machine guarantees that.
type Inputs struct {
	Basic     *types.BasicProfile
	Context   *types.ContextProfile
	Evidence  *types.EvidenceProfile
	Interests *types.InterestProfile
}

// Decide produces the focus/park/drop partition. Deterministic given
// identical inputs and market state; every path lands in exactly one bucket
// and the focus set is never empty.
func Decide(ctx context.Context, in Inputs, market MarketSource) *types.DecisionState {
	features := ExtractFeatures(in.Evidence, in.Interests)
	hours := in.Basic.TimeAvailability

	scores := make(map[string]float64, len(Paths))
	for _, path := range Paths {
		scores[path] = scorePath(ctx, path, features, hours, market)
	}

	ranked := rankPaths(scores)

	state := &types.DecisionState{
		Focus:     []string{},
		Park:      []string{},
		Drop:      []string{},
		Reasons:   make(map[string]string, len(Paths)),
		Timestamp: time.Now().UTC(),
	}

	maxFocus := in.Context.MaxFocusSkills
	for _, path := range ranked {
		score := scores[path]
		switch {
		case score < DropFloor:
			state.Drop = append(state.Drop, path)
			state.Reasons[path] = fmt.Sprintf("Low viability score (%.3f).", score)
		case len(state.Focus) < maxFocus:
			state.Focus = append(state.Focus, path)
			state.Reasons[path] = fmt.Sprintf("Best alignment score (%.3f).", score)
		default:
			state.Park = append(state.Park, path)
			state.Reasons[path] = fmt.Sprintf("Good option (%.3f) but focus limit reached.", score)
		}
	}

	// The engine never returns an empty focus set: promote the single
	// best-scoring path out of drop when everything fell below the floor.
	if len(state.Focus) == 0 {
		best := ranked[0]
		state.Drop = remove(state.Drop, best)
		state.Focus = append(state.Focus, best)
		state.Reasons[best] = fmt.Sprintf(
			"Fallback choice due to weak overall signals (%.3f).", scores[best])
	}

	return state
}

// scorePath computes the final viability score for one path: weighted feature
// sum, then the low-bandwidth penalty, then the market adjustment, clamped
// non-negative and rounded to 3 decimals.
func scorePath(ctx context.Context, path string, features map[string]float64, hours int, market MarketSource) float64 {
	score := 0.0
	for _, term := range pathWeights[path] {
		score += term.Weight * features[term.Feature]
	}

	difficulty := pathDifficulty[path]
	switch {
	case hours < hardPenaltyHours:
		score -= difficulty * hardPenaltyFactor
	case hours < mediumPenaltyHours:
		score -= difficulty * mediumPenalty
	}

	score *= meanMultiplier(ctx, path, market)

	if score < 0 {
		score = 0
	}
	return math.Round(score*1000) / 1000
}

// meanMultiplier averages the market multiplier over the path's
// representative skills; unmapped paths stay neutral.
func meanMultiplier(ctx context.Context, path string, market MarketSource) float64 {
	skills := pathSkills[path]
	if market == nil || len(skills) == 0 {
		return 1.0
	}

	sum := 0.0
	for _, skill := range skills {
		sum += market.GetMultiplier(ctx, skill)
	}
	return sum / float64(len(skills))
}

// rankPaths sorts by score descending with ties broken by declaration order.
func rankPaths(scores map[string]float64) []string {
	ranked := make([]string, len(Paths))
	copy(ranked, Paths)
	sort.SliceStable(ranked, func(i, j int) bool {
		return scores[ranked[i]] > scores[ranked[j]]
	})
	return ranked
}

func remove(paths []string, target string) []string {
	out := paths[:0]
	for _, p := range paths {
		if p != target {
			out = append(out, p)
		}
	}
	return out
}
