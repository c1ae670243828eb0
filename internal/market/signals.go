// Package market converts hiring-market signals into bounded decision
// multipliers. Known skills resolve deterministically from a static table;
// unknown skills are classified once through an injected trend classifier and
// cached for the process lifetime.
package market

import (
	"strings"
	"time"
)

// Saturation describes how crowded the talent supply is for a skill.
type Saturation string

// Saturation levels.
const (
	SaturationLow    Saturation = "low"
	SaturationMedium Saturation = "medium"
	SaturationHigh   Saturation = "high"
)

// Trend labels a skill's hiring-demand direction.
type Trend string

// Trend values. These are also the only labels the external classifier may
// return; anything else is treated as a failed classification.
const (
	TrendRising    Trend = "rising"
	TrendStable    Trend = "stable"
	TrendDeclining Trend = "declining"
	TrendNiche     Trend = "niche"
)

// SkillSignal is a static per-skill market record. It is never mutated at
// runtime; the trend is recomputed on read, never stored.
type SkillSignal struct {
	Jobs         int        // current demand count
	PreviousJobs int        // prior period, for trend
	Saturation   Saturation // low | medium | high
}

// State is a deterministic snapshot of market reality. It never touches the
// classifier. Keys are stored normalized so lookups after NormalizeSkill
// always hit.
type State struct {
	Skills      map[string]SkillSignal
	GeneratedAt time.Time
}

// NewState returns the static dataset. A data-feed integration would replace
// this table; the signal shape stays the same.
func NewState() *State {
	return &State{
		GeneratedAt: time.Now().UTC(),
		Skills: map[string]SkillSignal{
			// Frontend
			"react":   {Jobs: 4200, PreviousJobs: 4500, Saturation: SaturationHigh},
			"next.js": {Jobs: 2600, PreviousJobs: 2300, Saturation: SaturationMedium},
			"vue.js":  {Jobs: 1200, PreviousJobs: 1100, Saturation: SaturationMedium},

			// Backend
			"python":  {Jobs: 5100, PreviousJobs: 4800, Saturation: SaturationMedium},
			"java":    {Jobs: 4700, PreviousJobs: 5000, Saturation: SaturationMedium},
			"node.js": {Jobs: 3800, PreviousJobs: 4000, Saturation: SaturationHigh},
			"go":      {Jobs: 1500, PreviousJobs: 1100, Saturation: SaturationLow},

			// Infra
			"docker": {Jobs: 3600, PreviousJobs: 3400, Saturation: SaturationMedium},
			"aws":    {Jobs: 5400, PreviousJobs: 5000, Saturation: SaturationMedium},

			// Data / ML
			"tensorflow": {Jobs: 1800, PreviousJobs: 2000, Saturation: SaturationHigh},
			"pytorch":    {Jobs: 2100, PreviousJobs: 1900, Saturation: SaturationMedium},

			// Niche
			"rust": {Jobs: 900, PreviousJobs: 700, Saturation: SaturationLow},
			"php":  {Jobs: 1600, PreviousJobs: 1900, Saturation: SaturationHigh},
		},
	}
}

// NormalizeSkill canonicalizes a skill name for table and cache lookups.
func NormalizeSkill(skill string) string {
	return strings.ToLower(strings.TrimSpace(skill))
}

// trendThreshold is the ±15% band separating stable from rising/declining.
const trendThreshold = 0.15

// CalculateTrend determines the demand direction from two period counts.
// A zero previous count is always rising by convention: it avoids a divide by
// zero and treats any presence as growth.
func CalculateTrend(current, previous int) Trend {
	if previous == 0 {
		return TrendRising
	}

	delta := float64(current-previous) / float64(previous)
	switch {
	case delta >= trendThreshold:
		return TrendRising
	case delta <= -trendThreshold:
		return TrendDeclining
	default:
		return TrendStable
	}
}
