// Package decision turns evidence, context limits and market multipliers into
// per-path viability scores and partitions the fixed career-path set into
// focus, park and drop under the session's focus-capacity constraint.
package decision

import (
	"github.com/figureit/career-engine/internal/types"
)

// Feature names used by the weight table.
const (
	FeatProjectStrength = "project_strength"
	FeatProjectVolume   = "project_volume"
	FeatDSADepth        = "dsa_depth"
	FeatDSAVolume       = "dsa_volume"
	FeatEasyBias        = "easy_bias"
	FeatInterestDev     = "interest_dev"
	FeatInterestPS      = "interest_ps"
	FeatInterestData    = "interest_data"
)

// Fixed-denominator caps used to normalize raw counters into [0,1].
const (
	starsCap   = 10.0
	reposCap   = 10.0
	mediumsCap = 40.0
	solvedCap  = 300.0
)

// ExtractFeatures converts evidence counters and interest bias into the
// normalized feature vector the weight table reads. All values land in [0,1];
// missing evidence simply produces zeros.
func ExtractFeatures(evidence *types.EvidenceProfile, interests *types.InterestProfile) map[string]float64 {
	gh := evidence.GitHub
	lc := evidence.LeetCode

	// Guard the easy-ratio denominator; an empty judge record divides by one.
	totalSolved := lc.TotalSolved
	if totalSolved < 1 {
		totalSolved = 1
	}

	var bias map[string]float64
	if interests != nil {
		bias = interests.InterestBias
	}

	return map[string]float64{
		FeatProjectStrength: capUnit(float64(gh.Stars) / starsCap),
		FeatProjectVolume:   capUnit(float64(gh.Repos) / reposCap),
		FeatDSADepth:        capUnit(float64(lc.Medium) / mediumsCap),
		FeatDSAVolume:       capUnit(float64(lc.TotalSolved) / solvedCap),
		FeatEasyBias:        capUnit(float64(lc.Easy) / float64(totalSolved)),
		FeatInterestDev:     bias["development"],
		FeatInterestPS:      bias["problem_solving"],
		FeatInterestData:    bias["data"],
	}
}

func capUnit(v float64) float64 {
	if v > 1.0 {
		return 1.0
	}
	if v < 0 {
		return 0
	}
	return v
}
