// Package evidence converts raw activity counters into qualitative tags and a
// numeric feature encoding. Missing or invalid source records never fail the
// analysis; they degrade to explicit "no evidence" tags, which biases scores
// downward rather than treating absence as average.
package evidence

import (
	"time"

	"github.com/figureit/career-engine/internal/types"
)

// Detection thresholds. These define "the bar" and are the only numbers the
// base tag rules read; the cross-signal rules check tag membership, not raw
// values, so they survive threshold tuning.
const (
	MinRepos           = 3
	TutorialHellRepos  = 10
	ImpactStars        = 5
	StagnantAfterYears = 3.0
	StagnantRepoLimit  = 5

	DSABeginnerLimit     = 15
	EasyFarmingRatio     = 0.7
	EasyFarmingMinSolved = 50 // minimum sample size before the ratio means anything
	InterviewMediums     = 30
	CompetitiveHards     = 10
)

// now is swappable in tests for deterministic account-age math.
var now = time.Now

// Analyze builds an EvidenceProfile from the supplied raw records. It always
// recomputes from scratch; each call replaces any prior profile. Either record
// may be nil.
func Analyze(github *types.GitHubRecord, leetcode *types.LeetCodeRecord) *types.EvidenceProfile {
	flags := make([]types.EvidenceTag, 0, 8)

	flags = analyzeGitHub(github, flags)
	flags = analyzeLeetCode(leetcode, flags)
	flags = synthesize(flags)

	profile := &types.EvidenceProfile{Flags: flags}
	if github != nil && github.Valid {
		profile.GitHub = *github
	}
	if leetcode != nil && leetcode.Valid {
		profile.LeetCode = *leetcode
	}
	profile.EncodedFeatures = Encode(profile.Flags)

	return profile
}

func analyzeGitHub(gh *types.GitHubRecord, flags []types.EvidenceTag) []types.EvidenceTag {
	if gh == nil || !gh.Valid {
		return append(flags, types.TagNoProjectEvidence)
	}

	switch {
	case gh.Repos == 0:
		flags = append(flags, types.TagProjectGhost)
	case gh.Repos < MinRepos:
		flags = append(flags, types.TagLowOutput)
	}

	// High quantity with zero external validation is the tutorial-hell
	// signature: lots of clones, nothing anyone uses.
	if gh.Repos > TutorialHellRepos && gh.Stars == 0 {
		flags = append(flags, types.TagTutorialHell)
	}

	if gh.Stars >= ImpactStars {
		flags = append(flags, types.TagProvenImpact)
	}

	if AccountAgeYears(gh.AccountCreated) > StagnantAfterYears && gh.Repos < StagnantRepoLimit {
		flags = append(flags, types.TagStagnantAccount)
	}

	return flags
}

func analyzeLeetCode(lc *types.LeetCodeRecord, flags []types.EvidenceTag) []types.EvidenceTag {
	if lc == nil || !lc.Valid {
		return append(flags, types.TagNoDSAEvidence)
	}

	if lc.TotalSolved < DSABeginnerLimit {
		flags = append(flags, types.TagWeakDSAFoundation)
	}

	if lc.TotalSolved > EasyFarmingMinSolved {
		if float64(lc.Easy)/float64(lc.TotalSolved) > EasyFarmingRatio {
			flags = append(flags, types.TagEasyFarming)
		}
	}

	if lc.Medium >= InterviewMediums {
		flags = append(flags, types.TagInterviewReady)
	}

	if lc.Hard >= CompetitiveHards {
		flags = append(flags, types.TagCompetitiveReady)
	}

	return flags
}

// synthesize emits at most one higher-order directive by cross-referencing
// both sources. It runs only after both analyses complete and checks tag
// membership only. First match wins.
func synthesize(flags []types.EvidenceTag) []types.EvidenceTag {
	has := func(tags ...types.EvidenceTag) bool {
		for _, want := range tags {
			for _, f := range flags {
				if f == want {
					return true
				}
			}
		}
		return false
	}

	strongPortfolio := has(types.TagProvenImpact)
	weakPortfolio := has(types.TagProjectGhost, types.TagLowOutput, types.TagNoProjectEvidence)
	strongDSA := has(types.TagInterviewReady)
	weakDSA := has(types.TagWeakDSAFoundation, types.TagNoDSAEvidence)

	switch {
	case strongPortfolio && weakDSA:
		return append(flags, types.TagStrengthenFundamentals)
	case strongDSA && weakPortfolio:
		return append(flags, types.TagShiftFocusToProjects)
	case strongPortfolio && strongDSA:
		return append(flags, types.TagExecutionReady)
	case has(types.TagProjectGhost, types.TagTutorialHell, types.TagNoProjectEvidence) &&
		has(types.TagWeakDSAFoundation, types.TagEasyFarming):
		return append(flags, types.TagInvisibleProfile)
	}

	return flags
}

// AccountAgeYears parses a YYYY-MM-DD creation date and returns the account
// age in years. Empty or unparsable input yields 0.0, never an error.
func AccountAgeYears(created string) float64 {
	if created == "" {
		return 0.0
	}
	start, err := time.Parse("2006-01-02", created)
	if err != nil {
		return 0.0
	}
	return now().Sub(start).Hours() / 24 / 365.0
}
