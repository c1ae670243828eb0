// Package classify derives the ContextProfile from a user's academic
// attributes. It is the first reasoning output of the pipeline: a pure
// function of BasicProfile with no error paths over valid input.
package classify

import "github.com/figureit/career-engine/internal/types"

// Strictness gates and focus limits. Tier-3 students need stronger portfolios
// earlier, and low weekly bandwidth forces single-tasking.
const (
	tierTaxTier      = 3
	tierTaxMinYear   = 3
	bandwidthFloor   = 8 // hours/week below which strictness escalates
	safetyNetTier    = 1
	safetyNetMaxYear = 2
)

// BuildContext computes the ContextProfile for the given academic profile.
//
// The strictness rules are order-sensitive and the ordering is policy, not
// accident: the tier-tax and bandwidth checks may raise strictness to HIGH,
// and the tier-1 junior safety net runs last and may downgrade that HIGH to
// LOW. A tier-1 sophomore with very low hours therefore lands on LOW.
func BuildContext(basic *types.BasicProfile) types.ContextProfile {
	// Urgency: time left before hiring season.
	var urgency types.Urgency
	switch {
	case basic.YearOfStudy >= 4:
		urgency = types.UrgencyHigh
	case basic.YearOfStudy == 3:
		urgency = types.UrgencyMedium
	default:
		urgency = types.UrgencyLow
	}

	// Strictness: baseline medium, then the ordered overrides.
	strictness := types.StrictnessMedium
	if basic.CollegeTier == tierTaxTier && basic.YearOfStudy >= tierTaxMinYear {
		strictness = types.StrictnessHigh
	}
	if basic.TimeAvailability < bandwidthFloor {
		strictness = types.StrictnessHigh
	}
	if basic.CollegeTier == safetyNetTier && basic.YearOfStudy <= safetyNetMaxYear {
		strictness = types.StrictnessLow
	}

	// Focus capacity: never 3 or more. Splitting effort three ways is how
	// students end up in tutorial hell.
	maxFocus := 2
	if urgency == types.UrgencyHigh || strictness == types.StrictnessHigh {
		maxFocus = 1
	}

	proof := types.ProofBasic
	if basic.CollegeTier == tierTaxTier || urgency == types.UrgencyHigh {
		proof = types.ProofStrong
	}

	return types.ContextProfile{
		StrictnessLevel:  strictness,
		UrgencyLevel:     urgency,
		MaxFocusSkills:   maxFocus,
		ProofExpectation: proof,
	}
}
