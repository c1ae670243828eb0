package evidence

import "github.com/figureit/career-engine/internal/types"

// featureEntry binds a tag to its stable feature name. Inverted entries
// express presence-style features: has_project_evidence is 1 unless the
// no_project_evidence tag fired.
type featureEntry struct {
	Tag     types.EvidenceTag
	Feature string
	Invert  bool
}

// featureRegistry is the fixed flag-to-feature table. The encoded vector
// contains an indicator for every entry here regardless of which tags fired;
// tags without a registry entry are simply omitted from the vector.
var featureRegistry = []featureEntry{
	{Tag: types.TagNoProjectEvidence, Feature: "has_project_evidence", Invert: true},
	{Tag: types.TagProjectGhost, Feature: "project_ghost"},
	{Tag: types.TagLowOutput, Feature: "low_output"},
	{Tag: types.TagTutorialHell, Feature: "tutorial_hell"},
	{Tag: types.TagProvenImpact, Feature: "proven_impact"},
	{Tag: types.TagStagnantAccount, Feature: "stagnant_account"},
	{Tag: types.TagNoDSAEvidence, Feature: "has_dsa_evidence", Invert: true},
	{Tag: types.TagWeakDSAFoundation, Feature: "weak_dsa_foundation"},
	{Tag: types.TagEasyFarming, Feature: "easy_farming"},
	{Tag: types.TagInterviewReady, Feature: "interview_ready"},
	{Tag: types.TagCompetitiveReady, Feature: "competitive_ready"},
	{Tag: types.TagStrengthenFundamentals, Feature: "strengthen_fundamentals"},
	{Tag: types.TagShiftFocusToProjects, Feature: "shift_focus_to_projects"},
	{Tag: types.TagExecutionReady, Feature: "execution_ready"},
	{Tag: types.TagInvisibleProfile, Feature: "invisible_profile"},
}

// Encode maps the fired tags onto the fixed feature registry, producing the
// 0/1 vector consumed by numeric downstream components.
func Encode(flags []types.EvidenceTag) map[string]int {
	fired := make(map[types.EvidenceTag]bool, len(flags))
	for _, f := range flags {
		fired[f] = true
	}

	vector := make(map[string]int, len(featureRegistry))
	for _, entry := range featureRegistry {
		value := 0
		if fired[entry.Tag] != entry.Invert {
			value = 1
		}
		vector[entry.Feature] = value
	}
	return vector
}
