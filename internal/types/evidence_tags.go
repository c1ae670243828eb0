package types

// EvidenceTag is a qualitative, named boolean signal derived from activity
// evidence. The set is closed: the analyzer only ever emits the constants
// below, so the cross-signal synthesis and the feature-encoding registry can
// key on them without risking silent typos.
type EvidenceTag string

// Base tags derived directly from a single evidence source.
const (
	// GitHub-side tags.
	TagNoProjectEvidence EvidenceTag = "no_project_evidence" // source invalid or unreachable
	TagProjectGhost      EvidenceTag = "project_ghost"       // account exists, zero repos
	TagLowOutput         EvidenceTag = "low_output"          // below minimum repo count
	TagTutorialHell      EvidenceTag = "tutorial_hell"       // many repos, zero external validation
	TagProvenImpact      EvidenceTag = "proven_impact"       // strangers starred their code
	TagStagnantAccount   EvidenceTag = "stagnant_account"    // old account, little output

	// Problem-judge-side tags.
	TagNoDSAEvidence     EvidenceTag = "no_dsa_evidence"
	TagWeakDSAFoundation EvidenceTag = "weak_dsa_foundation"
	TagEasyFarming       EvidenceTag = "easy_farming" // padding with trivial problems
	TagInterviewReady    EvidenceTag = "interview_ready"
	TagCompetitiveReady  EvidenceTag = "competitive_ready"
)

// Cross-signal tags synthesized from pairs of base tags after both source
// analyses complete. At most one fires per profile.
const (
	TagStrengthenFundamentals EvidenceTag = "strengthen_fundamentals" // strong portfolio, weak problem-solving
	TagShiftFocusToProjects   EvidenceTag = "shift_focus_to_projects" // strong problem-solving, weak portfolio
	TagExecutionReady         EvidenceTag = "execution_ready"         // strong on both
	TagInvisibleProfile       EvidenceTag = "invisible_profile"       // weak on both
)
