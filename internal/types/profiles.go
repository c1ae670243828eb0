package types

import "time"

// InterestProfile holds soft preference signals gathered by the interest
// analyzer. It never decides outcomes alone.
type InterestProfile struct {
	// InterestBias maps an interest category ("development",
	// "problem_solving", "data") to a weight in [0,1]. Weights are not
	// required to sum to 1.
	InterestBias       map[string]float64 `json:"interest_bias"`
	ConfidenceLevel    Confidence         `json:"confidence_level"`
	ExplorationAllowed bool               `json:"exploration_allowed"`
	LastUpdated        time.Time          `json:"last_updated"`
}

// ContextProfile is the derived lens controlling engine behavior.
// Built exactly once per session by the context classifier.
type ContextProfile struct {
	StrictnessLevel  Strictness       `json:"strictness_level"`
	UrgencyLevel     Urgency          `json:"urgency_level"`
	MaxFocusSkills   int              `json:"max_focus_skills"` // hard cap, 1 or 2
	ProofExpectation ProofExpectation `json:"proof_expectation"`
}

// GitHubRecord is the fixed-shape raw record supplied by the GitHub fetcher.
// Valid=false (or a nil record) means the source was unreachable or the user
// does not exist; derived counters are then treated as explicitly absent.
type GitHubRecord struct {
	Valid          bool   `json:"valid"`
	Username       string `json:"username"`
	Repos          int    `json:"repos"`
	Stars          int    `json:"stars"`
	Forks          int    `json:"forks"`
	TopLanguage    string `json:"top_lang"`
	AccountCreated string `json:"account_created"` // YYYY-MM-DD
}

// LeetCodeRecord is the fixed-shape raw record supplied by the problem-judge
// fetcher.
type LeetCodeRecord struct {
	Valid       bool   `json:"valid"`
	Username    string `json:"username"`
	TotalSolved int    `json:"total_solved"`
	Easy        int    `json:"easy"`
	Medium      int    `json:"medium"`
	Hard        int    `json:"hard"`
}

// EvidenceProfile is the objective snapshot of user activity.
// Recomputed whenever fresh raw data is supplied.
type EvidenceProfile struct {
	// Raw records as supplied; zero-valued when the source was invalid.
	GitHub   GitHubRecord   `json:"github_stats"`
	LeetCode LeetCodeRecord `json:"leetcode_stats"`

	// Flags is the ordered set of qualitative tags. Insertion order reflects
	// detection order and matters for the cross-signal synthesis step.
	Flags []EvidenceTag `json:"flags"`

	// EncodedFeatures is the 0/1 indicator vector over the fixed feature
	// registry, independent of which tags actually fired.
	EncodedFeatures map[string]int `json:"encoded_features,omitempty"`
}

// HasFlag reports whether the given tag fired during analysis.
func (e *EvidenceProfile) HasFlag(tag EvidenceTag) bool {
	for _, f := range e.Flags {
		if f == tag {
			return true
		}
	}
	return false
}

// DecisionState is the engine's explicit opinion at a point in time: a
// three-way partition of the career path set plus per-path justifications.
// A later decision run fully replaces the prior state.
type DecisionState struct {
	Focus []string `json:"focus"`
	Park  []string `json:"park"`
	Drop  []string `json:"drop"`

	// Reasons maps each path to a human-readable justification recording the
	// numeric score and the branch taken.
	Reasons map[string]string `json:"reasons"`

	Timestamp time.Time `json:"timestamp"`
}
