package types

import "time"

// BehaviorLog tracks behavioral signals for future tuning.
// It is never used for grading or ranking.
type BehaviorLog struct {
	CompletedTasks int       `json:"completed_tasks"`
	SkippedTasks   int       `json:"skipped_tasks"`
	PanicCount     int       `json:"panic_count"`
	OverrideCount  int       `json:"override_count"`
	LastActive     time.Time `json:"last_active"`
}

// SystemMemory holds internal engine metadata. No chat history is stored;
// the language agents never own memory, the engine does.
type SystemMemory struct {
	LastIntervention *time.Time `json:"last_intervention,omitempty"`
	Sensitivity      string     `json:"sensitivity"` // normal | fragile | resistant
}

// UserState is the single source of truth for one user. The owning session
// fills the derived profiles progressively; no profile is shared across users.
type UserState struct {
	UserID       string        `json:"user_id"`
	BasicProfile *BasicProfile `json:"basic_profile"`

	InterestProfile *InterestProfile `json:"interest_profile,omitempty"`
	ContextProfile  *ContextProfile  `json:"context_profile,omitempty"`
	EvidenceProfile *EvidenceProfile `json:"evidence_profile,omitempty"`
	DecisionState   *DecisionState   `json:"decision_state,omitempty"`

	BehaviorLog  BehaviorLog  `json:"behavior_log"`
	SystemMemory SystemMemory `json:"system_memory"`

	SchemaVersion string    `json:"schema_version"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// SchemaVersion is stamped on every new UserState.
const SchemaVersion = "1.0.0"

// NewUserState builds the master state object around a validated BasicProfile.
func NewUserState(userID string, profile *BasicProfile) *UserState {
	now := time.Now().UTC()
	return &UserState{
		UserID:        userID,
		BasicProfile:  profile,
		SystemMemory:  SystemMemory{Sensitivity: "normal"},
		BehaviorLog:   BehaviorLog{LastActive: now},
		SchemaVersion: SchemaVersion,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// Touch updates the modification stamp after a pipeline stage attaches state.
func (u *UserState) Touch() {
	u.UpdatedAt = time.Now().UTC()
}
