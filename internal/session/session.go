// Package session orchestrates one user's journey through the engine: profile
// intake, context classification, evidence analysis, the decision itself, and
// chat routing afterwards. A session owns its UserState exclusively.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/figureit/career-engine/internal/agents"
	"github.com/figureit/career-engine/internal/classify"
	"github.com/figureit/career-engine/internal/decision"
	"github.com/figureit/career-engine/internal/evidence"
	"github.com/figureit/career-engine/internal/fetch"
	"github.com/figureit/career-engine/internal/schemas"
	"github.com/figureit/career-engine/internal/types"
)

// Stage tracks how far the pipeline has progressed. Stages only move forward;
// re-running a stage refreshes its output without regressing.
type Stage int

// Pipeline stages in order.
const (
	StageNew Stage = iota
	StageContextBuilt
	StageEvidenceBuilt
	StageDecided
)

// Sentinel errors for out-of-order operations.
var (
	ErrContextNotBuilt  = errors.New("context profile has not been built")
	ErrEvidenceNotBuilt = errors.New("evidence profile has not been built")
	ErrNotDecided       = errors.New("no decision has been made yet")
)

// ProfileFetcher is the part of a fetch client a session needs.
type ProfileFetcher[R any] interface {
	Fetch(ctx context.Context, username string) (R, error)
}

// Deps carries the session's collaborators. Market and the agent fields may
// be nil; the session degrades the corresponding behavior instead of failing.
type Deps struct {
	Market    decision.MarketSource
	Interests *agents.InterestAnalyzer
	Intents   *agents.IntentClassifier
	Advisor   *agents.Advisor
	PanicBot  *agents.PanicBot
	Explainer *agents.Explainer
	Roadmap   *agents.RoadmapAgent
	Override  *agents.OverrideAgent
	Tutor     *agents.Tutor

	GitHub   ProfileFetcher[types.GitHubRecord]
	LeetCode ProfileFetcher[types.LeetCodeRecord]

	Logger *zap.Logger
}

// Session drives the pipeline for a single user.
type Session struct {
	mu    sync.Mutex
	state *types.UserState
	stage Stage
	deps  Deps
	log   *zap.Logger
}

// New creates a session around a validated basic profile.
func New(basic *types.BasicProfile, deps Deps) *Session {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{
		state: types.NewUserState(uuid.NewString(), basic),
		stage: StageNew,
		deps:  deps,
		log:   logger,
	}
}

// UserID returns the session's generated user id.
func (s *Session) UserID() string {
	return s.state.UserID
}

// Stage returns the pipeline progress marker.
func (s *Session) Stage() Stage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stage
}

// State returns the underlying user state. Callers must treat it as read-only.
func (s *Session) State() *types.UserState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// BuildContext derives the context lens from the basic profile. Idempotent:
// repeat calls return the existing profile.
func (s *Session) BuildContext() *types.ContextProfile {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.ContextProfile != nil {
		return s.state.ContextProfile
	}

	lens := classify.BuildContext(s.state.BasicProfile)
	s.state.ContextProfile = &lens
	if s.stage < StageContextBuilt {
		s.stage = StageContextBuilt
	}
	s.state.Touch()

	s.log.Info("context profile built",
		zap.String("user_id", s.state.UserID),
		zap.String("strictness", string(lens.StrictnessLevel)),
		zap.String("urgency", string(lens.UrgencyLevel)),
		zap.Int("max_focus", lens.MaxFocusSkills))
	return s.state.ContextProfile
}

// AttachInterests runs interest extraction over the student's own words.
// Idempotent: an already-attached profile is kept as-is.
func (s *Session) AttachInterests(ctx context.Context, freeText string) *types.InterestProfile {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.InterestProfile != nil {
		return s.state.InterestProfile
	}
	if s.deps.Interests == nil {
		return nil
	}

	profile := s.deps.Interests.Analyze(ctx, freeText)
	s.state.InterestProfile = profile
	s.state.Touch()

	s.log.Info("interest profile attached",
		zap.String("user_id", s.state.UserID),
		zap.String("confidence", string(profile.ConfidenceLevel)))
	return profile
}

// BuildEvidence analyzes raw activity records into the evidence profile.
// Requires the context lens; re-running with fresh records replaces the
// previous profile entirely.
func (s *Session) BuildEvidence(github *types.GitHubRecord, leetcode *types.LeetCodeRecord) (*types.EvidenceProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.ContextProfile == nil {
		return nil, ErrContextNotBuilt
	}

	profile := evidence.Analyze(github, leetcode)
	s.state.EvidenceProfile = profile
	if s.stage < StageEvidenceBuilt {
		s.stage = StageEvidenceBuilt
	}
	s.state.Touch()

	s.log.Info("evidence profile built",
		zap.String("user_id", s.state.UserID),
		zap.Int("flags", len(profile.Flags)))
	return profile, nil
}

// Decide runs the decision engine over everything gathered so far.
func (s *Session) Decide(ctx context.Context) (*types.DecisionState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.ContextProfile == nil {
		return nil, ErrContextNotBuilt
	}
	if s.state.EvidenceProfile == nil {
		return nil, ErrEvidenceNotBuilt
	}

	state := decision.Decide(ctx, decision.Inputs{
		Basic:     s.state.BasicProfile,
		Context:   s.state.ContextProfile,
		Evidence:  s.state.EvidenceProfile,
		Interests: s.state.InterestProfile,
	}, s.deps.Market)

	s.state.DecisionState = state
	s.stage = StageDecided
	s.state.Touch()

	s.log.Info("decision made",
		zap.String("user_id", s.state.UserID),
		zap.Strings("focus", state.Focus),
		zap.Strings("park", state.Park),
		zap.Strings("drop", state.Drop))
	return state, nil
}

// RunFullAnalysis executes the whole pipeline in one call: context, interest
// extraction, concurrent profile fetches, evidence analysis, decision. A
// failed fetch degrades that source to an absent record instead of aborting.
func (s *Session) RunFullAnalysis(ctx context.Context, githubUser, leetcodeUser, interestText string) (*types.DecisionState, error) {
	s.BuildContext()
	if interestText != "" {
		s.AttachInterests(ctx, interestText)
	}

	var (
		githubRecord   *types.GitHubRecord
		leetcodeRecord *types.LeetCodeRecord
	)

	g, fetchCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if githubUser == "" || s.deps.GitHub == nil {
			return nil
		}
		record, err := s.deps.GitHub.Fetch(fetchCtx, githubUser)
		if err != nil {
			s.log.Warn("github fetch failed, treating source as absent",
				zap.String("username", githubUser),
				zap.Error(err))
			return nil
		}
		githubRecord = &record
		return nil
	})
	g.Go(func() error {
		if leetcodeUser == "" || s.deps.LeetCode == nil {
			return nil
		}
		record, err := s.deps.LeetCode.Fetch(fetchCtx, leetcodeUser)
		if err != nil {
			s.log.Warn("leetcode fetch failed, treating source as absent",
				zap.String("username", leetcodeUser),
				zap.Error(err))
			return nil
		}
		leetcodeRecord = &record
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("profile fetch: %w", err)
	}

	if _, err := s.BuildEvidence(githubRecord, leetcodeRecord); err != nil {
		return nil, err
	}
	return s.Decide(ctx)
}

// Export serializes the user state and checks it against the state schema
// before handing it out.
func (s *Session) Export() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(s.state)
	if err != nil {
		return nil, fmt.Errorf("export state: %w", err)
	}
	if err := schemas.Validate(schemas.UserState, string(data)); err != nil {
		return nil, fmt.Errorf("export state: %w", err)
	}
	return data, nil
}

var _ ProfileFetcher[types.GitHubRecord] = (*fetch.GitHubFetcher)(nil)
var _ ProfileFetcher[types.LeetCodeRecord] = (*fetch.LeetCodeFetcher)(nil)
