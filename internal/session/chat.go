package session

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/figureit/career-engine/internal/agents"
	"github.com/figureit/career-engine/internal/types"
)

// HandleMessage routes one chat message to the right agent based on its
// classified intent. Panic and override messages also update the behavior
// log; the engine owns that memory, the agents never do.
func (s *Session) HandleMessage(ctx context.Context, message string) (string, error) {
	intent := agents.IntentCasual
	if s.deps.Intents != nil {
		intent = s.deps.Intents.Classify(ctx, message)
	}

	s.log.Debug("routing message",
		zap.String("user_id", s.state.UserID),
		zap.String("intent", string(intent)))

	switch intent {
	case agents.IntentPanic:
		return s.handlePanic(ctx, message)
	case agents.IntentOverride:
		return s.handleOverride(ctx, message)
	case agents.IntentExplanation:
		return s.handleExplanation(ctx, message)
	case agents.IntentRoadmap:
		return s.handleRoadmap(ctx)
	case agents.IntentLearning:
		return s.handleLearning(ctx, message)
	default:
		return s.handleCasual(ctx, message)
	}
}

func (s *Session) handlePanic(ctx context.Context, message string) (string, error) {
	s.recordBehavior(func(log *types.BehaviorLog) { log.PanicCount++ })

	if s.deps.PanicBot == nil {
		return "", errNoAgent("panic")
	}
	return s.deps.PanicBot.Respond(ctx, message, s.decisionOrEmpty(), s.State().EvidenceProfile)
}

// handleOverride honors an explicit path choice: the named path is promoted
// into focus and the displaced lowest-priority focus path is parked. The
// override count feeds future sensitivity tuning.
func (s *Session) handleOverride(ctx context.Context, message string) (string, error) {
	s.recordBehavior(func(log *types.BehaviorLog) { log.OverrideCount++ })

	if s.deps.Override == nil {
		return "", errNoAgent("override")
	}
	if s.Stage() < StageDecided {
		return "", ErrNotDecided
	}

	target, err := s.deps.Override.ExtractTarget(ctx, message)
	if err != nil || target == "" {
		// Could not pin down a path; treat as a general pushback conversation.
		return s.handleCasual(ctx, message)
	}

	s.applyOverride(target)

	if s.deps.Explainer != nil {
		return s.deps.Explainer.Explain(ctx, target, s.decisionOrEmpty(), s.State().EvidenceProfile)
	}
	return fmt.Sprintf("Okay, %s is now a focus path. The plan adjusts around it.", target), nil
}

func (s *Session) handleExplanation(ctx context.Context, message string) (string, error) {
	if s.deps.Explainer == nil {
		return "", errNoAgent("explanation")
	}
	if s.Stage() < StageDecided {
		return "", ErrNotDecided
	}

	state := s.decisionOrEmpty()
	path := ""
	if len(state.Focus) > 0 {
		path = state.Focus[0]
	}
	return s.deps.Explainer.Explain(ctx, path, state, s.State().EvidenceProfile)
}

func (s *Session) handleRoadmap(ctx context.Context) (string, error) {
	if s.deps.Roadmap == nil {
		return "", errNoAgent("roadmap")
	}
	if s.Stage() < StageDecided {
		return "", ErrNotDecided
	}

	st := s.State()
	return s.deps.Roadmap.Build(ctx, st.DecisionState, st.BasicProfile, st.ContextProfile)
}

func (s *Session) handleLearning(ctx context.Context, message string) (string, error) {
	if s.deps.Tutor == nil {
		return "", errNoAgent("learning")
	}
	return s.deps.Tutor.Teach(ctx, message, s.State().EvidenceProfile)
}

func (s *Session) handleCasual(ctx context.Context, message string) (string, error) {
	if s.deps.Advisor == nil {
		return "", errNoAgent("advisor")
	}
	return s.deps.Advisor.Respond(ctx, message, s.decisionOrEmpty())
}

// applyOverride moves target into focus, parking the last focus entry when
// the capacity cap would be exceeded. The reason records that the user chose.
func (s *Session) applyOverride(target string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.state.DecisionState
	if state == nil {
		return
	}

	for _, p := range state.Focus {
		if p == target {
			return // already focused
		}
	}

	state.Park = removePath(state.Park, target)
	state.Drop = removePath(state.Drop, target)
	state.Focus = append([]string{target}, state.Focus...)
	state.Reasons[target] = "Chosen by explicit user override."

	maxFocus := 1
	if s.state.ContextProfile != nil {
		maxFocus = s.state.ContextProfile.MaxFocusSkills
	}
	// The override takes the top slot; the lowest-ranked focus path yields.
	for len(state.Focus) > maxFocus {
		displaced := state.Focus[len(state.Focus)-1]
		state.Focus = state.Focus[:len(state.Focus)-1]
		state.Park = append(state.Park, displaced)
		state.Reasons[displaced] = "Parked to make room for a user override."
	}

	s.state.Touch()
	s.log.Info("override applied",
		zap.String("user_id", s.state.UserID),
		zap.String("target", target),
		zap.Strings("focus", state.Focus))
}

func (s *Session) recordBehavior(update func(*types.BehaviorLog)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	update(&s.state.BehaviorLog)
	s.state.BehaviorLog.LastActive = time.Now().UTC()
	s.state.Touch()
}

// decisionOrEmpty lets chat agents run before a decision exists.
func (s *Session) decisionOrEmpty() *types.DecisionState {
	st := s.State()
	if st.DecisionState != nil {
		return st.DecisionState
	}
	return &types.DecisionState{Reasons: map[string]string{}}
}

func errNoAgent(name string) error {
	return fmt.Errorf("no %s agent configured", name)
}

func removePath(paths []string, target string) []string {
	out := paths[:0]
	for _, p := range paths {
		if p != target {
			out = append(out, p)
		}
	}
	return out
}
