package market

import (
	"context"
	"math"
	"time"

	"go.uber.org/zap"
)

// Multiplier bounds. The market signal is a bounded, explainable adjustment,
// never an open-ended score.
const (
	MinMultiplier = 0.7
	MaxMultiplier = 1.3
)

// NeutralMultiplier is the fallback used when a skill cannot be classified.
const NeutralMultiplier = 1.0

// trendMultipliers maps a demand direction to its scoring factor.
var trendMultipliers = map[Trend]float64{
	TrendRising:    1.1,
	TrendStable:    1.0,
	TrendDeclining: 0.9,
	TrendNiche:     0.9,
}

// saturationAdjustments reward thin talent supply and penalize crowded pools.
var saturationAdjustments = map[Saturation]float64{
	SaturationHigh:   -0.15,
	SaturationMedium: 0.0,
	SaturationLow:    0.10,
}

// Demand tiers applied to the current job count of a known skill.
const (
	veryHighDemandJobs = 4500
	highDemandJobs     = 2500
	lowDemandJobs      = 1000
)

// TrendClassifier resolves the hiring trend of a skill the static table does
// not know about. Implementations are expected to call out over the network;
// the Pulse enforces a bounded timeout around every call.
type TrendClassifier interface {
	ClassifyTrend(ctx context.Context, skill string) (Trend, error)
}

// Pulse computes decision-safe market multipliers.
type Pulse struct {
	state      *State
	classifier TrendClassifier
	cache      TrendCache
	timeout    time.Duration
	logger     *zap.Logger
}

// DefaultClassifyTimeout bounds a single external classification call.
const DefaultClassifyTimeout = 10 * time.Second

// NewPulse wires the deterministic state together with the classifier and the
// injected cache. classifier may be nil, in which case unknown skills always
// resolve to the neutral multiplier.
func NewPulse(state *State, classifier TrendClassifier, cache TrendCache, logger *zap.Logger) *Pulse {
	if state == nil {
		state = NewState()
	}
	if cache == nil {
		cache = NewMemoryCache()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pulse{
		state:      state,
		classifier: classifier,
		cache:      cache,
		timeout:    DefaultClassifyTimeout,
		logger:     logger,
	}
}

// WithTimeout overrides the classification timeout.
func (p *Pulse) WithTimeout(d time.Duration) *Pulse {
	if d > 0 {
		p.timeout = d
	}
	return p
}

// GetMultiplier returns a decision-safe multiplier in [0.7, 1.3] for any
// skill. Known skills never call the classifier and never touch the cache.
func (p *Pulse) GetMultiplier(ctx context.Context, skill string) float64 {
	normalized := NormalizeSkill(skill)

	if signal, ok := p.state.Skills[normalized]; ok {
		return knownSkillMultiplier(signal)
	}

	return p.classifyUnknown(ctx, skill, normalized)
}

// knownSkillMultiplier derives the multiplier from hard market data only.
func knownSkillMultiplier(signal SkillSignal) float64 {
	multiplier := 1.0

	switch {
	case signal.Jobs > veryHighDemandJobs:
		multiplier += 0.2
	case signal.Jobs > highDemandJobs:
		multiplier += 0.1
	case signal.Jobs < lowDemandJobs:
		multiplier -= 0.1
	}

	multiplier *= trendMultipliers[CalculateTrend(signal.Jobs, signal.PreviousJobs)]
	multiplier += saturationAdjustments[signal.Saturation]

	return clampRound(multiplier)
}

// classifyUnknown resolves an unknown skill through the cache, then the
// classifier. Failures fall back to neutral and are deliberately not cached,
// so a transient outage is retried on the next call while a successful
// classification sticks for the process lifetime.
func (p *Pulse) classifyUnknown(ctx context.Context, skill, normalized string) float64 {
	if mult, ok := p.cache.Get(normalized); ok {
		return mult
	}

	if p.classifier == nil {
		return NeutralMultiplier
	}

	classifyCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	trend, err := p.classifier.ClassifyTrend(classifyCtx, skill)
	if err != nil {
		p.logger.Warn("trend classification failed, using neutral multiplier",
			zap.String("skill", skill),
			zap.Error(err),
		)
		return NeutralMultiplier
	}

	mult, ok := trendMultipliers[trend]
	if !ok {
		p.logger.Warn("trend classification returned unknown label",
			zap.String("skill", skill),
			zap.String("trend", string(trend)),
		)
		return NeutralMultiplier
	}

	p.cache.Set(normalized, mult)
	p.logger.Debug("cached classified skill trend",
		zap.String("skill", normalized),
		zap.String("trend", string(trend)),
		zap.Float64("multiplier", mult),
	)

	return mult
}

func clampRound(multiplier float64) float64 {
	clamped := math.Min(math.Max(multiplier, MinMultiplier), MaxMultiplier)
	return math.Round(clamped*100) / 100
}

// SkillSnapshot is the read-only reporting view of one known skill.
type SkillSnapshot struct {
	Jobs       int        `json:"jobs"`
	Trend      Trend      `json:"trend"`
	Saturation Saturation `json:"saturation"`
	Multiplier float64    `json:"multiplier"`
}

// Snapshot reports the current deterministic market view. It is a debugging
// surface, not part of decision-making, and never calls the classifier.
type Snapshot struct {
	GeneratedAt time.Time                `json:"generated_at"`
	Skills      map[string]SkillSnapshot `json:"skills"`
}

// Snapshot returns the generation timestamp plus, per known skill, its demand
// count, computed trend, saturation and multiplier.
func (p *Pulse) Snapshot() Snapshot {
	skills := make(map[string]SkillSnapshot, len(p.state.Skills))
	for name, signal := range p.state.Skills {
		skills[name] = SkillSnapshot{
			Jobs:       signal.Jobs,
			Trend:      CalculateTrend(signal.Jobs, signal.PreviousJobs),
			Saturation: signal.Saturation,
			Multiplier: knownSkillMultiplier(signal),
		}
	}
	return Snapshot{GeneratedAt: p.state.GeneratedAt, Skills: skills}
}
