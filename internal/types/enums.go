// Package types provides the canonical in-memory data model shared across the
// career-engine pipeline. It holds pure state objects only; all derivation
// logic lives in the classify, evidence, market and decision packages.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Confidence describes how certain the interest analysis is about its signals.
type Confidence string

// Confidence levels.
const (
	ConfidenceLow    Confidence = "low"
	ConfidenceMedium Confidence = "medium"
	ConfidenceHigh   Confidence = "high"
)

// Strictness controls how aggressively the engine filters options.
type Strictness string

// Strictness levels.
const (
	StrictnessLow    Strictness = "low"
	StrictnessMedium Strictness = "medium"
	StrictnessHigh   Strictness = "high"
)

// Urgency reflects how much runway the student has before hiring season.
type Urgency string

// Urgency levels.
const (
	UrgencyLow    Urgency = "low"
	UrgencyMedium Urgency = "medium"
	UrgencyHigh   Urgency = "high"
)

// ProofExpectation defines what counts as "done" for a deliverable:
// code on GitHub (basic) or something deployed and live (strong).
type ProofExpectation string

// Proof expectation levels.
const (
	ProofBasic  ProofExpectation = "basic"
	ProofStrong ProofExpectation = "strong"
)
