// Package simulation drives the adaptive clinical-simulation state
// machine: scenario selection, step-by-step play, scoring, and the
// learner-progress side effects of a completed session.
package simulation

import (
	"github.com/google/uuid"

	"github.com/kevinkeet/watershed/internal/scenario"
	"github.com/kevinkeet/watershed/internal/scoring"
)

// Phase is the session's position in the state machine.
type Phase string

const (
	PhaseGenerating Phase = "generating"
	PhaseSelecting  Phase = "selecting"
	PhasePlaying    Phase = "playing"
	PhaseComplete   Phase = "complete"
	PhaseError      Phase = "error"
)

// Choice is one selectable option within a step.
type Choice struct {
	Text        string `json:"text"`
	BaseQuality string `json:"baseQuality"`
}

// Step is one decision point within a running scenario. Discarded once
// the learner's choice is scored; only the history entry survives.
type Step struct {
	StepNumber int               `json:"stepNumber"`
	Time       string            `json:"time"`
	Narrative  string            `json:"narrative"`
	Vitals     map[string]string `json:"vitals"`
	Findings   string            `json:"findings"`
	Choices    []Choice          `json:"choices"`
	IsLastStep bool              `json:"isLastStep"`
}

// HistoryEntry records one scored decision.
type HistoryEntry struct {
	Step      int
	Narrative string
	Choice    string
	Quality   scoring.Quality
	Delta     int
	Feedback  string
}

// ErrorKind is the machine-checkable classification carried by the
// error phase.
type ErrorKind string

const (
	ErrorKindConfig     ErrorKind = "config"
	ErrorKindLimit      ErrorKind = "limit"
	ErrorKindTransient  ErrorKind = "transient"
	ErrorKindGeneration ErrorKind = "generation"
)

// Session is one run through the state machine. Sessions are identified
// so a result arriving after abandonment can be detected as stale.
type Session struct {
	ID        string
	Phase     Phase
	Strategy  scoring.Strategy
	Scenarios []scenario.Scenario
	Scenario  *scenario.Scenario
	Topics    []string // teaching topics credited on completion

	StepNumber  int
	CurrentStep *Step
	History     []HistoryEntry
	Score       int

	// Populated in the error phase.
	ErrorReason string
	ErrorKind   ErrorKind
}

func newSession(strategy scoring.Strategy) *Session {
	return &Session{
		ID:       uuid.NewString(),
		Phase:    PhaseGenerating,
		Strategy: strategy,
	}
}

// MaxScore is the best total reachable with the steps played so far.
func (s *Session) MaxScore() int {
	return s.Strategy.MaxScore(len(s.History))
}
