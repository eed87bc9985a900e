package simulation

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/google/uuid"

	"github.com/kevinkeet/watershed/internal/llm"
	"github.com/kevinkeet/watershed/internal/mastery"
	"github.com/kevinkeet/watershed/internal/progress"
	"github.com/kevinkeet/watershed/internal/scenario"
	"github.com/kevinkeet/watershed/internal/scoring"
	"github.com/kevinkeet/watershed/internal/store"
)

// ErrStaleSession reports that a backend result arrived for a session
// that no longer exists; the result was discarded.
var ErrStaleSession = errors.New("session no longer active; result discarded")

// ErrChoiceInFlight reports that a choice is already being processed.
// Steps depend on the previous step's recorded outcome, so submissions
// are mutually exclusive per session.
var ErrChoiceInFlight = errors.New("a choice is already being processed")

// ErrWrongPhase reports an operation invoked outside its legal phase.
type ErrWrongPhase struct {
	Op   string
	Have Phase
}

func (e *ErrWrongPhase) Error() string {
	return fmt.Sprintf("%s not allowed in phase %s", e.Op, e.Have)
}

// Engine owns at most one running session and drives it through the
// state machine.
type Engine struct {
	provider  llm.Provider
	generator *scenario.Generator
	progress  *progress.Service
	mastery   *mastery.Service
	eventRepo store.EventRepo

	mu       sync.Mutex
	session  *Session
	inFlight bool
}

// NewEngine creates a simulation engine.
func NewEngine(provider llm.Provider, prog *progress.Service, masterySvc *mastery.Service, eventRepo store.EventRepo) *Engine {
	return &Engine{
		provider:  provider,
		generator: scenario.NewGenerator(provider),
		progress:  prog,
		mastery:   masterySvc,
		eventRepo: eventRepo,
	}
}

// Session returns the current session, or nil.
func (e *Engine) Session() *Session {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.session
}

// Start begins a new session: generates scenarios for the case and, on
// success, lands in the selecting phase. Topics are credited to mastery
// when the session completes. A failed generation lands in the error
// phase with the failure reason.
func (e *Engine) Start(ctx context.Context, narrative string, strategy scoring.Strategy, topics []string) (*Session, error) {
	e.mu.Lock()
	s := newSession(strategy)
	s.Topics = topics
	e.session = s
	id := s.ID
	e.mu.Unlock()

	scenarios, err := e.generator.Generate(ctx, narrative)

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.session == nil || e.session.ID != id {
		return nil, ErrStaleSession
	}

	if err != nil {
		e.toErrorLocked(err)
		return e.session, err
	}

	e.session.Scenarios = scenarios
	e.session.Phase = PhaseSelecting
	return e.session, nil
}

// SelectScenario moves from selecting to playing with zeroed play state.
func (e *Engine) SelectScenario(ctx context.Context, scenarioID string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	s := e.session
	if s == nil || s.Phase != PhaseSelecting {
		return &ErrWrongPhase{Op: "select scenario", Have: e.phaseLocked()}
	}

	for i := range s.Scenarios {
		if s.Scenarios[i].ID == scenarioID {
			s.Scenario = &s.Scenarios[i]
			break
		}
	}
	if s.Scenario == nil {
		return fmt.Errorf("unknown scenario: %q", scenarioID)
	}

	s.Phase = PhasePlaying
	s.StepNumber = 0
	s.History = nil
	s.Score = 0

	e.appendSimEventLocked(ctx, "start", s)
	return nil
}

// NextStep fetches the next simulation step from the backend. The prior
// history travels with the request so the model reacts to earlier
// choices. Fatal failures move the session to the error phase.
func (e *Engine) NextStep(ctx context.Context) (*Step, error) {
	e.mu.Lock()
	s := e.session
	if s == nil || s.Phase != PhasePlaying {
		e.mu.Unlock()
		return nil, &ErrWrongPhase{Op: "next step", Have: e.phaseLocked()}
	}
	if e.inFlight {
		e.mu.Unlock()
		return nil, ErrChoiceInFlight
	}
	e.inFlight = true
	id := s.ID
	sc := s.Scenario
	stepNumber := s.StepNumber + 1
	history := append([]HistoryEntry(nil), s.History...)
	e.mu.Unlock()

	step, err := e.fetchStep(ctx, sc, stepNumber, history)

	e.mu.Lock()
	defer e.mu.Unlock()
	e.inFlight = false

	if e.session == nil || e.session.ID != id {
		return nil, ErrStaleSession
	}
	if err != nil {
		e.toErrorLocked(err)
		return nil, err
	}

	e.session.CurrentStep = step
	return step, nil
}

// SubmitChoice scores the learner's selection on the current step. The
// score delta comes from the chosen option's own quality tag; the
// feedback adapter may override only the quality recorded in history.
// A second submission while one is outstanding is rejected.
func (e *Engine) SubmitChoice(ctx context.Context, choiceIndex int) (*HistoryEntry, error) {
	e.mu.Lock()
	s := e.session
	if s == nil || s.Phase != PhasePlaying {
		e.mu.Unlock()
		return nil, &ErrWrongPhase{Op: "submit choice", Have: e.phaseLocked()}
	}
	if s.CurrentStep == nil {
		e.mu.Unlock()
		return nil, fmt.Errorf("no step pending")
	}
	if e.inFlight {
		e.mu.Unlock()
		return nil, ErrChoiceInFlight
	}
	step := s.CurrentStep
	if choiceIndex < 0 || choiceIndex >= len(step.Choices) {
		e.mu.Unlock()
		return nil, fmt.Errorf("choice index %d out of range", choiceIndex)
	}
	e.inFlight = true
	id := s.ID
	choice := step.Choices[choiceIndex]

	// Provisional delta, fixed before the backend sees the choice.
	delta := s.Strategy.Delta(scoring.ParseQuality(choice.BaseQuality))
	e.mu.Unlock()

	fb, err := e.fetchFeedback(ctx, step, choice)

	e.mu.Lock()
	defer e.mu.Unlock()
	e.inFlight = false

	if e.session == nil || e.session.ID != id {
		return nil, ErrStaleSession
	}
	s = e.session

	if err != nil {
		if isFatal(err) {
			e.toErrorLocked(err)
			return nil, err
		}
		// Feedback is advisory; play continues on its base quality.
		fb = &Feedback{}
	}

	entry := HistoryEntry{
		Step:      step.StepNumber,
		Narrative: step.Narrative,
		Choice:    choice.Text,
		Quality:   effectiveQuality(choice, fb),
		Delta:     delta,
		Feedback:  fb.Text,
	}

	s.Score += delta
	s.History = append(s.History, entry)
	s.StepNumber = step.StepNumber
	s.CurrentStep = nil

	e.appendDecisionEventLocked(ctx, s, &entry)

	if s.StepNumber >= scoring.MaxSteps || step.IsLastStep {
		e.completeLocked(ctx, s)
	}

	return &entry, nil
}

// Restart returns a finished session to scenario selection with play
// state zeroed. The session gets a fresh identity so any straggling
// backend result for the old run is discarded as stale.
func (e *Engine) Restart() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	s := e.session
	if s == nil || s.Phase != PhaseComplete {
		return &ErrWrongPhase{Op: "restart", Have: e.phaseLocked()}
	}

	s.ID = uuid.NewString()
	s.Phase = PhaseSelecting
	s.Scenario = nil
	s.StepNumber = 0
	s.CurrentStep = nil
	s.History = nil
	s.Score = 0
	return nil
}

// Abandon ends the session immediately. Any in-flight backend result
// will find the session gone and be discarded.
func (e *Engine) Abandon(ctx context.Context) {
	e.mu.Lock()
	defer e.mu.Unlock()

	s := e.session
	if s == nil {
		return
	}
	if s.Phase == PhasePlaying {
		e.appendSimEventLocked(ctx, "abandon", s)
	}
	e.session = nil
}

// completeLocked finishes the session and applies the learner-progress
// side effects: the end event, XP, stats, achievements, and a mastery
// point per teaching topic.
func (e *Engine) completeLocked(ctx context.Context, s *Session) {
	s.Phase = PhaseComplete
	e.appendSimEventLocked(ctx, "end", s)

	if e.progress != nil {
		xp := s.Score
		if xp < 0 {
			xp = 0
		}
		e.progress.AwardXP(ctx, xp, progress.ActivityActivity, fmt.Sprintf("simulation %s", s.Scenario.ID))
		e.progress.Update(func(r *progress.Record) {
			r.Stats.CasesCompleted++
		})
		e.progress.CheckAchievements(ctx)
	}

	if e.mastery != nil {
		for _, topic := range s.Topics {
			e.mastery.RecordPoints(ctx, topic, 1, "simulation")
		}
	}
}

func (e *Engine) toErrorLocked(err error) {
	s := e.session
	s.Phase = PhaseError
	s.ErrorReason = err.Error()
	s.ErrorKind = classifyError(err)
}

func (e *Engine) phaseLocked() Phase {
	if e.session == nil {
		return ""
	}
	return e.session.Phase
}

func (e *Engine) appendSimEventLocked(ctx context.Context, action string, s *Session) {
	if e.eventRepo == nil {
		return
	}
	data := store.SimulationEventData{
		SessionID: s.ID,
		Action:    action,
		Score:     s.Score,
		MaxScore:  s.MaxScore(),
		Steps:     len(s.History),
	}
	if s.Scenario != nil {
		data.ScenarioID = s.Scenario.ID
		data.ScenarioType = string(s.Scenario.Type)
	}
	if err := e.eventRepo.AppendSimulationEvent(ctx, data); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log simulation event: %v\n", err)
	}
}

func (e *Engine) appendDecisionEventLocked(ctx context.Context, s *Session, entry *HistoryEntry) {
	if e.eventRepo == nil {
		return
	}
	data := store.DecisionEventData{
		SessionID: s.ID,
		Step:      entry.Step,
		Action:    entry.Choice,
		Quality:   string(entry.Quality),
		Delta:     entry.Delta,
	}
	if err := e.eventRepo.AppendDecisionEvent(ctx, data); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log decision event: %v\n", err)
	}
}

// classifyError maps backend failures to the error phase's
// machine-checkable kind.
func classifyError(err error) ErrorKind {
	var auth *llm.ErrAuth
	if errors.As(err, &auth) {
		return ErrorKindConfig
	}
	var quota *llm.ErrQuotaExceeded
	if errors.As(err, &quota) {
		return ErrorKindLimit
	}
	var usage *llm.ErrUsageLimit
	if errors.As(err, &usage) {
		return ErrorKindLimit
	}
	var gen *scenario.ErrGeneration
	if errors.As(err, &gen) {
		return ErrorKindGeneration
	}
	var inv *llm.ErrInvalidResponse
	if errors.As(err, &inv) {
		return ErrorKindGeneration
	}
	return ErrorKindTransient
}

func isFatal(err error) bool {
	switch classifyError(err) {
	case ErrorKindConfig, ErrorKindLimit:
		return true
	}
	return false
}
