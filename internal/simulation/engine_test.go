package simulation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/kevinkeet/watershed/internal/llm"
	"github.com/kevinkeet/watershed/internal/mastery"
	"github.com/kevinkeet/watershed/internal/progress"
	"github.com/kevinkeet/watershed/internal/scenario"
	"github.com/kevinkeet/watershed/internal/scoring"
)

const scenariosJSON = `{"scenarios":[
	{"id":"s1","title":"First hours","hook":"Arrives hypotensive.","type":"initial_management","difficulty":"standard"},
	{"id":"s2","title":"Night call","hook":"Paged at 2am.","type":"overnight_call","difficulty":"challenging"},
	{"id":"s3","title":"Discharge","hook":"Day 4.","type":"discharge_planning","difficulty":"standard"}
]}`

func stepJSON(n int, isLast bool) llm.MockResponse {
	return llm.MockResponse{Content: json.RawMessage(fmt.Sprintf(`{
		"stepNumber": %d,
		"time": "Hour %d",
		"narrative": "The patient's condition evolves.",
		"vitals": {"HR": "110", "BP": "92/58"},
		"findings": "Exam notable for cool extremities.",
		"choices": [
			{"text": "Start broad-spectrum antibiotics", "baseQuality": "optimal"},
			{"text": "Order a routine chest X-ray", "baseQuality": "suboptimal"},
			{"text": "Discharge the patient", "baseQuality": "poor"}
		],
		"isLastStep": %t
	}`, n, n, isLast))}
}

func feedbackJSON(quality string) llm.MockResponse {
	return llm.MockResponse{Content: json.RawMessage(fmt.Sprintf(
		`{"quality":"%s","text":"Reasonable judgment for this stage."}`, quality))}
}

func startedEngine(t *testing.T, mock *llm.MockProvider) *Engine {
	t.Helper()
	e := NewEngine(mock, progress.NewService(nil, nil), mastery.NewService(nil, nil), nil)

	s, err := e.Start(context.Background(), "62M with chest pain", scoring.StrategyGenerated, []string{"acute coronary syndrome"})
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if s.Phase != PhaseSelecting {
		t.Fatalf("phase = %s, want selecting", s.Phase)
	}
	if err := e.SelectScenario(context.Background(), "s1"); err != nil {
		t.Fatalf("SelectScenario: %v", err)
	}
	return e
}

func TestEngine_EndToEnd(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(scenariosJSON)},
		stepJSON(1, false),
		feedbackJSON("optimal"),
		stepJSON(2, false),
	)
	e := startedEngine(t, mock)
	ctx := context.Background()

	step, err := e.NextStep(ctx)
	if err != nil {
		t.Fatalf("NextStep: %v", err)
	}
	if step.StepNumber != 1 {
		t.Errorf("step number = %d, want 1", step.StepNumber)
	}

	entry, err := e.SubmitChoice(ctx, 0) // the optimal choice
	if err != nil {
		t.Fatalf("SubmitChoice: %v", err)
	}
	if entry.Quality != scoring.QualityOptimal {
		t.Errorf("quality = %s, want optimal", entry.Quality)
	}

	s := e.Session()
	if len(s.History) != 1 {
		t.Fatalf("history length = %d, want 1", len(s.History))
	}
	if s.Score != 25 {
		t.Errorf("score = %d, want 25", s.Score)
	}
	if s.Phase != PhasePlaying {
		t.Errorf("phase = %s, want playing", s.Phase)
	}

	// The next step request carries the accumulated history.
	if _, err := e.NextStep(ctx); err != nil {
		t.Fatalf("NextStep 2: %v", err)
	}
	lastCall := mock.Calls[len(mock.Calls)-1]
	if !strings.Contains(lastCall.Messages[0].Content, "Decisions so far") {
		t.Error("step 2 request should include prior history")
	}
	if !strings.Contains(lastCall.Messages[0].Content, "Start broad-spectrum antibiotics") {
		t.Error("step 2 request should name the earlier choice")
	}
}

func TestEngine_FourStepCap(t *testing.T) {
	responses := []llm.MockResponse{{Content: json.RawMessage(scenariosJSON)}}
	for i := 1; i <= 4; i++ {
		responses = append(responses, stepJSON(i, false), feedbackJSON("optimal"))
	}
	mock := llm.NewMockProvider(responses...)
	e := startedEngine(t, mock)
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		if _, err := e.NextStep(ctx); err != nil {
			t.Fatalf("NextStep %d: %v", i+1, err)
		}
		if _, err := e.SubmitChoice(ctx, 0); err != nil {
			t.Fatalf("SubmitChoice %d: %v", i+1, err)
		}
	}

	s := e.Session()
	if s.Phase != PhaseComplete {
		t.Fatalf("phase = %s, want complete after 4 steps", s.Phase)
	}
	if len(s.History) != 4 {
		t.Errorf("history length = %d, want 4", len(s.History))
	}
	if s.Score != 100 || s.MaxScore() != 100 {
		t.Errorf("score/max = %d/%d, want 100/100", s.Score, s.MaxScore())
	}
}

func TestEngine_LastStepFlagEndsEarly(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(scenariosJSON)},
		stepJSON(1, true),
		feedbackJSON("suboptimal"),
	)
	e := startedEngine(t, mock)
	ctx := context.Background()

	if _, err := e.NextStep(ctx); err != nil {
		t.Fatalf("NextStep: %v", err)
	}
	if _, err := e.SubmitChoice(ctx, 1); err != nil {
		t.Fatalf("SubmitChoice: %v", err)
	}

	s := e.Session()
	if s.Phase != PhaseComplete {
		t.Fatalf("phase = %s, want complete after isLastStep", s.Phase)
	}
	if s.Score != 10 {
		t.Errorf("score = %d, want 10", s.Score)
	}
	if s.MaxScore() != 25 {
		t.Errorf("maxScore = %d, want 25 (1 step played)", s.MaxScore())
	}
}

func TestEngine_MixedQualitySequence(t *testing.T) {
	// optimal, suboptimal, poor, optimal → 25+10+0+25 = 60 of 100.
	responses := []llm.MockResponse{{Content: json.RawMessage(scenariosJSON)}}
	for i := 1; i <= 4; i++ {
		responses = append(responses, stepJSON(i, false), feedbackJSON("optimal"))
	}
	mock := llm.NewMockProvider(responses...)
	e := startedEngine(t, mock)
	ctx := context.Background()

	picks := []int{0, 1, 2, 0}
	for i, pick := range picks {
		if _, err := e.NextStep(ctx); err != nil {
			t.Fatalf("NextStep %d: %v", i+1, err)
		}
		if _, err := e.SubmitChoice(ctx, pick); err != nil {
			t.Fatalf("SubmitChoice %d: %v", i+1, err)
		}
	}

	s := e.Session()
	if s.Score != 60 {
		t.Errorf("score = %d, want 60", s.Score)
	}
	if s.MaxScore() != 100 {
		t.Errorf("maxScore = %d, want 100", s.MaxScore())
	}
}

func TestEngine_FeedbackQualityOverridesHistory(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(scenariosJSON)},
		stepJSON(1, true),
		feedbackJSON("poor"), // backend downgrades the nominally optimal pick
	)
	e := startedEngine(t, mock)
	ctx := context.Background()

	if _, err := e.NextStep(ctx); err != nil {
		t.Fatalf("NextStep: %v", err)
	}
	entry, err := e.SubmitChoice(ctx, 0)
	if err != nil {
		t.Fatalf("SubmitChoice: %v", err)
	}

	// History records the override; the score keeps the provisional delta.
	if entry.Quality != scoring.QualityPoor {
		t.Errorf("history quality = %s, want poor (overridden)", entry.Quality)
	}
	if entry.Delta != 25 {
		t.Errorf("delta = %d, want 25 (from base quality)", entry.Delta)
	}
}

func TestEngine_UnparsableFeedbackFallsBack(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(scenariosJSON)},
		stepJSON(1, true),
		llm.MockResponse{Content: json.RawMessage("Good thinking, though fluids first would be better.")},
	)
	e := startedEngine(t, mock)
	ctx := context.Background()

	if _, err := e.NextStep(ctx); err != nil {
		t.Fatalf("NextStep: %v", err)
	}
	entry, err := e.SubmitChoice(ctx, 0)
	if err != nil {
		t.Fatalf("SubmitChoice: %v", err)
	}

	if entry.Quality != scoring.QualityOptimal {
		t.Errorf("quality = %s, want optimal (base quality kept)", entry.Quality)
	}
	if !strings.Contains(entry.Feedback, "fluids first") {
		t.Errorf("feedback = %q, want raw text preserved", entry.Feedback)
	}
}

func TestEngine_GenerationFailureEntersErrorPhase(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage("no scenarios today")},
	)
	e := NewEngine(mock, nil, nil, nil)

	s, err := e.Start(context.Background(), "case", scoring.StrategyGenerated, nil)
	if err == nil {
		t.Fatal("expected generation error")
	}
	if s.Phase != PhaseError {
		t.Fatalf("phase = %s, want error", s.Phase)
	}
	if s.ErrorKind != ErrorKindGeneration {
		t.Errorf("kind = %s, want generation", s.ErrorKind)
	}
	if s.ErrorReason == "" {
		t.Error("expected a human-readable reason")
	}
}

func TestEngine_UsageLimitIsFatalMidSession(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(scenariosJSON)},
		stepJSON(1, false),
		llm.MockResponse{Err: &llm.ErrUsageLimit{Resource: "calls", Limit: 100}},
	)
	e := startedEngine(t, mock)
	ctx := context.Background()

	if _, err := e.NextStep(ctx); err != nil {
		t.Fatalf("NextStep: %v", err)
	}
	_, err := e.SubmitChoice(ctx, 0)
	var limitErr *llm.ErrUsageLimit
	if !errors.As(err, &limitErr) {
		t.Fatalf("expected ErrUsageLimit, got: %v", err)
	}
	if got := e.Session().Phase; got != PhaseError {
		t.Errorf("phase = %s, want error", got)
	}
	if got := e.Session().ErrorKind; got != ErrorKindLimit {
		t.Errorf("kind = %s, want limit", got)
	}
}

func TestEngine_Restart(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(scenariosJSON)},
		stepJSON(1, true),
		feedbackJSON("optimal"),
	)
	e := startedEngine(t, mock)
	ctx := context.Background()

	if _, err := e.NextStep(ctx); err != nil {
		t.Fatalf("NextStep: %v", err)
	}
	if _, err := e.SubmitChoice(ctx, 0); err != nil {
		t.Fatalf("SubmitChoice: %v", err)
	}
	oldID := e.Session().ID

	if err := e.Restart(); err != nil {
		t.Fatalf("Restart: %v", err)
	}

	s := e.Session()
	if s.Phase != PhaseSelecting {
		t.Errorf("phase = %s, want selecting", s.Phase)
	}
	if s.Score != 0 || len(s.History) != 0 || s.StepNumber != 0 || s.Scenario != nil {
		t.Error("expected play state zeroed on restart")
	}
	if s.ID == oldID {
		t.Error("expected a fresh session identity on restart")
	}
	if len(s.Scenarios) != 3 {
		t.Errorf("scenario list should survive restart, got %d", len(s.Scenarios))
	}
}

func TestEngine_AbandonDiscardsInFlightResult(t *testing.T) {
	release := make(chan struct{})
	provider := &blockingProvider{
		release: release,
		started: make(chan struct{}, 1),
		content: stepJSON(1, false).Content,
	}

	e := NewEngine(provider, nil, nil, nil)
	// Scenario generation uses a plain mock; only the step fetch blocks.
	e.generator = scenario.NewGenerator(llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(scenariosJSON)},
	))

	ctx := context.Background()
	if _, err := e.Start(ctx, "case", scoring.StrategyGenerated, nil); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := e.SelectScenario(ctx, "s1"); err != nil {
		t.Fatalf("SelectScenario: %v", err)
	}

	done := make(chan error, 1)
	go func() {
		_, err := e.NextStep(ctx)
		done <- err
	}()

	<-provider.started
	e.Abandon(ctx)
	close(release)

	if err := <-done; !errors.Is(err, ErrStaleSession) {
		t.Fatalf("expected ErrStaleSession, got: %v", err)
	}
	if e.Session() != nil {
		t.Error("expected no session after abandon")
	}
}

func TestEngine_ConcurrentSubmitRejected(t *testing.T) {
	release := make(chan struct{})
	provider := &blockingProvider{
		release: release,
		started: make(chan struct{}, 1),
		content: stepJSON(1, true).Content,
		passes:  1, // the step fetch completes; the feedback fetch blocks
	}

	e := NewEngine(provider, nil, nil, nil)
	e.generator = scenario.NewGenerator(llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(scenariosJSON)},
	))

	ctx := context.Background()
	if _, err := e.Start(ctx, "case", scoring.StrategyGenerated, nil); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := e.SelectScenario(ctx, "s1"); err != nil {
		t.Fatalf("SelectScenario: %v", err)
	}
	if _, err := e.NextStep(ctx); err != nil {
		t.Fatalf("NextStep: %v", err)
	}

	done := make(chan error, 1)
	go func() {
		_, err := e.SubmitChoice(ctx, 0)
		done <- err
	}()

	<-provider.started
	if _, err := e.SubmitChoice(ctx, 0); !errors.Is(err, ErrChoiceInFlight) {
		t.Fatalf("expected ErrChoiceInFlight while one is outstanding, got: %v", err)
	}

	close(release)
	if err := <-done; err != nil {
		t.Fatalf("outstanding submission: %v", err)
	}
	if s := e.Session(); len(s.History) != 1 {
		t.Errorf("history length = %d, want 1 (rejected submission recorded nothing)", len(s.History))
	}
}

func TestEngine_SubmitWithoutStepRejected(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(scenariosJSON)})
	e := startedEngine(t, mock)

	if _, err := e.SubmitChoice(context.Background(), 0); err == nil {
		t.Fatal("expected error submitting with no pending step")
	}
}

func TestEngine_WrongPhaseRejected(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(scenariosJSON)})
	e := NewEngine(mock, nil, nil, nil)

	if _, err := e.Start(context.Background(), "case", scoring.StrategyGenerated, nil); err != nil {
		t.Fatalf("Start: %v", err)
	}

	// Still selecting: no steps yet.
	if _, err := e.NextStep(context.Background()); err == nil {
		t.Fatal("expected wrong-phase error for NextStep while selecting")
	}
	var phaseErr *ErrWrongPhase
	if err := e.Restart(); !errors.As(err, &phaseErr) {
		t.Fatalf("expected ErrWrongPhase for restart while selecting, got: %v", err)
	}
}

func TestEngine_LibraryStrategyScoring(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(scenariosJSON)},
		stepJSON(1, true),
		feedbackJSON("optimal"),
	)
	e := NewEngine(mock, nil, nil, nil)
	ctx := context.Background()

	if _, err := e.Start(ctx, "case", scoring.StrategyLibrary, nil); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := e.SelectScenario(ctx, "s1"); err != nil {
		t.Fatalf("SelectScenario: %v", err)
	}
	if _, err := e.NextStep(ctx); err != nil {
		t.Fatalf("NextStep: %v", err)
	}
	entry, err := e.SubmitChoice(ctx, 2) // the poor choice
	if err != nil {
		t.Fatalf("SubmitChoice: %v", err)
	}

	if entry.Delta != -5 {
		t.Errorf("delta = %d, want -5 under library scoring", entry.Delta)
	}
	if s := e.Session(); s.Score != -5 || s.MaxScore() != 10 {
		t.Errorf("score/max = %d/%d, want -5/10", s.Score, s.MaxScore())
	}
}

// blockingProvider holds a Generate call open until released, so tests
// can race a second operation against one mid-flight. The first passes
// calls are served immediately.
type blockingProvider struct {
	release <-chan struct{}
	started chan struct{} // buffered; receives once a blocked Generate is entered
	content json.RawMessage
	passes  int
}

func (b *blockingProvider) Generate(ctx context.Context, _ llm.Request) (*llm.Response, error) {
	if b.passes > 0 {
		b.passes--
		return &llm.Response{Content: b.content, Model: "block", StopReason: "end"}, nil
	}
	select {
	case b.started <- struct{}{}:
	default:
	}
	select {
	case <-b.release:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	return &llm.Response{Content: b.content, Model: "block", StopReason: "end"}, nil
}

func (b *blockingProvider) ModelID() string { return "block" }
