package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/kevinkeet/watershed/internal/store"
)

// stubEventRepo implements store.EventRepo for decorator tests.
type stubEventRepo struct {
	todayCalls  int
	todayTokens int
	llmEvents   []store.LLMRequestEventData
}

func (s *stubEventRepo) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	s.llmEvents = append(s.llmEvents, data)
	return nil
}

func (s *stubEventRepo) QueryLLMEvents(context.Context, store.QueryOpts) ([]store.LLMEventRecord, error) {
	return nil, nil
}

func (s *stubEventRepo) GetLLMEvent(context.Context, int) (*store.LLMEventRecord, error) {
	return nil, nil
}

func (s *stubEventRepo) LLMUsageByPurpose(context.Context) ([]store.LLMUsageStat, error) {
	return nil, nil
}

func (s *stubEventRepo) LLMUsageByModel(context.Context) ([]store.LLMModelUsageStat, error) {
	return nil, nil
}

func (s *stubEventRepo) TodayLLMUsage(context.Context, time.Time) (int, int, error) {
	return s.todayCalls, s.todayTokens, nil
}

func (s *stubEventRepo) AppendXPEvent(context.Context, store.XPEventData) error { return nil }

func (s *stubEventRepo) AppendAchievementEvent(context.Context, store.AchievementEventData) error {
	return nil
}

func (s *stubEventRepo) AppendSimulationEvent(context.Context, store.SimulationEventData) error {
	return nil
}

func (s *stubEventRepo) QuerySimulationSummaries(context.Context, store.QueryOpts) ([]store.SimulationSummaryRecord, error) {
	return nil, nil
}

func (s *stubEventRepo) AppendDecisionEvent(context.Context, store.DecisionEventData) error {
	return nil
}

func (s *stubEventRepo) AppendMasteryEvent(context.Context, store.MasteryEventData) error {
	return nil
}

func (s *stubEventRepo) AppendReviewEvent(context.Context, store.ReviewEventData) error {
	return nil
}

func TestUsageLimits_UnderCeiling(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{}`), Usage: Usage{TotalTokens: 500}},
	)
	p := WithUsageLimits(mock, &stubEventRepo{}, UsageConfig{MaxCallsPerDay: 10, MaxTokensPerDay: 1000})

	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
}

func TestUsageLimits_CallCeiling(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{}`)},
		MockResponse{Content: json.RawMessage(`{}`)},
		MockResponse{Content: json.RawMessage(`{}`)},
	)
	p := WithUsageLimits(mock, &stubEventRepo{}, UsageConfig{MaxCallsPerDay: 2, MaxTokensPerDay: 1000})

	ctx := context.Background()
	if _, err := p.Generate(ctx, Request{}); err != nil {
		t.Fatalf("call 1: unexpected error: %v", err)
	}
	if _, err := p.Generate(ctx, Request{}); err != nil {
		t.Fatalf("call 2: unexpected error: %v", err)
	}

	_, err := p.Generate(ctx, Request{})
	var limitErr *ErrUsageLimit
	if !errors.As(err, &limitErr) {
		t.Fatalf("expected ErrUsageLimit, got: %v", err)
	}
	if limitErr.Resource != "calls" {
		t.Fatalf("expected calls resource, got %q", limitErr.Resource)
	}
	// Third request never reached the provider.
	if mock.CallCount() != 2 {
		t.Fatalf("expected 2 provider calls, got %d", mock.CallCount())
	}
}

func TestUsageLimits_TokenCeiling(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{}`), Usage: Usage{TotalTokens: 900}},
		MockResponse{Content: json.RawMessage(`{}`), Usage: Usage{TotalTokens: 900}},
	)
	p := WithUsageLimits(mock, &stubEventRepo{}, UsageConfig{MaxCallsPerDay: 10, MaxTokensPerDay: 1000})

	ctx := context.Background()
	if _, err := p.Generate(ctx, Request{}); err != nil {
		t.Fatalf("call 1: unexpected error: %v", err)
	}

	// Counter now at 900; next call is rejected once it crosses the ceiling.
	if _, err := p.Generate(ctx, Request{}); err != nil {
		t.Fatalf("call 2: unexpected error: %v", err)
	}

	_, err := p.Generate(ctx, Request{})
	var limitErr *ErrUsageLimit
	if !errors.As(err, &limitErr) {
		t.Fatalf("expected ErrUsageLimit, got: %v", err)
	}
	if limitErr.Resource != "tokens" {
		t.Fatalf("expected tokens resource, got %q", limitErr.Resource)
	}
}

func TestUsageLimits_SeedsFromStore(t *testing.T) {
	repo := &stubEventRepo{todayCalls: 5, todayTokens: 0}
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{}`)},
	)
	p := WithUsageLimits(mock, repo, UsageConfig{MaxCallsPerDay: 5, MaxTokensPerDay: 1000})

	_, err := p.Generate(context.Background(), Request{})
	var limitErr *ErrUsageLimit
	if !errors.As(err, &limitErr) {
		t.Fatalf("expected ErrUsageLimit from persisted counts, got: %v", err)
	}
	if mock.CallCount() != 0 {
		t.Fatalf("expected 0 provider calls, got %d", mock.CallCount())
	}
}

func TestUsageLimits_ResetsAtMidnight(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{}`)},
		MockResponse{Content: json.RawMessage(`{}`)},
	)
	p := WithUsageLimits(mock, &stubEventRepo{}, UsageConfig{MaxCallsPerDay: 1, MaxTokensPerDay: 1000})

	day := time.Date(2026, 3, 1, 23, 0, 0, 0, time.Local)
	limited := p.(*UsageLimitProvider)
	limited.now = func() time.Time { return day }

	ctx := context.Background()
	if _, err := p.Generate(ctx, Request{}); err != nil {
		t.Fatalf("day 1: unexpected error: %v", err)
	}
	if _, err := p.Generate(ctx, Request{}); err == nil {
		t.Fatal("expected ErrUsageLimit at ceiling")
	}

	// Next day, the counters start over.
	limited.now = func() time.Time { return day.Add(2 * time.Hour) }
	if _, err := p.Generate(ctx, Request{}); err != nil {
		t.Fatalf("day 2: unexpected error: %v", err)
	}
}

func TestUsageLimits_ZeroConfigUsesDefaults(t *testing.T) {
	p := WithUsageLimits(NewMockProvider(), &stubEventRepo{}, UsageConfig{})
	limited := p.(*UsageLimitProvider)
	if limited.config.MaxCallsPerDay != DefaultMaxCallsPerDay {
		t.Fatalf("expected default call ceiling, got %d", limited.config.MaxCallsPerDay)
	}
	if limited.config.MaxTokensPerDay != DefaultMaxTokensPerDay {
		t.Fatalf("expected default token ceiling, got %d", limited.config.MaxTokensPerDay)
	}
}

func TestLogging_RecordsPurposeAndTokens(t *testing.T) {
	repo := &stubEventRepo{}
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"ok":true}`), Usage: Usage{InputTokens: 10, OutputTokens: 20}},
	)
	p := WithLogging(mock, repo)

	ctx := WithPurpose(context.Background(), "case-analysis")
	if _, err := p.Generate(ctx, Request{System: "sys"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(repo.llmEvents) != 1 {
		t.Fatalf("expected 1 logged event, got %d", len(repo.llmEvents))
	}
	ev := repo.llmEvents[0]
	if ev.Purpose != "case-analysis" {
		t.Errorf("purpose = %q, want case-analysis", ev.Purpose)
	}
	if ev.InputTokens != 10 || ev.OutputTokens != 20 {
		t.Errorf("tokens = %d/%d, want 10/20", ev.InputTokens, ev.OutputTokens)
	}
	if !ev.Success {
		t.Error("expected success=true")
	}
}

func TestLogging_RecordsFailures(t *testing.T) {
	repo := &stubEventRepo{}
	mock := NewMockProvider(
		MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}},
	)
	p := WithLogging(mock, repo)

	if _, err := p.Generate(context.Background(), Request{}); err == nil {
		t.Fatal("expected error")
	}

	if len(repo.llmEvents) != 1 {
		t.Fatalf("expected 1 logged event, got %d", len(repo.llmEvents))
	}
	ev := repo.llmEvents[0]
	if ev.Success {
		t.Error("expected success=false")
	}
	if ev.ErrorMessage == "" {
		t.Error("expected error message to be recorded")
	}
}
