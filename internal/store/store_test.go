package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// No snapshot yet.
	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	now := time.Now().UTC().Truncate(time.Second)
	err = repo.Save(ctx, &Snapshot{
		Sequence:  42,
		Timestamp: now,
		Data: SnapshotData{
			Version: 1,
			Progress: &ProgressSnapshotData{
				XP:           120,
				Achievements: []string{"first-case"},
				LoginStreak:  3,
			},
			Mastery: &MasterySnapshotData{
				Topics: map[string]*TopicMasteryData{
					"sepsis": {Topic: "sepsis", Points: 4},
				},
			},
		},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	snap, err = repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected non-nil snapshot")
	}
	if snap.Sequence != 42 {
		t.Errorf("sequence = %d, want 42", snap.Sequence)
	}
	if snap.Data.Progress == nil || snap.Data.Progress.XP != 120 {
		t.Errorf("progress not round-tripped: %+v", snap.Data.Progress)
	}
	if snap.Data.Mastery == nil || snap.Data.Mastery.Topics["sepsis"].Points != 4 {
		t.Errorf("mastery not round-tripped: %+v", snap.Data.Mastery)
	}
}

func TestSnapshotLatestReturnsNewest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 3; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: i + 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 3 {
		t.Errorf("sequence = %d, want 3", snap.Sequence)
	}
}

func TestSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 7; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 5 {
		t.Errorf("remaining snapshots = %d, want 5", count)
	}

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 7 {
		t.Errorf("latest sequence = %d, want 7", snap.Sequence)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()
	ctx := context.Background()

	sc, err := newSequenceCounter(db)
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestSequenceSharedAcrossEventTypes(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendXPEvent(ctx, XPEventData{Amount: 10, Activity: "activity"}); err != nil {
		t.Fatalf("append xp: %v", err)
	}
	if err := repo.AppendMasteryEvent(ctx, MasteryEventData{Topic: "sepsis", Delta: 1, PointsAfter: 1}); err != nil {
		t.Fatalf("append mastery: %v", err)
	}
	if err := repo.AppendSimulationEvent(ctx, SimulationEventData{SessionID: "s1", Action: "start"}); err != nil {
		t.Fatalf("append simulation: %v", err)
	}

	xp, err := s.Client().XPEvent.Query().Only(ctx)
	if err != nil {
		t.Fatalf("query xp: %v", err)
	}
	mastery, err := s.Client().MasteryEvent.Query().Only(ctx)
	if err != nil {
		t.Fatalf("query mastery: %v", err)
	}
	sim, err := s.Client().SimulationEvent.Query().Only(ctx)
	if err != nil {
		t.Fatalf("query simulation: %v", err)
	}

	if !(xp.Sequence < mastery.Sequence && mastery.Sequence < sim.Sequence) {
		t.Errorf("sequences not ordered across types: xp=%d mastery=%d sim=%d",
			xp.Sequence, mastery.Sequence, sim.Sequence)
	}
}

func TestTodayLLMUsage(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider:     "mock",
			Model:        "mock-model",
			Purpose:      "sim-step",
			InputTokens:  100,
			OutputTokens: 50,
			Success:      true,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	calls, tokens, err := repo.TodayLLMUsage(ctx, time.Now())
	if err != nil {
		t.Fatalf("today usage: %v", err)
	}
	if calls != 3 {
		t.Errorf("calls = %d, want 3", calls)
	}
	if tokens != 450 {
		t.Errorf("tokens = %d, want 450", tokens)
	}

	// A day with no events reports zero.
	calls, tokens, err = repo.TodayLLMUsage(ctx, time.Now().AddDate(0, 0, 2))
	if err != nil {
		t.Fatalf("future usage: %v", err)
	}
	if calls != 0 || tokens != 0 {
		t.Errorf("future day usage = %d calls / %d tokens, want 0/0", calls, tokens)
	}
}

func TestQuerySimulationSummariesOnlyCompleted(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []SimulationEventData{
		{SessionID: "s1", Action: "start", ScenarioID: "scenario-1"},
		{SessionID: "s1", Action: "end", ScenarioID: "scenario-1", ScenarioType: "overnight_call", Score: 60, MaxScore: 100, Steps: 4},
		{SessionID: "s2", Action: "start", ScenarioID: "scenario-2"},
		{SessionID: "s2", Action: "abandon", ScenarioID: "scenario-2"},
	}
	for i, e := range events {
		if err := repo.AppendSimulationEvent(ctx, e); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	summaries, err := repo.QuerySimulationSummaries(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query summaries: %v", err)
	}
	if len(summaries) != 1 {
		t.Fatalf("got %d summaries, want 1 (only 'end' events)", len(summaries))
	}
	got := summaries[0]
	if got.SessionID != "s1" || got.Score != 60 || got.MaxScore != 100 || got.Steps != 4 {
		t.Errorf("summary = %+v", got)
	}
}

func TestLLMUsageByModel(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	data := []LLMRequestEventData{
		{Provider: "anthropic", Model: "claude-sonnet-4-20250514", InputTokens: 100, OutputTokens: 20, Success: true},
		{Provider: "anthropic", Model: "claude-sonnet-4-20250514", InputTokens: 200, OutputTokens: 40, Success: true},
		{Provider: "openai", Model: "gpt-4o-mini", InputTokens: 50, OutputTokens: 10, Success: true},
	}
	for i, d := range data {
		if err := repo.AppendLLMRequest(ctx, d); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	stats, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("got %d models, want 2", len(stats))
	}

	byModel := make(map[string]LLMModelUsageStat)
	for _, st := range stats {
		byModel[st.Model] = st
	}
	claude := byModel["claude-sonnet-4-20250514"]
	if claude.Calls != 2 || claude.InputTokens != 300 || claude.OutputTokens != 60 {
		t.Errorf("claude stats = %+v", claude)
	}
}

func TestAutoMigrationCreatesTable(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	// Check that the snapshots table exists.
	var name string
	err := db.QueryRow(
		"SELECT name FROM sqlite_master WHERE type='table' AND name='snapshots'",
	).Scan(&name)
	if err != nil {
		t.Fatalf("query sqlite_master: %v", err)
	}
	if name != "snapshots" {
		t.Errorf("table name = %q, want 'snapshots'", name)
	}
}
