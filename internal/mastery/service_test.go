package mastery

import (
	"context"
	"testing"
	"time"

	"github.com/kevinkeet/watershed/internal/store"
)

func TestLevelForPoints(t *testing.T) {
	tests := []struct {
		points int
		want   Level
	}{
		{0, LevelNotStarted},
		{1, LevelIntroduced},
		{2, LevelIntroduced},
		{3, LevelFamiliar},
		{4, LevelFamiliar},
		{5, LevelProficient},
		{7, LevelProficient},
		{8, LevelMastered},
		{20, LevelMastered},
	}
	for _, tt := range tests {
		if got := LevelForPoints(tt.points); got != tt.want {
			t.Errorf("LevelForPoints(%d) = %s, want %s", tt.points, got, tt.want)
		}
	}
}

func TestRecordPoints_LevelChange(t *testing.T) {
	s := NewService(nil, nil)
	ctx := context.Background()

	change := s.RecordPoints(ctx, "sepsis", 1, "simulation")
	if change == nil {
		t.Fatal("expected level change on first point")
	}
	if change.From != LevelNotStarted || change.To != LevelIntroduced {
		t.Errorf("change = %s→%s, want not-started→introduced", change.From, change.To)
	}

	// One more point stays within the introduced band.
	if change := s.RecordPoints(ctx, "sepsis", 1, "simulation"); change != nil {
		t.Errorf("unexpected level change at 2 points: %s→%s", change.From, change.To)
	}

	change = s.RecordPoints(ctx, "sepsis", 1, "review")
	if change == nil || change.To != LevelFamiliar {
		t.Fatalf("expected familiar at 3 points, got %+v", change)
	}
}

func TestRecordPoints_NeverDecreases(t *testing.T) {
	s := NewService(nil, nil)
	ctx := context.Background()

	s.RecordPoints(ctx, "chest-pain", 8, "simulation")
	if got := s.Get("chest-pain").Level(); got != LevelMastered {
		t.Fatalf("level = %s, want mastered", got)
	}

	// Negative deltas are clamped; the level holds.
	s.RecordPoints(ctx, "chest-pain", -5, "simulation")
	if got := s.Get("chest-pain").Points; got != 8 {
		t.Errorf("points = %d, want 8 (never decreases)", got)
	}
	if got := s.Get("chest-pain").Level(); got != LevelMastered {
		t.Errorf("level = %s, want mastered (never lost)", got)
	}
}

func TestService_SnapshotRoundTrip(t *testing.T) {
	s := NewService(nil, nil)
	ctx := context.Background()

	s.RecordPoints(ctx, "sepsis", 5, "simulation")
	last := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	next := last.AddDate(0, 0, 14)
	s.SetReview("sepsis", last, next)

	snap := &store.SnapshotData{Mastery: s.SnapshotData()}
	restored := NewService(snap, nil)

	rec := restored.Get("sepsis")
	if rec.Points != 5 {
		t.Errorf("points = %d, want 5", rec.Points)
	}
	if rec.LastReview == nil || !rec.LastReview.Equal(last) {
		t.Errorf("lastReview = %v, want %v", rec.LastReview, last)
	}
	if rec.NextReview == nil || !rec.NextReview.Equal(next) {
		t.Errorf("nextReview = %v, want %v", rec.NextReview, next)
	}
}

func TestGet_UnknownTopicStartsAtZero(t *testing.T) {
	s := NewService(nil, nil)
	rec := s.Get("toxicology")
	if rec.Points != 0 || rec.Level() != LevelNotStarted {
		t.Errorf("new topic = %d points, %s; want 0, not-started", rec.Points, rec.Level())
	}
	if rec.LastReview != nil || rec.NextReview != nil {
		t.Error("new topic should have no review dates")
	}
}
