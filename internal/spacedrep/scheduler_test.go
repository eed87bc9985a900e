package spacedrep

import (
	"context"
	"testing"
	"time"

	"github.com/kevinkeet/watershed/internal/mastery"
)

func TestIntervalDays_ByLevel(t *testing.T) {
	tests := []struct {
		level mastery.Level
		want  int
	}{
		{mastery.LevelNotStarted, 1},
		{mastery.LevelIntroduced, 1},
		{mastery.LevelFamiliar, 7},
		{mastery.LevelProficient, 14},
		{mastery.LevelMastered, 30},
	}
	for _, tt := range tests {
		if got := IntervalDays(tt.level); got != tt.want {
			t.Errorf("IntervalDays(%s) = %d, want %d", tt.level, got, tt.want)
		}
	}
}

func TestReviewInterval_IncorrectHalves(t *testing.T) {
	if got := ReviewInterval(mastery.LevelMastered, false); got != 15 {
		t.Errorf("mastered incorrect = %d, want 15", got)
	}
	if got := ReviewInterval(mastery.LevelFamiliar, false); got != 3 {
		t.Errorf("familiar incorrect = %d, want 3", got)
	}
	// Halving a one-day interval floors at one day.
	if got := ReviewInterval(mastery.LevelIntroduced, false); got != 1 {
		t.Errorf("introduced incorrect = %d, want 1", got)
	}
}

func TestIsDue(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	past := now.Add(-24 * time.Hour)
	future := now.Add(24 * time.Hour)

	if !IsDue(&mastery.TopicRecord{Topic: "a", NextReview: &past}, now) {
		t.Error("past review date should be due")
	}
	if IsDue(&mastery.TopicRecord{Topic: "b", NextReview: &future}, now) {
		t.Error("future review date should not be due")
	}
	if !IsDue(&mastery.TopicRecord{Topic: "c"}, now) {
		t.Error("topic with no schedule should be due")
	}
}

func TestUrgency_Buckets(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	mk := func(overdue time.Duration) *mastery.TopicRecord {
		next := now.Add(-overdue)
		return &mastery.TopicRecord{Topic: "x", NextReview: &next}
	}

	if got := Urgency(mk(-24*time.Hour), now); got != 0 {
		t.Errorf("not due yet: urgency = %d, want 0", got)
	}
	if got := Urgency(mk(24*time.Hour), now); got != 1 {
		t.Errorf("1 day overdue: urgency = %d, want 1", got)
	}
	if got := Urgency(mk(5*24*time.Hour), now); got != 2 {
		t.Errorf("5 days overdue: urgency = %d, want 2", got)
	}
	if got := Urgency(mk(10*24*time.Hour), now); got != 3 {
		t.Errorf("10 days overdue: urgency = %d, want 3", got)
	}
	if got := Urgency(&mastery.TopicRecord{Topic: "x"}, now); got != 3 {
		t.Errorf("no schedule: urgency = %d, want 3", got)
	}
}

func TestDueTopics_Ordering(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	svc := mastery.NewService(nil, nil)

	// A: 10 days overdue (urgency 3), reviewed most recently.
	aNext := now.Add(-10 * 24 * time.Hour)
	aLast := now.Add(-15 * 24 * time.Hour)
	a := svc.Get("a-overdue")
	a.NextReview = &aNext
	a.LastReview = &aLast

	// B: 1 day overdue (urgency 1).
	bNext := now.Add(-24 * time.Hour)
	bLast := now.Add(-20 * 24 * time.Hour)
	b := svc.Get("b-barely")
	b.NextReview = &bNext
	b.LastReview = &bLast

	// C: never scheduled (urgency 3), never reviewed — outranks A on
	// the last-review tiebreak.
	svc.Get("c-new")

	// D: not due, must not appear.
	dNext := now.Add(48 * time.Hour)
	d := svc.Get("d-future")
	d.NextReview = &dNext

	sched := NewScheduler(svc, nil)
	due := sched.DueTopics(now)

	want := []string{"c-new", "a-overdue", "b-barely"}
	if len(due) != len(want) {
		t.Fatalf("got %d due topics, want %d", len(due), len(want))
	}
	for i, topic := range want {
		if due[i].Topic != topic {
			t.Errorf("due[%d] = %s, want %s", i, due[i].Topic, topic)
		}
	}
}

func TestRecordReview_CorrectAdvancesSchedule(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	svc := mastery.NewService(nil, nil)
	ctx := context.Background()

	// Start at familiar (3 points). A correct review earns a point but
	// stays within the familiar band, so the base interval is 7 days.
	svc.RecordPoints(ctx, "sepsis", 3, "simulation")

	sched := NewScheduler(svc, nil)
	next := sched.RecordReview(ctx, "sepsis", true, now)

	if want := now.AddDate(0, 0, 7); !next.Equal(want) {
		t.Errorf("next review = %v, want %v", next, want)
	}
	rec := svc.Get("sepsis")
	if rec.Points != 4 {
		t.Errorf("points = %d, want 4", rec.Points)
	}
	if rec.LastReview == nil || !rec.LastReview.Equal(now) {
		t.Errorf("lastReview = %v, want %v", rec.LastReview, now)
	}
}

func TestRecordReview_IncorrectHalvesWithoutPoints(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	svc := mastery.NewService(nil, nil)
	ctx := context.Background()

	svc.RecordPoints(ctx, "sepsis", 8, "simulation")

	sched := NewScheduler(svc, nil)
	next := sched.RecordReview(ctx, "sepsis", false, now)

	if want := now.AddDate(0, 0, 15); !next.Equal(want) {
		t.Errorf("next review = %v, want %v", next, want)
	}
	if got := svc.Get("sepsis").Points; got != 8 {
		t.Errorf("points = %d, want 8 (no point for incorrect)", got)
	}
}
