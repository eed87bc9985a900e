package progress

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/kevinkeet/watershed/internal/store"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestAwardXP_CountsDailyGoal(t *testing.T) {
	s := NewService(nil, nil)
	day := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	s.now = fixedClock(day)
	ctx := context.Background()

	s.AwardXP(ctx, 20, ActivityQuiz, "quiz correct")
	s.AwardXP(ctx, 15, ActivityHistory, "history taken")

	daily := s.GetDaily(ctx)
	if daily.Quizzes != 1 || daily.Histories != 1 {
		t.Errorf("daily counters = %d quizzes, %d histories; want 1, 1", daily.Quizzes, daily.Histories)
	}
	// 35 earned plus the first-action-of-day login bonus (streak 1 = 10).
	if s.XP() != 45 {
		t.Errorf("XP = %d, want 45", s.XP())
	}
}

func TestAwardXP_DailyReset(t *testing.T) {
	s := NewService(&store.SnapshotData{
		Progress: &store.ProgressSnapshotData{
			XP: 500,
			Daily: store.DailyProgressData{
				Date:    "2026-03-09",
				XP:      120,
				Quizzes: 6,
			},
			LastActive:  "2026-03-09",
			LoginStreak: 4,
		},
	}, nil)

	today := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	s.now = fixedClock(today)
	ctx := context.Background()

	s.AwardXP(ctx, 10, ActivityQuiz, "quiz correct")

	daily := s.GetDaily(ctx)
	if daily.Date != "2026-03-10" {
		t.Errorf("daily date = %s, want 2026-03-10", daily.Date)
	}
	if daily.Quizzes != 1 {
		t.Errorf("daily quizzes = %d, want 1 (yesterday's discarded)", daily.Quizzes)
	}
	// Today's XP only: 10 awarded + login 10 + streak bonus (streak now 5 → 8).
	if daily.XP != 28 {
		t.Errorf("daily XP = %d, want 28", daily.XP)
	}
}

func TestGetDaily_NewDayGrantsLoginBonus(t *testing.T) {
	s := NewService(nil, nil)
	ctx := context.Background()

	dayOne := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	s.now = fixedClock(dayOne)
	if got := s.AwardXP(ctx, 5, ActivityQuiz, "quiz"); got != 15 {
		t.Fatalf("day-1 first award = %d, want 15 (5 + login bonus)", got)
	}

	// A read is the first touch of day 2. It must run the full
	// carry-forward, not just reset the counters.
	dayTwo := dayOne.AddDate(0, 0, 1)
	s.now = fixedClock(dayTwo)
	daily := s.GetDaily(ctx)
	if daily.Date != "2026-03-11" {
		t.Errorf("daily date = %s, want 2026-03-11", daily.Date)
	}
	// Login 10 + streak bonus (streak 2 → 2).
	if daily.XP != 12 {
		t.Errorf("daily XP after read = %d, want 12 (bonus granted on read)", daily.XP)
	}
	if streak := s.snapshotStreak(); streak != 2 {
		t.Errorf("streak = %d, want 2 (advanced by read)", streak)
	}

	// An award later the same day earns only its own amount.
	if got := s.AwardXP(ctx, 5, ActivityQuiz, "quiz"); got != 5 {
		t.Errorf("day-2 award after read = %d, want 5 (bonus already granted)", got)
	}
	if lastActive := s.SnapshotData().LastActive; lastActive != "2026-03-11" {
		t.Errorf("LastActive = %s, want 2026-03-11", lastActive)
	}
}

func TestTouchDay_StreakContinuesAndBreaks(t *testing.T) {
	s := NewService(&store.SnapshotData{
		Progress: &store.ProgressSnapshotData{
			LastActive:  "2026-03-09",
			LoginStreak: 2,
		},
	}, nil)
	s.now = fixedClock(time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC))
	ctx := context.Background()

	s.AwardXP(ctx, 5, ActivityQuiz, "quiz")
	if streak := s.snapshotStreak(); streak != 3 {
		t.Errorf("streak = %d, want 3 (continued)", streak)
	}

	// Two days idle breaks the streak back to 1.
	broken := NewService(&store.SnapshotData{
		Progress: &store.ProgressSnapshotData{
			LastActive:  "2026-03-07",
			LoginStreak: 9,
		},
	}, nil)
	broken.now = fixedClock(time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC))
	broken.AwardXP(ctx, 5, ActivityQuiz, "quiz")
	if streak := broken.snapshotStreak(); streak != 1 {
		t.Errorf("streak = %d, want 1 (broken)", streak)
	}
}

func (s *Service) snapshotStreak() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.record.LoginStreak
}

func TestUnlock_Idempotent(t *testing.T) {
	s := NewService(nil, nil)
	ctx := context.Background()

	first := s.Unlock(ctx, "first-case")
	if first == nil {
		t.Fatal("expected unlock notification")
	}
	if first.Achievement.XP != 50 {
		t.Errorf("reward = %d, want 50", first.Achievement.XP)
	}
	xpAfterFirst := s.XP()

	second := s.Unlock(ctx, "first-case")
	if second != nil {
		t.Error("expected nil on repeat unlock")
	}
	if s.XP() != xpAfterFirst {
		t.Errorf("XP = %d after repeat unlock, want %d (awarded once)", s.XP(), xpAfterFirst)
	}
}

func TestUnlock_UnknownID(t *testing.T) {
	s := NewService(nil, nil)
	if got := s.Unlock(context.Background(), "no-such-achievement"); got != nil {
		t.Errorf("expected nil for unknown id, got %+v", got)
	}
}

func TestCheckAchievements(t *testing.T) {
	s := NewService(nil, nil)
	ctx := context.Background()

	s.Update(func(r *Record) {
		r.Stats.CasesCompleted = 10
		r.Stats.QuizStreak = 7
	})

	unlocked := s.CheckAchievements(ctx)
	var ids []string
	for _, u := range unlocked {
		ids = append(ids, u.Achievement.ID)
	}
	sort.Strings(ids)

	want := []string{"first-case", "streak-3", "streak-7", "ten-cases"}
	if len(ids) != len(want) {
		t.Fatalf("unlocked %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("unlocked[%d] = %s, want %s", i, ids[i], want[i])
		}
	}

	// Second evaluation with the same stats unlocks nothing.
	if again := s.CheckAchievements(ctx); len(again) != 0 {
		t.Errorf("expected no repeat unlocks, got %d", len(again))
	}
}

func TestSnapshot_RoundTrip(t *testing.T) {
	s := NewService(nil, nil)
	ctx := context.Background()
	s.now = fixedClock(time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC))

	s.AwardXP(ctx, 100, ActivityQuiz, "quiz")
	s.Unlock(ctx, "first-case")
	s.Update(func(r *Record) {
		r.Stats.CasesCompleted = 3
		r.Stats.QuizCorrectTotal = 40
	})

	restored := NewService(&store.SnapshotData{Progress: s.SnapshotData()}, nil)
	restored.now = s.now

	if restored.XP() != s.XP() {
		t.Errorf("XP = %d, want %d", restored.XP(), s.XP())
	}
	if stats := restored.GetStats(); stats.CasesCompleted != 3 || stats.QuizCorrectTotal != 40 {
		t.Errorf("stats = %+v, want CasesCompleted 3, QuizCorrectTotal 40", stats)
	}
	if got := restored.Unlock(ctx, "first-case"); got != nil {
		t.Error("achievement set not preserved: repeat unlock succeeded")
	}
}

func TestUpdate_SerializesWriters(t *testing.T) {
	s := NewService(nil, nil)
	done := make(chan struct{})

	for i := 0; i < 50; i++ {
		go func() {
			s.Update(func(r *Record) { r.XP++ })
			done <- struct{}{}
		}()
	}
	for i := 0; i < 50; i++ {
		<-done
	}

	if s.XP() != 50 {
		t.Errorf("XP = %d after 50 concurrent updates, want 50", s.XP())
	}
}
