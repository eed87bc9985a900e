package progress

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/kevinkeet/watershed/internal/store"
)

// Activity classifies an XP-earning action for daily-goal counting.
type Activity string

const (
	ActivityQuiz     Activity = "quiz"
	ActivityActivity Activity = "activity" // topic study, simulations
	ActivityHistory  Activity = "history"
)

// Daily XP bonuses awarded once per calendar day on the first action.
const (
	dailyLoginXP     = 10
	streakBonusPerXP = 2
	streakBonusCap   = 20
)

// Record is the in-memory learner progress state.
type Record struct {
	XP           int
	Achievements map[string]bool
	Daily        Daily
	Stats        Stats
	LoginStreak  int
	LastActive   string // YYYY-MM-DD
}

// Daily tracks activity within a single calendar day.
type Daily struct {
	Date       string // YYYY-MM-DD
	XP         int
	Quizzes    int
	Activities int
	Histories  int
}

// Unlocked is the ephemeral notification emitted when an achievement is
// newly earned. It is not persisted.
type Unlocked struct {
	Achievement Achievement
}

// Service owns the learner progress record. All mutations go through
// Update, which serializes writers so concurrent award paths (quiz,
// simulation, topic study) cannot lose updates.
type Service struct {
	mu        sync.Mutex
	record    Record
	eventRepo store.EventRepo
	now       func() time.Time
}

// NewService creates a progress service, loading state from the snapshot.
func NewService(snap *store.SnapshotData, eventRepo store.EventRepo) *Service {
	s := &Service{
		record: Record{
			Achievements: make(map[string]bool),
		},
		eventRepo: eventRepo,
		now:       time.Now,
	}

	if snap == nil || snap.Progress == nil {
		return s
	}

	p := snap.Progress
	s.record.XP = p.XP
	for _, id := range p.Achievements {
		s.record.Achievements[id] = true
	}
	s.record.Daily = Daily{
		Date:       p.Daily.Date,
		XP:         p.Daily.XP,
		Quizzes:    p.Daily.Quizzes,
		Activities: p.Daily.Activities,
		Histories:  p.Daily.Histories,
	}
	s.record.Stats = Stats{
		CasesCompleted:         p.Stats.CasesCompleted,
		HistoriesCompleted:     p.Stats.HistoriesCompleted,
		PresentationsCompleted: p.Stats.PresentationsCompleted,
		QuizStreak:             p.Stats.QuizStreak,
		QuizCorrectTotal:       p.Stats.QuizCorrectTotal,
	}
	s.record.LoginStreak = p.LoginStreak
	s.record.LastActive = p.LastActive

	return s
}

// Update applies fn to the record under the write lock. All callers
// mutate through here; reads of a consistent view use Snapshot-style
// accessors below.
func (s *Service) Update(fn func(*Record)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.record)
}

// XP returns the current XP total.
func (s *Service) XP() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.record.XP
}

// GetStats returns a copy of the lifetime counters.
func (s *Service) GetStats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.record.Stats
}

// GetDaily returns today's progress. A read on a new day runs the same
// carry-forward as an award: reset the counters, grant the login and
// streak bonuses, and advance LastActive, so a later AwardXP on the
// same day cannot swallow the once-per-day bonus.
func (s *Service) GetDaily(ctx context.Context) Daily {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touchDayLocked(ctx, s.today())
	return s.record.Daily
}

// AwardXP adds XP for an action, counting it against today's goals.
// The first award of a calendar day also grants the daily-login bonus
// plus a streak bonus. Returns the XP actually added, bonuses included.
func (s *Service) AwardXP(ctx context.Context, amount int, activity Activity, reason string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	today := s.today()
	bonus := s.touchDayLocked(ctx, today)

	s.record.XP += amount
	s.record.Daily.XP += amount

	switch activity {
	case ActivityQuiz:
		s.record.Daily.Quizzes++
	case ActivityHistory:
		s.record.Daily.Histories++
	case ActivityActivity:
		s.record.Daily.Activities++
	}

	s.appendXPLocked(ctx, amount, string(activity), reason)

	return amount + bonus
}

// Unlock adds an achievement if not already present. Idempotent: the XP
// reward is granted exactly once. Returns the notification for a fresh
// unlock, nil if already held or unknown.
func (s *Service) Unlock(ctx context.Context, id string) *Unlocked {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.unlockLocked(ctx, id)
}

func (s *Service) unlockLocked(ctx context.Context, id string) *Unlocked {
	if s.record.Achievements[id] {
		return nil
	}
	ach := Lookup(id)
	if ach == nil {
		return nil
	}

	s.record.Achievements[id] = true
	s.record.XP += ach.XP
	s.record.Daily.XP += ach.XP

	if s.eventRepo != nil {
		data := store.AchievementEventData{
			AchievementID: ach.ID,
			Name:          ach.Name,
			XPReward:      ach.XP,
		}
		if err := s.eventRepo.AppendAchievementEvent(ctx, data); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to log achievement event: %v\n", err)
		}
	}

	return &Unlocked{Achievement: *ach}
}

// CheckAchievements evaluates every rule against the current counters
// and unlocks what is newly earned. Returns notifications for fresh
// unlocks only.
func (s *Service) CheckAchievements(ctx context.Context) []*Unlocked {
	s.mu.Lock()
	defer s.mu.Unlock()

	var unlocked []*Unlocked
	for _, id := range earnedAchievements(s.record.Stats) {
		if u := s.unlockLocked(ctx, id); u != nil {
			unlocked = append(unlocked, u)
		}
	}
	return unlocked
}

// touchDayLocked handles the lazy daily reset and, on the first action
// of a new day, grants the login bonus and advances the login streak.
// Returns the bonus XP granted (zero on repeat actions).
func (s *Service) touchDayLocked(ctx context.Context, today string) int {
	if s.record.Daily.Date == today {
		return 0
	}

	s.resetDailyLocked(today)

	// Streak continues only when yesterday was active.
	yesterday := s.now().AddDate(0, 0, -1).Format("2006-01-02")
	if s.record.LastActive == yesterday {
		s.record.LoginStreak++
	} else {
		s.record.LoginStreak = 1
	}
	s.record.LastActive = today

	streakBonus := (s.record.LoginStreak - 1) * streakBonusPerXP
	if streakBonus > streakBonusCap {
		streakBonus = streakBonusCap
	}
	bonus := dailyLoginXP + streakBonus

	s.record.XP += bonus
	s.record.Daily.XP += bonus
	s.appendXPLocked(ctx, bonus, "login", fmt.Sprintf("daily login, streak %d", s.record.LoginStreak))

	return bonus
}

func (s *Service) resetDailyLocked(today string) {
	if s.record.Daily.Date == today {
		return
	}
	s.record.Daily = Daily{Date: today}
}

func (s *Service) appendXPLocked(ctx context.Context, amount int, activity, reason string) {
	if s.eventRepo == nil {
		return
	}
	data := store.XPEventData{
		Amount:     amount,
		Activity:   activity,
		Reason:     reason,
		TotalAfter: s.record.XP,
	}
	if err := s.eventRepo.AppendXPEvent(ctx, data); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log XP event: %v\n", err)
	}
}

func (s *Service) today() string {
	return s.now().Format("2006-01-02")
}

// SnapshotData exports the current progress state for persistence.
func (s *Service) SnapshotData() *store.ProgressSnapshotData {
	s.mu.Lock()
	defer s.mu.Unlock()

	achievements := make([]string, 0, len(s.record.Achievements))
	for id := range s.record.Achievements {
		achievements = append(achievements, id)
	}

	return &store.ProgressSnapshotData{
		XP:           s.record.XP,
		Achievements: achievements,
		Daily: store.DailyProgressData{
			Date:       s.record.Daily.Date,
			XP:         s.record.Daily.XP,
			Quizzes:    s.record.Daily.Quizzes,
			Activities: s.record.Daily.Activities,
			Histories:  s.record.Daily.Histories,
		},
		Stats: store.StatsData{
			CasesCompleted:         s.record.Stats.CasesCompleted,
			HistoriesCompleted:     s.record.Stats.HistoriesCompleted,
			PresentationsCompleted: s.record.Stats.PresentationsCompleted,
			QuizStreak:             s.record.Stats.QuizStreak,
			QuizCorrectTotal:       s.record.Stats.QuizCorrectTotal,
		},
		LoginStreak: s.record.LoginStreak,
		LastActive:  s.record.LastActive,
	}
}
