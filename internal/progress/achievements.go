package progress

// Achievement is a static catalog entry. Unlocking is a one-time,
// idempotent transition per learner.
type Achievement struct {
	ID          string
	Name        string
	Description string
	Icon        string
	XP          int
}

// Catalog is the fixed achievement list, in display order.
var Catalog = []Achievement{
	{ID: "first-case", Name: "First Case", Description: "Complete your first case", Icon: "🩺", XP: 50},
	{ID: "ten-cases", Name: "Case Builder", Description: "Complete 10 cases", Icon: "📋", XP: 100},
	{ID: "fifty-cases", Name: "Case Veteran", Description: "Complete 50 cases", Icon: "🏥", XP: 500},
	{ID: "first-history", Name: "First History", Description: "Take your first patient history", Icon: "📝", XP: 50},
	{ID: "ten-histories", Name: "Thorough Historian", Description: "Take 10 patient histories", Icon: "🗂", XP: 100},
	{ID: "first-presentation", Name: "First Presentation", Description: "Present your first case", Icon: "🎤", XP: 50},
	{ID: "ten-presentations", Name: "Confident Presenter", Description: "Present 10 cases", Icon: "🎙", XP: 100},
	{ID: "streak-3", Name: "Warming Up", Description: "Answer quizzes correctly 3 days running", Icon: "🔥", XP: 30},
	{ID: "streak-7", Name: "On a Roll", Description: "Answer quizzes correctly 7 days running", Icon: "⚡", XP: 75},
	{ID: "streak-30", Name: "Unstoppable", Description: "Answer quizzes correctly 30 days running", Icon: "🌟", XP: 300},
	{ID: "hundred-correct", Name: "Century Club", Description: "Answer 100 quiz questions correctly", Icon: "💯", XP: 200},
}

// Lookup returns the catalog entry for an id, or nil if unknown.
func Lookup(id string) *Achievement {
	for i := range Catalog {
		if Catalog[i].ID == id {
			return &Catalog[i]
		}
	}
	return nil
}

// Stats holds the lifetime counters achievement rules evaluate.
type Stats struct {
	CasesCompleted         int
	HistoriesCompleted     int
	PresentationsCompleted int
	QuizStreak             int
	QuizCorrectTotal       int
}

// earnedAchievements evaluates every rule against the counters and
// returns the ids whose thresholds are met. Each rule is independent;
// idempotence comes from Unlock.
func earnedAchievements(stats Stats) []string {
	var earned []string

	check := func(id string, met bool) {
		if met {
			earned = append(earned, id)
		}
	}

	check("first-case", stats.CasesCompleted >= 1)
	check("ten-cases", stats.CasesCompleted >= 10)
	check("fifty-cases", stats.CasesCompleted >= 50)
	check("first-history", stats.HistoriesCompleted >= 1)
	check("ten-histories", stats.HistoriesCompleted >= 10)
	check("first-presentation", stats.PresentationsCompleted >= 1)
	check("ten-presentations", stats.PresentationsCompleted >= 10)
	check("streak-3", stats.QuizStreak >= 3)
	check("streak-7", stats.QuizStreak >= 7)
	check("streak-30", stats.QuizStreak >= 30)
	check("hundred-correct", stats.QuizCorrectTotal >= 100)

	return earned
}
