package cmd

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/kevinkeet/watershed/internal/mastery"
	"github.com/kevinkeet/watershed/internal/progress"
	"github.com/kevinkeet/watershed/internal/spacedrep"
	"github.com/kevinkeet/watershed/internal/store"
	"github.com/kevinkeet/watershed/internal/ui/theme"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
	RunE:  runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	prog, masterySvc, err := loadState(ctx, st)
	if err != nil {
		return err
	}

	daily := prog.GetDaily(ctx)
	xp := prog.XP()
	level := progress.LevelFor(xp)
	stats := prog.GetStats()
	snap := prog.SnapshotData()

	fmt.Println(theme.Title.Render("Progress"))
	fmt.Printf("%s %s\n", theme.Label.Render("Level:"),
		theme.Body.Render(fmt.Sprintf("%d / %d", level, progress.MaxLevel)))
	levelLine := fmt.Sprintf("%d XP", xp)
	if next := progress.NextLevel(xp); next > 0 {
		levelLine += fmt.Sprintf(" (%d to level %d)", next-xp, level+1)
	}
	fmt.Printf("%s %s %s\n", theme.Label.Render("XP:"),
		theme.ProgressBar(progress.ProgressPercent(xp), 24),
		theme.Body.Render(levelLine))
	fmt.Printf("%s %s\n", theme.Label.Render("Streak:"),
		theme.Body.Render(fmt.Sprintf("%d days", snap.LoginStreak)))
	fmt.Printf("%s %s\n", theme.Label.Render("Today:"),
		theme.Body.Render(fmt.Sprintf("%d XP · %d quizzes · %d activities · %d histories",
			daily.XP, daily.Quizzes, daily.Activities, daily.Histories)))

	fmt.Println()
	fmt.Println(theme.Title.Render("Lifetime"))
	fmt.Printf("  Cases completed:         %d\n", stats.CasesCompleted)
	fmt.Printf("  Histories completed:     %d\n", stats.HistoriesCompleted)
	fmt.Printf("  Presentations completed: %d\n", stats.PresentationsCompleted)
	fmt.Printf("  Quiz answers correct:    %d\n", stats.QuizCorrectTotal)

	printAchievements(snap.Achievements)
	printMastery(masterySvc)
	printRecentSimulations(ctx, st)

	// Viewing stats on a new day grants the login bonus; persist it.
	return saveState(ctx, st, prog, masterySvc)
}

func printAchievements(unlocked []string) {
	earned := make(map[string]bool, len(unlocked))
	for _, id := range unlocked {
		earned[id] = true
	}

	fmt.Println()
	fmt.Println(theme.Title.Render(fmt.Sprintf("Achievements (%d/%d)", len(unlocked), len(progress.Catalog))))
	for _, a := range progress.Catalog {
		if earned[a.ID] {
			fmt.Printf("  %s %s %s\n", theme.Optimal.Render("✓"),
				theme.Body.Render(a.Icon+" "+a.Name),
				theme.Hint.Render(fmt.Sprintf("+%d XP", a.XP)))
		} else {
			fmt.Printf("  %s %s\n", theme.ProgressEmpty.Render("·"),
				theme.Hint.Render(a.Name+" — "+a.Description))
		}
	}
}

func printMastery(masterySvc *mastery.Service) {
	all := masterySvc.All()
	if len(all) == 0 {
		return
	}

	topics := make([]string, 0, len(all))
	for topic := range all {
		topics = append(topics, topic)
	}
	sort.Strings(topics)

	now := time.Now()
	fmt.Println()
	fmt.Println(theme.Title.Render("Topic mastery"))
	fmt.Printf("  %-40s %-12s %6s  %s\n", "Topic", "Level", "Points", "Next review")
	for _, topic := range topics {
		rec := all[topic]
		next := "—"
		if rec.NextReview != nil {
			next = rec.NextReview.Local().Format("2006-01-02")
			if spacedrep.IsDue(rec, now) {
				next = theme.PriorityMedium.Render(next + " (due)")
			}
		}
		fmt.Printf("  %-40s %-12s %6d  %s\n",
			truncate(rec.Topic, 40), rec.Level(), rec.Points, next)
	}
}

func printRecentSimulations(ctx context.Context, st *store.Store) {
	summaries, err := st.EventRepo().QuerySimulationSummaries(ctx, store.QueryOpts{Limit: 5})
	if err != nil || len(summaries) == 0 {
		return
	}

	fmt.Println()
	fmt.Println(theme.Title.Render("Recent simulations"))
	for _, s := range summaries {
		fmt.Printf("  %s  %-28s %s\n",
			theme.Hint.Render(s.Timestamp.Local().Format("2006-01-02")),
			theme.Body.Render(truncate(s.ScenarioID, 28)),
			theme.Body.Render(fmt.Sprintf("%d/%d in %d steps", s.Score, s.MaxScore, s.Steps)))
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
