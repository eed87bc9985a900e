package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/kevinkeet/watershed/internal/spacedrep"
	"github.com/kevinkeet/watershed/internal/ui/theme"
	"github.com/spf13/cobra"
)

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Review topics due for spaced repetition",
	RunE:  runReview,
}

func init() {
	reviewCmd.Flags().Bool("list", false, "List due topics without reviewing")
}

func runReview(cmd *cobra.Command, args []string) error {
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

	scheduler := spacedrep.NewScheduler(masterySvc, st.EventRepo())
	now := time.Now()

	due := scheduler.DueTopics(now)
	if len(due) == 0 {
		fmt.Println(theme.Subtitle.Render("Nothing due for review. Come back later."))
		return nil
	}

	listOnly, _ := cmd.Flags().GetBool("list")
	if listOnly {
		fmt.Println(theme.Title.Render(fmt.Sprintf("%d topics due", len(due))))
		for _, rec := range due {
			urgency := spacedrep.Urgency(rec, now)
			fmt.Printf("  %s %s %s\n",
				urgencyMarker(urgency),
				theme.Body.Render(rec.Topic),
				theme.Hint.Render(string(rec.Level())))
		}
		return nil
	}

	scanner := bufio.NewScanner(os.Stdin)
	reviewed := 0

	for _, rec := range due {
		fmt.Println()
		fmt.Println(theme.Title.Render(rec.Topic))
		fmt.Println(theme.Hint.Render(fmt.Sprintf("Level: %s · Points: %d", rec.Level(), rec.Points)))

		fmt.Print("Did you recall this correctly? [y/n/q]: ")
		if !scanner.Scan() {
			break
		}
		in := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if in == "q" {
			break
		}
		correct := in == "y" || in == "yes"

		next := scheduler.RecordReview(ctx, rec.Topic, correct, now)
		reviewed++

		if correct {
			fmt.Println(theme.Optimal.Render("✓") + theme.Hint.Render(
				fmt.Sprintf(" Next review %s", next.Format("Mon Jan 2"))))
		} else {
			fmt.Println(theme.Poor.Render("✗") + theme.Hint.Render(
				fmt.Sprintf(" Interval shortened. Next review %s", next.Format("Mon Jan 2"))))
		}
	}

	if reviewed == 0 {
		return nil
	}

	fmt.Println()
	fmt.Println(theme.Subtitle.Render(fmt.Sprintf("Reviewed %d of %d due topics.", reviewed, len(due))))
	return saveState(ctx, st, prog, masterySvc)
}

func urgencyMarker(urgency int) string {
	switch {
	case urgency >= 3:
		return theme.PriorityHigh.Render("!!!")
	case urgency == 2:
		return theme.PriorityMedium.Render("!! ")
	default:
		return theme.PriorityLow.Render("!  ")
	}
}
