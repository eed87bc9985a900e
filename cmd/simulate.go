package cmd

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/kevinkeet/watershed/internal/analysis"
	"github.com/kevinkeet/watershed/internal/llm"
	"github.com/kevinkeet/watershed/internal/progress"
	"github.com/kevinkeet/watershed/internal/scoring"
	"github.com/kevinkeet/watershed/internal/simulation"
	"github.com/kevinkeet/watershed/internal/ui/theme"
	"github.com/spf13/cobra"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run an adaptive clinical simulation from a case narrative",
	Long: `Analyze a case narrative, generate follow-on scenarios, and play one
step by step. Decisions are scored and completed sessions earn XP and
topic mastery credit.`,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().String("file", "", "Read the case narrative from a file")
	simulateCmd.Flags().Bool("library", false, "Score with the stricter library strategy")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	narrative, err := readNarrative(cmd, args)
	if err != nil {
		return err
	}

	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	prog, masterySvc, err := loadState(ctx, st)
	if err != nil {
		return err
	}

	provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
	if err != nil {
		return fmt.Errorf("LLM provider: %w", err)
	}

	strategy := scoring.StrategyGenerated
	if lib, _ := cmd.Flags().GetBool("library"); lib {
		strategy = scoring.StrategyLibrary
	}

	// Analyze the case first so completed sessions credit its topics.
	fmt.Println(theme.Subtitle.Render("Analyzing case..."))
	var topics []string
	result, err := analysis.NewAnalyzer(provider).Analyze(ctx, narrative)
	if err != nil {
		return fmt.Errorf("case analysis: %w", err)
	}
	if result.Outcome == analysis.OutcomeParsed {
		topics = result.TeachingTopics
	}

	engine := simulation.NewEngine(provider, prog, masterySvc, st.EventRepo())

	fmt.Println(theme.Subtitle.Render("Generating scenarios..."))
	session, err := engine.Start(ctx, narrative, strategy, topics)
	if err != nil {
		if s := engine.Session(); s != nil && s.Phase == simulation.PhaseError {
			printSessionError(s)
			return nil
		}
		return fmt.Errorf("start session: %w", err)
	}

	scanner := bufio.NewScanner(os.Stdin)

	fmt.Println()
	fmt.Println(theme.Title.Render("Choose a scenario"))
	for i, sc := range session.Scenarios {
		fmt.Printf("  %d) %s\n     %s\n", i+1,
			theme.Body.Render(sc.Title),
			theme.Hint.Render(fmt.Sprintf("%s · %s — %s", sc.Type, sc.Difficulty, sc.Hook)))
	}

	idx, ok := readIndex(scanner, "Scenario", len(session.Scenarios))
	if !ok {
		engine.Abandon(ctx)
		fmt.Println(theme.Hint.Render("Session abandoned."))
		return nil
	}

	if err := engine.SelectScenario(ctx, session.Scenarios[idx].ID); err != nil {
		return fmt.Errorf("select scenario: %w", err)
	}

	for {
		session = engine.Session()
		if session == nil || session.Phase != simulation.PhasePlaying {
			break
		}

		step, err := engine.NextStep(ctx)
		if err != nil {
			if s := engine.Session(); s != nil && s.Phase == simulation.PhaseError {
				printSessionError(s)
				return nil
			}
			return fmt.Errorf("next step: %w", err)
		}

		printStep(step)

		choice, ok := readIndex(scanner, "Your decision", len(step.Choices))
		if !ok {
			engine.Abandon(ctx)
			fmt.Println(theme.Hint.Render("Session abandoned."))
			return nil
		}

		entry, err := engine.SubmitChoice(ctx, choice)
		if err != nil {
			if s := engine.Session(); s != nil && s.Phase == simulation.PhaseError {
				printSessionError(s)
				return nil
			}
			return fmt.Errorf("submit choice: %w", err)
		}

		printOutcome(entry, engine.Session())
	}

	session = engine.Session()
	if session != nil && session.Phase == simulation.PhaseComplete {
		printSummary(session, prog)
		if err := saveState(ctx, st, prog, masterySvc); err != nil {
			return err
		}
	}
	return nil
}

// readNarrative resolves the case text from args, --file, or stdin.
func readNarrative(cmd *cobra.Command, args []string) (string, error) {
	if file, _ := cmd.Flags().GetString("file"); file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("read case file: %w", err)
		}
		return strings.TrimSpace(string(data)), nil
	}
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	fmt.Println(theme.Label.Render("Paste the case narrative, then press Ctrl-D:"))
	data, err := readStdin()
	if err != nil {
		return "", err
	}
	narrative := strings.TrimSpace(data)
	if narrative == "" {
		return "", fmt.Errorf("no case narrative provided")
	}
	return narrative, nil
}

func readStdin() (string, error) {
	var b strings.Builder
	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		b.WriteString(scanner.Text())
		b.WriteString("\n")
	}
	return b.String(), scanner.Err()
}

// readIndex prompts for a 1-based selection and returns a 0-based index.
// Returns ok=false on EOF or "q".
func readIndex(scanner *bufio.Scanner, prompt string, n int) (int, bool) {
	for {
		fmt.Printf("\n%s [1-%d, q to quit]: ", prompt, n)
		if !scanner.Scan() {
			fmt.Println()
			return 0, false
		}
		in := strings.TrimSpace(scanner.Text())
		if strings.EqualFold(in, "q") {
			return 0, false
		}
		i, err := strconv.Atoi(in)
		if err == nil && i >= 1 && i <= n {
			return i - 1, true
		}
		fmt.Println(theme.Hint.Render("Enter a number from the list."))
	}
}

func printStep(step *simulation.Step) {
	fmt.Println()
	header := fmt.Sprintf("Step %d", step.StepNumber)
	if step.Time != "" {
		header += " · " + step.Time
	}
	fmt.Println(theme.Title.Render(header))
	fmt.Println(theme.Body.Render(step.Narrative))

	if len(step.Vitals) > 0 {
		keys := make([]string, 0, len(step.Vitals))
		for k := range step.Vitals {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			parts = append(parts, fmt.Sprintf("%s %s", k, step.Vitals[k]))
		}
		fmt.Println(theme.Label.Render("Vitals: ") + theme.Body.Render(strings.Join(parts, "  ")))
	}
	if step.Findings != "" {
		fmt.Println(theme.Label.Render("Findings: ") + theme.Body.Render(step.Findings))
	}

	fmt.Println()
	for i, c := range step.Choices {
		fmt.Printf("  %d) %s\n", i+1, theme.Body.Render(c.Text))
	}
}

func printOutcome(entry *simulation.HistoryEntry, session *simulation.Session) {
	style := qualityStyle(entry.Quality)
	fmt.Println()
	fmt.Printf("%s  %s\n", style.Render(strings.ToUpper(string(entry.Quality))),
		theme.Body.Render(fmt.Sprintf("%+d points", entry.Delta)))
	if entry.Feedback != "" {
		fmt.Println(theme.Body.Render(entry.Feedback))
	}
	if session != nil {
		fmt.Println(theme.Hint.Render(fmt.Sprintf("Score: %d/%d", session.Score, session.MaxScore())))
	}
}

func printSummary(session *simulation.Session, prog *progress.Service) {
	max := session.MaxScore()
	grade := scoring.Grade(session.Score, max)

	fmt.Println()
	fmt.Println(theme.Title.Render("Session complete"))
	fmt.Printf("%s %s\n", theme.Label.Render("Score:"),
		theme.Body.Render(fmt.Sprintf("%d/%d (%s)", session.Score, max, grade)))
	if session.Scenario != nil {
		fmt.Printf("%s %s\n", theme.Label.Render("Scenario:"), theme.Body.Render(session.Scenario.Title))
	}
	if len(session.Topics) > 0 {
		fmt.Printf("%s %s\n", theme.Label.Render("Topics credited:"),
			theme.Body.Render(strings.Join(session.Topics, ", ")))
	}

	xp := prog.XP()
	level := progress.LevelFor(xp)
	fmt.Printf("%s %s  %s\n", theme.Label.Render("XP:"),
		theme.Body.Render(fmt.Sprintf("%d (level %d)", xp, level)),
		theme.ProgressBar(progress.ProgressPercent(xp), 20))
}

func qualityStyle(q scoring.Quality) lipgloss.Style {
	switch q {
	case scoring.QualityOptimal:
		return theme.Optimal
	case scoring.QualitySuboptimal:
		return theme.Suboptimal
	default:
		return theme.Poor
	}
}

func printSessionError(session *simulation.Session) {
	fmt.Println()
	fmt.Println(theme.Poor.Render("Session failed: ") + theme.Body.Render(session.ErrorReason))
	switch session.ErrorKind {
	case simulation.ErrorKindConfig:
		fmt.Println(theme.Hint.Render("Check your provider configuration (WATERSHED_LLM_PROVIDER, API keys)."))
	case simulation.ErrorKindLimit:
		fmt.Println(theme.Hint.Render("Daily usage ceiling reached. Try again tomorrow."))
	case simulation.ErrorKindTransient:
		fmt.Println(theme.Hint.Render("Temporary backend problem. Try again shortly."))
	}
}
