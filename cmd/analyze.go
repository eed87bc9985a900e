package cmd

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/kevinkeet/watershed/internal/analysis"
	"github.com/kevinkeet/watershed/internal/llm"
	"github.com/kevinkeet/watershed/internal/ui/theme"
	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [narrative]",
	Short: "Analyze a case narrative into problems, findings, and topics",
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().String("file", "", "Read the case narrative from a file")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
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

	provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
	if err != nil {
		return fmt.Errorf("LLM provider: %w", err)
	}

	result, err := analysis.NewAnalyzer(provider).Analyze(ctx, narrative)
	if err != nil {
		return fmt.Errorf("case analysis: %w", err)
	}

	if result.Outcome != analysis.OutcomeParsed {
		fmt.Println(theme.Hint.Render("Analysis could not be structured. Raw response:"))
		fmt.Println(result.RawText)
		return nil
	}

	fmt.Println(theme.Title.Render("Problems"))
	if len(result.Problems) == 0 {
		fmt.Println(theme.Hint.Render("  (none identified)"))
	}
	for _, p := range result.Problems {
		fmt.Printf("  %s %s\n", priorityStyle(p.Priority).Render("["+p.Priority+"]"), theme.Body.Render(p.Name))
	}

	fmt.Println()
	fmt.Println(theme.Title.Render("Key findings"))
	for _, f := range result.KeyFindings {
		fmt.Printf("  • %s\n", theme.Body.Render(f))
	}

	fmt.Println()
	fmt.Println(theme.Title.Render("Teaching topics"))
	for _, t := range result.TeachingTopics {
		fmt.Printf("  • %s\n", theme.Body.Render(t))
	}

	fmt.Println()
	fmt.Println(theme.Title.Render("Clinical decisions"))
	for _, d := range result.ClinicalDecisions {
		fmt.Printf("  • %s\n", theme.Body.Render(d.Decision))
		if d.Rationale != "" {
			fmt.Printf("    %s\n", theme.Hint.Render(d.Rationale))
		}
	}

	return nil
}

func priorityStyle(priority string) lipgloss.Style {
	switch strings.ToLower(priority) {
	case "high":
		return theme.PriorityHigh
	case "medium":
		return theme.PriorityMedium
	default:
		return theme.PriorityLow
	}
}
