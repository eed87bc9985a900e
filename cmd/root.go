package cmd

import (
	"github.com/kevinkeet/watershed/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "watershed",
	Short: "AI-assisted clinical case tutor",
	Long:  "Watershed — adaptive clinical simulations, case analysis, and spaced-repetition review for medical learners.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides WATERSHED_DB env var)")

	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(reviewCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(proxyCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then WATERSHED_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
