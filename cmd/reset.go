package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all learner data",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			fmt.Println("No learner data found.")
			return nil
		}

		force, _ := cmd.Flags().GetBool("force")
		if !force {
			fmt.Printf("This deletes ALL progress, mastery, and history at %s.\n", dbPath)
			fmt.Print("Type 'reset' to confirm: ")
			scanner := bufio.NewScanner(os.Stdin)
			if !scanner.Scan() || strings.TrimSpace(scanner.Text()) != "reset" {
				fmt.Println("Aborted.")
				return nil
			}
		}

		// SQLite sidecar files go too.
		for _, p := range []string{dbPath, dbPath + "-wal", dbPath + "-shm"} {
			if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
				return fmt.Errorf("remove %s: %w", p, err)
			}
		}

		fmt.Println("Learner data deleted.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("force", false, "Skip the confirmation prompt")
}
