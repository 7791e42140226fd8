package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/lexiz/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent quiz attempts",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		level, _ := cmd.Flags().GetInt("level")

		ctx := cmd.Context()
		backend, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer backend.Close()

		attempts, err := backend.Attempts().RecentAttempts(ctx, store.AttemptQuery{Limit: limit, LevelID: level})
		if err != nil {
			return fmt.Errorf("query attempts: %w", err)
		}

		w := cmd.OutOrStdout()
		if len(attempts) == 0 {
			fmt.Fprintln(w, "No attempts found.")
			return nil
		}

		fmt.Fprintf(w, "%-19s  %5s  %9s  %4s  %s\n", "Time", "Level", "Score", "Pct", "Passed")
		fmt.Fprintln(w, strings.Repeat("─", 50))
		for _, a := range attempts {
			passed := "✗"
			if a.Passed {
				passed = "✓"
			}
			fmt.Fprintf(w, "%-19s  %5d  %9s  %3d%%  %s\n",
				a.RecordedAt.Local().Format("2006-01-02 15:04:05"),
				a.LevelID,
				fmt.Sprintf("%d/%d", a.Score, a.Total),
				a.Percentage,
				passed,
			)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "Number of attempts to show")
	historyCmd.Flags().Int("level", 0, "Only show attempts for this level")
}
