package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect study-note LLM requests",
}

var llmListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent LLM request events",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		purpose, _ := cmd.Flags().GetString("purpose")

		ctx := cmd.Context()
		backend, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer backend.Close()

		events, err := backend.Events().RecentLLMRequests(ctx, limit)
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}

		w := cmd.OutOrStdout()
		if len(events) == 0 {
			fmt.Fprintln(w, "No LLM events found.")
			return nil
		}

		fmt.Fprintf(w, "%-19s  %-11s  %-12s  %-28s  %-6s  %-6s  %-7s  %s\n",
			"Timestamp", "Provider", "Purpose", "Model", "In", "Out", "Ms", "OK")
		fmt.Fprintln(w, strings.Repeat("─", 104))

		for _, e := range events {
			if purpose != "" && e.Purpose != purpose {
				continue
			}
			ok := "✓"
			if !e.Success {
				ok = "✗ " + e.ErrorMessage
			}
			model := e.Model
			if len(model) > 28 {
				model = model[:28]
			}
			fmt.Fprintf(w, "%-19s  %-11s  %-12s  %-28s  %-6d  %-6d  %-7d  %s\n",
				e.CreatedAt.Local().Format("2006-01-02 15:04:05"),
				e.Provider,
				e.Purpose,
				model,
				e.InputTokens,
				e.OutputTokens,
				e.LatencyMs,
				ok,
			)
		}
		return nil
	},
}

func init() {
	llmListCmd.Flags().IntP("limit", "n", 20, "Number of events to show")
	llmListCmd.Flags().StringP("purpose", "p", "", "Filter by purpose (e.g. study-notes)")

	llmCmd.AddCommand(llmListCmd)
}
