package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset all level progress",
	Long:  "Reset every level to not started. The attempt history is kept.",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			fmt.Fprint(cmd.OutOrStdout(), "Reset all progress? [y/N] ")
			answer, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			if a := strings.ToLower(strings.TrimSpace(answer)); a != "y" && a != "yes" {
				fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
				return nil
			}
		}

		ctx := cmd.Context()
		v, err := loadVocabulary()
		if err != nil {
			return err
		}
		backend, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer backend.Close()

		if err := loadProgress(ctx, backend, v).Reset(ctx); err != nil {
			return fmt.Errorf("reset progress: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Progress reset.")
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
}
