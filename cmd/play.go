package cmd

import (
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a quiz for a level",
	Long:  "Open the quiz for --level directly. Locked and unknown levels are rejected.",
	RunE: func(cmd *cobra.Command, args []string) error {
		level, _ := cmd.Flags().GetInt("level")
		return runApp(cmd, level)
	},
}

func init() {
	playCmd.Flags().IntP("level", "l", 1, "Level to play")
}
