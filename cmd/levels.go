package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"

	"github.com/abhisek/lexiz/internal/progress"
	"github.com/abhisek/lexiz/internal/vocab"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List vocabulary levels and their status",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		v, err := loadVocabulary()
		if err != nil {
			return err
		}
		backend := openStoreOrMemory(ctx)
		defer backend.Close()

		printLevels(cmd.OutOrStdout(), v, loadProgress(ctx, backend, v).Table())
		return nil
	},
}

func printLevels(w io.Writer, v *vocab.Vocabulary, t progress.Table) {
	fmt.Fprintf(w, "%-3s %5s  %-32s  %5s  %s\n", "", "Level", "Theme", "Words", "Status")
	fmt.Fprintln(w, strings.Repeat("─", 64))

	for _, lvl := range v.Levels {
		p := t.Get(lvl.ID)
		unlocked := progress.Unlocked(t, lvl.ID)
		status := progress.StatusOf(p).String()
		if !unlocked {
			status = "Locked"
		}
		theme := ansi.Truncate(lvl.Theme, 32, "…")
		pad := strings.Repeat(" ", max(0, 32-ansi.StringWidth(theme)))
		fmt.Fprintf(w, "%-3s %5d  %s%s  %5d  %s\n",
			progress.Badge(unlocked, p), lvl.ID, theme, pad, len(lvl.Words), status)
	}

	fmt.Fprintf(w, "\n%d levels, %d words\n", v.LevelCount(), v.WordCount())
}
