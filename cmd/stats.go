package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/lexiz/internal/progress"
	"github.com/abhisek/lexiz/internal/quiz"
	"github.com/abhisek/lexiz/internal/vocab"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show progress statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
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

		prog := loadProgress(ctx, backend, v)
		printStats(cmd.OutOrStdout(), v, prog, quiz.NewGenerator(cfg.QuizConfig()))
		return nil
	},
}

func printStats(w io.Writer, v *vocab.Vocabulary, prog *progress.Service, gen *quiz.Generator) {
	sum := prog.Summary(gen.Config().QuestionCount)

	fmt.Fprintf(w, "Completed levels:  %d/%d (%d%%)\n", sum.CompletedLevels, sum.TotalLevels, sum.OverallPercent)
	fmt.Fprintf(w, "Quizzes taken:     %d\n", sum.TotalAttempts)
	fmt.Fprintf(w, "Correct answers:   %d\n", sum.TotalCorrect)
	fmt.Fprintf(w, "Average score:     %d%%\n\n", sum.AverageScore)

	fmt.Fprintf(w, "%5s  %-12s  %8s  %9s\n", "Level", "Status", "Attempts", "Best")
	fmt.Fprintln(w, strings.Repeat("─", 42))

	t := prog.Table()
	for _, lvl := range v.Levels {
		p := t.Get(lvl.ID)
		status := progress.StatusOf(p).String()
		if !prog.Unlocked(lvl.ID) {
			status = "Locked"
		}
		best := "-"
		if p.Attempts > 0 {
			best = fmt.Sprintf("%d/%d", p.BestScore, gen.Length(lvl.ID, v.Levels))
		}
		fmt.Fprintf(w, "%5d  %-12s  %8d  %9s\n", lvl.ID, status, p.Attempts, best)
	}
}
