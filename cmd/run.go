package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/lexiz/internal/app"
	"github.com/abhisek/lexiz/internal/llm"
	"github.com/abhisek/lexiz/internal/notes"
	"github.com/abhisek/lexiz/internal/quiz"
	"github.com/abhisek/lexiz/internal/screen"
)

// runApp builds the services and launches the TUI. A non-zero
// startLevel opens straight into a quiz for that level.
func runApp(cmd *cobra.Command, startLevel int) error {
	ctx := cmd.Context()

	v, err := loadVocabulary()
	if err != nil {
		return err
	}

	backend := openStoreOrMemory(ctx)
	defer backend.Close()

	prog := loadProgress(ctx, backend, v)
	if startLevel > 0 {
		if err := prog.Playable(startLevel); err != nil {
			return fmt.Errorf("level %d: %w", startLevel, err)
		}
	}

	var provider llm.Provider
	if cfg.LLM.Enabled() {
		provider, err = llm.NewProvider(ctx, cfg.LLM, backend.Events(), logger)
		if err != nil {
			logger.Warn("LLM provider unavailable", "err", err)
			fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
			fmt.Fprintln(os.Stderr, "Study notes will be unavailable.")
			provider = nil
		}
	}
	notesCfg := notes.DefaultConfig()
	notesCfg.Timeout = cfg.LLM.Timeout
	notesSvc := notes.NewService(provider, notesCfg, logger)
	defer notesSvc.Cancel()

	logger.Info("starting tui",
		"levels", v.LevelCount(), "words", v.WordCount(), "notes", notesSvc.Enabled(), "start_level", startLevel)

	return app.Run(app.Options{
		Services: &screen.Services{
			Vocab:     v,
			Progress:  prog,
			Attempts:  backend.Attempts(),
			Generator: quiz.NewGenerator(cfg.QuizConfig()),
			Notes:     notesSvc,
			Log:       logger,
		},
		StartLevel: startLevel,
	})
}
