package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/lexiz/internal/config"
	"github.com/abhisek/lexiz/internal/logging"
)

var (
	cfg    config.Config
	logger = logging.Nop()
)

var rootCmd = &cobra.Command{
	Use:   "lexiz",
	Short: "French to Korean vocabulary quiz",
	Long:  "Lexiz is a terminal vocabulary trainer. Work through themed levels of French words, answering in Korean, and unlock the next level at 70%.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup(cmd)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Sync()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, 0)
	},
}

func Execute() error {
	return rootCmd.ExecuteContext(context.Background())
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("db", "", "Path to SQLite database file (overrides LEXIZ_DB)")
	pf.String("vocab", "", "Vocabulary document, JSON or YAML (overrides LEXIZ_VOCAB)")
	pf.String("store", "", "Storage backend: sqlite, redis or memory (overrides LEXIZ_STORE)")
	pf.String("redis-url", "", "Redis URL for --store redis (overrides LEXIZ_REDIS_URL)")
	pf.String("log-file", "", "Log file path (overrides LEXIZ_LOG_FILE)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// setup resolves configuration with flag > env > .env > default
// precedence and opens the log file.
func setup(cmd *cobra.Command) error {
	if err := config.LoadDotEnv(""); err != nil {
		return err
	}

	flags := cmd.Flags()
	var o config.Overrides
	o.DBPath, _ = flags.GetString("db")
	o.VocabPath, _ = flags.GetString("vocab")
	o.StoreBackend, _ = flags.GetString("store")
	o.RedisURL, _ = flags.GetString("redis-url")
	o.LogFile, _ = flags.GetString("log-file")

	c, err := config.Load(o)
	if err != nil {
		return err
	}
	cfg = c

	l, err := logging.New(cfg.LogOptions())
	if err != nil {
		fmt.Fprintln(os.Stderr, "Logging disabled:", err)
		return nil
	}
	logger = l
	logger.Debug("config resolved", "command", cmd.Name(), "store", cfg.StoreBackend, "llm", cfg.LLM.Provider)
	return nil
}
