// Package config resolves lexiz settings from flags, LEXIZ_* environment
// variables and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/abhisek/lexiz/internal/llm"
	"github.com/abhisek/lexiz/internal/logging"
	"github.com/abhisek/lexiz/internal/quiz"
	"github.com/abhisek/lexiz/internal/store"
)

// Config holds the resolved settings for one run.
type Config struct {
	DBPath        string // empty resolves through store.DefaultDBPath
	VocabPath     string // empty uses the bundled vocabulary
	StoreBackend  string
	RedisURL      string
	LogFile       string
	LogMode       string
	QuestionCount int
	LLM           llm.Config
}

// Overrides carries command-line flag values. Empty fields leave the
// env or default value in place.
type Overrides struct {
	DBPath       string
	VocabPath    string
	StoreBackend string
	RedisURL     string
	LogFile      string
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		StoreBackend:  store.BackendSQLite,
		LogMode:       "dev",
		QuestionCount: quiz.DefaultConfig().QuestionCount,
		LLM:           llm.DefaultConfig(),
	}
}

// LoadDotEnv loads path into the process environment without
// overriding variables that are already set. A missing file is not an
// error.
func LoadDotEnv(path string) error {
	if path == "" {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// FromEnv applies LEXIZ_* variables over the defaults.
func FromEnv() Config {
	cfg := Default()
	setFromEnv(&cfg.DBPath, "LEXIZ_DB")
	setFromEnv(&cfg.VocabPath, "LEXIZ_VOCAB")
	setFromEnv(&cfg.StoreBackend, "LEXIZ_STORE")
	setFromEnv(&cfg.RedisURL, "LEXIZ_REDIS_URL")
	setFromEnv(&cfg.LogFile, "LEXIZ_LOG_FILE")
	setFromEnv(&cfg.LogMode, "LEXIZ_LOG_MODE")
	if n, err := strconv.Atoi(os.Getenv("LEXIZ_QUESTION_COUNT")); err == nil && n > 0 {
		cfg.QuestionCount = n
	}
	cfg.LLM = llm.ConfigFromEnv()
	return cfg
}

// Load reads the environment and applies flag overrides on top.
func Load(o Overrides) (Config, error) {
	cfg := FromEnv()
	cfg.Apply(o)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Apply overlays non-empty overrides.
func (c *Config) Apply(o Overrides) {
	setIf(&c.DBPath, o.DBPath)
	setIf(&c.VocabPath, o.VocabPath)
	setIf(&c.StoreBackend, o.StoreBackend)
	setIf(&c.RedisURL, o.RedisURL)
	setIf(&c.LogFile, o.LogFile)
}

// Validate checks the store and quiz settings. LLM settings are checked
// separately because the notes feature is optional.
func (c Config) Validate() error {
	switch c.StoreBackend {
	case store.BackendSQLite, store.BackendMemory:
	case store.BackendRedis:
		if c.RedisURL == "" {
			return errors.New("--redis-url or LEXIZ_REDIS_URL is required for the redis store")
		}
	default:
		return fmt.Errorf("unknown store backend %q (want sqlite, redis or memory)", c.StoreBackend)
	}
	if c.QuestionCount <= 0 {
		return fmt.Errorf("question count must be positive, got %d", c.QuestionCount)
	}
	return nil
}

// ResolveDBPath returns DBPath, or the default location when unset,
// creating the parent directory either way.
func (c Config) ResolveDBPath() (string, error) {
	if c.DBPath != "" {
		return c.DBPath, store.EnsureDir(c.DBPath)
	}
	return store.DefaultDBPath()
}

// LogOptions returns the logger settings, falling back to the default
// log location.
func (c Config) LogOptions() logging.Options {
	file := c.LogFile
	if file == "" {
		file = logging.DefaultLogPath()
	}
	return logging.Options{Mode: c.LogMode, File: file, Level: os.Getenv("LEXIZ_LOG_LEVEL")}
}

// QuizConfig returns generator settings with the configured length.
func (c Config) QuizConfig() quiz.Config {
	qc := quiz.DefaultConfig()
	qc.QuestionCount = c.QuestionCount
	return qc
}

func setFromEnv(dst *string, key string) {
	setIf(dst, os.Getenv(key))
}

func setIf(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
