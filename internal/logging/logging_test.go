package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "lexiz.log")

	l, err := New(Options{Mode: "prod", File: path})
	require.NoError(t, err)
	l.Info("progress saved", "level", 3)
	l.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	if !strings.Contains(string(data), "progress saved") {
		t.Errorf("log file missing message: %s", data)
	}
}

func TestNewRejectsBadLevel(t *testing.T) {
	_, err := New(Options{File: filepath.Join(t.TempDir(), "x.log"), Level: "loud"})
	if err == nil {
		t.Fatal("expected error for bad level")
	}
}

func TestWithAddsFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := FromZap(zap.New(core)).With("component", "progress")

	l.Warn("save failed", "err", "disk full")

	entries := logs.All()
	require.Len(t, entries, 1)
	ctx := entries[0].ContextMap()
	if ctx["component"] != "progress" {
		t.Errorf("component = %v, want progress", ctx["component"])
	}
	if entries[0].Level != zapcore.WarnLevel {
		t.Errorf("level = %v, want warn", entries[0].Level)
	}
}

func TestDefaultLogPath(t *testing.T) {
	t.Setenv("LEXIZ_LOG_FILE", "")
	t.Setenv("XDG_STATE_HOME", "/tmp/state")
	if got := DefaultLogPath(); got != "/tmp/state/lexiz/lexiz.log" {
		t.Errorf("DefaultLogPath() = %q", got)
	}
}
