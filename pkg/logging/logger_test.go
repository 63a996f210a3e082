package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"maproute/pkg/config"
)

func testLogConfig(dir string) *config.LogConfig {
	return &config.LogConfig{
		Server:   config.LogSettings{Path: filepath.Join(dir, "server.log"), Level: "INFO"},
		Requests: config.LogSettings{Path: filepath.Join(dir, "requests.log"), Level: "INFO"},
	}
}

func TestInitCreatesLogs(t *testing.T) {
	dir := t.TempDir()
	cleanup, err := Init(testLogConfig(dir))
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer cleanup()

	slog.Info("hello")
	RequestLogger.Info("request", "path", "/api/query")

	for _, name := range []string{"server.log", "requests.log"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("expected %s to exist: %v", name, err)
		}
	}
}

func TestInitRotatesExistingLogs(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "server.log")
	if err := os.WriteFile(path, []byte("previous run\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cleanup, err := Init(testLogConfig(dir))
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer cleanup()

	old, err := os.ReadFile(path + ".old")
	if err != nil {
		t.Fatalf("expected rotated .old file: %v", err)
	}
	if string(old) != "previous run\n" {
		t.Errorf("rotated file content mismatch: %q", old)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"DEBUG", slog.LevelDebug},
		{"debug", slog.LevelDebug},
		{"WARN", slog.LevelWarn},
		{"ERROR", slog.LevelError},
		{"bogus", slog.LevelInfo},
		{"", slog.LevelInfo},
	}
	for _, tc := range tests {
		if got := parseLevel(tc.input); got != tc.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}
