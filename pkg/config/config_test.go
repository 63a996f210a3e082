package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "maproute.yaml")

	tests := []struct {
		name      string
		setup     func()
		validate  func(*testing.T, *Config)
		checkFile func(*testing.T)
	}{
		{
			name:  "NewFile_Defaults",
			setup: func() {}, // No file
			validate: func(t *testing.T, cfg *Config) {
				if cfg.LLM.Provider != "gemini" {
					t.Errorf("expected default provider 'gemini', got '%s'", cfg.LLM.Provider)
				}
				if cfg.Server.Address != "localhost:1923" {
					t.Errorf("expected default address, got '%s'", cfg.Server.Address)
				}
				if cfg.LLM.Temperature != 1.0 {
					t.Errorf("expected default temperature 1.0, got %v", cfg.LLM.Temperature)
				}
			},
			checkFile: func(t *testing.T) {
				content, err := os.ReadFile(configPath)
				if err != nil {
					t.Fatalf("failed to read config file: %v", err)
				}
				if !strings.Contains(string(content), "provider: gemini") {
					t.Error("config file missing default values")
				}
			},
		},
		{
			name: "ExistingFile_Override",
			setup: func() {
				err := os.WriteFile(configPath, []byte("server:\n  address: localhost:9999\nllm:\n  model: gemini-2.5-pro\n"), 0o644)
				if err != nil {
					t.Fatalf("failed to write config: %v", err)
				}
			},
			validate: func(t *testing.T, cfg *Config) {
				if cfg.Server.Address != "localhost:9999" {
					t.Errorf("file value not applied, got '%s'", cfg.Server.Address)
				}
				if cfg.LLM.Model != "gemini-2.5-pro" {
					t.Errorf("file value not applied, got '%s'", cfg.LLM.Model)
				}
				// Unset fields keep defaults.
				if cfg.Log.Server.Level != "INFO" {
					t.Errorf("default not merged, got '%s'", cfg.Log.Server.Level)
				}
			},
			checkFile: func(t *testing.T) {
				// Existing file must not be rewritten.
				content, _ := os.ReadFile(configPath)
				if strings.Contains(string(content), "logs/server.log") {
					t.Error("Load rewrote an existing config file")
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			os.Remove(configPath)
			tc.setup()

			cfg, err := Load(configPath)
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			tc.validate(t, cfg)
			if tc.checkFile != nil {
				tc.checkFile(t)
			}
		})
	}
}

func TestLoadEnvFallback(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "maproute.yaml")
	if err := os.WriteFile(configPath, []byte("llm:\n  key: \"\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("GEMINI_API_KEY", "env-secret")

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.LLM.Key != "env-secret" {
		t.Errorf("expected env fallback key, got '%s'", cfg.LLM.Key)
	}

	// The secret must never be written back to disk.
	content, _ := os.ReadFile(configPath)
	if strings.Contains(string(content), "env-secret") {
		t.Error("env secret leaked into config file")
	}
}

func TestParseDuration(t *testing.T) {
	tests := []struct {
		input string
		want  time.Duration
	}{
		{"30s", 30 * time.Second},
		{"5m", 5 * time.Minute},
		{"1d", Day},
		{"2w", 2 * Week},
		{"1d12h", Day + 12*time.Hour},
		{"", 0},
	}

	for _, tc := range tests {
		got, err := ParseDuration(tc.input)
		if err != nil {
			t.Errorf("ParseDuration(%q) error: %v", tc.input, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseDuration(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}
