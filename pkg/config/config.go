// Package config loads and saves the application configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the application configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Log     LogConfig     `yaml:"log"`
	LLM     LLMConfig     `yaml:"llm"`
	Map     MapConfig     `yaml:"map"`
	Session SessionConfig `yaml:"session"`
}

// ServerConfig holds the HTTP server settings.
type ServerConfig struct {
	Address string `yaml:"address"`
}

// LLMConfig holds settings for the generative model provider.
type LLMConfig struct {
	Provider    string  `yaml:"provider"` // "gemini", "mock"
	Model       string  `yaml:"model"`
	Key         string  `yaml:"key"`
	Temperature float32 `yaml:"temperature"`
}

// MapConfig holds defaults for the map viewport before any query has run.
type MapConfig struct {
	CenterLat float64 `yaml:"center_lat"`
	CenterLng float64 `yaml:"center_lng"`
	Zoom      int     `yaml:"zoom"`
}

// SessionConfig holds settings for the per-client session store.
type SessionConfig struct {
	TTL Duration `yaml:"ttl"`
}

// LogSettings holds settings for one log output.
type LogSettings struct {
	Path  string `yaml:"path"`
	Level string `yaml:"level"`
}

// LogConfig holds settings for all log outputs.
type LogConfig struct {
	Server   LogSettings `yaml:"server"`
	Requests LogSettings `yaml:"requests"`
}

// DefaultConfig returns the configuration used when no file exists yet.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Address: "localhost:1923",
		},
		Log: LogConfig{
			Server: LogSettings{
				Path:  "./logs/server.log",
				Level: "INFO",
			},
			Requests: LogSettings{
				Path:  "./logs/requests.log",
				Level: "INFO",
			},
		},
		LLM: LLMConfig{
			Provider:    "gemini",
			Model:       "gemini-2.5-flash",
			Key:         "",
			Temperature: 1.0,
		},
		Map: MapConfig{
			CenterLat: -34.397,
			CenterLng: 150.644,
			Zoom:      8,
		},
		Session: SessionConfig{
			TTL: Duration(defaultSessionTTL),
		},
	}
}

// Load loads the configuration from the given path.
// If the file does not exist, it creates it with default values.
// If the file exists, it merges defaults with existing values but does NOT
// save back to disk (to preserve user formatting and comments).
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(path); err == nil {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}

		applyEnvFallbacks(cfg)
		return cfg, nil
	}

	// If file does not exist, save defaults.
	if err := Save(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to save config file: %w", err)
	}

	applyEnvFallbacks(cfg)
	return cfg, nil
}

// applyEnvFallbacks fills empty secrets from the environment.
// Values are never written back to disk.
func applyEnvFallbacks(cfg *Config) {
	if cfg.LLM.Key == "" {
		if key := os.Getenv("GEMINI_API_KEY"); key != "" {
			cfg.LLM.Key = key
		}
	}
}

// Save writes the configuration to the path.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// GenerateDefault writes a default config file to the path, for --init-config.
func GenerateDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	return Save(path, DefaultConfig())
}
