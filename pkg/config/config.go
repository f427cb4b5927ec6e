// Package config carries host configuration: engine knobs, responder
// credentials, sentiment tuning and the optional session history journal.
// Values come from ~/.veil/config.json with VEIL_* environment overrides.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Engine    EngineConfig    `json:"engine"`
	Providers ProvidersConfig `json:"providers"`
	Sentiment SentimentConfig `json:"sentiment"`
	History   HistoryConfig   `json:"history"`
	mu        sync.RWMutex
}

type EngineConfig struct {
	DefaultPersona    string  `json:"default_persona" env:"VEIL_ENGINE_DEFAULT_PERSONA"`
	PlayerName        string  `json:"player_name" env:"VEIL_ENGINE_PLAYER_NAME"`
	ShortTermCapacity int     `json:"short_term_capacity" env:"VEIL_ENGINE_SHORT_TERM_CAPACITY"`
	DecayRate         float64 `json:"decay_rate" env:"VEIL_ENGINE_DECAY_RATE"`
}

type ProvidersConfig struct {
	// Default selects the responder used when the host does not ask for one
	// by name. "script" keeps the engine runnable with no credentials.
	Default    string           `json:"default" env:"VEIL_PROVIDERS_DEFAULT"`
	OpenRouter OpenRouterConfig `json:"openrouter"`
	Gemini     GeminiConfig     `json:"gemini"`
}

type OpenRouterConfig struct {
	APIKey  string `json:"api_key" env:"VEIL_PROVIDERS_OPENROUTER_API_KEY"`
	APIBase string `json:"api_base" env:"VEIL_PROVIDERS_OPENROUTER_API_BASE"`
	Model   string `json:"model" env:"VEIL_PROVIDERS_OPENROUTER_MODEL"`
	Proxy   string `json:"proxy,omitempty" env:"VEIL_PROVIDERS_OPENROUTER_PROXY"`
}

type GeminiConfig struct {
	APIKey string `json:"api_key" env:"VEIL_PROVIDERS_GEMINI_API_KEY"`
	Model  string `json:"model" env:"VEIL_PROVIDERS_GEMINI_MODEL"`
}

type SentimentConfig struct {
	// Lexicon overrides the built-in phrase weights when non-empty.
	Lexicon map[string]float64 `json:"lexicon,omitempty"`
}

type HistoryConfig struct {
	Enabled bool   `json:"enabled" env:"VEIL_HISTORY_ENABLED"`
	Path    string `json:"path" env:"VEIL_HISTORY_PATH"`
}

func DefaultConfig() *Config {
	return &Config{
		Engine: EngineConfig{
			DefaultPersona:    "silas",
			PlayerName:        "Player",
			ShortTermCapacity: 15,
			DecayRate:         0.15,
		},
		Providers: ProvidersConfig{
			Default:    "script",
			OpenRouter: OpenRouterConfig{},
			Gemini:     GeminiConfig{},
		},
		Sentiment: SentimentConfig{},
		History: HistoryConfig{
			Enabled: true,
			Path:    "~/.veil/history.db",
		},
	}
}

// ConfigPath returns the default config file location.
func ConfigPath() string {
	return filepath.Join(expandHome("~/.veil"), "config.json")
}

// LoadConfig reads path, falling back to defaults if the file does not exist,
// then applies environment overrides on top.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			if err := env.Parse(cfg); err != nil {
				return nil, err
			}
			return cfg, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func SaveConfig(path string, cfg *Config) error {
	cfg.mu.RLock()
	defer cfg.mu.RUnlock()

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}

// HistoryPath returns the expanded history database path.
func (c *Config) HistoryPath() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return expandHome(c.History.Path)
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		if path == "~" {
			return home
		}
		return filepath.Join(home, path[2:])
	}
	return path
}
