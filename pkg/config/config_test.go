package config

import (
	"os"
	"path/filepath"
	"testing"
)

// TestDefaultConfig verifies the out-of-the-box values keep the engine
// runnable without any file or credentials.
func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Engine.DefaultPersona != "silas" {
		t.Errorf("default persona = %q, want silas", cfg.Engine.DefaultPersona)
	}
	if cfg.Engine.PlayerName != "Player" {
		t.Errorf("player name = %q, want Player", cfg.Engine.PlayerName)
	}
	if cfg.Engine.ShortTermCapacity != 15 {
		t.Errorf("short-term capacity = %d, want 15", cfg.Engine.ShortTermCapacity)
	}
	if cfg.Engine.DecayRate != 0.15 {
		t.Errorf("decay rate = %v, want 0.15", cfg.Engine.DecayRate)
	}
	if cfg.Providers.Default != "script" {
		t.Errorf("default provider = %q, want script", cfg.Providers.Default)
	}
	if !cfg.History.Enabled {
		t.Error("history should be enabled by default")
	}
}

// TestLoadConfig_MissingFile verifies a missing file falls back to defaults
// instead of failing.
func TestLoadConfig_MissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope", "config.json"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Engine.DefaultPersona != "silas" {
		t.Errorf("missing file should yield defaults, got persona %q", cfg.Engine.DefaultPersona)
	}
}

// TestLoadConfig_FileAndEnvOverride verifies file values load and environment
// variables win over the file.
func TestLoadConfig_FileAndEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	body := `{
  "engine": {"default_persona": "mara", "player_name": "Operative", "short_term_capacity": 5, "decay_rate": 0.2},
  "providers": {"default": "openrouter", "openrouter": {"api_key": "file-key"}}
}`
	if err := os.WriteFile(path, []byte(body), 0600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv("VEIL_PROVIDERS_OPENROUTER_API_KEY", "env-key")
	t.Setenv("VEIL_ENGINE_DECAY_RATE", "0.3")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Engine.DefaultPersona != "mara" {
		t.Errorf("persona = %q, want mara from file", cfg.Engine.DefaultPersona)
	}
	if cfg.Engine.ShortTermCapacity != 5 {
		t.Errorf("capacity = %d, want 5 from file", cfg.Engine.ShortTermCapacity)
	}
	if cfg.Providers.OpenRouter.APIKey != "env-key" {
		t.Errorf("api key = %q, env override should beat the file", cfg.Providers.OpenRouter.APIKey)
	}
	if cfg.Engine.DecayRate != 0.3 {
		t.Errorf("decay rate = %v, env override should beat the file", cfg.Engine.DecayRate)
	}
}

// TestSaveConfig_RoundTrip verifies saved config loads back with the same
// values.
func TestSaveConfig_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "veil", "config.json")

	cfg := DefaultConfig()
	cfg.Engine.PlayerName = "Rook"
	cfg.Sentiment.Lexicon = map[string]float64{"salute": 0.2}

	if err := SaveConfig(path, cfg); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Engine.PlayerName != "Rook" {
		t.Errorf("player name = %q, want Rook", loaded.Engine.PlayerName)
	}
	if loaded.Sentiment.Lexicon["salute"] != 0.2 {
		t.Errorf("lexicon = %v, want salute weight preserved", loaded.Sentiment.Lexicon)
	}
}

// TestHistoryPath_ExpandsHome verifies tilde expansion in the journal path.
func TestHistoryPath_ExpandsHome(t *testing.T) {
	cfg := DefaultConfig()
	cfg.History.Path = "~/journal.db"

	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home dir: %v", err)
	}
	if got, want := cfg.HistoryPath(), filepath.Join(home, "journal.db"); got != want {
		t.Errorf("history path = %q, want %q", got, want)
	}
}
