package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/matheuskafuri/headlines/internal/newsapi"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := loadDefaults()
	if err != nil {
		t.Fatalf("loadDefaults: %v", err)
	}
	if err := validate(cfg); err != nil {
		t.Errorf("embedded defaults should validate: %v", err)
	}
	if cfg.EndpointValue() != newsapi.TopHeadlines {
		t.Errorf("expected default endpoint top-headlines, got %v", cfg.EndpointValue())
	}
	if cfg.CountryValue() != newsapi.India {
		t.Errorf("expected default country in, got %v", cfg.CountryValue())
	}
	if cfg.GetBaseURL() != newsapi.DefaultBaseURL {
		t.Errorf("expected default base url, got %s", cfg.GetBaseURL())
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")

	content := `endpoint: sports
country: gb
timeout: 5s
`
	if err := os.WriteFile(cfgPath, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.EndpointValue() != newsapi.Sports {
		t.Errorf("expected sports, got %v", cfg.EndpointValue())
	}
	if cfg.CountryValue() != newsapi.UnitedKingdom {
		t.Errorf("expected gb, got %v", cfg.CountryValue())
	}
	if cfg.TimeoutDuration() != 5*time.Second {
		t.Errorf("expected 5s, got %v", cfg.TimeoutDuration())
	}
	// Keys absent from the file keep their defaults
	if cfg.GetBaseURL() != newsapi.DefaultBaseURL {
		t.Errorf("expected default base url to survive, got %s", cfg.GetBaseURL())
	}
	if !cfg.HistoryEnabled() {
		t.Error("expected history enabled by default")
	}
}

func TestLoadNonexistentWritesDefaults(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "sub", "config.yaml")

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Endpoint == "" {
		t.Error("expected defaults when config doesn't exist")
	}
	if _, err := os.Stat(cfgPath); err != nil {
		t.Errorf("expected defaults written to %s: %v", cfgPath, err)
	}
}

func TestLoadInvalidFile(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad endpoint", "endpoint: weather\n"},
		{"bad country", "country: fr\n"},
		{"bad scheme", "base_url: ftp://example.com\n"},
		{"bad timeout", "timeout: soon\n"},
		{"bad retention", "history_retention: forever\n"},
		{"bad yaml", "endpoint: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfgPath := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(cfgPath, []byte(tt.content), 0o644); err != nil {
				t.Fatalf("writing config: %v", err)
			}
			if _, err := Load(cfgPath); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestResolveAPIKey(t *testing.T) {
	t.Setenv(APIKeyEnv, "")
	t.Setenv(apiKeyEnvAlias, "")

	cfg := &Config{}
	if _, err := cfg.ResolveAPIKey(); !errors.Is(err, ErrMissingAPIKey) {
		t.Errorf("expected ErrMissingAPIKey, got %v", err)
	}

	cfg.APIKey = "from-file"
	if key, _ := cfg.ResolveAPIKey(); key != "from-file" {
		t.Errorf("expected file key, got %q", key)
	}

	t.Setenv(apiKeyEnvAlias, "from-alias")
	if key, _ := cfg.ResolveAPIKey(); key != "from-alias" {
		t.Errorf("expected alias env key, got %q", key)
	}

	t.Setenv(APIKeyEnv, "from-env")
	if key, _ := cfg.ResolveAPIKey(); key != "from-env" {
		t.Errorf("expected env key to win, got %q", key)
	}
}

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	if err := os.WriteFile(envPath, []byte("API_KEY=dotenv-key\n"), 0o600); err != nil {
		t.Fatalf("writing .env: %v", err)
	}
	t.Setenv(APIKeyEnv, "")
	os.Unsetenv(APIKeyEnv)

	if err := LoadEnv(envPath); err != nil {
		t.Fatalf("LoadEnv: %v", err)
	}
	if got := os.Getenv(APIKeyEnv); got != "dotenv-key" {
		t.Errorf("expected key from .env, got %q", got)
	}
}

func TestLoadEnvMissingFile(t *testing.T) {
	if err := LoadEnv(filepath.Join(t.TempDir(), ".env")); err != nil {
		t.Errorf("missing .env should be ignored, got %v", err)
	}
}

func TestRetentionDuration(t *testing.T) {
	tests := []struct {
		input    string
		wantDays int
	}{
		{"90d", 90},
		{"7d", 7},
		{"720h", 30},
		{"", 30},
		{"invalid", 30},
	}
	for _, tt := range tests {
		cfg := &Config{HistoryRetention: tt.input}
		got := cfg.RetentionDuration()
		if got != time.Duration(tt.wantDays)*24*time.Hour {
			t.Errorf("RetentionDuration(%q) = %v, want %dd", tt.input, got, tt.wantDays)
		}
	}
}

func TestHistoryDisabled(t *testing.T) {
	off := false
	cfg := &Config{History: &off}
	if cfg.HistoryEnabled() {
		t.Error("expected history disabled")
	}
}

func TestClientOptions(t *testing.T) {
	cfg := &Config{BaseURL: "http://localhost:9999/v2", Timeout: "2s", UserAgent: "test"}
	c, err := newsapi.NewClient(cfg.ClientOptions()...)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	if c.BaseURL() != "http://localhost:9999/v2" {
		t.Errorf("unexpected base url %s", c.BaseURL())
	}
}

func TestGetHistoryPath(t *testing.T) {
	cfg := &Config{}
	if cfg.GetHistoryPath() != DefaultHistoryPath() {
		t.Errorf("expected default history path, got %s", cfg.GetHistoryPath())
	}
	cfg.HistoryPath = "/tmp/h.db"
	if cfg.GetHistoryPath() != "/tmp/h.db" {
		t.Errorf("expected override, got %s", cfg.GetHistoryPath())
	}
}
