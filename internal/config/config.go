package config

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
	"github.com/matheuskafuri/headlines/internal/newsapi"
	"gopkg.in/yaml.v3"
)

//go:embed default_config.yaml
var defaultConfigFS embed.FS

const (
	appName = "headlines"

	// APIKeyEnv is the variable that must hold the NewsAPI key.
	APIKeyEnv      = "API_KEY"
	apiKeyEnvAlias = "NEWSAPI_KEY"
)

var ErrMissingAPIKey = errors.New("missing API key: set " + APIKeyEnv + " in the environment or a .env file")

type Config struct {
	Endpoint         string `yaml:"endpoint"`
	Country          string `yaml:"country"`
	BaseURL          string `yaml:"base_url"`
	Timeout          string `yaml:"timeout"`
	UserAgent        string `yaml:"user_agent,omitempty"`
	History          *bool  `yaml:"history,omitempty"`
	HistoryRetention string `yaml:"history_retention,omitempty"`
	HistoryPath      string `yaml:"history_path,omitempty"`
	APIKey           string `yaml:"api_key,omitempty"`
}

// LoadEnv reads a .env file from the working directory into the process
// environment. Variables already set win, and a missing file is fine.
func LoadEnv(filenames ...string) error {
	if err := godotenv.Load(filenames...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading .env: %w", err)
	}
	return nil
}

// ResolveAPIKey returns the key from the environment, falling back to the
// config file. It fails before any request is made when neither is set.
func (c *Config) ResolveAPIKey() (string, error) {
	for _, name := range []string{APIKeyEnv, apiKeyEnvAlias} {
		if v := strings.TrimSpace(os.Getenv(name)); v != "" {
			return v, nil
		}
	}
	if c.APIKey != "" {
		return c.APIKey, nil
	}
	return "", ErrMissingAPIKey
}

func (c *Config) EndpointValue() newsapi.Endpoint {
	e, err := newsapi.ParseEndpoint(c.Endpoint)
	if err != nil {
		return newsapi.Everything
	}
	return e
}

func (c *Config) CountryValue() newsapi.Country {
	v, err := newsapi.ParseCountry(c.Country)
	if err != nil {
		return newsapi.India
	}
	return v
}

func (c *Config) TimeoutDuration() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return newsapi.DefaultTimeout
	}
	return d
}

func (c *Config) GetBaseURL() string {
	if c.BaseURL == "" {
		return newsapi.DefaultBaseURL
	}
	return c.BaseURL
}

func (c *Config) HistoryEnabled() bool {
	return c.History == nil || *c.History
}

func (c *Config) RetentionDuration() time.Duration {
	if c.HistoryRetention == "" {
		return 30 * 24 * time.Hour
	}
	d, err := ParseDays(c.HistoryRetention)
	if err != nil {
		return 30 * 24 * time.Hour
	}
	return d
}

// ParseDays is time.ParseDuration plus an "Nd" day suffix.
func ParseDays(s string) (time.Duration, error) {
	if len(s) > 1 && s[len(s)-1] == 'd' {
		var days int
		if _, err := fmt.Sscanf(s, "%dd", &days); err == nil {
			return time.Duration(days) * 24 * time.Hour, nil
		}
	}
	return time.ParseDuration(s)
}

// ClientOptions translates the config into newsapi client options.
func (c *Config) ClientOptions() []newsapi.ClientOption {
	opts := []newsapi.ClientOption{
		newsapi.WithBaseURL(c.GetBaseURL()),
		newsapi.WithTimeout(c.TimeoutDuration()),
	}
	if c.UserAgent != "" {
		opts = append(opts, newsapi.WithUserAgent(c.UserAgent))
	}
	return opts
}

func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, appName, "config.yaml")
}

func DefaultHistoryPath() string {
	return filepath.Join(xdg.StateHome, appName, "history.db")
}

func (c *Config) GetHistoryPath() string {
	if c.HistoryPath == "" {
		return DefaultHistoryPath()
	}
	return c.HistoryPath
}

func loadDefaults() (*Config, error) {
	data, err := defaultConfigFS.ReadFile("default_config.yaml")
	if err != nil {
		return nil, fmt.Errorf("reading embedded config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded config: %w", err)
	}
	return &cfg, nil
}

// Load reads the config at path (or the default location). Keys missing from
// the file keep their embedded defaults. On first run the defaults are
// written out so the user has something to edit.
func Load(path string) (*Config, error) {
	cfg, err := loadDefaults()
	if err != nil {
		return nil, err
	}

	if path == "" {
		path = DefaultConfigPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Non-fatal: embedded defaults are enough to run.
			_ = writeDefaults(path)
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

func writeDefaults(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, _ := defaultConfigFS.ReadFile("default_config.yaml")
	return os.WriteFile(path, data, 0o644)
}

func validate(cfg *Config) error {
	if _, err := newsapi.ParseEndpoint(cfg.Endpoint); err != nil {
		return err
	}
	if _, err := newsapi.ParseCountry(cfg.Country); err != nil {
		return err
	}
	if cfg.BaseURL != "" {
		u, err := url.Parse(cfg.BaseURL)
		if err != nil {
			return fmt.Errorf("invalid base_url: %w", err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return fmt.Errorf("base_url scheme must be http or https, got %q", u.Scheme)
		}
	}
	if cfg.Timeout != "" {
		if _, err := time.ParseDuration(cfg.Timeout); err != nil {
			return fmt.Errorf("invalid timeout %q: %w", cfg.Timeout, err)
		}
	}
	if cfg.HistoryRetention != "" {
		if _, err := ParseDays(cfg.HistoryRetention); err != nil {
			return fmt.Errorf("invalid history_retention %q: %w", cfg.HistoryRetention, err)
		}
	}
	return nil
}
