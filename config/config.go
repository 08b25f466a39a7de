// ABOUTME: Client configuration loaded from disk, .env files and the environment
// ABOUTME: Also builds the process logger at the configured level

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/caarlos0/env/v11"
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"github.com/Akshada2906/circle-insights/api"
)

const (
	// AppName names the XDG data directory.
	AppName = "circle-insights"

	// ConfigFileName is the config file inside the data directory.
	ConfigFileName = "config.json"

	// DefaultLogLevel is used when no level is configured.
	DefaultLogLevel = "info"

	// DefaultMockPort is where the mock backend listens by default.
	DefaultMockPort = 8000
)

// Config holds client settings. Environment variables override the file.
type Config struct {
	// BaseURL is the versioned API root, e.g. http://localhost:8000/api/v1.
	BaseURL string `json:"base_url,omitempty" env:"CIRCLE_API_BASE_URL"`

	// Token is sent as a bearer token when set. Never written to disk.
	Token string `json:"-" env:"CIRCLE_API_TOKEN"`

	LogLevel string `json:"log_level,omitempty" env:"CIRCLE_LOG_LEVEL"`
	MockPort int    `json:"mock_port,omitempty" env:"CIRCLE_MOCK_PORT"`

	path string
}

// DefaultConfig returns a config with defaults applied.
func DefaultConfig() *Config {
	return &Config{
		BaseURL:  api.DefaultBaseURL,
		LogLevel: DefaultLogLevel,
		MockPort: DefaultMockPort,
	}
}

// Path returns the default config file location.
func Path() string {
	return filepath.Join(xdg.DataHome, AppName, ConfigFileName)
}

// Load reads the config from the default location, then applies .env files
// from the working directory and environment overrides.
func Load() (*Config, error) {
	return LoadFrom(Path())
}

// LoadFrom reads the config at path. A missing file yields defaults.
func LoadFrom(path string) (*Config, error) {
	cfg := DefaultConfig()
	cfg.path = path

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read config: %w", err)
	default:
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	// .env is optional; a missing file is not an error.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = api.DefaultBaseURL
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.MockPort == 0 {
		c.MockPort = DefaultMockPort
	}
}

// Save persists the config to the path it was loaded from.
func (c *Config) Save() error {
	path := c.path
	if path == "" {
		path = Path()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return os.WriteFile(path, data, 0600)
}

// SetBaseURL changes the API root and saves.
func (c *Config) SetBaseURL(url string) error {
	c.BaseURL = url
	return c.Save()
}

// ClientOptions builds gateway options from the config.
func (c *Config) ClientOptions(logger *log.Logger) api.Options {
	return api.Options{BaseURL: c.BaseURL, Token: c.Token, Logger: logger}
}

// NewLogger builds a logger writing to w at the given level.
func NewLogger(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return log.NewWithOptions(w, log.Options{
		Level:           lvl,
		Prefix:          "circle",
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
	}), nil
}
