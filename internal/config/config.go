// Package config loads recipemaker settings from config.yaml, .env and the
// environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	configFileName = "config.yaml"

	// DirEnv overrides the config directory (~/.recipemaker by default).
	DirEnv = "RECIPEMAKER_CONFIG_DIR"
	// WebhookURLEnv overrides webhook.url.
	WebhookURLEnv = "RECIPEMAKER_WEBHOOK_URL"
	// TimeoutEnv overrides webhook.timeout (Go duration syntax, e.g. "45s").
	TimeoutEnv = "RECIPEMAKER_TIMEOUT"
	// LogLevelEnv overrides logging.level.
	LogLevelEnv = "RECIPEMAKER_LOG_LEVEL"
)

// Config is the root configuration structure.
type Config struct {
	Webhook   WebhookConfig   `yaml:"webhook"`
	Clipboard ClipboardConfig `yaml:"clipboard"`
	UI        UIConfig        `yaml:"ui"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// WebhookConfig describes the recipe webhook endpoint.
type WebhookConfig struct {
	URL     string        `yaml:"url"`
	Timeout time.Duration `yaml:"timeout,omitempty"` // 0 = no timeout
}

// ClipboardConfig selects the clipboard backend.
type ClipboardConfig struct {
	Mode string `yaml:"mode"` // auto, system, osc52
}

// UIConfig contains terminal front end settings.
type UIConfig struct {
	RenderMarkdown *bool         `yaml:"renderMarkdown,omitempty"`
	ToastDuration  time.Duration `yaml:"toastDuration,omitempty"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Enabled *bool  `yaml:"enabled,omitempty"`
	Level   string `yaml:"level,omitempty"` // debug, info, warn, error
	File    string `yaml:"file,omitempty"`  // relative paths resolve against the config dir
}

// Dir returns the config directory.
func Dir() (string, error) {
	if dir := strings.TrimSpace(os.Getenv(DirEnv)); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, defaultDirName), nil
}

// Path returns the default config file path.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

// Load reads .env from the working directory, then the config file at the
// default path, then applies environment overrides. A missing config file
// yields the defaults.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom is Load with an explicit config file path.
func LoadFrom(path string) (*Config, error) {
	// Missing .env is normal.
	_ = godotenv.Load()

	cfg, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ReadFile returns the defaults overlaid with the file at path, ignoring
// .env and the environment. A missing file yields the defaults. The result
// is what the file itself says, so it is safe to edit and Save back.
func ReadFile(path string) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	cfg.applyDefaults()
	return cfg, nil
}

// Save writes cfg as YAML to path, creating the parent directory.
func Save(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}

// YAML returns the effective configuration as YAML.
func (c *Config) YAML() (string, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Validate reports configuration values that cannot work.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Webhook.URL) == "" {
		return errors.New("webhook.url must not be empty")
	}
	if c.Webhook.Timeout < 0 {
		return fmt.Errorf("webhook.timeout must not be negative, got %s", c.Webhook.Timeout)
	}
	switch c.Clipboard.Mode {
	case ClipboardAuto, ClipboardSystem, ClipboardOSC52:
	default:
		return fmt.Errorf("clipboard.mode %q: want auto, system or osc52", c.Clipboard.Mode)
	}
	return nil
}

// MarkdownEnabled reports whether recipe output is rendered as Markdown.
func (c *Config) MarkdownEnabled() bool {
	return c.UI.RenderMarkdown == nil || *c.UI.RenderMarkdown
}

// LoggingEnabled reports whether logging is on.
func (c *Config) LoggingEnabled() bool {
	return c.Logging.Enabled == nil || *c.Logging.Enabled
}

// LogFile returns the log file path, resolved against the config dir.
func (c *Config) LogFile() string {
	file := c.Logging.File
	if file == "" || filepath.IsAbs(file) || strings.HasPrefix(file, "~") {
		return file
	}
	dir, err := Dir()
	if err != nil {
		return file
	}
	return filepath.Join(dir, file)
}

func (c *Config) applyEnv() error {
	if v := strings.TrimSpace(os.Getenv(WebhookURLEnv)); v != "" {
		c.Webhook.URL = v
	}
	if v := strings.TrimSpace(os.Getenv(TimeoutEnv)); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: %w", TimeoutEnv, err)
		}
		c.Webhook.Timeout = d
	}
	if v := strings.TrimSpace(os.Getenv(LogLevelEnv)); v != "" {
		c.Logging.Level = v
	}
	return nil
}
