package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// EnvConfigPath names an environment variable holding the config file path.
const EnvConfigPath = "TEXTSUM_CONFIG"

// EnvLogLevel overrides log.level when set.
const EnvLogLevel = "TEXTSUM_LOG_LEVEL"

// Bounds of the summary length control in the TUI.
const (
	MinTopN = 1
	MaxTopN = 10
)

// SummarizerConfig configures sentence scoring and selection.
type SummarizerConfig struct {
	TopN             int      `yaml:"top_n"`
	MinTokenLength   int      `yaml:"min_token_length"`
	Scoring          string   `yaml:"scoring"`
	Stopwords        []string `yaml:"stopwords,omitempty"`
	ReplaceStopwords bool     `yaml:"replace_stopwords"`
}

// LogConfig configures the application logger.
type LogConfig struct {
	Level  string `yaml:"level"`
	File   string `yaml:"file"`
	Format string `yaml:"format"`
}

// AppConfig is the root application configuration structure.
type AppConfig struct {
	Summarizer SummarizerConfig `yaml:"summarizer"`
	Log        LogConfig        `yaml:"log"`
}

// Load reads a config from a specified path. If the file does not exist, returns defaults.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg := Default()
			applyEnv(cfg)
			return cfg, nil
		}
		return nil, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	applyConfigDefaults(cfg)
	applyEnv(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadDefault tries $TEXTSUM_CONFIG, then ./config.yaml, then ~/.config/textsum/config.yaml.
// If none exists, it writes defaults to ~/.config/textsum/config.yaml and returns them.
func LoadDefault() (*AppConfig, string, error) {
	if p := os.Getenv(EnvConfigPath); p != "" {
		cfg, err := Load(p)
		return cfg, p, err
	}
	cwdPath := "config.yaml"
	if _, err := os.Stat(cwdPath); err == nil {
		cfg, err := Load(cwdPath)
		return cfg, cwdPath, err
	}
	userPath, err := defaultUserConfigPath()
	if err != nil {
		return nil, "", err
	}
	if _, err := os.Stat(userPath); err == nil {
		cfg, err := Load(userPath)
		return cfg, userPath, err
	}
	cfg := Default()
	if err := Save(userPath, cfg); err != nil {
		return nil, "", err
	}
	applyEnv(cfg)
	return cfg, userPath, nil
}

// Save writes the config to the given path, creating directories as needed.
func Save(path string, cfg *AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Validate checks value ranges and enumerations.
func (c *AppConfig) Validate() error {
	if c.Summarizer.TopN <= 0 {
		return fmt.Errorf("summarizer.top_n must be positive, got %d", c.Summarizer.TopN)
	}
	if c.Summarizer.MinTokenLength < 0 {
		return fmt.Errorf("summarizer.min_token_length must not be negative, got %d", c.Summarizer.MinTokenLength)
	}
	switch strings.ToLower(c.Summarizer.Scoring) {
	case "raw", "mean":
	default:
		return fmt.Errorf("summarizer.scoring must be raw or mean, got %q", c.Summarizer.Scoring)
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be debug, info, warn or error, got %q", c.Log.Level)
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("log.format must be text or json, got %q", c.Log.Format)
	}
	return nil
}

func defaultUserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "textsum", "config.yaml"), nil
}

// Default returns the built-in configuration.
func Default() *AppConfig {
	return &AppConfig{
		Summarizer: SummarizerConfig{TopN: 2, MinTokenLength: 2, Scoring: "raw"},
		Log:        LogConfig{Level: "info", Format: "text"},
	}
}

func applyConfigDefaults(cfg *AppConfig) {
	if cfg.Summarizer.Scoring == "" {
		cfg.Summarizer.Scoring = "raw"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "text"
	}
}

func applyEnv(cfg *AppConfig) {
	if lvl := os.Getenv(EnvLogLevel); lvl != "" {
		cfg.Log.Level = lvl
	}
}
