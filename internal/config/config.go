package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Environment variables that override values from config.yaml
const (
	EnvPlatform  = "LYRA_PLATFORM"
	EnvMode      = "LYRA_MODE"
	EnvLogLevel  = "LYRA_LOG_LEVEL"
	EnvConfigDir = "LYRA_CONFIG_DIR"
)

type Config struct {
	Platform       string `yaml:"platform"`
	Mode           string `yaml:"mode"`
	Verbose        bool   `yaml:"verbose,omitempty"`
	ShowTechniques bool   `yaml:"show_techniques,omitempty"`
	LogLevel       string `yaml:"log_level,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		Platform: PlatformOther.String(),
		Mode:     ModeBasic.String(),
		LogLevel: "info",
	}
}

func ConfigDir() (string, error) {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "lyra"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

func Exists() bool {
	path, err := ConfigPath()
	if err != nil {
		return false
	}
	_, err = os.Stat(path)
	return err == nil
}

// Load reads config.yaml. A missing file yields (nil, nil) so callers can
// fall back to DefaultConfig.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return &cfg, nil
}

// LoadOrDefault returns the saved config, or the defaults when none exists,
// with environment overrides applied in both cases.
func LoadOrDefault() (*Config, error) {
	cfg, err := Load()
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}
	cfg.applyEnvOverrides()
	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	if v := strings.TrimSpace(os.Getenv(EnvPlatform)); v != "" {
		c.Platform = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvMode)); v != "" {
		c.Mode = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		c.LogLevel = v
	}
}

func (c *Config) Save() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	path, err := ConfigPath()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0600)
}

// TargetPlatform returns the configured platform, degrading to Other.
func (c *Config) TargetPlatform() Platform {
	return ParsePlatform(c.Platform)
}

// DefaultModeName returns the configured mode string. "auto" is kept as-is so
// the optimizer can resolve it per prompt.
func (c *Config) DefaultModeName() string {
	if IsAutoMode(c.Mode) {
		return ModeAuto
	}
	return ParseMode(c.Mode).String()
}
