package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/ytget/yt-quick/internal/platform"
)

// Environment and file locations
const (
	EnvConfigPath  = "YTQUICK_CONFIG"
	AppDirName     = "yt-quick"
	ConfigFileName = "config.toml"
)

// Default values
const (
	DefaultLanguage          = "system"
	DefaultRetries           = 1
	DefaultRetryDelaySeconds = 2
	DefaultTimeoutMinutes    = 0
	DefaultLogLevel          = "info"
	DefaultRevealOnComplete  = false
	DefaultNotifyOnComplete  = true
	FallbackDownloadDir      = "downloads"
)

// Limits applied during normalization
const (
	MaxRetries           = 5
	MaxRetryDelaySeconds = 60
)

var validLogLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

// Config is the read-only application configuration. The app never writes
// it back; users edit the TOML file by hand.
type Config struct {
	DownloadDir       string `toml:"download_dir"`
	Language          string `toml:"language"`
	RevealOnComplete  bool   `toml:"reveal_on_complete"`
	NotifyOnComplete  bool   `toml:"notify_on_complete"`
	Retries           int    `toml:"retries"`
	RetryDelaySeconds int    `toml:"retry_delay_seconds"`
	TimeoutMinutes    int    `toml:"timeout_minutes"`
	LogLevel          string `toml:"log_level"`
}

// Default returns the configuration used when no file exists
func Default() Config {
	return Config{
		DownloadDir:       defaultDownloadDir(),
		Language:          DefaultLanguage,
		RevealOnComplete:  DefaultRevealOnComplete,
		NotifyOnComplete:  DefaultNotifyOnComplete,
		Retries:           DefaultRetries,
		RetryDelaySeconds: DefaultRetryDelaySeconds,
		TimeoutMinutes:    DefaultTimeoutMinutes,
		LogLevel:          DefaultLogLevel,
	}
}

func defaultDownloadDir() string {
	dir, err := platform.GetHomeDownloadsDir()
	if err != nil {
		return filepath.Join(os.TempDir(), FallbackDownloadDir)
	}
	return dir
}

// Path returns the config file location: $YTQUICK_CONFIG, or
// <user config dir>/yt-quick/config.toml
func Path() (string, error) {
	if p := strings.TrimSpace(os.Getenv(EnvConfigPath)); p != "" {
		return p, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate config dir: %w", err)
	}
	return filepath.Join(dir, AppDirName, ConfigFileName), nil
}

// Load reads the TOML file at path over the defaults. A missing or empty
// file yields the defaults with no error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, errors.New("empty config path")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return cfg, nil
	}

	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return Default(), fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.Normalize()
	return cfg, nil
}

// Normalize clamps numeric values and fills blanks with defaults
func (c *Config) Normalize() {
	c.DownloadDir = strings.TrimSpace(c.DownloadDir)
	if c.DownloadDir == "" {
		c.DownloadDir = defaultDownloadDir()
	} else if strings.HasPrefix(c.DownloadDir, "~"+string(filepath.Separator)) || c.DownloadDir == "~" {
		if home, err := os.UserHomeDir(); err == nil {
			c.DownloadDir = filepath.Join(home, strings.TrimPrefix(c.DownloadDir, "~"))
		}
	}

	c.Language = strings.ToLower(strings.TrimSpace(c.Language))
	if _, ok := GetLanguageOptions()[c.Language]; !ok {
		c.Language = DefaultLanguage
	}

	if c.Retries < 0 {
		c.Retries = 0
	}
	if c.Retries > MaxRetries {
		c.Retries = MaxRetries
	}

	if c.RetryDelaySeconds < 0 {
		c.RetryDelaySeconds = 0
	}
	if c.RetryDelaySeconds > MaxRetryDelaySeconds {
		c.RetryDelaySeconds = MaxRetryDelaySeconds
	}

	if c.TimeoutMinutes < 0 {
		c.TimeoutMinutes = 0
	}

	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if !validLogLevels[c.LogLevel] {
		c.LogLevel = DefaultLogLevel
	}
}

// RetryDelay returns the delay between attempts
func (c Config) RetryDelay() time.Duration {
	return time.Duration(c.RetryDelaySeconds) * time.Second
}

// Timeout returns the per-task timeout, 0 meaning none
func (c Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutMinutes) * time.Minute
}

// GetLanguageOptions returns available language options
func GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"pt":     "Português",
		"ru":     "Русский",
	}
}
