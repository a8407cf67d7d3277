package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ConfigFileName)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.DownloadDir == "" {
		t.Error("Download directory should not be empty")
	}
	if cfg.Retries != DefaultRetries {
		t.Errorf("Expected default retries %d, got %d", DefaultRetries, cfg.Retries)
	}
	if cfg.Language != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, cfg.Language)
	}
	if cfg.LogLevel != DefaultLogLevel {
		t.Errorf("Expected default log level %s, got %s", DefaultLogLevel, cfg.LogLevel)
	}
	if !cfg.NotifyOnComplete || cfg.RevealOnComplete {
		t.Errorf("Unexpected completion defaults: notify=%v reveal=%v", cfg.NotifyOnComplete, cfg.RevealOnComplete)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Expected no error for missing file, got %v", err)
	}
	if cfg != Default() {
		t.Errorf("Expected defaults, got %+v", cfg)
	}
}

func TestLoad_EmptyPath(t *testing.T) {
	if _, err := Load(""); err == nil {
		t.Error("Expected error for empty path")
	}
}

func TestLoad_EmptyFile(t *testing.T) {
	cfg, err := Load(writeConfig(t, "  \n"))
	if err != nil {
		t.Fatalf("Expected no error for empty file, got %v", err)
	}
	if cfg != Default() {
		t.Errorf("Expected defaults, got %+v", cfg)
	}
}

func TestLoad_Values(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, `
download_dir = "`+filepath.ToSlash(dir)+`"
language = "pt"
reveal_on_complete = true
notify_on_complete = false
retries = 3
retry_delay_seconds = 5
timeout_minutes = 30
log_level = "DEBUG"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if filepath.Clean(cfg.DownloadDir) != filepath.Clean(dir) {
		t.Errorf("Expected download dir %s, got %s", dir, cfg.DownloadDir)
	}
	if cfg.Language != "pt" {
		t.Errorf("Expected language pt, got %s", cfg.Language)
	}
	if !cfg.RevealOnComplete || cfg.NotifyOnComplete {
		t.Errorf("Unexpected flags: reveal=%v notify=%v", cfg.RevealOnComplete, cfg.NotifyOnComplete)
	}
	if cfg.Retries != 3 {
		t.Errorf("Expected retries 3, got %d", cfg.Retries)
	}
	if cfg.RetryDelay() != 5*time.Second {
		t.Errorf("Expected retry delay 5s, got %v", cfg.RetryDelay())
	}
	if cfg.Timeout() != 30*time.Minute {
		t.Errorf("Expected timeout 30m, got %v", cfg.Timeout())
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("Expected log level debug, got %s", cfg.LogLevel)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, `language = "ru"`))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Language != "ru" {
		t.Errorf("Expected language ru, got %s", cfg.Language)
	}
	if cfg.Retries != DefaultRetries || !cfg.NotifyOnComplete {
		t.Errorf("Expected untouched defaults, got %+v", cfg)
	}
}

func TestLoad_InvalidTOML(t *testing.T) {
	cfg, err := Load(writeConfig(t, `retries = "many`))
	if err == nil {
		t.Fatal("Expected parse error")
	}
	if cfg != Default() {
		t.Errorf("Expected defaults on parse error, got %+v", cfg)
	}
}

func TestNormalize(t *testing.T) {
	cfg := Config{
		DownloadDir:       "  ",
		Language:          "",
		Retries:           42,
		RetryDelaySeconds: -1,
		TimeoutMinutes:    -10,
		LogLevel:          "verbose",
	}
	cfg.Normalize()

	if cfg.DownloadDir == "" {
		t.Error("Blank download dir should fall back to default")
	}
	if cfg.Language != DefaultLanguage {
		t.Errorf("Expected language %s, got %s", DefaultLanguage, cfg.Language)
	}
	if cfg.Retries != MaxRetries {
		t.Errorf("Retries should be clamped to %d, got %d", MaxRetries, cfg.Retries)
	}
	if cfg.RetryDelaySeconds != 0 {
		t.Errorf("Retry delay should be clamped to 0, got %d", cfg.RetryDelaySeconds)
	}
	if cfg.TimeoutMinutes != 0 {
		t.Errorf("Timeout should be clamped to 0, got %d", cfg.TimeoutMinutes)
	}
	if cfg.LogLevel != DefaultLogLevel {
		t.Errorf("Unknown log level should fall back to %s, got %s", DefaultLogLevel, cfg.LogLevel)
	}

	cfg = Config{Retries: -1, RetryDelaySeconds: 600}
	cfg.Normalize()
	if cfg.Retries != 0 || cfg.RetryDelaySeconds != MaxRetryDelaySeconds {
		t.Errorf("Unexpected clamping: retries=%d delay=%d", cfg.Retries, cfg.RetryDelaySeconds)
	}
}

func TestNormalize_Language(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"", DefaultLanguage},
		{" RU ", "ru"},
		{"pt", "pt"},
		{"System", "system"},
		{"klingon", DefaultLanguage},
	}

	for _, tt := range tests {
		cfg := Config{Language: tt.in}
		cfg.Normalize()
		if cfg.Language != tt.expected {
			t.Errorf("Normalize() language %q = %q, expected %q", tt.in, cfg.Language, tt.expected)
		}
	}
}

func TestNormalize_ExpandsHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	cfg := Config{DownloadDir: "~" + string(filepath.Separator) + "Videos"}
	cfg.Normalize()

	if cfg.DownloadDir != filepath.Join(home, "Videos") {
		t.Errorf("Expected %s, got %s", filepath.Join(home, "Videos"), cfg.DownloadDir)
	}
}

func TestPath(t *testing.T) {
	t.Setenv(EnvConfigPath, "/etc/yt-quick.toml")
	p, err := Path()
	if err != nil || p != "/etc/yt-quick.toml" {
		t.Errorf("Path() = %q, %v; expected env override", p, err)
	}

	t.Setenv(EnvConfigPath, "")
	p, err = Path()
	if err != nil {
		t.Skipf("no user config dir: %v", err)
	}
	if filepath.Base(p) != ConfigFileName || filepath.Base(filepath.Dir(p)) != AppDirName {
		t.Errorf("Unexpected default path %q", p)
	}
}

func TestGetLanguageOptions(t *testing.T) {
	options := GetLanguageOptions()

	expectedLangs := []string{"system", "en", "pt", "ru"}
	for _, lang := range expectedLangs {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}

	if len(options) != len(expectedLangs) {
		t.Errorf("Expected %d language options, got %d", len(expectedLangs), len(options))
	}
}
