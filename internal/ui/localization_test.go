package ui

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestLocalization_Defaults(t *testing.T) {
	l := NewLocalization()

	if l.GetCurrentLanguage() != "en" {
		t.Errorf("Expected default language en, got %s", l.GetCurrentLanguage())
	}
	if l.GetText(KeyDownload) != "Download" {
		t.Errorf("Unexpected download text %q", l.GetText(KeyDownload))
	}
	if l.GetText("missing_key") != "missing_key" {
		t.Error("Unknown keys should fall back to the key itself")
	}
}

func TestLocalization_SetLanguage(t *testing.T) {
	tests := []struct {
		lang     string
		expected string
		download string
	}{
		{"ru", "ru", "Скачать"},
		{"PT", "pt", "Baixar"},
		{"de", "en", "Download"},
		{"", "en", "Download"},
	}

	for _, tt := range tests {
		t.Run(tt.lang, func(t *testing.T) {
			l := NewLocalization()
			l.SetLanguage(tt.lang)

			if l.GetCurrentLanguage() != tt.expected {
				t.Errorf("Expected language %s, got %s", tt.expected, l.GetCurrentLanguage())
			}
			if l.GetText(KeyDownload) != tt.download {
				t.Errorf("Expected %q, got %q", tt.download, l.GetText(KeyDownload))
			}
		})
	}
}

func TestLocalization_SystemLanguage(t *testing.T) {
	orig := systemLanguage
	t.Cleanup(func() { systemLanguage = orig })

	systemLanguage = func() (string, error) { return "pt-BR", nil }
	l := NewLocalization()
	l.SetLanguage(LanguageSystem)
	if l.GetCurrentLanguage() != "pt" {
		t.Errorf("Expected pt from system locale, got %s", l.GetCurrentLanguage())
	}

	systemLanguage = func() (string, error) { return "", errors.New("no locale") }
	l = NewLocalization()
	l.SetLanguage(LanguageSystem)
	if l.GetCurrentLanguage() != "en" {
		t.Errorf("Expected en when detection fails, got %s", l.GetCurrentLanguage())
	}
}

func TestNormalizeLanguage(t *testing.T) {
	tests := map[string]string{
		"en":          "en",
		"ru_RU":       "ru",
		"pt-BR":       "pt",
		"en_US.UTF-8": "en",
		" RU ":        "ru",
	}
	for in, want := range tests {
		if got := normalizeLanguage(in); got != want {
			t.Errorf("normalizeLanguage(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestLocalization_AllLanguagesComplete(t *testing.T) {
	l := NewLocalization()
	english := l.texts["en"]

	for code := range l.GetAvailableLanguages() {
		texts, ok := l.texts[code]
		if !ok {
			t.Errorf("Language %s has no texts", code)
			continue
		}
		for key := range english {
			if _, ok := texts[key]; !ok {
				t.Errorf("Language %s is missing key %s", code, key)
			}
		}
	}
}

func TestLocalization_Messages(t *testing.T) {
	for code := range NewLocalization().GetAvailableLanguages() {
		t.Run(code, func(t *testing.T) {
			l := NewLocalization()
			l.SetLanguage(code)
			m := l.Messages()

			if m.EmptyURL == "" || m.Connecting == "" || m.Cancelling == "" || m.Cancelled == "" {
				t.Errorf("Messages have blank fields: %+v", m)
			}
			if got := fmt.Sprintf(m.ProgressFormat, 42); !strings.Contains(got, "42%") {
				t.Errorf("Progress format %q renders %q", m.ProgressFormat, got)
			}
			if got := fmt.Sprintf(m.TitleFormat, "Clip"); !strings.Contains(got, "Clip") {
				t.Errorf("Title format %q renders %q", m.TitleFormat, got)
			}
			if got := fmt.Sprintf(m.RetryingFormat, 2); !strings.Contains(got, "2") {
				t.Errorf("Retrying format %q renders %q", m.RetryingFormat, got)
			}
			if got := fmt.Sprintf(m.SavedFormat, "/tmp/v.mp4"); !strings.Contains(got, "/tmp/v.mp4") {
				t.Errorf("Saved format %q renders %q", m.SavedFormat, got)
			}
			if got := fmt.Sprintf(m.ErrorFormat, "boom"); !strings.Contains(got, "boom") {
				t.Errorf("Error format %q renders %q", m.ErrorFormat, got)
			}
			if m.DownloadAnother == m.Retry {
				t.Error("Success and failure labels must differ")
			}
		})
	}
}
