package ui

import (
	"strings"

	"github.com/jeandeaual/go-locale"

	"github.com/ytget/yt-quick/internal/download"
)

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeyHeading           = "heading"
	KeyEnterURL          = "enter_url"
	KeyDownload          = "download"
	KeyDownloading       = "downloading"
	KeyStop              = "stop"
	KeyPaste             = "paste"
	KeyIdleHint          = "idle_hint"
	KeyPleaseEnterURL    = "please_enter_url"
	KeyConnecting        = "connecting"
	KeyTitleFormat       = "title_format"
	KeyProgressFormat    = "progress_format"
	KeyRetryingFormat    = "retrying_format"
	KeySavedFormat       = "saved_format"
	KeyErrorFormat       = "error_format"
	KeyCancelling        = "cancelling"
	KeyCancelled         = "cancelled"
	KeyDownloadAnother   = "download_another"
	KeyRetry             = "retry"
	KeyDownloadCompleted = "download_completed"
	KeyDownloadFailed    = "download_failed"
	KeyNoURLInClipboard  = "no_url_in_clipboard"
	KeyErrorOpeningFile  = "error_opening_file"
)

// LanguageSystem selects the language reported by the OS
const LanguageSystem = "system"

// systemLanguage is replaced in tests
var systemLanguage = locale.GetLanguage

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language. Unknown codes leave it unchanged.
func (l *Localization) SetLanguage(lang string) {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if lang == LanguageSystem {
		detected, err := systemLanguage()
		if err != nil {
			return
		}
		lang = normalizeLanguage(detected)
	}

	if _, exists := l.GetAvailableLanguages()[lang]; exists {
		l.currentLanguage = lang
	}
}

// normalizeLanguage turns "pt-BR" or "ru_RU" into "pt" or "ru"
func normalizeLanguage(tag string) string {
	tag = strings.ToLower(strings.TrimSpace(tag))
	if i := strings.IndexAny(tag, "-_."); i >= 0 {
		tag = tag[:i]
	}
	return tag
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// Messages returns the runner texts in the current language
func (l *Localization) Messages() download.Messages {
	return download.Messages{
		EmptyURL:        l.GetText(KeyPleaseEnterURL),
		Connecting:      l.GetText(KeyConnecting),
		Downloading:     l.GetText(KeyDownloading),
		TitleFormat:     l.GetText(KeyTitleFormat),
		ProgressFormat:  l.GetText(KeyProgressFormat),
		RetryingFormat:  l.GetText(KeyRetryingFormat),
		SavedFormat:     l.GetText(KeySavedFormat),
		ErrorFormat:     l.GetText(KeyErrorFormat),
		Cancelling:      l.GetText(KeyCancelling),
		Cancelled:       l.GetText(KeyCancelled),
		DownloadAnother: l.GetText(KeyDownloadAnother),
		Retry:           l.GetText(KeyRetry),
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "YT Quick",
		KeyHeading:           "YouTube Video Downloader",
		KeyEnterURL:          "Paste a YouTube link (https://youtube.com/watch?v=...)",
		KeyDownload:          "Download",
		KeyDownloading:       "Downloading...",
		KeyStop:              "Stop",
		KeyPaste:             "Paste",
		KeyIdleHint:          "Paste a link and press Download.",
		KeyPleaseEnterURL:    "Oops! Looks like you forgot to paste the link.",
		KeyConnecting:        "Connecting to YouTube...",
		KeyTitleFormat:       "Downloading: %s",
		KeyProgressFormat:    "Progress: %d%%",
		KeyRetryingFormat:    "Retrying (attempt %d)...",
		KeySavedFormat:       "Success! Video saved to:\n%s",
		KeyErrorFormat:       "Something went wrong... Error: %s",
		KeyCancelling:        "Cancelling...",
		KeyCancelled:         "Download cancelled.",
		KeyDownloadAnother:   "Download another video",
		KeyRetry:             "Try again",
		KeyDownloadCompleted: "Download completed",
		KeyDownloadFailed:    "Download failed",
		KeyNoURLInClipboard:  "The clipboard does not contain a link.",
		KeyErrorOpeningFile:  "Error opening file",
	}

	l.texts["ru"] = map[string]string{
		KeyAppTitle:          "YT Quick",
		KeyHeading:           "Загрузчик видео с YouTube",
		KeyEnterURL:          "Вставьте ссылку YouTube (https://youtube.com/watch?v=...)",
		KeyDownload:          "Скачать",
		KeyDownloading:       "Загрузка...",
		KeyStop:              "Стоп",
		KeyPaste:             "Вставить",
		KeyIdleHint:          "Вставьте ссылку и нажмите «Скачать».",
		KeyPleaseEnterURL:    "Кажется, вы забыли вставить ссылку.",
		KeyConnecting:        "Подключение к YouTube...",
		KeyTitleFormat:       "Загрузка: %s",
		KeyProgressFormat:    "Прогресс: %d%%",
		KeyRetryingFormat:    "Повторная попытка (%d)...",
		KeySavedFormat:       "Готово! Видео сохранено:\n%s",
		KeyErrorFormat:       "Что-то пошло не так... Ошибка: %s",
		KeyCancelling:        "Отмена...",
		KeyCancelled:         "Загрузка отменена.",
		KeyDownloadAnother:   "Скачать другое видео",
		KeyRetry:             "Попробовать снова",
		KeyDownloadCompleted: "Загрузка завершена",
		KeyDownloadFailed:    "Ошибка загрузки",
		KeyNoURLInClipboard:  "В буфере обмена нет ссылки.",
		KeyErrorOpeningFile:  "Ошибка открытия файла",
	}

	l.texts["pt"] = map[string]string{
		KeyAppTitle:          "YT Quick",
		KeyHeading:           "Baixador de Vídeos do YouTube",
		KeyEnterURL:          "Cole um link do YouTube (https://youtube.com/watch?v=...)",
		KeyDownload:          "Baixar",
		KeyDownloading:       "Baixando...",
		KeyStop:              "Parar",
		KeyPaste:             "Colar",
		KeyIdleHint:          "Cole um link e pressione Baixar.",
		KeyPleaseEnterURL:    "Ops! Parece que você esqueceu de colar o link.",
		KeyConnecting:        "Conectando ao YouTube...",
		KeyTitleFormat:       "Baixando: %s",
		KeyProgressFormat:    "Progresso: %d%%",
		KeyRetryingFormat:    "Tentando novamente (tentativa %d)...",
		KeySavedFormat:       "Sucesso! Vídeo salvo em:\n%s",
		KeyErrorFormat:       "Algo deu errado... Erro: %s",
		KeyCancelling:        "Cancelando...",
		KeyCancelled:         "Download cancelado.",
		KeyDownloadAnother:   "Baixar outro vídeo",
		KeyRetry:             "Tentar novamente",
		KeyDownloadCompleted: "Download concluído",
		KeyDownloadFailed:    "Falha no download",
		KeyNoURLInClipboard:  "A área de transferência não contém um link.",
		KeyErrorOpeningFile:  "Erro ao abrir arquivo",
	}
}
