package platform

import (
	"errors"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
)

// maxURLLength guards against pasting huge blobs into the entry
const maxURLLength = 2048

// ErrNoURLInClipboard is returned when the clipboard holds no usable URL
var ErrNoURLInClipboard = errors.New("clipboard does not contain a valid URL")

// readClipboard is replaced in tests
var readClipboard = clipboard.ReadAll

// ExtractURL returns text as a URL if it is a single http(s) URL, else ""
func ExtractURL(text string) string {
	text = strings.TrimSpace(text)
	if text == "" || len(text) > maxURLLength || strings.ContainsAny(text, "\n\r") {
		return ""
	}

	parsed, err := ValidateVideoURL(text)
	if err != nil {
		return ""
	}
	return parsed.String()
}

// ReadClipboardURL reads the system clipboard and returns the URL it holds
func ReadClipboardURL() (string, error) {
	text, err := readClipboard()
	if err != nil {
		return "", fmt.Errorf("failed to read clipboard: %w", err)
	}

	u := ExtractURL(text)
	if u == "" {
		return "", ErrNoURLInClipboard
	}
	return u, nil
}
