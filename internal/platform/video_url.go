package platform

import (
	"errors"
	"fmt"
	"net/url"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// Output naming
const (
	OutputExtension    = ".mp4"
	FallbackFilePrefix = "video-"
)

var (
	// ErrUnsupportedURL is returned for URLs that are not http(s)
	ErrUnsupportedURL = errors.New("URL must start with http:// or https://")

	// ErrNoVideoID is returned when no video ID can be found in the URL
	ErrNoVideoID = errors.New("no video ID in URL")
)

// YouTube video IDs are 11 characters of [A-Za-z0-9_-]
var videoIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)

// Path prefixes that carry the video ID as the next segment
var videoPathPrefixes = []string{"/shorts/", "/embed/", "/live/", "/v/"}

// ValidateVideoURL checks that the input parses as an absolute http(s) URL
func ValidateVideoURL(raw string) (*url.URL, error) {
	parsed, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return nil, fmt.Errorf("invalid URL: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, ErrUnsupportedURL
	}
	if strings.TrimSpace(parsed.Host) == "" {
		return nil, fmt.Errorf("invalid URL %q: missing host", raw)
	}
	return parsed, nil
}

// VideoID extracts the video ID from watch, youtu.be, shorts, embed and live URLs
func VideoID(raw string) (string, error) {
	parsed, err := ValidateVideoURL(raw)
	if err != nil {
		return "", err
	}

	host := strings.TrimPrefix(strings.ToLower(parsed.Hostname()), "www.")
	var candidate string

	switch {
	case host == "youtu.be":
		candidate = strings.Trim(parsed.Path, "/")
	case parsed.Query().Get("v") != "":
		candidate = parsed.Query().Get("v")
	default:
		for _, prefix := range videoPathPrefixes {
			if rest, ok := strings.CutPrefix(parsed.Path, prefix); ok {
				candidate, _, _ = strings.Cut(rest, "/")
				break
			}
		}
	}

	if !videoIDPattern.MatchString(candidate) {
		return "", ErrNoVideoID
	}
	return candidate, nil
}

// OutputPathFor returns the file the video at raw should be written to.
// URLs without a recognizable ID get a unique fallback name.
func OutputPathFor(dir, raw string) string {
	name, err := VideoID(raw)
	if err != nil {
		name = FallbackFilePrefix + uuid.NewString()
	}
	return filepath.Join(dir, name+OutputExtension)
}
