package download

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyURL is reported when the submitted URL is blank
	ErrEmptyURL = errors.New("empty URL")

	// ErrAlreadyRunning is returned by Submit while a task is in flight
	ErrAlreadyRunning = errors.New("a download is already running")

	// ErrMalformedMetadata marks a progress sample without a usable total size
	ErrMalformedMetadata = errors.New("total size unknown")

	// ErrNoOutput is used when the extractor returns without reporting a file
	ErrNoOutput = errors.New("extractor finished without reporting a file")
)

// ValidationError describes a rejected request. No task is started.
type ValidationError struct {
	Input string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid request %q: %v", e.Input, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// ExtractionError wraps any failure raised by the extractor
type ExtractionError struct {
	URL      string
	Attempts int
	Err      error
}

func (e *ExtractionError) Error() string {
	return e.Err.Error()
}

func (e *ExtractionError) Unwrap() error { return e.Err }
