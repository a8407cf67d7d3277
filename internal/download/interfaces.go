package download

import (
	"context"

	"github.com/ytget/yt-quick/internal/model"
)

// Shell is the presentation layer the runner drives. Setters must only be
// called from the UI thread; RunOnUIThread is safe from any goroutine and
// runs callbacks in the order they were posted.
type Shell interface {
	SubmittedURL() string
	SetStatus(text string, tone model.Tone)
	SetProgress(fraction float64)
	SetTriggerEnabled(enabled bool, label string)
	RunOnUIThread(fn func())
}

// Callbacks are invoked by an Extractor on the calling goroutine.
// OnTitle fires once metadata is resolved, before any progress.
type Callbacks struct {
	OnTitle    func(title string)
	OnProgress func(model.ProgressSample)
	OnComplete func(path string)
}

// Extractor resolves a video URL and downloads its best combined
// audio/video stream. Fetch blocks until the file is written or an error
// occurs and calls OnComplete at most once, before returning nil.
type Extractor interface {
	Fetch(ctx context.Context, url string, cb Callbacks) error
}
