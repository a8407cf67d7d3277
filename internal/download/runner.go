package download

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/ytget/yt-quick/internal/model"
)

// Retry defaults
const (
	DefaultRetries    = 1
	DefaultRetryDelay = 2 * time.Second
	TaskIDPrefix      = "task-"
)

// Options configures a Runner
type Options struct {
	// Retries is the number of extra attempts after a failed fetch
	Retries    int
	RetryDelay time.Duration
	// Timeout bounds a whole task including retries, 0 disables it
	Timeout  time.Duration
	Messages Messages
	Logger   *log.Logger
}

// DefaultOptions returns options with one retry and English messages
func DefaultOptions() Options {
	return Options{
		Retries:    DefaultRetries,
		RetryDelay: DefaultRetryDelay,
		Messages:   DefaultMessages(),
	}
}

// run is the runner's private view of one in-flight task
type run struct {
	task      *model.DownloadTask
	ctx       context.Context
	cancel    context.CancelFunc
	cancelled atomic.Bool
	logger    *log.Logger

	// guarded by Runner.mu
	lastFraction float64
	lastPercent  int
}

// Runner executes at most one download at a time without blocking the UI
// thread. Every UI mutation goes through Shell.RunOnUIThread.
type Runner struct {
	shell     Shell
	extractor Extractor
	opts      Options
	logger    *log.Logger

	inFlight atomic.Bool
	workers  sync.WaitGroup

	mu       sync.Mutex
	state    model.TaskState
	current  *model.DownloadTask
	active   *run
	onFinish func(model.DownloadResult)
}

// NewRunner creates a runner bound to a shell and an extractor
func NewRunner(shell Shell, extractor Extractor, opts Options) *Runner {
	if opts.Retries < 0 {
		opts.Retries = 0
	}
	if opts.RetryDelay < 0 {
		opts.RetryDelay = 0
	}
	if opts.Messages == (Messages{}) {
		opts.Messages = DefaultMessages()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	return &Runner{
		shell:     shell,
		extractor: extractor,
		opts:      opts,
		logger:    logger,
		state:     model.TaskStateIdle,
	}
}

// SetFinishHook registers a callback run on the UI thread after the terminal
// update of a succeeded or failed task.
func (r *Runner) SetFinishHook(hook func(model.DownloadResult)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onFinish = hook
}

// State returns the current task state
func (r *Runner) State() model.TaskState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Current returns a snapshot of the running or most recent task
func (r *Runner) Current() (model.DownloadTask, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.current == nil {
		return model.DownloadTask{}, false
	}
	return *r.current, true
}

// Busy reports whether a worker is in flight
func (r *Runner) Busy() bool {
	return r.inFlight.Load()
}

// Wait blocks until the current worker goroutine, if any, has exited
func (r *Runner) Wait() {
	r.workers.Wait()
}

// SubmitFromShell submits whatever URL the shell currently holds
func (r *Runner) SubmitFromShell() error {
	return r.Submit(model.DownloadRequest{URL: r.shell.SubmittedURL()})
}

// Submit validates the request and starts a background download.
// It returns a *ValidationError for a blank URL and ErrAlreadyRunning while
// another task is in flight; in both cases no worker is started.
func (r *Runner) Submit(req model.DownloadRequest) error {
	msgs := r.opts.Messages

	url := strings.TrimSpace(req.URL)
	if url == "" {
		r.logger.Warn("submit rejected", "err", ErrEmptyURL)
		// The running task owns the status line
		if !r.inFlight.Load() {
			r.post(func() {
				r.shell.SetStatus(msgs.EmptyURL, model.ToneWarning)
			})
		}
		return &ValidationError{Input: req.URL, Err: ErrEmptyURL}
	}

	if !r.inFlight.CompareAndSwap(false, true) {
		r.logger.Info("submit ignored", "url", url, "err", ErrAlreadyRunning)
		return ErrAlreadyRunning
	}

	task := &model.DownloadTask{
		ID:        generateTaskID(),
		URL:       url,
		State:     model.TaskStateRunning,
		StartedAt: time.Now(),
	}

	var ctx context.Context
	var cancel context.CancelFunc
	if r.opts.Timeout > 0 {
		ctx, cancel = context.WithTimeout(context.Background(), r.opts.Timeout)
	} else {
		ctx, cancel = context.WithCancel(context.Background())
	}

	a := &run{
		task:        task,
		ctx:         ctx,
		cancel:      cancel,
		logger:      r.logger.With("task", task.ID),
		lastPercent: -1,
	}

	r.mu.Lock()
	r.state = model.TaskStateRunning
	r.current = task
	r.active = a
	r.mu.Unlock()

	a.logger.Info("download submitted", "url", url)

	r.post(func() {
		r.shell.SetTriggerEnabled(false, msgs.Downloading)
		r.shell.SetProgress(0)
		r.shell.SetStatus(msgs.Connecting, model.ToneInfo)
	})

	r.workers.Add(1)
	go r.work(a)

	return nil
}

// Cancel stops the in-flight task. It posts a disabled "cancelling" state;
// the trigger is re-enabled only once the worker has exited and released
// the in-flight flag. It returns false when nothing is running.
func (r *Runner) Cancel() bool {
	r.mu.Lock()
	a := r.active
	active := a != nil && a.task.State.IsActive()
	r.mu.Unlock()

	if !active || !a.cancelled.CompareAndSwap(false, true) {
		return false
	}

	a.logger.Info("cancelling download")

	msgs := r.opts.Messages
	r.post(func() {
		if !r.isActive(a) {
			return
		}
		r.shell.SetStatus(msgs.Cancelling, model.ToneWarning)
		r.shell.SetTriggerEnabled(false, msgs.Cancelling)
	})
	a.cancel()
	return true
}

// isActive reports whether a is still the runner's in-flight task
func (r *Runner) isActive(a *run) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.active == a
}

// work runs on its own goroutine for the whole lifetime of a task
func (r *Runner) work(a *run) {
	defer r.workers.Done()
	defer a.cancel()

	path, err := r.fetchWithRetry(a)

	switch {
	case a.cancelled.Load():
		r.finishCancelled(a)
	case err != nil:
		r.finishFailed(a, err)
	default:
		r.finishSucceeded(a, path)
	}
}

// fetchWithRetry attempts the fetch with retry logic
func (r *Runner) fetchWithRetry(a *run) (string, error) {
	var lastErr error

	for attempt := 0; attempt <= r.opts.Retries; attempt++ {
		if attempt > 0 {
			// Backoff delay
			select {
			case <-time.After(r.opts.RetryDelay):
			case <-a.ctx.Done():
				return "", lastErr
			}

			a.logger.Info("retrying download", "attempt", attempt+1)
			r.resetProgress(a, attempt+1)
		}

		path, err := r.fetchOnce(a)
		if err == nil {
			return path, nil
		}

		lastErr = err
		a.logger.Warn("download attempt failed", "attempt", attempt+1, "err", err)

		if a.ctx.Err() != nil {
			return "", lastErr
		}
	}

	return "", lastErr
}

// fetchOnce calls the extractor once. Panics are turned into errors so that
// nothing escapes the worker.
func (r *Runner) fetchOnce(a *run) (path string, err error) {
	r.mu.Lock()
	a.task.Attempts++
	r.mu.Unlock()

	defer func() {
		if p := recover(); p != nil {
			a.logger.Error("extractor panicked", "panic", p)
			path, err = "", fmt.Errorf("extractor panic: %v", p)
		}
	}()

	var completed string
	var reported bool
	err = r.extractor.Fetch(a.ctx, a.task.URL, Callbacks{
		OnTitle: func(title string) {
			r.onTitle(a, title)
		},
		OnProgress: func(sample model.ProgressSample) {
			r.onProgress(a, sample)
		},
		OnComplete: func(p string) {
			if reported {
				a.logger.Warn("duplicate completion ignored", "path", p)
				return
			}
			reported = true
			completed = p
		},
	})
	if err != nil {
		return "", err
	}
	if completed == "" {
		return "", ErrNoOutput
	}
	return completed, nil
}

// onTitle records the resolved title and shows it
func (r *Runner) onTitle(a *run, title string) {
	title = strings.TrimSpace(title)
	if title == "" || a.cancelled.Load() {
		return
	}

	r.mu.Lock()
	a.task.Title = title
	r.mu.Unlock()

	a.logger.Info("metadata resolved", "title", title)
	msgs := r.opts.Messages
	r.post(func() {
		if a.cancelled.Load() {
			return
		}
		r.shell.SetStatus(msgs.title(title), model.ToneInfo)
	})
}

// onProgress converts a sample to a fraction and posts it. Samples without a
// total size or that would move the bar backwards are dropped.
func (r *Runner) onProgress(a *run, sample model.ProgressSample) {
	if a.cancelled.Load() {
		return
	}

	fraction, ok := sample.Fraction()
	if !ok {
		a.logger.Debug("progress update skipped", "err", ErrMalformedMetadata,
			"downloaded", sample.DownloadedBytes, "total", sample.TotalBytes)
		return
	}
	percent := sample.Percent()

	r.mu.Lock()
	if last := a.lastFraction; fraction < last {
		r.mu.Unlock()
		a.logger.Debug("progress went backwards, skipped", "fraction", fraction, "last", last)
		return
	}
	a.lastFraction = fraction
	a.task.Progress = fraction
	// One UI update per whole percent
	changed := percent > a.lastPercent
	if changed {
		a.lastPercent = percent
	}
	r.mu.Unlock()

	if !changed {
		return
	}

	a.logger.Debug("progress", "percent", percent)
	msgs := r.opts.Messages
	r.post(func() {
		if a.cancelled.Load() {
			return
		}
		r.shell.SetProgress(fraction)
		r.shell.SetStatus(msgs.progress(percent), model.ToneInfo)
	})
}

// resetProgress posts a fresh start for a retry attempt
func (r *Runner) resetProgress(a *run, attempt int) {
	r.mu.Lock()
	a.lastFraction = 0
	a.lastPercent = -1
	a.task.Progress = 0
	r.mu.Unlock()

	msgs := r.opts.Messages
	r.post(func() {
		if a.cancelled.Load() {
			return
		}
		r.shell.SetProgress(0)
		r.shell.SetStatus(msgs.retrying(attempt), model.ToneInfo)
	})
}

func (r *Runner) finishSucceeded(a *run, path string) {
	r.mu.Lock()
	a.task.OutputPath = path
	a.task.FinishedAt = time.Now()
	elapsed := a.task.Elapsed()
	r.mu.Unlock()

	a.logger.Info("download finished", "path", path, "elapsed", elapsed)

	msgs := r.opts.Messages
	r.post(func() {
		if a.cancelled.Load() {
			r.showCancelled(a)
			return
		}
		result := r.complete(a, model.TaskStateSucceeded)
		r.shell.SetStatus(msgs.saved(path), model.ToneSuccess)
		r.shell.SetProgress(0)
		r.shell.SetTriggerEnabled(true, msgs.DownloadAnother)
		r.notifyFinish(result)
	})
}

func (r *Runner) finishFailed(a *run, err error) {
	r.mu.Lock()
	attempts := a.task.Attempts
	r.mu.Unlock()

	var extErr *ExtractionError
	if !errors.As(err, &extErr) {
		extErr = &ExtractionError{URL: a.task.URL, Attempts: attempts, Err: err}
	}

	r.mu.Lock()
	a.task.LastError = extErr.Error()
	a.task.FinishedAt = time.Now()
	r.mu.Unlock()

	a.logger.Error("download failed", "attempts", attempts, "err", extErr)

	msgs := r.opts.Messages
	r.post(func() {
		if a.cancelled.Load() {
			r.showCancelled(a)
			return
		}
		result := r.complete(a, model.TaskStateFailed)
		r.shell.SetStatus(msgs.failed(extErr.Error()), model.ToneError)
		r.shell.SetProgress(0)
		r.shell.SetTriggerEnabled(true, msgs.Retry)
		r.notifyFinish(result)
	})
}

// finishCancelled posts the only update a cancelled worker makes
func (r *Runner) finishCancelled(a *run) {
	r.mu.Lock()
	a.task.FinishedAt = time.Now()
	r.mu.Unlock()

	a.logger.Info("download cancelled")
	r.post(func() {
		r.showCancelled(a)
	})
}

// showCancelled releases the task and re-enables the trigger. UI thread only.
func (r *Runner) showCancelled(a *run) {
	r.complete(a, model.TaskStateCancelled)

	msgs := r.opts.Messages
	r.shell.SetStatus(msgs.Cancelled, model.ToneWarning)
	r.shell.SetProgress(0)
	r.shell.SetTriggerEnabled(true, msgs.Retry)
}

// complete records the terminal state and releases the in-flight flag.
// A task is completed at most once.
func (r *Runner) complete(a *run, state model.TaskState) model.DownloadResult {
	r.mu.Lock()
	if a.task.State.IsFinished() {
		result := a.task.Result()
		r.mu.Unlock()
		return result
	}
	a.task.State = state
	if r.active == a {
		r.active = nil
		r.state = state
	}
	result := a.task.Result()
	r.mu.Unlock()

	r.inFlight.Store(false)
	return result
}

func (r *Runner) notifyFinish(result model.DownloadResult) {
	r.mu.Lock()
	hook := r.onFinish
	r.mu.Unlock()

	if hook != nil {
		hook(result)
	}
}

// post hands fn to the shell's UI dispatcher
func (r *Runner) post(fn func()) {
	r.shell.RunOnUIThread(fn)
}

// generateTaskID generates a unique task ID
func generateTaskID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return TaskIDPrefix + uuid.NewString()
	}
	return TaskIDPrefix + id.String()
}
