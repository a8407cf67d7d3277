package model

import (
	"fmt"
	"strings"
	"time"
)

// DownloadRequest is what the UI hands to the runner on submit
type DownloadRequest struct {
	URL string
}

// ProgressSample is one progress report from the extractor
type ProgressSample struct {
	DownloadedBytes int64
	TotalBytes      int64
}

// Fraction returns DownloadedBytes/TotalBytes clamped to [0,1].
// ok is false when the total size is unknown.
func (p ProgressSample) Fraction() (fraction float64, ok bool) {
	if p.TotalBytes <= 0 {
		return 0, false
	}
	fraction = float64(p.DownloadedBytes) / float64(p.TotalBytes)
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	return fraction, true
}

// Percent returns the completed percentage, 0 when the total is unknown
func (p ProgressSample) Percent() int {
	switch {
	case p.TotalBytes <= 0, p.DownloadedBytes <= 0:
		return 0
	case p.DownloadedBytes >= p.TotalBytes:
		return 100
	}
	return int(p.DownloadedBytes * 100 / p.TotalBytes)
}

// DownloadResult is the terminal outcome of a task
type DownloadResult struct {
	TaskID  string
	State   TaskState
	Name    string // video title or file name
	Path    string // set on success
	Message string // set on failure
}

// DownloadTask represents a single download task
type DownloadTask struct {
	ID         string
	URL        string
	Title      string // known once metadata is resolved
	State      TaskState
	Progress   float64   // 0.0 to 1.0
	Attempts   int       // extractor invocations so far
	OutputPath string    // path to downloaded file
	LastError  string    // last error message if any
	StartedAt  time.Time // when download started
	FinishedAt time.Time // when download finished
}

// Result builds the terminal result for the task
func (dt *DownloadTask) Result() DownloadResult {
	return DownloadResult{
		TaskID:  dt.ID,
		State:   dt.State,
		Name:    dt.DisplayName(),
		Path:    dt.OutputPath,
		Message: dt.LastError,
	}
}

// Elapsed returns the run time formatted as mm:ss or hh:mm:ss
func (dt *DownloadTask) Elapsed() string {
	if dt.StartedAt.IsZero() {
		return "—"
	}
	end := dt.FinishedAt
	if end.IsZero() {
		end = time.Now()
	}
	secs := int(end.Sub(dt.StartedAt).Seconds())
	if secs < 0 {
		secs = 0
	}

	hours := secs / 3600
	minutes := (secs % 3600) / 60
	seconds := secs % 60
	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

// DisplayName returns the video title, else the output file name, else the URL
func (dt *DownloadTask) DisplayName() string {
	if title := strings.TrimSpace(dt.Title); title != "" {
		return title
	}
	if dt.OutputPath != "" {
		// Support both / and \ separators
		parts := strings.FieldsFunc(dt.OutputPath, func(r rune) bool {
			return r == '/' || r == '\\'
		})
		if len(parts) > 0 {
			return parts[len(parts)-1]
		}
	}
	return dt.URL
}
