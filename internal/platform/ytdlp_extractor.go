package platform

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/gofrs/flock"
	"github.com/h2non/filetype"
	"github.com/ytget/ytdlp/v2"
	"github.com/ytget/ytdlp/v2/downloader"

	"github.com/ytget/yt-quick/internal/download"
	"github.com/ytget/yt-quick/internal/model"
)

const (
	// LockSuffix is appended to the output path for the per-file lock
	LockSuffix = ".lock"
	// PartSuffix marks the file a transfer writes before it is verified
	PartSuffix = ".part"
	// transferSuffix is the library's own scratch file next to its target
	transferSuffix = ".tmp"
)

var (
	// ErrOutputBusy is returned when another process is writing the same file
	ErrOutputBusy = errors.New("output file is being written by another process")
	// ErrNotVideo is returned when the written file is not a video container
	ErrNotVideo = errors.New("downloaded file is not a video")
)

// downloadFunc resolves url and transfers the stream into outputPath
type downloadFunc func(ctx context.Context, url, outputPath string, onTitle func(string), onProgress func(model.ProgressSample)) error

// YTDLPExtractor downloads the best progressive (video+audio) stream of a
// YouTube video using the ytdlp library.
type YTDLPExtractor struct {
	outputDir string
	logger    *log.Logger
	download  downloadFunc
}

// NewYTDLPExtractor creates an extractor writing into outputDir
func NewYTDLPExtractor(outputDir string, logger *log.Logger) *YTDLPExtractor {
	if logger == nil {
		logger = log.Default()
	}
	return &YTDLPExtractor{
		outputDir: outputDir,
		logger:    logger,
		download:  ytdlpDownload(logger),
	}
}

// OutputDir returns the directory files are written to
func (e *YTDLPExtractor) OutputDir() string {
	return e.outputDir
}

// Fetch implements download.Extractor
func (e *YTDLPExtractor) Fetch(ctx context.Context, rawURL string, cb download.Callbacks) error {
	if _, err := ValidateVideoURL(rawURL); err != nil {
		return err
	}
	if err := CreateDirectoryIfNotExists(e.outputDir); err != nil {
		return fmt.Errorf("failed to create download directory: %w", err)
	}

	outputPath := OutputPathFor(e.outputDir, rawURL)

	lock := flock.New(outputPath + LockSuffix)
	locked, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("failed to lock output file: %w", err)
	}
	if !locked {
		return ErrOutputBusy
	}
	// The lock file stays on disk so every process locks the same inode
	defer func() {
		if err := lock.Unlock(); err != nil {
			e.logger.Warn("failed to release output lock", "path", lock.Path(), "err", err)
		}
	}()

	// An existing file at outputPath is only replaced by a verified one
	partPath := outputPath + PartSuffix
	e.removePartial(partPath)

	e.logger.Debug("starting transfer", "url", rawURL, "output", outputPath)

	onTitle := func(title string) {
		if cb.OnTitle != nil {
			cb.OnTitle(title)
		}
	}
	onProgress := func(sample model.ProgressSample) {
		if cb.OnProgress != nil {
			cb.OnProgress(sample)
		}
	}

	err = e.download(ctx, rawURL, partPath, onTitle, onProgress)
	if err == nil {
		err = verifyVideo(partPath)
	}
	if err == nil {
		if err = os.Rename(partPath, outputPath); err != nil {
			err = fmt.Errorf("failed to move download into place: %w", err)
		}
	}
	if err != nil {
		// Partial files are never resumed
		e.removePartial(partPath)
		return err
	}

	if cb.OnComplete != nil {
		cb.OnComplete(outputPath)
	}
	return nil
}

// removePartial deletes partPath and the library's scratch file beside it
func (e *YTDLPExtractor) removePartial(partPath string) {
	for _, path := range []string{partPath, partPath + transferSuffix} {
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			e.logger.Warn("failed to remove partial file", "path", path, "err", err)
		}
	}
}

// verifyVideo sniffs the magic bytes of path
func verifyVideo(path string) error {
	kind, err := filetype.MatchFile(path)
	if err != nil {
		return fmt.Errorf("failed to inspect downloaded file: %w", err)
	}
	if kind.MIME.Type != "video" {
		return fmt.Errorf("%w: detected %q", ErrNotVideo, kind.MIME.Value)
	}
	return nil
}

// ytdlpDownload returns the library-backed transfer. Metadata is resolved
// first so the title is known before the first byte arrives.
func ytdlpDownload(logger *log.Logger) downloadFunc {
	return func(ctx context.Context, url, outputPath string, onTitle func(string), onProgress func(model.ProgressSample)) error {
		streamURL, info, err := ytdlp.New().ResolveURL(ctx, url)
		if err != nil {
			return err
		}
		if info != nil {
			logger.Info("video resolved", "id", info.ID, "title", info.Title)
			onTitle(info.Title)
		}

		dl := downloader.New(nil, func(p downloader.Progress) {
			onProgress(model.ProgressSample{
				DownloadedBytes: p.DownloadedSize,
				TotalBytes:      p.TotalSize,
			})
		}, 0)
		if err := dl.Download(ctx, streamURL, outputPath); err != nil {
			return err
		}

		logger.Info("video downloaded", "path", outputPath)
		return nil
	}
}
