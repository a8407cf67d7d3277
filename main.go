package main

import (
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/charmbracelet/log"

	"github.com/ytget/yt-quick/internal/config"
	"github.com/ytget/yt-quick/internal/download"
	"github.com/ytget/yt-quick/internal/logging"
	"github.com/ytget/yt-quick/internal/model"
	"github.com/ytget/yt-quick/internal/platform"
	"github.com/ytget/yt-quick/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.yt-quick"
	AppName = "YT Quick"
)

func main() {
	cfg, cfgErr := loadConfig()

	logger := logging.New(os.Stderr, cfg.LogLevel)
	logger.Info("starting", "app", AppName, "version", version)
	if cfgErr != nil {
		logger.Warn("using default configuration", "err", cfgErr)
	}

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewQuickTheme())

	localization := ui.NewLocalization()
	localization.SetLanguage(cfg.Language)

	myWindow := myApp.NewWindow(AppName)
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	if err := platform.CreateDirectoryIfNotExists(cfg.DownloadDir); err != nil {
		logger.Error("failed to ensure downloads dir", "dir", cfg.DownloadDir, "err", err)
	}

	extractor := platform.NewYTDLPExtractor(cfg.DownloadDir, logger.WithPrefix("ytdlp"))
	mainWindow := ui.NewMainWindow(myWindow, localization, logger)

	runner := download.NewRunner(mainWindow, extractor, download.Options{
		Retries:    cfg.Retries,
		RetryDelay: cfg.RetryDelay(),
		Timeout:    cfg.Timeout(),
		Messages:   localization.Messages(),
		Logger:     logger,
	})
	runner.SetFinishHook(finishHook(myApp, localization, cfg, logger))

	mainWindow.SetOnSubmit(func() {
		if err := runner.SubmitFromShell(); err != nil {
			logger.Debug("submit not started", "err", err)
		}
	})
	mainWindow.SetOnStop(func() {
		runner.Cancel()
	})

	myWindow.SetOnClosed(func() {
		if runner.Cancel() {
			logger.Info("window closed during download")
		}
	})

	myWindow.ShowAndRun()
}

// loadConfig reads the config file, falling back to defaults on any error
func loadConfig() (config.Config, error) {
	path, err := config.Path()
	if err != nil {
		return config.Default(), err
	}
	return config.Load(path)
}

// finishHook sends a desktop notification and optionally reveals the file
// once a task reaches a terminal state
func finishHook(a fyne.App, l *ui.Localization, cfg config.Config, logger *log.Logger) func(model.DownloadResult) {
	return func(result model.DownloadResult) {
		switch result.State {
		case model.TaskStateSucceeded:
			if cfg.NotifyOnComplete {
				a.SendNotification(fyne.NewNotification(l.GetText(ui.KeyDownloadCompleted), result.Name))
			}
			if cfg.RevealOnComplete {
				if err := platform.OpenFileInManager(result.Path); err != nil {
					logger.Warn(l.GetText(ui.KeyErrorOpeningFile), "path", result.Path, "err", err)
				}
			}
		case model.TaskStateFailed:
			if cfg.NotifyOnComplete {
				a.SendNotification(fyne.NewNotification(l.GetText(ui.KeyDownloadFailed), result.Message))
			}
		}
	}
}

