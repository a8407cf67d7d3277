package ui

import (
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/charmbracelet/log"

	"github.com/ytget/yt-quick/internal/download"
	"github.com/ytget/yt-quick/internal/model"
	"github.com/ytget/yt-quick/internal/platform"
)

// MainWindow is the single application window. It implements download.Shell.
type MainWindow struct {
	window       fyne.Window
	localization *Localization
	logger       *log.Logger

	heading     *widget.Label
	urlEntry    *widget.Entry
	pasteBtn    *widget.Button
	triggerBtn  *widget.Button
	stopBtn     *widget.Button
	statusLabel *widget.Label
	progressBar *widget.ProgressBar

	tone model.Tone

	onSubmit func()
	onStop   func()

	readClipboard func() (string, error)
	dispatch      func(func())
}

var _ download.Shell = (*MainWindow)(nil)

// NewMainWindow builds the widgets and sets them as the window content
func NewMainWindow(window fyne.Window, localization *Localization, logger *log.Logger) *MainWindow {
	if logger == nil {
		logger = log.Default()
	}

	w := &MainWindow{
		window:        window,
		localization:  localization,
		logger:        logger,
		readClipboard: platform.ReadClipboardURL,
		dispatch:      fyne.Do,
	}

	window.SetTitle(localization.GetText(KeyAppTitle))
	w.setupUI()
	return w
}

// setupUI creates and arranges all UI components
func (w *MainWindow) setupUI() {
	w.heading = widget.NewLabelWithStyle(w.localization.GetText(KeyHeading), fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	w.heading.SizeName = theme.SizeNameHeadingText

	w.urlEntry = widget.NewEntry()
	w.urlEntry.SetPlaceHolder(w.localization.GetText(KeyEnterURL))
	// Enter in the URL field behaves like the trigger button
	w.urlEntry.OnSubmitted = func(string) {
		w.submit()
	}

	w.pasteBtn = widget.NewButton(IconPaste+" "+w.localization.GetText(KeyPaste), w.onPaste)
	w.pasteBtn.Importance = widget.LowImportance

	w.triggerBtn = widget.NewButton(w.localization.GetText(KeyDownload), w.submit)
	w.triggerBtn.Importance = widget.HighImportance

	w.stopBtn = widget.NewButton(IconStop+" "+w.localization.GetText(KeyStop), w.stop)
	w.stopBtn.Importance = widget.DangerImportance
	w.stopBtn.Hide()

	w.statusLabel = widget.NewLabel(w.localization.GetText(KeyIdleHint))
	w.statusLabel.Wrapping = fyne.TextWrapWord
	w.tone = model.ToneInfo

	w.progressBar = widget.NewProgressBar()

	urlRow := container.NewBorder(nil, nil, nil, w.pasteBtn, w.urlEntry)
	buttons := container.NewHBox(w.triggerBtn, w.stopBtn)

	content := container.NewVBox(
		w.heading,
		urlRow,
		container.NewCenter(buttons),
		w.progressBar,
		w.statusLabel,
	)

	w.window.SetContent(container.NewPadded(content))
}

// SetOnSubmit sets the action for the trigger button and Enter in the entry
func (w *MainWindow) SetOnSubmit(fn func()) {
	w.onSubmit = fn
}

// SetOnStop sets the action for the stop button
func (w *MainWindow) SetOnStop(fn func()) {
	w.onStop = fn
}

func (w *MainWindow) submit() {
	if w.triggerBtn.Disabled() || w.onSubmit == nil {
		return
	}
	w.onSubmit()
}

func (w *MainWindow) stop() {
	if w.onStop != nil {
		w.onStop()
	}
}

// onPaste replaces the entry text with the URL on the clipboard
func (w *MainWindow) onPaste() {
	text, err := w.readClipboard()
	if err != nil {
		w.logger.Debug("paste rejected", "err", err)
		w.SetStatus(w.localization.GetText(KeyNoURLInClipboard), model.ToneWarning)
		return
	}
	w.urlEntry.SetText(text)
}

// SubmittedURL returns the entry text as typed
func (w *MainWindow) SubmittedURL() string {
	return w.urlEntry.Text
}

// SetStatus shows text in the status line colored by tone
func (w *MainWindow) SetStatus(text string, tone model.Tone) {
	w.tone = tone
	w.statusLabel.Importance = importanceFor(tone)
	w.statusLabel.SetText(text)
}

// SetProgress moves the progress bar to fraction in [0,1]
func (w *MainWindow) SetProgress(fraction float64) {
	w.progressBar.SetValue(fraction)
}

// SetTriggerEnabled toggles the trigger and relabels it. The stop button is
// visible exactly while the trigger is disabled.
func (w *MainWindow) SetTriggerEnabled(enabled bool, label string) {
	if strings.TrimSpace(label) != "" {
		w.triggerBtn.SetText(label)
	}

	if enabled {
		w.triggerBtn.Enable()
		w.stopBtn.Hide()
	} else {
		w.triggerBtn.Disable()
		w.stopBtn.Show()
	}
}

// RunOnUIThread schedules fn on the Fyne main goroutine
func (w *MainWindow) RunOnUIThread(fn func()) {
	w.dispatch(fn)
}

// Window returns the underlying Fyne window
func (w *MainWindow) Window() fyne.Window {
	return w.window
}

// Tone returns the tone of the current status line
func (w *MainWindow) Tone() model.Tone {
	return w.tone
}

func importanceFor(tone model.Tone) widget.Importance {
	switch tone {
	case model.ToneWarning:
		return widget.WarningImportance
	case model.ToneSuccess:
		return widget.SuccessImportance
	case model.ToneError:
		return widget.DangerImportance
	default:
		return widget.MediumImportance
	}
}
