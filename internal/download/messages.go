package download

import "fmt"

// Messages holds the user-facing texts the runner posts to the Shell
type Messages struct {
	EmptyURL        string
	Connecting      string
	Downloading     string // trigger label while running
	TitleFormat     string // %s is the video title
	ProgressFormat  string // %d is the percentage
	RetryingFormat  string // %d is the attempt number
	SavedFormat     string // %s is the output path
	ErrorFormat     string // %s is the error message
	Cancelling      string
	Cancelled       string
	DownloadAnother string
	Retry           string
}

// DefaultMessages returns the English texts
func DefaultMessages() Messages {
	return Messages{
		EmptyURL:        "Oops! Looks like you forgot to paste the link.",
		Connecting:      "Connecting to YouTube...",
		Downloading:     "Downloading...",
		TitleFormat:     "Downloading: %s",
		ProgressFormat:  "Progress: %d%%",
		RetryingFormat:  "Retrying (attempt %d)...",
		SavedFormat:     "Success! Video saved to:\n%s",
		ErrorFormat:     "Something went wrong... Error: %s",
		Cancelling:      "Cancelling...",
		Cancelled:       "Download cancelled.",
		DownloadAnother: "Download another video",
		Retry:           "Try again",
	}
}

func (m Messages) title(title string) string {
	return fmt.Sprintf(m.TitleFormat, title)
}

func (m Messages) progress(percent int) string {
	return fmt.Sprintf(m.ProgressFormat, percent)
}

func (m Messages) retrying(attempt int) string {
	return fmt.Sprintf(m.RetryingFormat, attempt)
}

func (m Messages) saved(path string) string {
	return fmt.Sprintf(m.SavedFormat, path)
}

func (m Messages) failed(msg string) string {
	return fmt.Sprintf(m.ErrorFormat, msg)
}
