package model

// TaskState represents the lifecycle state of a download task
type TaskState string

const (
	// TaskStateIdle means no task has been submitted yet
	TaskStateIdle TaskState = "Idle"

	// TaskStateRunning means a worker is fetching and downloading the video
	TaskStateRunning TaskState = "Running"

	// TaskStateSucceeded means the last task saved its file
	TaskStateSucceeded TaskState = "Succeeded"

	// TaskStateFailed means the last task ended with an error
	TaskStateFailed TaskState = "Failed"

	// TaskStateCancelled means the last task was cancelled before it finished
	TaskStateCancelled TaskState = "Cancelled"
)

// String returns the string representation of TaskState
func (ts TaskState) String() string {
	return string(ts)
}

// IsActive returns true while a worker owns the task
func (ts TaskState) IsActive() bool {
	return ts == TaskStateRunning
}

// IsFinished returns true if the task reached a terminal state
func (ts TaskState) IsFinished() bool {
	return ts == TaskStateSucceeded || ts == TaskStateFailed || ts == TaskStateCancelled
}

// Tone selects the visual treatment of a status message
type Tone int

const (
	ToneInfo Tone = iota
	ToneWarning
	ToneSuccess
	ToneError
)

func (t Tone) String() string {
	switch t {
	case ToneInfo:
		return "info"
	case ToneWarning:
		return "warning"
	case ToneSuccess:
		return "success"
	case ToneError:
		return "error"
	default:
		return "unknown"
	}
}
