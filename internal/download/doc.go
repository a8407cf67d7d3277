package download

// Package download runs a single YouTube download off the UI thread. The
// Runner owns the task lifecycle, calls the extraction collaborator on a
// worker goroutine and relays every state change back through the Shell's
// dispatch primitive.
