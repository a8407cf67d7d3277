package model

// Package model defines domain data structures used across the app: the
// download request, the task record kept by the runner, progress samples,
// results, and the state and tone enums that drive the UI.
