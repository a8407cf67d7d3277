package ui

// Window sizing
const (
	WindowWidth  float32 = 560
	WindowHeight float32 = 280
)

// Icons
const (
	IconPaste = "📋"
	IconStop  = "⏹"
)
