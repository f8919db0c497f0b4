package core

// Action represents a semantic frontend action, abstracted from physical
// key presses and pointer events.
type Action int

const (
	ActionNone       Action = iota
	ActionTap               // click, tap, Space, Enter: the single game input
	ActionHistory           // Tab - toggle run history
	ActionScreenshot        // Ctrl+S - dump current frame
	ActionQuit              // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionTap:
		return "Tap"
	case ActionHistory:
		return "History"
	case ActionScreenshot:
		return "Screenshot"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
