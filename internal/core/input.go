package core

import "time"

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone       Action = iota
	ActionFlap              // Space, pointer press - upward impulse, resume, restart
	ActionPause             // P, double tap - pause/unpause game
	ActionQuit              // Q, Ctrl+C - exit game/session
	ActionScreenshot        // Ctrl+S - dump the current frame as text
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionFlap:
		return "Flap"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	case ActionScreenshot:
		return "Screenshot"
	default:
		return "Unknown"
	}
}

// DefaultDoubleTapWindow is the longest gap between two presses that still
// counts as a double tap.
const DefaultDoubleTapWindow = 300 * time.Millisecond

// DoubleTap detects two presses that land within Window of each other.
// The zero value uses DefaultDoubleTapWindow.
type DoubleTap struct {
	Window time.Duration

	last    time.Time
	pending bool
}

// Press records a press at now and reports whether it completes a double tap.
// A completed double tap is consumed, so a third quick press starts over.
func (d *DoubleTap) Press(now time.Time) bool {
	window := d.Window
	if window <= 0 {
		window = DefaultDoubleTapWindow
	}

	if d.pending && now.Sub(d.last) <= window {
		d.pending = false
		return true
	}

	d.last = now
	d.pending = true
	return false
}
