// Package haptics provides best-effort physical feedback for the end of a
// session. Terminals and desktops cannot vibrate, so feedback is a short low
// thud on the speaker or the terminal bell.
package haptics

import (
	"errors"
	"io"
	"time"
)

// ErrUnsupported is returned when no feedback device is available.
var ErrUnsupported = errors.New("haptics: no feedback device")

// Nop gives no feedback.
type Nop struct{}

// Vibrate does nothing.
func (Nop) Vibrate(time.Duration) error {
	return nil
}

// Bell rings the terminal bell on W. Used for SSH sessions, where the only
// device we can reach is the remote terminal.
type Bell struct {
	W io.Writer
}

// Vibrate writes a BEL character. The duration is up to the terminal.
func (b Bell) Vibrate(time.Duration) error {
	if b.W == nil {
		return ErrUnsupported
	}
	_, err := io.WriteString(b.W, "\a")
	return err
}
