package tui

// Message types for the TUI

// ErrMsg represents an error
type ErrMsg struct {
	Err     error
	Context string
}

// Error implements the error interface
func (e ErrMsg) Error() string {
	if e.Context != "" {
		return e.Context + ": " + e.Err.Error()
	}
	return e.Err.Error()
}

// timerFiredMsg delivers a scheduled callback back onto the event loop
type timerFiredMsg struct {
	ID uint64
}

// ClearStatusMsg clears the status line
type ClearStatusMsg struct{}

// TickMsg redraws animated screens
type TickMsg struct{}
