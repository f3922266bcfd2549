package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/streamvault/internal/scheduler"
)

// Command factories

// timerCmds arms every task the session scheduled since the last call.
// The callback itself runs later in Update, on the event loop, and only if
// the task was not cancelled in the meantime.
func timerCmds(s *scheduler.Deferred, arm func(scheduler.Pending) tea.Cmd) tea.Cmd {
	pending := s.Drain()
	if len(pending) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, 0, len(pending))
	for _, p := range pending {
		cmds = append(cmds, arm(p))
	}
	return tea.Batch(cmds...)
}

// ClearStatusCmd clears the status line after a delay
func ClearStatusCmd(after time.Duration) tea.Cmd {
	return tea.Tick(after, func(time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}

// TickCmd schedules a redraw tick
func TickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return TickMsg{}
	})
}

// armTick is the production timer arming: a Bubble Tea tick per task
func armTick(p scheduler.Pending) tea.Cmd {
	id := p.ID
	return tea.Tick(p.After, func(time.Time) tea.Msg {
		return timerFiredMsg{ID: id}
	})
}
