// Package scheduler provides cancellable delayed callbacks that run on the
// caller's own event loop instead of on timer goroutines.
package scheduler

import (
	"time"

	"github.com/mmcdole/streamvault/internal/domain"
)

// Manual is a virtual clock. Callbacks fire only inside Advance, in due-time
// order, with ties broken by scheduling order.
type Manual struct {
	now   time.Duration
	seq   int
	tasks []*manualTask
}

type manualTask struct {
	at        time.Duration
	seq       int
	fire      func()
	cancelled bool
}

func (t *manualTask) Cancel() { t.cancelled = true }

// NewManual creates a virtual clock at time zero
func NewManual() *Manual {
	return &Manual{}
}

// Schedule implements domain.Scheduler
func (m *Manual) Schedule(after time.Duration, fire func()) domain.Task {
	if after < 0 {
		after = 0
	}
	m.seq++
	t := &manualTask{at: m.now + after, seq: m.seq, fire: fire}
	m.tasks = append(m.tasks, t)
	return t
}

// Now returns the virtual time elapsed since creation
func (m *Manual) Now() time.Duration {
	return m.now
}

// Advance moves the clock forward by d, firing every task that comes due.
// Tasks scheduled by a firing callback also fire if they fall inside the window.
func (m *Manual) Advance(d time.Duration) {
	target := m.now + d
	for {
		next := m.nextDue(target)
		if next == nil {
			break
		}
		m.now = next.at
		next.cancelled = true // one-shot
		next.fire()
	}
	m.now = target
	m.compact()
}

// Pending returns the number of tasks still waiting to fire
func (m *Manual) Pending() int {
	n := 0
	for _, t := range m.tasks {
		if !t.cancelled {
			n++
		}
	}
	return n
}

func (m *Manual) nextDue(target time.Duration) *manualTask {
	var next *manualTask
	for _, t := range m.tasks {
		if t.cancelled || t.at > target {
			continue
		}
		if next == nil || t.at < next.at || (t.at == next.at && t.seq < next.seq) {
			next = t
		}
	}
	return next
}

func (m *Manual) compact() {
	live := m.tasks[:0]
	for _, t := range m.tasks {
		if !t.cancelled {
			live = append(live, t)
		}
	}
	m.tasks = live
}
