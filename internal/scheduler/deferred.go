package scheduler

import (
	"time"

	"github.com/mmcdole/streamvault/internal/domain"
)

// Pending is a scheduled task the event loop still has to arm.
type Pending struct {
	ID    uint64
	After time.Duration
}

// Deferred records scheduled tasks for an event loop to arm (for example as
// Bubble Tea tick commands). The loop reports expiry through Fire, which
// runs the callback only if the task was not cancelled meanwhile.
// Deferred is not safe for concurrent use; it belongs to one event loop.
type Deferred struct {
	next    uint64
	live    map[uint64]func()
	pending []Pending
}

type deferredTask struct {
	owner *Deferred
	id    uint64
}

func (t deferredTask) Cancel() { delete(t.owner.live, t.id) }

// NewDeferred creates an empty Deferred scheduler
func NewDeferred() *Deferred {
	return &Deferred{live: make(map[uint64]func())}
}

// Schedule implements domain.Scheduler
func (d *Deferred) Schedule(after time.Duration, fire func()) domain.Task {
	d.next++
	id := d.next
	d.live[id] = fire
	d.pending = append(d.pending, Pending{ID: id, After: after})
	return deferredTask{owner: d, id: id}
}

// Drain returns tasks scheduled since the last Drain
func (d *Deferred) Drain() []Pending {
	out := d.pending
	d.pending = nil
	return out
}

// Fire runs the callback for id if it is still live. Reports whether it ran.
func (d *Deferred) Fire(id uint64) bool {
	fire, ok := d.live[id]
	if !ok {
		return false
	}
	delete(d.live, id)
	fire()
	return true
}

// Live returns the number of tasks that can still fire
func (d *Deferred) Live() int {
	return len(d.live)
}
