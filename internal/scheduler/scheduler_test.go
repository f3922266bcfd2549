package scheduler

import (
	"testing"
	"time"
)

func TestManualOrdering(t *testing.T) {
	m := NewManual()
	var got []string

	m.Schedule(2*time.Second, func() { got = append(got, "b") })
	m.Schedule(1*time.Second, func() { got = append(got, "a") })
	m.Schedule(2*time.Second, func() { got = append(got, "c") })

	m.Advance(1500 * time.Millisecond)
	if len(got) != 1 || got[0] != "a" {
		t.Fatalf("after 1.5s got %v, want [a]", got)
	}

	m.Advance(time.Second)
	want := []string{"a", "b", "c"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got %v, want %v", got, want)
			break
		}
	}
	if m.Now() != 2500*time.Millisecond {
		t.Errorf("Now() = %v, want 2.5s", m.Now())
	}
}

func TestManualCancel(t *testing.T) {
	m := NewManual()
	fired := false
	task := m.Schedule(time.Second, func() { fired = true })
	task.Cancel()
	task.Cancel()

	m.Advance(5 * time.Second)
	if fired {
		t.Error("cancelled task fired")
	}
	if m.Pending() != 0 {
		t.Errorf("Pending() = %d, want 0", m.Pending())
	}
}

func TestManualRescheduleInsideWindow(t *testing.T) {
	m := NewManual()
	ticks := 0
	var tick func()
	tick = func() {
		ticks++
		m.Schedule(time.Second, tick)
	}
	m.Schedule(time.Second, tick)

	m.Advance(3 * time.Second)
	if ticks != 3 {
		t.Errorf("ticks = %d, want 3", ticks)
	}
	if m.Pending() != 1 {
		t.Errorf("Pending() = %d, want 1", m.Pending())
	}
}

func TestDeferred(t *testing.T) {
	d := NewDeferred()
	var fired []int

	d.Schedule(time.Second, func() { fired = append(fired, 1) })
	second := d.Schedule(2*time.Second, func() { fired = append(fired, 2) })

	pending := d.Drain()
	if len(pending) != 2 || pending[1].After != 2*time.Second {
		t.Fatalf("Drain() = %+v", pending)
	}
	if len(d.Drain()) != 0 {
		t.Error("second Drain should be empty")
	}

	second.Cancel()
	if d.Fire(pending[1].ID) {
		t.Error("cancelled task reported as fired")
	}
	if !d.Fire(pending[0].ID) {
		t.Error("live task did not fire")
	}
	if d.Fire(pending[0].ID) {
		t.Error("task fired twice")
	}
	if len(fired) != 1 || fired[0] != 1 {
		t.Errorf("fired = %v, want [1]", fired)
	}
	if d.Live() != 0 {
		t.Errorf("Live() = %d, want 0", d.Live())
	}
}
