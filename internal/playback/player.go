package playback

import (
	"strings"
	"time"

	"github.com/mmcdole/streamvault/internal/domain"
)

// Player is the simulated playback clock behind the player modal.
// There is no video; position advances one second of content per interval.
type Player struct {
	title    domain.Title
	sched    domain.Scheduler
	interval time.Duration

	position time.Duration
	runtime  time.Duration
	paused   bool
	tick     domain.Task
}

// ParseRuntime converts catalog durations like "2h 32m" into a
// time.Duration. Unparseable values yield zero (unbounded playback).
func ParseRuntime(s string) time.Duration {
	d, err := time.ParseDuration(strings.ReplaceAll(strings.TrimSpace(s), " ", ""))
	if err != nil || d < 0 {
		return 0
	}
	return d
}

// StartPlayer begins playback of title from position zero
func StartPlayer(sched domain.Scheduler, title domain.Title, interval time.Duration) *Player {
	if interval <= 0 {
		interval = time.Second
	}
	p := &Player{
		title:    title,
		sched:    sched,
		interval: interval,
		runtime:  ParseRuntime(title.Duration),
	}
	p.tick = sched.Schedule(interval, p.onTick)
	return p
}

func (p *Player) onTick() {
	p.tick = nil
	if p.paused {
		return
	}
	p.position += time.Second
	if p.runtime > 0 && p.position >= p.runtime {
		p.position = p.runtime
		return
	}
	p.tick = p.sched.Schedule(p.interval, p.onTick)
}

// TogglePause pauses or resumes the clock
func (p *Player) TogglePause() {
	p.paused = !p.paused
	if p.paused {
		if p.tick != nil {
			p.tick.Cancel()
			p.tick = nil
		}
		return
	}
	if p.tick == nil && !p.Finished() {
		p.tick = p.sched.Schedule(p.interval, p.onTick)
	}
}

// Stop cancels the clock
func (p *Player) Stop() {
	if p.tick != nil {
		p.tick.Cancel()
		p.tick = nil
	}
}

// Title returns the title being played
func (p *Player) Title() domain.Title { return p.title }

// Position returns the simulated playback position
func (p *Player) Position() time.Duration { return p.position }

// Runtime returns the parsed title length, zero when unknown
func (p *Player) Runtime() time.Duration { return p.runtime }

// Paused reports whether the clock is paused
func (p *Player) Paused() bool { return p.paused }

// Finished reports whether playback reached the end of a known runtime
func (p *Player) Finished() bool {
	return p.runtime > 0 && p.position >= p.runtime
}
