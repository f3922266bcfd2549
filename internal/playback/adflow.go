package playback

import (
	"time"

	"github.com/mmcdole/streamvault/internal/domain"
)

// AdState is the lifecycle position of an AdFlow
type AdState int

const (
	AdPlaying AdState = iota
	AdCompleted
	AdSkipped
	AdStopped
)

// String returns the metric/log label for the state
func (s AdState) String() string {
	switch s {
	case AdPlaying:
		return "playing"
	case AdCompleted:
		return "completed"
	case AdSkipped:
		return "skipped"
	case AdStopped:
		return "torn_down"
	default:
		return "unknown"
	}
}

// AdFlow counts an advertisement down one tick at a time. It owns two
// tasks: the countdown tick and the skip unlock. Both are cancelled when
// the flow ends, however it ends, so no callback outlives the flow.
type AdFlow struct {
	ad       domain.Advertisement
	sched    domain.Scheduler
	interval time.Duration

	remaining int
	canSkip   bool
	state     AdState

	tick   domain.Task
	unlock domain.Task

	onComplete func()
	onSkip     func()
}

// StartAd enters the Playing state with remaining = ad.DurationSeconds and
// canSkip = false. interval is the wall-clock length of one ad second.
// onComplete fires once when the countdown reaches zero; onSkip fires when
// an honored Skip ends the flow. Either may be nil.
func StartAd(sched domain.Scheduler, ad domain.Advertisement, interval time.Duration, onComplete, onSkip func()) (*AdFlow, error) {
	if err := ad.Validate(); err != nil {
		return nil, err
	}
	if interval <= 0 {
		interval = time.Second
	}

	f := &AdFlow{
		ad:         ad,
		sched:      sched,
		interval:   interval,
		remaining:  ad.DurationSeconds,
		state:      AdPlaying,
		onComplete: onComplete,
		onSkip:     onSkip,
	}

	// Skip unlock runs on its own task, independent of the countdown.
	// When it would land on or after completion it is never offered.
	if ad.SkipAfterSeconds < ad.DurationSeconds {
		f.unlock = sched.Schedule(time.Duration(ad.SkipAfterSeconds)*interval, f.unlockSkip)
	}
	f.tick = sched.Schedule(interval, f.onTick)
	return f, nil
}

func (f *AdFlow) onTick() {
	if f.state != AdPlaying {
		return
	}
	f.remaining--
	if f.remaining > 0 {
		f.tick = f.sched.Schedule(f.interval, f.onTick)
		return
	}

	f.remaining = 0
	f.canSkip = false
	f.state = AdCompleted
	f.cancelTasks()
	if f.onComplete != nil {
		f.onComplete()
	}
}

func (f *AdFlow) unlockSkip() {
	if f.state != AdPlaying {
		return
	}
	f.canSkip = true
}

// Skip ends the flow through the skip callback. It is honored only while
// the ad is playing and the skip has been unlocked.
func (f *AdFlow) Skip() bool {
	if f.state != AdPlaying || !f.canSkip {
		return false
	}
	f.state = AdSkipped
	f.canSkip = false
	f.cancelTasks()
	if f.onSkip != nil {
		f.onSkip()
	}
	return true
}

// Stop tears the flow down without firing any callback. It reports whether
// the flow was still playing.
func (f *AdFlow) Stop() bool {
	if f.state != AdPlaying {
		return false
	}
	f.state = AdStopped
	f.canSkip = false
	f.cancelTasks()
	return true
}

func (f *AdFlow) cancelTasks() {
	if f.tick != nil {
		f.tick.Cancel()
		f.tick = nil
	}
	if f.unlock != nil {
		f.unlock.Cancel()
		f.unlock = nil
	}
}

// Ad returns the advertisement being shown
func (f *AdFlow) Ad() domain.Advertisement { return f.ad }

// Remaining returns the seconds left in the countdown
func (f *AdFlow) Remaining() int { return f.remaining }

// CanSkip reports whether Skip would be honored right now
func (f *AdFlow) CanSkip() bool { return f.canSkip }

// State returns the lifecycle position
func (f *AdFlow) State() AdState { return f.state }

// Elapsed returns the ad seconds already shown
func (f *AdFlow) Elapsed() int { return f.ad.DurationSeconds - f.remaining }

// SkipIn returns the seconds until the skip unlocks, or -1 when the ad can
// never be skipped.
func (f *AdFlow) SkipIn() int {
	if f.ad.SkipAfterSeconds >= f.ad.DurationSeconds {
		return -1
	}
	return max(0, f.ad.SkipAfterSeconds-f.Elapsed())
}

// Progress returns the fraction of the ad shown, in [0, 1]
func (f *AdFlow) Progress() float64 {
	return float64(f.Elapsed()) / float64(f.ad.DurationSeconds)
}
