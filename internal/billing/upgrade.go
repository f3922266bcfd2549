// Package billing runs the simulated basic-to-premium upgrade.
// Nothing is charged; provisioning is a fixed delay.
package billing

import (
	"time"

	"github.com/mmcdole/streamvault/internal/domain"
)

// UpgradeState is the lifecycle position of an UpgradeFlow
type UpgradeState int

const (
	Offered UpgradeState = iota
	Provisioning
	Activated
	Cancelled
)

// String returns the metric/log label for the state
func (s UpgradeState) String() string {
	switch s {
	case Offered:
		return "offered"
	case Provisioning:
		return "provisioning"
	case Activated:
		return "activated"
	case Cancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// DefaultProvisioningDelay is the simulated provisioning latency
const DefaultProvisioningDelay = 3 * time.Second

// provisioningSteps is the cosmetic checklist shown while provisioning.
// It does not gate anything.
var provisioningSteps = []string{
	"Upgrading to Premium...",
	"Removing advertisements...",
	"Unlocking Ultra HD...",
	"Activating premium features...",
}

// Steps returns the provisioning checklist
func Steps() []string {
	return provisioningSteps
}

// UpgradeFlow moves a session from Offered through Provisioning to
// Activated. Activation is one-shot.
type UpgradeFlow struct {
	sched       domain.Scheduler
	delay       time.Duration
	state       UpgradeState
	task        domain.Task
	startedAt   time.Time
	onActivated func()
}

// NewUpgradeFlow creates a flow in the Offered state. onActivated runs once
// when provisioning finishes.
func NewUpgradeFlow(sched domain.Scheduler, delay time.Duration, onActivated func()) *UpgradeFlow {
	if delay < 0 {
		delay = 0
	}
	return &UpgradeFlow{
		sched:       sched,
		delay:       delay,
		state:       Offered,
		onActivated: onActivated,
	}
}

// Confirm starts provisioning. Only honored from Offered.
func (u *UpgradeFlow) Confirm() bool {
	if u.state != Offered {
		return false
	}
	u.state = Provisioning
	u.startedAt = time.Now()
	u.task = u.sched.Schedule(u.delay, u.activate)
	return true
}

func (u *UpgradeFlow) activate() {
	if u.state != Provisioning {
		return
	}
	u.task = nil
	u.state = Activated
	if u.onActivated != nil {
		u.onActivated()
	}
}

// Stop abandons the flow. A pending provisioning task is cancelled and
// the tier is left untouched. It reports whether provisioning was interrupted.
func (u *UpgradeFlow) Stop() bool {
	interrupted := u.state == Provisioning
	if u.task != nil {
		u.task.Cancel()
		u.task = nil
	}
	if u.state == Offered || u.state == Provisioning {
		u.state = Cancelled
	}
	return interrupted
}

// State returns the lifecycle position
func (u *UpgradeFlow) State() UpgradeState { return u.state }

// Delay returns the provisioning latency
func (u *UpgradeFlow) Delay() time.Duration { return u.delay }

// StartedAt returns when provisioning began, zero before Confirm
func (u *UpgradeFlow) StartedAt() time.Time { return u.startedAt }
