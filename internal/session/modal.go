package session

import "github.com/mmcdole/streamvault/internal/domain"

// modalCoordinator keeps exactly one modal active. Opening a modal leaves
// the current one first, which tears down whatever flow it owns.
type modalCoordinator struct {
	active domain.Modal
	leave  func(domain.Modal)
}

func newModalCoordinator(leave func(domain.Modal)) modalCoordinator {
	return modalCoordinator{active: domain.NoModal{}, leave: leave}
}

func (c *modalCoordinator) open(m domain.Modal) {
	prev := c.active
	c.active = m
	if _, none := prev.(domain.NoModal); !none {
		c.leave(prev)
	}
}

func (c *modalCoordinator) close() {
	c.open(domain.NoModal{})
}
