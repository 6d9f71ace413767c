package intent

import (
	"context"
	"sync"
)

// commitFunc performs the deferred execution of a confirmed intent.
type commitFunc func(ctx context.Context) (Result, error)

// continuation is the single-slot holder of a pending commit. Arming
// overwrites any previous slot; the slot is consumed exactly once, by
// fire or clear.
type continuation struct {
	mu     sync.Mutex
	commit commitFunc
}

func (c *continuation) arm(fn commitFunc) {
	c.mu.Lock()
	c.commit = fn
	c.mu.Unlock()
}

// take consumes the armed commit without invoking it, returning nil when
// the slot is empty. Callers that must pair the commit with other state
// under their own lock use take and invoke the result themselves.
func (c *continuation) take() commitFunc {
	c.mu.Lock()
	fn := c.commit
	c.commit = nil
	c.mu.Unlock()
	return fn
}

// fire invokes and clears the armed commit. With nothing armed it
// returns a cancelled result instead of failing, so close paths can call
// it unconditionally.
func (c *continuation) fire(ctx context.Context) (Result, error) {
	fn := c.take()
	if fn == nil {
		return cancelledResult(), nil
	}
	return fn(ctx)
}

// clear drops the armed commit without invoking it.
func (c *continuation) clear() {
	c.mu.Lock()
	c.commit = nil
	c.mu.Unlock()
}

// armed reports whether a commit is waiting.
func (c *continuation) armed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.commit != nil
}
