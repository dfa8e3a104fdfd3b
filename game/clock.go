package game

import (
	"context"
	"time"
)

type Clock interface {
	SleepUntilNextTick(ctx context.Context) error
}

// TickClock paces the loop to a fixed rate, like a frame limiter: time spent
// in the tick is subtracted from the wait.
type TickClock struct {
	interval time.Duration
	next     time.Time
	now      func() time.Time
	after    func(time.Duration) <-chan time.Time
}

func NewTickClock(interval time.Duration) *TickClock {
	return &TickClock{
		interval: interval,
		now:      time.Now,
		after:    time.After,
	}
}

func (c *TickClock) SleepUntilNextTick(ctx context.Context) error {
	now := c.now()
	if c.next.IsZero() {
		c.next = now
	}
	c.next = c.next.Add(c.interval)

	wait := c.next.Sub(now)
	if wait <= 0 {
		// Fell behind, don't try to catch up with a burst of ticks
		c.next = now
		return ctx.Err()
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-c.after(wait):
		return nil
	}
}
