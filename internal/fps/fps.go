// Package fps counts frames per second.
package fps

import "time"

// Counter averages frames over one-second windows.
type Counter struct {
	now    func() time.Time
	frames int
	last   time.Time
	fps    float64
}

func New() *Counter { return NewWithClock(time.Now) }

// NewWithClock uses now instead of the wall clock.
func NewWithClock(now func() time.Time) *Counter {
	return &Counter{now: now, last: now()}
}

// Update records a frame.
func (c *Counter) Update() {
	c.frames++
	t := c.now()
	if elapsed := t.Sub(c.last); elapsed >= time.Second {
		c.fps = float64(c.frames) / elapsed.Seconds()
		c.frames = 0
		c.last = t
	}
}

// FPS is the rate over the last complete window, 0 before the first one.
func (c *Counter) FPS() float64 { return c.fps }
