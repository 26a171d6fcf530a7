// internal/app/clock.go
package app

import "time"

// FrameClock переводит время стены в deltaTime для Tick.
// Первый кадр (и первый после Reset) даёт 0, длинные кадры обрезаются до maxDelta.
type FrameClock struct {
	last     time.Time
	maxDelta float64
}

func NewFrameClock(maxDelta float64) *FrameClock {
	return &FrameClock{maxDelta: maxDelta}
}

// Delta returns the seconds elapsed since the previous call.
func (c *FrameClock) Delta(now time.Time) float64 {
	if c.last.IsZero() {
		c.last = now
		return 0
	}
	delta := now.Sub(c.last).Seconds()
	c.last = now
	if delta < 0 {
		return 0
	}
	if c.maxDelta > 0 && delta > c.maxDelta {
		return c.maxDelta
	}
	return delta
}

// Reset forgets the previous frame, e.g. after the window regains focus.
func (c *FrameClock) Reset() {
	c.last = time.Time{}
}
