package app

import (
	"time"

	"glcube/internal/config"
)

// spinWindow is how close to the deadline sleepUntil stops sleeping and busy-waits.
const spinWindow = 200 * time.Microsecond

// FPSLimiter caps the frame rate at config.GetFPSLimit() while vsync is off.
// With vsync on, SwapBuffers already blocks on the display and Wait returns at once.
type FPSLimiter struct {
	next  time.Time
	limit int
}

// NewFPSLimiter creates a new FPS limiter
func NewFPSLimiter() *FPSLimiter {
	return &FPSLimiter{}
}

// Wait blocks until the next frame slot
func (f *FPSLimiter) Wait() {
	limit := effectiveLimit()
	if limit <= 0 {
		f.next, f.limit = time.Time{}, 0
		return
	}

	period := time.Second / time.Duration(limit)
	now := time.Now()
	// restart the schedule on the first frame, after a cap change, or after a
	// hitch longer than one period
	if f.next.IsZero() || limit != f.limit || now.Sub(f.next) > period {
		f.next = now
	}
	f.limit = limit
	f.next = f.next.Add(period)

	sleepUntil(f.next)
}

func effectiveLimit() int {
	if config.GetVSync() {
		return 0
	}
	return config.GetFPSLimit()
}

// sleepUntil sleeps most of the way to deadline and spins the remainder;
// time.Sleep alone overshoots by too much at high caps.
func sleepUntil(deadline time.Time) {
	for {
		remaining := time.Until(deadline)
		if remaining <= 0 {
			return
		}
		if remaining > spinWindow {
			time.Sleep(remaining - spinWindow)
		}
	}
}
