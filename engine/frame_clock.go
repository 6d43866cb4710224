package engine

import "time"

// FrameClock is a polled tick source for front-ends that run their own frame loop
// Due is called once per frame and reports whether a game tick should run
type FrameClock struct {
	timeProvider TimeProvider
	tickInterval time.Duration
	nextDeadline time.Time
	stopped      bool
	tickCount    uint64
}

// NewFrameClock creates a clock whose first tick is due one interval from now
func NewFrameClock(timeProvider TimeProvider, tickInterval time.Duration) *FrameClock {
	return &FrameClock{
		timeProvider: timeProvider,
		tickInterval: tickInterval,
		nextDeadline: timeProvider.Now().Add(tickInterval),
	}
}

// Due reports whether the next tick deadline has passed and advances it
// At most one tick is reported per call; a clock more than two intervals behind resynchronizes
func (fc *FrameClock) Due() bool {
	if fc.stopped {
		return false
	}

	now := fc.timeProvider.Now()
	if now.Before(fc.nextDeadline) {
		return false
	}

	fc.tickCount++
	fc.nextDeadline = fc.nextDeadline.Add(fc.tickInterval)

	maxBehind := fc.tickInterval * 2
	if now.Sub(fc.nextDeadline) > maxBehind {
		fc.nextDeadline = now.Add(fc.tickInterval)
	}
	return true
}

// Stop cancels all future ticks; safe to call more than once
func (fc *FrameClock) Stop() {
	fc.stopped = true
}

// Stopped reports whether Stop has been called
func (fc *FrameClock) Stopped() bool {
	return fc.stopped
}

// TickCount returns the number of ticks reported
func (fc *FrameClock) TickCount() uint64 {
	return fc.tickCount
}
