package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/vi-snake/core"
)

// ClockScheduler delivers game ticks on a fixed interval
// Ticks are sent on a channel so the game loop consumes them on its own goroutine
// A tick that finds the previous one still unconsumed is coalesced
type ClockScheduler struct {
	tickInterval time.Duration
	ticks        chan uint64

	// Tick counter for debugging and metrics
	tickCount atomic.Uint64

	// Control channels
	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool
	stopped  atomic.Bool
}

// NewClockScheduler creates a new clock scheduler with specified tick interval
func NewClockScheduler(tickInterval time.Duration) *ClockScheduler {
	return &ClockScheduler{
		tickInterval: tickInterval,
		ticks:        make(chan uint64, 1),
		stopChan:     make(chan struct{}),
	}
}

// Ticks returns the channel receiving the sequence number of each tick
func (cs *ClockScheduler) Ticks() <-chan uint64 {
	return cs.ticks
}

// Interval returns the tick interval
func (cs *ClockScheduler) Interval() time.Duration {
	return cs.tickInterval
}

// TickCount returns the number of ticks fired, including coalesced ones
func (cs *ClockScheduler) TickCount() uint64 {
	return cs.tickCount.Load()
}

// Start begins the scheduler loop; a stopped scheduler cannot be restarted
func (cs *ClockScheduler) Start() {
	if cs.stopped.Load() {
		return
	}
	if cs.running.CompareAndSwap(false, true) {
		cs.wg.Add(1)
		// Use core.Go for safe execution with centralized crash handling
		core.Go(cs.schedulerLoop)
	}
}

// Stop halts the scheduler loop; safe to call more than once and before Start
func (cs *ClockScheduler) Stop() {
	cs.stopOnce.Do(func() {
		cs.stopped.Store(true)
		close(cs.stopChan)
		if cs.running.CompareAndSwap(true, false) {
			cs.wg.Wait()
		}
	})
}

// Stopped reports whether Stop has been called
func (cs *ClockScheduler) Stopped() bool {
	return cs.stopped.Load()
}

// schedulerLoop fires ticks until stopped
func (cs *ClockScheduler) schedulerLoop() {
	defer cs.wg.Done()

	ticker := time.NewTicker(cs.tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-cs.stopChan:
			return
		case <-ticker.C:
			n := cs.tickCount.Add(1)
			select {
			case cs.ticks <- n:
			default:
			}
		}
	}
}
