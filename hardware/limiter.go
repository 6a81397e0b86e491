package hardware

import (
	"time"
)

// tickInterval is the period of the board's timer
const tickInterval = 50 * time.Millisecond

// idleInterval is how long the firmware loop sleeps when there was nothing
// to do
const idleInterval = time.Millisecond

// limiter stops the firmware loop from spinning when there is nothing to do
// and provides the board's timer tick
type limiter struct {
	tick *time.Ticker
	idle *time.Timer
}

func newLimiter() *limiter {
	return &limiter{
		tick: time.NewTicker(tickInterval),
		idle: time.NewTimer(idleInterval),
	}
}

// Ticked returns true if a tick has happened since the last call
func (l *limiter) Ticked() bool {
	select {
	case <-l.tick.C:
		return true
	default:
	}
	return false
}

// Wait blocks for the idle interval. It returns true if the wait was ended
// early by a tick
func (l *limiter) Wait() bool {
	l.idle.Reset(idleInterval)
	select {
	case <-l.tick.C:
		return true
	case <-l.idle.C:
	}
	return false
}

func (l *limiter) Stop() {
	l.tick.Stop()
	l.idle.Stop()
}
