// Package parallel is the Centronics style parallel port. The host strobes a
// byte into the latch, which raises BUSY until the firmware has taken the
// byte and pulsed ACK.
package parallel

import (
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jetsetilly/wheelwriter/logger"
)

// Context allows the parallel port to log.
type Context interface {
	logger.Permission
}

// ErrStopped is returned by Strobe() if the latch is stopped while the host
// waits for BUSY to clear.
var ErrStopped = errors.New("parallel port stopped")

// Port is the firmware's view of the parallel port. The Latch type
// implements this interface.
type Port interface {
	// Ready returns true if a byte is waiting. This is the BUSY line.
	Ready() bool

	// Data returns the byte on the data lines.
	Data() uint8

	// Acknowledge pulses ACK and lowers BUSY.
	Acknowledge()
}

// Latch holds the byte strobed by the host until it is acknowledged.
//
// Strobe() is called by the host side goroutine. Ready(), Data() and
// Acknowledge() are called by the firmware loop.
type Latch struct {
	busy atomic.Bool
	data atomic.Uint32

	crit sync.Mutex
	ack  *sync.Cond
	acks int

	stopped atomic.Bool
}

// NewLatch is the preferred method of initialisation for the Latch type.
func NewLatch() *Latch {
	l := &Latch{}
	l.ack = sync.NewCond(&l.crit)
	return l
}

// Strobe latches the byte and raises BUSY. It first waits for the previous
// byte to be acknowledged.
func (l *Latch) Strobe(v uint8) error {
	l.crit.Lock()
	defer l.crit.Unlock()
	for l.busy.Load() {
		if l.stopped.Load() {
			return ErrStopped
		}
		l.ack.Wait()
	}
	if l.stopped.Load() {
		return ErrStopped
	}
	l.data.Store(uint32(v))
	l.busy.Store(true)
	return nil
}

// Stop releases a host waiting in Strobe(). Further strobes fail.
func (l *Latch) Stop() {
	l.crit.Lock()
	defer l.crit.Unlock()
	l.stopped.Store(true)
	l.ack.Broadcast()
}

// Ready implements the Port interface.
func (l *Latch) Ready() bool {
	return l.busy.Load()
}

// Data implements the Port interface.
func (l *Latch) Data() uint8 {
	return uint8(l.data.Load())
}

// Acknowledge implements the Port interface.
func (l *Latch) Acknowledge() {
	l.crit.Lock()
	defer l.crit.Unlock()
	if l.busy.Load() {
		l.acks++
		l.busy.Store(false)
		l.ack.Broadcast()
	}
}

// Acknowledged returns the number of bytes acknowledged by the firmware.
func (l *Latch) Acknowledged() int {
	l.crit.Lock()
	defer l.crit.Unlock()
	return l.acks
}

// WaitIdle blocks until BUSY is low or until the timeout. It returns false
// on timeout.
func (l *Latch) WaitIdle(timeout time.Duration) bool {
	deadline := time.Now().Add(timeout)
	for l.busy.Load() {
		if time.Now().After(deadline) {
			return false
		}
		time.Sleep(time.Millisecond)
	}
	return true
}
