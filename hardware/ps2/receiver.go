package ps2

import (
	"sync/atomic"

	"github.com/jetsetilly/wheelwriter/hardware/ring"
	"github.com/jetsetilly/wheelwriter/logger"
)

// the number of scancodes that can be waiting to be decoded
const scancodeBufferSize = 16

type rxState int

const (
	rxStart rxState = iota
	rxData
	rxParity
	rxStop
)

// Receiver assembles the 11-bit frames sent by the keyboard. Each frame is a
// start bit (low), eight data bits least significant bit first, an odd
// parity bit and a stop bit (high). Data is sampled on the falling edge of
// the clock.
//
// ClockFalling() is the only producer of scancodes and the firmware loop is
// the only consumer.
type Receiver struct {
	ctx Context

	state  rxState
	bitsCt int
	bits   uint8
	parity bool

	// the sender reads busy from a different goroutine
	busy atomic.Bool

	queue *ring.Buffer[uint8]
}

// NewReceiver is the preferred method of initialisation for the Receiver type.
func NewReceiver(ctx Context, compatible bool) *Receiver {
	return &Receiver{
		ctx:   ctx,
		queue: ring.New[uint8](scancodeBufferSize, compatible),
	}
}

func (rx *Receiver) resetFrame() {
	rx.state = rxStart
	rx.bitsCt = 0
	rx.bits = 0
	rx.parity = false
	rx.busy.Store(false)
}

// ClockFalling should be called on every falling edge of the keyboard clock
// with the state of the data line at that moment.
func (rx *Receiver) ClockFalling(data bool) {
	switch rx.state {
	case rxStart:
		// a high data line is not a start bit. the receiver stays where it is
		if data {
			return
		}
		rx.resetFrame()
		rx.state = rxData
		rx.busy.Store(true)

	case rxData:
		rx.bits >>= 1
		if data {
			rx.bits |= 0x80
			rx.parity = !rx.parity
		}
		rx.bitsCt++
		if rx.bitsCt == 8 {
			rx.state = rxParity
		}

	case rxParity:
		if data {
			rx.parity = !rx.parity
		}
		rx.state = rxStop

	case rxStop:
		// the eight data bits and the parity bit together must contain an
		// odd number of ones
		if data && rx.parity {
			if err := rx.queue.Push(rx.bits); err != nil {
				logger.Logf(rx.ctx, "ps2", "scancode %#02x lost: %v", rx.bits, err)
			}
		} else {
			logger.Logf(rx.ctx, "ps2", "frame discarded (data %#02x, stop %v, parity %v)", rx.bits, data, rx.parity)
		}
		rx.resetFrame()
	}
}

// Busy returns true while a frame is being received.
func (rx *Receiver) Busy() bool {
	return rx.busy.Load()
}

// Available returns true if there is a scancode waiting.
func (rx *Receiver) Available() bool {
	return rx.queue.Available()
}

// Get returns the oldest scancode. The boolean result is false if there is
// no scancode waiting.
func (rx *Receiver) Get() (uint8, bool) {
	return rx.queue.Get()
}

// Flush discards all waiting scancodes.
func (rx *Receiver) Flush() {
	rx.queue.Flush()
}

// Overflows returns the number of scancodes that were lost because the
// queue was full.
func (rx *Receiver) Overflows() int {
	return rx.queue.Overflows()
}
