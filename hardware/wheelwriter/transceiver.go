package wheelwriter

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/jetsetilly/wheelwriter/hardware/ring"
	"github.com/jetsetilly/wheelwriter/logger"
)

// the number of received words that can be waiting
const wordBufferSize = 8

// Line is the bus as seen by the Function Board's UART.
type Line interface {
	// Transmit shifts a word onto the bus. It returns when the word has
	// been sent.
	Transmit(w Word) error

	// WaitBus blocks until the bus is at the requested level or until the
	// timeout has elapsed. An error is returned on timeout.
	WaitBus(high bool, timeout time.Duration) error
}

// Transceiver sends and receives words on the Wheelwriter bus.
//
// Received() is called by whatever delivers words from the bus and is the
// only producer. Put(), Available(), Get() and Flush() are called by the
// firmware loop.
type Transceiver struct {
	ctx     Context
	line    Line
	timeout time.Duration

	// reception is disabled while a word is being transmitted so that the
	// word is not seen again on the way out
	rxEnabled atomic.Bool

	// the next word received after a transmission is the acknowledge
	waitingForAcknowledge atomic.Bool

	// the number of words since the most recent command prefix. producer
	// side only
	count int

	queue *ring.Buffer[Word]
}

// NewTransceiver is the preferred method of initialisation for the
// Transceiver type. The timeout applies to every wait on the bus.
func NewTransceiver(ctx Context, line Line, timeout time.Duration, compatible bool) *Transceiver {
	tr := &Transceiver{
		ctx:     ctx,
		line:    line,
		timeout: timeout,
		queue:   ring.New[Word](wordBufferSize, compatible),
	}
	tr.rxEnabled.Store(true)
	return tr
}

// Put sends a word to the Printer Board and waits for the acknowledge pulse.
func (tr *Transceiver) Put(w Word) error {
	if err := tr.line.WaitBus(true, tr.timeout); err != nil {
		return fmt.Errorf("bus not idle before %s: %w", w, ErrTimeout)
	}

	tr.rxEnabled.Store(false)
	err := tr.line.Transmit(w & 0x1ff)
	tr.rxEnabled.Store(true)
	if err != nil {
		return fmt.Errorf("transmit %s: %w", w, err)
	}

	tr.waitingForAcknowledge.Store(true)

	// acknowledge is high, low, high
	if err := tr.line.WaitBus(true, tr.timeout); err != nil {
		return fmt.Errorf("acknowledge of %s: %w", w, ErrTimeout)
	}
	if err := tr.line.WaitBus(false, tr.timeout); err != nil {
		return fmt.Errorf("acknowledge of %s: %w", w, ErrTimeout)
	}
	if err := tr.line.WaitBus(true, tr.timeout); err != nil {
		return fmt.Errorf("acknowledge of %s: %w", w, ErrTimeout)
	}

	return nil
}

// PutSequence sends each word in turn and stops at the first error.
func (tr *Transceiver) PutSequence(words ...Word) error {
	for _, w := range words {
		if err := tr.Put(w); err != nil {
			return err
		}
	}
	return nil
}

// Received is called for every word that arrives from the bus.
func (tr *Transceiver) Received(w Word) {
	if !tr.rxEnabled.Load() {
		return
	}

	w &= 0x1ff

	// the acknowledge pulse arrives as a word of all zeros. anything else in
	// its place is kept
	if tr.waitingForAcknowledge.CompareAndSwap(true, false) {
		if w != 0 {
			tr.push(w)
		}
		return
	}

	if w == CommandPrefix {
		tr.count = 1
	} else {
		tr.count++
	}

	// counting the command prefix as the first word, a zero word in an odd
	// position is data and one in an even position is an acknowledge
	if w != 0 || tr.count%2 == 1 {
		tr.push(w)
	}
}

func (tr *Transceiver) push(w Word) {
	if err := tr.queue.Push(w); err != nil {
		logger.Logf(tr.ctx, "wheelwriter", "word %s lost: %v", w, err)
	}
}

// Available returns true if there is a received word waiting.
func (tr *Transceiver) Available() bool {
	return tr.queue.Available()
}

// Get returns the oldest received word. The boolean result is false if there
// is no word waiting.
func (tr *Transceiver) Get() (Word, bool) {
	return tr.queue.Get()
}

// GetWait returns the oldest received word, waiting up to timeout for one to
// arrive.
func (tr *Transceiver) GetWait(timeout time.Duration) (Word, error) {
	deadline := time.Now().Add(timeout)
	for {
		if w, ok := tr.queue.Get(); ok {
			return w, nil
		}
		if time.Now().After(deadline) {
			return 0, ErrTimeout
		}
		time.Sleep(time.Millisecond)
	}
}

// Flush discards all received words.
func (tr *Transceiver) Flush() {
	tr.queue.Flush()
}

// Overflows returns the number of received words lost because the queue was
// full.
func (tr *Transceiver) Overflows() int {
	return tr.queue.Overflows()
}
