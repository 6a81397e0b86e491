// Package hostlink is the serial link to the host computer. Bytes from the
// host are queued by a reader goroutine until the firmware loop is ready for
// them. While the queue is full the reader stops reading, which is as close
// as a host gets to dropping CTS.
package hostlink

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jetsetilly/wheelwriter/hardware/ring"
	"github.com/jetsetilly/wheelwriter/logger"
)

// Context allows the Link to log.
type Context interface {
	logger.Permission
}

// ErrHangup is the reason the link stopped when the operator ends the
// session from the terminal.
var ErrHangup = errors.New("hangup")

// the number of bytes that can be waiting. must be a power of two
const queueSize = 256

// Link connects the firmware to the host.
//
// The reader goroutine is the only producer for the queue. Available(),
// Get() and Write() are called by the firmware loop.
type Link struct {
	ctx    Context
	r      io.Reader
	w      io.Writer
	closer io.Closer

	// a read of zero bytes with io.EOF means no data yet rather than the end
	// of the stream. this is how a serial port with a read timeout behaves
	idleEOF bool

	// byte from the host that ends the session. zero for none
	hangup uint8

	queue      *ring.Buffer[uint8]
	compatible bool
	closed     atomic.Bool

	crit sync.Mutex
	err  error
	done chan bool
}

func newLink(ctx Context, r io.Reader, w io.Writer, compatible bool) *Link {
	return &Link{
		ctx:        ctx,
		r:          r,
		w:          w,
		queue:      ring.New[uint8](queueSize, compatible),
		compatible: compatible,
		done:       make(chan bool),
	}
}

// NewLink is the preferred method of initialisation for the Link type. The
// ReadWriter is the host. If it is also an io.Closer it is closed by Close().
func NewLink(ctx Context, rw io.ReadWriter, compatible bool) *Link {
	l := newLink(ctx, rw, rw, compatible)
	if c, ok := rw.(io.Closer); ok {
		l.closer = c
	}
	l.start()
	return l
}

func (l *Link) start() {
	go l.reader()
}

func (l *Link) reader() {
	defer close(l.done)

	b := make([]byte, 64)
	for !l.closed.Load() {
		n, err := l.r.Read(b)
		for _, v := range b[:n] {
			if l.hangup != 0 && v == l.hangup {
				l.stop(ErrHangup)
				return
			}
			if !l.push(v) {
				return
			}
		}
		if err != nil {
			if errors.Is(err, io.EOF) && l.idleEOF {
				continue
			}
			l.stop(err)
			return
		}
	}
}

// push returns false if the link was closed while waiting for room in the
// queue
func (l *Link) push(v uint8) bool {
	for !l.compatible && l.queue.Len() >= l.queue.Cap() {
		if l.closed.Load() {
			return false
		}
		time.Sleep(time.Millisecond)
	}
	if err := l.queue.Push(v); err != nil {
		logger.Logf(l.ctx, "hostlink", "byte %#02x lost: %v", v, err)
	}
	return true
}

func (l *Link) stop(err error) {
	l.crit.Lock()
	defer l.crit.Unlock()
	if l.err == nil {
		l.err = err
		if !errors.Is(err, ErrHangup) {
			logger.Logf(l.ctx, "hostlink", "reader stopped: %v", err)
		}
	}
}

// Err returns the reason the link stopped receiving. Bytes already received
// can still be read with Get().
func (l *Link) Err() error {
	l.crit.Lock()
	defer l.crit.Unlock()
	return l.err
}

// Done is closed when the reader has stopped.
func (l *Link) Done() <-chan bool {
	return l.done
}

// Available returns true if there is a byte from the host waiting.
func (l *Link) Available() bool {
	return l.queue.Available()
}

// Get returns the oldest byte from the host. The boolean result is false if
// there is no byte waiting.
func (l *Link) Get() (uint8, bool) {
	return l.queue.Get()
}

// Write sends bytes to the host.
func (l *Link) Write(p []byte) (int, error) {
	n, err := l.w.Write(p)
	if err != nil {
		return n, fmt.Errorf("hostlink: %w", err)
	}
	return n, nil
}

// Close stops the reader and closes the connection to the host.
func (l *Link) Close() error {
	l.closed.Store(true)
	if l.closer != nil {
		return l.closer.Close()
	}
	return nil
}

// Overflows returns the number of bytes lost because the queue was full. This
// can only happen when the Link was created in compatible mode.
func (l *Link) Overflows() int {
	return l.queue.Overflows()
}
