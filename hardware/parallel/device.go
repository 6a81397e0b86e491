//go:build unix

package parallel

import (
	"errors"
	"fmt"
	"os"

	"github.com/jetsetilly/wheelwriter/logger"
	"golang.org/x/sys/unix"
)

// how long each poll of the device waits for data, in milliseconds
const pollInterval = 100

// Device feeds the Latch from a file descriptor, usually a named pipe that
// the host prints to.
type Device struct {
	ctx   Context
	f     *os.File
	latch *Latch

	done chan bool
	quit chan bool
}

// OpenDevice opens the named device and starts feeding the Latch. A named
// pipe is opened for reading and writing so that it stays open between print
// jobs.
func OpenDevice(ctx Context, name string, latch *Latch) (*Device, error) {
	f, err := os.OpenFile(name, os.O_RDWR, 0)
	if err != nil {
		f, err = os.Open(name)
		if err != nil {
			return nil, fmt.Errorf("parallel: %w", err)
		}
	}
	return NewDevice(ctx, f, latch), nil
}

// NewDevice is the preferred method of initialisation for the Device type.
func NewDevice(ctx Context, f *os.File, latch *Latch) *Device {
	dev := &Device{
		ctx:   ctx,
		f:     f,
		latch: latch,
		done:  make(chan bool),
		quit:  make(chan bool),
	}
	go dev.run()
	return dev
}

func (dev *Device) run() {
	defer close(dev.done)

	fd := int(dev.f.Fd())
	buf := make([]byte, 64)

	for {
		select {
		case <-dev.quit:
			return
		default:
		}

		fds := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}
		n, err := unix.Poll(fds, pollInterval)
		if err != nil {
			if errors.Is(err, unix.EINTR) {
				continue
			}
			logger.Logf(dev.ctx, "parallel", "poll: %v", err)
			return
		}
		if n == 0 {
			continue
		}

		if fds[0].Revents&unix.POLLIN == 0 {
			// the writer has gone and there is nothing left to read
			if fds[0].Revents&(unix.POLLHUP|unix.POLLERR) != 0 {
				logger.Log(dev.ctx, "parallel", "device hung up")
				return
			}
			continue
		}

		c, err := unix.Read(fd, buf)
		if err != nil {
			if errors.Is(err, unix.EINTR) || errors.Is(err, unix.EAGAIN) {
				continue
			}
			logger.Logf(dev.ctx, "parallel", "read: %v", err)
			return
		}
		if c == 0 {
			logger.Log(dev.ctx, "parallel", "end of data")
			return
		}

		for _, v := range buf[:c] {
			if err := dev.latch.Strobe(v); err != nil {
				return
			}
		}
	}
}

// Done is closed when the device has stopped feeding the Latch.
func (dev *Device) Done() <-chan bool {
	return dev.done
}

// Close stops the device and closes the file.
func (dev *Device) Close() error {
	close(dev.quit)
	dev.latch.Stop()
	<-dev.done
	return dev.f.Close()
}
