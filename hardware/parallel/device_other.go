//go:build !unix

package parallel

import (
	"errors"
)

// Device is not available on this platform.
type Device struct {
	done chan bool
}

// OpenDevice is not available on this platform.
func OpenDevice(_ Context, name string, _ *Latch) (*Device, error) {
	return nil, errors.New("parallel: devices are not supported on this platform")
}

// Done is closed when the device has stopped feeding the Latch.
func (dev *Device) Done() <-chan bool {
	return dev.done
}

// Close stops the device.
func (dev *Device) Close() error {
	return nil
}
