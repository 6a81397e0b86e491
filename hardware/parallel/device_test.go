//go:build unix

package parallel_test

import (
	"os"
	"testing"
	"time"

	"github.com/jetsetilly/wheelwriter/hardware/parallel"
	"github.com/jetsetilly/wheelwriter/test"
)

func TestDevice(t *testing.T) {
	r, w, err := os.Pipe()
	test.DemandSuccess(t, err)

	l := parallel.NewLatch()
	dev := parallel.NewDevice(testContext{}, r, l)

	_, err = w.Write([]byte("hello\r\n"))
	test.ExpectSuccess(t, err)

	got := take(l, 7, time.Second)
	test.ExpectEquality(t, string(got), "hello\r\n")

	// the device stops at the end of the data
	test.ExpectSuccess(t, w.Close())
	select {
	case <-dev.Done():
	case <-time.After(time.Second):
		t.Fatalf("device did not stop")
	}
	test.ExpectSuccess(t, dev.Close())
}

func TestDeviceClose(t *testing.T) {
	r, w, err := os.Pipe()
	test.DemandSuccess(t, err)
	defer w.Close()

	l := parallel.NewLatch()
	dev := parallel.NewDevice(testContext{}, r, l)

	// nothing is written and the device is waiting in poll
	test.ExpectSuccess(t, dev.Close())
	test.ExpectEquality(t, l.Ready(), false)
}
