package ps2_test

import (
	"testing"

	"github.com/jetsetilly/wheelwriter/hardware/ps2"
	"github.com/jetsetilly/wheelwriter/logger"
	"github.com/jetsetilly/wheelwriter/test"
)

type testContext struct{}

func (testContext) AllowLogging() bool { return true }

var _ logger.Permission = testContext{}

func clockFrame(rx *ps2.Receiver, f [11]bool) {
	for _, b := range f {
		rx.ClockFalling(b)
	}
}

func drain(rx *ps2.Receiver) []uint8 {
	var s []uint8
	for {
		v, ok := rx.Get()
		if !ok {
			return s
		}
		s = append(s, v)
	}
}

func TestReceiveFrames(t *testing.T) {
	rx := ps2.NewReceiver(testContext{}, false)

	for _, v := range []uint8{0x1c, 0xf0, 0x1c, 0x00, 0xff} {
		clockFrame(rx, ps2.Frame(v))
		test.ExpectEquality(t, rx.Busy(), false)
	}

	got := drain(rx)
	test.DemandEquality(t, len(got), 5)
	test.ExpectEquality(t, got[0], uint8(0x1c))
	test.ExpectEquality(t, got[1], uint8(0xf0))
	test.ExpectEquality(t, got[2], uint8(0x1c))
	test.ExpectEquality(t, got[3], uint8(0x00))
	test.ExpectEquality(t, got[4], uint8(0xff))
}

func TestReceiveBadParity(t *testing.T) {
	rx := ps2.NewReceiver(testContext{}, false)

	f := ps2.Frame(0x5a)
	f[9] = !f[9]
	clockFrame(rx, f)
	test.ExpectEquality(t, rx.Available(), false)
	test.ExpectEquality(t, rx.Busy(), false)

	// the receiver has recovered and the next frame is accepted
	clockFrame(rx, ps2.Frame(0x29))
	got := drain(rx)
	test.DemandEquality(t, len(got), 1)
	test.ExpectEquality(t, got[0], uint8(0x29))
}

func TestReceiveBadStop(t *testing.T) {
	rx := ps2.NewReceiver(testContext{}, false)

	f := ps2.Frame(0x12)
	f[10] = false
	clockFrame(rx, f)
	test.ExpectEquality(t, rx.Available(), false)

	clockFrame(rx, ps2.Frame(0x12))
	got := drain(rx)
	test.DemandEquality(t, len(got), 1)
	test.ExpectEquality(t, got[0], uint8(0x12))
}

func TestReceiveIdleLine(t *testing.T) {
	rx := ps2.NewReceiver(testContext{}, false)

	// edges with the data line high are not start bits
	for range 5 {
		rx.ClockFalling(true)
	}
	test.ExpectEquality(t, rx.Busy(), false)

	rx.ClockFalling(false)
	test.ExpectEquality(t, rx.Busy(), true)
}

func TestReceiveOverflow(t *testing.T) {
	rx := ps2.NewReceiver(testContext{}, false)
	for i := range 20 {
		clockFrame(rx, ps2.Frame(uint8(i)))
	}
	test.ExpectEquality(t, rx.Overflows(), 4)

	got := drain(rx)
	test.DemandEquality(t, len(got), 16)
	test.ExpectEquality(t, got[0], uint8(0))
	test.ExpectEquality(t, got[15], uint8(15))

	rx.Flush()
	test.ExpectEquality(t, rx.Available(), false)
}
