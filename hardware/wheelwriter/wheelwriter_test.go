package wheelwriter_test

import (
	"time"

	"github.com/jetsetilly/wheelwriter/hardware/wheelwriter"
)

type testContext struct{}

func (testContext) AllowLogging() bool { return true }

// testLine records transmitted words and acknowledges each one with a word
// of all zeros, which is how the acknowledge pulse arrives at the UART
type testLine struct {
	tr    *wheelwriter.Transceiver
	words []wheelwriter.Word

	pending bool
	noAck   bool

	// words transmitted are also seen by the receiver, as happens on the
	// real bus
	loopback bool
}

func (l *testLine) Transmit(w wheelwriter.Word) error {
	l.words = append(l.words, w)
	if l.loopback {
		l.tr.Received(w)
	}
	l.pending = !l.noAck
	return nil
}

func (l *testLine) WaitBus(high bool, _ time.Duration) error {
	if high {
		return nil
	}
	if l.pending {
		l.pending = false
		l.tr.Received(0)
		return nil
	}
	return wheelwriter.ErrTimeout
}

func newTestBus() (*wheelwriter.Transceiver, *testLine) {
	l := &testLine{}
	l.tr = wheelwriter.NewTransceiver(testContext{}, l, time.Millisecond, false)
	return l.tr, l
}

type testIndicator struct {
	on     bool
	cycles int
}

func (ind *testIndicator) Busy(on bool) {
	if ind.on && !on {
		ind.cycles++
	}
	ind.on = on
}

func words(w ...wheelwriter.Word) []wheelwriter.Word {
	return w
}
