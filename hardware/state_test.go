package hardware

import (
	"testing"

	"github.com/jetsetilly/wheelwriter/hardware/wheelwriter"
	"github.com/jetsetilly/wheelwriter/test"
)

func TestState(t *testing.T) {
	s := State{
		Printwheel: wheelwriter.Printwheel15P,
		PowerOns:   12,
		Resets:     3,
	}

	r, err := parseState(s.String())
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, r, s)

	r, err = parseState("")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, r, State{})

	// unknown keys are ignored
	r, err = parseState("printwheel 0x40\ncolour 4\n")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, r.Printwheel, wheelwriter.Printwheel10P)

	_, err = parseState("printwheel")
	test.ExpectFailure(t, err)
}
