package hardware_test

import (
	"testing"

	"github.com/jetsetilly/wheelwriter/hardware"
	"github.com/jetsetilly/wheelwriter/test"
)

func TestIndicatorsInitializing(t *testing.T) {
	var ind hardware.Indicators
	ind.SetInitializing(true)

	// all three flash together, on for half a second
	ind.Tick()
	g, a, r := ind.State()
	test.ExpectEquality(t, g && a && r, true)
	for range 10 {
		ind.Tick()
	}
	g, a, r = ind.State()
	test.ExpectEquality(t, g || a || r, false)

	// busy and heartbeat do not interfere
	ind.Busy(true)
	ind.Heartbeat()
	g, a, _ = ind.State()
	test.ExpectEquality(t, g || a, false)

	ind.SetInitializing(false)
	g, a, r = ind.State()
	test.ExpectEquality(t, g || a || r, false)
}

func TestIndicatorsError(t *testing.T) {
	var ind hardware.Indicators
	ind.SetError(true)

	// the red LED toggles once a second
	var changes int
	_, _, prev := ind.State()
	for range 60 {
		ind.Tick()
		_, _, r := ind.State()
		if r != prev {
			changes++
		}
		prev = r
	}
	test.ExpectEquality(t, changes, 3)

	ind.SetError(false)
	_, _, r := ind.State()
	test.ExpectEquality(t, r, false)
	test.ExpectEquality(t, ind.Error(), false)
}

func TestIndicatorsBusy(t *testing.T) {
	var ind hardware.Indicators
	ind.Busy(true)
	_, a, _ := ind.State()
	test.ExpectEquality(t, a, true)
	ind.Busy(false)
	_, a, _ = ind.State()
	test.ExpectEquality(t, a, false)

	ind.Heartbeat()
	g, _, _ := ind.State()
	test.ExpectEquality(t, g, true)
}
