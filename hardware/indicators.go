package hardware

import "sync"

// the number of ticks in one second
const ticksPerSecond = 20

// Indicators are the three LEDs on the board. Green shows that the firmware
// loop is running. Amber is lit while a command is sent to the typewriter.
// Red flashes once a second after an error.
//
// All three flash together while the board is initialising.
type Indicators struct {
	crit sync.Mutex

	green bool
	amber bool
	red   bool

	errorFlash   bool
	initializing bool
	ticks        int
}

// Busy implements the wheelwriter.Indicator interface.
func (ind *Indicators) Busy(on bool) {
	ind.crit.Lock()
	defer ind.crit.Unlock()
	if !ind.initializing {
		ind.amber = on
	}
}

// SetError starts or stops the red LED flashing.
func (ind *Indicators) SetError(on bool) {
	ind.crit.Lock()
	defer ind.crit.Unlock()
	ind.errorFlash = on
	if !on {
		ind.red = false
	}
}

// Error returns true if the red LED is flashing.
func (ind *Indicators) Error() bool {
	ind.crit.Lock()
	defer ind.crit.Unlock()
	return ind.errorFlash
}

// SetInitializing starts or stops the initialisation pattern. All LEDs are
// switched off at the end of initialisation.
func (ind *Indicators) SetInitializing(on bool) {
	ind.crit.Lock()
	defer ind.crit.Unlock()
	ind.initializing = on
	if !on {
		ind.green = false
		ind.amber = false
		ind.red = false
	}
}

// Initializing returns true while the board is initialising.
func (ind *Indicators) Initializing() bool {
	ind.crit.Lock()
	defer ind.crit.Unlock()
	return ind.initializing
}

// Heartbeat toggles the green LED.
func (ind *Indicators) Heartbeat() {
	ind.crit.Lock()
	defer ind.crit.Unlock()
	if !ind.initializing {
		ind.green = !ind.green
	}
}

// Tick advances the LED timing by one tick.
func (ind *Indicators) Tick() {
	ind.crit.Lock()
	defer ind.crit.Unlock()

	if ind.initializing {
		on := ind.ticks < ticksPerSecond/2
		ind.green = on
		ind.amber = on
		ind.red = on
	}

	ind.ticks++
	if ind.ticks == ticksPerSecond {
		ind.ticks = 0
		if ind.errorFlash {
			ind.red = !ind.red
		}
	}
}

// State returns the state of the green, amber and red LEDs.
func (ind *Indicators) State() (bool, bool, bool) {
	ind.crit.Lock()
	defer ind.crit.Unlock()
	return ind.green, ind.amber, ind.red
}
