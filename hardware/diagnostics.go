package hardware

import (
	"fmt"
	"time"

	"github.com/jetsetilly/wheelwriter/controller"
	"github.com/jetsetilly/wheelwriter/version"
)

// Banner implements the controller.Diagnostics interface.
func (con *Console) Banner() string {
	return version.Banner()
}

// Uptime implements the controller.Diagnostics interface.
func (con *Console) Uptime() time.Duration {
	return con.uptime
}

// Port implements the controller.Diagnostics interface. There are no real
// ports so the values are put together from the state of the board. An LED
// or a switch is on when its bit is zero.
//
//	P0: bit 0 auto linefeed switch, bits 4-6 red, amber and green LEDs
//	P1: bit 0 parallel ACK, bit 1 parallel BUSY, bit 2 Wheelwriter bus
//	P2: the most recent byte from the parallel port
//	P3: unused
func (con *Console) Port(n int) uint8 {
	switch n {
	case 0:
		v := uint8(0xff)
		if con.cfg.AutoLinefeed {
			v &^= 0x01
		}
		green, amber, red := con.LEDs.State()
		if red {
			v &^= 0x10
		}
		if amber {
			v &^= 0x20
		}
		if green {
			v &^= 0x40
		}
		return v
	case 1:
		v := uint8(0xff)
		if con.par == nil || !con.par.Ready() {
			v &^= 0x02
		}
		return v
	case 2:
		return con.lastParallel
	}
	return 0xff
}

// ErrorIndicator implements the controller.Diagnostics interface.
func (con *Console) ErrorIndicator(on bool) {
	con.LEDs.SetError(on)
}

// Reset implements the controller.Diagnostics interface. The reset happens
// when the firmware loop next returns.
func (con *Console) Reset() {
	con.resetPending = true
}

// Variables implements the controller.Diagnostics interface.
func (con *Console) Variables() []controller.Variable {
	return []controller.Variable{
		{Name: "initializing", Value: fmt.Sprintf("%v", con.LEDs.Initializing())},
		{Name: "printwheel", Value: fmt.Sprintf("0x%02X", uint8(con.state.Printwheel))},
		{Name: "model", Value: fmt.Sprintf("0x%02X", uint8(con.model))},
		{Name: "resets", Value: fmt.Sprintf("%d", con.state.Resets)},
		{Name: "power ons", Value: fmt.Sprintf("%d", con.state.PowerOns)},
		{Name: "overflows", Value: fmt.Sprintf("kb=%d ww=%d", con.Receiver.Overflows(), con.Bus.Overflows())},
	}
}
