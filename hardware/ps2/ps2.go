// Package ps2 implements the host side of a PS/2 keyboard interface: the
// per-edge frame receiver, the host-to-device command sender and the
// decoder that turns scancode set 2 sequences into keys.
//
// The package also contains a simulated keyboard that implements the device
// side of the protocol. It is used by the tests and by the application when
// there is no real keyboard hardware to drive.
package ps2

import (
	"errors"

	"github.com/jetsetilly/wheelwriter/logger"
)

// Context is required by the types in the package.
type Context interface {
	logger.Permission
}

// Sentinel errors returned by the Sender.
var (
	ErrTimeout = errors.New("ps2: timeout")
	ErrNoAck   = errors.New("ps2: no acknowledge")
	ErrBusy    = errors.New("ps2: receiver busy")

	// the keyboard acknowledged the reset command but did not report the
	// result of its self test
	ErrSelfTest = errors.New("ps2: self test")
)

// Commands and responses used by the package.
const (
	CmdReset   = 0xff
	CmdSetLEDs = 0xed

	RespAck          = 0xfa
	RespSelfTestPass = 0xaa
)
