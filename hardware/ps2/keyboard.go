package ps2

import (
	"math/bits"
	"sync"
	"time"

	"github.com/jetsetilly/wheelwriter/logger"
)

// Edge is the receiving side of a keyboard-to-host transfer. The Receiver
// type implements this interface.
type Edge interface {
	ClockFalling(data bool)
}

// Frame returns the eleven bits of a keyboard-to-host frame, in the order
// they are clocked: start, data bits 0 to 7, odd parity, stop.
func Frame(v uint8) [11]bool {
	var f [11]bool
	for i := range 8 {
		f[1+i] = v&(1<<i) != 0
	}
	f[9] = bits.OnesCount8(v)%2 == 0
	f[10] = true
	return f
}

type deviceState int

const (
	devIdle deviceState = iota
	devRequest
	devReceive
	devAcknowledge
)

// Keyboard is a simulated PS/2 keyboard. It implements the Lines interface so
// it can be used directly by the Sender, and it sends frames to an Edge as a
// real keyboard would.
//
// Time is compressed. The keyboard reacts immediately to anything the host
// does, and a wait that can never be satisfied fails immediately rather than
// after the timeout.
type Keyboard struct {
	ctx  Context
	crit sync.Mutex
	host Edge

	// line levels as driven by each side. true means the line is released
	hostClock bool
	hostData  bool
	devClock  bool
	devData   bool

	state   deviceState
	shifter uint16
	bitsCt  int

	// the next command byte is the argument to the set LEDs command
	ledArg bool
	locks  Locks

	// every command byte received from the host
	commands []uint8

	// a silent keyboard completes the line level handshake but never sends
	// a reply
	silent bool
}

// NewKeyboard is the preferred method of initialisation for the Keyboard type.
func NewKeyboard(ctx Context, host Edge) *Keyboard {
	return &Keyboard{
		ctx:       ctx,
		host:      host,
		hostClock: true,
		hostData:  true,
		devClock:  true,
		devData:   true,
	}
}

// Connect plugs the keyboard into a different host. The line levels and the
// lock indicators are reset as they are when a keyboard is plugged in.
func (kb *Keyboard) Connect(host Edge) {
	kb.crit.Lock()
	defer kb.crit.Unlock()
	kb.host = host
	kb.hostClock = true
	kb.hostData = true
	kb.devClock = true
	kb.devData = true
	kb.state = devIdle
	kb.ledArg = false
	kb.locks = 0
}

// SetSilent stops the keyboard from replying to commands.
func (kb *Keyboard) SetSilent(silent bool) {
	kb.crit.Lock()
	defer kb.crit.Unlock()
	kb.silent = silent
}

// LEDs returns the state of the keyboard indicators.
func (kb *Keyboard) LEDs() Locks {
	kb.crit.Lock()
	defer kb.crit.Unlock()
	return kb.locks
}

// Commands returns every command byte received from the host, including the
// arguments to commands.
func (kb *Keyboard) Commands() []uint8 {
	kb.crit.Lock()
	defer kb.crit.Unlock()
	return append([]uint8(nil), kb.commands...)
}

// Transmit sends the scancodes to the host, one frame per scancode.
func (kb *Keyboard) Transmit(codes ...uint8) {
	kb.crit.Lock()
	defer kb.crit.Unlock()
	for _, c := range codes {
		kb.transmit(c)
	}
}

// TransmitFrame sends a raw eleven bit frame to the host. Used to present the
// host with malformed frames.
func (kb *Keyboard) TransmitFrame(f [11]bool) {
	kb.crit.Lock()
	defer kb.crit.Unlock()
	for _, b := range f {
		kb.host.ClockFalling(b)
	}
}

func (kb *Keyboard) transmit(v uint8) {
	for _, b := range Frame(v) {
		kb.host.ClockFalling(b)
	}
}

func (kb *Keyboard) clock() bool {
	return kb.hostClock && kb.devClock
}

func (kb *Keyboard) data() bool {
	return kb.hostData && kb.devData
}

// SetClock implements the Lines interface.
func (kb *Keyboard) SetClock(high bool) {
	kb.crit.Lock()
	defer kb.crit.Unlock()

	// the host releasing the clock while holding data low is a request to send
	if high && !kb.hostClock && !kb.hostData {
		kb.state = devRequest
		kb.shifter = 0
		kb.bitsCt = 0
	}
	kb.hostClock = high
}

// SetData implements the Lines interface.
func (kb *Keyboard) SetData(high bool) {
	kb.crit.Lock()
	defer kb.crit.Unlock()
	kb.hostData = high
}

// WaitClock implements the Lines interface.
func (kb *Keyboard) WaitClock(high bool, _ time.Duration) error {
	kb.crit.Lock()
	defer kb.crit.Unlock()

	for kb.clock() != high {
		if !kb.stepClock() {
			return ErrTimeout
		}
	}
	return nil
}

// WaitData implements the Lines interface.
func (kb *Keyboard) WaitData(high bool, _ time.Duration) error {
	kb.crit.Lock()
	defer kb.crit.Unlock()

	for kb.data() != high {
		if !kb.stepData() {
			return ErrTimeout
		}
	}
	return nil
}

// stepClock advances the device's clock generation. Returns false if the
// device has no reason to change the clock line.
func (kb *Keyboard) stepClock() bool {
	switch kb.state {
	case devRequest:
		kb.devClock = false
		kb.state = devReceive
		return true

	case devReceive:
		if !kb.devClock {
			// the device samples the data line on the rising edge
			kb.devClock = true
			if kb.bitsCt < 9 && kb.hostData {
				kb.shifter |= 1 << kb.bitsCt
			}
			kb.bitsCt++
			return true
		}
		kb.devClock = false
		return true

	case devAcknowledge:
		kb.devClock = !kb.devClock
		return true
	}
	return false
}

// stepData advances the device's use of the data line. Returns false if the
// device has no reason to change the data line.
func (kb *Keyboard) stepData() bool {
	switch kb.state {
	case devReceive:
		// nine bits received and the stop bit is on the line
		if kb.bitsCt < 9 {
			return false
		}
		if !kb.hostData {
			logger.Log(kb.ctx, "keyboard", "missing stop bit")
		}
		kb.devData = false
		kb.state = devAcknowledge
		return true

	case devAcknowledge:
		kb.devData = true
		kb.devClock = true
		kb.state = devIdle
		kb.command()
		return true
	}
	return false
}

// command is called at the end of a successful host-to-device transfer.
func (kb *Keyboard) command() {
	if kb.silent {
		return
	}

	if bits.OnesCount16(kb.shifter&0x1ff)%2 == 0 {
		logger.Log(kb.ctx, "keyboard", "parity error in command")
		kb.transmit(0xfe)
		return
	}

	cmd := uint8(kb.shifter)
	kb.commands = append(kb.commands, cmd)

	if kb.ledArg {
		kb.ledArg = false
		kb.locks = Locks(cmd) & (ScrollLock | NumLock | CapsLock)
		kb.transmit(RespAck)
		return
	}

	switch cmd {
	case CmdReset:
		kb.locks = 0
		kb.transmit(RespAck)
		kb.transmit(RespSelfTestPass)
	case CmdSetLEDs:
		kb.ledArg = true
		kb.transmit(RespAck)
	case 0xee:
		// echo
		kb.transmit(0xee)
	case 0xf2:
		// read ID
		kb.transmit(RespAck)
		kb.transmit(0xab)
		kb.transmit(0x83)
	default:
		kb.transmit(RespAck)
	}
}

// NoDevice implements the Lines interface for a port with nothing attached.
// Every wait fails.
type NoDevice struct{}

func (NoDevice) SetClock(_ bool) {}
func (NoDevice) SetData(_ bool)  {}

func (NoDevice) WaitClock(high bool, timeout time.Duration) error {
	if high {
		return nil
	}
	time.Sleep(timeout)
	return ErrTimeout
}

func (NoDevice) WaitData(high bool, timeout time.Duration) error {
	if high {
		return nil
	}
	time.Sleep(timeout)
	return ErrTimeout
}
