package ps2

import (
	"fmt"
	"time"

	"github.com/jetsetilly/wheelwriter/logger"
)

// Lines is the host's view of the PS/2 clock and data lines. Both lines are
// open collector: setting a line high releases it and the device may still
// hold it low.
type Lines interface {
	SetClock(high bool)
	SetData(high bool)

	// WaitClock and WaitData block until the line is at the requested level
	// or until the timeout has elapsed. An error is returned on timeout.
	WaitClock(high bool, timeout time.Duration) error
	WaitData(high bool, timeout time.Duration) error
}

// Timeouts used by the Sender.
type Timeouts struct {
	// the longest time the device is given for each step of the bit level
	// handshake
	Bit time.Duration

	// the longest time to wait for the reply to a command
	Reply time.Duration

	// the longest time to wait for the self test result after a reset
	SelfTest time.Duration
}

// DefaultTimeouts are suitable for a real keyboard.
var DefaultTimeouts = Timeouts{
	Bit:      15 * time.Millisecond,
	Reply:    50 * time.Millisecond,
	SelfTest: time.Second,
}

// the interval at which the receive queue is checked while waiting for a
// reply
const replyPoll = time.Millisecond

// Sender transmits commands from the host to the keyboard. The reply to a
// command is read from the Receiver's queue, which means Send() must be
// called from the same goroutine that consumes scancodes.
type Sender struct {
	ctx      Context
	lines    Lines
	rx       *Receiver
	timeouts Timeouts
}

// NewSender is the preferred method of initialisation for the Sender type.
func NewSender(ctx Context, lines Lines, rx *Receiver, timeouts Timeouts) *Sender {
	return &Sender{
		ctx:      ctx,
		lines:    lines,
		rx:       rx,
		timeouts: timeouts,
	}
}

// Send a single command byte to the keyboard and wait for the acknowledge
// reply. Returns ErrTimeout if the device does not respond in time and
// ErrNoAck if the reply was anything other than an acknowledgement.
func (s *Sender) Send(cmd uint8) error {
	if err := s.frame(cmd); err != nil {
		// leave both lines released so the keyboard can talk to us again
		s.lines.SetClock(true)
		s.lines.SetData(true)
		logger.Logf(s.ctx, "ps2", "send %#02x failed: %v", cmd, err)
		return err
	}

	reply, err := s.reply(s.timeouts.Reply)
	if err != nil {
		return fmt.Errorf("reply to %#02x: %w", cmd, err)
	}
	if reply != RespAck {
		return fmt.Errorf("reply to %#02x was %#02x: %w", cmd, reply, ErrNoAck)
	}
	return nil
}

// frame performs the bit level host-to-device transfer.
func (s *Sender) frame(cmd uint8) error {
	// a frame that is already on its way to us must be allowed to complete
	deadline := time.Now().Add(s.timeouts.Bit)
	for s.rx.Busy() {
		if time.Now().After(deadline) {
			return ErrBusy
		}
		time.Sleep(replyPoll)
	}

	// request to send: clock low, data low, then release the clock. the
	// device responds by generating the clock
	s.lines.SetClock(false)
	s.lines.SetData(false)
	s.lines.SetClock(true)

	if err := s.lines.WaitClock(false, s.timeouts.Bit); err != nil {
		return fmt.Errorf("request to send: %w", ErrTimeout)
	}

	// eight data bits, least significant bit first, followed by the parity
	// bit. parity is odd so the parity bit starts high and is flipped by
	// every one bit
	parity := true
	for range 8 {
		bit := cmd&0x01 == 0x01
		if bit {
			parity = !parity
		}
		if err := s.clockOut(bit); err != nil {
			return err
		}
		cmd >>= 1
	}
	if err := s.clockOut(parity); err != nil {
		return err
	}

	// release data for the stop bit. the device acknowledges the frame by
	// pulling data low for one clock
	s.lines.SetData(true)
	if err := s.lines.WaitData(false, s.timeouts.Bit); err != nil {
		return fmt.Errorf("line acknowledge: %w", ErrTimeout)
	}
	if err := s.lines.WaitClock(false, s.timeouts.Bit); err != nil {
		return fmt.Errorf("line acknowledge: %w", ErrTimeout)
	}
	if err := s.lines.WaitClock(true, s.timeouts.Bit); err != nil {
		return fmt.Errorf("line acknowledge: %w", ErrTimeout)
	}
	if err := s.lines.WaitData(true, s.timeouts.Bit); err != nil {
		return fmt.Errorf("line acknowledge: %w", ErrTimeout)
	}

	return nil
}

// clockOut presents a bit to the device and waits for the device to clock it.
func (s *Sender) clockOut(bit bool) error {
	s.lines.SetData(bit)
	if err := s.lines.WaitClock(true, s.timeouts.Bit); err != nil {
		return fmt.Errorf("data bit: %w", ErrTimeout)
	}
	if err := s.lines.WaitClock(false, s.timeouts.Bit); err != nil {
		return fmt.Errorf("data bit: %w", ErrTimeout)
	}
	return nil
}

// reply waits for the next scancode from the receiver.
func (s *Sender) reply(timeout time.Duration) (uint8, error) {
	deadline := time.Now().Add(timeout)
	for {
		if v, ok := s.rx.Get(); ok {
			return v, nil
		}
		if time.Now().After(deadline) {
			return 0, ErrTimeout
		}
		time.Sleep(replyPoll)
	}
}

// Reset sends the reset command and waits for the keyboard to report that it
// has passed its self test.
func (s *Sender) Reset() error {
	if err := s.Send(CmdReset); err != nil {
		return fmt.Errorf("keyboard reset: %w", err)
	}
	v, err := s.reply(s.timeouts.SelfTest)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSelfTest, err)
	}
	if v != RespSelfTestPass {
		return fmt.Errorf("%w: failed (%#02x)", ErrSelfTest, v)
	}
	return nil
}

// SetLEDs sets the keyboard indicators to match the lock state. Implements
// the LEDSetter interface.
func (s *Sender) SetLEDs(locks Locks) error {
	if err := s.Send(CmdSetLEDs); err != nil {
		return fmt.Errorf("set leds: %w", err)
	}
	if err := s.Send(uint8(locks)); err != nil {
		return fmt.Errorf("set leds: %w", err)
	}
	return nil
}
