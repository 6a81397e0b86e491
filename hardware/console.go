// Package hardware assembles the interface board. The Console type owns the
// protocol engines, the firmware loop and the simulated devices that stand in
// for the PS/2 keyboard and the typewriter.
package hardware

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/wheelwriter/controller"
	"github.com/jetsetilly/wheelwriter/hardware/parallel"
	"github.com/jetsetilly/wheelwriter/hardware/printerboard"
	"github.com/jetsetilly/wheelwriter/hardware/ps2"
	"github.com/jetsetilly/wheelwriter/hardware/wheelwriter"
	"github.com/jetsetilly/wheelwriter/logger"
	"github.com/jetsetilly/wheelwriter/ui"
)

// Context is required by the Console.
type Context interface {
	logger.Permission
}

// ErrReset is returned by Run() when a soft reset has been requested. The
// board should be restarted with Restart() and then run again.
var ErrReset = errors.New("board reset")

// Host is the serial link to the host computer. The hostlink.Link type
// implements this interface.
type Host interface {
	Available() bool
	Get() (uint8, bool)
	Write(p []byte) (int, error)
}

// Config is the setup of the board and the devices attached to it.
type Config struct {
	// the printwheel installed in the typewriter
	Printwheel wheelwriter.Printwheel

	// DIP switch 1. a linefeed follows every carriage return
	AutoLinefeed bool

	// ring buffers overwrite the oldest entry when full
	Compatible bool

	// the typewriter is switched off
	TypewriterOff bool

	// the typewriter was switched on before the board and does not report
	// its printwheel
	TypewriterWarm bool

	// the model reported by the typewriter
	Model wheelwriter.Model

	// there is no PS/2 keyboard plugged in
	NoKeyboard bool

	// how long to wait for the typewriter to report the printwheel
	DetectTimeout time.Duration

	// how long to wait for replies to the printwheel and model queries
	QueryTimeout time.Duration
	ModelTimeout time.Duration

	// timeout for each wait on the Wheelwriter bus
	BusTimeout time.Duration

	Keyboard ps2.Timeouts

	// save the board state between runs
	Persist bool
}

// DefaultConfig returns the normal board configuration.
func DefaultConfig() Config {
	return Config{
		Printwheel:    wheelwriter.Printwheel12P,
		Model:         wheelwriter.Wheelwriter6,
		DetectTimeout: 6 * time.Second,
		QueryTimeout:  3 * time.Second,
		ModelTimeout:  500 * time.Millisecond,
		BusTimeout:    100 * time.Millisecond,
		Keyboard:      ps2.DefaultTimeouts,
		Persist:       true,
	}
}

// Console is the interface board with a typewriter and a keyboard attached.
type Console struct {
	ctx    Context
	cfg    Config
	host   Host
	par    parallel.Port
	status io.Writer
	styles styles
	u      *ui.UI

	// the devices survive a soft reset
	Keyboard   *ps2.Keyboard
	Typewriter *printerboard.Board
	LEDs       Indicators

	// the firmware is recreated by a soft reset
	Receiver *ps2.Receiver
	Sender   *ps2.Sender
	Decoder  *ps2.Decoder
	Bus      *wheelwriter.Transceiver
	Codec    *wheelwriter.Codec
	Monitor  *wheelwriter.Monitor
	Printer  *controller.Printer
	Keys     *controller.KeyRouter

	state State
	lim   *limiter

	// the reply to the model query. zero if there was no reply
	model wheelwriter.Model

	uptime       time.Duration
	heartbeat    int
	resetPending bool
	lastParallel uint8
}

// Create the board. The host is where the board's output is echoed. The
// parallel port can be nil. Status lines for the operator are written to the
// status writer, which can also be nil.
func Create(ctx Context, cfg Config, host Host, par parallel.Port, status io.Writer) *Console {
	con := &Console{
		ctx:    ctx,
		cfg:    cfg,
		host:   host,
		par:    par,
		status: status,
		styles: newStyles(),
	}

	con.Typewriter = printerboard.NewBoard(ctx, cfg.Printwheel)
	con.Typewriter.SetModel(cfg.Model)

	if cfg.Persist {
		var err error
		con.state, err = loadState()
		if err != nil {
			logger.Log(ctx, "board", err)
		}
	}
	con.state.PowerOns++
	con.state.Resets = 0

	con.build()
	return con
}

// build the firmware. the keyboard is recreated because it is connected to
// the new receiver
func (con *Console) build() {
	con.Receiver = ps2.NewReceiver(con.ctx, con.cfg.Compatible)

	var lines ps2.Lines = ps2.NoDevice{}
	if !con.cfg.NoKeyboard {
		if con.Keyboard == nil {
			con.Keyboard = ps2.NewKeyboard(con.ctx, con.Receiver)
		} else {
			con.Keyboard.Connect(con.Receiver)
		}
		lines = con.Keyboard
	}
	con.Sender = ps2.NewSender(con.ctx, lines, con.Receiver, con.cfg.Keyboard)
	con.Decoder = ps2.NewDecoder(con.ctx, con.Sender)

	con.Bus = wheelwriter.NewTransceiver(con.ctx, con.Typewriter, con.cfg.BusTimeout, con.cfg.Compatible)
	con.Typewriter.Attach(con.Bus)
	con.Codec = wheelwriter.NewCodec(con.ctx, con.Bus, &con.LEDs)
	con.Monitor = wheelwriter.NewMonitor(con.Codec, con.host)

	con.Printer = controller.NewPrinter(con.ctx, con.Codec, con.host, con, con.cfg.AutoLinefeed)
	con.Keys = controller.NewKeyRouter(con.Printer, con.Codec)

	con.resetPending = false
}

// AttachUI connects the GUI to the board.
func (con *Console) AttachUI(u *ui.UI) {
	con.u = u
}

// State returns the board state that is kept between runs.
func (con *Console) State() State {
	return con.state
}

// printf writes to the host
func (con *Console) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(con.host, format, args...)
}

// statusf writes a styled line for the operator
func (con *Console) statusf(style func(...string) string, format string, args ...any) {
	if con.status == nil {
		return
	}
	_, _ = fmt.Fprintln(con.status, style(fmt.Sprintf(format, args...)))
}

// softError is an error that the board can continue after. the red LED
// flashes until it is cleared from the host
func (con *Console) softError(err error) {
	con.LEDs.SetError(true)
	logger.Log(con.ctx, "board", err)
	con.statusf(con.styles.err.Render, "%v", err)
}

// Run the firmware loop until the stop channel is signalled or a soft reset
// is requested. The hook function is called after every step.
func (con *Console) Run(stop chan bool, hook func() error) error {
	con.lim = newLimiter()
	defer con.lim.Stop()

	for {
		select {
		case <-stop:
			return nil
		default:
		}

		busy, err := con.Step()
		if err != nil {
			return err
		}

		if hook != nil {
			err = hook()
			if err != nil {
				return err
			}
		}

		if con.lim.Ticked() {
			con.tick()
		}
		if !busy && con.lim.Wait() {
			con.tick()
		}
	}
}

// Step makes one pass through the firmware loop. It returns true if there was
// anything to do.
func (con *Console) Step() (bool, error) {
	busy := con.handleInput()

	// the green LED toggles every 256 passes through the loop
	con.heartbeat++
	if con.heartbeat&0xff == 0 {
		con.LEDs.Heartbeat()
	}

	if c, ok := con.host.Get(); ok {
		busy = true
		if err := con.Printer.Print(c); err != nil {
			con.softError(err)
		}
	}

	if con.par != nil && con.par.Ready() {
		busy = true
		con.lastParallel = con.par.Data()
		if err := con.Printer.Print(con.lastParallel); err != nil {
			con.softError(err)
		}
		con.par.Acknowledge()
	}

	if sc, ok := con.Receiver.Get(); ok {
		busy = true
		k := con.Decoder.Step(sc)
		if err := con.Keys.Key(k, con.Decoder.Modifiers()); err != nil {
			con.softError(err)
		}
	}

	if w, ok := con.Bus.Get(); ok {
		busy = true
		con.Monitor.Step(w)
	}

	if con.resetPending {
		return busy, ErrReset
	}

	return busy, nil
}

// tick is the board's 50ms timer
func (con *Console) tick() {
	con.uptime += tickInterval
	con.LEDs.Tick()

	if con.u == nil {
		return
	}

	var st ui.Status
	st.Green, st.Amber, st.Red = con.LEDs.State()
	if con.Keyboard != nil {
		locks := con.Keyboard.LEDs()
		st.ScrollLock = locks&ps2.ScrollLock == ps2.ScrollLock
		st.NumLock = locks&ps2.NumLock == ps2.NumLock
		st.CapsLock = locks&ps2.CapsLock == ps2.CapsLock
	}
	st.Uptime = con.uptime

	select {
	case con.u.SetStatus <- st:
	default:
	}
}
