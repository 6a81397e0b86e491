package hardware

import (
	"errors"
	"fmt"
	"time"

	"github.com/jetsetilly/wheelwriter/hardware/ps2"
	"github.com/jetsetilly/wheelwriter/hardware/wheelwriter"
	"github.com/jetsetilly/wheelwriter/logger"
	"github.com/jetsetilly/wheelwriter/version"
)

// PowerOn initialises the board as it is when first switched on. The
// typewriter is switched on at the same time and reports its printwheel.
func (con *Console) PowerOn() {
	con.initialise(false)
}

// Restart initialises the board after a soft reset. The printwheel detected
// at power on is still in use.
func (con *Console) Restart() {
	con.state.Resets++
	con.build()
	con.initialise(true)
}

func (con *Console) initialise(reset bool) {
	con.LEDs.SetInitializing(true)
	con.uptime = 0

	con.printf("\n%s\n", version.Banner())
	con.statusf(con.styles.banner.Render, "%s", version.Banner())

	// the typewriter answers on the bus
	responding := true

	if reset {
		con.printf("%s %d\n\n", "Watchdog resets:", con.state.Resets)
		con.statusf(con.styles.reset.Render, "reset %d", con.state.Resets)
		geom, _ := wheelwriter.GeometryFor(con.state.Printwheel)
		con.Codec.SetGeometry(geom)
	} else {
		con.printf("Power on reset\n\n")
		con.printf("Initializing")
		if !con.cfg.TypewriterOff {
			if con.cfg.TypewriterWarm {
				con.Typewriter.Warm()
			} else {
				con.Typewriter.PowerOn()
			}
		}

		p, ok := con.watchPrintwheel()
		if !ok {
			p, ok = con.queryPrintwheel()
		}
		if ok {
			con.setPrintwheel(p)
		} else {
			responding = false
			con.LEDs.SetError(true)
			con.printf("\nWheelwriter timed out\n")
			con.statusf(con.styles.err.Render, "Wheelwriter timed out")
			con.Codec.SetGeometry(wheelwriter.Elite)
		}
	}

	if responding {
		con.detectModel()
	}

	// absorb anything else from the typewriter or the keyboard
	con.Bus.Flush()
	con.Receiver.Flush()

	con.resetKeyboard()

	con.LEDs.SetInitializing(false)

	con.printf("ESC H for help\n")
	con.printf("Ready\n")
	con.statusf(con.styles.ready.Render, "ready")

	if con.cfg.Persist {
		if err := con.state.save(); err != nil {
			logger.Log(con.ctx, "board", err)
		}
	}
}

func describePrintwheel(p wheelwriter.Printwheel) string {
	switch p {
	case wheelwriter.PrintwheelNone:
		return "No printwheel"
	}
	return p.String() + " printwheel"
}

// wait is used by the initialisation sequence to keep the board's timer
// running while it polls
type wait struct {
	con      *Console
	start    time.Time
	lastTick time.Time
	lastDot  time.Time
	timeout  time.Duration
	dots     bool
}

func (con *Console) newWait(timeout time.Duration, dots bool) *wait {
	now := time.Now()
	return &wait{
		con:      con,
		start:    now,
		lastTick: now,
		lastDot:  now,
		timeout:  timeout,
		dots:     dots,
	}
}

// step returns false once the timeout has expired
func (w *wait) step() bool {
	now := time.Now()
	if now.Sub(w.lastTick) >= tickInterval {
		w.lastTick = now
		w.con.tick()
	}
	if now.Sub(w.start) >= w.timeout {
		return false
	}
	if w.dots && now.Sub(w.lastDot) >= time.Second {
		w.lastDot = now
		w.con.printf(".")
	}
	time.Sleep(time.Millisecond)
	return true
}

// watchPrintwheel watches the bus for the typewriter's own query for the
// printwheel and the reply from the Printer Board. this is what is seen when
// the typewriter is switched on at the same time as the board
func (con *Console) watchPrintwheel() (wheelwriter.Printwheel, bool) {
	wt := con.newWait(con.cfg.DetectTimeout, true)
	state := 0

	for {
		w, ok := con.Bus.Get()
		if !ok {
			if !wt.step() {
				return 0, false
			}
			continue
		}

		switch state {
		case 0:
			if w == wheelwriter.CommandPrefix {
				state = 1
			}
		case 1:
			if w == wheelwriter.CmdQueryPrintwheel {
				state = 2
			} else {
				state = 0
			}
		case 2:
			if w == wheelwriter.CommandPrefix {
				state = 1
				continue
			}
			p, ok := wheelwriter.PrintwheelFromWord(w)
			if !ok {
				logger.Logf(con.ctx, "board", "%s is not a printwheel", w)
				state = 0
				continue
			}
			return p, true
		}
	}
}

// queryPrintwheel asks the Printer Board for the printwheel. the carriage is
// then moved from the left hand stop to the left margin, which the typewriter
// does by itself when it is switched on
func (con *Console) queryPrintwheel() (wheelwriter.Printwheel, bool) {
	con.Bus.Flush()

	err := con.Bus.PutSequence(wheelwriter.CommandPrefix, wheelwriter.CmdQueryPrintwheel)
	if err != nil {
		logger.Logf(con.ctx, "board", "printwheel query: %v", err)
		return 0, false
	}

	w, err := con.Bus.GetWait(con.cfg.QueryTimeout)
	if err != nil {
		logger.Logf(con.ctx, "board", "printwheel query: %v", err)
		return 0, false
	}

	p, ok := wheelwriter.PrintwheelFromWord(w)
	if !ok {
		// something replied so the typewriter is there. the printwheel is
		// reported as unknown
		logger.Logf(con.ctx, "board", "%s is not a printwheel", w)
		p = 0
	}

	err = con.Bus.PutSequence(wheelwriter.CommandPrefix, wheelwriter.CmdHorizontal,
		0x080, wheelwriter.LeftMargin)
	if err != nil {
		con.softError(fmt.Errorf("move to left margin: %w", err))
	}

	return p, true
}

func (con *Console) setPrintwheel(p wheelwriter.Printwheel) {
	geom, ok := wheelwriter.GeometryFor(p)
	con.Codec.SetGeometry(geom)
	con.state.Printwheel = p
	if ok {
		con.printf("\n%s\n", describePrintwheel(p))
		con.statusf(con.styles.detail.Render, "%s", describePrintwheel(p))
	} else {
		con.printf("\nUnable to determine printwheel. Assuming 12P.\n")
		con.statusf(con.styles.detail.Render, "unknown printwheel (%#02x)", uint8(p))
	}
}

// detectModel asks the typewriter which model it is. an unknown model or no
// reply is an error but the board carries on
func (con *Console) detectModel() {
	con.model = 0
	con.Bus.Flush()

	err := con.Bus.PutSequence(wheelwriter.CommandPrefix, wheelwriter.CmdQueryModel)
	if err == nil {
		var w wheelwriter.Word
		w, err = con.Bus.GetWait(con.cfg.ModelTimeout)
		if err == nil {
			if w > 0xff {
				err = fmt.Errorf("%s is not a model", w)
			} else {
				con.model = wheelwriter.Model(w)
			}
		}
	}

	if err != nil {
		logger.Logf(con.ctx, "board", "model query: %v", err)
		con.LEDs.SetError(true)
		con.printf("Unable to determine model\n")
		con.statusf(con.styles.err.Render, "unable to determine model")
		return
	}

	if !con.model.Known() {
		con.LEDs.SetError(true)
		con.printf("Unknown Wheelwriter model\n")
		con.statusf(con.styles.err.Render, "%s", con.model)
		return
	}

	con.printf("%s\n", con.model)
	con.statusf(con.styles.detail.Render, "%s", con.model)
}

func (con *Console) resetKeyboard() {
	err := con.Sender.Reset()
	switch {
	case err == nil:
		con.printf("PS/2 keyboard detected\n")
		con.statusf(con.styles.detail.Render, "PS/2 keyboard detected")
	case errors.Is(err, ps2.ErrSelfTest):
		con.LEDs.SetError(true)
		con.printf("PS/2 keyboard timed out\n")
		con.statusf(con.styles.err.Render, "PS/2 keyboard timed out")
	default:
		// no keyboard is not an error
		logger.Logf(con.ctx, "board", "no keyboard: %v", err)
	}
}
