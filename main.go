package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/jetsetilly/wheelwriter/gui"
	"github.com/jetsetilly/wheelwriter/hardware"
	"github.com/jetsetilly/wheelwriter/hardware/hostlink"
	"github.com/jetsetilly/wheelwriter/hardware/parallel"
	"github.com/jetsetilly/wheelwriter/hardware/wheelwriter"
	"github.com/jetsetilly/wheelwriter/logger"
	"github.com/jetsetilly/wheelwriter/ui"
)

func main() {
	var cli struct {
		Run runCmd `cmd:"" default:"1" help:"run the printer interface"`
	}

	ctx := kong.Parse(&cli,
		kong.Name("wheelwriter"),
		kong.Description("Printer interface for the IBM Wheelwriter typewriter."),
	)
	err := ctx.Run(&kong.Context{})
	ctx.FatalIfErrorf(err)
}

type runCmd struct {
	Serial        string `name:"serial" help:"serial port connected to the host. the terminal is used if not set"`
	Baud          int    `name:"baud" default:"9600" help:"baud rate of the serial port"`
	Parallel      string `name:"parallel" help:"file or FIFO to read as the parallel port"`
	AutoLinefeed  bool   `name:"autolf" help:"a linefeed follows every carriage return"`
	Printwheel    string `name:"printwheel" default:"12P" help:"printwheel in the simulated typewriter (PS, 10P, 12P, 15P or none)"`
	TypewriterOff bool   `name:"typewriteroff" help:"the simulated typewriter is switched off"`
	Warm          bool   `name:"warm" help:"the simulated typewriter was switched on before the board"`
	Model         string `name:"model" default:"6" help:"model of the simulated typewriter (3, 5 or 6)"`
	NoKeyboard    bool   `name:"nokeyboard" help:"no PS/2 keyboard is connected"`
	NoGUI         bool   `name:"nogui" help:"do not open the window"`
	Compatible    bool   `name:"compatible" help:"buffers overwrite the oldest byte when full"`
	Ephemeral     bool   `name:"ephemeral" help:"do not load or save the board state"`
	Log           bool   `name:"log" help:"echo the log to stderr"`
}

var printwheels = map[string]wheelwriter.Printwheel{
	"PS":   wheelwriter.PrintwheelPS,
	"10P":  wheelwriter.Printwheel10P,
	"12P":  wheelwriter.Printwheel12P,
	"15P":  wheelwriter.Printwheel15P,
	"NONE": wheelwriter.PrintwheelNone,
}

var models = map[string]wheelwriter.Model{
	"3": wheelwriter.Wheelwriter3,
	"5": wheelwriter.Wheelwriter5,
	"6": wheelwriter.Wheelwriter6,
}

func (r *runCmd) config() (hardware.Config, error) {
	cfg := hardware.DefaultConfig()

	pw, ok := printwheels[strings.ToUpper(r.Printwheel)]
	if !ok {
		return cfg, fmt.Errorf("unknown printwheel: %s", r.Printwheel)
	}

	m, ok := models[r.Model]
	if !ok {
		return cfg, fmt.Errorf("unknown model: %s", r.Model)
	}

	cfg.Printwheel = pw
	cfg.Model = m
	cfg.TypewriterWarm = r.Warm
	cfg.AutoLinefeed = r.AutoLinefeed
	cfg.TypewriterOff = r.TypewriterOff
	cfg.NoKeyboard = r.NoKeyboard
	cfg.Compatible = r.Compatible
	cfg.Persist = !r.Ephemeral

	return cfg, nil
}

func (r *runCmd) Run(_ *kong.Context) error {
	if r.Log {
		logger.SetEcho(os.Stderr, false)
	}

	cfg, err := r.config()
	if err != nil {
		return err
	}

	// status lines are not written when the terminal is the host because the
	// terminal is in raw mode
	var status io.Writer

	var link *hostlink.Link
	if r.Serial != "" {
		link, err = hostlink.OpenSerial(logger.Allow, r.Serial, r.Baud, r.Compatible)
		status = os.Stdout
	} else {
		link, err = hostlink.OpenTerminal(logger.Allow, r.Compatible)
	}
	if err != nil {
		return err
	}
	defer link.Close()

	var par parallel.Port
	if r.Parallel != "" {
		latch := parallel.NewLatch()
		dev, err := parallel.OpenDevice(logger.Allow, r.Parallel, latch)
		if err != nil {
			return err
		}
		defer dev.Close()
		par = latch
	}

	con := hardware.Create(logger.Allow, cfg, link, par, status)

	if r.NoGUI {
		return runBoard(con, link, make(chan bool, 1))
	}

	u := ui.NewUI(con.Typewriter)
	con.AttachUI(u)

	var endGui chan bool
	var endBoard chan bool
	var resultGui chan error
	var resultBoard chan error

	// buffered channels. this means we don't have to worry about the gui closing
	// before the board and vice versa
	endGui = make(chan bool, 1)
	endBoard = make(chan bool, 1)

	// similarly, the result channels are buffered because we don't know the
	// order in which the gui and board will end
	resultGui = make(chan error, 1)
	resultBoard = make(chan error, 1)

	go func() {
		resultGui <- gui.Launch(endGui, u)
		endBoard <- true
	}()

	go func() {
		resultBoard <- runBoard(con, link, endBoard)
		endGui <- true
	}()

	return errors.Join(<-resultGui, <-resultBoard)
}

// runBoard powers on the board and runs it until the stop channel is
// signalled or the host goes away. the board is restarted after a soft reset
func runBoard(con *hardware.Console, link *hostlink.Link, stop chan bool) error {
	con.PowerOn()

	hook := func() error {
		select {
		case <-link.Done():
			if link.Available() {
				return nil
			}
			return errHostGone
		default:
		}
		return nil
	}

	for {
		err := con.Run(stop, hook)
		switch {
		case errors.Is(err, hardware.ErrReset):
			con.Restart()
		case errors.Is(err, errHostGone):
			err = link.Err()
			if errors.Is(err, hostlink.ErrHangup) || errors.Is(err, io.EOF) {
				return nil
			}
			return err
		default:
			return err
		}
	}
}

var errHostGone = errors.New("host has gone")
