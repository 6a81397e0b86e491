// Package printerboard simulates the Printer Board of the Wheelwriter, which
// sits on the far side of the bus from the Function Board. It acknowledges
// every word, moves the carriage and the paper in response to commands and
// keeps a record of every character struck onto the paper.
//
// The Board also stands in for the typewriter's own keyboard, whose key
// presses appear on the bus as command sequences.
package printerboard

import (
	"sync"
	"time"

	"github.com/jetsetilly/wheelwriter/hardware/wheelwriter"
	"github.com/jetsetilly/wheelwriter/logger"
)

// Context allows the Board to log.
type Context interface {
	logger.Permission
}

// Receiver is the Function Board UART. The wheelwriter.Transceiver type
// implements this interface.
type Receiver interface {
	Received(w wheelwriter.Word)
}

type commandState int

const (
	cmdGround commandState = iota
	cmdCommand
	cmdPrintCode
	cmdPrintAdvance
	cmdEraseCode
	cmdEraseAdvance
	cmdVertical
	cmdHorizontalHi
	cmdHorizontalLo
)

// Board is a simulated Printer Board. It implements the wheelwriter.Line
// interface.
//
// Time is compressed in the same way as for the simulated PS/2 keyboard. The
// acknowledge pulse is delivered as soon as the Function Board waits for it
// and a wait that can never be satisfied fails immediately.
type Board struct {
	ctx  Context
	crit sync.Mutex
	rx   Receiver

	printwheel wheelwriter.Printwheel
	model      wheelwriter.Model
	powered    bool

	// the word most recently transmitted has not yet been acknowledged
	pending bool

	// words that follow the next acknowledge. the reply to a query
	reply []wheelwriter.Word

	state commandState
	code  uint8
	hi    wheelwriter.Word

	// carriage position in micro spaces and paper position in micro lines
	x, y int

	paper Paper
	spins int
	words int
}

// NewBoard is the preferred method of initialisation for the Board type. The
// Board is powered off until PowerOn() is called. The Board reports itself as
// a Wheelwriter 6 unless SetModel() is called.
func NewBoard(ctx Context, printwheel wheelwriter.Printwheel) *Board {
	return &Board{
		ctx:        ctx,
		printwheel: printwheel,
		model:      wheelwriter.Wheelwriter6,
	}
}

// SetModel changes the reply to the model query.
func (b *Board) SetModel(m wheelwriter.Model) {
	b.crit.Lock()
	defer b.crit.Unlock()
	b.model = m
}

// Attach connects the Board to the Function Board UART.
func (b *Board) Attach(rx Receiver) {
	b.crit.Lock()
	defer b.crit.Unlock()
	b.rx = rx
}

func (b *Board) deliver(w ...wheelwriter.Word) {
	if b.rx == nil {
		return
	}
	for _, v := range w {
		b.rx.Received(v)
	}
}

// PowerOn switches on the typewriter. The typewriter's own Function Board
// asks for the printwheel and the reply is seen on the bus.
func (b *Board) PowerOn() {
	b.crit.Lock()
	defer b.crit.Unlock()
	b.powered = true
	b.state = cmdGround
	b.deliver(wheelwriter.CommandPrefix, wheelwriter.CmdQueryPrintwheel, wheelwriter.Word(b.printwheel))
	logger.Logf(b.ctx, "printer board", "power on with %s printwheel", b.printwheel)
}

// Warm switches on the typewriter without the printwheel being reported. This
// is the typewriter that was switched on before the interface board.
func (b *Board) Warm() {
	b.crit.Lock()
	defer b.crit.Unlock()
	b.powered = true
	b.state = cmdGround
}

// PowerOff switches off the typewriter. Nothing is acknowledged while the
// power is off.
func (b *Board) PowerOff() {
	b.crit.Lock()
	defer b.crit.Unlock()
	b.powered = false
	b.pending = false
	b.reply = nil
}

// Type sends words as the typewriter's own keyboard does. The Printer Board
// acts on the words and they are seen by the Function Board UART.
func (b *Board) Type(words ...wheelwriter.Word) {
	b.crit.Lock()
	defer b.crit.Unlock()
	if !b.powered {
		return
	}
	for _, w := range words {
		b.command(w)
		b.deliver(w)
	}
}

// Strike types the character on the typewriter's own keyboard.
func (b *Board) Strike(c uint8) {
	code := wheelwriter.WheelCode(c)
	geom, _ := wheelwriter.GeometryFor(b.printwheel)
	n := wheelwriter.Word(geom.SpacesPerChar)
	if code == 0 {
		b.Type(wheelwriter.CommandPrefix, wheelwriter.CmdHorizontal, 0x80, n)
		return
	}
	b.Type(wheelwriter.CommandPrefix, wheelwriter.CmdPrint, wheelwriter.Word(code), n)
}

// Transmit implements the wheelwriter.Line interface.
func (b *Board) Transmit(w wheelwriter.Word) error {
	b.crit.Lock()
	defer b.crit.Unlock()
	if !b.powered {
		return nil
	}
	b.words++
	b.command(w & 0x1ff)
	b.pending = true
	return nil
}

// WaitBus implements the wheelwriter.Line interface.
func (b *Board) WaitBus(high bool, _ time.Duration) error {
	b.crit.Lock()
	defer b.crit.Unlock()

	// the bus idles high
	if high {
		return nil
	}

	if !b.pending {
		return wheelwriter.ErrTimeout
	}
	b.pending = false
	b.deliver(0x000)

	if len(b.reply) > 0 {
		b.deliver(b.reply...)
		b.reply = nil
	}
	return nil
}

func (b *Board) command(w wheelwriter.Word) {
	switch b.state {
	case cmdGround:
		if w == wheelwriter.CommandPrefix {
			b.state = cmdCommand
		}

	case cmdCommand:
		b.state = cmdGround
		switch w {
		case wheelwriter.CmdQueryModel:
			b.reply = append(b.reply, wheelwriter.Word(b.model))
		case wheelwriter.CmdQueryPrintwheel:
			b.reply = append(b.reply, wheelwriter.Word(b.printwheel))
		case wheelwriter.CmdPrint:
			b.state = cmdPrintCode
		case wheelwriter.CmdErase:
			b.state = cmdEraseCode
		case wheelwriter.CmdVertical:
			b.state = cmdVertical
		case wheelwriter.CmdHorizontal:
			b.state = cmdHorizontalHi
		case wheelwriter.CmdSpin:
			b.spins++
		default:
			logger.Logf(b.ctx, "printer board", "unknown command %s", w)
		}

	case cmdPrintCode:
		b.code = uint8(w)
		b.state = cmdPrintAdvance

	case cmdPrintAdvance:
		b.state = cmdGround
		if c := wheelwriter.Character(b.code); c != 0 {
			b.paper.strike(b.x, b.y, c)
		}
		b.x += int(w)

	case cmdEraseCode:
		b.code = uint8(w)
		b.state = cmdEraseAdvance

	case cmdEraseAdvance:
		// the correction tape is struck without moving the carriage
		b.state = cmdGround
		if c := wheelwriter.Character(b.code); c != 0 {
			if !b.paper.lift(b.x, b.y, c) {
				logger.Logf(b.ctx, "printer board", "erase of '%c' where it was not printed", c)
			}
		}

	case cmdVertical:
		b.state = cmdGround
		n := int(w & 0x1f)
		if w&0x80 == 0x80 {
			b.y += n
		} else {
			b.y = max(0, b.y-n)
		}

	case cmdHorizontalHi:
		b.hi = w
		b.state = cmdHorizontalLo

	case cmdHorizontalLo:
		b.state = cmdGround
		n := int(b.hi&0x07)<<8 | int(w&0xff)
		if b.hi&0x80 == 0x80 {
			b.x += n
		} else {
			b.x = max(0, b.x-n)
		}
	}
}

// Carriage returns the carriage position in micro spaces and the paper
// position in micro lines.
func (b *Board) Carriage() (int, int) {
	b.crit.Lock()
	defer b.crit.Unlock()
	return b.x, b.y
}

// Impressions returns every character struck onto the paper.
func (b *Board) Impressions() []Impression {
	b.crit.Lock()
	defer b.crit.Unlock()
	return b.paper.Impressions()
}

// Text renders the paper as text using the geometry of the printwheel.
func (b *Board) Text() string {
	b.crit.Lock()
	defer b.crit.Unlock()
	geom, _ := wheelwriter.GeometryFor(b.printwheel)
	return b.paper.Text(geom)
}

// Spins returns the number of times the printwheel has been spun.
func (b *Board) Spins() int {
	b.crit.Lock()
	defer b.crit.Unlock()
	return b.spins
}

// Words returns the number of words received from the Function Board.
func (b *Board) Words() int {
	b.crit.Lock()
	defer b.crit.Unlock()
	return b.words
}

// InsertPaper replaces the sheet of paper and returns the carriage and the
// paper to the top left.
func (b *Board) InsertPaper() {
	b.crit.Lock()
	defer b.crit.Unlock()
	b.paper = Paper{}
	b.x = 0
	b.y = 0
}

// Printwheel returns the printwheel that is installed.
func (b *Board) Printwheel() wheelwriter.Printwheel {
	return b.printwheel
}
