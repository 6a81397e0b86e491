// Package wheelwriter implements the Function Board side of the IBM
// Wheelwriter bus. The bus is a single open collector line carrying 9-bit
// words at 187500 bps. Every command sent to the Printer Board begins with
// the word 0x121 and every word is acknowledged by the Printer Board with a
// low pulse on the bus.
//
// The Transceiver puts words onto the bus and collects words from it. The
// Codec builds the command sequences for printing and carriage movement. The
// Monitor decodes the sequences produced by the typewriter's own keyboard.
package wheelwriter

import (
	"errors"
	"fmt"

	"github.com/jetsetilly/wheelwriter/logger"
)

// Context is required by the types in the package.
type Context interface {
	logger.Permission
}

// ErrTimeout is returned when the bus does not respond in time.
var ErrTimeout = errors.New("wheelwriter: timeout")

// Word is a single 9-bit bus word.
type Word uint16

// CommandPrefix begins every command on the bus.
const CommandPrefix Word = 0x121

// Commands that follow the prefix.
const (
	CmdQueryModel      Word = 0x000
	CmdQueryPrintwheel Word = 0x001
	CmdPrint           Word = 0x003
	CmdErase           Word = 0x004
	CmdVertical        Word = 0x005
	CmdHorizontal      Word = 0x006
	CmdSpin            Word = 0x007
)

// the direction bit in the first argument of a movement command. set for
// movement to the right and for paper up
const directionBit Word = 0x080

func (w Word) String() string {
	return fmt.Sprintf("%03x", uint16(w))
}

// Attribute is the set of print attributes.
type Attribute uint8

const (
	Bold                Attribute = 0x01
	ContinuousUnderline Attribute = 0x02
	BrokenUnderline     Attribute = 0x04
)

// Underline returns true if either underline attribute is set.
func (a Attribute) Underline() bool {
	return a&(ContinuousUnderline|BrokenUnderline) != 0
}

func (a Attribute) String() string {
	return fmt.Sprintf("%08b", uint8(a))
}

// Geometry describes the character pitch in use. The three values always
// change together.
type Geometry struct {
	// micro spaces (1/120 inch) per character
	SpacesPerChar int

	// micro lines (1/96 inch) per line
	LinesPerLine int

	// characters per tab stop
	TabStop int
}

// The supported pitches.
var (
	Pica       = Geometry{SpacesPerChar: 12, LinesPerLine: 16, TabStop: 5}
	Elite      = Geometry{SpacesPerChar: 10, LinesPerLine: 16, TabStop: 6}
	MicroElite = Geometry{SpacesPerChar: 8, LinesPerLine: 12, TabStop: 7}
)

// Printwheel is the code reported by the Printer Board for the printwheel
// that is installed.
type Printwheel uint8

const (
	PrintwheelPS   Printwheel = 0x08
	Printwheel15P  Printwheel = 0x10
	Printwheel12P  Printwheel = 0x20
	PrintwheelNone Printwheel = 0x21
	Printwheel10P  Printwheel = 0x40
)

func (p Printwheel) String() string {
	switch p {
	case PrintwheelPS:
		return "PS"
	case Printwheel15P:
		return "15P"
	case Printwheel12P:
		return "12P"
	case PrintwheelNone:
		return "no"
	case Printwheel10P:
		return "10P"
	}
	return fmt.Sprintf("unknown (%#02x)", uint8(p))
}

// GeometryFor returns the Geometry for the printwheel. If the printwheel is
// not recognised then Elite is returned and the boolean result is false.
func GeometryFor(p Printwheel) (Geometry, bool) {
	switch p {
	case PrintwheelPS, Printwheel12P, PrintwheelNone:
		return Elite, true
	case Printwheel15P:
		return MicroElite, true
	case Printwheel10P:
		return Pica, true
	}
	return Elite, false
}

// Model is the reply of the Printer Board to the model query.
type Model uint8

const (
	Wheelwriter3 Model = 0x06
	Wheelwriter5 Model = 0x25
	Wheelwriter6 Model = 0x26
)

// Known returns false if the model is not one of the supported Wheelwriters.
func (m Model) Known() bool {
	switch m {
	case Wheelwriter3, Wheelwriter5, Wheelwriter6:
		return true
	}
	return false
}

func (m Model) String() string {
	switch m {
	case Wheelwriter3:
		return "Wheelwriter 3"
	case Wheelwriter5:
		return "Wheelwriter 5"
	case Wheelwriter6:
		return "Wheelwriter 6"
	}
	return fmt.Sprintf("unknown model (%#02x)", uint8(m))
}

// PrintwheelFromWord converts the reply to the printwheel query. A word that
// cannot be a printwheel code, such as a command prefix, returns false.
func PrintwheelFromWord(w Word) (Printwheel, bool) {
	if w > 0xff {
		return 0, false
	}
	return Printwheel(w), true
}

// LeftMargin is the distance in micro spaces from the left hand stop to the
// left margin. The carriage is moved there when the board has had to ask for
// the printwheel.
const LeftMargin = 120
