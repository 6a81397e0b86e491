package wheelwriter

import (
	"sync"

	"github.com/jetsetilly/wheelwriter/logger"
)

// RightMargin is the carriage position in micro spaces beyond which a
// carriage return is performed automatically. One inch from the right stop.
const RightMargin = 1319

// Bus is the part of the Transceiver used by the Codec.
type Bus interface {
	PutSequence(words ...Word) error
}

// Indicator is switched on while the Codec is sending a command.
type Indicator interface {
	Busy(on bool)
}

// Codec builds the command sequences for the Printer Board and keeps track
// of the carriage position.
type Codec struct {
	ctx Context
	bus Bus
	ind Indicator

	// geometry can be read by the bus monitor from another goroutine
	crit sync.Mutex
	geom Geometry

	// carriage position in micro spaces from the left margin
	position int
}

// NewCodec is the preferred method of initialisation for the Codec type. The
// indicator argument can be nil.
func NewCodec(ctx Context, bus Bus, ind Indicator) *Codec {
	return &Codec{
		ctx:  ctx,
		bus:  bus,
		ind:  ind,
		geom: Elite,
	}
}

// SetGeometry changes the pitch.
func (cd *Codec) SetGeometry(g Geometry) {
	cd.crit.Lock()
	defer cd.crit.Unlock()
	cd.geom = g
}

// Geometry returns the pitch in use.
func (cd *Codec) Geometry() Geometry {
	cd.crit.Lock()
	defer cd.crit.Unlock()
	return cd.geom
}

// Position returns the carriage position in micro spaces.
func (cd *Codec) Position() int {
	return cd.position
}

func (cd *Codec) send(words ...Word) error {
	if cd.ind != nil {
		cd.ind.Busy(true)
		defer cd.ind.Busy(false)
	}
	if err := cd.bus.PutSequence(words...); err != nil {
		logger.Log(cd.ctx, "wheelwriter", err)
		return err
	}
	return nil
}

// horizontal builds a carriage movement of n micro spaces. the distance is
// eleven bits split over two words
func horizontal(n int, right bool) []Word {
	hi := Word(n>>8) & 0x07
	if right {
		hi |= directionBit
	}
	return []Word{CommandPrefix, CmdHorizontal, hi, Word(n & 0xff)}
}

func vertical(n int, up bool) []Word {
	v := Word(n) & 0x1f
	if up {
		v |= directionBit
	}
	return []Word{CommandPrefix, CmdVertical, v}
}

// PrintLetter prints the character with the attributes and advances the
// carriage by one character. A carriage return follows if the carriage has
// passed the right margin.
//
// A character that is not on the printwheel is never sent to the Printer
// Board. The carriage is moved instead, printing an underscore if the
// position is to be underlined.
func (cd *Codec) PrintLetter(c uint8, attr Attribute) error {
	n := cd.Geometry().SpacesPerChar
	code := Word(WheelCode(c))

	underline := attr.Underline() && (c != ' ' || attr&ContinuousUnderline == ContinuousUnderline)

	var words []Word
	if code == 0 {
		if underline {
			words = []Word{CommandPrefix, CmdPrint, Underscore, Word(n)}
		} else {
			words = horizontal(n, true)
		}
	} else {
		words = []Word{CommandPrefix, CmdPrint, code}
		if underline {
			words = append(words, 0x000, CommandPrefix, CmdPrint, Underscore)
		}
		if attr&Bold == Bold {
			// print again one micro space to the right
			words = append(words, 0x001, CommandPrefix, CmdPrint, code, Word(n-1))
		} else {
			words = append(words, Word(n))
		}
	}

	if err := cd.send(words...); err != nil {
		return err
	}

	cd.position += n
	if cd.position > RightMargin {
		return cd.CarriageReturn()
	}
	return nil
}

// EraseLetter moves the carriage back one character and erases the character
// with the correction tape.
func (cd *Codec) EraseLetter(c uint8) error {
	n := min(cd.Geometry().SpacesPerChar, cd.position)
	if n == 0 {
		return nil
	}

	words := horizontal(n, false)
	if code := Word(WheelCode(c)); code != 0 {
		words = append(words, CommandPrefix, CmdErase, code, Word(n))
	}
	if err := cd.send(words...); err != nil {
		return err
	}
	cd.position -= n
	return nil
}

// Backspace moves the carriage back one character without erasing. The
// carriage does not move beyond the left margin.
func (cd *Codec) Backspace() error {
	n := min(cd.Geometry().SpacesPerChar, cd.position)
	if n == 0 {
		return nil
	}
	if err := cd.send(horizontal(n, false)...); err != nil {
		return err
	}
	cd.position -= n
	return nil
}

// MicroBackspace moves the carriage back one micro space, unless it is
// already at the left margin.
func (cd *Codec) MicroBackspace() error {
	if cd.position == 0 {
		return nil
	}
	if err := cd.send(horizontal(1, false)...); err != nil {
		return err
	}
	cd.position--
	return nil
}

// HorizontalTab moves the carriage right by the number of characters.
func (cd *Codec) HorizontalTab(chars int) error {
	s := chars * cd.Geometry().SpacesPerChar
	if err := cd.send(horizontal(s, true)...); err != nil {
		return err
	}
	cd.position += s
	return nil
}

// CarriageReturn returns the carriage to the left margin. The paper does not
// move.
func (cd *Codec) CarriageReturn() error {
	if err := cd.send(horizontal(cd.position, false)...); err != nil {
		return err
	}
	cd.position = 0
	return nil
}

// Linefeed moves the paper up one line.
func (cd *Codec) Linefeed() error {
	return cd.send(vertical(cd.Geometry().LinesPerLine, true)...)
}

// ReverseLinefeed moves the paper down one line.
func (cd *Codec) ReverseLinefeed() error {
	return cd.send(vertical(cd.Geometry().LinesPerLine, false)...)
}

// PaperUp moves the paper up half a line.
func (cd *Codec) PaperUp() error {
	return cd.send(vertical(cd.Geometry().LinesPerLine>>1, true)...)
}

// PaperDown moves the paper down half a line.
func (cd *Codec) PaperDown() error {
	return cd.send(vertical(cd.Geometry().LinesPerLine>>1, false)...)
}

// MicroUp moves the paper up one eighth of a line.
func (cd *Codec) MicroUp() error {
	return cd.send(vertical(cd.Geometry().LinesPerLine>>3, true)...)
}

// MicroDown moves the paper down one eighth of a line.
func (cd *Codec) MicroDown() error {
	return cd.send(vertical(cd.Geometry().LinesPerLine>>3, false)...)
}

// Spin spins the printwheel as an audible and visible signal.
func (cd *Codec) Spin() error {
	return cd.send(CommandPrefix, CmdSpin)
}
