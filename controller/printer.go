package controller

import (
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/wheelwriter/hardware/wheelwriter"
	"github.com/jetsetilly/wheelwriter/logger"
)

// ASCII control characters recognised by the Printer.
const (
	NUL = 0x00
	BEL = 0x07
	BS  = 0x08
	HT  = 0x09
	LF  = 0x0a
	VT  = 0x0b
	CR  = 0x0d
	SUB = 0x1a
	ESC = 0x1b
	SP  = 0x20
)

type escapeState int

const (
	escGround escapeState = iota
	escStart
	escAutoLinefeed
	escDiagnostic
	escDiagnosticPort
	escDiagnosticLED
	escHelp
)

// Printer interprets a stream of bytes and drives the Codec. Every printed
// character and most control characters are echoed.
type Printer struct {
	ctx   Context
	codec Codec
	echo  io.Writer
	diag  Diagnostics

	state     escapeState
	attribute wheelwriter.Attribute

	// the column of the next character to be printed. the left margin is
	// column one
	column int

	// a linefeed follows every carriage return
	autoLinefeed bool
}

// NewPrinter is the preferred method of initialisation for the Printer type.
func NewPrinter(ctx Context, codec Codec, echo io.Writer, diag Diagnostics, autoLinefeed bool) *Printer {
	return &Printer{
		ctx:          ctx,
		codec:        codec,
		echo:         echo,
		diag:         diag,
		column:       1,
		autoLinefeed: autoLinefeed,
	}
}

// Column returns the column of the next character to be printed.
func (p *Printer) Column() int {
	return p.column
}

// Attribute returns the current print attributes.
func (p *Printer) Attribute() wheelwriter.Attribute {
	return p.attribute
}

// ToggleAttribute flips the attribute bits.
func (p *Printer) ToggleAttribute(a wheelwriter.Attribute) {
	p.attribute ^= a
}

// AutoLinefeed returns true if a linefeed follows every carriage return.
func (p *Printer) AutoLinefeed() bool {
	return p.autoLinefeed
}

func (p *Printer) put(b ...byte) {
	_, _ = p.echo.Write(b)
}

func (p *Printer) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(p.echo, format, args...)
}

// Print processes a single byte.
func (p *Printer) Print(c uint8) error {
	switch p.state {
	case escGround:
		return p.ground(c)
	case escStart:
		return p.escape(c)
	case escAutoLinefeed:
		p.state = escGround
		p.autoLinefeed = c&0x01 == 0x01
	case escDiagnostic:
		p.diagnostic(c)
	case escDiagnosticPort:
		p.state = escGround
		if c >= '0' && c <= '3' {
			n := int(c - '0')
			p.printf("P%d: 0x%02X\n", n, p.diag.Port(n))
		}
	case escDiagnosticLED:
		p.state = escGround
		p.diag.ErrorIndicator(c&0x01 == 0x01)
	case escHelp:
		switch c {
		case SP:
			p.printf("%s", help2)
			p.state = escGround
		case ESC:
			p.put(CR)
			p.state = escGround
		}
	}
	return nil
}

func (p *Printer) ground(c uint8) error {
	switch c {
	case NUL:
	case BEL:
		if err := p.codec.Spin(); err != nil {
			return err
		}
		p.put(BEL)
	case BS:
		if p.column > 1 {
			if err := p.codec.Backspace(); err != nil {
				return err
			}
			p.column--
			p.put(BS)
		}
	case HT:
		_, err := p.Tab()
		return err
	case LF:
		if err := p.codec.Linefeed(); err != nil {
			return err
		}
		p.put(LF)
	case VT:
		return p.codec.Linefeed()
	case CR:
		if err := p.codec.CarriageReturn(); err != nil {
			return err
		}
		p.column = 1
		p.attribute = 0
		if p.autoLinefeed {
			if err := p.codec.Linefeed(); err != nil {
				return err
			}
		}
		p.put(CR)
	case ESC:
		p.state = escStart
	default:
		if c >= SP && c < 0x7f {
			if err := p.codec.PrintLetter(c, p.attribute); err != nil {
				return err
			}
			p.put(c)
			p.column++
		}
	}
	return nil
}

// Tab moves to the next tab stop and returns the number of columns moved.
func (p *Printer) Tab() (int, error) {
	tabStop := p.codec.Geometry().TabStop
	t := tabStop - p.column%tabStop
	if err := p.codec.HorizontalTab(t); err != nil {
		return 0, err
	}
	for range t {
		p.column++
		p.put(SP)
	}
	return t, nil
}

// Erase backspaces over and erases the character, which must be the
// character most recently printed.
func (p *Printer) Erase(c uint8) error {
	if err := p.codec.EraseLetter(c); err != nil {
		return err
	}
	if p.column > 1 {
		p.column--
	}
	p.put(BS, SP, BS)
	return nil
}

func (p *Printer) escape(c uint8) error {
	p.state = escGround

	switch c {
	case 'O':
		p.attribute |= wheelwriter.Bold
	case '&':
		p.attribute &^= wheelwriter.Bold
	case 'E':
		p.attribute |= wheelwriter.ContinuousUnderline
	case 'b':
		p.attribute |= wheelwriter.BrokenUnderline
	case 'R':
		p.attribute &^= wheelwriter.ContinuousUnderline | wheelwriter.BrokenUnderline
	case 'X':
		p.attribute = 0
	case 'U':
		return p.codec.PaperUp()
	case 'D':
		return p.codec.PaperDown()
	case LF:
		return p.codec.ReverseLinefeed()
	case BS:
		return p.codec.MicroBackspace()
	case 'u':
		return p.codec.MicroUp()
	case 'd':
		return p.codec.MicroDown()
	case 'e':
		p.codec.SetGeometry(wheelwriter.Elite)
	case 'p':
		p.codec.SetGeometry(wheelwriter.Pica)
	case 'm':
		p.codec.SetGeometry(wheelwriter.MicroElite)
	case 'l':
		p.state = escAutoLinefeed
	case SUB:
		p.state = escDiagnostic
	case 'H', 'h':
		p.printf("%s", help1)
		p.state = escHelp
	default:
		logger.Logf(p.ctx, "printer", "unrecognised escape sequence (%#02x)", c)
	}
	return nil
}

func (p *Printer) diagnostic(c uint8) {
	p.state = escGround

	switch c {
	case 'A', 'a':
		p.printf("\n%s\n", p.diag.Banner())
	case 'E', 'e':
		p.state = escDiagnosticLED
	case 'P', 'p':
		p.state = escDiagnosticPort
	case 'R', 'r':
		p.diag.Reset()
	case 'U', 'u':
		up := p.diag.Uptime().Truncate(time.Second)
		h := int(up.Hours())
		m := int(up.Minutes()) % 60
		s := int(up.Seconds()) % 60
		p.printf("Uptime: %02d:%02d:%02d\n", h, m, s)
	case 'V', 'v':
		p.variables()
	}
}

func (p *Printer) variables() {
	onoff := func(b bool) string {
		if b {
			return "on"
		}
		return "off"
	}

	geom := p.codec.Geometry()
	vars := []Variable{
		{"auto linefeed", onoff(p.autoLinefeed)},
		{"attribute", p.attribute.String()},
		{"column", fmt.Sprintf("%d", p.column)},
		{"tab stop", fmt.Sprintf("%d", geom.TabStop)},
		{"spaces per char", fmt.Sprintf("%d", geom.SpacesPerChar)},
		{"lines per line", fmt.Sprintf("%d", geom.LinesPerLine)},
		{"space count", fmt.Sprintf("%d", p.codec.Position())},
	}
	vars = append(vars, p.diag.Variables()...)

	p.put(LF)
	for _, v := range vars {
		p.printf("%-16s %s\n", v.Name+":", v.Value)
	}

	// return the cursor to where it was on the line
	for c := 1; c < p.column; c++ {
		p.put(SP)
	}
}
