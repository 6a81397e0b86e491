package wheelwriter

import (
	"io"
)

type monitorState int

const (
	monGround monitorState = iota
	monCommand
	monCharacter
	monHorizontal
	monRight
	monLeft
	monVertical
)

// GeometrySource returns the pitch in use. The Codec type implements this
// interface.
type GeometrySource interface {
	Geometry() Geometry
}

// Monitor watches the words sent by the typewriter's own keyboard and echoes
// the equivalent ASCII.
type Monitor struct {
	geom  GeometrySource
	echo  io.Writer
	state monitorState
}

// NewMonitor is the preferred method of initialisation for the Monitor type.
func NewMonitor(geom GeometrySource, echo io.Writer) *Monitor {
	return &Monitor{
		geom: geom,
		echo: echo,
	}
}

func (m *Monitor) put(b ...byte) {
	_, _ = m.echo.Write(b)
}

// Step advances the monitor by one word.
func (m *Monitor) Step(w Word) {
	switch m.state {
	case monGround:
		if w == CommandPrefix {
			m.state = monCommand
		}

	case monCommand:
		m.state = monGround
		switch w {
		case CmdPrint:
			m.state = monCharacter
		case CmdErase:
			// overwrite the character with a space and step back
			m.put(' ', '\b')
		case CmdVertical:
			m.state = monVertical
		case CmdHorizontal:
			m.state = monHorizontal
		}

	case monCharacter:
		m.state = monGround
		if w == 0 {
			m.put(' ')
		} else if c := Character(uint8(w)); c != 0 {
			m.put(c)
		}

	case monHorizontal:
		if w&directionBit == directionBit {
			m.state = monRight
		} else {
			m.state = monLeft
		}

	case monRight:
		m.state = monGround
		if int(w) > m.geom.Geometry().SpacesPerChar {
			m.put('\t')
		} else {
			m.put(' ')
		}

	case monLeft:
		m.state = monGround
		if int(w) == m.geom.Geometry().SpacesPerChar {
			m.put('\b')
		}

	case monVertical:
		m.state = monGround
		if int(w&0x1f) == m.geom.Geometry().LinesPerLine {
			m.put('\r')
		}
	}
}
