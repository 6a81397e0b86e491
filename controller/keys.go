package controller

import (
	"github.com/jetsetilly/wheelwriter/hardware/ps2"
	"github.com/jetsetilly/wheelwriter/hardware/wheelwriter"
)

// KeyRouter handles the keys from the PS/2 keyboard. Most keys are passed to
// the Printer as if they had arrived from the host. The remainder are
// typewriter functions that have no equivalent in the byte stream.
//
// Control-B, Control-I and Control-U toggle bold, broken underlining and
// continuous underlining. Control with the up and down arrows moves the paper
// by a micro line. Delete erases the most recently typed character.
type KeyRouter struct {
	printer *Printer
	codec   Codec
	line    LineBuffer
}

// NewKeyRouter is the preferred method of initialisation for the KeyRouter
// type.
func NewKeyRouter(printer *Printer, codec Codec) *KeyRouter {
	return &KeyRouter{
		printer: printer,
		codec:   codec,
	}
}

// Line returns the number of characters typed on the current line.
func (r *KeyRouter) Line() int {
	return r.line.Len()
}

// Key handles a key with the state of the modifiers at the time the key was
// decoded.
func (r *KeyRouter) Key(k ps2.Key, mods ps2.Modifiers) error {
	if k == ps2.NoKey {
		return nil
	}

	if mods.Ctrl {
		return r.control(k)
	}

	// no alt key functions
	if mods.Alt {
		return nil
	}

	switch k {
	case ps2.Delete, ps2.KpDelete:
		if c, ok := r.line.Pop(); ok {
			return r.printer.Erase(c)
		}

	case ps2.Tab:
		t, err := r.printer.Tab()
		if err != nil {
			return err
		}
		for range t {
			r.line.Push(SP)
		}

	case ps2.Backspace, ps2.Left, ps2.KpLeft:
		if _, ok := r.line.Pop(); ok {
			return r.printer.Print(BS)
		}

	case ps2.Enter, ps2.KpEnter:
		r.line.Clear()
		return r.sequence(CR, LF)

	case ps2.Right, ps2.KpRight:
		r.line.Push(SP)
		return r.printer.Print(SP)

	case ps2.Up, ps2.KpUp:
		r.line.Clear()
		return r.printer.Print(LF)

	case ps2.Down, ps2.KpDown:
		r.line.Clear()
		return r.sequence(ESC, LF)

	case ps2.Escape:
		return r.printer.Print(ESC)

	case ps2.KpDiv:
		return r.typed('/')
	case ps2.KpMult:
		return r.typed('*')
	case ps2.KpMinus:
		return r.typed('-')
	case ps2.KpPlus:
		return r.typed('+')

	default:
		if k >= SP && k < 0x7f {
			return r.typed(uint8(k))
		}
	}

	return nil
}

func (r *KeyRouter) control(k ps2.Key) error {
	switch k {
	case 'b', 'B':
		r.printer.ToggleAttribute(wheelwriter.Bold)
		return r.codec.Spin()
	case 'i', 'I':
		r.printer.ToggleAttribute(wheelwriter.BrokenUnderline)
		return r.codec.Spin()
	case 'u', 'U':
		r.printer.ToggleAttribute(wheelwriter.ContinuousUnderline)
		return r.codec.Spin()
	case 'z', 'Z':
		return r.printer.Print(SUB)
	case ps2.Up, ps2.KpUp:
		return r.codec.MicroUp()
	case ps2.Down, ps2.KpDown:
		return r.codec.MicroDown()
	}
	return nil
}

func (r *KeyRouter) typed(c uint8) error {
	r.line.Push(c)
	return r.printer.Print(c)
}

func (r *KeyRouter) sequence(c ...uint8) error {
	for _, v := range c {
		if err := r.printer.Print(v); err != nil {
			return err
		}
	}
	return nil
}
