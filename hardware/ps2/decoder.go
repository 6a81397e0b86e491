package ps2

import (
	"github.com/jetsetilly/wheelwriter/logger"
)

// Prefix bytes in scancode set 2.
const (
	prefixExtended  = 0xe0
	prefixExtended1 = 0xe1
	prefixRelease   = 0xf0
)

// LEDSetter is used by the Decoder to update the keyboard indicators when a
// lock key is pressed. The Sender type implements this interface.
type LEDSetter interface {
	SetLEDs(locks Locks) error
}

type decoderState int

const (
	stIdle decoderState = iota
	stExtended
	stExtendedRelease
	stRelease
	stPrtScr1
	stPrtScr2
	stPause1
	stPause2
	stPause3
	stPause4
	stPause5
	stPause6
	stPause7
)

func (s decoderState) String() string {
	switch s {
	case stIdle:
		return "idle"
	case stExtended:
		return "extended"
	case stExtendedRelease:
		return "extended release"
	case stRelease:
		return "release"
	case stPrtScr1, stPrtScr2:
		return "print screen"
	}
	return "pause"
}

// the remainder of the pause sequence after the E1 prefix. the sixth byte
// has been observed as both F0 and E0
var pauseSequence = [...][]uint8{
	stPause1: {0x14},
	stPause2: {0x77},
	stPause3: {0xe1},
	stPause4: {0xf0},
	stPause5: {0x14},
	stPause6: {0xf0, 0xe0},
	stPause7: {0x77},
}

// single byte scancodes that always produce the same key
var functionKeys = map[uint8]Key{
	0x01: F9,
	0x03: F5,
	0x04: F3,
	0x05: F1,
	0x06: F2,
	0x07: F12,
	0x09: F10,
	0x0a: F8,
	0x0b: F6,
	0x0c: F4,
	0x0d: Tab,
	0x29: Space,
	0x5a: Enter,
	0x66: Backspace,
	0x73: '5',
	0x76: Escape,
	0x78: F11,
	0x79: KpPlus,
	0x7b: KpMinus,
	0x7c: KpMult,
	0x83: F7,
}

type keypadKey struct {
	numlock Key
	nav     Key
}

// numeric keypad scancodes that depend on the num lock state
var keypadKeys = map[uint8]keypadKey{
	0x69: {'1', KpEnd},
	0x6b: {'4', KpLeft},
	0x6c: {'7', KpHome},
	0x70: {'0', KpInsert},
	0x71: {'.', KpDelete},
	0x72: {'2', KpDown},
	0x74: {'6', KpRight},
	0x75: {'8', KpUp},
	0x7a: {'3', KpPgDn},
	0x7d: {'9', KpPgUp},
}

// scancodes following the E0 prefix
var extendedKeys = map[uint8]Key{
	0x1f: LtGUI,
	0x27: RtGUI,
	0x2f: Menu,
	0x4a: KpDiv,
	0x5a: KpEnter,
	0x69: End,
	0x6b: Left,
	0x6c: Home,
	0x70: Insert,
	0x71: Delete,
	0x72: Down,
	0x74: Right,
	0x75: Up,
	0x7a: PgDn,
	0x7d: PgUp,
}

// Decoder turns scancode set 2 sequences into keys. It tracks the state of the
// modifier and lock keys.
type Decoder struct {
	ctx  Context
	leds LEDSetter

	state decoderState
	mods  Modifiers
	locks Locks
}

// NewDecoder is the preferred method of initialisation for the Decoder type.
// The leds argument can be nil.
func NewDecoder(ctx Context, leds LEDSetter) *Decoder {
	return &Decoder{
		ctx:  ctx,
		leds: leds,
	}
}

// Modifiers returns the current state of the modifier keys.
func (d *Decoder) Modifiers() Modifiers {
	return d.mods
}

// Locks returns the current state of the lock keys.
func (d *Decoder) Locks() Locks {
	return d.locks
}

// Idle returns true if the decoder is not part way through a multi-byte
// sequence.
func (d *Decoder) Idle() bool {
	return d.state == stIdle
}

// Step advances the decoder by one scancode. The result is NoKey if the
// scancode did not complete a key.
func (d *Decoder) Step(sc uint8) Key {
	switch d.state {
	case stIdle:
		return d.idle(sc)

	case stExtended:
		d.state = stIdle
		switch sc {
		case prefixRelease:
			d.state = stExtendedRelease
		case 0x11:
			d.mods.Alt = true
		case 0x12:
			d.state = stPrtScr1
		case 0x14:
			d.mods.Ctrl = true
		default:
			return extendedKeys[sc]
		}

	case stExtendedRelease:
		d.state = stIdle
		switch sc {
		case 0x11:
			d.mods.Alt = false
		case 0x14:
			d.mods.Ctrl = false
		}

	case stRelease:
		d.state = stIdle
		switch sc {
		case 0x12, 0x59:
			d.mods.Shift = false
		case 0x14:
			d.mods.Ctrl = false
		case 0x11:
			d.mods.Alt = false
		}

	case stPrtScr1:
		d.state = stIdle
		if sc == prefixExtended {
			d.state = stPrtScr2
		}

	case stPrtScr2:
		d.state = stIdle
		if sc == 0x7c {
			return PrtScr
		}

	default:
		expect := pauseSequence[d.state]
		for _, e := range expect {
			if sc == e {
				if d.state == stPause7 {
					d.state = stIdle
					return Pause
				}
				d.state++
				return NoKey
			}
		}
		logger.Logf(d.ctx, "ps2", "unexpected scancode %#02x in %s sequence", sc, d.state)
		d.state = stIdle
	}

	return NoKey
}

func (d *Decoder) idle(sc uint8) Key {
	switch sc {
	case prefixExtended:
		d.state = stExtended
		return NoKey
	case prefixExtended1:
		d.state = stPause1
		return NoKey
	case prefixRelease:
		d.state = stRelease
		return NoKey
	case 0x11:
		d.mods.Alt = true
		return NoKey
	case 0x12, 0x59:
		d.mods.Shift = true
		return NoKey
	case 0x14:
		d.mods.Ctrl = true
		return NoKey
	case 0x58:
		d.toggle(CapsLock)
		return NoKey
	case 0x77:
		d.toggle(NumLock)
		return NoKey
	case 0x7e:
		d.toggle(ScrollLock)
		return NoKey
	}

	if k, ok := functionKeys[sc]; ok {
		return k
	}

	if k, ok := keypadKeys[sc]; ok {
		if d.locks&NumLock == NumLock {
			return k.numlock
		}
		return k.nav
	}

	// keyboard responses such as the self test result and the acknowledge
	// byte fall outside of the lookup tables
	if int(sc) >= len(unshifted) {
		return NoKey
	}

	caps := d.locks&CapsLock == CapsLock
	if d.mods.Shift && !caps {
		return shifted[sc]
	}

	k := unshifted[sc]
	if caps && !d.mods.Shift && k >= 'a' && k <= 'z' {
		k -= 0x20
	}
	return k
}

func (d *Decoder) toggle(lock Locks) {
	d.locks ^= lock
	if d.leds == nil {
		return
	}
	if err := d.leds.SetLEDs(d.locks); err != nil {
		logger.Logf(d.ctx, "ps2", "keyboard leds: %v", err)
	}
}
