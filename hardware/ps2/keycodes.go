package ps2

import "fmt"

// Key is the output of the Decoder. Values below 0x80 are ASCII. Values from
// 0x80 upwards are the named keys that have no ASCII equivalent.
type Key uint8

// NoKey is returned by the Decoder when a scancode does not complete a key.
const NoKey Key = 0x00

// Keys with ASCII values.
const (
	Backspace Key = 0x08
	Tab       Key = 0x09
	Enter     Key = 0x0d
	Escape    Key = 0x1b
	Space     Key = 0x20
)

// Named keys.
const (
	Scroll Key = 0x80 + iota
	PrtScr
	Pause
	LtGUI
	RtGUI
	Menu
	Break
	Home
	End
	PgUp
	PgDn
	Left
	Right
	Up
	Down
	Insert
	Delete
	KpHome
	KpEnd
	KpUp
	KpDown
	KpRight
	KpLeft
	KpPgUp
	KpPgDn
	KpInsert
	KpDelete
	KpDiv
	KpMult
	KpMinus
	KpPlus
	KpEnter
	F1
	F2
	F3
	F4
	F5
	F6
	F7
	F8
	F9
	F10
	F11
	F12
)

var keyNames = map[Key]string{
	Backspace: "Backspace",
	Tab:       "Tab",
	Enter:     "Enter",
	Escape:    "Escape",
	Space:     "Space",
	Scroll:    "Scroll",
	PrtScr:    "PrtScr",
	Pause:     "Pause",
	LtGUI:     "LtGUI",
	RtGUI:     "RtGUI",
	Menu:      "Menu",
	Break:     "Break",
	Home:      "Home",
	End:       "End",
	PgUp:      "PgUp",
	PgDn:      "PgDn",
	Left:      "Left",
	Right:     "Right",
	Up:        "Up",
	Down:      "Down",
	Insert:    "Insert",
	Delete:    "Delete",
	KpHome:    "KpHome",
	KpEnd:     "KpEnd",
	KpUp:      "KpUp",
	KpDown:    "KpDown",
	KpRight:   "KpRight",
	KpLeft:    "KpLeft",
	KpPgUp:    "KpPgUp",
	KpPgDn:    "KpPgDn",
	KpInsert:  "KpInsert",
	KpDelete:  "KpDelete",
	KpDiv:     "KpDiv",
	KpMult:    "KpMult",
	KpMinus:   "KpMinus",
	KpPlus:    "KpPlus",
	KpEnter:   "KpEnter",
	F1:        "F1",
	F2:        "F2",
	F3:        "F3",
	F4:        "F4",
	F5:        "F5",
	F6:        "F6",
	F7:        "F7",
	F8:        "F8",
	F9:        "F9",
	F10:       "F10",
	F11:       "F11",
	F12:       "F12",
}

func (k Key) String() string {
	if n, ok := keyNames[k]; ok {
		return n
	}
	if k > 0x20 && k < 0x7f {
		return string(rune(k))
	}
	return fmt.Sprintf("%#02x", uint8(k))
}

// Modifiers is the state of the modifier keys. Left and right variants of a
// modifier are not distinguished.
type Modifiers struct {
	Ctrl  bool
	Alt   bool
	Shift bool
}

// Locks is the state of the lock keys. The bit layout is the same as the
// argument to the keyboard's set LEDs command.
type Locks uint8

const (
	ScrollLock Locks = 0x01
	NumLock    Locks = 0x02
	CapsLock   Locks = 0x04
)
