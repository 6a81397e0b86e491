package ui

type Action int

// Input is sent from the GUI to the board.
type Input struct {
	Action Action
	Data   []uint8
}

const (
	Nothing Action = iota

	// Data is the make or break scancodes of a key on the PS/2 keyboard
	PS2Key

	// Data is the character typed on the typewriter's own keyboard
	TypewriterKey

	// the typewriter is given a fresh sheet of paper
	InsertPaper
)
