// Package ui defines the channels between the board and the GUI.
package ui

import (
	"time"

	"github.com/jetsetilly/wheelwriter/hardware/printerboard"
)

// Status is the state of the indicators on the board and on the keyboard.
type Status struct {
	Green bool
	Amber bool
	Red   bool

	// keyboard lock indicators as sent to the keyboard
	ScrollLock bool
	NumLock    bool
	CapsLock   bool

	Uptime time.Duration
}

// Paper is the typewriter as seen by the GUI. The printerboard.Board type
// implements this interface.
type Paper interface {
	Impressions() []printerboard.Impression
	Carriage() (int, int)
}

type UI struct {
	SetStatus chan Status
	UserInput chan Input
	Paper     Paper
}

func NewUI(paper Paper) *UI {
	return &UI{
		SetStatus: make(chan Status, 1),
		UserInput: make(chan Input, 16),
		Paper:     paper,
	}
}
