// Package controller turns the incoming byte stream and the keys from the
// PS/2 keyboard into commands for the typewriter. The byte stream is
// interpreted as plain text with a subset of the Diablo 630 escape sequences
// plus some extensions for pitch selection and diagnostics.
package controller

import (
	"time"

	"github.com/jetsetilly/wheelwriter/hardware/wheelwriter"
	"github.com/jetsetilly/wheelwriter/logger"
)

// Context is required by the types in the package.
type Context interface {
	logger.Permission
}

// Codec is the typewriter command interface used by the Printer. The
// wheelwriter.Codec type implements this interface.
type Codec interface {
	PrintLetter(c uint8, attr wheelwriter.Attribute) error
	EraseLetter(c uint8) error
	Backspace() error
	MicroBackspace() error
	HorizontalTab(chars int) error
	CarriageReturn() error
	Linefeed() error
	ReverseLinefeed() error
	PaperUp() error
	PaperDown() error
	MicroUp() error
	MicroDown() error
	Spin() error

	SetGeometry(g wheelwriter.Geometry)
	Geometry() wheelwriter.Geometry
	Position() int
}

// Variable is a single line in the variables dump.
type Variable struct {
	Name  string
	Value string
}

// Diagnostics is the part of the board that the diagnostic escape sequences
// can reach.
type Diagnostics interface {
	// Banner returns the version banner
	Banner() string

	// Uptime returns the time since power on
	Uptime() time.Duration

	// Port returns the value of I/O port n
	Port(n int) uint8

	// ErrorIndicator switches the flashing error indicator on or off
	ErrorIndicator(on bool)

	// Reset requests a reset of the board
	Reset()

	// Variables returns board variables to include in the variables dump
	Variables() []Variable
}
