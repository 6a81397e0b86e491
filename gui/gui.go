// Package gui presents the typewriter and the interface board in a window.
// Keys pressed in the window are sent to the board as if typed on the PS/2
// keyboard or, when switched, on the typewriter's own keyboard.
package gui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jetsetilly/wheelwriter/hardware/wheelwriter"
	"github.com/jetsetilly/wheelwriter/logger"
	"github.com/jetsetilly/wheelwriter/ui"
	"github.com/jetsetilly/wheelwriter/version"
	input "github.com/quasilyte/ebitengine-input"
)

// the paper is drawn one pixel per micro space and one pixel per micro line
const (
	margin       = 20
	statusHeight = 24
	screenWidth  = wheelwriter.RightMargin + margin*3
	screenHeight = 900
)

type gui struct {
	started bool
	endGui  chan bool
	u       *ui.UI
	geom    windowGeometry

	status ui.Status

	// keys are typed on the typewriter rather than the PS/2 keyboard
	typewriter bool

	// top of the view in micro lines
	scroll int

	// paper position when the view was last moved to follow it
	lastY int

	// impressions are drawn here in white and then inked onto the paper
	ink *ebiten.Image

	inputHandler *input.Handler
	inputSystem  input.System
}

const (
	ActionScrollUp input.Action = iota
	ActionScrollDown
	ActionInsertPaper
	ActionSwitchKeyboard
)

func (g *gui) initialise() {
	keymap := input.Keymap{
		ActionScrollUp:       {input.KeyWheelUp},
		ActionScrollDown:     {input.KeyWheelDown},
		ActionInsertPaper:    {input.KeyMouseRight},
		ActionSwitchKeyboard: {input.KeyMouseMiddle},
	}
	g.inputHandler = g.inputSystem.NewHandler(uint8(0), keymap)
	g.ink = ebiten.NewImage(screenWidth, screenHeight)
	g.started = true
}

func (g *gui) Update() error {
	select {
	case <-g.endGui:
		return ebiten.Termination
	default:
	}

	if !g.started {
		g.initialise()
	}

	g.input()

	select {
	case g.status = <-g.u.SetStatus:
	default:
	}

	g.follow()

	return nil
}

// follow moves the view so that the line being typed is visible
func (g *gui) follow() {
	_, y := g.u.Paper.Carriage()
	if y == g.lastY {
		return
	}
	g.lastY = y

	const view = screenHeight - statusHeight - margin*2
	if y < g.scroll {
		g.scroll = y
	} else if y > g.scroll+view {
		g.scroll = y - view
	}
}

func (g *gui) Layout(width, height int) (int, int) {
	return screenWidth, screenHeight
}

// Launch opens the window and runs until the window is closed or the endGui
// channel is signalled.
func Launch(endGui chan bool, u *ui.UI) error {
	ebiten.SetWindowTitle(version.Title())
	ebiten.SetVsyncEnabled(true)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowPosition(10, 10)
	ebiten.SetWindowSize(screenWidth*2/3, screenHeight*2/3)

	g := &gui{
		endGui: endGui,
		u:      u,
	}

	g.inputSystem.Init(input.SystemConfig{
		DevicesEnabled: input.AnyDevice,
	})

	var err error

	g.geom, err = onWindowOpen()
	if err != nil {
		logger.Log(logger.Allow, "gui", err.Error())
	}

	defer func() {
		err := onWindowClose(g.geom)
		if err != nil {
			logger.Log(logger.Allow, "gui", err.Error())
		}
	}()

	return ebiten.RunGame(g)
}
