package gui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/jetsetilly/wheelwriter/ui"
)

// number of micro lines moved by one step of the mouse wheel
const scrollStep = 48

func (g *gui) send(inp ui.Input) {
	select {
	case g.u.UserInput <- inp:
	default:
	}
}

func (g *gui) input() {
	g.inputSystem.Update()

	if g.inputHandler.ActionIsPressed(ActionScrollUp) {
		g.scroll = max(0, g.scroll-scrollStep)
	}
	if g.inputHandler.ActionIsPressed(ActionScrollDown) {
		g.scroll += scrollStep
	}
	if g.inputHandler.ActionIsJustPressed(ActionInsertPaper) {
		g.send(ui.Input{Action: ui.InsertPaper})
		g.scroll = 0
	}
	if g.inputHandler.ActionIsJustPressed(ActionSwitchKeyboard) {
		g.typewriter = !g.typewriter
	}

	if g.typewriter {
		g.inputTypewriter()
	} else {
		g.inputKeyboard()
	}
}

// the typewriter keyboard produces characters and nothing else
func (g *gui) inputTypewriter() {
	var chars []rune
	chars = ebiten.AppendInputChars(chars)

	for _, r := range chars {
		if r < 0x20 || r > 0x7e {
			continue
		}
		g.send(ui.Input{Action: ui.TypewriterKey, Data: []uint8{uint8(r)}})
	}
}

func (g *gui) inputKeyboard() {
	var pressed []ebiten.Key
	var released []ebiten.Key
	pressed = inpututil.AppendJustPressedKeys(pressed)
	released = inpututil.AppendJustReleasedKeys(released)

	for _, k := range pressed {
		if sc := scancodes(k, false); sc != nil {
			g.send(ui.Input{Action: ui.PS2Key, Data: sc})
		}
	}

	for _, k := range released {
		if sc := scancodes(k, true); sc != nil {
			g.send(ui.Input{Action: ui.PS2Key, Data: sc})
		}
	}
}
