package gui

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jetsetilly/wheelwriter/hardware/wheelwriter"
)

var (
	deskColour   = color.RGBA{R: 0x30, G: 0x30, B: 0x34, A: 0xff}
	paperColour  = color.RGBA{R: 0xf4, G: 0xf1, B: 0xe8, A: 0xff}
	statusColour = color.RGBA{R: 0x10, G: 0x10, B: 0x10, A: 0xff}
	carriageMark = color.RGBA{R: 0xc0, G: 0x20, B: 0x20, A: 0xff}
)

type led struct {
	on     bool
	bright color.RGBA
}

func (l led) colour() color.RGBA {
	if l.on {
		return l.bright
	}
	return color.RGBA{R: l.bright.R / 5, G: l.bright.G / 5, B: l.bright.B / 5, A: 0xff}
}

// height of the debug font. impressions are drawn with their baseline on
// the print line
const glyphHeight = 16

func (g *gui) Draw(screen *ebiten.Image) {
	screen.Fill(deskColour)
	vector.DrawFilledRect(screen, margin, statusHeight, wheelwriter.RightMargin+margin, screenHeight-statusHeight, paperColour, false)

	g.drawPaper(screen)
	g.drawStatus(screen)

	g.geom.x, g.geom.y = ebiten.WindowPosition()
	g.geom.w, g.geom.h = ebiten.WindowSize()
}

func (g *gui) drawPaper(screen *ebiten.Image) {
	top := statusHeight + margin - g.scroll

	g.ink.Clear()
	for _, im := range g.u.Paper.Impressions() {
		y := top + im.Y - glyphHeight + 4
		if y < statusHeight-glyphHeight || y > screenHeight {
			continue
		}
		ebitenutil.DebugPrintAt(g.ink, string(rune(im.Char)), margin+margin/2+im.X, y)
	}

	var op ebiten.DrawImageOptions
	op.ColorScale.Scale(0.1, 0.1, 0.15, 1.0)
	screen.DrawImage(g.ink, &op)

	x, y := g.u.Paper.Carriage()
	cx := float32(margin + margin/2 + x)
	cy := float32(top + y)
	vector.StrokeLine(screen, cx, cy+2, cx+6, cy+2, 2, carriageMark, false)
}

func (g *gui) drawStatus(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, screenWidth, statusHeight, statusColour, false)

	leds := []led{
		{on: g.status.Green, bright: color.RGBA{G: 0xff, A: 0xff}},
		{on: g.status.Amber, bright: color.RGBA{R: 0xff, G: 0xb0, A: 0xff}},
		{on: g.status.Red, bright: color.RGBA{R: 0xff, A: 0xff}},
	}
	for i, l := range leds {
		vector.DrawFilledRect(screen, float32(margin+i*20), 6, 12, 12, l.colour(), false)
	}

	lock := func(on bool) string {
		if on {
			return "*"
		}
		return "-"
	}

	kb := "PS/2 keyboard"
	if g.typewriter {
		kb = "typewriter keyboard"
	}

	s := fmt.Sprintf("caps %s  num %s  scroll %s    uptime %s    %s",
		lock(g.status.CapsLock), lock(g.status.NumLock), lock(g.status.ScrollLock),
		g.status.Uptime.Truncate(time.Second), kb)
	ebitenutil.DebugPrintAt(screen, s, margin+80, 4)
}
