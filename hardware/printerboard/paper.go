package printerboard

import (
	"slices"
	"strings"

	"github.com/jetsetilly/wheelwriter/hardware/wheelwriter"
)

// Impression is a single strike of the printwheel onto the paper. X is in
// micro spaces from the left margin and Y is in micro lines from the top of
// the sheet.
type Impression struct {
	X, Y int
	Char uint8
}

// Paper is the sheet in the typewriter. Impressions are kept in the order
// they were made.
type Paper struct {
	impressions []Impression
}

func (p *Paper) strike(x, y int, c uint8) {
	p.impressions = append(p.impressions, Impression{X: x, Y: y, Char: c})
}

// lift removes the most recent impression of the character at the position.
// returns false if there was no such impression
func (p *Paper) lift(x, y int, c uint8) bool {
	for i := len(p.impressions) - 1; i >= 0; i-- {
		im := p.impressions[i]
		if im.X == x && im.Y == y && im.Char == c {
			p.impressions = slices.Delete(p.impressions, i, i+1)
			return true
		}
	}
	return false
}

// Impressions returns a copy of every impression on the paper.
func (p *Paper) Impressions() []Impression {
	return slices.Clone(p.impressions)
}

// Text renders the paper as lines of text using the geometry to place the
// impressions in rows and columns. A character struck over an underscore
// takes precedence over the underscore. Trailing spaces are removed.
func (p *Paper) Text(geom wheelwriter.Geometry) string {
	var rows [][]uint8

	for _, im := range p.impressions {
		if im.X < 0 || im.Y < 0 {
			continue
		}
		r := im.Y / geom.LinesPerLine
		c := im.X / geom.SpacesPerChar
		for len(rows) <= r {
			rows = append(rows, nil)
		}
		for len(rows[r]) <= c {
			rows[r] = append(rows[r], ' ')
		}
		if rows[r][c] == ' ' || rows[r][c] == '_' {
			rows[r][c] = im.Char
		}
	}

	var s strings.Builder
	for i, r := range rows {
		if i > 0 {
			s.WriteByte('\n')
		}
		s.WriteString(strings.TrimRight(string(r), " "))
	}
	return s.String()
}
