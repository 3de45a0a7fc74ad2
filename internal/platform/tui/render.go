package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/amazer/internal/core"
)

type tileKind int

const (
	kindFloor tileKind = iota
	kindWall
	kindEmpty
)

// tileStyles maps tile kinds to their glyph and lipgloss style.
var tileStyles = map[tileKind]struct {
	glyph rune
	style lipgloss.Style
}{
	kindFloor: {core.GlyphFloor, lipgloss.NewStyle()},
	kindWall:  {'█', lipgloss.NewStyle().Foreground(lipgloss.Color("245"))},
	kindEmpty: {core.GlyphEmpty, lipgloss.NewStyle().Foreground(lipgloss.Color("1"))},
}

func kindOf(t core.Tile) tileKind {
	switch {
	case t == core.Empty:
		return kindEmpty
	case t.Passable:
		return kindFloor
	default:
		return kindWall
	}
}

// RenderArea converts an area to a styled string, cropped to maxW x maxH
// characters. Non-positive limits disable cropping on that axis.
// Groups adjacent cells of the same kind to minimize ANSI escape sequences.
func RenderArea(a *core.Area, maxW, maxH int) string {
	w, h := a.Width(), a.Height()
	if maxW > 0 {
		w = min(w, maxW)
	}
	if maxH > 0 {
		h = min(h, maxH)
	}

	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(w*h*2 + h)

	for y := range h {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < w {
			start := kindOf(a.Get(core.P(x, y)))

			var run strings.Builder
			for x < w && kindOf(a.Get(core.P(x, y))) == start {
				run.WriteRune(tileStyles[start].glyph)
				x++
			}
			sb.WriteString(tileStyles[start].style.Render(run.String()))
		}
	}
	return sb.String()
}
