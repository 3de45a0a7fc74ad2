package core

import (
	"fmt"
	"strings"
)

// ASCII glyphs used by RenderASCII and ParseASCII.
const (
	GlyphWall  = '#'
	GlyphFloor = ' '
	GlyphEmpty = '?'
)

// RenderASCII creates a plain-text representation of the area, one line per
// row. Passable tiles render as spaces, impassable ones as '#', and unwritten
// Empty cells as '?'.
func RenderASCII(a *Area) string {
	var sb strings.Builder
	sb.Grow((a.width + 1) * a.height)
	for y := 0; y < a.height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < a.width; x++ {
			sb.WriteRune(glyphFor(a.tiles[y*a.width+x]))
		}
	}
	return sb.String()
}

func glyphFor(t Tile) rune {
	switch {
	case t == Empty:
		return GlyphEmpty
	case t.Passable:
		return GlyphFloor
	default:
		return GlyphWall
	}
}

// ParseASCII builds an area from rows of glyphs. '#' is Wall, ' ' and '.'
// are Floor and '?' is Empty. All rows must have the same length.
func ParseASCII(rows ...string) (*Area, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("core: no rows to parse")
	}
	width := len([]rune(rows[0]))
	a := NewArea(S(width, len(rows)))
	for y, row := range rows {
		runes := []rune(row)
		if len(runes) != width {
			return nil, fmt.Errorf("core: row %d has length %d, expected %d", y, len(runes), width)
		}
		for x, r := range runes {
			switch r {
			case GlyphWall:
				a.Set(P(x, y), Wall)
			case GlyphFloor, '.':
				a.Set(P(x, y), Floor)
			case GlyphEmpty:
				a.Set(P(x, y), Empty)
			default:
				return nil, fmt.Errorf("core: unknown glyph %q at (%d,%d)", r, x, y)
			}
		}
	}
	return a, nil
}

// MustParseASCII is like ParseASCII but panics on malformed input.
// Intended for tests and fixtures.
func MustParseASCII(rows ...string) *Area {
	a, err := ParseASCII(rows...)
	if err != nil {
		panic(err)
	}
	return a
}
