package modifier

import (
	"math/rand"

	"github.com/vovakirdan/amazer/internal/core"
)

// Emmure encloses the area in walls. A ring is added only on the sides that
// have at least one passable border cell.
type Emmure struct{}

type border struct {
	side  core.Direction
	start core.Point
	walk  core.Direction
}

// Apply implements Modifier. The returned area is a new instance.
func (Emmure) Apply(area *core.Area, _ *rand.Rand) (*core.Area, error) {
	last := core.P(area.Width()-1, area.Height()-1)
	borders := []border{
		{side: core.Up, start: core.P(0, 0), walk: core.Right},
		{side: core.Left, start: core.P(0, 0), walk: core.Down},
		{side: core.Right, start: last, walk: core.Up},
		{side: core.Down, start: last, walk: core.Left},
	}

	rings := make(map[core.Direction]int, len(borders))
	for _, b := range borders {
		for p := b.start; area.Contains(p); p = p.Translate(b.walk) {
			if area.Get(p).Passable {
				rings[b.side] = 1
				break
			}
		}
	}

	offsetX, offsetY := rings[core.Left], rings[core.Up]
	sealed := core.NewArea(core.S(
		area.Width()+offsetX+rings[core.Right],
		area.Height()+offsetY+rings[core.Down],
	))
	area.ForEach(func(t core.Tile, p core.Point) {
		sealed.Set(core.P(p.X+offsetX, p.Y+offsetY), t)
	})
	sealed.Fill(core.Wall)
	return sealed, nil
}
