package generator

import (
	"math/rand"

	"github.com/vovakirdan/amazer/internal/core"
)

// Prim is the randomized Prim algorithm: the maze grows outwards from a
// single cell through a frontier of walls picked at random.
type Prim struct{}

// Generate implements Generator.
func (Prim) Generate(size core.Size, rng *rand.Rand) (*core.Area, error) {
	if err := checkSize(size); err != nil {
		return nil, err
	}
	area := core.NewFilledArea(size, core.Wall)

	start := randomCell(size, rng)
	area.Set(start, core.Floor)
	frontier := primFrontier(area, start, nil, rng)

	for len(frontier) > 0 {
		i := rng.Intn(len(frontier))
		w := frontier[i]
		a, b := flanks(w.point, w.next())
		if w.exhausted() {
			last := len(frontier) - 1
			frontier[i] = frontier[last]
			frontier[last] = nil
			frontier = frontier[:last]
		}

		aOpen, bOpen := area.Get(a).Passable, area.Get(b).Passable
		if aOpen == bOpen {
			continue
		}
		visit := a
		if aOpen {
			visit = b
		}
		area.Set(w.point, core.Floor)
		area.Set(visit, core.Floor)
		frontier = primFrontier(area, visit, frontier, rng)
	}

	return area, nil
}

// primFrontier appends the walls around cell that still separate it from
// unvisited cells.
func primFrontier(area *core.Area, cell core.Point, frontier []*wallCandidate, rng *rand.Rand) []*wallCandidate {
	for _, d := range core.Straights() {
		p := cell.Translate(d)
		if !area.Contains(p) || area.Get(p).Passable {
			continue
		}
		if w, ok := newWallCandidate(area, p, rng); ok {
			frontier = append(frontier, w)
		}
	}
	return frontier
}
