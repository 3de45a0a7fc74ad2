package generator

import (
	"math/rand"

	"github.com/vovakirdan/amazer/internal/core"
)

// Kruskal is the randomized Kruskal algorithm: walls are removed in random
// order whenever they separate two cells that are not yet connected.
type Kruskal struct{}

// Generate implements Generator.
func (Kruskal) Generate(size core.Size, rng *rand.Rand) (*core.Area, error) {
	if err := checkSize(size); err != nil {
		return nil, err
	}
	area := core.NewFilledArea(size, core.Wall)

	cells := core.NewDisjointSet[core.Point]()
	var pool []*wallCandidate
	for _, p := range area.Points() {
		if core.EvenAligned(p) {
			area.Set(p, core.Floor)
			cells.Add(p)
			continue
		}
		if w, ok := newWallCandidate(area, p, rng); ok {
			pool = append(pool, w)
		}
	}

	for len(pool) > 0 {
		var w *wallCandidate
		w, pool = takeRandom(pool, rng)

		a, b := flanks(w.point, w.next())
		if cells.Union(a, b) {
			area.Set(w.point, core.Floor)
		}
		if !w.exhausted() {
			pool = append(pool, w)
		}
	}

	return area, nil
}
