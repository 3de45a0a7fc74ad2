package modifier

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/amazer/internal/core"
)

// DefaultDeadendsToRemove is the fraction of collected dead ends walled up
// when RemoveDeadends has no explicit setting.
const DefaultDeadendsToRemove = 0.7

// deadendTile marks cells collected during pruning. It is impassable so that
// the next cell along a corridor can become a dead end in turn.
var deadendTile = core.Impassable("Deadend")

// RemoveDeadends walls up dead-end corridors. Dead ends are followed back
// towards the junction they hang off, so a whole corridor is collected as a
// chain. DeadendsToRemove is a fraction of the collected cells if <= 1 and a
// count otherwise; nil means DefaultDeadendsToRemove.
type RemoveDeadends struct {
	DeadendsToRemove *float64 `yaml:"deadends_to_remove,omitempty"`
}

type deadend struct {
	point        core.Point
	continuation core.Direction
}

// Apply implements Modifier. The area is modified in place.
func (m RemoveDeadends) Apply(area *core.Area, rng *rand.Rand) (*core.Area, error) {
	amount := DefaultDeadendsToRemove
	if m.DeadendsToRemove != nil {
		amount = *m.DeadendsToRemove
	}
	if amount < 0 {
		return nil, fmt.Errorf("%w: deadends to remove %v must not be negative", ErrInvalidConfig, amount)
	}

	pending := findDeadends(area)
	rng.Shuffle(len(pending), func(i, j int) {
		pending[i], pending[j] = pending[j], pending[i]
	})

	var collected []core.Point
	for len(pending) > 0 {
		d := pending[len(pending)-1]
		pending = pending[:len(pending)-1]

		// Chains can reach a dead end that is also queued from the
		// initial scan.
		if !area.Get(d.point).Passable {
			continue
		}
		current, ok := asDeadend(area, d.point)
		if !ok {
			continue
		}

		area.Set(current.point, deadendTile)
		collected = append(collected, current.point)
		if current.continuation == core.None {
			continue
		}
		next := current.point.Translate(current.continuation)
		if nd, ok := asDeadend(area, next); ok && area.Get(next).Passable {
			pending = append(pending, nd)
		}
	}

	remove := int(amount)
	if amount <= 1 {
		remove = int(amount * float64(len(collected)))
	}
	for i, p := range collected {
		if i < remove {
			area.Set(p, core.Wall)
		} else {
			area.Set(p, core.Floor)
		}
	}
	return area, nil
}

func findDeadends(area *core.Area) []deadend {
	var deadends []deadend
	for _, p := range area.Points() {
		if !area.Get(p).Passable {
			continue
		}
		if d, ok := asDeadend(area, p); ok {
			deadends = append(deadends, d)
		}
	}
	return deadends
}

// asDeadend reports whether p has at least three impassable straight
// neighbours. Cells outside the area do not count as walls.
func asDeadend(area *core.Area, p core.Point) (deadend, bool) {
	d := deadend{point: p}
	walls, open := 0, 0
	for dir, t := range area.Neighbours(p, core.Straights()...) {
		if t.Passable {
			open++
			d.continuation = dir
		} else {
			walls++
		}
	}
	if open != 1 {
		d.continuation = core.None
	}
	return d, walls >= 3
}
