package modifier

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/vovakirdan/amazer/internal/core"
	"github.com/vovakirdan/amazer/internal/solver"
)

// BreakPassages carves walls that separate two passages whenever walking
// around the wall takes at least MinimumShortcutDistance steps. Amount caps
// the number of carved walls. Nil fields default to the average side length
// and the square root of the cell count respectively.
type BreakPassages struct {
	Amount                  *float64 `yaml:"amount,omitempty"`
	MinimumShortcutDistance *float64 `yaml:"minimum_shortcut_distance,omitempty"`
}

type passage struct {
	wall, a, b core.Point
}

// Apply implements Modifier. The area is modified in place.
func (m BreakPassages) Apply(area *core.Area, rng *rand.Rand) (*core.Area, error) {
	amount := float64(area.Width()+area.Height()) / 2
	if m.Amount != nil {
		amount = *m.Amount
	}
	threshold := math.Sqrt(float64(area.Size().Cells()))
	if m.MinimumShortcutDistance != nil {
		threshold = *m.MinimumShortcutDistance
	}
	if amount < 0 || threshold < 0 {
		return nil, fmt.Errorf("%w: amount %v and minimum shortcut distance %v must not be negative",
			ErrInvalidConfig, amount, threshold)
	}

	candidates := findPassages(area)
	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	for amount > 0 && len(candidates) > 0 {
		c := candidates[len(candidates)-1]
		candidates = candidates[:len(candidates)-1]

		path, err := solver.FindPath(area, c.a, c.b, nil)
		switch {
		case errors.Is(err, solver.ErrNoPath):
		case err != nil:
			return nil, fmt.Errorf("modifier: break passages: %w", err)
		case float64(len(path)) < threshold:
			continue
		}
		area.Set(c.wall, core.Floor)
		amount--
	}
	return area, nil
}

// findPassages returns every wall with passable cells on two opposite sides
// and nowhere else.
func findPassages(area *core.Area) []passage {
	var passages []passage
	for _, p := range area.Points() {
		if area.Get(p).Passable {
			continue
		}
		if a, b, ok := area.OpposingPassage(p); ok {
			passages = append(passages, passage{wall: p, a: a, b: b})
		}
	}
	return passages
}
