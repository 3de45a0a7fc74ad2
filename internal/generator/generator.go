// Package generator contains the maze generation algorithms. Every algorithm
// carves into an all-Wall grid where even/even coordinates are cell centres
// and odd coordinates hold the walls between them.
package generator

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/vovakirdan/amazer/internal/core"
)

// ErrInvalidConfig is returned when a generator is given settings it cannot
// work with.
var ErrInvalidConfig = errors.New("generator: invalid config")

// Generator creates a fully populated area of the given size.
// All randomness is drawn from rng, so a seeded source gives reproducible
// output.
type Generator interface {
	Generate(size core.Size, rng *rand.Rand) (*core.Area, error)
}

func checkSize(size core.Size) error {
	if size.Width <= 0 || size.Height <= 0 {
		return fmt.Errorf("%w: size %v must be positive", ErrInvalidConfig, size)
	}
	if size.Width > 65535 || size.Height > 65535 {
		return fmt.Errorf("%w: size %v exceeds 65535", ErrInvalidConfig, size)
	}
	return nil
}

// shuffledStraights returns the four straight directions in random order.
func shuffledStraights(rng *rand.Rand) []core.Direction {
	dirs := core.Straights()
	rng.Shuffle(len(dirs), func(i, j int) {
		dirs[i], dirs[j] = dirs[j], dirs[i]
	})
	return dirs
}

// wallAxis returns the two directions along which a wall cell separates two
// cell centres, or nil if p is not a wall between cells. A wall has exactly
// one odd coordinate.
func wallAxis(p core.Point, rng *rand.Rand) []core.Direction {
	oddX, oddY := p.X%2 != 0, p.Y%2 != 0
	var dirs []core.Direction
	switch {
	case oddX && !oddY:
		dirs = []core.Direction{core.Left, core.Right}
	case oddY && !oddX:
		dirs = []core.Direction{core.Up, core.Down}
	default:
		return nil
	}
	if rng.Intn(2) == 0 {
		dirs[0], dirs[1] = dirs[1], dirs[0]
	}
	return dirs
}

// flanks returns the two cells a wall at p joins when looking along d.
func flanks(p core.Point, d core.Direction) (core.Point, core.Point) {
	return p.Translate(d), p.Translate(d.Opposite())
}

// wallCandidate is a wall cell with the directions not yet tried.
type wallCandidate struct {
	point core.Point
	dirs  []core.Direction
}

func (w *wallCandidate) next() core.Direction {
	d := w.dirs[len(w.dirs)-1]
	w.dirs = w.dirs[:len(w.dirs)-1]
	return d
}

func (w *wallCandidate) exhausted() bool {
	return len(w.dirs) == 0
}

// newWallCandidate returns a candidate for p if it is a wall between two
// in-bounds cells.
func newWallCandidate(area *core.Area, p core.Point, rng *rand.Rand) (*wallCandidate, bool) {
	if !area.Contains(p) {
		return nil, false
	}
	dirs := wallAxis(p, rng)
	if dirs == nil {
		return nil, false
	}
	a, b := flanks(p, dirs[0])
	if !area.Contains(a) || !area.Contains(b) {
		return nil, false
	}
	return &wallCandidate{point: p, dirs: dirs}, true
}

// takeRandom removes and returns a uniformly chosen element. Order of the
// remaining elements is not preserved.
func takeRandom[T any](pool []T, rng *rand.Rand) (T, []T) {
	i := rng.Intn(len(pool))
	item := pool[i]
	last := len(pool) - 1
	pool[i] = pool[last]
	var zero T
	pool[last] = zero
	return item, pool[:last]
}

func randomCell(size core.Size, rng *rand.Rand) core.Point {
	return core.RandomPoint(rng, size, core.EvenAligned)
}
