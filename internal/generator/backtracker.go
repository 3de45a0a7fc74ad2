package generator

import (
	"math/rand"

	"github.com/vovakirdan/amazer/internal/core"
)

// Backtracker is the depth-first "recursive backtracker". It produces perfect
// mazes with long corridors and few branches.
type Backtracker struct{}

// Generate implements Generator.
func (Backtracker) Generate(size core.Size, rng *rand.Rand) (*core.Area, error) {
	if err := checkSize(size); err != nil {
		return nil, err
	}
	area := core.NewFilledArea(size, core.Wall)
	Carve(area, randomCell(size, rng), rng)
	return area, nil
}

type frame struct {
	point core.Point
	dirs  []core.Direction
}

// Carve runs a depth-first walk from start, turning visited cells and the
// walls between them into Floor. Only cells that are still impassable two
// steps away are entered, so existing passages and rooms are left alone.
func Carve(area *core.Area, start core.Point, rng *rand.Rand) {
	stack := []*frame{{point: start, dirs: shuffledStraights(rng)}}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		area.Set(f.point, core.Floor)

		for len(f.dirs) > 0 {
			d := f.dirs[len(f.dirs)-1]
			f.dirs = f.dirs[:len(f.dirs)-1]

			next := f.point.TranslateN(d, 2)
			if !area.Contains(next) || area.Get(next).Passable {
				continue
			}
			area.Set(f.point.Translate(d), core.Floor)
			stack = append(stack, f, &frame{point: next, dirs: shuffledStraights(rng)})
			break
		}
	}
}
