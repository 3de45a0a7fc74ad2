package core

import (
	"math/rand"

	"github.com/zyedidia/generic/mapset"
)

// Section is a maximal set of points that are mutually reachable through
// straight steps over walkable tiles.
type Section = mapset.Set[Point]

// FloodFill partitions the walkable points of area into sections.
// Start points are taken in shuffled order so that section discovery is not
// biased towards the top-left corner.
func FloodFill(area *Area, walkable func(Tile) bool, rng *rand.Rand) []Section {
	if walkable == nil {
		walkable = IsPassable
	}

	points := area.Points()
	rng.Shuffle(len(points), func(i, j int) {
		points[i], points[j] = points[j], points[i]
	})

	assigned := make([]bool, area.width*area.height)
	var sections []Section

	for _, start := range points {
		if assigned[area.index(start)] || !walkable(area.Get(start)) {
			continue
		}

		section := mapset.New[Point]()
		stack := []Point{start}
		assigned[area.index(start)] = true
		for len(stack) > 0 {
			p := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			section.Put(p)

			for _, d := range Straights() {
				np := p.Translate(d)
				if !area.Contains(np) || assigned[area.index(np)] || !walkable(area.Get(np)) {
					continue
				}
				assigned[area.index(np)] = true
				stack = append(stack, np)
			}
		}
		sections = append(sections, section)
	}

	return sections
}

// SectionIndex returns the index of the section containing p, or -1.
func SectionIndex(sections []Section, p Point) int {
	for i, s := range sections {
		if s.Has(p) {
			return i
		}
	}
	return -1
}

// MergeSections moves every point of sections[j] into sections[i] and
// removes sections[j] from the slice.
func MergeSections(sections []Section, i, j int) []Section {
	target := sections[i]
	sections[j].Each(func(p Point) {
		target.Put(p)
	})
	return append(sections[:j], sections[j+1:]...)
}
