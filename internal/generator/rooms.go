package generator

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/vovakirdan/amazer/internal/core"
)

const (
	minRoomSizeFactor = 0.04
	maxRoomSizeFactor = 0.1
	minMinRoomSide    = 3
	minMaxRoomSide    = 5
	maxPlacements     = 1000
)

// RoomsAndMazes places random rectangular rooms, fills the space between them
// with maze corridors and then knocks through walls until everything is
// connected. Nil fields are derived from the area size.
type RoomsAndMazes struct {
	MinRoomSize           *core.Size `yaml:"min_room_size,omitempty"`
	MaxRoomSize           *core.Size `yaml:"max_room_size,omitempty"`
	RoomPlacementAttempts int        `yaml:"room_placement_attempts,omitempty"`
}

type roomSettings struct {
	min, max core.Size
	attempts int
}

// settings resolves defaults for the given area size and validates the
// result.
func (g RoomsAndMazes) settings(size core.Size) (roomSettings, error) {
	avg := float64(size.Width+size.Height) / 2
	minSide := max(minMinRoomSide, int(math.Floor(avg*minRoomSizeFactor)))
	maxSide := max(minMaxRoomSide, int(math.Floor(avg*maxRoomSizeFactor)))

	s := roomSettings{
		min:      core.S(minSide, minSide),
		max:      core.S(maxSide, maxSide),
		attempts: min(size.Cells()/2, maxPlacements),
	}
	if g.MinRoomSize != nil {
		s.min = *g.MinRoomSize
	}
	if g.MaxRoomSize != nil {
		s.max = *g.MaxRoomSize
	}
	if g.RoomPlacementAttempts != 0 {
		s.attempts = g.RoomPlacementAttempts
	}

	if s.attempts < 0 {
		return s, fmt.Errorf("%w: room placement attempts %d must not be negative", ErrInvalidConfig, s.attempts)
	}
	if s.min.Width <= 0 || s.min.Height <= 0 {
		return s, fmt.Errorf("%w: minimum room size %v must be positive", ErrInvalidConfig, s.min)
	}
	if s.min.Width > s.max.Width || s.min.Height > s.max.Height {
		return s, fmt.Errorf("%w: minimum room size %v exceeds maximum %v", ErrInvalidConfig, s.min, s.max)
	}
	if !hasOdd(s.min.Width, s.max.Width) || !hasOdd(s.min.Height, s.max.Height) {
		return s, fmt.Errorf("%w: room sizes between %v and %v contain no odd dimensions", ErrInvalidConfig, s.min, s.max)
	}
	return s, nil
}

func hasOdd(lo, hi int) bool {
	return hi > lo || lo%2 != 0
}

// Generate implements Generator.
func (g RoomsAndMazes) Generate(size core.Size, rng *rand.Rand) (*core.Area, error) {
	if err := checkSize(size); err != nil {
		return nil, err
	}
	s, err := g.settings(size)
	if err != nil {
		return nil, err
	}

	area := core.NewFilledArea(size, core.Wall)
	for i := 0; i < s.attempts; i++ {
		placeRoom(area, randomRoom(size, s, rng))
	}
	fillWithMazes(area, rng)
	if err := connectSections(area, rng); err != nil {
		return nil, err
	}
	return area, nil
}

func randomRoom(size core.Size, s roomSettings, rng *rand.Rand) core.Rectangle {
	origin := randomCell(size, rng)
	w := oddBetween(s.min.Width, s.max.Width, rng)
	h := oddBetween(s.min.Height, s.max.Height, rng)
	return core.Rectangle{Origin: origin, Size: core.S(w, h)}
}

// oddBetween samples uniformly from [lo, hi] until it hits an odd value.
func oddBetween(lo, hi int, rng *rand.Rand) int {
	for {
		v := lo + rng.Intn(hi-lo+1)
		if v%2 != 0 {
			return v
		}
	}
}

// placeRoom turns the room into Floor if it fits entirely on solid rock.
func placeRoom(area *core.Area, room core.Rectangle) bool {
	points := room.Points()
	for _, p := range points {
		if !area.Contains(p) || area.Get(p).Passable {
			return false
		}
	}
	for _, p := range points {
		area.Set(p, core.Floor)
	}
	return true
}

// fillWithMazes carves from every remaining solid cell centre until none are
// left.
func fillWithMazes(area *core.Area, rng *rand.Rand) {
	for {
		start, ok := firstSolidCell(area)
		if !ok {
			return
		}
		Carve(area, start, rng)
	}
}

func firstSolidCell(area *core.Area) (core.Point, bool) {
	for y := 0; y < area.Height(); y += 2 {
		for x := 0; x < area.Width(); x += 2 {
			p := core.P(x, y)
			if !area.Get(p).Passable {
				return p, true
			}
		}
	}
	return core.Point{}, false
}

type sectionLink struct {
	point    core.Point
	sections [2]int
}

func connectSections(area *core.Area, rng *rand.Rand) error {
	sections := core.FloodFill(area, core.IsPassable, rng)
	for len(sections) > 1 {
		links := findSectionLinks(area, sections)
		if len(links) == 0 {
			return fmt.Errorf("generator: %d sections left but no wall joins them", len(sections))
		}
		link := links[rng.Intn(len(links))]
		area.Set(link.point, core.Floor)

		i, j := link.sections[0], link.sections[1]
		sections[i].Put(link.point)
		sections = core.MergeSections(sections, i, j)
	}
	return nil
}

// findSectionLinks returns walls whose removal would join two different
// sections.
func findSectionLinks(area *core.Area, sections []core.Section) []sectionLink {
	var links []sectionLink
	for _, p := range area.Points() {
		if area.Get(p).Passable {
			continue
		}
		a, b, ok := area.OpposingPassage(p)
		if !ok {
			continue
		}
		sa, sb := core.SectionIndex(sections, a), core.SectionIndex(sections, b)
		if sa != sb && sa >= 0 && sb >= 0 {
			links = append(links, sectionLink{point: p, sections: [2]int{sa, sb}})
		}
	}
	return links
}
