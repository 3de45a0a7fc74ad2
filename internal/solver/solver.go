// Package solver finds shortest paths through an area.
package solver

import (
	"container/heap"
	"errors"

	"github.com/vovakirdan/amazer/internal/core"
)

var (
	// ErrNoPath is returned when the target cannot be reached from the start.
	ErrNoPath = errors.New("solver: no path")
	// ErrBrokenPath is returned when a reconstructed path contains a step
	// without a direction.
	ErrBrokenPath = errors.New("solver: node in path does not have a direction")
)

type node struct {
	point       core.Point
	cost        int
	distance    float64
	predecessor *node
	direction   core.Direction
	index       int
}

func (n *node) priority() float64 {
	return float64(n.cost) + n.distance
}

// openSet is a min-heap of nodes keyed by cost plus distance to target.
type openSet []*node

func (o openSet) Len() int { return len(o) }

func (o openSet) Less(i, j int) bool {
	return o[i].priority() < o[j].priority()
}

func (o openSet) Swap(i, j int) {
	o[i], o[j] = o[j], o[i]
	o[i].index = i
	o[j].index = j
}

func (o *openSet) Push(x any) {
	n := x.(*node)
	n.index = len(*o)
	*o = append(*o, n)
}

func (o *openSet) Pop() any {
	old := *o
	last := len(old) - 1
	n := old[last]
	old[last] = nil
	n.index = -1
	*o = old[:last]
	return n
}

// FindPath searches for the shortest path from start to target using straight
// steps over walkable tiles and returns the directions to follow, in order.
// A nil walkable predicate means tile passability. The start tile itself is
// not checked. ErrNoPath is returned when the target is unreachable.
func FindPath(area *core.Area, start, target core.Point, walkable func(core.Tile) bool) ([]core.Direction, error) {
	if walkable == nil {
		walkable = core.IsPassable
	}
	if !area.Contains(start) || !area.Contains(target) {
		return nil, ErrNoPath
	}

	closed := make(map[core.Point]bool)
	open := make(map[core.Point]*node)
	queue := &openSet{}

	first := &node{point: start, distance: start.Distance(target)}
	heap.Push(queue, first)
	open[start] = first

	for queue.Len() > 0 {
		current := heap.Pop(queue).(*node)
		delete(open, current.point)
		if current.point == target {
			return buildPath(current)
		}
		closed[current.point] = true

		neighbours := area.Neighbours(current.point, core.Straights()...)
		for _, dir := range core.Straights() {
			tile, ok := neighbours[dir]
			next := current.point.Translate(dir)
			if !ok || !walkable(tile) || closed[next] {
				continue
			}

			cost := current.cost + 1
			if existing, ok := open[next]; ok {
				if cost < existing.cost {
					existing.cost = cost
					existing.predecessor = current
					existing.direction = dir
					heap.Fix(queue, existing.index)
				}
				continue
			}

			successor := &node{
				point:       next,
				cost:        cost,
				distance:    next.Distance(target),
				predecessor: current,
				direction:   dir,
			}
			heap.Push(queue, successor)
			open[next] = successor
		}
	}

	return nil, ErrNoPath
}

func buildPath(end *node) ([]core.Direction, error) {
	path := make([]core.Direction, end.cost)
	i := end.cost
	for n := end; n.predecessor != nil; n = n.predecessor {
		if n.direction == core.None || i == 0 {
			return nil, ErrBrokenPath
		}
		i--
		path[i] = n.direction
	}
	if i != 0 {
		return nil, ErrBrokenPath
	}
	return path, nil
}

// Walk follows path from start and returns every point visited, start
// included.
func Walk(start core.Point, path []core.Direction) []core.Point {
	points := make([]core.Point, 0, len(path)+1)
	points = append(points, start)
	p := start
	for _, d := range path {
		p = p.Translate(d)
		points = append(points, p)
	}
	return points
}
