package core

// Tile is a cell value inside an Area. Tiles compare by value, so two tiles
// with the same name and passability are interchangeable.
type Tile struct {
	Name     string
	Passable bool
}

var (
	// Empty marks cells that have not been written yet.
	Empty = Impassable("Empty")
	// Floor is the canonical passable tile.
	Floor = Passable("Floor")
	// Wall is the canonical impassable tile.
	Wall = Impassable("Wall")
)

// Passable creates a passable tile with the given name.
func Passable(name string) Tile {
	return Tile{Name: name, Passable: true}
}

// Impassable creates an impassable tile with the given name.
func Impassable(name string) Tile {
	return Tile{Name: name, Passable: false}
}

// IsPassable is the default walkability predicate.
func IsPassable(t Tile) bool {
	return t.Passable
}

// Neighbours maps directions to the tile found one step away. Directions
// pointing outside the area are omitted.
type Neighbours map[Direction]Tile

// Passable returns the number of passable neighbours.
func (n Neighbours) Passable() int {
	count := 0
	for _, t := range n {
		if t.Passable {
			count++
		}
	}
	return count
}

// Cell pairs a tile with its position.
type Cell struct {
	Tile  Tile
	Point Point
}

// Area is a rectangular grid of tiles.
// Tiles are stored in row-major order: index = y*width + x.
type Area struct {
	width  int
	height int
	tiles  []Tile
}

// NewArea creates an area of the given size filled with Empty tiles.
func NewArea(size Size) *Area {
	return NewFilledArea(size, Empty)
}

// NewFilledArea creates an area of the given size filled with initial.
func NewFilledArea(size Size, initial Tile) *Area {
	a := &Area{
		width:  size.Width,
		height: size.Height,
		tiles:  make([]Tile, size.Width*size.Height),
	}
	for i := range a.tiles {
		a.tiles[i] = initial
	}
	return a
}

// Width returns the number of columns.
func (a *Area) Width() int {
	return a.width
}

// Height returns the number of rows.
func (a *Area) Height() int {
	return a.height
}

// Size returns the area dimensions.
func (a *Area) Size() Size {
	return Size{Width: a.width, Height: a.height}
}

func (a *Area) index(p Point) int {
	return p.Y*a.width + p.X
}

// Contains returns true if the point is within the area boundaries.
func (a *Area) Contains(p Point) bool {
	return p.X >= 0 && p.X < a.width && p.Y >= 0 && p.Y < a.height
}

// Get returns the tile at p. Callers must check Contains first; out-of-bounds
// access panics like a slice index would.
func (a *Area) Get(p Point) Tile {
	if !a.Contains(p) {
		panic("core: point " + p.String() + " outside area " + a.Size().String())
	}
	return a.tiles[a.index(p)]
}

// Set writes the tile at p. Out-of-bounds writes panic.
func (a *Area) Set(p Point, t Tile) {
	if !a.Contains(p) {
		panic("core: point " + p.String() + " outside area " + a.Size().String())
	}
	a.tiles[a.index(p)] = t
}

// Neighbours returns the tiles around p for the given directions, or for all
// eight compass directions when none are given.
func (a *Area) Neighbours(p Point, dirs ...Direction) Neighbours {
	if len(dirs) == 0 {
		dirs = Values()
	}
	n := make(Neighbours, len(dirs))
	for _, d := range dirs {
		np := p.Translate(d)
		if a.Contains(np) {
			n[d] = a.Get(np)
		}
	}
	return n
}

// OpposingPassage reports whether p has exactly two passable straight
// neighbours lying opposite each other, and returns them.
func (a *Area) OpposingPassage(p Point) (Point, Point, bool) {
	n := a.Neighbours(p, Straights()...)
	if n.Passable() != 2 {
		return Point{}, Point{}, false
	}
	switch {
	case n[Up].Passable && n[Down].Passable:
		return p.Translate(Up), p.Translate(Down), true
	case n[Left].Passable && n[Right].Passable:
		return p.Translate(Left), p.Translate(Right), true
	}
	return Point{}, Point{}, false
}

// Points returns every point of the area, x outer and y inner.
func (a *Area) Points() []Point {
	points := make([]Point, 0, len(a.tiles))
	for x := 0; x < a.width; x++ {
		for y := 0; y < a.height; y++ {
			points = append(points, P(x, y))
		}
	}
	return points
}

// Cells returns every tile with its point, in Points order.
func (a *Area) Cells() []Cell {
	cells := make([]Cell, 0, len(a.tiles))
	for _, p := range a.Points() {
		cells = append(cells, Cell{Tile: a.Get(p), Point: p})
	}
	return cells
}

// ForEach calls fn for every cell in Points order.
func (a *Area) ForEach(fn func(t Tile, p Point)) {
	for _, p := range a.Points() {
		fn(a.Get(p), p)
	}
}

// Fill replaces every Empty tile with t.
func (a *Area) Fill(t Tile) {
	for i, cur := range a.tiles {
		if cur == Empty {
			a.tiles[i] = t
		}
	}
}

// Count returns the number of tiles matching pred.
func (a *Area) Count(pred func(Tile) bool) int {
	count := 0
	for _, t := range a.tiles {
		if pred(t) {
			count++
		}
	}
	return count
}

// Clone returns a deep copy of the area.
func (a *Area) Clone() *Area {
	tiles := make([]Tile, len(a.tiles))
	copy(tiles, a.tiles)
	return &Area{
		width:  a.width,
		height: a.height,
		tiles:  tiles,
	}
}

// Equal returns true if both areas have the same dimensions and tiles.
func (a *Area) Equal(other *Area) bool {
	if a.width != other.width || a.height != other.height {
		return false
	}
	for i, t := range a.tiles {
		if t != other.tiles[i] {
			return false
		}
	}
	return true
}

// SamePassability returns true if both areas have the same dimensions and
// every cell agrees on passability. Tile names are ignored.
func (a *Area) SamePassability(other *Area) bool {
	if a.width != other.width || a.height != other.height {
		return false
	}
	for i, t := range a.tiles {
		if t.Passable != other.tiles[i].Passable {
			return false
		}
	}
	return true
}
