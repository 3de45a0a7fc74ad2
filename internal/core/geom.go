// Package core provides the spatial substrate shared by all maze algorithms:
// tiles, areas, points, directions and rectangles, plus the connectivity
// helpers (flood fill, disjoint sets) built on top of them.
// It has no dependencies on the CLI, storage or terminal layers.
package core

import (
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"strings"
)

// Size describes the dimensions of an area or a room.
type Size struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// S is shorthand for constructing a Size.
func S(width, height int) Size {
	return Size{Width: width, Height: height}
}

// ParseSize parses a size in the form "WIDTHxHEIGHT" (e.g. "31x21").
func ParseSize(s string) (Size, error) {
	parts := strings.Split(strings.ToLower(strings.TrimSpace(s)), "x")
	if len(parts) != 2 {
		return Size{}, fmt.Errorf("core: invalid size %q, expected WIDTHxHEIGHT", s)
	}
	w, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Size{}, fmt.Errorf("core: invalid width in size %q: %w", s, err)
	}
	h, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Size{}, fmt.Errorf("core: invalid height in size %q: %w", s, err)
	}
	if w <= 0 || h <= 0 {
		return Size{}, fmt.Errorf("core: size %q must be positive", s)
	}
	return Size{Width: w, Height: h}, nil
}

// String returns the size as "WIDTHxHEIGHT".
func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// Cells returns the number of cells covered by the size.
func (s Size) Cells() int {
	return s.Width * s.Height
}

// MarshalText encodes the size as "WIDTHxHEIGHT", which is how it appears in
// config files.
func (s Size) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a "WIDTHxHEIGHT" size.
func (s *Size) UnmarshalText(text []byte) error {
	parsed, err := ParseSize(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Point is an integer coordinate pair. X grows to the right, Y grows down.
type Point struct {
	X, Y int
}

// P is shorthand for constructing a Point.
func P(x, y int) Point {
	return Point{X: x, Y: y}
}

// Translate returns the point moved one step in the given direction.
func (p Point) Translate(d Direction) Point {
	return p.TranslateN(d, 1)
}

// TranslateN returns the point moved factor steps in the given direction.
func (p Point) TranslateN(d Direction, factor int) Point {
	dx, dy := d.Delta()
	return Point{X: p.X + dx*factor, Y: p.Y + dy*factor}
}

// Distance returns the Euclidean distance between two points.
func (p Point) Distance(other Point) float64 {
	dx := float64(p.X - other.X)
	dy := float64(p.Y - other.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// Equals reports whether both points have the same coordinates.
func (p Point) Equals(other Point) bool {
	return p == other
}

// String returns the point as "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// EvenAligned reports whether both coordinates are even, i.e. the point is a
// cell centre on the maze grid.
func EvenAligned(p Point) bool {
	return p.X%2 == 0 && p.Y%2 == 0
}

// RandomPoint samples a point with 0 <= x < size.Width and 0 <= y < size.Height.
// If accept is non-nil, points are resampled until accept returns true, so the
// predicate must be satisfiable within the bound.
func RandomPoint(rng *rand.Rand, size Size, accept func(Point) bool) Point {
	for {
		p := Point{X: rng.Intn(size.Width), Y: rng.Intn(size.Height)}
		if accept == nil || accept(p) {
			return p
		}
	}
}

// Rectangle is an axis-aligned region defined by its top-left point and size.
type Rectangle struct {
	Origin Point
	Size   Size
}

// NewRectangle creates a rectangle at (x, y) with the given dimensions.
func NewRectangle(x, y, w, h int) Rectangle {
	return Rectangle{Origin: P(x, y), Size: S(w, h)}
}

// Right returns the x-coordinate one past the right edge.
func (r Rectangle) Right() int {
	return r.Origin.X + r.Size.Width
}

// Bottom returns the y-coordinate one past the bottom edge.
func (r Rectangle) Bottom() int {
	return r.Origin.Y + r.Size.Height
}

// Corners returns the top-left, top-right, bottom-right and bottom-left
// points of the rectangle (all inclusive).
func (r Rectangle) Corners() [4]Point {
	return [4]Point{
		r.Origin,
		P(r.Right()-1, r.Origin.Y),
		P(r.Right()-1, r.Bottom()-1),
		P(r.Origin.X, r.Bottom()-1),
	}
}

// Contains returns true if the point is inside this rectangle.
func (r Rectangle) Contains(p Point) bool {
	return p.X >= r.Origin.X && p.X < r.Right() && p.Y >= r.Origin.Y && p.Y < r.Bottom()
}

// Points returns every point inside the rectangle, x outer and y inner.
func (r Rectangle) Points() []Point {
	points := make([]Point, 0, r.Size.Cells())
	for x := r.Origin.X; x < r.Right(); x++ {
		for y := r.Origin.Y; y < r.Bottom(); y++ {
			points = append(points, P(x, y))
		}
	}
	return points
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
