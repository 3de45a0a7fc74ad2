package core

import (
	"fmt"
	"strings"
)

// Direction is one of the eight compass directions or None.
// The compass values are ordered clockwise starting at Up, so the opposite
// of a direction is four steps further around the ring.
type Direction int

const (
	None Direction = iota
	Up
	UpRight
	Right
	DownRight
	Down
	DownLeft
	Left
	UpLeft
)

var directionDeltas = [...][2]int{
	None:      {0, 0},
	Up:        {0, -1},
	UpRight:   {1, -1},
	Right:     {1, 0},
	DownRight: {1, 1},
	Down:      {0, 1},
	DownLeft:  {-1, 1},
	Left:      {-1, 0},
	UpLeft:    {-1, -1},
}

var directionNames = [...]string{
	None:      "None",
	Up:        "Up",
	UpRight:   "UpRight",
	Right:     "Right",
	DownRight: "DownRight",
	Down:      "Down",
	DownLeft:  "DownLeft",
	Left:      "Left",
	UpLeft:    "UpLeft",
}

// Delta returns the (dx, dy) offset of one step in this direction.
func (d Direction) Delta() (dx, dy int) {
	if !d.valid() {
		return 0, 0
	}
	delta := directionDeltas[d]
	return delta[0], delta[1]
}

// String returns the direction name.
func (d Direction) String() string {
	if !d.valid() {
		return "Unknown"
	}
	return directionNames[d]
}

// Opposite returns the direction pointing the other way. None is its own
// opposite.
func (d Direction) Opposite() Direction {
	if d == None || !d.valid() {
		return d
	}
	return Direction((int(d)-1+4)%8 + 1)
}

// IsStraight reports whether d is one of Up, Right, Down or Left.
func (d Direction) IsStraight() bool {
	return d.IsHorizontal() || d.IsVertical()
}

// IsDiagonal reports whether d moves along both axes.
func (d Direction) IsDiagonal() bool {
	dx, dy := d.Delta()
	return dx != 0 && dy != 0
}

// IsHorizontal reports whether d is Left or Right.
func (d Direction) IsHorizontal() bool {
	return d == Left || d == Right
}

// IsVertical reports whether d is Up or Down.
func (d Direction) IsVertical() bool {
	return d == Up || d == Down
}

func (d Direction) valid() bool {
	return d >= None && d <= UpLeft
}

// ParseDirection returns the direction with the given name (case-insensitive).
func ParseDirection(name string) (Direction, error) {
	for d, n := range directionNames {
		if strings.EqualFold(n, name) {
			return Direction(d), nil
		}
	}
	return None, fmt.Errorf("core: no direction named %q", name)
}

// Straights returns Up, Right, Down and Left in clockwise order.
func Straights() []Direction {
	return []Direction{Up, Right, Down, Left}
}

// Diagonals returns the four diagonal directions in clockwise order.
func Diagonals() []Direction {
	return []Direction{UpRight, DownRight, DownLeft, UpLeft}
}

// Values returns the eight compass directions in clockwise order.
func Values() []Direction {
	return []Direction{Up, UpRight, Right, DownRight, Down, DownLeft, Left, UpLeft}
}

// All returns None followed by the eight compass directions.
func All() []Direction {
	return append([]Direction{None}, Values()...)
}
