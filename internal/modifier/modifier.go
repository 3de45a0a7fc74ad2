// Package modifier reshapes generated areas: sealing borders, pruning dead
// ends and knocking through walls to add shortcuts.
package modifier

import (
	"errors"
	"math/rand"

	"github.com/vovakirdan/amazer/internal/core"
)

// ErrInvalidConfig is returned when a modifier is given settings it cannot
// work with.
var ErrInvalidConfig = errors.New("modifier: invalid config")

// Modifier transforms an area. Implementations may mutate area in place and
// return it, or return a new instance; callers must use the returned area.
type Modifier interface {
	Apply(area *core.Area, rng *rand.Rand) (*core.Area, error)
}
