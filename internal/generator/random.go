package generator

import (
	"math/rand"

	"github.com/vovakirdan/amazer/internal/core"
)

// Random fills every cell independently with Floor or Wall. The result is
// noise rather than a maze; it is handy for exercising the codec and the
// modifiers on arbitrary layouts.
type Random struct{}

// Generate implements Generator.
func (Random) Generate(size core.Size, rng *rand.Rand) (*core.Area, error) {
	if err := checkSize(size); err != nil {
		return nil, err
	}
	area := core.NewArea(size)
	for _, p := range area.Points() {
		if rng.Intn(2) == 0 {
			area.Set(p, core.Floor)
		} else {
			area.Set(p, core.Wall)
		}
	}
	return area, nil
}
