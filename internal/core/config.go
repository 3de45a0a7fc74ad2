package core

import (
	"math/rand"
	"time"
)

// RuntimeConfig contains the settings shared by interactive sessions.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	Seed    int64 // RNG seed, 0 means derive one from the clock
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Seed:    0,
	}
}

// ResolveSeed returns seed, or a clock-derived seed when seed is 0.
func ResolveSeed(seed int64) int64 {
	if seed == 0 {
		return time.Now().UnixNano()
	}
	return seed
}

// NewRand creates the random source used by generators and modifiers.
// A zero seed yields a clock-seeded source.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(ResolveSeed(seed)))
}
