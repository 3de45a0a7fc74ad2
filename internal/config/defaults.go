package config

import (
	_ "embed"

	"github.com/vovakirdan/amazer/internal/core"
	"github.com/vovakirdan/amazer/internal/generator"
)

//go:embed defaults/amazer.yaml
var defaultYAML []byte

// DefaultYAML returns the embedded default config file.
func DefaultYAML() []byte {
	out := make([]byte, len(defaultYAML))
	copy(out, defaultYAML)
	return out
}

// Default returns the default pipeline configuration: a 31x21 recursive
// backtracker maze without modifiers.
func Default() AreaConfig {
	return AreaConfig{
		Size: core.S(31, 21),
		Generator: GeneratorSpec{
			Name:  DefaultGenerator,
			Value: generator.Backtracker{},
		},
	}
}
