// Package config provides YAML-based pipeline configuration: the area size,
// the generator with its settings, the ordered modifiers and the seed.
package config

import (
	"fmt"

	"github.com/vovakirdan/amazer/internal/core"
	"github.com/vovakirdan/amazer/internal/generator"
	"github.com/vovakirdan/amazer/internal/modifier"
)

// DefaultGenerator is used when a config names no generator.
const DefaultGenerator = "backtracker"

// GeneratorSpec is a generator together with its settings.
type GeneratorSpec = Spec[generator.Generator]

// ModifierSpec is a modifier together with its settings.
type ModifierSpec = Spec[modifier.Modifier]

// AreaConfig describes one generation run.
type AreaConfig struct {
	Size      core.Size      `yaml:"size"`
	Generator GeneratorSpec  `yaml:"generator"`
	Modifiers []ModifierSpec `yaml:"modifiers,omitempty"`
	Seed      int64          `yaml:"seed,omitempty"` // 0 picks a seed from the clock
}

// Validate checks that the config can be run.
func (c AreaConfig) Validate() error {
	if c.Size.Width <= 0 || c.Size.Height <= 0 {
		return fmt.Errorf("config: size %v must be positive", c.Size)
	}
	if c.Generator.IsZero() {
		return fmt.Errorf("config: no generator")
	}
	for i, m := range c.Modifiers {
		if m.IsZero() {
			return fmt.Errorf("config: modifier %d is empty", i+1)
		}
	}
	return nil
}

// ModifierNames returns the registry IDs of the configured modifiers in order.
func (c AreaConfig) ModifierNames() []string {
	names := make([]string, len(c.Modifiers))
	for i, m := range c.Modifiers {
		names[i] = m.Name
	}
	return names
}

// WithDefaults fills in a missing generator.
func (c AreaConfig) WithDefaults() AreaConfig {
	if c.Generator.IsZero() {
		c.Generator = MustGenerator(DefaultGenerator)
	}
	return c
}
