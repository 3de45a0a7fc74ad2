package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/amazer/internal/config"
	"github.com/vovakirdan/amazer/internal/core"
)

// areaFlags are the pipeline flags shared by generate, interactive and serve.
type areaFlags struct {
	config    string
	size      string
	generator string
	modifiers []string
}

func (f *areaFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.config, "config", "c", "", "Path to area config (.yaml, .yml or .json)")
	cmd.Flags().StringVarP(&f.size, "size", "s", "", "Area size as WIDTHxHEIGHT, e.g. 41x31")
	cmd.Flags().StringVarP(&f.generator, "generator", "g", "", "Generator, e.g. rooms or rooms:room_placement_attempts=40")
	cmd.Flags().StringArrayVarP(&f.modifiers, "modifier", "m", nil, "Modifier to apply, repeatable and applied in order")
}

// explicitSize reports whether the area size was chosen by the user rather
// than taken from the default config.
func (f *areaFlags) explicitSize() bool {
	return f.size != "" || f.config != ""
}

// resolve loads the config and applies the flags and the global seed on top.
func (f *areaFlags) resolve() (config.AreaConfig, error) {
	cfg, err := config.Load(f.config)
	if err != nil {
		return config.AreaConfig{}, err
	}

	if f.size != "" {
		size, err := core.ParseSize(f.size)
		if err != nil {
			return config.AreaConfig{}, err
		}
		cfg.Size = size
	}
	if f.generator != "" {
		gen, err := config.ParseGenerator(f.generator)
		if err != nil {
			return config.AreaConfig{}, err
		}
		cfg.Generator = gen
	}
	if len(f.modifiers) > 0 {
		cfg.Modifiers = nil
		for _, text := range f.modifiers {
			mods, err := config.ParseModifiers(text)
			if err != nil {
				return config.AreaConfig{}, fmt.Errorf("modifier %q: %w", text, err)
			}
			cfg.Modifiers = append(cfg.Modifiers, mods...)
		}
	}
	if flagSeed != 0 {
		cfg.Seed = flagSeed
	}
	return cfg, nil
}
