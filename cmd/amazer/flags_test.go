package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/amazer/internal/core"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "amazer.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	return path
}

func TestAreaFlagsOverrideConfig(t *testing.T) {
	path := writeConfig(t, "size: 21x11\ngenerator: prim\nmodifiers: [emmure]\nseed: 3\n")

	flagSeed = 9
	defer func() { flagSeed = 0 }()

	f := areaFlags{
		config:    path,
		size:      "15x9",
		generator: "rooms:room_placement_attempts=5",
		modifiers: []string{"remove-deadends", "break-passages:amount=2;emmure"},
	}
	cfg, err := f.resolve()
	if err != nil {
		t.Fatalf("resolve() error: %v", err)
	}

	if cfg.Size != core.S(15, 9) {
		t.Errorf("Size = %v, expected 15x9", cfg.Size)
	}
	if cfg.Generator.Name != "rooms" {
		t.Errorf("Generator = %s, expected rooms", cfg.Generator.Name)
	}
	names := cfg.ModifierNames()
	want := []string{"remove-deadends", "break-passages", "emmure"}
	if len(names) != len(want) {
		t.Fatalf("Modifiers = %v, expected %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("Modifiers[%d] = %s, expected %s", i, names[i], want[i])
		}
	}
	if cfg.Seed != 9 {
		t.Errorf("Seed = %d, expected 9", cfg.Seed)
	}
}

func TestAreaFlagsKeepConfigValues(t *testing.T) {
	path := writeConfig(t, "size: 21x11\ngenerator: prim\nmodifiers: [emmure]\nseed: 3\n")

	f := areaFlags{config: path}
	cfg, err := f.resolve()
	if err != nil {
		t.Fatalf("resolve() error: %v", err)
	}
	if cfg.Size != core.S(21, 11) || cfg.Generator.Name != "prim" || cfg.Seed != 3 {
		t.Errorf("resolve() = %+v", cfg)
	}
	if len(cfg.Modifiers) != 1 {
		t.Errorf("Modifiers = %v, expected [emmure]", cfg.ModifierNames())
	}
	if !f.explicitSize() {
		t.Error("a config file should count as an explicit size")
	}
}

func TestAreaFlagsErrors(t *testing.T) {
	path := writeConfig(t, "size: 21x11\n")

	tests := []struct {
		name  string
		flags areaFlags
	}{
		{"bad size", areaFlags{config: path, size: "huge"}},
		{"unknown generator", areaFlags{config: path, generator: "labyrinth"}},
		{"unknown modifier", areaFlags{config: path, modifiers: []string{"emmure", "paint"}}},
		{"missing config", areaFlags{config: filepath.Join(t.TempDir(), "nope.yaml")}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := tc.flags.resolve(); err == nil {
				t.Error("resolve() expected error")
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Errorf("truncate() = %q", got)
	}
	if got := truncate("a-very-long-name", 6); got != "a-ver." {
		t.Errorf("truncate() = %q, expected %q", got, "a-ver.")
	}
}
