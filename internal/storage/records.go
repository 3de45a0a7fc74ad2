package storage

import (
	"fmt"

	"github.com/vovakirdan/amazer/internal/codec"
	"github.com/vovakirdan/amazer/internal/config"
	"github.com/vovakirdan/amazer/internal/core"
)

// NewAreaRecord builds a record for area generated from cfg.
func NewAreaRecord(name string, cfg config.AreaConfig, area *core.Area) (AreaRecord, error) {
	data, err := codec.ToBytes(area)
	if err != nil {
		return AreaRecord{}, fmt.Errorf("storage: encode area: %w", err)
	}
	cfgYAML, err := config.Marshal(cfg, "config.yaml")
	if err != nil {
		return AreaRecord{}, fmt.Errorf("storage: encode config: %w", err)
	}
	return AreaRecord{
		Name:       name,
		Generator:  cfg.Generator.Name,
		Config:     string(cfgYAML),
		Seed:       cfg.Seed,
		Width:      area.Width(),
		Height:     area.Height(),
		FloorCount: area.Count(core.IsPassable),
		Data:       data,
	}, nil
}

// Area decodes the stored area.
func (r AreaRecord) Area() (*core.Area, error) {
	area, err := codec.FromBytes(r.Data)
	if err != nil {
		return nil, fmt.Errorf("storage: area %d: %w", r.ID, err)
	}
	return area, nil
}

// AreaConfig decodes the stored config.
func (r AreaRecord) AreaConfig() (config.AreaConfig, error) {
	cfg, err := config.Parse([]byte(r.Config), "config.yaml")
	if err != nil {
		return config.AreaConfig{}, fmt.Errorf("storage: area %d config: %w", r.ID, err)
	}
	return cfg, nil
}

// Label returns the name, or a generated one for unnamed records.
func (r AreaRecord) Label() string {
	if r.Name != "" {
		return r.Name
	}
	return fmt.Sprintf("%s-%d", r.Generator, r.ID)
}
