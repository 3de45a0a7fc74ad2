package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileName is the name of the config file looked up in the search path.
const FileName = "amazer.yaml"

// Load loads the pipeline configuration.
// Search order: customPath -> ~/.amazer/configs/amazer.yaml -> ./configs/amazer.yaml -> embedded default
func Load(customPath string) (AreaConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return AreaConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data, customPath)
		if err != nil {
			return AreaConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(FileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data, userCfgPath); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", FileName)); err == nil {
		if cfg, err := Parse(data, FileName); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultYAML, FileName)
	if err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes a config. JSON is detected by the .json extension of name;
// anything else is read as YAML. A missing generator is filled with the
// default one.
func Parse(data []byte, name string) (AreaConfig, error) {
	if isJSON(name) {
		converted, err := jsonToYAML(data)
		if err != nil {
			return AreaConfig{}, err
		}
		data = converted
	}

	var cfg AreaConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return AreaConfig{}, err
	}
	cfg = cfg.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return AreaConfig{}, err
	}
	return cfg, nil
}

// Marshal encodes cfg as YAML, or as JSON when name ends in .json.
func Marshal(cfg AreaConfig, name string) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: encode: %w", err)
	}
	if !isJSON(name) {
		return data, nil
	}

	var generic any
	if err := yaml.Unmarshal(data, &generic); err != nil {
		return nil, fmt.Errorf("config: encode: %w", err)
	}
	out, err := json.MarshalIndent(generic, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("config: encode json: %w", err)
	}
	return append(out, '\n'), nil
}

// Save writes cfg to path. The extension must be .yml, .yaml or .json.
// Parent directories are created as needed.
func Save(path string, cfg AreaConfig) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml", ".json":
	default:
		return fmt.Errorf("config: unable to write file type %q", filepath.Ext(path))
	}

	data, err := Marshal(cfg, path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: create directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}

func isJSON(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".json")
}

func jsonToYAML(data []byte) ([]byte, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var generic any
	if err := dec.Decode(&generic); err != nil {
		return nil, fmt.Errorf("config: decode json: %w", err)
	}
	out, err := yaml.Marshal(plainNumbers(generic))
	if err != nil {
		return nil, fmt.Errorf("config: convert json: %w", err)
	}
	return out, nil
}

// plainNumbers replaces json.Number values with int64 or float64 so that
// large seeds survive the conversion.
func plainNumbers(v any) any {
	switch t := v.(type) {
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i
		}
		if f, err := t.Float64(); err == nil {
			return f
		}
		return t.String()
	case map[string]any:
		for k, item := range t {
			t[k] = plainNumbers(item)
		}
	case []any:
		for i, item := range t {
			t[i] = plainNumbers(item)
		}
	}
	return v
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".amazer", "configs", filename)
}
