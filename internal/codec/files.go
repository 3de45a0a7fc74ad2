package codec

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vovakirdan/amazer/internal/core"
)

// Format selects how an area is stored on disk.
type Format string

const (
	// Binary is the raw encoding produced by ToBytes.
	Binary Format = "binary"
	// Base64 is the base64 text of the binary encoding.
	Base64 Format = "base64"
	// Plain is the ASCII rendering. It can be written but not read back.
	Plain Format = "plain"
)

// ErrUnsupportedFormat is returned for unknown formats and for reading the
// plain format.
var ErrUnsupportedFormat = errors.New("codec: unsupported format")

// Formats returns every writable format.
func Formats() []Format {
	return []Format{Binary, Base64, Plain}
}

// ParseFormat returns the format with the given name. An empty name is Binary.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case "":
		return Binary, nil
	case Binary, Base64, Plain:
		return f, nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnsupportedFormat, name)
	}
}

// Extension returns the file extension used for the format.
func (f Format) Extension() string {
	switch f {
	case Base64:
		return ".b64"
	case Plain:
		return ".txt"
	default:
		return ".maze"
	}
}

// Encode renders the area in the given format.
func Encode(area *core.Area, format Format) ([]byte, error) {
	switch format {
	case Binary, "":
		return ToBytes(area)
	case Base64:
		s, err := ToBase64(area)
		if err != nil {
			return nil, err
		}
		return []byte(s), nil
	case Plain:
		return []byte(core.RenderASCII(area) + "\n"), nil
	default:
		return nil, fmt.Errorf("%w %q", ErrUnsupportedFormat, format)
	}
}

// Decode reads an area stored in the given format.
func Decode(data []byte, format Format) (*core.Area, error) {
	switch format {
	case Binary, "":
		return FromBytes(data)
	case Base64:
		return FromBase64(string(data))
	default:
		return nil, fmt.Errorf("%w %q for reading", ErrUnsupportedFormat, format)
	}
}

// WriteFile stores the area at path, creating parent directories as needed.
func WriteFile(path string, area *core.Area, format Format) error {
	data, err := Encode(area, format)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("codec: create directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("codec: write %s: %w", path, err)
	}
	return nil
}

// ReadFile loads an area from path.
func ReadFile(path string, format Format) (*core.Area, error) {
	if format == Plain {
		return nil, fmt.Errorf("%w %q for reading", ErrUnsupportedFormat, format)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("codec: read %s: %w", path, err)
	}
	area, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("codec: %s: %w", path, err)
	}
	return area, nil
}
