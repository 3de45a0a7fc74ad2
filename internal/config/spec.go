package config

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/amazer/internal/generator"
	"github.com/vovakirdan/amazer/internal/modifier"
	"github.com/vovakirdan/amazer/internal/registry"
)

// Spec names a registered generator or modifier and holds its configured
// value. In YAML it is written either as a string ("rooms" or
// "rooms:min_room_size=3x3,room_placement_attempts=200") or as a single-key
// mapping whose value holds the settings.
type Spec[T any] struct {
	Name  string
	Value T
}

func tableFor[T any]() *registry.Table[T] {
	if t, ok := any(registry.Generators).(*registry.Table[T]); ok {
		return t
	}
	if t, ok := any(registry.Modifiers).(*registry.Table[T]); ok {
		return t
	}
	panic("config: no registry for spec type")
}

// IsZero reports whether the spec is unset.
func (s Spec[T]) IsZero() bool {
	return s.Name == ""
}

// ParseGenerator parses a generator spec string.
func ParseGenerator(text string) (GeneratorSpec, error) {
	return parseSpec[generator.Generator](text)
}

// ParseModifier parses a modifier spec string.
func ParseModifier(text string) (ModifierSpec, error) {
	return parseSpec[modifier.Modifier](text)
}

// ParseModifiers parses a list of modifier specs separated by ';'.
func ParseModifiers(text string) ([]ModifierSpec, error) {
	var specs []ModifierSpec
	for _, part := range strings.Split(text, ";") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		s, err := ParseModifier(part)
		if err != nil {
			return nil, err
		}
		specs = append(specs, s)
	}
	return specs, nil
}

// MustGenerator is like ParseGenerator but panics on error.
func MustGenerator(text string) GeneratorSpec {
	s, err := ParseGenerator(text)
	if err != nil {
		panic(err)
	}
	return s
}

func parseSpec[T any](text string) (Spec[T], error) {
	name, rest, hasSettings := strings.Cut(strings.TrimSpace(text), ":")
	name = strings.TrimSpace(name)
	if name == "" {
		return Spec[T]{}, fmt.Errorf("config: empty name in %q", text)
	}

	var settings *yaml.Node
	if hasSettings && strings.TrimSpace(rest) != "" {
		settings = &yaml.Node{Kind: yaml.MappingNode}
		for _, pair := range strings.Split(rest, ",") {
			key, value, ok := strings.Cut(pair, "=")
			key, value = strings.TrimSpace(key), strings.TrimSpace(value)
			if !ok || key == "" {
				return Spec[T]{}, fmt.Errorf("config: setting %q in %q must look like key=value", pair, text)
			}
			settings.Content = append(settings.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Value: key},
				&yaml.Node{Kind: yaml.ScalarNode, Value: value},
			)
		}
	}
	return decodeSpec[T](name, settings)
}

func decodeSpec[T any](name string, settings *yaml.Node) (Spec[T], error) {
	table := tableFor[T]()
	entry, err := table.Lookup(name)
	if err != nil {
		return Spec[T]{}, err
	}
	v, err := entry.Decode(settings)
	if err != nil {
		return Spec[T]{}, err
	}
	return Spec[T]{Name: entry.ID, Value: v}, nil
}

// String returns the compact "name:key=value,..." form.
func (s Spec[T]) String() string {
	if s.IsZero() {
		return ""
	}
	_, node, err := tableFor[T]().Encode(s.Value)
	if err != nil || node == nil {
		return s.Name
	}
	pairs := make([]string, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		pairs = append(pairs, node.Content[i].Value+"="+node.Content[i+1].Value)
	}
	return s.Name + ":" + strings.Join(pairs, ",")
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *Spec[T]) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		parsed, err := parseSpec[T](node.Value)
		if err != nil {
			return fmt.Errorf("line %d: %w", node.Line, err)
		}
		*s = parsed
		return nil
	case yaml.MappingNode:
		if len(node.Content) != 2 {
			return fmt.Errorf("line %d: config: expected a single %s name as key", node.Line, tableFor[T]().Kind())
		}
		parsed, err := decodeSpec[T](node.Content[0].Value, node.Content[1])
		if err != nil {
			return fmt.Errorf("line %d: %w", node.Line, err)
		}
		*s = parsed
		return nil
	default:
		return fmt.Errorf("line %d: config: cannot read %s from this value", node.Line, tableFor[T]().Kind())
	}
}

// MarshalYAML implements yaml.Marshaler. Specs without settings are written
// as plain names.
func (s Spec[T]) MarshalYAML() (any, error) {
	if s.IsZero() {
		return nil, nil
	}
	id, settings, err := tableFor[T]().Encode(s.Value)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		return id, nil
	}
	return &yaml.Node{
		Kind: yaml.MappingNode,
		Content: []*yaml.Node{
			{Kind: yaml.ScalarNode, Value: id},
			settings,
		},
	}, nil
}
