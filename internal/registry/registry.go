// Package registry lists the available generators and modifiers.
// Both tables are built once at package initialisation; entries are looked up
// by ID or alias, case-insensitively, and decode their settings from YAML
// nodes into the typed variant structs of the generator and modifier
// packages.
package registry

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrUnknown is returned when no entry matches a name.
var ErrUnknown = errors.New("registry: unknown name")

// Field describes one setting of a generator or modifier.
type Field struct {
	Name        string
	Type        string
	Description string
}

// Entry describes a registered variant of T.
type Entry[T any] struct {
	ID      string
	Title   string
	Aliases []string
	Fields  []Field

	decode  func(settings *yaml.Node) (T, error)
	matches func(v T) bool
}

// Names returns the ID followed by the aliases.
func (e Entry[T]) Names() []string {
	return append([]string{e.ID}, e.Aliases...)
}

// New creates the variant with default settings.
func (e Entry[T]) New() T {
	v, err := e.decode(nil)
	if err != nil {
		// Decoding a nil node never fails.
		panic(err)
	}
	return v
}

// Decode creates the variant from a mapping node of settings. A nil node
// yields default settings. Keys that are not declared fields are rejected.
func (e Entry[T]) Decode(settings *yaml.Node) (T, error) {
	var zero T
	if settings != nil && settings.Kind == yaml.ScalarNode && settings.Tag == "!!null" {
		settings = nil
	}
	if settings != nil {
		if settings.Kind != yaml.MappingNode {
			return zero, fmt.Errorf("registry: settings for %s must be a mapping", e.ID)
		}
		for i := 0; i < len(settings.Content); i += 2 {
			key := settings.Content[i].Value
			if !e.hasField(key) {
				return zero, fmt.Errorf("registry: %s has no setting %q", e.ID, key)
			}
		}
	}
	v, err := e.decode(settings)
	if err != nil {
		return zero, fmt.Errorf("registry: settings for %s: %w", e.ID, err)
	}
	return v, nil
}

func (e Entry[T]) hasField(name string) bool {
	for _, f := range e.Fields {
		if f.Name == name {
			return true
		}
	}
	return false
}

// variant builds an entry whose settings decode into V.
func variant[T any, V any](id, title string, aliases []string, fields ...Field) Entry[T] {
	return Entry[T]{
		ID:      id,
		Title:   title,
		Aliases: aliases,
		Fields:  fields,
		decode: func(settings *yaml.Node) (T, error) {
			var v V
			if settings != nil {
				if err := settings.Decode(&v); err != nil {
					var zero T
					return zero, err
				}
			}
			return any(v).(T), nil
		},
		matches: func(t T) bool {
			_, ok := any(t).(V)
			return ok
		},
	}
}

// Table is an ordered, immutable set of entries.
type Table[T any] struct {
	kind    string
	entries []Entry[T]
}

func newTable[T any](kind string, entries ...Entry[T]) *Table[T] {
	seen := make(map[string]bool)
	for _, e := range entries {
		for _, name := range e.Names() {
			key := strings.ToLower(name)
			if seen[key] {
				panic(fmt.Sprintf("registry: %s %q already registered", kind, name))
			}
			seen[key] = true
		}
	}
	return &Table[T]{kind: kind, entries: entries}
}

// Kind returns what the table holds, e.g. "generator".
func (t *Table[T]) Kind() string {
	return t.kind
}

// List returns every entry in registration order.
func (t *Table[T]) List() []Entry[T] {
	out := make([]Entry[T], len(t.entries))
	copy(out, t.entries)
	return out
}

// IDs returns the ID of every entry in registration order.
func (t *Table[T]) IDs() []string {
	ids := make([]string, len(t.entries))
	for i, e := range t.entries {
		ids[i] = e.ID
	}
	return ids
}

// Lookup finds an entry by ID or alias.
func (t *Table[T]) Lookup(name string) (Entry[T], error) {
	for _, e := range t.entries {
		for _, n := range e.Names() {
			if strings.EqualFold(n, name) {
				return e, nil
			}
		}
	}
	return Entry[T]{}, fmt.Errorf("%w: no %s %q (known: %s)", ErrUnknown, t.kind, name, strings.Join(t.IDs(), ", "))
}

// Exists reports whether name matches an entry.
func (t *Table[T]) Exists(name string) bool {
	_, err := t.Lookup(name)
	return err == nil
}

// Create returns the named variant with default settings.
func (t *Table[T]) Create(name string) (T, error) {
	e, err := t.Lookup(name)
	if err != nil {
		var zero T
		return zero, err
	}
	return e.New(), nil
}

// Decode returns the named variant configured from settings.
func (t *Table[T]) Decode(name string, settings *yaml.Node) (T, error) {
	e, err := t.Lookup(name)
	if err != nil {
		var zero T
		return zero, err
	}
	return e.Decode(settings)
}

// EntryFor returns the entry whose variant type matches v.
func (t *Table[T]) EntryFor(v T) (Entry[T], error) {
	for _, e := range t.entries {
		if e.matches(v) {
			return e, nil
		}
	}
	return Entry[T]{}, fmt.Errorf("%w: %s of type %T is not registered", ErrUnknown, t.kind, v)
}

// Encode returns the ID of v and its non-default settings as a mapping
// node, or a nil node when every setting is at its default.
func (t *Table[T]) Encode(v T) (string, *yaml.Node, error) {
	e, err := t.EntryFor(v)
	if err != nil {
		return "", nil, err
	}
	var node yaml.Node
	if err := node.Encode(v); err != nil {
		return "", nil, fmt.Errorf("registry: encode %s: %w", e.ID, err)
	}
	if node.Kind != yaml.MappingNode || len(node.Content) == 0 {
		return e.ID, nil, nil
	}
	return e.ID, &node, nil
}
