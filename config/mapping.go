package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// KeySeparator splits an external key name into keypath segments.
// "project__name" addresses {"project": {"name": ...}}.
const KeySeparator = "__"

// Mapping is a nested string-keyed configuration structure as loaded from a
// YAML document. Leaf values are scalars, lists, or further mappings. A
// Mapping is treated as read-only once loaded.
type Mapping map[string]any

// SplitKey breaks an external key name into its keypath segments. A key
// without the separator is a single segment.
func SplitKey(key string) []string {
	return strings.Split(key, KeySeparator)
}

// Get resolves key against the mapping by walking its keypath one segment
// at a time. Absence at any depth reports ok=false; it is never an error.
// A nil Mapping resolves nothing.
func (m Mapping) Get(key string) (any, bool) {
	var current any = map[string]any(m)
	for _, segment := range SplitKey(key) {
		node, ok := AsMapping(current)
		if !ok {
			return nil, false
		}
		current, ok = node[segment]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

// AsMapping reports whether v is a nested mapping and returns it as one.
// YAML decoding produces map[string]any nodes; hand-built fixtures may use
// Mapping directly. Both address identically.
func AsMapping(v any) (Mapping, bool) {
	switch m := v.(type) {
	case Mapping:
		return m, m != nil
	case map[string]any:
		return Mapping(m), m != nil
	}
	return nil, false
}

// parseMapping parses a YAML document into a Mapping. Empty content is a
// valid document and yields an empty Mapping.
func parseMapping(data []byte) (Mapping, error) {
	var m Mapping
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	if m == nil {
		m = Mapping{}
	}
	return m, nil
}

// loadOptionalFile reads and parses the file at path. A missing file is a
// normal outcome and yields an empty Mapping; malformed content aborts.
func loadOptionalFile(path string) (Mapping, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Mapping{}, nil
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	m, err := parseMapping(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return m, nil
}
