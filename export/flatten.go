package export

import (
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/randalmurphal/confstack/config"
)

// Row is one flattened configuration value.
type Row struct {
	Key    string // segmented key form, e.g. "project__name"
	Value  string // YAML-encoded leaf value
	Source string // tier that supplied the value, empty when unknown
}

// Flatten walks a nested mapping depth-first and emits one row per leaf in
// deterministic key order. Nested mappings recurse; scalars and lists are
// leaves.
func Flatten(m config.Mapping) []Row {
	var rows []Row
	flattenInto(&rows, nil, m)
	return rows
}

func flattenInto(rows *[]Row, prefix []string, m config.Mapping) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		path := append(append([]string(nil), prefix...), k)
		if child, ok := config.AsMapping(m[k]); ok {
			flattenInto(rows, path, child)
			continue
		}
		*rows = append(*rows, Row{
			Key:   strings.Join(path, config.KeySeparator),
			Value: encodeValue(m[k]),
		})
	}
}

// Keys returns the flattened key set of a mapping in sorted order.
func Keys(m config.Mapping) []string {
	rows := Flatten(m)
	keys := make([]string, len(rows))
	for i, row := range rows {
		keys[i] = row.Key
	}
	return keys
}

// RowsFromProject flattens every key defined on any tier of the project
// cascade to its resolved value, with the winning tier recorded per row.
// Keys are emitted in sorted order.
func RowsFromProject(p *config.ProjectConfig) []Row {
	seen := make(map[string]bool)
	var keys []string
	for _, tier := range []config.Mapping{
		p.LocalOverride(),
		p.Project(),
		p.Global().User(),
		p.Global().Packaged(),
	} {
		for _, k := range Keys(tier) {
			if !seen[k] {
				seen[k] = true
				keys = append(keys, k)
			}
		}
	}
	sort.Strings(keys)

	rows := make([]Row, 0, len(keys))
	for _, key := range keys {
		v, source, ok := p.GetWithSource(key)
		if !ok {
			continue
		}
		rows = append(rows, Row{
			Key:    key,
			Value:  encodeValue(v),
			Source: string(source),
		})
	}
	return rows
}

func encodeValue(v any) string {
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return strings.TrimSuffix(string(data), "\n")
}
