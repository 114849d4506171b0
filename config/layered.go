package config

// Getter is the resolution protocol shared by Mapping and Layered. Any
// Getter can sit on a search path.
type Getter interface {
	// Get returns the value for a segmented key. ok=false means the key is
	// not defined, as distinct from defined-as-empty.
	Get(key string) (any, bool)
}

// Source identifies the layer that supplied a resolved value.
type Source string

// Sources reported by GetWithSource. Search-path delegates report the name
// they were registered under with Named.
const (
	SourceNone    Source = ""
	SourceLocal   Source = "local"
	SourceDefault Source = "default"
)

// Layered answers keys from a local Mapping, then a flat defaults map, then
// an ordered search path of delegate configs.
//
// Defaults are keyed by the exact separator-joined key form ("foo__bar"),
// not nested. They apply whenever the local mapping lacks the full key,
// including when an ancestor segment exists locally but the final segment
// is missing.
type Layered struct {
	local    Mapping
	defaults map[string]any
	search   []Getter
}

// NewLayered builds a layered config. Any argument may be nil or empty. The
// search path is assembled once here and consulted in the order given.
func NewLayered(local Mapping, defaults map[string]any, search ...Getter) *Layered {
	return &Layered{local: local, defaults: defaults, search: search}
}

// Get resolves key with layer precedence: local value, then defaults, then
// each search-path delegate in order, first hit wins. A locally stored
// empty value ("", {}, false, 0) wins over any default or delegate.
// ok=false means no layer defines the key.
func (l *Layered) Get(key string) (any, bool) {
	v, _, ok := l.GetWithSource(key)
	return v, ok
}

// GetWithSource resolves key and reports which layer supplied the value.
// Delegates wrapped with Named report their registered name; unnamed
// delegates report SourceNone even on a hit.
func (l *Layered) GetWithSource(key string) (any, Source, bool) {
	if v, ok := l.local.Get(key); ok {
		return v, SourceLocal, true
	}
	if v, ok := l.defaults[key]; ok {
		return v, SourceDefault, true
	}
	for _, delegate := range l.search {
		if delegate == nil {
			continue
		}
		if v, ok := delegate.Get(key); ok {
			return v, delegateSource(delegate), true
		}
	}
	return nil, SourceNone, false
}

// GetString returns the value for key when it resolves to a string.
func (l *Layered) GetString(key string) (string, bool) {
	v, ok := l.Get(key)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// GetBool returns the value for key when it resolves to a bool.
func (l *Layered) GetBool(key string) (bool, bool) {
	v, ok := l.Get(key)
	if !ok {
		return false, false
	}
	b, ok := v.(bool)
	return b, ok
}

// GetMapping returns the value for key when it resolves to a nested
// mapping.
func (l *Layered) GetMapping(key string) (Mapping, bool) {
	v, ok := l.Get(key)
	if !ok {
		return nil, false
	}
	return AsMapping(v)
}

// namedGetter tags a search-path delegate with a source name.
type namedGetter struct {
	name Source
	Getter
}

// Named wraps a delegate so hits through it report the given source name.
func Named(name string, g Getter) Getter {
	return namedGetter{name: Source(name), Getter: g}
}

func delegateSource(g Getter) Source {
	if n, ok := g.(namedGetter); ok {
		return n.name
	}
	return SourceNone
}
