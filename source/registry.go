package source

import (
	"fmt"

	"github.com/use-agent/streamcat/config"
)

// Registry is the static set of configured sources. Built once at process
// start and never mutated afterwards, so it is safe for concurrent reads.
type Registry struct {
	ordered []*Source
	byID    map[string]*Source
}

// NewRegistry builds a Registry from configuration. Duplicate IDs and
// invalid source definitions are startup errors.
func NewRegistry(cfgs []config.SourceConfig) (*Registry, error) {
	r := &Registry{byID: make(map[string]*Source, len(cfgs))}
	for _, cfg := range cfgs {
		src, err := newSource(cfg)
		if err != nil {
			return nil, err
		}
		if _, exists := r.byID[src.ID]; exists {
			return nil, fmt.Errorf("source: duplicate id %q", src.ID)
		}
		r.ordered = append(r.ordered, src)
		r.byID[src.ID] = src
	}
	return r, nil
}

// Get looks a source up by id.
func (r *Registry) Get(id string) (*Source, bool) {
	src, ok := r.byID[id]
	return src, ok
}

// All returns the sources in registration order. Callers must not modify
// the returned slice.
func (r *Registry) All() []*Source {
	return r.ordered
}

// Len returns the number of registered sources.
func (r *Registry) Len() int {
	return len(r.ordered)
}
