// Package store provides an in-memory AspectStore, optionally seeded from
// a YAML snapshot of existing aspect state. The host metadata service owns
// persisted aspects; this store stands in for it in tests and file-driven
// runs.
package store

import (
	"sync"

	"github.com/brock-acryl/datahub-documentation-transformer/pkg/types"
)

// MemoryStore keeps aspect values per entity urn in memory
type MemoryStore struct {
	mu      sync.RWMutex
	aspects map[string]map[types.AspectName]types.Aspect
}

// NewMemory creates an empty in-memory aspect store
func NewMemory() *MemoryStore {
	return &MemoryStore{
		aspects: make(map[string]map[types.AspectName]types.Aspect),
	}
}

// Put stores an aspect value for an entity, replacing any previous value
func (s *MemoryStore) Put(entityURN string, aspect types.Aspect) {
	s.mu.Lock()
	defer s.mu.Unlock()

	byName, ok := s.aspects[entityURN]
	if !ok {
		byName = make(map[types.AspectName]types.Aspect)
		s.aspects[entityURN] = byName
	}
	byName[aspect.AspectName()] = aspect
}

// GetAspect implements types.AspectStore
func (s *MemoryStore) GetAspect(entityURN string, name types.AspectName) (types.Aspect, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	byName, ok := s.aspects[entityURN]
	if !ok {
		return nil, false, nil
	}
	aspect, ok := byName[name]
	if !ok {
		return nil, false, nil
	}
	return aspect, true, nil
}
