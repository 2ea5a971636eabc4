package memory

import (
	"maps"
	"sync"

	"github.com/custodia-labs/ghtrend/internal/core/ports/driven"
)

var _ driven.ConfigStore = (*ConfigStore)(nil)

// Location is reported for stores that are never written anywhere.
const Location = ":memory:"

// ConfigStore holds settings for the lifetime of the process.
type ConfigStore struct {
	mu     sync.RWMutex
	values map[string]any
}

// NewConfigStore returns an empty store.
func NewConfigStore() *ConfigStore {
	return &ConfigStore{values: make(map[string]any)}
}

func (s *ConfigStore) Lookup(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok
}

func (s *ConfigStore) Put(values map[string]any) error {
	s.mu.Lock()
	maps.Copy(s.values, values)
	s.mu.Unlock()
	return nil
}

func (s *ConfigStore) Location() string {
	return Location
}
