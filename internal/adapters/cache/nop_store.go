package cache

import (
	"github.com/collabzy/collabzy-go/internal/core"
)

// NopStore is a CacheStore that never retains anything. It is what the
// coordinator runs on when caching is disabled: every fetch misses and goes
// to the gateway.
type NopStore struct{}

// NewNopStore creates a store that caches nothing.
func NewNopStore() *NopStore {
	return &NopStore{}
}

func (s *NopStore) Get(string) (core.CacheEntry, bool) { return core.CacheEntry{}, false }

func (s *NopStore) Set(string, core.CacheEntry) {}

func (s *NopStore) DeleteKind(core.ResourceKind) {}

func (s *NopStore) Clear() {}

func (s *NopStore) Len() int { return 0 }
