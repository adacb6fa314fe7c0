package cache

import (
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/collabzy/collabzy-go/internal/cachekey"
	"github.com/collabzy/collabzy-go/internal/core"
)

// MemoryStore is the in-memory implementation of the CacheStore interface.
// Staleness is detected lazily by the coordinator, so there is no background
// janitor; entries only leave the map through explicit invalidation or
// replacement.
type MemoryStore struct {
	entries map[string]core.CacheEntry
	mu      sync.RWMutex
	logger  *zap.Logger
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore(logger *zap.Logger) *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]core.CacheEntry),
		logger:  logger,
	}
}

// Get retrieves the entry stored under key.
func (s *MemoryStore) Get(key string) (core.CacheEntry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.entries[key]
	return entry, ok
}

// Set stores an entry under key, replacing any previous one.
func (s *MemoryStore) Set(key string, entry core.CacheEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = entry
}

// DeleteKind removes every entry belonging to the given kind, whatever
// filters it was stored under.
func (s *MemoryStore) DeleteKind(kind core.ResourceKind) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prefix := cachekey.Prefix(string(kind))
	removed := 0
	for key := range s.entries {
		if strings.HasPrefix(key, prefix) {
			delete(s.entries, key)
			removed++
		}
	}

	s.logger.Debug("Removed cache entries for kind",
		zap.String("kind", string(kind)),
		zap.Int("removed", removed))
}

// Clear removes all entries.
func (s *MemoryStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := len(s.entries)
	s.entries = make(map[string]core.CacheEntry)

	s.logger.Debug("Cleared cache store", zap.Int("removed", removed))
}

// Len returns the number of stored entries.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.entries)
}
