package cache_test

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"

	"github.com/collabzy/collabzy-go/internal/adapters/cache"
	"github.com/collabzy/collabzy-go/internal/cachekey"
	"github.com/collabzy/collabzy-go/internal/core"
)

func TestMemoryStoreSetGet(t *testing.T) {
	t.Parallel()

	store := cache.NewMemoryStore(zap.NewNop())
	key := cachekey.Key(string(core.KindCampaigns), nil)
	entry := core.CacheEntry{Data: []core.Campaign{{ID: "1"}}, FetchedAt: time.Now()}

	if _, ok := store.Get(key); ok {
		t.Fatal("expected empty store to miss")
	}

	store.Set(key, entry)
	got, ok := store.Get(key)
	if !ok {
		t.Fatal("expected entry after Set")
	}
	if diff := cmp.Diff(entry.Data, got.Data); diff != "" {
		t.Errorf("unexpected data (-want +got):\n%s", diff)
	}
	if !got.FetchedAt.Equal(entry.FetchedAt) {
		t.Errorf("expected fetchedAt %v, got %v", entry.FetchedAt, got.FetchedAt)
	}
}

func TestMemoryStoreSetReplaces(t *testing.T) {
	t.Parallel()

	store := cache.NewMemoryStore(zap.NewNop())
	key := cachekey.Key(string(core.KindDeals), nil)

	store.Set(key, core.CacheEntry{Data: []core.Deal{{ID: "old"}}, FetchedAt: time.Now().Add(-time.Hour)})
	fresh := core.CacheEntry{Data: []core.Deal{{ID: "new"}}, FetchedAt: time.Now()}
	store.Set(key, fresh)

	got, ok := store.Get(key)
	if !ok {
		t.Fatal("expected entry after replacement")
	}
	deals, ok := got.Data.([]core.Deal)
	if !ok || len(deals) != 1 || deals[0].ID != "new" {
		t.Errorf("expected replaced entry, got %+v", got.Data)
	}
	if store.Len() != 1 {
		t.Errorf("expected 1 entry, got %d", store.Len())
	}
}

func TestMemoryStoreDeleteKind(t *testing.T) {
	t.Parallel()

	store := cache.NewMemoryStore(zap.NewNop())
	now := time.Now()

	store.Set(cachekey.Key(string(core.KindCampaigns), nil), core.CacheEntry{Data: []core.Campaign{}, FetchedAt: now})
	store.Set(cachekey.Key(string(core.KindCampaigns), map[string]string{"category": "beauty"}), core.CacheEntry{Data: []core.Campaign{}, FetchedAt: now})
	store.Set(cachekey.Key(string(core.KindDeals), nil), core.CacheEntry{Data: []core.Deal{}, FetchedAt: now})

	store.DeleteKind(core.KindCampaigns)

	if store.Len() != 1 {
		t.Errorf("expected only the deals entry to survive, got %d entries", store.Len())
	}
	if _, ok := store.Get(cachekey.Key(string(core.KindDeals), nil)); !ok {
		t.Error("expected the deals entry to survive a campaigns invalidation")
	}

	// Idempotent.
	store.DeleteKind(core.KindCampaigns)
	if store.Len() != 1 {
		t.Errorf("expected repeated invalidation to be a no-op, got %d entries", store.Len())
	}
}

func TestMemoryStoreClear(t *testing.T) {
	t.Parallel()

	store := cache.NewMemoryStore(zap.NewNop())
	now := time.Now()
	store.Set(cachekey.Key(string(core.KindCampaigns), nil), core.CacheEntry{Data: []core.Campaign{}, FetchedAt: now})
	store.Set(cachekey.Key(string(core.KindDeals), nil), core.CacheEntry{Data: []core.Deal{}, FetchedAt: now})

	store.Clear()
	if store.Len() != 0 {
		t.Errorf("expected empty store after Clear, got %d entries", store.Len())
	}
}

func TestNopStoreNeverRetains(t *testing.T) {
	t.Parallel()

	store := cache.NewNopStore()
	key := cachekey.Key(string(core.KindCampaigns), nil)

	store.Set(key, core.CacheEntry{Data: []core.Campaign{{ID: "1"}}, FetchedAt: time.Now()})
	if _, ok := store.Get(key); ok {
		t.Error("expected nop store to miss after Set")
	}
	if store.Len() != 0 {
		t.Errorf("expected nop store length 0, got %d", store.Len())
	}
}
