package cachekey_test

import (
	"strings"
	"testing"

	"github.com/collabzy/collabzy-go/internal/cachekey"
)

func TestKeyIsOrderInsensitive(t *testing.T) {
	t.Parallel()

	a := cachekey.Key("campaigns", map[string]string{"category": "beauty", "platform": "instagram"})
	b := cachekey.Key("campaigns", map[string]string{"platform": "instagram", "category": "beauty"})
	if a != b {
		t.Errorf("expected identical keys, got %q and %q", a, b)
	}
}

func TestKeyDistinguishesFilterValues(t *testing.T) {
	t.Parallel()

	a := cachekey.Key("campaigns", map[string]string{"category": "beauty"})
	b := cachekey.Key("campaigns", map[string]string{"category": "fitness"})
	if a == b {
		t.Errorf("expected distinct keys for distinct filters, got %q twice", a)
	}
}

func TestKeyFoldsCosmeticDifferences(t *testing.T) {
	t.Parallel()

	a := cachekey.Key("influencers", map[string]string{"category": "Beauty"})
	b := cachekey.Key("influencers", map[string]string{"category": "beauty"})
	if a != b {
		t.Errorf("expected case-folded keys to match, got %q and %q", a, b)
	}
}

func TestEmptyFiltersShareOneKey(t *testing.T) {
	t.Parallel()

	a := cachekey.Key("deals", nil)
	b := cachekey.Key("deals", map[string]string{})
	if a != b {
		t.Errorf("expected nil and empty filters to share a key, got %q and %q", a, b)
	}
}

func TestKeysCarryKindPrefix(t *testing.T) {
	t.Parallel()

	prefix := cachekey.Prefix("campaigns")
	for _, filters := range []map[string]string{nil, {"category": "beauty"}} {
		key := cachekey.Key("campaigns", filters)
		if !strings.HasPrefix(key, prefix) {
			t.Errorf("key %q does not carry prefix %q", key, prefix)
		}
	}

	other := cachekey.Key("deals", nil)
	if strings.HasPrefix(other, prefix) {
		t.Errorf("key %q must not carry prefix %q", other, prefix)
	}
}
