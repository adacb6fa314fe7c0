// Package cachekey derives stable cache keys from a resource kind and an
// opaque filter set. Two filter sets that differ only in map order or in
// unicode representation of their values produce the same key.
package cachekey

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/text/unicode/norm"
)

const unfiltered = "all"

// Key builds the cache key for kind and filters. Keys are prefixed with the
// kind so that a whole kind can be dropped in one pass, see Prefix.
func Key(kind string, filters map[string]string) string {
	if len(filters) == 0 {
		return kind + ":" + unfiltered
	}
	return fmt.Sprintf("%s:%016x", kind, xxhash.Sum64String(canonical(filters)))
}

// Prefix returns the key prefix shared by every entry of the given kind.
func Prefix(kind string) string {
	return kind + ":"
}

// canonical flattens filters into a deterministic "k=v&k=v" string. Keys are
// sorted; values are NFC-normalized and case-folded so cosmetic differences
// in user input do not split the cache.
func canonical(filters map[string]string) string {
	keys := make([]string, 0, len(filters))
	for k := range filters {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(strings.ToLower(norm.NFC.String(filters[k])))
	}
	return b.String()
}
