/*
# Module: internal/closurecache/cache.go
Bounded memo cache for predicate-specific transitive closures.

Wraps a capacity-2 LRU keyed by a content hash of the object->subjects map
being closed over, since a Go map cannot itself be used as a map key. The
LRU shape (and the GenerateKey-style content hashing) is lifted from the
teacher's pkg/cache.Cache, stripped of the TTL/byte-accounting machinery
that a pure-function memo doesn't need; the eviction policy itself is
provided by github.com/hashicorp/golang-lru/v2, the library the wider
retrieval corpus reaches for whenever it needs exactly this (see
duynguyendang-gca's internal/manager.StoreManager).

## Linked Modules
- [../../graphtype](../../graphtype/node.go) - Node value type

## Tags
closurecache, lru, memoization

## Exports
Cache, NewCache, KeyOf

<!-- LinkedDoc RDF -->
@prefix code: <https://schema.codedoc.org/> .
@prefix rdf: <http://www.w3.org/1999/02/22-rdf-syntax-ns#> .

<#cache.go> a code:Module ;
    code:name "internal/closurecache/cache.go" ;
    code:description "Bounded memo cache for predicate-specific transitive closures" ;
    code:language "go" ;
    code:layer "closurecache" ;
    code:linksTo <../../graphtype/node.go> ;
    code:exports <#Cache>, <#NewCache>, <#KeyOf> ;
    code:tags "closurecache", "lru", "memoization" .
<!-- End LinkedDoc RDF -->
*/

package closurecache

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/kshard/graphindex/graphtype"
)

// DefaultCapacity is the spec-mandated memo size: deliberately tiny,
// callers should not rely on hits, but it should be present (SPEC_FULL.md
// §4.3 Memoization).
const DefaultCapacity = 2

// Relation is an object->subjects map: the input to, and output of, the
// predicate-specific closure fixed point.
type Relation map[graphtype.Node][]graphtype.Node

// Cache is a small, thread-safe, process-wide memo from a Relation (by
// value-equality, via a content hash) to its transitive closure. It is an
// optimization: correctness of the transitive resolver must not depend on
// cache hits.
type Cache struct {
	mu    sync.Mutex
	inner *lru.Cache[string, Relation]
}

// NewCache returns a new closure cache with the given capacity. Capacity
// <= 0 is treated as DefaultCapacity.
func NewCache(capacity int) *Cache {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	inner, _ := lru.New[string, Relation](capacity)
	return &Cache{inner: inner}
}

// Get looks up the closure previously stored for a Relation with this
// content (by value, not by map identity).
func (c *Cache) Get(m Relation) (Relation, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inner.Get(KeyOf(m))
}

// Put stores closure as the closure of m, keyed by m's content hash,
// evicting the least recently used entry if the cache is at capacity.
func (c *Cache) Put(m Relation, closure Relation) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.inner.Add(KeyOf(m), closure)
}

// KeyOf derives a stable cache key from a Relation's content: subject and
// object node identities don't implement a natural ordering in this
// package, so keys are sorted by their String() form before hashing to
// make the digest independent of Go's randomized map iteration order.
func KeyOf(m Relation) string {
	keys := make([]string, 0, len(m))
	rendered := make(map[string][]string, len(m))
	for o, subs := range m {
		ks := o.String()
		keys = append(keys, ks)
		ss := make([]string, 0, len(subs))
		for _, s := range subs {
			ss = append(ss, s.String())
		}
		sort.Strings(ss)
		rendered[ks] = ss
	}
	sort.Strings(keys)

	h := sha256.New()
	for _, k := range keys {
		h.Write([]byte(k))
		h.Write([]byte{0})
		for _, s := range rendered[k] {
			h.Write([]byte(s))
			h.Write([]byte{0})
		}
		h.Write([]byte{1})
	}
	return hex.EncodeToString(h.Sum(nil))
}
