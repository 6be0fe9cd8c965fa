/*
# Module: internal/transitive/closure.go
Predicate-specific closure fixed point.

Computes the transitive closure of an object->subjects relation by
iterative fixed point, per the merge rule: for each object o and each
subject s already recorded against it, if s is itself a key of the
relation, merge its subjects into o's. The plus-mode closure is what gets
memoized; the star-mode reflexive augmentation is applied afterward, on
an already-closed copy, so it never pollutes the cached value.

## Linked Modules
- [../../graphtype](../../graphtype/node.go) - Node value type
- [../closurecache](../closurecache/cache.go) - Bounded closure memo

## Tags
transitive, closure, fixed-point

## Exports
closureOf

<!-- LinkedDoc RDF -->
@prefix code: <https://schema.codedoc.org/> .
@prefix rdf: <http://www.w3.org/1999/02/22-rdf-syntax-ns#> .

<#closure.go> a code:Module ;
    code:name "internal/transitive/closure.go" ;
    code:description "Predicate-specific closure fixed point" ;
    code:language "go" ;
    code:layer "transitive" ;
    code:linksTo <../../graphtype/node.go>, <../closurecache/cache.go> ;
    code:exports <#closureOf> ;
    code:tags "transitive", "closure", "fixed-point" .
<!-- End LinkedDoc RDF -->
*/

package transitive

import (
	"github.com/kshard/graphindex/graphtype"
	"github.com/kshard/graphindex/internal/closurecache"
)

// closureOf returns the transitive closure of m, consulting and
// populating cache. The returned relation is always a fresh copy, safe
// for the caller to mutate (e.g. for star-mode reflexive augmentation)
// without corrupting the cached entry.
func closureOf(cache *closurecache.Cache, m closurecache.Relation) closurecache.Relation {
	if hit, ok := cache.Get(m); ok {
		return cloneRelation(hit)
	}
	closed := fixedPointClosure(m)
	cache.Put(m, closed)
	return cloneRelation(closed)
}

func fixedPointClosure(m closurecache.Relation) closurecache.Relation {
	work := cloneRelation(m)
	for {
		changed := false
		for o, subs := range work {
			var additions []graphtype.Node
			for _, s := range subs {
				extra, ok := work[s]
				if !ok {
					continue
				}
				for _, s2 := range extra {
					if containsNode(subs, s2) || containsNode(additions, s2) {
						continue
					}
					additions = append(additions, s2)
				}
			}
			if len(additions) > 0 {
				work[o] = append(subs, additions...)
				changed = true
			}
		}
		if !changed {
			return work
		}
	}
}

// augmentReflexive adds o->{o} and s->{s} entries, in place, for every
// node observed as a key or a value in m — the :star reflexive additions.
// It must only ever be called on a private copy, never on a cached value.
func augmentReflexive(m closurecache.Relation) {
	observed := map[graphtype.Node]struct{}{}
	for o, subs := range m {
		observed[o] = struct{}{}
		for _, s := range subs {
			observed[s] = struct{}{}
		}
	}
	for n := range observed {
		if !containsNode(m[n], n) {
			m[n] = append(m[n], n)
		}
	}
}

func cloneRelation(m closurecache.Relation) closurecache.Relation {
	out := make(closurecache.Relation, len(m))
	for o, subs := range m {
		cp := make([]graphtype.Node, len(subs))
		copy(cp, subs)
		out[o] = cp
	}
	return out
}

func containsNode(xs []graphtype.Node, n graphtype.Node) bool {
	for _, x := range xs {
		if x == n {
			return true
		}
	}
	return false
}
