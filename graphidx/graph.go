/*
# Module: graphidx/graph.go
Persistent, triply-indexed graph value.

Implements the core indexed graph: three coordinated, copy-on-write maps
(SPO, POS, OSP) over Triples, supporting both a single-valued variant (at
most one occurrence per triple) and a multigraph variant (a positive
occurrence count per triple). Add/Delete honor the identity contract: a
no-op returns the same *Graph pointer rather than a clone.

## Linked Modules
- [../graphtype](../graphtype/triple.go) - Node/Triple/Datom value types
- [pattern](./pattern.go) - Query pattern and binding shapes
- [resolve](./resolve.go) - Eight-shape pattern dispatch

## Tags
graphidx, index, persistent, spo, pos, osp

## Exports
Graph, Variant, NewGraph

<!-- LinkedDoc RDF -->
@prefix code: <https://schema.codedoc.org/> .
@prefix rdf: <http://www.w3.org/1999/02/22-rdf-syntax-ns#> .

<#graph.go> a code:Module ;
    code:name "graphidx/graph.go" ;
    code:description "Persistent, triply-indexed graph value" ;
    code:language "go" ;
    code:layer "graphidx" ;
    code:linksTo <../graphtype/triple.go>, <./pattern.go>, <./resolve.go> ;
    code:exports <#Graph>, <#Variant>, <#NewGraph> ;
    code:tags "graphidx", "index", "persistent", "spo", "pos", "osp" .
<!-- End LinkedDoc RDF -->
*/

package graphidx

import (
	"fmt"

	"github.com/kshard/graphindex/graphtype"
)

// Variant selects whether a Graph stores at most one occurrence of a
// triple (Single) or tracks a positive occurrence count (Multi).
type Variant uint8

const (
	// Single is the set-of-triples variant: re-adding an existing triple
	// is a no-op, identity-preserving.
	Single Variant = iota
	// Multi is the bag-of-triples variant: re-adding an existing triple
	// increments its count and always produces a new graph value.
	Multi
)

// Graph is an immutable, persistent snapshot of a triple index. Successor
// snapshots are produced by Add/Delete via copy-on-write path copying:
// only the maps on the path from an index root to the modified leaf are
// cloned, so unrelated subjects/predicates/objects share structure across
// generations.
type Graph struct {
	variant Variant

	// spo[s][p][o] = occurrence count ( > 0 means present )
	spo map[graphtype.Node]map[string]map[graphtype.Node]uint64
	// pos[p][o][s] = occurrence count
	pos map[string]map[graphtype.Node]map[graphtype.Node]uint64
	// osp[o][s][p] = occurrence count
	osp map[graphtype.Node]map[graphtype.Node]map[string]uint64
}

// NewGraph returns a fresh, empty graph of the given variant.
func NewGraph(variant Variant) *Graph {
	return &Graph{
		variant: variant,
		spo:     map[graphtype.Node]map[string]map[graphtype.Node]uint64{},
		pos:     map[string]map[graphtype.Node]map[graphtype.Node]uint64{},
		osp:     map[graphtype.Node]map[graphtype.Node]map[string]uint64{},
	}
}

// Empty returns a fresh, empty graph of the same variant as g.
func (g *Graph) Empty() *Graph {
	return NewGraph(g.variant)
}

// Variant reports which storage variant this graph uses.
func (g *Graph) Variant() Variant {
	return g.variant
}

// Has reports whether the exact triple (s, p, o) is present.
func (g *Graph) Has(s graphtype.Node, p string, o graphtype.Node) bool {
	return g.spo[s][p][o] > 0
}

// Add incorporates (s, p, o) into all three indexes. It takes no
// transaction id: the graph does not store one, and the id only matters
// to the caller producing a Datom (see package transactor). In the Single variant, if
// the triple is already present, Add returns g unchanged — the same
// pointer, observably identical — and emits no new generation. In the
// Multi variant, Add always produces a new generation and increments the
// stored count.
func (g *Graph) Add(s graphtype.Node, p string, o graphtype.Node) *Graph {
	count := g.spo[s][p][o]
	if g.variant == Single && count > 0 {
		return g
	}
	newCount := count + 1
	next := &Graph{
		variant: g.variant,
		spo:     cowSet(g.spo, s, p, o, newCount),
		pos:     cowSet(g.pos, p, o, s, newCount),
		osp:     cowSet(g.osp, o, s, p, newCount),
	}
	guardTripleCoherence(next, s, p, o, newCount)
	return next
}

// Delete removes one occurrence of (s, p, o) from all three indexes. If
// the triple is absent, Delete returns g unchanged (same pointer). In the
// Multi variant this decrements the stored count by one, pruning the
// triple entirely (and any now-empty nested maps) only when the count
// reaches zero.
func (g *Graph) Delete(s graphtype.Node, p string, o graphtype.Node) *Graph {
	count := g.spo[s][p][o]
	if count == 0 {
		return g
	}
	newCount := count - 1
	next := &Graph{
		variant: g.variant,
		spo:     cowSet(g.spo, s, p, o, newCount),
		pos:     cowSet(g.pos, p, o, s, newCount),
		osp:     cowSet(g.osp, o, s, p, newCount),
	}
	guardTripleCoherence(next, s, p, o, newCount)
	return next
}

// guardTripleCoherence panics with ErrInternalInvariant if the three
// indexes disagree on (s, p, o)'s count after a cowSet path-copy. This
// should never happen; it exists to catch a cowSet bug before it can
// silently desync the three indexes (SPEC_FULL.md §7 InternalInvariant).
func guardTripleCoherence(g *Graph, s graphtype.Node, p string, o graphtype.Node, want uint64) {
	gotSPO := g.spo[s][p][o]
	gotPOS := g.pos[p][o][s]
	gotOSP := g.osp[o][s][p]
	if gotSPO != want || gotPOS != want || gotOSP != want {
		panic(fmt.Errorf("%w: triple (%s %s %s) count diverged across indexes: spo=%d pos=%d osp=%d want=%d",
			ErrInternalInvariant, s, p, o, gotSPO, gotPOS, gotOSP, want))
	}
}

// cowSet returns a copy of a three-level nested map with the count at
// (k1, k2, k3) replaced by count (count == 0 deletes the entry, pruning
// any nested map left empty). Only the path from the root to the leaf is
// cloned; unrelated k1 branches are shared by reference with m, giving
// real, observable structural sharing between graph generations.
func cowSet[K1, K2, K3 comparable](
	m map[K1]map[K2]map[K3]uint64, k1 K1, k2 K2, k3 K3, count uint64,
) map[K1]map[K2]map[K3]uint64 {
	outer := make(map[K1]map[K2]map[K3]uint64, len(m)+1)
	for k, v := range m {
		outer[k] = v
	}

	mid := make(map[K2]map[K3]uint64, len(m[k1])+1)
	for k, v := range m[k1] {
		mid[k] = v
	}

	inner := make(map[K3]uint64, len(mid[k2])+1)
	for k, v := range mid[k2] {
		inner[k] = v
	}

	if count == 0 {
		delete(inner, k3)
	} else {
		inner[k3] = count
	}

	if len(inner) == 0 {
		delete(mid, k2)
	} else {
		mid[k2] = inner
	}

	if len(mid) == 0 {
		delete(outer, k1)
	} else {
		outer[k1] = mid
	}

	return outer
}
