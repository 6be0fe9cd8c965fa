/*
# Module: internal/transitive/resolver.go
Transitive-closure pattern resolution.

ResolveTransitive answers the eight (s?,p?,o?) pattern shapes for a
predicate already known to carry a :star or :plus transitive tag
(tagging itself lives in graphtype.TagFromName; the query layer strips
the tag before ever reaching here and supplies it as an explicit mode).
Four shapes ignore the matched predicate and ask a plain any-edge
reachability question; three build a predicate-specific object->subjects
relation from the POS index and close it by fixed point; the eighth, with
every position unbound, is rejected outright. Grounded on the teacher's
pkg/analysis.TransitiveDependencies / StronglyConnectedComponents
fixed-point shape and ShortestPath's BFS shape, generalized from a single
dependency graph to per-predicate relations over an indexed multigraph.

## Linked Modules
- [../../graphtype](../../graphtype/node.go) - Node/TransMode value types
- [../../graphidx](../../graphidx/pattern.go) - Pattern/Binding shapes
- [../closurecache](../closurecache/cache.go) - Bounded closure memo
- [closure](./closure.go) - Fixed-point closure
- [reach](./reach.go) - Any-edge BFS helpers

## Tags
transitive, resolver, dispatch

## Exports
ResolveTransitive, ResolveTransitiveWithCache

<!-- LinkedDoc RDF -->
@prefix code: <https://schema.codedoc.org/> .
@prefix rdf: <http://www.w3.org/1999/02/22-rdf-syntax-ns#> .

<#resolver.go> a code:Module ;
    code:name "internal/transitive/resolver.go" ;
    code:description "Transitive-closure pattern resolution" ;
    code:language "go" ;
    code:layer "transitive" ;
    code:linksTo <../../graphtype/node.go>, <../../graphidx/pattern.go>, <../closurecache/cache.go>, <./closure.go>, <./reach.go> ;
    code:exports <#ResolveTransitive>, <#ResolveTransitiveWithCache> ;
    code:tags "transitive", "resolver", "dispatch" .
<!-- End LinkedDoc RDF -->
*/

package transitive

import (
	"fmt"

	"github.com/kshard/graphindex/graphidx"
	"github.com/kshard/graphindex/graphtype"
	"github.com/kshard/graphindex/internal/closurecache"
)

// defaultCache is the process-wide closure memo shared by every call to
// ResolveTransitive. Its correctness does not depend on being shared;
// sharing it only improves the hit rate across repeated queries.
var defaultCache = closurecache.NewCache(closurecache.DefaultCapacity)

// ResolveTransitive answers a transitive pattern using the process-wide
// memo cache. pat.P, when bound, must already hold the plain (untagged)
// predicate name; tag carries the transitive mode that triggered this
// call.
func ResolveTransitive(g *graphidx.Graph, tag graphtype.TransMode, pat graphidx.Pattern) ([]graphidx.Binding, error) {
	return ResolveTransitiveWithCache(g, defaultCache, tag, pat)
}

// ResolveTransitiveWithCache is ResolveTransitive with an explicit memo
// cache, for callers that want isolation (tests) or a private cache.
func ResolveTransitiveWithCache(g *graphidx.Graph, cache *closurecache.Cache, tag graphtype.TransMode, pat graphidx.Pattern) ([]graphidx.Binding, error) {
	switch pat.Shape() {
	case [3]bool{true, true, true}:
		return resolvePathExistence(g, tag, pat.S.Value, pat.O.Value), nil
	case [3]bool{true, true, false}:
		return resolveClosureObjects(g, cache, tag, pat.P.Name, pat.S.Value), nil
	case [3]bool{true, false, true}:
		return resolvePathBetween(g, tag, pat.S.Value, pat.O.Value), nil
	case [3]bool{true, false, false}:
		return resolveReachableFrom(g, tag, pat.S.Value), nil
	case [3]bool{false, true, true}:
		return resolveClosureSubjects(g, cache, tag, pat.P.Name, pat.O.Value), nil
	case [3]bool{false, true, false}:
		return resolveClosurePairs(g, cache, tag, pat.P.Name), nil
	case [3]bool{false, false, true}:
		return resolveReachableInto(g, tag, pat.O.Value), nil
	default:
		return nil, fmt.Errorf("%w: pattern (? ? ?)", ErrUnboundClosure)
	}
}

// resolvePathExistence implements (v,v,v): does any path from s to o
// exist, following any edge regardless of the matched predicate.
func resolvePathExistence(g *graphidx.Graph, tag graphtype.TransMode, s, o graphtype.Node) []graphidx.Binding {
	if tag == graphtype.TransStar && s == o {
		return []graphidx.Binding{{}}
	}
	if bfsAnyEdgeReaches(g, s, o) {
		return []graphidx.Binding{{}}
	}
	return nil
}

// resolvePathBetween implements (v,?,v): the shortest any-edge path from
// s to o, returned as its sequence of predicates in one Binding.
func resolvePathBetween(g *graphidx.Graph, tag graphtype.TransMode, s, o graphtype.Node) []graphidx.Binding {
	if tag == graphtype.TransStar && s == o {
		return []graphidx.Binding{{}}
	}
	path, found := bfsPathPredicates(g, s, o)
	if !found {
		return nil
	}
	b := make(graphidx.Binding, len(path))
	for i, p := range path {
		b[i] = graphidx.PredValue(p)
	}
	return []graphidx.Binding{b}
}

// resolveReachableFrom implements (v,?,?): for each direct edge out of
// s, the predicate paired with every node downstream of its object.
func resolveReachableFrom(g *graphidx.Graph, tag graphtype.TransMode, s graphtype.Node) []graphidx.Binding {
	edges := g.OutEdges(s)
	var out []graphidx.Binding
	for _, e := range sortedOutEdges(edges) {
		down := closureForward(g, e.O)
		if tag == graphtype.TransStar {
			down[s] = struct{}{}
		}
		for _, n := range sortedNodeSet(down) {
			out = append(out, graphidx.Binding{graphidx.PredValue(e.P), graphidx.NodeValue(n)})
		}
	}
	return out
}

// resolveReachableInto implements (?,?,v): the mirror of
// resolveReachableFrom over reverse edges into o.
func resolveReachableInto(g *graphidx.Graph, tag graphtype.TransMode, o graphtype.Node) []graphidx.Binding {
	edges := g.InEdges(o)
	var out []graphidx.Binding
	for _, e := range sortedInEdges(edges) {
		up := closureBackward(g, e.S)
		if tag == graphtype.TransStar {
			up[o] = struct{}{}
		}
		for _, n := range sortedNodeSet(up) {
			out = append(out, graphidx.Binding{graphidx.NodeValue(n), graphidx.PredValue(e.P)})
		}
	}
	return out
}

// resolveClosureObjects implements (v,v,?): objects o' such that the
// bound subject s is in the predicate-specific closure M*[o'].
func resolveClosureObjects(g *graphidx.Graph, cache *closurecache.Cache, tag graphtype.TransMode, p string, s graphtype.Node) []graphidx.Binding {
	closure := closeGraphPredicate(g, cache, tag, p)
	var objs []graphtype.Node
	for o, subs := range closure {
		if containsNode(subs, s) {
			objs = append(objs, o)
		}
	}
	var out []graphidx.Binding
	for _, o := range sortedSlice(objs) {
		out = append(out, graphidx.Binding{graphidx.NodeValue(o)})
	}
	return out
}

// resolveClosureSubjects implements (?,v,v): the subjects M*[o] for a
// bound object o.
func resolveClosureSubjects(g *graphidx.Graph, cache *closurecache.Cache, tag graphtype.TransMode, p string, o graphtype.Node) []graphidx.Binding {
	closure := closeGraphPredicate(g, cache, tag, p)
	var out []graphidx.Binding
	for _, s := range sortedSlice(closure[o]) {
		out = append(out, graphidx.Binding{graphidx.NodeValue(s)})
	}
	return out
}

// resolveClosurePairs implements (?,v,?): every (s', o') pair with
// s' ∈ M*[o'].
func resolveClosurePairs(g *graphidx.Graph, cache *closurecache.Cache, tag graphtype.TransMode, p string) []graphidx.Binding {
	closure := closeGraphPredicate(g, cache, tag, p)
	var out []graphidx.Binding
	for _, o := range sortedSlice(closureKeys(closure)) {
		for _, s := range sortedSlice(closure[o]) {
			out = append(out, graphidx.Binding{graphidx.NodeValue(s), graphidx.NodeValue(o)})
		}
	}
	return out
}

func closeGraphPredicate(g *graphidx.Graph, cache *closurecache.Cache, tag graphtype.TransMode, p string) closurecache.Relation {
	m := closurecache.Relation(g.PredicateObjectSubjects(p))
	closure := closureOf(cache, m)
	if tag == graphtype.TransStar {
		augmentReflexive(closure)
	}
	return closure
}

func closureKeys(m closurecache.Relation) []graphtype.Node {
	out := make([]graphtype.Node, 0, len(m))
	for o := range m {
		out = append(out, o)
	}
	return out
}
