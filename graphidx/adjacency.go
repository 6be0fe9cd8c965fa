/*
# Module: graphidx/adjacency.go
Raw adjacency accessors for the transitive resolver.

The direct pattern dispatch in resolve.go always projects a bound
predicate or the whole graph; the transitive resolver instead needs two
narrower views repeatedly during a BFS or fixed-point computation: "every
edge out of/into a node, any predicate" (any-edge reachability) and
"every subject of a specific predicate's object" (POS rows for one
predicate, feeding the closure fixed point). Exposing these as small
read-only views keeps internal/transitive from reaching into Graph's
unexported index maps while still giving it direct index access instead
of going through Resolve's multiplicity-expanding Binding slices.

## Linked Modules
- [../graphtype](../graphtype/node.go) - Node value type
- [graph](./graph.go) - Indexed graph

## Tags
graphidx, adjacency, traversal

## Exports
Edge, InEdge, Graph.OutEdges, Graph.InEdges, Graph.NodeSuccessors, Graph.NodePredecessors, Graph.PredicateObjectSubjects

<!-- LinkedDoc RDF -->
@prefix code: <https://schema.codedoc.org/> .
@prefix rdf: <http://www.w3.org/1999/02/22-rdf-syntax-ns#> .

<#adjacency.go> a code:Module ;
    code:name "graphidx/adjacency.go" ;
    code:description "Raw adjacency accessors for the transitive resolver" ;
    code:language "go" ;
    code:layer "graphidx" ;
    code:linksTo <../graphtype/node.go>, <./graph.go> ;
    code:exports <#Edge>, <#InEdge>, <#Graph.OutEdges>, <#Graph.InEdges>, <#Graph.NodeSuccessors>, <#Graph.NodePredecessors>, <#Graph.PredicateObjectSubjects> ;
    code:tags "graphidx", "adjacency", "traversal" .
<!-- End LinkedDoc RDF -->
*/

package graphidx

import "github.com/kshard/graphindex/graphtype"

// Edge is one direct (predicate, object) hop out of an implicit subject.
type Edge struct {
	P string
	O graphtype.Node
}

// OutEdges returns every (predicate, object) edge directly out of s, one
// entry per distinct (p, o) pair regardless of stored multiplicity.
func (g *Graph) OutEdges(s graphtype.Node) []Edge {
	var out []Edge
	for p, objs := range g.spo[s] {
		for o, cnt := range objs {
			if cnt > 0 {
				out = append(out, Edge{P: p, O: o})
			}
		}
	}
	return out
}

// NodeSuccessors returns the distinct node-typed objects directly
// reachable from s via any predicate. Literal objects are excluded: they
// cannot act as intermediate path nodes.
func (g *Graph) NodeSuccessors(s graphtype.Node) []graphtype.Node {
	seen := map[graphtype.Node]struct{}{}
	var out []graphtype.Node
	for _, objs := range g.spo[s] {
		for o, cnt := range objs {
			if cnt == 0 || !o.IsNode() {
				continue
			}
			if _, ok := seen[o]; ok {
				continue
			}
			seen[o] = struct{}{}
			out = append(out, o)
		}
	}
	return out
}

// NodePredecessors returns the distinct node-typed subjects with a direct
// edge, via any predicate, into o.
func (g *Graph) NodePredecessors(o graphtype.Node) []graphtype.Node {
	seen := map[graphtype.Node]struct{}{}
	var out []graphtype.Node
	for s, preds := range g.osp[o] {
		hasEdge := false
		for _, cnt := range preds {
			if cnt > 0 {
				hasEdge = true
				break
			}
		}
		if !hasEdge || !s.IsNode() {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

// InEdge is one direct (subject, predicate) hop into an implicit object.
type InEdge struct {
	S graphtype.Node
	P string
}

// InEdges returns every (subject, predicate) edge directly into o, one
// entry per distinct (s, p) pair regardless of stored multiplicity.
func (g *Graph) InEdges(o graphtype.Node) []InEdge {
	var out []InEdge
	for s, preds := range g.osp[o] {
		for p, cnt := range preds {
			if cnt > 0 {
				out = append(out, InEdge{S: s, P: p})
			}
		}
	}
	return out
}

// PredicateObjectSubjects returns the object->subjects relation for a
// single plain predicate p, read directly from the POS index: the seed
// map M for the predicate-specific closure fixed point.
func (g *Graph) PredicateObjectSubjects(p string) map[graphtype.Node][]graphtype.Node {
	out := map[graphtype.Node][]graphtype.Node{}
	for o, subs := range g.pos[p] {
		for s, cnt := range subs {
			if cnt == 0 {
				continue
			}
			out[o] = append(out[o], s)
		}
	}
	return out
}
