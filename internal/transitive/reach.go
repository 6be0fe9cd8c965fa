/*
# Module: internal/transitive/reach.go
Any-edge breadth-first traversal helpers.

Four of the eight pattern shapes ignore the triggering predicate entirely
and ask a plain graph-reachability question over node-typed vertices,
following any edge. Grounded on the teacher's pkg/analysis.ShortestPath
breadth-first shape (visited set, FIFO frontier, sorted neighbor
expansion for determinism), generalized from a single adjacency map to
the three "any predicate" views graphidx exposes.

## Linked Modules
- [../../graphtype](../../graphtype/node.go) - Node value type
- [../../graphidx](../../graphidx/adjacency.go) - Raw adjacency accessors

## Tags
transitive, bfs, reachability

## Exports
(unexported: bfsAnyEdgeReaches, bfsPathPredicates, closureForward, closureBackward)

<!-- LinkedDoc RDF -->
@prefix code: <https://schema.codedoc.org/> .
@prefix rdf: <http://www.w3.org/1999/02/22-rdf-syntax-ns#> .

<#reach.go> a code:Module ;
    code:name "internal/transitive/reach.go" ;
    code:description "Any-edge breadth-first traversal helpers" ;
    code:language "go" ;
    code:layer "transitive" ;
    code:linksTo <../../graphtype/node.go>, <../../graphidx/adjacency.go> ;
    code:tags "transitive", "bfs", "reachability" .
<!-- End LinkedDoc RDF -->
*/

package transitive

import (
	"sort"

	"github.com/kshard/graphindex/graphidx"
	"github.com/kshard/graphindex/graphtype"
)

// bfsAnyEdgeReaches reports whether o is reachable from s via any edge,
// following only node-typed intermediate vertices. s == o is reachable
// only via an actual cycle back to s; the :star reflexive case (zero-length
// path) is the caller's concern, handled in resolvePathExistence.
func bfsAnyEdgeReaches(g *graphidx.Graph, s, o graphtype.Node) bool {
	visited := map[graphtype.Node]struct{}{s: {}}
	queue := []graphtype.Node{s}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, n := range sortedSuccessors(g, cur) {
			if n == o {
				return true
			}
			if _, ok := visited[n]; ok {
				continue
			}
			visited[n] = struct{}{}
			queue = append(queue, n)
		}
	}
	return false
}

// bfsPathPredicates returns the predicate sequence of the shortest
// (first-found, via sorted traversal) any-edge path from s to o.
func bfsPathPredicates(g *graphidx.Graph, s, o graphtype.Node) ([]string, bool) {
	type step struct {
		from graphtype.Node
		pred string
	}
	visited := map[graphtype.Node]struct{}{s: {}}
	parent := map[graphtype.Node]step{}
	queue := []graphtype.Node{s}

	reconstruct := func(end graphtype.Node) []string {
		var rev []string
		for n := end; n != s; {
			st := parent[n]
			rev = append(rev, st.pred)
			n = st.from
		}
		out := make([]string, len(rev))
		for i, p := range rev {
			out[len(rev)-1-i] = p
		}
		return out
	}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		edges := g.OutEdges(cur)
		sort.Slice(edges, func(i, j int) bool {
			if edges[i].P != edges[j].P {
				return edges[i].P < edges[j].P
			}
			return edges[i].O.String() < edges[j].O.String()
		})
		for _, e := range edges {
			if e.O == o {
				parent[e.O] = step{cur, e.P}
				return reconstruct(o), true
			}
			if !e.O.IsNode() {
				continue
			}
			if _, ok := visited[e.O]; ok {
				continue
			}
			visited[e.O] = struct{}{}
			parent[e.O] = step{cur, e.P}
			queue = append(queue, e.O)
		}
	}
	return nil, false
}

// closureForward returns the set of node-typed vertices reachable from
// start via any edge, including start itself.
func closureForward(g *graphidx.Graph, start graphtype.Node) map[graphtype.Node]struct{} {
	visited := map[graphtype.Node]struct{}{start: {}}
	queue := []graphtype.Node{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, n := range g.NodeSuccessors(cur) {
			if _, ok := visited[n]; ok {
				continue
			}
			visited[n] = struct{}{}
			queue = append(queue, n)
		}
	}
	return visited
}

// closureBackward is closureForward's mirror over reverse edges.
func closureBackward(g *graphidx.Graph, start graphtype.Node) map[graphtype.Node]struct{} {
	visited := map[graphtype.Node]struct{}{start: {}}
	queue := []graphtype.Node{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, n := range g.NodePredecessors(cur) {
			if _, ok := visited[n]; ok {
				continue
			}
			visited[n] = struct{}{}
			queue = append(queue, n)
		}
	}
	return visited
}

func sortedSuccessors(g *graphidx.Graph, s graphtype.Node) []graphtype.Node {
	succ := g.NodeSuccessors(s)
	sort.Slice(succ, func(i, j int) bool { return succ[i].String() < succ[j].String() })
	return succ
}

func sortedNodeSet(set map[graphtype.Node]struct{}) []graphtype.Node {
	out := make([]graphtype.Node, 0, len(set))
	for n := range set {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })
	return out
}

// sortedSlice returns a deterministically ordered copy of ns, by String().
func sortedSlice(ns []graphtype.Node) []graphtype.Node {
	out := make([]graphtype.Node, len(ns))
	copy(out, ns)
	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })
	return out
}

func sortedOutEdges(edges []graphidx.Edge) []graphidx.Edge {
	out := make([]graphidx.Edge, len(edges))
	copy(out, edges)
	sort.Slice(out, func(i, j int) bool {
		if out[i].P != out[j].P {
			return out[i].P < out[j].P
		}
		return out[i].O.String() < out[j].O.String()
	})
	return out
}

func sortedInEdges(edges []graphidx.InEdge) []graphidx.InEdge {
	out := make([]graphidx.InEdge, len(edges))
	copy(out, edges)
	sort.Slice(out, func(i, j int) bool {
		if out[i].S.String() != out[j].S.String() {
			return out[i].S.String() < out[j].S.String()
		}
		return out[i].P < out[j].P
	})
	return out
}
