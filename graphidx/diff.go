/*
# Module: graphidx/diff.go
Subject-level change detection between two graph generations.

Grounded on the teacher's pkg/diff.Differ, which compares two knowledge-
graph snapshots module-by-module; here the comparison is subject-by-
subject over each graph's SPO sub-index.

## Linked Modules
- [graph](./graph.go) - Indexed graph

## Tags
graphidx, diff

## Exports
Graph.Diff

<!-- LinkedDoc RDF -->
@prefix code: <https://schema.codedoc.org/> .
@prefix rdf: <http://www.w3.org/1999/02/22-rdf-syntax-ns#> .

<#diff.go> a code:Module ;
    code:name "graphidx/diff.go" ;
    code:description "Subject-level change detection between two graph generations" ;
    code:language "go" ;
    code:layer "graphidx" ;
    code:linksTo <./graph.go> ;
    code:exports <#Graph.Diff> ;
    code:tags "graphidx", "diff" .
<!-- End LinkedDoc RDF -->
*/

package graphidx

import "github.com/kshard/graphindex/graphtype"

// Diff returns the set of subjects whose SPO sub-index differs between g
// and other — used for change tracking between graph generations.
func (g *Graph) Diff(other *Graph) map[graphtype.Node]struct{} {
	out := map[graphtype.Node]struct{}{}
	seen := map[graphtype.Node]struct{}{}

	for s := range g.spo {
		seen[s] = struct{}{}
		if !predObjCountsEqual(g.spo[s], other.spo[s]) {
			out[s] = struct{}{}
		}
	}
	for s := range other.spo {
		if _, ok := seen[s]; ok {
			continue
		}
		if !predObjCountsEqual(g.spo[s], other.spo[s]) {
			out[s] = struct{}{}
		}
	}
	return out
}

func predObjCountsEqual(a, b map[string]map[graphtype.Node]uint64) bool {
	if len(a) != len(b) {
		return false
	}
	for p, oa := range a {
		ob, ok := b[p]
		if !ok || len(oa) != len(ob) {
			return false
		}
		for o, ca := range oa {
			if ob[o] != ca {
				return false
			}
		}
	}
	return true
}
