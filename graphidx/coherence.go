/*
# Module: graphidx/coherence.go
Cross-index agreement check.

CheckCoherence reconstructs the stored triple set from each of SPO, POS,
and OSP independently and compares them, returning ErrInternalInvariant
if any pair disagrees. This is the exported, point-in-time counterpart
to the per-write guard in graph.go's Add/Delete: those guard one triple
at the moment of a cowSet path-copy; this verifies the whole graph,
matching SPEC_FULL.md §8's "Index agreement" testable property.

## Linked Modules
- [graph](./graph.go) - Indexed graph
- [errors](./errors.go) - ErrInternalInvariant

## Tags
graphidx, coherence, invariant

## Exports
Graph.CheckCoherence

<!-- LinkedDoc RDF -->
@prefix code: <https://schema.codedoc.org/> .
@prefix rdf: <http://www.w3.org/1999/02/22-rdf-syntax-ns#> .

<#coherence.go> a code:Module ;
    code:name "graphidx/coherence.go" ;
    code:description "Cross-index agreement check" ;
    code:language "go" ;
    code:layer "graphidx" ;
    code:linksTo <./graph.go>, <./errors.go> ;
    code:exports <#Graph.CheckCoherence> ;
    code:tags "graphidx", "coherence", "invariant" .
<!-- End LinkedDoc RDF -->
*/

package graphidx

import (
	"fmt"

	"github.com/kshard/graphindex/graphtype"
)

type tripleKey struct {
	s graphtype.Node
	p string
	o graphtype.Node
}

// CheckCoherence reconstructs the triple->count relation from each of
// SPO, POS, and OSP independently and reports the first disagreement
// found, wrapped in ErrInternalInvariant. A freshly built or correctly
// derived Graph always satisfies this; a non-nil return indicates a bug
// in the copy-on-write path-copying, not caller misuse.
func (g *Graph) CheckCoherence() error {
	fromSPO := map[tripleKey]uint64{}
	for s, preds := range g.spo {
		for p, objs := range preds {
			for o, cnt := range objs {
				if cnt > 0 {
					fromSPO[tripleKey{s, p, o}] = cnt
				}
			}
		}
	}

	fromPOS := map[tripleKey]uint64{}
	for p, objs := range g.pos {
		for o, subs := range objs {
			for s, cnt := range subs {
				if cnt > 0 {
					fromPOS[tripleKey{s, p, o}] = cnt
				}
			}
		}
	}

	fromOSP := map[tripleKey]uint64{}
	for o, subs := range g.osp {
		for s, preds := range subs {
			for p, cnt := range preds {
				if cnt > 0 {
					fromOSP[tripleKey{s, p, o}] = cnt
				}
			}
		}
	}

	if err := compareTripleCounts("spo", fromSPO, "pos", fromPOS); err != nil {
		return err
	}
	if err := compareTripleCounts("spo", fromSPO, "osp", fromOSP); err != nil {
		return err
	}
	return nil
}

func compareTripleCounts(nameA string, a map[tripleKey]uint64, nameB string, b map[tripleKey]uint64) error {
	for k, cntA := range a {
		if cntB, ok := b[k]; !ok || cntA != cntB {
			return fmt.Errorf("%w: triple (%s %s %s) count %d in %s, %d in %s",
				ErrInternalInvariant, k.s, k.p, k.o, cntA, nameA, b[k], nameB)
		}
	}
	for k := range b {
		if _, ok := a[k]; !ok {
			return fmt.Errorf("%w: triple (%s %s %s) present in %s but missing from %s",
				ErrInternalInvariant, k.s, k.p, k.o, nameB, nameA)
		}
	}
	return nil
}
