/*
# Module: graphidx/resolve.go
Eight-shape pattern dispatch for Resolve and Count.

Generalizes the teacher's TripleStore.Find boundness dispatch (SPO/POS/OSP
lookup depending on which of subject/predicate/object are bound) into a
persistent, multiplicity-aware Resolve/Count pair.

## Linked Modules
- [graph](./graph.go) - Indexed graph
- [pattern](./pattern.go) - Pattern/Binding shapes

## Tags
graphidx, resolve, count, dispatch

## Exports
Graph.Resolve, Graph.Count

<!-- LinkedDoc RDF -->
@prefix code: <https://schema.codedoc.org/> .
@prefix rdf: <http://www.w3.org/1999/02/22-rdf-syntax-ns#> .

<#resolve.go> a code:Module ;
    code:name "graphidx/resolve.go" ;
    code:description "Eight-shape pattern dispatch for Resolve and Count" ;
    code:language "go" ;
    code:layer "graphidx" ;
    code:linksTo <./graph.go>, <./pattern.go> ;
    code:exports <#Graph.Resolve>, <#Graph.Count> ;
    code:tags "graphidx", "resolve", "count", "dispatch" .
<!-- End LinkedDoc RDF -->
*/

package graphidx

import (
	"fmt"

	"github.com/kshard/graphindex/graphtype"
)

// Resolve returns the projection over the unbound positions of pat: one
// Binding per matching triple, repeated according to its stored
// multiplicity, except that the all-bound shape yields at most one empty
// Binding. Ordering is unspecified; callers must not depend on it.
func (g *Graph) Resolve(pat Pattern) ([]Binding, error) {
	if err := validatePattern(pat); err != nil {
		return nil, err
	}
	switch pat.Shape() {
	case [3]bool{true, true, true}:
		return g.resolveVVV(pat), nil
	case [3]bool{true, true, false}:
		return g.resolveVVQ(pat), nil
	case [3]bool{true, false, true}:
		return g.resolveVQV(pat), nil
	case [3]bool{true, false, false}:
		return g.resolveVQQ(pat), nil
	case [3]bool{false, true, true}:
		return g.resolveQVV(pat), nil
	case [3]bool{false, true, false}:
		return g.resolveQVQ(pat), nil
	case [3]bool{false, false, true}:
		return g.resolveQQV(pat), nil
	default:
		return g.resolveQQQ(pat), nil
	}
}

// Count returns the cardinality of Resolve(pat) without materializing it.
func (g *Graph) Count(pat Pattern) (uint64, error) {
	if err := validatePattern(pat); err != nil {
		return 0, err
	}
	switch pat.Shape() {
	case [3]bool{true, true, true}:
		if g.spo[pat.S.Value][pat.P.Name][pat.O.Value] > 0 {
			return 1, nil
		}
		return 0, nil
	case [3]bool{true, true, false}:
		return sumCounts(g.spo[pat.S.Value][pat.P.Name]), nil
	case [3]bool{true, false, true}:
		return sumCounts(g.osp[pat.O.Value][pat.S.Value]), nil
	case [3]bool{true, false, false}:
		var n uint64
		for _, objs := range g.spo[pat.S.Value] {
			n += sumCounts(objs)
		}
		return n, nil
	case [3]bool{false, true, true}:
		return sumCounts(g.pos[pat.P.Name][pat.O.Value]), nil
	case [3]bool{false, true, false}:
		var n uint64
		for _, subs := range g.pos[pat.P.Name] {
			n += sumCounts(subs)
		}
		return n, nil
	case [3]bool{false, false, true}:
		var n uint64
		for _, preds := range g.osp[pat.O.Value] {
			n += sumCounts(preds)
		}
		return n, nil
	default:
		var n uint64
		for _, preds := range g.spo {
			for _, objs := range preds {
				n += sumCounts(objs)
			}
		}
		return n, nil
	}
}

func sumCounts[K comparable](m map[K]uint64) uint64 {
	var n uint64
	for _, c := range m {
		n += c
	}
	return n
}

func (g *Graph) resolveVVV(pat Pattern) []Binding {
	if g.spo[pat.S.Value][pat.P.Name][pat.O.Value] == 0 {
		return nil
	}
	return []Binding{{}}
}

func (g *Graph) resolveVVQ(pat Pattern) []Binding {
	var out []Binding
	for o, cnt := range g.spo[pat.S.Value][pat.P.Name] {
		for i := uint64(0); i < cnt; i++ {
			out = append(out, Binding{NodeValue(o)})
		}
	}
	return out
}

func (g *Graph) resolveVQV(pat Pattern) []Binding {
	var out []Binding
	for p, cnt := range g.osp[pat.O.Value][pat.S.Value] {
		for i := uint64(0); i < cnt; i++ {
			out = append(out, Binding{PredValue(p)})
		}
	}
	return out
}

func (g *Graph) resolveVQQ(pat Pattern) []Binding {
	var out []Binding
	for p, objs := range g.spo[pat.S.Value] {
		for o, cnt := range objs {
			for i := uint64(0); i < cnt; i++ {
				out = append(out, Binding{PredValue(p), NodeValue(o)})
			}
		}
	}
	return out
}

func (g *Graph) resolveQVV(pat Pattern) []Binding {
	var out []Binding
	for s, cnt := range g.pos[pat.P.Name][pat.O.Value] {
		for i := uint64(0); i < cnt; i++ {
			out = append(out, Binding{NodeValue(s)})
		}
	}
	return out
}

func (g *Graph) resolveQVQ(pat Pattern) []Binding {
	var out []Binding
	for o, subs := range g.pos[pat.P.Name] {
		for s, cnt := range subs {
			for i := uint64(0); i < cnt; i++ {
				out = append(out, Binding{NodeValue(s), NodeValue(o)})
			}
		}
	}
	return out
}

func (g *Graph) resolveQQV(pat Pattern) []Binding {
	var out []Binding
	for s, preds := range g.osp[pat.O.Value] {
		for p, cnt := range preds {
			for i := uint64(0); i < cnt; i++ {
				out = append(out, Binding{NodeValue(s), PredValue(p)})
			}
		}
	}
	return out
}

func (g *Graph) resolveQQQ(pat Pattern) []Binding {
	var out []Binding
	for s, preds := range g.spo {
		for p, objs := range preds {
			for o, cnt := range objs {
				for i := uint64(0); i < cnt; i++ {
					out = append(out, Binding{NodeValue(s), PredValue(p), NodeValue(o)})
				}
			}
		}
	}
	return out
}

func validatePattern(pat Pattern) error {
	if pat.S.IsBound && !validKind(pat.S.Value.Kind) {
		return fmt.Errorf("%w: subject has unsupported node kind %d", ErrInvalidPattern, pat.S.Value.Kind)
	}
	if pat.O.IsBound && !validKind(pat.O.Value.Kind) {
		return fmt.Errorf("%w: object has unsupported node kind %d", ErrInvalidPattern, pat.O.Value.Kind)
	}
	return nil
}

func validKind(k graphtype.Kind) bool {
	return k <= graphtype.KindBool
}
