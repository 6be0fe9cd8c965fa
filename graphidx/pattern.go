/*
# Module: graphidx/pattern.go
Query pattern and result binding shapes.

A Pattern fixes zero or more of a triple's three positions; Resolve/Count
project the unbound positions into Bindings.

## Linked Modules
- [../graphtype](../graphtype/node.go) - Node value type
- [graph](./graph.go) - Indexed graph

## Tags
graphidx, pattern, binding

## Exports
Term, PredTerm, Pattern, Value, Binding, Bound, BoundPred, NodeValue, PredValue

<!-- LinkedDoc RDF -->
@prefix code: <https://schema.codedoc.org/> .
@prefix rdf: <http://www.w3.org/1999/02/22-rdf-syntax-ns#> .

<#pattern.go> a code:Module ;
    code:name "graphidx/pattern.go" ;
    code:description "Query pattern and result binding shapes" ;
    code:language "go" ;
    code:layer "graphidx" ;
    code:linksTo <../graphtype/node.go>, <./graph.go> ;
    code:exports <#Term>, <#PredTerm>, <#Pattern>, <#Value>, <#Binding> ;
    code:tags "graphidx", "pattern", "binding" .
<!-- End LinkedDoc RDF -->
*/

package graphidx

import "github.com/kshard/graphindex/graphtype"

// Term is a subject or object position in a Pattern: either bound to a
// ground Node, or unbound (a variable marker).
type Term struct {
	IsBound bool
	Value   graphtype.Node
}

// Bound returns a ground Term.
func Bound(n graphtype.Node) Term {
	return Term{IsBound: true, Value: n}
}

// Unbound is the variable marker for a Term position.
var Unbound = Term{}

// PredTerm is the predicate position in a Pattern: either a ground plain
// predicate name, or unbound.
type PredTerm struct {
	IsBound bool
	Name    string
}

// BoundPred returns a ground PredTerm.
func BoundPred(name string) PredTerm {
	return PredTerm{IsBound: true, Name: name}
}

// UnboundPred is the variable marker for the predicate position.
var UnboundPred = PredTerm{}

// Pattern is a triple pattern: each position is either ground or unbound.
type Pattern struct {
	S Term
	P PredTerm
	O Term
}

// Shape returns the (s-bound, p-bound, o-bound) dispatch key for pat.
func (pat Pattern) Shape() [3]bool {
	return [3]bool{pat.S.IsBound, pat.P.IsBound, pat.O.IsBound}
}

// Value is one projected position of a result Binding: either a Node (a
// subject or object) or a plain predicate name.
type Value struct {
	IsPred bool
	Node   graphtype.Node
	Pred   string
}

// NodeValue wraps a subject/object Node as a binding Value.
func NodeValue(n graphtype.Node) Value {
	return Value{Node: n}
}

// PredValue wraps a plain predicate name as a binding Value.
func PredValue(p string) Value {
	return Value{IsPred: true, Pred: p}
}

// Binding is one result tuple: the projection of a Pattern's unbound
// positions, in S, P, O order, for one matching triple. Its length
// (arity) equals the number of unbound positions in the originating
// Pattern.
type Binding []Value
