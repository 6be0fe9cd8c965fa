/*
# Module: graphtype/triple.go
Triple and Datom data structures for the graph-index engine.

Triple is the stored (subject, predicate, object) edge; Datom is the
observation of a Triple being asserted or retracted at a transaction.
Compatible with the indexed graph and the transactor.

## Linked Modules
- [node](./node.go) - Node value type

## Tags
graphtype, triple, datom, data-structure

## Exports
Triple, Datom

<!-- LinkedDoc RDF -->
@prefix code: <https://schema.codedoc.org/> .
@prefix rdf: <http://www.w3.org/1999/02/22-rdf-syntax-ns#> .

<#triple.go> a code:Module ;
    code:name "graphtype/triple.go" ;
    code:description "Triple and Datom data structures for the graph-index engine" ;
    code:language "go" ;
    code:layer "graphtype" ;
    code:linksTo <./node.go> ;
    code:exports <#Triple>, <#Datom> ;
    code:tags "graphtype", "triple", "datom", "data-structure" ;
    code:isLeaf true .
<!-- End LinkedDoc RDF -->
*/

package graphtype

import "fmt"

// Triple represents a directed, labeled edge stored in the indexed graph.
// The predicate is always the plain (untagged) name: transitive tags are a
// query-time concern handled by the resolver, not a storage concern.
type Triple struct {
	S Node
	P string
	O Node
}

// NewTriple creates a new Triple.
func NewTriple(s Node, p string, o Node) Triple {
	return Triple{S: s, P: p, O: o}
}

// Equals checks if two triples are equal.
func (t Triple) Equals(other Triple) bool {
	return t.S == other.S && t.P == other.P && t.O == other.O
}

// String returns a debug representation of the triple.
func (t Triple) String() string {
	return fmt.Sprintf("[%s %s %s]", t.S, t.P, t.O)
}

// Datom is the observation of a Triple being asserted or retracted at a
// given transaction. A transact call emits these instead of mutating a
// graph in place.
type Datom struct {
	S     Node
	P     string
	O     Node
	Tx    uint64
	Added bool
}

// String returns a debug representation of the datom.
func (d Datom) String() string {
	sign := "-"
	if d.Added {
		sign = "+"
	}
	return fmt.Sprintf("%s(%s %s %s %d)", sign, d.S, d.P, d.O, d.Tx)
}
