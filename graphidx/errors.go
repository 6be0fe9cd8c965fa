/*
# Module: graphidx/errors.go
Error taxonomy of the indexed graph.

## Linked Modules
None (leaf)

## Tags
graphidx, errors

## Exports
ErrInvalidPattern, ErrInternalInvariant

<!-- LinkedDoc RDF -->
@prefix code: <https://schema.codedoc.org/> .
@prefix rdf: <http://www.w3.org/1999/02/22-rdf-syntax-ns#> .

<#errors.go> a code:Module ;
    code:name "graphidx/errors.go" ;
    code:description "Error taxonomy of the indexed graph" ;
    code:language "go" ;
    code:layer "graphidx" ;
    code:exports <#ErrInvalidPattern>, <#ErrInternalInvariant> ;
    code:tags "graphidx", "errors" .
<!-- End LinkedDoc RDF -->
*/

package graphidx

import "errors"

var (
	// ErrInvalidPattern signals a pattern position holding a value of an
	// unsupported type. Wrapped with fmt.Errorf at the call site to carry
	// the offending pattern.
	ErrInvalidPattern = errors.New("invalid pattern")

	// ErrInternalInvariant signals an index desync detected during an
	// operation. This should never occur; it indicates a bug in this
	// package, not caller misuse. Add/Delete panic with it (wrapped) if a
	// cowSet path-copy leaves the three indexes disagreeing on the triple
	// just written (see guardTripleCoherence in graph.go); Graph.CheckCoherence
	// (coherence.go) returns it, unwrapped of panic, for a caller-invoked,
	// whole-graph check.
	ErrInternalInvariant = errors.New("internal invariant violated")
)
