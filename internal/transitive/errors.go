/*
# Module: internal/transitive/errors.go
Error values specific to transitive-closure resolution.

## Linked Modules
None (leaf)

## Tags
transitive, errors

## Exports
ErrUnboundClosure

<!-- LinkedDoc RDF -->
@prefix code: <https://schema.codedoc.org/> .
@prefix rdf: <http://www.w3.org/1999/02/22-rdf-syntax-ns#> .

<#errors.go> a code:Module ;
    code:name "internal/transitive/errors.go" ;
    code:description "Error values specific to transitive-closure resolution" ;
    code:language "go" ;
    code:layer "transitive" ;
    code:exports <#ErrUnboundClosure> ;
    code:tags "transitive", "errors" .
<!-- End LinkedDoc RDF -->
*/

package transitive

import "errors"

// ErrUnboundClosure is returned when all three pattern positions are
// unbound: unbounded transitive closure over every predicate at once is
// not supported.
var ErrUnboundClosure = errors.New("unbound transitive closure")
