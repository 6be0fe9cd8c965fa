/*
# Module: transactor/report.go
Transaction summary.

Report is additive bookkeeping a caller can derive from the two datom
lists Transact already returns; it exists so callers that only want
counts (logging, metrics) don't have to re-walk the lists. Grounded on
the teacher's pkg/diff.GraphDiff, which pairs an itemized change list
with a rolled-up count.

## Linked Modules
- [transact](./transact.go) - Transact

## Tags
transactor, report

## Exports
Report

<!-- LinkedDoc RDF -->
@prefix code: <https://schema.codedoc.org/> .
@prefix rdf: <http://www.w3.org/1999/02/22-rdf-syntax-ns#> .

<#report.go> a code:Module ;
    code:name "transactor/report.go" ;
    code:description "Transaction summary" ;
    code:language "go" ;
    code:layer "transactor" ;
    code:linksTo <./transact.go> ;
    code:exports <#Report> ;
    code:tags "transactor", "report" .
<!-- End LinkedDoc RDF -->
*/

package transactor

// Report summarizes one Transact call: how many datoms it actually
// produced (after no-op filtering) and the graph's total triple count
// before and after.
type Report struct {
	TxID           uint64
	AssertedCount  int
	RetractedCount int
	StartingCount  uint64
	EndingCount    uint64
}
