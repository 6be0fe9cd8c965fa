/*
# Module: transactor/transact.go
Atomic batch application of assertions and retractions.

Transact folds a batch of retractions, then assertions, into a graph
value, relying entirely on the indexed graph's identity contract: Add/
Delete already know whether they mutated anything, so a no-op is
detected by pointer comparison rather than a separate existence check.
Grounded on the teacher's pkg/diff.Differ, which folds two knowledge-
graph snapshots into a GraphDiff of per-module changes; here the fold
runs forward over one graph lineage instead of comparing two snapshots,
and the changes are Datoms instead of ModuleChanges.

## Linked Modules
- [../graphtype](../graphtype/triple.go) - Triple/Datom value types
- [../graphidx](../graphidx/graph.go) - Indexed graph
- [report](./report.go) - TxReport summary

## Tags
transactor, transact, datom

## Exports
Transact

<!-- LinkedDoc RDF -->
@prefix code: <https://schema.codedoc.org/> .
@prefix rdf: <http://www.w3.org/1999/02/22-rdf-syntax-ns#> .

<#transact.go> a code:Module ;
    code:name "transactor/transact.go" ;
    code:description "Atomic batch application of assertions and retractions" ;
    code:language "go" ;
    code:layer "transactor" ;
    code:linksTo <../graphtype/triple.go>, <../graphidx/graph.go>, <./report.go> ;
    code:exports <#Transact> ;
    code:tags "transactor", "transact", "datom" .
<!-- End LinkedDoc RDF -->
*/

package transactor

import (
	"github.com/kshard/graphindex/graphidx"
	"github.com/kshard/graphindex/graphtype"
)

// Transact applies retractions, then assertions (each in input order), to
// g at transaction txID, returning the resulting graph together with the
// asserted and retracted datom lists (in that order) and a Report
// summarizing them. Only mutations that actually changed the graph — per
// the identity contract, g' observably distinct from g — are recorded;
// retracting an absent triple, or re-asserting an already-present one in
// the Single variant, is silently dropped. In the Multi variant a
// re-assertion increments the count and is recorded.
func Transact(
	g *graphidx.Graph,
	assertions []graphtype.Triple,
	retractions []graphtype.Triple,
	txID uint64,
) (*graphidx.Graph, []graphtype.Datom, []graphtype.Datom, Report) {
	startCount, _ := g.Count(graphidx.Pattern{})

	var retracted, asserted []graphtype.Datom

	for _, t := range retractions {
		next := g.Delete(t.S, t.P, t.O)
		if next != g {
			retracted = append(retracted, graphtype.Datom{S: t.S, P: t.P, O: t.O, Tx: txID, Added: false})
			g = next
		}
	}

	for _, t := range assertions {
		next := g.Add(t.S, t.P, t.O)
		if next != g {
			asserted = append(asserted, graphtype.Datom{S: t.S, P: t.P, O: t.O, Tx: txID, Added: true})
			g = next
		}
	}

	endCount, _ := g.Count(graphidx.Pattern{})

	report := Report{
		TxID:           txID,
		AssertedCount:  len(asserted),
		RetractedCount: len(retracted),
		StartingCount:  startCount,
		EndingCount:    endCount,
	}

	return g, asserted, retracted, report
}
