package transactor

import (
	"testing"

	"github.com/kshard/graphindex/graphidx"
	"github.com/kshard/graphindex/graphtype"
)

var (
	a = graphtype.NewIRI("a")
	b = graphtype.NewIRI("b")
	c = graphtype.NewIRI("c")
)

func TestTransact_BasicAssertions(t *testing.T) {
	g := graphidx.NewGraph(graphidx.Single)

	g2, asserted, retracted, report := Transact(g, []graphtype.Triple{
		graphtype.NewTriple(a, "knows", b),
		graphtype.NewTriple(b, "knows", c),
	}, nil, 1)

	if len(asserted) != 2 {
		t.Fatalf("asserted = %d datoms, want 2", len(asserted))
	}
	if len(retracted) != 0 {
		t.Fatalf("retracted = %d datoms, want 0", len(retracted))
	}
	if report.AssertedCount != 2 || report.RetractedCount != 0 {
		t.Errorf("report = %+v", report)
	}

	bs, err := g2.Resolve(graphidx.Pattern{S: graphidx.Bound(a), P: graphidx.BoundPred("knows"), O: graphidx.Unbound})
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if len(bs) != 1 || bs[0][0].Node != b {
		t.Errorf("resolve [:a :knows ?] = %v, want [[b]]", bs)
	}

	cnt, err := g2.Count(graphidx.Pattern{})
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if cnt != 2 {
		t.Errorf("count [? ? ?] = %d, want 2", cnt)
	}

	changed := g.Diff(g2)
	if _, ok := changed[a]; !ok {
		t.Errorf("diff(empty, g2) missing %v", a)
	}
	if _, ok := changed[b]; !ok {
		t.Errorf("diff(empty, g2) missing %v", b)
	}
}

func TestTransact_NoOpFiltering(t *testing.T) {
	g := graphidx.NewGraph(graphidx.Single).Add(a, "p", b)

	g2, asserted, retracted, report := Transact(g, []graphtype.Triple{
		graphtype.NewTriple(a, "p", b), // already present: no-op
	}, []graphtype.Triple{
		graphtype.NewTriple(b, "p", c), // absent: no-op
	}, 5)

	if g2 != g {
		t.Errorf("an all-no-op transact should return the same graph pointer")
	}
	if len(asserted) != 0 || len(retracted) != 0 {
		t.Errorf("no-op transact produced datoms: asserted=%v retracted=%v", asserted, retracted)
	}
	if report.AssertedCount != 0 || report.RetractedCount != 0 {
		t.Errorf("report = %+v, want all zero counts", report)
	}
}

func TestTransact_RetractionsBeforeAssertions(t *testing.T) {
	g := graphidx.NewGraph(graphidx.Single).Add(a, "p", b)

	g2, asserted, retracted, _ := Transact(g,
		[]graphtype.Triple{graphtype.NewTriple(a, "p", c)},
		[]graphtype.Triple{graphtype.NewTriple(a, "p", b)},
		2,
	)

	if len(retracted) != 1 || retracted[0].Added {
		t.Fatalf("retracted = %v, want one Added=false datom", retracted)
	}
	if len(asserted) != 1 || !asserted[0].Added {
		t.Fatalf("asserted = %v, want one Added=true datom", asserted)
	}
	if g2.Has(a, "p", b) {
		t.Errorf("retracted triple still present")
	}
	if !g2.Has(a, "p", c) {
		t.Errorf("asserted triple missing")
	}
}

func TestTransact_DiffReproducesGraph(t *testing.T) {
	g := graphidx.NewGraph(graphidx.Single)
	g2, asserted, retracted, _ := Transact(g,
		[]graphtype.Triple{graphtype.NewTriple(a, "p", b)},
		nil, 1,
	)

	if len(asserted) == 0 && len(retracted) == 0 {
		t.Fatalf("expected non-empty datom lists")
	}

	replay := g
	for _, d := range retracted {
		replay = replay.Delete(d.S, d.P, d.O)
	}
	for _, d := range asserted {
		replay = replay.Add(d.S, d.P, d.O)
	}

	if len(replay.Diff(g2)) != 0 {
		t.Errorf("replaying emitted datoms did not reproduce g2: diff = %v", replay.Diff(g2))
	}
}
