package transitive

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/kshard/graphindex/graphidx"
	"github.com/kshard/graphindex/graphtype"
	"github.com/kshard/graphindex/internal/closurecache"
)

// randomChainGraph builds a graph over n named nodes with a random subset
// of forward edges under predicate "p", seeded for reproducibility.
func randomChainGraph(seed int64, n int, edgeProb float64) (*graphidx.Graph, []graphtype.Node) {
	r := rand.New(rand.NewSource(seed))
	nodes := make([]graphtype.Node, n)
	for i := range nodes {
		nodes[i] = graphtype.NewIRI(fmt.Sprintf("n%d", i))
	}

	g := graphidx.NewGraph(graphidx.Single)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			if r.Float64() < edgeProb {
				g = g.Add(nodes[i], "p", nodes[j])
			}
		}
	}
	return g, nodes
}

// TestProperty_StarSupersetOfPlus_Random runs the star-⊇-plus property
// (SPEC_FULL.md §8) over a handful of randomly shaped graphs instead of a
// single hand-picked fixture.
func TestProperty_StarSupersetOfPlus_Random(t *testing.T) {
	pat := graphidx.Pattern{S: graphidx.Unbound, P: graphidx.BoundPred("p"), O: graphidx.Unbound}

	for trial := 0; trial < 20; trial++ {
		g, _ := randomChainGraph(int64(trial), 8, 0.3)
		cache := closurecache.NewCache(closurecache.DefaultCapacity)

		plus, err := ResolveTransitiveWithCache(g, cache, graphtype.TransPlus, pat)
		if err != nil {
			t.Fatalf("trial %d: ResolveTransitive(plus) error = %v", trial, err)
		}
		star, err := ResolveTransitiveWithCache(g, cache, graphtype.TransStar, pat)
		if err != nil {
			t.Fatalf("trial %d: ResolveTransitive(star) error = %v", trial, err)
		}

		plusSet := map[[2]graphtype.Node]bool{}
		for _, b := range plus {
			plusSet[[2]graphtype.Node{b[0].Node, b[1].Node}] = true
		}
		starSet := map[[2]graphtype.Node]bool{}
		for _, b := range star {
			starSet[[2]graphtype.Node{b[0].Node, b[1].Node}] = true
		}

		for pair := range plusSet {
			if !starSet[pair] {
				t.Errorf("trial %d: :star missing :plus pair %v", trial, pair)
			}
		}
	}
}

