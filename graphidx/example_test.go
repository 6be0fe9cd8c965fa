package graphidx_test

import (
	"fmt"

	"github.com/kshard/graphindex/graphidx"
	"github.com/kshard/graphindex/graphtype"
)

// Example demonstrates building a graph and resolving a pattern.
func Example() {
	alice := graphtype.NewIRI("alice")
	bob := graphtype.NewIRI("bob")
	carol := graphtype.NewIRI("carol")

	g := graphidx.NewGraph(graphidx.Single)
	g = g.Add(alice, "knows", bob)
	g = g.Add(bob, "knows", carol)

	bindings, err := g.Resolve(graphidx.Pattern{
		S: graphidx.Bound(alice),
		P: graphidx.BoundPred("knows"),
		O: graphidx.Unbound,
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, b := range bindings {
		fmt.Println(b[0].Node)
	}

	total, _ := g.Count(graphidx.Pattern{})
	fmt.Println("total:", total)

	// Output:
	// bob
	// total: 2
}
