/*
Benchmarks for the predicate-specific closure fixed point.
*/

package transitive

import (
	"fmt"
	"testing"

	"github.com/kshard/graphindex/graphtype"
	"github.com/kshard/graphindex/internal/closurecache"
)

// chainRelation builds an object->subjects relation shaped like a chain
// of n nodes (:n0 -> :n1 -> ... -> n-1), the worst case for the O(n^3)
// fixed point since every merge step can introduce new subjects.
func chainRelation(n int) closurecache.Relation {
	m := closurecache.Relation{}
	for i := 1; i < n; i++ {
		o := graphtype.NewIRI(fmt.Sprintf("n%d", i))
		s := graphtype.NewIRI(fmt.Sprintf("n%d", i-1))
		m[o] = []graphtype.Node{s}
	}
	return m
}

func BenchmarkFixedPointClosure_Chain32(b *testing.B) {
	m := chainRelation(32)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		fixedPointClosure(m)
	}
}

func BenchmarkFixedPointClosure_Chain128(b *testing.B) {
	m := chainRelation(128)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		fixedPointClosure(m)
	}
}

func BenchmarkClosureOf_CacheHit(b *testing.B) {
	cache := closurecache.NewCache(closurecache.DefaultCapacity)
	m := chainRelation(32)
	closureOf(cache, m) // warm the cache
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		closureOf(cache, m)
	}
}
