package closurecache

import (
	"testing"

	"github.com/kshard/graphindex/graphtype"
)

func TestKeyOf_OrderIndependent(t *testing.T) {
	o1, o2 := graphtype.NewIRI("o1"), graphtype.NewIRI("o2")
	s1, s2 := graphtype.NewIRI("s1"), graphtype.NewIRI("s2")

	m1 := Relation{o1: {s1, s2}, o2: {s2}}
	m2 := Relation{o2: {s2}, o1: {s2, s1}}

	if KeyOf(m1) != KeyOf(m2) {
		t.Errorf("KeyOf should be independent of map iteration and slice order")
	}
}

func TestKeyOf_DistinctContent(t *testing.T) {
	o1 := graphtype.NewIRI("o1")
	s1, s2 := graphtype.NewIRI("s1"), graphtype.NewIRI("s2")

	m1 := Relation{o1: {s1}}
	m2 := Relation{o1: {s2}}

	if KeyOf(m1) == KeyOf(m2) {
		t.Errorf("KeyOf collided for distinct relations")
	}
}

func TestCache_PutGet(t *testing.T) {
	c := NewCache(2)
	o1 := graphtype.NewIRI("o1")
	s1 := graphtype.NewIRI("s1")

	m := Relation{o1: {s1}}
	if _, ok := c.Get(m); ok {
		t.Fatalf("Get() on empty cache should miss")
	}

	c.Put(m, m)
	if got, ok := c.Get(m); !ok || got[o1][0] != s1 {
		t.Errorf("Get() after Put() = (%v, %v), want a hit", got, ok)
	}
}

func TestCache_EvictsBeyondCapacity(t *testing.T) {
	c := NewCache(2)
	mk := func(name string) Relation {
		return Relation{graphtype.NewIRI(name): {graphtype.NewIRI(name + "-s")}}
	}

	m1, m2, m3 := mk("o1"), mk("o2"), mk("o3")
	c.Put(m1, m1)
	c.Put(m2, m2)
	c.Put(m3, m3) // evicts m1 (least recently used)

	if _, ok := c.Get(m1); ok {
		t.Errorf("Get(m1) should have been evicted")
	}
	if _, ok := c.Get(m2); !ok {
		t.Errorf("Get(m2) should still be present")
	}
	if _, ok := c.Get(m3); !ok {
		t.Errorf("Get(m3) should still be present")
	}
}
