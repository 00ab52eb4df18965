package engine

import (
	"errors"
	"reflect"
	"testing"
)

func TestListRelationsDirect(t *testing.T) {
	eng := testGraph(t)

	rels, total, err := eng.ListRelations("cat", 1)
	if err != nil {
		t.Fatalf("ListRelations failed: %v", err)
	}
	if total != 2 || len(rels) != 2 {
		t.Fatalf("expected 2 relations, got %d", total)
	}
	// Adjacency insertion order.
	if rels[0].Target != "animal" || rels[1].Target != "pet" {
		t.Errorf("unexpected order: %v", rels)
	}
}

func TestListRelationsDepthZeroDefaultsToOne(t *testing.T) {
	eng := New(DefaultOptions())
	eng.Load([]Term{{Name: "a"}, {Name: "b"}, {Name: "c"}}, []Relation{
		{Source: "a", Target: "b", Type: "next"},
		{Source: "b", Target: "c", Type: "next"},
	})

	atZero, _, _ := eng.ListRelations("a", 0)
	atOne, _, _ := eng.ListRelations("a", 1)
	if !reflect.DeepEqual(atZero, atOne) {
		t.Errorf("depth 0 should equal depth 1: %v vs %v", atZero, atOne)
	}
	if len(atZero) != 1 || atZero[0].Target != "b" {
		t.Errorf("depth 0 should list only direct relations, got %v", atZero)
	}
}

func TestListRelationsBFSOrder(t *testing.T) {
	// a -> b, a -> c (depth 1); b -> d, c -> e (depth 2)
	eng := New(DefaultOptions())
	eng.Load(
		[]Term{{Name: "a"}, {Name: "b"}, {Name: "c"}, {Name: "d"}, {Name: "e"}},
		[]Relation{
			{Source: "a", Target: "b", Type: "r"},
			{Source: "a", Target: "c", Type: "r"},
			{Source: "b", Target: "d", Type: "r"},
			{Source: "c", Target: "e", Type: "r"},
		},
	)

	rels, total, err := eng.ListRelations("a", 2)
	if err != nil {
		t.Fatal(err)
	}
	if total != 4 {
		t.Fatalf("expected 4 relations, got %d", total)
	}

	// Layer by layer, sources in discovery order.
	wantTargets := []string{"b", "c", "d", "e"}
	for i, rel := range rels {
		if rel.Target != wantTargets[i] {
			t.Errorf("position %d: got %q, want %q", i, rel.Target, wantTargets[i])
		}
	}

	// Depth 1 must not leak the second layer.
	rels, _, _ = eng.ListRelations("a", 1)
	if len(rels) != 2 {
		t.Errorf("depth 1 should stop at direct relations, got %v", rels)
	}
}

func TestListRelationsCyclesAndDuplicates(t *testing.T) {
	eng := New(DefaultOptions())
	eng.Load(
		[]Term{{Name: "a"}, {Name: "b"}},
		[]Relation{
			{Source: "a", Target: "b", Type: "next"},
			{Source: "a", Target: "b", Type: "next"}, // exact duplicate triple
			{Source: "a", Target: "b", Type: "alias"},
			{Source: "b", Target: "a", Type: "next"}, // cycle
		},
	)

	rels, total, err := eng.ListRelations("a", 10)
	if err != nil {
		t.Fatal(err)
	}

	// The duplicate triple collapses; the two distinct types to the same
	// target both appear; the back-edge into the already-visited "a" is
	// still reported.
	if total != 3 {
		t.Fatalf("expected 3 unique relations, got %d: %v", total, rels)
	}
	seen := make(map[Relation]struct{})
	for _, rel := range rels {
		if _, dup := seen[rel]; dup {
			t.Errorf("duplicate triple in result: %v", rel)
		}
		seen[rel] = struct{}{}
	}
}

func TestListRelationsUnknownTerm(t *testing.T) {
	eng := testGraph(t)

	rels, total, err := eng.ListRelations("ghost", 3)
	if err != nil {
		t.Fatalf("unknown term should not error: %v", err)
	}
	if total != 0 || len(rels) != 0 {
		t.Errorf("expected empty result, got %v", rels)
	}

	if _, _, err := eng.ListRelations("", 1); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument for empty name, got %v", err)
	}
}

func TestListRelationsIdempotent(t *testing.T) {
	eng := testGraph(t)

	first, _, _ := eng.ListRelations("cat", 2)
	second, _, _ := eng.ListRelations("cat", 2)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated calls differ: %v vs %v", first, second)
	}
}

func TestRelationsFrom(t *testing.T) {
	eng := testGraph(t)

	if rels := eng.RelationsFrom("cat"); len(rels) != 2 {
		t.Errorf("expected 2 direct relations, got %v", rels)
	}
	if rels := eng.RelationsFrom("pet"); len(rels) != 0 {
		t.Errorf("leaf term should have no outgoing relations, got %v", rels)
	}
}
