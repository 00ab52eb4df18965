package engine

import (
	"errors"
	"fmt"
	"sync"
	"testing"
)

func TestReloadReplacesEverything(t *testing.T) {
	eng := testGraph(t)

	err := eng.Reload(
		[]Term{{Name: "tree", Definition: "a woody plant"}},
		[]Relation{{Source: "tree", Target: "plant", Type: "is-a"}},
	)
	if err != nil {
		t.Fatalf("Reload failed: %v", err)
	}

	// Pre-reload data must be gone entirely.
	if _, found, _ := eng.GetTerm("cat"); found {
		t.Error("pre-reload term still visible after reload")
	}
	if _, found, _ := eng.GetTerm("tree"); !found {
		t.Error("post-reload term not visible")
	}
	if got := eng.TermCount(); got != 1 {
		t.Errorf("TermCount = %d, want 1", got)
	}
	if got := eng.RelationCount(); got != 1 {
		t.Errorf("RelationCount = %d, want 1", got)
	}
	if got := eng.Generation(); got != 2 {
		t.Errorf("Generation = %d, want 2", got)
	}
}

func TestFailedReloadKeepsOldSnapshot(t *testing.T) {
	eng := testGraph(t)

	// A term with an empty name makes the batch malformed.
	err := eng.Reload([]Term{{Name: ""}}, nil)
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}

	// The previous graph must still be fully queryable.
	if _, found, _ := eng.GetTerm("cat"); !found {
		t.Error("failed reload wiped the previous snapshot")
	}
	if got := eng.TermCount(); got != 3 {
		t.Errorf("TermCount = %d, want 3", got)
	}

	// Same for a malformed relation batch.
	err = eng.Reload([]Term{{Name: "x"}}, []Relation{{Source: "x", Target: "", Type: "r"}})
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
	if _, found, _ := eng.GetTerm("cat"); !found {
		t.Error("failed relation batch wiped the previous snapshot")
	}
}

func TestDanglingRelationsTolerated(t *testing.T) {
	eng := New(DefaultOptions())
	err := eng.Load(
		[]Term{{Name: "cat"}},
		[]Relation{{Source: "cat", Target: "nowhere", Type: "points-at"}},
	)
	if err != nil {
		t.Fatalf("dangling references should load: %v", err)
	}

	// The edge is listed, its dangling target just reports not-found.
	rels, total, _ := eng.ListRelations("cat", 1)
	if total != 1 || rels[0].Target != "nowhere" {
		t.Fatalf("dangling relation should be listed, got %v", rels)
	}
	if _, found, _ := eng.GetTerm("nowhere"); found {
		t.Error("dangling target must not appear as a term")
	}
}

// Queries racing a reload must each see one coherent snapshot, never a mix.
// Run with -race to make this meaningful.
func TestConcurrentQueriesDuringReload(t *testing.T) {
	eng := New(DefaultOptions())

	makeBatch := func(gen int) ([]Term, []Relation) {
		// Every generation is internally consistent: term gX-a relates to
		// gX-b of the SAME generation only.
		a := fmt.Sprintf("g%d-a", gen)
		b := fmt.Sprintf("g%d-b", gen)
		return []Term{{Name: a}, {Name: b}},
			[]Relation{{Source: a, Target: b, Type: "pairs-with"}}
	}

	terms, rels := makeBatch(0)
	if err := eng.Load(terms, rels); err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	stop := make(chan struct{})

	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
				}
				terms, total := eng.ListAllTerms()
				if total != 2 {
					t.Errorf("torn snapshot: %d terms", total)
					return
				}
				// Both terms must belong to the same generation.
				if terms[0].Name[:2] != terms[1].Name[:2] {
					t.Errorf("mixed generations: %v", terms)
					return
				}
				rels, _, _ := eng.ListRelations(terms[0].Name, 1)
				if len(rels) == 1 && rels[0].Target != terms[1].Name {
					t.Errorf("relation crosses generations: %v", rels)
					return
				}
			}
		}()
	}

	for gen := 1; gen <= 50; gen++ {
		terms, rels := makeBatch(gen)
		if err := eng.Reload(terms, rels); err != nil {
			t.Fatal(err)
		}
	}
	close(stop)
	wg.Wait()
}

func TestVisitCeiling(t *testing.T) {
	opts := DefaultOptions()
	opts.MaxVisits = 3

	// A star: hub with 10 spokes.
	terms := []Term{{Name: "hub"}}
	var rels []Relation
	for i := 0; i < 10; i++ {
		name := fmt.Sprintf("spoke%d", i)
		terms = append(terms, Term{Name: name})
		rels = append(rels, Relation{Source: "hub", Target: name, Type: "spoke"})
	}

	eng := New(opts)
	if err := eng.Load(terms, rels); err != nil {
		t.Fatal(err)
	}

	// The expansion stops at the budget but still returns what it found.
	got, total, err := eng.ListRelations("hub", 1)
	if err != nil {
		t.Fatal(err)
	}
	if total != 3 || len(got) != 3 {
		t.Errorf("expected the budget to cap the result at 3, got %d", total)
	}

	// Pathfinding reports the exhausted budget as a distinct negative result.
	res, err := eng.FindPath("spoke0", "spoke9", 5)
	if err != nil {
		t.Fatal(err)
	}
	if res.Exists {
		t.Errorf("budget-bound search should not complete, got %v", res.Path)
	}
}
