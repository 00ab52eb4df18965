package engine

import "testing"

func TestStats(t *testing.T) {
	eng := New(DefaultOptions())
	err := eng.Load(
		[]Term{
			{Name: "cat"}, {Name: "animal"}, {Name: "pet"},
			{Name: "quark"}, // isolated
		},
		[]Relation{
			{Source: "cat", Target: "animal", Type: "is-a"},
			{Source: "cat", Target: "pet", Type: "is-a"},
			{Source: "pet", Target: "animal", Type: "kind-of"},
			{Source: "cat", Target: "missing", Type: "dangling"},
		},
	)
	if err != nil {
		t.Fatal(err)
	}

	st := eng.Stats()

	if st.Terms != 4 {
		t.Errorf("Terms = %d, want 4", st.Terms)
	}
	if st.Relations != 4 {
		t.Errorf("Relations = %d, want 4", st.Relations)
	}
	if st.RelationTypes["is-a"] != 2 || st.RelationTypes["kind-of"] != 1 || st.RelationTypes["dangling"] != 1 {
		t.Errorf("unexpected relation type histogram: %v", st.RelationTypes)
	}

	// Degrees over known terms only: cat=2, animal=2, pet=2, quark=0.
	// The dangling edge contributes to the histogram but not to degrees.
	if st.MaxDegree != 2 {
		t.Errorf("MaxDegree = %d, want 2", st.MaxDegree)
	}
	if len(st.TopDegree) != 4 {
		t.Fatalf("TopDegree length = %d, want 4", len(st.TopDegree))
	}
	// Ties break by name.
	if st.TopDegree[0].Name != "animal" || st.TopDegree[0].Degree != 2 {
		t.Errorf("unexpected top term: %+v", st.TopDegree[0])
	}

	// One connected component {cat, animal, pet} plus the isolated {quark}.
	if st.Components != 2 {
		t.Errorf("Components = %d, want 2", st.Components)
	}
	if len(st.Isolated) != 1 || st.Isolated[0] != "quark" {
		t.Errorf("Isolated = %v, want [quark]", st.Isolated)
	}

	wantMean := 6.0 / 4.0
	if st.MeanDegree != wantMean {
		t.Errorf("MeanDegree = %v, want %v", st.MeanDegree, wantMean)
	}
}

func TestStatsEmptyGraph(t *testing.T) {
	eng := New(DefaultOptions())

	st := eng.Stats()
	if st.Terms != 0 || st.Relations != 0 || st.Components != 0 {
		t.Errorf("empty graph stats should be zero: %+v", st)
	}
}
