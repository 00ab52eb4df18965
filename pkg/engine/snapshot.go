package engine

import (
	"fmt"

	"github.com/tidwall/btree"
)

// snapshot is an immutable view of the term and relation indexes.
// Queries grab the current snapshot once at entry and never see a mix of
// pre- and post-reload data; Reload builds a whole new snapshot off to the
// side and swaps it in atomically.
type snapshot struct {
	// Term Index: name -> term, plus insertion order for stable enumeration
	// and a B-Tree keyed by name for ordered prefix scans.
	terms  map[string]*Term
	order  []*Term
	sorted *btree.Map[string, *Term]

	// Relation Index: adjacency lists in insertion order. rev mirrors fwd so
	// incoming edges can be walked without scanning every source.
	fwd map[string][]Relation
	rev map[string][]Relation

	relCount int
}

func emptySnapshot() *snapshot {
	return &snapshot{
		terms:  make(map[string]*Term),
		sorted: btree.NewMap[string, *Term](32),
		fwd:    make(map[string][]Relation),
		rev:    make(map[string][]Relation),
	}
}

// buildSnapshot validates and indexes a full batch of terms and relations.
// Any error leaves the caller's previous snapshot untouched: the half-built
// state here is simply discarded.
func buildSnapshot(terms []Term, relations []Relation) (*snapshot, error) {
	s := emptySnapshot()

	for i, t := range terms {
		if t.Name == "" {
			return nil, fmt.Errorf("%w: term %d has an empty name", ErrInvalidArgument, i)
		}
		if existing, ok := s.terms[t.Name]; ok {
			// Last definition wins, original insertion position is kept.
			existing.Definition = t.Definition
			continue
		}
		term := &Term{Name: t.Name, Definition: t.Definition}
		s.terms[t.Name] = term
		s.order = append(s.order, term)
		s.sorted.Set(t.Name, term)
	}

	// Identical (source, target, type) triples collapse to one edge so that
	// traversal results never report duplicates.
	seen := make(map[Relation]struct{}, len(relations))
	for i, r := range relations {
		if r.Source == "" || r.Target == "" {
			return nil, fmt.Errorf("%w: relation %d has an empty endpoint", ErrInvalidArgument, i)
		}
		if _, dup := seen[r]; dup {
			continue
		}
		seen[r] = struct{}{}
		// Dangling endpoints (names not present as terms) are tolerated:
		// lookups on them report not-found instead of failing the query.
		s.fwd[r.Source] = append(s.fwd[r.Source], r)
		s.rev[r.Target] = append(s.rev[r.Target], r)
		s.relCount++
	}

	return s, nil
}

// hasTerm reports whether name is indexed as a term (dangling relation
// endpoints do not count).
func (s *snapshot) hasTerm(name string) bool {
	_, ok := s.terms[name]
	return ok
}
