package engine

import "fmt"

// RelationsFrom returns the direct (depth-1) outgoing relations of a term in
// adjacency insertion order. A term with no outgoing relations, or one that
// does not exist at all, yields an empty slice.
func (e *Engine) RelationsFrom(name string) []Relation {
	snap := e.snap.Load()
	edges := snap.fwd[name]
	out := make([]Relation, len(edges))
	copy(out, edges)
	return out
}

// ListRelations expands the outgoing-relation neighborhood of a term with a
// breadth-first walk up to maxDepth hops. maxDepth <= 0 falls back to
// Options.DefaultRelationDepth (depth 1, direct relations only).
//
// Each (source, target, type) triple appears at most once even when it is
// reachable along several paths. A term already expanded from is not expanded
// again (cycles terminate), but an edge INTO such a term is still reported.
// Ordering is deterministic: BFS layer first, then source discovery order,
// then adjacency insertion order.
//
// An unknown start term returns an empty result and count 0, not an error.
func (e *Engine) ListRelations(name string, maxDepth int) ([]Relation, int, error) {
	if name == "" {
		return nil, 0, fmt.Errorf("%w: term name is empty", ErrInvalidArgument)
	}
	if maxDepth <= 0 {
		maxDepth = e.opts.DefaultRelationDepth
	}

	snap := e.snap.Load()
	if !snap.hasTerm(name) {
		return []Relation{}, 0, nil
	}

	var out []Relation
	emitted := make(map[Relation]struct{})
	expanded := map[string]struct{}{name: {}}
	frontier := []string{name}
	visits := 0

	for depth := 0; depth < maxDepth && len(frontier) > 0; depth++ {
		var next []string
		for _, source := range frontier {
			for _, edge := range snap.fwd[source] {
				visits++
				if visits > e.opts.MaxVisits {
					// Budget exhausted: return what was found so far.
					return out, len(out), nil
				}
				if _, dup := emitted[edge]; dup {
					continue
				}
				emitted[edge] = struct{}{}
				out = append(out, edge)
				if _, seen := expanded[edge.Target]; !seen {
					expanded[edge.Target] = struct{}{}
					next = append(next, edge.Target)
				}
			}
		}
		frontier = next
	}

	if out == nil {
		out = []Relation{}
	}
	return out, len(out), nil
}
