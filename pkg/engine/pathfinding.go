package engine

import "fmt"

// expand walks the neighbors of name under the given direction, in a fixed
// order: outgoing edges first (adjacency insertion order), then incoming.
// This single policy point is what makes FindPath's tie-break deterministic
// and what would flip the search to directed-only traversal.
func (s *snapshot) expand(name string, dir Direction, visit func(neighbor string) bool) {
	if dir == DirectionBoth || dir == DirectionOut {
		for _, edge := range s.fwd[name] {
			if !visit(edge.Target) {
				return
			}
		}
	}
	if dir == DirectionBoth || dir == DirectionIn {
		for _, edge := range s.rev[name] {
			if !visit(edge.Source) {
				return
			}
		}
	}
}

// FindPath searches for the shortest path (by hop count) between two terms
// using a breadth-first walk, treating relations per Options.PathDirection
// (undirected by default). maxDepth <= 0 falls back to
// Options.DefaultPathDepth; no returned path is longer than maxDepth hops.
//
// BFS guarantees minimal hop count; among equally short paths the first one
// discovered under the adjacency insertion order wins, so repeated calls
// return the same path.
func (e *Engine) FindPath(source, target string, maxDepth int) (*PathResult, error) {
	if source == "" || target == "" {
		return nil, fmt.Errorf("%w: source and target term names are required", ErrInvalidArgument)
	}
	if maxDepth <= 0 {
		maxDepth = e.opts.DefaultPathDepth
	}

	res := &PathResult{Source: source, Target: target, Path: []string{}}
	snap := e.snap.Load()

	if !snap.hasTerm(source) {
		res.Message = fmt.Sprintf("source term %q not found", source)
		return res, nil
	}
	if !snap.hasTerm(target) {
		res.Message = fmt.Sprintf("target term %q not found", target)
		return res, nil
	}
	if source == target {
		res.Exists = true
		res.Path = []string{source}
		res.Message = "source and target are the same term"
		return res, nil
	}

	// parent doubles as the visited set; the source maps to "" so path
	// reconstruction knows where to stop.
	parent := map[string]string{source: ""}
	frontier := []string{source}
	visits := 0

	for depth := 0; depth < maxDepth && len(frontier) > 0; depth++ {
		var next []string
		for _, curr := range frontier {
			found := false
			snap.expand(curr, e.opts.PathDirection, func(neighbor string) bool {
				visits++
				if visits > e.opts.MaxVisits {
					return false
				}
				if _, seen := parent[neighbor]; seen {
					return true
				}
				parent[neighbor] = curr
				if neighbor == target {
					found = true
					return false
				}
				next = append(next, neighbor)
				return true
			})
			if visits > e.opts.MaxVisits {
				res.Message = fmt.Sprintf("search budget exhausted after %d edge visits", e.opts.MaxVisits)
				return res, nil
			}
			if found {
				res.Exists = true
				res.Path = reconstructPath(parent, target)
				res.Message = "path found"
				return res, nil
			}
		}
		frontier = next
	}

	res.Message = fmt.Sprintf("no path found within %d hops", maxDepth)
	return res, nil
}

// reconstructPath walks the parent map back from target to the source
// (whose parent is "") and reverses in place.
func reconstructPath(parent map[string]string, target string) []string {
	var path []string
	for curr := target; curr != ""; curr = parent[curr] {
		path = append(path, curr)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
