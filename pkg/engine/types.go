package engine

// Term is a single glossary entry: a unique, case-sensitive name plus its
// definition. The definition may be empty; the name may not.
type Term struct {
	Name       string `json:"name"`
	Definition string `json:"definition"`
}

// Relation is a directed, typed edge between two terms.
// Type is an open label ("is-a", "part-of", ...): unknown labels are stored
// verbatim, no enumeration is enforced.
type Relation struct {
	Source string `json:"source_term"`
	Target string `json:"target_term"`
	Type   string `json:"relation_type"`
}

// PathResult is the outcome of a FindPath query.
// Exists=false covers both "term missing" and "no path within bound";
// Message tells the two apart.
type PathResult struct {
	Source  string   `json:"source"`
	Target  string   `json:"target"`
	Path    []string `json:"path"` // Sequence of term names, source..target inclusive
	Exists  bool     `json:"path_exists"`
	Message string   `json:"message"`
}

// Direction controls which edges a path search is allowed to walk.
type Direction int

const (
	// DirectionBoth treats edges as undirected: "how are X and Y related"
	// is symmetric even though relations are stored directionally.
	DirectionBoth Direction = iota
	// DirectionOut follows only Source -> Target edges.
	DirectionOut
	// DirectionIn follows only incoming edges (reverse index).
	DirectionIn
)
