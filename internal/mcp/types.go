package mcp

// --- Tool Arguments ---

type GetTermArgs struct {
	Name string `json:"name" jsonschema:"Exact, case-sensitive term name,required"`
}

type GetTermResult struct {
	Name       string `json:"name,omitempty"`
	Definition string `json:"definition,omitempty"`
	Found      bool   `json:"found"`
}

type SearchTermsArgs struct {
	Prefix string `json:"prefix" jsonschema:"Name prefix to match, case-sensitive,required"`
	Limit  int    `json:"limit,omitempty" jsonschema:"Max number of results (default: all matches)"`
}

type ListAllTermsArgs struct{}

type TermList struct {
	Terms      []TermEntry `json:"terms"`
	TotalCount int         `json:"total_count"`
}

type TermEntry struct {
	Name       string `json:"name"`
	Definition string `json:"definition"`
}

type ListRelationsArgs struct {
	Term  string `json:"term" jsonschema:"Term whose neighborhood to explore,required"`
	Depth int    `json:"depth,omitempty" jsonschema:"Traversal depth in hops (default 1)"`
}

type ListRelationsResult struct {
	Relations  []RelationEntry `json:"relations"`
	TotalCount int             `json:"total_count"`
}

type RelationEntry struct {
	Source string `json:"source_term"`
	Target string `json:"target_term"`
	Type   string `json:"relation_type"`
}

type FindPathArgs struct {
	Source   string `json:"source" jsonschema:"Start term name,required"`
	Target   string `json:"target" jsonschema:"End term name,required"`
	MaxDepth int    `json:"max_depth,omitempty" jsonschema:"Maximum path length in hops (default 10)"`
}

type FindPathResult struct {
	Path       []string `json:"path"`
	PathExists bool     `json:"path_exists"`
	Message    string   `json:"message"`
}

type GraphStatsArgs struct{}
