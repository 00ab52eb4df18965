package engine

import (
	"sort"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
	"gonum.org/v1/gonum/stat"
)

// TermDegree pairs a term name with its undirected degree (outgoing plus
// incoming relations to known terms).
type TermDegree struct {
	Name   string `json:"name"`
	Degree int    `json:"degree"`
}

// GraphStats summarizes the shape of the loaded graph: size, relation type
// mix, hub terms, and connectivity.
type GraphStats struct {
	Terms         int            `json:"terms"`
	Relations     int            `json:"relations"`
	RelationTypes map[string]int `json:"relation_types"`
	TopDegree     []TermDegree   `json:"top_degree"`
	MeanDegree    float64        `json:"mean_degree"`
	MaxDegree     int            `json:"max_degree"`
	Components    int            `json:"components"`
	Isolated      []string       `json:"isolated"`
}

// topDegreeCount is how many hub terms Stats reports.
const topDegreeCount = 5

// Stats computes graph statistics over the current snapshot. Relations with a
// dangling endpoint are counted in Relations and RelationTypes but excluded
// from degree and connectivity figures, which only cover indexed terms.
func (e *Engine) Stats() GraphStats {
	snap := e.snap.Load()

	st := GraphStats{
		Terms:         len(snap.order),
		Relations:     snap.relCount,
		RelationTypes: make(map[string]int),
		Isolated:      []string{},
		TopDegree:     []TermDegree{},
	}

	ids := make(map[string]int64, len(snap.order))
	g := simple.NewUndirectedGraph()
	for i, t := range snap.order {
		ids[t.Name] = int64(i)
		g.AddNode(simple.Node(int64(i)))
	}

	degrees := make(map[string]int, len(snap.order))
	for _, edges := range snap.fwd {
		for _, edge := range edges {
			st.RelationTypes[edge.Type]++

			src, okS := ids[edge.Source]
			dst, okT := ids[edge.Target]
			if !okS || !okT {
				continue
			}
			degrees[edge.Source]++
			degrees[edge.Target]++
			if src != dst {
				g.SetEdge(simple.Edge{F: simple.Node(src), T: simple.Node(dst)})
			}
		}
	}

	if len(snap.order) == 0 {
		return st
	}

	degreeValues := make([]float64, 0, len(snap.order))
	ranked := make([]TermDegree, 0, len(snap.order))
	for _, t := range snap.order {
		d := degrees[t.Name]
		degreeValues = append(degreeValues, float64(d))
		ranked = append(ranked, TermDegree{Name: t.Name, Degree: d})
		if d == 0 {
			st.Isolated = append(st.Isolated, t.Name)
		}
		if d > st.MaxDegree {
			st.MaxDegree = d
		}
	}
	st.MeanDegree = stat.Mean(degreeValues, nil)
	sort.Strings(st.Isolated)

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Degree != ranked[j].Degree {
			return ranked[i].Degree > ranked[j].Degree
		}
		return ranked[i].Name < ranked[j].Name
	})
	if len(ranked) > topDegreeCount {
		ranked = ranked[:topDegreeCount]
	}
	st.TopDegree = ranked

	st.Components = len(topo.ConnectedComponents(g))
	return st
}
