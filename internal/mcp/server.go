// Package mcp exposes the glossary graph as Model Context Protocol tools,
// so LLM agents can look up terms and walk their relations over stdio.
package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/sanonone/glossgraph/pkg/engine"
)

func NewMCPServer(eng *engine.Engine) *mcp.Server {
	service := NewService(eng)

	// Create Server instance
	s := mcp.NewServer(&mcp.Implementation{
		Name:    "GlossGraph",
		Version: "0.2.0",
	}, nil) // Options can be nil for default

	// Register Tools using the Generic AddTool which inspects structs!

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_term",
		Description: "Look up a glossary term by exact name and return its definition.",
	}, service.GetTerm)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "search_terms",
		Description: "Find glossary terms whose name starts with a given prefix.",
	}, service.SearchTerms)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "list_all_terms",
		Description: "List every term in the glossary with its definition.",
	}, service.ListAllTerms)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "list_relations",
		Description: "Explore the typed relations around a term up to a given depth (e.g. what 'cat' is-a or part-of).",
	}, service.ListRelations)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "find_path",
		Description: "Discover how two terms are connected in the glossary graph (shortest chain of relations).",
	}, service.FindPath)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "graph_stats",
		Description: "Summarize the glossary graph: size, relation type mix, hub terms, connectivity.",
	}, service.GraphStats)

	return s
}
