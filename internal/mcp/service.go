package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/sanonone/glossgraph/pkg/engine"
)

type Service struct {
	engine *engine.Engine
}

func NewService(eng *engine.Engine) *Service {
	return &Service{engine: eng}
}

// --- Tool Handlers ---

func (s *Service) GetTerm(ctx context.Context, req *mcp.CallToolRequest, args GetTermArgs) (*mcp.CallToolResult, GetTermResult, error) {
	term, found, err := s.engine.GetTerm(args.Name)
	if err != nil {
		return nil, GetTermResult{}, err
	}
	if !found {
		// A miss is a result, not an error: the agent can react to it.
		return nil, GetTermResult{Found: false}, nil
	}
	return nil, GetTermResult{
		Name:       term.Name,
		Definition: term.Definition,
		Found:      true,
	}, nil
}

func (s *Service) SearchTerms(ctx context.Context, req *mcp.CallToolRequest, args SearchTermsArgs) (*mcp.CallToolResult, TermList, error) {
	terms, total := s.engine.SearchTerms(args.Prefix, args.Limit)
	return nil, termList(terms, total), nil
}

func (s *Service) ListAllTerms(ctx context.Context, req *mcp.CallToolRequest, args ListAllTermsArgs) (*mcp.CallToolResult, TermList, error) {
	terms, total := s.engine.ListAllTerms()
	return nil, termList(terms, total), nil
}

func (s *Service) ListRelations(ctx context.Context, req *mcp.CallToolRequest, args ListRelationsArgs) (*mcp.CallToolResult, ListRelationsResult, error) {
	relations, total, err := s.engine.ListRelations(args.Term, args.Depth)
	if err != nil {
		return nil, ListRelationsResult{}, err
	}

	out := ListRelationsResult{
		Relations:  make([]RelationEntry, 0, len(relations)),
		TotalCount: total,
	}
	for _, rel := range relations {
		out.Relations = append(out.Relations, RelationEntry{
			Source: rel.Source,
			Target: rel.Target,
			Type:   rel.Type,
		})
	}
	return nil, out, nil
}

func (s *Service) FindPath(ctx context.Context, req *mcp.CallToolRequest, args FindPathArgs) (*mcp.CallToolResult, FindPathResult, error) {
	res, err := s.engine.FindPath(args.Source, args.Target, args.MaxDepth)
	if err != nil {
		return nil, FindPathResult{}, err
	}
	return nil, FindPathResult{
		Path:       res.Path,
		PathExists: res.Exists,
		Message:    res.Message,
	}, nil
}

func (s *Service) GraphStats(ctx context.Context, req *mcp.CallToolRequest, args GraphStatsArgs) (*mcp.CallToolResult, engine.GraphStats, error) {
	return nil, s.engine.Stats(), nil
}

func termList(terms []engine.Term, total int) TermList {
	out := TermList{
		Terms:      make([]TermEntry, 0, len(terms)),
		TotalCount: total,
	}
	for _, t := range terms {
		out.Terms = append(out.Terms, TermEntry{Name: t.Name, Definition: t.Definition})
	}
	return out
}
