package mcp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanonone/glossgraph/pkg/engine"
)

func testService(t *testing.T) *Service {
	t.Helper()

	eng := engine.New(engine.DefaultOptions())
	err := eng.Load(
		[]engine.Term{
			{Name: "cat", Definition: "a small feline"},
			{Name: "animal", Definition: "a living organism"},
			{Name: "pet", Definition: "a domesticated companion"},
		},
		[]engine.Relation{
			{Source: "cat", Target: "animal", Type: "is-a"},
			{Source: "cat", Target: "pet", Type: "is-a"},
		},
	)
	require.NoError(t, err)
	return NewService(eng)
}

func TestGetTermTool(t *testing.T) {
	svc := testService(t)

	_, res, err := svc.GetTerm(context.Background(), nil, GetTermArgs{Name: "cat"})
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, "a small feline", res.Definition)

	_, res, err = svc.GetTerm(context.Background(), nil, GetTermArgs{Name: "ghost"})
	require.NoError(t, err, "a miss is a result, not an error")
	assert.False(t, res.Found)

	_, _, err = svc.GetTerm(context.Background(), nil, GetTermArgs{})
	assert.Error(t, err)
}

func TestSearchTermsTool(t *testing.T) {
	svc := testService(t)

	_, res, err := svc.SearchTerms(context.Background(), nil, SearchTermsArgs{Prefix: "an"})
	require.NoError(t, err)
	require.Equal(t, 1, res.TotalCount)
	assert.Equal(t, "animal", res.Terms[0].Name)
}

func TestListAllTermsTool(t *testing.T) {
	svc := testService(t)

	_, res, err := svc.ListAllTerms(context.Background(), nil, ListAllTermsArgs{})
	require.NoError(t, err)
	assert.Equal(t, 3, res.TotalCount)
}

func TestListRelationsTool(t *testing.T) {
	svc := testService(t)

	_, res, err := svc.ListRelations(context.Background(), nil, ListRelationsArgs{Term: "cat"})
	require.NoError(t, err)
	require.Equal(t, 2, res.TotalCount)
	assert.Equal(t, "is-a", res.Relations[0].Type)

	// Unknown terms yield an empty, JSON-friendly list.
	_, res, err = svc.ListRelations(context.Background(), nil, ListRelationsArgs{Term: "ghost"})
	require.NoError(t, err)
	assert.Equal(t, 0, res.TotalCount)
	assert.NotNil(t, res.Relations)
}

func TestFindPathTool(t *testing.T) {
	svc := testService(t)

	_, res, err := svc.FindPath(context.Background(), nil, FindPathArgs{Source: "animal", Target: "pet"})
	require.NoError(t, err)
	assert.True(t, res.PathExists)
	assert.Equal(t, []string{"animal", "cat", "pet"}, res.Path)
}

func TestGraphStatsTool(t *testing.T) {
	svc := testService(t)

	_, res, err := svc.GraphStats(context.Background(), nil, GraphStatsArgs{})
	require.NoError(t, err)
	assert.Equal(t, 3, res.Terms)
	assert.Equal(t, 2, res.Relations)
}
