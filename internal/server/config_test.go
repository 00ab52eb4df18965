package server

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanonone/glossgraph/pkg/engine"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
http_addr: ":8099"
auth_token: "secret"
data:
  dir: /srv/glossary
graph:
  default_path_depth: 4
  path_direction: out
`), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, ":8099", cfg.HTTPAddr)
	assert.Equal(t, "secret", cfg.AuthToken)
	assert.Equal(t, "/srv/glossary/terms.csv", cfg.Data.ResolveTermsPath())
	assert.Equal(t, "/srv/glossary/links.csv", cfg.Data.ResolveLinksPath())

	opts, err := cfg.EngineOptions()
	require.NoError(t, err)
	assert.Equal(t, 4, opts.DefaultPathDepth)
	assert.Equal(t, 1, opts.DefaultRelationDepth) // untouched default
	assert.Equal(t, engine.DirectionOut, opts.PathDirection)
}

func TestLoadConfigEmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Empty(t, cfg.Data.ResolveTermsPath())
}

func TestLoadConfigRejectsUnknownFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("http_adr: ':1'\n"), 0o644))

	_, err := LoadConfig(path)
	assert.Error(t, err, "typos must not pass silently")
}

func TestEngineOptionsRejectsBadDirection(t *testing.T) {
	cfg := &Config{Graph: GraphConfig{PathDirection: "sideways"}}
	_, err := cfg.EngineOptions()
	assert.ErrorContains(t, err, "path_direction")
}
