// Package server implements the GlossGraph HTTP server.
//
// This file defines the Go structs that correspond to the YAML configuration
// file. These structs allow for type-safe parsing of the configuration,
// covering the listen address, the location of the CSV source files, and the
// traversal limits passed down to the engine.

package server

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/sanonone/glossgraph/pkg/engine"
	"github.com/sanonone/glossgraph/pkg/loader"
)

// Config represents the top-level structure of the configuration file.
// Every field has a sensible zero-value default so the file is optional.
type Config struct {
	HTTPAddr  string      `yaml:"http_addr"`
	AuthToken string      `yaml:"auth_token"`
	Data      DataConfig  `yaml:"data"`
	Graph     GraphConfig `yaml:"graph"`
}

// DataConfig defines where the glossary CSV files are read from.
// Dir is resolved with the default file names unless TermsPath/LinksPath
// override them explicitly.
type DataConfig struct {
	Dir       string `yaml:"dir"`
	TermsPath string `yaml:"terms_path"`
	LinksPath string `yaml:"links_path"`
}

// GraphConfig tunes the traversal behavior of the engine.
type GraphConfig struct {
	DefaultRelationDepth int    `yaml:"default_relation_depth"`
	DefaultPathDepth     int    `yaml:"default_path_depth"`
	MaxVisits            int    `yaml:"max_visits"`
	PathDirection        string `yaml:"path_direction"` // "both", "out", "in"
}

// LoadConfig reads and parses the YAML configuration file from the given path.
// It uses Strict Mode (KnownFields) to prevent silent errors due to typos.
// An empty path yields a zero Config, callers fall back to flag defaults.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return &Config{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read configuration file '%s': %w", path, err)
	}

	expandedData := os.ExpandEnv(string(data))

	var config Config
	decoder := yaml.NewDecoder(strings.NewReader(expandedData))
	decoder.KnownFields(true)

	if err := decoder.Decode(&config); err != nil {
		return nil, fmt.Errorf("YAML syntax error in '%s': %w", path, err)
	}

	return &config, nil
}

// EngineOptions translates the graph section into engine options, leaving
// zero values for the engine to clamp to its defaults.
func (c *Config) EngineOptions() (engine.Options, error) {
	opts := engine.DefaultOptions()
	if c.Graph.DefaultRelationDepth > 0 {
		opts.DefaultRelationDepth = c.Graph.DefaultRelationDepth
	}
	if c.Graph.DefaultPathDepth > 0 {
		opts.DefaultPathDepth = c.Graph.DefaultPathDepth
	}
	if c.Graph.MaxVisits > 0 {
		opts.MaxVisits = c.Graph.MaxVisits
	}

	switch c.Graph.PathDirection {
	case "", "both":
		opts.PathDirection = engine.DirectionBoth
	case "out":
		opts.PathDirection = engine.DirectionOut
	case "in":
		opts.PathDirection = engine.DirectionIn
	default:
		return opts, fmt.Errorf("unknown path_direction %q (want both, out or in)", c.Graph.PathDirection)
	}
	return opts, nil
}

// ResolveTermsPath resolves the terms CSV location.
func (c *DataConfig) ResolveTermsPath() string {
	if c.TermsPath != "" {
		return c.TermsPath
	}
	if c.Dir == "" {
		return ""
	}
	return filepath.Join(c.Dir, loader.TermsFile)
}

// ResolveLinksPath resolves the links CSV location.
func (c *DataConfig) ResolveLinksPath() string {
	if c.LinksPath != "" {
		return c.LinksPath
	}
	if c.Dir == "" {
		return ""
	}
	return filepath.Join(c.Dir, loader.LinksFile)
}
