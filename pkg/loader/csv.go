// Package loader reads glossary source data from CSV files into batches
// ready for engine.Load.
//
// Two files describe a graph: terms.csv ("term,definition" header) holds the
// nodes, links.csv ("source,target,relation" header) holds the edges. Headers
// are matched by column name, so column order does not matter.
package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sanonone/glossgraph/pkg/engine"
)

// Default file names resolved by LoadDir.
const (
	TermsFile = "terms.csv"
	LinksFile = "links.csv"
)

// LoadTerms reads a terms CSV file. Required columns: "term", "definition".
// Rows with an empty term name are rejected so a bad file never half-loads.
func LoadTerms(path string) ([]engine.Term, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open terms file: %w", err)
	}
	defer f.Close()

	terms, err := ReadTerms(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return terms, nil
}

// ReadTerms parses terms CSV from a reader.
func ReadTerms(r io.Reader) ([]engine.Term, error) {
	rows, cols, err := readCSV(r, "term", "definition")
	if err != nil {
		return nil, err
	}

	terms := make([]engine.Term, 0, len(rows))
	for i, row := range rows {
		name := row[cols["term"]]
		if name == "" {
			return nil, fmt.Errorf("row %d: empty term name", i+2)
		}
		terms = append(terms, engine.Term{
			Name:       name,
			Definition: row[cols["definition"]],
		})
	}
	return terms, nil
}

// LoadRelations reads a links CSV file.
// Required columns: "source", "target", "relation".
func LoadRelations(path string) ([]engine.Relation, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open links file: %w", err)
	}
	defer f.Close()

	relations, err := ReadRelations(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return relations, nil
}

// ReadRelations parses links CSV from a reader.
func ReadRelations(r io.Reader) ([]engine.Relation, error) {
	rows, cols, err := readCSV(r, "source", "target", "relation")
	if err != nil {
		return nil, err
	}

	relations := make([]engine.Relation, 0, len(rows))
	for i, row := range rows {
		rel := engine.Relation{
			Source: row[cols["source"]],
			Target: row[cols["target"]],
			Type:   row[cols["relation"]],
		}
		if rel.Source == "" || rel.Target == "" {
			return nil, fmt.Errorf("row %d: empty source or target", i+2)
		}
		relations = append(relations, rel)
	}
	return relations, nil
}

// LoadDir resolves terms.csv and links.csv inside dir and loads both.
func LoadDir(dir string) ([]engine.Term, []engine.Relation, error) {
	terms, err := LoadTerms(filepath.Join(dir, TermsFile))
	if err != nil {
		return nil, nil, err
	}
	relations, err := LoadRelations(filepath.Join(dir, LinksFile))
	if err != nil {
		return nil, nil, err
	}
	return terms, relations, nil
}

// readCSV consumes the whole input, maps the required header columns by name
// and returns the data rows. Extra columns are ignored.
func readCSV(r io.Reader, required ...string) ([][]string, map[string]int, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil, fmt.Errorf("missing header row")
	}
	if err != nil {
		return nil, nil, fmt.Errorf("read header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}
	for _, name := range required {
		if _, ok := cols[name]; !ok {
			return nil, nil, fmt.Errorf("missing required column %q", name)
		}
	}

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("read rows: %w", err)
	}
	return rows, cols, nil
}
