// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/edsu/idloc/pkg/types"
)

// QueryFile is the on-disk representation of a search and its results.
// A search can be saved to a file and reloaded later without
// re-querying the service.
type QueryFile struct {
	Query   QueryParams          `yaml:"query"`
	Results []types.SearchResult `yaml:"results"`
	Summary QuerySummary         `yaml:"summary"`
}

// QueryParams stores the query parameters in a serializable form.
type QueryParams struct {
	Text           string   `yaml:"text"`
	ConceptSchemes []string `yaml:"concept_schemes,omitempty"`
	Limit          int      `yaml:"limit"`
}

// QuerySummary stores result statistics and a timestamp.
type QuerySummary struct {
	Total       int       `yaml:"total"`
	SkippedRows int       `yaml:"skipped_rows,omitempty"`
	Timestamp   time.Time `yaml:"timestamp"`
}

// WriteQueryFile saves the query and its results to a YAML file.
func WriteQueryFile(path string, query Query, results []types.SearchResult, skipped int) error {
	qf := QueryFile{
		Query: QueryParams{
			Text:           query.Text,
			ConceptSchemes: query.ConceptSchemes,
			Limit:          query.Limit,
		},
		Results: results,
		Summary: QuerySummary{
			Total:       len(results),
			SkippedRows: skipped,
			Timestamp:   time.Now().UTC(),
		},
	}

	data, err := yaml.Marshal(qf)
	if err != nil {
		return fmt.Errorf("marshaling query file: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing query file: %w", err)
	}
	return nil
}

// ReadQueryFile loads a previously saved query file.
func ReadQueryFile(path string) (QueryFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return QueryFile{}, fmt.Errorf("reading query file: %w", err)
	}
	var qf QueryFile
	if err := yaml.Unmarshal(data, &qf); err != nil {
		return QueryFile{}, fmt.Errorf("parsing query file %s: %w", path, err)
	}
	return qf, nil
}
