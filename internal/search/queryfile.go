// Copyright SilloVV, 2026. All rights reserved.

package search

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/SilloVV/appel-legifrance-gemini/pkg/types"
)

// QueryFile is the on-disk representation of a search payload and its
// results. A generated payload can be saved to a file and replayed later
// without another model call.
type QueryFile struct {
	// Question is the free-text question the payload was generated from,
	// if any.
	Question string `yaml:"question,omitempty"`

	Query   types.SearchQuery          `yaml:"query"`
	Results []types.SearchResultRecord `yaml:"results,omitempty"`
	Summary QuerySummary               `yaml:"summary"`
}

// QuerySummary stores result statistics and a timestamp.
type QuerySummary struct {
	Total     int       `yaml:"total"`
	Timestamp time.Time `yaml:"timestamp"`
}

// WriteQueryFile saves a question, its generated payload, and the results
// to a YAML file.
func WriteQueryFile(path, question string, query types.SearchQuery, results []types.SearchResultRecord) error {
	qf := QueryFile{
		Question: question,
		Query:    query,
		Results:  results,
		Summary: QuerySummary{
			Total:     len(results),
			Timestamp: time.Now(),
		},
	}

	data, err := yaml.Marshal(&qf)
	if err != nil {
		return fmt.Errorf("marshaling query file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadQueryFile loads a previously saved query file from disk.
func ReadQueryFile(path string) (*QueryFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading query file: %w", err)
	}
	var qf QueryFile
	if err := yaml.Unmarshal(data, &qf); err != nil {
		return nil, fmt.Errorf("parsing query file: %w", err)
	}
	return &qf, nil
}
