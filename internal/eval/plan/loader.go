package plan

import (
	"fmt"
	"os"

	"github.com/mpavlovic/retrieval-eval/internal/apperr"
	"gopkg.in/yaml.v3"
)

func LoadFromFile(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read plan file: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a plan document. YAML is a superset of
// JSON, so JSON bodies parse here too.
func Parse(data []byte) (*Plan, error) {
	var p Plan
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse plan YAML: %w", err)
	}
	if err := Validate(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

var validEngineTypes = map[string]bool{
	TypeMemory:        true,
	TypeElasticsearch: true,
	TypePostgres:      true,
}

// Validate checks a plan and applies defaults. Exposed so callers that
// assemble plans programmatically get the same checks as Parse.
func Validate(p *Plan) error {
	if p.Corpus.Queries == "" {
		return apperr.NewValidation("plan has no query file")
	}
	if p.Corpus.Qrels == "" {
		return apperr.NewValidation("plan has no qrels file")
	}
	if len(p.Engines) == 0 {
		return apperr.NewValidation("plan has no engines")
	}

	seen := make(map[string]bool, len(p.Engines))
	for i, eng := range p.Engines {
		if eng.Name == "" {
			return apperr.NewValidation(fmt.Sprintf("engine at index %d has no name", i))
		}
		if seen[eng.Name] {
			return apperr.NewValidation(fmt.Sprintf("duplicate engine name %q", eng.Name))
		}
		seen[eng.Name] = true

		if !validEngineTypes[eng.Type] {
			return apperr.NewValidation(fmt.Sprintf("engine %q has invalid type %q", eng.Name, eng.Type))
		}

		switch eng.Type {
		case TypeMemory:
			if eng.Analyzer == "" {
				return apperr.NewValidation(fmt.Sprintf("memory engine %q has no analyzer", eng.Name))
			}
			if p.Corpus.Documents == "" {
				return apperr.NewValidation(fmt.Sprintf("memory engine %q requires a document collection", eng.Name))
			}
		case TypeElasticsearch, TypePostgres:
			if eng.Connection == "" {
				return apperr.NewValidation(fmt.Sprintf("engine %q has no connection", eng.Name))
			}
		}
	}

	if p.MaxResults <= 0 {
		p.MaxResults = DefaultMaxResults
	}
	return nil
}
