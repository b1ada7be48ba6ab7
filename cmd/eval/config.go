package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/mpavlovic/retrieval-eval/internal/eval/plan"
)

type cliConfig struct {
	PlanPath   string
	Queries    string
	Qrels      string
	Documents  string
	Stopwords  string
	Analyzers  string
	MaxResults int
	Output     string
}

func parseFlags() cliConfig {
	cfg := cliConfig{}

	flag.StringVar(&cfg.PlanPath, "plan", "", "Path to run plan YAML (overrides the quick-mode flags)")
	flag.StringVar(&cfg.Queries, "queries", "", "Path to the tab-separated query file (quick mode)")
	flag.StringVar(&cfg.Qrels, "qrels", "", "Path to the qrels file (quick mode)")
	flag.StringVar(&cfg.Documents, "documents", "", "Path to the document collection file (quick mode)")
	flag.StringVar(&cfg.Stopwords, "stopwords", "", "Path to the custom stopword file (quick mode)")
	flag.StringVar(&cfg.Analyzers, "analyzers", "standard,whitespace,english", "Memory-engine analyzers to compare, comma-separated (quick mode)")
	flag.IntVar(&cfg.MaxResults, "max-results", plan.DefaultMaxResults, "Maximum number of results scored per query")
	flag.StringVar(&cfg.Output, "output", "", "Output path for the JSON report")

	flag.Parse()
	return cfg
}

// buildPlan either loads the plan file or assembles a quick-mode plan
// with one memory engine per requested analyzer.
func buildPlan(cfg cliConfig) (*plan.Plan, error) {
	if cfg.PlanPath != "" {
		return plan.LoadFromFile(cfg.PlanPath)
	}

	if cfg.Queries == "" || cfg.Qrels == "" || cfg.Documents == "" {
		return nil, fmt.Errorf("quick mode requires -queries, -qrels and -documents")
	}

	p := &plan.Plan{
		Name: "quick",
		Corpus: plan.CorpusConfig{
			Queries:   cfg.Queries,
			Qrels:     cfg.Qrels,
			Documents: cfg.Documents,
			Stopwords: cfg.Stopwords,
		},
		MaxResults: cfg.MaxResults,
		Output:     cfg.Output,
	}

	for _, name := range strings.Split(cfg.Analyzers, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		p.Engines = append(p.Engines, plan.Engine{
			Name:     name,
			Type:     plan.TypeMemory,
			Analyzer: name,
		})
	}

	if err := plan.Validate(p); err != nil {
		return nil, err
	}
	return p, nil
}
