// Package plan loads and validates the YAML document describing one
// evaluation run: where the corpus lives, which engine configurations
// to score, and where the report goes.
package plan

type Plan struct {
	Name       string       `yaml:"name"`
	Corpus     CorpusConfig `yaml:"corpus"`
	Engines    []Engine     `yaml:"engines"`
	MaxResults int          `yaml:"max_results,omitempty"`
	Output     string       `yaml:"output,omitempty"`
}

type CorpusConfig struct {
	Queries   string `yaml:"queries"`
	Qrels     string `yaml:"qrels"`
	Documents string `yaml:"documents,omitempty"`
	Stopwords string `yaml:"stopwords,omitempty"`
}

// Engine is one retrieval configuration under evaluation. Memory
// engines index the collection in-process with the named analyzer;
// elasticsearch and postgres engines query an already-indexed remote
// store.
type Engine struct {
	Name       string `yaml:"name"`
	Type       string `yaml:"type"`
	Analyzer   string `yaml:"analyzer,omitempty"`
	Connection string `yaml:"connection,omitempty"`
	Index      string `yaml:"index,omitempty"`
}

const (
	TypeMemory        = "memory"
	TypeElasticsearch = "elasticsearch"
	TypePostgres      = "postgres"
)

const DefaultMaxResults = 1000
