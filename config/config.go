// Package config provides configuration loading and management for the
// Vietnamese knowledge-base pipeline.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the complete pipeline configuration
type Config struct {
	Wikipedia WikipediaConfig `yaml:"wikipedia"`
	SPARQL    SPARQLConfig    `yaml:"sparql"`
	Linker    LinkerConfig    `yaml:"linker"`
	Transform TransformConfig `yaml:"transform"`
	Store     StoreConfig     `yaml:"store"`
	Output    OutputConfig    `yaml:"output"`
}

// WikipediaConfig configures the article collector
type WikipediaConfig struct {
	// APIEndpoint is the MediaWiki API URL
	APIEndpoint string `yaml:"api_endpoint"`
	// Language is the wiki language tag recorded on collected articles
	Language string `yaml:"language"`
	// RateLimit is the sustained request rate in requests/second
	RateLimit float64 `yaml:"rate_limit"`
	// RateBurst is the token-bucket capacity
	RateBurst int `yaml:"rate_burst"`
	// Timeout bounds a single API request
	Timeout time.Duration `yaml:"timeout"`
	// MaxRetries bounds retry attempts for transient failures
	MaxRetries int `yaml:"max_retries"`
	// UserAgent identifies the collector to the API
	UserAgent string `yaml:"user_agent"`
}

// SPARQLConfig configures the remote knowledge-graph endpoint
type SPARQLConfig struct {
	// Endpoint is the read-only SPARQL endpoint URL
	Endpoint string `yaml:"endpoint"`
	// Timeout bounds a single query
	Timeout time.Duration `yaml:"timeout"`
	// MaxRetries bounds retry attempts for transient failures
	MaxRetries int `yaml:"max_retries"`
	// CacheSize caps the in-process query result cache entries
	CacheSize int `yaml:"cache_size"`
}

// LinkerConfig configures entity linking
type LinkerConfig struct {
	// Concurrency is the worker-pool size for batch linking
	Concurrency int `yaml:"concurrency"`
	// MaxCandidates truncates the ranked match list per entity
	MaxCandidates int `yaml:"max_candidates"`
	// SimilarityThreshold is the minimum confidence kept by the
	// similarity-search strategy
	SimilarityThreshold float64 `yaml:"similarity_threshold"`
	// PropertyThreshold is the looser minimum for property-based search
	PropertyThreshold float64 `yaml:"property_threshold"`
	// SameAsThreshold is the confidence at which an owl:sameAs link is
	// emitted instead of rdfs:seeAlso
	SameAsThreshold float64 `yaml:"same_as_threshold"`
}

// TransformConfig configures the RDF transformer
type TransformConfig struct {
	// OntologyPath points to a schema YAML file (empty = built-in schema)
	OntologyPath string `yaml:"ontology_path"`
	// DefaultClass types articles whose class cannot be resolved from
	// the infobox template or categories
	DefaultClass string `yaml:"default_class"`
	// Language tags plain literals produced from article text
	Language string `yaml:"language"`
}

// StoreConfig configures the triple-store gateway
type StoreConfig struct {
	// BaseURL is the store's REST root (e.g. http://localhost:7200)
	BaseURL string `yaml:"base_url"`
	// Repository is the target repository id
	Repository string `yaml:"repository"`
	// Username and Password are optional basic-auth credentials
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	// Timeout bounds a single REST call
	Timeout time.Duration `yaml:"timeout"`
	// Concurrency is the worker-pool size for directory loads
	Concurrency int `yaml:"concurrency"`
}

// OutputConfig configures persisted artifacts
type OutputConfig struct {
	// Dir is the directory for exported files
	Dir string `yaml:"dir"`
	// Format is the default RDF serialization token
	Format string `yaml:"format"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Wikipedia: WikipediaConfig{
			APIEndpoint: "https://vi.wikipedia.org/w/api.php",
			Language:    "vi",
			RateLimit:   2.0,
			RateBurst:   5,
			Timeout:     30 * time.Second,
			MaxRetries:  3,
			UserAgent:   "vikb/1.0 (Vietnamese knowledge-base builder)",
		},
		SPARQL: SPARQLConfig{
			Endpoint:   "https://dbpedia.org/sparql",
			Timeout:    30 * time.Second,
			MaxRetries: 3,
			CacheSize:  1000,
		},
		Linker: LinkerConfig{
			Concurrency:         3,
			MaxCandidates:       10,
			SimilarityThreshold: 0.5,
			PropertyThreshold:   0.4,
			SameAsThreshold:     0.9,
		},
		Transform: TransformConfig{
			OntologyPath: "",
			DefaultClass: "Person",
			Language:     "vi",
		},
		Store: StoreConfig{
			BaseURL:     "http://localhost:7200",
			Repository:  "vietnamese-dbpedia",
			Timeout:     60 * time.Second,
			Concurrency: 3,
		},
		Output: OutputConfig{
			Dir:    "output",
			Format: "turtle",
		},
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if c.Wikipedia.APIEndpoint == "" {
		return fmt.Errorf("wikipedia.api_endpoint is required")
	}
	if c.Wikipedia.RateLimit <= 0 {
		return fmt.Errorf("wikipedia.rate_limit must be positive")
	}
	if c.SPARQL.Endpoint == "" {
		return fmt.Errorf("sparql.endpoint is required")
	}
	if c.Linker.Concurrency < 1 {
		return fmt.Errorf("linker.concurrency must be at least 1")
	}
	if c.Linker.MaxCandidates < 1 {
		return fmt.Errorf("linker.max_candidates must be at least 1")
	}
	if c.Linker.SameAsThreshold < 0 || c.Linker.SameAsThreshold > 1 {
		return fmt.Errorf("linker.same_as_threshold must be between 0 and 1")
	}
	if c.Store.BaseURL == "" {
		return fmt.Errorf("store.base_url is required")
	}
	if c.Store.Repository == "" {
		return fmt.Errorf("store.repository is required")
	}
	if c.Store.Concurrency < 1 {
		return fmt.Errorf("store.concurrency must be at least 1")
	}
	return nil
}

// LoadFromFile loads configuration from a YAML file
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file
func (c *Config) SaveToFile(path string) error {
	// Ensure parent directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Merge merges another config into this one (other takes precedence for non-zero values)
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	// Wikipedia
	if other.Wikipedia.APIEndpoint != "" {
		c.Wikipedia.APIEndpoint = other.Wikipedia.APIEndpoint
	}
	if other.Wikipedia.Language != "" {
		c.Wikipedia.Language = other.Wikipedia.Language
	}
	if other.Wikipedia.RateLimit != 0 {
		c.Wikipedia.RateLimit = other.Wikipedia.RateLimit
	}
	if other.Wikipedia.RateBurst != 0 {
		c.Wikipedia.RateBurst = other.Wikipedia.RateBurst
	}
	if other.Wikipedia.Timeout != 0 {
		c.Wikipedia.Timeout = other.Wikipedia.Timeout
	}
	if other.Wikipedia.MaxRetries != 0 {
		c.Wikipedia.MaxRetries = other.Wikipedia.MaxRetries
	}
	if other.Wikipedia.UserAgent != "" {
		c.Wikipedia.UserAgent = other.Wikipedia.UserAgent
	}

	// SPARQL
	if other.SPARQL.Endpoint != "" {
		c.SPARQL.Endpoint = other.SPARQL.Endpoint
	}
	if other.SPARQL.Timeout != 0 {
		c.SPARQL.Timeout = other.SPARQL.Timeout
	}
	if other.SPARQL.MaxRetries != 0 {
		c.SPARQL.MaxRetries = other.SPARQL.MaxRetries
	}
	if other.SPARQL.CacheSize != 0 {
		c.SPARQL.CacheSize = other.SPARQL.CacheSize
	}

	// Linker
	if other.Linker.Concurrency != 0 {
		c.Linker.Concurrency = other.Linker.Concurrency
	}
	if other.Linker.MaxCandidates != 0 {
		c.Linker.MaxCandidates = other.Linker.MaxCandidates
	}
	if other.Linker.SimilarityThreshold != 0 {
		c.Linker.SimilarityThreshold = other.Linker.SimilarityThreshold
	}
	if other.Linker.PropertyThreshold != 0 {
		c.Linker.PropertyThreshold = other.Linker.PropertyThreshold
	}
	if other.Linker.SameAsThreshold != 0 {
		c.Linker.SameAsThreshold = other.Linker.SameAsThreshold
	}

	// Transform
	if other.Transform.OntologyPath != "" {
		c.Transform.OntologyPath = other.Transform.OntologyPath
	}
	if other.Transform.DefaultClass != "" {
		c.Transform.DefaultClass = other.Transform.DefaultClass
	}
	if other.Transform.Language != "" {
		c.Transform.Language = other.Transform.Language
	}

	// Store
	if other.Store.BaseURL != "" {
		c.Store.BaseURL = other.Store.BaseURL
	}
	if other.Store.Repository != "" {
		c.Store.Repository = other.Store.Repository
	}
	if other.Store.Username != "" {
		c.Store.Username = other.Store.Username
	}
	if other.Store.Password != "" {
		c.Store.Password = other.Store.Password
	}
	if other.Store.Timeout != 0 {
		c.Store.Timeout = other.Store.Timeout
	}
	if other.Store.Concurrency != 0 {
		c.Store.Concurrency = other.Store.Concurrency
	}

	// Output
	if other.Output.Dir != "" {
		c.Output.Dir = other.Output.Dir
	}
	if other.Output.Format != "" {
		c.Output.Format = other.Output.Format
	}
}
