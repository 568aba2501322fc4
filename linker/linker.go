package linker

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/c360studio/semstreams/metric"
	"github.com/c360studio/semstreams/pkg/worker"

	"github.com/dbpedia-vi/vikb/config"
	"github.com/dbpedia-vi/vikb/similarity"
	"github.com/dbpedia-vi/vikb/sparql"
)

const dbpediaResource = "http://dbpedia.org/resource/"

// KnowledgeGraph is the read-only remote graph the linker matches
// against.
type KnowledgeGraph interface {
	Select(ctx context.Context, query string) ([]sparql.Binding, error)
	Ask(ctx context.Context, query string) (bool, error)
}

// LanguageLinker resolves a Vietnamese article title to its English
// interwiki counterpart.
type LanguageLinker interface {
	EnglishTitle(ctx context.Context, title string) (string, error)
}

// Stats counts linking outcomes. Buckets are keyed off the best
// confidence per entity: high >= 0.9, medium >= 0.7, low otherwise.
type Stats struct {
	EntitiesProcessed     int `json:"entities_processed"`
	SuccessfulLinks       int `json:"successful_links"`
	FailedLinks           int `json:"failed_links"`
	HighConfidenceLinks   int `json:"high_confidence_links"`
	MediumConfidenceLinks int `json:"medium_confidence_links"`
	LowConfidenceLinks    int `json:"low_confidence_links"`
	CacheHits             int `json:"cache_hits"`
}

// Linker orchestrates the matching strategies. Safe for concurrent use:
// the language-link cache and statistics are mutex-guarded.
type Linker struct {
	kg      KnowledgeGraph
	wiki    LanguageLinker
	cfg     config.LinkerConfig
	logger  *slog.Logger
	metrics *metric.MetricsRegistry
	prom    *linkMetrics

	mu        sync.Mutex
	langCache map[string]*Match // nil entry records a negative lookup
	stats     Stats
}

// Option customizes a Linker.
type Option func(*Linker)

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Linker) { l.logger = logger }
}

// WithMetrics registers linker counters and batch-pool metrics on the
// given registry.
func WithMetrics(registry *metric.MetricsRegistry) Option {
	return func(l *Linker) { l.metrics = registry }
}

// New builds a Linker over a remote knowledge graph and a Wikipedia
// language-link resolver.
func New(kg KnowledgeGraph, wiki LanguageLinker, cfg config.LinkerConfig, opts ...Option) *Linker {
	l := &Linker{
		kg:        kg,
		wiki:      wiki,
		cfg:       cfg,
		logger:    slog.Default(),
		langCache: make(map[string]*Match),
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.metrics != nil {
		l.prom = newLinkMetrics(l.metrics)
	}
	return l
}

// FindMatches runs all strategies for one Vietnamese entity name and
// returns the ranked candidate list. entityType is an optional coarse
// hint ("Person", "Place", "Organization") that narrows similarity
// search. Strategy failures degrade the result, never abort it.
func (l *Linker) FindMatches(ctx context.Context, name, entityType string) []Match {
	var matches []Match

	if m := l.directMapping(ctx, name); m != nil {
		matches = append(matches, *m)
	}
	matches = append(matches, l.languageLink(ctx, name)...)
	matches = append(matches, l.similaritySearch(ctx, name, entityType)...)
	matches = append(matches, l.propertySearch(ctx, name)...)

	matches = Deduplicate(matches)
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Confidence > matches[j].Confidence
	})
	if len(matches) > l.cfg.MaxCandidates {
		matches = matches[:l.cfg.MaxCandidates]
	}

	l.recordOutcome(matches)
	l.prom.observe(matches)
	return matches
}

// LinkBatch links many entities concurrently over a bounded worker
// pool. Results are keyed by entity name; entities with no matches map
// to an empty slice.
func (l *Linker) LinkBatch(ctx context.Context, names []string) map[string][]Match {
	results := make(map[string][]Match, len(names))
	var resultsMu sync.Mutex

	var poolOpts []worker.Option[string]
	if l.metrics != nil {
		poolOpts = append(poolOpts, worker.WithMetricsRegistry[string](l.metrics, "linker"))
	}
	pool := worker.NewPool(l.cfg.Concurrency, len(names), func(ctx context.Context, name string) error {
		matches := l.FindMatches(ctx, name, "")
		resultsMu.Lock()
		results[name] = matches
		resultsMu.Unlock()
		return nil
	}, poolOpts...)

	if err := pool.Start(ctx); err != nil {
		l.logger.Error("linking pool failed to start", "error", err)
		return results
	}
	for _, name := range names {
		if err := pool.Submit(name); err != nil {
			l.logger.Warn("linking submit failed", "entity", name, "error", err)
		}
	}
	if err := pool.Stop(10 * time.Minute); err != nil {
		l.logger.Error("linking pool did not drain", "error", err)
	}

	return results
}

// directMapping consults the curated dictionary and confirms the
// English label against the remote graph.
func (l *Linker) directMapping(ctx context.Context, name string) *Match {
	english, ok := nameMappings[name]
	if !ok {
		return nil
	}

	query := fmt.Sprintf(`PREFIX rdfs: <http://www.w3.org/2000/01/rdf-schema#>
SELECT DISTINCT ?entity WHERE {
    ?entity rdfs:label %q@en .
} LIMIT 1`, english)

	rows, err := l.kg.Select(ctx, query)
	if err != nil {
		l.logger.Warn("direct mapping query failed", "entity", name, "error", err)
		return nil
	}
	if len(rows) == 0 {
		return nil
	}

	return &Match{
		SourceEntity:     name,
		TargetEntity:     english,
		TargetURI:        rows[0]["entity"],
		Confidence:       0.95,
		SimilarityScores: map[string]float64{MethodDirectMapping: 1.0},
		Method:           MethodDirectMapping,
		Metadata:         map[string]string{"predefined": "true"},
	}
}

// languageLink resolves the interwiki link, derives the resource URI by
// title convention, and verifies it exists. Both positive and negative
// outcomes are cached for the process lifetime.
func (l *Linker) languageLink(ctx context.Context, name string) []Match {
	l.mu.Lock()
	cached, seen := l.langCache[name]
	if seen {
		l.stats.CacheHits++
	}
	l.mu.Unlock()
	if seen {
		if cached == nil {
			return nil
		}
		return []Match{*cached}
	}

	match := l.lookupLanguageLink(ctx, name)
	l.mu.Lock()
	l.langCache[name] = match
	l.mu.Unlock()

	if match == nil {
		return nil
	}
	return []Match{*match}
}

func (l *Linker) lookupLanguageLink(ctx context.Context, name string) *Match {
	title, err := l.wiki.EnglishTitle(ctx, name)
	if err != nil {
		l.logger.Warn("language link lookup failed", "entity", name, "error", err)
		return nil
	}
	if title == "" {
		return nil
	}

	uri := dbpediaResource + strings.ReplaceAll(title, " ", "_")
	exists, err := l.kg.Ask(ctx, fmt.Sprintf("ASK WHERE { <%s> ?p ?o . }", uri))
	if err != nil {
		l.logger.Warn("language link verification failed", "uri", uri, "error", err)
		return nil
	}
	if !exists {
		return nil
	}

	return &Match{
		SourceEntity:     name,
		TargetEntity:     title,
		TargetURI:        uri,
		Confidence:       0.90,
		SimilarityScores: map[string]float64{MethodLanguageLink: 1.0},
		Method:           MethodLanguageLink,
		Metadata:         map[string]string{"wikipedia_link": "true"},
	}
}

// similaritySearch scores label-containment results for each generated
// English candidate against the original Vietnamese name.
func (l *Linker) similaritySearch(ctx context.Context, name, entityType string) []Match {
	var matches []Match
	for _, candidate := range englishCandidates(name) {
		rows, err := l.searchByLabel(ctx, candidate, entityType)
		if err != nil {
			l.logger.Warn("similarity search failed", "candidate", candidate, "error", err)
			continue
		}
		for _, row := range rows {
			scores, confidence := similarity.Compare(name, row["label"])
			if confidence < l.cfg.SimilarityThreshold {
				continue
			}
			matches = append(matches, Match{
				SourceEntity:     name,
				TargetEntity:     row["label"],
				TargetURI:        row["entity"],
				Confidence:       confidence,
				SimilarityScores: scores,
				Method:           MethodSimilarity,
				Metadata:         map[string]string{"candidate": candidate},
			})
		}
	}
	return matches
}

// propertySearch is the loose last-resort strategy: a broad label
// search on the first token of the name with a lower keep threshold.
func (l *Linker) propertySearch(ctx context.Context, name string) []Match {
	tokens := strings.Fields(name)
	if len(tokens) == 0 {
		return nil
	}

	query := fmt.Sprintf(`PREFIX rdfs: <http://www.w3.org/2000/01/rdf-schema#>
SELECT DISTINCT ?entity ?label WHERE {
    ?entity rdfs:label ?label .
    FILTER(CONTAINS(LCASE(STR(?label)), LCASE(%q)))
    FILTER(LANG(?label) = "en")
} LIMIT 20`, tokens[0])

	rows, err := l.kg.Select(ctx, query)
	if err != nil {
		l.logger.Warn("property search failed", "entity", name, "error", err)
		return nil
	}

	var matches []Match
	for _, row := range rows {
		scores, confidence := similarity.Compare(name, row["label"])
		if confidence < l.cfg.PropertyThreshold {
			continue
		}
		matches = append(matches, Match{
			SourceEntity:     name,
			TargetEntity:     row["label"],
			TargetURI:        row["entity"],
			Confidence:       confidence,
			SimilarityScores: scores,
			Method:           MethodProperty,
			Metadata:         map[string]string{"sparql_query": "true"},
		})
	}
	return matches
}

// searchByLabel issues the containment search that backs the
// similarity strategy, optionally narrowed by entity type.
func (l *Linker) searchByLabel(ctx context.Context, term, entityType string) ([]sparql.Binding, error) {
	typeFilter := ""
	switch entityType {
	case "Person":
		typeFilter = "?entity a dbo:Person ."
	case "Place":
		typeFilter = "?entity a dbo:Place ."
	case "Organization":
		typeFilter = "?entity a dbo:Organisation ."
	}

	query := fmt.Sprintf(`PREFIX rdfs: <http://www.w3.org/2000/01/rdf-schema#>
PREFIX dbo: <http://dbpedia.org/ontology/>
SELECT DISTINCT ?entity ?label WHERE {
    ?entity rdfs:label ?label .
    %s
    FILTER(CONTAINS(LCASE(STR(?label)), LCASE(%q)))
    FILTER(LANG(?label) = "en")
    FILTER(!CONTAINS(STR(?entity), "vi.dbpedia.org"))
    FILTER(STRSTARTS(STR(?entity), "http://dbpedia.org/resource/"))
} LIMIT 10`, typeFilter, term)

	return l.kg.Select(ctx, query)
}

// recordOutcome folds one entity's result into the statistics.
func (l *Linker) recordOutcome(matches []Match) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.stats.EntitiesProcessed++
	if len(matches) == 0 {
		l.stats.FailedLinks++
		return
	}
	l.stats.SuccessfulLinks++
	switch best := matches[0].Confidence; {
	case best >= 0.9:
		l.stats.HighConfidenceLinks++
	case best >= 0.7:
		l.stats.MediumConfidenceLinks++
	default:
		l.stats.LowConfidenceLinks++
	}
}

// Stats returns a snapshot of the linking statistics.
func (l *Linker) Stats() Stats {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.stats
}
