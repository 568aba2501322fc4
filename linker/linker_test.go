package linker

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/c360studio/semstreams/metric"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dbpedia-vi/vikb/config"
	"github.com/dbpedia-vi/vikb/rdf"
	"github.com/dbpedia-vi/vikb/sparql"
)

type stubGraph struct {
	mu      sync.Mutex
	selects int
	asks    int

	selectFn func(query string) ([]sparql.Binding, error)
	askFn    func(query string) (bool, error)
}

func (s *stubGraph) Select(_ context.Context, query string) ([]sparql.Binding, error) {
	s.mu.Lock()
	s.selects++
	s.mu.Unlock()
	if s.selectFn == nil {
		return nil, nil
	}
	return s.selectFn(query)
}

func (s *stubGraph) Ask(_ context.Context, query string) (bool, error) {
	s.mu.Lock()
	s.asks++
	s.mu.Unlock()
	if s.askFn == nil {
		return false, nil
	}
	return s.askFn(query)
}

type stubWiki struct {
	mu     sync.Mutex
	calls  int
	titles map[string]string
}

func (s *stubWiki) EnglishTitle(_ context.Context, title string) (string, error) {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()
	return s.titles[title], nil
}

func newTestLinker(kg KnowledgeGraph, wiki LanguageLinker) *Linker {
	return New(kg, wiki, config.DefaultConfig().Linker)
}

func TestDirectMapping(t *testing.T) {
	kg := &stubGraph{
		selectFn: func(query string) ([]sparql.Binding, error) {
			if strings.Contains(query, `"Ho Chi Minh"@en`) {
				return []sparql.Binding{{"entity": "http://dbpedia.org/resource/Ho_Chi_Minh"}}, nil
			}
			return nil, nil
		},
	}
	l := newTestLinker(kg, &stubWiki{})

	matches := l.FindMatches(context.Background(), "Hồ Chí Minh", "Person")
	require.NotEmpty(t, matches)

	best := matches[0]
	assert.Equal(t, MethodDirectMapping, best.Method)
	assert.Equal(t, "http://dbpedia.org/resource/Ho_Chi_Minh", best.TargetURI)
	assert.Equal(t, 0.95, best.Confidence)
	assert.Equal(t, 1.0, best.SimilarityScores[MethodDirectMapping])
}

func TestMetricsCounters(t *testing.T) {
	kg := &stubGraph{
		selectFn: func(query string) ([]sparql.Binding, error) {
			if strings.Contains(query, `"Ho Chi Minh"@en`) {
				return []sparql.Binding{{"entity": "http://dbpedia.org/resource/Ho_Chi_Minh"}}, nil
			}
			return nil, nil
		},
	}
	l := New(kg, &stubWiki{}, config.DefaultConfig().Linker,
		WithMetrics(metric.NewMetricsRegistry()))
	require.NotNil(t, l.prom)

	l.FindMatches(context.Background(), "Hồ Chí Minh", "Person")

	assert.Equal(t, 1.0, testutil.ToFloat64(l.prom.entities))
	assert.Equal(t, 1.0, testutil.ToFloat64(l.prom.matches.WithLabelValues(MethodDirectMapping)))
}

func TestLanguageLinkVerifiedAndCached(t *testing.T) {
	kg := &stubGraph{
		askFn: func(query string) (bool, error) {
			return strings.Contains(query, "Da_Nang_FC"), nil
		},
	}
	wiki := &stubWiki{titles: map[string]string{"CLB Đà Nẵng": "Da Nang FC"}}
	l := newTestLinker(kg, wiki)

	matches := l.FindMatches(context.Background(), "CLB Đà Nẵng", "")
	require.NotEmpty(t, matches)
	assert.Equal(t, MethodLanguageLink, matches[0].Method)
	assert.Equal(t, "http://dbpedia.org/resource/Da_Nang_FC", matches[0].TargetURI)
	assert.Equal(t, 0.90, matches[0].Confidence)

	// Second lookup for the same name is served from the cache.
	l.FindMatches(context.Background(), "CLB Đà Nẵng", "")
	assert.Equal(t, 1, wiki.calls)
	assert.Equal(t, 1, l.Stats().CacheHits)
}

func TestLanguageLinkNegativeCached(t *testing.T) {
	wiki := &stubWiki{titles: map[string]string{}}
	l := newTestLinker(&stubGraph{}, wiki)

	assert.Empty(t, l.FindMatches(context.Background(), "Làng Vũ Đại", ""))
	assert.Empty(t, l.FindMatches(context.Background(), "Làng Vũ Đại", ""))
	assert.Equal(t, 1, wiki.calls)
}

func TestSimilaritySearchThreshold(t *testing.T) {
	kg := &stubGraph{
		selectFn: func(query string) ([]sparql.Binding, error) {
			if !strings.Contains(query, "CONTAINS") || strings.Contains(query, "LIMIT 20") {
				return nil, nil
			}
			return []sparql.Binding{
				{"entity": "http://dbpedia.org/resource/Hanoi", "label": "Hanoi"},
				{"entity": "http://dbpedia.org/resource/Handball", "label": "Competitive handball refereeing"},
			}, nil
		},
	}
	l := newTestLinker(kg, &stubWiki{})

	matches := l.FindMatches(context.Background(), "Hà Nội", "Place")
	require.NotEmpty(t, matches)

	uris := make([]string, 0, len(matches))
	for _, m := range matches {
		uris = append(uris, m.TargetURI)
		assert.GreaterOrEqual(t, m.Confidence, l.cfg.PropertyThreshold)
	}
	assert.Contains(t, uris, "http://dbpedia.org/resource/Hanoi")
	assert.NotContains(t, uris, "http://dbpedia.org/resource/Handball")
}

func TestTypeFilterInQuery(t *testing.T) {
	var sawFilter bool
	kg := &stubGraph{
		selectFn: func(query string) ([]sparql.Binding, error) {
			if strings.Contains(query, "?entity a dbo:Person .") {
				sawFilter = true
			}
			return nil, nil
		},
	}
	l := newTestLinker(kg, &stubWiki{})

	l.FindMatches(context.Background(), "Nguyễn Du", "Person")
	assert.True(t, sawFilter)
}

func TestDeduplicateKeepsHighestConfidence(t *testing.T) {
	matches := []Match{
		{TargetURI: "http://dbpedia.org/resource/Hue", Confidence: 0.6, Method: MethodProperty},
		{TargetURI: "http://dbpedia.org/resource/Hue", Confidence: 0.9, Method: MethodSimilarity},
		{TargetURI: "http://dbpedia.org/resource/Hue_FC", Confidence: 0.5, Method: MethodProperty},
	}

	out := Deduplicate(matches)
	require.Len(t, out, 2)
	assert.Equal(t, 0.9, out[0].Confidence)
	assert.Equal(t, MethodSimilarity, out[0].Method)
}

func TestMaxCandidatesTruncation(t *testing.T) {
	rows := make([]sparql.Binding, 0, 10)
	for _, suffix := range []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J"} {
		rows = append(rows, sparql.Binding{
			"entity": "http://dbpedia.org/resource/Tran_Hung_Dao_" + suffix,
			"label":  "Tran Hung Dao " + suffix,
		})
	}
	kg := &stubGraph{
		selectFn: func(query string) ([]sparql.Binding, error) { return rows, nil },
	}

	cfg := config.DefaultConfig().Linker
	cfg.MaxCandidates = 3
	l := New(kg, &stubWiki{}, cfg)

	matches := l.FindMatches(context.Background(), "Trần Hưng Đạo", "")
	assert.LessOrEqual(t, len(matches), 3)
	for i := 1; i < len(matches); i++ {
		assert.GreaterOrEqual(t, matches[i-1].Confidence, matches[i].Confidence)
	}
}

func TestStatsBuckets(t *testing.T) {
	l := newTestLinker(&stubGraph{}, &stubWiki{})

	l.recordOutcome([]Match{{Confidence: 0.95}})
	l.recordOutcome([]Match{{Confidence: 0.75}})
	l.recordOutcome([]Match{{Confidence: 0.55}})
	l.recordOutcome(nil)

	stats := l.Stats()
	assert.Equal(t, 4, stats.EntitiesProcessed)
	assert.Equal(t, 3, stats.SuccessfulLinks)
	assert.Equal(t, 1, stats.FailedLinks)
	assert.Equal(t, 1, stats.HighConfidenceLinks)
	assert.Equal(t, 1, stats.MediumConfidenceLinks)
	assert.Equal(t, 1, stats.LowConfidenceLinks)
}

func TestLinkBatch(t *testing.T) {
	kg := &stubGraph{
		selectFn: func(query string) ([]sparql.Binding, error) {
			if strings.Contains(query, `"Hanoi"@en`) {
				return []sparql.Binding{{"entity": "http://dbpedia.org/resource/Hanoi"}}, nil
			}
			return nil, nil
		},
	}
	l := newTestLinker(kg, &stubWiki{})

	names := []string{"Hà Nội", "Không Tồn Tại Ở Đâu Cả"}
	results := l.LinkBatch(context.Background(), names)

	require.Len(t, results, 2)
	require.NotEmpty(t, results["Hà Nội"])
	assert.Equal(t, MethodDirectMapping, results["Hà Nội"][0].Method)
	assert.Equal(t, 2, l.Stats().EntitiesProcessed)
}

func TestExportGraphLinkTypes(t *testing.T) {
	l := newTestLinker(&stubGraph{}, &stubWiki{})

	results := map[string][]Match{
		"Sài Gòn": {
			{
				SourceEntity: "Sài Gòn",
				TargetEntity: "Ho Chi Minh City",
				TargetURI:    "http://dbpedia.org/resource/Ho_Chi_Minh_City",
				Confidence:   0.95,
				Method:       MethodDirectMapping,
			},
			{
				SourceEntity: "Sài Gòn",
				TargetEntity: "Saigon River",
				TargetURI:    "http://dbpedia.org/resource/Saigon_River",
				Confidence:   0.6,
				Method:       MethodProperty,
			},
		},
		"Chợ Bến Thành": {{
			SourceEntity: "Chợ Bến Thành",
			TargetEntity: "Ben Thanh Market",
			TargetURI:    "http://dbpedia.org/resource/Ben_Thanh_Market",
			Confidence:   0.72,
			Method:       MethodSimilarity,
		}},
	}

	g := l.ExportGraph(results)

	saigon := entityURI("Sài Gòn")
	assert.True(t, g.Has(rdf.Triple{
		Subject:   saigon,
		Predicate: rdf.OWLSameAs,
		Object:    rdf.IRI("http://dbpedia.org/resource/Ho_Chi_Minh_City"),
	}))
	assert.True(t, g.Has(rdf.Triple{
		Subject:   saigon,
		Predicate: rdf.RDFSLabel,
		Object:    rdf.LangLiteral("Sài Gòn", "vi"),
	}))

	// Lower-ranked candidates are exported too, at their own
	// confidence, so consumers can apply their own cutoff.
	assert.True(t, g.Has(rdf.Triple{
		Subject:   saigon,
		Predicate: rdf.RDFSSeeAlso,
		Object:    rdf.IRI("http://dbpedia.org/resource/Saigon_River"),
	}))

	market := entityURI("Chợ Bến Thành")
	assert.True(t, g.Has(rdf.Triple{
		Subject:   market,
		Predicate: rdf.RDFSSeeAlso,
		Object:    rdf.IRI("http://dbpedia.org/resource/Ben_Thanh_Market"),
	}))

	// Each exported link carries a provenance annotation node.
	assert.True(t, g.HasPredicate(rdf.NSViProperty+"confidenceScore"))
	assert.True(t, g.HasPredicate(rdf.NSViProperty+"matchMethod"))
}

func TestExportSuppressesSelfLinks(t *testing.T) {
	l := newTestLinker(&stubGraph{}, &stubWiki{})

	results := map[string][]Match{
		"Hà Nội": {{
			SourceEntity: "Hà Nội",
			TargetEntity: "Hà Nội",
			TargetURI:    "http://vi.dbpedia.org/resource/H%C3%A0_N%E1%BB%99i",
			Confidence:   1.0,
			Method:       MethodSimilarity,
		}},
		"Huế": {
			{
				SourceEntity: "Huế",
				TargetEntity: "Hue",
				TargetURI:    "http://dbpedia.org/resource/Hue",
				Confidence:   0.95,
				Method:       MethodSimilarity,
			},
			{
				SourceEntity: "Huế",
				TargetEntity: "Hue Imperial City",
				TargetURI:    "http://dbpedia.org/resource/Hue_Imperial_City",
				Confidence:   0.65,
				Method:       MethodSimilarity,
			},
		},
	}

	g := l.ExportGraph(results)
	assert.False(t, g.HasPredicate(rdf.OWLSameAs))

	// Suppression is per candidate: the diacritic-stripped alias is
	// dropped while the genuinely distinct match survives.
	assert.True(t, g.Has(rdf.Triple{
		Subject:   entityURI("Huế"),
		Predicate: rdf.RDFSSeeAlso,
		Object:    rdf.IRI("http://dbpedia.org/resource/Hue_Imperial_City"),
	}))
	assert.False(t, g.Has(rdf.Triple{
		Subject:   entityURI("Huế"),
		Predicate: rdf.RDFSSeeAlso,
		Object:    rdf.IRI("http://dbpedia.org/resource/Hue"),
	}))
}

func TestEnglishCandidates(t *testing.T) {
	candidates := englishCandidates("Nguyễn Trãi")
	assert.Contains(t, candidates, "Nguyễn Trãi")
	assert.Contains(t, candidates, "Nguyen Trai")
}

func TestSaveAndLoadResults(t *testing.T) {
	path := t.TempDir() + "/links.json"
	in := map[string][]Match{
		"Huế": {{
			SourceEntity: "Huế",
			TargetEntity: "Hue",
			TargetURI:    "http://dbpedia.org/resource/Hue",
			Confidence:   0.9,
			Method:       MethodLanguageLink,
		}},
	}

	require.NoError(t, SaveResults(path, in))
	out, err := LoadResults(path)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}
