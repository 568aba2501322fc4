// Package transform maps collected Wikipedia articles onto the
// Vietnamese ontology, building one shared RDF graph per run.
package transform

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/dbpedia-vi/vikb/config"
	"github.com/dbpedia-vi/vikb/ontology"
	"github.com/dbpedia-vi/vikb/rdf"
	"github.com/dbpedia-vi/vikb/wikipedia"
	"github.com/dbpedia-vi/vikb/wikitext"
)

// ErrClassUnresolved marks an article whose entity class could not be
// resolved from its infobox, categories, or the configured default.
var ErrClassUnresolved = errors.New("entity class unresolved")

// Stats accumulates over a transformation run.
type Stats struct {
	ArticlesProcessed  int            `json:"articles_processed"`
	EntitiesCreated    int            `json:"entities_created"`
	TriplesGenerated   int            `json:"triples_generated"`
	InfoboxesProcessed int            `json:"infoboxes_processed"`
	Failures           int            `json:"failed_transformations"`
	TemplateCounts     map[string]int `json:"template_mappings"`
}

// Transformer folds articles into an RDF graph under an ontology
// model. Not safe for concurrent use: batch transformation is a
// sequential append-only fold.
type Transformer struct {
	model  *ontology.Model
	cfg    config.TransformConfig
	logger *slog.Logger
	graph  *rdf.Graph
	stats  Stats
}

// Option customizes a Transformer.
type Option func(*Transformer)

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Transformer) { t.logger = logger }
}

// New builds a Transformer over an ontology model.
func New(model *ontology.Model, cfg config.TransformConfig, opts ...Option) *Transformer {
	g := rdf.NewGraph()
	for prefix, ns := range model.Graph().Prefixes() {
		g.Bind(prefix, ns)
	}
	t := &Transformer{
		model:  model,
		cfg:    cfg,
		logger: slog.Default(),
		graph:  g,
		stats:  Stats{TemplateCounts: make(map[string]int)},
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Graph exposes the accumulated working graph.
func (t *Transformer) Graph() *rdf.Graph { return t.graph }

// TransformArticle maps one article onto the graph. Triples added
// before a failure stay in the graph; there is no per-article
// rollback.
func (t *Transformer) TransformArticle(article *wikipedia.Article) error {
	entityURI := t.EntityURI(article.Title)

	classURI, templateType, err := t.resolveClass(article)
	if err != nil {
		t.stats.Failures++
		t.logger.Warn("transformation failed", "title", article.Title, "error", err)
		return fmt.Errorf("%s: %w", article.Title, err)
	}

	t.graph.AddTriple(entityURI, rdf.RDFType, rdf.IRI(classURI))
	t.addBasicProperties(entityURI, article)
	if len(article.Infobox) > 0 {
		t.transformInfobox(entityURI, article.Infobox)
		t.stats.InfoboxesProcessed++
		t.stats.TemplateCounts[templateType]++
	}
	t.addCategories(entityURI, article.Categories)
	t.addWikipediaMetadata(entityURI, article)

	t.stats.ArticlesProcessed++
	t.stats.EntitiesCreated++
	t.logger.Debug("article transformed", "title", article.Title, "class", classURI)
	return nil
}

// TransformBatch folds a list of articles into the shared graph.
// Individual failures are counted and skipped, never propagated.
func (t *Transformer) TransformBatch(articles []*wikipedia.Article) Stats {
	t.logger.Info("transforming articles", "count", len(articles))
	for _, article := range articles {
		if err := t.TransformArticle(article); err != nil {
			continue
		}
	}
	t.stats.TriplesGenerated = t.graph.Len()
	t.logger.Info("transformation complete", "triples", t.graph.Len(), "failures", t.stats.Failures)
	return t.stats
}

// EntityURI mints the canonical resource IRI for an article title.
func (t *Transformer) EntityURI(title string) string {
	return mintURI(t.model.ResourceURI(), title)
}

// resolveClass picks the entity class: infobox template first, then
// category keywords, then the configured default.
func (t *Transformer) resolveClass(article *wikipedia.Article) (classURI, templateType string, err error) {
	if article.Infobox != nil {
		templateType = strings.ToLower(strings.TrimSpace(article.Infobox[wikitext.TemplateTypeKey]))
		if templateType != "" {
			if uri, ok := t.model.ClassForTemplate(templateType); ok {
				return uri, templateType, nil
			}
		}
	}

	for _, category := range article.Categories {
		lowered := strings.ToLower(category)
		for _, rule := range categoryRules {
			if strings.Contains(lowered, rule.keyword) {
				if uri, ok := t.model.ClassURI(rule.class); ok {
					return uri, templateType, nil
				}
			}
		}
	}

	if uri, ok := t.model.ClassURI(t.cfg.DefaultClass); ok {
		return uri, templateType, nil
	}
	return "", templateType, ErrClassUnresolved
}

func (t *Transformer) addBasicProperties(entityURI string, article *wikipedia.Article) {
	lang := t.cfg.Language
	t.graph.AddTriple(entityURI, rdf.RDFSLabel, rdf.LangLiteral(article.Title, lang))
	t.graph.AddTriple(entityURI, rdf.FOAFName, rdf.LangLiteral(article.Title, lang))
	if article.Abstract != "" {
		t.graph.AddTriple(entityURI, rdf.RDFSComment, rdf.LangLiteral(article.Abstract, lang))
		t.graph.AddTriple(entityURI, rdf.DCTDescription, rdf.LangLiteral(article.Abstract, lang))
	}
	if article.URL != "" {
		t.graph.AddTriple(entityURI, rdf.FOAFIsPrimaryTopicOf, rdf.IRI(article.URL))
	}
	t.graph.AddTriple(entityURI, rdf.DCTLanguage, rdf.Literal(lang))
}

func (t *Transformer) transformInfobox(entityURI string, infobox map[string]string) {
	for key, value := range infobox {
		if key == wikitext.TemplateTypeKey || strings.TrimSpace(value) == "" {
			continue
		}

		propertyName, mapped := propertyMappings[strings.ToLower(key)]
		if !mapped {
			// Unmapped fields keep their data under a synthesized
			// property rather than being dropped.
			custom := mintURI(t.model.PropertyNamespace(), key)
			t.graph.AddTriple(entityURI, custom, rdf.LangLiteral(value, t.cfg.Language))
			continue
		}

		propertyURI, ok := t.model.PropertyURI(propertyName)
		if !ok {
			continue
		}
		if object, ok := t.coerceValue(value, propertyName); ok {
			t.graph.AddTriple(entityURI, propertyURI, object)
		}
	}
}

// coerceValue converts a raw infobox value into the object term the
// property's semantics call for. Unparseable dates and coordinates
// fall through to plain Vietnamese literals.
func (t *Transformer) coerceValue(value, propertyName string) (rdf.Term, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return rdf.Term{}, false
	}

	switch {
	case dateProperties[propertyName]:
		if iso := ParseVietnameseDate(value); iso != "" {
			return rdf.TypedLiteral(iso, rdf.XSDDate), true
		}

	case integerProperties[propertyName]:
		if n, ok := extractInteger(value); ok {
			return rdf.TypedLiteral(strconv.FormatInt(n, 10), rdf.XSDInteger), true
		}

	case placeProperties[propertyName]:
		placeURI := t.EntityURI(value)
		if classURI, ok := t.model.ClassURI("Place"); ok {
			t.graph.AddTriple(placeURI, rdf.RDFType, rdf.IRI(classURI))
		}
		t.graph.AddTriple(placeURI, rdf.RDFSLabel, rdf.LangLiteral(value, t.cfg.Language))
		return rdf.IRI(placeURI), true

	case propertyName == "homepage":
		if strings.HasPrefix(value, "http://") || strings.HasPrefix(value, "https://") {
			return rdf.IRI(value), true
		}

	case propertyName == "coordinates":
		if coords := parseCoordinates(value); coords != "" {
			return rdf.TypedLiteral(coords, rdf.XSDString), true
		}
	}

	return rdf.LangLiteral(value, t.cfg.Language), true
}

func (t *Transformer) addCategories(entityURI string, categories []string) {
	for _, category := range categories {
		name := strings.TrimPrefix(category, "Thể loại:")
		categoryURI := t.EntityURI(name)
		t.graph.AddTriple(categoryURI, rdf.RDFType, rdf.IRI(rdf.SKOSConcept))
		t.graph.AddTriple(categoryURI, rdf.SKOSPrefLabel, rdf.LangLiteral(category, t.cfg.Language))
		t.graph.AddTriple(entityURI, rdf.DCTSubject, rdf.IRI(categoryURI))
	}
}

func (t *Transformer) addWikipediaMetadata(entityURI string, article *wikipedia.Article) {
	t.graph.AddTriple(entityURI, rdf.NSViProperty+"wikipediaPageID",
		rdf.TypedLiteral(strconv.FormatInt(article.PageID, 10), rdf.XSDInteger))
	if article.LastModified != "" {
		t.graph.AddTriple(entityURI, rdf.DCTModified,
			rdf.TypedLiteral(article.LastModified, rdf.XSDDateTime))
	}
	if article.RevisionID != 0 {
		t.graph.AddTriple(entityURI, rdf.NSViProperty+"wikipediaRevisionID",
			rdf.TypedLiteral(strconv.FormatInt(article.RevisionID, 10), rdf.XSDInteger))
	}
}

// MergeFile folds a previously exported graph into the working graph.
func (t *Transformer) MergeFile(path string) error {
	existing, err := rdf.DecodeFile(path)
	if err != nil {
		return fmt.Errorf("merge %s: %w", path, err)
	}
	t.graph.Merge(existing)
	t.logger.Info("merged existing graph", "path", path, "triples", t.graph.Len())
	return nil
}

// Export serializes the working graph to a file.
func (t *Transformer) Export(path string, format rdf.Format) error {
	return t.graph.WriteFile(path, format)
}

// Stats returns a snapshot of the run statistics.
func (t *Transformer) Stats() Stats {
	t.stats.TriplesGenerated = t.graph.Len()
	return t.stats
}
