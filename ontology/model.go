package ontology

import (
	"log/slog"
	"sort"
	"strings"

	semerrors "github.com/c360studio/semstreams/pkg/errs"

	"github.com/dbpedia-vi/vikb/rdf"
)

// Model is the compiled, immutable form of a Schema. It owns the
// ontology triples plus the lookup tables used during transformation.
// Construct once at startup and share freely; all methods are
// read-only after construction.
type Model struct {
	schema *Schema
	graph  *rdf.Graph
	logger *slog.Logger

	classURIs    map[string]string
	propertyURIs map[string]string
	templates    map[string]string

	declaredPreds map[string]struct{}
	predDomains   map[string]string
	predRanges    map[string]string
}

// Option customizes model construction.
type Option func(*Model)

// WithLogger sets the structured logger used for schema diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Model) { m.logger = logger }
}

// New compiles a schema into a Model.
func New(schema *Schema, opts ...Option) (*Model, error) {
	if err := schema.Validate(); err != nil {
		return nil, semerrors.WrapFatal(err, "ontology", "New", "validate schema")
	}

	m := &Model{
		schema:        schema,
		graph:         rdf.NewGraph(),
		logger:        slog.Default(),
		classURIs:     make(map[string]string),
		propertyURIs:  make(map[string]string),
		templates:     make(map[string]string),
		declaredPreds: make(map[string]struct{}),
		predDomains:   make(map[string]string),
		predRanges:    make(map[string]string),
	}
	for _, opt := range opts {
		opt(m)
	}

	m.buildMetadata()
	m.buildClasses()
	m.buildProperties()
	m.buildTemplateMappings()
	return m, nil
}

// Load reads a schema file and compiles it. A missing or malformed
// schema is fatal: the model cannot exist partially loaded.
func Load(path string, opts ...Option) (*Model, error) {
	schema, err := LoadSchema(path)
	if err != nil {
		return nil, semerrors.WrapFatal(err, "ontology", "Load", "load schema "+path)
	}
	return New(schema, opts...)
}

// Default compiles the built-in Vietnamese schema.
func Default(opts ...Option) *Model {
	m, err := New(DefaultSchema(), opts...)
	if err != nil {
		// The built-in schema always validates.
		panic(err)
	}
	return m
}

func (m *Model) buildMetadata() {
	base := strings.TrimSuffix(m.schema.Ontology.BaseURI, "/")
	m.graph.AddTriple(base, rdf.RDFType, rdf.IRI(rdf.OWLOntology))
	m.graph.AddTriple(base, rdf.RDFSLabel, rdf.LangLiteral("Vietnamese DBPedia Ontology", "en"))
	m.graph.AddTriple(base, rdf.RDFSLabel, rdf.LangLiteral("Bản thể học DBPedia Việt Nam", "vi"))
	m.graph.AddTriple(base, rdf.RDFSComment, rdf.LangLiteral("Comprehensive ontology for Vietnamese knowledge representation", "en"))
	m.graph.AddTriple(base, rdf.RDFSComment, rdf.LangLiteral("Bản thể học toàn diện cho biểu diễn tri thức Việt Nam", "vi"))
	m.graph.AddTriple(base, rdf.DCTCreator, rdf.Literal("Vietnamese DBPedia Project"))
	m.graph.AddTriple(base, rdf.OWLVersionInfo, rdf.Literal(m.schema.Ontology.Version))
	m.graph.AddTriple(base, rdf.OWLImports, rdf.IRI(rdf.NSDBPOntology))
	m.graph.AddTriple(base, rdf.OWLImports, rdf.IRI(rdf.NSFOAF))
}

func (m *Model) buildClasses() {
	for name, def := range m.schema.Classes {
		uri := m.schema.Ontology.BaseURI + def.URI
		m.classURIs[name] = uri

		m.graph.AddTriple(uri, rdf.RDFType, rdf.IRI(rdf.OWLClass))
		m.graph.AddTriple(uri, rdf.RDFSLabel, rdf.LangLiteral(def.LabelVi, "vi"))
		m.graph.AddTriple(uri, rdf.RDFSLabel, rdf.LangLiteral(def.LabelEn, "en"))
		if def.CommentVi != "" {
			m.graph.AddTriple(uri, rdf.RDFSComment, rdf.LangLiteral(def.CommentVi, "vi"))
		}
		if def.EquivalentClass != "" {
			m.graph.AddTriple(uri, rdf.OWLEquivalentClass, rdf.IRI(def.EquivalentClass))
		}
	}

	// Subclass links resolve against the declared class set; dangling
	// references are dropped with a warning rather than failing the load.
	for name, def := range m.schema.Classes {
		parent := m.classURIs[name]
		for _, sub := range def.SubClasses {
			child, ok := m.classURIs[sub]
			if !ok {
				m.logger.Warn("subclass reference to undefined class",
					"class", name, "subclass", sub)
				continue
			}
			m.graph.AddTriple(child, rdf.RDFSSubClassOf, rdf.IRI(parent))
		}
	}
}

func (m *Model) buildProperties() {
	for name, def := range m.schema.Properties {
		uri := m.schema.Ontology.PropertyURI + def.URI
		m.propertyURIs[name] = uri
		m.declaredPreds[uri] = struct{}{}

		propType := rdf.OWLDatatypeProperty
		if _, ok := m.classURIs[def.Range]; ok {
			propType = rdf.OWLObjectProperty
		}
		m.graph.AddTriple(uri, rdf.RDFType, rdf.IRI(propType))
		m.graph.AddTriple(uri, rdf.RDFSLabel, rdf.LangLiteral(def.LabelVi, "vi"))
		m.graph.AddTriple(uri, rdf.RDFSLabel, rdf.LangLiteral(def.LabelEn, "en"))
		if def.CommentVi != "" {
			m.graph.AddTriple(uri, rdf.RDFSComment, rdf.LangLiteral(def.CommentVi, "vi"))
		}

		if def.Domain != "" {
			if domainURI, ok := m.classURIs[def.Domain]; ok {
				m.graph.AddTriple(uri, rdf.RDFSDomain, rdf.IRI(domainURI))
				m.predDomains[uri] = domainURI
			} else {
				m.logger.Warn("property domain references undefined class",
					"property", name, "domain", def.Domain)
			}
		}

		switch {
		case def.Range == "":
		case m.classURIs[def.Range] != "":
			rangeURI := m.classURIs[def.Range]
			m.graph.AddTriple(uri, rdf.RDFSRange, rdf.IRI(rangeURI))
			m.predRanges[uri] = rangeURI
		case strings.HasPrefix(def.Range, "xsd:"):
			m.graph.AddTriple(uri, rdf.RDFSRange, rdf.IRI(rdf.NSXSD+strings.TrimPrefix(def.Range, "xsd:")))
		default:
			m.logger.Warn("property range references undefined class",
				"property", name, "range", def.Range)
		}

		if def.EquivalentProperty != "" {
			m.graph.AddTriple(uri, rdf.OWLEquivalentProperty, rdf.IRI(def.EquivalentProperty))
		}
	}
}

func (m *Model) buildTemplateMappings() {
	for template, className := range m.schema.Mappings.InfoboxTemplates {
		uri, ok := m.classURIs[className]
		if !ok {
			m.logger.Warn("template mapping references undefined class",
				"template", template, "class", className)
			continue
		}
		m.templates[template] = uri
	}
}

// ClassURI resolves a class name to its IRI.
func (m *Model) ClassURI(name string) (string, bool) {
	uri, ok := m.classURIs[name]
	return uri, ok
}

// PropertyURI resolves a property name to its IRI.
func (m *Model) PropertyURI(name string) (string, bool) {
	uri, ok := m.propertyURIs[name]
	return uri, ok
}

// ClassForTemplate resolves an infobox template name to a class IRI.
// The lookup is exact; callers pass the template type as parsed.
func (m *Model) ClassForTemplate(template string) (string, bool) {
	uri, ok := m.templates[template]
	return uri, ok
}

// ClassNames returns all declared class names, sorted.
func (m *Model) ClassNames() []string {
	names := make([]string, 0, len(m.classURIs))
	for name := range m.classURIs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PropertyNames returns all declared property names, sorted.
func (m *Model) PropertyNames() []string {
	names := make([]string, 0, len(m.propertyURIs))
	for name := range m.propertyURIs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ResourceURI returns the namespace entities are minted under.
func (m *Model) ResourceURI() string { return m.schema.Ontology.ResourceURI }

// PropertyNamespace returns the namespace for synthesized properties.
func (m *Model) PropertyNamespace() string { return m.schema.Ontology.PropertyURI }

// ValidateTriple checks a triple against the ontology using only the
// supplied graph: the predicate must be declared, a declared domain
// must be asserted as the subject's type in g, and for IRI objects a
// declared range must be asserted as the object's type in g. This is a
// local consistency check, not reasoning; its main value is flagging
// unknown predicates.
func (m *Model) ValidateTriple(g *rdf.Graph, t rdf.Triple) bool {
	if _, ok := m.declaredPreds[t.Predicate]; !ok {
		return false
	}
	if domain, ok := m.predDomains[t.Predicate]; ok {
		if !g.HasType(t.Subject, domain) {
			return false
		}
	}
	if t.Object.IsIRI() {
		if rangeURI, ok := m.predRanges[t.Predicate]; ok {
			if !g.HasType(t.Object.Value, rangeURI) {
				return false
			}
		}
	}
	return true
}

// Graph returns the ontology triples. The caller must not mutate it.
func (m *Model) Graph() *rdf.Graph { return m.graph }

// Export serializes the ontology itself, used to publish the schema
// alongside the extracted data.
func (m *Model) Export(path string, format rdf.Format) error {
	return m.graph.WriteFile(path, format)
}

// Statistics summarizes the compiled model.
type Statistics struct {
	Classes    int `json:"classes"`
	Properties int `json:"properties"`
	Mappings   int `json:"mappings"`
	Triples    int `json:"triples"`
}

// Stats reports class, property, mapping, and triple counts.
func (m *Model) Stats() Statistics {
	return Statistics{
		Classes:    len(m.classURIs),
		Properties: len(m.propertyURIs),
		Mappings:   len(m.templates),
		Triples:    m.graph.Len(),
	}
}
