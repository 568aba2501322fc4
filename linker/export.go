package linker

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/dbpedia-vi/vikb/rdf"
	"github.com/dbpedia-vi/vikb/similarity"
)

// ExportGraph renders accepted matches as cross-language link triples.
// Every candidate is exported at its own confidence; self-referential
// links are suppressed. Matches at or above the sameAs threshold become
// owl:sameAs, the rest rdfs:seeAlso. Consumers filter by the annotated
// confidence score rather than receiving a pre-pruned graph.
func (l *Linker) ExportGraph(results map[string][]Match) *rdf.Graph {
	g := rdf.NewGraph()
	for name, matches := range results {
		for _, m := range matches {
			if isSelfLink(name, m) {
				l.logger.Debug("suppressing self link", "entity", name, "target", m.TargetURI)
				continue
			}
			l.addLinkTriples(g, name, m)
		}
	}
	return g
}

// ExportRDF serializes the link graph to path in the given format.
func (l *Linker) ExportRDF(results map[string][]Match, path string, format rdf.Format) error {
	return l.ExportGraph(results).WriteFile(path, format)
}

func (l *Linker) addLinkTriples(g *rdf.Graph, name string, m Match) {
	subject := entityURI(name)

	predicate := rdf.RDFSSeeAlso
	if m.Confidence >= l.cfg.SameAsThreshold {
		predicate = rdf.OWLSameAs
	}
	g.AddTriple(subject, predicate, rdf.IRI(m.TargetURI))
	g.AddTriple(subject, rdf.RDFSLabel, rdf.LangLiteral(name, "vi"))

	// Provenance for the link itself lives on a separate annotation
	// node so it never pollutes the entity description.
	annotation := rdf.NSViResource + "linkAnnotation/" + uuid.NewString()
	g.AddTriple(annotation, rdf.NSViProperty+"sourceEntity", rdf.IRI(subject))
	g.AddTriple(annotation, rdf.NSViProperty+"linkedEntity", rdf.IRI(m.TargetURI))
	g.AddTriple(annotation, rdf.NSViProperty+"confidenceScore", rdf.TypedLiteral(formatConfidence(m.Confidence), rdf.XSDDouble))
	g.AddTriple(annotation, rdf.NSViProperty+"matchMethod", rdf.Literal(m.Method))
}

// entityURI mints the Vietnamese resource IRI for an entity name.
func entityURI(name string) string {
	underscored := strings.ReplaceAll(strings.TrimSpace(name), " ", "_")
	return rdf.NSViResource + url.PathEscape(underscored)
}

// isSelfLink reports whether a match points back at the Vietnamese
// entity it was derived from, directly or through a diacritic-stripped
// alias.
func isSelfLink(name string, m Match) bool {
	lowered := strings.ToLower(m.TargetURI)
	for _, marker := range []string{"vi.dbpedia.org", "/vi/", "vietnamese", "viet"} {
		if strings.Contains(lowered, marker) {
			return true
		}
	}
	return similarity.Normalize(name) == similarity.Normalize(m.TargetEntity)
}

func formatConfidence(c float64) string {
	return strconv.FormatFloat(c, 'f', -1, 64)
}
