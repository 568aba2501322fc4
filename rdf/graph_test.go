package rdf_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dbpedia-vi/vikb/rdf"
)

func TestGraphAddDeduplicates(t *testing.T) {
	g := rdf.NewGraph()

	subject := rdf.NSViResource + "Hà_Nội"
	added := g.AddTriple(subject, rdf.RDFType, rdf.IRI(rdf.NSViOntology+"City"))
	assert.True(t, added)

	again := g.AddTriple(subject, rdf.RDFType, rdf.IRI(rdf.NSViOntology+"City"))
	assert.False(t, again, "identical triple should not be added twice")
	assert.Equal(t, 1, g.Len())

	// Same value but a different term shape is a distinct triple.
	g.AddTriple(subject, rdf.RDFSLabel, rdf.LangLiteral("Hà Nội", "vi"))
	g.AddTriple(subject, rdf.RDFSLabel, rdf.LangLiteral("Hanoi", "en"))
	assert.Equal(t, 3, g.Len())
}

func TestGraphTriplesSorted(t *testing.T) {
	g := rdf.NewGraph()
	g.AddTriple("http://example.org/b", rdf.RDFSLabel, rdf.Literal("b"))
	g.AddTriple("http://example.org/a", rdf.RDFSLabel, rdf.Literal("a"))
	g.AddTriple("http://example.org/a", rdf.RDFSComment, rdf.Literal("c"))

	triples := g.Triples()
	require.Len(t, triples, 3)
	assert.Equal(t, "http://example.org/a", triples[0].Subject)
	assert.Equal(t, rdf.RDFSComment, triples[0].Predicate)
	assert.Equal(t, "http://example.org/b", triples[2].Subject)
}

func TestGraphMerge(t *testing.T) {
	a := rdf.NewGraph()
	a.AddTriple("http://example.org/x", rdf.RDFSLabel, rdf.Literal("x"))

	b := rdf.NewGraph()
	b.AddTriple("http://example.org/x", rdf.RDFSLabel, rdf.Literal("x"))
	b.AddTriple("http://example.org/y", rdf.RDFSLabel, rdf.Literal("y"))

	a.Merge(b)
	assert.Equal(t, 2, a.Len())
}

func TestGraphStatistics(t *testing.T) {
	g := rdf.NewGraph()
	g.AddTriple("http://example.org/a", rdf.RDFType, rdf.IRI(rdf.NSViOntology+"Person"))
	g.AddTriple("http://example.org/a", rdf.RDFSLabel, rdf.LangLiteral("A", "vi"))
	g.AddTriple("http://example.org/b", rdf.RDFSLabel, rdf.LangLiteral("B", "vi"))

	st := g.Statistics()
	assert.Equal(t, 3, st.Triples)
	assert.Equal(t, 2, st.Subjects)
	assert.Equal(t, 2, st.Predicates)
	assert.Equal(t, 3, st.Objects)
}

func TestParseFormat(t *testing.T) {
	cases := map[string]rdf.Format{
		"turtle":    rdf.FormatTurtle,
		"ttl":       rdf.FormatTurtle,
		"rdf-xml":   rdf.FormatRDFXML,
		"xml":       rdf.FormatRDFXML,
		"n-triples": rdf.FormatNTriples,
		"nt":        rdf.FormatNTriples,
		"n3":        rdf.FormatN3,
		"json-ld":   rdf.FormatJSONLD,
		"jsonld":    rdf.FormatJSONLD,
	}
	for token, want := range cases {
		got, err := rdf.ParseFormat(token)
		require.NoError(t, err, token)
		assert.Equal(t, want, got, token)
	}

	_, err := rdf.ParseFormat("yaml")
	assert.Error(t, err)
}

func TestFormatForPath(t *testing.T) {
	cases := map[string]rdf.Format{
		"data/rdf/graph.ttl":    rdf.FormatTurtle,
		"data/rdf/graph.nt":     rdf.FormatNTriples,
		"data/rdf/graph.rdf":    rdf.FormatRDFXML,
		"data/rdf/export.xml":   rdf.FormatRDFXML,
		"data/rdf/graph.n3":     rdf.FormatN3,
		"data/rdf/graph.jsonld": rdf.FormatJSONLD,
		"data/rdf/graph.txt":    rdf.FormatTurtle,
	}
	for path, want := range cases {
		assert.Equal(t, want, rdf.FormatForPath(path), path)
	}
}

func TestFormatMIMETypes(t *testing.T) {
	assert.Equal(t, "text/turtle", rdf.FormatTurtle.MIMEType())
	assert.Equal(t, "application/rdf+xml", rdf.FormatRDFXML.MIMEType())
	assert.Equal(t, "application/n-triples", rdf.FormatNTriples.MIMEType())
	assert.Equal(t, "text/n3", rdf.FormatN3.MIMEType())
	assert.Equal(t, "application/ld+json", rdf.FormatJSONLD.MIMEType())
}

func TestSerializeTurtle(t *testing.T) {
	g := rdf.NewGraph()
	subject := rdf.NSViResource + "Nguyễn_Trãi"
	g.AddTriple(subject, rdf.RDFType, rdf.IRI(rdf.NSViOntology+"Writer"))
	g.AddTriple(subject, rdf.RDFSLabel, rdf.LangLiteral("Nguyễn Trãi", "vi"))
	g.AddTriple(subject, rdf.NSViOntology+"birthDate", rdf.TypedLiteral("1380-01-01", rdf.XSDDate))

	out, err := g.Serialize(rdf.FormatTurtle)
	require.NoError(t, err)

	assert.Contains(t, out, "@prefix vi: <"+rdf.NSViOntology+"> .")
	assert.Contains(t, out, "a vi:Writer")
	assert.Contains(t, out, `"Nguyễn Trãi"@vi`)
	assert.Contains(t, out, `"1380-01-01"^^xsd:date`)
}

func TestSerializeNTriplesUsesAbsoluteIRIs(t *testing.T) {
	g := rdf.NewGraph()
	subject := rdf.NSViResource + "Huế"
	g.AddTriple(subject, rdf.RDFType, rdf.IRI(rdf.NSViOntology+"City"))

	out, err := g.Serialize(rdf.FormatNTriples)
	require.NoError(t, err)

	line := strings.TrimSpace(out)
	assert.Equal(t, "<"+subject+"> <"+rdf.RDFType+"> <"+rdf.NSViOntology+"City"+"> .", line)
}

func TestSerializeRDFXML(t *testing.T) {
	g := rdf.NewGraph()
	subject := rdf.NSViResource + "Đà_Nẵng"
	g.AddTriple(subject, rdf.RDFType, rdf.IRI(rdf.NSViOntology+"City"))
	g.AddTriple(subject, rdf.RDFSLabel, rdf.LangLiteral("Đà Nẵng", "vi"))

	out, err := g.Serialize(rdf.FormatRDFXML)
	require.NoError(t, err)

	assert.Contains(t, out, `<?xml version="1.0" encoding="UTF-8"?>`)
	assert.Contains(t, out, `rdf:about="`+subject+`"`)
	assert.Contains(t, out, `xml:lang="vi"`)
	assert.Contains(t, out, `rdf:resource="`+rdf.NSViOntology+`City"`)
}

func TestSerializeRDFXMLEscapedPredicate(t *testing.T) {
	g := rdf.NewGraph()
	subject := rdf.NSViResource + "Nh%C3%A0_h%C3%A1t_L%E1%BB%9Bn"
	pred := rdf.NSViProperty + "ki%E1%BA%BFn_tr%C3%BAc_s%C6%B0"
	g.AddTriple(subject, rdf.RDFSLabel, rdf.LangLiteral("Nhà hát Lớn", "vi"))
	g.AddTriple(subject, pred, rdf.LangLiteral("Broyer", "vi"))

	out, err := g.Serialize(rdf.FormatRDFXML)
	require.NoError(t, err)

	// Percent signs keep the predicate out of every declared prefix,
	// so it gets an element-scoped namespace instead of being dropped.
	assert.Contains(t, out, "xmlns:nsx=")

	decoded, err := rdf.Decode(strings.NewReader(out), rdf.FormatRDFXML)
	require.NoError(t, err)
	assert.Equal(t, 2, decoded.Len())
	assert.True(t, decoded.HasPredicate(pred))
}

func TestSerializeJSONLD(t *testing.T) {
	g := rdf.NewGraph()
	subject := rdf.NSViResource + "Sài_Gòn"
	g.AddTriple(subject, rdf.RDFType, rdf.IRI(rdf.NSViOntology+"City"))
	g.AddTriple(subject, rdf.RDFSLabel, rdf.LangLiteral("Sài Gòn", "vi"))

	out, err := g.Serialize(rdf.FormatJSONLD)
	require.NoError(t, err)

	assert.Contains(t, out, `"@context"`)
	assert.Contains(t, out, `"@graph"`)
	assert.Contains(t, out, `"@id": "`+subject+`"`)
	assert.Contains(t, out, `"@language": "vi"`)
}

func TestTurtleRoundTrip(t *testing.T) {
	g := rdf.NewGraph()
	subject := rdf.NSViResource + "Hồ_Chí_Minh"
	g.AddTriple(subject, rdf.RDFType, rdf.IRI(rdf.NSViOntology+"PoliticalFigure"))
	g.AddTriple(subject, rdf.RDFSLabel, rdf.LangLiteral("Hồ Chí Minh", "vi"))
	g.AddTriple(subject, rdf.NSViOntology+"birthDate", rdf.TypedLiteral("1890-05-19", rdf.XSDDate))
	g.AddTriple(subject, rdf.NSViOntology+"birthPlace", rdf.IRI(rdf.NSViResource+"Nghệ_An"))
	g.AddTriple(subject, rdf.FOAFName, rdf.Literal("Hồ Chí Minh"))

	out, err := g.Serialize(rdf.FormatTurtle)
	require.NoError(t, err)

	decoded, err := rdf.Decode(strings.NewReader(out), rdf.FormatTurtle)
	require.NoError(t, err)

	assert.Equal(t, g.Len(), decoded.Len())
	assert.True(t, g.Equal(decoded), "decoded graph should match the original")
}

func TestNTriplesRoundTrip(t *testing.T) {
	g := rdf.NewGraph()
	subject := rdf.NSViResource + "Truyện_Kiều"
	g.AddTriple(subject, rdf.RDFType, rdf.IRI(rdf.NSViOntology+"LiteraryWork"))
	g.AddTriple(subject, rdf.RDFSLabel, rdf.LangLiteral("Truyện Kiều", "vi"))

	out, err := g.Serialize(rdf.FormatNTriples)
	require.NoError(t, err)

	decoded, err := rdf.Decode(strings.NewReader(out), rdf.FormatNTriples)
	require.NoError(t, err)
	assert.True(t, g.Equal(decoded))
}
