package rdf

import (
	"fmt"
	"io"
	"os"

	knakk "github.com/knakk/rdf"
)

// Decode parses serialized RDF into a Graph. It is used for load-time
// validation of generated files and for round-trip checks; JSON-LD has
// no decoder and must be validated by the store instead.
func Decode(r io.Reader, format Format) (*Graph, error) {
	var kf knakk.Format
	switch format {
	case FormatTurtle, FormatN3:
		kf = knakk.Turtle
	case FormatNTriples:
		kf = knakk.NTriples
	case FormatRDFXML:
		kf = knakk.RDFXML
	default:
		return nil, fmt.Errorf("no decoder for format %s", format)
	}

	dec := knakk.NewTripleDecoder(r, kf)
	triples, err := dec.DecodeAll()
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", format, err)
	}

	g := NewGraph()
	for _, t := range triples {
		g.Add(Triple{
			Subject:   t.Subj.String(),
			Predicate: t.Pred.String(),
			Object:    termFromKnakk(t.Obj),
		})
	}
	return g, nil
}

// DecodeFile parses an RDF file, resolving the format from its extension.
func DecodeFile(path string) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Decode(f, FormatForPath(path))
}

func termFromKnakk(obj knakk.Object) Term {
	if obj.Type() == knakk.TermIRI {
		return IRI(obj.String())
	}
	lit, ok := obj.(knakk.Literal)
	if !ok {
		return Literal(obj.String())
	}
	if lang := lit.Lang(); lang != "" {
		return LangLiteral(lit.String(), lang)
	}
	dt := lit.DataType.String()
	if dt == "" || dt == XSDString || dt == NSRDF+"langString" {
		return Literal(lit.String())
	}
	return TypedLiteral(lit.String(), dt)
}
