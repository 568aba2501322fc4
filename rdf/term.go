// Package rdf provides the in-memory triple graph used throughout the
// pipeline, together with serializers for Turtle, RDF/XML, JSON-LD and
// N-Triples and a decoder for round-tripping serialized graphs.
package rdf

// TermKind distinguishes IRIs from literals in an object position.
type TermKind int

const (
	// KindIRI marks a term that names a resource.
	KindIRI TermKind = iota

	// KindLiteral marks a term that carries a value, optionally with a
	// language tag or a datatype IRI.
	KindLiteral
)

// Term is the object of a triple. Subjects and predicates are always
// IRIs and are stored as plain strings on Triple.
type Term struct {
	Value    string
	Kind     TermKind
	Lang     string
	Datatype string
}

// IRI returns an IRI term.
func IRI(value string) Term {
	return Term{Value: value, Kind: KindIRI}
}

// Literal returns a plain literal term.
func Literal(value string) Term {
	return Term{Value: value, Kind: KindLiteral}
}

// LangLiteral returns a language-tagged literal term.
func LangLiteral(value, lang string) Term {
	return Term{Value: value, Kind: KindLiteral, Lang: lang}
}

// TypedLiteral returns a literal term with an explicit datatype IRI.
func TypedLiteral(value, datatype string) Term {
	return Term{Value: value, Kind: KindLiteral, Datatype: datatype}
}

// IsIRI reports whether the term is an IRI.
func (t Term) IsIRI() bool { return t.Kind == KindIRI }

// Triple is a single RDF statement. Term values are comparable, so a
// Triple can be used directly as a map key for set semantics.
type Triple struct {
	Subject   string
	Predicate string
	Object    Term
}
