package rdf

import (
	"fmt"
	"strings"
)

// Format identifies an RDF serialization.
type Format string

const (
	FormatTurtle   Format = "turtle"
	FormatRDFXML   Format = "rdf-xml"
	FormatNTriples Format = "n-triples"
	FormatN3       Format = "n3"
	FormatJSONLD   Format = "json-ld"
)

// ParseFormat resolves a user-supplied format token or file extension.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "turtle", "ttl":
		return FormatTurtle, nil
	case "rdf-xml", "xml", "rdf", "rdfxml":
		return FormatRDFXML, nil
	case "n-triples", "nt", "ntriples":
		return FormatNTriples, nil
	case "n3":
		return FormatN3, nil
	case "json-ld", "jsonld":
		return FormatJSONLD, nil
	}
	return "", fmt.Errorf("unknown RDF format %q", s)
}

// MIMEType returns the content type used when posting data to a
// triple-store gateway.
func (f Format) MIMEType() string {
	switch f {
	case FormatTurtle:
		return "text/turtle"
	case FormatRDFXML:
		return "application/rdf+xml"
	case FormatNTriples:
		return "application/n-triples"
	case FormatN3:
		return "text/n3"
	case FormatJSONLD:
		return "application/ld+json"
	}
	return "text/turtle"
}

// Extension returns the conventional file extension for the format.
func (f Format) Extension() string {
	switch f {
	case FormatTurtle:
		return ".ttl"
	case FormatRDFXML:
		return ".rdf"
	case FormatNTriples:
		return ".nt"
	case FormatN3:
		return ".n3"
	case FormatJSONLD:
		return ".jsonld"
	}
	return ".ttl"
}

// FormatForPath guesses the serialization from a file name, defaulting
// to Turtle for unknown extensions.
func FormatForPath(path string) Format {
	if strings.HasSuffix(path, ".xml") {
		return FormatRDFXML
	}
	for _, f := range []Format{FormatTurtle, FormatRDFXML, FormatNTriples, FormatN3, FormatJSONLD} {
		if strings.HasSuffix(path, f.Extension()) {
			return f
		}
	}
	return FormatTurtle
}
