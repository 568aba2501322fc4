package rdf

import (
	"encoding/xml"
	"fmt"
	"strings"
)

// toRDFXML serializes to RDF/XML with one rdf:Description per subject.
func (g *Graph) toRDFXML() (string, error) {
	var sb strings.Builder

	sb.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	sb.WriteString("<rdf:RDF")
	for _, prefix := range g.sortedPrefixKeys() {
		sb.WriteString(fmt.Sprintf("\n    xmlns:%s=%q", prefix, g.prefixes[prefix]))
	}
	sb.WriteString(">\n")

	triples := g.Triples()
	i := 0
	for i < len(triples) {
		subject := triples[i].Subject
		j := i
		for j < len(triples) && triples[j].Subject == subject {
			j++
		}
		if err := g.writeSubjectXML(&sb, subject, triples[i:j]); err != nil {
			return "", err
		}
		i = j
	}

	sb.WriteString("</rdf:RDF>\n")
	return sb.String(), nil
}

// writeSubjectXML writes one rdf:Description element.
func (g *Graph) writeSubjectXML(sb *strings.Builder, subject string, triples []Triple) error {
	sb.WriteString(fmt.Sprintf("  <rdf:Description rdf:about=%q>\n", subject))
	for _, t := range triples {
		tag, xmlns, err := g.xmlPredicate(t.Predicate)
		if err != nil {
			return err
		}
		switch {
		case t.Object.Kind == KindIRI:
			sb.WriteString(fmt.Sprintf("    <%s%s rdf:resource=%q/>\n", tag, xmlns, t.Object.Value))
		case t.Object.Lang != "":
			sb.WriteString(fmt.Sprintf("    <%s%s xml:lang=%q>%s</%s>\n", tag, xmlns, t.Object.Lang, escapeXML(t.Object.Value), tag))
		case t.Object.Datatype != "":
			sb.WriteString(fmt.Sprintf("    <%s%s rdf:datatype=%q>%s</%s>\n", tag, xmlns, t.Object.Datatype, escapeXML(t.Object.Value), tag))
		default:
			sb.WriteString(fmt.Sprintf("    <%s%s>%s</%s>\n", tag, xmlns, escapeXML(t.Object.Value), tag))
		}
	}
	sb.WriteString("  </rdf:Description>\n")
	return nil
}

// xmlPredicate turns a predicate IRI into an element tag plus any
// inline namespace declaration it needs. Predicates in a bound
// namespace with a name-safe local part use the declared prefix;
// everything else is split at its longest XML-name suffix and carries
// an element-scoped xmlns so the triple is never dropped. An IRI with
// no XML-name suffix at all cannot be written as a property element,
// which surfaces as an error rather than a silently smaller graph.
func (g *Graph) xmlPredicate(iri string) (tag, xmlns string, err error) {
	for _, prefix := range g.sortedPrefixKeys() {
		ns := g.prefixes[prefix]
		if strings.HasPrefix(iri, ns) {
			local := iri[len(ns):]
			if local != "" && isSafeLocalName(local) && isXMLNameStart([]rune(local)[0]) {
				return prefix + ":" + local, "", nil
			}
		}
	}
	ns, local, ok := splitXMLName(iri)
	if !ok {
		return "", "", fmt.Errorf("predicate %q cannot be expressed as an RDF/XML property element", iri)
	}
	return "nsx:" + local, fmt.Sprintf(" xmlns:nsx=%q", ns), nil
}

// splitXMLName splits an IRI before its longest trailing run of XML
// name characters, trimmed to a valid name-start character, so
// ns+local reassembles the original IRI.
func splitXMLName(iri string) (ns, local string, ok bool) {
	runes := []rune(iri)
	i := len(runes)
	for i > 0 && isXMLNameChar(runes[i-1]) {
		i--
	}
	for i < len(runes) && !isXMLNameStart(runes[i]) {
		i++
	}
	if i == len(runes) {
		return "", "", false
	}
	return string(runes[:i]), string(runes[i:]), true
}

func isXMLNameStart(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '_':
		return true
	case r >= 0x00C0 && r <= 0x1EF9:
		return true
	}
	return false
}

func isXMLNameChar(r rune) bool {
	return isXMLNameStart(r) || (r >= '0' && r <= '9') || r == '-'
}

func escapeXML(s string) string {
	var sb strings.Builder
	xml.EscapeText(&sb, []byte(s))
	return sb.String()
}
