package rdf

import (
	"fmt"
	"sort"
	"strings"
)

// Serialize renders the graph in the requested format.
func (g *Graph) Serialize(format Format) (string, error) {
	switch format {
	case FormatTurtle, FormatN3:
		return g.toTurtle(), nil
	case FormatNTriples:
		return g.toNTriples(), nil
	case FormatRDFXML:
		return g.toRDFXML()
	case FormatJSONLD:
		return g.toJSONLD(), nil
	default:
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}

// toTurtle serializes to Turtle, grouping triples by subject.
func (g *Graph) toTurtle() string {
	var sb strings.Builder

	prefixKeys := g.sortedPrefixKeys()
	for _, prefix := range prefixKeys {
		sb.WriteString(fmt.Sprintf("@prefix %s: <%s> .\n", prefix, g.prefixes[prefix]))
	}
	sb.WriteString("\n")

	triples := g.Triples()
	i := 0
	for i < len(triples) {
		subject := triples[i].Subject
		j := i
		for j < len(triples) && triples[j].Subject == subject {
			j++
		}
		g.writeSubjectTurtle(&sb, subject, triples[i:j])
		sb.WriteString("\n")
		i = j
	}

	return sb.String()
}

// writeSubjectTurtle writes one subject block in Turtle.
func (g *Graph) writeSubjectTurtle(sb *strings.Builder, subject string, triples []Triple) {
	sb.WriteString(fmt.Sprintf("%s\n", g.qname(subject)))
	for i, t := range triples {
		pred := g.qname(t.Predicate)
		if t.Predicate == RDFType {
			pred = "a"
		}
		sb.WriteString(fmt.Sprintf("    %s %s", pred, g.termTurtle(t.Object)))
		if i < len(triples)-1 {
			sb.WriteString(" ;\n")
		} else {
			sb.WriteString(" .\n")
		}
	}
}

// termTurtle renders a term for Turtle output.
func (g *Graph) termTurtle(t Term) string {
	if t.Kind == KindIRI {
		return g.qname(t.Value)
	}
	lit := fmt.Sprintf("%q", escapeString(t.Value))
	if t.Lang != "" {
		return lit + "@" + t.Lang
	}
	if t.Datatype != "" {
		return lit + "^^" + g.qname(t.Datatype)
	}
	return lit
}

// qname compacts an IRI against the bound prefixes, falling back to
// the angle-bracket form. Compaction only applies when the local part
// is a safe prefixed name.
func (g *Graph) qname(iri string) string {
	for _, prefix := range g.sortedPrefixKeys() {
		ns := g.prefixes[prefix]
		if strings.HasPrefix(iri, ns) {
			local := iri[len(ns):]
			if local != "" && isSafeLocalName(local) {
				return prefix + ":" + local
			}
		}
	}
	return "<" + iri + ">"
}

// isSafeLocalName reports whether local can appear after a prefix
// without Turtle escaping.
func isSafeLocalName(local string) bool {
	for _, r := range local {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '_' || r == '-':
		case r >= 0x00C0 && r <= 0x1EF9:
		default:
			return false
		}
	}
	return true
}

func (g *Graph) sortedPrefixKeys() []string {
	keys := make([]string, 0, len(g.prefixes))
	for k := range g.prefixes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// toNTriples serializes to N-Triples, one full-IRI statement per line.
func (g *Graph) toNTriples() string {
	var sb strings.Builder
	for _, t := range g.Triples() {
		sb.WriteString(fmt.Sprintf("<%s> <%s> %s .\n", t.Subject, t.Predicate, termNTriples(t.Object)))
	}
	return sb.String()
}

// termNTriples renders a term with absolute IRIs only.
func termNTriples(t Term) string {
	if t.Kind == KindIRI {
		return "<" + t.Value + ">"
	}
	lit := fmt.Sprintf("%q", escapeString(t.Value))
	if t.Lang != "" {
		return lit + "@" + t.Lang
	}
	if t.Datatype != "" {
		return lit + "^^<" + t.Datatype + ">"
	}
	return lit
}

// escapeString escapes special characters for Turtle and N-Triples
// literal bodies. The %q verb handles quote and backslash escaping, so
// this only normalizes characters %q would pass through unescaped.
func escapeString(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return s
}
