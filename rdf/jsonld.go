package rdf

import (
	"encoding/json"
	"sort"
)

// toJSONLD serializes to expanded-style JSON-LD with a @context of the
// bound prefixes and one @graph node per subject.
func (g *Graph) toJSONLD() string {
	ctx := make(map[string]string, len(g.prefixes))
	for prefix, ns := range g.prefixes {
		ctx[prefix] = ns
	}

	nodes := make(map[string]map[string]any)
	for _, t := range g.Triples() {
		node, ok := nodes[t.Subject]
		if !ok {
			node = map[string]any{"@id": t.Subject}
			nodes[t.Subject] = node
		}
		key := t.Predicate
		var value any
		if t.Predicate == RDFType && t.Object.Kind == KindIRI {
			key = "@type"
			value = t.Object.Value
		} else {
			value = jsonLDValue(t.Object)
		}
		switch existing := node[key].(type) {
		case nil:
			node[key] = value
		case []any:
			node[key] = append(existing, value)
		default:
			node[key] = []any{existing, value}
		}
	}

	subjects := make([]string, 0, len(nodes))
	for s := range nodes {
		subjects = append(subjects, s)
	}
	sort.Strings(subjects)

	graph := make([]map[string]any, 0, len(subjects))
	for _, s := range subjects {
		graph = append(graph, nodes[s])
	}

	doc := map[string]any{
		"@context": ctx,
		"@graph":   graph,
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "{}"
	}
	return string(data) + "\n"
}

// jsonLDValue renders a term as a JSON-LD value object.
func jsonLDValue(t Term) any {
	if t.Kind == KindIRI {
		return map[string]any{"@id": t.Value}
	}
	obj := map[string]any{"@value": t.Value}
	if t.Lang != "" {
		obj["@language"] = t.Lang
	}
	if t.Datatype != "" {
		obj["@type"] = t.Datatype
	}
	return obj
}
