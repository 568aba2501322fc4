package rdf

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// Graph is a mutable set of triples. It is append-only during a
// transformation run and not safe for concurrent mutation; batch
// transformation folds articles into a graph sequentially.
type Graph struct {
	triples  map[Triple]struct{}
	prefixes map[string]string
}

// NewGraph returns an empty graph with the standard prefixes bound.
func NewGraph() *Graph {
	return &Graph{
		triples:  make(map[Triple]struct{}),
		prefixes: defaultPrefixes(),
	}
}

// Bind associates a prefix with a namespace IRI for serialization.
func (g *Graph) Bind(prefix, namespace string) {
	g.prefixes[prefix] = namespace
}

// Prefixes returns a copy of the bound prefix map.
func (g *Graph) Prefixes() map[string]string {
	out := make(map[string]string, len(g.prefixes))
	for k, v := range g.prefixes {
		out[k] = v
	}
	return out
}

// Add inserts a triple, returning false if it was already present.
func (g *Graph) Add(t Triple) bool {
	if _, ok := g.triples[t]; ok {
		return false
	}
	g.triples[t] = struct{}{}
	return true
}

// AddTriple is a convenience form of Add.
func (g *Graph) AddTriple(subject, predicate string, object Term) bool {
	return g.Add(Triple{Subject: subject, Predicate: predicate, Object: object})
}

// Merge adds every triple from other into g.
func (g *Graph) Merge(other *Graph) {
	for t := range other.triples {
		g.triples[t] = struct{}{}
	}
}

// Has reports whether the exact triple is present.
func (g *Graph) Has(t Triple) bool {
	_, ok := g.triples[t]
	return ok
}

// Len returns the number of triples in the graph.
func (g *Graph) Len() int { return len(g.triples) }

// Triples returns all triples in a stable sorted order.
func (g *Graph) Triples() []Triple {
	out := make([]Triple, 0, len(g.triples))
	for t := range g.triples {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Subject != out[j].Subject {
			return out[i].Subject < out[j].Subject
		}
		if out[i].Predicate != out[j].Predicate {
			return out[i].Predicate < out[j].Predicate
		}
		if out[i].Object.Value != out[j].Object.Value {
			return out[i].Object.Value < out[j].Object.Value
		}
		return out[i].Object.Lang < out[j].Object.Lang
	})
	return out
}

// Subjects returns the distinct subject IRIs, sorted.
func (g *Graph) Subjects() []string {
	seen := make(map[string]struct{})
	for t := range g.triples {
		seen[t.Subject] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// Objects returns the object terms asserted for subject/predicate.
func (g *Graph) Objects(subject, predicate string) []Term {
	var out []Term
	for t := range g.triples {
		if t.Subject == subject && t.Predicate == predicate {
			out = append(out, t.Object)
		}
	}
	return out
}

// HasType reports whether the graph asserts rdf:type class for subject.
func (g *Graph) HasType(subject, class string) bool {
	return g.Has(Triple{Subject: subject, Predicate: RDFType, Object: IRI(class)})
}

// HasPredicate reports whether any triple uses the given predicate.
func (g *Graph) HasPredicate(predicate string) bool {
	for t := range g.triples {
		if t.Predicate == predicate {
			return true
		}
	}
	return false
}

// Stats summarizes the shape of the graph.
type Stats struct {
	Triples    int `json:"triples"`
	Subjects   int `json:"subjects"`
	Predicates int `json:"predicates"`
	Objects    int `json:"objects"`
}

// Statistics computes distinct subject/predicate/object counts.
func (g *Graph) Statistics() Stats {
	subjects := make(map[string]struct{})
	predicates := make(map[string]struct{})
	objects := make(map[Term]struct{})
	for t := range g.triples {
		subjects[t.Subject] = struct{}{}
		predicates[t.Predicate] = struct{}{}
		objects[t.Object] = struct{}{}
	}
	return Stats{
		Triples:    len(g.triples),
		Subjects:   len(subjects),
		Predicates: len(predicates),
		Objects:    len(objects),
	}
}

// WriteFile serializes the graph and writes it to path, creating parent
// directories as needed.
func (g *Graph) WriteFile(path string, format Format) error {
	data, err := g.Serialize(format)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// Equal reports whether both graphs contain exactly the same triple set.
// Plain literals and xsd:string literals compare equal, matching RDF 1.1
// semantics, so decoded graphs can be compared against generated ones.
func (g *Graph) Equal(other *Graph) bool {
	if len(g.triples) != len(other.triples) {
		return false
	}
	for t := range g.triples {
		if !other.Has(canonicalTriple(t)) && !other.Has(t) {
			return false
		}
	}
	return true
}

// canonicalTriple normalizes xsd:string-typed literals to plain literals.
func canonicalTriple(t Triple) Triple {
	if t.Object.Kind == KindLiteral && t.Object.Datatype == XSDString {
		t.Object.Datatype = ""
	}
	return t
}
