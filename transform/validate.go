package transform

import "github.com/dbpedia-vi/vikb/rdf"

// ValidationIssue is one diagnostic finding against the working graph.
type ValidationIssue struct {
	Subject   string `json:"subject"`
	Predicate string `json:"predicate,omitempty"`
	Object    string `json:"object,omitempty"`
	Issue     string `json:"issue"`
}

// ValidationReport summarizes a diagnostic pass over the graph.
// Findings never remove triples.
type ValidationReport struct {
	TotalTriples     int               `json:"total_triples"`
	UniqueSubjects   int               `json:"unique_subjects"`
	UniquePredicates int               `json:"unique_predicates"`
	UniqueObjects    int               `json:"unique_objects"`
	Errors           []ValidationIssue `json:"validation_errors"`
	Warnings         []ValidationIssue `json:"warnings"`
}

// Validate checks every triple against the ontology's declared
// predicates and domain/range constraints, and flags typed subjects
// that carry no label. Constraint checks see only the working graph,
// so treat the error list as a heuristic, not a correctness gate.
func (t *Transformer) Validate() ValidationReport {
	report := ValidationReport{TotalTriples: t.graph.Len()}

	subjects := make(map[string]struct{})
	predicates := make(map[string]struct{})
	objects := make(map[rdf.Term]struct{})
	typed := make(map[string]struct{})
	labeled := make(map[string]struct{})

	for _, triple := range t.graph.Triples() {
		subjects[triple.Subject] = struct{}{}
		predicates[triple.Predicate] = struct{}{}
		objects[triple.Object] = struct{}{}
		switch triple.Predicate {
		case rdf.RDFType:
			typed[triple.Subject] = struct{}{}
		case rdf.RDFSLabel:
			labeled[triple.Subject] = struct{}{}
		}

		if !t.model.ValidateTriple(t.graph, triple) {
			report.Errors = append(report.Errors, ValidationIssue{
				Subject:   triple.Subject,
				Predicate: triple.Predicate,
				Object:    triple.Object.Value,
				Issue:     "ontology constraint violation",
			})
		}
	}

	for subject := range typed {
		if _, ok := labeled[subject]; !ok {
			report.Warnings = append(report.Warnings, ValidationIssue{
				Subject: subject,
				Issue:   "missing rdfs:label",
			})
		}
	}

	report.UniqueSubjects = len(subjects)
	report.UniquePredicates = len(predicates)
	report.UniqueObjects = len(objects)
	return report
}
