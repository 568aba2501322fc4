package rdf

// Well-known namespace IRIs used across the Vietnamese knowledge base.
const (
	NSRDF  = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	NSRDFS = "http://www.w3.org/2000/01/rdf-schema#"
	NSOWL  = "http://www.w3.org/2002/07/owl#"
	NSXSD  = "http://www.w3.org/2001/XMLSchema#"
	NSFOAF = "http://xmlns.com/foaf/0.1/"
	NSDCT  = "http://purl.org/dc/terms/"
	NSSKOS = "http://www.w3.org/2004/02/skos/core#"

	// Vietnamese DBPedia namespaces.
	NSViOntology = "http://vi.dbpedia.org/ontology/"
	NSViProperty = "http://vi.dbpedia.org/property/"
	NSViResource = "http://vi.dbpedia.org/resource/"

	// English DBPedia namespaces.
	NSDBPOntology = "http://dbpedia.org/ontology/"
	NSDBPProperty = "http://dbpedia.org/property/"
	NSDBPResource = "http://dbpedia.org/resource/"
)

// Frequently used predicate and class IRIs.
const (
	RDFType        = NSRDF + "type"
	RDFSLabel      = NSRDFS + "label"
	RDFSComment    = NSRDFS + "comment"
	RDFSSeeAlso    = NSRDFS + "seeAlso"
	RDFSDomain     = NSRDFS + "domain"
	RDFSRange      = NSRDFS + "range"
	RDFSSubClassOf = NSRDFS + "subClassOf"

	OWLClass              = NSOWL + "Class"
	OWLObjectProperty     = NSOWL + "ObjectProperty"
	OWLDatatypeProperty   = NSOWL + "DatatypeProperty"
	OWLOntology           = NSOWL + "Ontology"
	OWLSameAs             = NSOWL + "sameAs"
	OWLEquivalentClass    = NSOWL + "equivalentClass"
	OWLEquivalentProperty = NSOWL + "equivalentProperty"
	OWLVersionInfo        = NSOWL + "versionInfo"
	OWLImports            = NSOWL + "imports"

	FOAFName             = NSFOAF + "name"
	FOAFIsPrimaryTopicOf = NSFOAF + "isPrimaryTopicOf"

	DCTDescription = NSDCT + "description"
	DCTLanguage    = NSDCT + "language"
	DCTSubject     = NSDCT + "subject"
	DCTModified    = NSDCT + "modified"
	DCTCreator     = NSDCT + "creator"

	SKOSConcept   = NSSKOS + "Concept"
	SKOSPrefLabel = NSSKOS + "prefLabel"

	XSDString   = NSXSD + "string"
	XSDInteger  = NSXSD + "integer"
	XSDDouble   = NSXSD + "double"
	XSDDate     = NSXSD + "date"
	XSDDateTime = NSXSD + "dateTime"
	XSDBoolean  = NSXSD + "boolean"
)

// defaultPrefixes returns the standard prefix map bound to new graphs.
func defaultPrefixes() map[string]string {
	return map[string]string{
		"rdf":     NSRDF,
		"rdfs":    NSRDFS,
		"owl":     NSOWL,
		"xsd":     NSXSD,
		"foaf":    NSFOAF,
		"dct":     NSDCT,
		"skos":    NSSKOS,
		"vi":      NSViOntology,
		"vidbp":   NSViProperty,
		"vires":   NSViResource,
		"dbo":     NSDBPOntology,
		"dbp":     NSDBPProperty,
		"dbpedia": NSDBPResource,
	}
}
