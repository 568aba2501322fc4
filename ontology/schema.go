// Package ontology holds the canonical Vietnamese knowledge schema:
// classes, properties with domain/range constraints, and the mapping
// from Wikipedia infobox templates to ontology classes.
package ontology

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Schema is the YAML-shaped ontology definition.
type Schema struct {
	Ontology   Metadata               `yaml:"ontology"`
	Namespaces map[string]string      `yaml:"namespaces"`
	Classes    map[string]ClassDef    `yaml:"classes"`
	Properties map[string]PropertyDef `yaml:"properties"`
	Mappings   Mappings               `yaml:"mappings"`
}

// Metadata identifies the ontology and its namespace layout.
type Metadata struct {
	BaseURI     string `yaml:"base_uri"`
	ResourceURI string `yaml:"resource_uri"`
	PropertyURI string `yaml:"property_uri"`
	Version     string `yaml:"version"`
}

// ClassDef declares one ontology class.
type ClassDef struct {
	URI             string   `yaml:"uri"`
	LabelVi         string   `yaml:"label_vi"`
	LabelEn         string   `yaml:"label_en"`
	CommentVi       string   `yaml:"comment_vi"`
	EquivalentClass string   `yaml:"equivalent_class,omitempty"`
	SubClasses      []string `yaml:"subclasses,omitempty"`
}

// PropertyDef declares one ontology property. Range is either a class
// name declared in the schema or an xsd: datatype tag; the property is
// an object property exactly when the range names a known class.
type PropertyDef struct {
	URI                string `yaml:"uri"`
	LabelVi            string `yaml:"label_vi"`
	LabelEn            string `yaml:"label_en"`
	CommentVi          string `yaml:"comment_vi"`
	Domain             string `yaml:"domain,omitempty"`
	Range              string `yaml:"range,omitempty"`
	EquivalentProperty string `yaml:"equivalent_property,omitempty"`
}

// Mappings routes infobox template names to class names.
type Mappings struct {
	InfoboxTemplates map[string]string `yaml:"infobox_templates"`
}

// LoadSchema reads a schema definition from a YAML file.
func LoadSchema(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read schema file: %w", err)
	}
	var s Schema
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse schema file: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks that the schema definition is usable.
func (s *Schema) Validate() error {
	if s.Ontology.BaseURI == "" {
		return fmt.Errorf("ontology.base_uri is required")
	}
	if len(s.Classes) == 0 {
		return fmt.Errorf("at least one class is required")
	}
	for name, c := range s.Classes {
		if c.URI == "" {
			return fmt.Errorf("class %s: uri is required", name)
		}
		if c.LabelVi == "" {
			return fmt.Errorf("class %s: label_vi is required", name)
		}
	}
	for name, p := range s.Properties {
		if p.URI == "" {
			return fmt.Errorf("property %s: uri is required", name)
		}
	}
	return nil
}
