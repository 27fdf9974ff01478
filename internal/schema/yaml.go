package schema

import (
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
)

// Document is the YAML form of a package of struct schemas:
//
//	package: example
//	imports:
//	  - path: time
//	structs:
//	  - name: Config
//	    annotations: ["//partially:derive(Stringer)"]
//	    fields:
//	      - name: Name
//	        type: string
//	        tag: json:"name"
//	      - name: Timeout
//	        type: time.Duration
type Document struct {
	Package string          `yaml:"package"`
	Path    string          `yaml:"path,omitempty"`
	Imports []Import        `yaml:"imports,omitempty"`
	Structs []*StructSchema `yaml:"structs"`
}

// ReadYAML decodes a schema document. Every struct shares the document's
// package and imports, and defaults to KindStruct.
func ReadYAML(r io.Reader) (*Package, error) {
	var doc Document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode schema document: %w", err)
	}
	if doc.Package == "" {
		return nil, fmt.Errorf("schema document has no package")
	}

	for i, s := range doc.Structs {
		if s == nil || s.Name == "" {
			return nil, fmt.Errorf("struct %d in schema document has no name", i)
		}
		s.Package = doc.Package
		s.Imports = doc.Imports
		if s.Kind == "" {
			s.Kind = KindStruct
		}
		s.Pos = "struct " + s.Name
		for j := range s.Fields {
			s.Fields[j].Pos = fmt.Sprintf("struct %s field %d", s.Name, j)
		}
	}

	return &Package{Name: doc.Package, Path: doc.Path, Structs: doc.Structs}, nil
}
