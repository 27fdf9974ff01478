// Package schema describes annotated struct declarations as plain data.
//
// A StructSchema is what the transformer consumes. It can be loaded from Go
// source (Load) or from a YAML document (ReadYAML), and carries everything
// needed to derive the partial type: type parameters, doc comment lines,
// fields with their tags, and the imports of the declaring file.
package schema

import (
	"go/ast"
	"go/parser"
	"strings"
	"unicode"
)

// KindStruct is the Kind of a declaration that can be transformed.
const KindStruct = "struct"

// Visibility is the Go exportedness of an identifier.
type Visibility int

const (
	Unexported Visibility = iota
	Exported
)

func (v Visibility) String() string {
	if v == Exported {
		return "exported"
	}
	return "unexported"
}

// VisibilityOf returns the visibility that Go assigns to name.
func VisibilityOf(name string) Visibility {
	if ast.IsExported(name) {
		return Exported
	}
	return Unexported
}

// TypeExpr is the source text of a Go type expression, such as "*time.Time"
// or "map[string]Pair[K, V]".
type TypeExpr string

// Parse parses the type expression.
func (t TypeExpr) Parse() (ast.Expr, error) {
	return parser.ParseExpr(string(t))
}

func (t TypeExpr) String() string {
	return string(t)
}

// Annotation is one line of a doc comment, stored verbatim including its
// comment markers (e.g. "// Name is the display name." or "//easyjson:json").
type Annotation string

// Directive splits a directive comment of the form "//name:payload".
// Ordinary comment lines, which have a space after the slashes, are not
// directives.
func (a Annotation) Directive() (name, payload string, ok bool) {
	text, found := strings.CutPrefix(string(a), "//")
	if !found || text == "" {
		return "", "", false
	}
	name, payload, found = strings.Cut(text, ":")
	if !found || name == "" {
		return "", "", false
	}
	for _, r := range name {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' && r != '-' && r != '.' {
			return "", "", false
		}
	}
	return name, payload, true
}

// IsDirective reports whether a is a directive with the given name.
func (a Annotation) IsDirective(name string) bool {
	n, _, ok := a.Directive()
	return ok && n == name
}

// TypeParam is one type parameter of a generic struct.
type TypeParam struct {
	Name       string   `yaml:"name"`
	Constraint TypeExpr `yaml:"constraint"`
}

// Import is one import of the file declaring a struct. Name is empty unless
// the import is aliased.
type Import struct {
	Name string `yaml:"name,omitempty"`
	Path string `yaml:"path"`
}

// FieldSchema describes one struct field. Fields declared together
// ("A, B int") are described separately.
type FieldSchema struct {
	// Name is empty for embedded fields.
	Name        string       `yaml:"name,omitempty"`
	Type        TypeExpr     `yaml:"type"`
	Annotations []Annotation `yaml:"annotations,omitempty"`
	// Tag is the raw struct tag, without the enclosing quotes.
	Tag string `yaml:"tag,omitempty"`
	Pos string `yaml:"-"`
}

// Embedded reports whether the field has no identifier of its own.
func (f FieldSchema) Embedded() bool {
	return f.Name == ""
}

// Visibility returns the Go exportedness of the field.
func (f FieldSchema) Visibility() Visibility {
	return VisibilityOf(f.Name)
}

// StructSchema describes one annotated type declaration.
type StructSchema struct {
	Name    string `yaml:"name"`
	Package string `yaml:"-"`
	// Kind is KindStruct for struct types and describes the underlying type
	// otherwise ("interface", "int", ...).
	Kind        string        `yaml:"kind,omitempty"`
	TypeParams  []TypeParam   `yaml:"typeParams,omitempty"`
	Annotations []Annotation  `yaml:"annotations,omitempty"`
	Fields      []FieldSchema `yaml:"fields"`
	Imports     []Import      `yaml:"-"`
	Pos         string        `yaml:"-"`
}

// Visibility returns the Go exportedness of the struct.
func (s StructSchema) Visibility() Visibility {
	return VisibilityOf(s.Name)
}

// IsStruct reports whether the declaration is a struct type.
func (s StructSchema) IsStruct() bool {
	return s.Kind == KindStruct
}

// Package is the set of schemas loaded from one Go package or schema document.
type Package struct {
	Name    string
	Path    string
	Structs []*StructSchema
}
