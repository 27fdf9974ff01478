package transform

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/samber/lo"

	"github.com/ecordell/partialgen/internal/options"
	"github.com/ecordell/partialgen/internal/schema"
)

// DeriveDirective names the directive rendered for the derive option. Base
// lines with this directive are never forwarded.
const DeriveDirective = "derive"

// MirroredStruct is the declaration of a partial struct.
type MirroredStruct struct {
	Name        string
	Visibility  schema.Visibility
	TypeParams  []schema.TypeParam
	Annotations []schema.Annotation
	Fields      []MirroredField
}

// Assemble builds the partial struct declaration from the transformed fields.
func Assemble(base schema.StructSchema, ops options.StructOps, fields []MirroredField) MirroredStruct {
	name := ops.Rename
	if name == "" {
		name = PartialName(base.Name)
	}

	var annotations []schema.Annotation
	if ops.Derive != nil {
		annotations = append(annotations, schema.Annotation("//"+DeriveDirective+":"+strings.Join(ops.Derive, ",")))
	}
	if !ops.SkipAttributes {
		annotations = append(annotations, lo.Filter(base.Annotations, func(a schema.Annotation, _ int) bool {
			return !a.IsDirective(DeriveDirective) && !a.IsDirective(options.Directive)
		})...)
	}
	for _, attr := range ops.Attributes {
		annotations = append(annotations, schema.Annotation("//"+attr))
	}

	return MirroredStruct{
		Name:        name,
		Visibility:  base.Visibility(),
		TypeParams:  base.TypeParams,
		Annotations: annotations,
		Fields:      fields,
	}
}

// PartialName returns the default partial struct name for a base struct,
// keeping its visibility: Config becomes PartialConfig, config becomes
// partialConfig.
func PartialName(base string) string {
	if schema.VisibilityOf(base) == schema.Exported {
		return "Partial" + base
	}
	r, size := utf8.DecodeRuneInString(base)
	return "partial" + string(unicode.ToUpper(r)) + base[size:]
}
