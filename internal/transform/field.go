package transform

import (
	"github.com/fatih/structtag"
	"github.com/samber/lo"

	"github.com/ecordell/partialgen/internal/diag"
	"github.com/ecordell/partialgen/internal/options"
	"github.com/ecordell/partialgen/internal/schema"
)

// MirroredField is one field of a partial struct.
type MirroredField struct {
	Name        string
	Type        schema.TypeExpr
	Annotations []schema.Annotation
	// Tag is the base field's tag without the partially key.
	Tag string
}

// Field derives the partial counterpart of a base field. It reports false
// if the field is omitted.
func Field(field schema.FieldSchema, ops options.FieldOps) (MirroredField, bool, diag.Diagnostics) {
	var diags diag.Diagnostics
	if ops.Omit {
		return MirroredField{}, false, nil
	}

	// ApplySome assigns through the base field's own name
	if field.Embedded() {
		diags.Add(diag.MissingIdentifier, "", "embedded field %s has no name to merge into, omit it", field.Type)
		return MirroredField{}, false, diags
	}

	name := field.Name
	if ops.Rename != "" {
		name = ops.Rename
	}

	var typ schema.TypeExpr
	switch {
	case ops.Transparent:
		typ = field.Type
	case ops.AsType != "":
		typ = ops.AsType
	default:
		typ = "*" + field.Type
	}

	tag, err := forwardTag(field.Tag)
	if err != nil {
		diags.Add(diag.InvalidSyntax, "", "malformed struct tag: %v", err)
		return MirroredField{}, false, diags
	}

	return MirroredField{
		Name:        name,
		Type:        typ,
		Annotations: forwardAnnotations(field.Annotations),
		Tag:         tag,
	}, true, nil
}

func forwardTag(raw string) (string, error) {
	if raw == "" {
		return "", nil
	}
	tags, err := structtag.Parse(raw)
	if err != nil {
		return "", err
	}
	tags.Delete(options.Directive)
	if tags.Len() == 0 {
		return "", nil
	}
	return tags.String(), nil
}

func forwardAnnotations(annotations []schema.Annotation) []schema.Annotation {
	return lo.Filter(annotations, func(a schema.Annotation, _ int) bool {
		return !a.IsDirective(options.Directive)
	})
}
