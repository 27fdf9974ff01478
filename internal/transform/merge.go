package transform

import (
	"go/ast"
	"go/types"

	"github.com/ecordell/partialgen/internal/diag"
	"github.com/ecordell/partialgen/internal/options"
	"github.com/ecordell/partialgen/internal/schema"
)

// DefaultCrate is the import path of the runtime package referenced by
// generated code unless the crate option says otherwise.
const DefaultCrate = "github.com/ecordell/partialgen/partially"

// Presence is how a partial field signals that it carries a value.
type Presence int

const (
	// Pointer fields are present when non-nil; the value is *x.
	Pointer Presence = iota + 1
	// Nilable fields are present when non-nil; the value is x itself.
	Nilable
)

// Conversion is how a present value is stored into the base field.
type Conversion int

const (
	// Identity assigns the present value as is.
	Identity Conversion = iota + 1
	// Rewrap assigns the partial pointer to a base field of the same pointer type.
	Rewrap
	// Convert assigns BaseType(value).
	Convert
)

// MergeEntry describes how one partial field is merged into its base field.
type MergeEntry struct {
	BaseField    string
	PartialField string
	BaseType     schema.TypeExpr
	PartialType  schema.TypeExpr
	Presence     Presence
	Conversion   Conversion
}

// MergeSpec describes the ApplySome method of a base struct.
type MergeSpec struct {
	Base       string
	Partial    string
	TypeParams []schema.TypeParam
	Crate      string
	Entries    []MergeEntry
}

// Generic reports whether the base struct has type parameters.
func (m MergeSpec) Generic() bool {
	return len(m.TypeParams) > 0
}

// FieldPair is a base field with its non-omitted partial counterpart.
type FieldPair struct {
	Base    schema.FieldSchema
	Ops     options.FieldOps
	Partial MirroredField
}

// Merge describes the merge of partial into base, one entry per pair in base
// declaration order.
func Merge(base schema.StructSchema, partial MirroredStruct, pairs []FieldPair, ops options.StructOps) (MergeSpec, diag.Diagnostics) {
	spec := MergeSpec{
		Base:       base.Name,
		Partial:    partial.Name,
		TypeParams: base.TypeParams,
		Crate:      ops.Crate,
	}
	if spec.Crate == "" {
		spec.Crate = DefaultCrate
	}

	var diags diag.Diagnostics
	for _, pair := range pairs {
		entry, fieldDiags := mergeEntry(pair)
		if fieldDiags.HasErrors() {
			diags.Merge(fieldDiags.Within(base.Name+"."+pair.Base.Name, pair.Base.Pos))
			continue
		}
		spec.Entries = append(spec.Entries, entry)
	}
	return spec, diags
}

func mergeEntry(pair FieldPair) (MergeEntry, diag.Diagnostics) {
	var diags diag.Diagnostics
	entry := MergeEntry{
		BaseField:    pair.Base.Name,
		PartialField: pair.Partial.Name,
		BaseType:     pair.Base.Type,
		PartialType:  pair.Partial.Type,
	}

	baseExpr, err := pair.Base.Type.Parse()
	if err != nil {
		diags.Add(diag.InvalidSyntax, "", "type %s: %v", pair.Base.Type, err)
	}
	partialExpr, err := pair.Partial.Type.Parse()
	if err != nil {
		diags.Add(diag.InvalidSyntax, typeOption(pair.Ops), "type %s: %v", pair.Partial.Type, err)
	}
	if diags.HasErrors() {
		return entry, diags
	}

	valueExpr := partialExpr
	if star, ok := partialExpr.(*ast.StarExpr); ok {
		entry.Presence = Pointer
		valueExpr = star.X
	} else {
		entry.Presence = Nilable
		if !canBeNil(partialExpr) {
			diags.Add(diag.UnsupportedArgument, typeOption(pair.Ops), "type %s cannot be nil, so it cannot signal absence", pair.Partial.Type)
			return entry, diags
		}
	}

	value := types.ExprString(valueExpr)
	switch {
	case types.ExprString(baseExpr) == value:
		entry.Conversion = Identity
	case entry.Presence == Pointer && isPointerTo(baseExpr, value):
		entry.Conversion = Rewrap
	default:
		entry.Conversion = Convert
	}
	return entry, nil
}

func typeOption(ops options.FieldOps) string {
	switch {
	case ops.Transparent:
		return options.Transparent.String()
	case ops.AsType != "":
		return options.AsType.String()
	default:
		return ""
	}
}

func isPointerTo(expr ast.Expr, elem string) bool {
	star, ok := expr.(*ast.StarExpr)
	return ok && types.ExprString(star.X) == elem
}

// nonNilable are the predeclared types whose values are never nil.
var nonNilable = map[string]struct{}{
	"bool": {}, "string": {}, "byte": {}, "rune": {},
	"int": {}, "int8": {}, "int16": {}, "int32": {}, "int64": {},
	"uint": {}, "uint8": {}, "uint16": {}, "uint32": {}, "uint64": {}, "uintptr": {},
	"float32": {}, "float64": {}, "complex64": {}, "complex128": {},
}

// canBeNil reports whether values of expr may be nil. Named types are
// assumed to be nilable; the compiler rejects the generated code otherwise.
func canBeNil(expr ast.Expr) bool {
	switch e := expr.(type) {
	case *ast.Ident:
		_, basic := nonNilable[e.Name]
		return !basic
	case *ast.ArrayType:
		return e.Len == nil
	case *ast.StructType:
		return false
	case *ast.ParenExpr:
		return canBeNil(e.X)
	default:
		return true
	}
}
