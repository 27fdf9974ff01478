// Package transform derives partial structs and their merge methods from
// annotated struct schemas.
//
// Transform is a pure function of its input: it resolves the options of the
// struct and of every field, reports every problem it finds, and returns the
// partial struct declaration together with the description of ApplySome.
package transform

import (
	"fmt"

	"github.com/ecordell/partialgen/internal/diag"
	"github.com/ecordell/partialgen/internal/options"
	"github.com/ecordell/partialgen/internal/schema"
)

// Result is the outcome of transforming one struct.
type Result struct {
	Schema *schema.StructSchema
	Struct MirroredStruct
	Merge  MergeSpec
}

// Transform derives the partial struct of s. On any diagnostic no result is
// returned.
func Transform(s *schema.StructSchema) (*Result, diag.Diagnostics) {
	var diags diag.Diagnostics
	if !s.IsStruct() {
		diags.Add(diag.UnsupportedShape, "", "%s is a %s type, only struct types with named fields are supported", s.Name, s.Kind)
		return nil, diags.Within(s.Name, s.Pos)
	}

	structArgs, parseDiags := options.ParseAll(options.StructPayloads(s.Annotations))
	structOps, resolveDiags := options.ResolveStruct(structArgs)
	diags.Merge(parseDiags.Within(s.Name, s.Pos))
	diags.Merge(resolveDiags.Within(s.Name, s.Pos))

	var (
		fields []MirroredField
		pairs  []FieldPair
	)
	for _, f := range s.Fields {
		ops, fieldDiags := resolveField(f)
		if !fieldDiags.HasErrors() {
			var (
				mirrored MirroredField
				kept     bool
			)
			mirrored, kept, fieldDiags = Field(f, ops)
			if kept {
				fields = append(fields, mirrored)
				pairs = append(pairs, FieldPair{Base: f, Ops: ops, Partial: mirrored})
			}
		}
		diags.Merge(fieldDiags.Within(fieldScope(s.Name, f), f.Pos))
	}
	if diags.HasErrors() {
		return nil, diags
	}

	mirrored := Assemble(*s, structOps, fields)
	merge, mergeDiags := Merge(*s, mirrored, pairs, structOps)
	if mergeDiags.HasErrors() {
		return nil, mergeDiags
	}

	return &Result{Schema: s, Struct: mirrored, Merge: merge}, nil
}

// All transforms every struct of pkg, reporting the diagnostics of all of
// them.
func All(pkg *schema.Package) ([]*Result, diag.Diagnostics) {
	var (
		results []*Result
		diags   diag.Diagnostics
	)
	for _, s := range pkg.Structs {
		result, structDiags := Transform(s)
		diags.Merge(structDiags)
		if result != nil {
			results = append(results, result)
		}
	}
	if diags.HasErrors() {
		return nil, diags
	}
	return results, nil
}

func resolveField(f schema.FieldSchema) (options.FieldOps, diag.Diagnostics) {
	var diags diag.Diagnostics
	payloads, payloadDiags := options.FieldPayloads(f)
	diags.Merge(payloadDiags)

	args, parseDiags := options.ParseAll(payloads)
	diags.Merge(parseDiags)

	ops, resolveDiags := options.ResolveField(args)
	diags.Merge(resolveDiags)
	return ops, diags
}

func fieldScope(structName string, f schema.FieldSchema) string {
	if f.Embedded() {
		return fmt.Sprintf("%s.(embedded %s)", structName, f.Type)
	}
	return structName + "." + f.Name
}
