// Package render turns transformation results into Go source with jennifer.
package render

import (
	"fmt"
	"go/ast"
	"strconv"
	"strings"

	"github.com/dave/jennifer/jen"
	"github.com/samber/lo"

	"github.com/ecordell/partialgen/internal/schema"
	"github.com/ecordell/partialgen/internal/transform"
)

// Header is the package comment of every generated file.
const Header = "Code generated by github.com/ecordell/partialgen. DO NOT EDIT."

// File renders the partial struct and merge method of every result into a
// file of package pkgName. pkgPath is the import path of that package; types
// it declares are not qualified.
func File(pkgPath, pkgName string, results []*transform.Result) (*jen.File, error) {
	buf := jen.NewFilePathName(pkgPath, pkgName)
	buf.PackageComment(Header)

	for _, result := range results {
		var imports []schema.Import
		if result.Schema != nil {
			imports = result.Schema.Imports
		}
		resolver := NewImportResolver(imports)
		resolver.register(buf)

		if err := Struct(buf, result.Struct, resolver); err != nil {
			return nil, fmt.Errorf("failed to render %s: %w", result.Struct.Name, err)
		}
		if err := Merge(buf, result.Merge, resolver); err != nil {
			return nil, fmt.Errorf("failed to render %s.ApplySome: %w", result.Merge.Base, err)
		}
	}
	return buf, nil
}

// Struct renders the declaration of a partial struct, its annotations as the
// doc comment.
func Struct(buf *jen.File, s transform.MirroredStruct, resolver *ImportResolver) error {
	typeParams, err := typeParamsCode(s.TypeParams, resolver)
	if err != nil {
		return err
	}

	fields := make([]jen.Code, 0, len(s.Fields))
	for _, field := range s.Fields {
		typ, err := typeCode(field.Type, resolver)
		if err != nil {
			return fmt.Errorf("field %s: %w", field.Name, err)
		}
		for _, a := range field.Annotations {
			fields = append(fields, jen.Comment(string(a)))
		}
		stmt := jen.Id(field.Name).Add(typ)
		if field.Tag != "" {
			stmt.Op(rawTag(field.Tag))
		}
		fields = append(fields, stmt)
	}

	for _, a := range s.Annotations {
		buf.Comment(string(a))
	}
	stmt := buf.Type().Id(s.Name)
	if len(typeParams) > 0 {
		stmt.Types(typeParams...)
	}
	stmt.Struct(fields...)
	return nil
}

// Merge renders the ApplySome method of a base struct and, for non-generic
// bases, the assertion that the base implements Partial.
func Merge(buf *jen.File, m transform.MergeSpec, resolver *ImportResolver) error {
	receiverId := strings.ToLower(string([]rune(m.Base)[:1]))
	if receiverId == "_" {
		receiverId = "b"
	}
	partialId := "partial"
	baseRef := instance(m.Base, m.TypeParams)
	partialRef := instance(m.Partial, m.TypeParams)

	assignments := make([]jen.Code, 0, len(m.Entries))
	for _, e := range m.Entries {
		value, err := mergeValue(jen.Id(partialId).Dot(e.PartialField), e, resolver)
		if err != nil {
			return fmt.Errorf("field %s: %w", e.BaseField, err)
		}
		assignments = append(assignments, jen.If(jen.Id(partialId).Dot(e.PartialField).Op("!=").Nil()).Block(
			jen.Id(receiverId).Dot(e.BaseField).Op("=").Add(value),
			jen.Id("applied").Op("=").True(),
		))
	}

	buf.Comment(fmt.Sprintf("ApplySome sets every field of %s that is present in partial and reports whether any field was set.", m.Base))
	buf.Func().Params(jen.Id(receiverId).Op("*").Add(baseRef)).Id("ApplySome").
		Params(jen.Id(partialId).Add(partialRef)).Bool().
		BlockFunc(func(grp *jen.Group) {
			grp.Id("applied").Op(":=").False()
			for _, a := range assignments {
				grp.Add(a)
			}
			grp.Return(jen.Id("applied"))
		})

	if !m.Generic() {
		buf.Var().Id("_").Qual(m.Crate, "Partial").Types(partialRef.Clone()).
			Op("=").Parens(jen.Op("*").Id(m.Base)).Call(jen.Nil())
	}
	return nil
}

func mergeValue(field *jen.Statement, e transform.MergeEntry, resolver *ImportResolver) (*jen.Statement, error) {
	if e.Conversion == transform.Rewrap {
		return field, nil
	}

	value := field
	if e.Presence == transform.Pointer {
		value = jen.Op("*").Add(field)
	}
	if e.Conversion == transform.Identity {
		return value, nil
	}

	parsed, err := e.BaseType.Parse()
	if err != nil {
		return nil, err
	}
	target := astTypeToJenCode(parsed, resolver)
	switch parsed.(type) {
	case *ast.Ident, *ast.SelectorExpr:
		return target.Call(value), nil
	default:
		return jen.Parens(target).Call(value), nil
	}
}

// instance refers to a possibly generic type with its own type parameters,
// e.g. Pair[K, V].
func instance(name string, params []schema.TypeParam) *jen.Statement {
	ref := jen.Id(name)
	if len(params) == 0 {
		return ref
	}
	return ref.Types(lo.Map(params, func(p schema.TypeParam, _ int) jen.Code {
		return jen.Id(p.Name)
	})...)
}

func typeParamsCode(params []schema.TypeParam, resolver *ImportResolver) ([]jen.Code, error) {
	code := make([]jen.Code, 0, len(params))
	for _, p := range params {
		constraint, err := typeCode(p.Constraint, resolver)
		if err != nil {
			return nil, fmt.Errorf("type parameter %s: %w", p.Name, err)
		}
		code = append(code, jen.Id(p.Name).Add(constraint))
	}
	return code, nil
}

func rawTag(tag string) string {
	if strings.Contains(tag, "`") {
		return strconv.Quote(tag)
	}
	return "`" + tag + "`"
}
