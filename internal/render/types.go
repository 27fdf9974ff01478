package render

import (
	"go/ast"
	"go/types"
	"path"
	"regexp"
	"strings"

	"github.com/dave/jennifer/jen"
	"github.com/samber/lo"

	"github.com/ecordell/partialgen/internal/schema"
)

// ImportResolver maps package names to their full import paths
type ImportResolver struct {
	pkgToPath map[string]string
}

// NewImportResolver creates an ImportResolver from the imports of the file
// declaring a struct. Unaliased imports are keyed by the package name guessed
// from their path.
func NewImportResolver(imports []schema.Import) *ImportResolver {
	resolver := &ImportResolver{pkgToPath: make(map[string]string, len(imports))}
	for _, imp := range imports {
		if imp.Name == "_" || imp.Name == "." {
			continue
		}
		pkgName := imp.Name
		if pkgName == "" {
			pkgName = PackageName(imp.Path)
		}
		resolver.pkgToPath[pkgName] = imp.Path
	}
	return resolver
}

// Resolve returns the full import path for a package name.
// For example, "sql" might resolve to "database/sql".
func (r *ImportResolver) Resolve(pkgName string) string {
	if path, ok := r.pkgToPath[pkgName]; ok {
		return path
	}
	// Fallback for standard library single-component imports
	return pkgName
}

// register makes the file import every package under the name the source
// file used for it. An explicit alias is correct even when the guessed name
// is not the real package name.
func (r *ImportResolver) register(f *jen.File) {
	for _, pkgName := range lo.Keys(r.pkgToPath) {
		f.ImportAlias(r.pkgToPath[pkgName], pkgName)
	}
}

var majorVersion = regexp.MustCompile(`^v[0-9]+$`)

// PackageName guesses the name of the package at an import path:
// "database/sql" is sql, "github.com/goccy/go-yaml" is yaml,
// "gopkg.in/yaml.v3" is yaml and "example.com/api/v2" is api.
func PackageName(importPath string) string {
	name := path.Base(importPath)
	if majorVersion.MatchString(name) && path.Dir(importPath) != "." {
		name = path.Base(path.Dir(importPath))
	}
	if i := strings.LastIndex(name, ".v"); i > 0 && majorVersion.MatchString(name[i+1:]) {
		name = name[:i]
	}
	name = strings.TrimPrefix(name, "go-")
	return strings.Map(func(r rune) rune {
		if r == '-' || r == '.' {
			return -1
		}
		return r
	}, name)
}

// typeCode converts a type expression to jen.Code, qualifying package
// selectors through the resolver so the rendered file imports them.
func typeCode(expr schema.TypeExpr, resolver *ImportResolver) (*jen.Statement, error) {
	parsed, err := expr.Parse()
	if err != nil {
		return nil, err
	}
	return astTypeToJenCode(parsed, resolver), nil
}

// astTypeToJenCode converts an AST type expression to jen.Code for code generation.
// Anything it has no dedicated rendering for is emitted as source text.
func astTypeToJenCode(expr ast.Expr, resolver *ImportResolver) *jen.Statement {
	switch t := expr.(type) {
	case *ast.Ident:
		return jen.Id(t.Name)
	case *ast.StarExpr:
		return jen.Op("*").Add(astTypeToJenCode(t.X, resolver))
	case *ast.SelectorExpr:
		if pkg, ok := t.X.(*ast.Ident); ok {
			importPath := resolver.Resolve(pkg.Name)
			return jen.Qual(importPath, t.Sel.Name)
		}
	case *ast.ParenExpr:
		return jen.Parens(astTypeToJenCode(t.X, resolver))
	case *ast.ArrayType:
		if t.Len == nil {
			// slice
			return jen.Index().Add(astTypeToJenCode(t.Elt, resolver))
		}
		if _, ok := t.Len.(*ast.Ellipsis); ok {
			return jen.Index(jen.Op("...")).Add(astTypeToJenCode(t.Elt, resolver))
		}
		return jen.Index(jen.Op(types.ExprString(t.Len))).Add(astTypeToJenCode(t.Elt, resolver))
	case *ast.MapType:
		return jen.Map(astTypeToJenCode(t.Key, resolver)).Add(astTypeToJenCode(t.Value, resolver))
	case *ast.ChanType:
		switch t.Dir {
		case ast.SEND:
			return jen.Chan().Op("<-").Add(astTypeToJenCode(t.Value, resolver))
		case ast.RECV:
			return jen.Op("<-").Chan().Add(astTypeToJenCode(t.Value, resolver))
		default:
			return jen.Chan().Add(astTypeToJenCode(t.Value, resolver))
		}
	case *ast.FuncType:
		if t.TypeParams != nil {
			break
		}
		fn := jen.Func().Params(fieldListCode(t.Params, resolver)...)
		results := fieldListCode(t.Results, resolver)
		if len(results) == 1 && len(t.Results.List[0].Names) == 0 {
			return fn.Add(results[0])
		}
		if len(results) > 0 {
			fn.Params(results...)
		}
		return fn
	case *ast.Ellipsis:
		return jen.Op("...").Add(astTypeToJenCode(t.Elt, resolver))
	case *ast.InterfaceType:
		if t.Methods == nil || len(t.Methods.List) == 0 {
			return jen.Interface()
		}
	case *ast.StructType:
		if t.Fields == nil || len(t.Fields.List) == 0 {
			return jen.Struct()
		}
	case *ast.IndexExpr:
		return astTypeToJenCode(t.X, resolver).Types(astTypeToJenCode(t.Index, resolver))
	case *ast.IndexListExpr:
		return astTypeToJenCode(t.X, resolver).Types(lo.Map(t.Indices, func(index ast.Expr, _ int) jen.Code {
			return astTypeToJenCode(index, resolver)
		})...)
	case *ast.UnaryExpr:
		// ~T in constraints
		return jen.Op(t.Op.String()).Add(astTypeToJenCode(t.X, resolver))
	case *ast.BinaryExpr:
		// A | B in constraints
		return astTypeToJenCode(t.X, resolver).Op(t.Op.String()).Add(astTypeToJenCode(t.Y, resolver))
	}
	return jen.Op(types.ExprString(expr))
}

func fieldListCode(list *ast.FieldList, resolver *ImportResolver) []jen.Code {
	if list == nil {
		return nil
	}
	var code []jen.Code
	for _, field := range list.List {
		typ := astTypeToJenCode(field.Type, resolver)
		if len(field.Names) == 0 {
			code = append(code, typ)
			continue
		}
		for _, name := range field.Names {
			code = append(code, jen.Id(name.Name).Add(typ.Clone()))
		}
	}
	return code
}
