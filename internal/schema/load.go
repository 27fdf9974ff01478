package schema

import (
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/tools/go/packages"
)

// LoadMode specifies what information to load from packages. Only syntax is
// needed; type checking is left to the compiler that builds the output.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax

// Load loads the Go package in dir and describes the named type declarations,
// in the order they were requested.
func Load(dir string, names []string) (*Package, error) {
	fset := token.NewFileSet()
	cfg := &packages.Config{
		Mode: LoadMode,
		Dir:  dir,
		Fset: fset,
	}

	pkgs, err := packages.Load(cfg, ".")
	if err != nil {
		return nil, fmt.Errorf("failed to load package %s: %w", dir, err)
	}
	if len(pkgs) != 1 {
		return nil, fmt.Errorf("expected one package in %s, found %d", dir, len(pkgs))
	}

	pkg := pkgs[0]
	if len(pkg.Errors) > 0 {
		errs := lo.Map(pkg.Errors, func(e packages.Error, _ int) error { return e })
		return nil, fmt.Errorf("package errors: %w", errors.Join(errs...))
	}

	wanted := lo.SliceToMap(names, func(name string) (string, struct{}) {
		return name, struct{}{}
	})

	found := make(map[string]*StructSchema, len(names))
	for _, file := range pkg.Syntax {
		for _, s := range FromFile(fset, file, wanted) {
			found[s.Name] = s
		}
	}

	result := &Package{Name: pkg.Name, Path: pkg.PkgPath}
	for _, name := range names {
		s, ok := found[name]
		if !ok {
			return nil, fmt.Errorf("type %s not found in %s", name, dir)
		}
		result.Structs = append(result.Structs, s)
	}
	return result, nil
}

// FromFile describes the type declarations in file whose names are in wanted.
// Declarations that are not structs are described too, with Kind set to the
// kind of their underlying type, so the transformer can reject them.
func FromFile(fset *token.FileSet, file *ast.File, wanted map[string]struct{}) []*StructSchema {
	imports := lo.Map(file.Imports, func(spec *ast.ImportSpec, _ int) Import {
		imp := Import{Path: strings.Trim(spec.Path.Value, `"`)}
		if spec.Name != nil {
			imp.Name = spec.Name.Name
		}
		return imp
	})

	var found []*StructSchema
	for _, decl := range file.Decls {
		gd, ok := decl.(*ast.GenDecl)
		if !ok || gd.Tok != token.TYPE {
			continue
		}

		for _, spec := range gd.Specs {
			ts := spec.(*ast.TypeSpec)
			if _, ok := wanted[ts.Name.Name]; !ok {
				continue
			}

			// the doc of an ungrouped declaration is attached to the GenDecl
			doc := ts.Doc
			if doc == nil && len(gd.Specs) == 1 {
				doc = gd.Doc
			}

			s := &StructSchema{
				Name:        ts.Name.Name,
				Package:     file.Name.Name,
				Kind:        kindOf(ts),
				TypeParams:  typeParams(ts.TypeParams),
				Annotations: annotations(doc),
				Imports:     imports,
				Pos:         position(fset, ts.Pos()),
			}
			if st, ok := ts.Type.(*ast.StructType); ok && ts.Assign == token.NoPos {
				s.Fields = fields(fset, st)
			}
			found = append(found, s)
		}
	}
	return found
}

func kindOf(ts *ast.TypeSpec) string {
	if ts.Assign != token.NoPos {
		return "alias"
	}
	switch t := ts.Type.(type) {
	case *ast.StructType:
		return KindStruct
	case *ast.InterfaceType:
		return "interface"
	case *ast.FuncType:
		return "func"
	default:
		return types.ExprString(t)
	}
}

func typeParams(list *ast.FieldList) []TypeParam {
	if list == nil {
		return nil
	}
	var params []TypeParam
	for _, field := range list.List {
		constraint := TypeExpr(types.ExprString(field.Type))
		for _, name := range field.Names {
			params = append(params, TypeParam{Name: name.Name, Constraint: constraint})
		}
	}
	return params
}

func fields(fset *token.FileSet, st *ast.StructType) []FieldSchema {
	var result []FieldSchema
	for _, field := range st.Fields.List {
		base := FieldSchema{
			Type:        TypeExpr(types.ExprString(field.Type)),
			Annotations: annotations(field.Doc),
			Tag:         tagValue(field.Tag),
			Pos:         position(fset, field.Pos()),
		}

		if len(field.Names) == 0 {
			result = append(result, base)
			continue
		}
		for _, name := range field.Names {
			f := base
			f.Name = name.Name
			f.Pos = position(fset, name.Pos())
			result = append(result, f)
		}
	}
	return result
}

func annotations(doc *ast.CommentGroup) []Annotation {
	if doc == nil {
		return nil
	}
	return lo.Map(doc.List, func(c *ast.Comment, _ int) Annotation {
		return Annotation(c.Text)
	})
}

func tagValue(tag *ast.BasicLit) string {
	if tag == nil {
		return ""
	}
	value, err := strconv.Unquote(tag.Value)
	if err != nil {
		return strings.Trim(tag.Value, "`")
	}
	return value
}

func position(fset *token.FileSet, pos token.Pos) string {
	p := fset.Position(pos)
	if !p.IsValid() {
		return ""
	}
	return fmt.Sprintf("%s:%d:%d", filepath.Base(p.Filename), p.Line, p.Column)
}
