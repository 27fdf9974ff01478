// Package main implements partialgen, a code generator for partial structs in Go.
//
// partialgen derives, for an annotated struct, a partial struct in which every
// field may be absent, and an ApplySome method that copies the present fields
// of a partial value onto the base struct:
//   - each field becomes a pointer to its type, unless told otherwise
//   - fields can be renamed, retyped, kept as they are, or omitted
//   - doc comment lines and struct tags are forwarded to the partial struct
//
// Usage:
//
//	partialgen [flags] <package-path> <struct-name> [<struct-name>...]
//	partialgen [flags] -schema <file.yaml>
//
// Flags:
//
//	-output <path>
//	    Location where generated partial types will be written (required)
//	-package <name>
//	    Name of package to use in output file (optional, inferred from output directory)
//	-crate <import-path>
//	    Import path of the runtime package (default: "github.com/ecordell/partialgen/partially")
//	-schema <path>
//	    Read struct schemas from a YAML document instead of Go source
//	-debug
//	    Dump the loaded schemas to stderr
//
// Example:
//
//	//go:generate go run github.com/ecordell/partialgen -output=config_partial.go . Config
//
// Options:
//
// Struct options are given in "//partially:" doc comment directives:
//   - rename="Name" - name of the partial struct (default: Partial<Struct>)
//   - derive(A, B) - add a "//derive:A,B" directive to the partial struct
//   - attribute(text) - add a "//text" line to the partial struct's doc comment
//   - skip_attributes - do not forward the struct's doc comment
//   - crate="import/path" - runtime package referenced by the generated code
//
// Field options are given in "//partially:" directives or the `partially` tag:
//   - rename="Name" - name of the partial field
//   - omit - leave the field out of the partial struct
//   - transparent - keep the field's type, which must be able to be nil
//   - as_type=T - use T as the partial field's type
//
// Example struct:
//
//	//partially:derive(Stringer)
//	type Config struct {
//	    Name    string
//	    Port    int   `partially:"as_type=*int32"`
//	    TLS     *bool `partially:"transparent"`
//	    session []byte `partially:"omit"`
//	}
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"go/parser"
	"go/token"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/creasty/defaults"
	"github.com/dave/jennifer/jen"
	"github.com/davecgh/go-spew/spew"
	"github.com/fatih/color"
	"github.com/samber/lo"

	"github.com/ecordell/partialgen/internal/diag"
	"github.com/ecordell/partialgen/internal/render"
	"github.com/ecordell/partialgen/internal/schema"
	"github.com/ecordell/partialgen/internal/transform"
)

// Options are the command line options of partialgen.
type Options struct {
	Output  string
	Package string
	Crate   string `default:"github.com/ecordell/partialgen/partially"`
	Schema  string
	Debug   bool
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	var opts Options
	defaults.MustSet(&opts)

	fs := flag.NewFlagSet("partialgen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.Output, "output", opts.Output, "Location where generated partial types will be written")
	fs.StringVar(&opts.Package, "package", opts.Package, "Name of package to use in output file")
	fs.StringVar(&opts.Crate, "crate", opts.Crate, "Import path of the runtime package referenced by generated code")
	fs.StringVar(&opts.Schema, "schema", opts.Schema, "YAML document describing the structs, instead of Go source")
	fs.BoolVar(&opts.Debug, "debug", opts.Debug, "Dump the loaded schemas to stderr")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if opts.Output == "" {
		return errors.New("must specify an output file with -output")
	}

	pkg, err := load(opts, fs.Args())
	if err != nil {
		return err
	}
	if opts.Debug {
		spew.Fdump(stderr, pkg)
	}

	structNames := lo.Map(pkg.Structs, func(s *schema.StructSchema, _ int) string { return s.Name })
	fmt.Fprintf(stdout, "Generating partial types for %s.%s...\n", pkg.Name, strings.Join(structNames, ", "))

	results, diags := transform.All(pkg)
	if diags.HasErrors() {
		printDiagnostics(stderr, diags)
		return &problemsError{count: len(diags), pkg: pkg.Name, err: diags.Err()}
	}
	for _, result := range results {
		if result.Merge.Crate == transform.DefaultCrate {
			result.Merge.Crate = opts.Crate
		}
	}

	packageName := outputPackageName(opts, pkg.Name)
	pkgPath := ""
	if packageName == pkg.Name {
		pkgPath = pkg.Path
	}
	buf, err := render.File(pkgPath, packageName, results)
	if err != nil {
		return err
	}

	return writeOutput(opts.Output, buf)
}

// writeOutput renders f completely before touching path, so a failed
// render leaves an existing file as it was.
func writeOutput(path string, f *jen.File) error {
	var out bytes.Buffer
	if err := f.Render(&out); err != nil {
		return fmt.Errorf("failed to render %s: %w", path, err)
	}
	if err := os.WriteFile(path, out.Bytes(), 0o644); err != nil {
		return fmt.Errorf("couldn't write %s: %w", path, err)
	}
	return nil
}

// problemsError is returned once the diagnostics behind it were printed.
type problemsError struct {
	count int
	pkg   string
	err   error
}

func (e *problemsError) Error() string {
	return fmt.Sprintf("found %d problem(s) in %s", e.count, e.pkg)
}

func (e *problemsError) Unwrap() error {
	return e.err
}

func load(opts Options, args []string) (*schema.Package, error) {
	if opts.Schema != "" {
		if len(args) > 0 {
			return nil, errors.New("-schema cannot be combined with a package directory")
		}
		f, err := os.Open(opts.Schema)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return schema.ReadYAML(f)
	}

	if len(args) < 2 {
		return nil, errors.New("must specify a package directory and a struct to generate a partial type for")
	}
	return schema.Load(args[0], args[1:])
}

// outputPackageName determines the package name from the flag or the output
// directory, falling back to the package of the structs.
func outputPackageName(opts Options, fallback string) string {
	if opts.Package != "" {
		return opts.Package
	}
	// Parse a Go file in the output directory to get package name
	fset := token.NewFileSet()
	pkgs, err := parser.ParseDir(fset, filepath.Dir(opts.Output), func(fi os.FileInfo) bool {
		return !strings.HasSuffix(fi.Name(), "_test.go")
	}, parser.PackageClauseOnly)
	if err != nil || len(pkgs) != 1 {
		return fallback
	}
	for name := range pkgs {
		return name
	}
	return fallback
}

func printDiagnostics(w io.Writer, diags diag.Diagnostics) {
	location := color.New(color.Bold)
	kind := color.New(color.FgRed, color.Bold)
	for _, d := range diags {
		var prefix []string
		if d.Pos != "" {
			prefix = append(prefix, d.Pos)
		}
		if d.Scope != "" {
			prefix = append(prefix, d.Scope)
		}
		fmt.Fprintf(w, "%s: %s", location.Sprint(strings.Join(prefix, ": ")), kind.Sprint(d.Kind))
		if d.Option != "" {
			fmt.Fprintf(w, " %q", d.Option)
		}
		fmt.Fprintf(w, ": %s\n", d.Message)
	}
}
