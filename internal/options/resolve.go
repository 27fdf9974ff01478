package options

import (
	"go/token"
	"strings"

	"github.com/fatih/structtag"
	"github.com/samber/lo"
	"golang.org/x/mod/module"

	"github.com/ecordell/partialgen/internal/diag"
	"github.com/ecordell/partialgen/internal/schema"
)

// Directive is the doc comment directive ("//partially:...") and struct tag
// key (`partially:"..."`) that carry options.
const Directive = "partially"

// FieldOps are the resolved options of one field.
type FieldOps struct {
	Rename      string
	Omit        bool
	Transparent bool
	// AsType replaces the field's type in the partial struct.
	AsType schema.TypeExpr
}

// StructOps are the resolved options of a struct.
type StructOps struct {
	Rename string
	// Derive is nil unless a derive option was given.
	Derive []string
	// Attributes are extra directive texts, without the leading "//".
	Attributes     []string
	SkipAttributes bool
	// Crate is the import path of the runtime package, empty for the default.
	Crate string
}

// typeState tracks which of the mutually exclusive type options was seen.
type typeState int

const (
	typeStateNone typeState = iota
	typeStateTransparent
	typeStateOverride
)

// ResolveField validates field scope arguments.
func ResolveField(args []Argument) (FieldOps, diag.Diagnostics) {
	var (
		ops   FieldOps
		diags diag.Diagnostics
		state = typeStateNone
	)

	for _, arg := range args {
		switch Lookup(arg.Name) {
		case Rename:
			if name, ok := resolveRename(arg, &diags); ok {
				ops.Rename = name
			}
		case Omit:
			if !expectKind(arg, Standalone, &diags) {
				continue
			}
			ops.Omit = true
		case Transparent:
			if !expectKind(arg, Standalone, &diags) {
				continue
			}
			if state != typeStateNone {
				diags.Add(diag.ConflictingOptions, arg.Name, "transparent cannot be combined with %s", state.option())
				continue
			}
			state = typeStateTransparent
			ops.Transparent = true
		case AsType:
			if !expectKind(arg, WithType, &diags) {
				continue
			}
			if state != typeStateNone {
				diags.Add(diag.ConflictingOptions, arg.Name, "as_type cannot be combined with %s", state.option())
				continue
			}
			state = typeStateOverride
			ops.AsType = arg.Type
		case Derive, Attribute, SkipAttributes, Crate:
			diags.Add(diag.UnsupportedArgument, arg.Name, "only valid on a struct")
		case Unknown:
			diags.Add(diag.UnsupportedArgument, arg.Name, "unknown option")
		}
	}

	if ops.Omit && (ops.Rename != "" || state != typeStateNone) {
		diags.Add(diag.ConflictingOptions, Omit.String(), "omit cannot be combined with other options")
	}

	return ops, diags
}

func (s typeState) option() string {
	switch s {
	case typeStateTransparent:
		return Transparent.String()
	case typeStateOverride:
		return AsType.String()
	default:
		return "nothing"
	}
}

// ResolveStruct validates struct scope arguments.
func ResolveStruct(args []Argument) (StructOps, diag.Diagnostics) {
	var (
		ops   StructOps
		diags diag.Diagnostics
	)

	for _, arg := range args {
		switch Lookup(arg.Name) {
		case Rename:
			if name, ok := resolveRename(arg, &diags); ok {
				ops.Rename = name
			}
		case Derive:
			if !expectKind(arg, WithList, &diags) {
				continue
			}
			derives, ok := resolveDerive(arg, &diags)
			if !ok {
				continue
			}
			ops.Derive = lo.Uniq(append(ops.Derive, derives...))
		case Attribute:
			if !expectKind(arg, WithList, &diags) {
				continue
			}
			if arg.List == "" || strings.ContainsAny(arg.List, "\r\n") {
				diags.Add(diag.UnsupportedArgument, arg.Name, "expected a single line of text")
				continue
			}
			ops.Attributes = append(ops.Attributes, arg.List)
		case SkipAttributes:
			if !expectKind(arg, Standalone, &diags) {
				continue
			}
			ops.SkipAttributes = true
		case Crate:
			if !expectKind(arg, WithLiteral, &diags) {
				continue
			}
			if err := module.CheckImportPath(arg.Literal); err != nil {
				diags.Add(diag.MalformedLiteral, arg.Name, "%v", err)
				continue
			}
			ops.Crate = arg.Literal
		case Omit, Transparent, AsType:
			diags.Add(diag.UnsupportedArgument, arg.Name, "only valid on a field")
		case Unknown:
			diags.Add(diag.UnsupportedArgument, arg.Name, "unknown option")
		}
	}

	return ops, diags
}

func expectKind(arg Argument, want Kind, diags *diag.Diagnostics) bool {
	if arg.Kind == want {
		return true
	}
	diags.Add(diag.UnsupportedArgument, arg.Name, "expected %s, found %s", usage(arg.Name, want), arg)
	return false
}

func usage(name string, kind Kind) string {
	switch kind {
	case WithType:
		return name + "=<type>"
	case WithLiteral:
		return name + `="<text>"`
	case WithList:
		return name + "(...)"
	default:
		return name
	}
}

func resolveRename(arg Argument, diags *diag.Diagnostics) (string, bool) {
	if !expectKind(arg, WithLiteral, diags) {
		return "", false
	}
	if !token.IsIdentifier(arg.Literal) {
		diags.Add(diag.MalformedLiteral, arg.Name, "%q is not a valid identifier", arg.Literal)
		return "", false
	}
	return arg.Literal, true
}

func resolveDerive(arg Argument, diags *diag.Diagnostics) ([]string, bool) {
	parts := lo.Map(strings.Split(arg.List, ","), func(part string, _ int) string {
		return strings.TrimSpace(part)
	})
	// trailing comma
	if len(parts) > 1 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}

	for _, part := range parts {
		if !isQualifiedIdent(part) {
			diags.Add(diag.UnsupportedArgument, arg.Name, "%q is not a name", part)
			return nil, false
		}
	}
	return parts, true
}

func isQualifiedIdent(s string) bool {
	pkg, name, found := strings.Cut(s, ".")
	if !found {
		return token.IsIdentifier(s)
	}
	return token.IsIdentifier(pkg) && token.IsIdentifier(name)
}

// StructPayloads returns the payloads of the "//partially:" directives among a
// struct's doc lines.
func StructPayloads(annotations []schema.Annotation) []string {
	return directivePayloads(annotations)
}

// FieldPayloads returns the payloads of a field: its "//partially:" doc
// directives first, then the value of its `partially` tag key.
func FieldPayloads(field schema.FieldSchema) ([]string, diag.Diagnostics) {
	payloads := directivePayloads(field.Annotations)
	if field.Tag == "" {
		return payloads, nil
	}

	var diags diag.Diagnostics
	tags, err := structtag.Parse(field.Tag)
	if err != nil {
		diags.Add(diag.InvalidSyntax, "", "malformed struct tag: %v", err)
		return payloads, diags
	}
	if tag, err := tags.Get(Directive); err == nil {
		payloads = append(payloads, tag.Value())
	}
	return payloads, diags
}

func directivePayloads(annotations []schema.Annotation) []string {
	return lo.FilterMap(annotations, func(a schema.Annotation, _ int) (string, bool) {
		name, payload, ok := a.Directive()
		return payload, ok && name == Directive
	})
}
