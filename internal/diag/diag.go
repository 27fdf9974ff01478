package diag

import (
	"fmt"
	"strings"

	"go.uber.org/multierr"
)

// Kind classifies a diagnostic.
type Kind int

const (
	// UnsupportedShape is reported for declarations that are not structs.
	UnsupportedShape Kind = iota + 1
	// UnsupportedArgument is reported for options that are unknown, malformed,
	// or used in the wrong scope.
	UnsupportedArgument
	// ConflictingOptions is reported for mutually exclusive field options.
	ConflictingOptions
	// MissingIdentifier is reported for embedded fields that would need a name.
	MissingIdentifier
	// MalformedLiteral is reported for literals that do not decode to usable text.
	MalformedLiteral
	// InvalidSyntax is reported for payloads and type expressions that do not parse.
	InvalidSyntax
)

func (k Kind) String() string {
	switch k {
	case UnsupportedShape:
		return "unsupported shape"
	case UnsupportedArgument:
		return "unsupported argument"
	case ConflictingOptions:
		return "conflicting options"
	case MissingIdentifier:
		return "missing identifier"
	case MalformedLiteral:
		return "malformed literal"
	case InvalidSyntax:
		return "invalid syntax"
	default:
		return "unknown"
	}
}

// Diagnostic is a single problem found in an annotated declaration.
type Diagnostic struct {
	Kind Kind
	// Scope names the struct ("Config") or field ("Config.Name") at fault.
	Scope string
	// Option is the offending option name, if any.
	Option  string
	Message string
	// Pos is the source position of the scope, when known.
	Pos string
}

func (d Diagnostic) Error() string {
	var b strings.Builder
	if d.Pos != "" {
		b.WriteString(d.Pos)
		b.WriteString(": ")
	}
	if d.Scope != "" {
		b.WriteString(d.Scope)
		b.WriteString(": ")
	}
	b.WriteString(d.Kind.String())
	if d.Option != "" {
		fmt.Fprintf(&b, " %q", d.Option)
	}
	if d.Message != "" {
		b.WriteString(": ")
		b.WriteString(d.Message)
	}
	return b.String()
}

// Diagnostics is an ordered collection of diagnostics.
type Diagnostics []Diagnostic

// Add appends a diagnostic.
func (d *Diagnostics) Add(kind Kind, option, format string, args ...any) {
	*d = append(*d, Diagnostic{
		Kind:    kind,
		Option:  option,
		Message: fmt.Sprintf(format, args...),
	})
}

// Merge appends every diagnostic of other.
func (d *Diagnostics) Merge(other Diagnostics) {
	*d = append(*d, other...)
}

// Within returns a copy of d with every diagnostic that has no scope or
// position attributed to scope and pos.
func (d Diagnostics) Within(scope, pos string) Diagnostics {
	out := make(Diagnostics, len(d))
	for i, diagnostic := range d {
		if diagnostic.Scope == "" {
			diagnostic.Scope = scope
		}
		if diagnostic.Pos == "" {
			diagnostic.Pos = pos
		}
		out[i] = diagnostic
	}
	return out
}

// HasErrors reports whether any diagnostic was recorded.
func (d Diagnostics) HasErrors() bool {
	return len(d) > 0
}

// Has reports whether a diagnostic of the given kind was recorded.
func (d Diagnostics) Has(kind Kind) bool {
	for _, diagnostic := range d {
		if diagnostic.Kind == kind {
			return true
		}
	}
	return false
}

// Kinds returns the kind of every diagnostic, in order.
func (d Diagnostics) Kinds() []Kind {
	kinds := make([]Kind, 0, len(d))
	for _, diagnostic := range d {
		kinds = append(kinds, diagnostic.Kind)
	}
	return kinds
}

// Err combines the diagnostics into a single error, or returns nil if there
// are none.
func (d Diagnostics) Err() error {
	var err error
	for _, diagnostic := range d {
		err = multierr.Append(err, diagnostic)
	}
	return err
}
