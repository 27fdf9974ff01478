// Package options parses and resolves the `partially` options attached to a
// struct and its fields.
//
// A payload is a comma separated list of arguments:
//
//	rename="PartialConfig", derive(Stringer, Equal), skip_attributes
//	as_type=*int32
//
// Parse turns a payload into Arguments without judging them; ResolveStruct
// and ResolveField validate the arguments for their scope.
package options

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/scanner"
	"go/token"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/ecordell/partialgen/internal/diag"
	"github.com/ecordell/partialgen/internal/schema"
)

// Kind is the shape of an Argument.
type Kind int

const (
	// Standalone is a bare name: `omit`.
	Standalone Kind = iota + 1
	// WithType is a name paired with a type expression: `as_type=*int32`.
	WithType
	// WithLiteral is a name paired with a string or rune literal: `rename="X"`.
	WithLiteral
	// WithList is a name followed by a parenthesised list: `derive(A, B)`.
	WithList
)

func (k Kind) String() string {
	switch k {
	case Standalone:
		return "Standalone"
	case WithType:
		return "WithType"
	case WithLiteral:
		return "WithLiteral"
	case WithList:
		return "WithList"
	default:
		return "Invalid"
	}
}

// Argument is one parsed option.
type Argument struct {
	Kind Kind
	Name string
	// Type is set for WithType arguments, verbatim from the payload.
	Type schema.TypeExpr
	// Literal is the decoded value of WithLiteral arguments.
	Literal string
	// List is the verbatim text between the parentheses of WithList arguments.
	List string
}

func (a Argument) String() string {
	switch a.Kind {
	case WithType:
		return fmt.Sprintf("WithType(%s = %s)", a.Name, a.Type)
	case WithLiteral:
		return fmt.Sprintf("WithLiteral(%s = %q)", a.Name, a.Literal)
	case WithList:
		return fmt.Sprintf("WithList(%s(%s))", a.Name, a.List)
	default:
		return fmt.Sprintf("%s(%s)", a.Kind, a.Name)
	}
}

type lexeme struct {
	tok   token.Token
	start int
	end   int
	lit   string
}

// Parse parses a single payload. An empty payload yields no arguments. The
// returned error is a diag.Diagnostic.
func Parse(payload string) ([]Argument, error) {
	lexemes, err := scan(payload)
	if err != nil {
		return nil, err
	}

	p := &argParser{src: payload, lexemes: lexemes}
	var args []Argument
	for !p.done() {
		arg, err := p.argument()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)

		if p.done() {
			break
		}
		if next := p.next(); next.tok != token.COMMA {
			return nil, syntaxError("expected ',' after %s, found %s", arg.Name, p.text(next))
		}
	}
	return args, nil
}

// ParseAll parses several payloads of one scope in order and concatenates
// their arguments. Every payload is parsed even if an earlier one failed.
func ParseAll(payloads []string) ([]Argument, diag.Diagnostics) {
	var (
		args  []Argument
		diags diag.Diagnostics
	)
	for _, payload := range payloads {
		parsed, err := Parse(payload)
		if err != nil {
			diags = append(diags, asDiagnostic(err))
			continue
		}
		args = append(args, parsed...)
	}
	return args, diags
}

func scan(src string) ([]lexeme, error) {
	fset := token.NewFileSet()
	file := fset.AddFile("", fset.Base(), len(src))

	var scanErr error
	var s scanner.Scanner
	s.Init(file, []byte(src), func(_ token.Position, msg string) {
		if scanErr == nil {
			scanErr = syntaxError("%s", msg)
		}
	}, 0)

	var lexemes []lexeme
	for {
		pos, tok, lit := s.Scan()
		if tok == token.EOF {
			break
		}
		// automatically inserted at the end of the line
		if tok == token.SEMICOLON && lit == "\n" {
			continue
		}

		text := lit
		if text == "" {
			text = tok.String()
		}
		start := file.Offset(pos)
		lexemes = append(lexemes, lexeme{tok: tok, start: start, end: start + len(text), lit: lit})
	}
	if scanErr != nil {
		return nil, scanErr
	}
	return lexemes, nil
}

type argParser struct {
	src     string
	lexemes []lexeme
	pos     int
}

func (p *argParser) done() bool {
	return p.pos >= len(p.lexemes)
}

func (p *argParser) peek() (lexeme, bool) {
	if p.done() {
		return lexeme{}, false
	}
	return p.lexemes[p.pos], true
}

func (p *argParser) next() lexeme {
	l := p.lexemes[p.pos]
	p.pos++
	return l
}

func (p *argParser) text(l lexeme) string {
	return p.src[l.start:l.end]
}

func (p *argParser) argument() (Argument, error) {
	ident := p.next()
	if ident.tok != token.IDENT {
		return Argument{}, syntaxError("expected option name, found %s", p.text(ident))
	}
	arg := Argument{Name: ident.lit}

	l, ok := p.peek()
	switch {
	case !ok || l.tok == token.COMMA:
		arg.Kind = Standalone
		return arg, nil
	case l.tok == token.ASSIGN:
		p.next()
		return p.value(arg)
	case l.tok == token.LPAREN:
		p.next()
		return p.list(arg, l)
	default:
		return Argument{}, syntaxError("unexpected %s after %s", p.text(l), arg.Name)
	}
}

// value parses everything up to the next top-level comma. A type expression
// wins over a literal.
func (p *argParser) value(arg Argument) (Argument, error) {
	var value []lexeme
	depth := 0
	for !p.done() {
		l, _ := p.peek()
		if l.tok == token.COMMA && depth == 0 {
			break
		}
		switch l.tok {
		case token.LPAREN, token.LBRACK, token.LBRACE:
			depth++
		case token.RPAREN, token.RBRACK, token.RBRACE:
			depth--
			if depth < 0 {
				return Argument{}, syntaxError("unbalanced %s in value of %s", p.text(l), arg.Name)
			}
		}
		value = append(value, p.next())
	}
	if len(value) == 0 {
		return Argument{}, syntaxError("missing value for %s", arg.Name)
	}
	if depth != 0 {
		return Argument{}, syntaxError("unbalanced brackets in value of %s", arg.Name)
	}

	text := strings.TrimSpace(p.src[value[0].start:value[len(value)-1].end])
	if expr, err := parser.ParseExpr(text); err == nil && isTypeExpr(expr) {
		arg.Kind = WithType
		arg.Type = schema.TypeExpr(text)
		return arg, nil
	}

	if len(value) == 1 && (value[0].tok == token.STRING || value[0].tok == token.CHAR) {
		decoded, err := decodeLiteral(value[0].lit)
		if err != nil {
			return Argument{}, err
		}
		arg.Kind = WithLiteral
		arg.Literal = decoded
		return arg, nil
	}

	return Argument{}, syntaxError("expected a type or a literal for %s, found %s", arg.Name, p.text(value[0]))
}

func (p *argParser) list(arg Argument, open lexeme) (Argument, error) {
	depth := 1
	for !p.done() {
		l := p.next()
		switch l.tok {
		case token.LPAREN:
			depth++
		case token.RPAREN:
			depth--
			if depth == 0 {
				arg.Kind = WithList
				arg.List = strings.TrimSpace(p.src[open.end:l.start])
				return arg, nil
			}
		}
	}
	return Argument{}, syntaxError("missing ')' for %s", arg.Name)
}

func decodeLiteral(lit string) (string, error) {
	value, err := strconv.Unquote(lit)
	if err != nil {
		return "", syntaxError("invalid literal %s", lit)
	}
	if !utf8.ValidString(value) {
		return "", diag.Diagnostic{
			Kind:    diag.MalformedLiteral,
			Message: fmt.Sprintf("invalid literal %s, could not decode as utf-8", lit),
		}
	}
	return value, nil
}

// isTypeExpr reports whether expr has the shape of a type expression.
func isTypeExpr(expr ast.Expr) bool {
	switch e := expr.(type) {
	case *ast.Ident:
		return true
	case *ast.SelectorExpr:
		_, ok := e.X.(*ast.Ident)
		return ok
	case *ast.StarExpr:
		return isTypeExpr(e.X)
	case *ast.ParenExpr:
		return isTypeExpr(e.X)
	case *ast.ArrayType, *ast.MapType, *ast.ChanType, *ast.FuncType, *ast.InterfaceType, *ast.StructType:
		return true
	case *ast.IndexExpr:
		return isTypeExpr(e.X) && isTypeExpr(e.Index)
	case *ast.IndexListExpr:
		if !isTypeExpr(e.X) {
			return false
		}
		for _, index := range e.Indices {
			if !isTypeExpr(index) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func syntaxError(format string, args ...any) error {
	return diag.Diagnostic{Kind: diag.InvalidSyntax, Message: fmt.Sprintf(format, args...)}
}

func asDiagnostic(err error) diag.Diagnostic {
	if d, ok := err.(diag.Diagnostic); ok {
		return d
	}
	return diag.Diagnostic{Kind: diag.InvalidSyntax, Message: err.Error()}
}
