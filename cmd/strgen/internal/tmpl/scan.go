package tmpl

import (
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"strconv"
	"strings"
)

var (
	ErrNoLiterals   = errors.New("no string literals declared")
	ErrBadLiteral   = errors.New("declaration is not a single string literal")
	ErrBadDirective = errors.New("unknown strgen directive")
)

// LitKind selects the element type a literal is packed and revealed as.
type LitKind int

const (
	// KindString generates a string accessor over single bytes.
	KindString LitKind = iota
	// KindRaw generates a []byte accessor, for values the caller wants to
	// shred after use.
	KindRaw
	// KindWide generates a []uint16 accessor over UTF-16 code units.
	KindWide
)

// Literal is one declaration scanned from an input file: the identifier, the
// unquoted value, the line it was declared on, and the kind requested by a
// trailing strgen directive.
type Literal struct {
	Name  string
	Value string
	Line  int
	Kind  LitKind
}

// ScanLiterals parses input as Go source and collects every top-level var or
// const declaration of a single string literal, in declaration order. Each
// declaration may carry a trailing comment directive selecting the generated
// accessor's shape: "//strgen:raw" for []byte, "//strgen:wide" for []uint16.
// src optionally provides the already-read file contents; when nil the file
// is read from input.
//
// The input file is a manifest, not production code; it should carry a
// "//go:build ignore" constraint so only the generated output is compiled.
func ScanLiterals(input string, src []byte) ([]Literal, error) {
	// parser.ParseFile reads the file itself only when src is untyped nil.
	var source any
	if src != nil {
		source = src
	}
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, input, source, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", input, err)
	}

	var lits []Literal
	for _, decl := range file.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok || (gen.Tok != token.VAR && gen.Tok != token.CONST) {
			continue
		}
		for _, spec := range gen.Specs {
			vs, ok := spec.(*ast.ValueSpec)
			if !ok {
				continue
			}
			lit, err := scanSpec(fset, input, vs)
			if err != nil {
				return nil, err
			}
			lits = append(lits, lit)
		}
	}
	if len(lits) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoLiterals, input)
	}
	return lits, nil
}

func scanSpec(fset *token.FileSet, input string, vs *ast.ValueSpec) (Literal, error) {
	line := fset.Position(vs.Pos()).Line
	if len(vs.Names) != 1 || len(vs.Values) != 1 {
		return Literal{}, fmt.Errorf("%s:%d: %w: declare one name with one value", input, line, ErrBadLiteral)
	}
	name := vs.Names[0].Name
	if name == "_" {
		return Literal{}, fmt.Errorf("%s:%d: %w: blank identifier has no accessor name", input, line, ErrBadLiteral)
	}
	basic, ok := vs.Values[0].(*ast.BasicLit)
	if !ok || basic.Kind != token.STRING {
		return Literal{}, fmt.Errorf("%s:%d: %w: %s", input, line, ErrBadLiteral, name)
	}
	value, err := strconv.Unquote(basic.Value)
	if err != nil {
		return Literal{}, fmt.Errorf("%s:%d: failed to unquote %s: %w", input, line, name, err)
	}
	kind, err := scanDirective(vs.Comment)
	if err != nil {
		return Literal{}, fmt.Errorf("%s:%d: %s: %w", input, line, name, err)
	}
	return Literal{
		Name:  name,
		Value: value,
		Line:  line,
		Kind:  kind,
	}, nil
}

func scanDirective(group *ast.CommentGroup) (LitKind, error) {
	if group == nil {
		return KindString, nil
	}
	for _, c := range group.List {
		text := strings.TrimPrefix(c.Text, "//")
		if !strings.HasPrefix(text, "strgen:") {
			continue
		}
		switch strings.TrimPrefix(text, "strgen:") {
		case "string":
			return KindString, nil
		case "raw":
			return KindRaw, nil
		case "wide":
			return KindWide, nil
		default:
			return KindString, fmt.Errorf("%w: %s", ErrBadDirective, c.Text)
		}
	}
	return KindString, nil
}
