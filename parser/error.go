/*
File    : weave/parser/error.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"fmt"
	"strings"

	"github.com/akashmaji946/weave/style"
	"github.com/akashmaji946/weave/token"
	"github.com/hashicorp/go-multierror"
)

// ParseErrorKind classifies the shape of a parse failure, mirroring the
// original implementation's ParseErrorKind enum.
type ParseErrorKind int

const (
	// ExpectedFound means a specific token kind was expected but a
	// different one was found.
	ExpectedFound ParseErrorKind = iota
	// ExpectedOneOf means any of several token kinds would have been
	// accepted, but none matched.
	ExpectedOneOf
	// NoPrefixParseFn means the current token cannot start an expression.
	NoPrefixParseFn
	// UnsupportedToken means the token is recognized but not valid here.
	UnsupportedToken
)

// ParseError is a single structured parse diagnostic: its kind, the byte
// range it concerns, a chain of surrounding-context strings (in the order
// they were attached, following the original implementation's Context trait), and
// an optional hint with a suggested fix.
type ParseError struct {
	Kind     ParseErrorKind
	Expected string
	Found    string
	Pos      token.Position
	Context  []string
	Hint     string
	Source   string
}

// WithContext appends a description of the enclosing grammar rule being
// parsed when the error occurred, oldest-first, matching the original
// Context trait's fold-while-unwinding behavior.
func (e *ParseError) WithContext(ctx string) *ParseError {
	e.Context = append(e.Context, ctx)
	return e
}

// WithHint attaches a one-line suggested fix, matching the original Hint
// trait.
func (e *ParseError) WithHint(hint string) *ParseError {
	e.Hint = hint
	return e
}

// Error renders the diagnostic: the offending source line(s), a caret
// under the offending span, the error message, any hint, and the context
// chain oldest-first.
func (e *ParseError) Error() string {
	var out strings.Builder

	loc := token.Locate(e.Pos.Start, e.Source)
	lines := token.SourceLines(e.Source, e.Pos.Start, e.Pos.End)

	out.WriteString(style.Bold(fmt.Sprintf("parse error at line %d, column %d:\n", loc.Line, loc.Column)))
	for _, line := range lines {
		out.WriteString("  ")
		out.WriteString(line)
		out.WriteString("\n")
	}
	if len(lines) > 0 {
		caretCol := loc.Column - 1
		if caretCol < 0 {
			caretCol = 0
		}
		out.WriteString("  ")
		out.WriteString(strings.Repeat(" ", caretCol))
		out.WriteString(style.Yellow("^\n"))
	}

	out.WriteString(e.message())
	out.WriteString("\n")

	if e.Hint != "" {
		out.WriteString(style.Emphasize("hint: "))
		out.WriteString(e.Hint)
		out.WriteString("\n")
	}

	for _, ctx := range e.Context {
		out.WriteString("  while parsing ")
		out.WriteString(ctx)
		out.WriteString("\n")
	}

	return out.String()
}

func (e *ParseError) message() string {
	switch e.Kind {
	case ExpectedFound:
		return fmt.Sprintf("expected %s, found %s", e.Expected, e.Found)
	case ExpectedOneOf:
		return fmt.Sprintf("expected one of %s, found %s", e.Expected, e.Found)
	case NoPrefixParseFn:
		return fmt.Sprintf("no expression can start with %s", e.Found)
	case UnsupportedToken:
		return fmt.Sprintf("%s is not valid here", e.Found)
	default:
		return "parse error"
	}
}

// newError builds a ParseError rooted at pos, pre-loaded with the
// originating source text so later rendering has no extra plumbing.
func (p *Parser) newError(kind ParseErrorKind, pos token.Position, expected, found string) *ParseError {
	return &ParseError{
		Kind:     kind,
		Expected: expected,
		Found:    found,
		Pos:      pos,
		Source:   p.source,
	}
}

// addError records err on the parser's running multierror.Error, the same
// aggregation type the golox reference compiler uses to collect and format
// multiple diagnostics from a single pass.
func (p *Parser) addError(err *ParseError) {
	p.errors = multierror.Append(p.errors, err)
}

// Errors returns every ParseError collected during Parse, or nil if parsing
// succeeded outright.
func (p *Parser) Errors() *multierror.Error {
	return p.errors
}
