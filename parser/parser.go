/*
File    : weave/parser/parser.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package parser implements a Pratt parser (top-down operator precedence
// parser) for Weave, converting a token.Token stream from the lexer into
// an ast.Program. It follows the teacher's two-token-lookahead,
// registered-parse-function design (parser.go/parser_precedence.go in the
// teacher repo) adapted to Weave's smaller, pattern-matching-aware
// grammar, and collects every diagnostic into a *multierror.Error instead
// of panicking on the first one.
package parser

import (
	"github.com/akashmaji946/weave/ast"
	"github.com/akashmaji946/weave/lexer"
	"github.com/akashmaji946/weave/token"
	"github.com/hashicorp/go-multierror"
)

type prefixParseFn func() ast.Expression
type infixParseFn func(ast.Expression) ast.Expression

// Parser holds parsing state over a single source string: the lexer
// feeding it tokens, the current/peek lookahead tokens, and the Pratt
// function tables keyed by token kind.
type Parser struct {
	lex    *lexer.Lexer
	source string

	curToken  token.Token
	peekToken token.Token

	errors *multierror.Error

	prefixFns map[token.Kind]prefixParseFn
	infixFns  map[token.Kind]infixParseFn
}

// New builds a Parser over src, primes the two-token lookahead, and
// registers every prefix/infix parse function the grammar needs.
func New(src string) *Parser {
	p := &Parser{
		lex:    lexer.New(src),
		source: src,
	}

	p.prefixFns = make(map[token.Kind]prefixParseFn)
	p.registerPrefix(token.NUMBER, p.parseNumberLiteral)
	p.registerPrefix(token.STRING, p.parseStringLiteral)
	p.registerPrefix(token.SYMBOL, p.parseSymbolLiteral)
	p.registerPrefix(token.IDENT, p.parseIdentifier)
	p.registerPrefix(token.TRUE, p.parseBoolean)
	p.registerPrefix(token.FALSE, p.parseBoolean)
	p.registerPrefix(token.BANG, p.parsePrefixExpression)
	p.registerPrefix(token.MINUS, p.parsePrefixExpression)
	p.registerPrefix(token.LPAREN, p.parseGroupedExpression)
	p.registerPrefix(token.IF, p.parseIfExpression)
	p.registerPrefix(token.FN, p.parseFunctionLiteral)
	p.registerPrefix(token.LBRACKET, p.parseArrayLiteral)
	p.registerPrefix(token.LBRACE, p.parseHashLiteral)

	p.infixFns = make(map[token.Kind]infixParseFn)
	for _, kind := range []token.Kind{
		token.PLUS, token.MINUS, token.STAR, token.SLASH, token.PERCENT,
		token.EQ, token.NEQ, token.LT, token.GT, token.LTE, token.GTE,
		token.AND, token.OR, token.RANGE,
	} {
		p.registerInfix(kind, p.parseInfixExpression)
	}
	p.registerInfix(token.LPAREN, p.parseCallExpression)
	p.registerInfix(token.LBRACKET, p.parseIndexExpression)
	p.registerInfix(token.DOT, p.parseFieldExpression)
	p.registerInfix(token.MATCH, p.parseMatchExpression)

	p.advance()
	p.advance()

	return p
}

func (p *Parser) registerPrefix(kind token.Kind, fn prefixParseFn) {
	p.prefixFns[kind] = fn
}

func (p *Parser) registerInfix(kind token.Kind, fn infixParseFn) {
	p.infixFns[kind] = fn
}

// advance shifts the lookahead window forward by one token.
func (p *Parser) advance() {
	p.curToken = p.peekToken
	p.peekToken = p.lex.NextToken()
}

func (p *Parser) curIs(kind token.Kind) bool  { return p.curToken.Kind == kind }
func (p *Parser) peekIs(kind token.Kind) bool { return p.peekToken.Kind == kind }

// expectPeek advances past peekToken if it has the expected kind,
// otherwise records an ExpectedFound diagnostic and does not advance, so the
// unexpected token is still peekToken.
func (p *Parser) expectPeek(kind token.Kind) bool {
	if p.peekIs(kind) {
		p.advance()
		return true
	}
	p.addError(p.newError(ExpectedFound, p.peekToken.Pos, string(kind), string(p.peekToken.Kind)))
	return false
}

// skipSemicolons consumes zero or more statement-terminating semicolons;
// Weave statements may be separated by them but do not require them.
func (p *Parser) skipSemicolons() {
	for p.curIs(token.SEMICOLON) {
		p.advance()
	}
}

// Parse runs the parser to end of input, returning the resulting
// ast.Program and a *multierror.Error (nil if there were no diagnostics).
func Parse(src string) (*ast.Program, *multierror.Error) {
	p := New(src)
	program := &ast.Program{}

	for !p.curIs(token.EOF) {
		p.skipSemicolons()
		if p.curIs(token.EOF) {
			break
		}
		stmt := p.parseStatement()
		if stmt != nil {
			program.Statements = append(program.Statements, stmt)
		}
		p.advance()
	}

	return program, p.errors
}
