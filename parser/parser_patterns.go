/*
File    : weave/parser/parser_patterns.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"strconv"

	"github.com/akashmaji946/weave/ast"
	"github.com/akashmaji946/weave/token"
)

// parsePattern parses a single pattern, used both on the left of `let`
// and as a match case label. It leaves the parser positioned on the last
// token of the pattern, matching the convention parseExpression uses.
func (p *Parser) parsePattern() ast.Pattern {
	switch p.curToken.Kind {
	case token.NUMBER:
		value, err := strconv.ParseFloat(p.curToken.Literal, 64)
		if err != nil {
			p.addError(p.newError(UnsupportedToken, p.curToken.Pos, "", p.curToken.Literal))
			return nil
		}
		return &ast.NumberPattern{Value: value}
	case token.STRING:
		return &ast.StringPattern{Value: p.curToken.Literal}
	case token.SYMBOL:
		return &ast.SymbolPattern{Value: p.curToken.Literal}
	case token.TRUE:
		return &ast.BooleanPattern{Value: true}
	case token.FALSE:
		return &ast.BooleanPattern{Value: false}
	case token.IDENT:
		if p.curToken.Literal == "_" {
			return &ast.WildcardPattern{}
		}
		return &ast.IdentifierPattern{Name: p.curToken.Literal}
	case token.LBRACKET:
		return p.parseArrayPattern()
	case token.LBRACE:
		return p.parseHashPattern()
	default:
		p.addError(p.newError(NoPrefixParseFn, p.curToken.Pos, "a pattern", string(p.curToken.Kind)))
		return nil
	}
}

// parseArrayPattern parses `[ pattern, pattern, ... ]`.
func (p *Parser) parseArrayPattern() ast.Pattern {
	pat := &ast.ArrayPattern{}

	if p.peekIs(token.RBRACKET) {
		p.advance()
		return pat
	}

	p.advance()
	pat.Elements = append(pat.Elements, p.parsePattern())

	for p.peekIs(token.COMMA) {
		p.advance()
		p.advance()
		pat.Elements = append(pat.Elements, p.parsePattern())
	}

	if !p.expectPeek(token.RBRACKET) {
		p.addError(p.newError(ExpectedFound, p.curToken.Pos, "]", string(p.curToken.Kind)).
			WithContext("an array pattern"))
		return nil
	}

	return pat
}

// parseHashPattern parses `{ name, name, ... }`: each bare identifier
// names both the field read and the local it is bound to.
func (p *Parser) parseHashPattern() ast.Pattern {
	pat := &ast.HashPattern{}

	if p.peekIs(token.RBRACE) {
		p.advance()
		return pat
	}

	for {
		if !p.expectPeek(token.IDENT) {
			p.addError(p.newError(ExpectedFound, p.curToken.Pos, "a field name", string(p.curToken.Kind)).
				WithContext("a hash pattern"))
			return nil
		}
		name := p.curToken.Literal
		pat.Fields = append(pat.Fields, ast.HashPatternField{Key: name, Alias: name})

		if !p.peekIs(token.COMMA) {
			break
		}
		p.advance()
	}

	if !p.expectPeek(token.RBRACE) {
		p.addError(p.newError(ExpectedFound, p.curToken.Pos, "}", string(p.curToken.Kind)).
			WithContext("a hash pattern"))
		return nil
	}

	return pat
}
