/*
File    : weave/parser/parser_expressions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"strconv"

	"github.com/akashmaji946/weave/ast"
	"github.com/akashmaji946/weave/token"
)

// parseExpression is the heart of the Pratt algorithm: parse a prefix
// expression, then keep folding in infix operators whose precedence
// exceeds minPrecedence.
func (p *Parser) parseExpression(minPrecedence int) ast.Expression {
	prefix, ok := p.prefixFns[p.curToken.Kind]
	if !ok {
		p.addError(p.newError(NoPrefixParseFn, p.curToken.Pos, "", string(p.curToken.Kind)))
		return nil
	}
	left := prefix()

	for !p.peekIs(token.SEMICOLON) && minPrecedence < p.peekPrecedence() {
		infix, ok := p.infixFns[p.peekToken.Kind]
		if !ok {
			return left
		}
		p.advance()
		left = infix(left)
	}

	return left
}

func (p *Parser) parseNumberLiteral() ast.Expression {
	value, err := strconv.ParseFloat(p.curToken.Literal, 64)
	if err != nil {
		p.addError(p.newError(UnsupportedToken, p.curToken.Pos, "", p.curToken.Literal).
			WithHint("numeric literals must be valid decimal numbers"))
		return nil
	}
	return &ast.NumberLiteral{Value: value}
}

func (p *Parser) parseStringLiteral() ast.Expression {
	return &ast.StringLiteral{Value: p.curToken.Literal}
}

func (p *Parser) parseSymbolLiteral() ast.Expression {
	return &ast.SymbolLiteral{Value: p.curToken.Literal}
}

func (p *Parser) parseIdentifier() ast.Expression {
	return &ast.Identifier{Value: p.curToken.Literal}
}

func (p *Parser) parseBoolean() ast.Expression {
	return &ast.Boolean{Value: p.curIs(token.TRUE)}
}

// parsePrefixExpression parses a unary `-x` or `!x`.
func (p *Parser) parsePrefixExpression() ast.Expression {
	expr := &ast.PrefixExpression{Operator: string(p.curToken.Kind)}
	p.advance()
	expr.Right = p.parseExpression(PREFIX)
	return expr
}

// parseInfixExpression parses a binary operator; left has already been
// parsed and passed in.
func (p *Parser) parseInfixExpression(left ast.Expression) ast.Expression {
	expr := &ast.InfixExpression{Left: left, Operator: string(p.curToken.Kind)}
	precedence := p.curPrecedence()
	p.advance()
	expr.Right = p.parseExpression(precedence)
	return expr
}

// parseGroupedExpression parses a parenthesized expression, which exists
// only to override precedence; it produces no AST node of its own.
func (p *Parser) parseGroupedExpression() ast.Expression {
	p.advance() // consume '('
	expr := p.parseExpression(LOWEST)
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	return expr
}

// parseIfExpression parses `if <cond> { ... } else { ... }`; both
// branches are mandatory since if is always an expression.
func (p *Parser) parseIfExpression() ast.Expression {
	expr := &ast.IfExpression{}

	p.advance() // move past 'if'
	expr.Condition = p.parseExpression(LOWEST)

	if !p.expectPeek(token.LBRACE) {
		p.addError(p.newError(ExpectedFound, p.curToken.Pos, "{", string(p.curToken.Kind)).
			WithContext("an if expression"))
		return nil
	}
	expr.Consequence = p.parseBlock()

	if !p.expectPeek(token.ELSE) {
		p.addError(p.newError(ExpectedFound, p.peekToken.Pos, "else", string(p.peekToken.Kind)).
			WithContext("an if expression").
			WithHint("every if must have an else branch in Weave"))
		return nil
	}

	if !p.expectPeek(token.LBRACE) {
		p.addError(p.newError(ExpectedFound, p.curToken.Pos, "{", string(p.curToken.Kind)).
			WithContext("an if expression's else branch"))
		return nil
	}
	expr.Alternative = p.parseBlock()

	return expr
}

// parseFunctionLiteral parses `fn(params) -> { body }` and the shorthand
// `fn param -> { body }` for exactly one parameter.
func (p *Parser) parseFunctionLiteral() ast.Expression {
	fn := &ast.FunctionLiteral{}

	if p.peekIs(token.LPAREN) {
		p.advance() // move to '('
		fn.Parameters = p.parseFunctionParameters()
	} else if p.peekIs(token.IDENT) {
		p.advance()
		fn.Parameters = []*ast.Identifier{{Value: p.curToken.Literal}}
	} else {
		p.addError(p.newError(ExpectedOneOf, p.peekToken.Pos, "( or an identifier", string(p.peekToken.Kind)).
			WithContext("a function literal"))
		return nil
	}

	if !p.expectPeek(token.ARROW) {
		p.addError(p.newError(ExpectedFound, p.curToken.Pos, "->", string(p.curToken.Kind)).
			WithContext("a function literal"))
		return nil
	}

	if p.peekIs(token.LBRACE) {
		p.advance()
		fn.Body = p.parseBlock()
	} else {
		// Single-expression shorthand: `fn x -> x + 1`.
		p.advance()
		expr := p.parseExpression(LOWEST)
		fn.Body = &ast.Block{Statements: []ast.Statement{&ast.ExpressionStatement{Expression: expr}}}
	}

	return fn
}

func (p *Parser) parseFunctionParameters() []*ast.Identifier {
	var params []*ast.Identifier

	if p.peekIs(token.RPAREN) {
		p.advance()
		return params
	}

	p.advance()
	params = append(params, &ast.Identifier{Value: p.curToken.Literal})

	for p.peekIs(token.COMMA) {
		p.advance()
		p.advance()
		params = append(params, &ast.Identifier{Value: p.curToken.Literal})
	}

	if !p.expectPeek(token.RPAREN) {
		p.addError(p.newError(ExpectedFound, p.curToken.Pos, ")", string(p.curToken.Kind)).
			WithContext("a function literal's parameter list"))
		return nil
	}

	return params
}

// parseCallExpression parses `fn(args)`; function has already been parsed.
func (p *Parser) parseCallExpression(function ast.Expression) ast.Expression {
	return &ast.CallExpression{Function: function, Arguments: p.parseExpressionList(token.RPAREN)}
}

func (p *Parser) parseExpressionList(end token.Kind) []ast.Expression {
	var list []ast.Expression

	if p.peekIs(end) {
		p.advance()
		return list
	}

	p.advance()
	list = append(list, p.parseExpression(LOWEST))

	for p.peekIs(token.COMMA) {
		p.advance()
		p.advance()
		list = append(list, p.parseExpression(LOWEST))
	}

	if !p.expectPeek(end) {
		p.addError(p.newError(ExpectedFound, p.curToken.Pos, string(end), string(p.curToken.Kind)).
			WithContext("an expression list"))
		return nil
	}

	return list
}

// parseIndexExpression parses `obj[expr]`, Weave's computed member access.
func (p *Parser) parseIndexExpression(object ast.Expression) ast.Expression {
	p.advance() // move past '['
	index := p.parseExpression(LOWEST)
	if !p.expectPeek(token.RBRACKET) {
		p.addError(p.newError(ExpectedFound, p.curToken.Pos, "]", string(p.curToken.Kind)).
			WithContext("an index expression"))
		return nil
	}
	return &ast.MemberExpression{Object: object, Property: index, Computed: true}
}

// parseFieldExpression parses `obj.name`, Weave's non-computed member
// access; name is stored as an Identifier property.
func (p *Parser) parseFieldExpression(object ast.Expression) ast.Expression {
	if !p.expectPeek(token.IDENT) {
		p.addError(p.newError(ExpectedFound, p.curToken.Pos, "an identifier", string(p.curToken.Kind)).
			WithContext("a field access"))
		return nil
	}
	return &ast.MemberExpression{Object: object, Property: &ast.Identifier{Value: p.curToken.Literal}, Computed: false}
}

// parseArrayLiteral parses `[ expr, expr, ... ]`.
func (p *Parser) parseArrayLiteral() ast.Expression {
	return &ast.ArrayLiteral{Elements: p.parseExpressionList(token.RBRACKET)}
}

// parseHashLiteral parses `{ key = expr, ... }`, preserving source order.
func (p *Parser) parseHashLiteral() ast.Expression {
	hash := &ast.HashLiteral{}

	if p.peekIs(token.RBRACE) {
		p.advance()
		return hash
	}

	for {
		if !p.expectPeek(token.IDENT) {
			p.addError(p.newError(ExpectedFound, p.curToken.Pos, "a field name", string(p.curToken.Kind)).
				WithContext("a hash literal"))
			return nil
		}
		key := &ast.Identifier{Value: p.curToken.Literal}

		var value ast.Expression
		if p.peekIs(token.ASSIGN) {
			p.advance()
			p.advance()
			value = p.parseExpression(LOWEST)
		} else {
			// Shorthand: a bare `key` means `key = key`.
			value = &ast.Identifier{Value: key.Value}
		}

		hash.Keys = append(hash.Keys, key)
		hash.Values = append(hash.Values, value)

		if !p.peekIs(token.COMMA) {
			break
		}
		p.advance()
	}

	if !p.expectPeek(token.RBRACE) {
		p.addError(p.newError(ExpectedFound, p.curToken.Pos, "}", string(p.curToken.Kind)).
			WithContext("a hash literal"))
		return nil
	}

	return hash
}

// parseMatchExpression parses `<scrutinee> :: { pattern -> body, ... }`;
// scrutinee has already been parsed and is passed in.
func (p *Parser) parseMatchExpression(scrutinee ast.Expression) ast.Expression {
	expr := &ast.MatchExpression{Scrutinee: scrutinee}

	if !p.expectPeek(token.LBRACE) {
		p.addError(p.newError(ExpectedFound, p.curToken.Pos, "{", string(p.curToken.Kind)).
			WithContext("a match expression"))
		return nil
	}
	p.advance() // move past '{'

	for !p.curIs(token.RBRACE) && !p.curIs(token.EOF) {
		matchCase := ast.MatchCase{}
		matchCase.Pattern = p.parsePattern()
		if matchCase.Pattern == nil {
			return nil
		}

		if !p.expectPeek(token.ARROW) {
			p.addError(p.newError(ExpectedFound, p.curToken.Pos, "->", string(p.curToken.Kind)).
				WithContext("a match case"))
			return nil
		}

		if p.peekIs(token.LBRACE) {
			p.advance()
			matchCase.Body = p.parseBlock()
		} else {
			p.advance()
			bodyExpr := p.parseExpression(LOWEST)
			matchCase.Body = &ast.Block{Statements: []ast.Statement{&ast.ExpressionStatement{Expression: bodyExpr}}}
		}

		expr.Cases = append(expr.Cases, matchCase)

		if p.peekIs(token.COMMA) {
			p.advance()
		}
		p.advance()
	}

	if !p.curIs(token.RBRACE) {
		p.addError(p.newError(ExpectedFound, p.curToken.Pos, "}", string(p.curToken.Kind)).
			WithContext("a match expression"))
	}

	return expr
}
