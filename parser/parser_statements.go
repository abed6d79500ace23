/*
File    : weave/parser/parser_statements.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/weave/ast"
	"github.com/akashmaji946/weave/token"
)

// parseStatement dispatches on the current token's kind to one of the
// four statement forms: let, return, import, or a bare expression.
func (p *Parser) parseStatement() ast.Statement {
	switch p.curToken.Kind {
	case token.LET:
		return p.parseAssignStatement()
	case token.RETURN:
		return p.parseReturnStatement()
	case token.IMPORT:
		return p.parseImportStatement()
	default:
		return p.parseExpressionStatement()
	}
}

// parseAssignStatement parses `let <pattern> = <expr>`.
func (p *Parser) parseAssignStatement() ast.Statement {
	stmt := &ast.AssignStatement{}

	p.advance() // consume 'let'
	stmt.Target = p.parsePattern()
	if stmt.Target == nil {
		return nil
	}

	if !p.expectPeek(token.ASSIGN) {
		return nil
	}
	p.advance() // consume '='

	stmt.Value = p.parseExpression(LOWEST)
	return stmt
}

// parseReturnStatement parses `return` or `return <expr>`.
func (p *Parser) parseReturnStatement() ast.Statement {
	stmt := &ast.ReturnStatement{}
	if p.peekIs(token.SEMICOLON) || p.peekIs(token.EOF) || p.peekIs(token.RBRACE) {
		return stmt
	}
	p.advance()
	stmt.Value = p.parseExpression(LOWEST)
	return stmt
}

// parseImportStatement parses `import <pattern> from <expr>`.
func (p *Parser) parseImportStatement() ast.Statement {
	stmt := &ast.ImportStatement{}

	p.advance() // consume 'import'
	stmt.Name = p.parsePattern()
	if stmt.Name == nil {
		return nil
	}

	if !p.expectPeek(token.FROM) {
		return nil
	}
	p.advance() // consume 'from'

	stmt.Source = p.parseExpression(LOWEST)
	return stmt
}

// parseExpressionStatement parses a bare expression used as a statement.
func (p *Parser) parseExpressionStatement() ast.Statement {
	stmt := &ast.ExpressionStatement{}
	stmt.Expression = p.parseExpression(LOWEST)
	return stmt
}

// parseBlock parses a brace-delimited sequence of statements, consuming
// both the opening and closing brace. The caller is expected to already
// be positioned at the opening '{'.
func (p *Parser) parseBlock() *ast.Block {
	block := &ast.Block{}

	if !p.curIs(token.LBRACE) {
		p.addError(p.newError(ExpectedFound, p.curToken.Pos, "{", string(p.curToken.Kind)).
			WithContext("a block"))
		return block
	}
	p.advance() // move past '{'

	for !p.curIs(token.RBRACE) && !p.curIs(token.EOF) {
		p.skipSemicolons()
		if p.curIs(token.RBRACE) {
			break
		}
		stmt := p.parseStatement()
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
		p.advance()
	}

	if !p.curIs(token.RBRACE) {
		p.addError(p.newError(ExpectedFound, p.curToken.Pos, "}", string(p.curToken.Kind)).
			WithContext("a block"))
	}

	return block
}
