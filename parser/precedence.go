/*
File    : weave/parser/precedence.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import "github.com/akashmaji946/weave/token"

// Operator precedence levels, lowest to highest binding power, following
// the teacher's numbered-constant convention (parser_precedence.go) but
// sized to Weave's smaller operator set.
const (
	LOWEST int = iota
	LOGICAL     // && ||
	EQUALS      // == !=
	LESSGREATER // < > <= >=
	RANGEP      // ..
	SUM         // + -
	PRODUCT     // * /
	MODULUS     // %
	PREFIX      // -x !x
	MATCHP      // ::
	CALL        // fn(x), arr[x], obj.x
)

// precedences maps an infix operator token kind to its binding power.
// Tokens absent from the map are not infix operators and default to
// LOWEST, per the teacher's getPrecedence convention.
var precedences = map[token.Kind]int{
	token.OR:       LOGICAL,
	token.AND:      LOGICAL,
	token.EQ:       EQUALS,
	token.NEQ:      EQUALS,
	token.LT:       LESSGREATER,
	token.GT:       LESSGREATER,
	token.LTE:      LESSGREATER,
	token.GTE:      LESSGREATER,
	token.RANGE:    RANGEP,
	token.PLUS:     SUM,
	token.MINUS:    SUM,
	token.STAR:     PRODUCT,
	token.SLASH:    PRODUCT,
	token.PERCENT:  MODULUS,
	token.MATCH:    MATCHP,
	token.LPAREN:   CALL,
	token.LBRACKET: CALL,
	token.DOT:      CALL,
}

func (p *Parser) peekPrecedence() int {
	if pr, ok := precedences[p.peekToken.Kind]; ok {
		return pr
	}
	return LOWEST
}

func (p *Parser) curPrecedence() int {
	if pr, ok := precedences[p.curToken.Kind]; ok {
		return pr
	}
	return LOWEST
}
