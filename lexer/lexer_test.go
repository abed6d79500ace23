/*
File    : weave/lexer/lexer_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import (
	"testing"

	"github.com/akashmaji946/weave/token"
	"github.com/stretchr/testify/assert"
)

type tokenCase struct {
	Input    string
	Expected []token.Token
}

func consume(src string) []token.Token {
	lex := New(src)
	var toks []token.Token
	for {
		tok := lex.NextToken()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return toks
}

func TestNextToken_Operators(t *testing.T) {
	cases := []tokenCase{
		{
			Input: "1 + 2 * 3",
			Expected: []token.Token{
				{Kind: token.NUMBER, Literal: "1"},
				{Kind: token.PLUS, Literal: "+"},
				{Kind: token.NUMBER, Literal: "2"},
				{Kind: token.STAR, Literal: "*"},
				{Kind: token.NUMBER, Literal: "3"},
				{Kind: token.EOF, Literal: ""},
			},
		},
		{
			Input: "a == b != c && d || e",
			Expected: []token.Token{
				{Kind: token.IDENT, Literal: "a"},
				{Kind: token.EQ, Literal: "=="},
				{Kind: token.IDENT, Literal: "b"},
				{Kind: token.NEQ, Literal: "!="},
				{Kind: token.IDENT, Literal: "c"},
				{Kind: token.AND, Literal: "&&"},
				{Kind: token.IDENT, Literal: "d"},
				{Kind: token.OR, Literal: "||"},
				{Kind: token.IDENT, Literal: "e"},
				{Kind: token.EOF, Literal: ""},
			},
		},
		{
			Input: "fn(x) -> x",
			Expected: []token.Token{
				{Kind: token.FN, Literal: "fn"},
				{Kind: token.LPAREN, Literal: "("},
				{Kind: token.IDENT, Literal: "x"},
				{Kind: token.RPAREN, Literal: ")"},
				{Kind: token.ARROW, Literal: "->"},
				{Kind: token.IDENT, Literal: "x"},
				{Kind: token.EOF, Literal: ""},
			},
		},
		{
			Input: "1..5 scrutinee :: { _ -> :ok }",
			Expected: []token.Token{
				{Kind: token.NUMBER, Literal: "1"},
				{Kind: token.RANGE, Literal: ".."},
				{Kind: token.NUMBER, Literal: "5"},
				{Kind: token.IDENT, Literal: "scrutinee"},
				{Kind: token.MATCH, Literal: "::"},
				{Kind: token.LBRACE, Literal: "{"},
				{Kind: token.IDENT, Literal: "_"},
				{Kind: token.ARROW, Literal: "->"},
				{Kind: token.SYMBOL, Literal: "ok"},
				{Kind: token.RBRACE, Literal: "}"},
				{Kind: token.EOF, Literal: ""},
			},
		},
	}

	for _, tc := range cases {
		got := consume(tc.Input)
		assert.Equal(t, len(tc.Expected), len(got), "token count for %q", tc.Input)
		for i, want := range tc.Expected {
			assert.Equal(t, want.Kind, got[i].Kind, "kind[%d] for %q", i, tc.Input)
			assert.Equal(t, want.Literal, got[i].Literal, "literal[%d] for %q", i, tc.Input)
		}
	}
}

func TestNextToken_Strings(t *testing.T) {
	toks := consume(`'hello' "world"`)
	assert.Equal(t, token.STRING, toks[0].Kind)
	assert.Equal(t, "hello", toks[0].Literal)
	assert.Equal(t, token.STRING, toks[1].Kind)
	assert.Equal(t, "world", toks[1].Literal)
}

func TestNextToken_UnterminatedString(t *testing.T) {
	toks := consume(`'abc`)
	assert.Equal(t, token.ILLEGAL, toks[0].Kind)
	assert.Equal(t, 0, toks[0].Pos.Start)
}

func TestNextToken_EmptyInputIsSingleEOF(t *testing.T) {
	toks := consume("")
	assert.Equal(t, []token.Token{{Kind: token.EOF, Literal: "", Pos: token.Position{Start: 0, End: 0}}}, toks)
}

func TestNextToken_NumberDotDoesNotSwallowRange(t *testing.T) {
	toks := consume("2..5")
	assert.Equal(t, token.NUMBER, toks[0].Kind)
	assert.Equal(t, "2", toks[0].Literal)
	assert.Equal(t, token.RANGE, toks[1].Kind)
	assert.Equal(t, token.NUMBER, toks[2].Kind)
	assert.Equal(t, "5", toks[2].Literal)
}

func TestNextToken_PositionsReconstructSource(t *testing.T) {
	src := "let x = 1 + 2;"
	var buf []byte
	lex := New(src)
	for {
		tok := lex.NextToken()
		if tok.Kind == token.EOF {
			break
		}
		buf = append(buf, src[tok.Pos.Start:tok.Pos.End]...)
	}
	assert.Equal(t, "letx=1+2;", string(buf))
}

func TestNextToken_IllegalCharacter(t *testing.T) {
	toks := consume("@")
	assert.Equal(t, token.ILLEGAL, toks[0].Kind)
	assert.Equal(t, "@", toks[0].Literal)
}
