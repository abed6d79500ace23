/*
File    : weave/lexer/lexer.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package lexer performs lexical analysis of Weave source code. It scans
// the source text byte by byte, producing one token.Token per call to
// NextToken. The lexer never fails outright: characters it cannot classify
// become token.ILLEGAL tokens, which the parser is responsible for
// rejecting with a proper diagnostic.
package lexer

import (
	"github.com/akashmaji946/weave/token"
)

// Lexer holds the scanning state over a single source string.
type Lexer struct {
	src      string
	position int  // index of Current in src
	current  byte // byte at position, or 0 at end of input
}

// New creates a Lexer ready to scan src from its first byte.
func New(src string) *Lexer {
	lex := &Lexer{src: src}
	if len(src) > 0 {
		lex.current = src[0]
	}
	return lex
}

// peek returns the byte after the current one without consuming it, or 0 at
// end of input.
func (lex *Lexer) peek() byte {
	if lex.position+1 >= len(lex.src) {
		return 0
	}
	return lex.src[lex.position+1]
}

// peekAt returns the byte offset bytes past current, or 0 if out of range.
func (lex *Lexer) peekAt(offset int) byte {
	idx := lex.position + offset
	if idx >= len(lex.src) {
		return 0
	}
	return lex.src[idx]
}

// advance consumes the current byte and moves to the next one.
func (lex *Lexer) advance() {
	lex.position++
	if lex.position >= len(lex.src) {
		lex.current = 0
		lex.position = len(lex.src)
		return
	}
	lex.current = lex.src[lex.position]
}

// skipWhitespace advances past ASCII whitespace; Weave has no comment
// syntax, unlike the teacher language.
func (lex *Lexer) skipWhitespace() {
	for isWhitespace(lex.current) {
		lex.advance()
	}
}

// NextToken scans and returns the next token in the source, advancing the
// lexer's position past it. Once end of input is reached, every subsequent
// call returns an EOF token.
func (lex *Lexer) NextToken() token.Token {
	lex.skipWhitespace()

	start := lex.position

	switch lex.current {
	case 0:
		return token.Token{Kind: token.EOF, Literal: "", Pos: token.Position{Start: start, End: start}}
	case '=':
		if lex.peek() == '=' {
			lex.advance()
			lex.advance()
			return token.New(token.EQ, "==", start)
		}
		lex.advance()
		return token.New(token.ASSIGN, "=", start)
	case '!':
		if lex.peek() == '=' {
			lex.advance()
			lex.advance()
			return token.New(token.NEQ, "!=", start)
		}
		lex.advance()
		return token.New(token.BANG, "!", start)
	case '<':
		if lex.peek() == '=' {
			lex.advance()
			lex.advance()
			return token.New(token.LTE, "<=", start)
		}
		lex.advance()
		return token.New(token.LT, "<", start)
	case '>':
		if lex.peek() == '=' {
			lex.advance()
			lex.advance()
			return token.New(token.GTE, ">=", start)
		}
		lex.advance()
		return token.New(token.GT, ">", start)
	case '+':
		lex.advance()
		return token.New(token.PLUS, "+", start)
	case '-':
		if lex.peek() == '>' {
			lex.advance()
			lex.advance()
			return token.New(token.ARROW, "->", start)
		}
		lex.advance()
		return token.New(token.MINUS, "-", start)
	case '*':
		lex.advance()
		return token.New(token.STAR, "*", start)
	case '/':
		lex.advance()
		return token.New(token.SLASH, "/", start)
	case '%':
		lex.advance()
		return token.New(token.PERCENT, "%", start)
	case '&':
		if lex.peek() == '&' {
			lex.advance()
			lex.advance()
			return token.New(token.AND, "&&", start)
		}
		lex.advance()
		return token.New(token.ILLEGAL, "&", start)
	case '|':
		if lex.peek() == '|' {
			lex.advance()
			lex.advance()
			return token.New(token.OR, "||", start)
		}
		lex.advance()
		return token.New(token.ILLEGAL, "|", start)
	case '.':
		if lex.peek() == '.' {
			lex.advance()
			lex.advance()
			return token.New(token.RANGE, "..", start)
		}
		lex.advance()
		return token.New(token.DOT, ".", start)
	case ':':
		if lex.peek() == ':' {
			lex.advance()
			lex.advance()
			return token.New(token.MATCH, "::", start)
		}
		if isIdentStart(lex.peek()) {
			lex.advance() // consume ':'
			return lex.readSymbol(start)
		}
		lex.advance()
		return token.New(token.COLON, ":", start)
	case ',':
		lex.advance()
		return token.New(token.COMMA, ",", start)
	case ';':
		lex.advance()
		return token.New(token.SEMICOLON, ";", start)
	case '(':
		lex.advance()
		return token.New(token.LPAREN, "(", start)
	case ')':
		lex.advance()
		return token.New(token.RPAREN, ")", start)
	case '{':
		lex.advance()
		return token.New(token.LBRACE, "{", start)
	case '}':
		lex.advance()
		return token.New(token.RBRACE, "}", start)
	case '[':
		lex.advance()
		return token.New(token.LBRACKET, "[", start)
	case ']':
		lex.advance()
		return token.New(token.RBRACKET, "]", start)
	case '"', '\'':
		return lex.readString(start)
	}

	if isDigit(lex.current) {
		return lex.readNumber(start)
	}
	if isIdentStart(lex.current) {
		return lex.readIdentifier(start)
	}

	illegal := string(lex.current)
	lex.advance()
	return token.New(token.ILLEGAL, illegal, start)
}

// readIdentifier scans [A-Za-z_][A-Za-z0-9_]* starting at the current byte,
// classifying it as a keyword or a plain identifier.
func (lex *Lexer) readIdentifier(start int) token.Token {
	for isIdentPart(lex.current) {
		lex.advance()
	}
	literal := lex.src[start:lex.position]
	return token.Token{Kind: token.LookupIdent(literal), Literal: literal, Pos: token.Position{Start: start, End: lex.position}}
}

// readSymbol scans the identifier text following a leading ':' and produces
// a SYMBOL token whose Literal is the name without the colon.
func (lex *Lexer) readSymbol(start int) token.Token {
	nameStart := lex.position
	for isIdentPart(lex.current) {
		lex.advance()
	}
	literal := lex.src[nameStart:lex.position]
	return token.Token{Kind: token.SYMBOL, Literal: literal, Pos: token.Position{Start: start, End: lex.position}}
}

// readNumber scans a decimal integer or float literal. The fractional dot is
// intentionally NOT consumed when it is itself followed by another '.', so
// that `2..5` lexes as NUMBER(2) RANGE NUMBER(5) rather than swallowing the
// first dot of the range operator.
func (lex *Lexer) readNumber(start int) token.Token {
	for isDigit(lex.current) {
		lex.advance()
	}
	if lex.current == '.' && lex.peek() != '.' && isDigit(lex.peek()) {
		lex.advance() // consume '.'
		for isDigit(lex.current) {
			lex.advance()
		}
	}
	literal := lex.src[start:lex.position]
	return token.Token{Kind: token.NUMBER, Literal: literal, Pos: token.Position{Start: start, End: lex.position}}
}

// readString scans a string literal delimited by matching single or double
// quotes. There are no escape sequences. An unterminated string consumes to
// end of input and is reported as ILLEGAL so the parser can surface a fatal
// diagnostic pointing at the opening quote.
func (lex *Lexer) readString(start int) token.Token {
	quote := lex.current
	lex.advance() // consume opening quote
	contentStart := lex.position
	for lex.current != quote && lex.current != 0 {
		lex.advance()
	}
	if lex.current == 0 {
		// Unterminated: point the diagnostic at the opening quote.
		return token.Token{Kind: token.ILLEGAL, Literal: lex.src[start:lex.position], Pos: token.Position{Start: start, End: start + 1}}
	}
	literal := lex.src[contentStart:lex.position]
	lex.advance() // consume closing quote
	return token.Token{Kind: token.STRING, Literal: literal, Pos: token.Position{Start: start, End: lex.position}}
}

func isWhitespace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isIdentStart(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isIdentPart(b byte) bool {
	return isIdentStart(b) || isDigit(b)
}
