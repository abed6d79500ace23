/*
File    : weave/ast/ast_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString_AssignStatement(t *testing.T) {
	stmt := &AssignStatement{
		Target: &IdentifierPattern{Name: "x"},
		Value:  &NumberLiteral{Value: 5},
	}
	assert.Equal(t, "let x = 5", stmt.String())
}

func TestString_InfixExpression(t *testing.T) {
	expr := &InfixExpression{
		Left:     &NumberLiteral{Value: 1},
		Operator: "+",
		Right:    &NumberLiteral{Value: 2},
	}
	assert.Equal(t, "(1 + 2)", expr.String())
}

func TestString_FunctionLiteral(t *testing.T) {
	fn := &FunctionLiteral{
		Parameters: []*Identifier{{Value: "x"}, {Value: "y"}},
		Body: &Block{Statements: []Statement{
			&ExpressionStatement{Expression: &InfixExpression{
				Left: &Identifier{Value: "x"}, Operator: "+", Right: &Identifier{Value: "y"},
			}},
		}},
	}
	assert.Equal(t, "fn(x, y) -> { (x + y); }", fn.String())
}

func TestString_MatchExpression(t *testing.T) {
	m := &MatchExpression{
		Scrutinee: &Identifier{Value: "v"},
		Cases: []MatchCase{
			{Pattern: &NumberPattern{Value: 0}, Body: &Block{Statements: []Statement{
				&ExpressionStatement{Expression: &SymbolLiteral{Value: "zero"}},
			}}},
			{Pattern: &WildcardPattern{}, Body: &Block{Statements: []Statement{
				&ExpressionStatement{Expression: &SymbolLiteral{Value: "other"}},
			}}},
		},
	}
	assert.Equal(t, "v :: { 0 -> :zero; , _ -> :other; }", m.String())
}

func TestString_ArrayAndHashLiterals(t *testing.T) {
	arr := &ArrayLiteral{Elements: []Expression{&NumberLiteral{Value: 1}, &NumberLiteral{Value: 2}}}
	assert.Equal(t, "[1, 2]", arr.String())

	h := &HashLiteral{
		Keys:   []*Identifier{{Value: "a"}},
		Values: []Expression{&NumberLiteral{Value: 1}},
	}
	assert.Equal(t, "{a = 1}", h.String())
}

func TestString_MemberExpression(t *testing.T) {
	computed := &MemberExpression{Object: &Identifier{Value: "arr"}, Property: &NumberLiteral{Value: 0}, Computed: true}
	assert.Equal(t, "arr[0]", computed.String())

	field := &MemberExpression{Object: &Identifier{Value: "obj"}, Property: &Identifier{Value: "name"}, Computed: false}
	assert.Equal(t, "obj.name", field.String())
}

func TestString_Patterns(t *testing.T) {
	assert.Equal(t, "_", (&WildcardPattern{}).String())
	assert.Equal(t, "x", (&IdentifierPattern{Name: "x"}).String())
	assert.Equal(t, "[x, _]", (&ArrayPattern{Elements: []Pattern{&IdentifierPattern{Name: "x"}, &WildcardPattern{}}}).String())
	assert.Equal(t, ":ok", (&SymbolPattern{Value: "ok"}).String())
}
