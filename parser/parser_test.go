/*
File    : weave/parser/parser_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"testing"

	"github.com/akashmaji946/weave/ast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, src string) *ast.Program {
	t.Helper()
	program, errs := Parse(src)
	require.Nil(t, errs, "unexpected parse errors for %q: %v", src, errs)
	return program
}

func TestParse_LetStatement(t *testing.T) {
	program := mustParse(t, "let x = 5")
	require.Len(t, program.Statements, 1)
	stmt, ok := program.Statements[0].(*ast.AssignStatement)
	require.True(t, ok)
	assert.Equal(t, "x", stmt.Target.(*ast.IdentifierPattern).Name)
	assert.Equal(t, float64(5), stmt.Value.(*ast.NumberLiteral).Value)
}

func TestParse_LetWithArrayPattern(t *testing.T) {
	program := mustParse(t, "let [a, _, c] = xs")
	stmt := program.Statements[0].(*ast.AssignStatement)
	arr := stmt.Target.(*ast.ArrayPattern)
	require.Len(t, arr.Elements, 3)
	assert.Equal(t, "a", arr.Elements[0].(*ast.IdentifierPattern).Name)
	_, isWildcard := arr.Elements[1].(*ast.WildcardPattern)
	assert.True(t, isWildcard)
	assert.Equal(t, "c", arr.Elements[2].(*ast.IdentifierPattern).Name)
}

func TestParse_ReturnStatement(t *testing.T) {
	program := mustParse(t, "return 1 + 2")
	stmt := program.Statements[0].(*ast.ReturnStatement)
	assert.Equal(t, "(1 + 2)", stmt.Value.String())
}

func TestParse_ImportStatement(t *testing.T) {
	program := mustParse(t, "import utils from 'std/utils'")
	stmt := program.Statements[0].(*ast.ImportStatement)
	assert.Equal(t, "utils", stmt.Name.(*ast.IdentifierPattern).Name)
	assert.Equal(t, "std/utils", stmt.Source.(*ast.StringLiteral).Value)
}

func TestParse_OperatorPrecedence(t *testing.T) {
	cases := map[string]string{
		"1 + 2 * 3":         "(1 + (2 * 3))",
		"-a * b":             "((-a) * b)",
		"a + b + c":          "((a + b) + c)",
		"a < b == c > d":     "((a < b) == (c > d))",
		"a || b && c":        "((a || b) && c)",
		"1..5":               "(1 .. 5)",
	}
	for input, want := range cases {
		program := mustParse(t, input)
		got := program.Statements[0].(*ast.ExpressionStatement).Expression.String()
		assert.Equal(t, want, got, "input: %s", input)
	}
}

func TestParse_IfExpressionWithElse(t *testing.T) {
	_, errs := Parse("let x = if true { 1 } else { 2 }")
	assert.Nil(t, errs)
}

func TestParse_FunctionLiteralAndCall(t *testing.T) {
	program := mustParse(t, "let add = fn(x, y) -> { x + y }\nadd(1, 2)")
	require.Len(t, program.Statements, 2)

	fn := program.Statements[0].(*ast.AssignStatement).Value.(*ast.FunctionLiteral)
	require.Len(t, fn.Parameters, 2)
	assert.Equal(t, "x", fn.Parameters[0].Value)

	call := program.Statements[1].(*ast.ExpressionStatement).Expression.(*ast.CallExpression)
	assert.Equal(t, "add", call.Function.(*ast.Identifier).Value)
	require.Len(t, call.Arguments, 2)
}

func TestParse_FunctionShorthand(t *testing.T) {
	program := mustParse(t, "let inc = fn x -> x + 1")
	fn := program.Statements[0].(*ast.AssignStatement).Value.(*ast.FunctionLiteral)
	require.Len(t, fn.Parameters, 1)
	assert.Equal(t, "x", fn.Parameters[0].Value)
}

func TestParse_ArrayAndIndex(t *testing.T) {
	program := mustParse(t, "let xs = [1, 2, 3]\nxs[0]")
	arr := program.Statements[0].(*ast.AssignStatement).Value.(*ast.ArrayLiteral)
	require.Len(t, arr.Elements, 3)

	member := program.Statements[1].(*ast.ExpressionStatement).Expression.(*ast.MemberExpression)
	assert.True(t, member.Computed)
}

func TestParse_FieldAccess(t *testing.T) {
	program := mustParse(t, "point.x")
	member := program.Statements[0].(*ast.ExpressionStatement).Expression.(*ast.MemberExpression)
	assert.False(t, member.Computed)
	assert.Equal(t, "x", member.Property.(*ast.Identifier).Value)
}

func TestParse_HashLiteral(t *testing.T) {
	program := mustParse(t, "{ x = 1, y = 2 }")
	hash := program.Statements[0].(*ast.ExpressionStatement).Expression.(*ast.HashLiteral)
	require.Len(t, hash.Keys, 2)
	assert.Equal(t, "x", hash.Keys[0].Value)
	assert.Equal(t, "y", hash.Keys[1].Value)
}

func TestParse_HashLiteralShorthand(t *testing.T) {
	program := mustParse(t, "{ x, y = 2 }")
	hash := program.Statements[0].(*ast.ExpressionStatement).Expression.(*ast.HashLiteral)
	require.Len(t, hash.Keys, 2)
	shorthand, ok := hash.Values[0].(*ast.Identifier)
	require.True(t, ok)
	assert.Equal(t, "x", shorthand.Value)
}

func TestParse_MatchExpression(t *testing.T) {
	program := mustParse(t, `v :: { 0 -> :zero, _ -> :other }`)
	match := program.Statements[0].(*ast.ExpressionStatement).Expression.(*ast.MatchExpression)
	require.Len(t, match.Cases, 2)
	_, isNum := match.Cases[0].Pattern.(*ast.NumberPattern)
	assert.True(t, isNum)
	_, isWild := match.Cases[1].Pattern.(*ast.WildcardPattern)
	assert.True(t, isWild)
}

func TestParse_SymbolLiteral(t *testing.T) {
	program := mustParse(t, "let status = :ok")
	sym := program.Statements[0].(*ast.AssignStatement).Value.(*ast.SymbolLiteral)
	assert.Equal(t, "ok", sym.Value)
}

func TestParse_MissingElseReportsError(t *testing.T) {
	_, errs := Parse("let x = if true { 1 }")
	require.NotNil(t, errs)
	assert.Contains(t, errs.Error(), "else")
}

func TestParse_UnterminatedStringReportsError(t *testing.T) {
	_, errs := Parse(`let x = 'abc`)
	require.NotNil(t, errs)
}

func TestParse_MultipleStatementsAccumulatesErrors(t *testing.T) {
	_, errs := Parse("let = 1\nlet = 2")
	require.NotNil(t, errs)
	assert.GreaterOrEqual(t, errs.Len(), 2)
}
