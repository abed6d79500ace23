/*
File    : weave/evaluator/evaluator_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package evaluator

import (
	"bytes"
	"testing"

	"github.com/akashmaji946/weave/object"
	"github.com/akashmaji946/weave/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, src string) object.Value {
	t.Helper()
	program, errs := parser.Parse(src)
	require.Nil(t, errs, "unexpected parse errors for %q: %v", src, errs)
	return New().Run(program)
}

func TestRun_Arithmetic(t *testing.T) {
	val := run(t, "1 + 2 * 3")
	assert.Equal(t, float64(7), val.(*object.Number).Value)
}

func TestRun_StringConcatenation(t *testing.T) {
	val := run(t, "'hello' + ' world'")
	assert.Equal(t, "hello world", val.(*object.String).Value)
}

func TestRun_HeadTail(t *testing.T) {
	val := run(t, "let x = [1,2,3]\nhead(tail(x))")
	assert.Equal(t, float64(2), val.(*object.Number).Value)
}

func TestRun_IfWithAddition(t *testing.T) {
	val := run(t, "if true { 10 } else { 5 } + 50")
	assert.Equal(t, float64(60), val.(*object.Number).Value)
}

func TestRun_IfFalseBranchOnNonTrueCondition(t *testing.T) {
	val := run(t, "if 0 { 10 } else { 5 }")
	assert.Equal(t, float64(5), val.(*object.Number).Value)
}

func TestRun_MatchBindsIdentifier(t *testing.T) {
	val := run(t, "let x = 5 :: { 5 -> :ok, _ -> :no }\nx")
	assert.Equal(t, "ok", val.(*object.Symbol).Name)
}

func TestRun_FunctionCall(t *testing.T) {
	val := run(t, "let add = fn(a,b) -> a + b\nadd(2, 3)")
	assert.Equal(t, float64(5), val.(*object.Number).Value)
}

func TestRun_ClosureCapturesEnvironment(t *testing.T) {
	val := run(t, "let makeAdder = fn(x) -> fn(y) -> x + y\nlet addFive = makeAdder(5)\naddFive(10)")
	assert.Equal(t, float64(15), val.(*object.Number).Value)
}

func TestRun_RecursiveFunction(t *testing.T) {
	src := `
let fact = fn(n) -> if n == 0 { 1 } else { n * fact(n - 1) }
fact(5)
`
	val := run(t, src)
	assert.Equal(t, float64(120), val.(*object.Number).Value)
}

func TestRun_ArrayIndex(t *testing.T) {
	val := run(t, "[1,2,3][1]")
	assert.Equal(t, float64(2), val.(*object.Number).Value)
}

func TestRun_HashFieldAccess(t *testing.T) {
	val := run(t, "let p = { x = 1, y = 2 }\np.x")
	assert.Equal(t, float64(1), val.(*object.Number).Value)
}

func TestRun_Range(t *testing.T) {
	val := run(t, "1..5").(*object.Array)
	require.Len(t, val.Elements, 4)
	assert.Equal(t, float64(1), val.Elements[0].(*object.Number).Value)
	assert.Equal(t, float64(4), val.Elements[3].(*object.Number).Value)
}

func TestRun_EmptyRange(t *testing.T) {
	val := run(t, "5..1").(*object.Array)
	assert.Empty(t, val.Elements)
}

func TestRun_ArrayDestructuring(t *testing.T) {
	val := run(t, "let [a, _, c] = [1, 2, 3]\na + c")
	assert.Equal(t, float64(4), val.(*object.Number).Value)
}

func TestRun_HashDestructuring(t *testing.T) {
	val := run(t, "let {x, y} = { x = 1, y = 2 }\nx + y")
	assert.Equal(t, float64(3), val.(*object.Number).Value)
}

func TestRun_MapBuiltinAppliesFunction(t *testing.T) {
	val := run(t, "map([1,2,3], fn(x) -> x * 2)").(*object.Array)
	require.Len(t, val.Elements, 3)
	assert.Equal(t, float64(2), val.Elements[0].(*object.Number).Value)
	assert.Equal(t, float64(6), val.Elements[2].(*object.Number).Value)
}

func TestRun_LogWritesEachArgumentOnItsOwnLine(t *testing.T) {
	program, errs := parser.Parse("log(1, 'two')")
	require.Nil(t, errs)
	var buf bytes.Buffer
	ev := New()
	ev.SetWriter(&buf)
	ev.Run(program)
	assert.Equal(t, "1\ntwo\n", buf.String())
}

func TestRun_TruthinessOnlyTrueIsTruthy(t *testing.T) {
	val := run(t, "if 1 { :truthy } else { :falsy }")
	assert.Equal(t, "falsy", val.(*object.Symbol).Name)
}

func TestRun_UndefinedIdentifierIsError(t *testing.T) {
	val := run(t, "missing")
	assert.Equal(t, object.ERROR_OBJ, val.Type())
}

func TestRun_ArityMismatchIsError(t *testing.T) {
	val := run(t, "let add = fn(a,b) -> a + b\nadd(1)")
	assert.Equal(t, object.ERROR_OBJ, val.Type())
}
