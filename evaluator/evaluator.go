/*
File    : weave/evaluator/evaluator.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package evaluator implements Weave's tree-walking back end: it walks an
// ast.Program directly against a chained environment.Environment, in the
// same shape as the teacher's eval.Evaluator (which holds a *scope.Scope
// plus a builtin table and an output writer), trimmed of the teacher's
// parser back-reference and struct-type table since Weave has no
// equivalent features.
package evaluator

import (
	"fmt"
	"io"
	"os"

	"github.com/akashmaji946/weave/ast"
	"github.com/akashmaji946/weave/environment"
	"github.com/akashmaji946/weave/object"
)

// Evaluator holds the state needed to walk an AST: the root environment
// and the output stream builtins like `log` write to.
type Evaluator struct {
	Globals *environment.Environment
	Writer  io.Writer

	builtins map[string]*object.Builtin
}

// New creates an Evaluator with a fresh global environment and the
// builtin table installed, writing `log` output to stdout by default.
func New() *Evaluator {
	ev := &Evaluator{
		Globals: environment.New(),
		Writer:  os.Stdout,
	}
	ev.builtins = registerBuiltins()
	return ev
}

// SetWriter redirects builtin output, mainly so tests can capture `log`.
func (ev *Evaluator) SetWriter(w io.Writer) {
	ev.Writer = w
}

// Run evaluates program top to bottom in the evaluator's global
// environment and returns the resulting value. If a return statement
// fires at the top level its wrapped value is unwrapped and returned,
// matching the spec's "program result" rule.
func (ev *Evaluator) Run(program *ast.Program) object.Value {
	return ev.unwrapReturn(ev.evalStatements(program.Statements, ev.Globals))
}

// evalStatements evaluates a sequence of statements in env, short-
// circuiting as soon as one produces a ReturnValue so that a `return`
// anywhere in a block propagates upward without unwrapping.
func (ev *Evaluator) evalStatements(stmts []ast.Statement, env *environment.Environment) object.Value {
	var result object.Value = &object.Void{}

	for _, stmt := range stmts {
		result = ev.evalStatement(stmt, env)
		if result == nil {
			result = &object.Void{}
		}
		if isError(result) || isReturn(result) {
			return result
		}
	}

	return result
}

func (ev *Evaluator) evalStatement(stmt ast.Statement, env *environment.Environment) object.Value {
	switch node := stmt.(type) {
	case *ast.ExpressionStatement:
		if node.Expression == nil {
			return &object.Void{}
		}
		return ev.Eval(node.Expression, env)

	case *ast.ReturnStatement:
		var val object.Value = &object.Null{}
		if node.Value != nil {
			val = ev.Eval(node.Value, env)
			if isError(val) {
				return val
			}
		}
		return &object.ReturnValue{Value: val}

	case *ast.AssignStatement:
		val := ev.Eval(node.Value, env)
		if isError(val) {
			return val
		}
		if err := ev.bindPattern(node.Target, val, env); err != nil {
			return err
		}
		return &object.Void{}

	case *ast.ImportStatement:
		// The evaluator treats import as a no-op; the semantic pre-pass
		// is responsible for warning about malformed imports.
		return &object.Void{}

	default:
		return newError("unknown statement type: %T", stmt)
	}
}

// Eval dispatches on the concrete ast.Expression type, the normative
// tag-plus-payload switch the spec's design notes call for.
func (ev *Evaluator) Eval(expr ast.Expression, env *environment.Environment) object.Value {
	switch node := expr.(type) {
	case *ast.NumberLiteral:
		return &object.Number{Value: node.Value}
	case *ast.StringLiteral:
		return &object.String{Value: node.Value}
	case *ast.SymbolLiteral:
		return &object.Symbol{Name: node.Value}
	case *ast.Boolean:
		return nativeBool(node.Value)
	case *ast.Identifier:
		if val, ok := env.Get(node.Value); ok {
			return val
		}
		if builtin, ok := ev.lookupBuiltin(node.Value); ok {
			return builtin
		}
		return newError("identifier not found: %s", node.Value)

	case *ast.PrefixExpression:
		right := ev.Eval(node.Right, env)
		if isError(right) {
			return right
		}
		return ev.evalPrefix(node.Operator, right)

	case *ast.InfixExpression:
		left := ev.Eval(node.Left, env)
		if isError(left) {
			return left
		}
		right := ev.Eval(node.Right, env)
		if isError(right) {
			return right
		}
		return ev.evalInfix(node.Operator, left, right)

	case *ast.IfExpression:
		cond := ev.Eval(node.Condition, env)
		if isError(cond) {
			return cond
		}
		if object.IsTruthy(cond) {
			return ev.evalBlock(node.Consequence, environment.NewEnclosed(env))
		}
		return ev.evalBlock(node.Alternative, environment.NewEnclosed(env))

	case *ast.FunctionLiteral:
		return &object.Function{Parameters: node.Parameters, Body: node.Body, Env: env}

	case *ast.CallExpression:
		fn := ev.Eval(node.Function, env)
		if isError(fn) {
			return fn
		}
		args, err := ev.evalExpressions(node.Arguments, env)
		if err != nil {
			return err
		}
		return ev.applyFunction(fn, args)

	case *ast.MatchExpression:
		return ev.evalMatch(node, env)

	case *ast.ArrayLiteral:
		elements, err := ev.evalExpressions(node.Elements, env)
		if err != nil {
			return err
		}
		return &object.Array{Elements: elements}

	case *ast.HashLiteral:
		return ev.evalHashLiteral(node, env)

	case *ast.MemberExpression:
		return ev.evalMember(node, env)

	default:
		return newError("unknown expression type: %T", expr)
	}
}

// evalBlock evaluates a block in its own environment, returning the last
// statement's value, or propagating a ReturnValue unwrapped (callers that
// need to keep propagating further up should check isReturn themselves).
func (ev *Evaluator) evalBlock(block *ast.Block, env *environment.Environment) object.Value {
	return ev.evalStatements(block.Statements, env)
}

func (ev *Evaluator) evalExpressions(exprs []ast.Expression, env *environment.Environment) ([]object.Value, object.Value) {
	var result []object.Value
	for _, e := range exprs {
		val := ev.Eval(e, env)
		if isError(val) {
			return nil, val
		}
		result = append(result, val)
	}
	return result, nil
}

func (ev *Evaluator) unwrapReturn(val object.Value) object.Value {
	if rv, ok := val.(*object.ReturnValue); ok {
		return rv.Value
	}
	return val
}

func isReturn(val object.Value) bool {
	_, ok := val.(*object.ReturnValue)
	return ok
}

func isError(val object.Value) bool {
	_, ok := val.(*object.Error)
	return ok
}

func nativeBool(b bool) *object.Boolean {
	return &object.Boolean{Value: b}
}

func newError(format string, args ...interface{}) *object.Error {
	return &object.Error{Message: fmt.Sprintf(format, args...)}
}
