/*
File    : weave/semantics/analyze.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package semantics

import (
	"fmt"

	"github.com/akashmaji946/weave/ast"
	"github.com/akashmaji946/weave/style"
)

// Result is the outcome of analyzing a program: fatal errors (undeclared
// identifiers, malformed patterns) and non-fatal warnings (suspicious but
// not incorrect import statements).
type Result struct {
	Errors   []string
	Warnings []string
}

// Analyze walks program's statements in declaration order, reporting any
// identifier referenced before it is bound. Unlike the parser and
// compiler, this pass is advisory: callers may still run a program with a
// non-empty Result.
func Analyze(program *ast.Program) Result {
	ctx := NewContext()
	var res Result
	for _, stmt := range program.Statements {
		analyzeStatement(stmt, ctx, &res)
	}
	return res
}

func analyzeStatement(stmt ast.Statement, ctx *Context, res *Result) {
	switch node := stmt.(type) {
	case *ast.ExpressionStatement:
		if node.Expression != nil {
			analyzeExpression(node.Expression, ctx, res)
		}

	case *ast.AssignStatement:
		declarePattern(node.Target, ctx, res)
		analyzeExpression(node.Value, ctx, res)

	case *ast.ReturnStatement:
		// The original analysis does not descend into a return's value;
		// carried here unchanged rather than "fixed", since Return is
		// already a compile-time error in the bytecode back end and the
		// evaluator analyzes it like any other expression at eval time.

	case *ast.ImportStatement:
		ident, isIdent := node.Name.(*ast.IdentifierPattern)
		if !isIdent {
			res.Warnings = append(res.Warnings, fmt.Sprintf(
				"import name should be an identifier, found %s", node.Name.String()))
		} else {
			ctx.Add(ident.Name)
		}
		if _, isString := node.Source.(*ast.StringLiteral); !isString {
			res.Warnings = append(res.Warnings, fmt.Sprintf(
				"import source should be a string literal, found %s", node.Source.String()))
		}
	}
}

// declarePattern binds every name a pattern introduces into ctx, so a
// `let` statement's value expression (and, for a function literal, its
// own body) can refer back to the name it is being assigned to.
func declarePattern(pattern ast.Pattern, ctx *Context, res *Result) {
	switch p := pattern.(type) {
	case *ast.IdentifierPattern:
		ctx.Add(p.Name)
	case *ast.ArrayPattern:
		for _, el := range p.Elements {
			if ident, ok := el.(*ast.IdentifierPattern); ok {
				ctx.Add(ident.Name)
			} else {
				res.Errors = append(res.Errors, "attempted to pattern match with a non-identifier value")
			}
		}
	case *ast.HashPattern:
		for _, field := range p.Fields {
			ctx.Add(field.Alias)
		}
	case *ast.WildcardPattern:
		// binds nothing
	}
}

func analyzeExpression(expr ast.Expression, ctx *Context, res *Result) {
	switch node := expr.(type) {
	case *ast.Identifier:
		if !ctx.Has(node.Value) {
			res.Errors = append(res.Errors, fmt.Sprintf(
				"identifier %s used before declaration", style.Emphasize(node.Value)))
		}

	case *ast.PrefixExpression:
		analyzeExpression(node.Right, ctx, res)

	case *ast.InfixExpression:
		analyzeExpression(node.Left, ctx, res)
		analyzeExpression(node.Right, ctx, res)

	case *ast.IfExpression:
		analyzeExpression(node.Condition, ctx, res)
		analyzeBlock(node.Consequence, NewChildBlock(ctx), res)
		analyzeBlock(node.Alternative, NewChildBlock(ctx), res)

	case *ast.ArrayLiteral:
		for _, el := range node.Elements {
			analyzeExpression(el, ctx, res)
		}

	case *ast.HashLiteral:
		for _, val := range node.Values {
			analyzeExpression(val, ctx, res)
		}

	case *ast.FunctionLiteral:
		fnCtx := NewChildBlock(ctx)
		for _, param := range node.Parameters {
			fnCtx.Add(param.Value)
		}
		analyzeBlock(node.Body, fnCtx, res)
	}
}

func analyzeBlock(block *ast.Block, ctx *Context, res *Result) {
	if block == nil {
		return
	}
	for _, stmt := range block.Statements {
		analyzeStatement(stmt, ctx, res)
	}
}
