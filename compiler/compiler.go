/*
File    : weave/compiler/compiler.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package compiler translates an ast.Program into Weave bytecode: a flat
// code.Instructions buffer plus a constant pool. It follows the
// emit/emitJump/patchJump vocabulary of the golox reference compiler
// (vm/compiler.go in the retrieved pack) adapted to a separate
// AST-to-bytecode pass instead of golox's single-pass Pratt compiler,
// since Weave parses to a full AST first.
package compiler

import (
	"fmt"

	"github.com/akashmaji946/weave/ast"
	"github.com/akashmaji946/weave/code"
	"github.com/akashmaji946/weave/object"
)

// EmittedInstruction records one emit call's opcode and byte position, so
// the compiler can recognize and remove a trailing OpPop when compiling
// an if-expression's branches.
type EmittedInstruction struct {
	Opcode   code.Opcode
	Position int
}

// Bytecode is the compiler's output: the instruction stream and the
// constants it references by index.
type Bytecode struct {
	Instructions code.Instructions
	Constants    []object.Value
}

// Compiler holds the growing instruction buffer, the constant pool, the
// global symbol table, and the last two emitted instructions (used for
// the if-expression peephole).
type Compiler struct {
	instructions code.Instructions
	constants    []object.Value

	symbolTable *SymbolTable

	lastInstruction     EmittedInstruction
	previousInstruction EmittedInstruction
}

// New creates a Compiler with an empty instruction buffer, constant pool,
// and symbol table — the shape used for a fresh top-level compile.
func New() *Compiler {
	return &Compiler{
		constants:   []object.Value{},
		symbolTable: NewSymbolTable(),
	}
}

// NewWithState creates a Compiler seeded with a prior run's symbol table
// and constants, the REPL carry-over constructor the spec's §4.4/§5
// requires so each line compiles against accumulated globals.
func NewWithState(symbols *SymbolTable, constants []object.Value) *Compiler {
	compiler := New()
	compiler.symbolTable = symbols
	compiler.constants = constants
	return compiler
}

// SymbolTable exposes the compiler's table so the REPL can thread it into
// the next line's NewWithState call.
func (c *Compiler) SymbolTable() *SymbolTable {
	return c.symbolTable
}

// Bytecode returns the compiler's accumulated instructions and constants.
func (c *Compiler) Bytecode() *Bytecode {
	return &Bytecode{Instructions: c.instructions, Constants: c.constants}
}

// CompileError is a compile-time diagnostic: an AST shape or operator the
// bytecode back end does not support, or an undefined identifier.
type CompileError struct {
	Message string
}

func (e *CompileError) Error() string { return e.Message }

func compileErrorf(format string, args ...interface{}) error {
	return &CompileError{Message: fmt.Sprintf(format, args...)}
}

// Compile compiles every statement in program in order.
func (c *Compiler) Compile(program *ast.Program) error {
	for _, stmt := range program.Statements {
		if err := c.compileStatement(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (c *Compiler) compileStatement(stmt ast.Statement) error {
	switch node := stmt.(type) {
	case *ast.ExpressionStatement:
		if err := c.compileExpression(node.Expression); err != nil {
			return err
		}
		c.emit(code.OpPop)
		return nil

	case *ast.AssignStatement:
		return c.compileAssign(node)

	case *ast.ReturnStatement:
		return compileErrorf("return is not supported by the bytecode compiler")

	case *ast.ImportStatement:
		return compileErrorf("import is not supported by the bytecode compiler")

	default:
		return compileErrorf("unsupported statement type: %T", stmt)
	}
}

// compileAssign compiles `let <pattern> = <expr>`. Only identifier
// patterns are supported; array/hash destructuring is evaluator-only per
// the spec, so encountering one here is a compile error rather than a
// silent no-op.
func (c *Compiler) compileAssign(node *ast.AssignStatement) error {
	ident, ok := node.Target.(*ast.IdentifierPattern)
	if !ok {
		return compileErrorf("unsupported assignment target for bytecode compilation: %T", node.Target)
	}

	if err := c.compileExpression(node.Value); err != nil {
		return err
	}

	symbol := c.symbolTable.Define(ident.Name)
	c.emit(code.OpSetGlobal, symbol.Index)
	return nil
}

func (c *Compiler) compileExpression(expr ast.Expression) error {
	switch node := expr.(type) {
	case *ast.NumberLiteral:
		c.emit(code.OpConstant, c.addConstant(&object.Number{Value: node.Value}))
		return nil

	case *ast.StringLiteral:
		c.emit(code.OpConstant, c.addConstant(&object.String{Value: node.Value}))
		return nil

	case *ast.Boolean:
		if node.Value {
			c.emit(code.OpTrue)
		} else {
			c.emit(code.OpFalse)
		}
		return nil

	case *ast.Identifier:
		symbol, ok := c.symbolTable.Resolve(node.Value)
		if !ok {
			return compileErrorf("undefined variable %s", node.Value)
		}
		c.emit(code.OpGetGlobal, symbol.Index)
		return nil

	case *ast.PrefixExpression:
		return c.compilePrefix(node)

	case *ast.InfixExpression:
		return c.compileInfix(node)

	case *ast.IfExpression:
		return c.compileIf(node)

	case *ast.ArrayLiteral:
		return c.compileArray(node)

	default:
		return compileErrorf("unsupported expression type for bytecode compilation: %T", expr)
	}
}

func (c *Compiler) compilePrefix(node *ast.PrefixExpression) error {
	if err := c.compileExpression(node.Right); err != nil {
		return err
	}
	switch node.Operator {
	case "-":
		c.emit(code.OpMinus)
	case "!":
		c.emit(code.OpBang)
	default:
		return compileErrorf("unknown prefix operator %s", node.Operator)
	}
	return nil
}

func (c *Compiler) compileInfix(node *ast.InfixExpression) error {
	if node.Operator == "<" || node.Operator == "<=" {
		if err := c.compileExpression(node.Right); err != nil {
			return err
		}
		if err := c.compileExpression(node.Left); err != nil {
			return err
		}
		if node.Operator == "<" {
			c.emit(code.OpGreater)
		} else {
			c.emit(code.OpGreaterEqual)
		}
		return nil
	}

	if err := c.compileExpression(node.Left); err != nil {
		return err
	}
	if err := c.compileExpression(node.Right); err != nil {
		return err
	}

	switch node.Operator {
	case "+":
		c.emit(code.OpAdd)
	case "-":
		c.emit(code.OpSub)
	case "*":
		c.emit(code.OpMul)
	case "/":
		c.emit(code.OpDiv)
	case "%":
		c.emit(code.OpMod)
	case ">":
		c.emit(code.OpGreater)
	case ">=":
		c.emit(code.OpGreaterEqual)
	case "==":
		c.emit(code.OpEqual)
	case "!=":
		c.emit(code.OpNotEqual)
	default:
		return compileErrorf("unknown infix operator %s", node.Operator)
	}
	return nil
}

// compileIf implements the spec's seven-step if-expression compilation:
// conditional jump, then-branch with its trailing Pop stripped,
// unconditional jump over the else-branch, both jumps patched once their
// targets are known.
func (c *Compiler) compileIf(node *ast.IfExpression) error {
	if err := c.compileExpression(node.Condition); err != nil {
		return err
	}

	jumpNotTruthyPos := c.emit(code.OpJumpNotTruthy, 0xFFFF)

	if err := c.compileBlock(node.Consequence); err != nil {
		return err
	}
	if c.lastInstructionIs(code.OpPop) {
		c.removeLastPop()
	}

	jumpPos := c.emit(code.OpJump, 0xFFFF)

	c.changeOperand(jumpNotTruthyPos, len(c.instructions))

	if err := c.compileBlock(node.Alternative); err != nil {
		return err
	}
	if c.lastInstructionIs(code.OpPop) {
		c.removeLastPop()
	}

	c.changeOperand(jumpPos, len(c.instructions))

	return nil
}

func (c *Compiler) compileBlock(block *ast.Block) error {
	for _, stmt := range block.Statements {
		if err := c.compileStatement(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (c *Compiler) compileArray(node *ast.ArrayLiteral) error {
	for _, elem := range node.Elements {
		if err := c.compileExpression(elem); err != nil {
			return err
		}
	}
	c.emit(code.OpArray, len(node.Elements))
	return nil
}
