/*
File    : weave/repl/backend.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package repl

import (
	"io"

	"github.com/akashmaji946/weave/ast"
	"github.com/akashmaji946/weave/compiler"
	"github.com/akashmaji946/weave/object"
	"github.com/akashmaji946/weave/style"
	"github.com/akashmaji946/weave/vm"
)

// runEvaluator runs program through sess's tree-walking evaluator,
// reusing its globals across lines.
func (sess *session) runEvaluator(writer io.Writer, program *ast.Program) {
	result := sess.eval.Run(program)
	printResult(writer, result)
}

// runVM compiles program against sess's accumulated symbol table and
// constants, then runs it on a VM seeded with sess's accumulated globals.
// The resulting symbol table, constants, and globals are written back so
// the next line sees this line's bindings.
func (sess *session) runVM(writer io.Writer, program *ast.Program) {
	comp := compiler.NewWithState(sess.symbols, sess.constants)
	if err := comp.Compile(program); err != nil {
		io.WriteString(writer, style.Red("[COMPILE ERROR] "+err.Error())+"\n")
		return
	}

	bytecode := comp.Bytecode()
	machine := vm.NewWithGlobals(bytecode, sess.globals)
	if err := machine.Run(); err != nil {
		io.WriteString(writer, style.Red("[RUNTIME ERROR] "+err.Error())+"\n")
		return
	}

	sess.symbols = comp.SymbolTable()
	sess.constants = bytecode.Constants
	sess.globals = machine.Globals()

	printResult(writer, machine.LastPoppedStackElem())
}

func printResult(writer io.Writer, result object.Value) {
	if result == nil {
		return
	}
	if result.Type() == object.VOID_OBJ {
		return
	}
	if result.Type() == object.ERROR_OBJ {
		io.WriteString(writer, style.Red(result.Inspect())+"\n")
		return
	}
	io.WriteString(writer, style.Yellow(result.Inspect())+"\n")
}
