/*
File    : weave/object/function.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package object

import (
	"strings"

	"github.com/akashmaji946/weave/ast"
)

// Scope is the subset of environment.Environment's behavior a closure
// needs to capture its defining scope. It is declared here, rather than
// object importing the environment package directly, to avoid the import
// cycle that would otherwise result from environment.Environment storing
// object.Value bindings.
type Scope interface {
	Get(name string) (Value, bool)
	Set(name string, val Value)
}

// Function is a user-defined closure: its parameter list, body, and the
// environment it was defined in (for lexical scoping), grounded on the
// teacher's function.Function but trimmed of the teacher's named-function
// bookkeeping since Weave functions are always anonymous values bound by
// `let`.
type Function struct {
	Parameters []*ast.Identifier
	Body       *ast.Block
	Env        Scope
}

func (f *Function) Type() Type { return FUNCTION_OBJ }
func (f *Function) Inspect() string {
	var names []string
	for _, p := range f.Parameters {
		names = append(names, p.Value)
	}
	return "fn(" + strings.Join(names, ", ") + ") -> { ... }"
}

// Caller lets a builtin invoke a Weave function value as a callback
// without the object package importing the evaluator. Only `map` needs
// this today, per the spec's builtin-callback design note; the evaluator
// satisfies this interface on itself.
type Caller interface {
	Apply(fn Value, args []Value) Value
}

// BuiltinFunction is the Go implementation backing a builtin value. Arity
// is enforced by the caller before Fn runs; Fn receives the Caller so
// builtins like `map` can invoke a function argument.
type BuiltinFunction func(call Caller, args ...Value) Value

// Builtin wraps a BuiltinFunction as a first-class Value so builtins can be
// passed around and called exactly like user-defined functions. Arity < 0
// means variadic, matching the spec's builtin contract.
type Builtin struct {
	Name  string
	Arity int
	Fn    BuiltinFunction
}

func (b *Builtin) Type() Type      { return BUILTIN_OBJ }
func (b *Builtin) Inspect() string { return "builtin(" + b.Name + ")" }
