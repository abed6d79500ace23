/*
File    : weave/evaluator/call.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package evaluator

import (
	"github.com/akashmaji946/weave/environment"
	"github.com/akashmaji946/weave/object"
)

// applyFunction checks arity and dispatches to either a user-defined
// Function or a Builtin. It implements the Apply side of object.Caller so
// builtins such as `map` can invoke function-valued arguments.
func (ev *Evaluator) applyFunction(fn object.Value, args []object.Value) object.Value {
	switch f := fn.(type) {
	case *object.Function:
		if len(f.Parameters) != len(args) {
			return newError("wrong number of arguments: want=%d, got=%d", len(f.Parameters), len(args))
		}
		callEnv := environment.NewEnclosed(f.Env.(*environment.Environment))
		for i, param := range f.Parameters {
			callEnv.Set(param.Value, args[i])
		}
		return ev.unwrapReturn(ev.evalStatements(f.Body.Statements, callEnv))

	case *object.Builtin:
		if f.Arity >= 0 && len(args) != f.Arity {
			return newError("wrong number of arguments to %s: want=%d, got=%d", f.Name, f.Arity, len(args))
		}
		return f.Fn(ev, args...)

	default:
		return newError("not a function: %s", fn.Type())
	}
}

// Apply implements object.Caller for builtins like `map` that need to
// invoke a callback function value.
func (ev *Evaluator) Apply(fn object.Value, args []object.Value) object.Value {
	return ev.applyFunction(fn, args)
}
