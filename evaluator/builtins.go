/*
File    : weave/evaluator/builtins.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package evaluator

import (
	"fmt"

	"github.com/akashmaji946/weave/object"
)

// registerBuiltins builds the root-scope builtin table: head, tail, init,
// last, len, log, map, exactly the set the spec's §4.6 lists, grounded on
// the teacher's std.Builtins registration-table idiom.
func registerBuiltins() map[string]*object.Builtin {
	table := []*object.Builtin{
		{Name: "len", Arity: 1, Fn: builtinLen},
		{Name: "log", Arity: -1, Fn: builtinLog},
		{Name: "head", Arity: 1, Fn: builtinHead},
		{Name: "last", Arity: 1, Fn: builtinLast},
		{Name: "tail", Arity: 1, Fn: builtinTail},
		{Name: "init", Arity: 1, Fn: builtinInit},
		{Name: "map", Arity: 2, Fn: builtinMap},
	}

	builtins := make(map[string]*object.Builtin, len(table))
	for _, b := range table {
		builtins[b.Name] = b
	}
	return builtins
}

// lookupBuiltin is consulted by Eval's identifier case as a fallback when
// a name is not bound in any enclosing environment.
func (ev *Evaluator) lookupBuiltin(name string) (*object.Builtin, bool) {
	b, ok := ev.builtins[name]
	return b, ok
}

func builtinLen(_ object.Caller, args ...object.Value) object.Value {
	switch arg := args[0].(type) {
	case *object.Array:
		return &object.Number{Value: float64(len(arg.Elements))}
	case *object.String:
		return &object.Number{Value: float64(len(arg.Value))}
	case *object.Hash:
		return &object.Number{Value: float64(len(arg.Keys))}
	case *object.Function:
		return &object.Number{Value: float64(len(arg.Parameters))}
	default:
		return &object.Number{Value: 0}
	}
}

func builtinLog(call object.Caller, args ...object.Value) object.Value {
	writer := logWriterOf(call)
	for _, a := range args {
		fmt.Fprintln(writer, a.Inspect())
	}
	return &object.Void{}
}

// logWriterOf recovers the Evaluator's configured Writer; call is always
// an *Evaluator in practice (the only implementer of object.Caller), but
// the builtin signature is kept in terms of the interface per the spec's
// builtin-callback design note.
func logWriterOf(call object.Caller) interface {
	Write([]byte) (int, error)
} {
	if ev, ok := call.(*Evaluator); ok {
		return ev.Writer
	}
	return discardWriter{}
}

type discardWriter struct{}

func (discardWriter) Write(p []byte) (int, error) { return len(p), nil }

func builtinHead(_ object.Caller, args ...object.Value) object.Value {
	arr, ok := args[0].(*object.Array)
	if !ok {
		return newError("head expects an array, got %s", args[0].Type())
	}
	if len(arr.Elements) == 0 {
		return &object.Null{}
	}
	return arr.Elements[0]
}

func builtinLast(_ object.Caller, args ...object.Value) object.Value {
	arr, ok := args[0].(*object.Array)
	if !ok {
		return newError("last expects an array, got %s", args[0].Type())
	}
	if len(arr.Elements) == 0 {
		return &object.Null{}
	}
	return arr.Elements[len(arr.Elements)-1]
}

func builtinTail(_ object.Caller, args ...object.Value) object.Value {
	arr, ok := args[0].(*object.Array)
	if !ok {
		return newError("tail expects an array, got %s", args[0].Type())
	}
	if len(arr.Elements) == 0 {
		return &object.Array{}
	}
	rest := make([]object.Value, len(arr.Elements)-1)
	copy(rest, arr.Elements[1:])
	return &object.Array{Elements: rest}
}

func builtinInit(_ object.Caller, args ...object.Value) object.Value {
	arr, ok := args[0].(*object.Array)
	if !ok {
		return newError("init expects an array, got %s", args[0].Type())
	}
	if len(arr.Elements) == 0 {
		return &object.Array{}
	}
	head := make([]object.Value, len(arr.Elements)-1)
	copy(head, arr.Elements[:len(arr.Elements)-1])
	return &object.Array{Elements: head}
}

func builtinMap(call object.Caller, args ...object.Value) object.Value {
	arr, ok := args[0].(*object.Array)
	if !ok {
		return newError("map expects an array as its first argument, got %s", args[0].Type())
	}
	fn := args[1]

	result := make([]object.Value, len(arr.Elements))
	for i, elem := range arr.Elements {
		mapped := call.Apply(fn, []object.Value{elem})
		if isError(mapped) {
			return mapped
		}
		result[i] = mapped
	}
	return &object.Array{Elements: result}
}
