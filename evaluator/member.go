/*
File    : weave/evaluator/member.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package evaluator

import (
	"github.com/akashmaji946/weave/ast"
	"github.com/akashmaji946/weave/environment"
	"github.com/akashmaji946/weave/object"
)

// evalHashLiteral evaluates each `key = expr` entry left to right,
// preserving the source order in the resulting Hash.
func (ev *Evaluator) evalHashLiteral(node *ast.HashLiteral, env *environment.Environment) object.Value {
	hash := object.NewHash()
	for i, key := range node.Keys {
		val := ev.Eval(node.Values[i], env)
		if isError(val) {
			return val
		}
		hash.Set(key.Value, val)
	}
	return hash
}

// evalMember evaluates `obj[expr]` (Computed) and `obj.name` alike: both
// resolve to a named read on an array (numeric index) or a hash (field
// name).
func (ev *Evaluator) evalMember(node *ast.MemberExpression, env *environment.Environment) object.Value {
	object_ := ev.Eval(node.Object, env)
	if isError(object_) {
		return object_
	}

	if node.Computed {
		index := ev.Eval(node.Property, env)
		if isError(index) {
			return index
		}
		return evalIndex(object_, index)
	}

	ident, ok := node.Property.(*ast.Identifier)
	if !ok {
		return newError("field access requires an identifier name")
	}
	hash, ok := object_.(*object.Hash)
	if !ok {
		return newError("type mismatch: cannot access field %q on %s", ident.Value, object_.Type())
	}
	val, _ := hash.Get(ident.Value)
	return val
}

func evalIndex(left, index object.Value) object.Value {
	switch container := left.(type) {
	case *object.Array:
		idx, ok := index.(*object.Number)
		if !ok {
			return newError("array index must be a number, got %s", index.Type())
		}
		i := int(idx.Value)
		if i < 0 || i >= len(container.Elements) {
			return &object.Null{}
		}
		return container.Elements[i]

	case *object.Hash:
		key, ok := index.(*object.String)
		if !ok {
			return newError("hash index must be a string, got %s", index.Type())
		}
		val, _ := container.Get(key.Value)
		return val

	default:
		return newError("type mismatch: %s is not indexable", left.Type())
	}
}
