/*
File    : weave/evaluator/match.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package evaluator

import (
	"github.com/akashmaji946/weave/ast"
	"github.com/akashmaji946/weave/environment"
	"github.com/akashmaji946/weave/object"
)

// evalMatch evaluates the scrutinee once, then tries each case's pattern
// in order. The first match binds its identifiers in a fresh child
// environment and evaluates its body; if nothing matches the result is
// void, per the spec.
func (ev *Evaluator) evalMatch(node *ast.MatchExpression, env *environment.Environment) object.Value {
	scrutinee := ev.Eval(node.Scrutinee, env)
	if isError(scrutinee) {
		return scrutinee
	}

	for _, matchCase := range node.Cases {
		caseEnv := environment.NewEnclosed(env)
		if matchPattern(matchCase.Pattern, scrutinee, caseEnv) {
			return ev.evalBlock(matchCase.Body, caseEnv)
		}
	}

	return &object.Void{}
}

// matchPattern attempts to match pattern against value, binding any
// identifiers it introduces into env. It is all-or-nothing: a failed
// sub-match anywhere in a compound pattern fails the whole attempt, and
// any partial bindings made along the way are harmless since caseEnv is
// discarded by the caller on failure.
func matchPattern(pattern ast.Pattern, value object.Value, env *environment.Environment) bool {
	switch pat := pattern.(type) {
	case *ast.WildcardPattern:
		return true

	case *ast.IdentifierPattern:
		env.Set(pat.Name, value)
		return true

	case *ast.NumberPattern:
		num, ok := value.(*object.Number)
		return ok && num.Value == pat.Value

	case *ast.StringPattern:
		str, ok := value.(*object.String)
		return ok && str.Value == pat.Value

	case *ast.SymbolPattern:
		sym, ok := value.(*object.Symbol)
		return ok && sym.Name == pat.Value

	case *ast.BooleanPattern:
		b, ok := value.(*object.Boolean)
		return ok && b.Value == pat.Value

	case *ast.ArrayPattern:
		arr, ok := value.(*object.Array)
		if !ok || len(arr.Elements) != len(pat.Elements) {
			return false
		}
		for i, elemPattern := range pat.Elements {
			if !matchPattern(elemPattern, arr.Elements[i], env) {
				return false
			}
		}
		return true

	case *ast.HashPattern:
		hash, ok := value.(*object.Hash)
		for _, field := range pat.Fields {
			var fieldVal object.Value = &object.Null{}
			if ok {
				fieldVal, _ = hash.Get(field.Key)
			}
			env.Set(field.Alias, fieldVal)
		}
		return true

	default:
		return false
	}
}

// bindPattern implements `let <pattern> = <value>` for the three
// assignable pattern shapes: identifier, array, and hash; a wildcard binds
// nothing. Literal patterns (number/string/symbol/boolean) are not legal
// assignment targets and produce a runtime error — the parser accepts any
// pattern on the left of `let`, so this check is what rejects them.
func (ev *Evaluator) bindPattern(pattern ast.Pattern, value object.Value, env *environment.Environment) object.Value {
	switch pat := pattern.(type) {
	case *ast.IdentifierPattern:
		env.Set(pat.Name, value)
		return nil

	case *ast.WildcardPattern:
		return nil

	case *ast.ArrayPattern:
		arr, ok := value.(*object.Array)
		if !ok {
			return newError("cannot destructure %s as an array", value.Type())
		}
		if len(pat.Elements) > len(arr.Elements) {
			return newError("array pattern expects at least %d elements, got %d", len(pat.Elements), len(arr.Elements))
		}
		for i, elemPattern := range pat.Elements {
			if err := ev.bindPattern(elemPattern, arr.Elements[i], env); err != nil {
				return err
			}
		}
		return nil

	case *ast.HashPattern:
		hash, ok := value.(*object.Hash)
		for _, field := range pat.Fields {
			var fieldVal object.Value = &object.Null{}
			if ok {
				fieldVal, _ = hash.Get(field.Key)
			}
			env.Set(field.Alias, fieldVal)
		}
		return nil

	default:
		return newError("pattern cannot be used as an assignment target")
	}
}
