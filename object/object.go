/*
File    : weave/object/object.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package object defines the runtime value representation shared by both
// Weave back ends (the tree-walking evaluator and the bytecode VM). Every
// value implements Value, grounded on the teacher's GoMixObject interface
// (objects/objects.go) but with a value set sized to Weave's grammar:
// numbers, strings, symbols, booleans, null, void, arrays, hashes,
// functions, builtins, and the internal ReturnValue/control wrappers.
package object

import (
	"fmt"
	"strconv"
	"strings"
)

// Type identifies the runtime category of a Value.
type Type string

const (
	NUMBER_OBJ   Type = "NUMBER"
	STRING_OBJ   Type = "STRING"
	SYMBOL_OBJ   Type = "SYMBOL"
	BOOLEAN_OBJ  Type = "BOOLEAN"
	NULL_OBJ     Type = "NULL"
	VOID_OBJ     Type = "VOID"
	ARRAY_OBJ    Type = "ARRAY"
	HASH_OBJ     Type = "HASH"
	FUNCTION_OBJ Type = "FUNCTION"
	BUILTIN_OBJ  Type = "BUILTIN"
	RETURN_OBJ   Type = "RETURN_VALUE"
	ERROR_OBJ    Type = "ERROR"
)

// Value is the interface every Weave runtime value implements.
type Value interface {
	Type() Type
	Inspect() string
}

// Number is Weave's sole numeric type: a double-precision float, matching
// the original implementation's single Number value (no separate int/float
// split, unlike the teacher's Integer/Float pair).
type Number struct {
	Value float64
}

func (n *Number) Type() Type { return NUMBER_OBJ }
func (n *Number) Inspect() string {
	return strconv.FormatFloat(n.Value, 'g', -1, 64)
}

// String is a Weave string value.
type String struct {
	Value string
}

func (s *String) Type() Type      { return STRING_OBJ }
func (s *String) Inspect() string { return s.Value }

// Symbol is a Weave `:name` value, interned by name equality.
type Symbol struct {
	Name string
}

func (s *Symbol) Type() Type      { return SYMBOL_OBJ }
func (s *Symbol) Inspect() string { return ":" + s.Name }

// Boolean is a Weave true/false value.
type Boolean struct {
	Value bool
}

func (b *Boolean) Type() Type { return BOOLEAN_OBJ }
func (b *Boolean) Inspect() string {
	if b.Value {
		return "true"
	}
	return "false"
}

// Null is Weave's explicit absence-of-value (e.g. a missing hash field or
// hash-pattern field, or an out-of-range array index).
type Null struct{}

func (n *Null) Type() Type      { return NULL_OBJ }
func (n *Null) Inspect() string { return "null" }

// Void is the value of a statement that produces nothing displayable, such
// as a top-level let binding; the REPL suppresses printing it.
type Void struct{}

func (v *Void) Type() Type      { return VOID_OBJ }
func (v *Void) Inspect() string { return "" }

// Array is an ordered, heterogeneous sequence of values.
type Array struct {
	Elements []Value
}

func (a *Array) Type() Type { return ARRAY_OBJ }
func (a *Array) Inspect() string {
	var parts []string
	for _, e := range a.Elements {
		parts = append(parts, e.Inspect())
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Hash is Weave's ordered record type: field names map to values, but
// insertion order is preserved in Keys for deterministic iteration and
// printing.
type Hash struct {
	Keys   []string
	Values map[string]Value
}

// NewHash builds an empty Hash ready for Set.
func NewHash() *Hash {
	return &Hash{Values: make(map[string]Value)}
}

// Set assigns value to name, appending name to Keys only the first time it
// is written so repeated assignment does not duplicate the key order.
func (h *Hash) Set(name string, value Value) {
	if _, exists := h.Values[name]; !exists {
		h.Keys = append(h.Keys, name)
	}
	h.Values[name] = value
}

// Get reads a field, returning (*Null, false) rather than a zero Value when
// the field is absent.
func (h *Hash) Get(name string) (Value, bool) {
	v, ok := h.Values[name]
	if !ok {
		return &Null{}, false
	}
	return v, true
}

func (h *Hash) Type() Type { return HASH_OBJ }
func (h *Hash) Inspect() string {
	var parts []string
	for _, k := range h.Keys {
		parts = append(parts, fmt.Sprintf("%s = %s", k, h.Values[k].Inspect()))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// ReturnValue wraps a value produced by an explicit `return`, letting the
// evaluator unwind nested blocks without threading a sentinel through every
// call site, the same technique the teacher's objects.ReturnValue uses.
type ReturnValue struct {
	Value Value
}

func (rv *ReturnValue) Type() Type      { return RETURN_OBJ }
func (rv *ReturnValue) Inspect() string { return rv.Value.Inspect() }

// Error is an internal evaluation failure (distinct from a parser
// diagnostic), surfaced to the REPL in red per the teacher's convention.
type Error struct {
	Message string
}

func (e *Error) Type() Type      { return ERROR_OBJ }
func (e *Error) Inspect() string { return "error: " + e.Message }

// IsTruthy implements Weave's truthiness rule: only the boolean value true
// is truthy. Every other value, including non-zero numbers and non-empty
// strings, is falsy. This is deliberately stricter than C-family languages
// and is shared by both the evaluator and the bytecode VM.
func IsTruthy(v Value) bool {
	b, ok := v.(*Boolean)
	return ok && b.Value
}

// Equal implements Weave's structural equality, used by both `==` and
// pattern matching to compare scrutinees against literal patterns.
func Equal(a, b Value) bool {
	if a.Type() != b.Type() {
		return false
	}
	switch av := a.(type) {
	case *Number:
		return av.Value == b.(*Number).Value
	case *String:
		return av.Value == b.(*String).Value
	case *Symbol:
		return av.Name == b.(*Symbol).Name
	case *Boolean:
		return av.Value == b.(*Boolean).Value
	case *Null:
		return true
	case *Void:
		return true
	case *Array:
		bv := b.(*Array)
		if len(av.Elements) != len(bv.Elements) {
			return false
		}
		for i := range av.Elements {
			if !Equal(av.Elements[i], bv.Elements[i]) {
				return false
			}
		}
		return true
	case *Hash:
		bv := b.(*Hash)
		if len(av.Keys) != len(bv.Keys) {
			return false
		}
		for _, k := range av.Keys {
			bvVal, ok := bv.Values[k]
			if !ok || !Equal(av.Values[k], bvVal) {
				return false
			}
		}
		return true
	default:
		return a == b
	}
}
