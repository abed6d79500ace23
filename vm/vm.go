/*
File    : weave/vm/vm.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package vm executes compiled Weave bytecode on a stack machine. The
// fetch-decode-execute loop and stack-slice-plus-stack-pointer shape
// follows the vm/vm.go idiom in the retrieved golox-style reference VMs,
// sized to the spec's 20-opcode instruction set rather than those
// engines' larger ones.
package vm

import (
	"fmt"

	"github.com/akashmaji946/weave/code"
	"github.com/akashmaji946/weave/compiler"
	"github.com/akashmaji946/weave/object"
)

const (
	// StackSize bounds the operand stack; exceeding it is a runtime error
	// rather than a panic.
	StackSize = 2048
	// GlobalsSize bounds the number of distinct global bindings a single
	// VM instance can hold across its lifetime (and, for the REPL, across
	// lines, since globals are reused between compiles).
	GlobalsSize = 65536
)

var (
	trueValue  = &object.Boolean{Value: true}
	falseValue = &object.Boolean{Value: false}
	nullValue  = &object.Null{}
)

// VM holds one bytecode program's instructions and constants, an operand
// stack, and the global bindings slice.
type VM struct {
	constants    []object.Value
	instructions code.Instructions

	stack []object.Value
	sp    int // stack[sp-1] is the top of the stack; sp itself is the next free slot

	globals []object.Value
}

// New creates a VM over bytecode with a fresh, empty globals slice.
func New(bytecode *compiler.Bytecode) *VM {
	return NewWithGlobals(bytecode, make([]object.Value, GlobalsSize))
}

// NewWithGlobals creates a VM sharing an existing globals slice, the
// REPL carry-over constructor so each line's Run sees prior lines'
// bindings.
func NewWithGlobals(bytecode *compiler.Bytecode, globals []object.Value) *VM {
	return &VM{
		instructions: bytecode.Instructions,
		constants:    bytecode.Constants,
		stack:        make([]object.Value, StackSize),
		sp:           0,
		globals:      globals,
	}
}

// Globals exposes the VM's global bindings slice so the REPL can pass it
// into the next line's NewWithGlobals call.
func (vm *VM) Globals() []object.Value {
	return vm.globals
}

// StackTop returns the value currently on top of the stack, or nil if the
// stack is empty.
func (vm *VM) StackTop() object.Value {
	if vm.sp == 0 {
		return nil
	}
	return vm.stack[vm.sp-1]
}

// LastPoppedStackElem returns the value most recently popped — what a
// top-level expression statement evaluated to, since its OpPop runs right
// before the next instruction fetches. Used by the REPL and by tests.
func (vm *VM) LastPoppedStackElem() object.Value {
	return vm.stack[vm.sp]
}

func (vm *VM) push(v object.Value) error {
	if vm.sp >= StackSize {
		return fmt.Errorf("stack overflow")
	}
	vm.stack[vm.sp] = v
	vm.sp++
	return nil
}

func (vm *VM) pop() object.Value {
	v := vm.stack[vm.sp-1]
	vm.sp--
	return v
}

// Run executes the VM's instructions to completion, or until a runtime
// error occurs.
func (vm *VM) Run() error {
	for ip := 0; ip < len(vm.instructions); ip++ {
		op := code.Opcode(vm.instructions[ip])

		switch op {
		case code.OpConstant:
			constIndex := code.ReadUint16(vm.instructions[ip+1:])
			ip += 2
			if err := vm.push(vm.constants[constIndex]); err != nil {
				return err
			}

		case code.OpPop:
			vm.pop()

		case code.OpAdd, code.OpSub, code.OpMul, code.OpDiv, code.OpMod:
			if err := vm.executeBinaryOperation(op); err != nil {
				return err
			}

		case code.OpTrue:
			if err := vm.push(trueValue); err != nil {
				return err
			}

		case code.OpFalse:
			if err := vm.push(falseValue); err != nil {
				return err
			}

		case code.OpEqual, code.OpNotEqual, code.OpGreater, code.OpGreaterEqual:
			if err := vm.executeComparison(op); err != nil {
				return err
			}

		case code.OpMinus:
			if err := vm.executeMinus(); err != nil {
				return err
			}

		case code.OpBang:
			if err := vm.executeBang(); err != nil {
				return err
			}

		case code.OpJump:
			pos := int(code.ReadUint16(vm.instructions[ip+1:]))
			ip = pos - 1

		case code.OpJumpNotTruthy:
			pos := int(code.ReadUint16(vm.instructions[ip+1:]))
			ip += 2
			condition := vm.pop()
			if !object.IsTruthy(condition) {
				ip = pos - 1
			}

		case code.OpSetGlobal:
			globalIndex := code.ReadUint16(vm.instructions[ip+1:])
			ip += 2
			vm.globals[globalIndex] = vm.pop()

		case code.OpGetGlobal:
			globalIndex := code.ReadUint16(vm.instructions[ip+1:])
			ip += 2
			val := vm.globals[globalIndex]
			if val == nil {
				val = nullValue
			}
			if err := vm.push(val); err != nil {
				return err
			}

		case code.OpArray:
			numElements := int(code.ReadUint16(vm.instructions[ip+1:]))
			ip += 2
			array := vm.buildArray(vm.sp-numElements, vm.sp)
			vm.sp -= numElements
			if err := vm.push(array); err != nil {
				return err
			}

		default:
			return fmt.Errorf("unknown opcode %d", op)
		}
	}

	return nil
}

func (vm *VM) buildArray(startIndex, endIndex int) object.Value {
	elements := make([]object.Value, endIndex-startIndex)
	copy(elements, vm.stack[startIndex:endIndex])
	return &object.Array{Elements: elements}
}
