/*
File    : weave/vm/operators.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package vm

import (
	"fmt"

	"github.com/akashmaji946/weave/code"
	"github.com/akashmaji946/weave/object"
)

func (vm *VM) executeBinaryOperation(op code.Opcode) error {
	right := vm.pop()
	left := vm.pop()

	leftNum, leftIsNum := left.(*object.Number)
	rightNum, rightIsNum := right.(*object.Number)

	if leftIsNum && rightIsNum {
		return vm.executeBinaryNumberOperation(op, leftNum, rightNum)
	}

	leftStr, leftIsStr := left.(*object.String)
	rightStr, rightIsStr := right.(*object.String)
	if op == code.OpAdd && leftIsStr && rightIsStr {
		return vm.push(&object.String{Value: leftStr.Value + rightStr.Value})
	}

	return fmt.Errorf("unsupported types for binary operation: %s %s", left.Type(), right.Type())
}

func (vm *VM) executeBinaryNumberOperation(op code.Opcode, left, right *object.Number) error {
	var result float64

	switch op {
	case code.OpAdd:
		result = left.Value + right.Value
	case code.OpSub:
		result = left.Value - right.Value
	case code.OpMul:
		result = left.Value * right.Value
	case code.OpDiv:
		result = left.Value / right.Value
	case code.OpMod:
		result = numberMod(left.Value, right.Value)
	default:
		return fmt.Errorf("unknown number operator: %d", op)
	}

	return vm.push(&object.Number{Value: result})
}

func numberMod(a, b float64) float64 {
	for a >= b {
		a -= b
	}
	return a
}

func (vm *VM) executeComparison(op code.Opcode) error {
	right := vm.pop()
	left := vm.pop()

	if leftNum, ok := left.(*object.Number); ok {
		rightNum, ok := right.(*object.Number)
		if !ok {
			return fmt.Errorf("type mismatch: %s %s", left.Type(), right.Type())
		}
		return vm.executeNumberComparison(op, leftNum, rightNum)
	}

	switch op {
	case code.OpEqual:
		return vm.push(nativeBoolToBooleanObject(object.Equal(left, right)))
	case code.OpNotEqual:
		return vm.push(nativeBoolToBooleanObject(!object.Equal(left, right)))
	default:
		return fmt.Errorf("unknown operator: %d (%s %s)", op, left.Type(), right.Type())
	}
}

func (vm *VM) executeNumberComparison(op code.Opcode, left, right *object.Number) error {
	switch op {
	case code.OpEqual:
		return vm.push(nativeBoolToBooleanObject(left.Value == right.Value))
	case code.OpNotEqual:
		return vm.push(nativeBoolToBooleanObject(left.Value != right.Value))
	case code.OpGreater:
		return vm.push(nativeBoolToBooleanObject(left.Value > right.Value))
	case code.OpGreaterEqual:
		return vm.push(nativeBoolToBooleanObject(left.Value >= right.Value))
	default:
		return fmt.Errorf("unknown operator: %d", op)
	}
}

func (vm *VM) executeMinus() error {
	operand := vm.pop()
	num, ok := operand.(*object.Number)
	if !ok {
		return fmt.Errorf("unsupported type for negation: %s", operand.Type())
	}
	return vm.push(&object.Number{Value: -num.Value})
}

func (vm *VM) executeBang() error {
	operand := vm.pop()
	return vm.push(nativeBoolToBooleanObject(!object.IsTruthy(operand)))
}

func nativeBoolToBooleanObject(b bool) *object.Boolean {
	if b {
		return trueValue
	}
	return falseValue
}
