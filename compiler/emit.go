/*
File    : weave/compiler/emit.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package compiler

import (
	"github.com/akashmaji946/weave/code"
	"github.com/akashmaji946/weave/object"
)

// addConstant appends val to the constant pool and returns its index.
func (c *Compiler) addConstant(val object.Value) int {
	c.constants = append(c.constants, val)
	return len(c.constants) - 1
}

// emit encodes and appends one instruction, records it as the compiler's
// last instruction (shifting the previous one down), and returns the
// byte position the instruction starts at.
func (c *Compiler) emit(op code.Opcode, operands ...int) int {
	instruction := code.Make(op, operands...)
	position := len(c.instructions)
	c.instructions = append(c.instructions, instruction...)

	c.previousInstruction = c.lastInstruction
	c.lastInstruction = EmittedInstruction{Opcode: op, Position: position}

	return position
}

func (c *Compiler) lastInstructionIs(op code.Opcode) bool {
	if len(c.instructions) == 0 {
		return false
	}
	return c.lastInstruction.Opcode == op
}

// removeLastPop truncates the instruction buffer back to before the last
// emitted OpPop, the peephole step that lets an if-expression's branch
// leave its value on the stack instead of discarding it.
func (c *Compiler) removeLastPop() {
	c.instructions = c.instructions[:c.lastInstruction.Position]
	c.lastInstruction = c.previousInstruction
}

// changeOperand re-encodes the instruction at position with a new operand,
// used to patch a jump target once it becomes known. It assumes the new
// instruction is exactly the same width as the one it replaces, which
// holds for every opcode this compiler patches (all single-u16-operand
// jumps).
func (c *Compiler) changeOperand(position int, operand int) {
	op := code.Opcode(c.instructions[position])
	newInstruction := code.Make(op, operand)
	for i := 0; i < len(newInstruction); i++ {
		c.instructions[position+i] = newInstruction[i]
	}
}
