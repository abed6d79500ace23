/*
File    : weave/code/code.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package code defines Weave's bytecode: a fixed opcode set, the
// big-endian instruction encoding the compiler emits and the VM decodes,
// and a disassembler for debugging. The Opcode-plus-name-table shape
// follows the opcode.go idiom found in the retrieved funxy/nenuphar
// reference VMs, restricted to the 20-opcode table the spec requires
// rather than those engines' much larger instruction sets.
package code

import "encoding/binary"

// Opcode is a single byte instruction tag.
type Opcode byte

const (
	OpConstant Opcode = iota
	OpAdd
	OpPop
	OpSub
	OpMul
	OpDiv
	OpMod
	OpTrue
	OpFalse
	OpEqual
	OpNotEqual
	OpGreater
	OpGreaterEqual
	OpMinus
	OpBang
	OpJumpNotTruthy
	OpJump
	OpGetGlobal
	OpSetGlobal
	OpArray
)

// Instructions is a flat, already-encoded byte buffer.
type Instructions []byte

// Definition describes one opcode: its mnemonic and the byte-width of
// each of its operands (only widths 0 and 2 occur in this instruction
// set).
type Definition struct {
	Name          string
	OperandWidths []int
}

var definitions = map[Opcode]*Definition{
	OpConstant:      {"OpConstant", []int{2}},
	OpAdd:           {"OpAdd", []int{}},
	OpPop:           {"OpPop", []int{}},
	OpSub:           {"OpSub", []int{}},
	OpMul:           {"OpMul", []int{}},
	OpDiv:           {"OpDiv", []int{}},
	OpMod:           {"OpMod", []int{}},
	OpTrue:          {"OpTrue", []int{}},
	OpFalse:         {"OpFalse", []int{}},
	OpEqual:         {"OpEqual", []int{}},
	OpNotEqual:      {"OpNotEqual", []int{}},
	OpGreater:       {"OpGreater", []int{}},
	OpGreaterEqual:  {"OpGreaterEqual", []int{}},
	OpMinus:         {"OpMinus", []int{}},
	OpBang:          {"OpBang", []int{}},
	OpJumpNotTruthy: {"OpJumpNotTruthy", []int{2}},
	OpJump:          {"OpJump", []int{2}},
	OpGetGlobal:     {"OpGetGlobal", []int{2}},
	OpSetGlobal:     {"OpSetGlobal", []int{2}},
	OpArray:         {"OpArray", []int{2}},
}

// Lookup returns the Definition for op, or an error-shaped nil + false if
// op is not one of the defined opcodes.
func Lookup(op Opcode) (*Definition, bool) {
	def, ok := definitions[op]
	return def, ok
}

// Make encodes a single instruction: the opcode byte followed by its
// operands, each written big-endian at its declared width. Operands
// beyond what the opcode declares are ignored; missing ones encode as 0.
func Make(op Opcode, operands ...int) Instructions {
	def, ok := definitions[op]
	if !ok {
		return Instructions{}
	}

	length := 1
	for _, w := range def.OperandWidths {
		length += w
	}

	instruction := make(Instructions, length)
	instruction[0] = byte(op)

	offset := 1
	for i, operand := range operands {
		if i >= len(def.OperandWidths) {
			break
		}
		width := def.OperandWidths[i]
		switch width {
		case 2:
			binary.BigEndian.PutUint16(instruction[offset:], uint16(operand))
		}
		offset += width
	}

	return instruction
}

// ReadOperands decodes the operands of the instruction at the start of
// ins, returning the decoded values and the total width consumed (not
// including the opcode byte itself).
func ReadOperands(def *Definition, ins Instructions) ([]int, int) {
	operands := make([]int, len(def.OperandWidths))
	offset := 0

	for i, width := range def.OperandWidths {
		switch width {
		case 2:
			operands[i] = int(ReadUint16(ins[offset:]))
		}
		offset += width
	}

	return operands, offset
}

// ReadUint16 decodes a single big-endian u16 operand, the one non-zero
// width this instruction set uses.
func ReadUint16(ins Instructions) uint16 {
	return binary.BigEndian.Uint16(ins)
}
