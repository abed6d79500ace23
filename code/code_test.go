/*
File    : weave/code/code_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package code

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMake_EncodesBigEndianOperand(t *testing.T) {
	ins := Make(OpConstant, 65534)
	expected := []byte{byte(OpConstant), 255, 254}
	assert.Equal(t, Instructions(expected), ins)
}

func TestMake_NoOperandOpcode(t *testing.T) {
	ins := Make(OpAdd)
	assert.Equal(t, Instructions{byte(OpAdd)}, ins)
}

func TestMakeReadOperands_RoundTrips(t *testing.T) {
	for op, def := range definitions {
		var operands []int
		wantWidth := 0
		for _, w := range def.OperandWidths {
			operands = append(operands, 12345)
			wantWidth += w
		}
		ins := Make(op, operands...)
		decoded, n := ReadOperands(def, ins[1:])
		assert.Equal(t, wantWidth, n)
		assert.Equal(t, operands, decoded)
	}
}

func TestChangeOperandViaMake_Reencodes(t *testing.T) {
	ins := Make(OpJump, 0xFFFF)
	patched := Make(OpJump, 10)
	copy(ins, patched)
	def, _ := Lookup(OpJump)
	operands, _ := ReadOperands(def, ins[1:])
	assert.Equal(t, []int{10}, operands)
}

func TestInstructionsString_Disassembles(t *testing.T) {
	ins := Instructions{}
	ins = append(ins, Make(OpAdd)...)
	ins = append(ins, Make(OpConstant, 2)...)
	ins = append(ins, Make(OpConstant, 65535)...)

	expected := "0000 OpAdd\n0001 OpConstant 2\n0004 OpConstant 65535\n"
	assert.Equal(t, expected, ins.String())
}
