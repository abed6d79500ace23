/*
File    : weave/code/disassemble.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package code

import (
	"bytes"
	"fmt"
)

// String renders ins as a human-readable listing, one instruction per
// line prefixed with its byte offset, useful when debugging the compiler
// or the VM.
func (ins Instructions) String() string {
	var out bytes.Buffer

	i := 0
	for i < len(ins) {
		def, ok := Lookup(Opcode(ins[i]))
		if !ok {
			fmt.Fprintf(&out, "%04d ERROR: unknown opcode %d\n", i, ins[i])
			i++
			continue
		}

		operands, read := ReadOperands(def, ins[i+1:])
		fmt.Fprintf(&out, "%04d %s\n", i, formatInstruction(def, operands))

		i += 1 + read
	}

	return out.String()
}

func formatInstruction(def *Definition, operands []int) string {
	switch len(operands) {
	case 0:
		return def.Name
	case 1:
		return fmt.Sprintf("%s %d", def.Name, operands[0])
	default:
		return fmt.Sprintf("%s %v", def.Name, operands)
	}
}
