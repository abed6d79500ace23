/*
File    : weave/main/main_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/weave/compiler"
	"github.com/akashmaji946/weave/evaluator"
	"github.com/akashmaji946/weave/object"
	"github.com/akashmaji946/weave/parser"
	"github.com/akashmaji946/weave/vm"
)

func TestMain_FileModeEvaluatorRunsRecursiveFunction(t *testing.T) {
	src := `let fact = fn n -> if n <= 1 { 1 } else { n * fact(n - 1) }; fact(5)`

	program, errs := parser.Parse(src)
	require.Nil(t, errs)

	ev := evaluator.New()
	var buf bytes.Buffer
	ev.SetWriter(&buf)
	evalResult := ev.Run(program)
	assert.Equal(t, float64(120), evalResult.(*object.Number).Value)
}

func TestMain_VMHandlesArithmeticFile(t *testing.T) {
	program, errs := parser.Parse("1 + 2 * 3")
	require.Nil(t, errs)

	comp := compiler.New()
	require.NoError(t, comp.Compile(program))

	machine := vm.New(comp.Bytecode())
	require.NoError(t, machine.Run())

	assert.Equal(t, float64(7), machine.LastPoppedStackElem().(*object.Number).Value)
}
