/*
File    : weave/semantics/analyze_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package semantics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/weave/parser"
)

func analyzeSource(t *testing.T, src string) Result {
	t.Helper()
	program, errs := parser.Parse(src)
	require.Nil(t, errs)
	return Analyze(program)
}

func TestAnalyze_UndeclaredIdentifierIsReported(t *testing.T) {
	res := analyzeSource(t, "x + 1")
	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0], "used before declaration")
}

func TestAnalyze_LetBindingResolvesLaterUse(t *testing.T) {
	res := analyzeSource(t, "let x = 1; x + 1")
	assert.Empty(t, res.Errors)
}

func TestAnalyze_RecursiveFunctionSeesItsOwnName(t *testing.T) {
	res := analyzeSource(t, "let fact = fn n -> if n <= 1 { 1 } else { n * fact(n - 1) }")
	assert.Empty(t, res.Errors)
}

func TestAnalyze_FunctionParametersAreScoped(t *testing.T) {
	res := analyzeSource(t, "fn x -> x + 1")
	assert.Empty(t, res.Errors)
}

func TestAnalyze_IfBranchesGetOwnScope(t *testing.T) {
	res := analyzeSource(t, "if true { let y = 1; y } else { y }")
	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0], "y")
}

func TestAnalyze_ArrayDestructuringBindsElements(t *testing.T) {
	res := analyzeSource(t, "let [a, b] = [1, 2]; a + b")
	assert.Empty(t, res.Errors)
}

func TestAnalyze_ImportWithNonStringSourceWarns(t *testing.T) {
	res := analyzeSource(t, "import thing from 1 + 1")
	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0], "string literal")
}

func TestAnalyze_ImportWithIdentifierNameAndStringSourceIsClean(t *testing.T) {
	res := analyzeSource(t, "import thing from 'module.weave'")
	assert.Empty(t, res.Warnings)
	assert.Empty(t, res.Errors)
}
