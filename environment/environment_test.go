/*
File    : weave/environment/environment_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package environment

import (
	"testing"

	"github.com/akashmaji946/weave/object"
	"github.com/stretchr/testify/assert"
)

func TestGet_FindsLocalBinding(t *testing.T) {
	env := New()
	env.Set("x", &object.Number{Value: 5})

	val, ok := env.Get("x")
	assert.True(t, ok)
	assert.Equal(t, float64(5), val.(*object.Number).Value)
}

func TestGet_FallsThroughToParent(t *testing.T) {
	outer := New()
	outer.Set("x", &object.Number{Value: 1})
	inner := NewEnclosed(outer)

	val, ok := inner.Get("x")
	assert.True(t, ok)
	assert.Equal(t, float64(1), val.(*object.Number).Value)
}

func TestSet_ShadowsWithoutMutatingParent(t *testing.T) {
	outer := New()
	outer.Set("x", &object.Number{Value: 1})
	inner := NewEnclosed(outer)
	inner.Set("x", &object.Number{Value: 2})

	innerVal, _ := inner.Get("x")
	outerVal, _ := outer.Get("x")
	assert.Equal(t, float64(2), innerVal.(*object.Number).Value)
	assert.Equal(t, float64(1), outerVal.(*object.Number).Value)
}

func TestGet_MissingNameReturnsFalse(t *testing.T) {
	env := New()
	_, ok := env.Get("missing")
	assert.False(t, ok)
}
