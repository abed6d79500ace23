/*
File    : weave/semantics/context.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package semantics implements Weave's optional pre-pass: a scope-chain
// walk over the AST that reports identifiers used before they are bound.
// It is grounded on original_source/lib/src/semantics/analyze.rs's
// Context/analyze_stmt/analyze_expr trio, re-expressed with a Go
// parent-pointer scope chain instead of the original's borrowed-reference
// Context.
package semantics

// Context is one lexical scope: names declared directly in it, plus a
// link to the enclosing scope for name lookup.
type Context struct {
	names  map[string]bool
	parent *Context
}

// NewContext creates a root scope with no parent.
func NewContext() *Context {
	return &Context{names: make(map[string]bool)}
}

// NewChildBlock creates a scope nested inside parent, used for if-branches
// and function bodies.
func NewChildBlock(parent *Context) *Context {
	return &Context{names: make(map[string]bool), parent: parent}
}

// Add declares name in this scope.
func (c *Context) Add(name string) {
	c.names[name] = true
}

// Has reports whether name is declared in this scope or any enclosing one.
func (c *Context) Has(name string) bool {
	for ctx := c; ctx != nil; ctx = ctx.parent {
		if ctx.names[name] {
			return true
		}
	}
	return false
}
