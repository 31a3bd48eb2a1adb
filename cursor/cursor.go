// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package cursor implements chained traversal over a JSON document tree,
// recording the first step that fails to resolve.
package cursor

import (
	"fmt"

	"github.com/creachadair/jnode"
)

// Path traverses a sequential path into the structure of n where path
// elements are as documented for the Cursor.Down method. This is a
// convenience wrapper for creating a cursor, applying path, and retrieving
// its node.
func Path(n *jnode.Node, path ...any) (*jnode.Node, error) {
	c := New(n).Down(path...)
	if err := c.Err(); err != nil {
		return nil, err
	}
	return c.Value(), nil
}

// A Cursor is a pointer that navigates into the structure of a document tree.
type Cursor struct {
	org *jnode.Node
	stk []*jnode.Node
	err error
}

// New constructs a new Cursor to traverse the structure of origin.
func New(origin *jnode.Node) *Cursor { return &Cursor{org: origin} }

// Origin returns the origin node of c.
func (c *Cursor) Origin() *jnode.Node { return c.org }

// AtOrigin reports whether c is at its origin.
func (c *Cursor) AtOrigin() bool { return len(c.stk) == 0 }

// Value reports the current node under the cursor.
func (c *Cursor) Value() *jnode.Node {
	if c.AtOrigin() {
		return c.org
	}
	return c.stk[len(c.stk)-1]
}

// Path reports the complete sequence of nodes from the origin to the current
// location in c.
func (c *Cursor) Path() []*jnode.Node {
	return append([]*jnode.Node{c.org}, c.stk...)
}

// Err reports the error from the most recent traversal operation, if any.
func (c *Cursor) Err() error { return c.err }

// Up moves the cursor one position upward in the structure, if possible.
// It returns c to permit chaining.
func (c *Cursor) Up() *Cursor {
	if n := len(c.stk); n > 0 {
		c.stk = c.stk[:n-1]
	}
	return c
}

// Reset resets the cursor to its origin and clears its error.
func (c *Cursor) Reset() { c.stk = c.stk[:0]; c.err = nil }

// Down traverses a sequential path into the structure of c starting from the
// current node, where path elements are either strings (denoting member
// names), integers (denoting offsets), functions (see below), or nil. If the
// path cannot be completely consumed, traversal stops at the last node
// reached and an error is recorded. Use Err to recover the error.
//
// If a path element is a string, the current node must be an object, and
// the string selects the first member with that name.
//
// If a path element is an integer, the current node must be an array or
// object, and the integer selects the child at that offset. Negative offsets
// count backward from the end (-1 is last, -2 second last). An error is
// reported if the offset is out of bounds.
//
// If a path element is a function, the function is executed and its result
// becomes the next node in the sequence. The function must have a signature
//
//	func(*jnode.Node) (*jnode.Node, error)
//
// If the function reports an error, traversal stops and the error is
// recorded. A nil path element is ignored.
func (c *Cursor) Down(path ...any) *Cursor {
	c.err = nil // reset error
	cur := c.Value()
	for _, elt := range path {
		switch t := elt.(type) {
		case string:
			if !cur.IsObject() {
				return c.setErrorf("cannot traverse %v with %q", cur.Type(), t)
			}
			m := cur.Find(t)
			if m == nil {
				return c.setErrorf("key %q not found", t)
			}
			cur = c.push(m)

		case int:
			if !cur.IsObject() && !cur.IsArray() {
				return c.setErrorf("cannot traverse %v with %v", cur.Type(), t)
			}
			n := cur.Items()
			i, ok := fixArrayBound(n, t)
			if !ok {
				return c.setErrorf("%v index %d out of bounds (n=%d)", cur.Type(), t, n)
			}
			cur = c.push(cur.Item(i))

		case func(*jnode.Node) (*jnode.Node, error):
			next, err := t(cur)
			if err != nil {
				c.err = err
				return c
			}
			cur = c.push(next)

		case nil:
			// Do nothing.

		default:
			return c.setErrorf("invalid path element %T", elt)
		}
	}
	return c
}

func (c *Cursor) push(n *jnode.Node) *jnode.Node { c.stk = append(c.stk, n); return n }

func (c *Cursor) setErrorf(msg string, args ...any) *Cursor {
	c.err = fmt.Errorf(msg, args...)
	return c
}

func fixArrayBound(n, i int) (int, bool) {
	if i < 0 {
		i += n
	}
	return i, i >= 0 && i < n
}
