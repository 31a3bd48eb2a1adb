// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jnode

import (
	"iter"
	"strconv"
	"strings"
)

// Root returns the root of the tree containing n.
func (n *Node) Root() *Node {
	if n == nil {
		return nil
	}
	for n.parent != nil {
		n = n.parent
	}
	return n
}

// Parent returns the parent of n, or nil if n is a root.
func (n *Node) Parent() *Node {
	if n == nil {
		return nil
	}
	return n.parent
}

// Child returns the first member or element of n, or nil if there is none.
func (n *Node) Child() *Node {
	if n == nil {
		return nil
	}
	return n.child
}

// Next returns the sibling following n, or nil if n is the last.
func (n *Node) Next() *Node {
	if n == nil {
		return nil
	}
	return n.next
}

// Children returns an iterator over the members or elements of n in order.
func (n *Node) Children() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for c := n.Child(); c != nil; c = c.next {
			if !yield(c) {
				return
			}
		}
	}
}

// Find returns the first member of n with the given name, or nil.
func (n *Node) Find(name string) *Node { return findFrom(n.Child(), name) }

// FindNext returns the first sibling after n with the given name, or nil.
// Together with Find it visits every member sharing a name:
//
//	for v := obj.Find("x"); v != nil; v = v.FindNext("x") { ... }
func (n *Node) FindNext(name string) *Node { return findFrom(n.Next(), name) }

func findFrom(c *Node, name string) *Node {
	for ; c != nil; c = c.next {
		if c.named && c.name == name {
			return c
		}
	}
	return nil
}

// Match returns the first member of n whose name equals the first length
// bytes of name, or nil. A member whose name has name[:length] as a proper
// prefix does not match. If length exceeds len(name), Match reports nil.
func (n *Node) Match(name string, length int) *Node {
	if length < 0 || length > len(name) {
		return nil
	}
	return findFrom(n.Child(), name[:length])
}

// Item returns the child of n at 0-based offset i, or nil if there is none.
func (n *Node) Item(i int) *Node {
	if i < 0 {
		return nil
	}
	c := n.Child()
	for ; c != nil && i > 0; i-- {
		c = c.next
	}
	return c
}

// Items reports the number of children of n.
func (n *Node) Items() int {
	var count int
	for c := n.Child(); c != nil; c = c.next {
		count++
	}
	return count
}

// Lookup resolves a slash-separated path starting at n and returns the node
// it denotes, or nil if any step fails to resolve.
//
// A leading "/" starts from the root of the tree instead of n. Within the
// path, "." denotes the current node and ".." its parent. A segment of
// decimal digits applied to an array selects the element at that offset;
// any other segment selects the first member with that name.
func (n *Node) Lookup(path string) *Node {
	if rest, ok := strings.CutPrefix(path, "/"); ok {
		n, path = n.Root(), rest
	}
	for n != nil && path != "" {
		seg, rest, _ := strings.Cut(path, "/")
		switch {
		case n.typ == Array && isIndex(seg):
			i, err := strconv.Atoi(seg)
			if err != nil {
				return nil // out of range
			}
			n = n.Item(i)
		case seg == ".":
			// no change
		case seg == "..":
			n = n.parent
		default:
			n = n.Find(seg)
		}
		path = rest
	}
	return n
}

func isIndex(s string) bool {
	if s == "" {
		return false
	}
	for i := range len(s) {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}

// Path renders the location of n from its root as a path accepted by
// Lookup. The root itself is "/". A member that a name segment would not
// select (a later duplicate, or a name that is empty, contains "/" or is "."
// or "..") is rendered as its offset in the parent, which Lookup does not
// resolve for objects.
func (n *Node) Path() string {
	if n == nil {
		return ""
	} else if n.parent == nil {
		return "/"
	}
	var segs []string
	for c := n; c.parent != nil; c = c.parent {
		segs = append(segs, c.segment())
	}
	var sb strings.Builder
	for i := len(segs) - 1; i >= 0; i-- {
		sb.WriteByte('/')
		sb.WriteString(segs[i])
	}
	return sb.String()
}

// segment returns the path segment that selects n from its parent.
func (n *Node) segment() string {
	if n.named && n.parent.Find(n.name) == n && pathSafe(n.name) {
		return n.name
	}
	var i int
	for c := n.parent.child; c != n; c = c.next {
		i++
	}
	return strconv.Itoa(i)
}

func pathSafe(name string) bool {
	return name != "" && name != "." && name != ".." && !strings.Contains(name, "/")
}
