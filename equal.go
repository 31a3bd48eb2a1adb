// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jnode

import "strconv"

// Equal reports whether a and b are structurally equal. Two nodes are equal
// if they have the same type, the same shape of children, and equal values;
// below the top level their members must also agree by name. Numbers compare
// by their floating-point value, so the Integer 1 equals the Double 1.0.
// Two nil nodes are equal; a nil node is not equal to a non-nil one.
//
// The siblings of a and b themselves are not compared.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	depth := 0
	for equalNode(a, b, depth) {
		switch {
		case a.child != nil:
			depth++
			a, b = a.child, b.child
		case depth > 0 && a.next != nil:
			a, b = a.next, b.next
		default:
			// Climb until an ancestor has a following sibling, or we are back
			// at the starting level.
			for {
				if depth == 0 {
					return true
				}
				depth--
				a, b = a.parent, b.parent
				if depth > 0 && a.next != nil {
					a, b = a.next, b.next
					break
				}
			}
		}
	}
	return false
}

// equalNode compares a and b without regard to their descendants. At depth
// zero the names and siblings of the nodes are not compared.
func equalNode(a, b *Node, depth int) bool {
	if a.typ != b.typ {
		// Integer and Double may still compare equal by value.
		if !a.IsNumber() || !b.IsNumber() {
			return false
		}
	}
	if (a.child == nil) != (b.child == nil) {
		return false
	}
	if depth > 0 {
		if (a.next == nil) != (b.next == nil) {
			return false
		} else if a.named != b.named || a.name != b.name {
			return false
		}
	}
	if a.HasValue() != b.HasValue() {
		return false
	}
	if a.IsNumber() {
		x, _ := strconv.ParseFloat(a.value, 64)
		y, _ := strconv.ParseFloat(b.value, 64)
		return x == y
	}
	return a.value == b.value
}
