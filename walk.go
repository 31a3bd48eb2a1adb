// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jnode

import "errors"

// ErrSkip may be returned by the callback of Walk to skip the descendants of
// the current node. Walk itself does not report it.
var ErrSkip = errors.New("skip descendants")

// Walk visits n and each of its descendants in document order, calling f for
// each. If f returns ErrSkip, the descendants of that node are not visited.
// If f reports any other error, the walk stops and Walk returns that error.
// The siblings of n are not visited.
//
// The walk does not use recursion. The callback must not modify the tree.
func Walk(n *Node, f func(*Node) error) error {
	if n == nil {
		return nil
	}
	root := n
	for {
		err := f(n)
		if err != nil && err != ErrSkip {
			return err
		}
		switch {
		case n.child != nil && err == nil:
			n = n.child
		case n != root && n.next != nil:
			n = n.next
		default:
			for {
				if n == root {
					return nil
				}
				n = n.parent
				if n != root && n.next != nil {
					n = n.next
					break
				}
			}
		}
	}
}
