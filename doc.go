// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package jnode implements a JSON document tree and a strict single-pass
// parser that builds it.
//
// # Parsing
//
// Parse consumes a complete JSON text and returns the root of its tree, or
// an error. A document may be an object, an array, or a single bare value.
// In case of a grammar violation the partially built tree is discarded and
// an error of concrete type *jnode.SyntaxError is returned:
//
//	root, err := jnode.Parse(input)
//	if err != nil {
//	   log.Fatalf("Parse failed: %v", err) // e.g., "at 3:14: unexpected "}""
//	}
//
// ParseJWCC accepts the same grammar extended with comments and trailing
// commas.
//
// # Trees
//
// Each Node has a Type, an optional name (present on members of an object),
// a decoded scalar value, and links to its first child, next sibling and
// parent:
//
//	Type      | Child | Value
//	--------- | ----- | ------------------------------------
//	Object    | yes   | --
//	Array     | yes   | --
//	String    | --    | decoded text, without quotes
//	Integer   | --    | digits as written
//	Double    | --    | digits as written
//	Boolean   | --    | "true" or "false"
//	Null      | --    | "null"
//
// Members and elements keep the order they had in the input. Use Find, Item
// and Lookup to navigate, Equal to compare, and Format to pretty-print:
//
//	v := root.Lookup("/episodes/1/summary")
//	fmt.Println(v.Text())
//
// New parses a fragment and appends it to an existing object or array. It
// is the only operation that modifies a tree; all others only read it, so a
// tree that is no longer modified may be shared by concurrent readers.
//
// Walks over the tree (Equal, Walk, Format) are iterative, so arbitrarily
// deep documents do not exhaust the goroutine stack.
package jnode
