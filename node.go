// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jnode

import (
	"math"
	"strconv"
)

// Type is the type of a node in a JSON document tree.
type Type byte

// Constants defining the valid Type values.
const (
	Undefined Type = iota // not yet determined (only during construction)
	Object                // object: { ... }
	Array                 // array: [ ... ]
	String                // quoted string
	Integer               // number: integer with no fraction or exponent
	Double                // number with fraction and/or exponent
	Boolean               // constant: true or false
	Null                  // constant: null
)

var typeStr = [...]string{
	Undefined: "Undefined",
	Object:    "Object",
	Array:     "Array",
	String:    "String",
	Integer:   "Integer",
	Double:    "Double",
	Boolean:   "Boolean",
	Null:      "Null",
}

func (t Type) String() string {
	v := int(t)
	if v >= len(typeStr) {
		return typeStr[Undefined]
	}
	return typeStr[v]
}

// IsScalar reports whether t is one of the value-carrying types.
func (t Type) IsScalar() bool { return t >= String && t <= Null }

// A Node is a single object, array or scalar value in a document tree.
//
// A node owns its first child and its next sibling; the parent link is used
// only to navigate upward. The methods of a nil *Node are valid and report
// zero values, so lookups may be chained without checking each step.
type Node struct {
	typ   Type
	named bool
	name  string
	value string

	child  *Node
	next   *Node
	parent *Node
}

// Type reports the type of n, or Undefined if n == nil.
func (n *Node) Type() Type {
	if n == nil {
		return Undefined
	}
	return n.typ
}

// Name reports the member name of n, or "" if n has none.
func (n *Node) Name() string {
	if n == nil {
		return ""
	}
	return n.name
}

// HasName reports whether n is a named member of an object.
func (n *Node) HasName() bool { return n != nil && n.named }

// Text reports the decoded value of a scalar node. For a String this is the
// unquoted text; for other scalars it is the literal as written. It returns
// "" for an object, an array, or a nil node.
func (n *Node) Text() string {
	if n == nil {
		return ""
	}
	return n.value
}

// HasValue reports whether n carries a scalar value.
func (n *Node) HasValue() bool { return n != nil && n.typ.IsScalar() }

// Int reports the value of n as an integer. A Double is truncated toward
// zero. It returns 0 if n has no numeric value.
func (n *Node) Int() int64 {
	if n == nil {
		return 0
	}
	if v, err := strconv.ParseInt(n.value, 10, 64); err == nil {
		return v
	}
	f, _ := strconv.ParseFloat(n.value, 64)
	if math.IsNaN(f) {
		return 0
	}
	return int64(f)
}

// Uint reports the value of n as an unsigned integer. It returns 0 if n has
// no numeric value or its value is negative.
func (n *Node) Uint() uint64 {
	if n == nil {
		return 0
	}
	if v, err := strconv.ParseUint(n.value, 10, 64); err == nil {
		return v
	}
	if f := n.Float(); f > 0 {
		return uint64(f)
	}
	return 0
}

// Float reports the value of n as a floating-point number. Values outside
// the range of float64 report ±Inf. It returns 0 if n has no numeric value.
func (n *Node) Float() float64 {
	if n == nil {
		return 0
	}
	// ParseFloat reports ±Inf for out-of-range input and 0 for junk, which
	// are the values we want.
	v, _ := strconv.ParseFloat(n.value, 64)
	return v
}

// Number is a synonym for Float.
func (n *Node) Number() float64 { return n.Float() }

// Bool reports the truth value of n. A Boolean reports its literal; any
// other scalar is true if its numeric value is non-zero.
func (n *Node) Bool() bool {
	if n == nil {
		return false
	}
	if n.typ == Boolean {
		return n.value == "true"
	}
	return n.typ.IsScalar() && n.Float() != 0
}

// IsObject reports whether n is an object.
func (n *Node) IsObject() bool { return n.Type() == Object }

// IsArray reports whether n is an array.
func (n *Node) IsArray() bool { return n.Type() == Array }

// IsString reports whether n is a string.
func (n *Node) IsString() bool { return n.Type() == String }

// IsInteger reports whether n is an integer.
func (n *Node) IsInteger() bool { return n.Type() == Integer }

// IsDouble reports whether n is a number with a fraction or exponent.
func (n *Node) IsDouble() bool { return n.Type() == Double }

// IsNumber reports whether n is an integer or a double.
func (n *Node) IsNumber() bool { t := n.Type(); return t == Integer || t == Double }

// IsReal reports whether n is a non-negative integer.
func (n *Node) IsReal() bool { return n.IsInteger() && n.Float() >= 0 }

// IsBoolean reports whether n is true or false.
func (n *Node) IsBoolean() bool { return n.Type() == Boolean }

// IsTrue reports whether n is the constant true.
func (n *Node) IsTrue() bool { return n.IsBoolean() && n.value == "true" }

// IsFalse reports whether n is the constant false.
func (n *Node) IsFalse() bool { return n.IsBoolean() && n.value == "false" }

// IsNull reports whether n is the constant null.
func (n *Node) IsNull() bool { return n.Type() == Null }

// IsScalar reports whether n is a string, number, Boolean or null.
func (n *Node) IsScalar() bool { return n.Type().IsScalar() }
