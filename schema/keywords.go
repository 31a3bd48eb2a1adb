package schema

import (
	"math"

	"github.com/creachadair/jnode"
	"github.com/creachadair/jnode/format"
	"github.com/creachadair/mds/mapset"
)

// A keyword identifies one of the supported schema keywords.
type keyword int

const (
	kwSchema keyword = iota
	kwID
	kwTitle
	kwDescription
	kwType
	kwConst
	kwEnum
	kwRequired
	kwDependentRequired
	kwProperties
	kwAdditionalProperties
	kwMinProperties
	kwMaxProperties
	kwItems
	kwAdditionalItems
	kwMinItems
	kwMaxItems
	kwUniqueItems
	kwMinLength
	kwMaxLength
	kwFormat
	kwPattern
	kwMinimum
	kwMaximum
	kwExclusiveMinimum
	kwExclusiveMaximum
	kwMultipleOf
	kwReadOnly
	kwWriteOnly
	kwDeprecated
	kwExamples
	kwDefault
)

var keywords = map[string]keyword{
	"$schema":              kwSchema,
	"$id":                  kwID,
	"title":                kwTitle,
	"description":          kwDescription,
	"type":                 kwType,
	"const":                kwConst,
	"enum":                 kwEnum,
	"required":             kwRequired,
	"dependentRequired":    kwDependentRequired,
	"properties":           kwProperties,
	"additionalProperties": kwAdditionalProperties,
	"minProperties":        kwMinProperties,
	"maxProperties":        kwMaxProperties,
	"items":                kwItems,
	"additionalItems":      kwAdditionalItems,
	"minItems":             kwMinItems,
	"maxItems":             kwMaxItems,
	"uniqueItems":          kwUniqueItems,
	"minLength":            kwMinLength,
	"maxLength":            kwMaxLength,
	"format":               kwFormat,
	"pattern":              kwPattern,
	"minimum":              kwMinimum,
	"maximum":              kwMaximum,
	"exclusiveMinimum":     kwExclusiveMinimum,
	"exclusiveMaximum":     kwExclusiveMaximum,
	"multipleOf":           kwMultipleOf,
	"readOnly":             kwReadOnly,
	"writeOnly":            kwWriteOnly,
	"deprecated":           kwDeprecated,
	"examples":             kwExamples,
	"default":              kwDefault,
}

// A tester checks one keyword of a schema. The rule is the keyword member
// itself; data is the node it applies to, or nil if the data is absent. A
// tester checks the shape of the rule even when there is no data.
type tester func(v Validator, rule, data *jnode.Node) Signal

var testers = [...]tester{
	kwSchema:               isString,
	kwID:                   isString,
	kwTitle:                isString,
	kwDescription:          isString,
	kwType:                 testType,
	kwConst:                testConst,
	kwEnum:                 testEnum,
	kwRequired:             testRequired,
	kwDependentRequired:    testDependentRequired,
	kwProperties:           testProperties,
	kwAdditionalProperties: testAdditionalProperties,
	kwMinProperties:        bound(jnode.Object, atLeast),
	kwMaxProperties:        bound(jnode.Object, atMost),
	kwItems:                testItems,
	kwAdditionalItems:      testAdditionalItems,
	kwMinItems:             bound(jnode.Array, atLeast),
	kwMaxItems:             bound(jnode.Array, atMost),
	kwUniqueItems:          testUniqueItems,
	kwMinLength:            bound(jnode.String, atLeast),
	kwMaxLength:            bound(jnode.String, atMost),
	kwFormat:               testFormat,
	kwPattern:              testPattern,
	kwMinimum:              limit("exclusiveMinimum", func(x, y float64) bool { return x > y }, func(x, y float64) bool { return x >= y }),
	kwMaximum:              limit("exclusiveMaximum", func(x, y float64) bool { return x < y }, func(x, y float64) bool { return x <= y }),
	kwExclusiveMinimum:     isBoolean,
	kwExclusiveMaximum:     isBoolean,
	kwMultipleOf:           testMultipleOf,
	kwReadOnly:             isBoolean,
	kwWriteOnly:            isBoolean,
	kwDeprecated:           isBoolean,
	kwExamples:             isArray,
	kwDefault:              func(Validator, *jnode.Node, *jnode.Node) Signal { return Pass },
}

func signal(ok bool) Signal {
	if ok {
		return Pass
	}
	return Fail
}

func isString(_ Validator, rule, _ *jnode.Node) Signal  { return signal(rule.IsString()) }
func isBoolean(_ Validator, rule, _ *jnode.Node) Signal { return signal(rule.IsBoolean()) }
func isArray(_ Validator, rule, _ *jnode.Node) Signal   { return signal(rule.IsArray()) }

// uniqueStrings reports whether every child of n is a string, and no two of
// them are equal.
func uniqueStrings(n *jnode.Node) bool {
	seen := mapset.New[string]()
	for c := range n.Children() {
		if !c.IsString() || seen.Has(c.Text()) {
			return false
		}
		seen.Add(c.Text())
	}
	return true
}

// uniqueObjects reports whether every child of n is an object, and no two
// of them have the same name.
func uniqueObjects(n *jnode.Node) bool {
	seen := mapset.New[string]()
	for c := range n.Children() {
		if !c.IsObject() || seen.Has(c.Name()) {
			return false
		}
		seen.Add(c.Name())
	}
	return true
}

var typeNames = map[string]jnode.Type{
	"object":  jnode.Object,
	"array":   jnode.Array,
	"string":  jnode.String,
	"integer": jnode.Integer,
	"number":  jnode.Double,
	"boolean": jnode.Boolean,
	"null":    jnode.Null,
}

// typeMask returns the set of types named by the rule, as a bit mask
// indexed by jnode.Type. It returns 0 if the rule is malformed.
func typeMask(rule *jnode.Node) uint {
	var mask uint
	switch {
	case rule.IsString():
		if t, ok := typeNames[rule.Text()]; ok {
			mask = 1 << t
		}
	case rule.IsArray() && uniqueStrings(rule):
		for c := range rule.Children() {
			t, ok := typeNames[c.Text()]
			if !ok {
				return 0
			}
			mask |= 1 << t
		}
	}
	return mask
}

func testType(_ Validator, rule, data *jnode.Node) Signal {
	mask := typeMask(rule)
	if mask == 0 {
		return Fail
	} else if data == nil {
		return Pass
	}
	t := data.Type()
	// An integer also satisfies "number".
	return signal(mask&(1<<t) != 0 || (mask&(1<<jnode.Double) != 0 && t == jnode.Integer))
}

func testConst(_ Validator, rule, data *jnode.Node) Signal {
	return signal(data == nil || jnode.Equal(rule, data))
}

func testEnum(_ Validator, rule, data *jnode.Node) Signal {
	if !rule.IsArray() {
		return Fail
	} else if data == nil {
		return Pass
	}
	for c := range rule.Children() {
		if jnode.Equal(c, data) {
			return Pass
		}
	}
	return Fail
}

func testRequired(_ Validator, rule, data *jnode.Node) Signal {
	switch {
	case rule.IsBoolean():
		return signal(data != nil || !rule.IsTrue())
	case rule.IsArray() && uniqueStrings(rule):
		if data.IsObject() {
			return signal(hasAll(data, rule))
		}
		return Pass
	default:
		return Fail
	}
}

// hasAll reports whether obj has a member for each string in names.
func hasAll(obj, names *jnode.Node) bool {
	for c := range names.Children() {
		if obj.Find(c.Text()) == nil {
			return false
		}
	}
	return true
}

func testDependentRequired(_ Validator, rule, data *jnode.Node) Signal {
	if !rule.IsObject() {
		return Fail
	}
	for dep := range rule.Children() {
		if !dep.IsArray() || !uniqueStrings(dep) {
			return Fail
		}
		if data.IsObject() && data.Find(dep.Name()) != nil && !hasAll(data, dep) {
			return Fail
		}
	}
	return Pass
}

func testProperties(_ Validator, rule, data *jnode.Node) Signal {
	if !rule.IsObject() || !uniqueObjects(rule) {
		return Fail
	} else if data.IsObject() {
		return DescendObject
	}
	return Pass
}

func testAdditionalProperties(_ Validator, rule, data *jnode.Node) Signal {
	if !rule.IsBoolean() {
		return Fail
	}
	if rule.IsFalse() && data.IsObject() {
		if props := rule.Parent().Find("properties"); props != nil {
			for m := range data.Children() {
				if props.Find(m.Name()) == nil {
					return Fail
				}
			}
		}
	}
	return Pass
}

func testItems(_ Validator, rule, data *jnode.Node) Signal {
	tuple := rule.IsArray() && allObjects(rule)
	if !rule.IsObject() && !tuple {
		return Fail
	} else if !data.IsArray() {
		return Pass
	} else if tuple {
		return DescendTuple
	}
	return DescendArray
}

func allObjects(n *jnode.Node) bool {
	for c := range n.Children() {
		if !c.IsObject() {
			return false
		}
	}
	return true
}

func testAdditionalItems(_ Validator, rule, data *jnode.Node) Signal {
	if !rule.IsBoolean() {
		return Fail
	}
	if rule.IsFalse() && data.IsArray() {
		// Only a tuple of item schemas limits the length.
		if items := rule.Parent().Find("items"); items.IsArray() {
			if n := items.Items(); n > 0 {
				return signal(data.Items() <= n)
			}
		}
	}
	return Pass
}

func testUniqueItems(_ Validator, rule, data *jnode.Node) Signal {
	if !rule.IsBoolean() {
		return Fail
	}
	if rule.IsTrue() && data.IsArray() {
		for cur := data.Child(); cur != nil; cur = cur.Next() {
			for prev := data.Child(); prev != cur; prev = prev.Next() {
				if jnode.Equal(cur, prev) {
					return Fail
				}
			}
		}
	}
	return Pass
}

func atLeast(n, bound uint64) bool { return n >= bound }
func atMost(n, bound uint64) bool  { return n <= bound }

// bound returns a tester for a keyword that limits the size of data of type
// t: the number of members of an object, the number of elements of an array,
// or the number of code points in a string. The rule must be a non-negative
// integer.
func bound(t jnode.Type, ok func(n, bound uint64) bool) tester {
	return func(_ Validator, rule, data *jnode.Node) Signal {
		if !rule.IsReal() {
			return Fail
		} else if data.Type() != t {
			return Pass
		}
		var n int
		if t == jnode.String {
			n = codePoints(data.Text())
		} else {
			n = data.Items()
		}
		return signal(ok(uint64(n), rule.Uint()))
	}
}

// codePoints counts the bytes of s that do not continue a UTF-8 sequence.
func codePoints(s string) (n int) {
	for i := range len(s) {
		if s[i]&0xc0 != 0x80 {
			n++
		}
	}
	return n
}

func testFormat(v Validator, rule, data *jnode.Node) Signal {
	if !rule.IsString() {
		return Fail
	} else if !data.IsString() {
		return Pass
	}
	if f := v.lookupFormat(rule.Text()); f != nil {
		return signal(f(data.Text()))
	}
	return signal(format.Match(rule.Text(), data.Text()))
}

func testPattern(_ Validator, rule, data *jnode.Node) Signal {
	if !rule.IsString() {
		return Fail
	} else if !data.IsString() {
		return Pass
	}
	return signal(format.Match(rule.Text(), data.Text()))
}

// limit returns a tester for a numeric bound whose comparison is strict if
// the sibling keyword named by exclusive is true.
func limit(exclusive string, strict, inclusive func(x, y float64) bool) tester {
	return func(_ Validator, rule, data *jnode.Node) Signal {
		if !rule.IsNumber() {
			return Fail
		} else if !data.IsNumber() {
			return Pass
		}
		cmp := inclusive
		if rule.Parent().Find(exclusive).IsTrue() {
			cmp = strict
		}
		return signal(cmp(data.Number(), rule.Number()))
	}
}

func testMultipleOf(_ Validator, rule, data *jnode.Node) Signal {
	if !rule.IsNumber() {
		return Fail
	} else if !data.IsNumber() {
		return Pass
	}
	return signal(math.Mod(data.Number(), rule.Number()) == 0)
}
