// Package schema validates a JSON document tree against a schema tree using
// a practical subset of the JSON Schema keywords.
//
// A schema is an object whose members are keywords. Each keyword is checked
// by a tester that reports a Signal: the keyword passes, fails, or directs
// the validator to apply nested schemas to the members or elements of the
// data. All the keywords of a schema are checked even after one fails, so a
// single call may report several diagnostics.
//
// Supported keywords:
//
//	$schema $id title description   string (metadata)
//	type                            type name or array of names
//	const enum                      structural equality
//	required                        array of names, or true (data must be present)
//	dependentRequired               object of name arrays
//	properties additionalProperties
//	minProperties maxProperties
//	items additionalItems           schema or tuple of schemas
//	minItems maxItems uniqueItems
//	minLength maxLength             counted in code points
//	format pattern                  see package format
//	minimum maximum                 with exclusiveMinimum, exclusiveMaximum
//	multipleOf
//	readOnly writeOnly deprecated   boolean (metadata)
//	examples                        array (metadata)
//	default                         any value (metadata)
//
// Unknown keywords are reported as warnings and do not affect the result.
package schema

import (
	"fmt"
	"io"

	"github.com/creachadair/jnode"
	"github.com/creachadair/jnode/format"
)

// A Signal is the result of checking one keyword.
type Signal byte

// Constants defining the valid Signal values.
const (
	Fail          Signal = iota // the keyword is malformed or the data violates it
	Pass                        // the data satisfies the keyword
	DescendObject               // apply each named sub-schema to the data member of that name
	DescendArray                // apply the sub-schema to every data element
	DescendTuple                // apply each sub-schema to the data element at the same offset
)

var signalStr = [...]string{
	Fail:          "Fail",
	Pass:          "Pass",
	DescendObject: "DescendObject",
	DescendArray:  "DescendArray",
	DescendTuple:  "DescendTuple",
}

func (s Signal) String() string {
	if int(s) >= len(signalStr) {
		return fmt.Sprintf("Signal(%d)", s)
	}
	return signalStr[s]
}

// Severity classifies a Diagnostic.
type Severity byte

const (
	Error   Severity = iota // validation fails
	Warning                 // reported, but does not affect the result
)

func (s Severity) String() string {
	if s == Warning {
		return "Warning"
	}
	return "Error"
}

// A Diagnostic describes a schema keyword that failed or was not understood.
type Diagnostic struct {
	Severity Severity
	Keyword  string      // the keyword name, or "" if the schema itself is not an object
	Rule     *jnode.Node // the offending schema node
	Data     *jnode.Node // the data node it was applied to, or nil if absent
}

func (d Diagnostic) Error() string {
	switch {
	case d.Keyword == "":
		return fmt.Sprintf("%v: schema at %s is not an object", d.Severity, d.Rule.Path())
	case d.Severity == Warning:
		return fmt.Sprintf("%v: unknown keyword %q at %s", d.Severity, d.Keyword, d.Rule.Path())
	case d.Data == nil:
		return fmt.Sprintf("%v: keyword %q at %s failed (no data)", d.Severity, d.Keyword, d.Rule.Path())
	default:
		return fmt.Sprintf("%v: keyword %q at %s failed for %s", d.Severity, d.Keyword, d.Rule.Path(), d.Data.Path())
	}
}

// A Validator carries the settings for checking data against a schema.
// A zero value is ready for use and reports nothing.
type Validator struct {
	// Report, if non-nil, is called for each diagnostic in the order they
	// are found.
	Report func(Diagnostic)

	// Sink, if non-nil, receives a description of each diagnostic followed
	// by the offending schema subtree.
	Sink io.Writer

	// Formats, if non-nil, resolves the names used by the "format" keyword.
	// If it is nil, format.Lookup is used. A name it does not resolve is
	// treated as a regular expression.
	Formats func(name string) format.Func
}

// Validate reports whether data satisfies rule, calling report (if non-nil)
// for each diagnostic. A nil data node denotes absent data.
func Validate(data, rule *jnode.Node, report func(Diagnostic)) bool {
	return Validator{Report: report}.Validate(data, rule)
}

// Validate reports whether data satisfies rule. The rule must be an object;
// an empty object accepts any data. A nil data node denotes absent data.
func (v Validator) Validate(data, rule *jnode.Node) bool {
	if !rule.IsObject() {
		v.raise(Diagnostic{Severity: Error, Rule: rule, Data: data})
		return false
	}
	return v.validate(rule.Child(), data)
}

// validate checks each keyword in the sibling chain starting at rule against
// data, and reports whether all of them passed.
func (v Validator) validate(rule, data *jnode.Node) bool {
	valid := true
	for r := rule; r != nil; r = r.Next() {
		kw, ok := keywords[r.Name()]
		if !ok {
			v.raise(Diagnostic{Severity: Warning, Keyword: r.Name(), Rule: r, Data: data})
			continue
		}
		switch testers[kw](v, r, data) {
		case Pass:
			// OK

		case DescendObject:
			for p := range r.Children() {
				valid = v.validate(p.Child(), data.Find(p.Name())) && valid
			}

		case DescendArray:
			for elt := range data.Children() {
				valid = v.validate(r.Child(), elt) && valid
			}

		case DescendTuple:
			elt := data.Child()
			for p := range r.Children() {
				valid = v.validate(p.Child(), elt) && valid
				elt = elt.Next()
			}

		default:
			v.raise(Diagnostic{Severity: Error, Keyword: r.Name(), Rule: r, Data: data})
			valid = false
		}
	}
	return valid
}

func (v Validator) raise(d Diagnostic) {
	if v.Report != nil {
		v.Report(d)
	}
	if v.Sink != nil {
		fmt.Fprintln(v.Sink, d.Error())
		jnode.Format(v.Sink, d.Rule)
	}
}

func (v Validator) lookupFormat(name string) format.Func {
	if v.Formats != nil {
		return v.Formats(name)
	}
	return format.Lookup(name)
}
