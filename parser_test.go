// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jnode_test

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/creachadair/jnode"
	"github.com/creachadair/mds/mtest"
	"github.com/google/go-cmp/cmp"
)

// shape renders the structure of a tree compactly, for comparison.
func shape(n *jnode.Node) []string {
	var out []string
	jnode.Walk(n, func(v *jnode.Node) error {
		s := v.Type().String()
		if v.HasName() {
			s = v.Name() + "=" + s
		}
		if v.HasValue() {
			s += "(" + v.Text() + ")"
		}
		out = append(out, strings.Repeat(".", depth(n, v))+s)
		return nil
	})
	return out
}

func depth(root, n *jnode.Node) (d int) {
	for ; n != root; n = n.Parent() {
		d++
	}
	return d
}

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		// Bare values
		{`1`, []string{"Integer(1)"}},
		{" \"x\" \n", []string{"String(x)"}},
		{`true`, []string{"Boolean(true)"}},
		{`false`, []string{"Boolean(false)"}},
		{`null`, []string{"Null(null)"}},
		{`-0.5e-3`, []string{"Double(-0.5e-3)"}},
		{`1.e5`, []string{"Double(1.e5)"}},
		{`0`, []string{"Integer(0)"}},
		{`1e999`, []string{"Double(1e999)"}},
		{`"a\tbA"`, []string{"String(a\tbA)"}},

		// Empty containers have no children.
		{`{}`, []string{"Object"}},
		{`[ ]`, []string{"Array"}},
		{`[[],{}]`, []string{"Array", ".Array", ".Object"}},

		{`{"a": 1, "b": [true, null, "x"]}`, []string{
			"Object", ".a=Integer(1)", ".b=Array",
			"..Boolean(true)", "..Null(null)", "..String(x)",
		}},
		{`{"x":{"y":{"z":[]}}, "x": 2}`, []string{
			"Object", ".x=Object", "..y=Object", "...z=Array", ".x=Integer(2)",
		}},
		{`{"": "", "\"q\"": "a:b,c"}`, []string{
			"Object", `.=String()`, `."q"=String(a:b,c)`,
		}},
	}
	for _, tc := range tests {
		t.Run("", func(t *testing.T) {
			root, err := jnode.ParseString(tc.input)
			if err != nil {
				t.Fatalf("Parse %#q: unexpected error: %v", tc.input, err)
			}
			if diff := cmp.Diff(tc.want, shape(root)); diff != "" {
				t.Errorf("Parse %#q: (-want, +got)\n%s", tc.input, diff)
			}
			if root.Parent() != nil || root.HasName() {
				t.Errorf("Root has parent %v, name %q", root.Parent(), root.Name())
			}
		})
	}
}

func TestParseScenario(t *testing.T) {
	root := jnode.MustParse(`{"a": 1, "b": [true, null, "x"]}`)
	if got := root.Type(); got != jnode.Object {
		t.Fatalf("Root type: got %v, want Object", got)
	}
	if got := root.Items(); got != 2 {
		t.Errorf("Root items: got %d, want 2", got)
	}
	b := root.Find("b")
	if got := b.Items(); got != 3 {
		t.Errorf("Items(b): got %d, want 3", got)
	}
	var types []jnode.Type
	for v := range b.Children() {
		types = append(types, v.Type())
	}
	if diff := cmp.Diff([]jnode.Type{jnode.Boolean, jnode.Null, jnode.String}, types); diff != "" {
		t.Errorf("Element types (-want, +got):\n%s", diff)
	}
	if v := root.Lookup("/b/1"); !v.IsNull() {
		t.Errorf("Lookup /b/1: got %v, want null", v)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		input  string
		offset int
		lc     string
		msg    string
	}{
		{``, 0, "1:1", "unexpected end of input"},
		{"  \n ", 4, "2:2", "unexpected end of input"},
		{`{"a":1,}`, 7, "1:8", `missing value before "}"`},
		{"[1,\n 2,\n]", 8, "3:1", `missing value before "]"`},
		{`{"a" 1}`, 1, "1:2", "missing member name"},
		{`{"a":}`, 5, "1:6", "missing value"},
		{`[,1]`, 1, "1:2", "missing value"},
		{`[1 2]`, 1, "1:2", "invalid value"},
		{`[1]x`, 3, "1:4", "unexpected text after value"},
		{`[[] 1]`, 4, "1:5", "unexpected text after value"},
		{`[` + "\n" + `"ab`, 2, "2:1", "unterminated string"},
		{"{\"k\":\"é\x01\"}", 8, "1:8", "unescaped control"},
		{`[`, 1, "1:2", "unexpected end of input"},
		{`{"a":1}}`, 7, "1:8", `unexpected "}"`},
		{`[1,2]]`, 5, "1:6", `unexpected "]"`},
		{`{"a":[}`, 6, "1:7", `unexpected "}"`},
		{`{"a":1]`, 5, "1:6", `unexpected "]"`},
		{`{1:2}`, 1, "1:2", "invalid member name"},
		{`"a":1`, 0, "1:1", `unexpected ":"`},
		{`{"a":1:2}`, 5, "1:6", `unexpected ":"`},
		{`[1, {"a"}]`, 5, "1:6", "missing member name"},
		{`{[]}`, 1, "1:2", "missing member name"},
		{`x[]`, 0, "1:1", "unexpected text before"},
		{`1,2`, 0, "1:1", `unexpected ","`},
		{"\n\n  tru", 4, "3:3", "invalid value"},

		// Number grammar
		{`01`, 0, "1:1", "invalid value"},
		{`-01`, 0, "1:1", "invalid value"},
		{`1.`, 0, "1:1", "invalid value"},
		{`.5`, 0, "1:1", "invalid value"},
		{`+1`, 0, "1:1", "invalid value"},
		{`1e`, 0, "1:1", "invalid value"},
		{`1e+`, 0, "1:1", "invalid value"},
		{`-`, 0, "1:1", "invalid value"},
		{`0x10`, 0, "1:1", "invalid value"},
		{`NaN`, 0, "1:1", "invalid value"},
		{`Infinity`, 0, "1:1", "invalid value"},
		{`True`, 0, "1:1", "invalid value"},
		{`nulls`, 0, "1:1", "invalid value"},
		{`'a'`, 0, "1:1", "invalid value"},
	}
	for _, tc := range tests {
		_, err := jnode.ParseString(tc.input)
		var serr *jnode.SyntaxError
		if !errors.As(err, &serr) {
			t.Errorf("Parse %#q: got %v, want *SyntaxError", tc.input, err)
			continue
		}
		if serr.Offset != tc.offset {
			t.Errorf("Parse %#q: offset %d, want %d", tc.input, serr.Offset, tc.offset)
		}
		if got := serr.LineCol.String(); got != tc.lc {
			t.Errorf("Parse %#q: location %s, want %s", tc.input, got, tc.lc)
		}
		if got := jnode.LocationOf(err).String(); got != tc.lc {
			t.Errorf("LocationOf %#q: got %s, want %s", tc.input, got, tc.lc)
		}
		if !strings.Contains(serr.Message, tc.msg) {
			t.Errorf("Parse %#q: message %q, want %q", tc.input, serr.Message, tc.msg)
		}
		if want := "at " + tc.lc + ": "; !strings.HasPrefix(err.Error(), want) {
			t.Errorf("Parse %#q: error %q, want prefix %q", tc.input, err, want)
		}
	}
}

func TestParseReader(t *testing.T) {
	t.Run("OK", func(t *testing.T) {
		root, err := jnode.ParseReader(strings.NewReader(`[1, 2, 3]`))
		if err != nil {
			t.Fatalf("ParseReader: unexpected error: %v", err)
		}
		if got := root.Items(); got != 3 {
			t.Errorf("Items: got %d, want 3", got)
		}
	})
	t.Run("ReadError", func(t *testing.T) {
		boom := errors.New("boom")
		_, err := jnode.ParseReader(iotest.ErrReader(boom))
		if !errors.Is(err, boom) {
			t.Errorf("ParseReader: got %v, want %v", err, boom)
		}
		if lc := jnode.LocationOf(err); !lc.IsZero() {
			t.Errorf("LocationOf: got %v, want zero", lc)
		}
	})
}

func TestMustParse(t *testing.T) {
	if v := jnode.MustParse(`"ok"`); v.Text() != "ok" {
		t.Errorf("MustParse: got %q, want ok", v.Text())
	}
	mtest.MustPanic(t, func() { jnode.MustParse(`{`) })
	mtest.MustPanic(t, func() { jnode.MustParse(`[1,]`) })
}

func TestNew(t *testing.T) {
	t.Run("Document", func(t *testing.T) {
		v, err := jnode.New(nil, `[1]`)
		if err != nil {
			t.Fatalf("New: unexpected error: %v", err)
		}
		if !v.IsArray() || v.Parent() != nil {
			t.Errorf("New: got %v, want root array", v)
		}
	})

	t.Run("Object", func(t *testing.T) {
		obj := jnode.MustParse(`{"a": 1}`)
		b, err := jnode.New(obj, `"b": [2], "c": {"d": null}`)
		if err != nil {
			t.Fatalf("New: unexpected error: %v", err)
		}
		if b.Name() != "b" || b.Parent() != obj {
			t.Errorf("New: got %q (parent %p), want b under %p", b.Name(), b.Parent(), obj)
		}
		if diff := cmp.Diff([]string{
			"Object", ".a=Integer(1)", ".b=Array", "..Integer(2)", ".c=Object", "..d=Null(null)",
		}, shape(obj)); diff != "" {
			t.Errorf("After New (-want, +got):\n%s", diff)
		}
	})

	t.Run("Array", func(t *testing.T) {
		arr := jnode.MustParse(`[]`)
		for i, frag := range []string{`"x"`, `3, 4`, `[]`} {
			if _, err := jnode.New(arr, frag); err != nil {
				t.Fatalf("New %d %#q: unexpected error: %v", i, frag, err)
			}
		}
		if diff := cmp.Diff([]string{
			"Array", ".String(x)", ".Integer(3)", ".Integer(4)", ".Array",
		}, shape(arr)); diff != "" {
			t.Errorf("After New (-want, +got):\n%s", diff)
		}
	})

	t.Run("Errors", func(t *testing.T) {
		tests := []struct {
			doc, frag string
		}{
			{`{"a": 1}`, `5`},
			{`{"a": 1}`, `[5]`},
			{`{"a": 1}`, `"b"`},
			{`{"a": 1}`, `"b": 1, 2`},
			{`{"a": 1}`, `"b": 1}`},
			{`{"a": 1}`, `}`},
			{`{}`, `"b": {"c": 1, }`},
			{`[1]`, `"a": 2`},
			{`[1]`, `2]`},
			{`[1]`, `2], [3`},
			{`[1]`, ``},
			{`[1]`, `2,`},
			{`{"x": [1]}`, `[`},
		}
		for _, tc := range tests {
			root := jnode.MustParse(tc.doc)
			parent := root
			if c := root.Find("x"); c != nil {
				parent = c
			}
			before := jnode.FormatToString(root)
			if v, err := jnode.New(parent, tc.frag); err == nil {
				t.Errorf("New(%#q, %#q): got %v, want error", tc.doc, tc.frag, v)
			} else {
				t.Logf("New(%#q, %#q): got expected error: %v", tc.doc, tc.frag, err)
			}
			if after := jnode.FormatToString(root); after != before {
				t.Errorf("New(%#q, %#q) modified parent:\nbefore: %s\nafter:  %s", tc.doc, tc.frag, before, after)
			}
		}
	})

	t.Run("NotContainer", func(t *testing.T) {
		root := jnode.MustParse(`{"a": "text"}`)
		if _, err := jnode.New(root.Find("a"), `1`); !errors.Is(err, jnode.ErrNotContainer) {
			t.Errorf("New: got %v, want %v", err, jnode.ErrNotContainer)
		}
	})
}

func TestRoundTrip(t *testing.T) {
	tests := []string{
		`null`,
		`"a\"b\\c\/d\b\f\n\r\t\u0001\u007fé"`,
		`[1, 2.5, -3e10, true, false, null, "", {}, []]`,
		`{"a": {"b": {"c": [[[]]]}}, "d\n": " "}`,
		`{"dup": 1, "dup": 2}`,
		`[{"x": 1, "y": [2, {"z": 3}]}, [], {}, "end"]`,
	}
	for _, input := range tests {
		orig := jnode.MustParse(input)
		text := jnode.FormatToString(orig)
		again, err := jnode.ParseString(text)
		if err != nil {
			t.Errorf("Reparse %#q: %v\n%s", input, err, text)
			continue
		}
		if !jnode.Equal(orig, again) {
			t.Errorf("Round trip %#q: not equal\n%s", input, text)
		}
		if got := jnode.FormatToString(again); got != text {
			t.Errorf("Round trip %#q: format changed\nfirst:  %s\nsecond: %s", input, text, got)
		}
	}
}

func TestParseJWCC(t *testing.T) {
	root, err := jnode.ParseJWCC([]byte(`// leading
{
  "a": 1, /* inline */
  "b": [2, 3,],
}
`))
	if err != nil {
		t.Fatalf("ParseJWCC: unexpected error: %v", err)
	}
	if diff := cmp.Diff([]string{
		"Object", ".a=Integer(1)", ".b=Array", "..Integer(2)", "..Integer(3)",
	}, shape(root)); diff != "" {
		t.Errorf("ParseJWCC (-want, +got):\n%s", diff)
	}

	// Comments are removed in place, so locations are unchanged.
	_, err = jnode.ParseJWCC([]byte("// c\n[\"a\x7f\"]"))
	if got := jnode.LocationOf(err).String(); got != "2:4" {
		t.Errorf("ParseJWCC location: got %s (%v), want 2:4", got, err)
	}

	_, err = jnode.ParseJWCC([]byte(`[1] /* open`))
	if err == nil {
		t.Error("ParseJWCC: got nil, want error")
	} else if lc := jnode.LocationOf(err); !lc.IsZero() {
		t.Errorf("ParseJWCC: got location %v, want zero", lc)
	}
}
