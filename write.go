// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package jnode

import (
	"bufio"
	"bytes"
	"io"
	"strings"

	"github.com/creachadair/jnode/internal/escape"

	"go4.org/mem"
)

// A Formatter carries the settings for pretty-printing a document tree.
// A zero value is ready for use with default settings.
type Formatter struct {
	// Indent is the text written once per level of nesting.
	// If empty, two spaces are used.
	Indent string

	// Colors, if non-nil, supplies highlighting for each part of the output.
	Colors *Colors
}

// Colors gives a highlight function for each kind of text written by a
// Formatter. A nil field leaves that kind of text unchanged. The functions
// have the shape of fmt.Sprintf.
type Colors struct {
	Name    func(string, ...any) string // member names, with quotes
	String  func(string, ...any) string // string values, with quotes
	Number  func(string, ...any) string // integers and doubles
	Literal func(string, ...any) string // true, false, null
	Punct   func(string, ...any) string // brackets, braces, colons, commas
}

func paint(f func(string, ...any) string, s string) string {
	if f == nil {
		return s
	}
	return f("%s", s)
}

func (f Formatter) indent() string {
	if f.Indent == "" {
		return "  "
	}
	return f.Indent
}

func (f Formatter) colors() *Colors {
	if f.Colors == nil {
		return new(Colors)
	}
	return f.Colors
}

// Format renders a pretty-printed representation of n to w with default
// settings.
func Format(w io.Writer, n *Node) error {
	var f Formatter
	return f.Format(w, n)
}

// FormatToString formats n to a string with default settings.
// In case of error in formatting, it returns an empty string.
func FormatToString(n *Node) string {
	var buf bytes.Buffer
	if Format(&buf, n) != nil {
		return ""
	}
	return buf.String()
}

// String renders n in the default format. It satisfies fmt.Stringer.
func (n *Node) String() string { return FormatToString(n) }

// Format renders a pretty-printed representation of n to w using the
// settings from f. Each member or element is written on its own line,
// indented by its depth below n. The name and siblings of n itself are not
// written, so the output is always a complete document.
//
// Re-parsing the output yields a tree equal to n.
func (f Formatter) Format(w io.Writer, n *Node) error {
	if n == nil {
		return nil
	}
	bw := bufio.NewWriter(w)
	fw := &formatWriter{w: bw, c: f.colors(), indent: f.indent()}

	depth := 0
	for {
		fw.opening(n, depth)
		if n.child != nil {
			n = n.child
			depth++
			continue
		} else if depth > 0 && n.next != nil {
			n = n.next
			continue
		}
		for depth > 0 {
			n = n.parent
			depth--
			fw.closing(n, depth)
			if depth > 0 && n.next != nil {
				break
			}
		}
		if depth == 0 {
			break
		}
		n = n.next
	}
	return bw.Flush()
}

type formatWriter struct {
	w      *bufio.Writer
	c      *Colors
	indent string
	buf    []byte
}

func (fw *formatWriter) quote(s string) string {
	fw.buf = append(fw.buf[:0], '"')
	fw.buf = escape.AppendQuote(fw.buf, mem.S(s))
	fw.buf = append(fw.buf, '"')
	return string(fw.buf)
}

// opening writes the line that begins n: its name, if any, and either its
// value or its opening bracket. An empty container is closed on the same
// line.
func (fw *formatWriter) opening(n *Node, depth int) {
	fw.w.WriteString(strings.Repeat(fw.indent, depth))
	if depth > 0 && n.named {
		fw.w.WriteString(paint(fw.c.Name, fw.quote(n.name)))
		fw.w.WriteString(paint(fw.c.Punct, ":"))
		fw.w.WriteByte(' ')
	}
	switch n.typ {
	case Object:
		fw.w.WriteString(paint(fw.c.Punct, "{"))
	case Array:
		fw.w.WriteString(paint(fw.c.Punct, "["))
	case String:
		fw.w.WriteString(paint(fw.c.String, fw.quote(n.value)))
	case Integer, Double:
		fw.w.WriteString(paint(fw.c.Number, n.value))
	default:
		fw.w.WriteString(paint(fw.c.Literal, n.value))
	}
	if n.child == nil {
		switch n.typ {
		case Object:
			fw.w.WriteString(paint(fw.c.Punct, "}"))
		case Array:
			fw.w.WriteString(paint(fw.c.Punct, "]"))
		}
		fw.comma(n, depth)
	}
	fw.w.WriteByte('\n')
}

// closing writes the line that ends the non-empty container n.
func (fw *formatWriter) closing(n *Node, depth int) {
	fw.w.WriteString(strings.Repeat(fw.indent, depth))
	if n.typ == Object {
		fw.w.WriteString(paint(fw.c.Punct, "}"))
	} else {
		fw.w.WriteString(paint(fw.c.Punct, "]"))
	}
	fw.comma(n, depth)
	fw.w.WriteByte('\n')
}

func (fw *formatWriter) comma(n *Node, depth int) {
	if depth > 0 && n.next != nil {
		fw.w.WriteString(paint(fw.c.Punct, ","))
	}
}
