// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package escape

import "go4.org/mem"

var controlEsc = [...]byte{
	'\b': 'b',
	'\f': 'f',
	'\n': 'n',
	'\r': 'r',
	'\t': 't',
	' ':  ' ', // sentinel
}

var hexDigit = []byte("0123456789abcdef")

// Quote escapes src for inclusion in a JSON string. The enclosing quotation
// marks are not added.
//
// Backslash, quotation mark and the control characters with a short escape
// are written in their short form. Other control bytes (including DEL) are
// written as \u00XX. All other bytes, including multibyte UTF-8 sequences,
// are copied unchanged.
func Quote(src mem.RO) []byte { return AppendQuote(make([]byte, 0, src.Len()), src) }

// AppendQuote appends the escaped form of src to buf (see Quote).
func AppendQuote(buf []byte, src mem.RO) []byte {
	start := 0
	for i := 0; i < src.Len(); i++ {
		b := src.At(i)
		var esc []byte
		switch {
		case b == '\\' || b == '"':
			esc = []byte{'\\', b}
		case b < ' ':
			if c := controlEsc[b]; c != 0 {
				esc = []byte{'\\', c}
			} else {
				esc = []byte{'\\', 'u', '0', '0', hexDigit[b>>4], hexDigit[b&15]}
			}
		case b == 0x7f:
			esc = []byte(`\u007f`)
		default:
			continue
		}
		buf = mem.Append(buf, src.Slice(start, i))
		buf = append(buf, esc...)
		start = i + 1
	}
	return mem.Append(buf, src.SliceFrom(start))
}
