package jnode

import (
	"errors"
	"fmt"
)

// A Span describes a contiguous span of a source input.
type Span struct {
	Pos int // the start offset, 0-based
	End int // the end offset, 0-based (noninclusive)
}

// A LineCol describes the line number and column of a location in source
// text. Both are 1-based; columns count characters, not bytes. The zero
// value denotes a failure with no location in the input.
type LineCol struct {
	Line   int
	Column int
}

func (lc LineCol) String() string { return fmt.Sprintf("%d:%d", lc.Line, lc.Column) }

// IsZero reports whether lc is the zero location.
func (lc LineCol) IsZero() bool { return lc.Line == 0 && lc.Column == 0 }

// SyntaxError is the concrete type of errors reported by the parser for
// input that violates the JSON grammar.
type SyntaxError struct {
	LineCol
	Offset  int // byte offset of the violation, 0-based
	Message string

	err error
}

// Error satisfies the error interface.
func (s *SyntaxError) Error() string {
	return fmt.Sprintf("at %s: %s", s.LineCol, s.Message)
}

// Unwrap supports error wrapping.
func (s *SyntaxError) Unwrap() error { return s.err }

// LocationOf reports the location of err in its source text if err is or
// wraps a *SyntaxError, and the zero LineCol otherwise.
func LocationOf(err error) LineCol {
	var serr *SyntaxError
	if errors.As(err, &serr) {
		return serr.LineCol
	}
	return LineCol{}
}

// lineCol maps a byte offset in text to its line and column. A newline
// advances the line and resets the column; any byte that does not continue
// a UTF-8 sequence advances the column.
func lineCol(text []byte, offset int) LineCol {
	lc := LineCol{Line: 1, Column: 1}
	for _, b := range text[:min(offset, len(text))] {
		if b == '\n' {
			lc.Line++
			lc.Column = 1
		} else if b&0xc0 != 0x80 {
			lc.Column++
		}
	}
	return lc
}
