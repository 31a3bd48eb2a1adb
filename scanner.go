// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jnode

import (
	"fmt"
	"io"
	"strings"

	"github.com/creachadair/jnode/internal/escape"
)

// Token is the type of a structural token in the JSON grammar.
type Token byte

// Constants defining the valid Token values.
const (
	Invalid Token = iota // invalid token
	LBrace               // left brace "{"
	RBrace               // right brace "}"
	LSquare              // left square bracket "["
	RSquare              // right square bracket "]"
	Comma                // comma ","
	Colon                // colon ":"
	End                  // end of input
)

var tokenStr = [...]string{
	Invalid: "invalid token",
	LBrace:  `"{"`,
	RBrace:  `"}"`,
	LSquare: `"["`,
	RSquare: `"]"`,
	Comma:   `","`,
	Colon:   `":"`,
	End:     "end of input",
}

func (t Token) String() string {
	v := int(t)
	if v >= len(tokenStr) {
		return tokenStr[Invalid]
	}
	return tokenStr[v]
}

// A Scanner locates the structural tokens of a JSON text. Each call to Next
// advances to the next token outside of a string and records the span of
// the content between the previous token and this one, with surrounding
// whitespace trimmed.
//
// The scanner checks the lexical rules of strings as it goes: quoting,
// escape sequences and control characters. It does not interpret the
// content; see Parse for that.
type Scanner struct {
	text []byte
	pos  int // start of unconsumed input
	done bool
	err  error

	tok         Token
	tpos        int // offset of the current token
	left, right int // content bounds, inclusive
	empty       bool
}

// NewScanner constructs a new scanner that consumes text.
func NewScanner(text []byte) *Scanner { return &Scanner{text: text} }

// Next advances s to the next token of the input, or reports an error. The
// end of the input is reported once as the End token; after that, Next
// returns io.EOF.
func (s *Scanner) Next() error {
	if s.err != nil {
		return s.err
	} else if s.done {
		return io.EOF
	}

	text := s.text
	left, right := s.pos, s.pos
	var seen bool // whether any content precedes the token
	var quotes int
	var open int // offset of the most recent opening quote

	i := s.pos
	for i < len(text) {
		b := text[i]
		if b == '\\' {
			if quotes == 1 && i+1 < len(text) {
				if isEscape(text[i+1]) {
					i += 2
					continue
				} else if isUCN(text[i+1:]) {
					i += 6
					continue
				}
				if text[i+1] == 'u' {
					return s.failf(i, "invalid Unicode escape")
				}
				return s.failf(i, "invalid %q after escape", text[i+1])
			} else if quotes == 1 {
				return s.failf(i, "incomplete escape sequence")
			}
			return s.failf(i, "unexpected %q outside of a string", b)
		}

		if b == '"' {
			if quotes > 1 {
				return s.failf(i, "unexpected string after string")
			}
			if quotes == 0 {
				open = i
			}
			quotes++
		} else if quotes != 1 {
			if isToken(b) {
				break
			}
		} else if isControl(b) {
			return s.failf(i, "unescaped control %q in string", b)
		}

		if !isSpace(b) {
			if !seen {
				left = i
				seen = true
			}
			right = i
		}
		i++
	}
	if quotes == 1 {
		return s.failf(open, "unterminated string")
	}
	if !seen {
		left, right = i, i
	}

	s.left, s.right, s.empty = left, right, !seen
	s.tpos = i
	if i == len(text) {
		s.tok = End
		s.done = true
	} else {
		s.tok = selfDelim(text[i])
		s.pos = i + 1
	}
	return nil
}

// Token returns the type of the current token.
func (s *Scanner) Token() Token { return s.tok }

// Pos returns the offset of the current token. At the end of the input this
// is the length of the input.
func (s *Scanner) Pos() int { return s.tpos }

// Empty reports whether no content precedes the current token.
func (s *Scanner) Empty() bool { return s.empty }

// Span returns the location span of the content preceding the current
// token. If there is no content, the span is empty and begins at the token.
func (s *Scanner) Span() Span {
	if s.empty {
		return Span{Pos: s.tpos, End: s.tpos}
	}
	return Span{Pos: s.left, End: s.right + 1}
}

// Text returns the undecoded content preceding the current token. The
// return value aliases the input.
func (s *Scanner) Text() []byte {
	sp := s.Span()
	return s.text[sp.Pos:sp.End]
}

// Err returns the last error reported by Next.
func (s *Scanner) Err() error { return s.err }

type posError struct {
	pos int
	err error
}

func (p posError) Error() string {
	return fmt.Sprintf("%s (offset %d)", p.err.Error(), p.pos)
}

func (p posError) Unwrap() error { return p.err }

func (s *Scanner) failf(pos int, msg string, args ...any) error {
	s.err = posError{pos, fmt.Errorf(msg, args...)}
	return s.err
}

// isSpace reports whether b is JSON whitespace.
func isSpace(b byte) bool {
	return b == ' ' || b == '\r' || b == '\n' || b == '\t'
}

// isControl reports whether b is a control character, which must be escaped
// inside a string.
func isControl(b byte) bool { return b < ' ' || b == 0x7f }

// isEscape reports whether b may follow a backslash as a single-character
// escape.
func isEscape(b byte) bool {
	switch b {
	case '"', '\\', '/', 'b', 'f', 'n', 'r', 't':
		return true
	}
	return false
}

// isUCN reports whether text begins with a Unicode escape "uXXXX", without
// its leading backslash.
func isUCN(text []byte) bool {
	if len(text) < 5 || text[0] != 'u' {
		return false
	}
	for _, b := range text[1:5] {
		if !escape.IsHexDigit(b) {
			return false
		}
	}
	return true
}

func isToken(b byte) bool { return strings.IndexByte("{}[],:", b) >= 0 }

var self = [...]Token{LBrace, RBrace, LSquare, RSquare, Comma, Colon}

func selfDelim(b byte) Token {
	i := strings.IndexByte("{}[],:", b)
	if i >= 0 {
		return self[i]
	}
	return Invalid
}
