package jnode

import (
	"bytes"
	"errors"

	"github.com/creachadair/jnode/internal/escape"

	"go4.org/mem"
)

// classify reports the scalar type denoted by the raw content text, or
// Undefined if text is not a valid JSON value.
func classify(text []byte) Type {
	n := len(text)
	switch {
	case n >= 2 && text[0] == '"' && text[n-1] == '"':
		return String
	case mem.B(text).Equal(mem.S("null")):
		return Null
	case mem.B(text).Equal(mem.S("true")), mem.B(text).Equal(mem.S("false")):
		return Boolean
	case isNumber(text):
		if isDouble(text) {
			return Double
		}
		return Integer
	}
	return Undefined
}

// isNumber reports whether text is a number in the JSON grammar:
//
//	number = [ "-" ] int [ frac ] [ exp ]
//	   int = "0" / digit1-9 *digit
//	  frac = "." *digit
//	   exp = ("e" / "E") [ "+" / "-" ] 1*digit
//
// and text ends with a digit, so "1." is rejected but "1.e5" is not.
func isNumber(text []byte) bool {
	i := 0
	if i < len(text) && text[i] == '-' {
		i++ // skip sign
	}
	start := i
	for i < len(text) && isDigit(text[i]) {
		i++
	}
	if i == start {
		return false // at least one integer digit is required
	} else if text[start] == '0' && i-start > 1 {
		return false // extra leading zeroes
	}
	if i < len(text) && text[i] == '.' {
		i++
		for i < len(text) && isDigit(text[i]) {
			i++
		}
	}
	if i < len(text) && (text[i] == 'e' || text[i] == 'E') {
		i++
		if i < len(text) && (text[i] == '+' || text[i] == '-') {
			i++
		}
		exp := i
		for i < len(text) && isDigit(text[i]) {
			i++
		}
		if i == exp {
			return false // missing exponent digits
		}
	}
	return i == len(text) && isDigit(text[i-1])
}

// isDouble reports whether text, already known to be a number, has a
// fraction or exponent.
func isDouble(text []byte) bool {
	return bytes.ContainsAny(text, ".eE")
}

func isDigit(b byte) bool { return '0' <= b && b <= '9' }

// decodeName decodes the raw text of an object member name, which must be
// a quoted string.
func decodeName(text []byte) (string, error) {
	n := len(text)
	if n < 2 || text[0] != '"' || text[n-1] != '"' {
		return "", errors.New("member name must be a string")
	}
	dec, err := escape.Unquote(mem.B(text[1 : n-1]))
	if err != nil {
		return "", err
	}
	return string(dec), nil
}

// decodeValue decodes the raw text of a scalar of type t.
func decodeValue(t Type, text []byte) (string, error) {
	if t == String {
		return decodeName(text)
	}
	return string(text), nil
}
