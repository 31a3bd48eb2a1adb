// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package escape handles quoting and unquoting of JSON strings.
package escape

import (
	"errors"
	"fmt"

	"go4.org/mem"
)

// Unquote decodes a byte slice containing the JSON encoding of a string. The
// input must have the enclosing double quotation marks already removed.
//
// The single-character escapes are replaced by the bytes they denote. Each
// \uXXXX escape is converted independently into the 1 to 3 byte UTF-8 form
// of its code point; surrogate pairs are not combined. Unquote reports an
// error for an incomplete or invalid escape sequence.
func Unquote(src mem.RO) ([]byte, error) {
	dec := make([]byte, 0, src.Len())
	i := mem.IndexByte(src, '\\')
	if i < 0 {
		return mem.Append(dec, src), nil
	}

	for src.Len() != 0 {
		dec = mem.Append(dec, src.SliceTo(i))

		src = src.SliceFrom(i + 1)
		if src.Len() == 0 {
			return nil, errors.New("incomplete escape sequence")
		}
		b := src.At(0)
		src = src.SliceFrom(1)
		switch b {
		case '"', '\\', '/':
			dec = append(dec, b)
		case 'b':
			dec = append(dec, '\b')
		case 'f':
			dec = append(dec, '\f')
		case 'n':
			dec = append(dec, '\n')
		case 'r':
			dec = append(dec, '\r')
		case 't':
			dec = append(dec, '\t')
		case 'u':
			if src.Len() < 4 {
				return nil, errors.New("incomplete Unicode escape")
			}
			v, err := parseHex(src.SliceTo(4))
			if err != nil {
				return nil, fmt.Errorf("invalid Unicode escape: %w", err)
			}
			dec = AppendCodePoint(dec, v)
			src = src.SliceFrom(4)
		default:
			return nil, fmt.Errorf("invalid %q after escape", b)
		}

		// Look for the next escape sequence, and if one is not found we can blit
		// the rest of the input and go home.
		i = mem.IndexByte(src, '\\')
		if i < 0 {
			dec = mem.Append(dec, src)
			break
		}
	}
	return dec, nil
}

// AppendCodePoint appends the UTF-8 encoding of a code point in the range
// 0..0xFFFF to buf. Unlike utf8.EncodeRune, surrogate halves are encoded as
// written rather than replaced.
func AppendCodePoint(buf []byte, cp uint16) []byte {
	switch {
	case cp <= 0x7f:
		return append(buf, byte(cp))
	case cp <= 0x7ff:
		return append(buf, 0xc0|byte(cp>>6&0x1f), 0x80|byte(cp&0x3f))
	default:
		return append(buf, 0xe0|byte(cp>>12&0x0f), 0x80|byte(cp>>6&0x3f), 0x80|byte(cp&0x3f))
	}
}

// IsHexDigit reports whether b is an ASCII hexadecimal digit.
func IsHexDigit(b byte) bool {
	return ('0' <= b && b <= '9') || ('a' <= b && b <= 'f') || ('A' <= b && b <= 'F')
}

func parseHex(data mem.RO) (uint16, error) {
	var v uint16
	for i := 0; i < data.Len(); i++ {
		b := data.At(i)
		v <<= 4
		if '0' <= b && b <= '9' {
			v += uint16(b - '0')
		} else if 'a' <= b && b <= 'f' {
			v += uint16(b - 'a' + 10)
		} else if 'A' <= b && b <= 'F' {
			v += uint16(b - 'A' + 10)
		} else {
			return 0, fmt.Errorf("invalid hex digit %q", b)
		}
	}
	return v, nil
}
