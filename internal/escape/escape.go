// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

// Package escape handles decoding of JSON string escape sequences.
package escape

import (
	"fmt"

	"go4.org/mem"
)

// Rune reports the rune denoted by ch occurring after a backslash in a JSON
// string literal, and whether ch is a legal single-character escape.  The
// digits of a "u" escape are not handled here; see ParseHex4.
func Rune(ch rune) (rune, bool) {
	switch ch {
	case '"', '\\', '/':
		return ch, true
	case 'b':
		return '\b', true
	case 'f':
		return '\f', true
	case 'n':
		return '\n', true
	case 'r':
		return '\r', true
	case 't':
		return '\t', true
	}
	return 0, false
}

// ParseHex4 decodes data, which must comprise exactly four hexadecimal
// digits, as a UTF-16 code unit.
func ParseHex4(data mem.RO) (rune, error) {
	if data.Len() != 4 {
		return 0, fmt.Errorf("got %d hex digits, want 4", data.Len())
	}
	var v rune
	for i := 0; i < data.Len(); i++ {
		b := data.At(i)
		v <<= 4
		if '0' <= b && b <= '9' {
			v += rune(b - '0')
		} else if 'a' <= b && b <= 'f' {
			v += rune(b - 'a' + 10)
		} else if 'A' <= b && b <= 'F' {
			v += rune(b - 'A' + 10)
		} else {
			return 0, fmt.Errorf("invalid hex digit %q", b)
		}
	}
	return v, nil
}
