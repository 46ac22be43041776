// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

package ast

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/creachadair/jline"
	"github.com/creachadair/jline/internal/escape"

	"go4.org/mem"
)

// Parse parses a single JSON value comprising the document in r and returns
// its root. The root may be of any kind, not only an object or array.  In
// case of a grammar violation, the returned error has concrete type
// [*jline.SyntaxError] and carries the 1-based line number at which the
// violation was detected.
func Parse(r io.Reader) (Value, error) {
	return parse(jline.NewCursor(r))
}

// ParseString parses a single JSON value from s, as [Parse].
func ParseString(s string) (Value, error) {
	return parse(jline.NewCursor(strings.NewReader(s)))
}

func parse(cur *jline.Cursor) (v Value, err error) {
	p := &parser{cur: cur}
	defer p.recoverError(&err)
	return p.parseValue(), nil
}

// A parser consumes runes from its cursor in a single forward pass, building
// nodes bottom-up. Grammar violations are raised as *jline.SyntaxError
// panics and recovered at the entry point.
type parser struct {
	cur *jline.Cursor
}

func (p *parser) recoverError(errp *error) {
	if v := recover(); v != nil {
		if serr, ok := v.(*jline.SyntaxError); ok {
			*errp = serr
			return
		}
		panic(v)
	}
}

func (p *parser) failf(line int, msg string, args ...any) {
	panic(&jline.SyntaxError{Line: line, Message: fmt.Sprintf(msg, args...)})
}

// parseValue selects a production from the rune under the cursor. Anything
// that does not start an object, array, string, or constant is attempted as
// a number, whose validation rejects it if it is not one.
func (p *parser) parseValue() Value {
	if p.cur.End() {
		p.failf(p.cur.Line(), "unexpected end of input")
	}
	switch p.cur.Rune() {
	case '{':
		return p.parseObject()
	case '[':
		return p.parseArray()
	case '"':
		line := p.cur.Line()
		return &String{node: node{line: line}, value: p.readString()}
	case 't', 'f', 'n':
		return p.parseConstant()
	default:
		return p.parseNumber()
	}
}

// parseObject consumes an object. On entry the cursor is on the opening
// brace; on return it rests on the closing brace.
func (p *parser) parseObject() Value {
	obj := &Object{node: node{line: p.cur.Line()}}
	p.cur.Next()
	if p.cur.End() {
		p.failf(p.cur.Line(), "unterminated object")
	}
	if p.cur.Rune() == '}' {
		return obj
	}
	for {
		if p.cur.End() {
			p.failf(p.cur.Line(), "unterminated object")
		} else if p.cur.Rune() != '"' {
			p.failf(p.cur.Line(), "got %q, want object key", p.cur.Rune())
		}
		keyLine := p.cur.Line()
		key := p.readString()
		p.checkColon(true)
		val := p.parseValue()

		// The first occurrence of a key is authoritative. A recurrence
		// contributes only its line number, and its value is discarded.
		if m := obj.Find(key); m != nil {
			m.DupLines = append(m.DupLines, keyLine)
		} else {
			obj.Members = append(obj.Members, &Member{
				node: node{line: keyLine}, Key: key, Value: val,
			})
		}

		// String, object, and array productions rest on their own closing
		// rune; step onto the delimiter. Number and constant productions
		// already stop there.
		switch val.(type) {
		case *Object, *Array, *String:
			p.cur.Next()
		}
		if p.cur.End() {
			p.failf(p.cur.Line(), "unterminated object")
		}
		switch p.cur.Rune() {
		case ',':
			p.cur.Next()
		case '}':
			return obj
		default:
			p.failf(p.cur.Line(), `got %q, want "," or "}"`, p.cur.Rune())
		}
	}
}

// parseArray consumes an array. On entry the cursor is on the opening
// bracket; on return it rests on the closing bracket.
func (p *parser) parseArray() Value {
	arr := &Array{node: node{line: p.cur.Line()}}
	p.cur.Next()
	if p.cur.End() {
		p.failf(p.cur.Line(), "unterminated array")
	}
	if p.cur.Rune() == ']' {
		return arr
	}
	for {
		val := p.parseValue()
		arr.Values = append(arr.Values, val)
		switch val.(type) {
		case *Object, *Array, *String:
			p.cur.Next()
		}
		if p.cur.End() {
			p.failf(p.cur.Line(), "unterminated array")
		}
		if p.cur.Rune() != ',' {
			break
		}
		p.cur.Next()
	}
	if p.cur.Rune() != ']' {
		p.failf(p.cur.Line(), `got %q, want "]"`, p.cur.Rune())
	}
	return arr
}

// checkColon verifies that the rune after a key is a colon and that the rune
// after the colon may legally begin a value. On return the cursor is on that
// rune. Inside an object any value may follow the colon; otherwise only a
// string, object, or array may. The object builder is currently the only
// caller, so the narrow set is latent.
func (p *parser) checkColon(inObject bool) {
	p.cur.Next()
	if p.cur.End() {
		p.failf(p.cur.Line(), `want ":" after object key`)
	} else if p.cur.Rune() != ':' {
		p.failf(p.cur.Line(), `got %q, want ":"`, p.cur.Rune())
	}
	p.cur.Next()
	if p.cur.End() {
		p.failf(p.cur.Line(), `missing value after ":"`)
	}
	ch := p.cur.Rune()
	ok := ch == '"' || ch == '{' || ch == '['
	if inObject {
		ok = ok || ch == 't' || ch == 'f' || ch == 'n' || isDigit(ch)
	}
	if !ok {
		p.failf(p.cur.Line(), `invalid %q after ":"`, ch)
	}
}

// readString consumes a string literal and returns its decoded text. On
// entry the cursor is on the opening quote; on return it rests on the
// closing quote. Whitespace skipping is suspended for the duration so that
// spaces in the body are preserved.
func (p *parser) readString() string {
	p.cur.KeepSpace(true)
	defer p.cur.KeepSpace(false)

	var buf bytes.Buffer
	for {
		p.cur.Next()
		if p.cur.End() {
			p.failf(p.cur.Line(), "unterminated string")
		}
		switch ch := p.cur.Rune(); ch {
		case '"':
			return buf.String()
		case '\\':
			buf.WriteRune(p.readEscape())
		default:
			buf.WriteRune(ch)
		}
	}
}

// readEscape consumes the remainder of a \-escape, returning the rune it
// denotes. On entry the cursor is on the backslash.
func (p *parser) readEscape() rune {
	p.cur.Next()
	if p.cur.End() {
		p.failf(p.cur.Line(), "incomplete escape sequence")
	}
	ch := p.cur.Rune()
	if ch == 'u' {
		return p.readHex4()
	}
	r, ok := escape.Rune(ch)
	if !ok {
		p.failf(p.cur.Line(), "invalid %q after escape", ch)
	}
	return r
}

// readHex4 consumes the four hex digits of a \u escape and returns the
// UTF-16 code unit they spell.
func (p *parser) readHex4() rune {
	var hex [4]byte
	for i := range hex {
		p.cur.Next()
		if p.cur.End() {
			p.failf(p.cur.Line(), "incomplete Unicode escape")
		}
		ch := p.cur.Rune()
		if ch > 0x7f {
			p.failf(p.cur.Line(), "invalid hex digit %q", ch)
		}
		hex[i] = byte(ch)
	}
	v, err := escape.ParseHex4(mem.B(hex[:]))
	if err != nil {
		p.failf(p.cur.Line(), "invalid Unicode escape: %v", err)
	}
	return v
}

// parseNumber consumes a numeric literal, stopping on the delimiter that
// ends it. The literal is stored as an Integer if it parses as one, and
// otherwise as a Number. Errors are attributed to the line on which the
// literal began, not where scanning stopped.
func (p *parser) parseNumber() Value {
	line := p.cur.Line()
	text := bytes.TrimSpace(p.readLiteral())
	if !isNumber(text) {
		p.failf(line, "invalid number %q", text)
	}
	if v, err := strconv.ParseInt(string(text), 10, 64); err == nil {
		return &Integer{node: node{line: line}, value: v}
	}
	v, err := strconv.ParseFloat(string(text), 64)
	if err != nil {
		p.failf(line, "invalid number %q", text)
	}
	return &Number{node: node{line: line}, value: v}
}

// parseConstant consumes a literal that must spell exactly true, false, or
// null, stopping on the delimiter that ends it.
func (p *parser) parseConstant() Value {
	line := p.cur.Line()
	text := bytes.TrimSpace(p.readLiteral())
	switch got := mem.B(text); {
	case got.Equal(mem.S("true")):
		return &Bool{node: node{line: line}, value: true}
	case got.Equal(mem.S("false")):
		return &Bool{node: node{line: line}}
	case got.Equal(mem.S("null")):
		return &Null{node: node{line: line}}
	}
	p.failf(line, "unknown constant %q", text)
	return nil
}

// readLiteral accumulates runes until a comma, closing brace, or closing
// bracket is reached, or the input ends. On return the cursor rests on the
// delimiter, if there is one.
func (p *parser) readLiteral() []byte {
	var buf bytes.Buffer
	for !p.cur.End() {
		ch := p.cur.Rune()
		if ch == ',' || ch == '}' || ch == ']' {
			break
		}
		buf.WriteRune(ch)
		p.cur.Next()
	}
	return buf.Bytes()
}

// isNumber reports whether text matches the numeric grammar: an optional
// leading minus, digits, an optional fractional part, and an optional
// exponent. Empty text is accepted here; the numeric conversion in
// parseNumber rejects it.
func isNumber(text []byte) bool {
	i := 0
	if i < len(text) && text[i] == '-' {
		i++
	}
	for i < len(text) && isDigit(text[i]) {
		i++
	}
	if i < len(text) && text[i] == '.' {
		i++
		n := 0
		for i < len(text) && isDigit(text[i]) {
			i++
			n++
		}
		if n == 0 {
			return false
		}
	}
	if i < len(text) && (text[i] == 'e' || text[i] == 'E') {
		i++
		if i < len(text) && (text[i] == '-' || text[i] == '+') {
			i++
		}
		n := 0
		for i < len(text) && isDigit(text[i]) {
			i++
			n++
		}
		if n == 0 {
			return false
		}
	}
	return i == len(text)
}

func isDigit[T byte | rune](ch T) bool { return '0' <= ch && ch <= '9' }
