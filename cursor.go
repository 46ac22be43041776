// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

package jline

import (
	"bufio"
	"io"
)

// A Cursor reads an input stream one rune at a time, tracking the 1-based
// line number of its current position.  Each call to Next advances the cursor
// to the next semantically meaningful rune; once the input is exhausted, End
// reports true and Rune returns zero.
//
// Outside of string literals the cursor silently discards whitespace (space,
// tab, carriage return, line feed) while advancing.  Use KeepSpace to disable
// discarding while reading the body of a string literal, where whitespace is
// significant.  Newlines are counted whether or not they are discarded.
type Cursor struct {
	r    *bufio.Reader
	ch   rune
	end  bool
	line int
	keep bool // deliver whitespace instead of skipping it
}

// NewCursor constructs a cursor that consumes input from r, primed with the
// first meaningful rune of the input.
func NewCursor(r io.Reader) *Cursor {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	c := &Cursor{r: br, line: 1}
	c.Next()
	return c
}

// Rune reports the rune under the cursor. It is zero when End is true.
func (c *Cursor) Rune() rune { return c.ch }

// End reports whether the input is exhausted.
func (c *Cursor) End() bool { return c.end }

// Line reports the 1-based line number of the cursor position, reflecting
// every newline consumed from the input so far.
func (c *Cursor) Line() int { return c.line }

// KeepSpace configures the cursor to deliver whitespace runes (true) or to
// skip over them (false). The default is false.
func (c *Cursor) KeepSpace(ok bool) { c.keep = ok }

// Next advances the cursor to the next rune of the input, skipping whitespace
// unless KeepSpace is enabled. Advancing past the end of input sets the End
// flag; further calls have no effect.
func (c *Cursor) Next() {
	for {
		ch, _, err := c.r.ReadRune()
		if err != nil {
			c.ch = 0
			c.end = true
			return
		}
		if ch == '\n' {
			c.line++
		}
		if !c.keep && isSpace(ch) {
			continue
		}
		c.ch = ch
		return
	}
}

func isSpace(ch rune) bool {
	return ch == ' ' || ch == '\r' || ch == '\n' || ch == '\t'
}
