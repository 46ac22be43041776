// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

package jline_test

import (
	"strings"
	"testing"

	"github.com/creachadair/jline"
	"github.com/google/go-cmp/cmp"
)

type runeLine struct {
	Ch   string
	Line int
}

func drain(c *jline.Cursor) []runeLine {
	var got []runeLine
	for !c.End() {
		got = append(got, runeLine{string(c.Rune()), c.Line()})
		c.Next()
	}
	return got
}

func TestCursor(t *testing.T) {
	tests := []struct {
		input string
		want  []runeLine
	}{
		// Empty and whitespace-only inputs.
		{"", nil},
		{"   ", nil},
		{"\t \r\n \t \r\n", nil},

		// Whitespace is skipped, and the line counter reflects the newlines
		// consumed while skipping.
		{"ab", []runeLine{{"a", 1}, {"b", 1}}},
		{"a b", []runeLine{{"a", 1}, {"b", 1}}},
		{"  \n\t x", []runeLine{{"x", 2}}},
		{"1\n\n2", []runeLine{{"1", 1}, {"2", 3}}},
		{"{\n}", []runeLine{{"{", 1}, {"}", 2}}},
		{"a\r\nb\r\nc", []runeLine{{"a", 1}, {"b", 2}, {"c", 3}}},

		// Multibyte runes are delivered whole.
		{"é x", []runeLine{{"é", 1}, {" ", 1}, {"x", 1}}},
	}

	for _, test := range tests {
		c := jline.NewCursor(strings.NewReader(test.input))
		if diff := cmp.Diff(test.want, drain(c)); diff != "" {
			t.Errorf("Input: %#q\nRunes: (-want, +got)\n%s", test.input, diff)
		}
		if !c.End() {
			t.Errorf("Input %#q: cursor did not report end of input", test.input)
		}
	}
}

func TestCursorKeepSpace(t *testing.T) {
	c := jline.NewCursor(strings.NewReader(` a b` + "\nc"))
	if got := c.Rune(); got != 'a' {
		t.Errorf("Primed rune: got %q, want %q", got, 'a')
	}

	c.KeepSpace(true)
	want := []runeLine{
		{"a", 1}, {" ", 1}, {"b", 1},

		// A kept newline is itself reported on the line it begins.
		{"\n", 2}, {"c", 2},
	}
	if diff := cmp.Diff(want, drain(c)); diff != "" {
		t.Errorf("Runes: (-want, +got)\n%s", diff)
	}
}

func TestCursorEnd(t *testing.T) {
	c := jline.NewCursor(strings.NewReader("x"))
	if c.End() {
		t.Error("Cursor at end before input was consumed")
	}
	c.Next()
	if !c.End() {
		t.Error("Cursor not at end after input was consumed")
	}
	if got := c.Rune(); got != 0 {
		t.Errorf("Rune at end: got %q, want 0", got)
	}

	// Further advances must be harmless.
	c.Next()
	if !c.End() || c.Line() != 1 {
		t.Errorf("After extra advance: end=%v line=%d, want true, 1", c.End(), c.Line())
	}
}
