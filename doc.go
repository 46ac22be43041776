// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

// Package jline implements a whole-document JSON parser that attributes
// every value to the source line on which it began.
//
// # Cursor
//
// The Cursor type is the lexical layer: it owns the input stream, the rune
// under inspection, an end-of-input flag, and a running line counter.  Each
// call to Next advances the cursor one rune, skipping whitespace except while
// reading the body of a string literal.  The parser in the ast subpackage is
// the intended client, but the cursor is exported for callers that want to
// drive it directly:
//
//	c := jline.NewCursor(input)
//	for !c.End() {
//	   log.Printf("line %d: %q", c.Line(), c.Rune())
//	   c.Next()
//	}
//
// # Parsing
//
// The ast subpackage builds a tree of ast.Value nodes from the input in a
// single recursive-descent pass:
//
//	v, err := ast.Parse(input)
//	if err != nil {
//	   log.Fatalf("Parse failed: %v", err)
//	}
//
// Every error reported by the parser has concrete type [*SyntaxError] and
// carries the 1-based line number at which the grammar violation was
// detected.  The first violation aborts the parse; there is no recovery and
// no partial result.  The one non-fatal irregularity is a repeated object
// key: the first occurrence keeps its value, and each later occurrence is
// recorded on the key's duplicate-line list and otherwise discarded.
package jline
