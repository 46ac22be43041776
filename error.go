// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

package jline

import "fmt"

// SyntaxError is the concrete type of all errors reported by the parser.
// Every grammar violation funnels into this one type, distinguished by the
// 1-based source line at which the violation was detected.
type SyntaxError struct {
	Line    int    // 1-based line number of the violation
	Message string // human-readable description
}

// Error satisfies the error interface.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line %d: invalid JSON: %s", e.Line, e.Message)
}
