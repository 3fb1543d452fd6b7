// Package diag attaches a host call site to recorder errors.
//
// The teacher compiler stamps every AST node with a lexer.Position captured
// while tokenizing source text. This recorder has no source text to
// tokenize — the "source" is the host Go program calling into the facade —
// so Site plays the same role lexer.Position played (naming where something
// went wrong) but is captured from the Go call stack instead of a scanner.
package diag

import (
	"fmt"
	"runtime"
)

// Site names a point in the host program's call stack.
type Site struct {
	File     string
	Line     int
	Function string
}

// String returns a human-readable representation of the site.
// Format: "function (file:line)", e.g. "main.buildKernel (main.go:42)".
func (s Site) String() string {
	if s.Function == "" {
		return fmt.Sprintf("%s:%d", s.File, s.Line)
	}
	return fmt.Sprintf("%s (%s:%d)", s.Function, s.File, s.Line)
}

// IsValid reports whether the site carries a usable line number.
func (s Site) IsValid() bool {
	return s.Line > 0
}

// Here captures the call site `skip` frames above its own caller.
// skip == 0 names the function that called Here.
func Here(skip int) Site {
	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return Site{}
	}
	fn := runtime.FuncForPC(pc)
	name := ""
	if fn != nil {
		name = fn.Name()
	}
	return Site{File: file, Line: line, Function: name}
}
