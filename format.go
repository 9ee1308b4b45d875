// format.go - fmt.Formatter implementations.
//
// Behavior:
//
//   %s, %v   → concise text (String() / Error()).
//   %q       → quoted concise text.
//   %+v      → verbose, multi-line:
//                *Error:      msg="<rendered>" format="<template>"
//                             args: k1=v1 k2=v2
//                             cause: <recursively formatted with %+v>
//                failure:     code=<code> msg="<message>"
//                             ctx: k1=v1 ...
//                             cause: ...
//                *Collection: one "[attribute] <%+v of error>" block per error.
package errcollect

import (
	"fmt"
	"io"
)

func writeFields(w io.Writer, label string, fs Args) {
	if len(fs) == 0 {
		return
	}
	_, _ = fmt.Fprintf(w, "\n%s:", label)
	for _, f := range fs {
		if f.Key != "" {
			_, _ = fmt.Fprintf(w, " %s=%v", f.Key, f.Val)
		}
	}
}

func writeCause(w io.Writer, cause error) {
	if cause == nil {
		return
	}
	_, _ = io.WriteString(w, "\ncause: ")
	_, _ = fmt.Fprintf(w, "%+v", cause)
}

func formatConcise(s fmt.State, verb rune, text string) {
	if verb == 'q' {
		_, _ = fmt.Fprintf(s, "%q", text)
		return
	}
	_, _ = io.WriteString(s, text)
}

// Format implements fmt.Formatter.
func (e *Error) Format(s fmt.State, verb rune) {
	if verb == 'v' && s.Flag('+') {
		_, _ = fmt.Fprintf(s, "msg=%q format=%q", e.String(), e.format)
		writeFields(s, "args", e.args)
		writeCause(s, e.cause)
		return
	}
	formatConcise(s, verb, e.String())
}

func (e *failure) Format(s fmt.State, verb rune) {
	if verb == 'v' && s.Flag('+') {
		_, _ = fmt.Fprintf(s, "code=%s msg=%q", e.code, e.msg)
		writeFields(s, "ctx", e.ctx)
		writeCause(s, e.cause)
		return
	}
	formatConcise(s, verb, e.Error())
}

// Format implements fmt.Formatter.
func (c *Collection) Format(s fmt.State, verb rune) {
	if verb == 'v' && s.Flag('+') {
		first := true
		for attribute, e := range c.All() {
			if !first {
				_, _ = io.WriteString(s, "\n")
			}
			first = false
			_, _ = fmt.Fprintf(s, "[%s] %+v", attribute, e)
		}
		return
	}
	formatConcise(s, verb, c.Error())
}

var (
	_ fmt.Formatter = (*failure)(nil)
	_ fmt.Formatter = (*Collection)(nil)
)
