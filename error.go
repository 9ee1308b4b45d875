// error.go - the Error value: a lazily formatted template plus arguments.
//
// An Error never renders eagerly. Text is produced on demand by its bound
// Formatter (DefaultFormatter when none is bound), so the same value can be
// rendered again with a different strategy without losing the original
// template and args.
package errcollect

import (
	"encoding/json"
	"fmt"
)

// Error is an immutable error message: a format template and the args that
// fill its placeholders.
//
// All fluent methods are non-mutating: they return a new *Error and never
// alter the receiver, so a stored Error can be shared freely across
// goroutines.
type Error struct {
	format string
	args   Args
	cause  error
	fm     Formatter
}

// NewError creates an Error from a template and key-value args.
// Placeholders are not checked against args here; that is deferred to
// rendering.
//
// Example:
//
//	err := errcollect.NewError("{field} must be at least {min} characters", "field", "password", "min", 8)
func NewError(format string, kv ...any) *Error {
	return &Error{format: format, args: ArgsOf(kv...)}
}

// NewErrorArgs creates an Error from a template and prebuilt args.
func NewErrorArgs(format string, args Args) *Error {
	return &Error{format: format, args: args.clone()}
}

// Template returns the format template verbatim.
func (e *Error) Template() string { return e.format }

// Args returns a copy of the placeholder args in insertion order.
func (e *Error) Args() Args { return e.args.clone() }

// Arg returns the value bound to a single placeholder.
func (e *Error) Arg(key string) (any, bool) { return e.args.Lookup(key) }

// Unwrap returns the Go error this Error was coerced from, if any.
func (e *Error) Unwrap() error { return e.cause }

// With returns a NEW Error with one more arg appended.
func (e *Error) With(key string, val any) *Error {
	n := e.clone()
	n.args = e.args.cloneAppend(Arg{Key: key, Val: val})
	return n
}

// WithFormatter returns a NEW Error rendered by f. A nil f restores the
// default formatter.
func (e *Error) WithFormatter(f Formatter) *Error {
	n := e.clone()
	n.fm = f
	return n
}

// Render formats the template with the bound Formatter. Formatter failures
// are returned unchanged.
func (e *Error) Render() (string, error) {
	return e.formatter().Format(e.format, e.args)
}

// String returns the rendered text. When the formatter fails the result is
// a fmt-style marker carrying the failure, so String stays total.
func (e *Error) String() string {
	s, err := e.Render()
	if err != nil {
		return fmt.Sprintf("%%!(errcollect: %v)", err)
	}
	return s
}

// Error returns the rendered text so *Error can travel as a Go error.
func (e *Error) Error() string { return e.String() }

// MarshalJSON encodes the Error as its rendered text, not as a structure.
// Two Errors with the same text are therefore indistinguishable in JSON.
func (e *Error) MarshalJSON() ([]byte, error) {
	s, err := e.Render()
	if err != nil {
		return nil, err
	}
	return json.Marshal(s)
}

// MarshalText returns the rendered text.
func (e *Error) MarshalText() ([]byte, error) {
	s, err := e.Render()
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

func (e *Error) formatter() Formatter {
	if e.fm == nil {
		return DefaultFormatter
	}
	return e.fm
}

func (e *Error) clone() *Error {
	n := *e
	n.args = e.args.clone()
	return &n
}

var (
	_ error          = (*Error)(nil)
	_ fmt.Stringer   = (*Error)(nil)
	_ fmt.Formatter  = (*Error)(nil)
	_ json.Marshaler = (*Error)(nil)
)
