// typed_field.go - optional, type-safe access to Error args.
//
// Overview
//   TypedArg complements the plain key/any API (NewError kv pairs, With,
//   Arg) with compile-time typing for args a caller reads back, e.g. a
//   renderer that needs the numeric "min" of a length rule.
//
// Usage
//   var (
//       ArgField = errcollect.ArgOf[string]("field")
//       ArgMin   = errcollect.ArgOf[int]("min")
//   )
//
//   err := errcollect.NewError("{field} needs {min} characters")
//   err = ArgField.Set(err, "password")
//   err = ArgMin.Set(err, 8)
//   min, ok := ArgMin.Get(err) // 8, true
//
// Caveats
//   • The stored dynamic type must match T exactly; no conversions are made.
//   • Set(nil, v) creates a NEW Error with an empty template carrying the arg.
package errcollect

import "fmt"

// TypedArg is a typed handle on one placeholder key.
type TypedArg[T any] struct {
	key string
}

// ArgOf constructs a TypedArg[T] for key.
func ArgOf[T any](key string) TypedArg[T] {
	return TypedArg[T]{key: key}
}

// Key returns the placeholder key.
func (a TypedArg[T]) Key() string { return a.key }

// Set returns a NEW Error with key bound to val.
func (a TypedArg[T]) Set(e *Error, val T) *Error {
	if e == nil {
		return NewError("", a.key, any(val))
	}
	return e.With(a.key, any(val))
}

// Get returns the typed value, or (zero, false) if e is nil, the key is
// absent, or the value has a different dynamic type.
func (a TypedArg[T]) Get(e *Error) (T, bool) {
	var zero T
	if e == nil {
		return zero, false
	}
	v, ok := e.args.Lookup(a.key)
	if !ok {
		return zero, false
	}
	tv, ok := v.(T)
	if !ok {
		return zero, false
	}
	return tv, true
}

// MustGet is Get that panics when the value is missing or mistyped.
// Intended for tests and renderers where absence is a programming error.
func (a TypedArg[T]) MustGet(e *Error) T {
	var zero T
	if e == nil {
		panic(fmt.Errorf("errcollect.TypedArg[%T](%q): error is nil", zero, a.key))
	}
	v, ok := e.args.Lookup(a.key)
	if !ok {
		panic(fmt.Errorf("errcollect.TypedArg[%T](%q): arg missing", zero, a.key))
	}
	tv, ok := v.(T)
	if !ok {
		panic(fmt.Errorf("errcollect.TypedArg[%T](%q): wrong dynamic type (%T)", zero, a.key, v))
	}
	return tv
}
