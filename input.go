// input.go - the polymorphic value accepted by Collection.Add.
//
// Add historically accepts an *Error, a format string, the literal true or
// any error. Input models that as a closed sum type; InputOf performs the
// runtime coercion from `any`, and resolve is the single exhaustive match
// that turns a variant into an *Error.
package errcollect

import (
	"errors"
	"reflect"
)

// Input is one of ErrorValue, FormatString, EmptyFormat or Cause.
// The interface is sealed; no other implementations exist.
type Input interface {
	isInput()
}

// ErrorValue stores an existing *Error as-is. Args passed alongside it are
// ignored.
type ErrorValue struct{ Err *Error }

// FormatString builds a new Error from this template and the args passed
// alongside it.
type FormatString string

// EmptyFormat builds an Error with an empty template. It stands for "this
// attribute has an error" when no message is needed.
type EmptyFormat struct{}

// Cause builds an Error whose template is Err.Error(). The original error
// stays reachable through (*Error).Unwrap.
type Cause struct{ Err error }

func (ErrorValue) isInput()   {}
func (FormatString) isInput() {}
func (EmptyFormat) isInput()  {}
func (Cause) isInput()        {}

// InputOf coerces a dynamically typed value into an Input.
//
//   - Input        → itself
//   - *Error       → ErrorValue
//   - string       → FormatString
//   - true         → EmptyFormat
//   - error        → Cause
//
// Everything else, including false, nil and any typed-nil error such as a
// nil *Error, fails with CodeInvalidArgument naming the dynamic type.
func InputOf(v any) (Input, error) {
	switch x := v.(type) {
	case Input:
		return x, nil
	case *Error:
		if x == nil {
			return nil, invalidArgument(v)
		}
		return ErrorValue{Err: x}, nil
	case string:
		return FormatString(x), nil
	case bool:
		if x {
			return EmptyFormat{}, nil
		}
		return nil, invalidArgument(v)
	case error:
		if isNilError(x) {
			return nil, invalidArgument(v)
		}
		return Cause{Err: x}, nil
	default:
		return nil, invalidArgument(v)
	}
}

// isNilError reports whether err is nil or a typed nil of a nilable kind.
// Calling Error() on such a value usually panics.
func isNilError(err error) bool {
	if err == nil {
		return true
	}
	rv := reflect.ValueOf(err)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// resolve turns an Input into the *Error to store in owner. owner's
// formatter is bound to Errors built here; an ErrorValue keeps whatever
// formatter it already has. owner may be nil.
func resolve(in Input, args Args, owner *Collection) *Error {
	var fm Formatter
	if owner != nil {
		fm = owner.fm
	}
	switch x := in.(type) {
	case ErrorValue:
		if x.Err != nil {
			return x.Err
		}
		return &Error{format: "", args: args.clone(), fm: fm}
	case FormatString:
		return &Error{format: string(x), args: args.clone(), fm: fm}
	case Cause:
		e := &Error{args: args.clone(), fm: fm}
		if !isNilError(x.Err) {
			e.format = x.Err.Error()
			e.cause = detachCause(x.Err, owner)
		}
		return e
	default: // EmptyFormat
		return &Error{format: "", args: args.clone(), fm: fm}
	}
}

// detachCause returns the cause an Error stored in owner may keep.
//
// A *Collection cause is replaced by a join of the entries it holds right
// now, so no stored Error points at a collection that can still change.
// A cause from which owner is already reachable is dropped; keeping it would
// close a loop through owner's Unwrap.
func detachCause(err error, owner *Collection) error {
	if c, ok := err.(*Collection); ok {
		err = errors.Join(c.Unwrap()...)
	}
	if err == nil || (owner != nil && errors.Is(err, owner)) {
		return nil
	}
	return err
}
