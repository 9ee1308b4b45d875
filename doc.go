// doc.go - package documentation for xgx-errcollect
//
// Package errcollect collects validation and runtime errors grouped by
// attribute (typically a form field), renders them lazily, and exports them
// as text, JSON or YAML. It is designed to be:
//   - Lazy: an Error is a template plus args; text is produced on demand.
//   - Deterministic: iteration order is fully defined (see below).
//   - Interoperable: *Error and *Collection are Go errors and work with
//     errors.Is/As/Join.
//
// # Errors
//
// An *Error is immutable. Build one with NewError and derive variants with
// With / WithFormatter, each of which returns a new value:
//
//	err := errcollect.NewError("{field} must be at least {min} characters",
//		"field", "password", "min", 8)
//	err.String() // "password must be at least 8 characters"
//
// Rendering is delegated to a Formatter. The DefaultFormatter substitutes
// "{name}" placeholders leniently; Placeholders{Strict: true} rejects unknown
// placeholders and unterminated braces.
//
// # Collections
//
// Collection.Add accepts an *Error, a format string, the literal true or any
// Go error, and rejects everything else with CodeInvalidArgument:
//
//	errs := errcollect.New()
//	_ = errs.Add("email", "{value} is not an email address", errcollect.ArgsOf("value", in.Email))
//	_ = errs.Add("password", true, nil)
//	_ = errs.AddGeneric(io.ErrUnexpectedEOF, nil)
//
// Put / PutGeneric are the statically typed, chainable equivalents taking an
// Input (ErrorValue, FormatString, EmptyFormat or Cause).
//
// # Ordering
//
//	+----------------------------+-------------------------------------------+
//	| Level                      | Order                                     |
//	+----------------------------+-------------------------------------------+
//	| Generic bucket             | always first                              |
//	| Other attributes           | first insertion (re-added after Remove    |
//	|                            | goes last)                                |
//	| Errors within an attribute | insertion                                 |
//	+----------------------------+-------------------------------------------+
//
// All, ForEach, Groups, Error, MarshalJSON and MarshalYAML all follow this
// order. Attributes with no errors never appear in exports.
//
// # Rendering
//
// NewRendered wraps a collection in a live, read-only view that renders each
// error through a RenderFunc (plain String() by default). The view never
// caches; every traversal reflects the collection's current contents.
//
// # Concurrency
//
// *Error values are safe to share. A Collection is not synchronized:
// concurrent reads are fine, concurrent mutation needs external locking.
//
// # Logging
//
// The core does not log. Package errslog adapts errors and collections to
// log/slog and redacts sensitive args.
package errcollect
