// failure.go - the concrete error type for failures raised by this package.
//
// Scope:
//   • One classified failure type carrying a Code, a short message, ordered
//     context and an optional cause.
//   • Interop with errors.Is/As via Unwrap and the CodeVal accessor.
//
// These are the errors returned by Collection.Add, InputOf and the strict
// formatter. They are distinct from *Error, which is the user-facing message
// value stored in collections.
package errcollect

import "fmt"

type failure struct {
	msg   string
	code  Code
	ctx   Args
	cause error
}

func (e *failure) Error() string {
	if e.msg == "" {
		return string(e.code)
	}
	return fmt.Sprintf("%s: %s", e.code, e.msg)
}

func (e *failure) Unwrap() error { return e.cause }
func (e *failure) CodeVal() Code { return e.code }

// Context returns a copy of the failure's diagnostic fields.
func (e *failure) Context() map[string]any { return e.ctx.Map() }

// invalidArgument reports a value Add cannot coerce. The dynamic type is
// recorded under "type".
func invalidArgument(v any) *failure {
	typ := fmt.Sprintf("%T", v)
	return &failure{
		msg:  "expected *Error, string, true or error, got " + typ,
		code: CodeInvalidArgument,
		ctx:  ArgsOf("type", typ),
	}
}

func missingArgument(template, name string) *failure {
	return &failure{
		msg:  fmt.Sprintf("no argument for placeholder {%s}", name),
		code: CodeMissingArgument,
		ctx:  ArgsOf("template", template, "placeholder", name),
	}
}

func malformedTemplate(template string, pos int) *failure {
	return &failure{
		msg:  fmt.Sprintf("unterminated placeholder at offset %d", pos),
		code: CodeMalformedTemplate,
		ctx:  ArgsOf("template", template, "offset", pos),
	}
}
