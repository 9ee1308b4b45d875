// codes.go - classification codes for failures raised by this package.
//
// Conventions:
//   - Codes are lowercase snake_case ASCII.
//   - Codes classify failures of the library itself (bad input to Add,
//     strict formatter failures). They are never attached to the *Error
//     values users store in a Collection.
package errcollect

// Code classifies failures into machine-readable categories. Codes are
// stringly typed for stability across serialization boundaries.
type Code string

const (
	// CodeInvalidArgument marks a value Add cannot coerce into an Error.
	CodeInvalidArgument Code = "invalid_argument"
	// CodeMissingArgument marks a placeholder with no matching arg.
	CodeMissingArgument Code = "missing_argument"
	// CodeMalformedTemplate marks a template the formatter cannot parse.
	CodeMalformedTemplate Code = "malformed_template"
)

// allBuiltinCodes is the ordered set of codes the package ships with.
var allBuiltinCodes = []Code{
	CodeInvalidArgument,
	CodeMissingArgument,
	CodeMalformedTemplate,
}

var builtinCodeSet = map[Code]struct{}{
	CodeInvalidArgument:   {},
	CodeMissingArgument:   {},
	CodeMalformedTemplate: {},
}

// BuiltinCodes returns a copy of the built-in codes in a stable order.
func BuiltinCodes() []Code {
	out := make([]Code, len(allBuiltinCodes))
	copy(out, allBuiltinCodes)
	return out
}

// IsBuiltin reports whether c is one of the built-in codes.
func (c Code) IsBuiltin() bool {
	_, ok := builtinCodeSet[c]
	return ok
}
