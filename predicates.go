// predicates.go - stdlib-aligned classification helpers.
//
// All helpers use errors.As, so they see through fmt.Errorf("%w") wrapping,
// errors.Join trees and a Collection returned through Err().
package errcollect

import "errors"

type codeCarrier interface{ CodeVal() Code }

// CodeOf returns the first Code found along err's chain, or "" if none.
func CodeOf(err error) Code {
	if err == nil {
		return ""
	}
	var cv codeCarrier
	if errors.As(err, &cv) {
		return cv.CodeVal()
	}
	return ""
}

// HasCode reports whether the first classified failure in err's chain
// carries code.
func HasCode(err error, code Code) bool {
	return err != nil && CodeOf(err) == code
}

// IsInvalidArgument reports whether err is a rejected Add input.
func IsInvalidArgument(err error) bool {
	return HasCode(err, CodeInvalidArgument)
}

// IsFormatFailure reports whether err came from a formatter rejecting a
// template or its args.
func IsFormatFailure(err error) bool {
	switch CodeOf(err) {
	case CodeMissingArgument, CodeMalformedTemplate:
		return true
	default:
		return false
	}
}
