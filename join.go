// join.go - a Collection as a Go error.
//
// Goals:
//   • Return a populated Collection anywhere an error is expected, and nil
//     when it is empty (Err).
//   • Mirror errors.Join: Unwrap() []error exposes every stored *Error, so
//     errors.Is/As traverse into each message and on into its cause.
//   • Error() is one line per error, newline-separated, attribute-prefixed
//     except for Generic entries.
package errcollect

import "strings"

// Err returns c as an error, or nil when c holds no errors.
func (c *Collection) Err() error {
	if c == nil || c.Count() == 0 {
		return nil
	}
	return c
}

// Error renders every error on its own line in iteration order.
// Generic errors are bare; others read "attribute: message".
func (c *Collection) Error() string {
	var sb strings.Builder
	first := true
	for attribute, e := range c.All() {
		if !first {
			sb.WriteByte('\n')
		}
		first = false
		if attribute != Generic {
			sb.WriteString(attribute)
			sb.WriteString(": ")
		}
		sb.WriteString(e.String())
	}
	return sb.String()
}

// Unwrap exposes the stored errors in iteration order.
func (c *Collection) Unwrap() []error {
	out := make([]error, 0, c.Count())
	for _, e := range c.All() {
		out = append(out, e)
	}
	return out
}

var _ error = (*Collection)(nil)
